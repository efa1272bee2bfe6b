/*
Package bigint provides an immutable arbitrary-precision signed integer
type, Int, layered over math/big.

Int is a value type; all operations return new values. An Int never
shares mutable state with another Int, so values are safe to share
across goroutines without synchronisation.

Simple example:

	a := bigint.MustFrom("123456789012345678901234567890")
	b, _ := a.Mul(10)
	fmt.Println(b)

Int can be created from a variety of sources:

	Parse(s string, base int) (Int, error)
	From(v Operand) (Int, error)
	MustFrom(v Operand) Int
	FromInt64(v int64) Int
	FromUint64(v uint64) Int
	FromBigInt(v *big.Int) Int
	FromBytes(b []byte, reverse bool) Int
	Zero() Int
	One() Int
	Factorial(n uint64) Int

Arithmetic and comparison methods accept their right-hand operand as an
Operand: an Int, a *big.Int, a decimal string, or any native integer
kind. Call sites never have to pre-convert:

	q, err := a.Div("7", bigint.RoundFloor)
	ok, err := a.Between(0, "1000000000000", false)

Int supports the following formatting and marshalling interfaces:

	- fmt.Formatter
	- fmt.Stringer
	- json.Marshaler
	- json.Unmarshaler
	- encoding.TextMarshaler
	- encoding.TextUnmarshaler

Byte buffers produced by Bytes and consumed by FromBytes hold the
unsigned big-endian magnitude with leading zero bytes stripped,
optionally byte-reversed for little-endian interop. Sign is not part of
the buffer encoding; see Bytes for the round-trip contract.
*/
package bigint

package bigint

import (
	"fmt"
	"math/big"
)

// Int is an immutable arbitrary-precision signed integer.
//
// The engine handle it wraps is exclusively owned and never mutated
// after construction; every operation allocates a fresh handle for its
// result. The zero value of Int is a valid 0.
type Int struct {
	v *big.Int
}

// ref returns the engine handle for reading. Callers must never mutate
// the returned value.
func (i Int) ref() *big.Int {
	if i.v == nil {
		return big0
	}
	return i.v
}

// Parse creates an Int from a string in the given base. Base 0 asks
// the engine to detect the base from standard prefixes ("0x", "0b",
// "0o", leading "0"). A string that is not numeric in the target base
// fails with a wrapped ErrParse.
func Parse(s string, base int) (Int, error) {
	v, ok := new(big.Int).SetString(s, base)
	if !ok {
		return Int{}, fmt.Errorf("bigint: string %q invalid in base %d: %w", s, base, ErrParse)
	}
	return Int{v: v}, nil
}

// From creates an Int from any Operand. Strings are parsed as decimal;
// native integers are taken literally without string validation.
func From(v Operand) (Int, error) {
	return coerce(v)
}

// MustFrom is like From but panics on failure. It is intended for
// literals whose validity is known at the call site.
func MustFrom(v Operand) Int {
	n, err := coerce(v)
	if err != nil {
		panic(err)
	}
	return n
}

func FromInt64(v int64) Int   { return Int{v: big.NewInt(v)} }
func FromUint64(v uint64) Int { return Int{v: new(big.Int).SetUint64(v)} }

// FromBigInt creates an Int from an engine value. The input is copied;
// the caller keeps ownership of v and may mutate it freely afterwards.
// A nil input is 0.
func FromBigInt(v *big.Int) Int {
	if v == nil {
		return Int{}
	}
	return Int{v: new(big.Int).Set(v)}
}

// FromBytes interprets b as an unsigned big-endian magnitude.
//
// If reverse is true the buffer is treated as little-endian and its
// byte order is flipped before parsing. An empty buffer is 0. The
// input slice is not retained.
func FromBytes(b []byte, reverse bool) Int {
	if reverse {
		r := make([]byte, len(b))
		for n, c := range b {
			r[len(b)-1-n] = c
		}
		b = r
	}
	return Int{v: new(big.Int).SetBytes(b)}
}

// Factorial returns n!. Every call recomputes; see bigutil.Factorial
// for the memoised form.
func Factorial(n uint64) Int {
	return Int{v: new(big.Int).MulRange(1, int64(n))}
}

// Int64 converts i to a native int64.
//
// Values outside the int64 range fail with a wrapped ErrOverflow. The
// check is symmetric: both the upper and the lower bound are guarded.
func (i Int) Int64() (int64, error) {
	if !i.ref().IsInt64() {
		return 0, fmt.Errorf("bigint: %s out of int64 range: %w", i, ErrOverflow)
	}
	return i.ref().Int64(), nil
}

// String returns the canonical decimal representation: a leading '-'
// for negative values, no leading zeros.
func (i Int) String() string {
	return i.ref().String()
}

func (i Int) Format(s fmt.State, c rune) {
	i.ref().Format(s, c)
}

// Bytes renders the magnitude of i as raw bytes: big-endian, leading
// zero bytes stripped, byte-reversed to little-endian when reverse is
// true. 0 yields an empty slice.
//
// Sign is dropped. Bytes is the inverse of FromBytes only for
// non-negative values; a negative value round-trips to its absolute
// value. This asymmetry is part of the contract.
func (i Int) Bytes(reverse bool) []byte {
	b := i.ref().Bytes()
	if reverse {
		for l, r := 0, len(b)-1; l < r; l, r = l+1, r-1 {
			b[l], b[r] = b[r], b[l]
		}
	}
	return b
}

// BigInt returns a copy of i as an engine value. The caller owns the
// result.
func (i Int) BigInt() *big.Int {
	return new(big.Int).Set(i.ref())
}

// Sign returns -1, 0 or 1 depending on whether i is negative, zero or
// positive.
func (i Int) Sign() int { return i.ref().Sign() }

func (i Int) IsZero() bool { return i.ref().Sign() == 0 }

func (i Int) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

func (i *Int) UnmarshalText(bts []byte) (err error) {
	v, err := Parse(string(bts), 10)
	if err != nil {
		return err
	}
	*i = v
	return nil
}

func (i Int) MarshalJSON() ([]byte, error) {
	return []byte(`"` + i.String() + `"`), nil
}

func (i *Int) UnmarshalJSON(bts []byte) (err error) {
	if len(bts) > 0 && bts[0] == '"' {
		ln := len(bts)
		if ln < 2 || bts[ln-1] != '"' {
			return fmt.Errorf("bigint: invalid JSON %q: %w", string(bts), ErrParse)
		}
		bts = bts[1 : ln-1]
	}

	v, err := Parse(string(bts), 10)
	if err != nil {
		return err
	}
	*i = v
	return nil
}

package bigint

import (
	"math/big"
	"testing"
)

var (
	BenchBigIntResult *big.Int
	BenchBoolResult   bool
	BenchBytesResult  []byte
	BenchCmpResult    int
	BenchIntResult    Int
	BenchStringResult string

	BenchIn1 = MustFrom("123456789012345678901234567890")
	BenchIn2 = MustFrom("987654321098765432109876543210")
)

func BenchmarkIntAdd(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchIntResult, _ = BenchIn1.Add(BenchIn2)
	}
}

func BenchmarkIntMul(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchIntResult, _ = BenchIn1.Mul(BenchIn2)
	}
}

func BenchmarkIntDivFloor(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchIntResult, _ = BenchIn1.Div(BenchIn2, RoundFloor)
	}
}

func BenchmarkIntCmp(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchCmpResult, _ = BenchIn1.Cmp(BenchIn2)
	}
}

func BenchmarkIntBytes(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchBytesResult = BenchIn1.Bytes(true)
	}
}

func BenchmarkBigIntAdd(b *testing.B) {
	v1, v2 := BenchIn1.BigInt(), BenchIn2.BigInt()
	for i := 0; i < b.N; i++ {
		var dest big.Int
		dest.Add(v1, v2)
	}
}

func BenchmarkBigIntMul(b *testing.B) {
	v1, v2 := BenchIn1.BigInt(), BenchIn2.BigInt()
	for i := 0; i < b.N; i++ {
		var dest big.Int
		dest.Mul(v1, v2)
	}
}

func BenchmarkBigIntCmp(b *testing.B) {
	v1, v2 := BenchIn1.BigInt(), BenchIn2.BigInt()
	for i := 0; i < b.N; i++ {
		BenchCmpResult = v1.Cmp(v2)
	}
}

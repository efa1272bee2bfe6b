package bigint

import (
	"math/big"
	"sync"
)

var (
	// big0 and big1 are shared read-only engine values. They must
	// never be passed anywhere they could be mutated.
	big0 = new(big.Int)
	big1 = big.NewInt(1)

	zeroOnce sync.Once
	zeroVal  Int

	oneOnce sync.Once
	oneVal  Int
)

// Zero returns the process-wide 0 value. The singleton is built on
// first use and cached for the lifetime of the process.
func Zero() Int {
	zeroOnce.Do(func() {
		zeroVal = Int{v: new(big.Int)}
	})
	return zeroVal
}

// One returns the process-wide 1 value, built lazily like Zero.
func One() Int {
	oneOnce.Do(func() {
		oneVal = Int{v: big.NewInt(1)}
	})
	return oneVal
}

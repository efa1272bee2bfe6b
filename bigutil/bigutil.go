// Package bigutil provides stateless helpers built purely on the
// exported bigint API: a memoising factorial, a heterogeneous GCD
// dispatcher, and a cryptographically random value generator.
package bigutil

import (
	"sync"

	"github.com/bigintio/go-bigint"
)

var factorials = struct {
	sync.Mutex
	m map[uint64]bigint.Int
}{
	m: map[uint64]bigint.Int{},
}

// Factorial returns n!, memoised for the lifetime of the process.
//
// The cache lock is held across a miss computation, so each distinct n
// is computed exactly once no matter how many goroutines ask for it
// first. Entries are never evicted.
func Factorial(n uint64) bigint.Int {
	factorials.Lock()
	defer factorials.Unlock()

	if v, ok := factorials.m[n]; ok {
		return v
	}
	v := bigint.Factorial(n)
	factorials.m[n] = v
	return v
}

// GCD returns the non-negative greatest common divisor of a and b.
// Either operand may be anything coercible to an Int.
func GCD(a, b bigint.Operand) (bigint.Int, error) {
	av, err := bigint.From(a)
	if err != nil {
		return bigint.Int{}, err
	}
	return av.GCD(b)
}

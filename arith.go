package bigint

import (
	"fmt"
	"math/big"
)

// RoundingMode selects how a quotient is rounded to an integer.
type RoundingMode int

const (
	// RoundTrunc truncates toward zero. This is the default mode.
	RoundTrunc RoundingMode = iota

	// RoundFloor rounds toward negative infinity.
	RoundFloor

	// RoundCeil rounds toward positive infinity.
	RoundCeil
)

func (m RoundingMode) String() string {
	switch m {
	case RoundTrunc:
		return "trunc"
	case RoundFloor:
		return "floor"
	case RoundCeil:
		return "ceil"
	}
	return fmt.Sprintf("RoundingMode(%d)", int(m))
}

func (i Int) Add(v Operand) (Int, error) {
	n, err := coerce(v)
	if err != nil {
		return Int{}, err
	}
	return Int{v: new(big.Int).Add(i.ref(), n.ref())}, nil
}

func (i Int) Sub(v Operand) (Int, error) {
	n, err := coerce(v)
	if err != nil {
		return Int{}, err
	}
	return Int{v: new(big.Int).Sub(i.ref(), n.ref())}, nil
}

func (i Int) Mul(v Operand) (Int, error) {
	n, err := coerce(v)
	if err != nil {
		return Int{}, err
	}
	return Int{v: new(big.Int).Mul(i.ref(), n.ref())}, nil
}

// quoRem computes the rounded quotient and the matching remainder so
// that i == n*q + r for every mode. The zero divisor is rejected here,
// before the engine sees it, so callers always get a typed error
// rather than an engine panic.
func (i Int) quoRem(n Int, mode RoundingMode) (q, r *big.Int, err error) {
	if n.ref().Sign() == 0 {
		return nil, nil, fmt.Errorf("bigint: %s / 0: %w", i, ErrDivisionByZero)
	}

	r = new(big.Int)
	q, r = new(big.Int).QuoRem(i.ref(), n.ref(), r)

	switch mode {
	case RoundTrunc:
	case RoundFloor:
		// Truncation equals floor unless the signs differ and the
		// division was inexact.
		if r.Sign() != 0 && (i.ref().Sign() < 0) != (n.ref().Sign() < 0) {
			q.Sub(q, big1)
			r.Add(r, n.ref())
		}
	case RoundCeil:
		if r.Sign() != 0 && (i.ref().Sign() < 0) == (n.ref().Sign() < 0) {
			q.Add(q, big1)
			r.Sub(r, n.ref())
		}
	default:
		return nil, nil, fmt.Errorf("bigint: rounding mode %d: %w", int(mode), ErrDomain)
	}
	return q, r, nil
}

// Div returns the quotient i/v rounded per mode. Division by zero
// fails with a wrapped ErrDivisionByZero.
func (i Int) Div(v Operand, mode RoundingMode) (Int, error) {
	n, err := coerce(v)
	if err != nil {
		return Int{}, err
	}
	q, _, err := i.quoRem(n, mode)
	if err != nil {
		return Int{}, err
	}
	return Int{v: q}, nil
}

// Quo is an alias for Div, kept so both quotient spellings exist
// alongside Rem.
func (i Int) Quo(v Operand, mode RoundingMode) (Int, error) {
	return i.Div(v, mode)
}

// Rem returns the remainder r = i - v*q, where q is the quotient
// rounded per mode; r therefore always satisfies the division
// identity with Div for the same mode. Division by zero fails with a
// wrapped ErrDivisionByZero.
func (i Int) Rem(v Operand, mode RoundingMode) (Int, error) {
	n, err := coerce(v)
	if err != nil {
		return Int{}, err
	}
	_, r, err := i.quoRem(n, mode)
	if err != nil {
		return Int{}, err
	}
	return Int{v: r}, nil
}

// Mod returns the canonical non-negative remainder of i modulo v,
// in [0, |v|). This is Euclidean modulus, distinct from Rem's
// rounding-sensitive remainder. Division by zero fails with a wrapped
// ErrDivisionByZero.
func (i Int) Mod(v Operand) (Int, error) {
	n, err := coerce(v)
	if err != nil {
		return Int{}, err
	}
	if n.ref().Sign() == 0 {
		return Int{}, fmt.Errorf("bigint: %s mod 0: %w", i, ErrDivisionByZero)
	}
	return Int{v: new(big.Int).Mod(i.ref(), n.ref())}, nil
}

// Pow returns i raised to the given exponent. Negative exponents are
// not representable without a modulus and fail with a wrapped
// ErrDomain.
func (i Int) Pow(v Operand) (Int, error) {
	e, err := coerce(v)
	if err != nil {
		return Int{}, err
	}
	if e.ref().Sign() < 0 {
		return Int{}, fmt.Errorf("bigint: negative exponent %s: %w", e, ErrDomain)
	}
	return Int{v: new(big.Int).Exp(i.ref(), e.ref(), nil)}, nil
}

// PowMod returns i**e mod m. The modulus must be positive; zero or
// negative moduli fail with a wrapped ErrDomain before the engine is
// consulted. A negative exponent is resolved through the modular
// inverse of i, and fails with a wrapped ErrDomain when no inverse
// exists.
func (i Int) PowMod(e, m Operand) (Int, error) {
	ev, err := coerce(e)
	if err != nil {
		return Int{}, err
	}
	mv, err := coerce(m)
	if err != nil {
		return Int{}, err
	}
	if mv.ref().Sign() <= 0 {
		return Int{}, fmt.Errorf("bigint: modulus %s not positive: %w", mv, ErrDomain)
	}
	z := new(big.Int)
	if z.Exp(i.ref(), ev.ref(), mv.ref()) == nil {
		return Int{}, fmt.Errorf("bigint: %s has no inverse modulo %s: %w", i, mv, ErrDomain)
	}
	return Int{v: z}, nil
}

// Sqrt returns the floor of the square root of i. Negative operands
// fail with a wrapped ErrDomain.
func (i Int) Sqrt() (Int, error) {
	if i.ref().Sign() < 0 {
		return Int{}, fmt.Errorf("bigint: square root of %s: %w", i, ErrDomain)
	}
	return Int{v: new(big.Int).Sqrt(i.ref())}, nil
}

// Abs returns |i|.
func (i Int) Abs() Int {
	return Int{v: new(big.Int).Abs(i.ref())}
}

// Neg returns -i.
func (i Int) Neg() Int {
	return Int{v: new(big.Int).Neg(i.ref())}
}

func (i Int) Inc() Int {
	return Int{v: new(big.Int).Add(i.ref(), big1)}
}

func (i Int) Dec() Int {
	return Int{v: new(big.Int).Sub(i.ref(), big1)}
}

// GCD returns the non-negative greatest common divisor of i and v.
// The signs of the operands are ignored; GCD(0, 0) is 0.
func (i Int) GCD(v Operand) (Int, error) {
	n, err := coerce(v)
	if err != nil {
		return Int{}, err
	}
	a := new(big.Int).Abs(i.ref())
	b := new(big.Int).Abs(n.ref())
	switch {
	case a.Sign() == 0:
		return Int{v: b}, nil
	case b.Sign() == 0:
		return Int{v: a}, nil
	}
	return Int{v: new(big.Int).GCD(nil, nil, a, b)}, nil
}

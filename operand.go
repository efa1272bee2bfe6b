package bigint

import (
	"fmt"
	"math/big"
)

// Operand is the set of values accepted on the right-hand side of
// arithmetic and comparison operations: an Int, a *big.Int, a decimal
// string, or any native integer kind. Anything else fails with a
// wrapped ErrOperand; a string that is not a decimal number fails with
// a wrapped ErrParse.
type Operand interface{}

func coerce(v Operand) (Int, error) {
	switch n := v.(type) {
	case Int:
		return n, nil
	case *Int:
		if n == nil {
			return Int{}, nil
		}
		return *n, nil
	case *big.Int:
		return FromBigInt(n), nil
	case string:
		return Parse(n, 10)
	case int:
		return FromInt64(int64(n)), nil
	case int8:
		return FromInt64(int64(n)), nil
	case int16:
		return FromInt64(int64(n)), nil
	case int32:
		return FromInt64(int64(n)), nil
	case int64:
		return FromInt64(n), nil
	case uint:
		return FromUint64(uint64(n)), nil
	case uint8:
		return FromUint64(uint64(n)), nil
	case uint16:
		return FromUint64(uint64(n)), nil
	case uint32:
		return FromUint64(uint64(n)), nil
	case uint64:
		return FromUint64(n), nil
	default:
		return Int{}, fmt.Errorf("bigint: operand type %T: %w", v, ErrOperand)
	}
}

package bigint

import "errors"

// Errors reported by this package. Return sites wrap these with
// context via fmt.Errorf and %w; classify with errors.Is.
var (
	ErrParse          = errors.New("invalid number")
	ErrOperand        = errors.New("unsupported operand type")
	ErrOverflow       = errors.New("integer overflow")
	ErrDivisionByZero = errors.New("division by zero")
	ErrDomain         = errors.New("argument outside domain")
)

package fixed

import (
	"github.com/calebcase/oops"
	"github.com/zeebo/errs"

	"github.com/calebcase/fixed/arith"
)

// Error is the error class for this package.
var Error = errs.Class("fixed")

var (
	// ErrDivideByZero is returned when a divisor is zero.
	ErrDivideByZero = Error.New("divide by zero")

	// ErrInvalidScale is returned when a decimal count is negative.
	ErrInvalidScale = Error.New("invalid scale")
)

// DefaultDecimals is the decimal count used by Default.
const DefaultDecimals = 18

// Scales holds the decimal counts of the two operands and of the result.
type Scales struct {
	A   int
	B   int
	Out int
}

// Default is 18 decimals for both operands and the result.
var Default = Scales{
	A:   DefaultDecimals,
	B:   DefaultDecimals,
	Out: DefaultDecimals,
}

func (s Scales) validate() error {
	if s.A < 0 || s.B < 0 || s.Out < 0 {
		return oops.Trace(ErrInvalidScale)
	}

	return nil
}

// Calculator performs fixed point operations over values of type T.
type Calculator[T any] struct {
	ops arith.Ops[T]
}

// New returns a calculator backed by ops.
func New[T any](ops arith.Ops[T]) *Calculator[T] {
	return &Calculator[T]{
		ops: ops,
	}
}

// Pow10 returns 10^n.
func (c *Calculator[T]) Pow10(n int) (_ T, err error) {
	defer Error.WrapP(&err)

	if n < 0 {
		var zero T
		return zero, oops.Trace(ErrInvalidScale)
	}

	return c.ops.Pow10(n), nil
}

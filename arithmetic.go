package fixed

import "github.com/calebcase/oops"

// Multiply returns a*b with s.Out decimals, rounded half away from zero.
func (c *Calculator[T]) Multiply(a, b T, s Scales) (_ T, err error) {
	defer Error.WrapP(&err)

	err = s.validate()
	if err != nil {
		var zero T
		return zero, err
	}

	product := c.ops.Mul(a, b)
	negative := c.ops.Sign(product) < 0
	product = c.ops.Abs(product)

	// The raw product carries the decimals of both operands.
	decimals := s.A + s.B
	if decimals > s.Out {
		product = c.ops.Add(product, c.half(decimals-s.Out))
	}

	product = c.convert(product, decimals, s.Out)
	if negative {
		product = c.ops.Neg(product)
	}

	return product, nil
}

// Divide returns a/b with s.Out decimals, rounded half away from zero.
func (c *Calculator[T]) Divide(a, b T, s Scales) (_ T, err error) {
	defer Error.WrapP(&err)

	err = s.validate()
	if err != nil {
		var zero T
		return zero, err
	}

	if c.ops.Sign(b) == 0 {
		var zero T
		return zero, oops.Trace(ErrDivideByZero)
	}

	negative := c.ops.Sign(a)*c.ops.Sign(b) < 0
	divisor := c.ops.Abs(b)

	// Dividing by b removes s.B decimals, so pad the dividend to s.Out+s.B.
	dividend := c.convert(c.ops.Abs(a), s.A, s.Out+s.B)
	dividend = c.ops.Add(dividend, c.ops.Quo(divisor, c.ops.Int64(2)))

	quotient := c.ops.Quo(dividend, divisor)
	if negative {
		quotient = c.ops.Neg(quotient)
	}

	return quotient, nil
}

// half returns one half of the unit at the last of digits discarded digits,
// i.e. 5*10^(digits-1). digits must be positive.
func (c *Calculator[T]) half(digits int) T {
	return c.ops.Mul(c.ops.Int64(5), c.ops.Pow10(digits-1))
}

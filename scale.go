package fixed

import "github.com/calebcase/oops"

// ConvertScale returns a, which has from decimals, expressed with to
// decimals. Reducing the number of decimals truncates toward zero.
func (c *Calculator[T]) ConvertScale(a T, from, to int) (_ T, err error) {
	defer Error.WrapP(&err)

	if from < 0 || to < 0 {
		var zero T
		return zero, oops.Trace(ErrInvalidScale)
	}

	return c.convert(a, from, to), nil
}

func (c *Calculator[T]) convert(a T, from, to int) T {
	if from > to {
		return c.ops.Quo(a, c.ops.Pow10(from-to))
	}

	return c.ops.Mul(a, c.ops.Pow10(to-from))
}

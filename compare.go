package fixed

// Max returns the larger of a and b. Ties return b.
func (c *Calculator[T]) Max(a, b T) T {
	if c.ops.Cmp(a, b) > 0 {
		return a
	}

	return b
}

// Min returns the smaller of a and b. Ties return b.
func (c *Calculator[T]) Min(a, b T) T {
	if c.ops.Cmp(a, b) < 0 {
		return a
	}

	return b
}

// AbsDiff returns |a-b|.
func (c *Calculator[T]) AbsDiff(a, b T) T {
	if c.ops.Cmp(a, b) > 0 {
		return c.ops.Sub(a, b)
	}

	return c.ops.Sub(b, a)
}

package fixed

import (
	"math/big"

	"github.com/calebcase/fixed/arith"
)

var std = New[*big.Int](arith.Big{})

// Max returns the larger of a and b. Ties return b. The result is one of the
// arguments, not a copy.
func Max(a, b *big.Int) *big.Int { return std.Max(a, b) }

// Min returns the smaller of a and b. Ties return b. The result is one of the
// arguments, not a copy.
func Min(a, b *big.Int) *big.Int { return std.Min(a, b) }

// AbsDiff returns |a-b| as a new integer.
func AbsDiff(a, b *big.Int) *big.Int { return std.AbsDiff(a, b) }

// Multiply returns a*b with s.Out decimals, rounded half away from zero.
//
//  // 1.000000 * 0.333333 at 18 decimals
//  p, err := fixed.Multiply(big.NewInt(1_000000), big.NewInt(333333), fixed.Scales{A: 6, B: 6, Out: 18})
//  // p == 333333000000000000
func Multiply(a, b *big.Int, s Scales) (*big.Int, error) {
	return std.Multiply(a, b, s)
}

// Divide returns a/b with s.Out decimals, rounded half away from zero. A zero
// b returns ErrDivideByZero.
func Divide(a, b *big.Int, s Scales) (*big.Int, error) {
	return std.Divide(a, b, s)
}

// ConvertScale returns a, which has from decimals, expressed with to
// decimals. Reducing the number of decimals truncates toward zero.
func ConvertScale(a *big.Int, from, to int) (*big.Int, error) {
	return std.ConvertScale(a, from, to)
}

// Pow10 returns 10^n as a new integer.
func Pow10(n int) (*big.Int, error) {
	return std.Pow10(n)
}

package arith

import "github.com/shopspring/decimal"

// Decimal implements Ops over shopspring decimals that hold integers.
//
// Every value must be an integer: the unscaled magnitude of a fixed point
// number, not the number itself. A positive exponent is fine (decimal.New(1, 3)
// is 1000), but a value with fractional digits carries its scale twice once
// the decimals are also passed to a fixed.Calculator.
type Decimal struct{}

var _ Ops[decimal.Decimal] = Decimal{}

func (Decimal) Add(x, y decimal.Decimal) decimal.Decimal { return x.Add(y) }
func (Decimal) Sub(x, y decimal.Decimal) decimal.Decimal { return x.Sub(y) }
func (Decimal) Mul(x, y decimal.Decimal) decimal.Decimal { return x.Mul(y) }

func (Decimal) Quo(x, y decimal.Decimal) decimal.Decimal {
	// QuoRem at precision 0 keeps the remainder's sign equal to x's, which
	// makes the quotient truncated toward zero.
	q, _ := x.QuoRem(y, 0)

	return q
}

func (Decimal) Cmp(x, y decimal.Decimal) int { return x.Cmp(y) }
func (Decimal) Sign(x decimal.Decimal) int { return x.Sign() }
func (Decimal) Abs(x decimal.Decimal) decimal.Decimal { return x.Abs() }
func (Decimal) Neg(x decimal.Decimal) decimal.Decimal { return x.Neg() }

func (Decimal) Int64(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func (Decimal) Pow10(n int) decimal.Decimal {
	return decimal.NewFromBigInt(pow10(n), 0)
}

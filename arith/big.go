package arith

import "math/big"

// Big implements Ops over *big.Int.
type Big struct{}

var _ Ops[*big.Int] = Big{}

func (Big) Add(x, y *big.Int) *big.Int { return new(big.Int).Add(x, y) }
func (Big) Sub(x, y *big.Int) *big.Int { return new(big.Int).Sub(x, y) }
func (Big) Mul(x, y *big.Int) *big.Int { return new(big.Int).Mul(x, y) }

// Quo uses big.Int.Quo (truncated division), not big.Int.Div (Euclidean).
func (Big) Quo(x, y *big.Int) *big.Int { return new(big.Int).Quo(x, y) }

func (Big) Cmp(x, y *big.Int) int { return x.Cmp(y) }
func (Big) Sign(x *big.Int) int { return x.Sign() }
func (Big) Abs(x *big.Int) *big.Int {
	return new(big.Int).Abs(x)
}
func (Big) Neg(x *big.Int) *big.Int {
	return new(big.Int).Neg(x)
}

func (Big) Int64(v int64) *big.Int { return big.NewInt(v) }

func (Big) Pow10(n int) *big.Int {
	return new(big.Int).Set(pow10(n))
}

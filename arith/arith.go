package arith

import (
	"math/big"
	"strconv"

	"github.com/patrickmn/go-cache"
)

// Ops is the set of integer operations over values of type T.
//
// Implementations must not modify their arguments.
type Ops[T any] interface {
	Add(x, y T) T
	Sub(x, y T) T
	Mul(x, y T) T

	// Quo returns x/y truncated toward zero. y must not be zero.
	Quo(x, y T) T

	Cmp(x, y T) int
	Sign(x T) int
	Abs(x T) T
	Neg(x T) T

	Int64(v int64) T

	// Pow10 returns 10^n. n must not be negative.
	Pow10(n int) T
}

// MaxCachedPower is the largest exponent kept in the power of ten cache.
const MaxCachedPower = 256

var (
	ten    = big.NewInt(10)
	powers = cache.New(cache.NoExpiration, 0)
)

// pow10 returns 10^n. The result is shared and must not be modified.
func pow10(n int) *big.Int {
	if n > MaxCachedPower {
		return new(big.Int).Exp(ten, big.NewInt(int64(n)), nil)
	}

	key := strconv.Itoa(n)

	if v, ok := powers.Get(key); ok {
		return v.(*big.Int)
	}

	p := new(big.Int).Exp(ten, big.NewInt(int64(n)), nil)
	powers.Set(key, p, cache.NoExpiration)

	return p
}

package amount

import (
	"math/big"
	"strings"

	"github.com/calebcase/oops"
	"github.com/zeebo/errs"

	"github.com/calebcase/fixed"
)

// Error is the error class for this package.
var Error = errs.Class("amount")

var (
	// ErrInvalidEncoding is returned when binary data is not a value.
	ErrInvalidEncoding = Error.New("invalid encoding")

	// ErrScaleRange is returned when decimals do not fit the encoding.
	ErrScaleRange = Error.New("scale out of range")
)

// MaxDecimals is the largest decimal count that can be encoded.
const MaxDecimals = 1<<24 - 1

// Value is a fixed point number: Int / 10^Decimals.
//
// A nil Int is treated as zero.
type Value struct {
	Int      *big.Int
	Decimals int
}

// New returns a value holding a copy of i.
func New(i *big.Int, decimals int) Value {
	return Value{
		Int:      new(big.Int).Set(i),
		Decimals: decimals,
	}
}

// NewFromInt64 returns a value holding i.
func NewFromInt64(i int64, decimals int) Value {
	return Value{
		Int:      big.NewInt(i),
		Decimals: decimals,
	}
}

func (v Value) integer() *big.Int {
	if v.Int == nil {
		return new(big.Int)
	}

	return v.Int
}

// Sign returns -1, 0 or +1.
func (v Value) Sign() int {
	return v.integer().Sign()
}

// Rescale returns v with decimals, rounding half away from zero.
func (v Value) Rescale(decimals int) (_ Value, err error) {
	i, err := fixed.Multiply(v.integer(), big.NewInt(1), fixed.Scales{
		A:   v.Decimals,
		B:   0,
		Out: decimals,
	})
	if err != nil {
		return Value{}, err
	}

	return Value{Int: i, Decimals: decimals}, nil
}

// Truncate returns v with decimals, truncating toward zero.
func (v Value) Truncate(decimals int) (_ Value, err error) {
	i, err := fixed.ConvertScale(v.integer(), v.Decimals, decimals)
	if err != nil {
		return Value{}, err
	}

	return Value{Int: i, Decimals: decimals}, nil
}

// Mul returns v*o with decimals.
func (v Value) Mul(o Value, decimals int) (_ Value, err error) {
	i, err := fixed.Multiply(v.integer(), o.integer(), fixed.Scales{
		A:   v.Decimals,
		B:   o.Decimals,
		Out: decimals,
	})
	if err != nil {
		return Value{}, err
	}

	return Value{Int: i, Decimals: decimals}, nil
}

// Div returns v/o with decimals.
func (v Value) Div(o Value, decimals int) (_ Value, err error) {
	i, err := fixed.Divide(v.integer(), o.integer(), fixed.Scales{
		A:   v.Decimals,
		B:   o.Decimals,
		Out: decimals,
	})
	if err != nil {
		return Value{}, err
	}

	return Value{Int: i, Decimals: decimals}, nil
}

// Cmp compares the numbers v and o represent, regardless of their decimals.
func (v Value) Cmp(o Value) (_ int, err error) {
	decimals := v.Decimals
	if o.Decimals > decimals {
		decimals = o.Decimals
	}

	a, err := fixed.ConvertScale(v.integer(), v.Decimals, decimals)
	if err != nil {
		return 0, err
	}

	b, err := fixed.ConvertScale(o.integer(), o.Decimals, decimals)
	if err != nil {
		return 0, err
	}

	return a.Cmp(b), nil
}

// String formats v with exactly Decimals digits after the decimal point.
func (v Value) String() string {
	i := v.integer()

	digits := new(big.Int).Abs(i).String()
	if v.Decimals > 0 {
		if len(digits) <= v.Decimals {
			digits = strings.Repeat("0", v.Decimals-len(digits)+1) + digits
		}

		point := len(digits) - v.Decimals
		digits = digits[:point] + "." + digits[point:]
	}

	if i.Sign() < 0 {
		return "-" + digits
	}

	return digits
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (v Value) MarshalBinary() (data []byte, err error) {
	if v.Decimals < 0 {
		return nil, oops.Trace(fixed.ErrInvalidScale)
	}

	if v.Decimals > MaxDecimals {
		return nil, oops.Trace(ErrScaleRange)
	}

	i := v.integer()

	z := new(big.Int).Abs(i)
	z.Lsh(z, 1)
	if i.Sign() < 0 {
		z.SetBit(z, 0, 1)
	}

	data = z.Bytes()

	// Bytes of zero is empty; the value always takes at least one byte.
	if len(data) == 0 {
		data = []byte{0}
	}

	scale := big.NewInt(int64(v.Decimals)).Bytes()
	data = append(data, scale...)
	data = append(data, byte(len(scale)))

	return data, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (v *Value) UnmarshalBinary(data []byte) (err error) {
	defer Error.WrapP(&err)

	if len(data) < 2 {
		return oops.Trace(ErrInvalidEncoding)
	}

	trailer := data[len(data)-1]
	if trailer > 3 {
		return oops.Trace(ErrInvalidEncoding)
	}

	size := int(trailer)
	end := len(data) - 1 - size
	if end < 1 {
		return oops.Trace(ErrInvalidEncoding)
	}

	// Only the minimal form MarshalBinary produces is accepted: no leading
	// zero bytes in either field and no negative zero.
	scale := data[end : len(data)-1]
	if size > 0 && scale[0] == 0 {
		return oops.Trace(ErrInvalidEncoding)
	}

	magnitude := data[:end]
	if len(magnitude) > 1 && magnitude[0] == 0 {
		return oops.Trace(ErrInvalidEncoding)
	}

	decimals := 0
	for _, b := range scale {
		decimals = decimals<<8 | int(b)
	}

	i := new(big.Int).SetBytes(magnitude)
	negative := i.Bit(0) == 1
	if negative && i.BitLen() == 1 {
		return oops.Trace(ErrInvalidEncoding)
	}

	i.Rsh(i, 1)
	if negative {
		i.Neg(i)
	}

	v.Int = i
	v.Decimals = decimals

	return nil
}

// Package arith provides the integer capabilities fixed point arithmetic is
// built from.
//
// Ops covers add, subtract, multiply, truncating divide, compare, sign, and
// construction from int64 or a power of ten. Anything implementing it can
// back a fixed.Calculator.
//
// Two implementations are provided:
//
//  Big      *big.Int         default, results are always freshly allocated
//  Decimal  decimal.Decimal  shopspring/decimal values holding integers
//
// Quo truncates toward zero for both implementations and expects a non-zero
// divisor. Callers check the divisor first.
package arith

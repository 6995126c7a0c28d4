// Package fixed multiplies, divides, compares and rescales fixed point
// decimal numbers held in arbitrary precision integers.
//
// A fixed point number is an unscaled integer and a count of decimals:
//
//  number = value / 10^decimals
//
// For example, one token with 6 decimals is 1_000000 and one token with 18
// decimals is 1_000000000000000000. The integer and its decimals are always
// passed separately. Decimals must not be negative.
//
// Rescaling
//
// ConvertScale multiplies by a power of ten when the scale grows (exact) and
// divides by one when it shrinks. Shrinking truncates toward zero and does not
// round.
//
// Rounding
//
// Multiply and Divide round half away from zero at the last requested decimal.
// For non-negative operands this is round half up:
//
//  Multiply: (|A*B| + 5*10^(da+db-out-1)) / 10^(da+db-out)   when da+db > out
//            |A*B| * 10^(out-da-db)                           otherwise
//  Divide:   (|A| * 10^(out+db-da) + |B|/2) / |B|
//
// and the sign of the exact result is then reapplied.
//
// Comparisons
//
// Max, Min and AbsDiff are scale agnostic. Both operands must share a scale.
// Ties return B.
//
// Backends
//
// The package level functions operate on *big.Int. A Calculator can be built
// over any arith.Ops implementation (e.g. shopspring/decimal values with
// arith.Decimal). All operations are pure and never modify their inputs, so
// they are safe for concurrent use.
package fixed

// Package bitnum provides an arbitrary precision unsigned integer stored as an
// explicit sequence of bits.
//
// The value of a number with bits b of length n is:
//
//  value = Σ b[i] * 2^(n-1-i)
//
// Bits are stored most significant first, so appending a zero bit doubles the
// value. For example:
//
//  | 0 | 1 | 2 | 3 |
//  |---------------|
//  | 1 . 0 . 1 . 0 | 10
//  |---------------|
//
// Normalization
//
// Every operation that produces a number returns it in minimal form: leading
// zero bits are removed down to a single bit. Zero is the single bit [0] and
// renders as "0". The zero value of Number is also zero. Because all numbers
// are minimal, Equal compares bits directly.
//
// Construction
//
// FromDecimal builds a number from its decimal digits right to left. Each
// digit is looked up with bit.Digit, scaled by 10^p using Pow and Mul, and
// summed with Add. There is no fast path; construction is exactly as correct
// as the arithmetic.
//
// Complexity
//
// Add is linear in the bit length. Mul is shift and add. Pow multiplies the
// base exponent times, so its running time is proportional to the value of
// the exponent (not its length). Callers accepting untrusted exponents must
// bound them.
//
// Rendering
//
// BitString renders the stored bits as '0' and '1' characters. Decimal (and
// String) renders base 10 digits by repeated division by ten.
package bitnum

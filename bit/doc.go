// Package bit provides the single bit primitives numbers are built from.
//
// Bits are booleans (true is 1, false is 0). Bit sequences are most
// significant bit first, so the sequence for five is:
//
//  | 0 | 1 | 2 |
//  |-----------|
//  | 1 . 0 . 1 |
//  |-----------|
//
// Full Adder
//
//  | lhs | rhs | carry || carry out | sum |
//  |-----|-----|-------||-----------|-----|
//  |  0  |  0  |   0   ||     0     |  0  |
//  |  0  |  0  |   1   ||     0     |  1  |
//  |  0  |  1  |   0   ||     0     |  1  |
//  |  0  |  1  |   1   ||     1     |  0  |
//  |  1  |  0  |   0   ||     0     |  1  |
//  |  1  |  0  |   1   ||     1     |  0  |
//  |  1  |  1  |   0   ||     1     |  0  |
//  |  1  |  1  |   1   ||     1     |  1  |
//
// Full Subtractor
//
//  | lhs | rhs | borrow || borrow out | diff |
//  |-----|-----|--------||------------|------|
//  |  0  |  0  |   0    ||     0      |  0   |
//  |  0  |  0  |   1    ||     1      |  1   |
//  |  0  |  1  |   0    ||     1      |  1   |
//  |  0  |  1  |   1    ||     1      |  0   |
//  |  1  |  0  |   0    ||     0      |  1   |
//  |  1  |  0  |   1    ||     0      |  0   |
//  |  1  |  1  |   0    ||     0      |  0   |
//  |  1  |  1  |   1    ||     1      |  1   |
//
// Digits
//
// Digit maps the characters '0' through '9' to their bit sequences. Zero maps
// to the empty sequence. Digit does no validation; check input with IsDecimal
// first.
package bit

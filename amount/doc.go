// Package amount bundles an unscaled integer with its decimal count.
//
// The fixed package always takes the integer and its decimals separately.
// Value keeps them together for callers holding amounts of mixed scales (e.g.
// a 6 decimal stablecoin and an 18 decimal token).
//
// Encoding
//
// A Value is encoded as the zigzag magnitude of the integer (big-endian, sign
// in the lowest bit), then the decimal count (big-endian, 0 to 3 bytes), then
// one trailer byte holding the number of decimal count bytes:
//
//  | value (zigzag) ... | decimals (0-3 bytes) | trailer |
//
//  | 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 |
//  |-------------------------------|
//  | 0 . 0 . 0 . 0 . 0 . 0 | size  | trailer
//
// Zero is encoded as a single zero byte (not an empty value) so every encoding
// is at least two bytes. Decimals are limited to 2^24 - 1.
//
// Examples
//
//  1.5 (15, 1 decimal):       0b0001_1110 0b0000_0001 0b0000_0001
//  -1 (1, 0 decimals):        0b0000_0011 0b0000_0000
//  0 (0, 18 decimals):        0b0000_0000 0b0001_0010 0b0000_0001
package amount

// Package conv provides checked integer conversions for values that cross
// the engine boundary.
//
// Lengths, offsets and slot counts travel through the ABI as int32. These
// helpers narrow Go ints before the call and panic on overflow, since a
// subject text larger than the ABI can address is a programming error rather
// than a condition the caller can recover from.
package conv

import "math"

// IntToInt32 converts an int to int32.
// Panics if n is outside the int32 range.
//
//go:inline
func IntToInt32(n int) int32 {
	if n < math.MinInt32 || n > math.MaxInt32 {
		panic("integer overflow: int value out of int32 range")
	}
	return int32(n)
}

// LenToInt32 converts a length or offset to int32.
// Panics if n < 0 or n > math.MaxInt32.
//
//go:inline
func LenToInt32(n int) int32 {
	if n < 0 || n > math.MaxInt32 {
		panic("integer overflow: length out of int32 range")
	}
	return int32(n)
}

// Int32ToLen widens an ABI length back to int.
// Negative lengths never denote bytes, so they collapse to zero.
//
//go:inline
func Int32ToLen(n int32) int {
	if n < 0 {
		return 0
	}
	return int(n)
}

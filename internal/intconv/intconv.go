// Package intconv provides safe integer conversion helpers for the suffix
// array engine.
//
// Array entries are decoded from and encoded to fixed-width big-endian
// integers (int32 or int64). These helpers perform bounds checking before
// narrowing so a corpus offset too large for the configured entry width
// fails loudly instead of silently wrapping.
package intconv

import "math"

// IntToInt32 safely converts an int offset to int32.
// Panics if n is outside the int32 range.
func IntToInt32(n int) int32 {
	if n < math.MinInt32 || n > math.MaxInt32 {
		panic("intconv: int value out of int32 range")
	}
	return int32(n)
}

// Int64ToInt safely converts an int64 array entry to int.
// Panics if n cannot be represented by the platform int type.
func Int64ToInt(n int64) int {
	if n < math.MinInt || n > math.MaxInt {
		panic("intconv: int64 value out of int range")
	}
	return int(n)
}

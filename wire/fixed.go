// Package wire implements the Wayland wire protocol: the little-endian,
// 32-bit-word-aligned framing used for every request and event, plus the
// value types (Fixed, String, Array, object/new_id ids) that make up message
// arguments.
package wire

import "math"

// Fixed is a signed 24.8 fixed-point number, the wire representation used
// for sub-pixel precision (pointer motion, surface geometry, etc).
type Fixed int32

// FixedFromInt converts an integer to Fixed. The integer must fit in 24 bits
// of magnitude or the result overflows silently, matching the wire format's
// own range.
func FixedFromInt(i int32) Fixed {
	return Fixed(i << 8)
}

// FixedFromFloat converts a float64 to Fixed, rounding to the nearest
// representable value (ties away from zero, per spec.md §3).
func FixedFromFloat(f float64) Fixed {
	if f >= 0 {
		return Fixed(math.Floor(f*256.0 + 0.5))
	}
	return Fixed(math.Ceil(f*256.0 - 0.5))
}

// Int returns the Fixed value rounded toward negative infinity (an
// arithmetic shift right by 8), so -12.5 yields -13.
func (f Fixed) Int() int32 {
	return int32(f) >> 8
}

// Float returns f as a float64.
func (f Fixed) Float() float64 {
	return float64(f) / 256.0
}

// Float32 returns f as a float32.
func (f Fixed) Float32() float32 {
	return float32(f) / 256.0
}

// Abs returns the absolute value of f.
func (f Fixed) Abs() Fixed {
	if f < 0 {
		return -f
	}
	return f
}

// Add returns f+g. Overflow is not checked, matching plain i32 arithmetic.
func (f Fixed) Add(g Fixed) Fixed { return f + g }

// Sub returns f-g.
func (f Fixed) Sub(g Fixed) Fixed { return f - g }

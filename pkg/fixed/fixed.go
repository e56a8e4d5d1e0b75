// Package fixed provides 16.16 fixed-point numbers and binary angles.
package fixed

import "math"

// Fixed is a 16.16 two's-complement fixed-point number. Arithmetic
// wraps on overflow, like the integer it is stored in.
type Fixed int32

// Fixed constants.
const (
	// One is the fixed-point representation of 1.0.
	One Fixed = 1 << 16
	// Min is the smallest representable value.
	Min Fixed = math.MinInt32
	// Max is the largest representable value.
	Max Fixed = math.MaxInt32
)

// Math constants in fixed-point form.
var (
	Pi = FromFloat(math.Pi)
	E  = FromFloat(math.E)
)

// FromFloat converts a float32 to fixed-point, truncating extra
// fractional precision.
func FromFloat(value float32) Fixed {
	return Fixed(value * 65536)
}

// FromBits reinterprets raw bits as a fixed-point number.
func FromBits(bits uint32) Fixed {
	return Fixed(bits)
}

// Float converts the number back to float32.
func (f Fixed) Float() float32 {
	return float32(f) / 65536
}

// Bits returns the raw bit representation.
func (f Fixed) Bits() uint32 {
	return uint32(f)
}

// Add returns f + other.
func (f Fixed) Add(other Fixed) Fixed {
	return f + other
}

// Sub returns f - other.
func (f Fixed) Sub(other Fixed) Fixed {
	return f - other
}

// Mul returns f * other with the intermediate held in 64 bits.
func (f Fixed) Mul(other Fixed) Fixed {
	return Fixed(int64(f) * int64(other) >> 16)
}

// Div returns f / other. Division by zero panics, as with integers.
func (f Fixed) Div(other Fixed) Fixed {
	return Fixed((int64(f) << 16) / int64(other))
}

// Neg returns -f.
func (f Fixed) Neg() Fixed {
	return -f
}

// Floor returns the number rounded toward negative infinity.
func (f Fixed) Floor() Fixed {
	return f &^ 0xFFFF
}

// Fract returns the non-negative fractional part.
func (f Fixed) Fract() Fixed {
	return f & 0xFFFF
}

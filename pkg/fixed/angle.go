package fixed

import "math"

// Angle is a binary angle in 1/65536 of a turn. It wraps naturally at a
// full turn, so normalization to [0, 2*pi) is implicit in the storage.
type Angle uint16

// quarter-wave sine table, one entry per angle unit in [0, pi/2).
const sineTableSize = 1 << 14

var sineTable [sineTableSize]Fixed

func init() {
	for i := range sineTable {
		sineTable[i] = FromFloat(float32(math.Sin(float64(i) / 65536 * 2 * math.Pi)))
	}
}

// FromRadians converts an angle in radians to a binary angle.
func FromRadians(radians float32) Angle {
	turns := float64(radians) / (2 * math.Pi)
	frac := turns - math.Floor(turns)
	return Angle(frac * 65536)
}

// FromDegrees converts an angle in degrees to a binary angle.
func FromDegrees(degrees float32) Angle {
	return FromRadians(degrees * math.Pi / 180)
}

// Radians returns the angle in radians, in [0, 2*pi).
func (a Angle) Radians() float32 {
	return float32(float64(a) / 65536 * 2 * math.Pi)
}

// Add returns a + other with wrap-around.
func (a Angle) Add(other Angle) Angle {
	return a + other
}

// Sin returns the sine of the angle, looked up from the quarter-wave
// table and mirrored into the other three quadrants.
func (a Angle) Sin() Fixed {
	negative := a&0x8000 != 0
	v := a & 0x7FFF
	if v > 0x3FFF {
		v = 0x7FFF - v
	}

	s := sineTable[v]
	if negative {
		return -s
	}
	return s
}

// Cos returns the cosine of the angle.
func (a Angle) Cos() Fixed {
	return (-a + 0x3FFF).Sin()
}

package fixed

import (
	"math"
	"testing"
)

func TestFromFloat_RoundTrip(t *testing.T) {
	tests := []float32{0, 1, -1, 0.5, -0.5, 3.25, -7.75, 1234.5625}

	for _, v := range tests {
		f := FromFloat(v)
		if got := f.Float(); got != v {
			t.Errorf("FromFloat(%v).Float() = %v", v, got)
		}
	}
}

func TestFixed_Arithmetic(t *testing.T) {
	a := FromFloat(2.5)
	b := FromFloat(-1.25)

	if got := a.Add(b).Float(); got != 1.25 {
		t.Errorf("Add = %v, expected 1.25", got)
	}
	if got := a.Sub(b).Float(); got != 3.75 {
		t.Errorf("Sub = %v, expected 3.75", got)
	}
	if got := a.Mul(b).Float(); got != -3.125 {
		t.Errorf("Mul = %v, expected -3.125", got)
	}
	if got := a.Div(b).Float(); got != -2 {
		t.Errorf("Div = %v, expected -2", got)
	}
	if got := b.Neg().Float(); got != 1.25 {
		t.Errorf("Neg = %v, expected 1.25", got)
	}
}

func TestFixed_FloorFract(t *testing.T) {
	tests := []struct {
		value float32
		floor float32
		fract float32
	}{
		{1.75, 1, 0.75},
		{-1.5, -2, 0.5},
		{3, 3, 0},
	}

	for _, tt := range tests {
		f := FromFloat(tt.value)
		if got := f.Floor().Float(); got != tt.floor {
			t.Errorf("Floor(%v) = %v, expected %v", tt.value, got, tt.floor)
		}
		if got := f.Fract().Float(); got != tt.fract {
			t.Errorf("Fract(%v) = %v, expected %v", tt.value, got, tt.fract)
		}
	}
}

func TestFixed_Bits(t *testing.T) {
	f := FromBits(0x00018000)
	if f.Float() != 1.5 {
		t.Errorf("FromBits = %v, expected 1.5", f.Float())
	}
	if f.Bits() != 0x00018000 {
		t.Errorf("Bits = %#x", f.Bits())
	}
}

func TestAngle_FromRadians_Wraps(t *testing.T) {
	a := FromRadians(math.Pi / 2)
	b := FromRadians(math.Pi/2 + 4*math.Pi)

	if a != b {
		t.Errorf("angles differing by full turns should be equal: %d != %d", a, b)
	}

	neg := FromRadians(-math.Pi / 2)
	if got := neg.Radians(); math.Abs(float64(got)-3*math.Pi/2) > 1e-3 {
		t.Errorf("negative angle normalized to %v, expected 3*pi/2", got)
	}
}

func TestAngle_SinCos(t *testing.T) {
	tests := []struct {
		degrees  float32
		sin, cos float64
	}{
		{0, 0, 1},
		{30, 0.5, math.Sqrt(3) / 2},
		{90, 1, 0},
		{135, math.Sqrt2 / 2, -math.Sqrt2 / 2},
		{180, 0, -1},
		{270, -1, 0},
		{315, -math.Sqrt2 / 2, math.Sqrt2 / 2},
	}

	const tolerance = 1e-3

	for _, tt := range tests {
		a := FromDegrees(tt.degrees)
		if got := float64(a.Sin().Float()); math.Abs(got-tt.sin) > tolerance {
			t.Errorf("Sin(%v deg) = %v, expected %v", tt.degrees, got, tt.sin)
		}
		if got := float64(a.Cos().Float()); math.Abs(got-tt.cos) > tolerance {
			t.Errorf("Cos(%v deg) = %v, expected %v", tt.degrees, got, tt.cos)
		}
	}
}

func TestAngle_Add_Wraps(t *testing.T) {
	a := FromDegrees(350)
	b := FromDegrees(20)

	sum := a.Add(b)
	if got := sum.Radians(); math.Abs(float64(got)-10*math.Pi/180) > 1e-3 {
		t.Errorf("350 + 20 degrees = %v rad, expected 10 degrees", got)
	}
}

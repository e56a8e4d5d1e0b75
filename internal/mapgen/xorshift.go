package mapgen

// Xorshift32 is a tiny deterministic PRNG. The same seed always yields
// the same sequence, which keeps generated maps reproducible.
type Xorshift32 struct {
	state uint32
}

// NewXorshift32 returns a generator seeded with seed. A zero seed is a
// fixed point of the xorshift transform, so it is replaced.
func NewXorshift32(seed uint32) *Xorshift32 {
	if seed == 0 {
		seed = 0x9E3779B9
	}
	return &Xorshift32{state: seed}
}

// Next returns the next value in the sequence.
func (x *Xorshift32) Next() uint32 {
	v := x.state
	v ^= v << 13
	v ^= v >> 17
	v ^= v << 5
	x.state = v
	return v
}

// Float returns a uniform value in [0, 1).
func (x *Xorshift32) Float() float32 {
	return float32(x.Next()>>8) / (1 << 24)
}

// Range returns a uniform value in [lo, hi).
func (x *Xorshift32) Range(lo, hi float32) float32 {
	return lo + x.Float()*(hi-lo)
}

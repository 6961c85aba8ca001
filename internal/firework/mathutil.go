package firework

import "math"

// splitmix64 is a fast, high-quality 64-bit mixer.
func splitmix64(x uint64) uint64 {
	x += 0x9E3779B97F4A7C15
	z := x
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

// hashUnit maps a float seed and a step counter to a deterministic value in [0,1).
// Styles use it where per-frame randomness must not touch the shared RNG.
func hashUnit(seed float64, step int) float64 {
	h := splitmix64(math.Float64bits(seed) ^ uint64(step)*0xC2B2AE3D27D4EB4F)
	return float64(h>>11) * (1.0 / (1 << 53))
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func lerpF(a, b, t float64) float64 {
	return a + (b-a)*t
}

// dragFactor converts a per-frame drag (at 60 Hz) into the factor for dt seconds.
func dragFactor(drag, dt float64) float64 {
	if drag >= 1 || dt <= 0 {
		return 1
	}
	if drag <= 0 {
		return 0
	}
	return math.Pow(drag, dt*ReferenceFPS)
}

// age returns how long the particle has been alive.
func age(p *Particle) float64 {
	return p.MaxLife - p.Life
}

// progress returns life progress in [0,1]; 0 at spawn, 1 at death.
func progress(p *Particle) float64 {
	if p.MaxLife <= 0 {
		return 1
	}
	return clampF(1-p.Life/p.MaxLife, 0, 1)
}

func clampSpeed(p *Particle, maxSpeed float64) {
	sp := math.Hypot(p.VX, p.VY)
	if sp > maxSpeed && sp > 0 {
		k := maxSpeed / sp
		p.VX *= k
		p.VY *= k
	}
}

// Rand drives every random choice an effect makes: spawn angles, colours,
// lifetimes. One Rand belongs to one Effect; seeding it the same way replays
// the same show.
type Rand struct {
	state uint64
}

// NewRand scrambles seed through splitmix64 so nearby seeds (clock ticks,
// small MOUSEFX_SEED values) start far apart.
func NewRand(seed uint64) *Rand {
	s := splitmix64(seed)
	if s == 0 {
		s = 0x9E3779B97F4A7C15
	}
	return &Rand{state: s}
}

// next is xorshift64*.
func (r *Rand) next() uint64 {
	r.state ^= r.state >> 12
	r.state ^= r.state << 25
	r.state ^= r.state >> 27
	return r.state * 2685821657736338717
}

// Range returns an int in [lo, hi]; backs ExplosionContext.RandomInt.
func (r *Rand) Range(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + int(r.next()%uint64(hi-lo+1))
}

func (r *Rand) Float64() float64 {
	return float64(r.next()>>11) / (1 << 53)
}

// RangeF returns a float in [lo, hi).
func (r *Rand) RangeF(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + (hi-lo)*r.Float64()
}

package firework

// Tunables are the global explosion settings shared by every style.
type Tunables struct {
	SpreadAngle     float64 // degrees; >= 360 spaces particles evenly
	Lifespan        float64 // seconds
	MinParticleSize float64
	MaxParticleSize float64

	EnableSecondaryExplosion bool
	SecondaryExplosionForce  float64
	SecondaryExplosionDelay  float64 // seconds after spawn
	SecondaryExplosionCount  int     // secondary bursts per frame at most
	SecondaryParticleCount   int
}

// ExplosionContext is the per-frame parameter bundle handed to styles.
// Randomness and colour policy live here so styles never own a generator.
type ExplosionContext struct {
	RandomFloat func() float64                 // [0,1)
	RandomRange func(min, max float64) float64 // [min,max)
	RandomInt   func(min, max int) int         // [min,max]

	PrimaryColor   func() Color
	SecondaryColor func() Color
	RandomColor    func() Color
	RainbowColor   func(t float64) Color // t wraps at 1

	UseRandomColors bool

	Tunables

	Time      float64 // seconds since the effect started
	DeltaTime float64

	ViewportWidth, ViewportHeight float64
}

// NewExplosionContext binds the RNG and colour policy into a context.
// rng must not be shared with another goroutine.
func NewExplosionContext(rng *Rand, colors ColorPolicy, t Tunables) *ExplosionContext {
	if rng == nil {
		rng = NewRand(1)
	}
	return &ExplosionContext{
		RandomFloat: rng.Float64,
		RandomRange: rng.RangeF,
		RandomInt:   rng.Range,
		PrimaryColor: func() Color {
			return colors.Primary
		},
		SecondaryColor: func() Color {
			return colors.Secondary
		},
		RandomColor: func() Color {
			return hsv(rng.RangeF(0, 360), rng.RangeF(0.65, 1), 1)
		},
		RainbowColor: func(t float64) Color {
			return hsv(t*360, 1, 1)
		},
		UseRandomColors: colors.RandomColors,
		Tunables:        t,
	}
}

// DefaultTunables mirrors DefaultConfig.
func DefaultTunables() Tunables {
	cfg := DefaultConfig()
	return cfg.Tunables()
}

// Advance moves the frame clock forward.
func (c *ExplosionContext) Advance(dt float64) {
	c.DeltaTime = dt
	c.Time += dt
}

package firework

import "math"

// StrobeStyle sparks blink on and off on a jittered schedule.
//
//	Data[0] time left in the current window
//	Data[1] window index
//	Data[2] schedule seed
type StrobeStyle struct {
	base
	strobeRate float64
	dutyCycle  float64
	offAlpha   float64
}

func NewStrobeStyle() *StrobeStyle {
	s := &StrobeStyle{}
	s.init(IDStrobe, s)
	s.bindFloat(&s.strobeRate, ParamSpec{
		Key: "strobeRate", DisplayName: "Strobe Rate",
		Description: "State changes per second",
		Min:         1, Max: 40, Default: 12, Step: 1,
	})
	s.bindFloat(&s.dutyCycle, ParamSpec{
		Key: "dutyCycle", DisplayName: "Duty Cycle",
		Description: "Probability a spark is lit in a given window",
		Min:         0.05, Max: 1, Default: 0.5, Step: 0.05,
	})
	s.bindFloat(&s.offAlpha, ParamSpec{
		Key: "offAlpha", DisplayName: "Off Brightness",
		Description: "Alpha of a spark while dark",
		Min:         0, Max: 0.5, Default: 0.05, Step: 0.01,
	})
	return s
}

func (s *StrobeStyle) ParticleColor(c Color, ctx *ExplosionContext, secondary bool) Color {
	return s.base.ParticleColor(c, ctx, secondary).Lerp(Palette.White, 0.5).Clamp()
}

func (s *StrobeStyle) CustomizeParticle(p *Particle, index, count int, b Burst, ctx *ExplosionContext) {
	p.Data[2] = ctx.RandomFloat() * 1000
	p.Data[1] = 0
	p.Data[0] = s.window(p.Data[2], 0)
}

// window is the length of window n: between half and one and a half mean
// intervals, fixed by the seed.
func (s *StrobeStyle) window(seed float64, n int) float64 {
	return (0.5 + hashUnit(seed, 2*n)) / s.strobeRate
}

// lit reports whether window n is on. The first window always is.
func (s *StrobeStyle) lit(seed float64, n int) bool {
	return n == 0 || hashUnit(seed, 2*n+1) < s.dutyCycle
}

func (s *StrobeStyle) UpdateParticle(p *Particle, ctx *ExplosionContext, dt float64) {
	p.Data[0] -= dt
	for p.Data[0] <= 0 {
		p.Data[1]++
		p.Data[0] += s.window(p.Data[2], int(p.Data[1]))
	}
	if s.lit(p.Data[2], int(p.Data[1])) {
		p.Color.A = 1 - progress(p)*0.5
	} else {
		p.Color.A = s.offAlpha
	}
}

// GlitterStyle is a dense burst of small metallic flakes that shimmer.
//
//	Data[0] shimmer phase
//	Data[1] shimmer speed (rad/s)
//	Data[2] base alpha
type GlitterStyle struct {
	base
	shimmerSpeed float64
	shimmerDepth float64
	metallic     float64
}

func NewGlitterStyle() *GlitterStyle {
	s := &GlitterStyle{}
	s.init(IDGlitter, s)
	s.bindFloat(&s.shimmerSpeed, ParamSpec{
		Key: "shimmerSpeed", DisplayName: "Shimmer Speed",
		Description: "Shimmer in radians per second",
		Min:         1, Max: 40, Default: 14, Step: 1,
	})
	s.bindFloat(&s.shimmerDepth, ParamSpec{
		Key: "shimmerDepth", DisplayName: "Shimmer Depth",
		Description: "How far alpha dips during a shimmer",
		Min:         0, Max: 1, Default: 0.6, Step: 0.05,
	})
	s.bindFloat(&s.metallic, ParamSpec{
		Key: "metallic", DisplayName: "Metallic",
		Description: "Blend toward silver",
		Min:         0, Max: 1, Default: 0.5, Step: 0.05,
	})
	return s
}

func (s *GlitterStyle) ParticleCount(count int, force float64, secondary bool) int {
	return scaleCount(s.base.ParticleCount(count, force, secondary), 1.5)
}

func (s *GlitterStyle) ParticleColor(c Color, ctx *ExplosionContext, secondary bool) Color {
	return s.base.ParticleColor(c, ctx, secondary).Lerp(Palette.Silver, s.metallic).Clamp()
}

func (s *GlitterStyle) ParticleSize(ctx *ExplosionContext, secondary bool) float64 {
	return s.base.ParticleSize(ctx, secondary) * 0.7
}

func (s *GlitterStyle) CustomizeParticle(p *Particle, index, count int, b Burst, ctx *ExplosionContext) {
	p.Data[0] = ctx.RandomFloat() * 2 * math.Pi
	p.Data[1] = s.shimmerSpeed * ctx.RandomRange(0.6, 1.4)
	p.Data[2] = ctx.RandomRange(0.7, 1)
}

func (s *GlitterStyle) UpdateParticle(p *Particle, ctx *ExplosionContext, dt float64) {
	sh := 0.5 + 0.5*math.Sin(p.Data[0]+age(p)*p.Data[1])
	fade := 1 - progress(p)
	p.Color.A = clampF(p.Data[2]*(1-s.shimmerDepth+s.shimmerDepth*sh)*fade, 0, 1)
	d := dragFactor(0.98, dt)
	p.VX *= d
	p.VY *= d
}

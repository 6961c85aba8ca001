package firework

import "math"

// ClassicBurstStyle uses the template defaults unchanged.
type ClassicBurstStyle struct {
	base
}

func NewClassicBurstStyle() *ClassicBurstStyle {
	s := &ClassicBurstStyle{}
	s.init(IDClassicBurst, s)
	return s
}

// SpinnerStyle makes each spark orbit while it flies outward.
//
//	Data[0] angular velocity (rad/s, signed)
//	Data[1] orbit radius (px)
//	Data[2] phase (rad)
type SpinnerStyle struct {
	base
	spinSpeed  float64
	spinRadius float64
}

func NewSpinnerStyle() *SpinnerStyle {
	s := &SpinnerStyle{}
	s.init(IDSpinner, s)
	s.bindFloat(&s.spinSpeed, ParamSpec{
		Key: "spinSpeed", DisplayName: "Spin Speed",
		Description: "Orbital angular velocity in radians per second",
		Min:         0.5, Max: 20, Default: 6, Step: 0.5,
	})
	s.bindFloat(&s.spinRadius, ParamSpec{
		Key: "spinRadius", DisplayName: "Spin Radius",
		Description: "Radius of the orbit each spark traces",
		Min:         2, Max: 150, Default: 24, Step: 1,
	})
	return s
}

func (s *SpinnerStyle) CustomizeParticle(p *Particle, index, count int, b Burst, ctx *ExplosionContext) {
	dir := 1.0
	if ctx.RandomFloat() < 0.5 {
		dir = -1
	}
	p.Data[0] = s.spinSpeed * ctx.RandomRange(0.7, 1.3) * dir
	p.Data[1] = s.spinRadius * ctx.RandomRange(0.5, 1.0)
	p.Data[2] = ctx.RandomFloat() * 2 * math.Pi
}

func (s *SpinnerStyle) UpdateParticle(p *Particle, ctx *ExplosionContext, dt float64) {
	w := p.Data[0]
	a := p.Data[2] + w*ctx.Time
	// Centripetal term of a circle with radius Data[1].
	k := p.Data[1] * w * w * dt
	p.VX -= math.Cos(a) * k
	p.VY -= math.Sin(a) * k
}

// CracklingStyle is a dense, short-lived burst with jittery sparks.
//
//	Data[0] phase seed
//	Data[1] crackle frequency (rad/s)
type CracklingStyle struct {
	base
	particleMultiplier float64
	crackleIntensity   float64
	brightness         float64
}

func NewCracklingStyle() *CracklingStyle {
	s := &CracklingStyle{}
	s.init(IDCrackling, s)
	s.bindFloat(&s.particleMultiplier, ParamSpec{
		Key: "particleMultiplier", DisplayName: "Density",
		Description: "Multiplier on the particle count",
		Min:         1, Max: 10, Default: 2, Step: 0.5,
	})
	s.bindFloat(&s.crackleIntensity, ParamSpec{
		Key: "crackleIntensity", DisplayName: "Crackle",
		Description: "Strength of the per-frame velocity jitter",
		Min:         0, Max: 600, Default: 220, Step: 10,
	})
	s.bindFloat(&s.brightness, ParamSpec{
		Key: "brightness", DisplayName: "Brightness",
		Description: "Colour boost applied to every spark",
		Min:         1, Max: 2, Default: 1.3, Step: 0.05,
	})
	return s
}

func (s *CracklingStyle) ParticleCount(count int, force float64, secondary bool) int {
	return scaleCount(s.base.ParticleCount(count, force, secondary), s.particleMultiplier)
}

func (s *CracklingStyle) ParticleColor(c Color, ctx *ExplosionContext, secondary bool) Color {
	return s.base.ParticleColor(c, ctx, secondary).Scale(s.brightness).Clamp()
}

func (s *CracklingStyle) ParticleSize(ctx *ExplosionContext, secondary bool) float64 {
	return s.base.ParticleSize(ctx, secondary) * 0.6
}

func (s *CracklingStyle) ParticleLifespan(ctx *ExplosionContext, secondary bool) float64 {
	return s.base.ParticleLifespan(ctx, secondary) * 0.6
}

func (s *CracklingStyle) CustomizeParticle(p *Particle, index, count int, b Burst, ctx *ExplosionContext) {
	p.Data[0] = ctx.RandomFloat() * 1000
	p.Data[1] = ctx.RandomRange(20, 40)
}

func (s *CracklingStyle) UpdateParticle(p *Particle, ctx *ExplosionContext, dt float64) {
	t := age(p)
	k := s.crackleIntensity * dt
	p.VX += math.Sin(p.Data[0]*12.9898+t*p.Data[1]) * k
	p.VY += math.Sin(p.Data[0]*78.233+t*p.Data[1]*1.31) * k
	p.Color.A = 0.65 + 0.35*math.Abs(math.Sin(p.Data[0]+t*p.Data[1]*0.5))
}

package firework

import "math"

const (
	PeonyWarm = iota
	PeonyCool
	PeonyRainbow
)

// PeonyStyle spreads stars over a projected Fibonacci sphere and reshades
// them over their life.
//
//	Data[0..2] original R, G, B
type PeonyStyle struct {
	base
	spherePerfection float64
	palette          int
	shadeStrength    float64
}

func NewPeonyStyle() *PeonyStyle {
	s := &PeonyStyle{}
	s.init(IDPeony, s)
	s.bindFloat(&s.spherePerfection, ParamSpec{
		Key: "spherePerfection", DisplayName: "Sphere Perfection",
		Description: "1 is a perfect sphere, 0 is fully random",
		Min:         0, Max: 1, Default: 0.8, Step: 0.05,
	})
	s.bindInt(&s.palette, ParamSpec{
		Key: "palette", DisplayName: "Palette",
		Description: "0 warm, 1 cool, 2 rainbow",
		Min:         PeonyWarm, Max: PeonyRainbow, Default: PeonyWarm,
	})
	s.bindFloat(&s.shadeStrength, ParamSpec{
		Key: "shadeStrength", DisplayName: "Shade Strength",
		Description: "How far stars shift toward the palette by end of life",
		Min:         0, Max: 1, Default: 0.7, Step: 0.05,
	})
	return s
}

func (s *PeonyStyle) CustomizeParticle(p *Particle, index, count int, b Burst, ctx *ExplosionContext) {
	i := float64(index)
	phi := math.Acos(1 - 2*(i+0.5)/float64(count))
	theta := math.Pi * (1 + math.Sqrt(5)) * i
	sx := math.Sin(phi) * math.Cos(theta)
	sy := math.Sin(phi) * math.Sin(theta)

	ra := ctx.RandomFloat() * 2 * math.Pi
	k := s.spherePerfection
	dx := k*sx + (1-k)*math.Cos(ra)
	dy := k*sy + (1-k)*math.Sin(ra)

	speed := math.Hypot(p.VX, p.VY)
	p.VX = dx * speed
	p.VY = dy * speed

	p.Data[0] = p.Color.R
	p.Data[1] = p.Color.G
	p.Data[2] = p.Color.B
}

func (s *PeonyStyle) UpdateParticle(p *Particle, ctx *ExplosionContext, dt float64) {
	t := progress(p)
	var target Color
	switch s.palette {
	case PeonyCool:
		target = Palette.CoolStart.Lerp(Palette.CoolEnd, t)
	case PeonyRainbow:
		target = ctx.RainbowColor(t + p.Data[0]*0.3)
	default:
		target = Palette.WarmStart.Lerp(Palette.WarmEnd, t)
	}
	orig := Color{R: p.Data[0], G: p.Data[1], B: p.Data[2], A: 1}
	c := orig.Lerp(target, t*s.shadeStrength).Clamp()
	c.A = 1 - t*t
	p.Color = c
}

// PalmStyle throws thick arms upward that cascade down like fronds.
//
//	Data[0] arm index
//	Data[1] age
type PalmStyle struct {
	base
	armCount       int
	cascadeGravity float64
	liftFraction   float64
}

func NewPalmStyle() *PalmStyle {
	s := &PalmStyle{}
	s.init(IDPalm, s)
	s.bindInt(&s.armCount, ParamSpec{
		Key: "armCount", DisplayName: "Arms",
		Description: "Number of fronds",
		Min:         3, Max: 12, Default: 6,
	})
	s.bindFloat(&s.cascadeGravity, ParamSpec{
		Key: "cascadeGravity", DisplayName: "Cascade Gravity",
		Description: "Downward acceleration once fronds turn over",
		Min:         0, Max: 800, Default: 260, Step: 10,
	})
	s.bindFloat(&s.liftFraction, ParamSpec{
		Key: "liftFraction", DisplayName: "Lift Phase",
		Description: "Fraction of life spent rising before the cascade",
		Min:         0, Max: 0.9, Default: 0.3, Step: 0.05,
	})
	return s
}

func (s *PalmStyle) ParticleSize(ctx *ExplosionContext, secondary bool) float64 {
	return s.base.ParticleSize(ctx, secondary) * 1.2
}

func (s *PalmStyle) ParticleLifespan(ctx *ExplosionContext, secondary bool) float64 {
	return s.base.ParticleLifespan(ctx, secondary) * 1.4
}

func (s *PalmStyle) CustomizeParticle(p *Particle, index, count int, b Burst, ctx *ExplosionContext) {
	arm := index % s.armCount
	a := -math.Pi/2 + float64(arm)*2*math.Pi/float64(s.armCount) + ctx.RandomRange(-0.08, 0.08)
	speed := b.Force * ctx.RandomRange(0.8, 1.0)
	p.VX = math.Cos(a) * speed
	p.VY = math.Sin(a)*speed - b.Force*0.3
	p.Data[0] = float64(arm)
	p.Data[1] = 0
}

func (s *PalmStyle) UpdateParticle(p *Particle, ctx *ExplosionContext, dt float64) {
	p.Data[1] += dt
	g := s.cascadeGravity
	if progress(p) < s.liftFraction {
		g *= 0.15
	}
	p.VY += g * dt
	// Horizontal speed bleeds off slower than vertical.
	p.VX *= dragFactor(0.99, dt)
	p.VY *= dragFactor(0.96, dt)
}

// PearlsStyle floats round pearls upward that dissolve late in life.
//
//	Data[0] life fraction at which dissolving starts
//	Data[1] original size
type PearlsStyle struct {
	base
	lift float64
	drag float64
}

func NewPearlsStyle() *PearlsStyle {
	s := &PearlsStyle{}
	s.init(IDPearls, s)
	s.bindFloat(&s.lift, ParamSpec{
		Key: "lift", DisplayName: "Lift",
		Description: "Upward acceleration in px/s²",
		Min:         0, Max: 400, Default: 60, Step: 5,
	})
	s.bindFloat(&s.drag, ParamSpec{
		Key: "drag", DisplayName: "Drag",
		Description: "Velocity kept per frame",
		Min:         0.9, Max: 1, Default: 0.995, Step: 0.001,
	})
	return s
}

func (s *PearlsStyle) ParticleCount(count int, force float64, secondary bool) int {
	return scaleCount(s.base.ParticleCount(count, force, secondary), 0.6)
}

func (s *PearlsStyle) ParticleSize(ctx *ExplosionContext, secondary bool) float64 {
	return s.base.ParticleSize(ctx, secondary) * 1.5
}

func (s *PearlsStyle) CustomizeParticle(p *Particle, index, count int, b Burst, ctx *ExplosionContext) {
	p.Data[0] = ctx.RandomRange(0.5, 0.85)
	p.Data[1] = p.Size
}

func (s *PearlsStyle) UpdateParticle(p *Particle, ctx *ExplosionContext, dt float64) {
	p.VY -= s.lift * dt
	d := dragFactor(s.drag, dt)
	p.VX *= d
	p.VY *= d

	t := progress(p)
	if start := p.Data[0]; t >= start && start < 1 {
		k := clampF((t-start)/(1-start), 0, 1)
		p.Size = p.Data[1] * (1 - k)
	}
}

// PistilStyle has a bright, clustered core that accelerates out late, ringed
// by arms of outer stars.
//
//	Data[0] core flag
//	Data[1] core acceleration (px/s²)
//	Data[2] arm index (outer stars)
type PistilStyle struct {
	base
	coreFraction   float64
	armCount       int
	coreBrightness float64
}

func NewPistilStyle() *PistilStyle {
	s := &PistilStyle{}
	s.init(IDPistil, s)
	s.bindFloat(&s.coreFraction, ParamSpec{
		Key: "coreFraction", DisplayName: "Core Fraction",
		Description: "Share of particles forming the core",
		Min:         0.05, Max: 0.8, Default: 0.3, Step: 0.05,
	})
	s.bindInt(&s.armCount, ParamSpec{
		Key: "armCount", DisplayName: "Outer Arms",
		Description: "Number of arms in the outer ring",
		Min:         3, Max: 16, Default: 8,
	})
	s.bindFloat(&s.coreBrightness, ParamSpec{
		Key: "coreBrightness", DisplayName: "Core Brightness",
		Description: "Colour boost of core stars",
		Min:         1, Max: 2, Default: 1.4, Step: 0.05,
	})
	return s
}

func (s *PistilStyle) CustomizeParticle(p *Particle, index, count int, b Burst, ctx *ExplosionContext) {
	coreN := int(float64(count) * s.coreFraction)
	speed := math.Hypot(p.VX, p.VY)
	if index < coreN {
		p.Data[0] = 1
		p.Data[1] = speed * 2.5
		p.VX *= 0.15
		p.VY *= 0.15
		p.Color = p.Color.Scale(s.coreBrightness).Clamp()
		p.Size *= 1.2
		return
	}
	arm := (index - coreN) % s.armCount
	a := float64(arm)*2*math.Pi/float64(s.armCount) + ctx.RandomRange(-0.06, 0.06)
	p.VX = math.Cos(a) * speed
	p.VY = math.Sin(a) * speed
	p.Data[0] = 0
	p.Data[2] = float64(arm)
}

func (s *PistilStyle) UpdateParticle(p *Particle, ctx *ExplosionContext, dt float64) {
	if p.Data[0] < 0.5 {
		d := dragFactor(0.985, dt)
		p.VX *= d
		p.VY *= d
		return
	}
	t := progress(p)
	if t < 0.15 || t > 0.5 {
		return
	}
	sp := math.Hypot(p.VX, p.VY)
	if sp == 0 {
		return
	}
	p.VX += p.VX / sp * p.Data[1] * dt
	p.VY += p.VY / sp * p.Data[1] * dt
}

// BrocadeStyle groups gold stars into wobbling clusters.
//
//	Data[0] cluster index
//	Data[1] wobble phase
//	Data[2] gold-to-amber blend
type BrocadeStyle struct {
	base
	clusterCount int
	wobbleAmount float64
	wobbleSpeed  float64
	droop        float64
}

func NewBrocadeStyle() *BrocadeStyle {
	s := &BrocadeStyle{}
	s.init(IDBrocade, s)
	s.bindInt(&s.clusterCount, ParamSpec{
		Key: "clusterCount", DisplayName: "Clusters",
		Description: "Number of star clusters",
		Min:         2, Max: 16, Default: 6,
	})
	s.bindFloat(&s.wobbleAmount, ParamSpec{
		Key: "wobbleAmount", DisplayName: "Wobble",
		Description: "Cluster wobble acceleration in px/s²",
		Min:         0, Max: 300, Default: 40, Step: 5,
	})
	s.bindFloat(&s.wobbleSpeed, ParamSpec{
		Key: "wobbleSpeed", DisplayName: "Wobble Speed",
		Description: "Wobble angular speed in radians per second",
		Min:         0, Max: 30, Default: 6, Step: 0.5,
	})
	s.bindFloat(&s.droop, ParamSpec{
		Key: "droop", DisplayName: "Droop",
		Description: "Extra downward acceleration in px/s²",
		Min:         0, Max: 300, Default: 50, Step: 5,
	})
	return s
}

// ParticleColor ignores the request colour; Brocade is always gold.
func (s *BrocadeStyle) ParticleColor(c Color, ctx *ExplosionContext, secondary bool) Color {
	return Palette.Gold
}

func (s *BrocadeStyle) CustomizeParticle(p *Particle, index, count int, b Burst, ctx *ExplosionContext) {
	n := max(1, s.clusterCount)
	cl := index % n
	t := 0.0
	if n > 1 {
		t = float64(cl) / float64(n-1)
	}
	p.Data[0] = float64(cl)
	p.Data[1] = float64(cl) * 2 * math.Pi / float64(n)
	p.Data[2] = t
	p.Color = Palette.Gold.Lerp(Palette.Amber, t)
}

func (s *BrocadeStyle) UpdateParticle(p *Particle, ctx *ExplosionContext, dt float64) {
	ph := p.Data[1] + age(p)*s.wobbleSpeed
	p.VX += math.Cos(ph) * s.wobbleAmount * dt
	p.VY += math.Sin(ph)*s.wobbleAmount*dt + s.droop*dt
	t := progress(p)
	p.Color.A = 1 - t*t
}

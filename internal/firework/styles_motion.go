package firework

import "math"

// FishStyle sparks swim: they wiggle sideways to their heading.
//
//	Data[0] phase
//	Data[1] wiggle frequency (rad/s)
//	Data[2] age
type FishStyle struct {
	base
	wiggleAmplitude float64
	wiggleFrequency float64
	swimDrag        float64
}

func NewFishStyle() *FishStyle {
	s := &FishStyle{}
	s.init(IDFish, s)
	s.bindFloat(&s.wiggleAmplitude, ParamSpec{
		Key: "wiggleAmplitude", DisplayName: "Wiggle",
		Description: "Sideways acceleration in px/s²",
		Min:         0, Max: 800, Default: 180, Step: 10,
	})
	s.bindFloat(&s.wiggleFrequency, ParamSpec{
		Key: "wiggleFrequency", DisplayName: "Wiggle Frequency",
		Description: "Tail beats in radians per second",
		Min:         1, Max: 30, Default: 8, Step: 0.5,
	})
	s.bindFloat(&s.swimDrag, ParamSpec{
		Key: "swimDrag", DisplayName: "Water Drag",
		Description: "Velocity kept per frame",
		Min:         0.9, Max: 1, Default: 0.98, Step: 0.005,
	})
	return s
}

func (s *FishStyle) CustomizeParticle(p *Particle, index, count int, b Burst, ctx *ExplosionContext) {
	p.Data[0] = ctx.RandomFloat() * 2 * math.Pi
	p.Data[1] = s.wiggleFrequency * ctx.RandomRange(0.7, 1.3)
	p.Data[2] = 0
}

func (s *FishStyle) UpdateParticle(p *Particle, ctx *ExplosionContext, dt float64) {
	p.Data[2] += dt
	if sp := math.Hypot(p.VX, p.VY); sp > 0 {
		nx, ny := -p.VY/sp, p.VX/sp
		w := math.Sin(p.Data[0]+p.Data[2]*p.Data[1]) * s.wiggleAmplitude * dt
		p.VX += nx * w
		p.VY += ny * w
	}
	d := dragFactor(s.swimDrag, dt)
	p.VX *= d
	p.VY *= d
}

// GreenBeesStyle makes green sparks buzz around the burst origin.
//
//	Data[0] phase
//	Data[1] buzz frequency (rad/s)
//	Data[2] age
type GreenBeesStyle struct {
	base
	buzzStrength   float64
	buzzFrequency  float64
	returnRadius   float64
	returnStrength float64
	maxSpeed       float64
	greenTint      float64
}

func NewGreenBeesStyle() *GreenBeesStyle {
	s := &GreenBeesStyle{}
	s.init(IDGreenBees, s)
	s.bindFloat(&s.buzzStrength, ParamSpec{
		Key: "buzzStrength", DisplayName: "Buzz",
		Description: "Random-walk acceleration in px/s²",
		Min:         0, Max: 1500, Default: 400, Step: 25,
	})
	s.bindFloat(&s.buzzFrequency, ParamSpec{
		Key: "buzzFrequency", DisplayName: "Buzz Frequency",
		Description: "Direction changes in radians per second",
		Min:         1, Max: 60, Default: 25, Step: 1,
	})
	s.bindFloat(&s.returnRadius, ParamSpec{
		Key: "returnRadius", DisplayName: "Swarm Radius",
		Description: "Distance from the origin beyond which bees are pulled back",
		Min:         10, Max: 400, Default: 100, Step: 10,
	})
	s.bindFloat(&s.returnStrength, ParamSpec{
		Key: "returnStrength", DisplayName: "Pull",
		Description: "Pull toward the origin per px of distance",
		Min:         0, Max: 20, Default: 3, Step: 0.5,
	})
	s.bindFloat(&s.maxSpeed, ParamSpec{
		Key: "maxSpeed", DisplayName: "Max Speed",
		Description: "Speed limit in px/s",
		Min:         50, Max: 1000, Default: 300, Step: 10,
	})
	s.bindFloat(&s.greenTint, ParamSpec{
		Key: "greenTint", DisplayName: "Green Tint",
		Description: "Blend toward bee green",
		Min:         0, Max: 1, Default: 0.7, Step: 0.05,
	})
	return s
}

func (s *GreenBeesStyle) ParticleColor(c Color, ctx *ExplosionContext, secondary bool) Color {
	return s.base.ParticleColor(c, ctx, secondary).Lerp(Palette.BeeGreen, s.greenTint).Clamp()
}

func (s *GreenBeesStyle) CustomizeParticle(p *Particle, index, count int, b Burst, ctx *ExplosionContext) {
	p.Data[0] = ctx.RandomFloat() * 2 * math.Pi
	p.Data[1] = s.buzzFrequency * ctx.RandomRange(0.8, 1.2)
	p.Data[2] = 0
}

func (s *GreenBeesStyle) UpdateParticle(p *Particle, ctx *ExplosionContext, dt float64) {
	p.Data[2] += dt
	t := p.Data[2]
	k := s.buzzStrength * dt
	p.VX += math.Sin(p.Data[0]+t*p.Data[1]) * k
	p.VY += math.Cos(p.Data[0]*1.7+t*p.Data[1]*1.3) * k

	dx, dy := p.OriginX-p.X, p.OriginY-p.Y
	if math.Hypot(dx, dy) > s.returnRadius {
		p.VX += dx * s.returnStrength * dt
		p.VY += dy * s.returnStrength * dt
	}
	clampSpeed(p, s.maxSpeed)
}

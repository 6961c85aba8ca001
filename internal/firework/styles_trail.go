package firework

import "math"

// Trail-emitting styles mark their own trail sparks with Data[2] >= 0.5 so
// the sparks never emit trails themselves.

func isTrail(p *Particle) bool { return p.Data[2] >= 0.5 }

// timerSlack absorbs the rounding a timer picks up from summing frame deltas,
// so 60 steps of 1/60 s count as one full second.
const timerSlack = 1e-9

// tick advances *timer by dt and reports whether interval elapsed, keeping
// the remainder so the emission rate does not drift.
func tick(timer *float64, dt, interval float64) bool {
	*timer += dt
	if *timer >= interval-timerSlack {
		*timer -= interval
		return true
	}
	return false
}

// fadeTrail fades a trail spark linearly over its life.
func fadeTrail(p *Particle) {
	p.Color.A = 1 - progress(p)
}

// WillowStyle droops under heavy gravity and leaves golden sparks behind.
//
//	Data[0] trail timer
//	Data[2] trail marker
type WillowStyle struct {
	base
	trailInterval float64
	gravity       float64
	drag          float64
	trailLifespan float64
}

func NewWillowStyle() *WillowStyle {
	s := &WillowStyle{}
	s.init(IDWillow, s)
	s.bindFloat(&s.trailInterval, ParamSpec{
		Key: "trailInterval", DisplayName: "Trail Interval",
		Description: "Seconds between golden sparks per particle",
		Min:         0.01, Max: 0.5, Default: 0.06, Step: 0.01,
	})
	s.bindFloat(&s.gravity, ParamSpec{
		Key: "gravity", DisplayName: "Gravity",
		Description: "Extra downward acceleration in px/s²",
		Min:         0, Max: 600, Default: 140, Step: 10,
	})
	s.bindFloat(&s.drag, ParamSpec{
		Key: "drag", DisplayName: "Drag",
		Description: "Velocity kept per frame",
		Min:         0.8, Max: 1, Default: 0.965, Step: 0.005,
	})
	s.bindFloat(&s.trailLifespan, ParamSpec{
		Key: "trailLifespan", DisplayName: "Trail Lifespan",
		Description: "Lifetime of a golden spark in seconds",
		Min:         0.1, Max: 2, Default: 0.6, Step: 0.05,
	})
	return s
}

func (s *WillowStyle) ParticleColor(c Color, ctx *ExplosionContext, secondary bool) Color {
	return s.base.ParticleColor(c, ctx, secondary).Lerp(Palette.WillowGold, 0.6).Clamp()
}

func (s *WillowStyle) ParticleLifespan(ctx *ExplosionContext, secondary bool) float64 {
	return s.base.ParticleLifespan(ctx, secondary) * 1.8
}

func (s *WillowStyle) UpdateParticle(p *Particle, ctx *ExplosionContext, dt float64) {
	if isTrail(p) {
		p.VY += s.gravity * 0.5 * dt
		fadeTrail(p)
		return
	}
	p.VY += s.gravity * dt
	d := dragFactor(s.drag, dt)
	p.VX *= d
	p.VY *= d
}

func (s *WillowStyle) HasTrailParticles() bool { return true }

func (s *WillowStyle) ShouldSpawnTrail(p *Particle, dt float64) bool {
	if isTrail(p) {
		return false
	}
	return tick(&p.Data[0], dt, s.trailInterval)
}

func (s *WillowStyle) CreateTrailParticle(parent *Particle, ctx *ExplosionContext) Particle {
	sp := trailParticle(parent, ctx, Palette.WillowGold, s.trailLifespan*ctx.RandomRange(0.7, 1.0), 0.05, 6)
	sp.Data[2] = 1
	return sp
}

// ChrysanthemumStyle sheds a rate-limited number of sparks per particle.
//
//	Data[0] trail timer
//	Data[1] sparks spawned so far
//	Data[2] trail marker
type ChrysanthemumStyle struct {
	base
	sparkDensity         float64
	maxSparksPerParticle int
	sparkLifespan        float64
}

func NewChrysanthemumStyle() *ChrysanthemumStyle {
	s := &ChrysanthemumStyle{}
	s.init(IDChrysanthemum, s)
	s.bindFloat(&s.sparkDensity, ParamSpec{
		Key: "sparkDensity", DisplayName: "Spark Density",
		Description: "Sparks per second per particle",
		Min:         1, Max: 30, Default: 5, Step: 1,
	})
	s.bindInt(&s.maxSparksPerParticle, ParamSpec{
		Key: "maxSparksPerParticle", DisplayName: "Max Sparks",
		Description: "Upper bound on sparks shed by one particle",
		Min:         1, Max: 100, Default: 20,
	})
	s.bindFloat(&s.sparkLifespan, ParamSpec{
		Key: "sparkLifespan", DisplayName: "Spark Lifespan",
		Description: "Lifetime of a shed spark in seconds",
		Min:         0.1, Max: 2, Default: 0.5, Step: 0.05,
	})
	return s
}

func (s *ChrysanthemumStyle) UpdateParticle(p *Particle, ctx *ExplosionContext, dt float64) {
	if isTrail(p) {
		fadeTrail(p)
	}
}

func (s *ChrysanthemumStyle) HasTrailParticles() bool { return true }

func (s *ChrysanthemumStyle) ShouldSpawnTrail(p *Particle, dt float64) bool {
	if isTrail(p) || p.Data[1] >= float64(s.maxSparksPerParticle) {
		return false
	}
	if tick(&p.Data[0], dt, 1/s.sparkDensity) {
		p.Data[1]++
		return true
	}
	return false
}

func (s *ChrysanthemumStyle) CreateTrailParticle(parent *Particle, ctx *ExplosionContext) Particle {
	col := parent.Color.Lerp(Palette.White, 0.3).Clamp()
	sp := trailParticle(parent, ctx, col, s.sparkLifespan*ctx.RandomRange(0.6, 1.0), 0.15, 15)
	sp.Data[2] = 1
	return sp
}

// TailStyle streams short, slow sparks behind every unexploded particle.
//
//	Data[0] trail timer
//	Data[2] trail marker
type TailStyle struct {
	base
	trailRate     float64
	trailLifespan float64
}

func NewTailStyle() *TailStyle {
	s := &TailStyle{}
	s.init(IDTail, s)
	s.bindFloat(&s.trailRate, ParamSpec{
		Key: "trailRate", DisplayName: "Trail Rate",
		Description: "Trail sparks per second per particle",
		Min:         5, Max: 120, Default: 30, Step: 5,
	})
	s.bindFloat(&s.trailLifespan, ParamSpec{
		Key: "trailLifespan", DisplayName: "Trail Lifespan",
		Description: "Lifetime of a trail spark in seconds",
		Min:         0.05, Max: 1.5, Default: 0.3, Step: 0.05,
	})
	return s
}

func (s *TailStyle) UpdateParticle(p *Particle, ctx *ExplosionContext, dt float64) {
	if isTrail(p) {
		fadeTrail(p)
	}
}

func (s *TailStyle) HasTrailParticles() bool { return true }

func (s *TailStyle) ShouldSpawnTrail(p *Particle, dt float64) bool {
	return emitAtRate(p, dt, s.trailRate)
}

func (s *TailStyle) CreateTrailParticle(parent *Particle, ctx *ExplosionContext) Particle {
	sp := trailParticle(parent, ctx, parent.Color.Scale(0.7), s.trailLifespan*ctx.RandomRange(0.7, 1.0), 0.05, 8)
	sp.Data[2] = 1
	return sp
}

// emitAtRate advances Data[0] and reports whether an unexploded main
// particle is due a trail spark.
func emitAtRate(p *Particle, dt, rate float64) bool {
	if isTrail(p) || p.HasExploded || rate <= 0 {
		return false
	}
	return tick(&p.Data[0], dt, 1/rate)
}

// CometStyle launches a few large heads with sparkling tails.
//
//	Data[0] trail timer
//	Data[1] sparkle phase
//	Data[2] trail marker
type CometStyle struct {
	base
	trailRate  float64
	headScale  float64
	countScale float64
}

func NewCometStyle() *CometStyle {
	s := &CometStyle{}
	s.init(IDComet, s)
	s.bindFloat(&s.trailRate, ParamSpec{
		Key: "trailRate", DisplayName: "Trail Rate",
		Description: "Tail sparks per second per comet",
		Min:         5, Max: 150, Default: 40, Step: 5,
	})
	s.bindFloat(&s.headScale, ParamSpec{
		Key: "headScale", DisplayName: "Head Size",
		Description: "Size multiplier for comet heads",
		Min:         1, Max: 5, Default: 2.5, Step: 0.1,
	})
	s.bindFloat(&s.countScale, ParamSpec{
		Key: "countScale", DisplayName: "Comet Count",
		Description: "Fraction of the base particle count launched as comets",
		Min:         0.05, Max: 1, Default: 0.25, Step: 0.05,
	})
	return s
}

func (s *CometStyle) ParticleCount(count int, force float64, secondary bool) int {
	return scaleCount(s.base.ParticleCount(count, force, secondary), s.countScale)
}

func (s *CometStyle) ParticleSize(ctx *ExplosionContext, secondary bool) float64 {
	return s.base.ParticleSize(ctx, secondary) * s.headScale
}

func (s *CometStyle) ParticleLifespan(ctx *ExplosionContext, secondary bool) float64 {
	return s.base.ParticleLifespan(ctx, secondary) * 1.3
}

func (s *CometStyle) CustomizeParticle(p *Particle, index, count int, b Burst, ctx *ExplosionContext) {
	p.Data[1] = ctx.RandomFloat() * 2 * math.Pi
}

func (s *CometStyle) UpdateParticle(p *Particle, ctx *ExplosionContext, dt float64) {
	if isTrail(p) {
		fadeTrail(p)
	}
}

func (s *CometStyle) HasTrailParticles() bool { return true }

func (s *CometStyle) ShouldSpawnTrail(p *Particle, dt float64) bool {
	return emitAtRate(p, dt, s.trailRate)
}

func (s *CometStyle) CreateTrailParticle(parent *Particle, ctx *ExplosionContext) Particle {
	col := parent.Color.Lerp(Palette.White, 0.4).Clamp()
	sp := trailParticle(parent, ctx, col, ctx.RandomRange(0.25, 0.5), 0.08, 5)

	// Sparkle offset across the direction of travel.
	if sp2 := math.Hypot(parent.VX, parent.VY); sp2 > 0 {
		nx, ny := -parent.VY/sp2, parent.VX/sp2
		off := math.Sin(parent.Data[1]+age(parent)*18) * parent.Size * 0.6
		sp.X += nx * off
		sp.Y += ny * off
	}
	sp.Size = parent.Size * 0.3
	sp.Data[2] = 1
	return sp
}

package firework

import "math"

// Burst describes one explosion request.
type Burst struct {
	X, Y      float64
	Force     float64 // px/s radial speed before per-particle jitter
	Color     Color
	Count     int // base particle count, before the style adjusts it
	Secondary bool
}

// Hooks are the customisation points of the SpawnExplosion template.
type Hooks interface {
	ParticleCount(base int, force float64, secondary bool) int
	SpreadAngle(ctx *ExplosionContext) float64 // degrees
	ParticleColor(base Color, ctx *ExplosionContext, secondary bool) Color
	ParticleSize(ctx *ExplosionContext, secondary bool) float64
	ParticleLifespan(ctx *ExplosionContext, secondary bool) float64
	CustomizeParticle(p *Particle, index, count int, b Burst, ctx *ExplosionContext)
	OnExplosionComplete(pool *Pool, ctx *ExplosionContext, b Burst)
}

// Style is one firework behaviour family.
type Style interface {
	Hooks

	ID() int
	Name() string

	SpawnExplosion(pool *Pool, ctx *ExplosionContext, b Burst)
	UpdateParticle(p *Particle, ctx *ExplosionContext, dt float64)

	HasTrailParticles() bool
	// ShouldSpawnTrail may advance the particle's own timers.
	ShouldSpawnTrail(p *Particle, dt float64) bool
	// CreateTrailParticle must not modify parent.
	CreateTrailParticle(parent *Particle, ctx *ExplosionContext) Particle

	Parameters() []ParamSpec
	SetParameter(key string, v Value) bool
	GetParameter(key string) (Value, bool)
}

type EventKind uint8

const (
	// EventSplit carries ready-made child particles.
	EventSplit EventKind = iota
	// EventBurst asks the driver for a secondary explosion at X, Y.
	EventBurst
)

// Event is a deferred spawn a style wants the driver to perform.
type Event struct {
	Kind     EventKind
	StyleID  int
	X, Y     float64
	Color    Color
	Force    float64
	Count    int
	Children []Particle
}

// EventSource is implemented by styles whose particles split or burst.
// PendingEvent consumes the pending state it reports, so a second call for
// the same particle returns false.
type EventSource interface {
	PendingEvent(p *Particle, ctx *ExplosionContext) (Event, bool)
}

// SpawnWith runs the shared explosion algorithm against s's hooks.
func SpawnWith(s Style, pool *Pool, ctx *ExplosionContext, b Burst) {
	count := s.ParticleCount(b.Count, b.Force, b.Secondary)
	spread := s.SpreadAngle(ctx)
	spreadRad := spread * math.Pi / 180
	start := ctx.RandomFloat() * 2 * math.Pi

	for i := range count {
		var ang float64
		if spread >= 360 {
			ang = start + float64(i)*2*math.Pi/float64(count)
		} else {
			ang = start + ctx.RandomFloat()*spreadRad
		}
		force := b.Force * (0.5 + ctx.RandomFloat()*0.5)

		col := s.ParticleColor(b.Color, ctx, b.Secondary)
		size := s.ParticleSize(ctx, b.Secondary)
		life := s.ParticleLifespan(ctx, b.Secondary)

		p := Particle{
			X: b.X, Y: b.Y,
			VX: math.Cos(ang) * force, VY: math.Sin(ang) * force,
			Color: col, Size: size,
			Life: life, MaxLife: life,
			CanExplode:  !b.Secondary && ctx.EnableSecondaryExplosion,
			HasExploded: false,
			StyleID:     s.ID(),
			OriginX:     b.X, OriginY: b.Y,
		}
		s.CustomizeParticle(&p, i, count, b, ctx)
		pool.Spawn(p)
	}
	s.OnExplosionComplete(pool, ctx, b)
}

// base supplies the default hooks. Concrete styles embed it and override
// what differs; self routes SpawnExplosion back through the outer type.
type base struct {
	id   int
	name string
	self Style
	params
}

func (b *base) init(id int, self Style) {
	b.id = id
	b.name = styleNames[id]
	b.self = self
}

func (b *base) ID() int      { return b.id }
func (b *base) Name() string { return b.name }

func (b *base) SpawnExplosion(pool *Pool, ctx *ExplosionContext, burst Burst) {
	SpawnWith(b.self, pool, ctx, burst)
}

func (b *base) UpdateParticle(p *Particle, ctx *ExplosionContext, dt float64) {}

func (b *base) HasTrailParticles() bool { return false }

func (b *base) ShouldSpawnTrail(p *Particle, dt float64) bool { return false }

func (b *base) CreateTrailParticle(parent *Particle, ctx *ExplosionContext) Particle {
	return trailParticle(parent, ctx, parent.Color.Scale(0.8), ctx.RandomRange(0.2, 0.4), 0.1, 10)
}

func (b *base) ParticleCount(count int, force float64, secondary bool) int {
	if secondary {
		return max(1, count/2)
	}
	return count
}

func (b *base) SpreadAngle(ctx *ExplosionContext) float64 {
	return ctx.SpreadAngle
}

func (b *base) ParticleColor(c Color, ctx *ExplosionContext, secondary bool) Color {
	if ctx.UseRandomColors && !secondary {
		c = c.Lerp(ctx.SecondaryColor(), ctx.RandomFloat())
	}
	c.R += ctx.RandomRange(-0.1, 0.1)
	c.G += ctx.RandomRange(-0.1, 0.1)
	c.B += ctx.RandomRange(-0.1, 0.1)
	return c.Clamp()
}

func (b *base) ParticleSize(ctx *ExplosionContext, secondary bool) float64 {
	size := ctx.RandomRange(ctx.MinParticleSize, ctx.MaxParticleSize)
	if secondary {
		size *= 0.6
	}
	return size
}

func (b *base) ParticleLifespan(ctx *ExplosionContext, secondary bool) float64 {
	life := ctx.Lifespan * ctx.RandomRange(0.8, 1.2)
	if secondary {
		life *= 0.5
	}
	return life
}

func (b *base) CustomizeParticle(p *Particle, index, count int, burst Burst, ctx *ExplosionContext) {}

func (b *base) OnExplosionComplete(pool *Pool, ctx *ExplosionContext, burst Burst) {}

// trailParticle builds a spark at the parent's position. Trail sparks never
// explode or split.
func trailParticle(parent *Particle, ctx *ExplosionContext, col Color, life, speedFrac, jitter float64) Particle {
	return Particle{
		X: parent.X, Y: parent.Y,
		VX:          parent.VX*speedFrac + ctx.RandomRange(-jitter, jitter),
		VY:          parent.VY*speedFrac + ctx.RandomRange(-jitter, jitter),
		Color:       col,
		Size:        parent.Size * 0.5,
		Life:        life,
		MaxLife:     life,
		CanExplode:  false,
		HasExploded: true,
		StyleID:     parent.StyleID,
		OriginX:     parent.OriginX,
		OriginY:     parent.OriginY,
	}
}

// scaleCount applies a multiplier to the default count.
func scaleCount(n int, k float64) int {
	return max(1, int(float64(n)*k))
}

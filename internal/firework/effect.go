package firework

import (
	"iter"
	"math"
)

// SoundKind classifies the audible moments of an effect.
type SoundKind uint8

const (
	SoundBurst SoundKind = iota
	SoundSecondary
	SoundSplit
)

// Sound is reported to a Sink whenever something audible happens.
type Sound struct {
	Kind      SoundKind
	X, Y      float64
	Intensity float64 // 0..1, scaled by force and particle count
	StyleID   int
}

// Sink receives sounds from the simulation goroutine. It must not block.
type Sink func(Sound)

// Effect drives one firework overlay: triggers, per-frame simulation, trail
// emission, split and burst events, and secondary explosions.
// Not safe for concurrent use.
type Effect struct {
	cfg   Config
	pool  *Pool
	ctx   *ExplosionContext
	reg   *Registry
	style Style

	Sink Sink

	lastX, lastY float64
	travel       float64
	tracking     bool

	trails      []Particle
	events      []Event
	bursts      []Burst
	burstStyles []int
}

// NewEffect builds an effect from cfg. A nil cfg uses DefaultConfig.
// Per-style parameter overrides in cfg are applied to the registry.
func NewEffect(cfg *Config) *Effect {
	if cfg == nil {
		d := DefaultConfig()
		cfg = &d
	}
	e := &Effect{
		cfg: *cfg,
		reg: NewRegistry(),
	}
	e.pool = NewPool(cfg.Capacity)
	e.pool.GY = cfg.Physics.Gravity
	e.pool.Drag = cfg.Physics.Drag
	e.ctx = NewExplosionContext(NewRand(cfg.Seed), cfg.ColorPolicy(), cfg.Tunables())
	e.style = e.reg.ByName(cfg.Style)

	for name, kv := range cfg.Parameters {
		st := e.reg.ByName(name)
		for k, v := range kv {
			st.SetParameter(k, FloatValue(v))
		}
	}
	return e
}

func (e *Effect) Pool() *Pool                { return e.pool }
func (e *Effect) Context() *ExplosionContext { return e.ctx }
func (e *Effect) Registry() *Registry        { return e.reg }
func (e *Effect) Style() Style               { return e.style }

// SetViewport records the host surface size for styles that care.
func (e *Effect) SetViewport(w, h float64) {
	e.ctx.ViewportWidth = w
	e.ctx.ViewportHeight = h
}

// SetStyle switches the style used by future triggers. Live particles keep
// their own style. Unknown names select Classic Burst and report false.
func (e *Effect) SetStyle(name string) bool {
	e.style = e.reg.ByName(name)
	return IsStyleName(name)
}

// SetParameter sets key on the named style.
func (e *Effect) SetParameter(style, key string, v Value) bool {
	if !IsStyleName(style) {
		return false
	}
	return e.reg.ByName(style).SetParameter(key, v)
}

// Reset drops every particle and restarts the clock.
func (e *Effect) Reset() {
	e.pool.Clear()
	e.ctx.Time = 0
	e.ctx.DeltaTime = 0
	e.tracking = false
	e.travel = 0
}

// Trigger spawns a main burst at x, y with the configured force and count.
func (e *Effect) Trigger(x, y float64) {
	col := e.ctx.PrimaryColor()
	if e.ctx.UseRandomColors {
		col = e.ctx.RandomColor()
	}
	b := Burst{
		X: x, Y: y,
		Force: e.cfg.Explosion.Force,
		Color: col,
		Count: e.cfg.Explosion.ParticleCount,
	}
	e.style.SpawnExplosion(e.pool, e.ctx, b)
	e.emit(Sound{Kind: SoundBurst, X: x, Y: y, Intensity: intensity(b), StyleID: e.style.ID()})
}

// Click triggers a burst when click triggering is enabled.
func (e *Effect) Click(x, y float64) bool {
	if !e.cfg.Trigger.OnClick {
		return false
	}
	e.Trigger(x, y)
	return true
}

// Move accumulates cursor travel and triggers a burst each time it exceeds
// the configured distance. It reports whether a burst fired.
func (e *Effect) Move(x, y float64) bool {
	if !e.tracking {
		e.lastX, e.lastY = x, y
		e.tracking = true
		return false
	}
	e.travel += math.Hypot(x-e.lastX, y-e.lastY)
	e.lastX, e.lastY = x, y
	if !e.cfg.Trigger.OnMove || e.cfg.Trigger.MoveDistance <= 0 {
		e.travel = 0
		return false
	}
	if e.travel < e.cfg.Trigger.MoveDistance {
		return false
	}
	e.travel = math.Mod(e.travel, e.cfg.Trigger.MoveDistance)
	e.Trigger(x, y)
	return true
}

// Update advances the simulation by dt seconds.
func (e *Effect) Update(dt float64) {
	if dt < 0 || math.IsNaN(dt) {
		dt = 0
	}
	e.ctx.Advance(dt)
	e.pool.Update(dt, e.updateParticle)
	e.spawnTrails(dt)
	e.pollEvents()
	e.secondaryExplosions()
}

func (e *Effect) updateParticle(p *Particle, dt float64) {
	if st := e.reg.ByID(p.StyleID); st != nil {
		st.UpdateParticle(p, e.ctx, dt)
	}
}

func (e *Effect) spawnTrails(dt float64) {
	e.trails = e.trails[:0]
	for _, p := range e.pool.All() {
		st := e.reg.ByID(p.StyleID)
		if st == nil || !st.HasTrailParticles() || !st.ShouldSpawnTrail(p, dt) {
			continue
		}
		parent := *p
		e.trails = append(e.trails, st.CreateTrailParticle(&parent, e.ctx))
	}
	for _, t := range e.trails {
		if !e.pool.Spawn(t) {
			break
		}
	}
}

func (e *Effect) pollEvents() {
	e.events = e.events[:0]
	for _, p := range e.pool.All() {
		es, ok := e.reg.ByID(p.StyleID).(EventSource)
		if !ok {
			continue
		}
		if ev, ok := es.PendingEvent(p, e.ctx); ok {
			e.events = append(e.events, ev)
		}
	}
	for _, ev := range e.events {
		switch ev.Kind {
		case EventSplit:
			for _, c := range ev.Children {
				e.pool.Spawn(c)
			}
			e.emit(Sound{Kind: SoundSplit, X: ev.X, Y: ev.Y, Intensity: 0.3, StyleID: ev.StyleID})
		case EventBurst:
			st := e.reg.ByID(ev.StyleID)
			if st == nil {
				continue
			}
			b := Burst{X: ev.X, Y: ev.Y, Force: ev.Force, Color: ev.Color, Count: ev.Count, Secondary: true}
			st.SpawnExplosion(e.pool, e.ctx, b)
			e.emit(Sound{Kind: SoundSecondary, X: ev.X, Y: ev.Y, Intensity: intensity(b), StyleID: ev.StyleID})
		}
	}
}

// secondaryExplosions consumes every due explosion-eligible particle. At most
// SecondaryExplosionCount of them produce a burst this frame; the rest are
// spent without one.
func (e *Effect) secondaryExplosions() {
	if !e.ctx.EnableSecondaryExplosion {
		return
	}
	e.bursts = e.bursts[:0]
	e.burstStyles = e.burstStyles[:0]
	for _, p := range e.pool.All() {
		if !p.CanExplode || p.HasExploded || age(p) < e.ctx.SecondaryExplosionDelay {
			continue
		}
		p.CanExplode = false
		p.HasExploded = true
		if len(e.bursts) >= e.ctx.SecondaryExplosionCount {
			continue
		}
		col := p.Color
		col.A = 1
		e.bursts = append(e.bursts, Burst{
			X: p.X, Y: p.Y,
			Force:     e.ctx.SecondaryExplosionForce,
			Color:     col,
			Count:     e.ctx.SecondaryParticleCount,
			Secondary: true,
		})
		e.burstStyles = append(e.burstStyles, p.StyleID)
	}
	for i, b := range e.bursts {
		st := e.reg.ByID(e.burstStyles[i])
		if st == nil {
			continue
		}
		st.SpawnExplosion(e.pool, e.ctx, b)
		e.emit(Sound{Kind: SoundSecondary, X: b.X, Y: b.Y, Intensity: intensity(b), StyleID: st.ID()})
	}
}

func (e *Effect) emit(s Sound) {
	if e.Sink != nil {
		e.Sink(s)
	}
}

// intensity maps a burst to a 0..1 loudness.
func intensity(b Burst) float64 {
	return clampF(b.Force/(2*DefaultForce)*0.6+float64(b.Count)/(4*DefaultParticleCount)*0.4, 0.05, 1)
}

// AppendRenderData flattens live particles for the renderer.
func (e *Effect) AppendRenderData(buf []float32) []float32 {
	return e.pool.AppendRenderData(buf)
}

// Snapshot yields live particles in GPU layout.
func (e *Effect) Snapshot() iter.Seq[GPUParticle] {
	return e.pool.Snapshot()
}

// Live reports the number of live particles.
func (e *Effect) Live() int { return e.pool.Len() }

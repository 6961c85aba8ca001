package firework

// RandomStyle picks a concrete style for every primary burst and routes
// per-particle work back to the style that spawned the particle. Particles
// keep the concrete id, never IDRandom.
type RandomStyle struct {
	base
	reg      *Registry
	concrete []Style
	current  Style
}

func NewRandomStyle(reg *Registry) *RandomStyle {
	s := &RandomStyle{reg: reg}
	s.init(IDRandom, s)
	return s
}

// Current returns the style chosen for the latest primary burst, or nil
// before the first one.
func (s *RandomStyle) Current() Style { return s.current }

func (s *RandomStyle) SpawnExplosion(pool *Pool, ctx *ExplosionContext, b Burst) {
	if s.concrete == nil {
		s.concrete = s.reg.Concrete()
	}
	if !b.Secondary || s.current == nil {
		s.current = s.concrete[ctx.RandomInt(0, len(s.concrete)-1)]
	}
	s.current.SpawnExplosion(pool, ctx, b)
}

// route returns the concrete style for p, or nil if p carries no known id.
func (s *RandomStyle) route(p *Particle) Style {
	st := s.reg.ByID(p.StyleID)
	if st == nil || st.ID() == IDRandom {
		return nil
	}
	return st
}

func (s *RandomStyle) UpdateParticle(p *Particle, ctx *ExplosionContext, dt float64) {
	if st := s.route(p); st != nil {
		st.UpdateParticle(p, ctx, dt)
	}
}

func (s *RandomStyle) HasTrailParticles() bool { return true }

func (s *RandomStyle) ShouldSpawnTrail(p *Particle, dt float64) bool {
	st := s.route(p)
	return st != nil && st.HasTrailParticles() && st.ShouldSpawnTrail(p, dt)
}

func (s *RandomStyle) CreateTrailParticle(parent *Particle, ctx *ExplosionContext) Particle {
	if st := s.route(parent); st != nil {
		return st.CreateTrailParticle(parent, ctx)
	}
	return s.base.CreateTrailParticle(parent, ctx)
}

func (s *RandomStyle) PendingEvent(p *Particle, ctx *ExplosionContext) (Event, bool) {
	if es, ok := s.route(p).(EventSource); ok {
		return es.PendingEvent(p, ctx)
	}
	return Event{}, false
}

package firework

import "iter"

// Particle is one simulated spark. Data holds three style-defined scratch
// values; see the per-style tables in the style files.
type Particle struct {
	X, Y   float64
	VX, VY float64

	Color Color
	Size  float64

	Life    float64 // remaining seconds; <= 0 means dead
	MaxLife float64

	CanExplode  bool
	HasExploded bool

	StyleID int
	Data    [3]float64

	// Burst origin, fixed at spawn.
	OriginX, OriginY float64
}

func (p *Particle) Alive() bool { return p.Life > 0 }

// UpdateHook runs after the generic integration step for each live particle.
type UpdateHook func(p *Particle, dt float64)

// Pool owns all particles of one effect. Capacity is fixed; spawns beyond it
// are dropped.
type Pool struct {
	Max int
	P   []Particle

	// Effect-level physics, applied uniformly before style hooks.
	GX, GY float64
	Drag   float64 // per-frame factor at ReferenceFPS, in (0,1]

	free []int
	live int
}

func NewPool(maxParticles int) *Pool {
	if maxParticles <= 0 {
		maxParticles = MaxParticles
	}
	return &Pool{
		Max:  maxParticles,
		P:    make([]Particle, 0, maxParticles),
		free: make([]int, 0, 64),
		Drag: 1,
	}
}

func (ps *Pool) Capacity() int { return ps.Max }

// Len reports the number of live particles.
func (ps *Pool) Len() int { return ps.live }

func (ps *Pool) Clear() {
	ps.P = ps.P[:0]
	ps.free = ps.free[:0]
	ps.live = 0
}

// Spawn stores p in a dead slot or grows storage. It reports false when the
// pool is full or p is already dead. NaN life counts as dead.
func (ps *Pool) Spawn(p Particle) bool {
	if !(p.Life > 0) {
		return false
	}
	for len(ps.free) > 0 {
		idx := ps.free[len(ps.free)-1]
		ps.free = ps.free[:len(ps.free)-1]
		if idx < len(ps.P) && !ps.P[idx].Alive() {
			ps.P[idx] = p
			ps.live++
			return true
		}
	}
	if len(ps.P) < ps.Max {
		ps.P = append(ps.P, p)
		ps.live++
		return true
	}
	return false
}

// Update ages every live particle, frees the dead ones, integrates gravity,
// drag and velocity, then calls hook.
func (ps *Pool) Update(dt float64, hook UpdateHook) {
	drag := dragFactor(ps.Drag, dt)
	for i := range ps.P {
		p := &ps.P[i]
		if !p.Alive() {
			continue
		}
		p.Life -= dt
		if !(p.Life > 0) {
			ps.kill(i)
			continue
		}

		p.VX += ps.GX * dt
		p.VY += ps.GY * dt
		p.VX *= drag
		p.VY *= drag
		p.X += p.VX * dt
		p.Y += p.VY * dt

		if hook != nil {
			hook(p, dt)
			if !(p.Life > 0) {
				ps.kill(i)
			}
		}
	}
}

func (ps *Pool) kill(i int) {
	ps.P[i].Life = 0
	ps.free = append(ps.free, i)
	ps.live--
}

// All yields live particles with their slot index. Each call starts a fresh
// pass, so it can be ranged over every frame.
func (ps *Pool) All() iter.Seq2[int, *Particle] {
	return func(yield func(int, *Particle) bool) {
		for i := range ps.P {
			if !ps.P[i].Alive() {
				continue
			}
			if !yield(i, &ps.P[i]) {
				return
			}
		}
	}
}

// At returns the particle in slot i, or nil when i is out of range.
func (ps *Pool) At(i int) *Particle {
	if i < 0 || i >= len(ps.P) {
		return nil
	}
	return &ps.P[i]
}

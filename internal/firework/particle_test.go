package firework

import (
	"math"
	"testing"
)

func testContext(seed uint64) *ExplosionContext {
	colors := ColorPolicy{
		Primary:   RGBA(1, 0.5, 0.2, 1),
		Secondary: RGBA(0.2, 0.5, 1, 1),
	}
	return NewExplosionContext(NewRand(seed), colors, DefaultTunables())
}

func testBurst(count int) Burst {
	return Burst{Force: 300, Color: RGBA(1, 0.5, 0.2, 1), Count: count}
}

func TestPool_CapacityInvariant(t *testing.T) {
	pool := NewPool(100)
	ctx := testContext(7)
	style := NewClassicBurstStyle()

	for i := range 20 {
		style.SpawnExplosion(pool, ctx, testBurst(50))
		if pool.Len() > pool.Capacity() {
			t.Fatalf("burst %d: live %d exceeds capacity %d", i, pool.Len(), pool.Capacity())
		}
		if len(pool.P) > pool.Capacity() {
			t.Fatalf("burst %d: storage %d exceeds capacity %d", i, len(pool.P), pool.Capacity())
		}
		pool.Update(0.2, nil)
	}
}

func TestPool_SpawnDropsWhenFull(t *testing.T) {
	pool := NewPool(2)
	p := Particle{Life: 1, MaxLife: 1}
	if !pool.Spawn(p) || !pool.Spawn(p) {
		t.Fatal("spawn into empty slots failed")
	}
	if pool.Spawn(p) {
		t.Error("spawn beyond capacity should report false")
	}
	if pool.Len() != 2 {
		t.Errorf("live %d, want 2", pool.Len())
	}
}

func TestPool_SpawnDeadParticleIsDropped(t *testing.T) {
	pool := NewPool(4)
	if pool.Spawn(Particle{Life: 0, MaxLife: 1}) {
		t.Error("spawning a dead particle should report false")
	}
	if pool.Len() != 0 {
		t.Errorf("live %d, want 0", pool.Len())
	}
}

func TestPool_NaNLifeNeverHoldsASlot(t *testing.T) {
	pool := NewPool(10)
	for range 10 {
		if pool.Spawn(Particle{Life: math.NaN(), MaxLife: 1}) {
			t.Fatal("NaN-life particle was stored")
		}
	}
	if pool.Len() != 0 {
		t.Fatalf("live %d, want 0", pool.Len())
	}

	// A hook that corrupts life frees the slot instead of leaking it.
	for range 10 {
		pool.Spawn(Particle{Life: 1, MaxLife: 1})
	}
	pool.Update(0.1, func(p *Particle, dt float64) { p.Life = math.NaN() })
	if pool.Len() != 0 {
		t.Errorf("live after NaN hook %d, want 0", pool.Len())
	}
	for range 100 {
		pool.Update(0.1, nil)
	}
	for i := range 10 {
		if !pool.Spawn(Particle{Life: 1, MaxLife: 1}) {
			t.Fatalf("spawn %d rejected; pool leaked slots", i)
		}
	}
}

func TestPool_ReusesDeadSlots(t *testing.T) {
	pool := NewPool(3)
	pool.Spawn(Particle{Life: 0.1, MaxLife: 0.1})
	pool.Spawn(Particle{Life: 5, MaxLife: 5})
	pool.Spawn(Particle{Life: 5, MaxLife: 5})
	pool.Update(0.2, nil)
	if pool.Len() != 2 {
		t.Fatalf("live %d after expiry, want 2", pool.Len())
	}
	if !pool.Spawn(Particle{Life: 1, MaxLife: 1, StyleID: 9}) {
		t.Fatal("spawn into freed slot failed")
	}
	if got := pool.At(0).StyleID; got != 9 {
		t.Errorf("slot 0 style %d, want 9 (reused)", got)
	}
	if len(pool.P) != 3 {
		t.Errorf("storage grew to %d, want 3", len(pool.P))
	}
}

func TestPool_LifeMonotonicity(t *testing.T) {
	pool := NewPool(500)
	ctx := testContext(3)
	NewClassicBurstStyle().SpawnExplosion(pool, ctx, testBurst(60))

	const dt = 1.0 / 60
	for frame := range 120 {
		before := make([]float64, len(pool.P))
		for i := range pool.P {
			before[i] = pool.P[i].Life
		}
		pool.Update(dt, nil)
		for i := range pool.P {
			p := &pool.P[i]
			if !p.Alive() {
				continue
			}
			if want := before[i] - dt; p.Life != want {
				t.Fatalf("frame %d slot %d: life %v, want %v", frame, i, p.Life, want)
			}
			if p.Life > p.MaxLife {
				t.Fatalf("frame %d slot %d: life %v exceeds max %v", frame, i, p.Life, p.MaxLife)
			}
		}
	}
}

func TestPool_HookKill(t *testing.T) {
	pool := NewPool(4)
	pool.Spawn(Particle{Life: 1, MaxLife: 1})
	pool.Update(0.01, func(p *Particle, dt float64) { p.Life = 0 })
	if pool.Len() != 0 {
		t.Errorf("live %d, want 0 after hook killed the particle", pool.Len())
	}
}

func TestPool_ZeroDtKeepsVelocity(t *testing.T) {
	pool := NewPool(1)
	pool.GY = DefaultGravity
	pool.Drag = DefaultDrag
	pool.Spawn(Particle{VX: 100, VY: -50, Life: 1, MaxLife: 1})
	pool.Update(0, nil)
	p := pool.At(0)
	if p.VX != 100 || p.VY != -50 {
		t.Errorf("velocity (%v, %v), want (100, -50)", p.VX, p.VY)
	}
}

func TestPool_AllIsRestartable(t *testing.T) {
	pool := NewPool(8)
	for range 5 {
		pool.Spawn(Particle{Life: 1, MaxLife: 1})
	}
	for pass := range 2 {
		n := 0
		for range pool.All() {
			n++
		}
		if n != 5 {
			t.Errorf("pass %d: got %d particles, want 5", pass, n)
		}
	}
}

package firework

import (
	"math"
	"testing"
)

func TestCrossette_SplitBounds(t *testing.T) {
	s := NewCrossetteStyle()
	ctx := testContext(21)
	parent := Particle{
		X: 10, Y: 20, VX: 100, VY: -40,
		Color: RGBA(1, 0.8, 0.6, 1), Size: 4,
		Life: 1, MaxLife: 1.2,
		StyleID: IDCrossette,
		Data:    [3]float64{0.6, 0, 0},
	}
	if !s.ShouldSplit(&parent) {
		t.Fatal("ShouldSplit = false for an eligible particle")
	}
	before := parent
	children := s.SplitParticle(&parent, ctx)
	if parent != before {
		t.Error("SplitParticle modified the parent")
	}
	if len(children) != 4 {
		t.Fatalf("got %d children, want 4", len(children))
	}

	const tol = 30 * math.Pi / 180
	var first float64
	for k, c := range children {
		dx := c.VX - 0.4*parent.VX
		dy := c.VY - 0.4*parent.VY
		if mag := math.Hypot(dx, dy); math.Abs(mag-120) > 1e-9 {
			t.Errorf("child %d: split speed %v, want 120", k, mag)
		}
		a := math.Atan2(dy, dx)
		if k == 0 {
			first = a
		}
		got := math.Mod(a-first+4*math.Pi, 2*math.Pi)
		want := float64(k) * math.Pi / 2
		if math.Abs(got-want) > tol+1e-9 {
			t.Errorf("child %d: arm offset %v rad, want %v ± 30°", k, got, want)
		}
		if c.Data[1] < 0.5 || !c.HasExploded || c.CanExplode {
			t.Errorf("child %d: not marked unsplittable: %+v", k, c)
		}
		if s.ShouldSplit(&c) {
			t.Errorf("child %d: can split again", k)
		}
		if math.Abs(c.Life-0.7) > 1e-12 || math.Abs(c.Size-2.8) > 1e-12 {
			t.Errorf("child %d: life %v size %v, want 0.7 and 2.8", k, c.Life, c.Size)
		}
		if math.Abs(c.Color.R-0.85) > 1e-12 {
			t.Errorf("child %d: red %v, want 0.85", k, c.Color.R)
		}
	}
}

func TestCrossette_ShouldSplit(t *testing.T) {
	s := NewCrossetteStyle()
	tests := []struct {
		name string
		p    Particle
		want bool
	}{
		{"too young", Particle{Life: 1, MaxLife: 1, Data: [3]float64{0.2, 0, 0}}, false},
		{"eligible", Particle{Life: 1, MaxLife: 1, Data: [3]float64{0.5, 0, 0}}, true},
		{"already split", Particle{Life: 1, MaxLife: 1, Data: [3]float64{0.9, 1, 0}}, false},
		{"too little life left", Particle{Life: 0.2, MaxLife: 1, Data: [3]float64{0.9, 0, 0}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.ShouldSplit(&tt.p); got != tt.want {
				t.Errorf("ShouldSplit = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCrossette_PendingEventConsumes(t *testing.T) {
	s := NewCrossetteStyle()
	ctx := testContext(2)
	p := Particle{Life: 1, MaxLife: 1, StyleID: IDCrossette, Data: [3]float64{0.7, 0, 0}}
	ev, ok := s.PendingEvent(&p, ctx)
	if !ok || ev.Kind != EventSplit || len(ev.Children) != 4 {
		t.Fatalf("PendingEvent = %+v, %v; want a split with 4 children", ev, ok)
	}
	if _, ok := s.PendingEvent(&p, ctx); ok {
		t.Error("second PendingEvent should report nothing")
	}
}

func TestChrysanthemum_TrailRateLimit(t *testing.T) {
	tests := []struct {
		name     string
		maxSpark int
		dt       float64
		frames   int
		want     int
	}{
		{"rate bound", 20, 1.0 / 64, 96, 7},
		{"count bound", 3, 1.0 / 64, 128, 3},
		{"60hz one second", 100, 1.0 / 60, 60, 5},
		{"60hz two seconds", 100, 1.0 / 60, 120, 10},
		{"30hz three seconds", 100, 1.0 / 30, 90, 15},
		{"100hz", 100, 0.01, 100, 5},
		{"10hz", 100, 0.1, 20, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewChrysanthemumStyle()
			s.SetParameter("sparkDensity", FloatValue(5))
			s.SetParameter("maxSparksPerParticle", IntValue(tt.maxSpark))
			p := Particle{Life: 10, MaxLife: 10, StyleID: IDChrysanthemum}

			n := 0
			for range tt.frames {
				if s.ShouldSpawnTrail(&p, tt.dt) {
					n++
				}
				if p.Data[1] > float64(tt.maxSpark) {
					t.Fatalf("spark counter %v exceeds %d", p.Data[1], tt.maxSpark)
				}
			}
			if n != tt.want {
				t.Errorf("got %d sparks, want %d", n, tt.want)
			}
		})
	}
}

func TestTrailTimers_FrameRates(t *testing.T) {
	tests := []struct {
		name   string
		id     int
		dt     float64
		frames int
		want   int
	}{
		{"willow 60hz", IDWillow, 1.0 / 60, 60, 16}, // interval 0.06
		{"tail 60hz", IDTail, 1.0 / 60, 60, 30},     // 30 per second
		{"comet 30hz", IDComet, 1.0 / 30, 30, 30},   // 40 per second, at most one per frame
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := NewRegistry().ByID(tt.id)
			p := Particle{Life: 10, MaxLife: 10, StyleID: tt.id}
			n := 0
			for range tt.frames {
				if st.ShouldSpawnTrail(&p, tt.dt) {
					n++
				}
			}
			if n != tt.want {
				t.Errorf("got %d trail sparks, want %d", n, tt.want)
			}
		})
	}
}

func TestTrailStyles_TrailParticles(t *testing.T) {
	reg := NewRegistry()
	ctx := testContext(4)
	for _, id := range []int{IDWillow, IDChrysanthemum, IDTail, IDComet} {
		st := reg.ByID(id)
		t.Run(st.Name(), func(t *testing.T) {
			if !st.HasTrailParticles() {
				t.Fatal("HasTrailParticles = false")
			}
			parent := Particle{X: 5, Y: 6, VX: 50, VY: 10, Color: RGBA(1, 0.4, 0.2, 1), Size: 4, Life: 1, MaxLife: 1, StyleID: id}
			before := parent
			tp := st.CreateTrailParticle(&parent, ctx)
			if parent != before {
				t.Error("CreateTrailParticle modified the parent")
			}
			if tp.CanExplode || !tp.HasExploded {
				t.Errorf("trail flags %v/%v, want false/true", tp.CanExplode, tp.HasExploded)
			}
			if st.ShouldSpawnTrail(&tp, 1) {
				t.Error("trail particle spawned its own trail")
			}
		})
	}
}

func TestRandom_Dispatch(t *testing.T) {
	reg := NewRegistry()
	rnd, ok := reg.ByID(IDRandom).(*RandomStyle)
	if !ok {
		t.Fatalf("registry id %d is %T, want *RandomStyle", IDRandom, reg.ByID(IDRandom))
	}
	ctx := testContext(99)

	for burst := range 25 {
		pool := NewPool(2000)
		rnd.SpawnExplosion(pool, ctx, testBurst(30))
		cur := rnd.Current()
		if cur == nil || cur.ID() == IDRandom {
			t.Fatalf("burst %d: current style %v", burst, cur)
		}
		a := make([]Particle, 0, pool.Len())
		for _, p := range pool.All() {
			if p.StyleID != cur.ID() {
				t.Fatalf("burst %d: particle style %d, want %d", burst, p.StyleID, cur.ID())
			}
			a = append(a, *p)
		}
		b := append([]Particle(nil), a...)

		const dt = 1.0 / 60
		for range 30 {
			ctx.Advance(dt)
			for i := range a {
				rnd.UpdateParticle(&a[i], ctx, dt)
				cur.UpdateParticle(&b[i], ctx, dt)
			}
		}
		for i := range a {
			if a[i] != b[i] {
				t.Fatalf("burst %d particle %d: routed %+v != direct %+v", burst, i, a[i], b[i])
			}
		}
	}
}

func TestRandom_SecondaryKeepsCurrent(t *testing.T) {
	reg := NewRegistry()
	rnd := reg.ByID(IDRandom).(*RandomStyle)
	ctx := testContext(8)
	pool := NewPool(2000)
	rnd.SpawnExplosion(pool, ctx, testBurst(10))
	cur := rnd.Current()
	b := testBurst(10)
	b.Secondary = true
	for range 10 {
		rnd.SpawnExplosion(pool, ctx, b)
		if rnd.Current() != cur {
			t.Fatal("secondary burst changed the current style")
		}
	}
}

func TestPearls_Dissolve(t *testing.T) {
	s := NewPearlsStyle()
	ctx := testContext(1)
	p := Particle{Size: 4, Life: 0.25, MaxLife: 1, Data: [3]float64{0.5, 4, 0}}
	s.UpdateParticle(&p, ctx, 0)
	if math.Abs(p.Size-2) > 1e-12 {
		t.Errorf("size %v at 75%% life with dissolve at 50%%, want 2", p.Size)
	}

	p = Particle{Size: 4, VY: 0, Life: 0.9, MaxLife: 1, Data: [3]float64{0.5, 4, 0}}
	s.UpdateParticle(&p, ctx, 0.1)
	if p.Size != 4 {
		t.Errorf("size %v before dissolve, want 4", p.Size)
	}
	if p.VY >= 0 {
		t.Errorf("vy %v, want upward (negative)", p.VY)
	}
}

func TestGreenBees_SpeedClampAndPull(t *testing.T) {
	s := NewGreenBeesStyle()
	ctx := testContext(1)
	p := Particle{X: 500, Y: 0, VX: 5000, VY: 0, Life: 1, MaxLife: 1}
	s.UpdateParticle(&p, ctx, 1.0/60)
	if sp := math.Hypot(p.VX, p.VY); sp > 300+1e-9 {
		t.Errorf("speed %v, want <= 300", sp)
	}

	p = Particle{X: 500, Y: 0, Life: 1, MaxLife: 1}
	s.SetParameter("buzzStrength", FloatValue(0))
	s.UpdateParticle(&p, ctx, 1.0/60)
	if p.VX >= 0 {
		t.Errorf("vx %v, want pull back toward origin", p.VX)
	}
}

func TestPalm_ArmAssignment(t *testing.T) {
	pool := NewPool(100)
	ctx := testContext(6)
	NewPalmStyle().SpawnExplosion(pool, ctx, testBurst(24))
	for i := range 24 {
		if got := pool.P[i].Data[0]; got != float64(i%6) {
			t.Errorf("particle %d: arm %v, want %d", i, got, i%6)
		}
	}
}

func TestPistil_CoreFraction(t *testing.T) {
	pool := NewPool(100)
	ctx := testContext(6)
	NewPistilStyle().SpawnExplosion(pool, ctx, testBurst(60))
	core := 0
	for _, p := range pool.All() {
		if p.Data[0] >= 0.5 {
			core++
		}
	}
	if core != 18 {
		t.Errorf("core particles %d, want 18", core)
	}
}

func TestStars_BurstEvent(t *testing.T) {
	s := NewStarsStyle()
	ctx := testContext(3)
	p := Particle{Life: 0.5, MaxLife: 1, StyleID: IDStars, Data: [3]float64{0, 0.4, 0}}
	s.UpdateParticle(&p, ctx, 0)
	ev, ok := s.PendingEvent(&p, ctx)
	if !ok || ev.Kind != EventBurst {
		t.Fatalf("PendingEvent = %+v, %v; want a burst", ev, ok)
	}
	if !p.HasExploded {
		t.Error("star not marked exploded after its burst")
	}
	s.UpdateParticle(&p, ctx, 0)
	if _, ok := s.PendingEvent(&p, ctx); ok {
		t.Error("star burst twice")
	}
}

func TestStrobe_Deterministic(t *testing.T) {
	s := NewStrobeStyle()
	ctx := testContext(1)
	a := Particle{Color: RGBA(1, 1, 1, 1), Life: 2, MaxLife: 2, Data: [3]float64{s.window(123.5, 0), 0, 123.5}}
	b := a
	for range 60 {
		a.Life -= 1.0 / 60
		b.Life -= 1.0 / 60
		s.UpdateParticle(&a, ctx, 1.0/60)
		s.UpdateParticle(&b, ctx, 1.0/60)
		if a != b {
			t.Fatal("strobe state diverged for identical particles")
		}
		if !s.lit(a.Data[2], int(a.Data[1])) && a.Color.A != s.offAlpha {
			t.Fatalf("dark strobe alpha %v, want %v", a.Color.A, s.offAlpha)
		}
	}
}

func TestStrobe_JitteredWindows(t *testing.T) {
	s := NewStrobeStyle()
	mean := 1 / s.strobeRate
	for _, seed := range []float64{0.25, 123.5, 871} {
		lo, hi := math.Inf(1), math.Inf(-1)
		for n := range 40 {
			w := s.window(seed, n)
			if w < 0.5*mean || w >= 1.5*mean {
				t.Errorf("seed %v window %d = %v, want in [%v, %v)", seed, n, w, 0.5*mean, 1.5*mean)
			}
			if w != s.window(seed, n) {
				t.Errorf("seed %v window %d not repeatable", seed, n)
			}
			lo, hi = min(lo, w), max(hi, w)
		}
		if hi-lo < 0.25*mean {
			t.Errorf("seed %v: windows span %v, want visible jitter", seed, hi-lo)
		}
	}
	if s.window(0.25, 3) == s.window(871, 3) {
		t.Error("different seeds share a schedule")
	}
}

func TestStrobe_WindowAdvance(t *testing.T) {
	s := NewStrobeStyle()
	ctx := testContext(1)
	const seed = 42.0
	w0, w1 := s.window(seed, 0), s.window(seed, 1)

	tests := []struct {
		name    string
		elapsed float64
		want    int
	}{
		{"inside first window", w0 * 0.5, 0},
		{"just past first", w0 + w1*0.5, 1},
		{"across two windows in one step", w0 + w1 + s.window(seed, 2)*0.5, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Particle{Color: RGBA(1, 1, 1, 1), Life: 1, MaxLife: 2, Data: [3]float64{w0, 0, seed}}
			s.UpdateParticle(&p, ctx, tt.elapsed)
			if got := int(p.Data[1]); got != tt.want {
				t.Errorf("window = %d, want %d", got, tt.want)
			}
			if p.Data[0] <= 0 {
				t.Errorf("time left %v, want > 0", p.Data[0])
			}
			wantA := s.offAlpha
			if s.lit(seed, tt.want) {
				wantA = 0.75
			}
			if p.Color.A != wantA {
				t.Errorf("alpha = %v, want %v", p.Color.A, wantA)
			}
		})
	}
}

func TestPeony_StoresOriginalColor(t *testing.T) {
	pool := NewPool(100)
	ctx := testContext(12)
	NewPeonyStyle().SpawnExplosion(pool, ctx, testBurst(30))
	for i, p := range pool.All() {
		if p.Data[0] != p.Color.R || p.Data[1] != p.Color.G || p.Data[2] != p.Color.B {
			t.Errorf("particle %d: data %v does not hold colour %+v", i, p.Data, p.Color)
		}
	}
}

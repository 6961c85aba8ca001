package firework

import (
	"encoding/binary"
	"math"
	"testing"
)

func testEffect(t *testing.T, style string, mutate func(*Config)) (*Effect, *[]Sound) {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Style = style
	cfg.Seed = 1234
	if mutate != nil {
		mutate(&cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("config: %v", err)
	}
	e := NewEffect(&cfg)
	sounds := &[]Sound{}
	e.Sink = func(s Sound) { *sounds = append(*sounds, s) }
	return e, sounds
}

func countKind(sounds []Sound, k SoundKind) int {
	n := 0
	for _, s := range sounds {
		if s.Kind == k {
			n++
		}
	}
	return n
}

func TestEffect_Click(t *testing.T) {
	e, sounds := testEffect(t, "Classic Burst", nil)
	if !e.Click(100, 100) {
		t.Fatal("Click did not trigger")
	}
	if e.Live() != DefaultParticleCount {
		t.Errorf("live %d, want %d", e.Live(), DefaultParticleCount)
	}
	if countKind(*sounds, SoundBurst) != 1 {
		t.Errorf("sounds %+v, want one burst", *sounds)
	}

	e, _ = testEffect(t, "Classic Burst", func(c *Config) { c.Trigger.OnClick = false })
	if e.Click(1, 1) || e.Live() != 0 {
		t.Error("Click triggered with click triggering disabled")
	}
}

func TestEffect_MoveDistance(t *testing.T) {
	e, _ := testEffect(t, "Classic Burst", func(c *Config) {
		c.Trigger.OnMove = true
		c.Trigger.MoveDistance = 100
	})
	steps := []struct {
		x, y float64
		want bool
	}{
		{0, 0, false},
		{50, 0, false},
		{90, 0, false},
		{130, 0, true},
		{160, 0, false},
		{230, 0, true},
	}
	for i, s := range steps {
		if got := e.Move(s.x, s.y); got != s.want {
			t.Errorf("step %d Move(%v, %v) = %v, want %v", i, s.x, s.y, got, s.want)
		}
	}
	if e.Live() != 2*DefaultParticleCount {
		t.Errorf("live %d, want %d", e.Live(), 2*DefaultParticleCount)
	}
}

func TestEffect_MoveDisabled(t *testing.T) {
	e, _ := testEffect(t, "Classic Burst", nil)
	for x := 0.0; x < 2000; x += 50 {
		if e.Move(x, 0) {
			t.Fatal("Move triggered with move triggering disabled")
		}
	}
}

func TestEffect_TrailFlow(t *testing.T) {
	e, _ := testEffect(t, "Tail", nil)
	e.Trigger(0, 0)
	e.Update(0.05)
	if e.Live() != 2*DefaultParticleCount {
		t.Fatalf("live %d after one frame, want %d", e.Live(), 2*DefaultParticleCount)
	}
	trails := 0
	for _, p := range e.Pool().All() {
		if isTrail(p) {
			trails++
			if p.CanExplode || !p.HasExploded {
				t.Errorf("trail particle flags %v/%v", p.CanExplode, p.HasExploded)
			}
		}
	}
	if trails != DefaultParticleCount {
		t.Errorf("trail particles %d, want %d", trails, DefaultParticleCount)
	}
}

func TestEffect_CrossetteSplitFlow(t *testing.T) {
	e, sounds := testEffect(t, "Crossette", nil)
	e.Trigger(0, 0)
	for range 6 {
		e.Update(0.1)
	}
	if got := countKind(*sounds, SoundSplit); got != DefaultParticleCount {
		t.Errorf("split events %d, want %d", got, DefaultParticleCount)
	}
	if want := DefaultParticleCount * 5; e.Live() != want {
		t.Errorf("live %d, want %d", e.Live(), want)
	}
	e.Update(0.1)
	if got := countKind(*sounds, SoundSplit); got != DefaultParticleCount {
		t.Errorf("children split again: %d split events", got)
	}
}

func TestEffect_SecondaryExplosions(t *testing.T) {
	e, sounds := testEffect(t, "Classic Burst", func(c *Config) {
		c.Secondary.Enabled = true
		c.Secondary.Count = 3
		c.Secondary.ParticleCount = 20
	})
	e.Trigger(0, 0)
	e.Update(0.5)

	if got := countKind(*sounds, SoundSecondary); got != 3 {
		t.Errorf("secondary bursts %d, want 3", got)
	}
	if want := DefaultParticleCount + 3*10; e.Live() != want {
		t.Errorf("live %d, want %d", e.Live(), want)
	}
	for i, p := range e.Pool().All() {
		if p.CanExplode {
			t.Errorf("particle %d still eligible after the secondary pass", i)
		}
	}

	e.Update(0.01)
	if got := countKind(*sounds, SoundSecondary); got != 3 {
		t.Errorf("secondary bursts %d after another frame, want 3", got)
	}
}

func TestEffect_StarsBurstFlow(t *testing.T) {
	e, sounds := testEffect(t, "Stars", nil)
	st := e.Registry().ByID(IDStars)
	st.SetParameter("burstChance", FloatValue(1))
	st.SetParameter("risingChance", FloatValue(0))
	e.Trigger(0, 0)
	for range 40 {
		e.Update(0.05)
	}
	if got := countKind(*sounds, SoundSecondary); got != DefaultParticleCount {
		t.Errorf("star bursts %d, want %d", got, DefaultParticleCount)
	}
}

func TestEffect_StarsBurstWithSecondaries(t *testing.T) {
	tests := []struct {
		name        string
		burstChance float64
		wantExact   bool
	}{
		{"every star bursts", 1, true},
		{"generic secondaries still fire", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, sounds := testEffect(t, "Stars", func(c *Config) {
				c.Secondary.Enabled = true
			})
			st := e.Registry().ByID(IDStars)
			st.SetParameter("burstChance", FloatValue(tt.burstChance))
			st.SetParameter("risingChance", FloatValue(0))
			e.Trigger(0, 0)
			for range 200 {
				e.Update(1.0 / 60)
			}
			got := countKind(*sounds, SoundSecondary)
			if tt.wantExact && got != DefaultParticleCount {
				t.Errorf("secondary sounds %d, want %d", got, DefaultParticleCount)
			}
			if !tt.wantExact && got == 0 {
				t.Error("no generic secondary explosions")
			}
		})
	}
}

func TestEffect_RandomStyleRoutesPerParticle(t *testing.T) {
	e, _ := testEffect(t, "Random", nil)
	for i := range 10 {
		e.Trigger(float64(i*10), 0)
		e.Update(1.0 / 60)
	}
	for i, p := range e.Pool().All() {
		if p.StyleID == IDRandom || p.StyleID < 0 || p.StyleID >= StyleCount {
			t.Fatalf("particle %d carries style id %d", i, p.StyleID)
		}
	}
}

func TestEffect_ColorsStayClamped(t *testing.T) {
	for _, name := range AvailableStyles() {
		t.Run(name, func(t *testing.T) {
			e, _ := testEffect(t, name, func(c *Config) {
				c.Colors.Random = true
				c.Secondary.Enabled = true
			})
			e.Trigger(0, 0)
			for range 90 {
				e.Update(1.0 / 60)
				for i, p := range e.Pool().All() {
					assertClamped(t, i, p.Color)
				}
			}
		})
	}
}

func TestEffect_CapacityUnderLoad(t *testing.T) {
	e, _ := testEffect(t, "Chrysanthemum", func(c *Config) {
		c.Capacity = 500
		c.Secondary.Enabled = true
	})
	for i := range 100 {
		e.Trigger(float64(i), 0)
		e.Update(1.0 / 30)
		if e.Live() > 500 {
			t.Fatalf("frame %d: live %d exceeds capacity", i, e.Live())
		}
	}
}

func TestEffect_StyleAndParameters(t *testing.T) {
	e, _ := testEffect(t, "Classic Burst", func(c *Config) {
		c.Parameters = map[string]map[string]float64{
			"Crackling": {"particleMultiplier": 3},
		}
	})
	v, _ := e.Registry().ByName("crackling").GetParameter("particleMultiplier")
	if v.Float() != 3 {
		t.Errorf("config override = %v, want 3", v)
	}

	if e.SetStyle("Sparkler") {
		t.Error("SetStyle of an unknown name reported true")
	}
	if e.Style().ID() != IDClassicBurst {
		t.Errorf("fallback style %d, want classic", e.Style().ID())
	}
	if !e.SetStyle("Pearls") || e.Style().ID() != IDPearls {
		t.Error("SetStyle(Pearls) failed")
	}

	if !e.SetParameter("Spinner", "spinSpeed", FloatValue(3)) {
		t.Error("SetParameter(Spinner.spinSpeed) failed")
	}
	if e.SetParameter("Sparkler", "spinSpeed", FloatValue(3)) {
		t.Error("SetParameter on an unknown style reported true")
	}
}

func TestEffect_Reset(t *testing.T) {
	e, _ := testEffect(t, "Classic Burst", nil)
	e.Trigger(0, 0)
	e.Update(0.1)
	e.Reset()
	if e.Live() != 0 || e.Context().Time != 0 {
		t.Errorf("after Reset: live %d, time %v", e.Live(), e.Context().Time)
	}
}

func TestRenderData_Layout(t *testing.T) {
	pool := NewPool(4)
	pool.Spawn(Particle{
		X: 1, Y: 2, VX: 3, VY: 4,
		Color: RGBA(0.5, 0.25, 0.125, 1), Size: 6,
		Life: 0.5, MaxLife: 1, StyleID: IDComet,
		Data: [3]float64{7, 8, 9},
	})
	pool.Spawn(Particle{X: 10, Life: 1, MaxLife: 1})

	buf := pool.AppendRenderData(nil)
	if len(buf) != 2*GPUParticleFloats {
		t.Fatalf("len %d, want %d", len(buf), 2*GPUParticleFloats)
	}
	want := []float32{1, 2, 3, 4, 0.5, 0.25, 0.125, 1, 6, 0.5, 1, IDComet, 7, 8, 9, 0}
	for i, w := range want {
		if buf[i] != w {
			t.Errorf("float %d = %v, want %v", i, buf[i], w)
		}
	}
	if buf[GPUParticleFloats] != 10 {
		t.Errorf("second record x = %v, want 10", buf[GPUParticleFloats])
	}

	buf = pool.AppendRenderData(buf)
	if len(buf) != 2*GPUParticleFloats {
		t.Errorf("reused buffer len %d, want %d", len(buf), 2*GPUParticleFloats)
	}

	for g := range pool.Snapshot() {
		raw := g.Marshal()
		if len(raw) != GPUParticleFloats*4 {
			t.Fatalf("marshal len %d", len(raw))
		}
		if x := math.Float32frombits(binary.LittleEndian.Uint32(raw)); x != g.X {
			t.Errorf("marshalled x %v, want %v", x, g.X)
		}
		break
	}
}

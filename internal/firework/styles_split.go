package firework

import "math"

// CrossetteStyle stars split into a cross of smaller stars after a delay.
//
//	Data[0] age timer
//	Data[1] split flag (>= 0.5 once split; children start split)
type CrossetteStyle struct {
	base
	splitDelay float64
	splitCount int
	splitForce float64
}

const crossetteJitter = 15 * math.Pi / 180

func NewCrossetteStyle() *CrossetteStyle {
	s := &CrossetteStyle{}
	s.init(IDCrossette, s)
	s.bindFloat(&s.splitDelay, ParamSpec{
		Key: "splitDelay", DisplayName: "Split Delay",
		Description: "Seconds before a star splits",
		Min:         0.05, Max: 3, Default: 0.5, Step: 0.05,
	})
	s.bindInt(&s.splitCount, ParamSpec{
		Key: "splitCount", DisplayName: "Split Count",
		Description: "Child stars produced by each split",
		Min:         2, Max: 8, Default: 4,
	})
	s.bindFloat(&s.splitForce, ParamSpec{
		Key: "splitForce", DisplayName: "Split Force",
		Description: "Speed added to each child along its arm",
		Min:         10, Max: 500, Default: 120, Step: 10,
	})
	return s
}

func (s *CrossetteStyle) UpdateParticle(p *Particle, ctx *ExplosionContext, dt float64) {
	p.Data[0] += dt
}

// ShouldSplit reports whether p is due to split: not yet split, old enough,
// and with more than 30% of its life left.
func (s *CrossetteStyle) ShouldSplit(p *Particle) bool {
	return p.Data[1] < 0.5 && p.Data[0] >= s.splitDelay && p.Life > 0.3*p.MaxLife
}

// SplitParticle builds the children of parent without modifying it.
func (s *CrossetteStyle) SplitParticle(parent *Particle, ctx *ExplosionContext) []Particle {
	n := s.splitCount
	start := ctx.RandomFloat() * 2 * math.Pi
	life := parent.Life * 0.7
	col := parent.Color.Scale(0.85)

	children := make([]Particle, 0, n)
	for k := range n {
		a := start + float64(k)*2*math.Pi/float64(n) + ctx.RandomRange(-crossetteJitter, crossetteJitter)
		children = append(children, Particle{
			X: parent.X, Y: parent.Y,
			VX:          parent.VX*0.4 + math.Cos(a)*s.splitForce,
			VY:          parent.VY*0.4 + math.Sin(a)*s.splitForce,
			Color:       col,
			Size:        parent.Size * 0.7,
			Life:        life,
			MaxLife:     life,
			CanExplode:  false,
			HasExploded: true,
			StyleID:     parent.StyleID,
			Data:        [3]float64{0, 1, 0},
			OriginX:     parent.OriginX,
			OriginY:     parent.OriginY,
		})
	}
	return children
}

func (s *CrossetteStyle) PendingEvent(p *Particle, ctx *ExplosionContext) (Event, bool) {
	if !s.ShouldSplit(p) {
		return Event{}, false
	}
	children := s.SplitParticle(p, ctx)
	p.Data[1] = 1
	p.HasExploded = true
	p.CanExplode = false
	return Event{
		Kind:     EventSplit,
		StyleID:  p.StyleID,
		X:        p.X,
		Y:        p.Y,
		Color:    p.Color,
		Children: children,
	}, true
}

// StarsStyle mixes rising stars with stars that burst once mid-flight.
//
//	Data[0] rising flag
//	Data[1] life fraction at which the star bursts (< 0: never)
//	Data[2] burst pending flag
type StarsStyle struct {
	base
	risingChance float64
	risingLift   float64
	burstChance  float64
	burstCount   int
	burstForce   float64
}

func NewStarsStyle() *StarsStyle {
	s := &StarsStyle{}
	s.init(IDStars, s)
	s.bindFloat(&s.risingChance, ParamSpec{
		Key: "risingChance", DisplayName: "Rising Stars",
		Description: "Probability that a star floats upward",
		Min:         0, Max: 1, Default: 0.3, Step: 0.05,
	})
	s.bindFloat(&s.risingLift, ParamSpec{
		Key: "risingLift", DisplayName: "Lift",
		Description: "Upward acceleration of rising stars in px/s²",
		Min:         0, Max: 400, Default: 220, Step: 10,
	})
	s.bindFloat(&s.burstChance, ParamSpec{
		Key: "burstChance", DisplayName: "Burst Chance",
		Description: "Probability that a star bursts once",
		Min:         0, Max: 1, Default: 0.25, Step: 0.05,
	})
	s.bindInt(&s.burstCount, ParamSpec{
		Key: "burstCount", DisplayName: "Burst Size",
		Description: "Base particle count of a star burst",
		Min:         2, Max: 60, Default: 12,
	})
	s.bindFloat(&s.burstForce, ParamSpec{
		Key: "burstForce", DisplayName: "Burst Force",
		Description: "Force of a star burst",
		Min:         10, Max: 400, Default: 90, Step: 10,
	})
	return s
}

func (s *StarsStyle) CustomizeParticle(p *Particle, index, count int, b Burst, ctx *ExplosionContext) {
	p.Data[0] = 0
	if ctx.RandomFloat() < s.risingChance {
		p.Data[0] = 1
	}
	p.Data[1] = -1
	if !b.Secondary && ctx.RandomFloat() < s.burstChance {
		p.Data[1] = ctx.RandomRange(0.3, 0.7)
		// The scheduled burst is this star's secondary explosion.
		p.CanExplode = false
	}
	p.Data[2] = 0
}

func (s *StarsStyle) UpdateParticle(p *Particle, ctx *ExplosionContext, dt float64) {
	if p.Data[0] >= 0.5 {
		p.VY -= s.risingLift * dt
	}
	if p.Data[1] >= 0 && !p.HasExploded && p.Data[2] < 0.5 && progress(p) >= p.Data[1] {
		p.Data[2] = 1
	}
}

func (s *StarsStyle) PendingEvent(p *Particle, ctx *ExplosionContext) (Event, bool) {
	if p.Data[2] < 0.5 || p.HasExploded {
		return Event{}, false
	}
	p.Data[2] = 0
	p.HasExploded = true
	p.CanExplode = false
	return Event{
		Kind:    EventBurst,
		StyleID: p.StyleID,
		X:       p.X,
		Y:       p.Y,
		Color:   p.Color,
		Force:   s.burstForce,
		Count:   s.burstCount,
	}, true
}

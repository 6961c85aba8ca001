package firework

import "strings"

// Style ids. They are stable: particles carry them in StyleID and the GPU
// snapshot passes them to shaders.
const (
	IDClassicBurst = iota
	IDSpinner
	IDWillow
	IDCrackling
	IDChrysanthemum
	IDRandom
	IDCrossette
	IDPeony
	IDPalm
	IDPearls
	IDTail
	IDComet
	IDPistil
	IDStars
	IDBrocade
	IDFish
	IDGreenBees
	IDStrobe
	IDGlitter

	StyleCount
)

// styleNames is indexed by style id.
var styleNames = [StyleCount]string{
	IDClassicBurst:  "Classic Burst",
	IDSpinner:       "Spinner",
	IDWillow:        "Willow",
	IDCrackling:     "Crackling",
	IDChrysanthemum: "Chrysanthemum",
	IDRandom:        "Random",
	IDCrossette:     "Crossette",
	IDPeony:         "Peony",
	IDPalm:          "Palm",
	IDPearls:        "Pearls",
	IDTail:          "Tail",
	IDComet:         "Comet",
	IDPistil:        "Pistil",
	IDStars:         "Stars",
	IDBrocade:       "Brocade",
	IDFish:          "Fish",
	IDGreenBees:     "Green Bees",
	IDStrobe:        "Strobe",
	IDGlitter:       "Glitter",
}

// concreteCtors builds every style except Random, which needs a registry.
var concreteCtors = []func() Style{
	func() Style { return NewClassicBurstStyle() },
	func() Style { return NewSpinnerStyle() },
	func() Style { return NewWillowStyle() },
	func() Style { return NewCracklingStyle() },
	func() Style { return NewChrysanthemumStyle() },
	func() Style { return NewCrossetteStyle() },
	func() Style { return NewPeonyStyle() },
	func() Style { return NewPalmStyle() },
	func() Style { return NewPearlsStyle() },
	func() Style { return NewTailStyle() },
	func() Style { return NewCometStyle() },
	func() Style { return NewPistilStyle() },
	func() Style { return NewStarsStyle() },
	func() Style { return NewBrocadeStyle() },
	func() Style { return NewFishStyle() },
	func() Style { return NewGreenBeesStyle() },
	func() Style { return NewStrobeStyle() },
	func() Style { return NewGlitterStyle() },
}

// AvailableStyles lists every style name, Random included, in id order.
func AvailableStyles() []string {
	out := make([]string, len(styleNames))
	copy(out, styleNames[:])
	return out
}

// Create returns a fresh style by name. Unknown names fall back to Classic Burst.
func Create(name string) Style {
	if strings.EqualFold(name, styleNames[IDRandom]) {
		return NewRegistry().ByID(IDRandom)
	}
	for _, ctor := range concreteCtors {
		if s := ctor(); strings.EqualFold(s.Name(), name) {
			return s
		}
	}
	return NewClassicBurstStyle()
}

// Registry holds one shared instance per style id.
type Registry struct {
	byID []Style
}

// NewRegistry instantiates every style, Random included, indexed by ID().
func NewRegistry() *Registry {
	r := &Registry{byID: make([]Style, StyleCount)}
	for _, ctor := range concreteCtors {
		s := ctor()
		r.byID[s.ID()] = s
	}
	r.byID[IDRandom] = NewRandomStyle(r)
	return r
}

// ByID returns the style for id, or nil when no style has that id.
func (r *Registry) ByID(id int) Style {
	if id < 0 || id >= len(r.byID) {
		return nil
	}
	return r.byID[id]
}

// ByName looks a style up case-insensitively; unknown names give Classic Burst.
func (r *Registry) ByName(name string) Style {
	for _, s := range r.byID {
		if s != nil && strings.EqualFold(s.Name(), name) {
			return s
		}
	}
	return r.byID[IDClassicBurst]
}

// Concrete returns every style except Random, in id order.
func (r *Registry) Concrete() []Style {
	out := make([]Style, 0, len(r.byID)-1)
	for _, s := range r.byID {
		if s == nil || s.ID() == IDRandom {
			continue
		}
		out = append(out, s)
	}
	return out
}

// NextStyle returns the style name step places after name in id order,
// wrapping at either end. Unknown names count as Classic Burst.
func NextStyle(name string, step int) string {
	cur := IDClassicBurst
	for i, n := range styleNames {
		if strings.EqualFold(n, name) {
			cur = i
			break
		}
	}
	next := ((cur+step)%StyleCount + StyleCount) % StyleCount
	return styleNames[next]
}

package firework

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a linear RGBA colour. Channels are nominally 0..1 but styles may
// push them past 1 for additive brightness.
type Color struct {
	R, G, B, A float64
}

func RGBA(r, g, b, a float64) Color { return Color{R: r, G: g, B: b, A: a} }

// Clamp returns c with every channel limited to [0,1].
func (c Color) Clamp() Color {
	return Color{
		R: clampF(c.R, 0, 1),
		G: clampF(c.G, 0, 1),
		B: clampF(c.B, 0, 1),
		A: clampF(c.A, 0, 1),
	}
}

// Scale multiplies the RGB channels by k, leaving alpha alone.
func (c Color) Scale(k float64) Color {
	return Color{R: c.R * k, G: c.G * k, B: c.B * k, A: c.A}
}

func (c Color) Lerp(o Color, t float64) Color {
	return Color{
		R: lerpF(c.R, o.R, t),
		G: lerpF(c.G, o.G, t),
		B: lerpF(c.B, o.B, t),
		A: lerpF(c.A, o.A, t),
	}
}

// ParseColor accepts "#rrggbb" hex notation.
func ParseColor(s string) (Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("parse colour %q: %w", s, err)
	}
	return Color{R: c.R, G: c.G, B: c.B, A: 1}, nil
}

// Hex formats the colour as "#rrggbb".
func (c Color) Hex() string {
	return colorful.Color{R: clampF(c.R, 0, 1), G: clampF(c.G, 0, 1), B: clampF(c.B, 0, 1)}.Hex()
}

// hsv builds an opaque colour from hue in degrees.
func hsv(h, s, v float64) Color {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	c := colorful.Hsv(h, clampF(s, 0, 1), clampF(v, 0, 1))
	return Color{R: c.R, G: c.G, B: c.B, A: 1}.Clamp()
}

// ColorPolicy decides which colours explosions draw from.
type ColorPolicy struct {
	Primary      Color
	Secondary    Color
	RandomColors bool
}

var Palette = struct {
	Gold       Color
	Amber      Color
	WillowGold Color
	Silver     Color
	BeeGreen   Color
	White      Color
	WarmStart  Color
	WarmEnd    Color
	CoolStart  Color
	CoolEnd    Color
}{
	Gold:       Color{R: 1.0, G: 0.84, B: 0.0, A: 1},
	Amber:      Color{R: 1.0, G: 0.55, B: 0.05, A: 1},
	WillowGold: Color{R: 1.0, G: 0.8, B: 0.3, A: 1},
	Silver:     Color{R: 0.9, G: 0.9, B: 0.95, A: 1},
	BeeGreen:   Color{R: 0.45, G: 1.0, B: 0.3, A: 1},
	White:      Color{R: 1, G: 1, B: 1, A: 1},
	WarmStart:  Color{R: 1.0, G: 0.9, B: 0.5, A: 1},
	WarmEnd:    Color{R: 1.0, G: 0.3, B: 0.1, A: 1},
	CoolStart:  Color{R: 0.6, G: 0.9, B: 1.0, A: 1},
	CoolEnd:    Color{R: 0.3, G: 0.2, B: 0.9, A: 1},
}

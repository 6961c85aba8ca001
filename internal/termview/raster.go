package termview

import (
	"iter"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"mousefx/internal/firework"
)

// Simulation pixels per terminal cell. Cells are roughly twice as tall as wide.
const (
	CellWidth  = 8.0
	CellHeight = 16.0
)

// glyphs from faint to bright.
var glyphs = []rune{'.', ':', '+', '*', '#', '@'}

type cell struct {
	r, g, b float64 // additive, alpha-weighted
	weight  float64 // summed alpha * size
}

// Raster folds a particle snapshot onto a grid of terminal cells.
type Raster struct {
	Cols, Rows int
	cells      []cell
}

func NewRaster(cols, rows int) *Raster {
	r := &Raster{}
	r.Resize(cols, rows)
	return r
}

func (r *Raster) Resize(cols, rows int) {
	cols, rows = max(cols, 0), max(rows, 0)
	r.Cols, r.Rows = cols, rows
	r.cells = make([]cell, cols*rows)
}

// PixelSize is the simulation viewport covered by the grid.
func (r *Raster) PixelSize() (w, h float64) {
	return float64(r.Cols) * CellWidth, float64(r.Rows) * CellHeight
}

// CellCenter converts a cell to simulation pixels.
func CellCenter(col, row int) (x, y float64) {
	return (float64(col) + 0.5) * CellWidth, (float64(row) + 0.5) * CellHeight
}

// Rasterize clears the grid and accumulates every particle into its cell.
// It returns the number of lit cells.
func (r *Raster) Rasterize(particles iter.Seq[firework.GPUParticle]) int {
	clear(r.cells)
	lit := 0
	for p := range particles {
		col := int(math.Floor(float64(p.X) / CellWidth))
		row := int(math.Floor(float64(p.Y) / CellHeight))
		if col < 0 || row < 0 || col >= r.Cols || row >= r.Rows || p.A <= 0 {
			continue
		}
		c := &r.cells[row*r.Cols+col]
		if c.weight == 0 {
			lit++
		}
		a := float64(p.A)
		c.r += float64(p.R) * a
		c.g += float64(p.G) * a
		c.b += float64(p.B) * a
		c.weight += a * float64(p.Size)
	}
	return lit
}

// Cell returns the glyph and style for a cell; ok is false when it is dark.
func (r *Raster) Cell(col, row int) (ch rune, style tcell.Style, ok bool) {
	if col < 0 || row < 0 || col >= r.Cols || row >= r.Rows {
		return 0, tcell.StyleDefault, false
	}
	c := r.cells[row*r.Cols+col]
	if c.weight <= 0 {
		return 0, tcell.StyleDefault, false
	}
	rgb := colorful.Color{R: math.Min(c.r, 1), G: math.Min(c.g, 1), B: math.Min(c.b, 1)}
	cr, cg, cb := rgb.RGB255()
	fg := tcell.NewRGBColor(int32(cr), int32(cg), int32(cb))
	return glyphFor(c.weight), tcell.StyleDefault.Foreground(fg), true
}

// glyphFor maps accumulated weight (alpha * size) to a glyph.
func glyphFor(weight float64) rune {
	i := int(weight / 2)
	if i >= len(glyphs) {
		i = len(glyphs) - 1
	}
	if i < 0 {
		i = 0
	}
	return glyphs[i]
}

// Draw writes the lit cells to s.
func (r *Raster) Draw(s tcell.Screen) {
	for row := 0; row < r.Rows; row++ {
		for col := 0; col < r.Cols; col++ {
			if ch, st, ok := r.Cell(col, row); ok {
				s.SetContent(col, row, ch, nil, st)
			}
		}
	}
}

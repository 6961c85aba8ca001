package firework

import (
	"encoding/binary"
	"iter"
	"math"
)

// GPUParticleFloats is the number of float32 values per particle in render data.
const GPUParticleFloats = 16

// GPUParticle is the per-particle record uploaded to the host renderer.
// Layout (float32, 64 bytes):
//
//	0  x, y        position
//	2  vx, vy      velocity
//	4  r, g, b, a  colour
//	8  size
//	9  life, maxLife
//	11 styleID
//	12 d0, d1, d2  style data, passed through verbatim
//	15 pad
type GPUParticle struct {
	X, Y          float32
	VX, VY        float32
	R, G, B, A    float32
	Size          float32
	Life, MaxLife float32
	StyleID       float32
	Data          [3]float32
	_             float32
}

func toGPU(p *Particle) GPUParticle {
	return GPUParticle{
		X: float32(p.X), Y: float32(p.Y),
		VX: float32(p.VX), VY: float32(p.VY),
		R: float32(p.Color.R), G: float32(p.Color.G), B: float32(p.Color.B), A: float32(p.Color.A),
		Size:    float32(p.Size),
		Life:    float32(p.Life),
		MaxLife: float32(p.MaxLife),
		StyleID: float32(p.StyleID),
		Data:    [3]float32{float32(p.Data[0]), float32(p.Data[1]), float32(p.Data[2])},
	}
}

// Snapshot yields the live particles in GPU layout.
func (ps *Pool) Snapshot() iter.Seq[GPUParticle] {
	return func(yield func(GPUParticle) bool) {
		for _, p := range ps.All() {
			if !yield(toGPU(p)) {
				return
			}
		}
	}
}

// AppendRenderData flattens the live particles into buf, reusing its storage.
func (ps *Pool) AppendRenderData(buf []float32) []float32 {
	buf = buf[:0]
	for g := range ps.Snapshot() {
		buf = g.AppendFloats(buf)
	}
	return buf
}

func (g GPUParticle) AppendFloats(buf []float32) []float32 {
	return append(buf,
		g.X, g.Y, g.VX, g.VY,
		g.R, g.G, g.B, g.A,
		g.Size, g.Life, g.MaxLife, g.StyleID,
		g.Data[0], g.Data[1], g.Data[2], 0,
	)
}

// Marshal encodes the record as 64 little-endian bytes.
func (g GPUParticle) Marshal() []byte {
	vals := g.AppendFloats(make([]float32, 0, GPUParticleFloats))
	buf := make([]byte, GPUParticleFloats*4)
	for i, v := range vals {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(v))
	}
	return buf
}

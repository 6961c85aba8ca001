package overlay

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"mousefx/internal/firework"
)

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

// Renderer draws firework render data as point sprites: an additive glow
// pass followed by the spark cores.
type Renderer struct {
	maxSparks int

	coreProg uint32
	glowProg uint32
	vao      uint32
	vbo      uint32

	coreURes, coreUScale, coreUBoost int32
	glowURes, glowUScale, glowUBoost int32
}

func NewRenderer(maxSparks int) (*Renderer, error) {
	if maxSparks <= 0 {
		maxSparks = firework.MaxParticles
	}
	coreProg, err := linkProgram(sparkVertSrc, coreFragSrc)
	if err != nil {
		return nil, fmt.Errorf("core program: %w", err)
	}
	glowProg, err := linkProgram(sparkVertSrc, glowFragSrc)
	if err != nil {
		gl.DeleteProgram(coreProg)
		return nil, fmt.Errorf("glow program: %w", err)
	}

	r := &Renderer{
		maxSparks: maxSparks,
		coreProg:  coreProg,
		glowProg:  glowProg,
	}

	gl.GenVertexArrays(1, &r.vao)
	gl.GenBuffers(1, &r.vbo)
	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)

	// One vertex per spark, laid out as firework.GPUParticle.
	stride := int32(firework.GPUParticleFloats * 4)
	gl.BufferData(gl.ARRAY_BUFFER, maxSparks*int(stride), nil, gl.STREAM_DRAW)
	attribs := []struct {
		loc, size int32
		offset    int
	}{
		{0, 2, 0},  // x, y
		{1, 2, 2},  // vx, vy
		{2, 4, 4},  // r, g, b, a
		{3, 1, 8},  // size
		{4, 2, 9},  // life, maxLife
		{5, 1, 11}, // styleID
	}
	for _, a := range attribs {
		gl.EnableVertexAttribArray(uint32(a.loc))
		gl.VertexAttribPointer(uint32(a.loc), a.size, gl.FLOAT, false, stride, glOffset(a.offset*4))
	}

	gl.UseProgram(coreProg)
	r.coreURes = gl.GetUniformLocation(coreProg, gl.Str("uResolution\x00"))
	r.coreUScale = gl.GetUniformLocation(coreProg, gl.Str("uScale\x00"))
	r.coreUBoost = gl.GetUniformLocation(coreProg, gl.Str("uSizeBoost\x00"))

	gl.UseProgram(glowProg)
	r.glowURes = gl.GetUniformLocation(glowProg, gl.Str("uResolution\x00"))
	r.glowUScale = gl.GetUniformLocation(glowProg, gl.Str("uScale\x00"))
	r.glowUBoost = gl.GetUniformLocation(glowProg, gl.Str("uSizeBoost\x00"))

	gl.BindVertexArray(0)
	return r, nil
}

func (r *Renderer) Destroy() {
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	for _, id := range []uint32{r.coreProg, r.glowProg} {
		if id != 0 {
			gl.DeleteProgram(id)
		}
	}
}

// BeginFrame clears to fully transparent.
func (r *Renderer) BeginFrame(fbW, fbH int) {
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	gl.ClearColor(0, 0, 0, 0)
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// Draw uploads buf (firework.GPUParticleFloats per spark) and renders it.
// scale converts window pixels to framebuffer pixels.
func (r *Renderer) Draw(buf []float32, fbW, fbH int, scale float32) {
	count := len(buf) / firework.GPUParticleFloats
	if count == 0 {
		return
	}
	if count > r.maxSparks {
		count = r.maxSparks
	}

	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, count*firework.GPUParticleFloats*4, gl.Ptr(buf), gl.STREAM_DRAW)

	gl.Enable(gl.BLEND)

	gl.UseProgram(r.glowProg)
	gl.Uniform2f(r.glowURes, float32(fbW), float32(fbH))
	gl.Uniform1f(r.glowUScale, scale)
	gl.Uniform1f(r.glowUBoost, 4)
	gl.BlendFunc(gl.ONE, gl.ONE)
	gl.DrawArrays(gl.POINTS, 0, int32(count))

	gl.UseProgram(r.coreProg)
	gl.Uniform2f(r.coreURes, float32(fbW), float32(fbH))
	gl.Uniform1f(r.coreUScale, scale)
	gl.Uniform1f(r.coreUBoost, 1)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE)
	gl.DrawArrays(gl.POINTS, 0, int32(count))

	gl.Disable(gl.BLEND)
	gl.BindVertexArray(0)
}

package overlay

import (
	"math"

	"github.com/go-gl/glfw/v3.3/glfw"
)

type Input struct {
	prevMouse   map[glfw.MouseButton]bool
	prevKeys    map[glfw.Key]bool
	prevCursorX float64
	prevCursorY float64
}

func NewInput() *Input {
	return &Input{
		prevMouse: make(map[glfw.MouseButton]bool),
		prevKeys:  make(map[glfw.Key]bool),
	}
}

func (in *Input) JustPressed(window *glfw.Window, key glfw.Key) bool {
	down := window.GetKey(key) == glfw.Press
	jp := down && !in.prevKeys[key]
	in.prevKeys[key] = down
	return jp
}

func (in *Input) JustClicked(window *glfw.Window, btn glfw.MouseButton) bool {
	down := window.GetMouseButton(btn) == glfw.Press
	jp := down && !in.prevMouse[btn]
	in.prevMouse[btn] = down
	return jp
}

// CursorMoved reports the cursor position in window pixels and whether it
// moved since the last call.
func (in *Input) CursorMoved(window *glfw.Window) (x, y float64, moved bool) {
	x, y = window.GetCursorPos()
	moved = math.Hypot(x-in.prevCursorX, y-in.prevCursorY) > 0.5
	in.prevCursorX, in.prevCursorY = x, y
	return x, y, moved
}

// framebufferScale is the ratio of framebuffer to window pixels (HiDPI).
func framebufferScale(window *glfw.Window, fbW int) float32 {
	winW, _ := window.GetSize()
	if winW <= 0 || fbW <= 0 {
		return 1
	}
	return float32(fbW) / float32(winW)
}

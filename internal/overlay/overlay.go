// Package overlay hosts a firework effect in a transparent, always-on-top
// OpenGL window that follows the mouse.
package overlay

import (
	"fmt"
	"log"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"mousefx/internal/firework"
)

const (
	WindowTitle   = "mousefx"
	DefaultWidth  = 1280
	DefaultHeight = 800

	maxFrameDt = 0.1
)

// Options controls the host window and audio.
type Options struct {
	Width, Height int  // zero covers the primary monitor
	Windowed      bool // decorated, opaque window instead of an overlay
	Volume        float64
}

// Run opens the overlay and drives cfg's effect until the window closes or
// Escape is pressed. It must be called from the main goroutine.
func Run(cfg *firework.Config, opts Options) error {
	runtime.LockOSThread()

	window, err := initWindow(opts)
	if err != nil {
		return err
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	effect := firework.NewEffect(cfg)

	var audio *Audio
	if opts.Volume > 0 {
		audio, err = NewAudio(opts.Volume)
		if err != nil {
			fmt.Fprintf(os.Stderr, "audio init failed (continuing without sound): %v\n", err)
			audio = nil
		} else {
			effect.Sink = audio.Play
		}
	}

	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.PROGRAM_POINT_SIZE)

	rend, err := NewRenderer(effect.Pool().Capacity())
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer rend.Destroy()

	in := NewInput()
	var buf []float32
	styleName := effect.Style().Name()
	log.Printf("[overlay] style %q, %d particle slots", styleName, effect.Pool().Capacity())

	last := glfw.GetTime()
	for !window.ShouldClose() {
		now := glfw.GetTime()
		dt := now - last
		last = now
		if dt > maxFrameDt {
			dt = maxFrameDt
		}

		glfw.PollEvents()
		if window.GetKey(glfw.KeyEscape) == glfw.Press {
			window.SetShouldClose(true)
		}

		winW, winH := window.GetSize()
		effect.SetViewport(float64(winW), float64(winH))
		if audio != nil {
			audio.SetWidth(float64(winW))
		}

		step := 0
		if in.JustPressed(window, glfw.KeyTab) || in.JustPressed(window, glfw.KeyRight) {
			step = 1
		}
		if in.JustPressed(window, glfw.KeyLeft) {
			step = -1
		}
		if step != 0 {
			styleName = firework.NextStyle(styleName, step)
			effect.SetStyle(styleName)
			window.SetTitle(WindowTitle + " - " + styleName)
			log.Printf("[overlay] style %q", styleName)
		}
		if in.JustPressed(window, glfw.KeyBackspace) {
			effect.Reset()
		}

		cx, cy, moved := in.CursorMoved(window)
		if moved {
			effect.Move(cx, cy)
		}
		if in.JustClicked(window, glfw.MouseButtonLeft) {
			effect.Click(cx, cy)
		}
		if in.JustPressed(window, glfw.KeySpace) {
			effect.Trigger(cx, cy)
		}

		effect.Update(dt)

		fbW, fbH := window.GetFramebufferSize()
		rend.BeginFrame(fbW, fbH)
		buf = effect.AppendRenderData(buf[:0])
		rend.Draw(buf, fbW, fbH, framebufferScale(window, fbW))

		window.SwapBuffers()
	}
	return nil
}

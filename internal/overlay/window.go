package overlay

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// initWindow opens a floating, undecorated window with a transparent
// framebuffer. A zero size covers the primary monitor.
func initWindow(opts Options) (*glfw.Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.False)
	glfw.WindowHint(glfw.Floating, glfw.True)
	glfw.WindowHint(glfw.Decorated, glfw.False)
	glfw.WindowHint(glfw.TransparentFramebuffer, glfw.True)
	if opts.Windowed {
		glfw.WindowHint(glfw.Decorated, glfw.True)
		glfw.WindowHint(glfw.TransparentFramebuffer, glfw.False)
	}

	w, h := opts.Width, opts.Height
	if w <= 0 || h <= 0 {
		if mon := glfw.GetPrimaryMonitor(); mon != nil {
			if mode := mon.GetVideoMode(); mode != nil {
				w, h = mode.Width, mode.Height
			}
		}
	}
	if w <= 0 || h <= 0 {
		w, h = DefaultWidth, DefaultHeight
	}

	window, err := glfw.CreateWindow(w, h, WindowTitle, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}
	if !opts.Windowed {
		window.SetPos(0, 0)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1)

	return window, nil
}

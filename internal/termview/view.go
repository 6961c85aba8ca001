// Package termview previews a firework effect in a terminal: the mouse
// drives the effect and particles are drawn as coloured glyphs.
package termview

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"mousefx/internal/firework"
)

const (
	frameInterval = 16 * time.Millisecond // ~60 FPS
	maxFrameDt    = 0.1
)

type Options struct {
	Volume float64
}

// View couples a tcell screen to an effect.
type View struct {
	screen tcell.Screen
	effect *firework.Effect
	raster *Raster
	audio  *Audio

	style          string
	cursorX        float64
	cursorY        float64
	button1        bool
	showStatusLine bool
}

func NewView(screen tcell.Screen, effect *firework.Effect) *View {
	v := &View{
		screen:         screen,
		effect:         effect,
		raster:         NewRaster(0, 0),
		style:          effect.Style().Name(),
		showStatusLine: true,
	}
	v.Resize()
	return v
}

// Resize matches the raster and effect viewport to the screen.
func (v *View) Resize() {
	cols, rows := v.screen.Size()
	v.raster.Resize(cols, rows)
	w, h := v.raster.PixelSize()
	v.effect.SetViewport(w, h)
	if v.audio != nil {
		v.audio.Width = w
	}
}

// HandleEvent applies one terminal event. It returns false on quit.
func (v *View) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return v.handleKey(ev.Key(), ev.Rune())
	case *tcell.EventMouse:
		x, y := ev.Position()
		v.handleMouse(x, y, ev.Buttons())
	case *tcell.EventResize:
		v.Resize()
		v.screen.Sync()
	}
	return true
}

func (v *View) handleKey(key tcell.Key, r rune) bool {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyTab:
		v.cycle(1)
	case tcell.KeyBacktab:
		v.cycle(-1)
	case tcell.KeyRune:
		switch r {
		case 'q':
			return false
		case 'n':
			v.cycle(1)
		case 'p':
			v.cycle(-1)
		case 'r':
			v.effect.Reset()
		case ' ':
			v.effect.Trigger(v.cursorX, v.cursorY)
		case 's':
			v.showStatusLine = !v.showStatusLine
		}
	}
	return true
}

func (v *View) handleMouse(col, row int, buttons tcell.ButtonMask) {
	x, y := CellCenter(col, row)
	if x != v.cursorX || y != v.cursorY {
		v.cursorX, v.cursorY = x, y
		v.effect.Move(x, y)
	}
	down := buttons&tcell.Button1 != 0
	if down && !v.button1 {
		v.effect.Click(x, y)
	}
	v.button1 = down
}

func (v *View) cycle(step int) {
	v.style = firework.NextStyle(v.style, step)
	v.effect.SetStyle(v.style)
}

// Frame advances the effect by dt seconds and redraws.
func (v *View) Frame(dt float64) {
	v.effect.Update(dt)

	v.screen.Clear()
	v.raster.Rasterize(v.effect.Snapshot())
	v.raster.Draw(v.screen)
	if v.showStatusLine {
		v.drawStatus()
	}
	v.screen.Show()
}

func (v *View) drawStatus() {
	_, rows := v.screen.Size()
	if rows == 0 {
		return
	}
	line := fmt.Sprintf(" %s | %d live | tab/n/p style  space fire  r reset  q quit ", v.style, v.effect.Live())
	st := tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorSilver)
	for i, ch := range []rune(line) {
		v.screen.SetContent(i, rows-1, ch, nil, st)
	}
}

// Run opens the terminal, enables mouse tracking and drives cfg's effect
// until quit.
func Run(cfg *firework.Config, opts Options) error {
	effect := firework.NewEffect(cfg)
	log.Printf("[termview] style %q", effect.Style().Name())

	var audio *Audio
	if opts.Volume > 0 {
		audio = NewAudio(opts.Volume)
		if err := audio.Init(); err != nil {
			fmt.Fprintf(os.Stderr, "audio init failed (continuing without sound): %v\n", err)
			audio = nil
		} else {
			defer audio.Close()
			effect.Sink = audio.Play
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("new screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("screen init: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	v := NewView(screen, effect)
	v.audio = audio
	v.Resize()

	events := make(chan tcell.Event, 100)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()
	last := time.Now()
	for {
		select {
		case ev := <-events:
			if !v.HandleEvent(ev) {
				return nil
			}
		case now := <-ticker.C:
			dt := min(now.Sub(last).Seconds(), maxFrameDt)
			last = now
			v.Frame(dt)
		}
	}
}

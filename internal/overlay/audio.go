package overlay

import (
	"sync/atomic"
	"time"

	"github.com/hajimehoshi/oto/v2"

	"mousefx/internal/firework"
	"mousefx/internal/synth"
)

const (
	ChannelCount = 2
	BitDepth     = 0 // 32-bit float (oto.FormatFloat32LE)

	maxVoices = 4
	sfxVolume = 0.58
)

// Audio plays synthesized firework sounds through oto.
type Audio struct {
	ctx   *oto.Context
	ready chan struct{}

	active  int32 // voices currently playing
	variant uint64
	width   atomic.Uint64 // viewport width in window pixels
	Volume  float64
}

func NewAudio(volume float64) (*Audio, error) {
	ctx, ready, err := oto.NewContext(synth.SampleRate, ChannelCount, BitDepth)
	if err != nil {
		return nil, err
	}
	return &Audio{ctx: ctx, ready: ready, Volume: volume}, nil
}

// SetWidth sets the horizontal extent used for panning.
func (a *Audio) SetWidth(w float64) {
	a.width.Store(uint64(w))
}

// Play is a firework.Sink. It never blocks; sounds beyond maxVoices or
// arriving before the device is ready are dropped.
func (a *Audio) Play(s firework.Sound) {
	if a == nil || a.Volume <= 0 {
		return
	}
	select {
	case <-a.ready:
	default:
		return
	}
	if atomic.AddInt32(&a.active, 1) > maxVoices {
		atomic.AddInt32(&a.active, -1)
		return
	}

	seed := atomic.AddUint64(&a.variant, 1) ^ uint64(time.Now().UnixNano())
	pan := synth.Pan(s.X, float64(a.width.Load()))
	go func() {
		defer atomic.AddInt32(&a.active, -1)
		pcm := synth.StereoF32(synth.For(s, seed), 1, pan)
		player := a.ctx.NewPlayer(synth.NewReader(pcm))
		player.SetVolume(sfxVolume * a.Volume)
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		player.Close()
	}()
}

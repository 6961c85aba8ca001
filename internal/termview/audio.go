package termview

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"mousefx/internal/firework"
	"mousefx/internal/synth"
)

const (
	sampleRate = beep.SampleRate(synth.SampleRate)
	maxVoices  = 4
)

// Audio mixes firework sounds through the beep speaker.
type Audio struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	variant     uint64

	Volume float64
	Width  float64 // viewport width in simulation pixels, for panning
}

func NewAudio(volume float64) *Audio {
	return &Audio{mixer: &beep.Mixer{}, Volume: volume}
}

// Init opens the speaker and starts the mixer.
func (a *Audio) Init() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}
	speaker.Play(a.mixer)
	a.initialized = true
	return nil
}

func (a *Audio) Close() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.initialized {
		return
	}
	speaker.Lock()
	a.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	a.initialized = false
}

// Play is a firework.Sink. Sounds past maxVoices are dropped.
func (a *Audio) Play(s firework.Sound) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.initialized || a.Volume <= 0 {
		return
	}
	a.variant++
	seed := a.variant ^ uint64(time.Now().UnixNano())
	l, r := synth.Gains(a.Volume, synth.Pan(s.X, a.Width))
	st := newSampleStreamer(synth.For(s, seed), l, r)

	speaker.Lock()
	if a.mixer.Len() < maxVoices {
		a.mixer.Add(st)
	}
	speaker.Unlock()
}

// sampleStreamer plays mono samples once with fixed channel gains.
type sampleStreamer struct {
	data []float64
	pos  int
	l, r float64
}

func newSampleStreamer(data []float64, l, r float64) *sampleStreamer {
	return &sampleStreamer{data: data, l: l, r: r}
}

func (s *sampleStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	if s.pos >= len(s.data) {
		return 0, false
	}
	for i := range samples {
		if s.pos >= len(s.data) {
			break
		}
		v := s.data[s.pos]
		samples[i][0] = v * s.l
		samples[i][1] = v * s.r
		s.pos++
		n++
	}
	return n, true
}

func (s *sampleStreamer) Err() error { return nil }

// Package synth renders short procedural firework sounds as mono float64
// samples in [-1,1]. Hosts wrap the samples for their audio backend.
package synth

import (
	"math"

	"mousefx/internal/firework"
)

const SampleRate = 44100

// shape keeps a mix of voices inside [-1,1]. Below unity it is a cubic knee
// (shape(1) = 2/3); above, the tail approaches ±1 hyperbolically.
func shape(x float64) float64 {
	if ax := math.Abs(x); ax > 1 {
		return math.Copysign(1-0.5/ax, x)
	}
	return x - x*x*x/3
}

// env is a linear attack/decay/sustain/release curve. Attack, decay and
// release are fractions of the sound's length.
type env struct {
	attack, decay, sustain, release float64
}

var (
	crackleEnv = env{attack: 0.02, decay: 0.3, sustain: 0.6, release: 0.4}
	chirpEnv   = env{attack: 0.02, decay: 0.5, release: 0.1}
)

// at evaluates the envelope at p in [0,1].
func (e env) at(p float64) float64 {
	tail := 1 - e.release
	switch {
	case p < e.attack:
		return p / e.attack
	case p < e.attack+e.decay:
		return 1 - (p-e.attack)/e.decay*(1-e.sustain)
	case p < tail:
		return e.sustain
	}
	return e.sustain * (1 - (p-tail)/e.release)
}

// noise is a 64-bit LCG; next yields white noise in [-1,1).
type noise uint64

func (n *noise) next() float64 {
	*n = *n*6364136223846793005 + 1442695040888963407
	return float64(int64(*n>>33)-1<<30) / (1 << 30)
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// For renders the sound for a simulation event. seed varies the noise so
// repeated bursts do not sound identical.
func For(s firework.Sound, seed uint64) []float64 {
	switch s.Kind {
	case firework.SoundSecondary:
		return Crackle(s.Intensity, seed)
	case firework.SoundSplit:
		return Chirp(s.Intensity, seed)
	}
	if s.StyleID == firework.IDCrackling || s.StyleID == firework.IDGlitter {
		return Crackle(s.Intensity, seed)
	}
	return Pop(s.Intensity, seed)
}

// Pop is the main burst: a pitched-down boom with a noisy crack on top.
// Louder bursts are longer and deeper.
func Pop(intensity float64, seed uint64) []float64 {
	norm := clamp01(intensity)
	nz := noise(seed)
	dur := 0.22 + 0.5*norm
	n := int(dur * SampleRate)
	out := make([]float64, n)

	lp1, lp2 := 0.0, 0.0
	phase := 0.0
	start := 140.0 - 60.0*norm
	end := math.Max(12, 36.0-18.0*norm)
	crackWin := math.Max(0.01, 0.04-0.02*norm)
	for i := range n {
		p := float64(i) / float64(n)

		f := start * math.Pow(end/start, p*(1.6+1.4*norm))
		phase += 2 * math.Pi * f / SampleRate
		sub := math.Sin(phase) * math.Exp(-p*(7.0-3.5*norm)) * (0.4 + 0.3*norm)

		crack := 0.0
		if p < crackWin {
			crack = nz.next() * (1 - p/crackWin) * (0.8 - 0.25*norm)
		}

		raw := nz.next()
		lp1 = lp1*0.76 + raw*0.24
		lp2 = lp2*0.975 + raw*0.025
		body := (lp1 - lp2) * math.Exp(-p*(6.0-2.0*norm)) * (0.28 + 0.15*norm)

		out[i] = shape((sub + crack + body) * 0.86)
	}
	return out
}

// Crackle is a train of tiny random clicks, used for secondary bursts and
// crackling styles.
func Crackle(intensity float64, seed uint64) []float64 {
	norm := clamp01(intensity)
	n := int((0.35 + 0.4*norm) * SampleRate)
	nz := noise(seed)
	out := make([]float64, n)

	hp := 0.0
	click := 0.0
	for i := range n {
		p := float64(i) / float64(n)
		// Roughly 60..140 clicks per second.
		if (nz.next()+1)*0.5 < (60+80*norm)/SampleRate {
			click = 0.6 + 0.4*math.Abs(nz.next())
		}
		click *= 0.93
		raw := nz.next() * click
		v := raw - hp
		hp = hp*0.6 + raw*0.4
		out[i] = shape(v * crackleEnv.at(p) * (0.5 + 0.4*norm))
	}
	return out
}

// Chirp is the short FM blip of a star splitting.
func Chirp(intensity float64, seed uint64) []float64 {
	norm := clamp01(intensity)
	n := int(0.08 * SampleRate)
	out := make([]float64, n)
	nz := noise(seed)
	detune := 1 + 0.1*nz.next()
	for i := range n {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		e := chirpEnv.at(p)
		freq := (900 + 900*p) * detune
		// 2:1 FM; the index follows the envelope so the blip dulls as it fades.
		mod := math.Sin(2 * math.Pi * 2 * freq * t)
		v := math.Sin(2*math.Pi*freq*t + 2.5*e*mod)
		out[i] = shape(v * e * (0.25 + 0.25*norm))
	}
	return out
}

package synth

import (
	"encoding/binary"
	"io"
	"math"
)

// StereoF32 encodes mono samples as interleaved stereo float32 LE, scaled by
// gain and panned by pan in [-1,1] (0 is centre).
func StereoF32(samples []float64, gain, pan float64) []byte {
	buf := make([]byte, len(samples)*8)
	l, r := Gains(gain, pan)
	for i, s := range samples {
		binary.LittleEndian.PutUint32(buf[i*8:], math.Float32bits(float32(s*l)))
		binary.LittleEndian.PutUint32(buf[i*8+4:], math.Float32bits(float32(s*r)))
	}
	return buf
}

// Gains splits gain into left and right channel gains for pan in [-1,1].
func Gains(gain, pan float64) (l, r float64) {
	return gain * math.Min(1, 1-pan), gain * math.Min(1, 1+pan)
}

// Pan maps a horizontal position across width to [-0.8, 0.8].
func Pan(x, width float64) float64 {
	if width <= 0 {
		return 0
	}
	return math.Max(-1, math.Min(1, x/width*2-1)) * 0.8
}

// Reader streams an encoded PCM buffer once.
type Reader struct {
	data []byte
	pos  int
}

func NewReader(data []byte) *Reader { return &Reader{data: data} }

func (r *Reader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}

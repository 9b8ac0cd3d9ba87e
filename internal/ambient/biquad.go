package ambient

import (
	"math"
)

// defaultQ is the resonance of every filter in the chain.
const defaultQ = 1.0

// biquad is a second order IIR filter (RBJ cookbook), with independent state per stereo channel.
type biquad struct {
	b0, b1, b2, a1, a2 float64
	x1, x2, y1, y2     [2]float64
}

func newBiquad(kind FilterKind, cutoff, sampleRate, q float64) *biquad {
	var (
		w0    = 2 * math.Pi * cutoff / sampleRate
		cosW0 = math.Cos(w0)
		alpha = math.Sin(w0) / (2 * q)
		a0    = 1 + alpha
		f     = &biquad{}
	)

	switch kind {
	case FilterHighPass:
		f.b0 = (1 + cosW0) / 2
		f.b1 = -(1 + cosW0)
		f.b2 = (1 + cosW0) / 2
	default:
		f.b0 = (1 - cosW0) / 2
		f.b1 = 1 - cosW0
		f.b2 = (1 - cosW0) / 2
	}

	f.b0 /= a0
	f.b1 /= a0
	f.b2 /= a0
	f.a1 = -2 * cosW0 / a0
	f.a2 = (1 - alpha) / a0

	return f
}

func (f *biquad) process(samples [][2]float64) {
	for i := range samples {
		for c := range 2 {
			x := samples[i][c]
			y := f.b0*x + f.b1*f.x1[c] + f.b2*f.x2[c] - f.a1*f.y1[c] - f.a2*f.y2[c]

			f.x2[c], f.x1[c] = f.x1[c], x
			f.y2[c], f.y1[c] = f.y1[c], y
			samples[i][c] = y
		}
	}
}

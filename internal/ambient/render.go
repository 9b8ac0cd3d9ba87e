package ambient

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/wav"
)

// ErrInvalidRenderDuration indicates a non-positive render length.
var ErrInvalidRenderDuration = errors.New("render duration must be positive")

// renderPrecision is the WAV sample size in bytes.
const renderPrecision = 2

// streamGraph is a graph whose destination can be pulled as a beep streamer.
type streamGraph interface {
	Graph
	Streamer() beep.Streamer
}

// Render writes duration worth of a texture to w as a stereo WAV file.
// Rendering none produces silence.
func Render(w io.WriteSeeker, bg Background, duration time.Duration, sampleRate beep.SampleRate) error {
	if duration <= 0 {
		return ErrInvalidRenderDuration
	}

	return render(w, bg, duration, NewBeepGraph(sampleRate, nil))
}

func render(w io.WriteSeeker, bg Background, duration time.Duration, graph streamGraph) (err error) {
	synth := NewSynthesizer(func() (Graph, error) { return graph, nil })

	defer func() {
		if closeErr := synth.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to release %s texture: %w", bg, closeErr)
		}
	}()

	synth.Start(bg)

	if bg.Audible() && synth.Active() != bg {
		return fmt.Errorf("failed to start %s texture", bg)
	}

	sampleRate := beep.SampleRate(graph.SampleRate())
	format := beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: renderPrecision}

	// The synthesizer must stay open until the samples are pulled.
	if err = wav.Encode(w, beep.Take(sampleRate.N(duration), graph.Streamer()), format); err != nil {
		return fmt.Errorf("failed to encode %s texture: %w", bg, err)
	}

	return nil
}

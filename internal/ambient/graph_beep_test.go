package ambient

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/wav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oshokin/studycast/internal/audio"
)

func peak(samples [][2]float64) float64 {
	result := 0.0
	for _, s := range samples {
		result = math.Max(result, math.Max(math.Abs(s[0]), math.Abs(s[1])))
	}

	return result
}

// TestBeepGraph_SilentUntilConnected tests that the graph renders silence without a running chain.
func TestBeepGraph_SilentUntilConnected(t *testing.T) {
	t.Parallel()

	graph := NewBeepGraph(8000, nil)
	samples := make([][2]float64, 512)

	n, ok := graph.Streamer().Stream(samples)
	require.True(t, ok)
	assert.Equal(t, 512, n)
	assert.Zero(t, peak(samples))

	synth := NewSynthesizer(func() (Graph, error) { return graph, nil })
	synth.Sync(true, BackgroundWhiteNoise)

	graph.Streamer().Stream(samples)
	assert.Greater(t, peak(samples), 0.0)
	// Noise peaks at 0.4 and the gain is 0.06.
	assert.LessOrEqual(t, peak(samples), 0.4*0.06+1e-9)

	synth.Sync(false, BackgroundWhiteNoise)
	graph.Streamer().Stream(samples)
	assert.Zero(t, peak(samples))

	require.NoError(t, synth.Close())

	_, ok = graph.Streamer().Stream(samples)
	assert.False(t, ok)
}

// TestBeepGraph_Errors tests node construction failures.
func TestBeepGraph_Errors(t *testing.T) {
	t.Parallel()

	graph := NewBeepGraph(8000, nil)

	_, err := graph.NewNoiseSource(nil)
	require.ErrorIs(t, err, ErrEmptyBuffer)

	_, err = graph.NewFilter(FilterLowPass, 5000)
	require.ErrorIs(t, err, ErrInvalidFrequency)

	_, err = graph.NewOscillator(0)
	require.ErrorIs(t, err, ErrInvalidFrequency)

	other := NewBeepGraph(8000, nil)
	gain, err := graph.NewGain(1)
	require.NoError(t, err)
	require.ErrorIs(t, gain.Connect(other.Destination()), ErrForeignNode)

	require.NoError(t, graph.Close())

	_, err = graph.NewGain(1)
	require.ErrorIs(t, err, ErrGraphClosed)
}

// TestBeepGraph_FilterResponse tests that the low-pass filter attenuates a high tone.
func TestBeepGraph_FilterResponse(t *testing.T) {
	t.Parallel()

	var (
		sampleRate = beep.SampleRate(8000)
		graph      = NewBeepGraph(sampleRate, nil)
	)

	oscillator, err := graph.NewOscillator(3000)
	require.NoError(t, err)

	filter, err := graph.NewFilter(FilterLowPass, 200)
	require.NoError(t, err)

	require.NoError(t, oscillator.Connect(filter))
	require.NoError(t, filter.Connect(graph.Destination()))
	oscillator.Start()

	samples := make([][2]float64, 4000)
	graph.Streamer().Stream(samples)

	// Skip the filter's settling time.
	assert.Less(t, peak(samples[1000:]), 0.1)

	filter.Disconnect()
	graph.Streamer().Stream(samples)
	assert.Zero(t, peak(samples))
}

// TestBeepGraph_PlaysThroughOutput tests that the graph registers with an output and drains on close.
func TestBeepGraph_PlaysThroughOutput(t *testing.T) {
	t.Parallel()

	output := audio.NewNullOutput(8000, 0)
	graph := NewBeepGraph(8000, output)

	assert.Equal(t, 1, output.Playing())

	output.Advance(100 * time.Millisecond)
	assert.Equal(t, 1, output.Playing())

	require.NoError(t, graph.Close())
	output.Advance(100 * time.Millisecond)
	assert.Equal(t, 0, output.Playing())
}

// TestRender tests rendering a texture to a WAV file.
func TestRender(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		background Background
		silent     bool
	}{
		{name: "rain", background: BackgroundRain},
		{name: "delta waves", background: BackgroundDeltaWaves},
		{name: "none", background: BackgroundNone, silent: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			wavPath := filepath.Join(t.TempDir(), "texture.wav")

			file, err := os.Create(wavPath)
			require.NoError(t, err)
			require.NoError(t, Render(file, tt.background, 250*time.Millisecond, 8000))
			require.NoError(t, file.Close())

			file, err = os.Open(wavPath)
			require.NoError(t, err)

			defer file.Close()

			streamer, format, err := wav.Decode(file)
			require.NoError(t, err)
			assert.Equal(t, beep.SampleRate(8000), format.SampleRate)
			assert.Equal(t, 2000, streamer.Len())

			samples := make([][2]float64, streamer.Len())
			n, _ := streamer.Stream(samples)

			if tt.silent {
				assert.Zero(t, peak(samples[:n]))
			} else {
				assert.Greater(t, peak(samples[:n]), 0.0)
			}
		})
	}
}

// TestRender_InvalidDuration tests that a zero duration is rejected.
func TestRender_InvalidDuration(t *testing.T) {
	t.Parallel()

	file, err := os.Create(filepath.Join(t.TempDir(), "texture.wav"))
	require.NoError(t, err)

	defer file.Close()

	require.ErrorIs(t, Render(file, BackgroundRain, 0, 8000), ErrInvalidRenderDuration)
}

var errReleaseFailed = errors.New("release failed")

// failingCloseGraph is a beep graph that cannot be released.
type failingCloseGraph struct {
	*BeepGraph
}

func (g failingCloseGraph) Close() error {
	_ = g.BeepGraph.Close()

	return errReleaseFailed
}

// TestRender_ReleaseError tests that a graph which fails to close fails the render.
func TestRender_ReleaseError(t *testing.T) {
	t.Parallel()

	file, err := os.Create(filepath.Join(t.TempDir(), "texture.wav"))
	require.NoError(t, err)

	defer file.Close()

	err = render(file, BackgroundRain, 100*time.Millisecond, failingCloseGraph{NewBeepGraph(8000, nil)})
	require.ErrorIs(t, err, errReleaseFailed)
	assert.Contains(t, err.Error(), "rain")

	info, err := file.Stat()
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

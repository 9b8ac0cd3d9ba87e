package audio

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"
)

// Output is a sink that mixes every streamer handed to Play until the streamer drains.
type Output interface {
	// SampleRate returns the rate every played streamer must be resampled to.
	SampleRate() beep.SampleRate
	// Play adds streamers to the mix.
	Play(streamers ...beep.Streamer)
	// Lock stops the output from pulling samples, so streamer state can be changed safely.
	Lock()
	// Unlock resumes pulling samples.
	Unlock()
	// Clear removes every streamer from the mix.
	Clear()
	// Close releases the output.
	Close() error
}

// Static error definitions for better error handling.
var (
	// ErrOutputUnavailable indicates that the audio device could not be opened.
	ErrOutputUnavailable = errors.New("audio output unavailable")
)

// DefaultBufferSize is the speaker buffer length, traded between latency and underruns.
const DefaultBufferSize = 100 * time.Millisecond

// SpeakerOutput plays through the system audio device.
type SpeakerOutput struct {
	// sampleRate is the rate the device was initialized with.
	sampleRate beep.SampleRate
}

// speakerMu guards the process-wide speaker, which may only be initialized once at a time.
//
//nolint:gochecknoglobals // The speaker package itself is process-wide.
var speakerMu sync.Mutex

// NewSpeakerOutput initializes the system audio device.
func NewSpeakerOutput(sampleRate beep.SampleRate, bufferSize time.Duration) (*SpeakerOutput, error) {
	if bufferSize <= 0 {
		bufferSize = DefaultBufferSize
	}

	speakerMu.Lock()
	defer speakerMu.Unlock()

	if err := speaker.Init(sampleRate, sampleRate.N(bufferSize)); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOutputUnavailable, err)
	}

	return &SpeakerOutput{sampleRate: sampleRate}, nil
}

// SampleRate returns the device sample rate.
func (o *SpeakerOutput) SampleRate() beep.SampleRate {
	return o.sampleRate
}

// Play adds streamers to the device mix.
func (o *SpeakerOutput) Play(streamers ...beep.Streamer) {
	speaker.Play(streamers...)
}

// Lock locks the device mix.
func (o *SpeakerOutput) Lock() {
	speaker.Lock()
}

// Unlock unlocks the device mix.
func (o *SpeakerOutput) Unlock() {
	speaker.Unlock()
}

// Clear removes all streamers from the device mix.
func (o *SpeakerOutput) Clear() {
	speaker.Clear()
}

// Close closes the device.
func (o *SpeakerOutput) Close() error {
	speakerMu.Lock()
	defer speakerMu.Unlock()

	speaker.Close()

	return nil
}

// NullOutput consumes audio without a device.
// With a positive tick it pulls samples in real time from its own goroutine,
// otherwise samples are only pulled by Advance.
type NullOutput struct {
	// mu guards the mixer and the buffer.
	mu sync.Mutex
	// mixer holds the playing streamers.
	mixer beep.Mixer
	// sampleRate is the rate samples are pulled at.
	sampleRate beep.SampleRate
	// tick is the real-time pull interval.
	tick time.Duration
	// buf receives the discarded samples.
	buf [][2]float64
	// stop ends the pull goroutine.
	stop chan struct{}
	// done is closed when the pull goroutine exits.
	done chan struct{}
	// closeOnce makes Close idempotent.
	closeOnce sync.Once
}

// DefaultNullTick is the pull interval of a real-time NullOutput.
const DefaultNullTick = 20 * time.Millisecond

// NewNullOutput creates a headless output.
func NewNullOutput(sampleRate beep.SampleRate, tick time.Duration) *NullOutput {
	o := &NullOutput{
		sampleRate: sampleRate,
		tick:       tick,
		stop:       make(chan struct{}),
		done:       make(chan struct{}),
	}

	if tick <= 0 {
		close(o.done)

		return o
	}

	go o.run()

	return o
}

func (o *NullOutput) run() {
	defer close(o.done)

	ticker := time.NewTicker(o.tick)
	defer ticker.Stop()

	for {
		select {
		case <-o.stop:
			return
		case <-ticker.C:
			o.Advance(o.tick)
		}
	}
}

// Advance pulls d worth of samples from every playing streamer.
func (o *NullOutput) Advance(d time.Duration) {
	n := o.sampleRate.N(d)
	if n <= 0 {
		return
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	if cap(o.buf) < n {
		o.buf = make([][2]float64, n)
	}

	o.mixer.Stream(o.buf[:n])
}

// Playing returns the number of streamers still in the mix.
func (o *NullOutput) Playing() int {
	o.mu.Lock()
	defer o.mu.Unlock()

	return o.mixer.Len()
}

// SampleRate returns the configured sample rate.
func (o *NullOutput) SampleRate() beep.SampleRate {
	return o.sampleRate
}

// Play adds streamers to the mix.
func (o *NullOutput) Play(streamers ...beep.Streamer) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.mixer.Add(streamers...)
}

// Lock locks the mix.
func (o *NullOutput) Lock() {
	o.mu.Lock()
}

// Unlock unlocks the mix.
func (o *NullOutput) Unlock() {
	o.mu.Unlock()
}

// Clear removes all streamers.
func (o *NullOutput) Clear() {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.mixer.Clear()
}

// Close stops the pull goroutine.
func (o *NullOutput) Close() error {
	o.closeOnce.Do(func() {
		close(o.stop)
		<-o.done
		o.Clear()
	})

	return nil
}

// NewOutput returns the output selected by kind: "null" for headless playback, anything else for the speaker.
func NewOutput(kind string, sampleRate beep.SampleRate) (Output, error) {
	if kind == "null" {
		return NewNullOutput(sampleRate, DefaultNullTick), nil
	}

	return NewSpeakerOutput(sampleRate, DefaultBufferSize)
}

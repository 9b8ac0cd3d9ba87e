package player

import (
	"context"
	"fmt"
	"io"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"

	"github.com/oshokin/studycast/internal/audio"
)

// DefaultPollInterval is how often a playing media source reports its position.
const DefaultPollInterval = 250 * time.Millisecond

// volumeBase is the exponent base of the volume effect: level 0.5 is -1, i.e. half amplitude.
const volumeBase = 2

// Opener fetches a media resource; it returns the body and its content type.
type Opener func(ctx context.Context, url string) (io.ReadCloser, string, error)

// MediaSource plays a decoded audio resource through an output.
// The resource is fetched and decoded in the background after the first Play;
// a failure is reported with EventFailed and makes every later Play fail.
type MediaSource struct {
	// mu guards every field below. It is always taken before the output lock.
	mu sync.Mutex
	// ctx bounds fetching the resource.
	ctx context.Context
	// url is the resource location.
	url string
	// nominal is the length used until the media length is known.
	nominal time.Duration
	// output renders the samples.
	output audio.Output
	// opener fetches the resource.
	opener Opener
	// handler receives events, always from a goroutine of this source.
	handler EventHandler
	// pollInterval is the period of progress events.
	pollInterval time.Duration
	// stream is the decoded resource, nil until loaded.
	stream beep.StreamSeekCloser
	// format is the decoded resource format.
	format beep.Format
	// ctrl pauses the stream; it is rebuilt after the stream has drained.
	ctrl *beep.Ctrl
	// volume applies the level.
	volume *effects.Volume
	// attached is true while ctrl is in the output mix.
	attached bool
	// level is the volume in [0, 1].
	level float64
	// pendingSeek is the position requested before loading.
	pendingSeek time.Duration
	// loadErr is the sticky fetch or decode failure.
	loadErr error
	// loading is true while the resource is fetched and decoded.
	loading bool
	// playing is true between Play and Pause or the end, including while loading.
	playing bool
	// running is true while the output pulls the stream.
	running bool
	// closed is true once the source is released.
	closed bool
	// pollStop stops the progress goroutine.
	pollStop chan struct{}
}

// NewMediaSource creates a paused media source at position zero.
func NewMediaSource(
	ctx context.Context,
	url string,
	nominal time.Duration,
	output audio.Output,
	opener Opener,
	handler EventHandler,
) *MediaSource {
	if handler == nil {
		handler = func(Event) {}
	}

	return &MediaSource{
		ctx:          ctx,
		url:          url,
		nominal:      max(nominal, 0),
		output:       output,
		opener:       opener,
		handler:      handler,
		pollInterval: DefaultPollInterval,
		level:        1,
	}
}

// Play starts the output, or starts loading the resource and returns right away.
// The output starts once the resource is decoded, unless Pause was called meanwhile.
func (s *MediaSource) Play() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrSourceClosed
	}

	if s.loadErr != nil {
		return s.loadErr
	}

	s.playing = true

	if s.stream != nil {
		s.startLocked()

		return nil
	}

	if !s.loading {
		s.loading = true

		go s.load()
	}

	return nil
}

func (s *MediaSource) startLocked() {
	if s.running {
		return
	}

	if !s.attached {
		s.attach()
	}

	s.output.Lock()
	s.ctrl.Paused = false
	s.output.Unlock()

	s.running = true
	s.pollStop = make(chan struct{})

	go s.poll(s.pollStop)
}

// load fetches and decodes the resource without holding the source lock.
func (s *MediaSource) load() {
	stream, format, err := s.open()

	s.mu.Lock()
	s.loading = false

	if s.closed {
		s.mu.Unlock()

		if stream != nil {
			_ = stream.Close()
		}

		return
	}

	if err == nil && s.pendingSeek > 0 {
		if seekErr := stream.Seek(min(format.SampleRate.N(s.pendingSeek), stream.Len())); seekErr != nil {
			_ = stream.Close()
			err = fmt.Errorf("failed to seek audio: %w", seekErr)
		}
	}

	if err != nil {
		s.loadErr = err
		s.playing = false
		s.mu.Unlock()

		s.handler(Event{Kind: EventFailed, Err: err})

		return
	}

	s.stream = stream
	s.format = format
	duration := s.durationLocked()
	s.mu.Unlock()

	s.handler(Event{Kind: EventDuration, Duration: duration})

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.closed && s.playing {
		s.startLocked()
	}
}

func (s *MediaSource) open() (beep.StreamSeekCloser, beep.Format, error) {
	body, contentType, err := s.opener(s.ctx, s.url)
	if err != nil {
		return nil, beep.Format{}, fmt.Errorf("failed to open audio: %w", err)
	}

	buffered, err := audio.Buffer(body)
	_ = body.Close()

	if err != nil {
		return nil, beep.Format{}, err
	}

	return audio.Decode(buffered, audio.ExtensionFromName(s.url, contentType))
}

// attach adds a fresh paused chain for the stream to the output mix.
// A finished stream is rewound first.
func (s *MediaSource) attach() {
	if s.stream.Position() >= s.stream.Len() {
		_ = s.stream.Seek(0)
	}

	resampled := audio.Resample(s.stream, s.format.SampleRate, s.output.SampleRate())

	// The callback runs under the output lock, so completion is handled on another goroutine.
	s.ctrl = &beep.Ctrl{Streamer: beep.Seq(resampled, beep.Callback(func() { go s.finish() })), Paused: true}
	s.volume = &effects.Volume{Streamer: s.ctrl, Base: volumeBase}
	s.applyVolume()

	s.output.Play(s.volume)
	s.attached = true
}

func (s *MediaSource) finish() {
	s.mu.Lock()

	if s.closed {
		s.mu.Unlock()

		return
	}

	s.attached = false
	s.playing = false
	s.running = false
	s.stopPolling()

	duration := s.durationLocked()

	s.mu.Unlock()

	s.handler(Event{Kind: EventEnded, Position: duration, Duration: duration})
}

func (s *MediaSource) poll(stop chan struct{}) {
	ticker := time.NewTicker(s.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			s.handler(Event{Kind: EventProgress, Position: s.Position(), Duration: s.Duration()})
		}
	}
}

// Pause pauses the output.
func (s *MediaSource) Pause() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.playing = false

	if !s.running {
		return
	}

	s.running = false
	s.stopPolling()

	s.output.Lock()
	s.ctrl.Paused = true
	s.output.Unlock()
}

// Seek moves the decoder.
func (s *MediaSource) Seek(pos time.Duration) time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()

	pos = max(0, min(pos, s.durationLocked()))

	if s.stream == nil {
		s.pendingSeek = pos

		return pos
	}

	s.output.Lock()
	err := s.stream.Seek(s.samplesAt(pos))
	s.output.Unlock()

	if err != nil {
		return s.positionLocked()
	}

	return pos
}

// Position returns the decoder position.
func (s *MediaSource) Position() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.positionLocked()
}

func (s *MediaSource) positionLocked() time.Duration {
	if s.stream == nil {
		return s.pendingSeek
	}

	s.output.Lock()
	position := s.stream.Position()
	s.output.Unlock()

	return s.format.SampleRate.D(position)
}

// Duration returns the media length, or the nominal length until it is known.
func (s *MediaSource) Duration() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.durationLocked()
}

func (s *MediaSource) durationLocked() time.Duration {
	if s.stream != nil && s.stream.Len() > 0 {
		return s.format.SampleRate.D(s.stream.Len())
	}

	return s.nominal
}

// SetVolume sets the level in [0, 1].
func (s *MediaSource) SetVolume(level float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.level = max(0, min(level, 1))

	if s.volume == nil {
		return
	}

	s.output.Lock()
	s.applyVolume()
	s.output.Unlock()
}

func (s *MediaSource) applyVolume() {
	if s.level <= 0 {
		s.volume.Silent = true

		return
	}

	s.volume.Silent = false
	s.volume.Volume = math.Log2(s.level)
}

// Close removes the stream from the output and releases it.
func (s *MediaSource) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}

	s.closed = true
	s.playing = false
	s.running = false
	s.stopPolling()

	if s.ctrl != nil {
		s.output.Lock()
		// A nil streamer makes the control drain, so the output drops it.
		s.ctrl.Streamer = nil
		s.output.Unlock()
	}

	if s.stream == nil {
		return nil
	}

	return s.stream.Close()
}

func (s *MediaSource) stopPolling() {
	if s.pollStop != nil {
		close(s.pollStop)
		s.pollStop = nil
	}
}

func (s *MediaSource) samplesAt(pos time.Duration) int {
	return min(s.format.SampleRate.N(pos), s.stream.Len())
}

// NewSourceFactory returns a factory that plays descriptors with audio through output
// and simulates the others with the given tick interval.
func NewSourceFactory(output audio.Output, opener Opener, simulatedInterval time.Duration) SourceFactory {
	return func(ctx context.Context, d Descriptor, handler EventHandler) PositionSource {
		if d.HasAudio() && output != nil && opener != nil {
			return NewMediaSource(ctx, d.AudioURL, d.NominalDuration(), output, opener, handler)
		}

		return NewSimulatedSource(d.NominalDuration(), simulatedInterval, handler)
	}
}

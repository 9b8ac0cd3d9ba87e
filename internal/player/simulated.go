package player

import (
	"errors"
	"sync"
	"time"
)

// simulatedStep is how far a simulated track advances per tick.
const simulatedStep = time.Second

// DefaultSimulatedInterval is the wall-clock tick of a simulated track.
const DefaultSimulatedInterval = time.Second

// ErrSourceClosed indicates use of a released position source.
var ErrSourceClosed = errors.New("position source is closed")

// SimulatedSource plays a track without media: it advances one second per tick while playing.
type SimulatedSource struct {
	// mu guards every field below.
	mu sync.Mutex
	// handler receives progress and ended events from the tick goroutine.
	handler EventHandler
	// interval is the wall-clock time between ticks.
	interval time.Duration
	// position is the simulated position.
	position time.Duration
	// duration is the nominal length.
	duration time.Duration
	// playing is true while ticks advance the position.
	playing bool
	// closed is true once the source is released.
	closed bool
	// stop belongs to the running tick goroutine, nil when none runs.
	stop chan struct{}
}

// NewSimulatedSource creates a paused simulated source at position zero.
func NewSimulatedSource(duration, interval time.Duration, handler EventHandler) *SimulatedSource {
	if interval <= 0 {
		interval = DefaultSimulatedInterval
	}

	if handler == nil {
		handler = func(Event) {}
	}

	return &SimulatedSource{
		handler:  handler,
		interval: interval,
		duration: max(duration, 0),
	}
}

// Play starts ticking. A finished track starts over.
func (s *SimulatedSource) Play() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrSourceClosed
	}

	if s.playing {
		return nil
	}

	if s.position >= s.duration {
		s.position = 0
	}

	s.playing = true
	s.stop = make(chan struct{})

	go s.run(s.stop)

	return nil
}

// Pause stops ticking.
func (s *SimulatedSource) Pause() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.playing = false
	s.stopTicking()
}

// Seek sets the simulated position.
func (s *SimulatedSource) Seek(pos time.Duration) time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.position = max(0, min(pos, s.duration))

	return s.position
}

// Position returns the simulated position.
func (s *SimulatedSource) Position() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.position
}

// Duration returns the nominal length.
func (s *SimulatedSource) Duration() time.Duration {
	return s.duration
}

// SetVolume does nothing, a simulated track is silent.
func (s *SimulatedSource) SetVolume(float64) {}

// Close stops ticking for good.
func (s *SimulatedSource) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	s.playing = false
	s.stopTicking()

	return nil
}

func (s *SimulatedSource) stopTicking() {
	if s.stop != nil {
		close(s.stop)
		s.stop = nil
	}
}

func (s *SimulatedSource) run(stop chan struct{}) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			if !s.step(stop) {
				return
			}
		}
	}
}

// step advances one tick and reports whether ticking should continue.
func (s *SimulatedSource) step(stop chan struct{}) bool {
	s.mu.Lock()

	// A goroutine of an earlier Play must not advance the position.
	if !s.playing || s.closed || s.stop != stop {
		s.mu.Unlock()

		return false
	}

	s.position = min(s.position+simulatedStep, s.duration)
	progress := Event{Kind: EventProgress, Position: s.position, Duration: s.duration}

	ended := s.position >= s.duration
	if ended {
		s.playing = false
		s.stop = nil
	}

	s.mu.Unlock()

	s.handler(progress)

	if ended {
		s.handler(Event{Kind: EventEnded, Position: progress.Position, Duration: s.duration})
	}

	return !ended
}

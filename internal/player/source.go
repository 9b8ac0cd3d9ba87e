package player

import (
	"context"
	"time"
)

// EventKind classifies position source events.
type EventKind int

const (
	// EventProgress reports the current position.
	EventProgress EventKind = iota
	// EventDuration reports the real media length once known.
	EventDuration
	// EventEnded reports natural completion.
	EventEnded
	// EventFailed reports that the media could not be opened or decoded.
	EventFailed
)

// String implements fmt.Stringer.
func (k EventKind) String() string {
	switch k {
	case EventProgress:
		return "progress"
	case EventDuration:
		return "duration"
	case EventEnded:
		return "ended"
	case EventFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Event is emitted by a position source from its own goroutine.
type Event struct {
	// Kind classifies the event.
	Kind EventKind
	// Position is the position at the time of the event.
	Position time.Duration
	// Duration is the known length at the time of the event.
	Duration time.Duration
	// Err is the failure of an EventFailed.
	Err error
}

// EventHandler receives events. Sources never call it while holding their own locks.
type EventHandler func(Event)

// PositionSource plays one track and reports its position.
type PositionSource interface {
	// Play starts or resumes without blocking on I/O. It fails for media that already
	// failed to load; a failure found while loading is reported with EventFailed.
	Play() error
	// Pause stops advancing.
	Pause()
	// Seek moves to pos, clamped to [0, Duration()], and returns the clamped position.
	Seek(pos time.Duration) time.Duration
	// Position returns the current position.
	Position() time.Duration
	// Duration returns the real length when known, the nominal one otherwise.
	Duration() time.Duration
	// SetVolume sets the level in [0, 1].
	SetVolume(level float64)
	// Close releases the source; no events are emitted afterwards.
	Close() error
}

// SourceFactory creates the position source for a descriptor.
type SourceFactory func(ctx context.Context, d Descriptor, handler EventHandler) PositionSource

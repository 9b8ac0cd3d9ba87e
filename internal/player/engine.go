package player

import (
	"context"
	"time"
)

// SequencedHandler receives events tagged with the load they belong to.
type SequencedHandler func(seq uint64, ev Event)

// Engine owns the position source of the current track. Only one source exists at a time:
// loading a track or releasing closes the previous one first.
// Engine is not safe for concurrent use; the controller serializes access.
type Engine struct {
	// factory creates sources.
	factory SourceFactory
	// source is the current source, nil when nothing is loaded.
	source PositionSource
	// nominal is the current descriptor's nominal length.
	nominal time.Duration
	// seq increases on every load and release; events of older loads are stale.
	seq uint64
	// volume is applied to every new source.
	volume float64
}

// NewEngine creates an engine with full volume.
func NewEngine(factory SourceFactory) *Engine {
	return &Engine{factory: factory, volume: 1}
}

// Load releases the current source and binds a new paused one for d.
// It returns the sequence number the new source's events are tagged with.
func (e *Engine) Load(ctx context.Context, d Descriptor, handler SequencedHandler) uint64 {
	e.Release()

	seq := e.seq
	e.nominal = d.NominalDuration()
	e.source = e.factory(ctx, d, func(ev Event) { handler(seq, ev) })
	e.source.SetVolume(e.volume)

	return seq
}

// Release closes the current source.
func (e *Engine) Release() {
	e.seq++

	if e.source == nil {
		return
	}

	_ = e.source.Close()
	e.source = nil
	e.nominal = 0
}

// Loaded reports whether a source is bound.
func (e *Engine) Loaded() bool {
	return e.source != nil
}

// Seq returns the sequence number of the current load.
func (e *Engine) Seq() uint64 {
	return e.seq
}

// Play starts the current source.
func (e *Engine) Play() error {
	if e.source == nil {
		return ErrNothingLoaded
	}

	return e.source.Play()
}

// Pause pauses the current source.
func (e *Engine) Pause() {
	if e.source != nil {
		e.source.Pause()
	}
}

// Seek moves the current source to pos clamped to [0, Duration()].
func (e *Engine) Seek(pos time.Duration) time.Duration {
	if e.source == nil {
		return 0
	}

	return e.source.Seek(max(0, min(pos, e.Duration())))
}

// Position returns the current position.
func (e *Engine) Position() time.Duration {
	if e.source == nil {
		return 0
	}

	return e.source.Position()
}

// Duration returns the effective length: the source's when known, the nominal one otherwise.
func (e *Engine) Duration() time.Duration {
	if e.source == nil {
		return 0
	}

	if d := e.source.Duration(); d > 0 {
		return d
	}

	return e.nominal
}

// SetVolume clamps level to [0, 1] and applies it to the current and every later source.
func (e *Engine) SetVolume(level float64) float64 {
	e.volume = max(0, min(level, 1))

	if e.source != nil {
		e.source.SetVolume(e.volume)
	}

	return e.volume
}

// Volume returns the current level.
func (e *Engine) Volume() float64 {
	return e.volume
}

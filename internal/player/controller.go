package player

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/oshokin/studycast/internal/ambient"
	"github.com/oshokin/studycast/internal/logger"
	"github.com/oshokin/studycast/internal/utils"
)

// Static error definitions for better error handling.
var (
	// ErrNothingLoaded indicates a playback command without a current track.
	ErrNothingLoaded = errors.New("no track is loaded")
	// ErrControllerClosed indicates use of a closed controller.
	ErrControllerClosed = errors.New("player is closed")
)

// Ambient follows the primary playback state with a background texture.
type Ambient interface {
	// Sync starts, switches or stops the texture.
	Sync(playing bool, bg ambient.Background)
}

// Snapshot is a consistent copy of the controller state.
type Snapshot struct {
	// Current is the current track, nil when idle.
	Current *Descriptor
	// Progress is the position of the current track.
	Progress time.Duration
	// Duration is the effective length of the current track.
	Duration time.Duration
	// IsPlaying is true while the current track advances.
	IsPlaying bool
	// Queued is the number of pending tracks.
	Queued int
	// Background is the texture the current track plays over.
	Background ambient.Background
	// Volume is the playback level.
	Volume float64
}

// Idle reports whether nothing is current.
func (s Snapshot) Idle() bool {
	return s.Current == nil
}

// Controller owns the queue, the current track and the completed set.
// Every transition runs under one lock; source events of released tracks are dropped.
type Controller struct {
	// mu serializes every transition.
	mu sync.Mutex
	// ctx is handed to position sources and used for logging.
	ctx context.Context
	// engine plays the current track.
	engine *Engine
	// queue holds pending tracks.
	queue Queue
	// completed records finished subtopics.
	completed *CompletedSet
	// ambient follows the playback state, may be nil.
	ambient Ambient
	// background is used for tracks without their own texture.
	background ambient.Background
	// current is the current track, nil when idle.
	current *Descriptor
	// progress is the position of the current track.
	progress time.Duration
	// duration is the effective length of the current track.
	duration time.Duration
	// playing is true while the current track advances.
	playing bool
	// closed rejects every further command.
	closed bool
	// changed is closed and replaced on every state change.
	changed chan struct{}
}

// NewController creates an idle controller.
func NewController(ctx context.Context, factory SourceFactory, ambientLayer Ambient) *Controller {
	return &Controller{
		ctx:        ctx,
		engine:     NewEngine(factory),
		completed:  NewCompletedSet(),
		ambient:    ambientLayer,
		background: ambient.BackgroundNone,
		changed:    make(chan struct{}),
	}
}

// Enqueue appends d unless it is current or already queued. It never starts playback.
func (c *Controller) Enqueue(d Descriptor) (bool, error) {
	if err := d.Validate(); err != nil {
		return false, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return false, ErrControllerClosed
	}

	added := c.enqueueLocked(d)
	if added {
		c.notifyLocked()
	}

	return added, nil
}

// EnqueueAll appends every descriptor in order with the same deduplication as Enqueue.
// It returns how many were added.
func (c *Controller) EnqueueAll(ds []Descriptor) (int, error) {
	for _, d := range ds {
		if err := d.Validate(); err != nil {
			return 0, err
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return 0, ErrControllerClosed
	}

	added := 0

	for _, d := range ds {
		if c.enqueueLocked(d) {
			added++
		}
	}

	if added > 0 {
		c.notifyLocked()
	}

	return added, nil
}

// EnqueueOrPlay plays d right away when nothing is current, and enqueues it otherwise.
// It reports whether playback started.
func (c *Controller) EnqueueOrPlay(d Descriptor) (bool, error) {
	if err := d.Validate(); err != nil {
		return false, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return false, ErrControllerClosed
	}

	if c.current == nil {
		c.playNowLocked(d)

		return true, nil
	}

	if c.enqueueLocked(d) {
		c.notifyLocked()
	}

	return false, nil
}

// PlayNow makes d current and plays it from the start; a queued copy of d is dropped,
// the rest of the queue keeps its order.
func (c *Controller) PlayNow(d Descriptor) error {
	if err := d.Validate(); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return ErrControllerClosed
	}

	c.playNowLocked(d)

	return nil
}

// Advance moves the queue head to current and plays it, or goes idle when the queue is empty.
func (c *Controller) Advance() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}

	c.advanceLocked()
}

// Skip advances without marking the current subtopic completed.
func (c *Controller) Skip() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed || c.current == nil {
		return
	}

	logger.Debugf(c.ctx, "Skipping %s", c.current.ID)
	c.advanceLocked()
}

// Clear empties the queue and releases the current track.
func (c *Controller) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.queue.Clear()
	c.releaseLocked()
}

// TogglePlayback pauses a playing track or resumes a paused one and returns the new playing state.
// A track that fails to start stays paused.
func (c *Controller) TogglePlayback() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed || c.current == nil {
		return false
	}

	if c.playing {
		c.pauseLocked()
	} else {
		c.startLocked()
	}

	return c.playing
}

// Play resumes the current track.
func (c *Controller) Play() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed || c.current == nil {
		return false
	}

	if !c.playing {
		c.startLocked()
	}

	return c.playing
}

// Pause pauses the current track.
func (c *Controller) Pause() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed || c.current == nil || !c.playing {
		return
	}

	c.pauseLocked()
}

// Seek moves the current track to pos clamped to [0, duration] and returns the new position.
func (c *Controller) Seek(pos time.Duration) time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed || c.current == nil {
		return 0
	}

	c.progress = c.engine.Seek(utils.ClampDuration(pos, 0, c.duration))
	c.notifyLocked()

	return c.progress
}

// SetVolume sets the playback level, clamped to [0, 1], and returns it.
func (c *Controller) SetVolume(level float64) float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	level = c.engine.SetVolume(level)
	c.notifyLocked()

	return level
}

// SetBackground sets the texture for tracks without their own one.
func (c *Controller) SetBackground(bg ambient.Background) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.background = bg
	c.syncAmbientLocked()
	c.notifyLocked()
}

// Snapshot returns a copy of the current state.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	snapshot := Snapshot{
		Progress:   c.progress,
		Duration:   c.duration,
		IsPlaying:  c.playing,
		Queued:     c.queue.Len(),
		Background: c.backgroundLocked(),
		Volume:     c.engine.Volume(),
	}

	if c.current != nil {
		current := *c.current
		snapshot.Current = &current
	}

	return snapshot
}

// Queue returns the pending tracks in play order.
func (c *Controller) Queue() []Descriptor {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.queue.Items()
}

// Completed returns the completed subtopic ids in completion order.
func (c *Controller) Completed() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.completed.IDs()
}

// IsCompleted reports whether a subtopic was completed.
func (c *Controller) IsCompleted(subtopicID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.completed.Has(subtopicID)
}

// Changes returns a channel that is closed on the next state change.
func (c *Controller) Changes() <-chan struct{} {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.changed
}

// Wait blocks until nothing is current and the queue is empty, or ctx is done.
func (c *Controller) Wait(ctx context.Context) error {
	for {
		c.mu.Lock()
		idle := c.closed || (c.current == nil && c.queue.Len() == 0)
		changed := c.changed
		c.mu.Unlock()

		if idle {
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-changed:
		}
	}
}

// Close releases the current track, empties the queue and silences the ambient layer.
func (c *Controller) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}

	c.queue.Clear()
	c.releaseLocked()
	c.closed = true
	c.notifyLocked()

	return nil
}

func (c *Controller) enqueueLocked(d Descriptor) bool {
	if c.current != nil && c.current.ID == d.ID {
		return false
	}

	return c.queue.Push(d)
}

func (c *Controller) playNowLocked(d Descriptor) {
	c.queue.Remove(d.ID)
	c.loadLocked(d)
	c.startLocked()
}

func (c *Controller) advanceLocked() {
	next, ok := c.queue.Pop()
	if !ok {
		c.releaseLocked()

		return
	}

	c.loadLocked(next)
	c.startLocked()
}

func (c *Controller) loadLocked(d Descriptor) {
	c.current = &d
	c.progress = 0
	c.playing = false
	c.engine.Load(c.ctx, d, c.handleEvent)
	c.duration = c.engine.Duration()

	logger.Infof(c.ctx, "Now playing: %s", d)
	c.notifyLocked()
}

func (c *Controller) startLocked() {
	if err := c.engine.Play(); err != nil {
		// Playback failures never escape, the track just stays paused.
		logger.Warnf(c.ctx, "Failed to play %s: %v", c.current.ID, err)

		c.playing = false
	} else {
		c.playing = true

		if d := c.engine.Duration(); d > 0 {
			c.duration = d
		}
	}

	c.syncAmbientLocked()
	c.notifyLocked()
}

func (c *Controller) pauseLocked() {
	c.engine.Pause()
	c.playing = false
	c.progress = utils.ClampDuration(c.engine.Position(), 0, c.duration)
	c.syncAmbientLocked()
	c.notifyLocked()
}

func (c *Controller) releaseLocked() {
	c.engine.Release()
	c.current = nil
	c.progress = 0
	c.duration = 0
	c.playing = false
	c.syncAmbientLocked()
	c.notifyLocked()
}

func (c *Controller) handleEvent(seq uint64, ev Event) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed || c.current == nil || seq != c.engine.Seq() {
		return
	}

	switch ev.Kind {
	case EventProgress:
		c.progress = utils.ClampDuration(ev.Position, 0, c.duration)
	case EventDuration:
		if ev.Duration > 0 {
			c.duration = ev.Duration
			c.progress = min(c.progress, c.duration)
		}
	case EventEnded:
		if c.completed.Add(c.current.SubtopicID) {
			logger.Debugf(c.ctx, "Completed subtopic %s", c.current.SubtopicID)
		}

		c.playing = false
		c.progress = c.duration
		c.advanceLocked()
	case EventFailed:
		logger.Warnf(c.ctx, "Failed to play %s: %v", c.current.ID, ev.Err)

		c.playing = false
		c.progress = utils.ClampDuration(c.engine.Position(), 0, c.duration)
		c.syncAmbientLocked()
	}

	c.notifyLocked()
}

func (c *Controller) backgroundLocked() ambient.Background {
	if c.current != nil && c.current.Background != "" {
		return c.current.Background
	}

	return c.background
}

func (c *Controller) syncAmbientLocked() {
	if c.ambient == nil {
		return
	}

	c.ambient.Sync(c.playing && c.current != nil, c.backgroundLocked())
}

func (c *Controller) notifyLocked() {
	close(c.changed)
	c.changed = make(chan struct{})
}

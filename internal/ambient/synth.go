package ambient

import (
	"context"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/oshokin/studycast/internal/logger"
)

const (
	// noiseBufferLength is the length of the looped noise buffer.
	noiseBufferLength = 2 * time.Second
	// noiseAmplitude scales uniform noise in [-1, 1].
	noiseAmplitude = 0.4

	// whiteNoiseGain is the output gain of unfiltered noise.
	whiteNoiseGain = 0.06
	// filteredNoiseGain is the output gain of filtered textures.
	filteredNoiseGain = 0.04

	// rainCutoff is the high-pass cutoff of the rain texture in Hz.
	rainCutoff = 1000
	// deltaCutoff is the low-pass cutoff of the delta waves texture in Hz.
	deltaCutoff = 500
	// deltaSwellFrequency is the rate of the delta waves swell in Hz.
	deltaSwellFrequency = 0.8
	// deltaSwellDepth is the gain added and removed by the swell.
	deltaSwellDepth = 0.03
)

// GraphFactory creates the audio graph a synthesizer renders on.
type GraphFactory func() (Graph, error)

// chain holds the nodes of one running texture.
type chain struct {
	// noise feeds the chain.
	noise SourceNode
	// filter is nil for white noise.
	filter Node
	// gain is the last node before the destination.
	gain GainNode
	// oscillator and oscillatorGain swell the gain of delta waves; nil otherwise.
	oscillator     SourceNode
	oscillatorGain GainNode
}

// Synthesizer plays one ambient texture at a time while primary playback is running.
type Synthesizer struct {
	// mu serializes start and stop.
	mu sync.Mutex
	// newGraph creates the graph on first use.
	newGraph GraphFactory
	// graph is created lazily once and reused.
	graph Graph
	// graphFailed stops retrying after the graph could not be created.
	graphFailed bool
	// current is the running chain, nil when silent.
	current *chain
	// active is the texture of the running chain.
	active Background
	// noise generates the noise buffer samples.
	noise func() float64
}

// NewSynthesizer creates a synthesizer. The graph is created on the first audible start.
func NewSynthesizer(newGraph GraphFactory) *Synthesizer {
	return &Synthesizer{
		newGraph: newGraph,
		active:   BackgroundNone,
		//nolint:gosec // Noise does not need a cryptographic source.
		noise: rand.Float64,
	}
}

// Sync starts, switches or stops the texture to follow the primary playback state.
func (s *Synthesizer) Sync(playing bool, bg Background) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !playing || !bg.Audible() {
		s.stopLocked()

		return
	}

	if s.current != nil && s.active == bg {
		return
	}

	s.stopLocked()
	s.startLocked(bg)
}

// Start plays bg, replacing any running texture.
func (s *Synthesizer) Start(bg Background) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopLocked()

	if bg.Audible() {
		s.startLocked(bg)
	}
}

// Stop silences the synthesizer and disconnects every node.
func (s *Synthesizer) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopLocked()
}

// Active returns the running texture, or none.
func (s *Synthesizer) Active() Background {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return BackgroundNone
	}

	return s.active
}

// Close stops the texture and releases the graph.
func (s *Synthesizer) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopLocked()

	if s.graph == nil {
		return nil
	}

	err := s.graph.Close()
	s.graph = nil

	return err
}

func (s *Synthesizer) ensureGraph() bool {
	if s.graph != nil {
		return true
	}

	if s.graphFailed || s.newGraph == nil {
		return false
	}

	graph, err := s.newGraph()
	if err != nil {
		s.graphFailed = true

		logger.Warnf(context.Background(), "Ambient sound disabled, audio graph is unavailable: %v", err)

		return false
	}

	s.graph = graph

	return true
}

func (s *Synthesizer) startLocked(bg Background) {
	if !s.ensureGraph() {
		return
	}

	c, err := s.build(bg)
	if err != nil {
		logger.Debugf(context.Background(), "Failed to build ambient %s chain: %v", bg, err)

		return
	}

	c.noise.Start()

	if c.oscillator != nil {
		c.oscillator.Start()
	}

	s.current = c
	s.active = bg
}

//nolint:cyclop // Each node and connection can fail on its own.
func (s *Synthesizer) build(bg Background) (*chain, error) {
	var (
		c   = &chain{}
		err error
	)

	c.noise, err = s.graph.NewNoiseSource(s.noiseBuffer())
	if err != nil {
		return nil, err
	}

	gainValue := filteredNoiseGain
	if bg == BackgroundWhiteNoise {
		gainValue = whiteNoiseGain
	}

	c.gain, err = s.graph.NewGain(gainValue)
	if err != nil {
		return nil, err
	}

	switch bg {
	case BackgroundRain:
		c.filter, err = s.graph.NewFilter(FilterHighPass, rainCutoff)
	case BackgroundDeltaWaves:
		c.filter, err = s.graph.NewFilter(FilterLowPass, deltaCutoff)
	}

	if err != nil {
		c.disconnect()

		return nil, err
	}

	if bg == BackgroundDeltaWaves {
		if err = s.buildSwell(c); err != nil {
			c.disconnect()

			return nil, err
		}
	}

	if err = c.connect(s.graph.Destination()); err != nil {
		c.disconnect()

		return nil, err
	}

	return c, nil
}

func (s *Synthesizer) buildSwell(c *chain) error {
	var err error

	c.oscillator, err = s.graph.NewOscillator(deltaSwellFrequency)
	if err != nil {
		return err
	}

	c.oscillatorGain, err = s.graph.NewGain(deltaSwellDepth)
	if err != nil {
		return err
	}

	if err = c.oscillator.Connect(c.oscillatorGain); err != nil {
		return err
	}

	return c.oscillatorGain.ConnectParam(c.gain.Gain())
}

func (c *chain) connect(destination Node) error {
	head := Node(c.noise)

	if c.filter != nil {
		if err := c.noise.Connect(c.filter); err != nil {
			return err
		}

		head = c.filter
	}

	if err := head.Connect(c.gain); err != nil {
		return err
	}

	return c.gain.Connect(destination)
}

// disconnect stops the sources and removes every connection of the chain.
func (c *chain) disconnect() {
	if c.noise != nil {
		c.noise.Stop()
		c.noise.Disconnect()
	}

	if c.oscillator != nil {
		c.oscillator.Stop()
		c.oscillator.Disconnect()
	}

	if c.filter != nil {
		c.filter.Disconnect()
	}

	if c.oscillatorGain != nil {
		c.oscillatorGain.Disconnect()
	}

	if c.gain != nil {
		c.gain.Disconnect()
	}
}

func (s *Synthesizer) stopLocked() {
	if s.current == nil {
		return
	}

	s.current.disconnect()
	s.current = nil
	s.active = BackgroundNone
}

func (s *Synthesizer) noiseBuffer() []float64 {
	buffer := make([]float64, int(float64(s.graph.SampleRate())*noiseBufferLength.Seconds()))
	for i := range buffer {
		buffer[i] = (s.noise()*2 - 1) * noiseAmplitude
	}

	return buffer
}

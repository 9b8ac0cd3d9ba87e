package ambient

import (
	"fmt"
	"slices"
	"sync"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/generators"

	"github.com/oshokin/studycast/internal/audio"
)

// BeepGraph is a pull-based audio graph rendered as a single beep streamer.
// Every node is expected to feed exactly one target, since each pull advances the node's state.
type BeepGraph struct {
	// mu guards the topology and node state; it is held for the whole of every pull.
	mu sync.Mutex
	// sampleRate is the rate nodes render at.
	sampleRate beep.SampleRate
	// destination mixes everything connected to it.
	destination *destinationNode
	// closed makes the streamer drain.
	closed bool
}

// renderer is implemented by every node of a BeepGraph.
type renderer interface {
	core() *nodeCore
	render(samples [][2]float64)
}

// nodeCore keeps the connections shared by all node kinds.
type nodeCore struct {
	// graph is the owning graph.
	graph *BeepGraph
	// self is the node this core belongs to.
	self renderer
	// inputs feed this node.
	inputs []renderer
	// targets are the nodes this node feeds.
	targets []*nodeCore
	// paramTargets are the parameters this node modulates.
	paramTargets []*gainParam
	// scratch is reused to render inputs.
	scratch [][2]float64
}

// NewBeepGraph creates a graph; when output is not nil the graph starts playing through it immediately.
func NewBeepGraph(sampleRate beep.SampleRate, output audio.Output) *BeepGraph {
	g := &BeepGraph{sampleRate: sampleRate}
	g.destination = &destinationNode{}
	g.destination.nodeCore = g.newCore(g.destination)

	if output != nil {
		output.Play(g.Streamer())
	}

	return g
}

func (g *BeepGraph) newCore(self renderer) *nodeCore {
	return &nodeCore{graph: g, self: self}
}

// Streamer returns the graph output. It produces silence while nothing is connected and drains once the graph is closed.
func (g *BeepGraph) Streamer() beep.Streamer {
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		g.mu.Lock()
		defer g.mu.Unlock()

		if g.closed {
			return 0, false
		}

		g.destination.render(samples)

		return len(samples), true
	})
}

// SampleRate returns the graph sample rate in Hz.
func (g *BeepGraph) SampleRate() int {
	return int(g.sampleRate)
}

// Destination returns the graph output node.
func (g *BeepGraph) Destination() Node {
	return g.destination
}

// NewNoiseSource creates a source looping buffer on both channels.
func (g *BeepGraph) NewNoiseSource(buffer []float64) (SourceNode, error) {
	if len(buffer) == 0 {
		return nil, ErrEmptyBuffer
	}

	if err := g.ensureOpen(); err != nil {
		return nil, err
	}

	n := &noiseNode{buffer: slices.Clone(buffer)}
	n.nodeCore = g.newCore(n)

	return n, nil
}

// NewFilter creates a biquad filter with a fixed resonance.
func (g *BeepGraph) NewFilter(kind FilterKind, cutoff float64) (Node, error) {
	if cutoff <= 0 || cutoff >= float64(g.sampleRate)/2 {
		return nil, fmt.Errorf("%w: %.1f Hz", ErrInvalidFrequency, cutoff)
	}

	if err := g.ensureOpen(); err != nil {
		return nil, err
	}

	n := &filterNode{filter: newBiquad(kind, cutoff, float64(g.sampleRate), defaultQ)}
	n.nodeCore = g.newCore(n)

	return n, nil
}

// NewGain creates a gain node.
func (g *BeepGraph) NewGain(value float64) (GainNode, error) {
	if err := g.ensureOpen(); err != nil {
		return nil, err
	}

	n := &gainNode{}
	n.param = &gainParam{graph: g, value: value}
	n.nodeCore = g.newCore(n)

	return n, nil
}

// NewOscillator creates a sine oscillator.
func (g *BeepGraph) NewOscillator(frequency float64) (SourceNode, error) {
	if frequency <= 0 || frequency >= float64(g.sampleRate)/2 {
		return nil, fmt.Errorf("%w: %.1f Hz", ErrInvalidFrequency, frequency)
	}

	if err := g.ensureOpen(); err != nil {
		return nil, err
	}

	tone, err := generators.SineTone(g.sampleRate, frequency)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFrequency, err)
	}

	n := &oscillatorNode{tone: tone}
	n.nodeCore = g.newCore(n)

	return n, nil
}

// Close drains the graph streamer.
func (g *BeepGraph) Close() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.closed = true

	return nil
}

func (g *BeepGraph) ensureOpen() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.closed {
		return ErrGraphClosed
	}

	return nil
}

func (c *nodeCore) core() *nodeCore {
	return c
}

// Connect routes this node into dst.
func (c *nodeCore) Connect(dst Node) error {
	target, ok := dst.(renderer)
	if !ok || target.core().graph != c.graph {
		return ErrForeignNode
	}

	c.graph.mu.Lock()
	defer c.graph.mu.Unlock()

	targetCore := target.core()
	targetCore.inputs = append(targetCore.inputs, c.self)
	c.targets = append(c.targets, targetCore)

	return nil
}

// ConnectParam routes this node into a gain parameter.
func (c *nodeCore) ConnectParam(p Param) error {
	param, ok := p.(*gainParam)
	if !ok || param.graph != c.graph {
		return ErrForeignNode
	}

	c.graph.mu.Lock()
	defer c.graph.mu.Unlock()

	param.inputs = append(param.inputs, c.self)
	c.paramTargets = append(c.paramTargets, param)

	return nil
}

// Disconnect removes every outgoing connection.
func (c *nodeCore) Disconnect() {
	c.graph.mu.Lock()
	defer c.graph.mu.Unlock()

	for _, target := range c.targets {
		target.inputs = slices.DeleteFunc(target.inputs, func(r renderer) bool { return r == c.self })
	}

	for _, param := range c.paramTargets {
		param.inputs = slices.DeleteFunc(param.inputs, func(r renderer) bool { return r == c.self })
	}

	c.targets = nil
	c.paramTargets = nil
}

// mixInputs renders the sum of inputs into samples.
func (c *nodeCore) mixInputs(samples [][2]float64) {
	clear(samples)
	mixInto(samples, c.inputs, &c.scratch)
}

func mixInto(samples [][2]float64, inputs []renderer, scratch *[][2]float64) {
	if len(inputs) == 0 {
		return
	}

	if cap(*scratch) < len(samples) {
		*scratch = make([][2]float64, len(samples))
	}

	buf := (*scratch)[:len(samples)]

	for _, input := range inputs {
		input.render(buf)

		for i := range samples {
			samples[i][0] += buf[i][0]
			samples[i][1] += buf[i][1]
		}
	}
}

type destinationNode struct {
	*nodeCore
}

func (n *destinationNode) render(samples [][2]float64) {
	n.mixInputs(samples)
}

type noiseNode struct {
	*nodeCore

	buffer  []float64
	pos     int
	started bool
}

// Start starts looping the buffer.
func (n *noiseNode) Start() {
	n.graph.mu.Lock()
	defer n.graph.mu.Unlock()

	n.started = true
}

// Stop silences the source.
func (n *noiseNode) Stop() {
	n.graph.mu.Lock()
	defer n.graph.mu.Unlock()

	n.started = false
}

func (n *noiseNode) render(samples [][2]float64) {
	if !n.started {
		clear(samples)

		return
	}

	for i := range samples {
		v := n.buffer[n.pos]
		samples[i] = [2]float64{v, v}
		n.pos = (n.pos + 1) % len(n.buffer)
	}
}

type oscillatorNode struct {
	*nodeCore

	tone    beep.Streamer
	started bool
}

// Start starts the oscillator.
func (n *oscillatorNode) Start() {
	n.graph.mu.Lock()
	defer n.graph.mu.Unlock()

	n.started = true
}

// Stop silences the oscillator.
func (n *oscillatorNode) Stop() {
	n.graph.mu.Lock()
	defer n.graph.mu.Unlock()

	n.started = false
}

func (n *oscillatorNode) render(samples [][2]float64) {
	if !n.started {
		clear(samples)

		return
	}

	n.tone.Stream(samples)
}

type filterNode struct {
	*nodeCore

	filter *biquad
}

func (n *filterNode) render(samples [][2]float64) {
	n.mixInputs(samples)
	n.filter.process(samples)
}

// gainParam is a gain value plus whatever is connected to it, sample by sample.
type gainParam struct {
	graph   *BeepGraph
	value   float64
	inputs  []renderer
	scratch [][2]float64
	mod     [][2]float64
}

// Value returns the base gain.
func (p *gainParam) Value() float64 {
	return p.value
}

type gainNode struct {
	*nodeCore

	param *gainParam
}

// Gain returns the gain parameter.
func (n *gainNode) Gain() Param {
	return n.param
}

func (n *gainNode) render(samples [][2]float64) {
	n.mixInputs(samples)

	p := n.param
	if len(p.inputs) == 0 {
		for i := range samples {
			samples[i][0] *= p.value
			samples[i][1] *= p.value
		}

		return
	}

	if cap(p.mod) < len(samples) {
		p.mod = make([][2]float64, len(samples))
	}

	mod := p.mod[:len(samples)]
	clear(mod)
	mixInto(mod, p.inputs, &p.scratch)

	for i := range samples {
		samples[i][0] *= p.value + mod[i][0]
		samples[i][1] *= p.value + mod[i][1]
	}
}

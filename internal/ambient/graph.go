package ambient

import (
	"errors"
)

// FilterKind selects the biquad response.
type FilterKind int

const (
	// FilterLowPass passes frequencies below the cutoff.
	FilterLowPass FilterKind = iota
	// FilterHighPass passes frequencies above the cutoff.
	FilterHighPass
)

// Node is a processing unit in an audio graph.
type Node interface {
	// Connect routes this node's output into dst.
	Connect(dst Node) error
	// Disconnect removes every outgoing connection of this node.
	Disconnect()
}

// Param is a modulatable node parameter.
type Param interface {
	// Value returns the parameter's base value.
	Value() float64
}

// SourceNode is a node that produces samples once started.
type SourceNode interface {
	Node
	// Start begins producing samples.
	Start()
	// Stop ends producing samples.
	Stop()
	// ConnectParam routes this node's output into a parameter of another node.
	ConnectParam(p Param) error
}

// GainNode scales its input.
type GainNode interface {
	Node
	// Gain returns the modulatable gain parameter.
	Gain() Param
	// ConnectParam routes this node's output into a parameter of another node.
	ConnectParam(p Param) error
}

// Graph creates nodes and owns the destination they are eventually connected to.
type Graph interface {
	// SampleRate returns the graph sample rate in Hz.
	SampleRate() int
	// NewNoiseSource creates a source looping the given mono buffer.
	NewNoiseSource(buffer []float64) (SourceNode, error)
	// NewFilter creates a biquad filter.
	NewFilter(kind FilterKind, cutoff float64) (Node, error)
	// NewGain creates a gain node.
	NewGain(value float64) (GainNode, error)
	// NewOscillator creates a sine oscillator.
	NewOscillator(frequency float64) (SourceNode, error)
	// Destination returns the graph output.
	Destination() Node
	// Close releases the graph.
	Close() error
}

// Static error definitions for better error handling.
var (
	// ErrForeignNode indicates a connection between nodes of different graphs.
	ErrForeignNode = errors.New("node belongs to another graph")
	// ErrInvalidFrequency indicates a frequency outside (0, Nyquist).
	ErrInvalidFrequency = errors.New("frequency must be between 0 and half the sample rate")
	// ErrEmptyBuffer indicates a noise source without samples.
	ErrEmptyBuffer = errors.New("noise buffer is empty")
	// ErrGraphClosed indicates use of a closed graph.
	ErrGraphClosed = errors.New("audio graph is closed")
)

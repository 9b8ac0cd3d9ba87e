// Package audio provides the output sinks and decoders the player and the ambient synthesizer render through.
// Outputs are either the system speaker or a headless sink that consumes samples in real time.
package audio

// Package ambient synthesizes background textures (rain, white noise, slow delta waves) that play under a lesson.
// A texture is a small node chain (noise source, optional filter, gain with optional modulation)
// built on an audio graph. The chain is rebuilt on every start and fully disconnected on every stop.
package ambient

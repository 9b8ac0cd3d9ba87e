// Package player implements StudyCast playback: track descriptors, the position sources that play them
// (decoded media or a simulated wall-clock timer), the playback engine that owns one source at a time,
// and the queue controller that advances through pending tracks and keeps the ambient layer in step.
package player

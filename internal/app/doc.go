// Package app holds the command executors of the StudyCast CLI. Each executor wires the
// backend client, the row store, the generation lock, the player and the studycast service
// from the configuration, runs one command and reports failures through the logger.
package app

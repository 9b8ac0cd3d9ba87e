// Package utils holds small helpers shared by the services: file name hygiene,
// duration parsing and formatting for playback, and content type checks for logging.
package utils

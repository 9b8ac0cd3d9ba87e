// Package logger wraps zap with a process-wide logger and context-aware helpers.
// Messages go to stderr in console format, and optionally to a rotating JSON file.
// A logger bound to a context with WithKV is picked up by every helper.
package logger

package supabase

import "errors"

// Static error definitions for better error handling.
var (
	// ErrUnexpectedHTTPStatus indicates an unexpected HTTP status code was received.
	ErrUnexpectedHTTPStatus = errors.New("unexpected HTTP status")
	// ErrFunctionFailed indicates that a backend function reported an error.
	ErrFunctionFailed = errors.New("backend function failed")
	// ErrEmptyFunctionResponse indicates that a backend function returned no data.
	ErrEmptyFunctionResponse = errors.New("no data returned from backend function")
	// ErrInvalidAudioURL indicates an audio location that cannot be resolved.
	ErrInvalidAudioURL = errors.New("invalid audio URL")
)

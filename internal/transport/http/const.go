package http

import "time"

const (
	// DefaultTimeout is the default timeout for backend requests.
	// Generation calls use their own, longer deadline through the request context.
	DefaultTimeout = 60 * time.Second

	// apiKeyHeader carries the project's public key on every backend request.
	apiKeyHeader = "apikey"
	// authorizationHeader carries the user's bearer token.
	authorizationHeader = "Authorization"
	// redactedValue replaces credentials in debug dumps.
	redactedValue = "[redacted]"
)

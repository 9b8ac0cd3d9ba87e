// Package http provides http.RoundTripper decorators used by the backend client:
// debug dumps of requests and responses with credentials redacted,
// User-Agent injection, and the key and bearer headers the hosted backend expects.
package http

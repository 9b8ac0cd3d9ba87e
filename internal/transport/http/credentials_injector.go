package http

import (
	"net/http"
)

// TokenSource returns the bearer token of the signed-in user, or an empty string.
type TokenSource func() string

// CredentialsInjector is an http.RoundTripper that adds the project key and the
// bearer token to each request that does not carry them yet.
type CredentialsInjector struct {
	// next is the underlying HTTP round tripper.
	next http.RoundTripper
	// apiKey is the project's public (anon) key.
	apiKey string
	// tokenSource yields the user's access token; anonymous requests fall back to apiKey.
	tokenSource TokenSource
}

// NewCredentialsInjector creates and returns a new instance of CredentialsInjector.
func NewCredentialsInjector(next http.RoundTripper, apiKey string, tokenSource TokenSource) http.RoundTripper {
	return &CredentialsInjector{
		next:        next,
		apiKey:      apiKey,
		tokenSource: tokenSource,
	}
}

// RoundTrip executes a single HTTP transaction with credentials attached.
// It implements the http.RoundTripper interface.
func (t *CredentialsInjector) RoundTrip(req *http.Request) (*http.Response, error) {
	if req == nil {
		return nil, ErrNilRequest
	}

	// RoundTrippers must not mutate the caller's request.
	req = req.Clone(req.Context())

	if req.Header.Get(apiKeyHeader) == "" && t.apiKey != "" {
		req.Header.Set(apiKeyHeader, t.apiKey)
	}

	if req.Header.Get(authorizationHeader) == "" {
		token := t.apiKey
		if t.tokenSource != nil {
			if userToken := t.tokenSource(); userToken != "" {
				token = userToken
			}
		}

		if token != "" {
			req.Header.Set(authorizationHeader, "Bearer "+token)
		}
	}

	return t.next.RoundTrip(req)
}

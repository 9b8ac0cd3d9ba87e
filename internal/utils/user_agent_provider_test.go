package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestSimpleUserAgentProvider_GetUserAgent tests the GetUserAgent method.
func TestSimpleUserAgentProvider_GetUserAgent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		userAgent string
	}{
		{name: "empty user agent", userAgent: ""},
		{name: "browser user agent", userAgent: "Mozilla/5.0 (X11; Linux x86_64)"},
		{name: "client user agent", userAgent: "studycast/0.1.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			provider := NewSimpleUserAgentProvider(tt.userAgent)
			assert.Implements(t, (*UserAgentProvider)(nil), provider)
			assert.Equal(t, tt.userAgent, provider.GetUserAgent())
		})
	}
}

// TestNewAppUserAgentProvider tests that the application name and version are embedded.
func TestNewAppUserAgentProvider(t *testing.T) {
	t.Parallel()

	provider := NewAppUserAgentProvider("studycast", "1.2.3")
	assert.Equal(t, "studycast/1.2.3 (+https://studycast.dev)", provider.GetUserAgent())
}

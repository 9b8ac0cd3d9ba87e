package utils

//go:generate $MOCKGEN -source=user_agent_provider.go -destination=mocks/user_agent_provider_mock.go

import "fmt"

// UserAgentProvider supplies the User-Agent header sent to the backend.
type UserAgentProvider interface {
	// GetUserAgent returns a User-Agent string.
	GetUserAgent() string
}

// SimpleUserAgentProvider returns a fixed User-Agent string.
type SimpleUserAgentProvider struct {
	// userAgent is the User-Agent string to return.
	userAgent string
}

// NewSimpleUserAgentProvider creates a provider that always returns userAgent.
func NewSimpleUserAgentProvider(userAgent string) UserAgentProvider {
	return &SimpleUserAgentProvider{userAgent: userAgent}
}

// NewAppUserAgentProvider creates a provider identifying this client and its version.
func NewAppUserAgentProvider(appName, appVersion string) UserAgentProvider {
	return NewSimpleUserAgentProvider(fmt.Sprintf("%s/%s (+https://studycast.dev)", appName, appVersion))
}

// GetUserAgent returns a User-Agent string.
func (p *SimpleUserAgentProvider) GetUserAgent() string {
	return p.userAgent
}

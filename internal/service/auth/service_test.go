package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oshokin/studycast/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{
		SupabaseURL: "https://abcdefgh.supabase.co",
		AppURL:      "https://studycast.dev",
	}
}

// TestNewService tests the NewService function.
func TestNewService(t *testing.T) {
	t.Parallel()

	cfg := testConfig()

	service, err := NewService(cfg)

	require.NoError(t, err)
	assert.Equal(t, cfg, service.cfg)
	assert.Equal(t, "sb-abcdefgh-auth-token", service.storageKey)
	assert.Nil(t, service.browser)
	assert.Nil(t, service.page)

	_, err = NewService(&config.Config{})
	require.ErrorIs(t, err, ErrInvalidSession)
}

// TestParseSession tests decoding of the stored session document.
func TestParseSession(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		raw      string
		expected *Session
		wantErr  bool
	}{
		{
			name: "complete",
			raw:  `{"access_token":"jwt","expires_at":1790000000,"user":{"id":"user-1","email":"sam@example.com"}}`,
			expected: &Session{
				AccessToken: "jwt",
				UserID:      "user-1",
				Email:       "sam@example.com",
				ExpiresAt:   time.Unix(1790000000, 0),
			},
		},
		{
			name:     "without expiry",
			raw:      `{"access_token":"jwt","user":{"id":"user-1"}}`,
			expected: &Session{AccessToken: "jwt", UserID: "user-1"},
		},
		{
			name:    "missing user",
			raw:     `{"access_token":"jwt"}`,
			wantErr: true,
		},
		{
			name:    "not json",
			raw:     `null-ish`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			session, err := ParseSession(tt.raw)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidSession)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, session)
		})
	}
}

// TestValidateLoginURL tests the validateLoginURL function.
func TestValidateLoginURL(t *testing.T) {
	t.Parallel()

	service := &ServiceImpl{cfg: testConfig()}

	tests := []struct {
		name        string
		url         string
		expectError bool
	}{
		{name: "application", url: "https://studycast.dev/auth"},
		{name: "backend callback", url: "https://abcdefgh.supabase.co/auth/v1/callback?code=1"},
		{name: "identity provider", url: "https://accounts.google.com/o/oauth2/auth"},
		{name: "blank page", url: "about:blank"},
		{name: "different domain", url: "https://google.com", expectError: true},
		{name: "lookalike domain", url: "https://studycast.dev.evil.com", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := service.validateLoginURL(tt.url)

			if tt.expectError {
				require.ErrorIs(t, err, ErrNavigatedAway)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// TestServiceImpl_Cleanup tests the cleanup function.
func TestServiceImpl_Cleanup(t *testing.T) {
	t.Parallel()

	service := &ServiceImpl{}

	assert.NotPanics(t, func() {
		service.cleanup(context.Background())
	})
}

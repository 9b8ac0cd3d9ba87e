package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/oshokin/studycast/internal/logger"
)

// storedSession is the session document the web application keeps in localStorage.
type storedSession struct {
	AccessToken string `json:"access_token"`
	ExpiresAt   int64  `json:"expires_at"`
	User        struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	} `json:"user"`
}

// SessionStorageKey returns the localStorage key of the session for a backend project URL,
// "sb-<project ref>-auth-token".
func SessionStorageKey(supabaseURL string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(supabaseURL))
	if err != nil || u.Hostname() == "" {
		return "", fmt.Errorf("%w: cannot derive the project from '%s'", ErrInvalidSession, supabaseURL)
	}

	ref, _, _ := strings.Cut(u.Hostname(), ".")

	return "sb-" + ref + "-auth-token", nil
}

// ParseSession decodes a stored session document.
func ParseSession(raw string) (*Session, error) {
	var stored storedSession
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSession, err)
	}

	if stored.AccessToken == "" || stored.User.ID == "" {
		return nil, fmt.Errorf("%w: missing access token or user id", ErrInvalidSession)
	}

	session := &Session{
		AccessToken: stored.AccessToken,
		UserID:      stored.User.ID,
		Email:       stored.User.Email,
	}

	if stored.ExpiresAt > 0 {
		session.ExpiresAt = time.Unix(stored.ExpiresAt, 0)
	}

	return session, nil
}

// readSession returns the stored session, or nil while the user is signed out.
func (s *ServiceImpl) readSession(ctx context.Context) *Session {
	defer func() {
		if r := recover(); r != nil {
			logger.Debugf(ctx, "readSession panic recovered: %v", r)
		}
	}()

	result, err := s.page.Eval(`(key) => window.localStorage.getItem(key)`, s.storageKey)
	if err != nil || result.Value.Nil() {
		return nil
	}

	session, err := ParseSession(result.Value.Str())
	if err != nil {
		logger.Debugf(ctx, "Ignoring stored session: %v", err)

		return nil
	}

	return session
}

package auth

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/oshokin/studycast/internal/logger"
)

// oauthHosts are identity providers the sign-in page may redirect to.
//
//nolint:gochecknoglobals // Immutable lookup table.
var oauthHosts = []string{"accounts.google.com", "appleid.apple.com"}

// waitForUserLogin opens the sign-in page and waits until the web application stores a session.
func (s *ServiceImpl) waitForUserLogin(ctx context.Context) (*Session, error) {
	loginURL := strings.TrimRight(s.cfg.AppURL, "/") + loginPath

	logger.Infof(ctx, "Opening %s", loginURL)
	s.page.MustNavigate(loginURL)

	logger.Info(ctx, "")
	logger.Info(ctx, "Please sign in to StudyCast in the browser window.")
	logger.Info(ctx, "The window closes by itself once you are signed in.")
	logger.Info(ctx, "")
	logger.Info(ctx, "Waiting for login to complete...")

	return s.waitForLoginComplete(ctx)
}

// waitForLoginComplete polls the stored session until it appears.
func (s *ServiceImpl) waitForLoginComplete(ctx context.Context) (*Session, error) {
	var (
		startTime = time.Now()
		ticker    = time.NewTicker(loginPollInterval)
		lastURL   string
	)

	defer ticker.Stop()

	for {
		if time.Since(startTime) > maxLoginWaitTime {
			return nil, fmt.Errorf("%w: waited for %v", ErrLoginTimeout, maxLoginWaitTime)
		}

		if !s.isBrowserAlive(ctx) {
			return nil, ErrBrowserClosed
		}

		currentURL, err := s.getCurrentURL(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to get current URL: %w", err)
		}

		if currentURL != lastURL {
			logger.Debugf(ctx, "URL changed: %s", currentURL)

			lastURL = currentURL
		}

		if err = s.validateLoginURL(currentURL); err != nil {
			return nil, err
		}

		if session := s.readSession(ctx); session != nil {
			logger.Info(ctx, "Session detected - login successful!")

			return session, nil
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}
}

// validateLoginURL validates that the user stays on the application, the backend or an identity provider.
func (s *ServiceImpl) validateLoginURL(currentURL string) error {
	u, err := url.Parse(currentURL)
	if err != nil {
		return fmt.Errorf("%w to: %s", ErrNavigatedAway, currentURL)
	}

	// Blank pages show up while the browser starts and between redirects.
	if u.Scheme == "about" || u.Scheme == "chrome" {
		return nil
	}

	host := u.Hostname()

	allowed := append([]string{hostOf(s.cfg.AppURL), hostOf(s.cfg.SupabaseURL)}, oauthHosts...)
	for _, candidate := range allowed {
		if candidate != "" && (host == candidate || strings.HasSuffix(host, "."+candidate)) {
			return nil
		}
	}

	return fmt.Errorf("%w to: %s", ErrNavigatedAway, currentURL)
}

func hostOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}

	return u.Hostname()
}

package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-rod/rod"

	"github.com/oshokin/studycast/internal/config"
	"github.com/oshokin/studycast/internal/logger"
)

const (
	// browserSlowMotionDelay is the delay between browser actions for visibility during debugging.
	browserSlowMotionDelay = 200 * time.Millisecond

	// loginPath is the sign-in page of the web application.
	loginPath = "/auth"

	// loginPollInterval is the interval for polling the login status.
	loginPollInterval = 1 * time.Second

	// maxLoginWaitTime is the maximum time to wait for user to complete login.
	maxLoginWaitTime = 10 * time.Minute

	// browserCleanupDelay is the delay to wait for Chrome to release file locks before cleanup.
	browserCleanupDelay = 500 * time.Millisecond
)

var (
	// ErrLoginTimeout is returned when login takes too long.
	ErrLoginTimeout = errors.New("login timeout exceeded")

	// ErrBrowserClosed is returned when the browser is closed by the user.
	ErrBrowserClosed = errors.New("browser was closed by user")

	// ErrNavigatedAway is returned when the user navigates away from the login flow.
	ErrNavigatedAway = errors.New("user navigated away from login flow")

	// ErrInvalidSession is returned when the stored session cannot be used.
	ErrInvalidSession = errors.New("stored session is invalid")
)

// Session is the signed-in user's hosted auth session.
type Session struct {
	// AccessToken is the bearer token for backend requests.
	AccessToken string
	// UserID is the signed-in user's id.
	UserID string
	// Email is the signed-in user's email, may be empty.
	Email string
	// ExpiresAt is when the access token expires, zero when unknown.
	ExpiresAt time.Time
}

// Service provides browser-based authentication.
type Service interface {
	// Login opens a browser, waits for the user to sign in and returns the session.
	Login(ctx context.Context) (*Session, error)
}

// ServiceImpl signs in through the web application with rod.
type ServiceImpl struct {
	cfg     *config.Config
	browser *rod.Browser
	page    *rod.Page
	// storageKey is the localStorage key holding the session.
	storageKey string
	// tempDir stores the temporary profile directory for cleanup.
	tempDir string
}

// NewService creates a new browser authentication service.
func NewService(cfg *config.Config) (*ServiceImpl, error) {
	storageKey, err := SessionStorageKey(cfg.SupabaseURL)
	if err != nil {
		return nil, err
	}

	return &ServiceImpl{
		cfg:        cfg,
		storageKey: storageKey,
	}, nil
}

// Login opens a browser, waits for the user to sign in and returns the session.
func (s *ServiceImpl) Login(ctx context.Context) (*Session, error) {
	logger.Info(ctx, "Starting browser-based authentication")

	if err := s.initBrowser(ctx); err != nil {
		return nil, fmt.Errorf("failed to initialize browser: %w", err)
	}

	defer s.cleanup(ctx)

	session, err := s.waitForUserLogin(ctx)
	if err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}

	logger.Infof(ctx, "Signed in as %s", session.UserID)

	return session, nil
}

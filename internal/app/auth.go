package app

import (
	"context"

	"github.com/oshokin/studycast/internal/config"
	"github.com/oshokin/studycast/internal/logger"
	"github.com/oshokin/studycast/internal/service/auth"
)

// ExecuteAuthLoginCommand executes the auth login command.
// It opens a browser, waits for the user to sign in, reads the session
// and saves it to the configuration file.
func ExecuteAuthLoginCommand(ctx context.Context, cfg *config.Config) {
	logger.Info(ctx, "Starting authentication process")

	authService, err := auth.NewService(cfg)
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize authentication service: %v", err)
		return
	}

	session, err := authService.Login(ctx)
	if err != nil {
		logger.Fatalf(ctx, "Authentication failed: %v", err)
		return
	}

	cfg.AccessToken = session.AccessToken
	cfg.UserID = session.UserID

	if err = config.SaveConfig(cfg); err != nil {
		logger.Fatalf(ctx, "Failed to save configuration: %v", err)
		return
	}

	if !session.ExpiresAt.IsZero() {
		logger.Infof(ctx, "The session expires at %s, sign in again afterwards.",
			session.ExpiresAt.Local().Format("Jan 2 15:04"))
	}

	logger.Info(ctx, "Configuration updated successfully!")
	logger.Info(ctx, "")
	logger.Info(ctx, "Try playing a topic:")
	logger.Info(ctx, "studycast play --subject chemistry --topic atomic-structure")
}

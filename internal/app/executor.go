package app

import (
	"context"
	"errors"

	"github.com/oshokin/studycast/internal/config"
	"github.com/oshokin/studycast/internal/logger"
)

// withService wires the components for a signed-in user, runs action and releases everything.
// Failures are fatal; an interrupted command exits quietly.
func withService(ctx context.Context, cfg *config.Config, opts componentOptions, action func(c *components) error) {
	if err := cfg.RequireSession(); err != nil {
		logger.Fatalf(ctx, "%v", err)
		return
	}

	c, err := newComponents(ctx, cfg, opts)
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize: %v", err)
		return
	}

	err = action(c)

	c.close(ctx)

	switch {
	case err == nil:
	case errors.Is(err, context.Canceled):
		logger.Info(ctx, "Interrupted")
	default:
		logger.Fatalf(ctx, "%v", err)
	}
}

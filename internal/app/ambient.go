package app

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gopxl/beep/v2"

	"github.com/oshokin/studycast/internal/ambient"
	"github.com/oshokin/studycast/internal/config"
	"github.com/oshokin/studycast/internal/constants"
	"github.com/oshokin/studycast/internal/logger"
)

// AmbientRenderOptions describe a texture export.
type AmbientRenderOptions struct {
	// Background is the texture name.
	Background string
	// Duration is the length of the file.
	Duration time.Duration
	// Path is the WAV file to write.
	Path string
}

// ExecuteAmbientRenderCommand writes a texture to a WAV file.
func ExecuteAmbientRenderCommand(ctx context.Context, cfg *config.Config, opts AmbientRenderOptions) {
	background, err := ambient.ParseBackground(opts.Background)
	if err != nil {
		logger.Fatalf(ctx, "%v", err)
		return
	}

	if err = os.MkdirAll(filepath.Dir(opts.Path), constants.DefaultFolderPermissions); err != nil {
		logger.Fatalf(ctx, "Failed to create output path: %v", err)
		return
	}

	f, err := os.Create(filepath.Clean(opts.Path))
	if err != nil {
		logger.Fatalf(ctx, "Failed to create '%s': %v", opts.Path, err)
		return
	}

	err = ambient.Render(f, background, opts.Duration, beep.SampleRate(cfg.SampleRate))
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}

	if err != nil {
		_ = os.Remove(opts.Path)

		logger.Fatalf(ctx, "Failed to render %s: %v", background.Label(), err)

		return
	}

	size := "unknown size"
	if info, statErr := os.Stat(opts.Path); statErr == nil {
		size = humanize.Bytes(uint64(info.Size())) //nolint:gosec // File sizes are never negative.
	}

	logger.Infof(ctx, "Rendered %s of %s to '%s' (%s)", opts.Duration, background.Label(), opts.Path, size)
}

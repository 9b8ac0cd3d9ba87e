package app

import (
	"context"
	"fmt"
	"io"

	"github.com/oshokin/studycast/internal/ambient"
	"github.com/oshokin/studycast/internal/config"
	"github.com/oshokin/studycast/internal/logger"
	"github.com/oshokin/studycast/internal/player"
	"github.com/oshokin/studycast/internal/service/studycast"
)

// GenerateOptions are the generation settings given on the command line.
type GenerateOptions struct {
	// Request is the generation request; an empty mode falls back to the configured default.
	Request studycast.GenerateRequest
	// Mode is a studio or library mode name.
	Mode string
	// Background is the ambient texture name.
	Background string
	// OnDuplicate is ask, replace or keep.
	OnDuplicate string
	// In and Out are used to ask about duplicates.
	In  io.Reader
	Out io.Writer
}

// ExecuteGenerateCommand generates a podcast and optionally plays it.
func ExecuteGenerateCommand(ctx context.Context, cfg *config.Config, opts GenerateOptions) {
	decision, err := studycast.ParseDecision(opts.OnDuplicate)
	if err != nil {
		logger.Fatalf(ctx, "%v", err)
		return
	}

	req := opts.Request

	modeName := opts.Mode
	if modeName == "" {
		modeName = cfg.DefaultMode
	}

	if req.Mode, err = player.ParseMode(modeName); err != nil {
		logger.Fatalf(ctx, "%v", err)
		return
	}

	if opts.Background != "" {
		if req.Background, err = ambient.ParseBackground(opts.Background); err != nil {
			logger.Fatalf(ctx, "%v", err)
			return
		}
	}

	componentOpts := componentOptions{
		playback: req.Play,
		resolver: studycast.NewResolver(decision, opts.In, opts.Out),
	}

	withService(ctx, cfg, componentOpts, func(c *components) error {
		outcome, generateErr := c.service.Generate(ctx, &req)
		if generateErr != nil {
			return generateErr
		}

		printOutcome(opts.Out, outcome)

		if outcome.Played {
			return watchPlayback(ctx, c.controller, opts.Out)
		}

		return nil
	})
}

func printOutcome(out io.Writer, outcome *studycast.GenerateOutcome) {
	if outcome.Kept {
		fmt.Fprintf(out, "Kept existing podcast %s\n", outcome.ExistingID)

		return
	}

	result := outcome.Result
	if result == nil {
		return
	}

	fmt.Fprintf(out, "%s\n", result.Title)

	if outcome.Podcast != nil {
		fmt.Fprintf(out, "Saved as %s\n", outcome.Podcast.ID)
	}

	if result.Mock {
		fmt.Fprintln(out, "(sample script, the generator was unavailable)")
	}

	if result.Transcript != "" && !result.HasAudio() {
		fmt.Fprintf(out, "\n%s\n", result.Transcript)
	}
}

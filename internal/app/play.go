package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/schollz/progressbar/v3"

	"github.com/oshokin/studycast/internal/ambient"
	"github.com/oshokin/studycast/internal/config"
	"github.com/oshokin/studycast/internal/library"
	"github.com/oshokin/studycast/internal/logger"
	"github.com/oshokin/studycast/internal/player"
	"github.com/oshokin/studycast/internal/service/studycast"
	"github.com/oshokin/studycast/internal/utils"
)

// PlayOptions select what to play.
type PlayOptions struct {
	// Subject is a subject id or name.
	Subject string
	// Topic is a topic id or title.
	Topic string
	// Subtopic plays one subtopic instead of the whole topic.
	Subtopic string
	// Mode is Explainer or Repetition, empty for the default.
	Mode string
	// Background overrides the ambient texture.
	Background string
	// SavedIDs are saved podcasts played in order instead of a catalog topic.
	SavedIDs []string
}

// ExecutePlayCommand plays a topic, a subtopic or saved podcasts until the queue drains.
func ExecutePlayCommand(ctx context.Context, cfg *config.Config, out io.Writer, opts PlayOptions) {
	withService(ctx, cfg, componentOptions{playback: true}, func(c *components) error {
		if err := enqueue(ctx, c.service, opts); err != nil {
			return err
		}

		if snapshot := c.controller.Snapshot(); snapshot.Idle() && snapshot.Queued == 0 {
			logger.Info(ctx, "Nothing to play")

			return nil
		}

		return watchPlayback(ctx, c.controller, out)
	})
}

func enqueue(ctx context.Context, service studycast.Service, opts PlayOptions) error {
	var background ambient.Background

	if opts.Background != "" {
		bg, err := ambient.ParseBackground(opts.Background)
		if err != nil {
			return err
		}

		background = bg
	}

	switch {
	case len(opts.SavedIDs) > 0:
		for _, id := range opts.SavedIDs {
			if _, err := service.QueueSaved(ctx, id); err != nil {
				if errors.Is(err, studycast.ErrAudioNotReady) {
					continue
				}

				return err
			}
		}

		return nil
	case opts.Subtopic != "":
		mode, err := library.DefaultModeForFilter(opts.Mode)
		if err != nil {
			return err
		}

		_, err = service.PlaySubtopic(ctx, &studycast.SubtopicRequest{
			Subject:    opts.Subject,
			Topic:      opts.Topic,
			Subtopic:   opts.Subtopic,
			Mode:       mode,
			Background: background,
		})

		return err
	default:
		prefs, err := library.NewModePreferences(opts.Mode)
		if err != nil {
			return err
		}

		_, err = service.PlayTopic(ctx, &studycast.TopicRequest{
			Subject:     opts.Subject,
			Topic:       opts.Topic,
			Preferences: prefs,
			Background:  background,
		})

		return err
	}
}

// watchPlayback draws a progress bar per track until the queue drains or ctx is done.
// A track that cannot start is skipped, the command never waits on it.
func watchPlayback(ctx context.Context, controller *player.Controller, out io.Writer) error {
	var (
		bar     *progressbar.ProgressBar
		current string
	)

	finish := func() {
		if bar != nil {
			_ = bar.Finish()
			bar = nil
		}
	}

	defer finish()

	for {
		changed := controller.Changes()
		snapshot := controller.Snapshot()

		if snapshot.Idle() {
			if snapshot.Queued == 0 {
				logger.Infof(ctx, "Finished, %d subtopics completed", len(controller.Completed()))

				return nil
			}
		} else {
			if snapshot.Current.ID != current {
				finish()

				current = snapshot.Current.ID
				bar = newTrackBar(out, snapshot)
			}

			if !snapshot.IsPlaying {
				logger.Warnf(ctx, "Skipping %s, it could not be played", snapshot.Current.Title())
				controller.Skip()

				continue
			}

			bar.ChangeMax64(max(1, int64(snapshot.Duration.Seconds())))
			_ = bar.Set64(int64(snapshot.Progress.Seconds()))
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-changed:
		}
	}
}

func newTrackBar(out io.Writer, snapshot player.Snapshot) *progressbar.ProgressBar {
	d := snapshot.Current

	description := fmt.Sprintf("%s %s (%s, %s)", d.SubjectIcon, d.Title(), d.Mode, utils.FormatClock(snapshot.Duration))
	if bg := snapshot.Background; bg.Audible() {
		description += " + " + bg.Label()
	}

	return progressbar.NewOptions64(max(1, int64(snapshot.Duration.Seconds())),
		progressbar.OptionSetWriter(out),
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetPredictTime(false),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionSetWidth(30),
		progressbar.OptionOnCompletion(func() { fmt.Fprintln(out) }),
	)
}

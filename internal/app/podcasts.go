package app

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/oshokin/studycast/internal/config"
	"github.com/oshokin/studycast/internal/library"
	"github.com/oshokin/studycast/internal/logger"
	"github.com/oshokin/studycast/internal/service/studycast"
)

// ExecutePodcastsListCommand prints the saved podcasts grouped by subject and topic.
func ExecutePodcastsListCommand(ctx context.Context, cfg *config.Config, out io.Writer, filter library.SavedFilter) {
	withService(ctx, cfg, componentOptions{}, func(c *components) error {
		return printSavedPodcasts(ctx, c.service, out, filter)
	})
}

// ExecutePodcastsFavoriteCommand toggles, or sets when favorite is not nil, the favorite flag.
func ExecutePodcastsFavoriteCommand(ctx context.Context, cfg *config.Config, podcastID string, favorite *bool) {
	withService(ctx, cfg, componentOptions{}, func(c *components) error {
		if favorite != nil {
			return c.service.SetFavorite(ctx, podcastID, *favorite)
		}

		_, err := c.service.ToggleFavorite(ctx, podcastID)

		return err
	})
}

// ExecutePodcastsDeleteCommand deletes saved podcasts.
func ExecutePodcastsDeleteCommand(ctx context.Context, cfg *config.Config, podcastIDs []string) {
	withService(ctx, cfg, componentOptions{}, func(c *components) error {
		for _, id := range podcastIDs {
			if err := c.service.DeletePodcast(ctx, id); err != nil {
				return err
			}
		}

		return nil
	})
}

// ExecutePodcastsDownloadCommand saves the audio of podcasts into the output path.
func ExecutePodcastsDownloadCommand(ctx context.Context, cfg *config.Config, podcastIDs []string) {
	withService(ctx, cfg, componentOptions{}, func(c *components) error {
		return downloadPodcasts(ctx, c.service, podcastIDs, cfg.OutputPath)
	})
}

// ExecutePodcastsShareCommand prints the share links of podcasts.
func ExecutePodcastsShareCommand(ctx context.Context, cfg *config.Config, out io.Writer, podcastIDs []string) {
	withService(ctx, cfg, componentOptions{}, func(c *components) error {
		for _, id := range podcastIDs {
			fmt.Fprintln(out, c.service.ShareURL(id))
		}

		return nil
	})
}

func printSavedPodcasts(ctx context.Context, svc studycast.Service, out io.Writer, filter library.SavedFilter) error {
	groups, err := svc.ListSaved(ctx, filter)
	if err != nil {
		return err
	}

	if len(groups) == 0 {
		logger.Info(ctx, "No saved podcasts yet, generate one with 'studycast generate'")

		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)

	fmt.Fprintln(w, "SUBJECT\tTOPIC\tID\tMODE\tBOARD\tLEVEL\tLENGTH\tCREATED\tFAVORITE\tAUDIO")

	for _, group := range groups {
		for _, podcast := range group.Podcasts {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
				podcast.Subject, podcast.Topic, podcast.ID, podcast.Mode, podcast.ExamBoard, podcast.Level,
				library.FormatSavedDuration(podcast.DurationSeconds()),
				library.FormatSavedDate(podcast.CreatedAt),
				yesNo(podcast.IsFavorite), readiness(podcast.HasAudio()))
		}
	}

	return w.Flush()
}

// downloadPodcasts keeps going after a failed download and returns only on cancellation.
func downloadPodcasts(ctx context.Context, svc studycast.Service, podcastIDs []string, directory string) error {
	var failed int

	for _, id := range podcastIDs {
		if _, err := svc.Download(ctx, id, directory); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}

			logger.Errorf(ctx, "Failed to download %s: %v", id, err)

			failed++
		}
	}

	logger.Infof(ctx, "Downloaded %d of %d podcasts", len(podcastIDs)-failed, len(podcastIDs))

	return nil
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}

	return "no"
}

func readiness(hasAudio bool) string {
	if hasAudio {
		return "ready"
	}

	return "processing"
}

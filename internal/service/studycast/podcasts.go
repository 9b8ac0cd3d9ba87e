package studycast

import (
	"context"
	"fmt"

	"github.com/oshokin/studycast/internal/library"
	"github.com/oshokin/studycast/internal/logger"
)

// ListSaved returns the saved podcasts of the signed-in user grouped by subject and topic,
// newest first inside and across groups.
func (s *ServiceImpl) ListSaved(ctx context.Context, filter library.SavedFilter) ([]library.SavedGroup, error) {
	if err := s.requireUser(); err != nil {
		return nil, err
	}

	podcasts, err := s.store.ListPodcasts(ctx, s.opts.UserID)
	if err != nil {
		s.notifier.Notify(ctx, Notification{
			Level:   LevelError,
			Title:   "Error",
			Message: "Failed to load your podcasts.",
		})

		return nil, err
	}

	return library.GroupSaved(podcasts, filter), nil
}

// SetFavorite changes the favorite flag of a podcast.
func (s *ServiceImpl) SetFavorite(ctx context.Context, podcastID string, favorite bool) error {
	if err := s.store.SetFavorite(ctx, podcastID, favorite); err != nil {
		s.notifier.Notify(ctx, Notification{
			Level:   LevelError,
			Title:   "Error",
			Message: "Failed to update favorite status.",
		})

		return err
	}

	title := "Removed from favorites"
	if favorite {
		title = "Added to favorites"
	}

	s.notifier.Notify(ctx, Notification{Level: LevelSuccess, Title: title, Message: podcastID})

	return nil
}

// ToggleFavorite flips the favorite flag of a podcast and returns the new value.
func (s *ServiceImpl) ToggleFavorite(ctx context.Context, podcastID string) (bool, error) {
	podcast, err := s.store.GetPodcast(ctx, podcastID)
	if err != nil {
		return false, err
	}

	favorite := !podcast.IsFavorite

	return favorite, s.SetFavorite(ctx, podcastID, favorite)
}

// DeletePodcast deletes a podcast.
func (s *ServiceImpl) DeletePodcast(ctx context.Context, podcastID string) error {
	if err := s.store.DeletePodcast(ctx, podcastID); err != nil {
		s.notifier.Notify(ctx, Notification{
			Level:   LevelError,
			Title:   "Error",
			Message: "Failed to delete podcast.",
		})

		return fmt.Errorf("failed to delete podcast %s: %w", podcastID, err)
	}

	logger.Debugf(ctx, "Deleted podcast %s", podcastID)
	s.notifier.Notify(ctx, Notification{Level: LevelSuccess, Title: "Podcast deleted", Message: podcastID})

	return nil
}

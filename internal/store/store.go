package store

//go:generate $MOCKGEN -source=store.go -destination=mocks/store_mock.go

import (
	"context"
	"errors"
)

// Static error definitions for better error handling.
var (
	// ErrPodcastNotFound indicates that no podcast row matched.
	ErrPodcastNotFound = errors.New("podcast not found")
	// ErrProfileNotFound indicates that the user has no profile row.
	ErrProfileNotFound = errors.New("profile not found")
	// ErrDuplicatePodcast indicates that a row with the same duplicate key already exists.
	ErrDuplicatePodcast = errors.New("podcast with the same subject, topic, mode, exam board and level already exists")
	// ErrEmptyProfileUpdate indicates a profile update without fields.
	ErrEmptyProfileUpdate = errors.New("profile update has no fields")
)

// Store reads and writes podcast and profile rows of one backend.
type Store interface {
	// ListPodcasts returns the podcasts of a user, newest first.
	ListPodcasts(ctx context.Context, userID string) ([]*Podcast, error)
	// GetPodcast returns one podcast by id.
	GetPodcast(ctx context.Context, id string) (*Podcast, error)
	// FindDuplicate returns the id of a podcast with the given key.
	FindDuplicate(ctx context.Context, key DuplicateKey) (string, bool, error)
	// CreatePodcast inserts a podcast row.
	CreatePodcast(ctx context.Context, podcast *Podcast) error
	// DeletePodcast deletes a podcast row by id.
	DeletePodcast(ctx context.Context, id string) error
	// SetFavorite changes the favorite flag of a podcast.
	SetFavorite(ctx context.Context, id string, favorite bool) error
	// GetProfile returns the profile of a user.
	GetProfile(ctx context.Context, userID string) (*Profile, error)
	// UpdateProfile changes the given profile fields.
	UpdateProfile(ctx context.Context, userID string, update ProfileUpdate) error
}

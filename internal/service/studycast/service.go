package studycast

//go:generate $MOCKGEN -source=service.go -destination=mocks/service_mock.go

import (
	"context"
	"net/url"
	"strings"

	"github.com/oshokin/studycast/internal/client/supabase"
	"github.com/oshokin/studycast/internal/generation"
	"github.com/oshokin/studycast/internal/library"
	"github.com/oshokin/studycast/internal/lock"
	"github.com/oshokin/studycast/internal/player"
	"github.com/oshokin/studycast/internal/store"
)

const (
	defaultExamBoard = "AQA"
	defaultLevel     = "Foundation"
	listenPath       = "listen"
)

// Service provides the StudyCast operations behind the command line.
type Service interface {
	// Catalog returns the study guide catalog.
	Catalog() *library.Catalog
	// PlaySubtopic plays one catalog subtopic now.
	PlaySubtopic(ctx context.Context, req *SubtopicRequest) (*player.Descriptor, error)
	// QueueTopic appends every subtopic of a topic to the queue without starting playback.
	QueueTopic(ctx context.Context, req *TopicRequest) (int, error)
	// PlayTopic queues every subtopic of a topic and starts playback when idle.
	PlayTopic(ctx context.Context, req *TopicRequest) (int, error)
	// ListSaved returns the saved podcasts grouped by subject and topic.
	ListSaved(ctx context.Context, filter library.SavedFilter) ([]library.SavedGroup, error)
	// PlaySaved plays a saved podcast now.
	PlaySaved(ctx context.Context, podcastID string) error
	// QueueSaved plays a saved podcast when idle and queues it otherwise.
	QueueSaved(ctx context.Context, podcastID string) (bool, error)
	// Generate generates a podcast after resolving duplicates.
	Generate(ctx context.Context, req *GenerateRequest) (*GenerateOutcome, error)
	// SetFavorite changes the favorite flag of a podcast.
	SetFavorite(ctx context.Context, podcastID string, favorite bool) error
	// ToggleFavorite flips the favorite flag of a podcast and returns the new value.
	ToggleFavorite(ctx context.Context, podcastID string) (bool, error)
	// DeletePodcast deletes a podcast.
	DeletePodcast(ctx context.Context, podcastID string) error
	// ShareURL returns the public listen page of a podcast.
	ShareURL(podcastID string) string
	// Download saves the audio of a podcast into a directory and returns the file path.
	Download(ctx context.Context, podcastID, directory string) (string, error)
	// Profile returns the profile of the signed-in user.
	Profile(ctx context.Context) (*store.Profile, error)
	// UpdateFullName changes the display name.
	UpdateFullName(ctx context.Context, fullName string) error
	// UpdateStudyProfile changes the course, year group and subjects and turns on personalized mode.
	UpdateStudyProfile(ctx context.Context, req *StudyProfileRequest) error
}

// Player is the part of the queue controller the service drives.
type Player interface {
	PlayNow(d player.Descriptor) error
	EnqueueOrPlay(d player.Descriptor) (bool, error)
	EnqueueAll(ds []player.Descriptor) (int, error)
	Advance()
	Snapshot() player.Snapshot
}

// Generator submits generation requests.
type Generator interface {
	Generate(ctx context.Context, req generation.Request) (*generation.Result, error)
}

// Downloader fetches audio files.
type Downloader interface {
	DownloadFromURL(ctx context.Context, rawURL string) (*supabase.DownloadResult, error)
}

// Options holds per-user settings of the service.
type Options struct {
	// UserID is the signed-in user.
	UserID string
	// AppURL is the public web app used for share links.
	AppURL string
	// DefaultExamBoard is used when neither the request nor the catalog names a board.
	DefaultExamBoard string
	// DefaultLevel is used when neither the request nor the catalog names a tier.
	DefaultLevel string
	// ReplaceDownloads overwrites existing files.
	ReplaceDownloads bool
	// ShowProgress draws a progress bar for downloads.
	ShowProgress bool
}

// Dependencies are the collaborators of the service.
type Dependencies struct {
	Catalog      *library.Catalog
	Store        store.Store
	Downloader   Downloader
	Generator    Generator
	Locker       lock.Locker
	Player       Player
	Notifier     Notifier
	Resolver     DuplicateResolver
	TagProcessor TagProcessor
}

// ServiceImpl implements Service.
type ServiceImpl struct {
	// opts holds per-user settings.
	opts Options
	// catalog is the study guide catalog.
	catalog *library.Catalog
	// store reads and writes podcast and profile rows.
	store store.Store
	// downloader fetches audio files.
	downloader Downloader
	// generator submits generation requests.
	generator Generator
	// locker guards generations of the same material across processes.
	locker lock.Locker
	// player is the queue controller.
	player Player
	// notifier shows user-facing messages.
	notifier Notifier
	// resolver decides duplicate conflicts.
	resolver DuplicateResolver
	// tagProcessor writes tags to downloads.
	tagProcessor TagProcessor
}

// NewService creates the service.
func NewService(opts Options, deps Dependencies) Service {
	if opts.DefaultExamBoard == "" {
		opts.DefaultExamBoard = defaultExamBoard
	}

	if opts.DefaultLevel == "" {
		opts.DefaultLevel = defaultLevel
	}

	if deps.Locker == nil {
		deps.Locker = lock.NopLocker{}
	}

	if deps.Notifier == nil {
		deps.Notifier = NewLogNotifier()
	}

	if deps.Resolver == nil {
		deps.Resolver = StaticResolver{Decision: DecisionKeep}
	}

	if deps.TagProcessor == nil {
		deps.TagProcessor = NewTagProcessor()
	}

	return &ServiceImpl{
		opts:         opts,
		catalog:      deps.Catalog,
		store:        deps.Store,
		downloader:   deps.Downloader,
		generator:    deps.Generator,
		locker:       deps.Locker,
		player:       deps.Player,
		notifier:     deps.Notifier,
		resolver:     deps.Resolver,
		tagProcessor: deps.TagProcessor,
	}
}

// Catalog returns the study guide catalog.
func (s *ServiceImpl) Catalog() *library.Catalog {
	return s.catalog
}

// ShareURL returns the public listen page of a podcast.
func (s *ServiceImpl) ShareURL(podcastID string) string {
	base := strings.TrimRight(s.opts.AppURL, "/")

	return base + "/" + listenPath + "/" + url.PathEscape(podcastID)
}

func (s *ServiceImpl) requireUser() error {
	if strings.TrimSpace(s.opts.UserID) == "" {
		return ErrMissingUserID
	}

	return nil
}

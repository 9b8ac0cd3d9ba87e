package app

import (
	"context"
	"fmt"
	"io"

	"github.com/gopxl/beep/v2"

	"github.com/oshokin/studycast/internal/ambient"
	"github.com/oshokin/studycast/internal/audio"
	"github.com/oshokin/studycast/internal/client/supabase"
	"github.com/oshokin/studycast/internal/config"
	"github.com/oshokin/studycast/internal/generation"
	"github.com/oshokin/studycast/internal/library"
	"github.com/oshokin/studycast/internal/lock"
	"github.com/oshokin/studycast/internal/logger"
	"github.com/oshokin/studycast/internal/player"
	"github.com/oshokin/studycast/internal/service/studycast"
	"github.com/oshokin/studycast/internal/store"
	"github.com/oshokin/studycast/internal/store/sqlstore"
)

// componentOptions selects what a command needs.
type componentOptions struct {
	// playback opens the configured audio output; other commands get a silent one that never pulls samples.
	playback bool
	// resolver answers duplicate conflicts, nil keeps existing podcasts.
	resolver studycast.DuplicateResolver
}

// components are the wired collaborators of one command.
type components struct {
	// catalog is the study guide catalog.
	catalog *library.Catalog
	// client talks to the hosted backend.
	client supabase.Client
	// controller owns playback.
	controller *player.Controller
	// service runs the StudyCast operations.
	service studycast.Service
	// closers release resources in reverse order.
	closers []func() error
}

// newComponents wires every collaborator from the configuration.
func newComponents(ctx context.Context, cfg *config.Config, opts componentOptions) (*components, error) {
	c := new(components)

	if err := c.wire(ctx, cfg, opts); err != nil {
		c.close(ctx)

		return nil, err
	}

	return c, nil
}

//nolint:funlen // Wiring is a flat sequence of constructors.
func (c *components) wire(ctx context.Context, cfg *config.Config, opts componentOptions) error {
	catalog, err := library.DefaultCatalog()
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	c.catalog = catalog

	c.client, err = supabase.NewClient(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize backend client: %w", err)
	}

	rows, err := c.openStore(ctx, cfg)
	if err != nil {
		return err
	}

	locker, err := c.openLocker(ctx, cfg)
	if err != nil {
		return err
	}

	sampleRate := beep.SampleRate(cfg.SampleRate)

	var output audio.Output = audio.NewNullOutput(sampleRate, 0)
	if opts.playback {
		if output, err = audio.NewOutput(cfg.AudioOutput, sampleRate); err != nil {
			return fmt.Errorf("failed to open audio output: %w", err)
		}
	}

	c.closers = append(c.closers, output.Close)

	synth := ambient.NewSynthesizer(func() (ambient.Graph, error) {
		return ambient.NewBeepGraph(sampleRate, output), nil
	})
	c.closers = append(c.closers, synth.Close)

	c.controller = player.NewController(ctx,
		player.NewSourceFactory(output, c.openAudio, player.DefaultSimulatedInterval), synth)
	c.closers = append(c.closers, c.controller.Close)

	background, err := ambient.ParseBackground(cfg.DefaultBackground)
	if err != nil {
		return err
	}

	c.controller.SetBackground(background)
	c.controller.SetVolume(cfg.Volume)

	generator := generation.NewGenerator(c.client, generation.Options{
		Timeout:             cfg.ParsedGenerationTimeout,
		MockPreviewFallback: cfg.MockPreviewFallback,
	})

	c.service = studycast.NewService(studycast.Options{
		UserID:           cfg.UserID,
		AppURL:           cfg.AppURL,
		DefaultExamBoard: cfg.DefaultExamBoard,
		DefaultLevel:     cfg.DefaultLevel,
		ReplaceDownloads: cfg.ReplaceDownloads,
		ShowProgress:     true,
	}, studycast.Dependencies{
		Catalog:      catalog,
		Store:        rows,
		Downloader:   c.client,
		Generator:    generator,
		Locker:       locker,
		Player:       c.controller,
		Notifier:     studycast.NewLogNotifier(),
		Resolver:     opts.resolver,
		TagProcessor: studycast.NewTagProcessor(),
	})

	return nil
}

// openStore returns the hosted table store or a migrated MySQL store.
func (c *components) openStore(ctx context.Context, cfg *config.Config) (store.Store, error) {
	if cfg.StoreBackend != config.StoreBackendMySQL {
		return c.client, nil
	}

	sqlStore, err := sqlstore.Open(ctx, cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	c.closers = append(c.closers, sqlStore.Close)

	if err = sqlStore.Migrate(ctx); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return sqlStore, nil
}

// openLocker returns a redis lock when an address is configured.
func (c *components) openLocker(ctx context.Context, cfg *config.Config) (lock.Locker, error) {
	if cfg.RedisAddr == "" {
		return lock.NopLocker{}, nil
	}

	client, err := lock.Connect(ctx, cfg.RedisAddr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	c.closers = append(c.closers, client.Close)

	return lock.NewRedisLocker(client, cfg.ParsedGenerationLockTTL), nil
}

// openAudio fetches a track through the backend client.
func (c *components) openAudio(ctx context.Context, url string) (io.ReadCloser, string, error) {
	result, err := c.client.DownloadFromURL(ctx, url)
	if err != nil {
		return nil, "", err
	}

	return result.Body, result.ContentType, nil
}

// close releases everything in reverse order.
func (c *components) close(ctx context.Context) {
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i](); err != nil {
			logger.Debugf(ctx, "Failed to release a component: %v", err)
		}
	}

	c.closers = nil
}

// Package sqlstore keeps podcast and profile rows in a self-hosted MySQL database.
package sqlstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/oshokin/studycast/internal/logger"
	"github.com/oshokin/studycast/internal/store"
)

const (
	maxIdleConns    = 10
	maxOpenConns    = 100
	connMaxLifetime = time.Hour
	slowThreshold   = 500 * time.Millisecond
)

// Store implements store.Store on gorm.
type Store struct {
	db *gorm.DB
}

var _ store.Store = (*Store)(nil)

// Open connects to MySQL with the given DSN and configures the connection pool.
func Open(ctx context.Context, dsn string) (*Store, error) {
	return OpenDialector(ctx, mysql.Open(dsn))
}

// OpenDialector connects through an arbitrary gorm dialector.
func OpenDialector(ctx context.Context, dialector gorm.Dialector) (*Store, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:                                   newGormLogger(ctx),
		SkipDefaultTransaction:                   true,
		TranslateError:                           true,
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)

	return &Store{db: db}, nil
}

// Migrate creates or updates the tables, including the unique duplicate key index.
func (s *Store) Migrate(ctx context.Context) error {
	if err := s.db.WithContext(ctx).AutoMigrate(&store.Podcast{}, &store.Profile{}); err != nil {
		return fmt.Errorf("failed to migrate tables: %w", err)
	}

	logger.Debug(ctx, "Database tables migrated")

	return nil
}

// Close closes the connection pool.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}

	return sqlDB.Close()
}

// ListPodcasts returns the podcasts of a user, newest first.
func (s *Store) ListPodcasts(ctx context.Context, userID string) ([]*store.Podcast, error) {
	var podcasts []*store.Podcast

	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&podcasts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list podcasts: %w", err)
	}

	return podcasts, nil
}

// GetPodcast returns one podcast by id.
func (s *Store) GetPodcast(ctx context.Context, id string) (*store.Podcast, error) {
	var podcast store.Podcast

	err := s.db.WithContext(ctx).Where("id = ?", id).Take(&podcast).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %s", store.ErrPodcastNotFound, id)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get podcast %s: %w", id, err)
	}

	return &podcast, nil
}

// FindDuplicate returns the id of a podcast with the given key.
func (s *Store) FindDuplicate(ctx context.Context, key store.DuplicateKey) (string, bool, error) {
	var podcast store.Podcast

	err := s.db.WithContext(ctx).
		Select("id").
		Where("user_id = ? AND subject = ? AND topic = ? AND mode = ? AND exam_board = ? AND level = ?",
			key.UserID, key.Subject, key.Topic, key.Mode, key.ExamBoard, key.Level).
		Take(&podcast).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}

	if err != nil {
		return "", false, fmt.Errorf("failed to look up duplicate podcast: %w", err)
	}

	return podcast.ID, true, nil
}

// CreatePodcast inserts a podcast row, filling in the id and the creation time when missing.
func (s *Store) CreatePodcast(ctx context.Context, podcast *store.Podcast) error {
	if podcast.ID == "" {
		podcast.ID = uuid.NewString()
	}

	if podcast.CreatedAt.IsZero() {
		podcast.CreatedAt = time.Now().UTC()
	}

	err := s.db.WithContext(ctx).Create(podcast).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("%w: %s", store.ErrDuplicatePodcast, podcast.Key())
	}

	if err != nil {
		return fmt.Errorf("failed to create podcast: %w", err)
	}

	return nil
}

// DeletePodcast deletes a podcast row by id.
func (s *Store) DeletePodcast(ctx context.Context, id string) error {
	result := s.db.WithContext(ctx).Where("id = ?", id).Delete(&store.Podcast{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete podcast %s: %w", id, result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: %s", store.ErrPodcastNotFound, id)
	}

	return nil
}

// SetFavorite changes the favorite flag of a podcast.
func (s *Store) SetFavorite(ctx context.Context, id string, favorite bool) error {
	result := s.db.WithContext(ctx).
		Model(&store.Podcast{}).
		Where("id = ?", id).
		Update("is_favorite", favorite)
	if result.Error != nil {
		return fmt.Errorf("failed to update podcast %s: %w", id, result.Error)
	}

	if result.RowsAffected == 0 {
		// MySQL counts changed rows only, an unchanged flag is not a miss.
		return s.ensureExists(ctx, &store.Podcast{}, id, store.ErrPodcastNotFound)
	}

	return nil
}

// GetProfile returns the profile of a user.
func (s *Store) GetProfile(ctx context.Context, userID string) (*store.Profile, error) {
	var profile store.Profile

	err := s.db.WithContext(ctx).Where("id = ?", userID).Take(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %s", store.ErrProfileNotFound, userID)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	return &profile, nil
}

// UpdateProfile changes the given profile fields.
func (s *Store) UpdateProfile(ctx context.Context, userID string, update store.ProfileUpdate) error {
	if update.Empty() {
		return store.ErrEmptyProfileUpdate
	}

	columns := update.Columns()

	if subjects, ok := columns["subjects"]; ok {
		encoded, err := json.Marshal(subjects)
		if err != nil {
			return fmt.Errorf("failed to encode subjects: %w", err)
		}

		columns["subjects"] = string(encoded)
	}

	result := s.db.WithContext(ctx).
		Model(&store.Profile{}).
		Where("id = ?", userID).
		Updates(columns)
	if result.Error != nil {
		return fmt.Errorf("failed to update profile: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return s.ensureExists(ctx, &store.Profile{}, userID, store.ErrProfileNotFound)
	}

	return nil
}

func (s *Store) ensureExists(ctx context.Context, model any, id string, notFound error) error {
	var count int64

	if err := s.db.WithContext(ctx).Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check row %s: %w", id, err)
	}

	if count == 0 {
		return fmt.Errorf("%w: %s", notFound, id)
	}

	return nil
}

// gormWriter forwards gorm log lines to the application logger.
type gormWriter struct {
	ctx context.Context //nolint:containedctx // Log lines carry the caller's fields.
}

func (w gormWriter) Printf(format string, args ...any) {
	logger.Debugf(w.ctx, format, args...)
}

func newGormLogger(ctx context.Context) gormlogger.Interface {
	level := gormlogger.Warn
	if logger.IsDebugLevel() {
		level = gormlogger.Info
	}

	return gormlogger.New(gormWriter{ctx: ctx}, gormlogger.Config{
		SlowThreshold:             slowThreshold,
		LogLevel:                  level,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}

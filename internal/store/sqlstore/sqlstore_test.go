package sqlstore

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"

	"github.com/oshokin/studycast/internal/store"
)

var podcastColumns = []string{
	"id", "user_id", "subject", "topic", "audio_url", "is_favorite",
	"created_at", "duration", "mode", "exam_board", "level", "content",
}

func newMockStore(t *testing.T) (*Store, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	s, err := OpenDialector(context.Background(), mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	}))
	require.NoError(t, err)

	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		_ = db.Close()
	})

	return s, mock
}

// TestStore_ListPodcasts tests listing with nullable columns.
func TestStore_ListPodcasts(t *testing.T) {
	t.Parallel()

	s, mock := newMockStore(t)
	created := time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)

	mock.ExpectQuery("SELECT \\* FROM `podcasts` WHERE user_id = \\? ORDER BY created_at DESC").
		WithArgs("user-1").
		WillReturnRows(sqlmock.NewRows(podcastColumns).
			AddRow("2", "user-1", "Chemistry", "Bonding", "https://files.studycast.dev/audio/2.mp3", true,
				created, 330, "FocusCast", "AQA", "Higher", "Ionic bonds form between metals and non-metals.").
			AddRow("1", "user-1", "Chemistry", "Atomic Structure", nil, false,
				created.Add(-time.Hour), nil, "SleepCast", "AQA", "Foundation", ""))

	podcasts, err := s.ListPodcasts(context.Background(), "user-1")
	require.NoError(t, err)
	require.Len(t, podcasts, 2)

	assert.True(t, podcasts[0].HasAudio())
	assert.True(t, podcasts[0].IsFavorite)
	assert.Equal(t, 330, podcasts[0].DurationSeconds())
	assert.False(t, podcasts[1].HasAudio())
	assert.Equal(t, 0, podcasts[1].DurationSeconds())
}

// TestStore_GetPodcast_NotFound tests the not found mapping.
func TestStore_GetPodcast_NotFound(t *testing.T) {
	t.Parallel()

	s, mock := newMockStore(t)

	mock.ExpectQuery("SELECT \\* FROM `podcasts` WHERE id = \\?").
		WillReturnRows(sqlmock.NewRows(podcastColumns))

	_, err := s.GetPodcast(context.Background(), "missing")
	require.ErrorIs(t, err, store.ErrPodcastNotFound)
}

// TestStore_FindDuplicate tests the duplicate lookup.
func TestStore_FindDuplicate(t *testing.T) {
	t.Parallel()

	key := store.DuplicateKey{
		UserID:    "user-1",
		Subject:   "Chemistry",
		Topic:     "Atomic Structure",
		Mode:      "FocusCast",
		ExamBoard: "AQA",
		Level:     "Foundation",
	}

	t.Run("found", func(t *testing.T) {
		t.Parallel()

		s, mock := newMockStore(t)

		mock.ExpectQuery("SELECT `id` FROM `podcasts` WHERE user_id = \\? AND subject = \\? AND topic = \\?").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("7"))

		id, found, err := s.FindDuplicate(context.Background(), key)
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, "7", id)
	})

	t.Run("missing", func(t *testing.T) {
		t.Parallel()

		s, mock := newMockStore(t)

		mock.ExpectQuery("SELECT `id` FROM `podcasts`").
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, found, err := s.FindDuplicate(context.Background(), key)
		require.NoError(t, err)
		assert.False(t, found)
	})
}

// TestStore_CreatePodcast tests inserting and the unique key violation.
func TestStore_CreatePodcast(t *testing.T) {
	t.Parallel()

	t.Run("inserted", func(t *testing.T) {
		t.Parallel()

		s, mock := newMockStore(t)

		mock.ExpectExec("INSERT INTO `podcasts`").
			WillReturnResult(sqlmock.NewResult(0, 1))

		podcast := &store.Podcast{UserID: "user-1", Subject: "Chemistry", Topic: "Atomic Structure"}

		require.NoError(t, s.CreatePodcast(context.Background(), podcast))
		assert.NotEmpty(t, podcast.ID)
		assert.False(t, podcast.CreatedAt.IsZero())
	})

	t.Run("duplicate", func(t *testing.T) {
		t.Parallel()

		s, mock := newMockStore(t)

		mock.ExpectExec("INSERT INTO `podcasts`").
			WillReturnError(&mysqldriver.MySQLError{Number: 1062, Message: "Duplicate entry"})

		err := s.CreatePodcast(context.Background(), &store.Podcast{ID: "1", UserID: "user-1"})
		require.ErrorIs(t, err, store.ErrDuplicatePodcast)
	})
}

// TestStore_DeletePodcast tests deleting a present and a missing row.
func TestStore_DeletePodcast(t *testing.T) {
	t.Parallel()

	s, mock := newMockStore(t)

	mock.ExpectExec("DELETE FROM `podcasts` WHERE id = \\?").
		WithArgs("1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM `podcasts` WHERE id = \\?").
		WithArgs("2").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, s.DeletePodcast(context.Background(), "1"))
	require.ErrorIs(t, s.DeletePodcast(context.Background(), "2"), store.ErrPodcastNotFound)
}

// TestStore_SetFavorite tests that an unchanged flag is not reported as a missing row.
func TestStore_SetFavorite(t *testing.T) {
	t.Parallel()

	s, mock := newMockStore(t)

	mock.ExpectExec("UPDATE `podcasts` SET `is_favorite`=\\? WHERE id = \\?").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `podcasts` WHERE id = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	mock.ExpectExec("UPDATE `podcasts` SET `is_favorite`=\\? WHERE id = \\?").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `podcasts` WHERE id = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	require.NoError(t, s.SetFavorite(context.Background(), "1", true))
	require.ErrorIs(t, s.SetFavorite(context.Background(), "2", true), store.ErrPodcastNotFound)
}

// TestStore_Profile tests reading and updating a profile.
func TestStore_Profile(t *testing.T) {
	t.Parallel()

	s, mock := newMockStore(t)

	mock.ExpectQuery("SELECT \\* FROM `profiles` WHERE id = \\?").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "full_name", "email", "course", "year_group", "subjects",
			"has_completed_onboarding", "personalized_mode",
		}).AddRow("user-1", "Sam Lee", "sam@example.com", "Triple", nil,
			[]byte(`["Chemistry","Physics"]`), true, false))

	profile, err := s.GetProfile(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, "Sam Lee", profile.FullName)
	require.NotNil(t, profile.Course)
	assert.Equal(t, "Triple", *profile.Course)
	assert.Nil(t, profile.YearGroup)
	assert.Equal(t, []string{"Chemistry", "Physics"}, profile.Subjects)

	mock.ExpectExec("UPDATE `profiles` SET").
		WillReturnResult(sqlmock.NewResult(0, 1))

	personalized := true
	err = s.UpdateProfile(context.Background(), "user-1", store.ProfileUpdate{
		Subjects:         []string{"Biology"},
		PersonalizedMode: &personalized,
	})
	require.NoError(t, err)

	require.ErrorIs(t, s.UpdateProfile(context.Background(), "user-1", store.ProfileUpdate{}), store.ErrEmptyProfileUpdate)
}

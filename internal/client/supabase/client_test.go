package supabase

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oshokin/studycast/internal/config"
	"github.com/oshokin/studycast/internal/store"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*ClientImpl, *httptest.Server) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(&config.Config{
		SupabaseURL: server.URL,
		AnonKey:     "anon-key",
		AccessToken: "user-jwt",
		AppURL:      server.URL,
	})
	require.NoError(t, err)

	impl, ok := client.(*ClientImpl)
	require.True(t, ok)

	return impl, server
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, body any) {
	t.Helper()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	assert.NoError(t, json.NewEncoder(w).Encode(body))
}

// TestClient_ListPodcasts tests the listing query and row decoding.
func TestClient_ListPodcasts(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/rest/v1/podcasts", r.URL.Path)
		assert.Equal(t, "eq.user-1", r.URL.Query().Get("user_id"))
		assert.Equal(t, "created_at.desc", r.URL.Query().Get("order"))
		assert.Equal(t, "anon-key", r.Header.Get("apikey"))
		assert.Equal(t, "Bearer user-jwt", r.Header.Get("Authorization"))

		_, err := io.WriteString(w, `[
			{"id":"p2","subject":"Chemistry","topic":"Bonding","audio_url":null,"duration":null,
			 "created_at":"2026-03-02T10:00:00+00:00","mode":"SleepCast"},
			{"id":"p1","subject":"Chemistry","topic":"Atomic Structure",
			 "audio_url":"https://files.studycast.dev/audio/p1.mp3","duration":330,
			 "created_at":"2026-03-01T10:00:00+00:00","mode":"FocusCast","is_favorite":true}
		]`)
		assert.NoError(t, err)
	})

	podcasts, err := client.ListPodcasts(t.Context(), "user-1")
	require.NoError(t, err)
	require.Len(t, podcasts, 2)

	assert.False(t, podcasts[0].HasAudio())
	assert.Equal(t, 0, podcasts[0].DurationSeconds())
	assert.True(t, podcasts[1].HasAudio())
	assert.Equal(t, 330, podcasts[1].DurationSeconds())
	assert.True(t, podcasts[1].IsFavorite)
	assert.Equal(t, 2026, podcasts[1].CreatedAt.Year())
}

// TestClient_GetPodcast tests the cache-first read and invalidation on writes.
func TestClient_GetPodcast(t *testing.T) {
	t.Parallel()

	var reads atomic.Int32

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			reads.Add(1)

			if r.URL.Query().Get("id") == "eq.missing" {
				writeJSON(t, w, http.StatusOK, []any{})

				return
			}

			writeJSON(t, w, http.StatusOK, []map[string]any{{"id": "p1", "subject": "Physics", "topic": "Waves"}})
		case http.MethodPatch:
			assert.Equal(t, "return=representation", r.Header.Get("Prefer"))
			writeJSON(t, w, http.StatusOK, []map[string]any{{"id": "p1"}})
		}
	})

	ctx := t.Context()

	podcast, err := client.GetPodcast(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "Waves", podcast.Topic)

	_, err = client.GetPodcast(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, int32(1), reads.Load(), "second read comes from the cache")

	require.NoError(t, client.SetFavorite(ctx, "p1", true))

	_, err = client.GetPodcast(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, int32(2), reads.Load(), "a write drops the cached row")

	_, err = client.GetPodcast(ctx, "missing")
	require.ErrorIs(t, err, store.ErrPodcastNotFound)
}

// TestClient_FindDuplicate tests the duplicate lookup filters.
func TestClient_FindDuplicate(t *testing.T) {
	t.Parallel()

	key := store.DuplicateKey{
		UserID:    "user-1",
		Subject:   "Chemistry",
		Topic:     "Atomic Structure",
		Mode:      "FocusCast",
		ExamBoard: "AQA",
		Level:     "Foundation",
	}

	tests := []struct {
		name       string
		rows       []map[string]any
		expectedID string
		found      bool
	}{
		{name: "existing recording", rows: []map[string]any{{"id": "p9"}}, expectedID: "p9", found: true},
		{name: "no recording", rows: []map[string]any{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				query := r.URL.Query()
				assert.Equal(t, "id", query.Get("select"))
				assert.Equal(t, "eq.user-1", query.Get("user_id"))
				assert.Equal(t, "eq.Chemistry", query.Get("subject"))
				assert.Equal(t, "eq.Atomic Structure", query.Get("topic"))
				assert.Equal(t, "eq.FocusCast", query.Get("mode"))
				assert.Equal(t, "eq.AQA", query.Get("exam_board"))
				assert.Equal(t, "eq.Foundation", query.Get("level"))
				assert.Equal(t, "1", query.Get("limit"))

				writeJSON(t, w, http.StatusOK, tt.rows)
			})

			id, found, err := client.FindDuplicate(t.Context(), key)
			require.NoError(t, err)
			assert.Equal(t, tt.found, found)
			assert.Equal(t, tt.expectedID, id)
		})
	}
}

// TestClient_CreatePodcast tests inserts and the unique violation mapping.
func TestClient_CreatePodcast(t *testing.T) {
	t.Parallel()

	var inserted atomic.Int32

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)

		var body map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.NotEmpty(t, body["id"])
		assert.NotEmpty(t, body["created_at"])

		if inserted.Add(1) > 1 {
			writeJSON(t, w, http.StatusConflict, map[string]any{
				"code":    "23505",
				"message": `duplicate key value violates unique constraint "idx_podcasts_duplicate_key"`,
			})

			return
		}

		writeJSON(t, w, http.StatusCreated, []any{body})
	})

	podcast := &store.Podcast{UserID: "user-1", Subject: "Chemistry", Topic: "Bonding", Mode: "FocusCast"}

	require.NoError(t, client.CreatePodcast(t.Context(), podcast))
	assert.NotEmpty(t, podcast.ID)
	assert.False(t, podcast.CreatedAt.IsZero())

	err := client.CreatePodcast(t.Context(), &store.Podcast{UserID: "user-1", Subject: "Chemistry", Topic: "Bonding"})
	require.ErrorIs(t, err, store.ErrDuplicatePodcast)
}

// TestClient_DeletePodcast tests deleting existing and missing rows.
func TestClient_DeletePodcast(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)

		if r.URL.Query().Get("id") == "eq.p1" {
			writeJSON(t, w, http.StatusOK, []map[string]any{{"id": "p1"}})

			return
		}

		writeJSON(t, w, http.StatusOK, []any{})
	})

	require.NoError(t, client.DeletePodcast(t.Context(), "p1"))
	require.ErrorIs(t, client.DeletePodcast(t.Context(), "p2"), store.ErrPodcastNotFound)
}

// TestClient_Profile tests the GraphQL read and the REST update of a profile.
func TestClient_Profile(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/graphql/v1":
			var request struct {
				Query     string         `json:"query"`
				Variables map[string]any `json:"variables"`
			}

			assert.NoError(t, json.NewDecoder(r.Body).Decode(&request))
			assert.Contains(t, request.Query, "profilesCollection")
			assert.Equal(t, "user-1", request.Variables["id"])

			writeJSON(t, w, http.StatusOK, map[string]any{
				"data": map[string]any{
					"profilesCollection": map[string]any{
						"edges": []any{map[string]any{"node": map[string]any{
							"id":                       "user-1",
							"full_name":                "Ada Lovelace",
							"year_group":               "Year 10",
							"subjects":                 []string{"Chemistry", "Physics"},
							"has_completed_onboarding": true,
						}}},
					},
				},
			})
		case "/rest/v1/profiles":
			assert.Equal(t, http.MethodPatch, r.Method)

			var body map[string]any
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, map[string]any{"full_name": "Ada King", "personalized_mode": true}, body)

			writeJSON(t, w, http.StatusOK, []map[string]any{{"id": "user-1"}})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})

	profile, err := client.GetProfile(t.Context(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", profile.FullName)
	assert.Equal(t, []string{"Chemistry", "Physics"}, profile.Subjects)
	require.NotNil(t, profile.YearGroup)
	assert.Equal(t, "Year 10", *profile.YearGroup)
	assert.Nil(t, profile.Course)

	name, personalized := "Ada King", true

	require.NoError(t, client.UpdateProfile(t.Context(), "user-1", store.ProfileUpdate{
		FullName:         &name,
		PersonalizedMode: &personalized,
	}))
	require.ErrorIs(t, client.UpdateProfile(t.Context(), "user-1", store.ProfileUpdate{}), store.ErrEmptyProfileUpdate)
}

// TestClient_GeneratePodcast tests the generation function call and its failures.
func TestClient_GeneratePodcast(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		status      int
		body        string
		expectedErr error
		contains    string
	}{
		{
			name:   "direct result",
			status: http.StatusOK,
			body:   `{"title":"Chemistry – Bonding","audio_url":"https://files.studycast.dev/audio/x.mp3","script_text":"Bonds...","duration":"5m 30s"}`,
		},
		{
			name:   "stored row",
			status: http.StatusOK,
			body:   `{"podcastId":"p7","cached":true}`,
		},
		{
			name:        "function error",
			status:      http.StatusInternalServerError,
			body:        `{"error":"quota exceeded"}`,
			expectedErr: ErrFunctionFailed,
			contains:    "quota exceeded",
		},
		{
			name:        "no data",
			status:      http.StatusOK,
			body:        ``,
			expectedErr: ErrEmptyFunctionResponse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/functions/v1/generate-podcast", r.URL.Path)

				var request GeneratePodcastRequest
				assert.NoError(t, json.NewDecoder(r.Body).Decode(&request))
				assert.Equal(t, "Chemistry", request.Subject)
				assert.Equal(t, "FocusCast", request.Mode)

				w.WriteHeader(tt.status)
				_, err := io.WriteString(w, tt.body)
				assert.NoError(t, err)
			})

			response, err := client.GeneratePodcast(t.Context(), &GeneratePodcastRequest{
				Subject:   "Chemistry",
				Topic:     "Bonding",
				ExamBoard: "AQA",
				Level:     "Foundation",
				Mode:      "FocusCast",
			})
			if tt.expectedErr != nil {
				require.ErrorIs(t, err, tt.expectedErr)

				if tt.contains != "" {
					assert.Contains(t, err.Error(), tt.contains)
				}

				return
			}

			require.NoError(t, err)
			require.NotNil(t, response)
		})
	}
}

// TestClient_DownloadFromURL tests relative locations and that credentials stay on the backend.
func TestClient_DownloadFromURL(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("apikey"))
		assert.Empty(t, r.Header.Get("Authorization"))

		if r.URL.Path != "/assets/sample-3s.mp3" {
			w.WriteHeader(http.StatusNotFound)

			return
		}

		w.Header().Set("Content-Type", "audio/mpeg")
		_, err := io.WriteString(w, "ID3")
		assert.NoError(t, err)
	})

	result, err := client.DownloadFromURL(t.Context(), "/assets/sample-3s.mp3")
	require.NoError(t, err)

	defer result.Body.Close()

	data, err := io.ReadAll(result.Body)
	require.NoError(t, err)
	assert.Equal(t, "ID3", string(data))
	assert.Equal(t, "audio/mpeg", result.ContentType)

	_, err = client.DownloadFromURL(t.Context(), "/assets/missing.mp3")
	require.ErrorIs(t, err, ErrUnexpectedHTTPStatus)

	_, err = client.DownloadFromURL(t.Context(), "  ")
	require.ErrorIs(t, err, ErrInvalidAudioURL)
}

// TestParseDurationLabel tests the duration labels returned by the generation function.
func TestParseDurationLabel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		label    string
		expected int
	}{
		{label: "5m 30s", expected: 330},
		{label: "330", expected: 330},
		{label: "5:30", expected: 330},
		{label: "1h2m", expected: 3720},
		{label: "", expected: 0},
		{label: "soon", expected: 0},
		{label: "-5", expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, ParseDurationLabel(tt.label))
		})
	}
}

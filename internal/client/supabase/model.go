package supabase

import (
	"io"

	"github.com/oshokin/studycast/internal/store"
)

// GeneratePodcastRequest is the body of a generate-podcast call.
type GeneratePodcastRequest struct {
	// Subject is the subject name.
	Subject string `json:"subject"`
	// Topic is the topic or subtopic title.
	Topic string `json:"topic"`
	// ExamBoard is the exam board.
	ExamBoard string `json:"exam_board"`
	// Level is Foundation or Higher.
	Level string `json:"level"`
	// Mode is FocusCast or SleepCast.
	Mode string `json:"mode"`
	// RepetitionLevel is how often key facts are repeated in SleepCast scripts.
	RepetitionLevel int `json:"repetition_level,omitempty"`
	// PreviewOnly asks for a script without audio.
	PreviewOnly bool `json:"preview_only,omitempty"`
	// EditedScript replaces the generated script.
	EditedScript string `json:"edited_script,omitempty"`
	// VoiceID selects the narrator voice.
	VoiceID string `json:"voice_id,omitempty"`
	// SpeakingSpeed scales the narration speed.
	SpeakingSpeed float64 `json:"speaking_speed,omitempty"`
}

// GeneratePodcastResponse is the result of a generate-podcast call. The direct path fills
// the title, audio and script; the database path only returns the id of the stored row.
type GeneratePodcastResponse struct {
	// Title is the display title of the recording.
	Title string `json:"title"`
	// AudioURL is the rendered audio, nil for previews or failed renders.
	AudioURL *string `json:"audio_url"`
	// ScriptText is the narration script.
	ScriptText string `json:"script_text"`
	// Duration is a label such as "5m 30s".
	Duration string `json:"duration"`
	// PodcastID is the id of the stored row on the database path.
	PodcastID string `json:"podcastId"`
	// Cached is set when an existing row was returned instead of a new generation.
	Cached bool `json:"cached"`
}

// errorBody is the error body of the table endpoints and backend functions.
type errorBody struct {
	// Code is the SQLSTATE or PostgREST error code.
	Code string `json:"code"`
	// Message describes the failure.
	Message string `json:"message"`
	// Details adds context to the failure.
	Details string `json:"details"`
	// Error is the failure message of a backend function.
	Error string `json:"error"`
}

// text returns the most specific message of the body.
func (b *errorBody) text() string {
	switch {
	case b.Error != "":
		return b.Error
	case b.Details != "" && b.Message != "":
		return b.Message + " (" + b.Details + ")"
	default:
		return b.Message
	}
}

// idRow is a row with only its id selected.
type idRow struct {
	// ID is the row id.
	ID string `json:"id"`
}

// profilesQueryResponse is the data of the profile GraphQL query.
type profilesQueryResponse struct {
	// ProfilesCollection is the connection of matching profiles.
	ProfilesCollection struct {
		// Edges hold the matching profiles.
		Edges []struct {
			// Node is the profile row.
			Node *store.Profile `json:"node"`
		} `json:"edges"`
	} `json:"profilesCollection"`
}

// DownloadResult holds the response of an audio download.
type DownloadResult struct {
	// Body is the response body to be read and closed by the caller.
	Body io.ReadCloser
	// ContentType is the response media type.
	ContentType string
	// TotalBytes is the response length, -1 when unknown.
	TotalBytes int64
}

// FetchJSONResult holds the result of a JSON call.
type FetchJSONResult[T any] struct {
	// Data is the decoded response.
	Data *T
	// StatusCode is the HTTP status of the response.
	StatusCode int
}

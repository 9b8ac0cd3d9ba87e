package store

import (
	"strings"
	"time"
)

// Podcast is one generated recording row.
type Podcast struct {
	// ID is the row id.
	ID string `json:"id" gorm:"primaryKey;type:varchar(36)"`
	// UserID is the owner of the recording.
	UserID string `json:"user_id" gorm:"type:varchar(36);index;uniqueIndex:idx_podcasts_duplicate_key,priority:1"`
	// Subject is the subject name, for example "Chemistry".
	Subject string `json:"subject" gorm:"type:varchar(128);uniqueIndex:idx_podcasts_duplicate_key,priority:2"`
	// Topic is the topic or subtopic title the recording covers.
	Topic string `json:"topic" gorm:"type:varchar(255);uniqueIndex:idx_podcasts_duplicate_key,priority:3"`
	// AudioURL points to the rendered audio, nil while the recording is still processing.
	AudioURL *string `json:"audio_url" gorm:"type:text"`
	// IsFavorite marks recordings saved to the library.
	IsFavorite bool `json:"is_favorite"`
	// CreatedAt is the creation time of the row.
	CreatedAt time.Time `json:"created_at" gorm:"index"`
	// Duration is the length in seconds, nil when unknown.
	Duration *int `json:"duration"`
	// Mode is the studio mode, FocusCast or SleepCast.
	Mode string `json:"mode" gorm:"type:varchar(32);uniqueIndex:idx_podcasts_duplicate_key,priority:4"`
	// ExamBoard is the exam board the script targets.
	ExamBoard string `json:"exam_board" gorm:"type:varchar(32);uniqueIndex:idx_podcasts_duplicate_key,priority:5"`
	// Level is the tier the script targets.
	Level string `json:"level" gorm:"type:varchar(32);uniqueIndex:idx_podcasts_duplicate_key,priority:6"`
	// Content is the script text.
	Content string `json:"content" gorm:"type:mediumtext"`
}

// HasAudio reports whether the recording can be played.
func (p *Podcast) HasAudio() bool {
	return p.AudioURL != nil && strings.TrimSpace(*p.AudioURL) != ""
}

// Audio returns the audio URL or an empty string.
func (p *Podcast) Audio() string {
	if p.AudioURL == nil {
		return ""
	}

	return *p.AudioURL
}

// DurationSeconds returns the length in seconds or zero when unknown.
func (p *Podcast) DurationSeconds() int {
	if p.Duration == nil {
		return 0
	}

	return *p.Duration
}

// Key returns the duplicate key of the recording.
func (p *Podcast) Key() DuplicateKey {
	return DuplicateKey{
		UserID:    p.UserID,
		Subject:   p.Subject,
		Topic:     p.Topic,
		Mode:      p.Mode,
		ExamBoard: p.ExamBoard,
		Level:     p.Level,
	}
}

// Profile is the study profile of a user.
type Profile struct {
	// ID equals the user id.
	ID string `json:"id" gorm:"primaryKey;type:varchar(36)"`
	// FullName is the display name.
	FullName string `json:"full_name" gorm:"type:varchar(255)"`
	// Email is the sign-in email.
	Email string `json:"email" gorm:"type:varchar(255)"`
	// Course is the course type, Combined or Triple.
	Course *string `json:"course" gorm:"type:varchar(64)"`
	// YearGroup is the school year, for example "Year 10".
	YearGroup *string `json:"year_group" gorm:"type:varchar(64)"`
	// Subjects are the subjects the user studies.
	Subjects []string `json:"subjects" gorm:"serializer:json"`
	// HasCompletedOnboarding is set once onboarding finished.
	HasCompletedOnboarding bool `json:"has_completed_onboarding"`
	// PersonalizedMode is set once a study profile was saved.
	PersonalizedMode bool `json:"personalized_mode"`
}

// ProfileUpdate lists profile fields to change; nil fields are left as they are.
type ProfileUpdate struct {
	// FullName replaces the display name.
	FullName *string
	// Course replaces the course type.
	Course *string
	// YearGroup replaces the school year.
	YearGroup *string
	// Subjects replaces the subject list.
	Subjects []string
	// PersonalizedMode replaces the personalized flag.
	PersonalizedMode *bool
}

// Empty reports whether the update changes nothing.
func (u ProfileUpdate) Empty() bool {
	return len(u.Columns()) == 0
}

// Columns returns the changed columns keyed by their column names.
func (u ProfileUpdate) Columns() map[string]any {
	columns := make(map[string]any)

	if u.FullName != nil {
		columns["full_name"] = *u.FullName
	}

	if u.Course != nil {
		columns["course"] = *u.Course
	}

	if u.YearGroup != nil {
		columns["year_group"] = *u.YearGroup
	}

	if u.Subjects != nil {
		columns["subjects"] = u.Subjects
	}

	if u.PersonalizedMode != nil {
		columns["personalized_mode"] = *u.PersonalizedMode
	}

	return columns
}

// DuplicateKey identifies recordings that cover the same material for the same user.
type DuplicateKey struct {
	// UserID is the owner.
	UserID string `validate:"required"`
	// Subject is the subject name.
	Subject string `validate:"required"`
	// Topic is the topic or subtopic title.
	Topic string `validate:"required"`
	// Mode is the studio mode.
	Mode string `validate:"required,oneof=FocusCast SleepCast"`
	// ExamBoard is the exam board.
	ExamBoard string `validate:"required"`
	// Level is the tier.
	Level string `validate:"required,oneof=Foundation Higher"`
}

// String renders the key for logs and lock names.
func (k DuplicateKey) String() string {
	return strings.Join([]string{k.UserID, k.Subject, k.Topic, k.Mode, k.ExamBoard, k.Level}, "|")
}

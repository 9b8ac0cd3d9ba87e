package player

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/oshokin/studycast/internal/ambient"
)

// Mode is the library mode of a track. It changes copy and the default ambient texture, never playback.
type Mode string

const (
	// ModeExplainer is a direct walkthrough of a subtopic.
	ModeExplainer Mode = "Explainer"
	// ModeRepetition is a slower recap built for recall.
	ModeRepetition Mode = "Repetition"
)

// Studio modes are the names the generation backend and saved rows use.
const (
	// StudioModeFocusCast corresponds to ModeExplainer.
	StudioModeFocusCast = "FocusCast"
	// StudioModeSleepCast corresponds to ModeRepetition.
	StudioModeSleepCast = "SleepCast"
)

// Source tells where a descriptor came from.
type Source string

const (
	// SourceLibrary marks descriptors built from the catalog.
	SourceLibrary Source = "library"
	// SourceSaved marks descriptors built from saved recordings.
	SourceSaved Source = "saved"
)

// Static error definitions for better error handling.
var (
	// ErrUnknownMode indicates a mode name that is neither a library nor a studio mode.
	ErrUnknownMode = errors.New("unknown mode")
	// ErrInvalidDescriptor indicates a descriptor that cannot be played.
	ErrInvalidDescriptor = errors.New("invalid track descriptor")
)

// ParseMode accepts library names (Explainer, Repetition) and studio names (FocusCast, SleepCast).
func ParseMode(value string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "explainer", "focuscast", "focus":
		return ModeExplainer, nil
	case "repetition", "sleepcast", "sleep":
		return ModeRepetition, nil
	default:
		return "", fmt.Errorf("%w: '%s'", ErrUnknownMode, value)
	}
}

// ModeFromStudio maps a saved row's mode to a library mode; anything other than SleepCast is an explainer.
func ModeFromStudio(studioMode string) Mode {
	if studioMode == StudioModeSleepCast {
		return ModeRepetition
	}

	return ModeExplainer
}

// StudioMode returns the name the generation backend uses for m.
func (m Mode) StudioMode() string {
	if m == ModeRepetition {
		return StudioModeSleepCast
	}

	return StudioModeFocusCast
}

// DefaultBackground returns the texture a track of this mode plays over when none is chosen.
func (m Mode) DefaultBackground() ambient.Background {
	if m == ModeRepetition {
		return ambient.BackgroundDeltaWaves
	}

	return ambient.BackgroundNone
}

// Descriptor is an immutable description of one playable track. It is passed and stored by value;
// changing a parameter means building a new descriptor.
type Descriptor struct {
	// ID is unique per playable unit: "<subtopic>-<mode>" for catalog tracks, "saved-<row>" for recordings.
	ID string
	// SubjectID is the catalog subject id, or "custom" for unknown subjects.
	SubjectID string
	// SubjectName is the display name of the subject.
	SubjectName string
	// SubjectIcon is an emoji shown next to the subject.
	SubjectIcon string
	// SubjectAccent is a hex color for the subject.
	SubjectAccent string
	// TopicID identifies the topic.
	TopicID string
	// TopicTitle is the display name of the topic.
	TopicTitle string
	// SubtopicID keys the completed set.
	SubtopicID string
	// SubtopicTitle is the display name of the subtopic.
	SubtopicTitle string
	// Mode is the library mode.
	Mode Mode
	// DurationSeconds is the nominal length, used when the media length is unknown.
	DurationSeconds int
	// AudioURL is the media location; empty means simulated playback.
	AudioURL string
	// Transcript is the generated script, if any.
	Transcript string
	// Voice is the voice id used for generation, if any.
	Voice string
	// Speed is the speaking speed used for generation, if any.
	Speed float64
	// Background is the ambient texture; empty means the controller default.
	Background ambient.Background
	// Source tells where the descriptor came from.
	Source Source
}

// Validate reports whether the descriptor can be queued.
func (d Descriptor) Validate() error {
	switch {
	case strings.TrimSpace(d.ID) == "":
		return fmt.Errorf("%w: empty id", ErrInvalidDescriptor)
	case d.DurationSeconds < 0:
		return fmt.Errorf("%w: negative duration for '%s'", ErrInvalidDescriptor, d.ID)
	case d.AudioURL == "" && d.DurationSeconds == 0:
		return fmt.Errorf("%w: '%s' has neither audio nor a duration", ErrInvalidDescriptor, d.ID)
	}

	return nil
}

// NominalDuration returns DurationSeconds as a duration.
func (d Descriptor) NominalDuration() time.Duration {
	return time.Duration(d.DurationSeconds) * time.Second
}

// HasAudio reports whether the track plays real media.
func (d Descriptor) HasAudio() bool {
	return d.AudioURL != ""
}

// WithBackground returns a copy of d playing over bg.
func (d Descriptor) WithBackground(bg ambient.Background) Descriptor {
	d.Background = bg

	return d
}

// Title returns the display title: the subtopic, or the topic when they match.
func (d Descriptor) Title() string {
	if d.SubtopicTitle == "" || d.SubtopicTitle == d.TopicTitle {
		return d.TopicTitle
	}

	return d.TopicTitle + ": " + d.SubtopicTitle
}

// String implements fmt.Stringer.
func (d Descriptor) String() string {
	return fmt.Sprintf("%s %s · %s (%s)", d.SubjectIcon, d.SubjectName, d.Title(), d.Mode)
}

package library

import (
	"time"

	"github.com/oshokin/studycast/internal/ambient"
	"github.com/oshokin/studycast/internal/player"
	"github.com/oshokin/studycast/internal/store"
	"github.com/oshokin/studycast/internal/utils"
)

// Fallback display metadata for recordings whose subject is not in the catalog.
const (
	// CustomSubjectID is the subject id of unknown subjects.
	CustomSubjectID = "custom"
	// CustomSubjectIcon is the icon of unknown subjects.
	CustomSubjectIcon = "🎧"
	// CustomSubjectAccent is the accent of unknown subjects.
	CustomSubjectAccent = "#6366F1"
)

const (
	savedIDPrefix      = "saved-"
	savedTopicIDPrefix = "saved-topic-"
)

// Overrides carries generation parameters that replace catalog defaults.
type Overrides struct {
	// DurationSeconds replaces the nominal subtopic length when positive.
	DurationSeconds int
	// AudioURL is the generated audio.
	AudioURL string
	// Transcript is the generated script.
	Transcript string
	// Voice is the voice id.
	Voice string
	// Speed is the speaking speed.
	Speed float64
	// Background is the ambient texture.
	Background ambient.Background
}

// DescriptorID returns the id of a catalog subtopic played in a mode.
func DescriptorID(subtopicID string, mode player.Mode) string {
	return subtopicID + "-" + string(mode)
}

// BuildDescriptor builds the descriptor of a catalog subtopic.
func BuildDescriptor(
	subject *Subject,
	topic *Topic,
	subtopic *Subtopic,
	mode player.Mode,
	overrides Overrides,
) player.Descriptor {
	durationSeconds := overrides.DurationSeconds
	if durationSeconds <= 0 {
		durationSeconds = int(subtopic.NominalDuration() / time.Second)
	}

	return player.Descriptor{
		ID:              DescriptorID(subtopic.ID, mode),
		SubjectID:       subject.ID,
		SubjectName:     subject.Name,
		SubjectIcon:     subject.Icon,
		SubjectAccent:   subject.Accent,
		TopicID:         topic.ID,
		TopicTitle:      topic.Title,
		SubtopicID:      subtopic.ID,
		SubtopicTitle:   subtopic.Title,
		Mode:            mode,
		DurationSeconds: durationSeconds,
		AudioURL:        overrides.AudioURL,
		Transcript:      overrides.Transcript,
		Voice:           overrides.Voice,
		Speed:           overrides.Speed,
		Background:      overrides.Background,
		Source:          player.SourceLibrary,
	}
}

// TopicDescriptors builds the descriptors of every subtopic of a topic in order,
// each in the mode the preferences pick for it.
func TopicDescriptors(subject *Subject, topic *Topic, prefs *ModePreferences) []player.Descriptor {
	return utils.Map(topic.Subtopics, func(subtopic *Subtopic) player.Descriptor {
		return BuildDescriptor(subject, topic, subtopic, prefs.ModeFor(subtopic.ID), Overrides{})
	})
}

// SavedDescriptor builds the descriptor of a saved recording. Subjects missing
// from the catalog get the custom icon and accent.
func (c *Catalog) SavedDescriptor(podcast *store.Podcast) player.Descriptor {
	descriptor := player.Descriptor{
		ID:              SavedDescriptorID(podcast.ID),
		SubjectID:       CustomSubjectID,
		SubjectName:     podcast.Subject,
		SubjectIcon:     CustomSubjectIcon,
		SubjectAccent:   CustomSubjectAccent,
		TopicID:         savedTopicIDPrefix + podcast.Topic,
		TopicTitle:      podcast.Topic,
		SubtopicID:      SavedDescriptorID(podcast.ID),
		SubtopicTitle:   podcast.Topic,
		Mode:            player.ModeFromStudio(podcast.Mode),
		DurationSeconds: podcast.DurationSeconds(),
		AudioURL:        podcast.Audio(),
		Transcript:      podcast.Content,
		Source:          player.SourceSaved,
	}

	if subject := c.lookupSubject(podcast.Subject); subject != nil {
		descriptor.SubjectID = subject.ID
		descriptor.SubjectIcon = subject.Icon
		descriptor.SubjectAccent = subject.Accent
	}

	return descriptor
}

// SavedDescriptorID returns the descriptor id of a saved recording.
func SavedDescriptorID(podcastID string) string {
	return savedIDPrefix + podcastID
}

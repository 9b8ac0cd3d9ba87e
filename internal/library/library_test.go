package library

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oshokin/studycast/internal/ambient"
	"github.com/oshokin/studycast/internal/player"
	"github.com/oshokin/studycast/internal/store"
)

func chemistry(t *testing.T) *Subject {
	t.Helper()

	catalog, err := DefaultCatalog()
	require.NoError(t, err)

	subject, err := catalog.Subject("chemistry")
	require.NoError(t, err)

	return subject
}

func stringPtr(s string) *string {
	return &s
}

func intPtr(i int) *int {
	return &i
}

// TestDefaultCatalog tests that the embedded catalog loads and resolves lookups.
func TestDefaultCatalog(t *testing.T) {
	t.Parallel()

	catalog, err := DefaultCatalog()
	require.NoError(t, err)
	require.Len(t, catalog.Subjects, 6)

	subject, err := catalog.Subject("CHEMISTRY")
	require.NoError(t, err)
	assert.Equal(t, "Chemistry", subject.Name)

	byName, err := catalog.Subject("English Literature")
	require.NoError(t, err)
	assert.Equal(t, "english", byName.ID)

	topic, err := subject.Topic("Atomic Structure")
	require.NoError(t, err)
	assert.Equal(t, "atomic-structure", topic.ID)
	assert.Equal(t, 24*time.Minute, topic.TotalDuration())

	subtopic, err := topic.Subtopic("atomic-structure-1")
	require.NoError(t, err)
	assert.Equal(t, "Protons, Neutrons and Electrons", subtopic.Title)
	assert.Equal(t, 8*time.Minute, subtopic.NominalDuration())

	_, err = catalog.Subject("history")
	require.ErrorIs(t, err, ErrSubjectNotFound)

	_, err = subject.Topic("macbeth")
	require.ErrorIs(t, err, ErrTopicNotFound)

	_, err = topic.Subtopic("bonding-1")
	require.ErrorIs(t, err, ErrSubtopicNotFound)
}

// TestParseCatalog tests that malformed catalogs are rejected.
func TestParseCatalog(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data string
	}{
		{name: "not yaml", data: "subjects: ["},
		{name: "no subjects", data: "subjects: []"},
		{name: "subject without name", data: "subjects:\n  - id: chemistry\n"},
		{
			name: "duplicate subtopic",
			data: `subjects:
  - id: chemistry
    name: Chemistry
    topics:
      - id: a
        subtopics: [{id: x, title: X, duration: 1 min}]
      - id: b
        subtopics: [{id: x, title: Y, duration: 1 min}]
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := ParseCatalog([]byte(tt.data))
			require.ErrorIs(t, err, ErrInvalidCatalog)
		})
	}
}

// TestFilterTopics tests course, tier, exam board and search filtering.
func TestFilterTopics(t *testing.T) {
	t.Parallel()

	subject := chemistry(t)

	ids := func(topics []*Topic) []string {
		result := make([]string, 0, len(topics))
		for _, topic := range topics {
			result = append(result, topic.ID)
		}

		return result
	}

	tests := []struct {
		name     string
		filter   Filter
		expected []string
	}{
		{
			name:   "all",
			filter: Filter{Course: AllOption, Tier: AllOption, ExamBoard: AllOption},
			expected: []string{
				"atomic-structure", "periodic-table", "bonding", "energy-changes",
				"rates", "organic", "analysis", "using-resources",
			},
		},
		{name: "triple", filter: Filter{Course: "Triple"}, expected: []string{"rates", "organic", "analysis"}},
		{name: "higher AQA", filter: Filter{Tier: "higher", ExamBoard: "AQA"}, expected: []string{"bonding"}},
		{name: "search subtopic title", filter: Filter{Search: "  chromatography "}, expected: []string{"analysis"}},
		{name: "search description", filter: Filter{Search: "isotopes"}, expected: []string{"atomic-structure"}},
		{name: "nothing", filter: Filter{Course: "Triple", Search: "ionic"}, expected: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, ids(subject.FilterTopics(tt.filter)))
		})
	}
}

// TestModePreferences tests the default mode and per-subtopic choices.
func TestModePreferences(t *testing.T) {
	t.Parallel()

	prefs, err := NewModePreferences(AllOption)
	require.NoError(t, err)
	assert.Equal(t, player.ModeExplainer, prefs.Preferred())

	prefs.Set("atomic-structure-2", player.ModeRepetition)
	assert.Equal(t, player.ModeRepetition, prefs.ModeFor("atomic-structure-2"))
	assert.Equal(t, player.ModeExplainer, prefs.ModeFor("atomic-structure-1"))

	sleepy, err := NewModePreferences("Repetition")
	require.NoError(t, err)
	assert.Equal(t, player.ModeRepetition, sleepy.ModeFor("bonding-1"))

	_, err = NewModePreferences("Lecture")
	require.ErrorIs(t, err, player.ErrUnknownMode)
}

// TestBuildDescriptor tests catalog descriptors with and without generation overrides.
func TestBuildDescriptor(t *testing.T) {
	t.Parallel()

	subject := chemistry(t)
	topic, err := subject.Topic("atomic-structure")
	require.NoError(t, err)

	subtopic := topic.Subtopics[0]

	plain := BuildDescriptor(subject, topic, subtopic, player.ModeExplainer, Overrides{})
	assert.Equal(t, "atomic-structure-1-Explainer", plain.ID)
	assert.Equal(t, 480, plain.DurationSeconds)
	assert.Equal(t, "🧪", plain.SubjectIcon)
	assert.Equal(t, player.SourceLibrary, plain.Source)
	assert.False(t, plain.HasAudio())
	require.NoError(t, plain.Validate())

	generated := BuildDescriptor(subject, topic, subtopic, player.ModeRepetition, Overrides{
		DurationSeconds: 330,
		AudioURL:        "https://files.studycast.dev/audio/abc.mp3",
		Transcript:      "Atoms are made of...",
		Voice:           "alloy",
		Speed:           1.25,
		Background:      ambient.BackgroundRain,
	})
	assert.Equal(t, "atomic-structure-1-Repetition", generated.ID)
	assert.Equal(t, 330, generated.DurationSeconds)
	assert.Equal(t, ambient.BackgroundRain, generated.Background)
	assert.InDelta(t, 1.25, generated.Speed, 1e-9)
}

// TestTopicDescriptors tests that adding a topic builds every subtopic in order.
func TestTopicDescriptors(t *testing.T) {
	t.Parallel()

	subject := chemistry(t)
	topic, err := subject.Topic("periodic-table")
	require.NoError(t, err)

	prefs, err := NewModePreferences("")
	require.NoError(t, err)

	prefs.Set("periodic-table-2", player.ModeRepetition)

	descriptors := TopicDescriptors(subject, topic, prefs)
	require.Len(t, descriptors, 3)
	assert.Equal(t, "periodic-table-1-Explainer", descriptors[0].ID)
	assert.Equal(t, "periodic-table-2-Repetition", descriptors[1].ID)
	assert.Equal(t, "periodic-table-3-Explainer", descriptors[2].ID)
}

// TestSavedDescriptor tests descriptors built from saved rows.
func TestSavedDescriptor(t *testing.T) {
	t.Parallel()

	catalog, err := DefaultCatalog()
	require.NoError(t, err)

	known := catalog.SavedDescriptor(&store.Podcast{
		ID:       "42",
		Subject:  "Chemistry",
		Topic:    "Atomic Structure",
		AudioURL: stringPtr("https://files.studycast.dev/audio/42.mp3"),
		Duration: intPtr(330),
		Mode:     "SleepCast",
	})
	assert.Equal(t, "saved-42", known.ID)
	assert.Equal(t, "saved-42", known.SubtopicID)
	assert.Equal(t, "chemistry", known.SubjectID)
	assert.Equal(t, "🧪", known.SubjectIcon)
	assert.Equal(t, "saved-topic-Atomic Structure", known.TopicID)
	assert.Equal(t, player.ModeRepetition, known.Mode)
	assert.Equal(t, 330, known.DurationSeconds)
	assert.Equal(t, player.SourceSaved, known.Source)

	custom := catalog.SavedDescriptor(&store.Podcast{ID: "7", Subject: "Latin", Topic: "Verbs", Mode: "FocusCast"})
	assert.Equal(t, CustomSubjectID, custom.SubjectID)
	assert.Equal(t, CustomSubjectIcon, custom.SubjectIcon)
	assert.Equal(t, CustomSubjectAccent, custom.SubjectAccent)
	assert.Equal(t, "Latin", custom.SubjectName)
	assert.Equal(t, player.ModeExplainer, custom.Mode)
	assert.Equal(t, 0, custom.DurationSeconds)
	assert.False(t, custom.HasAudio())
}

// TestGroupSaved tests grouping by subject and topic, newest first.
func TestGroupSaved(t *testing.T) {
	t.Parallel()

	day := func(d int) time.Time { return time.Date(2026, time.March, d, 12, 0, 0, 0, time.UTC) }

	podcasts := []*store.Podcast{
		{ID: "1", Subject: "Chemistry", Topic: "Bonding", CreatedAt: day(1)},
		{ID: "2", Subject: "Biology", Topic: "Ecology", CreatedAt: day(3)},
		{ID: "3", Subject: "Chemistry", Topic: "Bonding", CreatedAt: day(5)},
		{ID: "4", Subject: "Physics", Topic: "Waves"},
		{ID: "5", Subject: "Chemistry", Topic: "Rates", CreatedAt: day(2)},
	}

	groups := GroupSaved(podcasts, SavedFilter{})
	require.Len(t, groups, 4)

	assert.Equal(t, "Bonding", groups[0].Topic)
	require.Len(t, groups[0].Podcasts, 2)
	assert.Equal(t, "3", groups[0].Podcasts[0].ID)
	assert.Equal(t, "1", groups[0].Podcasts[1].ID)
	assert.Equal(t, "Ecology", groups[1].Topic)
	assert.Equal(t, "Rates", groups[2].Topic)
	assert.Equal(t, "Waves", groups[3].Topic, "rows without a creation time sort last")

	searched := GroupSaved(podcasts, SavedFilter{Search: "chem"})
	require.Len(t, searched, 2)

	bySubject := GroupSaved(podcasts, SavedFilter{Subject: "Biology"})
	require.Len(t, bySubject, 1)
	assert.Equal(t, "Ecology", bySubject[0].Topic)
}

// TestSavedSource tests the source inferred from topic titles.
func TestSavedSource(t *testing.T) {
	t.Parallel()

	assert.Equal(t, SavedSourceTextbook, SavedSource(&store.Podcast{Topic: "CGP Chemistry - Chapter 3"}))
	assert.Equal(t, SavedSourceCustom, SavedSource(&store.Podcast{Topic: "Atomic Structure"}))

	filter := SavedFilter{Source: SavedSourceTextbook}
	assert.True(t, filter.Matches(&store.Podcast{Topic: "CGP Chemistry - Chapter 3"}))
	assert.False(t, filter.Matches(&store.Podcast{Topic: "Atomic Structure"}))
}

// TestFormatSaved tests duration and date labels.
func TestFormatSaved(t *testing.T) {
	t.Parallel()

	assert.Empty(t, FormatSavedDuration(0))
	assert.Equal(t, "5m 03s", FormatSavedDuration(303))
	assert.Equal(t, "0m 45s", FormatSavedDuration(45))
	assert.Equal(t, "Recently generated", FormatSavedDate(time.Time{}))
	assert.NotEqual(t, "Recently generated", FormatSavedDate(time.Now()))
}

package library

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/oshokin/studycast/internal/store"
	"github.com/oshokin/studycast/internal/utils"
)

// Saved recording sources, inferred from the topic title.
const (
	// SavedSourceTextbook marks recordings of a textbook chapter, titled "Book - Chapter".
	SavedSourceTextbook = "Textbook"
	// SavedSourceCustom marks recordings of a free-form topic.
	SavedSourceCustom = "Custom Topic"
)

const recentlyGenerated = "Recently generated"

// SavedGroup holds the recordings of one subject and topic, newest first.
type SavedGroup struct {
	// Subject is the subject name of the group.
	Subject string
	// Topic is the topic title of the group.
	Topic string
	// Podcasts are the recordings, newest first.
	Podcasts []*store.Podcast
}

// SavedFilter narrows saved recordings. Empty or "All" fields match every recording.
type SavedFilter struct {
	// Subject is the exact subject name.
	Subject string
	// Source is SavedSourceTextbook or SavedSourceCustom.
	Source string
	// Search is matched against subject and topic.
	Search string
}

// Matches reports whether a recording passes the filter.
func (f SavedFilter) Matches(podcast *store.Podcast) bool {
	if !matchOption(f.Subject, podcast.Subject) || !matchOption(f.Source, SavedSource(podcast)) {
		return false
	}

	query := strings.TrimSpace(f.Search)

	return query == "" || utils.ContainsFold(podcast.Topic, query) || utils.ContainsFold(podcast.Subject, query)
}

// SavedSource infers where a recording came from.
func SavedSource(podcast *store.Podcast) string {
	if strings.Contains(podcast.Topic, " - ") {
		return SavedSourceTextbook
	}

	return SavedSourceCustom
}

// GroupSaved groups the recordings passing the filter by subject and topic.
// Recordings are sorted newest first inside a group, groups by their newest recording;
// rows without a creation time sort last.
func GroupSaved(podcasts []*store.Podcast, filter SavedFilter) []SavedGroup {
	var (
		groups []SavedGroup
		index  = make(map[string]int)
	)

	for _, podcast := range podcasts {
		if !filter.Matches(podcast) {
			continue
		}

		key := podcast.Subject + "::" + podcast.Topic

		position, ok := index[key]
		if !ok {
			position = len(groups)
			index[key] = position
			groups = append(groups, SavedGroup{Subject: podcast.Subject, Topic: podcast.Topic})
		}

		groups[position].Podcasts = append(groups[position].Podcasts, podcast)
	}

	for i := range groups {
		slices.SortStableFunc(groups[i].Podcasts, func(a, b *store.Podcast) int {
			return b.CreatedAt.Compare(a.CreatedAt)
		})
	}

	slices.SortStableFunc(groups, func(a, b SavedGroup) int {
		return b.Podcasts[0].CreatedAt.Compare(a.Podcasts[0].CreatedAt)
	})

	return groups
}

// FormatSavedDuration renders a recording length as "5m 03s", or nothing when unknown.
func FormatSavedDuration(seconds int) string {
	if seconds <= 0 {
		return ""
	}

	return fmt.Sprintf("%dm %02ds", seconds/60, seconds%60)
}

// FormatSavedDate renders the creation day, or a placeholder when unknown.
func FormatSavedDate(createdAt time.Time) string {
	if createdAt.IsZero() {
		return recentlyGenerated
	}

	return createdAt.Local().Format("Jan 2")
}

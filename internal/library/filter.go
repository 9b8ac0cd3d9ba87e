package library

import (
	"strings"

	"github.com/oshokin/studycast/internal/player"
	"github.com/oshokin/studycast/internal/utils"
)

// AllOption is the filter value that matches everything.
const AllOption = "All"

// Filter narrows the topics of a subject. Empty or "All" fields match every topic.
type Filter struct {
	// Course is Combined or Triple.
	Course string
	// Tier is Foundation or Higher.
	Tier string
	// ExamBoard is AQA, Edexcel or OCR.
	ExamBoard string
	// Search is matched against topic titles, descriptions and subtopic titles.
	Search string
}

// Matches reports whether a topic passes the filter.
func (f Filter) Matches(topic *Topic) bool {
	return matchOption(f.Course, topic.CourseType) &&
		matchOption(f.Tier, topic.Tier) &&
		matchOption(f.ExamBoard, topic.ExamBoard) &&
		f.matchesSearch(topic)
}

func (f Filter) matchesSearch(topic *Topic) bool {
	query := strings.TrimSpace(f.Search)
	if query == "" {
		return true
	}

	if utils.ContainsFold(topic.Title, query) || utils.ContainsFold(topic.Description, query) {
		return true
	}

	for _, subtopic := range topic.Subtopics {
		if utils.ContainsFold(subtopic.Title, query) {
			return true
		}
	}

	return false
}

// FilterTopics returns the topics of the subject that pass the filter, in catalog order.
func (s *Subject) FilterTopics(f Filter) []*Topic {
	result := make([]*Topic, 0, len(s.Topics))

	for _, topic := range s.Topics {
		if f.Matches(topic) {
			result = append(result, topic)
		}
	}

	return result
}

func matchOption(option, value string) bool {
	option = strings.TrimSpace(option)

	return option == "" || strings.EqualFold(option, AllOption) || strings.EqualFold(option, value)
}

// DefaultModeForFilter returns the mode subtopics start in for a mode filter; "All" means Explainer.
func DefaultModeForFilter(modeFilter string) (player.Mode, error) {
	modeFilter = strings.TrimSpace(modeFilter)
	if modeFilter == "" || strings.EqualFold(modeFilter, AllOption) {
		return player.ModeExplainer, nil
	}

	return player.ParseMode(modeFilter)
}

// ModePreferences remembers the mode chosen per subtopic.
type ModePreferences struct {
	// preferred is used for subtopics without a choice.
	preferred player.Mode
	// selections maps subtopic ids to chosen modes.
	selections map[string]player.Mode
}

// NewModePreferences creates preferences whose default follows the mode filter.
func NewModePreferences(modeFilter string) (*ModePreferences, error) {
	preferred, err := DefaultModeForFilter(modeFilter)
	if err != nil {
		return nil, err
	}

	return &ModePreferences{
		preferred:  preferred,
		selections: make(map[string]player.Mode),
	}, nil
}

// Set records the mode chosen for a subtopic.
func (p *ModePreferences) Set(subtopicID string, mode player.Mode) {
	p.selections[subtopicID] = mode
}

// ModeFor returns the chosen mode of a subtopic or the default.
func (p *ModePreferences) ModeFor(subtopicID string) player.Mode {
	if mode, ok := p.selections[subtopicID]; ok {
		return mode
	}

	return p.preferred
}

// Preferred returns the default mode.
func (p *ModePreferences) Preferred() player.Mode {
	return p.preferred
}

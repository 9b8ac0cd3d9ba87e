package library

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/oshokin/studycast/internal/utils"
)

// Static error definitions for better error handling.
var (
	// ErrInvalidCatalog indicates a catalog document that cannot be used.
	ErrInvalidCatalog = errors.New("invalid catalog")
	// ErrSubjectNotFound indicates that no subject matched.
	ErrSubjectNotFound = errors.New("subject not found")
	// ErrTopicNotFound indicates that no topic matched.
	ErrTopicNotFound = errors.New("topic not found")
	// ErrSubtopicNotFound indicates that no subtopic matched.
	ErrSubtopicNotFound = errors.New("subtopic not found")
)

//go:embed catalog.yaml
var catalogData []byte

//nolint:gochecknoglobals // The embedded catalog is parsed once and never changes.
var defaultCatalog = sync.OnceValues(func() (*Catalog, error) {
	return ParseCatalog(catalogData)
})

// Catalog is the list of subjects available in the library.
type Catalog struct {
	// Subjects in display order.
	Subjects []*Subject `yaml:"subjects"`
}

// Subject is a library subject such as Chemistry.
type Subject struct {
	// ID is the slug used on the command line.
	ID string `yaml:"id"`
	// Name is the display name, also stored on generated rows.
	Name string `yaml:"name"`
	// Icon is an emoji.
	Icon string `yaml:"icon"`
	// Accent is a hex color.
	Accent string `yaml:"accent"`
	// Description is a one-line summary.
	Description string `yaml:"description"`
	// Topics in display order.
	Topics []*Topic `yaml:"topics"`
}

// Topic is an exam board topic of a subject.
type Topic struct {
	// ID is the slug used on the command line.
	ID string `yaml:"id"`
	// Title is the display name.
	Title string `yaml:"title"`
	// Description is a one-line summary.
	Description string `yaml:"description"`
	// CourseType is Combined or Triple.
	CourseType string `yaml:"course_type"`
	// Tier is Foundation or Higher.
	Tier string `yaml:"tier"`
	// ExamBoard is AQA, Edexcel or OCR.
	ExamBoard string `yaml:"exam_board"`
	// Subtopics in play order.
	Subtopics []*Subtopic `yaml:"subtopics"`
}

// Subtopic is one playable unit of a topic.
type Subtopic struct {
	// ID is unique across the catalog.
	ID string `yaml:"id"`
	// Title is the display name.
	Title string `yaml:"title"`
	// Duration is the nominal length label, for example "8 min".
	Duration string `yaml:"duration"`
}

// DefaultCatalog returns the embedded catalog.
func DefaultCatalog() (*Catalog, error) {
	return defaultCatalog()
}

// ParseCatalog decodes and checks a catalog document.
func ParseCatalog(data []byte) (*Catalog, error) {
	var catalog Catalog
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCatalog, err)
	}

	if err := catalog.validate(); err != nil {
		return nil, err
	}

	return &catalog, nil
}

func (c *Catalog) validate() error {
	if len(c.Subjects) == 0 {
		return fmt.Errorf("%w: no subjects", ErrInvalidCatalog)
	}

	subjectIDs := make(map[string]struct{}, len(c.Subjects))
	subtopicIDs := make(map[string]struct{})

	for _, subject := range c.Subjects {
		if subject.ID == "" || subject.Name == "" {
			return fmt.Errorf("%w: subject without id or name", ErrInvalidCatalog)
		}

		if _, ok := subjectIDs[subject.ID]; ok {
			return fmt.Errorf("%w: duplicate subject '%s'", ErrInvalidCatalog, subject.ID)
		}

		subjectIDs[subject.ID] = struct{}{}

		for _, topic := range subject.Topics {
			if topic.ID == "" {
				return fmt.Errorf("%w: topic without id in '%s'", ErrInvalidCatalog, subject.ID)
			}

			for _, subtopic := range topic.Subtopics {
				if subtopic.ID == "" {
					return fmt.Errorf("%w: subtopic without id in '%s'", ErrInvalidCatalog, topic.ID)
				}

				if _, ok := subtopicIDs[subtopic.ID]; ok {
					return fmt.Errorf("%w: duplicate subtopic '%s'", ErrInvalidCatalog, subtopic.ID)
				}

				subtopicIDs[subtopic.ID] = struct{}{}
			}
		}
	}

	return nil
}

// Subject finds a subject by id or name, ignoring case.
func (c *Catalog) Subject(key string) (*Subject, error) {
	if subject := c.lookupSubject(key); subject != nil {
		return subject, nil
	}

	return nil, fmt.Errorf("%w: '%s'", ErrSubjectNotFound, key)
}

// lookupSubject is Subject without the error, for optional matches such as saved rows.
func (c *Catalog) lookupSubject(key string) *Subject {
	if c == nil {
		return nil
	}

	key = strings.TrimSpace(key)

	for _, subject := range c.Subjects {
		if strings.EqualFold(subject.ID, key) || strings.EqualFold(subject.Name, key) {
			return subject
		}
	}

	return nil
}

// Topic finds a topic by id or title, ignoring case.
func (s *Subject) Topic(key string) (*Topic, error) {
	key = strings.TrimSpace(key)

	for _, topic := range s.Topics {
		if strings.EqualFold(topic.ID, key) || strings.EqualFold(topic.Title, key) {
			return topic, nil
		}
	}

	return nil, fmt.Errorf("%w: '%s' in %s", ErrTopicNotFound, key, s.Name)
}

// Subtopic finds a subtopic by id or title, ignoring case.
func (t *Topic) Subtopic(key string) (*Subtopic, error) {
	key = strings.TrimSpace(key)

	for _, subtopic := range t.Subtopics {
		if strings.EqualFold(subtopic.ID, key) || strings.EqualFold(subtopic.Title, key) {
			return subtopic, nil
		}
	}

	return nil, fmt.Errorf("%w: '%s' in %s", ErrSubtopicNotFound, key, t.Title)
}

// TotalDuration returns the nominal length of all subtopics.
func (t *Topic) TotalDuration() time.Duration {
	var total time.Duration
	for _, subtopic := range t.Subtopics {
		total += subtopic.NominalDuration()
	}

	return total
}

// NominalDuration parses the duration label; labels without a number are zero.
func (s *Subtopic) NominalDuration() time.Duration {
	return utils.ParseMinutes(s.Duration)
}

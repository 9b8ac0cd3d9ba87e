package studycast

import (
	"context"
	"fmt"

	"github.com/oshokin/studycast/internal/ambient"
	"github.com/oshokin/studycast/internal/library"
	"github.com/oshokin/studycast/internal/logger"
	"github.com/oshokin/studycast/internal/player"
)

// SubtopicRequest selects one catalog subtopic.
type SubtopicRequest struct {
	// Subject is a subject id or name.
	Subject string
	// Topic is a topic id or title.
	Topic string
	// Subtopic is a subtopic id or title.
	Subtopic string
	// Mode is the playback mode.
	Mode player.Mode
	// Background overrides the ambient texture when set.
	Background ambient.Background
}

// TopicRequest selects every subtopic of a catalog topic.
type TopicRequest struct {
	// Subject is a subject id or name.
	Subject string
	// Topic is a topic id or title.
	Topic string
	// Preferences pick the mode of each subtopic.
	Preferences *library.ModePreferences
	// Background overrides the ambient texture when set.
	Background ambient.Background
}

// PlaySubtopic plays one catalog subtopic now.
func (s *ServiceImpl) PlaySubtopic(ctx context.Context, req *SubtopicRequest) (*player.Descriptor, error) {
	subject, topic, err := s.lookupTopic(req.Subject, req.Topic)
	if err != nil {
		return nil, err
	}

	subtopic, err := topic.Subtopic(req.Subtopic)
	if err != nil {
		return nil, err
	}

	descriptor := library.BuildDescriptor(subject, topic, subtopic, req.Mode, library.Overrides{Background: req.Background})

	if err = s.player.PlayNow(descriptor); err != nil {
		return nil, fmt.Errorf("failed to play %s: %w", descriptor.ID, err)
	}

	logger.Debugf(ctx, "Playing subtopic %s", descriptor.ID)

	return &descriptor, nil
}

// QueueTopic appends every subtopic of a topic to the queue without starting playback.
// Subtopics already queued or current are skipped.
func (s *ServiceImpl) QueueTopic(ctx context.Context, req *TopicRequest) (int, error) {
	subject, topic, err := s.lookupTopic(req.Subject, req.Topic)
	if err != nil {
		return 0, err
	}

	prefs := req.Preferences
	if prefs == nil {
		if prefs, err = library.NewModePreferences(""); err != nil {
			return 0, err
		}
	}

	descriptors := library.TopicDescriptors(subject, topic, prefs)
	if req.Background != "" {
		for i := range descriptors {
			descriptors[i] = descriptors[i].WithBackground(req.Background)
		}
	}

	added, err := s.player.EnqueueAll(descriptors)
	if err != nil {
		return 0, fmt.Errorf("failed to queue %s: %w", topic.Title, err)
	}

	logger.Infof(ctx, "Queued %d of %d subtopics of %s", added, len(descriptors), topic.Title)

	return added, nil
}

// PlayTopic queues every subtopic of a topic and starts playback when idle.
func (s *ServiceImpl) PlayTopic(ctx context.Context, req *TopicRequest) (int, error) {
	added, err := s.QueueTopic(ctx, req)
	if err != nil {
		return 0, err
	}

	if s.player.Snapshot().Idle() {
		s.player.Advance()
	}

	return added, nil
}

// PlaySaved plays a saved podcast now. Podcasts without audio are reported as still processing.
func (s *ServiceImpl) PlaySaved(ctx context.Context, podcastID string) error {
	descriptor, err := s.savedDescriptor(ctx, podcastID)
	if err != nil {
		return err
	}

	if err = s.player.PlayNow(descriptor); err != nil {
		return fmt.Errorf("failed to play %s: %w", descriptor.ID, err)
	}

	return nil
}

// QueueSaved plays a saved podcast when idle and appends it to the queue otherwise.
// It reports whether playback started.
func (s *ServiceImpl) QueueSaved(ctx context.Context, podcastID string) (bool, error) {
	descriptor, err := s.savedDescriptor(ctx, podcastID)
	if err != nil {
		return false, err
	}

	started, err := s.player.EnqueueOrPlay(descriptor)
	if err != nil {
		return false, fmt.Errorf("failed to queue %s: %w", descriptor.ID, err)
	}

	s.notifier.Notify(ctx, Notification{
		Level:   LevelInfo,
		Title:   "Added to queue",
		Message: descriptor.TopicTitle + " will play next.",
	})

	return started, nil
}

func (s *ServiceImpl) savedDescriptor(ctx context.Context, podcastID string) (player.Descriptor, error) {
	podcast, err := s.store.GetPodcast(ctx, podcastID)
	if err != nil {
		return player.Descriptor{}, err
	}

	if !podcast.HasAudio() {
		s.notifier.Notify(ctx, notifyAudioNotReady)

		return player.Descriptor{}, fmt.Errorf("%w: %s", ErrAudioNotReady, podcast.Topic)
	}

	return s.catalog.SavedDescriptor(podcast), nil
}

func (s *ServiceImpl) lookupTopic(subjectKey, topicKey string) (*library.Subject, *library.Topic, error) {
	subject, err := s.catalog.Subject(subjectKey)
	if err != nil {
		return nil, nil, err
	}

	topic, err := subject.Topic(topicKey)
	if err != nil {
		return nil, nil, err
	}

	return subject, topic, nil
}

package studycast

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/oshokin/studycast/internal/ambient"
	"github.com/oshokin/studycast/internal/generation"
	"github.com/oshokin/studycast/internal/library"
	"github.com/oshokin/studycast/internal/lock"
	"github.com/oshokin/studycast/internal/logger"
	"github.com/oshokin/studycast/internal/player"
	"github.com/oshokin/studycast/internal/store"
)

// GenerateRequest describes a podcast to generate. Subject and Topic are looked up in the
// catalog first; values the catalog does not know are used as free text.
type GenerateRequest struct {
	// Subject is a subject id or name.
	Subject string
	// Topic is a topic id, title or free text.
	Topic string
	// Subtopic optionally narrows a catalog topic to one subtopic.
	Subtopic string
	// Mode is the playback mode.
	Mode player.Mode
	// ExamBoard overrides the board of the catalog topic.
	ExamBoard string
	// Level overrides the tier of the catalog topic.
	Level string
	// RepetitionLevel is how often key facts repeat in SleepCast scripts.
	RepetitionLevel int
	// VoiceID selects the narrator.
	VoiceID string
	// SpeakingSpeed scales the narration.
	SpeakingSpeed float64
	// PreviewOnly asks for a script without audio.
	PreviewOnly bool
	// EditedScript replaces the generated script.
	EditedScript string
	// Background is the ambient texture of the result.
	Background ambient.Background
	// Play starts the result right away when it has audio.
	Play bool
}

// GenerateOutcome reports what a generation did.
type GenerateOutcome struct {
	// Key is the duplicate key of the request.
	Key store.DuplicateKey
	// Kept is set when an existing podcast was kept and nothing was generated.
	Kept bool
	// ExistingID is the duplicate that was kept or replaced.
	ExistingID string
	// Result is the generation result.
	Result *generation.Result
	// Podcast is the stored row, nil for previews.
	Podcast *store.Podcast
	// Descriptor is the playable track, nil without audio.
	Descriptor *player.Descriptor
	// Played is set when the descriptor started playing.
	Played bool
}

// generationTarget is a request resolved against the catalog.
type generationTarget struct {
	subject  *library.Subject
	topic    *library.Topic
	subtopic *library.Subtopic
	key      store.DuplicateKey
}

// Generate checks for an existing podcast covering the same material, lets the resolver
// keep or replace it, and generates a new one. A failed duplicate lookup does not block
// generation; a failed delete does.
func (s *ServiceImpl) Generate(ctx context.Context, req *GenerateRequest) (*GenerateOutcome, error) {
	if err := s.requireUser(); err != nil {
		return nil, err
	}

	target, err := s.resolveTarget(req)
	if err != nil {
		return nil, err
	}

	outcome := &GenerateOutcome{Key: target.key}

	proceed, err := s.resolveDuplicate(ctx, outcome)
	if err != nil || !proceed {
		return outcome, err
	}

	lease, err := s.locker.Acquire(ctx, target.key)
	if err != nil {
		if errors.Is(err, lock.ErrLocked) {
			s.notifier.Notify(ctx, Notification{
				Level:   LevelError,
				Title:   "Already generating",
				Message: "This StudyCast is already being generated. Try again soon.",
			})
		}

		return outcome, err
	}

	defer func() {
		if releaseErr := lease.Release(context.WithoutCancel(ctx)); releaseErr != nil {
			logger.Warnf(ctx, "Failed to release generation lock: %v", releaseErr)
		}
	}()

	result, err := s.generator.Generate(ctx, s.generationRequest(req, target))
	if err != nil {
		return outcome, s.generationError(ctx, err)
	}

	outcome.Result = result
	outcome.Podcast = s.persist(ctx, target, result)

	if !result.HasAudio() {
		if !req.PreviewOnly {
			s.notifier.Notify(ctx, notifyAudioNotAvailable)
		}

		return outcome, nil
	}

	descriptor := s.resultDescriptor(req, target, result, outcome.Podcast)
	outcome.Descriptor = &descriptor

	if req.Play {
		if err = s.player.PlayNow(descriptor); err != nil {
			return outcome, fmt.Errorf("failed to play %s: %w", descriptor.ID, err)
		}

		outcome.Played = true
	}

	s.notifier.Notify(ctx, Notification{
		Level:   LevelSuccess,
		Title:   "StudyCast ready",
		Message: descriptor.Title(),
	})

	return outcome, nil
}

func (s *ServiceImpl) resolveTarget(req *GenerateRequest) (*generationTarget, error) {
	target := &generationTarget{
		key: store.DuplicateKey{
			UserID:  s.opts.UserID,
			Subject: strings.TrimSpace(req.Subject),
			Topic:   strings.TrimSpace(req.Topic),
			Mode:    req.Mode.StudioMode(),
		},
	}

	if subject, err := s.catalog.Subject(req.Subject); err == nil {
		target.subject = subject
		target.key.Subject = subject.Name

		if topic, topicErr := subject.Topic(req.Topic); topicErr == nil {
			target.topic = topic
			target.key.Topic = topic.Title
		}
	}

	if req.Subtopic != "" {
		if target.topic == nil {
			return nil, fmt.Errorf("%w: '%s' in '%s'", library.ErrTopicNotFound, req.Topic, req.Subject)
		}

		subtopic, err := target.topic.Subtopic(req.Subtopic)
		if err != nil {
			return nil, err
		}

		target.subtopic = subtopic
		target.key.Topic = subtopic.Title
	}

	target.key.ExamBoard = firstNonEmpty(req.ExamBoard, topicField(target.topic, examBoardOf), s.opts.DefaultExamBoard)
	target.key.Level = firstNonEmpty(req.Level, topicField(target.topic, tierOf), s.opts.DefaultLevel)

	return target, nil
}

func (s *ServiceImpl) resolveDuplicate(ctx context.Context, outcome *GenerateOutcome) (bool, error) {
	existingID, found, err := s.store.FindDuplicate(ctx, outcome.Key)
	if err != nil {
		logger.Warnf(ctx, "Duplicate check failed, generating anyway: %v", err)

		return true, nil
	}

	if !found {
		return true, nil
	}

	outcome.ExistingID = existingID

	decision, err := s.resolver.Resolve(ctx, Conflict{PodcastID: existingID, Key: outcome.Key})
	if err != nil {
		return false, err
	}

	switch decision {
	case DecisionKeep:
		outcome.Kept = true

		s.notifier.Notify(ctx, Notification{
			Level:   LevelInfo,
			Title:   "Kept your existing StudyCast",
			Message: outcome.Key.Topic + " is already in My Podcasts.",
		})

		return false, nil
	case DecisionReplace:
		if err = s.store.DeletePodcast(ctx, existingID); err != nil {
			s.notifier.Notify(ctx, notifyReplaceFailed)

			return false, fmt.Errorf("%w %s: %w", ErrReplaceFailed, existingID, err)
		}

		logger.Infof(ctx, "Deleted podcast %s to replace it", existingID)

		return true, nil
	default:
		return false, fmt.Errorf("%w: '%s'", ErrUnknownDecision, decision)
	}
}

func (s *ServiceImpl) generationRequest(req *GenerateRequest, target *generationTarget) generation.Request {
	return generation.Request{
		Subject:         target.key.Subject,
		Topic:           target.key.Topic,
		ExamBoard:       target.key.ExamBoard,
		Level:           target.key.Level,
		Mode:            target.key.Mode,
		RepetitionLevel: req.RepetitionLevel,
		PreviewOnly:     req.PreviewOnly,
		EditedScript:    req.EditedScript,
		VoiceID:         req.VoiceID,
		SpeakingSpeed:   req.SpeakingSpeed,
	}
}

func (s *ServiceImpl) generationError(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, generation.ErrSuperseded), errors.Is(err, context.Canceled):
		logger.Debugf(ctx, "Generation dropped: %v", err)
	case errors.Is(err, generation.ErrGenerationInFlight):
		s.notifier.Notify(ctx, Notification{
			Level:   LevelInfo,
			Title:   "Already generating",
			Message: "This StudyCast is already being generated.",
		})
	default:
		s.notifier.Notify(ctx, Notification{
			Level:   LevelError,
			Title:   "Generation failed",
			Message: err.Error(),
		})
	}

	return fmt.Errorf("%w: %w", ErrGenerationFailed, err)
}

// persist returns the row behind a result. Rows created by the backend function are fetched,
// direct results are stored here. Previews and canned results are never stored.
func (s *ServiceImpl) persist(ctx context.Context, target *generationTarget, result *generation.Result) *store.Podcast {
	if result.PodcastID != "" {
		podcast, err := s.store.GetPodcast(ctx, result.PodcastID)
		if err == nil {
			return podcast
		}

		logger.Warnf(ctx, "Failed to fetch generated podcast %s: %v", result.PodcastID, err)

		return nil
	}

	if result.Request.PreviewOnly || result.Mock || !result.HasAudio() {
		return nil
	}

	podcast := &store.Podcast{
		UserID:    target.key.UserID,
		Subject:   target.key.Subject,
		Topic:     target.key.Topic,
		AudioURL:  &result.AudioURL,
		CreatedAt: time.Now().UTC(),
		Mode:      target.key.Mode,
		ExamBoard: target.key.ExamBoard,
		Level:     target.key.Level,
		Content:   result.Transcript,
	}

	if result.DurationSeconds > 0 {
		duration := result.DurationSeconds
		podcast.Duration = &duration
	}

	if err := s.store.CreatePodcast(ctx, podcast); err != nil {
		logger.Warnf(ctx, "Failed to save generated podcast: %v", err)

		return nil
	}

	return podcast
}

func (s *ServiceImpl) resultDescriptor(
	req *GenerateRequest,
	target *generationTarget,
	result *generation.Result,
	podcast *store.Podcast,
) player.Descriptor {
	if target.subtopic != nil {
		return library.BuildDescriptor(target.subject, target.topic, target.subtopic, req.Mode, library.Overrides{
			DurationSeconds: result.DurationSeconds,
			AudioURL:        result.AudioURL,
			Transcript:      result.Transcript,
			Voice:           req.VoiceID,
			Speed:           req.SpeakingSpeed,
			Background:      req.Background,
		})
	}

	if podcast == nil {
		duration := result.DurationSeconds
		podcast = &store.Podcast{
			ID:       result.ID,
			Subject:  target.key.Subject,
			Topic:    target.key.Topic,
			AudioURL: &result.AudioURL,
			Duration: &duration,
			Mode:     target.key.Mode,
			Content:  result.Transcript,
		}
	}

	descriptor := s.catalog.SavedDescriptor(podcast)
	descriptor.Voice = req.VoiceID
	descriptor.Speed = req.SpeakingSpeed

	if req.Background != "" {
		descriptor = descriptor.WithBackground(req.Background)
	}

	return descriptor
}

func examBoardOf(t *library.Topic) string {
	return t.ExamBoard
}

func tierOf(t *library.Topic) string {
	return t.Tier
}

func topicField(t *library.Topic, field func(*library.Topic) string) string {
	if t == nil {
		return ""
	}

	return field(t)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}

	return ""
}

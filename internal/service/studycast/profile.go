package studycast

import (
	"context"
	"strings"

	"github.com/oshokin/studycast/internal/store"
)

// StudyProfileRequest holds the study profile answers.
type StudyProfileRequest struct {
	// Course is Combined or Triple.
	Course string
	// YearGroup is the school year.
	YearGroup string
	// Subjects are the studied subjects.
	Subjects []string
}

// Profile returns the profile of the signed-in user.
func (s *ServiceImpl) Profile(ctx context.Context) (*store.Profile, error) {
	if err := s.requireUser(); err != nil {
		return nil, err
	}

	profile, err := s.store.GetProfile(ctx, s.opts.UserID)
	if err != nil {
		s.notifier.Notify(ctx, Notification{
			Level:   LevelError,
			Title:   "Error",
			Message: "Failed to load profile.",
		})

		return nil, err
	}

	return profile, nil
}

// UpdateFullName changes the display name.
func (s *ServiceImpl) UpdateFullName(ctx context.Context, fullName string) error {
	if err := s.requireUser(); err != nil {
		return err
	}

	fullName = strings.TrimSpace(fullName)
	if fullName == "" {
		return ErrEmptyFullName
	}

	return s.updateProfile(ctx, store.ProfileUpdate{FullName: &fullName})
}

// UpdateStudyProfile changes the course, year group and subjects and turns on personalized mode.
func (s *ServiceImpl) UpdateStudyProfile(ctx context.Context, req *StudyProfileRequest) error {
	if err := s.requireUser(); err != nil {
		return err
	}

	personalized := true
	update := store.ProfileUpdate{PersonalizedMode: &personalized}

	if course := strings.TrimSpace(req.Course); course != "" {
		update.Course = &course
	}

	if yearGroup := strings.TrimSpace(req.YearGroup); yearGroup != "" {
		update.YearGroup = &yearGroup
	}

	if req.Subjects != nil {
		update.Subjects = req.Subjects
	}

	return s.updateProfile(ctx, update)
}

func (s *ServiceImpl) updateProfile(ctx context.Context, update store.ProfileUpdate) error {
	if err := s.store.UpdateProfile(ctx, s.opts.UserID, update); err != nil {
		s.notifier.Notify(ctx, Notification{
			Level:   LevelError,
			Title:   "Error",
			Message: "Failed to update profile.",
		})

		return err
	}

	s.notifier.Notify(ctx, Notification{
		Level:   LevelSuccess,
		Title:   "Success",
		Message: "Profile updated successfully",
	})

	return nil
}

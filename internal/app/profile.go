package app

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/oshokin/studycast/internal/config"
	"github.com/oshokin/studycast/internal/service/studycast"
)

// ProfileUpdateOptions are the profile fields to change; empty fields are left alone.
type ProfileUpdateOptions struct {
	// FullName is the display name.
	FullName string
	// Study holds the study profile, nil leaves it unchanged.
	Study *studycast.StudyProfileRequest
}

// ExecuteProfileShowCommand prints the profile of the signed-in user.
func ExecuteProfileShowCommand(ctx context.Context, cfg *config.Config, out io.Writer) {
	withService(ctx, cfg, componentOptions{}, func(c *components) error {
		profile, err := c.service.Profile(ctx)
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

		fmt.Fprintf(w, "Name:\t%s\n", profile.FullName)
		fmt.Fprintf(w, "Email:\t%s\n", profile.Email)
		fmt.Fprintf(w, "Course:\t%s\n", deref(profile.Course))
		fmt.Fprintf(w, "Year group:\t%s\n", deref(profile.YearGroup))
		fmt.Fprintf(w, "Subjects:\t%s\n", strings.Join(profile.Subjects, ", "))
		fmt.Fprintf(w, "Personalized:\t%s\n", yesNo(profile.PersonalizedMode))

		return w.Flush()
	})
}

// ExecuteProfileUpdateCommand changes the profile of the signed-in user.
func ExecuteProfileUpdateCommand(ctx context.Context, cfg *config.Config, opts ProfileUpdateOptions) {
	withService(ctx, cfg, componentOptions{}, func(c *components) error {
		if opts.FullName != "" {
			if err := c.service.UpdateFullName(ctx, opts.FullName); err != nil {
				return err
			}
		}

		if opts.Study != nil {
			return c.service.UpdateStudyProfile(ctx, opts.Study)
		}

		return nil
	})
}

func deref(value *string) string {
	if value == nil {
		return "-"
	}

	return *value
}

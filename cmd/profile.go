package cmd

import (
	"github.com/spf13/cobra"

	"github.com/oshokin/studycast/internal/app"
	"github.com/oshokin/studycast/internal/logger"
	"github.com/oshokin/studycast/internal/service/studycast"
)

var (
	//nolint:gochecknoglobals // Cobra commands are package-level by convention.
	profileCmd = &cobra.Command{
		Use:   "profile",
		Short: "Show or change your profile",
	}

	//nolint:gochecknoglobals // Cobra commands are package-level by convention.
	profileShowCmd = &cobra.Command{
		Use:   "show",
		Short: "Show your profile",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			prepareConfig(cmd)
			app.ExecuteProfileShowCommand(cmd.Context(), appConfig, cmd.OutOrStdout())
		},
	}

	//nolint:gochecknoglobals // Cobra commands are package-level by convention.
	profileUpdateCmd = &cobra.Command{
		Use:   "update",
		Short: "Change your name or study profile",
		Long: `Changes your display name with --name, or your study profile with
--course, --year-group and --subjects. Changing any study profile field
replaces the whole study profile.`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			flags := cmd.Flags()

			opts := app.ProfileUpdateOptions{}
			opts.FullName, _ = flags.GetString("name")

			if flags.Changed("course") || flags.Changed("year-group") || flags.Changed("subjects") {
				study := &studycast.StudyProfileRequest{}
				study.Course, _ = flags.GetString("course")
				study.YearGroup, _ = flags.GetString("year-group")
				study.Subjects, _ = flags.GetStringSlice("subjects")
				opts.Study = study
			}

			if opts.FullName == "" && opts.Study == nil {
				logger.Fatal(cmd.Context(), "Nothing to update, pass --name or study profile flags")
			}

			prepareConfig(cmd)
			app.ExecuteProfileUpdateCommand(cmd.Context(), appConfig, opts)
		},
	}
)

//nolint:gochecknoinits // Cobra requires the init function to set up commands.
func init() {
	flags := profileUpdateCmd.Flags()

	flags.String("name", "", "display name.")
	flags.String("course", "", "course: Combined or Triple.")
	flags.String("year-group", "", "school year, for example Year 10.")
	flags.StringSlice("subjects", nil, "studied subjects, for example Biology,Chemistry.")

	profileCmd.AddCommand(profileShowCmd, profileUpdateCmd)
	rootCmd.AddCommand(profileCmd)
}

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/oshokin/studycast/internal/app"
	"github.com/oshokin/studycast/internal/logger"
)

//nolint:gochecknoglobals // Cobra commands are package-level by convention.
var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a topic, a subtopic or saved podcasts",
	Long: `Queues every subtopic of a topic and plays them in order, or plays one
subtopic with --subtopic. Use --saved to play saved podcasts instead.

Examples:
  studycast play --subject chemistry --topic atomic-structure --mode repetition
  studycast play --subject chemistry --topic atomic-structure --subtopic atomic-structure-2 --background rain
  studycast play --saved 6f1c2d0e-...,9a7b...`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		flags := cmd.Flags()

		opts := app.PlayOptions{}
		opts.Subject, _ = flags.GetString("subject")
		opts.Topic, _ = flags.GetString("topic")
		opts.Subtopic, _ = flags.GetString("subtopic")
		opts.Mode, _ = flags.GetString("mode")
		opts.Background, _ = flags.GetString("background")
		opts.SavedIDs, _ = flags.GetStringSlice("saved")

		if len(opts.SavedIDs) == 0 && (opts.Subject == "" || opts.Topic == "") {
			logger.Fatal(cmd.Context(), "Either --saved or both --subject and --topic are required")
		}

		prepareConfig(cmd)
		app.ExecutePlayCommand(cmd.Context(), appConfig, cmd.ErrOrStderr(), opts)
	},
}

//nolint:gochecknoinits // Cobra requires the init function to set up commands.
func init() {
	flags := playCmd.Flags()

	flags.StringP("subject", "s", "", "subject id or name.")
	flags.StringP("topic", "t", "", "topic id or title.")
	flags.String("subtopic", "", "subtopic id or title; plays only this subtopic.")
	flags.StringP("mode", "m", "", "mode: Explainer (FocusCast) or Repetition (SleepCast).")
	flags.StringP("background", "b", "", "ambient background: none, rain, white_noise or delta_waves.")
	flags.StringSlice("saved", nil, "saved podcast ids to play in order.")

	rootCmd.AddCommand(playCmd)
}

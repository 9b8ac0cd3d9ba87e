package cmd

import (
	"github.com/spf13/cobra"

	"github.com/oshokin/studycast/internal/app"
	"github.com/oshokin/studycast/internal/library"
)

//nolint:gochecknoglobals // Cobra commands are package-level by convention.
var libraryCmd = &cobra.Command{
	Use:   "library",
	Short: "Browse the study guide library",
	Long: `Lists subjects and topics of the study guide library.

Narrow the list with --course, --tier, --exam-board and --search, or pass
--subject and --topic to list the subtopics of one topic.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		flags := cmd.Flags()

		opts := app.LibraryOptions{}
		opts.Subject, _ = flags.GetString("subject")
		opts.Topic, _ = flags.GetString("topic")
		opts.Filter = library.Filter{}
		opts.Filter.Course, _ = flags.GetString("course")
		opts.Filter.Tier, _ = flags.GetString("tier")
		opts.Filter.ExamBoard, _ = flags.GetString("exam-board")
		opts.Filter.Search, _ = flags.GetString("search")

		app.ExecuteLibraryCommand(cmd.Context(), cmd.OutOrStdout(), opts)
	},
}

//nolint:gochecknoinits // Cobra requires the init function to set up commands.
func init() {
	flags := libraryCmd.Flags()

	flags.StringP("subject", "s", "", "subject id or name, for example chemistry.")
	flags.StringP("topic", "t", "", "topic id or title; lists its subtopics (requires --subject).")
	flags.String("course", "", "course: Combined or Triple.")
	flags.String("tier", "", "tier: Foundation or Higher.")
	flags.String("exam-board", "", "exam board: AQA, Edexcel or OCR.")
	flags.String("search", "", "text matched against topic and subtopic titles.")

	rootCmd.AddCommand(libraryCmd)
}

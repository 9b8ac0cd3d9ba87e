package cmd

import (
	"github.com/spf13/cobra"

	"github.com/oshokin/studycast/internal/app"
	"github.com/oshokin/studycast/internal/service/studycast"
)

//nolint:gochecknoglobals // Cobra commands are package-level by convention.
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a FocusCast or SleepCast podcast",
	Long: `Generates a podcast for a catalog topic, one of its subtopics, or any free
text topic. When you already have a podcast with the same subject, topic, mode,
exam board and level, --on-duplicate decides what happens:
  ask      asks on the terminal (default)
  replace  deletes the old podcast and generates a new one
  keep     keeps the old podcast and generates nothing

Examples:
  studycast generate --subject Chemistry --topic "Atomic Structure" --mode FocusCast --play
  studycast generate --subject Psychology --topic "Memory models" --mode SleepCast --repetition-level 4 --preview`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		flags := cmd.Flags()

		opts := app.GenerateOptions{
			In:  cmd.InOrStdin(),
			Out: cmd.ErrOrStderr(),
		}

		req := studycast.GenerateRequest{}
		req.Subject, _ = flags.GetString("subject")
		req.Topic, _ = flags.GetString("topic")
		req.Subtopic, _ = flags.GetString("subtopic")
		req.ExamBoard, _ = flags.GetString("exam-board")
		req.Level, _ = flags.GetString("level")
		req.RepetitionLevel, _ = flags.GetInt("repetition-level")
		req.VoiceID, _ = flags.GetString("voice")
		req.SpeakingSpeed, _ = flags.GetFloat64("speed")
		req.PreviewOnly, _ = flags.GetBool("preview")
		req.EditedScript, _ = flags.GetString("script")
		req.Play, _ = flags.GetBool("play")

		opts.Request = req
		opts.Mode, _ = flags.GetString("mode")
		opts.Background, _ = flags.GetString("background")
		opts.OnDuplicate, _ = flags.GetString("on-duplicate")

		prepareConfig(cmd)
		app.ExecuteGenerateCommand(cmd.Context(), appConfig, opts)
	},
}

//nolint:gochecknoinits // Cobra requires the init function to set up commands.
func init() {
	flags := generateCmd.Flags()

	flags.StringP("subject", "s", "", "subject id or name.")
	flags.StringP("topic", "t", "", "catalog topic id or title, or any free text topic.")
	flags.String("subtopic", "", "catalog subtopic id or title.")
	flags.StringP("mode", "m", "", "mode: FocusCast or SleepCast (default from configuration).")
	flags.String("exam-board", "", "exam board: AQA, Edexcel, OCR, WJEC, CCEA or SQA (default from the topic or configuration).")
	flags.String("level", "", "level: Foundation or Higher (default from the topic or configuration).")
	flags.Int("repetition-level", 0, "how often SleepCast scripts repeat key facts, 1 to 5.")
	flags.String("voice", "", "narrator voice id.")
	flags.Float64("speed", 0, "speaking speed between 0.5 and 2.")
	flags.Bool("preview", false, "generate the script only, without audio.")
	flags.String("script", "", "edited script to narrate instead of a generated one.")
	flags.StringP("background", "b", "", "ambient background for playback.")
	flags.Bool("play", false, "play the podcast when it is ready.")
	flags.String("on-duplicate", string(studycast.DecisionAsk), "what to do with an existing podcast: ask, replace or keep.")

	_ = generateCmd.MarkFlagRequired("subject")
	_ = generateCmd.MarkFlagRequired("topic")

	rootCmd.AddCommand(generateCmd)
}

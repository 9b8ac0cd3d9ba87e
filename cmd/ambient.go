package cmd

import (
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/oshokin/studycast/internal/app"
	"github.com/oshokin/studycast/internal/logger"
)

const defaultRenderDuration = 30 * time.Second

var (
	//nolint:gochecknoglobals // Cobra commands are package-level by convention.
	ambientCmd = &cobra.Command{
		Use:   "ambient",
		Short: "Ambient background commands",
	}

	//nolint:gochecknoglobals // Cobra commands are package-level by convention.
	ambientRenderCmd = &cobra.Command{
		Use:   "render",
		Short: "Render an ambient background to a WAV file",
		Long: `Renders rain, white noise or delta waves to a WAV file without
playing anything. The file goes to <output>/<background>.wav unless --file
is given.`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			flags := cmd.Flags()

			opts := app.AmbientRenderOptions{}
			opts.Background, _ = flags.GetString("background")
			opts.Duration, _ = flags.GetDuration("duration")
			opts.Path, _ = flags.GetString("file")

			if opts.Path == "" {
				outputPath := appConfig.OutputPath
				if flags.Changed("output") {
					outputPath, _ = flags.GetString("output")
				}

				opts.Path = filepath.Join(outputPath, opts.Background+".wav")
			}

			if opts.Duration <= 0 {
				logger.Fatalf(cmd.Context(), "Duration must be positive, got %s", opts.Duration)
			}

			app.ExecuteAmbientRenderCommand(cmd.Context(), appConfig, opts)
		},
	}
)

//nolint:gochecknoinits // Cobra requires the init function to set up commands.
func init() {
	flags := ambientRenderCmd.Flags()

	flags.StringP("background", "b", "rain", "background: rain, white_noise or delta_waves.")
	flags.DurationP("duration", "d", defaultRenderDuration, "length of the file.")
	flags.StringP("file", "f", "", "WAV file to write.")

	ambientCmd.AddCommand(ambientRenderCmd)
	rootCmd.AddCommand(ambientCmd)
}

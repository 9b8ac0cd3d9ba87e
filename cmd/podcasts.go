package cmd

import (
	"github.com/spf13/cobra"

	"github.com/oshokin/studycast/internal/app"
	"github.com/oshokin/studycast/internal/library"
	"github.com/oshokin/studycast/internal/logger"
)

var (
	//nolint:gochecknoglobals // Cobra commands are package-level by convention.
	podcastsCmd = &cobra.Command{
		Use:     "podcasts",
		Aliases: []string{"saved"},
		Short:   "Manage saved podcasts",
	}

	//nolint:gochecknoglobals // Cobra commands are package-level by convention.
	podcastsListCmd = &cobra.Command{
		Use:   "list",
		Short: "List saved podcasts grouped by subject and topic",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			flags := cmd.Flags()

			filter := library.SavedFilter{}
			filter.Subject, _ = flags.GetString("subject")
			filter.Source, _ = flags.GetString("source")
			filter.Search, _ = flags.GetString("search")

			prepareConfig(cmd)
			app.ExecutePodcastsListCommand(cmd.Context(), appConfig, cmd.OutOrStdout(), filter)
		},
	}

	//nolint:gochecknoglobals // Cobra commands are package-level by convention.
	podcastsFavoriteCmd = &cobra.Command{
		Use:   "favorite ID",
		Short: "Toggle the favorite flag of a saved podcast",
		Long: `Toggles the favorite flag of a saved podcast.
Use --on or --off to set it explicitly.`,
		Args: cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			flags := cmd.Flags()

			on, _ := flags.GetBool("on")
			off, _ := flags.GetBool("off")

			var favorite *bool

			switch {
			case on && off:
				logger.Fatal(cmd.Context(), "--on and --off cannot be used together")
			case on:
				favorite = &on
			case off:
				value := false
				favorite = &value
			}

			prepareConfig(cmd)
			app.ExecutePodcastsFavoriteCommand(cmd.Context(), appConfig, args[0], favorite)
		},
	}

	//nolint:gochecknoglobals // Cobra commands are package-level by convention.
	podcastsDeleteCmd = &cobra.Command{
		Use:   "delete ID [ID...]",
		Short: "Delete saved podcasts",
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			prepareConfig(cmd)
			app.ExecutePodcastsDeleteCommand(cmd.Context(), appConfig, args)
		},
	}

	//nolint:gochecknoglobals // Cobra commands are package-level by convention.
	podcastsDownloadCmd = &cobra.Command{
		Use:   "download ID [ID...]",
		Short: "Download the audio of saved podcasts",
		Long: `Downloads the audio of saved podcasts into the output path and tags MP3
files with the subject, topic and mode. Existing files are skipped unless
--replace is given.`,
		Args: cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			prepareConfig(cmd)
			app.ExecutePodcastsDownloadCommand(cmd.Context(), appConfig, args)
		},
	}

	//nolint:gochecknoglobals // Cobra commands are package-level by convention.
	podcastsShareCmd = &cobra.Command{
		Use:   "share ID [ID...]",
		Short: "Print the share links of saved podcasts",
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			prepareConfig(cmd)
			app.ExecutePodcastsShareCommand(cmd.Context(), appConfig, cmd.OutOrStdout(), args)
		},
	}
)

//nolint:gochecknoinits // Cobra requires the init function to set up commands.
func init() {
	listFlags := podcastsListCmd.Flags()
	listFlags.StringP("subject", "s", "", "exact subject name.")
	listFlags.String("source", "", "source: textbook or custom.")
	listFlags.String("search", "", "text matched against subject and topic.")

	favoriteFlags := podcastsFavoriteCmd.Flags()
	favoriteFlags.Bool("on", false, "mark as favorite.")
	favoriteFlags.Bool("off", false, "remove from favorites.")

	podcastsDownloadCmd.Flags().BoolP("replace", "r", false, "replace files that already exist.")

	podcastsCmd.AddCommand(
		podcastsListCmd,
		podcastsFavoriteCmd,
		podcastsDeleteCmd,
		podcastsDownloadCmd,
		podcastsShareCmd,
	)

	rootCmd.AddCommand(podcastsCmd)
}

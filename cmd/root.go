package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/oshokin/studycast/internal/config"
	"github.com/oshokin/studycast/internal/logger"
)

var (
	//nolint:gochecknoglobals // It is required for configuration initialization before the application starts.
	configFilenameFromFlag string

	//nolint:gochecknoglobals,lll // It is initialized once during the application's startup and shared across the command execution logic.
	appConfig *config.Config

	//nolint:gochecknoglobals,lll // Cobra command requires a global definition for proper command-line parsing and execution.
	rootCmd = &cobra.Command{
		Use:   "studycast",
		Short: "Listen to GCSE study podcasts from the terminal.",
		Long: `StudyCast is a CLI client for StudyCast audio study guides.
It supports:
- Browsing the study guide library and playing whole topics or single subtopics
- Ambient backgrounds (rain, white noise, delta waves) under the narration
- Generating FocusCast and SleepCast podcasts with duplicate detection
- Managing, downloading and sharing saved podcasts

Sign in first with 'studycast auth login'.`,
		PersistentPreRun: initConfig,
		Run: func(cmd *cobra.Command, _ []string) {
			_ = cmd.Help()
		},
	}
)

// Execute executes the root command.
func Execute() {
	signals := []os.Signal{syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM}
	ctx, stop := signal.NotifyContext(context.Background(), signals...)

	defer func() {
		_ = logger.Logger().Sync()
	}()

	defer stop()

	done := make(chan struct{})

	go func() {
		defer close(done)

		err := rootCmd.ExecuteContext(ctx)
		cobra.CheckErr(err)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		// Give the command a moment to release the audio device and locks.
		<-done
	}
}

//nolint:gochecknoinits // Cobra requires the init function to set up flags before the command is executed.
func init() {
	rootCmdFlags := rootCmd.PersistentFlags()

	rootCmdFlags.StringVarP(
		&configFilenameFromFlag,
		"config",
		"c",
		"",
		fmt.Sprintf("path to the configuration file (default is '%s')",
			config.DefaultConfigFilename))

	rootCmdFlags.StringP(
		"output",
		"o",
		"",
		"directory for downloads and rendered backgrounds (created if it doesn't exist).")

	rootCmdFlags.Float64(
		"volume",
		0,
		"playback volume between 0 and 1.")

	rootCmdFlags.String(
		"audio-output",
		"",
		"audio sink: speaker or null (headless playback in real time).")

	rootCmdFlags.StringP(
		"log-level",
		"L",
		"",
		"log level: debug, info, warn, error.")
}

func initConfig(cmd *cobra.Command, _ []string) {
	var err error

	appConfig, err = config.LoadConfig(configFilenameFromFlag)
	if err != nil {
		logger.Fatalf(cmd.Context(), "Failed to load configuration: %v", err)
	}

	if level, ok := logger.ParseLogLevel(appConfig.LogLevel); ok {
		logger.SetLevel(level)
	}
}

// prepareConfig binds the flags of cmd and validates the result.
func prepareConfig(cmd *cobra.Command) {
	if err := bindFlagsToConfig(cmd.Flags(), appConfig); err != nil {
		logger.Fatalf(cmd.Context(), "Failed to parse flags: %v", err)
	}

	logger.SetLevel(appConfig.ParsedLogLevel)

	err := logger.EnableFileSink(logger.FileSinkOptions{
		Filename:   appConfig.LogFile,
		MaxSizeMB:  appConfig.LogMaxSizeMB,
		MaxBackups: appConfig.LogMaxBackups,
	})
	if err != nil {
		logger.Warnf(cmd.Context(), "Failed to open log file '%s': %v", appConfig.LogFile, err)
	}
}

func bindFlagsToConfig(flags *pflag.FlagSet, cfg *config.Config) error {
	if flag := flags.Lookup("output"); flag != nil && flag.Changed {
		cfg.OutputPath, _ = flags.GetString("output")
	}

	if flag := flags.Lookup("volume"); flag != nil && flag.Changed {
		cfg.Volume, _ = flags.GetFloat64("volume")
	}

	if flag := flags.Lookup("audio-output"); flag != nil && flag.Changed {
		cfg.AudioOutput, _ = flags.GetString("audio-output")
	}

	if flag := flags.Lookup("log-level"); flag != nil && flag.Changed {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}

	if flag := flags.Lookup("background"); flag != nil && flag.Changed {
		cfg.DefaultBackground, _ = flags.GetString("background")
	}

	if flag := flags.Lookup("replace"); flag != nil && flag.Changed {
		cfg.ReplaceDownloads, _ = flags.GetBool("replace")
	}

	return config.ValidateConfig(cfg)
}

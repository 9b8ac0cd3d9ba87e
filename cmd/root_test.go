package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oshokin/studycast/internal/config"
	"github.com/oshokin/studycast/internal/constants"
)

const testBaseConfigContent = `
supabase_url: "https://studycast.supabase.co"
anon_key: "public-anon-key"
app_url: "https://studycast.dev"
access_token: "config_token"
user_id: "user-1"
output_path: "/config/output"
volume: 0.5
audio_output: "null"
default_background: "none"
replace_downloads: false
log_level: "info"
`

// newTestCommand creates a command with the same flags as the real commands.
func newTestCommand() *cobra.Command {
	testCmd := &cobra.Command{Use: "test"}

	flags := testCmd.Flags()
	flags.StringP("output", "o", "", "output directory")
	flags.Float64("volume", 0, "playback volume")
	flags.String("audio-output", "", "audio sink")
	flags.StringP("log-level", "L", "", "log level")
	flags.StringP("background", "b", "", "ambient background")
	flags.BoolP("replace", "r", false, "replace downloads")

	return testCmd
}

func loadTestConfig(t *testing.T, content string) *config.Config {
	t.Helper()

	configPath := filepath.Join(t.TempDir(), "test-config.yaml")

	err := os.WriteFile(
		configPath,
		[]byte(content),
		constants.DefaultFilePermissions,
	) //nolint:gosec // It's a test file.
	require.NoError(t, err)

	cfg, err := config.LoadConfig(configPath)
	require.NoError(t, err)

	return cfg
}

// TestFlagOverrides tests that command-line flags correctly override configuration file values.
//
//nolint:funlen,nolintlint,tparallel // Cannot run in parallel due to Viper global state.
func TestFlagOverrides(t *testing.T) {
	tests := []struct {
		name           string
		flags          map[string]string
		expectedConfig func(*testing.T, *config.Config)
	}{
		{
			name:  "no flags - use config values",
			flags: map[string]string{},
			expectedConfig: func(t *testing.T, cfg *config.Config) {
				t.Helper()
				assert.Equal(t, "/config/output", cfg.OutputPath)
				assert.InDelta(t, 0.5, cfg.Volume, 1e-9)
				assert.Equal(t, config.AudioOutputNull, cfg.AudioOutput)
				assert.Equal(t, "none", cfg.DefaultBackground)
				assert.False(t, cfg.ReplaceDownloads)
			},
		},
		{
			name:  "output flag only - override output path",
			flags: map[string]string{"output": "/flag/output"},
			expectedConfig: func(t *testing.T, cfg *config.Config) {
				t.Helper()
				assert.Equal(t, "/flag/output", cfg.OutputPath)
				assert.InDelta(t, 0.5, cfg.Volume, 1e-9)
			},
		},
		{
			name:  "volume flag only - override volume",
			flags: map[string]string{"volume": "0.25"},
			expectedConfig: func(t *testing.T, cfg *config.Config) {
				t.Helper()
				assert.Equal(t, "/config/output", cfg.OutputPath)
				assert.InDelta(t, 0.25, cfg.Volume, 1e-9)
			},
		},
		{
			name:  "volume zero - explicit zero override",
			flags: map[string]string{"volume": "0"},
			expectedConfig: func(t *testing.T, cfg *config.Config) {
				t.Helper()
				assert.Zero(t, cfg.Volume)
			},
		},
		{
			name:  "background flag - override default background",
			flags: map[string]string{"background": "rain"},
			expectedConfig: func(t *testing.T, cfg *config.Config) {
				t.Helper()
				assert.Equal(t, "rain", cfg.DefaultBackground)
			},
		},
		{
			name:  "log-level flag - override and parse log level",
			flags: map[string]string{"log-level": "debug"},
			expectedConfig: func(t *testing.T, cfg *config.Config) {
				t.Helper()
				assert.Equal(t, "debug", cfg.LogLevel)
				assert.Equal(t, "debug", cfg.ParsedLogLevel.String())
			},
		},
		{
			name: "all flags - override everything",
			flags: map[string]string{
				"output":       "/all/flags/output",
				"volume":       "1",
				"audio-output": "speaker",
				"background":   "delta_waves",
				"replace":      "true",
			},
			expectedConfig: func(t *testing.T, cfg *config.Config) {
				t.Helper()
				assert.Equal(t, "/all/flags/output", cfg.OutputPath)
				assert.InDelta(t, 1.0, cfg.Volume, 1e-9)
				assert.Equal(t, config.AudioOutputSpeaker, cfg.AudioOutput)
				assert.Equal(t, "delta_waves", cfg.DefaultBackground)
				assert.True(t, cfg.ReplaceDownloads)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := loadTestConfig(t, testBaseConfigContent)
			testCmd := newTestCommand()

			for flagName, flagValue := range tt.flags {
				require.NoError(t, testCmd.Flags().Set(flagName, flagValue), "failed to set flag %s", flagName)
			}

			err := bindFlagsToConfig(testCmd.Flags(), cfg)
			require.NoError(t, err)

			tt.expectedConfig(t, cfg)
		})
	}
}

// TestFlagOverrides_InvalidValues tests that invalid flag values fail validation.
//
//nolint:nolintlint,tparallel // Cannot run in parallel due to Viper global state.
func TestFlagOverrides_InvalidValues(t *testing.T) {
	tests := []struct {
		name      string
		flagName  string
		flagValue string
		wantErr   error
	}{
		{"volume above one", "volume", "1.5", config.ErrInvalidVolume},
		{"negative volume", "volume", "-0.1", config.ErrInvalidVolume},
		{"unknown audio output", "audio-output", "headphones", config.ErrInvalidAudioOutput},
		{"unknown background", "background", "thunder", config.ErrInvalidBackground},
		{"unknown log level", "log-level", "verbose", config.ErrUnknownLogLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := loadTestConfig(t, testBaseConfigContent)
			testCmd := newTestCommand()

			require.NoError(t, testCmd.Flags().Set(tt.flagName, tt.flagValue))

			err := bindFlagsToConfig(testCmd.Flags(), cfg)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// TestFlagOverrides_MissingBackend tests that online commands need the backend settings.
//
//nolint:nolintlint,tparallel // Cannot run in parallel due to Viper global state.
func TestFlagOverrides_MissingBackend(t *testing.T) {
	cfg := loadTestConfig(t, `
anon_key: "public-anon-key"
`)

	err := bindFlagsToConfig(newTestCommand().Flags(), cfg)
	require.ErrorIs(t, err, config.ErrEmptySupabaseURL)
}

// TestFlagOverrides_UnknownFlagsIgnored tests that commands without the shared flags still bind.
//
//nolint:nolintlint,tparallel // Cannot run in parallel due to Viper global state.
func TestFlagOverrides_UnknownFlagsIgnored(t *testing.T) {
	cfg := loadTestConfig(t, testBaseConfigContent)

	bare := &cobra.Command{Use: "bare"}
	bare.Flags().String("subject", "", "subject")
	require.NoError(t, bare.Flags().Set("subject", "chemistry"))

	require.NoError(t, bindFlagsToConfig(bare.Flags(), cfg))
	assert.Equal(t, "/config/output", cfg.OutputPath)
}

// TestCommandTree tests that every command is registered on the root command.
func TestCommandTree(t *testing.T) {
	t.Parallel()

	paths := [][]string{
		{"auth", "login"},
		{"library"},
		{"play"},
		{"generate"},
		{"podcasts", "list"},
		{"podcasts", "favorite"},
		{"podcasts", "delete"},
		{"podcasts", "download"},
		{"podcasts", "share"},
		{"profile", "show"},
		{"profile", "update"},
		{"ambient", "render"},
		{"version"},
	}

	for _, path := range paths {
		found, _, err := rootCmd.Find(path)
		require.NoError(t, err, "command %v", path)
		assert.Equal(t, path[len(path)-1], found.Name())
	}
}

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/oshokin/studycast/internal/constants"
)

func validConfig() *Config {
	return &Config{
		SupabaseURL:       "https://abcd.supabase.co/",
		AnonKey:           "anon",
		StoreBackend:      StoreBackendREST,
		GenerationTimeout: "3m",
		GenerationLockTTL: "2m",
		DefaultBackground: "rain",
		DefaultMode:       ModeFocusCast,
		Volume:            0.8,
		AudioOutput:       AudioOutputNull,
		SampleRate:        44100,
		LogLevel:          "info",
	}
}

// TestConstants tests the constants.
func TestConstants(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1024*1024, DefaultMaxLogLength)
	assert.Equal(t, ".studycast.yaml", DefaultConfigFilename)
	assert.Equal(t, "STUDYCAST", EnvPrefix)
}

// TestLoadConfig tests the LoadConfig function.
func TestLoadConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		configFilename string
		configContent  string
		expectError    bool
		expectedError  string
		check          func(t *testing.T, cfg *Config)
	}{
		{
			name:           "valid config file",
			configFilename: "valid_config.yaml",
			configContent: `
supabase_url: "https://abcd.supabase.co"
anon_key: "anon"
default_background: "delta_waves"
volume: 0.5
mock_preview_fallback: true
`,
			check: func(t *testing.T, cfg *Config) {
				t.Helper()

				assert.Equal(t, "https://abcd.supabase.co", cfg.SupabaseURL)
				assert.Equal(t, "delta_waves", cfg.DefaultBackground)
				assert.InDelta(t, 0.5, cfg.Volume, 0.0001)
				assert.True(t, cfg.MockPreviewFallback)
				// Keys missing from the file fall back to defaults.
				assert.Equal(t, StoreBackendREST, cfg.StoreBackend)
				assert.Equal(t, "AQA", cfg.DefaultExamBoard)
				assert.Equal(t, "Foundation", cfg.DefaultLevel)
			},
		},
		{
			name:           "non-existent file uses defaults",
			configFilename: "non_existent.yaml",
			check: func(t *testing.T, cfg *Config) {
				t.Helper()

				assert.Equal(t, "none", cfg.DefaultBackground)
				assert.Equal(t, ModeFocusCast, cfg.DefaultMode)
				assert.Equal(t, "3m", cfg.GenerationTimeout)
				assert.InDelta(t, 1.0, cfg.Volume, 0.0001)
			},
		},
		{
			name:           "invalid yaml",
			configFilename: "invalid.yaml",
			configContent: `
invalid: yaml: content: [unclosed
`,
			expectError:   true,
			expectedError: "failed to read config from file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			configPath := filepath.Join(t.TempDir(), tt.configFilename)

			if tt.configContent != "" {
				err := os.WriteFile(configPath, []byte(tt.configContent), constants.DefaultFilePermissions)
				require.NoError(t, err)
			}

			cfg, err := LoadConfig(configPath)

			if tt.expectError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedError)
				assert.Nil(t, cfg)

				return
			}

			require.NoError(t, err)
			require.NotNil(t, cfg)
			assert.Equal(t, configPath, cfg.ConfigFilePath)
			tt.check(t, cfg)
		})
	}
}

// TestValidateConfig tests the ValidateConfig function.
func TestValidateConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		mutate      func(cfg *Config)
		expectedErr error
		errorMsg    string
	}{
		{
			name:   "valid config",
			mutate: func(*Config) {},
		},
		{
			name:        "empty supabase url",
			mutate:      func(cfg *Config) { cfg.SupabaseURL = "  " },
			expectedErr: ErrEmptySupabaseURL,
		},
		{
			name:        "relative supabase url",
			mutate:      func(cfg *Config) { cfg.SupabaseURL = "abcd.supabase.co" },
			expectedErr: ErrInvalidSupabaseURL,
		},
		{
			name:        "ftp supabase url",
			mutate:      func(cfg *Config) { cfg.SupabaseURL = "ftp://abcd.supabase.co" },
			expectedErr: ErrInvalidSupabaseURL,
		},
		{
			name:        "empty anon key",
			mutate:      func(cfg *Config) { cfg.AnonKey = "" },
			expectedErr: ErrEmptyAnonKey,
		},
		{
			name:        "unknown store backend",
			mutate:      func(cfg *Config) { cfg.StoreBackend = "sqlite" },
			expectedErr: ErrInvalidStoreBackend,
		},
		{
			name:        "mysql without dsn",
			mutate:      func(cfg *Config) { cfg.StoreBackend = "MySQL" },
			expectedErr: ErrEmptyDatabaseDSN,
		},
		{
			name: "mysql with dsn",
			mutate: func(cfg *Config) {
				cfg.StoreBackend = StoreBackendMySQL
				cfg.DatabaseDSN = "user:pass@tcp(localhost:3306)/studycast?parseTime=true"
			},
		},
		{
			name:        "unknown background",
			mutate:      func(cfg *Config) { cfg.DefaultBackground = "thunder" },
			expectedErr: ErrInvalidBackground,
		},
		{
			name:        "unknown mode",
			mutate:      func(cfg *Config) { cfg.DefaultMode = "Explainer" },
			expectedErr: ErrInvalidMode,
		},
		{
			name:        "volume above one",
			mutate:      func(cfg *Config) { cfg.Volume = 1.5 },
			expectedErr: ErrInvalidVolume,
		},
		{
			name:        "unknown audio output",
			mutate:      func(cfg *Config) { cfg.AudioOutput = "pulse" },
			expectedErr: ErrInvalidAudioOutput,
		},
		{
			name:        "sample rate too low",
			mutate:      func(cfg *Config) { cfg.SampleRate = 100 },
			expectedErr: ErrInvalidSampleRate,
		},
		{
			name:     "unparsable generation timeout",
			mutate:   func(cfg *Config) { cfg.GenerationTimeout = "soon" },
			errorMsg: "failed to parse generation timeout:",
		},
		{
			name:        "zero generation timeout",
			mutate:      func(cfg *Config) { cfg.GenerationTimeout = "0s" },
			expectedErr: ErrInvalidGenerationTimeout,
		},
		{
			name:        "negative lock ttl",
			mutate:      func(cfg *Config) { cfg.GenerationLockTTL = "-1m" },
			expectedErr: ErrInvalidGenerationLockTTL,
		},
		{
			name:        "invalid log level",
			mutate:      func(cfg *Config) { cfg.LogLevel = "loud" },
			expectedErr: ErrUnknownLogLevel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := validConfig()
			tt.mutate(cfg)

			err := ValidateConfig(cfg)

			switch {
			case tt.expectedErr != nil:
				require.ErrorIs(t, err, tt.expectedErr)
			case tt.errorMsg != "":
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
			default:
				require.NoError(t, err)
				assert.Equal(t, zapcore.InfoLevel, cfg.ParsedLogLevel)
				assert.Equal(t, 3*time.Minute, cfg.ParsedGenerationTimeout)
				assert.Equal(t, 2*time.Minute, cfg.ParsedGenerationLockTTL)
				assert.Equal(t, "https://abcd.supabase.co", cfg.SupabaseURL)
			}
		})
	}
}

// TestRequireSession tests the RequireSession method.
func TestRequireSession(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	require.ErrorIs(t, cfg.RequireSession(), ErrNotSignedIn)

	cfg.AccessToken = "token"
	require.ErrorIs(t, cfg.RequireSession(), ErrNotSignedIn)

	cfg.UserID = "2f7c2a8e-0000-4000-8000-000000000001"
	require.NoError(t, cfg.RequireSession())
}

// TestSaveConfig tests that session keys are updated while other keys keep their order.
func TestSaveConfig(t *testing.T) {
	t.Parallel()

	configPath := filepath.Join(t.TempDir(), "studycast.yaml")
	original := `# StudyCast settings
supabase_url: "https://abcd.supabase.co"
access_token: "old"
anon_key: "anon"
`

	require.NoError(t, os.WriteFile(configPath, []byte(original), constants.DefaultFilePermissions))

	cfg := &Config{ConfigFilePath: configPath, AccessToken: "new-token", UserID: "user-1"}
	require.NoError(t, SaveConfig(cfg))

	content, err := os.ReadFile(configPath)
	require.NoError(t, err)

	text := string(content)
	assert.Contains(t, text, "# StudyCast settings")
	assert.Contains(t, text, `access_token: "new-token"`)
	assert.Contains(t, text, `user_id: "user-1"`)
	assert.NotContains(t, text, `"old"`)
	assert.Less(t, strings.Index(text, "supabase_url"), strings.Index(text, "anon_key"))

	var decoded map[string]string
	require.NoError(t, yaml.Unmarshal(content, &decoded))
	assert.Equal(t, "anon", decoded["anon_key"])

	info, err := os.Stat(configPath)
	require.NoError(t, err)
	assert.Equal(t, constants.PrivateFilePermissions, info.Mode().Perm())
}

// TestSaveConfig_NewFile tests that a missing file is created with the session keys.
func TestSaveConfig_NewFile(t *testing.T) {
	t.Parallel()

	configPath := filepath.Join(t.TempDir(), "fresh.yaml")

	require.NoError(t, SaveConfig(&Config{ConfigFilePath: configPath, AccessToken: "t", UserID: "u"}))

	var decoded map[string]string

	content, err := os.ReadFile(configPath)
	require.NoError(t, err)
	require.NoError(t, yaml.Unmarshal(content, &decoded))
	assert.Equal(t, map[string]string{"access_token": "t", "user_id": "u"}, decoded)
}

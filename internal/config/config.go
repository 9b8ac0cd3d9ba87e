package config

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/oshokin/studycast/internal/constants"
	"github.com/oshokin/studycast/internal/logger"
)

// Config holds all configuration settings.
type Config struct {
	// SupabaseURL is the base URL of the hosted backend project.
	SupabaseURL string `mapstructure:"supabase_url"`
	// AnonKey is the project's public key sent with every backend request.
	AnonKey string `mapstructure:"anon_key"`
	// AppURL is the web application used for browser login.
	AppURL string `mapstructure:"app_url"`
	// AccessToken is the signed-in user's bearer token (written by "auth login").
	AccessToken string `mapstructure:"access_token"`
	// UserID is the signed-in user's id (written by "auth login").
	UserID string `mapstructure:"user_id"`
	// StoreBackend selects where podcast and profile rows live: "rest" or "mysql".
	StoreBackend string `mapstructure:"store_backend"`
	// DatabaseDSN is the MySQL DSN used when StoreBackend is "mysql".
	DatabaseDSN string `mapstructure:"database_dsn"`
	// RedisAddr enables the generation lock when set (host:port).
	RedisAddr string `mapstructure:"redis_addr"`
	// GenerationLockTTL bounds how long a generation lock may be held (e.g., "2m").
	GenerationLockTTL string `mapstructure:"generation_lock_ttl"`
	// GenerationTimeout bounds a single generation call (e.g., "3m").
	GenerationTimeout string `mapstructure:"generation_timeout"`
	// MockPreviewFallback substitutes a canned result when a preview-only generation fails.
	MockPreviewFallback bool `mapstructure:"mock_preview_fallback"`
	// DefaultBackground is the ambient texture used when a track does not pick one.
	DefaultBackground string `mapstructure:"default_background"`
	// DefaultMode is the studio mode used by "generate" when none is given (FocusCast or SleepCast).
	DefaultMode string `mapstructure:"default_mode"`
	// DefaultExamBoard is used for duplicate checks and generation when none is given.
	DefaultExamBoard string `mapstructure:"default_exam_board"`
	// DefaultLevel is used for duplicate checks and generation when none is given.
	DefaultLevel string `mapstructure:"default_level"`
	// OutputPath is the directory downloaded podcasts and rendered textures are saved to.
	OutputPath string `mapstructure:"output_path"`
	// ReplaceDownloads indicates whether existing downloaded files are overwritten.
	ReplaceDownloads bool `mapstructure:"replace_downloads"`
	// Volume is the playback volume between 0 and 1.
	Volume float64 `mapstructure:"volume"`
	// AudioOutput selects the audio sink: "speaker" or "null" (headless, real-time).
	AudioOutput string `mapstructure:"audio_output"`
	// SampleRate is the output sample rate in Hz.
	SampleRate int `mapstructure:"sample_rate"`
	// LogLevel specifies the logging verbosity level.
	LogLevel string `mapstructure:"log_level"`
	// LogFile enables a rotating JSON log file when set.
	LogFile string `mapstructure:"log_file"`
	// LogMaxSizeMB is the size at which the log file is rotated.
	LogMaxSizeMB int `mapstructure:"log_max_size_mb"`
	// LogMaxBackups is the number of rotated log files kept.
	LogMaxBackups int `mapstructure:"log_max_backups"`
	// ConfigFilePath is the file the configuration was read from (set automatically).
	ConfigFilePath string `mapstructure:"-"`
	// ParsedLogLevel is the parsed zap log level.
	ParsedLogLevel zapcore.Level `mapstructure:"-"`
	// ParsedGenerationTimeout is the parsed generation timeout.
	ParsedGenerationTimeout time.Duration `mapstructure:"-"`
	// ParsedGenerationLockTTL is the parsed generation lock TTL.
	ParsedGenerationLockTTL time.Duration `mapstructure:"-"`
}

const (
	// DefaultConfigFilename is the default name of the configuration file.
	DefaultConfigFilename = ".studycast.yaml"

	// DefaultEnvFilename is loaded into the environment before the configuration is read.
	DefaultEnvFilename = ".env"

	// EnvPrefix prefixes environment variables overriding configuration keys.
	EnvPrefix = "STUDYCAST"

	// DefaultMaxLogLength is the default maximum size (in bytes) of a logged HTTP dump.
	DefaultMaxLogLength = 1 * 1024 * 1024 // 1 MB

	// StoreBackendREST keeps rows in the hosted table store.
	StoreBackendREST = "rest"
	// StoreBackendMySQL keeps rows in a self-hosted MySQL database.
	StoreBackendMySQL = "mysql"

	// AudioOutputSpeaker plays through the system audio device.
	AudioOutputSpeaker = "speaker"
	// AudioOutputNull consumes audio in real time without a device.
	AudioOutputNull = "null"

	// ModeFocusCast is the direct explainer studio mode.
	ModeFocusCast = "FocusCast"
	// ModeSleepCast is the soothing repetition studio mode.
	ModeSleepCast = "SleepCast"

	minSampleRate = 8000
	maxSampleRate = 192000
)

// validBackgrounds lists the ambient textures accepted in configuration.
//
//nolint:gochecknoglobals // Immutable lookup table.
var validBackgrounds = map[string]struct{}{
	"none":        {},
	"rain":        {},
	"white_noise": {},
	"delta_waves": {},
}

// Static error definitions for better error handling.
var (
	// ErrEmptySupabaseURL indicates that the backend URL is missing.
	ErrEmptySupabaseURL = errors.New("supabase_url cannot be empty")
	// ErrInvalidSupabaseURL indicates that the backend URL is not an absolute http(s) URL.
	ErrInvalidSupabaseURL = errors.New("supabase_url must be an absolute http(s) URL")
	// ErrEmptyAnonKey indicates that the public key is missing.
	ErrEmptyAnonKey = errors.New("anon_key cannot be empty")
	// ErrInvalidStoreBackend indicates an unknown store backend.
	ErrInvalidStoreBackend = errors.New("invalid store_backend")
	// ErrEmptyDatabaseDSN indicates that the MySQL backend was chosen without a DSN.
	ErrEmptyDatabaseDSN = errors.New("database_dsn is required for the mysql store backend")
	// ErrInvalidBackground indicates an unknown ambient texture.
	ErrInvalidBackground = errors.New("invalid default_background")
	// ErrInvalidMode indicates an unknown studio mode.
	ErrInvalidMode = errors.New("invalid default_mode")
	// ErrInvalidVolume indicates a volume outside [0, 1].
	ErrInvalidVolume = errors.New("volume must be between 0 and 1")
	// ErrInvalidAudioOutput indicates an unknown audio sink.
	ErrInvalidAudioOutput = errors.New("invalid audio_output")
	// ErrInvalidSampleRate indicates an unsupported sample rate.
	ErrInvalidSampleRate = errors.New("invalid sample_rate")
	// ErrInvalidGenerationTimeout indicates a non-positive generation timeout.
	ErrInvalidGenerationTimeout = errors.New("generation_timeout must be positive")
	// ErrInvalidGenerationLockTTL indicates a non-positive lock TTL.
	ErrInvalidGenerationLockTTL = errors.New("generation_lock_ttl must be positive")
	// ErrUnknownLogLevel indicates that the log level is not recognized.
	ErrUnknownLogLevel = errors.New("unknown log level")
	// ErrNotSignedIn indicates that the command needs a user session.
	ErrNotSignedIn = errors.New("not signed in, run 'studycast auth login' first")
)

// defaults holds the value of every key, so environment overrides work for all of them.
//
//nolint:gochecknoglobals // Immutable defaults table.
var defaults = map[string]any{
	"supabase_url":          "",
	"anon_key":              "",
	"app_url":               "https://studycast.dev",
	"access_token":          "",
	"user_id":               "",
	"store_backend":         StoreBackendREST,
	"database_dsn":          "",
	"redis_addr":            "",
	"generation_lock_ttl":   "2m",
	"generation_timeout":    "3m",
	"mock_preview_fallback": false,
	"default_background":    "none",
	"default_mode":          ModeFocusCast,
	"default_exam_board":    "AQA",
	"default_level":         "Foundation",
	"output_path":           "studycasts",
	"replace_downloads":     false,
	"volume":                1.0,
	"audio_output":          AudioOutputSpeaker,
	"sample_rate":           44100,
	"log_level":             "info",
	"log_file":              "",
	"log_max_size_mb":       10,
	"log_max_backups":       3,
}

// LoadConfig loads configuration settings from a YAML file, a .env file and STUDYCAST_* variables.
// A missing configuration file is not an error, defaults and the environment are used instead.
func LoadConfig(configFilename string) (*Config, error) {
	if configFilename == "" {
		configFilename = DefaultConfigFilename
	}

	if err := godotenv.Load(DefaultEnvFilename); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load %s: %w", DefaultEnvFilename, err)
	}

	v := viper.New()
	v.SetConfigFile(configFilename)
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	if err := v.ReadInConfig(); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config from file: %w", err)
		}

		logger.Debugf(context.Background(), "Config file %s not found, using defaults", configFilename)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.ConfigFilePath = configFilename

	return &cfg, nil
}

// ValidateConfig checks the configuration for validity and sets derived fields.
//
//nolint:cyclop,funlen // Validation functions naturally have high complexity and length due to sequential checks.
func ValidateConfig(cfg *Config) error {
	var err error

	cfg.SupabaseURL = strings.TrimRight(strings.TrimSpace(cfg.SupabaseURL), "/")
	if cfg.SupabaseURL == "" {
		return ErrEmptySupabaseURL
	}

	parsedURL, err := url.Parse(cfg.SupabaseURL)
	if err != nil || !parsedURL.IsAbs() || (parsedURL.Scheme != "http" && parsedURL.Scheme != "https") {
		return fmt.Errorf("%w: '%s'", ErrInvalidSupabaseURL, cfg.SupabaseURL)
	}

	if strings.TrimSpace(cfg.AnonKey) == "" {
		return ErrEmptyAnonKey
	}

	cfg.StoreBackend = strings.ToLower(strings.TrimSpace(cfg.StoreBackend))
	switch cfg.StoreBackend {
	case StoreBackendREST:
	case StoreBackendMySQL:
		if strings.TrimSpace(cfg.DatabaseDSN) == "" {
			return ErrEmptyDatabaseDSN
		}
	default:
		return fmt.Errorf("%w: '%s'", ErrInvalidStoreBackend, cfg.StoreBackend)
	}

	if _, ok := validBackgrounds[cfg.DefaultBackground]; !ok {
		return fmt.Errorf("%w: '%s'", ErrInvalidBackground, cfg.DefaultBackground)
	}

	if cfg.DefaultMode != ModeFocusCast && cfg.DefaultMode != ModeSleepCast {
		return fmt.Errorf("%w: '%s'", ErrInvalidMode, cfg.DefaultMode)
	}

	if cfg.Volume < 0 || cfg.Volume > 1 {
		return ErrInvalidVolume
	}

	if cfg.AudioOutput != AudioOutputSpeaker && cfg.AudioOutput != AudioOutputNull {
		return fmt.Errorf("%w: '%s'", ErrInvalidAudioOutput, cfg.AudioOutput)
	}

	if cfg.SampleRate < minSampleRate || cfg.SampleRate > maxSampleRate {
		return fmt.Errorf("%w: %d, must be between %d and %d", ErrInvalidSampleRate,
			cfg.SampleRate, minSampleRate, maxSampleRate)
	}

	cfg.ParsedGenerationTimeout, err = time.ParseDuration(cfg.GenerationTimeout)
	if err != nil {
		return fmt.Errorf("failed to parse generation timeout: %w", err)
	}

	if cfg.ParsedGenerationTimeout <= 0 {
		return ErrInvalidGenerationTimeout
	}

	cfg.ParsedGenerationLockTTL, err = time.ParseDuration(cfg.GenerationLockTTL)
	if err != nil {
		return fmt.Errorf("failed to parse generation lock ttl: %w", err)
	}

	if cfg.ParsedGenerationLockTTL <= 0 {
		return ErrInvalidGenerationLockTTL
	}

	parsedLogLevel, isLogLevelCorrect := logger.ParseLogLevel(cfg.LogLevel)
	if !isLogLevelCorrect {
		return fmt.Errorf("%w: '%s'", ErrUnknownLogLevel, cfg.LogLevel)
	}

	cfg.ParsedLogLevel = parsedLogLevel

	return nil
}

// RequireSession returns ErrNotSignedIn unless a token and user id are configured.
func (cfg *Config) RequireSession() error {
	if strings.TrimSpace(cfg.AccessToken) == "" || strings.TrimSpace(cfg.UserID) == "" {
		return ErrNotSignedIn
	}

	return nil
}

// SaveConfig writes the session keys back to the configuration file while preserving the original format and order.
func SaveConfig(cfg *Config) error {
	configFile := cfg.ConfigFilePath
	if configFile == "" {
		configFile = DefaultConfigFilename
	}

	session := map[string]string{
		"access_token": cfg.AccessToken,
		"user_id":      cfg.UserID,
	}

	originalContent, err := os.ReadFile(configFile)
	if err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to read config file: %w", err)
		}

		originalContent = nil
	}

	var node yaml.Node
	if err = yaml.Unmarshal(originalContent, &node); err != nil {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}

	setSessionInNode(&node, session)

	newContent, err := yaml.Marshal(&node)
	if err != nil {
		return fmt.Errorf("failed to marshal YAML: %w", err)
	}

	// The file holds a bearer token.
	if err = os.WriteFile(configFile, newContent, constants.PrivateFilePermissions); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	if err = os.Chmod(configFile, constants.PrivateFilePermissions); err != nil {
		return fmt.Errorf("failed to restrict config file permissions: %w", err)
	}

	return nil
}

// setSessionInNode updates or appends the given keys in the top-level YAML mapping.
func setSessionInNode(node *yaml.Node, values map[string]string) {
	if node.Kind == 0 {
		node.Kind = yaml.DocumentNode
	}

	if len(node.Content) == 0 {
		node.Content = append(node.Content, &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"})
	}

	mapNode := node.Content[0]
	if mapNode.Kind != yaml.MappingNode {
		return
	}

	seen := make(map[string]bool, len(values))

	// Key-value pairs are stored as alternating nodes.
	for i := 0; i+1 < len(mapNode.Content); i += 2 {
		keyNode := mapNode.Content[i]
		valueNode := mapNode.Content[i+1]

		value, ok := values[keyNode.Value]
		if !ok {
			continue
		}

		valueNode.Kind = yaml.ScalarNode
		valueNode.Tag = "!!str"
		valueNode.Value = value
		valueNode.Style = yaml.DoubleQuotedStyle
		seen[keyNode.Value] = true
	}

	for _, key := range []string{"access_token", "user_id"} {
		if seen[key] {
			continue
		}

		mapNode.Content = append(mapNode.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: values[key], Style: yaml.DoubleQuotedStyle},
		)
	}
}

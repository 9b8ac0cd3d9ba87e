package logger

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// FileSinkOptions configures the optional rotating log file.
type FileSinkOptions struct {
	// Filename is the path of the active log file.
	Filename string
	// MaxSizeMB is the size at which the file is rotated.
	MaxSizeMB int
	// MaxBackups is the number of rotated files kept on disk.
	MaxBackups int
}

type contextKey struct{}

const (
	// defaultLogMaxSizeMB is used when FileSinkOptions.MaxSizeMB is not positive.
	defaultLogMaxSizeMB = 10
	// logFolderPermissions is applied to the log file directory when it is created.
	logFolderPermissions os.FileMode = 0o755
)

var (
	//nolint:gochecknoglobals // Level is shared by every core so SetLevel affects all sinks at once.
	globalLevel = zap.NewAtomicLevelAt(zapcore.InfoLevel)

	//nolint:gochecknoglobals // Package-wide logger, swapped atomically.
	globalLogger atomic.Pointer[zap.Logger]
)

//nolint:gochecknoinits // The global logger must be usable before configuration is loaded.
func init() {
	globalLogger.Store(New(globalLevel))
}

// New creates a console logger writing to stderr.
// A nil level enabler falls back to the shared package level.
func New(level zapcore.LevelEnabler) *zap.Logger {
	if level == nil {
		level = globalLevel
	}

	return zap.New(newConsoleCore(level))
}

// EnableFileSink rebuilds the global logger so it also writes JSON lines
// to a rotating file.
func EnableFileSink(opts FileSinkOptions) error {
	if strings.TrimSpace(opts.Filename) == "" {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(opts.Filename), logFolderPermissions); err != nil {
		return err
	}

	maxSize := opts.MaxSizeMB
	if maxSize <= 0 {
		maxSize = defaultLogMaxSizeMB
	}

	fileWriter := zapcore.AddSync(&lumberjack.Logger{
		Filename:   opts.Filename,
		MaxSize:    maxSize,
		MaxBackups: opts.MaxBackups,
	})

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.RFC3339TimeEncoder

	fileCore := zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), fileWriter, globalLevel)

	SetLogger(zap.New(zapcore.NewTee(newConsoleCore(globalLevel), fileCore)))

	return nil
}

func newConsoleCore(level zapcore.LevelEnabler) zapcore.Core {
	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
	encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder

	return zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.Lock(os.Stderr),
		level,
	)
}

// ParseLogLevel converts a textual level into a zap level.
// Unknown values yield InfoLevel and false.
func ParseLogLevel(value string) (zapcore.Level, bool) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	if normalized == "" {
		return zapcore.InfoLevel, false
	}

	var level zapcore.Level
	if err := level.UnmarshalText([]byte(normalized)); err != nil {
		return zapcore.InfoLevel, false
	}

	return level, true
}

// Level returns the current package log level.
func Level() zapcore.Level {
	return globalLevel.Level()
}

// SetLevel changes the package log level.
func SetLevel(level zapcore.Level) {
	globalLevel.SetLevel(level)
}

// IsDebugLevel reports whether debug messages are emitted.
func IsDebugLevel() bool {
	return globalLevel.Enabled(zapcore.DebugLevel)
}

// Logger returns the global logger.
func Logger() *zap.Logger {
	return globalLogger.Load()
}

// SetLogger replaces the global logger.
func SetLogger(l *zap.Logger) {
	globalLogger.Store(l)
}

// ToContext attaches a logger to the context.
func ToContext(ctx context.Context, l *zap.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}

// WithKV returns a context whose logger carries the given key-value pairs.
func WithKV(ctx context.Context, kv ...any) context.Context {
	return ToContext(ctx, fromContext(ctx).With(sweeten(kv)...))
}

func fromContext(ctx context.Context) *zap.Logger {
	if ctx != nil {
		if l, ok := ctx.Value(contextKey{}).(*zap.Logger); ok && l != nil {
			return l
		}
	}

	return Logger()
}

func sugared(ctx context.Context) *zap.SugaredLogger {
	return fromContext(ctx).WithOptions(zap.AddCallerSkip(1)).Sugar()
}

func sweeten(kv []any) []zap.Field {
	fields := make([]zap.Field, 0, len(kv)/2)

	for i := 0; i+1 < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			continue
		}

		fields = append(fields, zap.Any(key, kv[i+1]))
	}

	return fields
}

// Debug logs a message at debug level.
func Debug(ctx context.Context, msg string) {
	sugared(ctx).Debug(msg)
}

// Debugf logs a formatted message at debug level.
func Debugf(ctx context.Context, format string, args ...any) {
	sugared(ctx).Debugf(format, args...)
}

// DebugKV logs a message with key-value pairs at debug level.
func DebugKV(ctx context.Context, msg string, kv ...any) {
	sugared(ctx).Debugw(msg, kv...)
}

// Info logs a message at info level.
func Info(ctx context.Context, msg string) {
	sugared(ctx).Info(msg)
}

// Infof logs a formatted message at info level.
func Infof(ctx context.Context, format string, args ...any) {
	sugared(ctx).Infof(format, args...)
}

// InfoKV logs a message with key-value pairs at info level.
func InfoKV(ctx context.Context, msg string, kv ...any) {
	sugared(ctx).Infow(msg, kv...)
}

// Warn logs a message at warn level.
func Warn(ctx context.Context, msg string) {
	sugared(ctx).Warn(msg)
}

// Warnf logs a formatted message at warn level.
func Warnf(ctx context.Context, format string, args ...any) {
	sugared(ctx).Warnf(format, args...)
}

// WarnKV logs a message with key-value pairs at warn level.
func WarnKV(ctx context.Context, msg string, kv ...any) {
	sugared(ctx).Warnw(msg, kv...)
}

// Error logs a message at error level.
func Error(ctx context.Context, msg string) {
	sugared(ctx).Error(msg)
}

// Errorf logs a formatted message at error level.
func Errorf(ctx context.Context, format string, args ...any) {
	sugared(ctx).Errorf(format, args...)
}

// ErrorKV logs a message with key-value pairs at error level.
func ErrorKV(ctx context.Context, msg string, kv ...any) {
	sugared(ctx).Errorw(msg, kv...)
}

// Fatal logs a message at fatal level and exits.
func Fatal(ctx context.Context, msg string) {
	sugared(ctx).Fatal(msg)
}

// Fatalf logs a formatted message at fatal level and exits.
func Fatalf(ctx context.Context, format string, args ...any) {
	sugared(ctx).Fatalf(format, args...)
}

// Panic logs a message at panic level and panics.
func Panic(ctx context.Context, msg string) {
	sugared(ctx).Panic(msg)
}

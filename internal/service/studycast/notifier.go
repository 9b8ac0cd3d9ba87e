package studycast

//go:generate $MOCKGEN -source=notifier.go -destination=mocks/notifier_mock.go

import (
	"context"

	"github.com/oshokin/studycast/internal/logger"
)

// Level is the severity of a notification.
type Level int

const (
	// LevelInfo is a neutral notice.
	LevelInfo Level = iota
	// LevelSuccess confirms a completed action.
	LevelSuccess
	// LevelError reports a failed action.
	LevelError
)

// String returns the level name.
func (l Level) String() string {
	switch l {
	case LevelSuccess:
		return "success"
	case LevelError:
		return "error"
	default:
		return "info"
	}
}

// Notification is a short user-facing message.
type Notification struct {
	// Level is the severity.
	Level Level
	// Title is the headline.
	Title string
	// Message is the detail line.
	Message string
}

// Notifier shows notifications to the user.
type Notifier interface {
	// Notify shows n.
	Notify(ctx context.Context, n Notification)
}

// LogNotifier writes notifications to the application log.
type LogNotifier struct{}

// NewLogNotifier creates a LogNotifier.
func NewLogNotifier() Notifier {
	return LogNotifier{}
}

// Notify logs n at the matching level.
func (LogNotifier) Notify(ctx context.Context, n Notification) {
	if n.Level == LevelError {
		logger.Errorf(ctx, "%s: %s", n.Title, n.Message)

		return
	}

	logger.Infof(ctx, "%s: %s", n.Title, n.Message)
}

// Notifications shown by the service.
var (
	notifyAudioNotReady = Notification{
		Level:   LevelError,
		Title:   "Audio not ready",
		Message: "This StudyCast is still processing. Try again soon.",
	}
	notifyAudioNotAvailable = Notification{
		Level:   LevelError,
		Title:   "Audio not available",
		Message: "We couldn't generate audio right now. Try shortening the script or changing settings.",
	}
	notifyReplaceFailed = Notification{
		Level:   LevelError,
		Title:   "Error",
		Message: "Couldn't remove the old podcast. Please try again.",
	}
)

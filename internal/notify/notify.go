// Package notify abstracts the toast-style alerts the admin screens
// raise after every user-visible operation. Stores emit notifications;
// the hosting shell decides how to display them.
package notify

import "go.uber.org/zap"

// Level classifies a notification.
type Level string

const (
	LevelSuccess Level = "success"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// Notification is a single user-facing alert.
type Notification struct {
	Level Level
	Title string
	Text  string
}

// Notifier receives user-facing alerts. Implementations must not block.
type Notifier interface {
	Notify(n Notification)
}

// Success builds a success notification.
func Success(title, text string) Notification {
	return Notification{Level: LevelSuccess, Title: title, Text: text}
}

// Warning builds a warning notification. Warnings are local rule
// rejections, not failures.
func Warning(title, text string) Notification {
	return Notification{Level: LevelWarning, Title: title, Text: text}
}

// Error builds an error notification.
func Error(title, text string) Notification {
	return Notification{Level: LevelError, Title: title, Text: text}
}

// LogNotifier writes notifications to a zap logger. It is the default
// sink for headless use (CLI, tests of wiring).
type LogNotifier struct {
	lg *zap.Logger
}

// NewLogNotifier creates a LogNotifier on the given logger.
func NewLogNotifier(lg *zap.Logger) *LogNotifier {
	return &LogNotifier{lg: lg}
}

func (l *LogNotifier) Notify(n Notification) {
	fields := []zap.Field{
		zap.String("level", string(n.Level)),
		zap.String("text", n.Text),
	}
	switch n.Level {
	case LevelError:
		l.lg.Error(n.Title, fields...)
	case LevelWarning:
		l.lg.Warn(n.Title, fields...)
	default:
		l.lg.Info(n.Title, fields...)
	}
}

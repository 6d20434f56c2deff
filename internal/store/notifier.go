package store

import "log/slog"

// Notifier receives the user-facing outcome of store operations. The
// terminal UI plugs in its toast surface; headless commands use LogNotifier.
type Notifier interface {
	Success(message string)
	Error(message string)
}

// LogNotifier writes notifications to the structured log. It is the default
// when no UI is attached.
type LogNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier creates a notifier backed by the given logger.
func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogNotifier{logger: logger.With("component", "notifier")}
}

// Success implements Notifier.
func (n *LogNotifier) Success(message string) {
	n.logger.Info(message)
}

// Error implements Notifier.
func (n *LogNotifier) Error(message string) {
	n.logger.Warn(message)
}

// noopNotifier discards everything; used in tests that only care about state.
type noopNotifier struct{}

func (noopNotifier) Success(string) {}
func (noopNotifier) Error(string)   {}

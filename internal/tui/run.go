package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// programNotifier bridges the store's notifier to the running program:
// operation outcomes become toast messages on the UI thread.
type programNotifier struct {
	program *tea.Program
}

// Success implements store.Notifier.
func (n *programNotifier) Success(message string) {
	n.program.Send(notificationMsg{text: message})
}

// Error implements store.Notifier.
func (n *programNotifier) Error(message string) {
	n.program.Send(notificationMsg{text: message, isError: true})
}

// Run starts the terminal UI and blocks until the user quits or the
// context is canceled. The store's notifier is rebound to the program so
// operation outcomes render as toasts instead of log lines.
func Run(ctx context.Context, opts ...Option) error {
	cfg, err := newConfig(opts...)
	if err != nil {
		return fmt.Errorf("invalid TUI configuration: %w", err)
	}

	program := tea.NewProgram(
		newModel(cfg),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	cfg.Store.SetNotifier(&programNotifier{program: program})

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("terminal UI failed: %w", err)
	}
	return nil
}

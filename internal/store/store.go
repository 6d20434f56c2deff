// Package store holds the client-side application state and the operations
// that mutate it. Every operation delegates to the remote API, applies the
// result under the store lock, and reports the outcome through the Notifier.
// Operations never write optimistic state: lists are refreshed by an explicit
// re-fetch after a successful mutation.
package store

import (
	"log/slog"
	"sync"

	"github.com/ogiraldo/inkflow/internal/api"
	"github.com/ogiraldo/inkflow/internal/model"
)

// Store is the single source of truth for the terminal client. All reads
// and writes go through its methods; accessors return copies so callers can
// never alias internal state.
type Store struct {
	client   api.DataClient
	notifier Notifier
	logger   *slog.Logger

	mu sync.RWMutex

	expenses   entriesState
	revenues   entriesState
	categories categoriesState
	users      usersState
	payments   paymentsState
	posts      postsState
	auth       authState
	ui         uiState
}

// Option configures a Store.
type Option func(*Store)

// WithNotifier sets the notification sink.
func WithNotifier(n Notifier) Option {
	return func(s *Store) {
		if n != nil {
			s.notifier = n
		}
	}
}

// WithLogger sets the logger used for operation diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger.With("component", "store")
		}
	}
}

// New creates a Store backed by the given API client.
func New(client api.DataClient, opts ...Option) *Store {
	s := &Store{
		client:   client,
		notifier: NewLogNotifier(slog.Default()),
		logger:   slog.Default().With("component", "store"),
	}
	s.expenses = newEntriesState(model.EntryTypeExpense)
	s.revenues = newEntriesState(model.EntryTypeRevenue)

	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SetNotifier rebinds the notification sink. The terminal UI calls this
// once its program exists, replacing the log-backed default.
func (s *Store) SetNotifier(n Notifier) {
	if n == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notifier = n
}

// operation names a store action and carries its notification policy.
// Silent operations log failures but never raise an error notification;
// their callers surface the failure through view state instead.
type operation struct {
	name   string
	silent bool
}

// fail records an operation failure. It emits at most one error
// notification, and none at all for silent operations.
func (s *Store) fail(op operation, err error) error {
	s.logger.Warn("operation failed", "operation", op.name, "error", err)
	if !op.silent {
		s.notifier.Error(UserMessage(err))
	}
	return err
}

// UserMessage translates an operation error into the short text shown to
// the user. Structured API rejections carry their own detail; transport
// failures and anything unclassified collapse into generic messages.
func UserMessage(err error) string {
	if api.IsNetwork(err) {
		return "network error"
	}
	if reqErr, ok := api.AsRequestError(err); ok && reqErr.Detail != "" {
		return reqErr.Detail
	}
	return "an error occurred"
}

package store

import (
	"context"
	"io"

	"github.com/ogiraldo/inkflow/internal/api"
	"github.com/ogiraldo/inkflow/internal/model"
)

// usersState tracks the user list and the detail view's subject.
type usersState struct {
	list     []model.User
	fetching bool
	fetchSeq int64

	detail         *model.User
	detailLoading  bool
	detailNotFound bool

	toggling bool
}

// FetchAllUsers loads the full user list. List failures raise no
// notification; the list view shows its own error state.
func (s *Store) FetchAllUsers(ctx context.Context) error {
	op := operation{name: "fetch users", silent: true}

	s.mu.Lock()
	s.users.fetchSeq++
	seq := s.users.fetchSeq
	s.users.fetching = true
	s.mu.Unlock()

	list, err := s.client.GetAllUsers(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if seq != s.users.fetchSeq {
		s.logger.Debug("discarding stale fetch", "operation", op.name, "seq", seq)
		return nil
	}
	s.users.fetching = false
	if err != nil {
		return s.fail(op, err)
	}
	s.users.list = list
	return nil
}

// Users returns a copy of the user list.
func (s *Store) Users() []model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.User(nil), s.users.list...)
}

// UsersFetching reports whether a user list fetch is in flight.
func (s *Store) UsersFetching() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.users.fetching
}

// FetchUser loads one user for the detail view. A 404 is not an error
// worth a toast: the view renders a not-found state instead.
func (s *Store) FetchUser(ctx context.Context, userID int64) error {
	op := operation{name: "fetch user"}

	s.mu.Lock()
	s.users.detail = nil
	s.users.detailLoading = true
	s.users.detailNotFound = false
	s.mu.Unlock()

	user, err := s.client.GetUser(ctx, userID)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.users.detailLoading = false
	if err != nil {
		if api.IsNotFound(err) {
			s.users.detailNotFound = true
			s.logger.Warn("operation failed", "operation", op.name, "error", err)
			return err
		}
		return s.fail(op, err)
	}
	s.users.detail = user
	return nil
}

// UserDetail returns the detail subject, whether it is loading, and whether
// the last fetch came back not found.
func (s *Store) UserDetail() (user *model.User, loading, notFound bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.users.detail != nil {
		u := *s.users.detail
		user = &u
	}
	return user, s.users.detailLoading, s.users.detailNotFound
}

// CreateUser submits a new user and returns it.
func (s *Store) CreateUser(ctx context.Context, input model.UserInput) (*model.User, error) {
	op := operation{name: "create user"}
	created, err := s.client.CreateUser(ctx, input)
	if err != nil {
		return nil, s.fail(op, err)
	}
	s.notifier.Success("user created")
	return created, nil
}

// UpdateUser submits changes to an existing user and refreshes the detail
// subject when it is the one being edited.
func (s *Store) UpdateUser(ctx context.Context, userID int64, input model.UserInput) (*model.User, error) {
	op := operation{name: "update user"}
	updated, err := s.client.UpdateUser(ctx, userID, input)
	if err != nil {
		return nil, s.fail(op, err)
	}

	s.mu.Lock()
	if s.users.detail != nil && s.users.detail.ID == userID {
		s.users.detail = updated
	}
	s.mu.Unlock()

	s.notifier.Success("user updated")
	return updated, nil
}

// UpdateUserAvatar stores the file and points the user's avatar at the
// resulting URL, carrying the rest of the record unchanged.
func (s *Store) UpdateUserAvatar(ctx context.Context, userID int64, filename string, content io.Reader) (string, error) {
	op := operation{name: "update user avatar"}

	url, err := s.client.Upload(ctx, filename, content)
	if err != nil {
		return "", s.fail(op, err)
	}

	user, err := s.client.GetUser(ctx, userID)
	if err != nil {
		return "", s.fail(op, err)
	}

	input := model.UserInputFrom(*user)
	input.AvatarURL = url
	updated, err := s.client.UpdateUser(ctx, userID, input)
	if err != nil {
		return "", s.fail(op, err)
	}

	s.mu.Lock()
	if s.users.detail != nil && s.users.detail.ID == userID {
		s.users.detail = updated
	}
	s.mu.Unlock()

	s.notifier.Success("avatar updated")
	return url, nil
}

// ToggleUserStatus activates an inactive user or deactivates an active one,
// then reloads the subject so the capability flags reflect the new state.
// The subject must allow the transition (see User.StatusCanToggle).
func (s *Store) ToggleUserStatus(ctx context.Context, user model.User) error {
	op := operation{name: "toggle user status"}

	if !user.StatusCanToggle() {
		s.logger.Warn("status toggle not allowed", "user", user.ID, "active", user.Active)
		return nil
	}

	s.mu.Lock()
	s.users.toggling = true
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		s.users.toggling = false
		s.mu.Unlock()
	}()

	var err error
	if user.Active {
		err = s.client.DeactivateUser(ctx, user.ID)
	} else {
		err = s.client.ActivateUser(ctx, user.ID)
	}
	if err != nil {
		return s.fail(op, err)
	}

	if user.Active {
		s.notifier.Success("user deactivated")
	} else {
		s.notifier.Success("user activated")
	}

	return s.FetchUser(ctx, user.ID)
}

// UserStatusToggling reports whether an activation change is in flight.
func (s *Store) UserStatusToggling() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.users.toggling
}

package store

import (
	"context"

	"github.com/ogiraldo/inkflow/internal/model"
)

// authState tracks who is signed in. The token claims give an immediate
// privilege hint; the profile fetch is the authoritative answer.
type authState struct {
	profile  *model.User
	roleHint model.Role
	fetching bool
}

// SetRoleHint records the role parsed from the access token. It is used
// only until FetchProfile resolves.
func (s *Store) SetRoleHint(role model.Role) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.auth.roleHint = role
}

// FetchProfile loads the signed-in user's own profile.
func (s *Store) FetchProfile(ctx context.Context) error {
	op := operation{name: "fetch profile", silent: true}

	s.mu.Lock()
	s.auth.fetching = true
	s.mu.Unlock()

	profile, err := s.client.Me(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.auth.fetching = false
	if err != nil {
		return s.fail(op, err)
	}
	s.auth.profile = profile
	return nil
}

// Profile returns the signed-in user's profile, or nil before the fetch
// resolves.
func (s *Store) Profile() *model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.auth.profile == nil {
		return nil
	}
	p := *s.auth.profile
	return &p
}

// Role returns the signed-in user's role: the fetched profile when
// available, otherwise the token hint.
func (s *Store) Role() model.Role {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.auth.profile != nil {
		return s.auth.profile.Role
	}
	return s.auth.roleHint
}

// IsManager reports whether the signed-in user can perform privileged
// actions such as granting the manager role. The server enforces this on
// every call; the flag only gates what the UI offers.
func (s *Store) IsManager() bool {
	return s.Role() == model.RoleManager
}

package store

import "strings"

// uiState holds cross-view chrome: the breadcrumb trail and the transient
// status line.
type uiState struct {
	breadcrumb []string
	status     string
	theme      string
}

// SetBreadcrumb replaces the breadcrumb trail.
func (s *Store) SetBreadcrumb(trail ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ui.breadcrumb = append([]string(nil), trail...)
}

// Breadcrumb returns the trail joined for display, e.g. "Users / Ana".
func (s *Store) Breadcrumb() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return strings.Join(s.ui.breadcrumb, " / ")
}

// SetStatus sets the transient status line.
func (s *Store) SetStatus(status string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ui.status = status
}

// Status returns the transient status line.
func (s *Store) Status() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ui.status
}

// SetThemeName records the active theme name.
func (s *Store) SetThemeName(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ui.theme = name
}

// ThemeName returns the active theme name.
func (s *Store) ThemeName() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ui.theme
}

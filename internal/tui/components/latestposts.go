package components

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ogiraldo/inkflow/internal/model"
	"github.com/ogiraldo/inkflow/internal/tui/themes"
)

// LatestPostsModel is the dashboard panel listing the most recent posts
// across all editors. It is read-only; opening an author jumps to their
// detail view.
type LatestPostsModel struct {
	theme    themes.Theme
	posts    []model.Post
	cursor   int
	fetching bool
}

// NewLatestPosts creates the panel.
func NewLatestPosts(theme themes.Theme) LatestPostsModel {
	return LatestPostsModel{theme: theme, fetching: true}
}

// SetData replaces the panel content after a store refresh.
func (m *LatestPostsModel) SetData(posts []model.Post, fetching bool) {
	m.posts = posts
	m.fetching = fetching
	if m.cursor >= len(posts) {
		m.cursor = max(0, len(posts)-1)
	}
}

// Update handles messages.
func (m LatestPostsModel) Update(msg tea.Msg) (LatestPostsModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "j", "down":
		m.cursor = min(m.cursor+1, len(m.posts)-1)

	case "k", "up":
		m.cursor = max(m.cursor-1, 0)

	case "enter":
		if m.cursor < len(m.posts) {
			id := m.posts[m.cursor].Editor.ID
			return m, func() tea.Msg { return UserSelectedMsg{UserID: id} }
		}
	}

	return m, nil
}

// View renders the panel.
func (m LatestPostsModel) View() string {
	lines := []string{m.theme.Title.Render("Latest posts")}

	if m.fetching {
		lines = append(lines, m.theme.StatusPending.Render("loading…"))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}
	if len(m.posts) == 0 {
		lines = append(lines, m.theme.StatusPending.Render("nothing published yet"))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for i, p := range m.posts {
		line := fmt.Sprintf("%-50s %s", truncate(p.Title, 50), m.theme.Label.Render("by "+p.Editor.Name))
		if i == m.cursor {
			line = m.theme.Highlighted.Render(line)
		}
		lines = append(lines, line)
	}

	lines = append(lines, lipgloss.NewStyle().Foreground(m.theme.Muted).Render("[↑↓] Navigate  [Enter] Open author"))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

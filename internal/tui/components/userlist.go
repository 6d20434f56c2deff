package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ogiraldo/inkflow/internal/model"
	"github.com/ogiraldo/inkflow/internal/tui/themes"
)

// UserListModel manages the user list view.
type UserListModel struct {
	theme    themes.Theme
	users    []model.User
	table    table.Model
	cursor   int
	width    int
	height   int
	fetching bool
}

// NewUserList creates the user list.
func NewUserList(theme themes.Theme) UserListModel {
	columns := []table.Column{
		{Title: "Name", Width: 28},
		{Title: "Role", Width: 12},
		{Title: "E-mail", Width: 30},
		{Title: "Status", Width: 10},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(20),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.Border).
		BorderBottom(true).
		Bold(false)
	s.Selected = theme.Selected
	t.SetStyles(s)

	return UserListModel{
		theme:  theme,
		table:  t,
		width:  80,
		height: 24,
	}
}

// SetData replaces the list content after a store refresh.
func (m *UserListModel) SetData(users []model.User, fetching bool) {
	m.users = users
	m.fetching = fetching
	if m.cursor >= len(users) {
		m.cursor = max(0, len(users)-1)
	}
	m.table.SetCursor(m.cursor)
}

// Update handles messages.
func (m UserListModel) Update(msg tea.Msg) (UserListModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "j", "down":
			m.cursor = min(m.cursor+1, len(m.users)-1)
			m.table.SetCursor(m.cursor)

		case "k", "up":
			m.cursor = max(m.cursor-1, 0)
			m.table.SetCursor(m.cursor)

		case "enter":
			if m.cursor < len(m.users) {
				id := m.users[m.cursor].ID
				return m, func() tea.Msg { return UserSelectedMsg{UserID: id} }
			}

		case "a":
			return m, func() tea.Msg { return UserCreateMsg{} }
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.SetHeight(max(1, m.height-8))
	}

	return m, nil
}

// View renders the user list.
func (m UserListModel) View() string {
	m.table.SetRows(m.buildTableRows())

	status := fmt.Sprintf("%d users", len(m.users))
	if m.fetching {
		status += " | " + m.theme.StatusPending.Render("loading…")
	}

	footer := lipgloss.NewStyle().Foreground(m.theme.Muted).
		Render(strings.Join([]string{"[↑↓] Navigate", "[Enter] Open", "[a] New user"}, "  "))

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.theme.Title.Render("Users"),
		m.theme.Subtitle.Render(status),
		m.table.View(),
		footer,
	)
}

// Resize updates the component size.
func (m *UserListModel) Resize(width, height int) {
	m.width = width
	m.height = height
	m.table.SetHeight(max(1, height-8))
}

func (m UserListModel) buildTableRows() []table.Row {
	rows := make([]table.Row, 0, len(m.users))
	for _, u := range m.users {
		status := "inactive"
		if u.Active {
			status = "active"
		}
		rows = append(rows, table.Row{
			truncate(u.Name, 28),
			string(u.Role),
			truncate(u.Email, 30),
			status,
		})
	}
	return rows
}

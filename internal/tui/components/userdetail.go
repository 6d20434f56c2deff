package components

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ogiraldo/inkflow/internal/format"
	"github.com/ogiraldo/inkflow/internal/model"
	"github.com/ogiraldo/inkflow/internal/tui/themes"
)

// UserDetailModel shows one user: profile data, editor skills, and for
// editors a paginated table of their posts with a publication toggle.
type UserDetailModel struct {
	theme themes.Theme

	user     *model.User
	posts    model.Page[model.Post]
	confirm  DoubleConfirm
	cursor   int
	loading  bool
	notFound bool
	toggling int64
	width    int
	height   int
}

// NewUserDetail creates the detail view in its loading state.
func NewUserDetail(theme themes.Theme) UserDetailModel {
	return UserDetailModel{
		theme:   theme,
		confirm: NewDoubleConfirm("change this user's activation?", theme),
		loading: true,
		width:   80,
		height:  24,
	}
}

// SetData replaces the view content after a store refresh.
func (m *UserDetailModel) SetData(user *model.User, loading, notFound bool) {
	m.user = user
	m.loading = loading
	m.notFound = notFound
	if user == nil {
		m.confirm.Disarm()
	}
}

// SetPosts replaces the editor's post page.
func (m *UserDetailModel) SetPosts(page model.Page[model.Post], togglingID int64) {
	m.posts = page
	m.toggling = togglingID
	if m.cursor >= len(page.Content) {
		m.cursor = max(0, len(page.Content)-1)
	}
}

// Update handles messages.
func (m UserDetailModel) Update(msg tea.Msg) (UserDetailModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if size, isSize := msg.(tea.WindowSizeMsg); isSize {
			m.width = size.Width
			m.height = size.Height
		}
		return m, nil
	}

	switch keyMsg.String() {
	case "esc":
		m.confirm.Disarm()
		return m, func() tea.Msg { return BackMsg{} }

	case "e":
		if m.user != nil {
			user := *m.user
			return m, func() tea.Msg { return UserEditMsg{User: user} }
		}

	case "s":
		if m.user != nil && m.user.StatusCanToggle() {
			if m.confirm.Press() {
				user := *m.user
				return m, func() tea.Msg { return UserStatusToggleMsg{User: user} }
			}
			return m, nil
		}

	case "j", "down":
		m.confirm.Disarm()
		m.cursor = min(m.cursor+1, len(m.posts.Content)-1)

	case "k", "up":
		m.confirm.Disarm()
		m.cursor = max(m.cursor-1, 0)

	case "enter", "t":
		m.confirm.Disarm()
		if m.user != nil && m.user.IsEditor() && m.cursor < len(m.posts.Content) {
			post := m.posts.Content[m.cursor]
			if m.toggling == 0 {
				return m, func() tea.Msg { return PostToggleMsg{Post: post} }
			}
		}

	case "n", "right":
		m.confirm.Disarm()
		if m.user != nil && m.posts.Number+1 < m.posts.TotalPages {
			id, page := m.user.ID, m.posts.Number+1
			return m, func() tea.Msg { return UserPostsPageMsg{EditorID: id, Page: page} }
		}

	case "p", "left":
		m.confirm.Disarm()
		if m.user != nil && m.posts.Number > 0 {
			id, page := m.user.ID, m.posts.Number-1
			return m, func() tea.Msg { return UserPostsPageMsg{EditorID: id, Page: page} }
		}

	default:
		m.confirm.Disarm()
	}

	return m, nil
}

// View renders the user detail.
func (m UserDetailModel) View() string {
	if m.loading {
		return m.theme.StatusPending.Render("loading user…")
	}
	if m.notFound {
		return m.theme.Box.Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.theme.Title.Render("User not found"),
			m.theme.Subtitle.Render("the user does not exist or was removed"),
			lipgloss.NewStyle().Foreground(m.theme.Muted).Render("[Esc] Back"),
		))
	}
	if m.user == nil {
		return ""
	}

	sections := []string{
		m.renderProfile(),
	}
	if m.user.IsEditor() {
		sections = append(sections, m.renderSkills(), m.renderPosts())
	}
	if confirm := m.confirm.View(); confirm != "" {
		sections = append(sections, confirm)
	}
	sections = append(sections, m.renderFooter())

	return m.theme.Box.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m UserDetailModel) renderProfile() string {
	u := m.user

	status := m.theme.StatusError.Render("inactive")
	if u.Active {
		status = m.theme.StatusSuccess.Render("active")
	}

	lines := []string{
		m.theme.Title.Render(u.Name) + "  " + status,
		m.renderLine("Role", string(u.Role)),
		m.renderLine("E-mail", u.Email),
		m.renderLine("Phone", format.Phone(u.Phone)),
		m.renderLine("Taxpayer id", format.TaxpayerID(u.TaxpayerID)),
		m.renderLine("Birthdate", format.Date(u.Birthdate)),
		m.renderLine("Location", u.Location.City+", "+u.Location.State),
	}
	if u.Bio != "" {
		lines = append(lines, m.renderLine("Bio", u.Bio))
	}
	if u.IsEditor() {
		lines = append(lines, m.renderLine("Price per word", format.Money(u.PricePerWord)))
		if u.BankAccount != nil {
			lines = append(lines, m.renderLine("Bank", fmt.Sprintf("%s ag. %s acc. %s-%s",
				u.BankAccount.BankCode, u.BankAccount.Agency, u.BankAccount.Number, u.BankAccount.Digit)))
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m UserDetailModel) renderLine(label, value string) string {
	return m.theme.Label.Render(label+": ") + m.theme.Normal.Render(value)
}

func (m UserDetailModel) renderSkills() string {
	if len(m.user.Skills) == 0 {
		return ""
	}

	lines := []string{m.theme.Subtitle.Render("Skills")}
	for _, s := range m.user.Skills {
		// The percentage comes from the server; clamp so a bad value
		// cannot produce a negative repeat count.
		filled := min(max(s.Percentage/10, 0), 10)
		bar := strings.Repeat("█", filled) + strings.Repeat("░", 10-filled)
		lines = append(lines, fmt.Sprintf("%-20s %s %3d%%", truncate(s.Name, 20), bar, s.Percentage))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m UserDetailModel) renderPosts() string {
	lines := []string{m.theme.Subtitle.Render(fmt.Sprintf("Posts (%d)", m.posts.TotalElements))}

	if len(m.posts.Content) == 0 {
		lines = append(lines, m.theme.StatusPending.Render("no posts yet"))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for i, p := range m.posts.Content {
		status := m.theme.StatusPending.Render("draft")
		if p.Published {
			status = m.theme.StatusSuccess.Render("published")
		}
		if m.toggling == p.ID {
			status = m.theme.StatusPending.Render("updating…")
		}
		line := fmt.Sprintf("%-50s %s", truncate(p.Title, 50), status)
		if i == m.cursor {
			line = m.theme.Highlighted.Render(line)
		}
		lines = append(lines, line)
	}

	if m.posts.TotalPages > 1 {
		lines = append(lines, m.theme.Subtitle.Render(fmt.Sprintf("page %d/%d", m.posts.Number+1, m.posts.TotalPages)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m UserDetailModel) renderFooter() string {
	hints := []string{"[e] Edit", "[Esc] Back"}
	if m.user.StatusCanToggle() {
		if m.user.Active {
			hints = append([]string{"[s] Deactivate"}, hints...)
		} else {
			hints = append([]string{"[s] Activate"}, hints...)
		}
	}
	if m.user.IsEditor() {
		hints = append([]string{"[↑↓] Posts", "[Enter] Publish/unpublish", "[←→] Page"}, hints...)
	}
	return lipgloss.NewStyle().Foreground(m.theme.Muted).Render(strings.Join(hints, "  "))
}

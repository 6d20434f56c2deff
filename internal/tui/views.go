package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the UI.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var body string
	switch m.view {
	case ViewDashboard:
		body = m.renderDashboard()
	case ViewExpenses:
		body = m.expenses.View()
	case ViewRevenues:
		body = m.revenues.View()
	case ViewUsers:
		body = m.users.View()
	case ViewUserDetail:
		body = m.userDetail.View()
	case ViewUserForm:
		body = m.userForm.View()
	case ViewPayments:
		body = m.payments.View()
	case ViewPaymentDetail:
		body = m.paymentDetail.View()
	case ViewEntryForm:
		body = m.entryForm.View()
	case ViewHelp:
		body = m.renderHelp()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderHeader(),
		body,
		m.renderNotification(),
	)
}

func (m Model) renderHeader() string {
	title := m.theme.Bold.Render("inkflow")

	breadcrumb := m.store.Breadcrumb()
	if breadcrumb == "" {
		breadcrumb = "Dashboard"
	}

	who := ""
	if profile := m.store.Profile(); profile != nil {
		who = m.theme.Label.Render(profile.Name + " (" + string(profile.Role) + ")")
	}

	left := title + "  " + m.theme.Subtitle.Render(breadcrumb)
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(who) - 2
	if gap < 1 {
		gap = 1
	}

	tabs := lipgloss.NewStyle().Foreground(m.theme.Muted).
		Render("[1] Dashboard  [2] Expenses  [3] Revenues  [4] Users  [5] Payments  [?] Help")

	return lipgloss.JoinVertical(
		lipgloss.Left,
		left+strings.Repeat(" ", gap)+who,
		tabs,
		"",
	)
}

func (m Model) renderDashboard() string {
	return m.theme.Box.Render(m.latestPosts.View())
}

func (m Model) renderNotification() string {
	if m.notification == "" {
		if status := m.store.Status(); status != "" {
			return m.theme.StatusPending.Render(status)
		}
		return ""
	}
	if m.notificationError {
		return m.theme.StatusError.Render("✗ " + m.notification)
	}
	return m.theme.StatusSuccess.Render("✓ " + m.notification)
}

func (m Model) renderHelp() string {
	sections := []string{m.theme.Title.Render("Help")}

	for _, group := range m.keymap.FullHelp() {
		var lines []string
		for _, binding := range group {
			help := binding.Help()
			lines = append(lines, m.theme.Bold.Render(padRight(help.Key, 10))+m.theme.Normal.Render(help.Desc))
		}
		sections = append(sections, strings.Join(lines, "\n"), "")
	}

	sections = append(sections,
		m.theme.Subtitle.Render("Each list shows its own shortcuts in the footer."),
	)
	if name := m.store.ThemeName(); name != "" {
		sections = append(sections, lipgloss.NewStyle().Foreground(m.theme.Muted).Render("Theme: "+name))
	}
	sections = append(sections, lipgloss.NewStyle().Foreground(m.theme.Muted).Render("[?] Close help"))

	return m.theme.Box.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s + " "
	}
	return s + strings.Repeat(" ", width-len(s))
}

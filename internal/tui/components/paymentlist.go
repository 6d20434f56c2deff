package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ogiraldo/inkflow/internal/format"
	"github.com/ogiraldo/inkflow/internal/model"
	"github.com/ogiraldo/inkflow/internal/tui/themes"
)

// PaymentListModel manages the payment list view.
type PaymentListModel struct {
	theme    themes.Theme
	payments []model.Payment
	page     model.Page[model.Payment]
	table    table.Model
	cursor   int
	width    int
	height   int
	fetching bool
}

// NewPaymentList creates the payment list.
func NewPaymentList(theme themes.Theme) PaymentListModel {
	columns := []table.Column{
		{Title: "Payee", Width: 26},
		{Title: "Period", Width: 26},
		{Title: "Total", Width: 14},
		{Title: "Status", Width: 12},
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

	return PaymentListModel{
		theme:  theme,
		table:  t,
		width:  80,
		height: 24,
	}
}

// SetData replaces the list content after a store refresh.
func (m *PaymentListModel) SetData(page model.Page[model.Payment], fetching bool) {
	m.page = page
	m.payments = page.Content
	m.fetching = fetching
	if m.cursor >= len(m.payments) {
		m.cursor = max(0, len(m.payments)-1)
	}
	m.table.SetCursor(m.cursor)
}

// Update handles messages.
func (m PaymentListModel) Update(msg tea.Msg) (PaymentListModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "j", "down":
			m.cursor = min(m.cursor+1, len(m.payments)-1)
			m.table.SetCursor(m.cursor)

		case "k", "up":
			m.cursor = max(m.cursor-1, 0)
			m.table.SetCursor(m.cursor)

		case "enter":
			if m.cursor < len(m.payments) {
				id := m.payments[m.cursor].ID
				return m, func() tea.Msg { return PaymentSelectedMsg{PaymentID: id} }
			}

		case "n", "right":
			if m.page.Number+1 < m.page.TotalPages {
				page := m.page.Number + 1
				return m, func() tea.Msg { return PaymentPageMsg{Page: page} }
			}

		case "p", "left":
			if m.page.Number > 0 {
				page := m.page.Number - 1
				return m, func() tea.Msg { return PaymentPageMsg{Page: page} }
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.SetHeight(max(1, m.height-8))
	}

	return m, nil
}

// View renders the payment list.
func (m PaymentListModel) View() string {
	m.table.SetRows(m.buildTableRows())

	status := fmt.Sprintf("%d payments", m.page.TotalElements)
	if m.page.TotalPages > 1 {
		status += fmt.Sprintf(" | page %d/%d", m.page.Number+1, m.page.TotalPages)
	}
	if m.fetching {
		status += " | " + m.theme.StatusPending.Render("loading…")
	}

	footer := lipgloss.NewStyle().Foreground(m.theme.Muted).
		Render(strings.Join([]string{"[↑↓] Navigate", "[Enter] Open", "[←→] Page"}, "  "))

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.theme.Title.Render("Payments"),
		m.theme.Subtitle.Render(status),
		m.table.View(),
		footer,
	)
}

// Resize updates the component size.
func (m *PaymentListModel) Resize(width, height int) {
	m.width = width
	m.height = height
	m.table.SetHeight(max(1, height-8))
}

func (m *PaymentListModel) buildTableRows() []table.Row {
	rows := make([]table.Row, 0, len(m.payments))
	for _, p := range m.payments {
		status := "pending"
		if p.ApprovedAt != nil {
			status = "approved"
		}
		period := format.Date(p.AccountingPeriod.StartsOn) + " - " + format.Date(p.AccountingPeriod.EndsOn)
		rows = append(rows, table.Row{
			truncate(p.Payee.Name, 26),
			period,
			format.Money(p.GrandTotalAmount),
			status,
		})
	}
	return rows
}

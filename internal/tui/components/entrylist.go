package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ogiraldo/inkflow/internal/format"
	"github.com/ogiraldo/inkflow/internal/model"
	"github.com/ogiraldo/inkflow/internal/tui/themes"
)

// EntryListMode represents the current mode of the ledger list.
type EntryListMode int

const (
	EntryModeNormal EntryListMode = iota
	EntryModeFilter
)

// EntryListModel manages one cash-flow ledger view (expenses or revenues).
type EntryListModel struct {
	theme       themes.Theme
	entryType   model.EntryType
	entries     []model.Entry
	page        model.Page[model.Entry]
	selected    map[int64]bool
	filterInput textinput.Model
	table       table.Model
	yearMonth   string
	mode        EntryListMode
	cursor      int
	width       int
	height      int
	fetching    bool
}

// NewEntryList creates a ledger list for the given entry type.
func NewEntryList(entryType model.EntryType, theme themes.Theme) EntryListModel {
	columns := []table.Column{
		{Title: "Date", Width: 12},
		{Title: "Description", Width: 32},
		{Title: "Category", Width: 20},
		{Title: "Amount", Width: 14},
		{Title: " ", Width: 3},
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

	filterInput := textinput.New()
	filterInput.Placeholder = "2021-10"
	filterInput.CharLimit = 7

	return EntryListModel{
		theme:       theme,
		entryType:   entryType,
		selected:    make(map[int64]bool),
		table:       t,
		filterInput: filterInput,
		width:       80,
		height:      24,
	}
}

// Filtering reports whether the month filter input is capturing keys, so
// the parent knows not to treat digits as global shortcuts.
func (m EntryListModel) Filtering() bool {
	return m.mode == EntryModeFilter
}

// SetData replaces the list content after a store refresh.
func (m *EntryListModel) SetData(page model.Page[model.Entry], selectedIDs []int64, fetching bool) {
	m.page = page
	m.entries = page.Content
	m.fetching = fetching
	m.selected = make(map[int64]bool, len(selectedIDs))
	for _, id := range selectedIDs {
		m.selected[id] = true
	}
	if m.cursor >= len(m.entries) {
		m.cursor = max(0, len(m.entries)-1)
	}
	m.table.SetCursor(m.cursor)
}

// Update handles messages.
func (m EntryListModel) Update(msg tea.Msg) (EntryListModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.mode {
		case EntryModeNormal:
			return m, m.handleNormalMode(msg)
		case EntryModeFilter:
			return m.handleFilterMode(msg)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.SetHeight(max(1, m.height-8))
	}

	return m, nil
}

func (m *EntryListModel) handleNormalMode(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "j", "down":
		m.cursor = min(m.cursor+1, len(m.entries)-1)
		m.table.SetCursor(m.cursor)

	case "k", "up":
		m.cursor = max(m.cursor-1, 0)
		m.table.SetCursor(m.cursor)

	case "x", " ":
		if m.cursor < len(m.entries) {
			entry := m.entries[m.cursor]
			return func() tea.Msg {
				return EntrySelectedMsg{Type: m.entryType, EntryID: entry.ID}
			}
		}

	case "enter":
		if m.cursor < len(m.entries) {
			entry := m.entries[m.cursor]
			return func() tea.Msg {
				return EntryEditMsg{Entry: entry}
			}
		}

	case "a":
		return func() tea.Msg {
			return EntryCreateMsg{Type: m.entryType}
		}

	case "d":
		if len(m.selected) > 0 {
			return func() tea.Msg {
				return EntryRemoveMsg{Type: m.entryType}
			}
		}

	case "n", "right":
		if m.page.Number+1 < m.page.TotalPages {
			page := m.page.Number + 1
			return func() tea.Msg {
				return EntryPageMsg{Type: m.entryType, Page: page}
			}
		}

	case "p", "left":
		if m.page.Number > 0 {
			page := m.page.Number - 1
			return func() tea.Msg {
				return EntryPageMsg{Type: m.entryType, Page: page}
			}
		}

	case "/":
		m.mode = EntryModeFilter
		m.filterInput.SetValue(m.yearMonth)
		m.filterInput.Focus()
		return textinput.Blink
	}

	return nil
}

func (m EntryListModel) handleFilterMode(msg tea.KeyMsg) (EntryListModel, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.yearMonth = strings.TrimSpace(m.filterInput.Value())
		m.mode = EntryModeNormal
		m.filterInput.Blur()
		ym := m.yearMonth
		return m, func() tea.Msg {
			return EntryFilterMsg{Type: m.entryType, YearMonth: ym}
		}

	case "esc":
		m.mode = EntryModeNormal
		m.filterInput.Blur()
		return m, nil

	default:
		var cmd tea.Cmd
		m.filterInput, cmd = m.filterInput.Update(msg)
		return m, cmd
	}
}

// View renders the ledger list.
func (m EntryListModel) View() string {
	if m.mode == EntryModeFilter {
		return m.renderFilterView()
	}

	m.table.SetRows(m.buildTableRows())

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderHeader(),
		m.table.View(),
		m.renderFooter(),
	)
}

func (m EntryListModel) renderFilterView() string {
	box := m.theme.BorderedBox.
		Width(44).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.theme.Title.Render("Filter by month"),
			m.filterInput.View(),
			lipgloss.NewStyle().Foreground(m.theme.Muted).Render("YYYY-MM, empty clears. Enter applies, Esc cancels"),
		))

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

func (m EntryListModel) renderHeader() string {
	title := "Expenses"
	if m.entryType == model.EntryTypeRevenue {
		title = "Revenues"
	}

	status := fmt.Sprintf("%d entries", m.page.TotalElements)
	if m.page.TotalPages > 1 {
		status += fmt.Sprintf(" | page %d/%d", m.page.Number+1, m.page.TotalPages)
	}
	if len(m.selected) > 0 {
		status += fmt.Sprintf(" | %d selected", len(m.selected))
	}
	if m.yearMonth != "" {
		status += fmt.Sprintf(" | month: %s", m.yearMonth)
	}
	if m.fetching {
		status += " | " + m.theme.StatusPending.Render("loading…")
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.theme.Title.Render(title),
		m.theme.Subtitle.Render(status),
	)
}

func (m EntryListModel) renderFooter() string {
	hints := []string{
		"[↑↓] Navigate",
		"[x] Select",
		"[Enter] Edit",
		"[a] New",
		"[d] Delete selected",
		"[/] Month",
		"[←→] Page",
	}
	return lipgloss.NewStyle().Foreground(m.theme.Muted).Render(strings.Join(hints, "  "))
}

func (m EntryListModel) buildTableRows() []table.Row {
	rows := make([]table.Row, 0, len(m.entries))
	for _, e := range m.entries {
		mark := " "
		if m.selected[e.ID] {
			mark = "✓"
		}
		rows = append(rows, table.Row{
			format.Date(e.TransactedOn),
			truncate(e.Description, 32),
			truncate(e.Category.Name, 20),
			format.Money(e.Amount),
			mark,
		})
	}
	return rows
}

// Resize updates the component size.
func (m *EntryListModel) Resize(width, height int) {
	m.width = width
	m.height = height
	m.table.SetHeight(max(1, height-8))
}

// truncate shortens s to maxLen characters, counting runes so multibyte
// text is never cut mid-character.
func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen-3]) + "..."
}

package components

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ogiraldo/inkflow/internal/format"
	"github.com/ogiraldo/inkflow/internal/model"
	"github.com/ogiraldo/inkflow/internal/tui/themes"
)

// entryFormFocus identifies the focused control of the entry editor.
type entryFormFocus int

const (
	focusDescription entryFormFocus = iota
	focusAmount
	focusDate
	focusCategory
)

// EntryFormModel edits one cash-flow entry. The entry type is fixed when
// the form opens; editing an existing entry prepopulates every field with
// the date converted to display format.
type EntryFormModel struct {
	theme      themes.Theme
	entryType  model.EntryType
	entryID    *int64
	categories []model.CategorySummary

	description   textinput.Model
	amount        textinput.Model
	date          textinput.Model
	categoryInput textinput.Model

	focus          entryFormFocus
	categoryCursor int
	categoryID     int64
	newCategory    bool
	forbidden      bool
	errors         map[string]string
	width          int
	height         int
}

// NewEntryForm creates the editor. A nil entry means create; otherwise the
// form opens prepopulated for an update.
func NewEntryForm(entry *model.Entry, entryType model.EntryType, theme themes.Theme) EntryFormModel {
	description := textinput.New()
	description.Placeholder = "Description"
	description.CharLimit = 120
	description.Focus()

	amount := textinput.New()
	amount.Placeholder = "0,00"
	amount.CharLimit = 16

	date := textinput.New()
	date.Placeholder = time.Now().Format(format.DisplayDate)
	date.CharLimit = 10

	categoryInput := textinput.New()
	categoryInput.Placeholder = "New category name"
	categoryInput.CharLimit = 60

	m := EntryFormModel{
		theme:         theme,
		entryType:     entryType,
		description:   description,
		amount:        amount,
		date:          date,
		categoryInput: categoryInput,
		errors:        make(map[string]string),
		width:         80,
		height:        24,
	}

	if entry != nil {
		id := entry.ID
		m.entryID = &id
		m.entryType = entry.Type
		m.description.SetValue(entry.Description)
		m.amount.SetValue(strings.ReplaceAll(strconv.FormatFloat(entry.Amount, 'f', 2, 64), ".", ","))
		m.date.SetValue(format.Date(entry.TransactedOn))
		m.categoryID = entry.Category.ID
	}

	return m
}

// SetCategories replaces the category picker options, keeping the current
// choice when it still exists.
func (m *EntryFormModel) SetCategories(categories []model.CategorySummary) {
	m.categories = categories
	m.categoryCursor = 0
	for i, c := range categories {
		if c.ID == m.categoryID {
			m.categoryCursor = i
			return
		}
	}
	if m.categoryID != 0 {
		// The chosen category no longer exists (deleted elsewhere).
		m.categoryID = 0
	}
}

// SetForbidden marks that the caller may not manage categories at all. The
// form stays open but the picker renders an access notice.
func (m *EntryFormModel) SetForbidden(forbidden bool) {
	m.forbidden = forbidden
}

// SetServerError shows a form-wide error for a rejected submit.
func (m *EntryFormModel) SetServerError(message string) {
	if m.errors == nil {
		m.errors = make(map[string]string)
	}
	m.errors["server"] = message
}

// SelectCategory points the picker at the given category if present.
func (m *EntryFormModel) SelectCategory(categoryID int64) {
	m.categoryID = categoryID
	for i, c := range m.categories {
		if c.ID == categoryID {
			m.categoryCursor = i
			return
		}
	}
}

// Editing reports whether the form updates an existing entry.
func (m EntryFormModel) Editing() bool {
	return m.entryID != nil
}

// EntryID returns the id of the entry being edited, or nil on create.
func (m EntryFormModel) EntryID() *int64 {
	return m.entryID
}

// Update handles messages.
func (m EntryFormModel) Update(msg tea.Msg) (EntryFormModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if size, isSize := msg.(tea.WindowSizeMsg); isSize {
			m.width = size.Width
			m.height = size.Height
		}
		return m, nil
	}

	if m.newCategory {
		return m.handleNewCategory(keyMsg)
	}

	switch keyMsg.String() {
	case "esc":
		return m, func() tea.Msg { return BackMsg{} }

	case "tab", "shift+tab":
		m.advanceFocus(keyMsg.String() == "shift+tab")
		return m, nil

	case "ctrl+s":
		return m, m.submit()
	}

	switch m.focus {
	case focusCategory:
		return m, m.handleCategoryKeys(keyMsg)
	default:
		return m.updateFocusedInput(keyMsg)
	}
}

func (m *EntryFormModel) handleCategoryKeys(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "j", "down":
		m.categoryCursor = min(m.categoryCursor+1, len(m.categories)-1)

	case "k", "up":
		m.categoryCursor = max(m.categoryCursor-1, 0)

	case "enter", "x", " ":
		if m.categoryCursor < len(m.categories) {
			m.categoryID = m.categories[m.categoryCursor].ID
			delete(m.errors, "category")
		}

	case "ctrl+n":
		if !m.forbidden {
			m.newCategory = true
			m.categoryInput.SetValue("")
			m.categoryInput.Focus()
			return textinput.Blink
		}

	case "ctrl+d":
		if !m.forbidden && m.categoryCursor < len(m.categories) {
			id := m.categories[m.categoryCursor].ID
			return func() tea.Msg {
				return CategoryDeleteMsg{CategoryID: id}
			}
		}
	}
	return nil
}

func (m EntryFormModel) handleNewCategory(msg tea.KeyMsg) (EntryFormModel, tea.Cmd) {
	switch msg.String() {
	case "enter":
		name := strings.TrimSpace(m.categoryInput.Value())
		m.newCategory = false
		m.categoryInput.Blur()
		if name == "" {
			return m, nil
		}
		input := model.CategoryInput{Name: name, Type: m.entryType}
		return m, func() tea.Msg {
			return CategoryCreateMsg{Input: input}
		}

	case "esc":
		m.newCategory = false
		m.categoryInput.Blur()
		return m, nil

	default:
		var cmd tea.Cmd
		m.categoryInput, cmd = m.categoryInput.Update(msg)
		return m, cmd
	}
}

func (m EntryFormModel) updateFocusedInput(msg tea.KeyMsg) (EntryFormModel, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus {
	case focusDescription:
		m.description, cmd = m.description.Update(msg)
	case focusAmount:
		m.amount, cmd = m.amount.Update(msg)
	case focusDate:
		m.date, cmd = m.date.Update(msg)
	}
	return m, cmd
}

func (m *EntryFormModel) advanceFocus(backwards bool) {
	order := []entryFormFocus{focusDescription, focusAmount, focusDate, focusCategory}
	idx := 0
	for i, f := range order {
		if f == m.focus {
			idx = i
			break
		}
	}
	if backwards {
		idx = (idx + len(order) - 1) % len(order)
	} else {
		idx = (idx + 1) % len(order)
	}
	m.focus = order[idx]

	m.description.Blur()
	m.amount.Blur()
	m.date.Blur()
	switch m.focus {
	case focusDescription:
		m.description.Focus()
	case focusAmount:
		m.amount.Focus()
	case focusDate:
		m.date.Focus()
	}
}

// submit validates every field and emits the payload when all pass.
func (m *EntryFormModel) submit() tea.Cmd {
	m.errors = make(map[string]string)

	description := strings.TrimSpace(m.description.Value())
	if description == "" {
		m.errors["description"] = "description is required"
	}

	amount, err := ParseAmount(m.amount.Value())
	if err != nil {
		m.errors["amount"] = err.Error()
	}

	transactedOn, err := ParseEntryDate(m.date.Value(), time.Now())
	if err != nil {
		m.errors["date"] = err.Error()
	}

	if m.categoryID == 0 {
		m.errors["category"] = "pick a category"
	}

	if len(m.errors) > 0 {
		return nil
	}

	input := model.EntryInput{
		Type:         m.entryType,
		Description:  description,
		Amount:       amount,
		TransactedOn: transactedOn,
		Category:     model.CategoryRef{ID: m.categoryID},
	}
	entryID := m.entryID
	return func() tea.Msg {
		return EntryFormSubmitMsg{EntryID: entryID, Input: input}
	}
}

// ParseAmount parses a money value typed in the BR convention: comma is the
// decimal separator and dots are thousands grouping, so "1.234,56" and
// "10.500" both read the dots as grouping.
func ParseAmount(raw string) (float64, error) {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.ReplaceAll(cleaned, ".", "")
	cleaned = strings.ReplaceAll(cleaned, ",", ".")
	if cleaned == "" {
		return 0, fmt.Errorf("amount is required")
	}
	amount, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, fmt.Errorf("amount must be a number")
	}
	if amount <= 0 {
		return 0, fmt.Errorf("amount must be positive")
	}
	return amount, nil
}

// ParseEntryDate converts a display-format date into the wire format,
// rejecting dates after today.
func ParseEntryDate(raw string, now time.Time) (string, error) {
	parsed, err := format.ParseDisplayDate(strings.TrimSpace(raw))
	if err != nil {
		return "", fmt.Errorf("date must look like %s", now.Format(format.DisplayDate))
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if parsed.After(today) {
		return "", fmt.Errorf("date cannot be in the future")
	}
	return parsed.Format(format.APIDate), nil
}

// View renders the editor.
func (m EntryFormModel) View() string {
	title := "New expense"
	if m.entryType == model.EntryTypeRevenue {
		title = "New revenue"
	}
	if m.Editing() {
		title = strings.Replace(title, "New", "Edit", 1)
	}

	sections := []string{
		m.theme.Title.Render(title),
		m.renderField("Description", m.description.View(), m.errors["description"], m.focus == focusDescription),
		m.renderField("Amount", m.amount.View(), m.errors["amount"], m.focus == focusAmount),
		m.renderField("Date", m.date.View(), m.errors["date"], m.focus == focusDate),
		m.renderCategories(),
	}
	if serverErr := m.errors["server"]; serverErr != "" {
		sections = append(sections, m.theme.StatusError.Render(serverErr))
	}
	sections = append(sections,
		lipgloss.NewStyle().Foreground(m.theme.Muted).Render("[Tab] Next field  [Ctrl+S] Save  [Esc] Cancel"))

	return m.theme.Box.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m EntryFormModel) renderField(label, input, fieldErr string, focused bool) string {
	style := m.theme.Label
	if focused {
		style = m.theme.Bold
	}
	parts := []string{style.Render(label), input}
	if fieldErr != "" {
		parts = append(parts, m.theme.FieldError.Render(fieldErr))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m EntryFormModel) renderCategories() string {
	label := m.theme.Label
	if m.focus == focusCategory {
		label = m.theme.Bold
	}
	parts := []string{label.Render("Category")}

	if m.forbidden {
		parts = append(parts, m.theme.StatusWarning.Render("you are not allowed to manage categories"))
		return lipgloss.JoinVertical(lipgloss.Left, parts...)
	}

	if m.newCategory {
		parts = append(parts, m.categoryInput.View())
	}

	for i, c := range m.categories {
		line := "  " + c.Name
		if c.ID == m.categoryID {
			line = "● " + c.Name
		}
		if m.focus == focusCategory && i == m.categoryCursor {
			line = m.theme.Highlighted.Render(line)
		}
		parts = append(parts, line)
	}

	if fieldErr := m.errors["category"]; fieldErr != "" {
		parts = append(parts, m.theme.FieldError.Render(fieldErr))
	}
	if m.focus == focusCategory && !m.newCategory {
		parts = append(parts, lipgloss.NewStyle().Foreground(m.theme.Muted).Render("[Ctrl+N] New category  [Ctrl+D] Delete highlighted"))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

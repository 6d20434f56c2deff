package components

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ogiraldo/inkflow/internal/api"
	"github.com/ogiraldo/inkflow/internal/form"
	"github.com/ogiraldo/inkflow/internal/format"
	"github.com/ogiraldo/inkflow/internal/model"
	"github.com/ogiraldo/inkflow/internal/tui/themes"
)

// userFormField pairs a declarative field with its text input and the tab
// that owns it.
type userFormField struct {
	field      *form.Field
	input      textinput.Model
	section    form.Section
	editorOnly bool
	sensitive  bool
	masked     func(string) string
}

// UserFormModel edits one user across two tabs: personal data and bank
// account. Server-side violations land on the matching fields after a
// rejected submit, and the form switches tabs only when a strict majority
// of them belongs to the other tab.
type UserFormModel struct {
	theme  themes.Theme
	userID *int64

	fields []*userFormField
	focus  int

	role           model.Role
	managerAllowed bool
	sensitiveLock  bool
	section        form.Section
	globalErrors   []string
	width          int
	height         int
}

// NewUserForm creates the editor. A nil user means create; otherwise the
// form opens prepopulated. managerAllowed gates whether the MANAGER role
// can be picked at all.
func NewUserForm(user *model.User, managerAllowed bool, theme themes.Theme) UserFormModel {
	m := UserFormModel{
		theme:          theme,
		role:           model.RoleAssistant,
		managerAllowed: managerAllowed,
		section:        form.SectionPersonal,
		width:          80,
		height:         24,
	}

	m.fields = []*userFormField{
		m.newField("name", "Name", "required,min=3", form.SectionPersonal),
		m.newField("email", "E-mail", "required,email", form.SectionPersonal),
		m.newField("phone", "Phone", "required,numeric,len=11", form.SectionPersonal),
		m.newField("taxpayerId", "Taxpayer id", "required,numeric,len=11", form.SectionPersonal),
		m.newField("birthdate", "Birthdate", "required,datetime=02/01/2006", form.SectionPersonal),
		m.newField("bio", "Bio", "", form.SectionPersonal),
		m.newField("location.state", "State", "required", form.SectionPersonal),
		m.newField("location.city", "City", "required", form.SectionPersonal),
		m.newField("skills", "Skills (name:pct, ...)", "", form.SectionPersonal),
		m.newField("pricePerWord", "Price per word", "", form.SectionPersonal),
		m.newField("bankAccount.bankCode", "Bank code", "required,numeric", form.SectionBank),
		m.newField("bankAccount.agency", "Agency", "required,numeric", form.SectionBank),
		m.newField("bankAccount.number", "Account number", "required,numeric", form.SectionBank),
		m.newField("bankAccount.digit", "Digit", "required,numeric,max=2", form.SectionBank),
	}

	m.fieldByName("phone").masked = format.Phone
	m.fieldByName("taxpayerId").masked = format.TaxpayerID
	m.fieldByName("skills").editorOnly = true
	m.fieldByName("pricePerWord").editorOnly = true
	for _, f := range m.fields {
		if f.section == form.SectionBank {
			f.editorOnly = true
		}
	}
	m.fieldByName("email").sensitive = true
	m.fieldByName("taxpayerId").sensitive = true
	m.fieldByName("bankAccount.bankCode").sensitive = true
	m.fieldByName("bankAccount.agency").sensitive = true
	m.fieldByName("bankAccount.number").sensitive = true
	m.fieldByName("bankAccount.digit").sensitive = true

	if user != nil {
		m.prepopulate(user)
	}

	m.focusField(0)
	return m
}

func (m *UserFormModel) newField(name, label, rules string, section form.Section) *userFormField {
	input := textinput.New()
	input.Placeholder = label
	input.CharLimit = 120
	return &userFormField{
		field: &form.Field{
			Path:  form.ParsePath(name),
			Label: label,
			Rules: rules,
		},
		input:   input,
		section: section,
	}
}

func (m *UserFormModel) fieldByName(name string) *userFormField {
	for _, f := range m.fields {
		if f.field.Name() == name {
			return f
		}
	}
	return nil
}

func (m *UserFormModel) prepopulate(user *model.User) {
	id := user.ID
	m.userID = &id
	m.role = user.Role
	m.sensitiveLock = !user.CanSensitiveDataBeUpdated

	set := func(name, value string) {
		if f := m.fieldByName(name); f != nil {
			f.input.SetValue(value)
		}
	}
	set("name", user.Name)
	set("email", user.Email)
	set("phone", user.Phone)
	set("taxpayerId", user.TaxpayerID)
	set("birthdate", format.Date(user.Birthdate))
	set("bio", user.Bio)
	set("location.state", user.Location.State)
	set("location.city", user.Location.City)

	if user.IsEditor() {
		skills := make([]string, 0, len(user.Skills))
		for _, s := range user.Skills {
			skills = append(skills, fmt.Sprintf("%s:%d", s.Name, s.Percentage))
		}
		set("skills", strings.Join(skills, ", "))
		set("pricePerWord", strings.ReplaceAll(strconv.FormatFloat(user.PricePerWord, 'f', 2, 64), ".", ","))
		if user.BankAccount != nil {
			set("bankAccount.bankCode", user.BankAccount.BankCode)
			set("bankAccount.agency", user.BankAccount.Agency)
			set("bankAccount.number", user.BankAccount.Number)
			set("bankAccount.digit", user.BankAccount.Digit)
		}
	}
}

// Editing reports whether the form updates an existing user.
func (m UserFormModel) Editing() bool {
	return m.userID != nil
}

// Section returns the active tab.
func (m UserFormModel) Section() form.Section {
	return m.section
}

// Role returns the currently picked role.
func (m UserFormModel) Role() model.Role {
	return m.role
}

// SetViolations maps server-side rejections back onto the fields and moves
// to the tab holding most of them.
func (m *UserFormModel) SetViolations(violations []api.FieldViolation) {
	fields := make([]*form.Field, 0, len(m.fields))
	for _, f := range m.fields {
		f.field.Errors = nil
		fields = append(fields, f.field)
	}

	unmatched := form.ApplyViolations(fields, violations)
	m.globalErrors = nil
	for _, v := range unmatched {
		m.globalErrors = append(m.globalErrors, v.UserMessage)
	}

	m.section = form.NextActiveSection(m.section, violations)
}

// SetGlobalError replaces the form-wide error line, for failures that carry
// no field violations (e.g. a network error).
func (m *UserFormModel) SetGlobalError(message string) {
	m.globalErrors = []string{message}
}

// Update handles messages.
func (m UserFormModel) Update(msg tea.Msg) (UserFormModel, tea.Cmd) {
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
		return m, func() tea.Msg { return BackMsg{} }

	case "ctrl+b":
		m.switchSection()
		return m, nil

	case "ctrl+r":
		m.cycleRole()
		return m, nil

	case "tab":
		m.focusNext(false)
		return m, nil

	case "shift+tab":
		m.focusNext(true)
		return m, nil

	case "ctrl+s":
		return m, m.submit()
	}

	active := m.activeFields()
	if m.focus < len(active) {
		f := active[m.focus]
		if f.sensitive && m.sensitiveLock {
			return m, nil
		}
		var cmd tea.Cmd
		f.input, cmd = f.input.Update(keyMsg)
		return m, cmd
	}
	return m, nil
}

// activeFields returns the fields shown on the current tab for the current
// role, in display order.
func (m *UserFormModel) activeFields() []*userFormField {
	var active []*userFormField
	for _, f := range m.fields {
		if f.section != m.section {
			continue
		}
		if f.editorOnly && m.role != model.RoleEditor {
			continue
		}
		active = append(active, f)
	}
	return active
}

func (m *UserFormModel) switchSection() {
	if m.role != model.RoleEditor {
		return
	}
	if m.section == form.SectionPersonal {
		m.section = form.SectionBank
	} else {
		m.section = form.SectionPersonal
	}
	m.focusField(0)
}

func (m *UserFormModel) cycleRole() {
	if m.Editing() {
		// Role changes are not offered on update.
		return
	}
	roles := []model.Role{model.RoleEditor, model.RoleAssistant}
	if m.managerAllowed {
		roles = append(roles, model.RoleManager)
	}
	for i, r := range roles {
		if r == m.role {
			m.role = roles[(i+1)%len(roles)]
			break
		}
	}
	if m.role != model.RoleEditor && m.section == form.SectionBank {
		m.section = form.SectionPersonal
	}
	m.focusField(0)
}

func (m *UserFormModel) focusNext(backwards bool) {
	active := m.activeFields()
	if len(active) == 0 {
		return
	}
	if backwards {
		m.focusField((m.focus + len(active) - 1) % len(active))
	} else {
		m.focusField((m.focus + 1) % len(active))
	}
}

func (m *UserFormModel) focusField(idx int) {
	for _, f := range m.fields {
		f.input.Blur()
	}
	active := m.activeFields()
	if len(active) == 0 {
		m.focus = 0
		return
	}
	if idx >= len(active) {
		idx = 0
	}
	m.focus = idx
	active[idx].input.Focus()
}

// submit validates every visible field on both tabs, lands on the tab with
// the majority of local errors, and emits the payload when all pass.
func (m *UserFormModel) submit() tea.Cmd {
	m.globalErrors = nil

	var invalid []api.FieldViolation
	for _, f := range m.fields {
		if f.editorOnly && m.role != model.RoleEditor {
			f.field.Errors = nil
			continue
		}
		f.field.Value = f.input.Value()
		if !f.field.Validate() {
			invalid = append(invalid, api.FieldViolation{Name: f.field.Name()})
		}
	}

	input, buildErrs := m.buildInput()
	if len(buildErrs) > 0 || len(invalid) > 0 {
		m.globalErrors = append(m.globalErrors, buildErrs...)
		m.section = form.NextActiveSection(m.section, invalid)
		m.focusField(0)
		return nil
	}

	userID := m.userID
	return func() tea.Msg {
		return UserFormSubmitMsg{UserID: userID, Input: input}
	}
}

func (m *UserFormModel) buildInput() (model.UserInput, []string) {
	var errs []string

	value := func(name string) string {
		if f := m.fieldByName(name); f != nil {
			return strings.TrimSpace(f.input.Value())
		}
		return ""
	}

	birthdate := ""
	if raw := value("birthdate"); raw != "" {
		parsed, err := format.ParseDisplayDate(raw)
		if err == nil {
			birthdate = parsed.Format(format.APIDate)
		}
	}

	input := model.UserInput{
		Name:       value("name"),
		Bio:        value("bio"),
		Birthdate:  birthdate,
		Email:      value("email"),
		Phone:      format.OnlyDigits(value("phone")),
		TaxpayerID: format.OnlyDigits(value("taxpayerId")),
		Role:       m.role,
		Location: model.Location{
			Country: "BR",
			State:   value("location.state"),
			City:    value("location.city"),
		},
	}

	if m.role == model.RoleEditor {
		skills, err := ParseSkills(value("skills"))
		if err != nil {
			errs = append(errs, err.Error())
		}
		input.Skills = skills

		price, err := ParseAmount(value("pricePerWord"))
		if err != nil {
			errs = append(errs, "price per word must be a positive number")
		}
		input.PricePerWord = price

		input.BankAccount = &model.BankAccount{
			BankCode: value("bankAccount.bankCode"),
			Agency:   value("bankAccount.agency"),
			Number:   value("bankAccount.number"),
			Digit:    value("bankAccount.digit"),
			Type:     model.BankAccountChecking,
		}
	}

	return input, errs
}

// ParseSkills parses "name:percentage" pairs separated by commas, e.g.
// "copywriting:80, review:55".
func ParseSkills(raw string) ([]model.Skill, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	var skills []model.Skill
	for _, pair := range strings.Split(raw, ",") {
		name, pct, found := strings.Cut(strings.TrimSpace(pair), ":")
		if !found {
			return nil, fmt.Errorf("skills must look like name:percentage")
		}
		percentage, err := strconv.Atoi(strings.TrimSpace(pct))
		if err != nil || percentage < 0 || percentage > 100 {
			return nil, fmt.Errorf("skill percentage must be between 0 and 100")
		}
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, fmt.Errorf("skill name cannot be empty")
		}
		skills = append(skills, model.Skill{Name: name, Percentage: percentage})
	}
	return skills, nil
}

// View renders the editor.
func (m UserFormModel) View() string {
	title := "New user"
	if m.Editing() {
		title = "Edit user"
	}

	sections := []string{
		m.theme.Title.Render(title),
		m.renderTabs(),
		m.renderRole(),
	}

	active := m.activeFields()
	for i, f := range active {
		sections = append(sections, m.renderField(f, i == m.focus))
	}

	for _, e := range m.globalErrors {
		sections = append(sections, m.theme.StatusError.Render(e))
	}

	hints := "[Tab] Next field  [Ctrl+S] Save  [Esc] Cancel"
	if !m.Editing() {
		hints = "[Ctrl+R] Role  " + hints
	}
	if m.role == model.RoleEditor {
		hints = "[Ctrl+B] Switch tab  " + hints
	}
	sections = append(sections, lipgloss.NewStyle().Foreground(m.theme.Muted).Render(hints))

	return m.theme.Box.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m UserFormModel) renderTabs() string {
	if m.role != model.RoleEditor {
		return ""
	}
	personal := m.theme.TabInactive.Render(form.SectionPersonal.String())
	bank := m.theme.TabInactive.Render(form.SectionBank.String())
	if m.section == form.SectionPersonal {
		personal = m.theme.TabActive.Render(form.SectionPersonal.String())
	} else {
		bank = m.theme.TabActive.Render(form.SectionBank.String())
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, personal, " ", bank)
}

func (m UserFormModel) renderRole() string {
	label := m.theme.Label.Render("Role: ")
	role := m.theme.Bold.Render(string(m.role))
	if m.Editing() {
		return label + role
	}
	return label + role + lipgloss.NewStyle().Foreground(m.theme.Muted).Render("  (Ctrl+R cycles)")
}

func (m UserFormModel) renderField(f *userFormField, focused bool) string {
	style := m.theme.Label
	if focused {
		style = m.theme.Bold
	}
	label := f.field.Label
	if f.sensitive && m.sensitiveLock {
		label += " (locked)"
	}

	view := f.input.View()
	if f.masked != nil && !focused {
		if digits := format.OnlyDigits(f.input.Value()); len(digits) == 11 {
			view = f.masked(digits)
		}
	}

	parts := []string{style.Render(label), view}
	for _, e := range f.field.Errors {
		parts = append(parts, m.theme.FieldError.Render(e))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

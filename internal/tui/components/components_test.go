package components

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ogiraldo/inkflow/internal/api"
	"github.com/ogiraldo/inkflow/internal/form"
	"github.com/ogiraldo/inkflow/internal/model"
	"github.com/ogiraldo/inkflow/internal/tui/themes"
)

func keyPress(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestDoubleConfirm(t *testing.T) {
	c := NewDoubleConfirm("sure?", themes.Default)

	assert.False(t, c.Armed())
	assert.False(t, c.Press(), "first press arms")
	assert.True(t, c.Armed())
	assert.True(t, c.Press(), "second press confirms")
	assert.False(t, c.Armed(), "confirming disarms")

	assert.False(t, c.Press())
	c.Disarm()
	assert.False(t, c.Armed())
	assert.False(t, c.Press(), "after disarm the next press arms again")
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    float64
		wantErr bool
	}{
		{name: "comma decimals", in: "1234,56", want: 1234.56},
		{name: "grouped", in: "1.234,56", want: 1234.56},
		{name: "plain integer", in: "200", want: 200},
		{name: "dot is grouping, not decimals", in: "10.500", want: 10500},
		{name: "zero rejected", in: "0", wantErr: true},
		{name: "negative rejected", in: "-10,00", wantErr: true},
		{name: "empty rejected", in: "", wantErr: true},
		{name: "garbage rejected", in: "abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAmount(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 0.001)
		})
	}
}

func TestParseEntryDate(t *testing.T) {
	now := time.Date(2021, 10, 15, 12, 0, 0, 0, time.UTC)

	got, err := ParseEntryDate("01/10/2021", now)
	require.NoError(t, err)
	assert.Equal(t, "2021-10-01", got)

	// Today is allowed, tomorrow is not.
	_, err = ParseEntryDate("15/10/2021", now)
	assert.NoError(t, err)

	_, err = ParseEntryDate("16/10/2021", now)
	assert.Error(t, err)

	_, err = ParseEntryDate("2021-10-01", now)
	assert.Error(t, err, "wire format is not accepted as input")
}

func TestEntryForm_PrepopulatesOnEdit(t *testing.T) {
	entry := &model.Entry{
		ID:           7,
		Description:  "AWS bill",
		Type:         model.EntryTypeExpense,
		Amount:       120.5,
		TransactedOn: "2021-10-01",
		Category:     model.CategorySummary{ID: 3, Name: "Infra"},
	}

	f := NewEntryForm(entry, model.EntryTypeExpense, themes.Default)

	assert.True(t, f.Editing())
	assert.Equal(t, "AWS bill", f.description.Value())
	assert.Equal(t, "120,50", f.amount.Value())
	assert.Equal(t, "01/10/2021", f.date.Value(), "wire date converts to display format")
	assert.Equal(t, int64(3), f.categoryID)
}

func TestEntryForm_SubmitEmitsWireFormat(t *testing.T) {
	f := NewEntryForm(nil, model.EntryTypeRevenue, themes.Default)
	f.SetCategories([]model.CategorySummary{{ID: 9, Name: "Ads", Type: model.EntryTypeRevenue}})
	f.SelectCategory(9)
	f.description.SetValue("Sponsorship")
	f.amount.SetValue("1.500,00")
	f.date.SetValue(time.Now().AddDate(0, 0, -1).Format("02/01/2006"))

	cmd := f.submit()
	require.NotNil(t, cmd, "valid form must emit a submit message")

	msg, ok := cmd().(EntryFormSubmitMsg)
	require.True(t, ok)
	assert.Nil(t, msg.EntryID)
	assert.Equal(t, model.EntryTypeRevenue, msg.Input.Type)
	assert.Equal(t, "Sponsorship", msg.Input.Description)
	assert.InDelta(t, 1500.0, msg.Input.Amount, 0.001)
	assert.Regexp(t, `^\d{4}-\d{2}-\d{2}$`, msg.Input.TransactedOn)
	assert.Equal(t, model.CategoryRef{ID: 9}, msg.Input.Category)
}

func TestEntryForm_SubmitValidates(t *testing.T) {
	f := NewEntryForm(nil, model.EntryTypeExpense, themes.Default)

	cmd := f.submit()
	assert.Nil(t, cmd, "invalid form must not emit")
	assert.NotEmpty(t, f.errors["description"])
	assert.NotEmpty(t, f.errors["amount"])
	assert.NotEmpty(t, f.errors["date"])
	assert.NotEmpty(t, f.errors["category"])
}

func TestEntryForm_DeletedCategoryClearsChoice(t *testing.T) {
	f := NewEntryForm(nil, model.EntryTypeExpense, themes.Default)
	f.SetCategories([]model.CategorySummary{{ID: 1, Name: "Infra"}, {ID: 2, Name: "Office"}})
	f.SelectCategory(2)

	f.SetCategories([]model.CategorySummary{{ID: 1, Name: "Infra"}})
	assert.Zero(t, f.categoryID)
}

func TestParseSkills(t *testing.T) {
	skills, err := ParseSkills("copywriting:80, review:55")
	require.NoError(t, err)
	require.Len(t, skills, 2)
	assert.Equal(t, model.Skill{Name: "copywriting", Percentage: 80}, skills[0])
	assert.Equal(t, model.Skill{Name: "review", Percentage: 55}, skills[1])

	_, err = ParseSkills("copywriting")
	assert.Error(t, err)

	_, err = ParseSkills("copywriting:120")
	assert.Error(t, err)

	skills, err = ParseSkills("")
	require.NoError(t, err)
	assert.Nil(t, skills)
}

func TestUserForm_ViolationsSwitchTabOnMajority(t *testing.T) {
	f := NewUserForm(nil, false, themes.Default)
	f.role = model.RoleEditor

	require.Equal(t, form.SectionPersonal, f.Section())

	f.SetViolations([]api.FieldViolation{
		{Name: "bankAccount.agency", UserMessage: "must contain only digits"},
		{Name: "bankAccount.number", UserMessage: "required"},
		{Name: "name", UserMessage: "too short"},
	})

	assert.Equal(t, form.SectionBank, f.Section(), "majority of violations lives on the bank tab")
	agency := f.fieldByName("bankAccount.agency")
	require.NotNil(t, agency)
	assert.Equal(t, []string{"must contain only digits"}, agency.field.Errors)
}

func TestUserForm_ViolationTieKeepsTab(t *testing.T) {
	f := NewUserForm(nil, false, themes.Default)
	f.role = model.RoleEditor

	f.SetViolations([]api.FieldViolation{
		{Name: "bankAccount.agency", UserMessage: "bad"},
		{Name: "name", UserMessage: "bad"},
	})

	assert.Equal(t, form.SectionPersonal, f.Section())
}

func TestUserForm_ManagerRoleGated(t *testing.T) {
	f := NewUserForm(nil, false, themes.Default)
	seen := map[model.Role]bool{}
	for i := 0; i < 4; i++ {
		f.cycleRole()
		seen[f.Role()] = true
	}
	assert.False(t, seen[model.RoleManager], "manager cannot be picked without the privilege")

	f = NewUserForm(nil, true, themes.Default)
	seen = map[model.Role]bool{}
	for i := 0; i < 4; i++ {
		f.cycleRole()
		seen[f.Role()] = true
	}
	assert.True(t, seen[model.RoleManager])
}

func TestUserForm_BankTabOnlyForEditors(t *testing.T) {
	f := NewUserForm(nil, false, themes.Default)
	f.role = model.RoleAssistant

	f.switchSection()
	assert.Equal(t, form.SectionPersonal, f.Section(), "assistants have no bank tab")

	f.role = model.RoleEditor
	f.switchSection()
	assert.Equal(t, form.SectionBank, f.Section())
}

func TestUserForm_PrepopulateLocksSensitiveFields(t *testing.T) {
	user := &model.User{
		ID:                        4,
		Name:                      "Ana",
		Email:                     "ana@example.com",
		Phone:                     "27999990000",
		TaxpayerID:                "11122233344",
		Birthdate:                 "1990-05-20",
		Role:                      model.RoleAssistant,
		Location:                  model.Location{State: "ES", City: "Vitória"},
		CanSensitiveDataBeUpdated: false,
	}

	f := NewUserForm(user, true, themes.Default)

	assert.True(t, f.Editing())
	assert.True(t, f.sensitiveLock)
	assert.Equal(t, "Ana", f.fieldByName("name").input.Value())
	assert.Equal(t, "20/05/1990", f.fieldByName("birthdate").input.Value())
}

func TestUserDetail_StatusToggleDoubleConfirms(t *testing.T) {
	d := NewUserDetail(themes.Default)
	user := &model.User{ID: 1, Active: true, CanBeDeactivated: true}
	d.SetData(user, false, false)

	d, cmd := d.Update(keyPress("s"))
	assert.Nil(t, cmd, "first press only arms")
	assert.True(t, d.confirm.Armed())

	d, cmd = d.Update(keyPress("s"))
	require.NotNil(t, cmd, "second press confirms")
	msg, ok := cmd().(UserStatusToggleMsg)
	require.True(t, ok)
	assert.Equal(t, int64(1), msg.User.ID)

	// A different key between presses cancels.
	d, _ = d.Update(keyPress("s"))
	d, _ = d.Update(keyPress("j"))
	assert.False(t, d.confirm.Armed())
}

func TestUserDetail_ToggleHiddenWhenNotAllowed(t *testing.T) {
	d := NewUserDetail(themes.Default)
	d.SetData(&model.User{ID: 1, Active: true, CanBeDeactivated: false}, false, false)

	d, cmd := d.Update(keyPress("s"))
	assert.Nil(t, cmd)
	assert.False(t, d.confirm.Armed())
}

func TestPaymentDetail_ApproveDoubleConfirms(t *testing.T) {
	d := NewPaymentDetail(themes.Default)
	payment := &model.Payment{ID: 42, CanBeApproved: true}
	d.SetData(payment, nil, false, false, false)

	d, cmd := d.Update(keyPress("a"))
	assert.Nil(t, cmd)

	d, cmd = d.Update(keyPress("a"))
	require.NotNil(t, cmd)
	msg, ok := cmd().(PaymentApproveMsg)
	require.True(t, ok)
	assert.Equal(t, int64(42), msg.Payment.ID)
}

func TestPaymentDetail_ApprovedPaymentCannotArm(t *testing.T) {
	now := time.Now()
	d := NewPaymentDetail(themes.Default)
	d.SetData(&model.Payment{ID: 42, CanBeApproved: true, ApprovedAt: &now}, nil, false, false, false)

	d, cmd := d.Update(keyPress("a"))
	assert.Nil(t, cmd)
	assert.False(t, d.confirm.Armed())
}

func TestEntryList_SelectionEmitsToggle(t *testing.T) {
	l := NewEntryList(model.EntryTypeExpense, themes.Default)
	l.SetData(model.Page[model.Entry]{
		Content:       []model.Entry{{ID: 10}, {ID: 20}},
		TotalElements: 2,
		TotalPages:    1,
	}, nil, false)

	l, cmd := l.Update(keyPress("x"))
	require.NotNil(t, cmd)
	msg, ok := cmd().(EntrySelectedMsg)
	require.True(t, ok)
	assert.Equal(t, int64(10), msg.EntryID)
	assert.Equal(t, model.EntryTypeExpense, msg.Type)
}

func TestEntryList_PagingBounds(t *testing.T) {
	l := NewEntryList(model.EntryTypeExpense, themes.Default)
	l.SetData(model.Page[model.Entry]{TotalPages: 1}, nil, false)

	l, cmd := l.Update(keyPress("n"))
	assert.Nil(t, cmd, "no next page on the last page")

	l, cmd = l.Update(keyPress("p"))
	assert.Nil(t, cmd, "no previous page on the first page")
}

func TestUserDetail_SkillBarClampsBadPercentages(t *testing.T) {
	d := NewUserDetail(themes.Default)
	d.SetData(&model.User{
		ID:   1,
		Role: model.RoleEditor,
		Skills: []model.Skill{
			{Name: "review", Percentage: 150},
			{Name: "edition", Percentage: -20},
		},
	}, false, false)

	view := d.View()
	assert.Contains(t, view, strings.Repeat("█", 10), "over 100% caps at a full bar")
	assert.Contains(t, view, strings.Repeat("░", 10), "negative values render an empty bar")
}

func TestTruncate_CutsOnRunes(t *testing.T) {
	got := truncate("Publicação revisada às pressas", 12)
	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, "Publicaçã...", got)

	assert.Equal(t, "curto", truncate("curto", 12))
}

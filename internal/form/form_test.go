package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ogiraldo/inkflow/internal/api"
)

func TestParsePath(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{name: "simple", in: "name", want: []string{"name"}},
		{name: "nested", in: "bankAccount.agency", want: []string{"bankAccount", "agency"}},
		{name: "indexed", in: "skills[0].name", want: []string{"skills", "0", "name"}},
		{name: "deep", in: "location.city", want: []string{"location", "city"}},
		{name: "empty", in: "", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParsePath(tt.in))
		})
	}
}

func TestJoinPath_RoundTrip(t *testing.T) {
	for _, name := range []string{"name", "bankAccount.agency", "skills[0].name"} {
		assert.Equal(t, name, JoinPath(ParsePath(name)))
	}
}

func TestField_Validate(t *testing.T) {
	tests := []struct {
		name      string
		field     Field
		wantValid bool
	}{
		{
			name:      "required passes",
			field:     Field{Label: "Name", Rules: "required", Value: "Ana"},
			wantValid: true,
		},
		{
			name:      "required fails on blank",
			field:     Field{Label: "Name", Rules: "required", Value: "   "},
			wantValid: false,
		},
		{
			name:      "email fails",
			field:     Field{Label: "E-mail", Rules: "required,email", Value: "not-an-email"},
			wantValid: false,
		},
		{
			name:      "numeric passes",
			field:     Field{Label: "Agency", Rules: "required,numeric", Value: "1234"},
			wantValid: true,
		},
		{
			name:      "no rules always valid",
			field:     Field{Label: "Notes", Value: ""},
			wantValid: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.field.Validate()
			assert.Equal(t, tt.wantValid, got)
			if !tt.wantValid {
				assert.NotEmpty(t, tt.field.Errors)
			} else {
				assert.Empty(t, tt.field.Errors)
			}
		})
	}
}

func TestField_Validate_ClearsStaleErrors(t *testing.T) {
	f := Field{Label: "Name", Rules: "required", Value: ""}
	require.False(t, f.Validate())
	require.NotEmpty(t, f.Errors)

	f.Value = "Ana"
	require.True(t, f.Validate())
	assert.Empty(t, f.Errors)
}

func TestApplyViolations(t *testing.T) {
	name := &Field{Path: []string{"name"}, Label: "Name"}
	agency := &Field{Path: []string{"bankAccount", "agency"}, Label: "Agency"}

	unmatched := ApplyViolations([]*Field{name, agency}, []api.FieldViolation{
		{Name: "bankAccount.agency", UserMessage: "must contain only digits"},
		{Name: "unknownField", UserMessage: "nope"},
	})

	assert.Empty(t, name.Errors)
	assert.Equal(t, []string{"must contain only digits"}, agency.Errors)
	require.Len(t, unmatched, 1)
	assert.Equal(t, "unknownField", unmatched[0].Name)
}

func TestSectionFor(t *testing.T) {
	assert.Equal(t, SectionBank, SectionFor([]string{"bankAccount", "agency"}))
	assert.Equal(t, SectionPersonal, SectionFor([]string{"name"}))
	assert.Equal(t, SectionPersonal, SectionFor([]string{"skills", "0", "name"}))
	assert.Equal(t, SectionPersonal, SectionFor(nil))
}

func TestNextActiveSection(t *testing.T) {
	tests := []struct {
		name       string
		current    Section
		violations []api.FieldViolation
		want       Section
	}{
		{
			name:    "majority on other tab switches",
			current: SectionPersonal,
			violations: []api.FieldViolation{
				{Name: "bankAccount.agency"},
				{Name: "bankAccount.number"},
				{Name: "name"},
			},
			want: SectionBank,
		},
		{
			name:    "tie keeps current",
			current: SectionPersonal,
			violations: []api.FieldViolation{
				{Name: "bankAccount.agency"},
				{Name: "name"},
			},
			want: SectionPersonal,
		},
		{
			name:    "tie keeps current bank side",
			current: SectionBank,
			violations: []api.FieldViolation{
				{Name: "bankAccount.agency"},
				{Name: "name"},
			},
			want: SectionBank,
		},
		{
			name:       "no violations keeps current",
			current:    SectionBank,
			violations: nil,
			want:       SectionBank,
		},
		{
			name:    "majority on current stays",
			current: SectionBank,
			violations: []api.FieldViolation{
				{Name: "bankAccount.agency"},
				{Name: "bankAccount.number"},
				{Name: "phone"},
			},
			want: SectionBank,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NextActiveSection(tt.current, tt.violations))
		})
	}
}

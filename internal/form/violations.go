package form

import "github.com/ogiraldo/inkflow/internal/api"

// Section identifies a tab of the user editor.
type Section int

const (
	SectionPersonal Section = iota
	SectionBank
)

// String returns the display name of the section.
func (s Section) String() string {
	if s == SectionBank {
		return "Bank account"
	}
	return "Personal data"
}

// SectionFor maps a violation path onto the editor tab that owns the
// offending field. Anything not under bankAccount lives on the personal tab.
func SectionFor(path []string) Section {
	if len(path) > 0 && path[0] == "bankAccount" {
		return SectionBank
	}
	return SectionPersonal
}

// ApplyViolations distributes server-side violations onto the matching
// fields and returns the ones that matched nothing, so callers can surface
// them globally instead of dropping them.
func ApplyViolations(fields []*Field, violations []api.FieldViolation) []api.FieldViolation {
	byName := make(map[string]*Field, len(fields))
	for _, f := range fields {
		byName[f.Name()] = f
	}

	var unmatched []api.FieldViolation
	for _, v := range violations {
		f, ok := byName[JoinPath(ParsePath(v.Name))]
		if !ok {
			unmatched = append(unmatched, v)
			continue
		}
		f.Errors = append(f.Errors, v.UserMessage)
	}
	return unmatched
}

// NextActiveSection decides which tab the editor should land on after a
// rejected submit. It switches away from the current tab only when a strict
// majority of the violations belong to the other one; ties keep the user
// where they are.
func NextActiveSection(current Section, violations []api.FieldViolation) Section {
	counts := map[Section]int{}
	for _, v := range violations {
		counts[SectionFor(ParsePath(v.Name))]++
	}

	other := SectionPersonal
	if current == SectionPersonal {
		other = SectionBank
	}

	if counts[other] > counts[current] {
		return other
	}
	return current
}

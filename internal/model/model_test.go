package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPaymentApprovable(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name    string
		payment Payment
		want    bool
	}{
		{
			name:    "pending and allowed",
			payment: Payment{CanBeApproved: true},
			want:    true,
		},
		{
			name:    "already approved",
			payment: Payment{CanBeApproved: true, ApprovedAt: &now},
			want:    false,
		},
		{
			name:    "pending but not allowed",
			payment: Payment{CanBeApproved: false},
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.payment.Approvable())
		})
	}
}

func TestUserStatusCanToggle(t *testing.T) {
	tests := []struct {
		name string
		user User
		want bool
	}{
		{
			name: "active user with deactivation allowed",
			user: User{Active: true, CanBeDeactivated: true},
			want: true,
		},
		{
			name: "active user with deactivation blocked",
			user: User{Active: true, CanBeDeactivated: false, CanBeActivated: true},
			want: false,
		},
		{
			name: "inactive user with activation allowed",
			user: User{Active: false, CanBeActivated: true},
			want: true,
		},
		{
			name: "inactive user with activation blocked",
			user: User{Active: false, CanBeActivated: false, CanBeDeactivated: true},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.user.StatusCanToggle())
		})
	}
}

func TestRoleValid(t *testing.T) {
	assert.True(t, RoleEditor.Valid())
	assert.True(t, RoleAssistant.Valid())
	assert.True(t, RoleManager.Valid())
	assert.False(t, Role("").Valid())
	assert.False(t, Role("ADMIN").Valid())
}

func TestUserIsEditor(t *testing.T) {
	assert.True(t, User{Role: RoleEditor}.IsEditor())
	assert.False(t, User{Role: RoleManager}.IsEditor())
}

func TestEntryQueryApply(t *testing.T) {
	q := EntryQuery{
		Type:      EntryTypeExpense,
		YearMonth: "2021-09",
		Sort:      []string{"transactedOn,desc"},
		Page:      3,
		Size:      20,
	}

	// An empty patch leaves everything alone.
	q.Apply(EntryQueryPatch{})
	assert.Equal(t, "2021-09", q.YearMonth)
	assert.Equal(t, 3, q.Page)

	month := "2021-10"
	page := 0
	q.Apply(EntryQueryPatch{YearMonth: &month, Page: &page})
	assert.Equal(t, "2021-10", q.YearMonth)
	assert.Equal(t, 0, q.Page)
	assert.Equal(t, []string{"transactedOn,desc"}, q.Sort, "unpatched fields survive")
	assert.Equal(t, 20, q.Size)
	assert.Equal(t, EntryTypeExpense, q.Type)

	// Clearing the month filter is an explicit empty string, not a nil.
	empty := ""
	q.Apply(EntryQueryPatch{YearMonth: &empty})
	assert.Empty(t, q.YearMonth)
}

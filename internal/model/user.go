package model

import "time"

// Role is a user's profile within the platform.
type Role string

const (
	// RoleEditor writes posts and is paid per word.
	RoleEditor Role = "EDITOR"
	// RoleAssistant supports the editorial workflow.
	RoleAssistant Role = "ASSISTANT"
	// RoleManager administers users and payments.
	RoleManager Role = "MANAGER"
)

// Valid reports whether the role is one of the known profiles.
func (r Role) Valid() bool {
	switch r {
	case RoleEditor, RoleAssistant, RoleManager:
		return true
	}
	return false
}

// Location is a user's registered address.
type Location struct {
	Country string `json:"country"`
	State   string `json:"state"`
	City    string `json:"city"`
}

// BankAccountType distinguishes saving from checking accounts.
type BankAccountType string

const (
	// BankAccountSaving is a savings account.
	BankAccountSaving BankAccountType = "SAVING"
	// BankAccountChecking is a checking account.
	BankAccountChecking BankAccountType = "CHECKING"
)

// BankAccount holds a user's payout destination.
type BankAccount struct {
	BankCode string          `json:"bankCode"`
	Agency   string          `json:"agency"`
	Number   string          `json:"number"`
	Digit    string          `json:"digit"`
	Type     BankAccountType `json:"type"`
}

// Skill is a self-reported editor skill with a 0-100 proficiency.
type Skill struct {
	Name       string `json:"name"`
	Percentage int    `json:"percentage"`
}

// User is the detailed user record.
//
// Skills, PricePerWord and BankAccount are only meaningful when Role is
// EDITOR. The CanBe* flags are computed server-side and gate which mutations
// the client offers; they are hints for the UI, not an enforcement boundary.
type User struct {
	CreatedAt                 time.Time    `json:"createdAt"`
	UpdatedAt                 time.Time    `json:"updatedAt"`
	Name                      string       `json:"name"`
	Bio                       string       `json:"bio"`
	Birthdate                 string       `json:"birthdate"`
	Email                     string       `json:"email"`
	Phone                     string       `json:"phone"`
	TaxpayerID                string       `json:"taxpayerId"`
	AvatarURL                 string       `json:"avatarUrl"`
	Role                      Role         `json:"role"`
	Skills                    []Skill      `json:"skills,omitempty"`
	Location                  Location     `json:"location"`
	BankAccount               *BankAccount `json:"bankAccount,omitempty"`
	PricePerWord              float64      `json:"pricePerWord,omitempty"`
	ID                        int64        `json:"id"`
	Active                    bool         `json:"active"`
	CanBeActivated            bool         `json:"canBeActivated"`
	CanBeDeactivated          bool         `json:"canBeDeactivated"`
	CanSensitiveDataBeUpdated bool         `json:"canSensitiveDataBeUpdated"`
}

// StatusCanToggle reports whether the activation toggle is currently
// permitted for this user, based on the server-computed capability flags.
func (u User) StatusCanToggle() bool {
	if u.Active {
		return u.CanBeDeactivated
	}
	return u.CanBeActivated
}

// IsEditor reports whether the user carries editor-only fields.
func (u User) IsEditor() bool {
	return u.Role == RoleEditor
}

// UserInputFrom builds an update payload carrying the user's current data,
// for mutations that change a single field of an existing record.
func UserInputFrom(u User) UserInput {
	return UserInput{
		Name:         u.Name,
		Bio:          u.Bio,
		Birthdate:    u.Birthdate,
		Email:        u.Email,
		Phone:        u.Phone,
		TaxpayerID:   u.TaxpayerID,
		AvatarURL:    u.AvatarURL,
		Role:         u.Role,
		Skills:       u.Skills,
		Location:     u.Location,
		BankAccount:  u.BankAccount,
		PricePerWord: u.PricePerWord,
	}
}

// UserInput is the payload for creating or updating a user.
type UserInput struct {
	Name         string       `json:"name"`
	Bio          string       `json:"bio"`
	Birthdate    string       `json:"birthdate"`
	Email        string       `json:"email"`
	Phone        string       `json:"phone"`
	TaxpayerID   string       `json:"taxpayerId"`
	AvatarURL    string       `json:"avatarUrl,omitempty"`
	Role         Role         `json:"role"`
	Skills       []Skill      `json:"skills,omitempty"`
	Location     Location     `json:"location"`
	BankAccount  *BankAccount `json:"bankAccount,omitempty"`
	PricePerWord float64      `json:"pricePerWord,omitempty"`
}

// Package model defines the domain types exchanged with the back-office API.
package model

// EntryType indicates whether a cash-flow entry is an expense or a revenue.
// The type is fixed at creation and determines which query path owns the record.
type EntryType string

const (
	// EntryTypeExpense represents money leaving the cash flow.
	EntryTypeExpense EntryType = "EXPENSE"
	// EntryTypeRevenue represents money entering the cash flow.
	EntryTypeRevenue EntryType = "REVENUE"
)

// CategorySummary represents a cash-flow category as returned by the API.
type CategorySummary struct {
	Name string    `json:"name"`
	Type EntryType `json:"type"`
	ID   int64     `json:"id"`
}

// Entry is a single cash-flow transaction record.
// TransactedOn is a calendar date in YYYY-MM-DD form.
type Entry struct {
	Description  string          `json:"description"`
	TransactedOn string          `json:"transactedOn"`
	Type         EntryType       `json:"type"`
	Category     CategorySummary `json:"category"`
	Amount       float64         `json:"amount"`
	ID           int64           `json:"id"`
}

// CategoryRef references an existing category by ID in mutation payloads.
type CategoryRef struct {
	ID int64 `json:"id"`
}

// EntryInput is the payload for creating or updating an entry.
type EntryInput struct {
	Description  string      `json:"description"`
	TransactedOn string      `json:"transactedOn"`
	Type         EntryType   `json:"type"`
	Category     CategoryRef `json:"category"`
	Amount       float64     `json:"amount"`
}

// CategoryInput is the payload for creating a category.
type CategoryInput struct {
	Name string    `json:"name"`
	Type EntryType `json:"type"`
}

package model

import "time"

// Payee identifies the user a payment is destined to.
type Payee struct {
	Name string `json:"name"`
	ID   int64  `json:"id"`
}

// AccountingPeriod is the date range a payment's earnings are computed over.
// Both bounds are calendar dates in YYYY-MM-DD form.
type AccountingPeriod struct {
	StartsOn string `json:"startsOn"`
	EndsOn   string `json:"endsOn"`
}

// PaymentEarnings aggregates the post earnings inside the accounting period.
type PaymentEarnings struct {
	TotalAmount  float64 `json:"totalAmount"`
	PricePerWord float64 `json:"pricePerWord"`
	Words        int     `json:"words"`
}

// Bonus is an extra amount added on top of post earnings.
type Bonus struct {
	Title  string  `json:"title"`
	Amount float64 `json:"amount"`
}

// Payment is a scheduled payout to an editor.
//
// Once ApprovedAt is set the approval is irreversible from the client's
// perspective; no unapprove operation exists.
type Payment struct {
	ApprovedAt       *time.Time       `json:"approvedAt,omitempty"`
	Payee            Payee            `json:"payee"`
	AccountingPeriod AccountingPeriod `json:"accountingPeriod"`
	Bonuses          []Bonus          `json:"bonuses"`
	Earnings         PaymentEarnings  `json:"earnings"`
	GrandTotalAmount float64          `json:"grandTotalAmount"`
	ID               int64            `json:"id"`
	CanBeApproved    bool             `json:"canBeApproved"`
}

// Approvable reports whether the approve action is currently permitted.
func (p Payment) Approvable() bool {
	return p.CanBeApproved && p.ApprovedAt == nil
}

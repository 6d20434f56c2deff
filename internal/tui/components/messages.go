package components

import (
	"github.com/ogiraldo/inkflow/internal/model"
)

// EntrySelectedMsg is sent when a ledger row's selection mark is toggled.
type EntrySelectedMsg struct {
	Type    model.EntryType
	EntryID int64
}

// EntryEditMsg asks the parent to open the entry editor on an existing row.
type EntryEditMsg struct {
	Entry model.Entry
}

// EntryCreateMsg asks the parent to open the entry editor for a new row.
type EntryCreateMsg struct {
	Type model.EntryType
}

// EntryRemoveMsg asks the parent to delete the ledger's selected rows.
type EntryRemoveMsg struct {
	Type model.EntryType
}

// EntryPageMsg asks the parent to move the ledger to another page.
type EntryPageMsg struct {
	Type model.EntryType
	Page int
}

// EntryFilterMsg asks the parent to re-filter the ledger by month.
type EntryFilterMsg struct {
	Type      model.EntryType
	YearMonth string
}

// EntryFormSubmitMsg carries a validated entry payload ready to send.
// EntryID is nil for a create.
type EntryFormSubmitMsg struct {
	EntryID *int64
	Input   model.EntryInput
}

// CategoryCreateMsg asks the parent to create a category inline.
type CategoryCreateMsg struct {
	Input model.CategoryInput
}

// CategoryDeleteMsg asks the parent to delete a category.
type CategoryDeleteMsg struct {
	CategoryID int64
}

// UserSelectedMsg asks the parent to open a user's detail view.
type UserSelectedMsg struct {
	UserID int64
}

// UserCreateMsg asks the parent to open the user editor for a new user.
type UserCreateMsg struct{}

// UserEditMsg asks the parent to open the user editor on an existing user.
type UserEditMsg struct {
	User model.User
}

// UserFormSubmitMsg carries a validated user payload ready to send.
// UserID is nil for a create.
type UserFormSubmitMsg struct {
	UserID *int64
	Input  model.UserInput
}

// UserStatusToggleMsg asks the parent to activate or deactivate the user.
type UserStatusToggleMsg struct {
	User model.User
}

// UserPostsPageMsg asks the parent for another page of the editor's posts.
type UserPostsPageMsg struct {
	EditorID int64
	Page     int
}

// PostToggleMsg asks the parent to flip a post's publication.
type PostToggleMsg struct {
	Post model.Post
}

// PaymentSelectedMsg asks the parent to open a payment's detail view.
type PaymentSelectedMsg struct {
	PaymentID int64
}

// PaymentPageMsg asks the parent to move the payment list to another page.
type PaymentPageMsg struct {
	Page int
}

// PaymentApproveMsg asks the parent to approve the payment.
type PaymentApproveMsg struct {
	Payment model.Payment
}

// BackMsg asks the parent to return to the previous view.
type BackMsg struct{}

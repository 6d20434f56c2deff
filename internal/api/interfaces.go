package api

import (
	"context"
	"io"

	"github.com/ogiraldo/inkflow/internal/model"
)

// DataClient defines the contract for the remote back-office API.
// This interface allows for easy mocking in tests and swapping data sources.
type DataClient interface {
	// Cash-flow entries
	GetEntries(ctx context.Context, q model.EntryQuery) (model.Page[model.Entry], error)
	GetEntry(ctx context.Context, entryID int64) (*model.Entry, error)
	CreateEntry(ctx context.Context, input model.EntryInput) (*model.Entry, error)
	UpdateEntry(ctx context.Context, entryID int64, input model.EntryInput) (*model.Entry, error)
	RemoveEntriesInBatch(ctx context.Context, entryIDs []int64) error

	// Cash-flow categories
	GetAllCategories(ctx context.Context, sort []string) ([]model.CategorySummary, error)
	CreateCategory(ctx context.Context, input model.CategoryInput) (*model.CategorySummary, error)
	DeleteCategory(ctx context.Context, categoryID int64) error

	// Users
	GetAllUsers(ctx context.Context) ([]model.User, error)
	GetUser(ctx context.Context, userID int64) (*model.User, error)
	CreateUser(ctx context.Context, input model.UserInput) (*model.User, error)
	UpdateUser(ctx context.Context, userID int64, input model.UserInput) (*model.User, error)
	ActivateUser(ctx context.Context, userID int64) error
	DeactivateUser(ctx context.Context, userID int64) error

	// Payments
	GetAllPayments(ctx context.Context, q model.PaymentQuery) (model.Page[model.Payment], error)
	GetPayment(ctx context.Context, paymentID int64) (*model.Payment, error)
	GetPaymentPosts(ctx context.Context, paymentID int64) ([]model.Post, error)
	ApprovePayment(ctx context.Context, paymentID int64) error

	// Posts
	GetLatestPosts(ctx context.Context) ([]model.Post, error)
	GetUserPosts(ctx context.Context, editorID int64, page int) (model.Page[model.Post], error)
	PublishPost(ctx context.Context, postID int64) error
	UnpublishPost(ctx context.Context, postID int64) error

	// Collaborators
	Upload(ctx context.Context, filename string, content io.Reader) (string, error)
	Me(ctx context.Context) (*model.User, error)
}

// Ensure Client implements the DataClient interface.
var _ DataClient = (*Client)(nil)

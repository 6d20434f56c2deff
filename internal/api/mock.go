package api

import (
	"context"
	"io"

	"github.com/ogiraldo/inkflow/internal/model"
)

// MockClient is a mock implementation of DataClient for testing.
type MockClient struct {
	// Functions that can be set by tests to control behavior
	GetEntriesFn           func(ctx context.Context, q model.EntryQuery) (model.Page[model.Entry], error)
	GetEntryFn             func(ctx context.Context, entryID int64) (*model.Entry, error)
	CreateEntryFn          func(ctx context.Context, input model.EntryInput) (*model.Entry, error)
	UpdateEntryFn          func(ctx context.Context, entryID int64, input model.EntryInput) (*model.Entry, error)
	RemoveEntriesInBatchFn func(ctx context.Context, entryIDs []int64) error
	GetAllCategoriesFn     func(ctx context.Context, sort []string) ([]model.CategorySummary, error)
	CreateCategoryFn       func(ctx context.Context, input model.CategoryInput) (*model.CategorySummary, error)
	DeleteCategoryFn       func(ctx context.Context, categoryID int64) error
	GetAllUsersFn          func(ctx context.Context) ([]model.User, error)
	GetUserFn              func(ctx context.Context, userID int64) (*model.User, error)
	CreateUserFn           func(ctx context.Context, input model.UserInput) (*model.User, error)
	UpdateUserFn           func(ctx context.Context, userID int64, input model.UserInput) (*model.User, error)
	ActivateUserFn         func(ctx context.Context, userID int64) error
	DeactivateUserFn       func(ctx context.Context, userID int64) error
	GetAllPaymentsFn       func(ctx context.Context, q model.PaymentQuery) (model.Page[model.Payment], error)
	GetPaymentFn           func(ctx context.Context, paymentID int64) (*model.Payment, error)
	GetPaymentPostsFn      func(ctx context.Context, paymentID int64) ([]model.Post, error)
	ApprovePaymentFn       func(ctx context.Context, paymentID int64) error
	GetLatestPostsFn       func(ctx context.Context) ([]model.Post, error)
	GetUserPostsFn         func(ctx context.Context, editorID int64, page int) (model.Page[model.Post], error)
	PublishPostFn          func(ctx context.Context, postID int64) error
	UnpublishPostFn        func(ctx context.Context, postID int64) error
	UploadFn               func(ctx context.Context, filename string, content io.Reader) (string, error)
	MeFn                   func(ctx context.Context) (*model.User, error)

	// Call tracking
	GetEntriesCalls           []model.EntryQuery
	CreateEntryCalls          []model.EntryInput
	UpdateEntryCalls          []UpdateEntryCall
	RemoveEntriesInBatchCalls [][]int64
	ApprovePaymentCalls       []int64
	GetAllCategoriesCalls     int
}

// UpdateEntryCall records the parameters of an UpdateEntry call.
type UpdateEntryCall struct {
	Input   model.EntryInput
	EntryID int64
}

// NewMockClient creates a new mock API client.
func NewMockClient() *MockClient {
	return &MockClient{}
}

// GetEntries implements DataClient.GetEntries.
func (m *MockClient) GetEntries(ctx context.Context, q model.EntryQuery) (model.Page[model.Entry], error) {
	m.GetEntriesCalls = append(m.GetEntriesCalls, q)
	if m.GetEntriesFn != nil {
		return m.GetEntriesFn(ctx, q)
	}
	return model.Page[model.Entry]{}, nil
}

// GetEntry implements DataClient.GetEntry.
func (m *MockClient) GetEntry(ctx context.Context, entryID int64) (*model.Entry, error) {
	if m.GetEntryFn != nil {
		return m.GetEntryFn(ctx, entryID)
	}
	return &model.Entry{ID: entryID}, nil
}

// CreateEntry implements DataClient.CreateEntry.
func (m *MockClient) CreateEntry(ctx context.Context, input model.EntryInput) (*model.Entry, error) {
	m.CreateEntryCalls = append(m.CreateEntryCalls, input)
	if m.CreateEntryFn != nil {
		return m.CreateEntryFn(ctx, input)
	}
	return &model.Entry{}, nil
}

// UpdateEntry implements DataClient.UpdateEntry.
func (m *MockClient) UpdateEntry(ctx context.Context, entryID int64, input model.EntryInput) (*model.Entry, error) {
	m.UpdateEntryCalls = append(m.UpdateEntryCalls, UpdateEntryCall{EntryID: entryID, Input: input})
	if m.UpdateEntryFn != nil {
		return m.UpdateEntryFn(ctx, entryID, input)
	}
	return &model.Entry{ID: entryID}, nil
}

// RemoveEntriesInBatch implements DataClient.RemoveEntriesInBatch.
func (m *MockClient) RemoveEntriesInBatch(ctx context.Context, entryIDs []int64) error {
	m.RemoveEntriesInBatchCalls = append(m.RemoveEntriesInBatchCalls, entryIDs)
	if m.RemoveEntriesInBatchFn != nil {
		return m.RemoveEntriesInBatchFn(ctx, entryIDs)
	}
	return nil
}

// GetAllCategories implements DataClient.GetAllCategories.
func (m *MockClient) GetAllCategories(ctx context.Context, sort []string) ([]model.CategorySummary, error) {
	m.GetAllCategoriesCalls++
	if m.GetAllCategoriesFn != nil {
		return m.GetAllCategoriesFn(ctx, sort)
	}
	return []model.CategorySummary{}, nil
}

// CreateCategory implements DataClient.CreateCategory.
func (m *MockClient) CreateCategory(ctx context.Context, input model.CategoryInput) (*model.CategorySummary, error) {
	if m.CreateCategoryFn != nil {
		return m.CreateCategoryFn(ctx, input)
	}
	return &model.CategorySummary{Name: input.Name, Type: input.Type}, nil
}

// DeleteCategory implements DataClient.DeleteCategory.
func (m *MockClient) DeleteCategory(ctx context.Context, categoryID int64) error {
	if m.DeleteCategoryFn != nil {
		return m.DeleteCategoryFn(ctx, categoryID)
	}
	return nil
}

// GetAllUsers implements DataClient.GetAllUsers.
func (m *MockClient) GetAllUsers(ctx context.Context) ([]model.User, error) {
	if m.GetAllUsersFn != nil {
		return m.GetAllUsersFn(ctx)
	}
	return []model.User{}, nil
}

// GetUser implements DataClient.GetUser.
func (m *MockClient) GetUser(ctx context.Context, userID int64) (*model.User, error) {
	if m.GetUserFn != nil {
		return m.GetUserFn(ctx, userID)
	}
	return &model.User{ID: userID}, nil
}

// CreateUser implements DataClient.CreateUser.
func (m *MockClient) CreateUser(ctx context.Context, input model.UserInput) (*model.User, error) {
	if m.CreateUserFn != nil {
		return m.CreateUserFn(ctx, input)
	}
	return &model.User{Name: input.Name, Role: input.Role}, nil
}

// UpdateUser implements DataClient.UpdateUser.
func (m *MockClient) UpdateUser(ctx context.Context, userID int64, input model.UserInput) (*model.User, error) {
	if m.UpdateUserFn != nil {
		return m.UpdateUserFn(ctx, userID, input)
	}
	return &model.User{ID: userID, Name: input.Name, Role: input.Role}, nil
}

// ActivateUser implements DataClient.ActivateUser.
func (m *MockClient) ActivateUser(ctx context.Context, userID int64) error {
	if m.ActivateUserFn != nil {
		return m.ActivateUserFn(ctx, userID)
	}
	return nil
}

// DeactivateUser implements DataClient.DeactivateUser.
func (m *MockClient) DeactivateUser(ctx context.Context, userID int64) error {
	if m.DeactivateUserFn != nil {
		return m.DeactivateUserFn(ctx, userID)
	}
	return nil
}

// GetAllPayments implements DataClient.GetAllPayments.
func (m *MockClient) GetAllPayments(ctx context.Context, q model.PaymentQuery) (model.Page[model.Payment], error) {
	if m.GetAllPaymentsFn != nil {
		return m.GetAllPaymentsFn(ctx, q)
	}
	return model.Page[model.Payment]{}, nil
}

// GetPayment implements DataClient.GetPayment.
func (m *MockClient) GetPayment(ctx context.Context, paymentID int64) (*model.Payment, error) {
	if m.GetPaymentFn != nil {
		return m.GetPaymentFn(ctx, paymentID)
	}
	return &model.Payment{ID: paymentID}, nil
}

// GetPaymentPosts implements DataClient.GetPaymentPosts.
func (m *MockClient) GetPaymentPosts(ctx context.Context, paymentID int64) ([]model.Post, error) {
	if m.GetPaymentPostsFn != nil {
		return m.GetPaymentPostsFn(ctx, paymentID)
	}
	return []model.Post{}, nil
}

// ApprovePayment implements DataClient.ApprovePayment.
func (m *MockClient) ApprovePayment(ctx context.Context, paymentID int64) error {
	m.ApprovePaymentCalls = append(m.ApprovePaymentCalls, paymentID)
	if m.ApprovePaymentFn != nil {
		return m.ApprovePaymentFn(ctx, paymentID)
	}
	return nil
}

// GetLatestPosts implements DataClient.GetLatestPosts.
func (m *MockClient) GetLatestPosts(ctx context.Context) ([]model.Post, error) {
	if m.GetLatestPostsFn != nil {
		return m.GetLatestPostsFn(ctx)
	}
	return []model.Post{}, nil
}

// GetUserPosts implements DataClient.GetUserPosts.
func (m *MockClient) GetUserPosts(ctx context.Context, editorID int64, page int) (model.Page[model.Post], error) {
	if m.GetUserPostsFn != nil {
		return m.GetUserPostsFn(ctx, editorID, page)
	}
	return model.Page[model.Post]{}, nil
}

// PublishPost implements DataClient.PublishPost.
func (m *MockClient) PublishPost(ctx context.Context, postID int64) error {
	if m.PublishPostFn != nil {
		return m.PublishPostFn(ctx, postID)
	}
	return nil
}

// UnpublishPost implements DataClient.UnpublishPost.
func (m *MockClient) UnpublishPost(ctx context.Context, postID int64) error {
	if m.UnpublishPostFn != nil {
		return m.UnpublishPostFn(ctx, postID)
	}
	return nil
}

// Upload implements DataClient.Upload.
func (m *MockClient) Upload(ctx context.Context, filename string, content io.Reader) (string, error) {
	if m.UploadFn != nil {
		return m.UploadFn(ctx, filename, content)
	}
	return "https://files.example.com/" + filename, nil
}

// Me implements DataClient.Me.
func (m *MockClient) Me(ctx context.Context) (*model.User, error) {
	if m.MeFn != nil {
		return m.MeFn(ctx)
	}
	return &model.User{ID: 1, Role: model.RoleManager}, nil
}

// Ensure MockClient implements the DataClient interface.
var _ DataClient = (*MockClient)(nil)

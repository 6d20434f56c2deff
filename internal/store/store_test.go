package store

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ogiraldo/inkflow/internal/api"
	"github.com/ogiraldo/inkflow/internal/model"
)

// recordingNotifier captures notifications for assertions.
type recordingNotifier struct {
	mu        sync.Mutex
	successes []string
	errors    []string
}

func (n *recordingNotifier) Success(message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.successes = append(n.successes, message)
}

func (n *recordingNotifier) Error(message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.errors = append(n.errors, message)
}

func (n *recordingNotifier) errorCount() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.errors)
}

func newTestStore(client api.DataClient) (*Store, *recordingNotifier) {
	notifier := &recordingNotifier{}
	return New(client, WithNotifier(notifier)), notifier
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "structured detail",
			err:  &api.RequestError{Status: 422, Detail: "Invalid user"},
			want: "Invalid user",
		},
		{
			name: "network error",
			err:  &api.RequestError{Detail: api.NetworkErrorDetail},
			want: "network error",
		},
		{
			name: "unclassified",
			err:  errors.New("boom"),
			want: "an error occurred",
		},
		{
			name: "empty detail",
			err:  &api.RequestError{Status: 500},
			want: "an error occurred",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, UserMessage(tt.err))
		})
	}
}

func TestFetchEntries_SilentOnFailure(t *testing.T) {
	mock := api.NewMockClient()
	mock.GetEntriesFn = func(context.Context, model.EntryQuery) (model.Page[model.Entry], error) {
		return model.Page[model.Entry]{}, &api.RequestError{Status: 500, Detail: "boom"}
	}
	store, notifier := newTestStore(mock)

	err := store.FetchEntries(context.Background(), model.EntryTypeExpense)

	require.Error(t, err)
	assert.Zero(t, notifier.errorCount(), "list fetch failures must not notify")
}

func TestUpdateEntry_NotifiesExactlyOnce(t *testing.T) {
	mock := api.NewMockClient()
	mock.UpdateEntryFn = func(context.Context, int64, model.EntryInput) (*model.Entry, error) {
		return nil, &api.RequestError{Status: 422, Detail: "Invalid entry"}
	}
	store, notifier := newTestStore(mock)

	err := store.UpdateEntry(context.Background(), 1, model.EntryInput{Type: model.EntryTypeExpense})

	require.Error(t, err)
	assert.Equal(t, []string{"Invalid entry"}, notifier.errors)
	assert.Empty(t, notifier.successes)
}

func TestCreateEntry_SilentFailure(t *testing.T) {
	mock := api.NewMockClient()
	mock.CreateEntryFn = func(context.Context, model.EntryInput) (*model.Entry, error) {
		return nil, &api.RequestError{Status: 422, Detail: "Invalid entry"}
	}
	store, notifier := newTestStore(mock)

	err := store.CreateEntry(context.Background(), model.EntryInput{Type: model.EntryTypeRevenue})

	require.Error(t, err)
	assert.Zero(t, notifier.errorCount(), "entry create failures surface in the form")
}

func TestSetEntryQuery_MergesOnlyProvidedFields(t *testing.T) {
	store, _ := newTestStore(api.NewMockClient())

	yearMonth := "2021-10"
	store.SetEntryQuery(model.EntryTypeExpense, model.EntryQueryPatch{YearMonth: &yearMonth})

	q := store.EntryQueryFor(model.EntryTypeExpense)
	assert.Equal(t, model.EntryTypeExpense, q.Type)
	assert.Equal(t, "2021-10", q.YearMonth)
	assert.Equal(t, []string{"transactedOn,desc"}, q.Sort, "unpatched fields keep their values")
	assert.Equal(t, 20, q.Size)

	page := 3
	store.SetEntryQuery(model.EntryTypeExpense, model.EntryQueryPatch{Page: &page})

	q = store.EntryQueryFor(model.EntryTypeExpense)
	assert.Equal(t, 3, q.Page)
	assert.Equal(t, "2021-10", q.YearMonth, "earlier patches survive later ones")

	// The other ledger is untouched.
	assert.Empty(t, store.EntryQueryFor(model.EntryTypeRevenue).YearMonth)
}

func TestFetchEntries_StaleResponseDiscarded(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})

	mock := api.NewMockClient()
	mock.GetEntriesFn = func(_ context.Context, q model.EntryQuery) (model.Page[model.Entry], error) {
		if q.YearMonth == "stale" {
			close(started)
			<-release
			return model.Page[model.Entry]{Content: []model.Entry{{ID: 1, Description: "stale"}}}, nil
		}
		return model.Page[model.Entry]{Content: []model.Entry{{ID: 2, Description: "fresh"}}}, nil
	}
	store, _ := newTestStore(mock)

	ym := "stale"
	store.SetEntryQuery(model.EntryTypeExpense, model.EntryQueryPatch{YearMonth: &ym})

	done := make(chan error, 1)
	go func() {
		done <- store.FetchEntries(context.Background(), model.EntryTypeExpense)
	}()
	<-started

	fresh := "2021-10"
	store.SetEntryQuery(model.EntryTypeExpense, model.EntryQueryPatch{YearMonth: &fresh})
	require.NoError(t, store.FetchEntries(context.Background(), model.EntryTypeExpense))

	close(release)
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("stale fetch never returned")
	}

	entries := store.Entries(model.EntryTypeExpense)
	require.Len(t, entries, 1)
	assert.Equal(t, "fresh", entries[0].Description, "the stale response must not overwrite the fresh page")
}

func TestFetchEntries_PrunesSelectionToPage(t *testing.T) {
	mock := api.NewMockClient()
	mock.GetEntriesFn = func(context.Context, model.EntryQuery) (model.Page[model.Entry], error) {
		return model.Page[model.Entry]{Content: []model.Entry{{ID: 1}, {ID: 2}}}, nil
	}
	store, _ := newTestStore(mock)

	store.ToggleEntrySelected(model.EntryTypeExpense, 1)
	store.ToggleEntrySelected(model.EntryTypeExpense, 99)

	require.NoError(t, store.FetchEntries(context.Background(), model.EntryTypeExpense))

	assert.Equal(t, []int64{1}, store.SelectedEntryIDs(model.EntryTypeExpense))
}

func TestRemoveSelectedEntries(t *testing.T) {
	mock := api.NewMockClient()
	store, notifier := newTestStore(mock)

	// Nothing selected: no API call at all.
	require.NoError(t, store.RemoveSelectedEntries(context.Background(), model.EntryTypeExpense))
	assert.Empty(t, mock.RemoveEntriesInBatchCalls)

	store.ToggleEntrySelected(model.EntryTypeExpense, 8)
	store.ToggleEntrySelected(model.EntryTypeExpense, 4)

	require.NoError(t, store.RemoveSelectedEntries(context.Background(), model.EntryTypeExpense))

	require.Len(t, mock.RemoveEntriesInBatchCalls, 1)
	assert.Equal(t, []int64{4, 8}, mock.RemoveEntriesInBatchCalls[0])
	assert.Empty(t, store.SelectedEntryIDs(model.EntryTypeExpense), "selection clears after removal")
	assert.Equal(t, []string{"2 entries removed"}, notifier.successes)
}

func TestPartitionCategories(t *testing.T) {
	expenses, revenues := partitionCategories([]model.CategorySummary{
		{ID: 3, Name: "Infra", Type: model.EntryTypeExpense},
		{ID: 2, Name: "Ads", Type: model.EntryTypeRevenue},
		{ID: 1, Name: "Office", Type: model.EntryTypeExpense},
	})

	require.Len(t, expenses, 2)
	require.Len(t, revenues, 1)
	assert.Equal(t, "Infra", expenses[0].Name)
	assert.Equal(t, "Office", expenses[1].Name)
	assert.Equal(t, "Ads", revenues[0].Name)
}

func TestFetchUser_NotFoundSetsViewStateWithoutNotifying(t *testing.T) {
	mock := api.NewMockClient()
	mock.GetUserFn = func(context.Context, int64) (*model.User, error) {
		return nil, &api.RequestError{Status: 404, Detail: "User not found"}
	}
	store, notifier := newTestStore(mock)

	err := store.FetchUser(context.Background(), 999)

	require.Error(t, err)
	user, loading, notFound := store.UserDetail()
	assert.Nil(t, user)
	assert.False(t, loading)
	assert.True(t, notFound)
	assert.Zero(t, notifier.errorCount(), "a missing user renders as a view state, not a toast")
}

func TestFetchUser_OtherFailuresNotify(t *testing.T) {
	mock := api.NewMockClient()
	mock.GetUserFn = func(context.Context, int64) (*model.User, error) {
		return nil, &api.RequestError{Detail: api.NetworkErrorDetail}
	}
	store, notifier := newTestStore(mock)

	require.Error(t, store.FetchUser(context.Background(), 1))
	assert.Equal(t, []string{"network error"}, notifier.errors)
}

func TestToggleUserStatus(t *testing.T) {
	tests := []struct {
		name           string
		user           model.User
		wantActivate   bool
		wantDeactivate bool
	}{
		{
			name:           "active and allowed deactivates",
			user:           model.User{ID: 1, Active: true, CanBeDeactivated: true},
			wantDeactivate: true,
		},
		{
			name:         "inactive and allowed activates",
			user:         model.User{ID: 1, Active: false, CanBeActivated: true},
			wantActivate: true,
		},
		{
			name: "active but not allowed is a no-op",
			user: model.User{ID: 1, Active: true, CanBeDeactivated: false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var activated, deactivated bool
			mock := api.NewMockClient()
			mock.ActivateUserFn = func(context.Context, int64) error {
				activated = true
				return nil
			}
			mock.DeactivateUserFn = func(context.Context, int64) error {
				deactivated = true
				return nil
			}
			store, _ := newTestStore(mock)

			require.NoError(t, store.ToggleUserStatus(context.Background(), tt.user))
			assert.Equal(t, tt.wantActivate, activated)
			assert.Equal(t, tt.wantDeactivate, deactivated)
		})
	}
}

func TestApprovePayment(t *testing.T) {
	now := time.Now()

	t.Run("approvable payment is approved and reloaded", func(t *testing.T) {
		mock := api.NewMockClient()
		mock.GetPaymentFn = func(_ context.Context, id int64) (*model.Payment, error) {
			return &model.Payment{ID: id, ApprovedAt: &now}, nil
		}
		store, notifier := newTestStore(mock)

		payment := model.Payment{ID: 42, CanBeApproved: true}
		require.NoError(t, store.ApprovePayment(context.Background(), payment))

		assert.Equal(t, []int64{42}, mock.ApprovePaymentCalls)
		assert.Equal(t, []string{"payment approved"}, notifier.successes)

		detail, _, _, _ := store.PaymentDetail()
		require.NotNil(t, detail)
		assert.NotNil(t, detail.ApprovedAt)
	})

	t.Run("already approved payment is a no-op", func(t *testing.T) {
		mock := api.NewMockClient()
		store, _ := newTestStore(mock)

		payment := model.Payment{ID: 42, CanBeApproved: true, ApprovedAt: &now}
		require.NoError(t, store.ApprovePayment(context.Background(), payment))
		assert.Empty(t, mock.ApprovePaymentCalls)
	})
}

func TestTogglePostStatus(t *testing.T) {
	var published, unpublished bool
	mock := api.NewMockClient()
	mock.PublishPostFn = func(context.Context, int64) error {
		published = true
		return nil
	}
	mock.UnpublishPostFn = func(context.Context, int64) error {
		unpublished = true
		return nil
	}
	store, notifier := newTestStore(mock)

	require.NoError(t, store.TogglePostStatus(context.Background(), model.Post{ID: 1, Published: false}))
	assert.True(t, published)
	assert.False(t, unpublished)

	require.NoError(t, store.TogglePostStatus(context.Background(), model.Post{ID: 1, Published: true}))
	assert.True(t, unpublished)

	assert.Equal(t, []string{"post published", "post unpublished"}, notifier.successes)
}

func TestRole_PrefersProfileOverHint(t *testing.T) {
	mock := api.NewMockClient()
	mock.MeFn = func(context.Context) (*model.User, error) {
		return &model.User{ID: 1, Role: model.RoleEditor}, nil
	}
	store, _ := newTestStore(mock)

	store.SetRoleHint(model.RoleManager)
	assert.Equal(t, model.RoleManager, store.Role())
	assert.True(t, store.IsManager())

	require.NoError(t, store.FetchProfile(context.Background()))
	assert.Equal(t, model.RoleEditor, store.Role())
	assert.False(t, store.IsManager())
}

func TestUpdateUserAvatar(t *testing.T) {
	mock := api.NewMockClient()
	mock.GetUserFn = func(_ context.Context, userID int64) (*model.User, error) {
		return &model.User{
			ID:    userID,
			Name:  "Ana",
			Email: "ana@example.com",
			Role:  model.RoleEditor,
		}, nil
	}
	var gotInput model.UserInput
	mock.UpdateUserFn = func(_ context.Context, userID int64, input model.UserInput) (*model.User, error) {
		gotInput = input
		return &model.User{ID: userID, Name: input.Name, AvatarURL: input.AvatarURL}, nil
	}
	store, notifier := newTestStore(mock)

	url, err := store.UpdateUserAvatar(context.Background(), 4, "photo.png", strings.NewReader("img"))
	require.NoError(t, err)
	assert.Equal(t, "https://files.example.com/photo.png", url)
	assert.Equal(t, url, gotInput.AvatarURL)
	assert.Equal(t, "Ana", gotInput.Name, "the rest of the record travels unchanged")
	assert.Equal(t, []string{"avatar updated"}, notifier.successes)
}

func TestUpdateUserAvatar_UploadFailureNotifiesOnce(t *testing.T) {
	mock := api.NewMockClient()
	mock.UploadFn = func(context.Context, string, io.Reader) (string, error) {
		return "", &api.RequestError{Status: 500, Detail: "storage unavailable"}
	}
	store, notifier := newTestStore(mock)

	_, err := store.UpdateUserAvatar(context.Background(), 4, "photo.png", strings.NewReader("img"))
	require.Error(t, err)
	assert.Equal(t, []string{"storage unavailable"}, notifier.errors)
}

func TestFetchEntry_SilentFailure(t *testing.T) {
	mock := api.NewMockClient()
	mock.GetEntryFn = func(context.Context, int64) (*model.Entry, error) {
		return nil, &api.RequestError{Status: 500, Detail: "boom"}
	}
	store, notifier := newTestStore(mock)

	_, err := store.FetchEntry(context.Background(), model.EntryTypeExpense, 7)
	require.Error(t, err)
	assert.Zero(t, notifier.errorCount())
}

package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ogiraldo/inkflow/internal/model"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(Config{
		BaseURL:     server.URL,
		AccessToken: "test-token",
		Timeout:     5 * time.Second,
	})
	require.NoError(t, err)

	return client, server
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name:    "valid",
			cfg:     Config{BaseURL: "https://api.example.com", AccessToken: "tok"},
			wantErr: false,
		},
		{
			name:    "missing base URL",
			cfg:     Config{AccessToken: "tok"},
			wantErr: true,
		},
		{
			name:    "missing token",
			cfg:     Config{BaseURL: "https://api.example.com"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGetEntries_QueryParameters(t *testing.T) {
	var gotQuery map[string][]string
	var gotAuth string

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"content":[{"id":1,"description":"AWS bill","type":"EXPENSE","amount":120.5,"transactedOn":"2021-10-01","category":{"id":3,"name":"Infra","type":"EXPENSE"}}],"totalElements":1,"totalPages":1,"number":0,"size":20}`))
	})

	page, err := client.GetEntries(context.Background(), model.EntryQuery{
		Type:      model.EntryTypeExpense,
		YearMonth: "2021-10",
		Sort:      []string{"transactedOn,desc"},
		Page:      2,
		Size:      20,
	})
	require.NoError(t, err)

	assert.Equal(t, "Bearer test-token", gotAuth)
	assert.Equal(t, []string{"EXPENSE"}, gotQuery["type"])
	assert.Equal(t, []string{"2021-10"}, gotQuery["yearMonth"])
	assert.Equal(t, []string{"2"}, gotQuery["page"])
	assert.Equal(t, []string{"transactedOn,desc"}, gotQuery["sort"])

	require.Len(t, page.Content, 1)
	assert.Equal(t, "AWS bill", page.Content[0].Description)
	assert.Equal(t, model.EntryTypeExpense, page.Content[0].Type)
	assert.Equal(t, "2021-10-01", page.Content[0].TransactedOn)
	assert.Equal(t, int64(3), page.Content[0].Category.ID)
}

func TestRemoveEntriesInBatch(t *testing.T) {
	var gotMethod, gotIDs string

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotIDs = r.URL.Query().Get("ids")
		w.WriteHeader(http.StatusNoContent)
	})

	err := client.RemoveEntriesInBatch(context.Background(), []int64{4, 8, 15})
	require.NoError(t, err)

	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "4,8,15", gotIDs)
}

func TestRemoveEntriesInBatch_EmptySetSkipsCall(t *testing.T) {
	called := false
	client, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		called = true
		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, client.RemoveEntriesInBatch(context.Background(), nil))
	assert.False(t, called)
}

func TestDo_DecodesStructuredError(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"status":422,"detail":"Invalid user","objects":[{"name":"bankAccount.agency","userMessage":"required"}]}`))
	})

	_, err := client.CreateUser(context.Background(), model.UserInput{})
	require.Error(t, err)

	reqErr, ok := AsRequestError(err)
	require.True(t, ok)
	assert.Equal(t, 422, reqErr.Status)
	assert.Equal(t, "Invalid user", reqErr.Detail)
	require.Len(t, reqErr.Objects, 1)
	assert.Equal(t, "bankAccount.agency", reqErr.Objects[0].Name)
	assert.Equal(t, "required", reqErr.Objects[0].UserMessage)
	assert.True(t, IsValidation(err))
}

func TestDo_NotFoundAndForbidden(t *testing.T) {
	status := http.StatusNotFound
	client, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(status)
	})

	_, err := client.GetUser(context.Background(), 999)
	assert.True(t, IsNotFound(err))
	assert.False(t, IsForbidden(err))

	status = http.StatusForbidden
	_, err = client.GetPayment(context.Background(), 1)
	assert.True(t, IsForbidden(err))
}

func TestDo_UnparsableErrorBodyFallsBackToStatusText(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("<html>boom</html>"))
	})

	_, err := client.GetAllUsers(context.Background())
	require.Error(t, err)

	reqErr, ok := AsRequestError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusInternalServerError, reqErr.Status)
	assert.Equal(t, http.StatusText(http.StatusInternalServerError), reqErr.Detail)
}

func TestDo_TransportFailureIsNetworkError(t *testing.T) {
	client, err := NewClient(Config{
		// Nothing listens here.
		BaseURL:     "http://127.0.0.1:1",
		AccessToken: "tok",
		Timeout:     time.Second,
	})
	require.NoError(t, err)

	_, err = client.GetLatestPosts(context.Background())
	require.Error(t, err)
	assert.True(t, IsNetwork(err))
}

func TestApprovePayment(t *testing.T) {
	var gotMethod, gotPath string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, client.ApprovePayment(context.Background(), 42))
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "/payments/42/approval", gotPath)
}

func TestParseTokenClaims(t *testing.T) {
	// Unsigned token with {"name":"Ana","role":"MANAGER","uid":7}
	token := "eyJhbGciOiJub25lIiwidHlwIjoiSldUIn0." +
		"eyJuYW1lIjoiQW5hIiwicm9sZSI6Ik1BTkFHRVIiLCJ1aWQiOjd9."

	claims, err := ParseTokenClaims(token)
	require.NoError(t, err)
	assert.Equal(t, "Ana", claims.Name)
	assert.Equal(t, model.RoleManager, claims.Role)
	assert.Equal(t, int64(7), claims.UserID)
}

func TestParseTokenClaims_Garbage(t *testing.T) {
	_, err := ParseTokenClaims("not-a-token")
	assert.Error(t, err)
}

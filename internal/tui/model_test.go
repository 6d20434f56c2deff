package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ogiraldo/inkflow/internal/api"
	"github.com/ogiraldo/inkflow/internal/store"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	cfg, err := newConfig(
		WithStore(store.New(api.NewMockClient())),
		WithSize(120, 40),
	)
	require.NoError(t, err)
	return newModel(cfg)
}

func TestRefreshShowsStatusUntilResponseLands(t *testing.T) {
	m := newTestModel(t)

	cmd := m.refreshCurrentView()
	require.NotNil(t, cmd)
	assert.Equal(t, "loading…", m.store.Status())

	m, _, handled := m.handleRefresh(latestPostsRefreshedMsg{})
	require.True(t, handled)
	assert.Empty(t, m.store.Status(), "a landed response clears the status line")
}

func TestSwitchViewSetsBreadcrumb(t *testing.T) {
	m := newTestModel(t)

	cmd := m.switchView(ViewUsers)
	require.NotNil(t, cmd)
	assert.Equal(t, "Users", m.store.Breadcrumb())
}

package config

import (
	"errors"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ogiraldo/inkflow/internal/common"
)

func TestFromViper(t *testing.T) {
	v := viper.New()
	v.Set("api.base_url", "https://api.example.com")
	v.Set("api.access_token", "tok")

	settings, err := FromViper(v)
	require.NoError(t, err)

	assert.Equal(t, "https://api.example.com", settings.API.BaseURL)
	assert.Equal(t, "tok", settings.API.AccessToken)
	assert.Equal(t, 30*time.Second, settings.API.Timeout, "timeout defaults")
	assert.Equal(t, "default", settings.Theme, "theme defaults")
}

func TestFromViper_MissingRequired(t *testing.T) {
	v := viper.New()
	v.Set("api.base_url", "https://api.example.com")

	_, err := FromViper(v)
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrMissingConfig))
}

func TestFromViper_Overrides(t *testing.T) {
	v := viper.New()
	v.Set("api.base_url", "https://api.example.com")
	v.Set("api.access_token", "tok")
	v.Set("api.timeout", "5s")
	v.Set("theme", "dracula")

	settings, err := FromViper(v)
	require.NoError(t, err)
	assert.Equal(t, 5*time.Second, settings.API.Timeout)
	assert.Equal(t, "dracula", settings.Theme)
}

func TestExpandPath(t *testing.T) {
	t.Setenv("INKFLOW_TEST_DIR", "/tmp/exports")

	assert.Equal(t, "/tmp/exports/out.csv", ExpandPath("$INKFLOW_TEST_DIR/out.csv"))
	assert.Equal(t, "", ExpandPath(""))
	assert.NotContains(t, ExpandPath("~/exports"), "~")
}

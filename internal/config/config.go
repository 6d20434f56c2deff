// Package config provides configuration utilities for the application.
package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/ogiraldo/inkflow/internal/api"
	"github.com/ogiraldo/inkflow/internal/common"
)

// Settings is the resolved application configuration.
type Settings struct {
	API   api.Config
	Theme string
}

// FromViper builds the application settings from the given viper instance.
// The API base URL and access token are required; everything else has a
// default.
func FromViper(v *viper.Viper) (Settings, error) {
	settings := Settings{
		API: api.Config{
			BaseURL:     v.GetString("api.base_url"),
			AccessToken: v.GetString("api.access_token"),
			Timeout:     v.GetDuration("api.timeout"),
		},
		Theme: v.GetString("theme"),
	}

	if settings.API.Timeout <= 0 {
		settings.API.Timeout = 30 * time.Second
	}
	if settings.Theme == "" {
		settings.Theme = "default"
	}

	if settings.API.BaseURL == "" {
		return Settings{}, fmt.Errorf("%w: api.base_url", common.ErrMissingConfig)
	}
	if settings.API.AccessToken == "" {
		return Settings{}, fmt.Errorf("%w: api.access_token (set it in the config file or INKFLOW_API_ACCESS_TOKEN)", common.ErrMissingConfig)
	}

	return settings, nil
}

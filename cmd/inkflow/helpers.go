package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/viper"

	"github.com/ogiraldo/inkflow/internal/api"
	"github.com/ogiraldo/inkflow/internal/config"
	"github.com/ogiraldo/inkflow/internal/store"
)

// initStore builds the API client and the application store from the
// resolved configuration. Headless commands keep the log-backed notifier;
// the dashboard rebinds it to the UI.
func initStore() (*store.Store, config.Settings, error) {
	settings, err := config.FromViper(viper.GetViper())
	if err != nil {
		return nil, config.Settings{}, err
	}

	client, err := api.NewClient(settings.API)
	if err != nil {
		return nil, config.Settings{}, fmt.Errorf("failed to create API client: %w", err)
	}

	s := store.New(client,
		store.WithLogger(slog.Default()),
		store.WithNotifier(store.NewLogNotifier(slog.Default())),
	)

	// The token claims give the UI a privilege hint before /users/me lands.
	if claims, claimsErr := api.ParseTokenClaims(settings.API.AccessToken); claimsErr == nil {
		s.SetRoleHint(claims.Role)
	}

	return s, settings, nil
}

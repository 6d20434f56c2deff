package tui

import (
	"fmt"
	"time"

	"github.com/ogiraldo/inkflow/internal/store"
	"github.com/ogiraldo/inkflow/internal/tui/themes"
)

// Config holds the dependencies and tunables of the terminal UI.
type Config struct {
	Store          *store.Store
	Theme          themes.Theme
	RequestTimeout time.Duration
	Width          int
	Height         int
}

// Option configures the TUI.
type Option func(*Config)

// WithStore sets the application store. Required.
func WithStore(s *store.Store) Option {
	return func(c *Config) {
		c.Store = s
	}
}

// WithTheme sets the visual theme.
func WithTheme(theme themes.Theme) Option {
	return func(c *Config) {
		c.Theme = theme
	}
}

// WithRequestTimeout bounds each remote call issued from the UI.
func WithRequestTimeout(timeout time.Duration) Option {
	return func(c *Config) {
		if timeout > 0 {
			c.RequestTimeout = timeout
		}
	}
}

// WithSize sets the initial terminal size, mostly for tests.
func WithSize(width, height int) Option {
	return func(c *Config) {
		c.Width = width
		c.Height = height
	}
}

func newConfig(opts ...Option) (Config, error) {
	cfg := Config{
		Theme:          themes.Default,
		RequestTimeout: 30 * time.Second,
		Width:          80,
		Height:         24,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Store == nil {
		return Config{}, fmt.Errorf("store is required")
	}
	return cfg, nil
}

package tui

import (
	"context"
	"time"

	"github.com/Veraticus/hpqaq/internal/model"
	"github.com/Veraticus/hpqaq/internal/tui/themes"
)

// Config holds TUI configuration.
type Config struct {
	Context      context.Context
	Backend      Backend
	Preferences  Preferences
	Opener       func(url string) error
	Now          func() time.Time
	Theme        themes.Theme
	City         string
	NewsThrottle time.Duration
	NewsLimit    int
	PageSize     int
	Width        int
	Height       int
	MouseSupport bool
}

// Option is a functional option for configuring the TUI.
type Option func(*Config)

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		Context:      context.Background(),
		Theme:        themes.Default,
		Opener:       OpenBrowser,
		Now:          time.Now,
		NewsThrottle: 5 * time.Minute,
		NewsLimit:    20,
		PageSize:     model.DefaultPageSize,
		Width:        120,
		Height:       40,
		MouseSupport: true,
	}
}

// WithBackend sets the API the dashboard reads from.
func WithBackend(b Backend) Option {
	return func(c *Config) {
		c.Backend = b
	}
}

// WithPreferences sets where city and page size are remembered.
func WithPreferences(p Preferences) Option {
	return func(c *Config) {
		c.Preferences = p
	}
}

// WithTheme sets the visual theme.
func WithTheme(theme themes.Theme) Option {
	return func(c *Config) {
		c.Theme = theme
	}
}

// WithSize sets the initial terminal size.
func WithSize(width, height int) Option {
	return func(c *Config) {
		c.Width = width
		c.Height = height
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(c *Config) {
		c.Now = now
	}
}

// WithOpener replaces the system browser launcher.
func WithOpener(open func(url string) error) Option {
	return func(c *Config) {
		c.Opener = open
	}
}

// WithNews sets the headline count and the implicit refresh throttle.
func WithNews(limit int, throttle time.Duration) Option {
	return func(c *Config) {
		c.NewsLimit = limit
		c.NewsThrottle = throttle
	}
}

// WithPageSize sets the initial page size.
func WithPageSize(size int) Option {
	return func(c *Config) {
		c.PageSize = size
	}
}

// WithCity preselects a city when the API offers it.
func WithCity(city string) Option {
	return func(c *Config) {
		c.City = city
	}
}

// WithContext sets the parent of every request context.
func WithContext(ctx context.Context) Option {
	return func(c *Config) {
		c.Context = ctx
	}
}

// WithMouse toggles mouse support.
func WithMouse(enabled bool) Option {
	return func(c *Config) {
		c.MouseSupport = enabled
	}
}

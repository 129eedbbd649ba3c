package tui

import (
	"context"

	"github.com/Veraticus/hpqaq/internal/api"
	"github.com/Veraticus/hpqaq/internal/model"
	"github.com/Veraticus/hpqaq/internal/storage"
)

// Backend is the house-price API as the dashboard uses it.
type Backend interface {
	Health(ctx context.Context) (*model.Health, error)
	Listings(ctx context.Context, filter model.Filter, page model.PageState) (*model.ListingsPage, error)
	PriceTrend(ctx context.Context, filter model.Filter) (*model.TrendResponse, error)
	FangNews(ctx context.Context, city string, limit int) (*model.NewsResponse, error)
	Bizcircles(ctx context.Context, city string) ([]string, error)
	HistoricalAvgPrice(ctx context.Context, q api.HistoricalQuery) (*model.HistoricalResponse, error)
}

// Preferences persists dashboard settings between runs.
type Preferences interface {
	LoadUIPrefs(ctx context.Context) (storage.UIPrefs, error)
	SaveUIPrefs(ctx context.Context, prefs storage.UIPrefs) error
}

var (
	_ Backend     = (*api.Client)(nil)
	_ Preferences = (*storage.SQLiteStorage)(nil)
)

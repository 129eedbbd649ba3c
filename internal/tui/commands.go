package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/Veraticus/hpqaq/internal/api"
	"github.com/Veraticus/hpqaq/internal/common"
	"github.com/Veraticus/hpqaq/internal/model"
	"github.com/Veraticus/hpqaq/internal/storage"
	"github.com/Veraticus/hpqaq/internal/tui/components"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/browser"
	"golang.org/x/sync/errgroup"
)

var healthRetry = common.RetryOptions{
	MaxAttempts:  3,
	InitialDelay: 300 * time.Millisecond,
	MaxDelay:     2 * time.Second,
	Multiplier:   2,
}

// checkHealth asks the API for its status, retrying transport failures only.
func checkHealth(ctx context.Context, b Backend) tea.Cmd {
	return func() tea.Msg {
		var health *model.Health
		err := common.WithRetry(ctx, func() error {
			h, err := b.Health(ctx)
			if err != nil {
				var netErr *api.NetworkError
				return &common.RetryableError{Err: err, Retryable: errors.As(err, &netErr)}
			}
			health = h
			return nil
		}, healthRetry)
		return healthMsg{health: health, err: err}
	}
}

func fetchListings(ctx context.Context, b Backend, token uint64, filter model.Filter, page model.PageState) tea.Cmd {
	return func() tea.Msg {
		start := time.Now()
		resp, err := b.Listings(ctx, filter, page)
		common.LogDebug("listings fetched", common.Fields{
			"city":     filter.City,
			"page":     page.Page,
			"token":    token,
			"duration": time.Since(start),
			"failed":   err != nil,
		})
		return listLoadedMsg{token: token, page: resp, err: err}
	}
}

func fetchTrend(ctx context.Context, b Backend, token uint64, filter model.Filter) tea.Cmd {
	return func() tea.Msg {
		resp, err := b.PriceTrend(ctx, filter)
		return trendLoadedMsg{token: token, resp: resp, err: err}
	}
}

func fetchNews(ctx context.Context, b Backend, token uint64, city string, limit int) tea.Cmd {
	return func() tea.Msg {
		resp, err := b.FangNews(ctx, city, limit)
		return newsLoadedMsg{token: token, city: city, resp: resp, err: err}
	}
}

func fetchBizcircles(ctx context.Context, b Backend, token uint64, city string) tea.Cmd {
	return func() tea.Msg {
		list, err := b.Bizcircles(ctx, city)
		return bizcirclesLoadedMsg{token: token, city: city, list: list, err: err}
	}
}

func fetchHistorical(ctx context.Context, b Backend, token uint64, q components.StatsQuery) tea.Cmd {
	return func() tea.Msg {
		resp, err := b.HistoricalAvgPrice(ctx, api.HistoricalQuery{
			Range:     q.Range,
			City:      q.City,
			Bizcircle: q.Bizcircle,
		})
		msg := statsLoadedMsg{token: token, query: q, err: err}
		if err != nil {
			return msg
		}
		if !resp.OK {
			msg.failed = resp.Error
			if msg.failed == "" {
				msg.failed = "ok=false"
			}
			return msg
		}
		msg.rows = resp.Data
		return msg
	}
}

// FetchCompare loads every target in parallel. The first failure cancels the
// rest; a target answered with ok=false contributes an empty series.
func FetchCompare(ctx context.Context, b Backend, r model.MonthRange, targets []model.CompareTarget) ([]model.Series, error) {
	series := make([]model.Series, len(targets))
	g, gctx := errgroup.WithContext(ctx)
	for i, target := range targets {
		g.Go(func() error {
			resp, err := b.HistoricalAvgPrice(gctx, api.HistoricalQuery{
				Range:     r,
				City:      target.City,
				Bizcircle: target.Bizcircle,
			})
			if err != nil {
				return fmt.Errorf("%s: %w", target.Label, err)
			}
			series[i] = model.Series{CompareTarget: target}
			if resp.OK {
				series[i].Rows = resp.Data
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return series, nil
}

func fetchCompare(ctx context.Context, b Backend, token uint64, q components.StatsQuery) tea.Cmd {
	return func() tea.Msg {
		series, err := FetchCompare(ctx, b, q.Range, q.Targets)
		return statsLoadedMsg{token: token, query: q, series: series, err: err}
	}
}

func savePrefs(p Preferences, prefs storage.UIPrefs) tea.Cmd {
	if p == nil {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		return prefsSavedMsg{err: p.SaveUIPrefs(ctx, prefs)}
	}
}

func openLink(open func(string) error, url string) tea.Cmd {
	return func() tea.Msg {
		return linkOpenedMsg{err: open(url)}
	}
}

var quietBrowser = sync.OnceFunc(func() {
	browser.Stdout = io.Discard
	browser.Stderr = io.Discard
})

// OpenBrowser opens url with the platform's default handler. The handler's
// output is discarded so it cannot draw over the dashboard.
func OpenBrowser(url string) error {
	quietBrowser()
	if err := browser.OpenURL(url); err != nil {
		return fmt.Errorf("failed to open browser: %w", err)
	}
	return nil
}

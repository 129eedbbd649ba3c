package api

import (
	"context"
	"strconv"

	"github.com/Veraticus/hpqaq/internal/model"
)

// Backend paths.
const (
	PathHealth     = "/api/health"
	PathListings   = "/api/listings"
	PathPriceTrend = "/api/price_trend"
	PathFangNews   = "/api/fang_news"
	PathBizcircles = "/api/bizcircles"
	PathHistorical = "/api/historical_avg_price"
)

// Health reports backend status and the cities it serves.
func (c *Client) Health(ctx context.Context) (*model.Health, error) {
	var out model.Health
	if err := c.Get(ctx, PathHealth, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Listings fetches one page of transactions matching filter.
func (c *Client) Listings(ctx context.Context, filter model.Filter, page model.PageState) (*model.ListingsPage, error) {
	params := filter.Params()
	for k, v := range page.Params() {
		params[k] = v
	}

	var out model.ListingsPage
	if err := c.Get(ctx, PathListings, params, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PriceTrend fetches the monthly trend for filter.
func (c *Client) PriceTrend(ctx context.Context, filter model.Filter) (*model.TrendResponse, error) {
	var out model.TrendResponse
	if err := c.Get(ctx, PathPriceTrend, filter.Params(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// FangNews fetches ranked headlines for city. A non-positive limit lets the
// backend choose.
func (c *Client) FangNews(ctx context.Context, city string, limit int) (*model.NewsResponse, error) {
	params := map[string]string{"city": city}
	if limit > 0 {
		params["limit"] = strconv.Itoa(limit)
	}

	var out model.NewsResponse
	if err := c.Get(ctx, PathFangNews, params, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Bizcircles lists the business circles known for city.
func (c *Client) Bizcircles(ctx context.Context, city string) ([]string, error) {
	var out model.BizcirclesResponse
	if err := c.Get(ctx, PathBizcircles, map[string]string{"city": city}, &out); err != nil {
		return nil, err
	}
	return out.Bizcircles, nil
}

// HistoricalQuery selects monthly statistics for a city or bizcircle.
type HistoricalQuery struct {
	Range     model.MonthRange
	City      string
	Bizcircle string
}

// HistoricalAvgPrice fetches monthly averages. A response with ok=false is
// returned as is; callers decide how to surface it.
func (c *Client) HistoricalAvgPrice(ctx context.Context, q HistoricalQuery) (*model.HistoricalResponse, error) {
	params := map[string]string{
		"city":        q.City,
		"bizcircle":   q.Bizcircle,
		"start_month": q.Range.Start,
		"end_month":   q.Range.End,
	}

	var out model.HistoricalResponse
	if err := c.Get(ctx, PathHistorical, params, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

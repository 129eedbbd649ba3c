package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/Veraticus/hpqaq/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := NewClient(srv.URL)
	require.NoError(t, err)
	return c
}

func TestQuery_DropsBlankParams(t *testing.T) {
	q := Query(map[string]string{
		"city":      " beijing ",
		"region":    "  ",
		"bizcircle": "",
		"layout":    "2室1厅",
	})

	assert.Equal(t, "beijing", q.Get("city"))
	assert.NotContains(t, q, "region")
	assert.NotContains(t, q, "bizcircle")
	assert.Equal(t, "2室1厅", q.Get("layout"))
}

func TestClient_BuildURL(t *testing.T) {
	c, err := NewClient("http://example.com/base/")
	require.NoError(t, err)

	got := c.BuildURL("/api/listings", map[string]string{"city": "sh", "community": "a b"})
	u, err := url.Parse(got)
	require.NoError(t, err)
	assert.Equal(t, "/base/api/listings", u.Path)
	assert.Equal(t, "a b", u.Query().Get("community"))
	assert.Equal(t, "sh", u.Query().Get("city"))
}

func TestNewClient_RejectsBadScheme(t *testing.T) {
	_, err := NewClient("ftp://example.com")
	assert.Error(t, err)

	c, err := NewClient("")
	require.NoError(t, err)
	assert.Equal(t, DefaultBaseURL, c.BaseURL())
}

func TestClient_Get_SendsHeaders(t *testing.T) {
	var gotAccept, gotID string
	var gotQuery url.Values
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAccept = r.Header.Get("Accept")
		gotID = r.Header.Get("X-Request-ID")
		gotQuery = r.URL.Query()
		_, _ = fmt.Fprint(w, `{"ok":true,"cities":["beijing","taibei"]}`)
	})

	var h model.Health
	require.NoError(t, c.Get(context.Background(), PathHealth, map[string]string{"x": " "}, &h))
	assert.True(t, h.OK)
	assert.Equal(t, []string{"beijing", "taibei"}, h.Cities)
	assert.Equal(t, "application/json", gotAccept)
	assert.NotEmpty(t, gotID)
	assert.Empty(t, gotQuery)
}

func TestClient_Get_Errors(t *testing.T) {
	t.Run("non 2xx", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			_, _ = fmt.Fprint(w, "upstream down")
		})

		err := c.Get(context.Background(), PathListings, nil, &model.ListingsPage{})
		var reqErr *RequestError
		require.ErrorAs(t, err, &reqErr)
		assert.Equal(t, http.StatusBadGateway, reqErr.Status)
		assert.Equal(t, "upstream down", reqErr.Body)
		assert.Equal(t, "HTTP 502: upstream down", reqErr.Error())
	})

	t.Run("bad json", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = fmt.Fprint(w, `{"points": [`)
		})

		err := c.Get(context.Background(), PathPriceTrend, nil, &model.TrendResponse{})
		var parseErr *ParseError
		assert.ErrorAs(t, err, &parseErr)
	})

	t.Run("network", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
		base := srv.URL
		srv.Close()

		c, err := NewClient(base)
		require.NoError(t, err)
		err = c.Get(context.Background(), PathHealth, nil, &model.Health{})
		var netErr *NetworkError
		assert.ErrorAs(t, err, &netErr)
		assert.False(t, IsAborted(err))
	})

	t.Run("cancelled", func(t *testing.T) {
		started := make(chan struct{})
		c := newTestClient(t, func(_ http.ResponseWriter, r *http.Request) {
			close(started)
			<-r.Context().Done()
		})

		ctx, cancel := context.WithCancel(context.Background())
		go func() {
			<-started
			cancel()
		}()

		err := c.Get(ctx, PathListings, nil, &model.ListingsPage{})
		assert.True(t, IsAborted(err))
		assert.True(t, errors.Is(err, ErrAborted))
	})

	t.Run("cancelled while rate limited", func(t *testing.T) {
		c, err := NewClient("http://127.0.0.1:1", WithRateLimit(0.001, 1))
		require.NoError(t, err)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err = c.Get(ctx, PathHealth, nil, nil)
		assert.True(t, IsAborted(err))
	})
}

func TestClient_Endpoints(t *testing.T) {
	var lastPath string
	var lastQuery url.Values
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		lastPath = r.URL.Path
		lastQuery = r.URL.Query()
		switch r.URL.Path {
		case PathListings:
			_, _ = fmt.Fprint(w, `{"items":[{"community":"A"}],"total":1,"page":1,"page_size":20}`)
		case PathPriceTrend:
			_, _ = fmt.Fprint(w, `{"points":[{"month":"2024-01","avg_unit_price_yuan_sqm":50000,"count":3}]}`)
		case PathFangNews:
			_, _ = fmt.Fprint(w, `{"items":[{"rank":1,"title":"T","url":"u"}],"fetched_at":"2024-05-01T10:00:00","source_url":"s"}`)
		case PathBizcircles:
			_, _ = fmt.Fprint(w, `{"bizcircles":["望京","国贸"]}`)
		case PathHistorical:
			_, _ = fmt.Fprint(w, `{"ok":true,"data":[{"year":2024,"month":1,"avg_unit_price_yuan_sqm":1,"count":2}]}`)
		default:
			http.NotFound(w, r)
		}
	})
	ctx := context.Background()

	page, err := c.Listings(ctx, model.Filter{City: "beijing", Region: " "}, model.PageState{Page: 2, PageSize: 50})
	require.NoError(t, err)
	assert.Equal(t, 1, page.Total)
	assert.Equal(t, PathListings, lastPath)
	assert.Equal(t, "2", lastQuery.Get("page"))
	assert.Equal(t, "50", lastQuery.Get("page_size"))
	assert.NotContains(t, lastQuery, "region")

	trend, err := c.PriceTrend(ctx, model.Filter{City: "beijing"})
	require.NoError(t, err)
	require.Len(t, trend.Points, 1)
	assert.Equal(t, 3, trend.Points[0].Count)
	assert.NotContains(t, lastQuery, "page")

	news, err := c.FangNews(ctx, "beijing", 5)
	require.NoError(t, err)
	assert.Equal(t, "5", lastQuery.Get("limit"))
	assert.Equal(t, "s", news.SourceURL)

	biz, err := c.Bizcircles(ctx, "beijing")
	require.NoError(t, err)
	assert.Equal(t, []string{"望京", "国贸"}, biz)

	hist, err := c.HistoricalAvgPrice(ctx, HistoricalQuery{City: "beijing", Range: model.DefaultMonthRange()})
	require.NoError(t, err)
	assert.True(t, hist.OK)
	assert.Equal(t, "2024-01", hist.Data[0].YearMonth())
	assert.Equal(t, "2023-01", lastQuery.Get("start_month"))
	assert.NotContains(t, lastQuery, "bizcircle")
}

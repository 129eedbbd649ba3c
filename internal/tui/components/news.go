package components

import (
	"strings"
	"time"

	"github.com/Veraticus/hpqaq/internal/locale"
	"github.com/Veraticus/hpqaq/internal/model"
	"github.com/Veraticus/hpqaq/internal/render"
	"github.com/Veraticus/hpqaq/internal/tui/themes"
	"github.com/dustin/go-humanize"
)

var fetchedLayouts = []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02T15:04:05"}

// FetchedAgo renders a fetched_at stamp relative to now. Unparsable stamps
// are shown as sent.
func FetchedAgo(stamp string, now time.Time) string {
	stamp = strings.TrimSpace(stamp)
	if stamp == "" {
		return locale.Missing
	}
	for _, layout := range fetchedLayouts {
		if t, err := time.ParseInLocation(layout, stamp, time.Local); err == nil {
			return humanize.RelTime(t, now, "ago", "from now")
		}
	}
	return stamp
}

// NewsPanel lists ranked headlines.
type NewsPanel struct {
	theme   themes.Theme
	ctx     locale.Context
	err     string
	fetched string
	source  string
	rows    []render.NewsRow
	loaded  bool
	loading bool
}

// NewNewsPanel creates an empty panel.
func NewNewsPanel(theme themes.Theme, ctx locale.Context) NewsPanel {
	return NewsPanel{theme: theme, ctx: ctx}
}

// SetLocale switches the locale used for labels.
func (n NewsPanel) SetLocale(ctx locale.Context) NewsPanel {
	n.ctx = ctx
	return n
}

// SetLoading marks a fetch in flight. Starting one clears the previous
// error and headlines so the panel shows the loading state.
func (n NewsPanel) SetLoading(loading bool) NewsPanel {
	n.loading = loading
	if loading {
		n.err = ""
		n.rows = nil
		n.loaded = false
	}
	return n
}

// SetNews shows resp, fetched relative to now.
func (n NewsPanel) SetNews(resp model.NewsResponse, now time.Time) NewsPanel {
	n.rows, _ = render.NewsList(resp.Items)
	n.fetched = FetchedAgo(resp.FetchedAt, now)
	n.source = resp.SourceURL
	n.err = ""
	n.loaded = true
	n.loading = false
	return n
}

// SetError replaces the list with an inline error.
func (n NewsPanel) SetError(msg string) NewsPanel {
	n.err = msg
	n.rows = nil
	n.loading = false
	return n
}

// Rows returns the displayed headlines.
func (n NewsPanel) Rows() []render.NewsRow {
	return n.rows
}

// View renders the panel body.
func (n NewsPanel) View() string {
	var b strings.Builder
	switch {
	case n.err != "":
		b.WriteString(n.theme.StatusError.Render(n.err))
		return b.String()
	case n.loading && !n.loaded:
		b.WriteString(n.theme.StatusPending.Render(n.ctx.T(locale.KeyMetaLoading, nil)))
		return b.String()
	case len(n.rows) == 0:
		b.WriteString(n.theme.Subtitle.Render(n.ctx.T(locale.KeyEmptyNews, nil)))
		return b.String()
	}

	for _, r := range n.rows {
		b.WriteString(n.theme.Badge.Render(r.Rank))
		b.WriteString(n.theme.Normal.Render(r.Title))
		if r.Sub != "" {
			b.WriteString(" " + n.theme.Subtitle.Render(r.Sub))
		}
		b.WriteString("\n")
	}
	b.WriteString(n.theme.Subtitle.Render(n.ctx.T(locale.KeyNewsFetched, locale.Vars{"ago": n.fetched})))
	if n.source != "" {
		b.WriteString("\n")
		b.WriteString(n.theme.Subtitle.Render(n.ctx.T(locale.KeyNewsSource, locale.Vars{"url": n.source})))
	}
	return b.String()
}

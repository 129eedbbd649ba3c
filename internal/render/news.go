package render

import (
	"sort"
	"strconv"
	"strings"

	"github.com/Veraticus/hpqaq/internal/model"
)

// NewsRow is one rendered headline.
type NewsRow struct {
	Rank  string
	Title string
	Sub   string
	URL   string
}

// NewsList renders headlines ordered by rank. Unranked items keep their
// position after the ranked ones. The bool is false for an empty list.
func NewsList(items []model.NewsItem) ([]NewsRow, bool) {
	if len(items) == 0 {
		return nil, false
	}

	sorted := make([]model.NewsItem, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		ri, rj := sorted[i].Rank, sorted[j].Rank
		if ri <= 0 || rj <= 0 {
			return ri > 0 && rj <= 0
		}
		return ri < rj
	})

	rows := make([]NewsRow, 0, len(sorted))
	for i, it := range sorted {
		rank := it.Rank
		if rank <= 0 {
			rank = i + 1
		}
		title := strings.TrimSpace(it.Title)
		if title == "" {
			title = "-"
		}
		rows = append(rows, NewsRow{
			Rank:  strconv.Itoa(rank),
			Title: title,
			Sub:   strings.TrimSpace(it.Sub),
			URL:   strings.TrimSpace(it.URL),
		})
	}
	return rows, true
}

package render

import (
	"sort"

	"github.com/Veraticus/hpqaq/internal/model"
)

// Aligned holds compared series on a shared month axis.
type Aligned struct {
	// Months is the sorted union of every series' months.
	Months []string
	// Cells[s][m] is series s at Months[m], or nil when that series has no
	// bucket for the month.
	Cells [][]*model.StatRow
}

// AlignSeries aligns series onto the sorted union of their months. Missing
// buckets stay nil. A month repeated within a series keeps its first row.
func AlignSeries(series []model.Series) Aligned {
	seen := make(map[string]bool)
	for _, s := range series {
		for _, r := range s.Rows {
			seen[r.YearMonth()] = true
		}
	}

	months := make([]string, 0, len(seen))
	for m := range seen {
		months = append(months, m)
	}
	sort.Strings(months)

	index := make(map[string]int, len(months))
	for i, m := range months {
		index[m] = i
	}

	cells := make([][]*model.StatRow, len(series))
	for si, s := range series {
		cells[si] = make([]*model.StatRow, len(months))
		for ri := range s.Rows {
			mi := index[s.Rows[ri].YearMonth()]
			if cells[si][mi] == nil {
				cells[si][mi] = &s.Rows[ri]
			}
		}
	}

	return Aligned{Months: months, Cells: cells}
}

package model

import (
	"errors"
	"fmt"
	"regexp"
)

// StatRow is one month of /api/historical_avg_price.
type StatRow struct {
	RawYearMonth  string `json:"year_month,omitempty"`
	AvgUnitPrice  Number `json:"avg_unit_price_yuan_sqm"`
	AvgTotalPrice Number `json:"avg_total_price_wan"`
	Year          int    `json:"year,omitempty"`
	Month         int    `json:"month,omitempty"`
	Count         int    `json:"count"`
}

// YearMonth returns "YYYY-MM", derived from Year and Month when the API
// omitted year_month.
func (r StatRow) YearMonth() string {
	if r.RawYearMonth != "" {
		return r.RawYearMonth
	}
	return fmt.Sprintf("%d-%02d", r.Year, r.Month)
}

// HistoricalResponse is the /api/historical_avg_price response.
type HistoricalResponse struct {
	Error string    `json:"error,omitempty"`
	Data  []StatRow `json:"data"`
	OK    bool      `json:"ok"`
}

// CompareTarget is one entity of a comparison.
type CompareTarget struct {
	City      string
	Bizcircle string
	Label     string
}

// Series is the fetched data for one compared entity.
type Series struct {
	CompareTarget
	Rows []StatRow
}

// Month range errors.
var (
	ErrInvalidMonth    = errors.New("month must be formatted YYYY-MM")
	ErrStartAfterEnd   = errors.New("start month is after end month")
	ErrTooFewSelection = errors.New("at least two entities are required")
)

var monthRe = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// MonthRange is an inclusive range of "YYYY-MM" months.
type MonthRange struct {
	Start string
	End   string
}

// DefaultMonthRange covers the years the statistics backend aggregates.
func DefaultMonthRange() MonthRange {
	return MonthRange{Start: "2023-01", End: "2025-12"}
}

// Validate checks format and ordering. YYYY-MM strings order lexically.
func (r MonthRange) Validate() error {
	if !monthRe.MatchString(r.Start) {
		return fmt.Errorf("%w: %q", ErrInvalidMonth, r.Start)
	}
	if !monthRe.MatchString(r.End) {
		return fmt.Errorf("%w: %q", ErrInvalidMonth, r.End)
	}
	if r.Start > r.End {
		return ErrStartAfterEnd
	}
	return nil
}

package model

import (
	"strconv"
	"strings"
)

// PageSizes are the page sizes offered by the pager.
var PageSizes = []int{10, 20, 50, 100}

// DefaultPageSize is used when no valid size is configured.
const DefaultPageSize = 20

// Filter holds the listing filters. Blank fields are never sent.
type Filter struct {
	City      string
	Region    string
	Bizcircle string
	Community string
	Layout    string
}

// Trimmed returns a copy with every field trimmed.
func (f Filter) Trimmed() Filter {
	return Filter{
		City:      strings.TrimSpace(f.City),
		Region:    strings.TrimSpace(f.Region),
		Bizcircle: strings.TrimSpace(f.Bizcircle),
		Community: strings.TrimSpace(f.Community),
		Layout:    strings.TrimSpace(f.Layout),
	}
}

// Params returns the query parameters for the filter.
func (f Filter) Params() map[string]string {
	return map[string]string{
		"city":      f.City,
		"region":    f.Region,
		"bizcircle": f.Bizcircle,
		"community": f.Community,
		"layout":    f.Layout,
	}
}

// PageState is the pagination cursor.
type PageState struct {
	Page     int
	PageSize int
	Total    int
}

// NewPageState returns page 1 with the given size.
func NewPageState(size int) PageState {
	if size <= 0 {
		size = DefaultPageSize
	}
	return PageState{Page: 1, PageSize: size}
}

// MaxPage is max(1, ceil(total/pageSize)).
func (p PageState) MaxPage() int {
	size := p.PageSize
	if size <= 0 {
		size = DefaultPageSize
	}
	if p.Total <= 0 {
		return 1
	}
	return (p.Total + size - 1) / size
}

// CanPrev reports whether a previous page exists.
func (p PageState) CanPrev() bool {
	return p.Page > 1
}

// CanNext reports whether a next page exists.
func (p PageState) CanNext() bool {
	return p.Page < p.MaxPage()
}

// Clamp keeps Page within [1, MaxPage].
func (p PageState) Clamp() PageState {
	if p.Page < 1 {
		p.Page = 1
	}
	if maxPage := p.MaxPage(); p.Page > maxPage {
		p.Page = maxPage
	}
	return p
}

// Params returns the page and page_size parameters.
func (p PageState) Params() map[string]string {
	return map[string]string{
		"page":      strconv.Itoa(p.Page),
		"page_size": strconv.Itoa(p.PageSize),
	}
}

// NextPageSize cycles through PageSizes.
func NextPageSize(current int) int {
	for i, s := range PageSizes {
		if s == current {
			return PageSizes[(i+1)%len(PageSizes)]
		}
	}
	return DefaultPageSize
}

package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageState_MaxPage(t *testing.T) {
	tests := []struct {
		name  string
		total int
		size  int
		want  int
	}{
		{name: "empty", total: 0, size: 20, want: 1},
		{name: "exact", total: 40, size: 20, want: 2},
		{name: "remainder", total: 41, size: 20, want: 3},
		{name: "single", total: 1, size: 100, want: 1},
		{name: "zero size falls back", total: 45, size: 0, want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := PageState{Page: 1, PageSize: tt.size, Total: tt.total}
			assert.Equal(t, tt.want, p.MaxPage())
		})
	}
}

func TestPageState_Navigation(t *testing.T) {
	p := PageState{Page: 1, PageSize: 20, Total: 41}
	assert.False(t, p.CanPrev())
	assert.True(t, p.CanNext())

	p.Page = 3
	assert.True(t, p.CanPrev())
	assert.False(t, p.CanNext())

	p.Page = 9
	assert.Equal(t, 3, p.Clamp().Page)
	p.Page = 0
	assert.Equal(t, 1, p.Clamp().Page)

	assert.Equal(t, map[string]string{"page": "1", "page_size": "20"}, NewPageState(0).Params())
}

func TestFilter_Trimmed(t *testing.T) {
	f := Filter{City: " beijing ", Region: "  ", Layout: "3室 "}.Trimmed()
	assert.Equal(t, "beijing", f.City)
	assert.Empty(t, f.Region)
	assert.Equal(t, "3室", f.Layout)
}

func TestNextPageSize(t *testing.T) {
	assert.Equal(t, 50, NextPageSize(20))
	assert.Equal(t, 10, NextPageSize(100))
	assert.Equal(t, DefaultPageSize, NextPageSize(7))
}

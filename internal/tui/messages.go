package tui

import (
	"github.com/Veraticus/hpqaq/internal/model"
	"github.com/Veraticus/hpqaq/internal/tui/components"
)

// Lane results. Each carries the token of the request that produced it.

type healthMsg struct {
	err    error
	health *model.Health
}

type listLoadedMsg struct {
	err   error
	page  *model.ListingsPage
	token uint64
}

type trendLoadedMsg struct {
	err   error
	resp  *model.TrendResponse
	token uint64
}

type newsLoadedMsg struct {
	err   error
	resp  *model.NewsResponse
	city  string
	token uint64
}

type bizcirclesLoadedMsg struct {
	err   error
	city  string
	list  []string
	token uint64
}

type statsLoadedMsg struct {
	err    error
	failed string
	query  components.StatsQuery
	rows   []model.StatRow
	series []model.Series
	token  uint64
}

type linkOpenedMsg struct {
	err error
}

type prefsSavedMsg struct {
	err error
}

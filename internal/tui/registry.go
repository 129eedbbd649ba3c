package tui

import (
	"github.com/Veraticus/hpqaq/internal/locale"
	"github.com/Veraticus/hpqaq/internal/tui/components"
)

// Dashboard element ids outside the filter form.
const (
	idAppTitle     = "app-title"
	idNavDashboard = "nav-dashboard"
	idNavStats     = "nav-stats"
	idChip         = "chip"
	idTitleFilters = "title-filters"
	idDescFilters  = "desc-filters"
	idTitleList    = "title-list"
	idDescList     = "desc-list"
	idTitleTrend   = "title-trend"
	idDescTrend    = "desc-trend"
	idTitleNews    = "title-news"
	idTitleStats   = "title-stats"
	idPageSize     = "page-size"
)

// newRegistry binds every static dashboard label to its key.
func newRegistry() *locale.Registry {
	label := func(id string, k locale.Key) locale.Binding {
		return locale.Binding{ID: id, Key: k, Slot: locale.SlotLabel}
	}
	placeholder := func(id string, k locale.Key) locale.Binding {
		return locale.Binding{ID: id, Key: k, Slot: locale.SlotPlaceholder}
	}

	return locale.NewRegistry(
		label(idAppTitle, locale.KeyAppTitle),
		label(idNavDashboard, locale.KeyNavDashboard),
		label(idNavStats, locale.KeyNavStats),
		label(idChip, locale.KeyChipConnected),
		label(idTitleFilters, locale.KeyTitleFilters),
		label(idDescFilters, locale.KeyDescFilters),
		label(idTitleList, locale.KeyTitleList),
		label(idDescList, locale.KeyDescList),
		label(idTitleTrend, locale.KeyTitleTrend),
		label(idDescTrend, locale.KeyDescTrend),
		label(idTitleNews, locale.KeyTitleNews),
		label(idTitleStats, locale.KeyStatTitle),
		label(idPageSize, locale.KeyLabelPageSize),
		label(components.FieldCity, locale.KeyLabelCity),
		label(components.FieldRegion, locale.KeyLabelRegion),
		label(components.FieldBizcircle, locale.KeyLabelBiz),
		label(components.FieldCommunity, locale.KeyLabelComm),
		label(components.FieldLayout, locale.KeyLabelLayout),
		placeholder(components.FieldRegion, locale.KeyPhRegion),
		placeholder(components.FieldBizcircle, locale.KeyPhBiz),
		placeholder(components.FieldCommunity, locale.KeyPhComm),
		placeholder(components.FieldLayout, locale.KeyPhLayout),
	)
}

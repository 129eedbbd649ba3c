package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListingsPage_Rows(t *testing.T) {
	body := `{
		"items": [
			{"house_id": 101, "region": "朝阳", "community": "望京花园", "layout": "2室1厅",
			 "area_sqm": "89.5", "unit_price_yuan_sqm": 65000, "total_price_wan": 581.75,
			 "deal_date": "2024-03-02", "detail_url": "https://example.com/101"},
			{"house_id": "102", "community": ["bad"]}
		],
		"total": 42, "page": 2, "page_size": 20
	}`

	var page ListingsPage
	require.NoError(t, json.Unmarshal([]byte(body), &page))
	assert.Equal(t, 42, page.Total)

	rows := page.Rows()
	require.Len(t, rows, 2)

	first := rows[0]
	require.NoError(t, first.Err)
	assert.Equal(t, "101", first.Listing.HouseID.String())
	assert.Equal(t, "望京花园", first.Listing.Community.String())
	assert.InDelta(t, 89.5, first.Listing.AreaSqm.Value, 1e-9)
	assert.True(t, first.Listing.UnitPrice.Finite())
	assert.JSONEq(t, string(page.Items[0]), string(first.Raw))

	second := rows[1]
	assert.Error(t, second.Err)
	assert.NotEmpty(t, second.Raw)
}

func TestDecodeListing_Empty(t *testing.T) {
	_, err := DecodeListing(nil)
	assert.Error(t, err)
}

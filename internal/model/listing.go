package model

import (
	"encoding/json"
	"fmt"
)

// Listing is a single transaction record.
// HouseID and Region are kept for filtering but never shown in detail views.
type Listing struct {
	HouseID      Text   `json:"house_id"`
	Region       Text   `json:"region"`
	Community    Text   `json:"community"`
	Bizcircle    Text   `json:"bizcircle"`
	Layout       Text   `json:"layout"`
	Orientation  Text   `json:"orientation"`
	BuildingYear Text   `json:"building_year"`
	Floor        Text   `json:"floor"`
	DealDate     Text   `json:"deal_date"`
	CrawlTime    Text   `json:"crawl_time"`
	DetailURL    Text   `json:"detail_url"`
	AreaSqm      Number `json:"area_sqm"`
	UnitPrice    Number `json:"unit_price_yuan_sqm"`
	TotalPrice   Number `json:"total_price_wan"`
}

// ListingsPage is the /api/listings response.
type ListingsPage struct {
	Items    []json.RawMessage `json:"items"`
	Total    int               `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
}

// Row pairs a decoded listing with the payload it was decoded from.
type Row struct {
	Raw     json.RawMessage
	Listing Listing
	// Err is set when the payload could not be decoded; the row still
	// renders with whatever fields are missing shown as "-".
	Err error
}

// Rows decodes every item of the page. Undecodable items are kept.
func (p ListingsPage) Rows() []Row {
	rows := make([]Row, 0, len(p.Items))
	for _, raw := range p.Items {
		l, err := DecodeListing(raw)
		rows = append(rows, Row{Raw: raw, Listing: l, Err: err})
	}
	return rows
}

// DecodeListing decodes one listing payload.
func DecodeListing(raw json.RawMessage) (Listing, error) {
	var l Listing
	if len(raw) == 0 {
		return l, fmt.Errorf("empty listing payload")
	}
	if err := json.Unmarshal(raw, &l); err != nil {
		return Listing{}, fmt.Errorf("failed to decode listing: %w", err)
	}
	return l, nil
}

package model

// TrendPoint is one monthly bucket of /api/price_trend.
type TrendPoint struct {
	Month         string `json:"month"`
	AvgUnitPrice  Number `json:"avg_unit_price_yuan_sqm"`
	AvgTotalPrice Number `json:"avg_total_price_wan"`
	Count         int    `json:"count"`
}

// TrendResponse is the /api/price_trend response. Points are chronological.
type TrendResponse struct {
	Points []TrendPoint `json:"points"`
}

// NewsItem is one ranked headline.
type NewsItem struct {
	Title string `json:"title"`
	URL   string `json:"url"`
	Sub   string `json:"sub,omitempty"`
	Rank  int    `json:"rank"`
}

// NewsResponse is the /api/fang_news response.
type NewsResponse struct {
	FetchedAt string     `json:"fetched_at"`
	SourceURL string     `json:"source_url"`
	Items     []NewsItem `json:"items"`
}

// Health is the /api/health response.
type Health struct {
	Boot   string   `json:"boot,omitempty"`
	DB     string   `json:"db,omitempty"`
	Cities []string `json:"cities"`
	OK     bool     `json:"ok"`
}

// BizcirclesResponse is the /api/bizcircles response.
type BizcirclesResponse struct {
	Bizcircles []string `json:"bizcircles"`
}

package models

import "time"

// DistanceRecord is one (ticker, date) row of the combined table.
//
// Distance is either the percentage or the absolute gap between High and Low,
// depending on the mode used to build the table.
type DistanceRecord struct {
	Date     time.Time `json:"date"`
	Ticker   string    `json:"ticker"`
	Close    float64   `json:"close"`
	High     float64   `json:"high"`
	Low      float64   `json:"low"`
	Distance float64   `json:"distance"`
}

// DateRanking holds the median distance across tickers for a single date.
type DateRanking struct {
	Date           time.Time `json:"date"`
	MedianDistance float64   `json:"median_distance"`
}

// TickerRanking is the per-ticker projection used by day drill-downs.
type TickerRanking struct {
	Ticker   string  `json:"ticker" example:"GGAL"`
	Close    float64 `json:"close" example:"41.25"`
	High     float64 `json:"high" example:"42.10"`
	Low      float64 `json:"low" example:"39.80"`
	Distance float64 `json:"distance" example:"5.78"`
}

package models

import "time"

// PriceRecord represents one daily bar for a ticker as returned by a market data provider.
//
// Fields:
//   - Date: trading day, normalized to midnight UTC (see analysis.DayOf).
//   - Open, High, Low, Close: prices in the listing currency.
//   - Volume: shares traded during the day.
//
// Providers drop bars with missing high/low before returning them, so a
// PriceRecord always carries both values.
type PriceRecord struct {
	Date   time.Time `json:"date"`
	Open   float64   `json:"open"`
	High   float64   `json:"high"`
	Low    float64   `json:"low"`
	Close  float64   `json:"close"`
	Volume int64     `json:"volume"`
}

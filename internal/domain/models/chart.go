package models

// ChartSpec describes a bar chart for the presentation layer: one categorical
// x value per ticker, numeric y = distance, colored by distance.
type ChartSpec struct {
	Title      string       `json:"title"`
	XField     string       `json:"x_field"`
	YField     string       `json:"y_field"`
	YLabel     string       `json:"y_label"`
	Points     []ChartPoint `json:"points"`
	ColorScale ColorScale   `json:"color_scale"`
	Watermark  string       `json:"watermark"`
}

// ChartPoint is a single bar.
type ChartPoint struct {
	Ticker   string  `json:"ticker"`
	Distance float64 `json:"distance"`
}

// ColorScale maps the distance domain [Min, Max] onto a named continuous scheme.
type ColorScale struct {
	Field  string  `json:"field"`
	Scheme string  `json:"scheme"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
}

package analysis

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// Mode selects the distance formula applied to each daily bar.
type Mode string

const (
	// Percentage is (high-low)/low*100. Undefined when low is zero.
	Percentage Mode = "percentage"
	// Absolute is high-low rounded to 2 decimals. Always defined.
	Absolute Mode = "absolute"
)

// ParseMode accepts "percentage"/"percent"/"pct" and "absolute"/"abs".
// An empty string yields def.
func ParseMode(s string, def Mode) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return def, nil
	case "percentage", "percent", "pct":
		return Percentage, nil
	case "absolute", "abs":
		return Absolute, nil
	default:
		return "", fmt.Errorf("unknown distance mode %q", s)
	}
}

// Distance applies the formula of m. The second return is false when the
// distance is undefined for this bar.
func (m Mode) Distance(high, low float64) (float64, bool) {
	if m == Absolute {
		return AbsoluteDistance(high, low), true
	}
	return PercentageDistance(high, low)
}

// PercentageDistance returns (high-low)/low*100, or false when low == 0.
// Negative inputs are not validated.
func PercentageDistance(high, low float64) (float64, bool) {
	if low == 0 {
		return 0, false
	}
	return (high - low) / low * 100, true
}

// AbsoluteDistance returns high-low rounded half away from zero to 2 decimals.
func AbsoluteDistance(high, low float64) float64 {
	// decimal.NewFromFloat panics on NaN and Inf.
	if !finite(high) || !finite(low) {
		return math.Round((high-low)*100) / 100
	}
	return decimal.NewFromFloat(high).Sub(decimal.NewFromFloat(low)).Round(2).InexactFloat64()
}

func finite(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) }

package metrics

import (
	"math"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

var magnitudeUnits = []struct {
	size   float64
	suffix string
}{
	{1e12, "T"},
	{1e9, "B"},
	{1e6, "M"},
	{1e3, "K"},
}

// FormatMagnitude abbreviates large numbers with one decimal place:
// 67_200_000 -> "67.2M", 2.7e12 -> "2.7T", 758e9 -> "758B".
func FormatMagnitude(v float64) string {
	if !isFinite(v) {
		return nonFinite(v)
	}
	abs := math.Abs(v)
	for i, u := range magnitudeUnits {
		if abs < u.size {
			continue
		}
		scaled := decimal.NewFromFloat(v / u.size).Round(1)
		// 999.96K rounds to 1000.0K; show it as 1M instead
		if i > 0 && scaled.Abs().GreaterThanOrEqual(decimal.NewFromInt(1000)) {
			bigger := magnitudeUnits[i-1]
			return decimal.NewFromFloat(v/bigger.size).Round(1).String() + bigger.suffix
		}
		return scaled.String() + u.suffix
	}
	return decimal.NewFromFloat(v).Round(1).String()
}

// FormatPrice renders a dollar amount with two decimals: "$175.23", "-$1.23".
func FormatPrice(v float64) string {
	if !isFinite(v) {
		return nonFinite(v)
	}
	d := decimal.NewFromFloat(v)
	if d.IsNegative() {
		return "-$" + d.Neg().StringFixed(2)
	}
	return "$" + d.StringFixed(2)
}

// FormatSignedPrice is FormatPrice with an explicit "+" for non-negative amounts.
func FormatSignedPrice(v float64) string {
	if isFinite(v) && v >= 0 {
		return "+" + FormatPrice(v)
	}
	return FormatPrice(v)
}

// FormatSignedAmount renders a plain amount with two decimals and a sign: "+127.45".
func FormatSignedAmount(v float64) string {
	if !isFinite(v) {
		return nonFinite(v)
	}
	s := decimal.NewFromFloat(v).StringFixed(2)
	if v >= 0 {
		return "+" + s
	}
	return s
}

// FormatPercent renders v with the given number of decimals and a trailing "%".
func FormatPercent(v float64, places int32) string {
	if !isFinite(v) {
		return nonFinite(v)
	}
	return decimal.NewFromFloat(v).StringFixed(places) + "%"
}

// FormatSignedPercent renders a percent change with two decimals: "+1.35%", "-0.32%".
func FormatSignedPercent(v float64) string {
	s := FormatPercent(v, 2)
	if isFinite(v) && v >= 0 {
		return "+" + s
	}
	return s
}

// FormatGrouped renders v with thousands separators and up to two decimals: "19,845.35".
func FormatGrouped(v float64) string {
	if !isFinite(v) {
		return nonFinite(v)
	}
	return humanize.CommafWithDigits(v, 2)
}

func nonFinite(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

package metrics

import "math"

// Direction is the sign of a price move.
type Direction string

const (
	Up   Direction = "up"
	Down Direction = "down"
	Flat Direction = "flat"
)

// DirectionOf returns Up for positive changes, Down for negative ones and Flat otherwise.
func DirectionOf(change float64) Direction {
	switch {
	case change > 0:
		return Up
	case change < 0:
		return Down
	default:
		return Flat
	}
}

// RangePosition returns where price sits inside [low, high] as a percentage.
// The result is not clamped. When high == low the result is NaN or ±Inf.
func RangePosition(price, low, high float64) float64 {
	return (price - low) / (high - low) * 100
}

// RangePositionOK is RangePosition with the degenerate range guarded.
func RangePositionOK(price, low, high float64) (float64, bool) {
	if high == low {
		return 0, false
	}
	pos := RangePosition(price, low, high)
	if !isFinite(pos) {
		return 0, false
	}
	return pos, true
}

// PercentChange returns the change from first to last in percent.
// The result is non-finite when first == 0.
func PercentChange(first, last float64) float64 {
	return (last - first) / first * 100
}

// ChangePercent returns change relative to the previous price (price - change).
func ChangePercent(price, change float64) float64 {
	return PercentChange(price-change, price)
}

// SameSign reports whether changePercent carries the sign of change. A zero change
// only matches a zero percent.
func SameSign(change, changePercent float64) bool {
	return DirectionOf(change) == DirectionOf(changePercent)
}

// Mean averages values. It returns false for an empty slice.
func Mean(values []float64) (float64, bool) {
	if len(values) == 0 {
		return 0, false
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values)), true
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

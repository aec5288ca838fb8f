// Package entity defines the domain models for the quotes feature.
package entity

import (
	"errors"
	"fmt"
	"math"

	"stock_synth/internal/shared/metrics"
)

// ErrInvalidQuote is returned when a quote breaks a data invariant.
var ErrInvalidQuote = errors.New("invalid quote")

// PercentTolerance is how far, in percentage points, ChangePercent may drift from
// the value implied by Price and Change. Board figures are rounded to two places.
const PercentTolerance = 0.05

// Quote is one row of the live price board.
// Volume is display text ("45.2M") and is never re-derived.
type Quote struct {
	Symbol        string
	Price         float64
	Change        float64
	ChangePercent float64
	Volume        string
	SortKey       int
}

// Validate rejects non-finite numbers, a percent whose sign disagrees with the change,
// and a percent that does not match Change over PreviousPrice.
func (q Quote) Validate() error {
	if q.Symbol == "" {
		return fmt.Errorf("%w: empty symbol", ErrInvalidQuote)
	}
	for _, v := range []float64{q.Price, q.Change, q.ChangePercent} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s has a non-finite field", ErrInvalidQuote, q.Symbol)
		}
	}
	if !metrics.SameSign(q.Change, q.ChangePercent) {
		return fmt.Errorf("%w: %s change %v and percent %v disagree in sign",
			ErrInvalidQuote, q.Symbol, q.Change, q.ChangePercent)
	}
	if q.Change == 0 {
		return nil
	}
	if q.PreviousPrice() <= 0 {
		return fmt.Errorf("%w: %s previous price %v is not positive", ErrInvalidQuote, q.Symbol, q.PreviousPrice())
	}
	if implied := metrics.ChangePercent(q.Price, q.Change); math.Abs(implied-q.ChangePercent) > PercentTolerance {
		return fmt.Errorf("%w: %s percent %v does not match change %v (%.2f)",
			ErrInvalidQuote, q.Symbol, q.ChangePercent, q.Change, implied)
	}
	return nil
}

// PreviousPrice is the price before the change was applied.
func (q Quote) PreviousPrice() float64 {
	return q.Price - q.Change
}

// Package entity defines the domain models for the indicators feature.
package entity

import (
	"errors"
	"fmt"
	"math"

	"stock_synth/internal/shared/metrics"
)

// ErrInvalidSample is returned when an indicator sample is out of range.
var ErrInvalidSample = errors.New("invalid indicator sample")

// Sample is one day of precomputed technical indicators for a symbol.
type Sample struct {
	Symbol string
	Seq    int
	Label  string
	Price  float64
	SMA20  float64
	SMA50  float64
	EMA12  float64
	EMA26  float64
	RSI    float64
	MACD   float64
	Signal float64
}

// Validate keeps RSI within [0, 100].
func (s Sample) Validate() error {
	if math.IsNaN(s.RSI) || s.RSI < 0 || s.RSI > 100 {
		return fmt.Errorf("%w: %s %s rsi %v outside [0, 100]", ErrInvalidSample, s.Symbol, s.Label, s.RSI)
	}
	return nil
}

// Histogram is MACD minus its signal line.
func (s Sample) Histogram() float64 {
	return s.MACD - s.Signal
}

// Position of the price relative to a moving average.
type Position string

const (
	Above Position = "Above"
	Below Position = "Below"
)

// PositionOf returns Above when price is strictly over average, Below otherwise.
func PositionOf(price, average float64) Position {
	if price > average {
		return Above
	}
	return Below
}

// Signal maps a Position to the leaning it shows on the dashboard.
func (p Position) Signal() metrics.Signal {
	if p == Above {
		return metrics.Bullish
	}
	return metrics.Bearish
}

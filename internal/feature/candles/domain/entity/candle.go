// Package entity defines the domain models for the candles feature.
package entity

import (
	"errors"
	"fmt"
)

// ErrInvalidCandle is returned when a bar breaks the OHLC ordering.
var ErrInvalidCandle = errors.New("invalid candle")

// Candle represents one OHLCV bar of a symbol's candlestick series.
// Bars are ordered by Seq; Label is the display date (e.g. "Jan 1").
type Candle struct {
	Symbol   string // Stock ticker symbol (e.g., "AAPL")
	Interval string // Time interval (e.g., "1day")
	Seq      int    // Position within the series, ascending
	Label    string // Date label shown on the chart axis
	Open     float64
	High     float64
	Low      float64
	Close    float64
	Volume   int64
}

// Validate checks high >= max(open, close) and low <= min(open, close).
func (c Candle) Validate() error {
	if c.High < max(c.Open, c.Close) {
		return fmt.Errorf("%w: %s %s high %v below open/close", ErrInvalidCandle, c.Symbol, c.Label, c.High)
	}
	if c.Low > min(c.Open, c.Close) {
		return fmt.Errorf("%w: %s %s low %v above open/close", ErrInvalidCandle, c.Symbol, c.Label, c.Low)
	}
	if c.Volume < 0 {
		return fmt.Errorf("%w: %s %s negative volume", ErrInvalidCandle, c.Symbol, c.Label)
	}
	return nil
}

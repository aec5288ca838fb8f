// Package entity defines the domain models for the movers feature.
package entity

import (
	"errors"
	"fmt"

	"stock_synth/internal/shared/metrics"
)

// ErrInvalidMover is returned when a mover breaks a data invariant.
var ErrInvalidMover = errors.New("invalid mover")

// Mover is a quote on the top gainers/losers board.
// Volume and MarketCap are display text.
type Mover struct {
	Symbol        string
	Name          string
	Price         float64
	Change        float64
	ChangePercent float64
	Volume        string
	MarketCap     string
}

func (m Mover) Validate() error {
	if m.Symbol == "" {
		return fmt.Errorf("%w: empty symbol", ErrInvalidMover)
	}
	if !metrics.SameSign(m.Change, m.ChangePercent) {
		return fmt.Errorf("%w: %s change %v and percent %v disagree in sign",
			ErrInvalidMover, m.Symbol, m.Change, m.ChangePercent)
	}
	return nil
}

// Ranked is a mover with its position on one side of the board.
type Ranked struct {
	Mover
	Rank int
}

// Podium reports whether the mover is in the top three.
func (r Ranked) Podium() bool {
	return r.Rank <= 3
}

// IsGainer reports whether the mover went up.
func (m Mover) IsGainer() bool {
	return m.ChangePercent > 0
}

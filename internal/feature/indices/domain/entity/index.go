// Package entity defines market indices and their intraday ticks.
package entity

import (
	"errors"
	"fmt"
	"math"

	"stock_synth/internal/shared/metrics"
)

var ErrInvalidIndex = errors.New("invalid index")

type Region string

const (
	Asia   Region = "Asia"
	US     Region = "US"
	Europe Region = "Europe"
)

// Regions is the display order of the regional summary.
var Regions = []Region{Asia, US, Europe}

func (r Region) Valid() bool {
	switch r {
	case Asia, US, Europe:
		return true
	}
	return false
}

// Title is the heading shown on the regional card.
func (r Region) Title() string {
	switch r {
	case Asia:
		return "Asian Markets"
	case Europe:
		return "European Markets"
	}
	return string(r) + " Markets"
}

type Index struct {
	Symbol        string
	Name          string
	Region        Region
	Flag          string
	Value         float64
	Change        float64
	ChangePercent float64
	Color         string
	SortKey       int
}

func (i Index) Validate() error {
	switch {
	case i.Symbol == "":
		return fmt.Errorf("%w: empty symbol", ErrInvalidIndex)
	case !i.Region.Valid():
		return fmt.Errorf("%w: %s unknown region %q", ErrInvalidIndex, i.Symbol, i.Region)
	case math.IsNaN(i.Value) || math.IsNaN(i.Change) || math.IsNaN(i.ChangePercent):
		return fmt.Errorf("%w: %s has NaN fields", ErrInvalidIndex, i.Symbol)
	case !metrics.SameSign(i.Change, i.ChangePercent):
		return fmt.Errorf("%w: %s change %v and percent %v disagree in sign", ErrInvalidIndex, i.Symbol, i.Change, i.ChangePercent)
	}
	return nil
}

// IntradayPoint is one index level at a time-of-day label.
type IntradayPoint struct {
	Index string
	Seq   int
	Time  string
	Value float64
}

// Package entity defines the simulated prediction payload.
package entity

import (
	"errors"
	"fmt"
	"maps"
	"slices"
)

var ErrInvalidPayload = errors.New("invalid prediction payload")

// ModelResult is one model's forecast and its scores.
type ModelResult struct {
	Prices       []float64
	Accuracy     float64
	RMSE         float64
	MAE          float64
	TrainingTime int
}

// Payload is the canned answer every prediction returns.
type Payload struct {
	Predictions  map[string]ModelResult
	ActualPrices []float64
	Dates        []string
}

// Validate requires every series to line up with Dates.
func (p Payload) Validate() error {
	if len(p.Predictions) == 0 {
		return fmt.Errorf("%w: no models", ErrInvalidPayload)
	}
	if len(p.ActualPrices) != len(p.Dates) {
		return fmt.Errorf("%w: %d actual prices for %d dates", ErrInvalidPayload, len(p.ActualPrices), len(p.Dates))
	}
	for name, m := range p.Predictions {
		if len(m.Prices) != len(p.Dates) {
			return fmt.Errorf("%w: model %s has %d prices for %d dates", ErrInvalidPayload, name, len(m.Prices), len(p.Dates))
		}
	}
	return nil
}

// Clone returns a deep copy.
func (p Payload) Clone() Payload {
	out := Payload{
		Predictions:  make(map[string]ModelResult, len(p.Predictions)),
		ActualPrices: slices.Clone(p.ActualPrices),
		Dates:        slices.Clone(p.Dates),
	}
	for name, m := range p.Predictions {
		m.Prices = slices.Clone(m.Prices)
		out.Predictions[name] = m
	}
	return out
}

// Models lists model names in sorted order.
func (p Payload) Models() []string {
	return slices.Sorted(maps.Keys(p.Predictions))
}

// Result is a payload answered for one request.
type Result struct {
	Symbol string
	Model  string
	Payload
}

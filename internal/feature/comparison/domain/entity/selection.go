// Package entity defines comparison workspaces and the series they chart.
package entity

import (
	"errors"
	"slices"
	"strings"
	"time"
)

// MaxStocks is the most symbols a workspace compares at once.
const MaxStocks = 5

// ErrLastStock is returned when removing the only remaining stock.
var ErrLastStock = errors.New("cannot remove the last stock from a comparison")

// Stock is one selected symbol with the chart color it is drawn in.
type Stock struct {
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
	Color  string `json:"color"`
}

// Selection is one client's comparison workspace.
// Stocks keeps insertion order and never holds the same symbol twice.
type Selection struct {
	ID        string    `json:"id"`
	Stocks    []Stock   `json:"stocks"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// NewSelection starts a workspace living for ttl from now, seeded with the given stocks.
func NewSelection(id string, now time.Time, ttl time.Duration, seed ...Stock) *Selection {
	s := &Selection{
		ID:        id,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
	for _, st := range seed {
		s.Add(st)
	}
	return s
}

func (s *Selection) Has(symbol string) bool {
	return slices.ContainsFunc(s.Stocks, func(st Stock) bool {
		return strings.EqualFold(st.Symbol, symbol)
	})
}

// Add appends st unless it is already selected or the selection is full.
// It reports whether the selection changed.
func (s *Selection) Add(st Stock) bool {
	if len(s.Stocks) >= MaxStocks || s.Has(st.Symbol) {
		return false
	}
	s.Stocks = append(s.Stocks, st)
	return true
}

// Remove drops symbol. Removing an unselected symbol is a no-op.
func (s *Selection) Remove(symbol string) error {
	i := slices.IndexFunc(s.Stocks, func(st Stock) bool {
		return strings.EqualFold(st.Symbol, symbol)
	})
	if i < 0 {
		return nil
	}
	if len(s.Stocks) == 1 {
		return ErrLastStock
	}
	s.Stocks = slices.Delete(s.Stocks, i, i+1)
	return nil
}

func (s *Selection) Symbols() []string {
	out := make([]string, 0, len(s.Stocks))
	for _, st := range s.Stocks {
		out = append(out, st.Symbol)
	}
	return out
}

func (s *Selection) Full() bool {
	return len(s.Stocks) >= MaxStocks
}

func (s *Selection) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

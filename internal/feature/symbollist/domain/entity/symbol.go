// Package entity defines the domain models for the symbollist feature.
package entity

import "strings"

// Symbol is one entry of the stock catalog: a tradable ticker with the
// chart color the dashboard draws it in.
type Symbol struct {
	Code     string
	Name     string
	Market   string
	Color    string // chart color token, e.g. "chart-1"
	IsActive bool
	SortKey  int
}

// Matches reports whether q is a case-insensitive substring of the code or name.
// An empty query matches everything.
func (s Symbol) Matches(q string) bool {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(s.Code), q) ||
		strings.Contains(strings.ToLower(s.Name), q)
}

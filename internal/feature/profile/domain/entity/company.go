// Package entity defines the company profile shown on the profile tab.
package entity

import (
	"errors"
	"fmt"
	"math"
)

var ErrInvalidCompany = errors.New("invalid company")

// Company holds profile facts. MarketCap, Volume, AvgVolume and Employees are display text.
type Company struct {
	Symbol        string
	Name          string
	Sector        string
	Industry      string
	MarketCap     string
	Price         float64
	PE            float64
	EPS           float64
	Dividend      float64
	DividendYield float64
	Beta          float64
	Volume        string
	AvgVolume     string
	High52w       float64
	Low52w        float64
	Description   string
	CEO           string
	Employees     string
	Founded       string
	Headquarters  string
	Website       string
}

func (c Company) Validate() error {
	switch {
	case c.Symbol == "":
		return fmt.Errorf("%w: empty symbol", ErrInvalidCompany)
	case math.IsNaN(c.Price) || math.IsNaN(c.High52w) || math.IsNaN(c.Low52w):
		return fmt.Errorf("%w: %s has NaN price fields", ErrInvalidCompany, c.Symbol)
	case c.High52w < c.Low52w:
		return fmt.Errorf("%w: %s 52-week high %v below low %v", ErrInvalidCompany, c.Symbol, c.High52w, c.Low52w)
	}
	return nil
}

package dto

import "time"

type AddStockRequest struct {
	Symbol string `json:"symbol" binding:"required"`
}

type StockResponse struct {
	Symbol           string   `json:"symbol"`
	Name             string   `json:"name"`
	Color            string   `json:"color"`
	Price            *float64 `json:"price"`
	Performance      *float64 `json:"performance"`
	PerformanceLabel *string  `json:"performanceLabel"`
	Direction        *string  `json:"direction"`
}

// SeriesKey tells the chart which line to draw in which color.
type SeriesKey struct {
	Symbol string `json:"symbol"`
	Color  string `json:"color"`
}

type RowResponse struct {
	Seq    int                `json:"seq"`
	Date   string             `json:"date"`
	Values map[string]float64 `json:"values"`
}

type WorkspaceResponse struct {
	ID        string          `json:"id"`
	ExpiresAt time.Time       `json:"expiresAt"`
	Stocks    []StockResponse `json:"stocks"`
	Series    []SeriesKey     `json:"series"`
	Data      []RowResponse   `json:"data"`
	CanAdd    bool            `json:"canAdd"`
	CanRemove bool            `json:"canRemove"`
}

type CreateResponse struct {
	Token     string            `json:"token"`
	Workspace WorkspaceResponse `json:"workspace"`
}

type AddStockResponse struct {
	Added     bool              `json:"added"`
	Workspace WorkspaceResponse `json:"workspace"`
}

type SearchItem struct {
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
	Color  string `json:"color"`
}

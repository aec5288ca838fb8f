package dto

// QuoteResponse is one row of the live price board.
type QuoteResponse struct {
	Symbol             string  `json:"symbol"`
	Price              float64 `json:"price"`
	Change             float64 `json:"change"`
	ChangePercent      float64 `json:"changePercent"`
	Volume             string  `json:"volume"`
	Direction          string  `json:"direction"`
	PriceLabel         string  `json:"priceLabel"`
	ChangeLabel        string  `json:"changeLabel"`
	ChangePercentLabel string  `json:"changePercentLabel"`
}

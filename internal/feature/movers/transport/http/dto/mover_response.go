package dto

type MoverResponse struct {
	Rank               int     `json:"rank"`
	Symbol             string  `json:"symbol"`
	Name               string  `json:"name"`
	Price              float64 `json:"price"`
	Change             float64 `json:"change"`
	ChangePercent      float64 `json:"changePercent"`
	Volume             string  `json:"volume"`
	MarketCap          string  `json:"marketCap"`
	Podium             bool    `json:"podium"`
	IsGainer           bool    `json:"isGainer"`
	PriceLabel         string  `json:"priceLabel"`
	ChangeLabel        string  `json:"changeLabel"`        // "+$47.23"
	ChangePercentLabel string  `json:"changePercentLabel"` // "(+5.72%)"
}

type MoversResponse struct {
	Direction string          `json:"direction"`
	Movers    []MoverResponse `json:"movers"`
}

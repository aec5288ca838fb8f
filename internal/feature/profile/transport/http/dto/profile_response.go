package dto

type MetricResponse struct {
	Value  float64 `json:"value"`
	Label  string  `json:"label"`
	Signal string  `json:"signal,omitempty"`
}

type RangeResponse struct {
	Low           float64  `json:"low"`
	High          float64  `json:"high"`
	LowLabel      string   `json:"lowLabel"`
	HighLabel     string   `json:"highLabel"`
	Position      *float64 `json:"position"`
	PositionLabel *string  `json:"positionLabel"`
}

type ProfileResponse struct {
	Symbol        string         `json:"symbol"`
	Name          string         `json:"name"`
	Sector        string         `json:"sector"`
	Industry      string         `json:"industry"`
	MarketCap     string         `json:"marketCap"`
	Price         float64        `json:"price"`
	PriceLabel    string         `json:"priceLabel"`
	PE            MetricResponse `json:"pe"`
	EPS           MetricResponse `json:"eps"`
	Beta          MetricResponse `json:"beta"`
	Dividend      MetricResponse `json:"dividend"`
	DividendYield MetricResponse `json:"dividendYield"`
	Volume        string         `json:"volume"`
	AvgVolume     string         `json:"avgVolume"`
	Range52w      RangeResponse  `json:"range52w"`
	Description   string         `json:"description"`
	CEO           string         `json:"ceo"`
	Employees     string         `json:"employees"`
	Founded       string         `json:"founded"`
	Headquarters  string         `json:"headquarters"`
	Website       string         `json:"website"`
}

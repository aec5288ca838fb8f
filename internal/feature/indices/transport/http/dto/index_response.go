package dto

type IndexResponse struct {
	Symbol             string  `json:"symbol"`
	Name               string  `json:"name"`
	Region             string  `json:"region"`
	Flag               string  `json:"flag"`
	Value              float64 `json:"value"`
	Change             float64 `json:"change"`
	ChangePercent      float64 `json:"changePercent"`
	Color              string  `json:"color"`
	Direction          string  `json:"direction"`
	ValueLabel         string  `json:"valueLabel"`
	ChangeLabel        string  `json:"changeLabel"`
	ChangePercentLabel string  `json:"changePercentLabel"`
}

type TickResponse struct {
	Time   string             `json:"time"`
	Values map[string]float64 `json:"values"`
}

type RegionResponse struct {
	Region       string  `json:"region"`
	Title        string  `json:"title"`
	Average      float64 `json:"average"`
	AverageLabel string  `json:"averageLabel"`
	Direction    string  `json:"direction"`
	Indices      int     `json:"indices"`
}

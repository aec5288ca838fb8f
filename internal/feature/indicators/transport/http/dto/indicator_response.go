package dto

type SampleResponse struct {
	Seq    int     `json:"seq"`
	Date   string  `json:"date"`
	Price  float64 `json:"price"`
	SMA20  float64 `json:"sma20"`
	SMA50  float64 `json:"sma50"`
	EMA12  float64 `json:"ema12"`
	EMA26  float64 `json:"ema26"`
	RSI    float64 `json:"rsi"`
	MACD   float64 `json:"macd"`
	Signal float64 `json:"signal"`
}

type ReadingResponse struct {
	Value  float64 `json:"value"`
	Label  string  `json:"label"`
	Signal string  `json:"signal"` // bullish | bearish | neutral
}

type SummaryResponse struct {
	Symbol    string          `json:"symbol"`
	Date      string          `json:"date"`
	Price     float64         `json:"price"`
	RSI       ReadingResponse `json:"rsi"`
	MACD      ReadingResponse `json:"macd"`
	Histogram float64         `json:"histogram"`
	SMA20     ReadingResponse `json:"sma20"`
	EMA12     ReadingResponse `json:"ema12"`
}

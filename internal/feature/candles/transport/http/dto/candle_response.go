package dto

// CandleResponse はロウソク足データのレスポンスDTOです。
type CandleResponse struct {
	Seq         int     `json:"seq"`
	Date        string  `json:"date"`   // 日付ラベル
	Open        float64 `json:"open"`   // 始値
	High        float64 `json:"high"`   // 高値
	Low         float64 `json:"low"`    // 安値
	Close       float64 `json:"close"`  // 終値
	Volume      int64   `json:"volume"` // 出来高
	VolumeLabel string  `json:"volumeLabel"`
	Direction   string  `json:"direction"` // up | down | flat
}

package export

import (
	"encoding/json"
	"io"

	"stock_synth/internal/feature/candles/domain/entity"
)

// JSONWriter はインデント付きの配列です。
type JSONWriter struct{}

func (JSONWriter) Extension() string { return "json" }

func (JSONWriter) Write(w io.Writer, bars []entity.Candle) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(toRows(bars))
}

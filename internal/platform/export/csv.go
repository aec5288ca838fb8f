package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"stock_synth/internal/feature/candles/domain/entity"
)

// CSVWriter はヘッダー付きCSV（seq,date,open,high,low,close,volume）です。
type CSVWriter struct{}

func (CSVWriter) Extension() string { return "csv" }

func (CSVWriter) Write(w io.Writer, bars []entity.Candle) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"seq", "date", "open", "high", "low", "close", "volume"}); err != nil {
		return err
	}
	for _, r := range toRows(bars) {
		if err := cw.Write([]string{
			strconv.FormatInt(r.Seq, 10),
			r.Date,
			floatStr(r.Open),
			floatStr(r.High),
			floatStr(r.Low),
			floatStr(r.Close),
			strconv.FormatInt(r.Volume, 10),
		}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func floatStr(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) }

// Package export はローソク足をファイル形式（csv, json, parquet）で書き出します。
package export

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"stock_synth/internal/feature/candles/domain/entity"
)

var ErrUnsupportedFormat = errors.New("unsupported export format")

// Formats is the list accepted by New.
var Formats = []string{"csv", "json", "parquet"}

// Writer は足の列を1つの形式で書き出します。
type Writer interface {
	Write(w io.Writer, bars []entity.Candle) error
	Extension() string
}

// Row は出力1行です。JSONとParquetの列名を兼ねます。
type Row struct {
	Seq    int64   `json:"seq" parquet:"seq"`
	Date   string  `json:"date" parquet:"date"`
	Open   float64 `json:"open" parquet:"open"`
	High   float64 `json:"high" parquet:"high"`
	Low    float64 `json:"low" parquet:"low"`
	Close  float64 `json:"close" parquet:"close"`
	Volume int64   `json:"volume" parquet:"volume"`
}

func toRows(bars []entity.Candle) []Row {
	rows := make([]Row, 0, len(bars))
	for _, b := range bars {
		rows = append(rows, Row{
			Seq:    int64(b.Seq),
			Date:   b.Label,
			Open:   b.Open,
			High:   b.High,
			Low:    b.Low,
			Close:  b.Close,
			Volume: b.Volume,
		})
	}
	return rows
}

// New は format に対応する Writer を返します。
func New(format string) (Writer, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "csv":
		return CSVWriter{}, nil
	case "json":
		return JSONWriter{}, nil
	case "parquet":
		return ParquetWriter{}, nil
	default:
		return nil, fmt.Errorf("%w %q (use: %s)", ErrUnsupportedFormat, format, strings.Join(Formats, ", "))
	}
}

// ToFile は path を作成して bars を書き込みます。
func ToFile(path string, w Writer, bars []entity.Candle) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return w.Write(f, bars)
}

// FileName は symbol_interval.ext 形式のファイル名です。
func FileName(symbol, interval string, w Writer) string {
	return fmt.Sprintf("%s_%s.%s", strings.ToUpper(symbol), interval, w.Extension())
}

package export

import (
	"io"

	"github.com/parquet-go/parquet-go"

	"stock_synth/internal/feature/candles/domain/entity"
)

type ParquetWriter struct{}

func (ParquetWriter) Extension() string { return "parquet" }

func (ParquetWriter) Write(w io.Writer, bars []entity.Candle) error {
	return parquet.Write(w, toRows(bars))
}

package seed

import (
	"context"
	"fmt"
	"log/slog"

	candleentity "stock_synth/internal/feature/candles/domain/entity"
	comparisonentity "stock_synth/internal/feature/comparison/domain/entity"
	indicatorentity "stock_synth/internal/feature/indicators/domain/entity"
	indexentity "stock_synth/internal/feature/indices/domain/entity"
	moverentity "stock_synth/internal/feature/movers/domain/entity"
	profileentity "stock_synth/internal/feature/profile/domain/entity"
	quoteentity "stock_synth/internal/feature/quotes/domain/entity"
	symbolentity "stock_synth/internal/feature/symbollist/domain/entity"
)

type SymbolWriter interface {
	UpsertBatch(ctx context.Context, symbols []symbolentity.Symbol) error
}

type QuoteWriter interface {
	UpsertBatch(ctx context.Context, quotes []quoteentity.Quote) error
}

type MoverWriter interface {
	UpsertBatch(ctx context.Context, movers []moverentity.Mover) error
}

type CandleWriter interface {
	UpsertBatch(ctx context.Context, candles []candleentity.Candle) error
}

type SampleWriter interface {
	UpsertBatch(ctx context.Context, samples []indicatorentity.Sample) error
}

type PointWriter interface {
	UpsertBatch(ctx context.Context, points []comparisonentity.Point) error
}

type IndexWriter interface {
	UpsertBatch(ctx context.Context, indices []indexentity.Index) error
	UpsertIntraday(ctx context.Context, points []indexentity.IntradayPoint) error
}

type CompanyWriter interface {
	UpsertBatch(ctx context.Context, companies []profileentity.Company) error
}

// Writers は投入先のリポジトリ一式です。
type Writers struct {
	Symbols    SymbolWriter
	Quotes     QuoteWriter
	Movers     MoverWriter
	Candles    CandleWriter
	Indicators SampleWriter
	Comparison PointWriter
	Indices    IndexWriter
	Companies  CompanyWriter
}

// Report は投入した件数です。
type Report struct {
	Symbols    int
	Quotes     int
	Movers     int
	Candles    int
	Indicators int
	Comparison int
	Indices    int
	Intraday   int
	Companies  int
}

// Load は f を w に投入します。最初に失敗したテーブルで中断します。
// 指数の系列は指数本体の後に書き込みます（未知の指数は拒否されるため）。
func Load(ctx context.Context, w Writers, f *Fixtures) (Report, error) {
	var r Report

	steps := []struct {
		name  string
		count *int
		run   func() (int, error)
	}{
		{"symbols", &r.Symbols, func() (int, error) {
			xs := f.SymbolEntities()
			return len(xs), w.Symbols.UpsertBatch(ctx, xs)
		}},
		{"quotes", &r.Quotes, func() (int, error) {
			xs := f.QuoteEntities()
			return len(xs), w.Quotes.UpsertBatch(ctx, xs)
		}},
		{"movers", &r.Movers, func() (int, error) {
			xs := f.MoverEntities()
			return len(xs), w.Movers.UpsertBatch(ctx, xs)
		}},
		{"candles", &r.Candles, func() (int, error) {
			xs := f.CandleEntities()
			return len(xs), w.Candles.UpsertBatch(ctx, xs)
		}},
		{"indicators", &r.Indicators, func() (int, error) {
			xs := f.SampleEntities()
			return len(xs), w.Indicators.UpsertBatch(ctx, xs)
		}},
		{"comparison", &r.Comparison, func() (int, error) {
			xs := f.ComparisonPoints()
			return len(xs), w.Comparison.UpsertBatch(ctx, xs)
		}},
		{"indices", &r.Indices, func() (int, error) {
			xs := f.IndexEntities()
			return len(xs), w.Indices.UpsertBatch(ctx, xs)
		}},
		{"intraday", &r.Intraday, func() (int, error) {
			xs := f.IntradayPoints()
			return len(xs), w.Indices.UpsertIntraday(ctx, xs)
		}},
		{"companies", &r.Companies, func() (int, error) {
			xs := f.CompanyEntities()
			return len(xs), w.Companies.UpsertBatch(ctx, xs)
		}},
	}

	for _, s := range steps {
		n, err := s.run()
		if err != nil {
			return r, fmt.Errorf("seed %s: %w", s.name, err)
		}
		*s.count = n
		slog.Info("seeded", "table", s.name, "rows", n)
	}
	return r, nil
}

package seed

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	candleadapters "stock_synth/internal/feature/candles/adapters"
	candleentity "stock_synth/internal/feature/candles/domain/entity"
	comparisonadapters "stock_synth/internal/feature/comparison/adapters"
	indicatoradapters "stock_synth/internal/feature/indicators/adapters"
	indexadapters "stock_synth/internal/feature/indices/adapters"
	moveradapters "stock_synth/internal/feature/movers/adapters"
	profileadapters "stock_synth/internal/feature/profile/adapters"
	quoteadapters "stock_synth/internal/feature/quotes/adapters"
	symboladapters "stock_synth/internal/feature/symbollist/adapters"
	"stock_synth/internal/platform/db"
)

func TestDefault(t *testing.T) {
	t.Parallel()

	f, err := Default()
	require.NoError(t, err)

	assert.Len(t, f.SymbolEntities(), 6)
	assert.Len(t, f.QuoteEntities(), 6)
	assert.Len(t, f.MoverEntities(), 10)
	assert.Len(t, f.CandleEntities(), 7)
	assert.Len(t, f.SampleEntities(), 7)
	assert.Len(t, f.ComparisonPoints(), 28)
	assert.Len(t, f.IndexEntities(), 6)
	assert.Len(t, f.IntradayPoints(), 28)
	assert.Len(t, f.CompanyEntities(), 1)

	quotes := f.QuoteEntities()
	assert.Equal(t, "AAPL", quotes[0].Symbol)
	assert.Equal(t, 1, quotes[0].SortKey)
	assert.InDelta(t, 175.23, quotes[0].Price, 1e-9)

	candles := f.CandleEntities()
	assert.Equal(t, "1day", candles[0].Interval)
	assert.Equal(t, 7, candles[6].Seq)
	assert.Equal(t, "Jan 7", candles[6].Label)

	company := f.CompanyEntities()[0]
	assert.Equal(t, "Tim Cook", company.CEO)
	assert.Equal(t, "164,000", company.Employees)
	assert.Contains(t, company.Description, "smartphones, personal computers")

	indices := f.IndexEntities()
	assert.Equal(t, "S&P 500", indices[2].Name)
	assert.Equal(t, "🇺🇸", indices[2].Flag)

	p, err := f.PredictionPayload()
	require.NoError(t, err)
	assert.Equal(t, []string{"lstm", "rnn"}, p.Models())
	assert.Equal(t, 45, p.Predictions["lstm"].TrainingTime)
	assert.Equal(t, "2024-01-07", p.Dates[6])
}

func TestFixtures_ComparisonPoints(t *testing.T) {
	t.Parallel()

	f, err := Parse([]byte(`
comparison:
  - {date: Jan 1, values: {MSFT: 370, AAPL: 150}}
  - {date: Jan 2, values: {MSFT: 375, AAPL: 153}}
prediction:
  dates: [d1]
  actualPrices: [1]
  models: {lstm: {prices: [1]}}
`))
	require.NoError(t, err)

	points := f.ComparisonPoints()
	require.Len(t, points, 4)
	assert.Equal(t, "AAPL", points[0].Symbol)
	assert.Equal(t, "MSFT", points[1].Symbol)
	assert.Equal(t, 2, points[3].Seq)
	assert.Equal(t, "Jan 2", points[3].Label)
	assert.InDelta(t, 375, points[3].Value, 1e-9)
}

func TestParse_RejectsInvalidRecords(t *testing.T) {
	t.Parallel()

	const prediction = `
prediction:
  dates: [d1]
  actualPrices: [1]
  models: {lstm: {prices: [1]}}
`
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name: "candle high below close",
			yaml: `
candles:
  - symbol: AAPL
    bars:
      - {date: Jan 1, open: 150, high: 155, low: 148, close: 153, volume: 1}
      - {date: Jan 2, open: 153, high: 154, low: 151, close: 156, volume: 1}
` + prediction,
			wantErr: "AAPL Jan 2",
		},
		{
			name: "rsi out of range",
			yaml: `
indicators:
  - symbol: AAPL
    samples:
      - {date: Jan 1, price: 150, rsi: 101}
` + prediction,
			wantErr: "rsi 101",
		},
		{
			name: "quote sign mismatch",
			yaml: `
quotes:
  - {symbol: TSLA, price: 238.45, change: -5.67, changePercent: 2.32, volume: 67.8M}
` + prediction,
			wantErr: "TSLA",
		},
		{
			name: "quote percent does not match change",
			yaml: `
quotes:
  - {symbol: AMZN, price: 145.78, change: 3.21, changePercent: 3.25, volume: 38.9M}
` + prediction,
			wantErr: "AMZN percent 3.25",
		},
		{
			name: "unknown region",
			yaml: `
indices:
  - {symbol: ASX, name: ASX 200, region: Oceania, value: 7000, change: 1, changePercent: 0.1}
` + prediction,
			wantErr: "Oceania",
		},
		{
			name: "prediction series length",
			yaml: `
prediction:
  dates: [d1, d2]
  actualPrices: [1, 2]
  models: {lstm: {prices: [1]}}
`,
			wantErr: "model lstm",
		},
		{
			name:    "malformed yaml",
			yaml:    "quotes: [",
			wantErr: "parse fixtures",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to initialize test database")
	require.NoError(t, db.Migrate(gdb), "failed to migrate tables")
	return gdb
}

func gormWriters(gdb *gorm.DB) Writers {
	return Writers{
		Symbols:    symboladapters.NewSymbolRepository(gdb),
		Quotes:     quoteadapters.NewQuoteRepository(gdb),
		Movers:     moveradapters.NewMoverRepository(gdb),
		Candles:    candleadapters.NewCandleRepository(gdb),
		Indicators: indicatoradapters.NewIndicatorRepository(gdb),
		Comparison: comparisonadapters.NewSeriesRepository(gdb),
		Indices:    indexadapters.NewIndexRepository(gdb),
		Companies:  profileadapters.NewCompanyRepository(gdb),
	}
}

func TestLoad_IntoDatabase(t *testing.T) {
	t.Parallel()

	gdb := setupTestDB(t)
	f, err := Default()
	require.NoError(t, err)
	ctx := context.Background()

	report, err := Load(ctx, gormWriters(gdb), f)
	require.NoError(t, err)
	assert.Equal(t, Report{
		Symbols: 6, Quotes: 6, Movers: 10, Candles: 7, Indicators: 7,
		Comparison: 28, Indices: 6, Intraday: 28, Companies: 1,
	}, report)

	// 再投入しても行は増えない
	_, err = Load(ctx, gormWriters(gdb), f)
	require.NoError(t, err)

	var n int64
	gdb.Model(&candleadapters.CandleModel{}).Count(&n)
	assert.Equal(t, int64(7), n)
	gdb.Model(&indexadapters.IntradayPointModel{}).Count(&n)
	assert.Equal(t, int64(28), n)

	quotes, err := quoteadapters.NewQuoteRepository(gdb).List(ctx)
	require.NoError(t, err)
	require.Len(t, quotes, 6)
	assert.Equal(t, "NVDA", quotes[5].Symbol)
}

type failingCandles struct{ err error }

func (f failingCandles) UpsertBatch(ctx context.Context, candles []candleentity.Candle) error {
	return f.err
}

func TestLoad_StopsAtFirstFailure(t *testing.T) {
	t.Parallel()

	gdb := setupTestDB(t)
	f, err := Default()
	require.NoError(t, err)

	boom := errors.New("disk full")
	w := gormWriters(gdb)
	w.Candles = failingCandles{err: boom}

	report, err := Load(context.Background(), w, f)
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "seed candles")
	assert.Equal(t, 6, report.Symbols)
	assert.Equal(t, 0, report.Candles)
	assert.Equal(t, 0, report.Indices)

	var n int64
	gdb.Model(&indexadapters.IndexModel{}).Count(&n)
	assert.Equal(t, int64(0), n)
}

package adapters

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"stock_synth/internal/feature/candles/domain/entity"
)

// setupTestDB prepares an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to initialize test database")

	err = db.AutoMigrate(&CandleModel{})
	require.NoError(t, err, "failed to migrate table")

	return db
}

// seedCandle creates a test candle in the database for testing.
func seedCandle(t *testing.T, db *gorm.DB, symbol, interval string, seq int) *CandleModel {
	t.Helper()

	candle := &CandleModel{
		Symbol:   symbol,
		Interval: interval,
		Seq:      seq,
		Label:    fmt.Sprintf("Jan %d", seq),
		Open:     100.0,
		High:     110.0,
		Low:      90.0,
		Close:    105.0,
		Volume:   1000,
	}
	err := db.Create(candle).Error
	require.NoError(t, err, "failed to seed candle")

	return candle
}

func bar(seq int, open, high, low, closePrice float64, volume int64) entity.Candle {
	return entity.Candle{
		Symbol:   "AAPL",
		Interval: "1day",
		Seq:      seq,
		Label:    fmt.Sprintf("Jan %d", seq),
		Open:     open,
		High:     high,
		Low:      low,
		Close:    closePrice,
		Volume:   volume,
	}
}

func TestNewCandleRepository(t *testing.T) {
	db := setupTestDB(t)

	repo := NewCandleRepository(db)

	assert.NotNil(t, repo, "repository is nil")
	assert.NotNil(t, repo.db, "database connection is nil")
}

func TestCandleGorm_UpsertBatch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		candles      []entity.Candle
		wantErr      error
		setupFunc    func(t *testing.T, db *gorm.DB)
		validateFunc func(t *testing.T, db *gorm.DB)
	}{
		{
			name:    "success: insert single candle",
			candles: []entity.Candle{bar(1, 150, 155, 148, 153, 1_200_000)},
			validateFunc: func(t *testing.T, db *gorm.DB) {
				var count int64
				db.Model(&CandleModel{}).Count(&count)
				assert.Equal(t, int64(1), count, "candle count does not match")
			},
		},
		{
			name: "success: insert multiple candles",
			candles: []entity.Candle{
				bar(1, 150, 155, 148, 153, 1_200_000),
				bar(2, 153, 158, 151, 156, 1_500_000),
			},
			validateFunc: func(t *testing.T, db *gorm.DB) {
				var count int64
				db.Model(&CandleModel{}).Count(&count)
				assert.Equal(t, int64(2), count, "candle count does not match")
			},
		},
		{
			name:    "success: empty slice",
			candles: []entity.Candle{},
			validateFunc: func(t *testing.T, db *gorm.DB) {
				var count int64
				db.Model(&CandleModel{}).Count(&count)
				assert.Equal(t, int64(0), count, "candle count should be 0")
			},
		},
		{
			name:    "success: upsert updates existing candle",
			candles: []entity.Candle{bar(1, 200, 220, 180, 210, 2000)},
			setupFunc: func(t *testing.T, db *gorm.DB) {
				seedCandle(t, db, "AAPL", "1day", 1)
			},
			validateFunc: func(t *testing.T, db *gorm.DB) {
				var count int64
				db.Model(&CandleModel{}).Count(&count)
				assert.Equal(t, int64(1), count, "candle count should remain 1 after upsert")

				var candle CandleModel
				db.First(&candle)
				assert.Equal(t, 200.0, candle.Open, "Open should be updated")
				assert.Equal(t, 220.0, candle.High, "High should be updated")
				assert.Equal(t, 180.0, candle.Low, "Low should be updated")
				assert.Equal(t, 210.0, candle.Close, "Close should be updated")
				assert.Equal(t, int64(2000), candle.Volume, "Volume should be updated")
			},
		},
		{
			name: "error: high below close rejects the whole batch",
			candles: []entity.Candle{
				bar(1, 150, 155, 148, 153, 1_200_000),
				bar(2, 153, 154, 151, 156, 1_500_000),
			},
			wantErr: entity.ErrInvalidCandle,
			validateFunc: func(t *testing.T, db *gorm.DB) {
				var count int64
				db.Model(&CandleModel{}).Count(&count)
				assert.Equal(t, int64(0), count, "nothing should be written")
			},
		},
		{
			name:    "error: low above open",
			candles: []entity.Candle{bar(1, 150, 155, 151, 153, 10)},
			wantErr: entity.ErrInvalidCandle,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			db := setupTestDB(t)
			repo := NewCandleRepository(db)

			if tt.setupFunc != nil {
				tt.setupFunc(t, db)
			}

			err := repo.UpsertBatch(context.Background(), tt.candles)

			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
			} else {
				assert.NoError(t, err)
			}
			if tt.validateFunc != nil {
				tt.validateFunc(t, db)
			}
		})
	}
}

func TestCandleGorm_Find(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		symbol       string
		interval     string
		outputsize   int
		setupFunc    func(t *testing.T, db *gorm.DB)
		validateFunc func(t *testing.T, candles []entity.Candle)
	}{
		{
			name:       "success: find candles by symbol and interval",
			symbol:     "AAPL",
			interval:   "1day",
			outputsize: 10,
			setupFunc: func(t *testing.T, db *gorm.DB) {
				seedCandle(t, db, "AAPL", "1day", 1)
				seedCandle(t, db, "AAPL", "1day", 2)
			},
			validateFunc: func(t *testing.T, candles []entity.Candle) {
				assert.Len(t, candles, 2, "should return 2 candles")
			},
		},
		{
			name:       "success: empty result when no matching candles",
			symbol:     "NOTFOUND",
			interval:   "1day",
			outputsize: 10,
			validateFunc: func(t *testing.T, candles []entity.Candle) {
				assert.Empty(t, candles, "should return empty slice")
			},
		},
		{
			name:       "success: filter by symbol only",
			symbol:     "AAPL",
			interval:   "1day",
			outputsize: 10,
			setupFunc: func(t *testing.T, db *gorm.DB) {
				seedCandle(t, db, "AAPL", "1day", 1)
				seedCandle(t, db, "GOOGL", "1day", 1)
			},
			validateFunc: func(t *testing.T, candles []entity.Candle) {
				assert.Len(t, candles, 1, "should return only AAPL candle")
				assert.Equal(t, "AAPL", candles[0].Symbol)
			},
		},
		{
			name:       "success: filter by interval",
			symbol:     "AAPL",
			interval:   "1day",
			outputsize: 10,
			setupFunc: func(t *testing.T, db *gorm.DB) {
				seedCandle(t, db, "AAPL", "1day", 1)
				seedCandle(t, db, "AAPL", "1week", 1)
			},
			validateFunc: func(t *testing.T, candles []entity.Candle) {
				assert.Len(t, candles, 1, "should return only 1day interval")
				assert.Equal(t, "1day", candles[0].Interval)
			},
		},
		{
			name:       "success: outputsize keeps the latest bars",
			symbol:     "AAPL",
			interval:   "1day",
			outputsize: 2,
			setupFunc: func(t *testing.T, db *gorm.DB) {
				for i := 1; i <= 5; i++ {
					seedCandle(t, db, "AAPL", "1day", i)
				}
			},
			validateFunc: func(t *testing.T, candles []entity.Candle) {
				require.Len(t, candles, 2, "should return only 2 candles")
				assert.Equal(t, 4, candles[0].Seq)
				assert.Equal(t, 5, candles[1].Seq)
			},
		},
		{
			name:       "success: outputsize 0 returns all",
			symbol:     "AAPL",
			interval:   "1day",
			outputsize: 0,
			setupFunc: func(t *testing.T, db *gorm.DB) {
				for i := 1; i <= 5; i++ {
					seedCandle(t, db, "AAPL", "1day", i)
				}
			},
			validateFunc: func(t *testing.T, candles []entity.Candle) {
				assert.Len(t, candles, 5, "should return all candles")
			},
		},
		{
			name:       "success: results ordered by seq ascending",
			symbol:     "AAPL",
			interval:   "1day",
			outputsize: 10,
			setupFunc: func(t *testing.T, db *gorm.DB) {
				seedCandle(t, db, "AAPL", "1day", 1)
				seedCandle(t, db, "AAPL", "1day", 3)
				seedCandle(t, db, "AAPL", "1day", 2)
			},
			validateFunc: func(t *testing.T, candles []entity.Candle) {
				require.Len(t, candles, 3, "should return 3 candles")
				assert.Equal(t, []int{1, 2, 3}, []int{candles[0].Seq, candles[1].Seq, candles[2].Seq})
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			db := setupTestDB(t)
			repo := NewCandleRepository(db)

			if tt.setupFunc != nil {
				tt.setupFunc(t, db)
			}

			candles, err := repo.Find(context.Background(), tt.symbol, tt.interval, tt.outputsize)

			assert.NoError(t, err)
			if tt.validateFunc != nil {
				tt.validateFunc(t, candles)
			}
		})
	}
}

func TestCandleGorm_Find_EntityMapping(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	repo := NewCandleRepository(db)

	candle := &CandleModel{
		Symbol:   "AAPL",
		Interval: "1day",
		Seq:      4,
		Label:    "Jan 4",
		Open:     157,
		High:     162,
		Low:      155,
		Close:    160,
		Volume:   1_800_000,
	}
	require.NoError(t, db.Create(candle).Error)

	result, err := repo.Find(context.Background(), "AAPL", "1day", 1)
	require.NoError(t, err)
	require.Len(t, result, 1)

	assert.Equal(t, entity.Candle{
		Symbol:   "AAPL",
		Interval: "1day",
		Seq:      4,
		Label:    "Jan 4",
		Open:     157,
		High:     162,
		Low:      155,
		Close:    160,
		Volume:   1_800_000,
	}, result[0])
}

func TestCandleGorm_Symbols(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	repo := NewCandleRepository(db)

	seedCandle(t, db, "MSFT", "1day", 1)
	seedCandle(t, db, "AAPL", "1day", 1)
	seedCandle(t, db, "AAPL", "1day", 2)
	seedCandle(t, db, "TSLA", "1week", 1)

	got, err := repo.Symbols(context.Background(), "1day")
	require.NoError(t, err)
	assert.Equal(t, []string{"AAPL", "MSFT"}, got)
}

package adapters

import (
	"context"
	"slices"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"stock_synth/internal/feature/candles/domain/entity"
	"stock_synth/internal/feature/candles/usecase"
)

type candleGorm struct {
	db *gorm.DB
}

var _ usecase.CandleRepository = (*candleGorm)(nil)

func NewCandleRepository(db *gorm.DB) *candleGorm {
	return &candleGorm{db: db}
}

type CandleModel struct {
	ID       uint   `gorm:"primaryKey"`
	Symbol   string `gorm:"size:32;not null;uniqueIndex:candle_sym_tf_seq,priority:1"`
	Interval string `gorm:"column:timeframe;size:16;not null;uniqueIndex:candle_sym_tf_seq,priority:2"`
	Seq      int    `gorm:"not null;uniqueIndex:candle_sym_tf_seq,priority:3"`
	Label    string `gorm:"size:32;not null"`

	Open   float64 `gorm:"not null"`
	High   float64 `gorm:"not null"`
	Low    float64 `gorm:"not null"`
	Close  float64 `gorm:"not null"`
	Volume int64   `gorm:"not null;default:0"`
}

func (CandleModel) TableName() string {
	return "candles"
}

func toModel(e entity.Candle) CandleModel {
	return CandleModel{
		Symbol:   e.Symbol,
		Interval: e.Interval,
		Seq:      e.Seq,
		Label:    e.Label,
		Open:     e.Open,
		High:     e.High,
		Low:      e.Low,
		Close:    e.Close,
		Volume:   e.Volume,
	}
}

func toEntity(m CandleModel) entity.Candle {
	return entity.Candle{
		Symbol:   m.Symbol,
		Interval: m.Interval,
		Seq:      m.Seq,
		Label:    m.Label,
		Open:     m.Open,
		High:     m.High,
		Low:      m.Low,
		Close:    m.Close,
		Volume:   m.Volume,
	}
}

// UpsertBatch validates every bar before writing any of them.
func (r *candleGorm) UpsertBatch(ctx context.Context, candles []entity.Candle) error {
	if len(candles) == 0 {
		return nil
	}
	ms := make([]CandleModel, 0, len(candles))
	for _, e := range candles {
		if err := e.Validate(); err != nil {
			return err
		}
		ms = append(ms, toModel(e))
	}

	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "symbol"}, {Name: "timeframe"}, {Name: "seq"}},
		DoUpdates: clause.AssignmentColumns([]string{"label", "open", "high", "low", "close", "volume"}),
	}).Create(&ms).Error
}

// Find returns the latest outputsize bars (all when outputsize <= 0) in ascending Seq order.
func (r *candleGorm) Find(ctx context.Context, symbol, interval string, outputsize int) ([]entity.Candle, error) {
	var rows []CandleModel
	q := r.db.WithContext(ctx).
		Where(&CandleModel{Symbol: symbol, Interval: interval}).
		Order("seq DESC")
	if outputsize > 0 {
		q = q.Limit(outputsize)
	}
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	slices.Reverse(rows)

	out := make([]entity.Candle, 0, len(rows))
	for _, m := range rows {
		out = append(out, toEntity(m))
	}
	return out, nil
}

// Symbols lists the distinct symbols that have bars for interval.
func (r *candleGorm) Symbols(ctx context.Context, interval string) ([]string, error) {
	var out []string
	err := r.db.WithContext(ctx).
		Model(&CandleModel{}).
		Where(&CandleModel{Interval: interval}).
		Distinct().
		Order("symbol").
		Pluck("symbol", &out).Error
	return out, err
}

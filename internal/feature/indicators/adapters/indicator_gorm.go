// Package adapters holds the gorm repository for indicator samples.
package adapters

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"stock_synth/internal/feature/indicators/domain/entity"
	"stock_synth/internal/feature/indicators/usecase"
)

type IndicatorModel struct {
	ID     uint    `gorm:"primaryKey"`
	Symbol string  `gorm:"size:20;not null;uniqueIndex:indicator_sym_seq,priority:1"`
	Seq    int     `gorm:"not null;uniqueIndex:indicator_sym_seq,priority:2"`
	Label  string  `gorm:"size:32;not null"`
	Price  float64 `gorm:"not null"`
	SMA20  float64 `gorm:"column:sma20;not null"`
	SMA50  float64 `gorm:"column:sma50;not null"`
	EMA12  float64 `gorm:"column:ema12;not null"`
	EMA26  float64 `gorm:"column:ema26;not null"`
	RSI    float64 `gorm:"column:rsi;not null"`
	MACD   float64 `gorm:"column:macd;not null"`
	Signal float64 `gorm:"column:signal_line;not null"`
}

func (IndicatorModel) TableName() string {
	return "indicator_samples"
}

type indicatorGorm struct {
	db *gorm.DB
}

var _ usecase.IndicatorRepository = (*indicatorGorm)(nil)

func NewIndicatorRepository(db *gorm.DB) *indicatorGorm {
	return &indicatorGorm{db: db}
}

func (r *indicatorGorm) Find(ctx context.Context, symbol string) ([]entity.Sample, error) {
	var rows []IndicatorModel
	if err := r.db.WithContext(ctx).
		Where("symbol = ?", symbol).
		Order("seq ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entity.Sample, 0, len(rows))
	for _, m := range rows {
		out = append(out, entity.Sample{
			Symbol: m.Symbol,
			Seq:    m.Seq,
			Label:  m.Label,
			Price:  m.Price,
			SMA20:  m.SMA20,
			SMA50:  m.SMA50,
			EMA12:  m.EMA12,
			EMA26:  m.EMA26,
			RSI:    m.RSI,
			MACD:   m.MACD,
			Signal: m.Signal,
		})
	}
	return out, nil
}

// UpsertBatch validates every sample before writing any of them.
func (r *indicatorGorm) UpsertBatch(ctx context.Context, samples []entity.Sample) error {
	if len(samples) == 0 {
		return nil
	}
	ms := make([]IndicatorModel, 0, len(samples))
	for _, s := range samples {
		if err := s.Validate(); err != nil {
			return err
		}
		ms = append(ms, IndicatorModel{
			Symbol: s.Symbol,
			Seq:    s.Seq,
			Label:  s.Label,
			Price:  s.Price,
			SMA20:  s.SMA20,
			SMA50:  s.SMA50,
			EMA12:  s.EMA12,
			EMA26:  s.EMA26,
			RSI:    s.RSI,
			MACD:   s.MACD,
			Signal: s.Signal,
		})
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "symbol"}, {Name: "seq"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"label", "price", "sma20", "sma50", "ema12", "ema26", "rsi", "macd", "signal_line",
		}),
	}).Create(&ms).Error
}

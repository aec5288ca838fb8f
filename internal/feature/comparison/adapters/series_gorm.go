// Package adapters holds the comparison feature's stores and catalog bridge.
package adapters

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"stock_synth/internal/feature/comparison/domain/entity"
	"stock_synth/internal/feature/comparison/usecase"
)

type SeriesPointModel struct {
	ID     uint    `gorm:"primaryKey"`
	Symbol string  `gorm:"size:20;not null;uniqueIndex:comparison_sym_seq,priority:1"`
	Seq    int     `gorm:"not null;uniqueIndex:comparison_sym_seq,priority:2"`
	Label  string  `gorm:"size:32;not null"`
	Value  float64 `gorm:"not null"`
}

func (SeriesPointModel) TableName() string {
	return "comparison_points"
}

type seriesGorm struct {
	db *gorm.DB
}

var _ usecase.SeriesRepository = (*seriesGorm)(nil)

func NewSeriesRepository(db *gorm.DB) *seriesGorm {
	return &seriesGorm{db: db}
}

func (r *seriesGorm) Find(ctx context.Context, symbols []string) ([]entity.Point, error) {
	if len(symbols) == 0 {
		return []entity.Point{}, nil
	}
	var rows []SeriesPointModel
	if err := r.db.WithContext(ctx).
		Where("symbol IN ?", symbols).
		Order("seq ASC").Order("symbol ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entity.Point, 0, len(rows))
	for _, m := range rows {
		out = append(out, entity.Point{Symbol: m.Symbol, Seq: m.Seq, Label: m.Label, Value: m.Value})
	}
	return out, nil
}

func (r *seriesGorm) UpsertBatch(ctx context.Context, points []entity.Point) error {
	if len(points) == 0 {
		return nil
	}
	ms := make([]SeriesPointModel, 0, len(points))
	for _, p := range points {
		ms = append(ms, SeriesPointModel{Symbol: p.Symbol, Seq: p.Seq, Label: p.Label, Value: p.Value})
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "symbol"}, {Name: "seq"}},
		DoUpdates: clause.AssignmentColumns([]string{"label", "value"}),
	}).Create(&ms).Error
}

// Package adapters holds the gorm repository for movers.
package adapters

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"stock_synth/internal/feature/movers/domain/entity"
	"stock_synth/internal/feature/movers/usecase"
)

type MoverModel struct {
	ID            uint    `gorm:"primaryKey"`
	Symbol        string  `gorm:"size:20;not null;uniqueIndex"`
	Name          string  `gorm:"size:255;not null"`
	Price         float64 `gorm:"not null"`
	Change        float64 `gorm:"not null"`
	ChangePercent float64 `gorm:"not null"`
	Volume        string  `gorm:"size:32;not null"`
	MarketCap     string  `gorm:"size:32;not null"`
}

func (MoverModel) TableName() string {
	return "movers"
}

type moverGorm struct {
	db *gorm.DB
}

var _ usecase.MoverRepository = (*moverGorm)(nil)

func NewMoverRepository(db *gorm.DB) *moverGorm {
	return &moverGorm{db: db}
}

func (r *moverGorm) List(ctx context.Context) ([]entity.Mover, error) {
	var rows []MoverModel
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entity.Mover, 0, len(rows))
	for _, m := range rows {
		out = append(out, entity.Mover{
			Symbol:        m.Symbol,
			Name:          m.Name,
			Price:         m.Price,
			Change:        m.Change,
			ChangePercent: m.ChangePercent,
			Volume:        m.Volume,
			MarketCap:     m.MarketCap,
		})
	}
	return out, nil
}

// UpsertBatch validates every mover before writing any of them.
func (r *moverGorm) UpsertBatch(ctx context.Context, movers []entity.Mover) error {
	if len(movers) == 0 {
		return nil
	}
	ms := make([]MoverModel, 0, len(movers))
	for _, m := range movers {
		if err := m.Validate(); err != nil {
			return err
		}
		ms = append(ms, MoverModel{
			Symbol:        m.Symbol,
			Name:          m.Name,
			Price:         m.Price,
			Change:        m.Change,
			ChangePercent: m.ChangePercent,
			Volume:        m.Volume,
			MarketCap:     m.MarketCap,
		})
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "symbol"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "price", "change", "change_percent", "volume", "market_cap"}),
	}).Create(&ms).Error
}

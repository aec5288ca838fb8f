// Package adapters holds the gorm repository for quotes.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"stock_synth/internal/feature/quotes/domain/entity"
	"stock_synth/internal/feature/quotes/usecase"
)

type QuoteModel struct {
	ID            uint    `gorm:"primaryKey"`
	Symbol        string  `gorm:"size:20;not null;uniqueIndex"`
	Price         float64 `gorm:"not null"`
	Change        float64 `gorm:"not null"`
	ChangePercent float64 `gorm:"not null"`
	Volume        string  `gorm:"size:32;not null"`
	SortKey       int     `gorm:"not null;default:0"`
}

func (QuoteModel) TableName() string {
	return "quotes"
}

type quoteGorm struct {
	db *gorm.DB
}

var _ usecase.QuoteRepository = (*quoteGorm)(nil)

func NewQuoteRepository(db *gorm.DB) *quoteGorm {
	return &quoteGorm{db: db}
}

func (r *quoteGorm) List(ctx context.Context) ([]entity.Quote, error) {
	var rows []QuoteModel
	if err := r.db.WithContext(ctx).Order("sort_key ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entity.Quote, 0, len(rows))
	for _, m := range rows {
		out = append(out, toEntity(m))
	}
	return out, nil
}

func (r *quoteGorm) FindBySymbol(ctx context.Context, symbol string) (*entity.Quote, error) {
	var m QuoteModel
	err := r.db.WithContext(ctx).Where("symbol = ?", symbol).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, usecase.ErrQuoteNotFound
	}
	if err != nil {
		return nil, err
	}
	q := toEntity(m)
	return &q, nil
}

// UpsertBatch validates every quote before writing any of them.
func (r *quoteGorm) UpsertBatch(ctx context.Context, quotes []entity.Quote) error {
	if len(quotes) == 0 {
		return nil
	}
	ms := make([]QuoteModel, 0, len(quotes))
	for _, q := range quotes {
		if err := q.Validate(); err != nil {
			return err
		}
		ms = append(ms, QuoteModel{
			Symbol:        q.Symbol,
			Price:         q.Price,
			Change:        q.Change,
			ChangePercent: q.ChangePercent,
			Volume:        q.Volume,
			SortKey:       q.SortKey,
		})
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "symbol"}},
		DoUpdates: clause.AssignmentColumns([]string{"price", "change", "change_percent", "volume", "sort_key"}),
	}).Create(&ms).Error
}

func toEntity(m QuoteModel) entity.Quote {
	return entity.Quote{
		Symbol:        m.Symbol,
		Price:         m.Price,
		Change:        m.Change,
		ChangePercent: m.ChangePercent,
		Volume:        m.Volume,
		SortKey:       m.SortKey,
	}
}

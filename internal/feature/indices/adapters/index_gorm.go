// Package adapters holds the gorm repository for indices.
package adapters

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"stock_synth/internal/feature/indices/domain/entity"
	"stock_synth/internal/feature/indices/usecase"
)

type IndexModel struct {
	ID            uint    `gorm:"primaryKey"`
	Symbol        string  `gorm:"size:20;not null;uniqueIndex"`
	Name          string  `gorm:"size:100;not null"`
	Region        string  `gorm:"size:20;not null;index"`
	Flag          string  `gorm:"size:16;not null;default:''"`
	Value         float64 `gorm:"not null"`
	Change        float64 `gorm:"column:change_amount;not null"`
	ChangePercent float64 `gorm:"not null"`
	Color         string  `gorm:"size:32;not null;default:''"`
	SortKey       int     `gorm:"not null;default:0"`
}

func (IndexModel) TableName() string {
	return "indices"
}

type IntradayPointModel struct {
	ID    uint    `gorm:"primaryKey"`
	Index string  `gorm:"column:index_symbol;size:20;not null;uniqueIndex:intraday_idx_seq,priority:1"`
	Seq   int     `gorm:"not null;uniqueIndex:intraday_idx_seq,priority:2"`
	Time  string  `gorm:"column:time_label;size:16;not null"`
	Value float64 `gorm:"not null"`
}

func (IntradayPointModel) TableName() string {
	return "index_intraday"
}

type indexGorm struct {
	db *gorm.DB
}

var _ usecase.IndexRepository = (*indexGorm)(nil)

func NewIndexRepository(db *gorm.DB) *indexGorm {
	return &indexGorm{db: db}
}

func (r *indexGorm) List(ctx context.Context) ([]entity.Index, error) {
	var rows []IndexModel
	if err := r.db.WithContext(ctx).Order("sort_key ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entity.Index, 0, len(rows))
	for _, m := range rows {
		out = append(out, entity.Index{
			Symbol:        m.Symbol,
			Name:          m.Name,
			Region:        entity.Region(m.Region),
			Flag:          m.Flag,
			Value:         m.Value,
			Change:        m.Change,
			ChangePercent: m.ChangePercent,
			Color:         m.Color,
			SortKey:       m.SortKey,
		})
	}
	return out, nil
}

func (r *indexGorm) Intraday(ctx context.Context) ([]entity.IntradayPoint, error) {
	var rows []IntradayPointModel
	if err := r.db.WithContext(ctx).
		Order("seq ASC").Order("index_symbol ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entity.IntradayPoint, 0, len(rows))
	for _, m := range rows {
		out = append(out, entity.IntradayPoint{Index: m.Index, Seq: m.Seq, Time: m.Time, Value: m.Value})
	}
	return out, nil
}

// UpsertBatch validates every index before writing any.
func (r *indexGorm) UpsertBatch(ctx context.Context, indices []entity.Index) error {
	if len(indices) == 0 {
		return nil
	}
	ms := make([]IndexModel, 0, len(indices))
	for _, i := range indices {
		if err := i.Validate(); err != nil {
			return err
		}
		ms = append(ms, IndexModel{
			Symbol:        i.Symbol,
			Name:          i.Name,
			Region:        string(i.Region),
			Flag:          i.Flag,
			Value:         i.Value,
			Change:        i.Change,
			ChangePercent: i.ChangePercent,
			Color:         i.Color,
			SortKey:       i.SortKey,
		})
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "symbol"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"name", "region", "flag", "value", "change_amount", "change_percent", "color", "sort_key",
		}),
	}).Create(&ms).Error
}

// UpsertIntraday writes intraday points. Every point must belong to a known index.
func (r *indexGorm) UpsertIntraday(ctx context.Context, points []entity.IntradayPoint) error {
	if len(points) == 0 {
		return nil
	}
	var known []string
	if err := r.db.WithContext(ctx).Model(&IndexModel{}).Pluck("symbol", &known).Error; err != nil {
		return err
	}
	set := make(map[string]struct{}, len(known))
	for _, s := range known {
		set[s] = struct{}{}
	}

	ms := make([]IntradayPointModel, 0, len(points))
	for _, p := range points {
		if _, ok := set[p.Index]; !ok {
			return fmt.Errorf("%w: intraday point for unknown index %q", entity.ErrInvalidIndex, p.Index)
		}
		ms = append(ms, IntradayPointModel{Index: p.Index, Seq: p.Seq, Time: p.Time, Value: p.Value})
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "index_symbol"}, {Name: "seq"}},
		DoUpdates: clause.AssignmentColumns([]string{"time_label", "value"}),
	}).Create(&ms).Error
}

package adapters

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"stock_synth/internal/feature/comparison/domain/entity"
	"stock_synth/internal/feature/comparison/usecase"
)

// WorkspaceModel は Redis が無い構成でのワークスペース保存先です。
type WorkspaceModel struct {
	ID        string         `gorm:"primaryKey;size:36"`
	Stocks    []entity.Stock `gorm:"serializer:json;type:text;not null"`
	CreatedAt time.Time      `gorm:"not null"`
	ExpiresAt time.Time      `gorm:"not null;index"`
}

func (WorkspaceModel) TableName() string {
	return "comparison_workspaces"
}

type workspaceGorm struct {
	db *gorm.DB
}

var _ usecase.WorkspaceStore = (*workspaceGorm)(nil)

func NewWorkspaceRepository(db *gorm.DB) *workspaceGorm {
	return &workspaceGorm{db: db}
}

func (r *workspaceGorm) Save(ctx context.Context, s *entity.Selection) error {
	m := WorkspaceModel{
		ID:        s.ID,
		Stocks:    s.Stocks,
		CreatedAt: s.CreatedAt,
		ExpiresAt: s.ExpiresAt,
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"stocks", "expires_at"}),
	}).Create(&m).Error
}

func (r *workspaceGorm) Find(ctx context.Context, id string) (*entity.Selection, error) {
	var m WorkspaceModel
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, usecase.ErrWorkspaceNotFound
	}
	if err != nil {
		return nil, err
	}
	return &entity.Selection{
		ID:        m.ID,
		Stocks:    m.Stocks,
		CreatedAt: m.CreatedAt,
		ExpiresAt: m.ExpiresAt,
	}, nil
}

// DeleteExpired は expires_at が now 以前の行を削除し、削除件数を返します。
func (r *workspaceGorm) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	res := r.db.WithContext(ctx).Where("expires_at <= ?", now).Delete(&WorkspaceModel{})
	return res.RowsAffected, res.Error
}

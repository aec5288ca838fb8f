// Package adapters はsymbollistフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"stock_synth/internal/feature/symbollist/domain/entity"
	"stock_synth/internal/feature/symbollist/usecase"
)

// SymbolModel は symbols テーブルの行です。
type SymbolModel struct {
	ID        uint      `gorm:"primaryKey"`
	Code      string    `gorm:"size:20;not null;uniqueIndex"`
	Name      string    `gorm:"size:255;not null"`
	Market    string    `gorm:"size:100;not null"`
	Color     string    `gorm:"size:32;not null;default:''"`
	IsActive  bool      `gorm:"not null"`
	SortKey   int       `gorm:"not null;default:0"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (SymbolModel) TableName() string {
	return "symbols"
}

func toEntity(m SymbolModel) entity.Symbol {
	return entity.Symbol{
		Code:     m.Code,
		Name:     m.Name,
		Market:   m.Market,
		Color:    m.Color,
		IsActive: m.IsActive,
		SortKey:  m.SortKey,
	}
}

// symbolGorm はSymbolRepositoryインターフェースのgorm実装です。
type symbolGorm struct {
	db *gorm.DB
}

var _ usecase.SymbolRepository = (*symbolGorm)(nil)

// NewSymbolRepository は指定されたDB接続でsymbolGormリポジトリの新しいインスタンスを生成します。
func NewSymbolRepository(db *gorm.DB) *symbolGorm {
	return &symbolGorm{db: db}
}

// ListActive はsort_key順にすべてのアクティブな銘柄を返します。
func (r *symbolGorm) ListActive(ctx context.Context) ([]entity.Symbol, error) {
	var rows []SymbolModel
	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("sort_key ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return mapRows(rows), nil
}

// Search はコードまたは名称に q を含むアクティブな銘柄を、大文字小文字を区別せず最大 limit 件返します。
// limit <= 0 は無制限です。
func (r *symbolGorm) Search(ctx context.Context, q string, limit int) ([]entity.Symbol, error) {
	pattern := "%" + escapeLike(strings.ToLower(strings.TrimSpace(q))) + "%"

	var rows []SymbolModel
	tx := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Where(`(LOWER(code) LIKE ? ESCAPE '\' OR LOWER(name) LIKE ? ESCAPE '\')`, pattern, pattern).
		Order("sort_key ASC")
	if limit > 0 {
		tx = tx.Limit(limit)
	}
	if err := tx.Find(&rows).Error; err != nil {
		return nil, err
	}
	return mapRows(rows), nil
}

// FindByCode はコードに一致する銘柄を返します。存在しない場合は usecase.ErrSymbolNotFound です。
func (r *symbolGorm) FindByCode(ctx context.Context, code string) (*entity.Symbol, error) {
	var m SymbolModel
	err := r.db.WithContext(ctx).Where("code = ?", code).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, usecase.ErrSymbolNotFound
	}
	if err != nil {
		return nil, err
	}
	s := toEntity(m)
	return &s, nil
}

// UpsertBatch はコードをキーに銘柄を登録・更新します。
func (r *symbolGorm) UpsertBatch(ctx context.Context, symbols []entity.Symbol) error {
	if len(symbols) == 0 {
		return nil
	}
	ms := make([]SymbolModel, 0, len(symbols))
	for _, s := range symbols {
		ms = append(ms, SymbolModel{
			Code:     s.Code,
			Name:     s.Name,
			Market:   s.Market,
			Color:    s.Color,
			IsActive: s.IsActive,
			SortKey:  s.SortKey,
		})
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "code"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "market", "color", "is_active", "sort_key", "updated_at"}),
	}).Create(&ms).Error
}

func mapRows(rows []SymbolModel) []entity.Symbol {
	out := make([]entity.Symbol, 0, len(rows))
	for _, m := range rows {
		out = append(out, toEntity(m))
	}
	return out
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// Package di は設定に応じて実装を選ぶファクトリーを提供します。
package di

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	comparisonadapters "stock_synth/internal/feature/comparison/adapters"
	"stock_synth/internal/feature/comparison/usecase"
)

// NewWorkspaceStore creates a WorkspaceStore implementation.
// If Redis is available, it returns a Redis-backed implementation.
// Otherwise, it falls back to the database.
func NewWorkspaceStore(rdb *redis.Client, db *gorm.DB, prefix string) usecase.WorkspaceStore {
	if rdb != nil {
		return comparisonadapters.NewWorkspaceRedis(rdb, prefix)
	}
	return comparisonadapters.NewWorkspaceRepository(db)
}

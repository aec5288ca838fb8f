package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"stock_synth/internal/feature/comparison/domain/entity"
	"stock_synth/internal/feature/comparison/usecase"
)

// WorkspaceRedis は Redis に JSON で保存する WorkspaceStore です。期限切れは TTL に任せます。
type WorkspaceRedis struct {
	client redis.UniversalClient
	prefix string
}

var _ usecase.WorkspaceStore = (*WorkspaceRedis)(nil)

func NewWorkspaceRedis(client redis.UniversalClient, prefix string) *WorkspaceRedis {
	return &WorkspaceRedis{
		client: client,
		prefix: prefix,
	}
}

func (r *WorkspaceRedis) key(id string) string {
	return fmt.Sprintf("%s:%s", r.prefix, id)
}

// Save は ExpiresAt までの TTL 付きで上書き保存します。
func (r *WorkspaceRedis) Save(ctx context.Context, s *entity.Selection) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal workspace: %w", err)
	}

	ttl := time.Until(s.ExpiresAt)
	if ttl <= 0 {
		return fmt.Errorf("workspace %s already expired", s.ID)
	}
	return r.client.Set(ctx, r.key(s.ID), data, ttl).Err()
}

func (r *WorkspaceRedis) Find(ctx context.Context, id string) (*entity.Selection, error) {
	data, err := r.client.Get(ctx, r.key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, usecase.ErrWorkspaceNotFound
	}
	if err != nil {
		return nil, err
	}

	var s entity.Selection
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to unmarshal workspace: %w", err)
	}
	return &s, nil
}

// DeleteExpired は何もしません (Redis の TTL で失効します)。
func (r *WorkspaceRedis) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	return 0, nil
}

// Package scheduler は serve プロセス内の定期ジョブを管理します。
package scheduler

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/robfig/cron/v3"
)

// Purger は期限切れの比較ワークスペースを削除します。
type Purger interface {
	PurgeExpired(ctx context.Context) (int64, error)
}

// Scheduler manages all cron tasks.
type Scheduler struct {
	cron   *cron.Cron
	purger Purger
	ctx    context.Context
}

// NewScheduler は秒フィールド付きのcron式を受け付けるスケジューラーを生成します。
func NewScheduler(ctx context.Context, purger Purger) *Scheduler {
	return &Scheduler{
		cron:   cron.New(cron.WithSeconds()),
		purger: purger,
		ctx:    ctx,
	}
}

// RegisterPurge は purgeCron でワークスペース削除ジョブを登録します。
func (s *Scheduler) RegisterPurge(purgeCron string) error {
	if _, err := s.cron.AddFunc(purgeCron, s.purgeTask); err != nil {
		return fmt.Errorf("register purge task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.cron.Start()
	slog.Info("scheduler started", "jobs", len(s.cron.Entries()))
}

// Stop は新しい実行を止め、実行中のジョブの終了を待ちます。
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	slog.Info("scheduler stopped")
}

// RunPurgeNow はジョブを即時に実行します。
func (s *Scheduler) RunPurgeNow() (int64, error) {
	return s.purger.PurgeExpired(s.ctx)
}

func (s *Scheduler) purgeTask() {
	n, err := s.RunPurgeNow()
	if err != nil {
		slog.Error("purge expired workspaces failed", "error", err)
		return
	}
	if n > 0 {
		slog.Info("purged expired workspaces", "count", n)
	}
}

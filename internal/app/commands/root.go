// Package commands はCLIのサブコマンド（serve, seed, export, purge）を実装します。
package commands

import (
	"context"
	"log/slog"

	redisv9 "github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"stock_synth/internal/app/config"
	"stock_synth/internal/platform/db"
	"stock_synth/internal/platform/logging"
	infraredis "stock_synth/internal/platform/redis"
)

// NewRootCommand はすべてのサブコマンドを持つルートコマンドを返します。
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "stocksynth",
		Short: "Stock Synth Lab dashboard backend",
		Long: `Serves the mock market dashboard: live prices, movers, candles,
technical indicators, stock comparison, index performance, company
profile and a simulated price prediction.

Configuration is read from the environment (and .env when present).`,
		Version:       "0.1.0",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		newServeCommand(),
		newSeedCommand(),
		newExportCommand(),
		newPurgeCommand(),
	)
	return root
}

// Execute はルートコマンドを実行します。
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}

// loadConfig は設定を読み込み、ロガーを構成します。
func loadConfig(ctx context.Context) (*config.Config, error) {
	cfg, err := config.Load(ctx)
	if err != nil {
		return nil, err
	}
	logging.Setup(cfg.Log)
	return cfg, nil
}

// stores はDB接続と任意のRedisクライアントです。
type stores struct {
	db  *gorm.DB
	rdb *redisv9.Client
}

// openStores はDBに接続し、有効ならRedisにも接続します。
// Redisに繋がらない場合は警告を出して nil のまま続行します。
func openStores(ctx context.Context, cfg *config.Config) (*stores, error) {
	gdb, err := db.Open(cfg.DB)
	if err != nil {
		return nil, err
	}
	s := &stores{db: gdb}

	if !cfg.Redis.Enabled {
		slog.Info("Redis disabled; using the database for workspaces and no candle cache")
		return s, nil
	}
	rdb, err := infraredis.NewRedisClient(ctx, cfg.Redis)
	if err != nil {
		slog.Warn("Redis unavailable. Running without cache.", "error", err)
		return s, nil
	}
	s.rdb = rdb
	return s, nil
}

func (s *stores) Close() {
	if s.rdb != nil {
		if err := s.rdb.Close(); err != nil {
			slog.Error("Failed to close Redis client", "error", err)
		}
	}
	db.Close(s.db)
}

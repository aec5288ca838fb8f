package di

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"stock_synth/internal/app/config"
	"stock_synth/internal/app/router"
	candleadapters "stock_synth/internal/feature/candles/adapters"
	candleshandler "stock_synth/internal/feature/candles/transport/handler"
	candlesusecase "stock_synth/internal/feature/candles/usecase"
	comparisonadapters "stock_synth/internal/feature/comparison/adapters"
	comparisonhandler "stock_synth/internal/feature/comparison/transport/handler"
	comparisonusecase "stock_synth/internal/feature/comparison/usecase"
	indicatoradapters "stock_synth/internal/feature/indicators/adapters"
	indicatorshandler "stock_synth/internal/feature/indicators/transport/handler"
	indicatorsusecase "stock_synth/internal/feature/indicators/usecase"
	indexadapters "stock_synth/internal/feature/indices/adapters"
	indiceshandler "stock_synth/internal/feature/indices/transport/handler"
	indicesusecase "stock_synth/internal/feature/indices/usecase"
	moveradapters "stock_synth/internal/feature/movers/adapters"
	movershandler "stock_synth/internal/feature/movers/transport/handler"
	moversusecase "stock_synth/internal/feature/movers/usecase"
	predictionentity "stock_synth/internal/feature/prediction/domain/entity"
	predictionhandler "stock_synth/internal/feature/prediction/transport/handler"
	predictionusecase "stock_synth/internal/feature/prediction/usecase"
	profileadapters "stock_synth/internal/feature/profile/adapters"
	profilehandler "stock_synth/internal/feature/profile/transport/handler"
	profileusecase "stock_synth/internal/feature/profile/usecase"
	quoteadapters "stock_synth/internal/feature/quotes/adapters"
	quoteshandler "stock_synth/internal/feature/quotes/transport/handler"
	quotesusecase "stock_synth/internal/feature/quotes/usecase"
	symboladapters "stock_synth/internal/feature/symbollist/adapters"
	symbollisthandler "stock_synth/internal/feature/symbollist/transport/handler"
	symbollistusecase "stock_synth/internal/feature/symbollist/usecase"
	"stock_synth/internal/platform/cache"
	platformhandler "stock_synth/internal/platform/http/handler"
	jwtmw "stock_synth/internal/platform/jwt"
	"stock_synth/internal/platform/seed"
	"stock_synth/internal/shared/metrics"
	"stock_synth/internal/shared/ratelimiter"
)

// Purger は期限切れワークスペースを削除するユースケースです。
type Purger interface {
	PurgeExpired(ctx context.Context) (int64, error)
}

// App は serve に必要な組み立て済みの部品です。
type App struct {
	Handlers    router.Handlers
	Options     router.Options
	Workspaces  Purger
	Candles     cache.CandleStore
	TokenSecret string
}

// NewCandleStore はDBのローソク足リポジトリをRedisキャッシュで包みます。rdb が nil なら素通しです。
func NewCandleStore(rdb *redis.Client, db *gorm.DB, cfg config.CacheConfig) (cache.CandleStore, error) {
	ttl, err := cache.RefreshTTL(cfg.TTL, cfg.RefreshHour, cfg.RefreshZone)
	if err != nil {
		return nil, err
	}
	return cache.NewCachingCandleRepository(rdb, ttl, candleadapters.NewCandleRepository(db), cfg.Namespace), nil
}

// TokenSecret は設定値、未設定ならプロセス限りのランダムな値を返します。
func TokenSecret(cfg config.WorkspaceConfig) string {
	if cfg.TokenSecret != "" {
		return cfg.TokenSecret
	}
	// 秘密鍵チェック（開発中の注意喚起）
	slog.Warn("WORKSPACE_TOKEN_SECRET is not set; workspace tokens will not survive a restart")
	return uuid.NewString()
}

// Workspaces は比較ワークスペースのユースケースです。
type Workspaces interface {
	comparisonhandler.ComparisonUsecase
	Purger
}

// NewWorkspaceUsecase は比較ワークスペースのユースケースを組み立てます。
func NewWorkspaceUsecase(rdb *redis.Client, db *gorm.DB, cfg config.WorkspaceConfig) Workspaces {
	store := NewWorkspaceStore(rdb, db, cfg.KeyPrefix)
	catalog := comparisonadapters.NewCatalog(symboladapters.NewSymbolRepository(db))
	series := comparisonadapters.NewSeriesRepository(db)
	return comparisonusecase.NewComparisonUsecase(store, series, catalog, cfg.TTL)
}

// NewApp は全フィーチャーのリポジトリ・ユースケース・ハンドラーを組み立てます。
func NewApp(cfg *config.Config, db *gorm.DB, rdb *redis.Client, payload predictionentity.Payload) (*App, error) {
	th, err := metrics.LoadThresholds(cfg.Metrics.ThresholdsFile)
	if err != nil {
		return nil, err
	}
	candles, err := NewCandleStore(rdb, db, cfg.Cache)
	if err != nil {
		return nil, err
	}
	secret := TokenSecret(cfg.Workspace)

	symbolRepo := symboladapters.NewSymbolRepository(db)
	workspaces := NewWorkspaceUsecase(rdb, db, cfg.Workspace)

	h := router.Handlers{
		Health:     platformhandler.NewHealthHandler(HealthChecks(db, rdb)...),
		Quotes:     quoteshandler.NewQuotesHandler(quotesusecase.NewQuotesUsecase(quoteadapters.NewQuoteRepository(db))),
		Movers:     movershandler.NewMoversHandler(moversusecase.NewMoversUsecase(moveradapters.NewMoverRepository(db))),
		Candles:    candleshandler.NewCandlesHandler(candlesusecase.NewCandlesUsecase(candles)),
		Indicators: indicatorshandler.NewIndicatorsHandler(indicatorsusecase.NewIndicatorsUsecase(indicatoradapters.NewIndicatorRepository(db), th)),
		Symbols:    symbollisthandler.NewSymbolHandler(symbollistusecase.NewSymbolUsecase(symbolRepo)),
		Comparison: comparisonhandler.NewComparisonHandler(workspaces, jwtmw.NewGenerator(secret, cfg.Workspace.TTL)),
		Indices:    indiceshandler.NewIndicesHandler(indicesusecase.NewIndicesUsecase(indexadapters.NewIndexRepository(db))),
		Profile:    profilehandler.NewProfileHandler(profileusecase.NewProfileUsecase(profileadapters.NewCompanyRepository(db), th)),
		Prediction: predictionhandler.NewPredictionHandler(predictionusecase.NewPredictionUsecase(payload, cfg.Prediction.Delay)),
	}

	return &App{
		Handlers: h,
		Options: router.Options{
			AllowOrigins:      cfg.Server.AllowOrigins,
			TokenSecret:       secret,
			PredictionLimiter: predictionLimiter(cfg.Prediction),
		},
		Workspaces:  workspaces,
		Candles:     candles,
		TokenSecret: secret,
	}, nil
}

func predictionLimiter(cfg config.PredictionConfig) *ratelimiter.RateLimiter {
	if cfg.RateLimit <= 0 {
		return nil
	}
	return ratelimiter.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
}

// HealthChecks は /healthz が確認する依存先です。
func HealthChecks(db *gorm.DB, rdb *redis.Client) []platformhandler.Check {
	checks := []platformhandler.Check{{
		Name: "database",
		Ping: func(ctx context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		},
	}}
	if rdb != nil {
		checks = append(checks, platformhandler.Check{
			Name: "redis",
			Ping: func(ctx context.Context) error { return rdb.Ping(ctx).Err() },
		})
	}
	return checks
}

// SeedWriters はフィクスチャの投入先です。ローソク足はキャッシュを経由して書き込み、該当キーを無効化します。
func SeedWriters(db *gorm.DB, rdb *redis.Client, cfg config.CacheConfig) (seed.Writers, error) {
	candles, err := NewCandleStore(rdb, db, cfg)
	if err != nil {
		return seed.Writers{}, err
	}
	return seed.Writers{
		Symbols:    symboladapters.NewSymbolRepository(db),
		Quotes:     quoteadapters.NewQuoteRepository(db),
		Movers:     moveradapters.NewMoverRepository(db),
		Candles:    candles,
		Indicators: indicatoradapters.NewIndicatorRepository(db),
		Comparison: comparisonadapters.NewSeriesRepository(db),
		Indices:    indexadapters.NewIndexRepository(db),
		Companies:  profileadapters.NewCompanyRepository(db),
	}, nil
}

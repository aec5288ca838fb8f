// Package router はダッシュボードAPIのルート表を組み立てます。
package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	candleshandler "stock_synth/internal/feature/candles/transport/handler"
	comparisonhandler "stock_synth/internal/feature/comparison/transport/handler"
	indicatorshandler "stock_synth/internal/feature/indicators/transport/handler"
	indiceshandler "stock_synth/internal/feature/indices/transport/handler"
	movershandler "stock_synth/internal/feature/movers/transport/handler"
	predictionhandler "stock_synth/internal/feature/prediction/transport/handler"
	profilehandler "stock_synth/internal/feature/profile/transport/handler"
	quoteshandler "stock_synth/internal/feature/quotes/transport/handler"
	symbollisthandler "stock_synth/internal/feature/symbollist/transport/handler"
	platformhandler "stock_synth/internal/platform/http/handler"
	jwtmw "stock_synth/internal/platform/jwt"
	"stock_synth/internal/shared/ratelimiter"
)

// Handlers はルートに結び付けるハンドラー一式です。
type Handlers struct {
	Health     *platformhandler.HealthHandler
	Quotes     *quoteshandler.QuotesHandler
	Movers     *movershandler.MoversHandler
	Candles    *candleshandler.CandlesHandler
	Indicators *indicatorshandler.IndicatorsHandler
	Symbols    *symbollisthandler.SymbolHandler
	Comparison *comparisonhandler.ComparisonHandler
	Indices    *indiceshandler.IndicesHandler
	Profile    *profilehandler.ProfileHandler
	Prediction *predictionhandler.PredictionHandler
}

// Options はルーター全体の設定です。
type Options struct {
	AllowOrigins []string

	// TokenSecret は比較ワークスペースのトークン検証に使います。
	TokenSecret string

	// PredictionLimiter が nil なら予測APIは無制限です。
	PredictionLimiter *ratelimiter.RateLimiter
}

func NewRouter(h Handlers, opts Options) *gin.Engine {
	r := gin.Default()
	r.Use(cors.New(corsConfig(opts.AllowOrigins)))

	// 導通確認用
	r.GET("/healthz", h.Health.Health)
	r.HEAD("/healthz", h.Health.Health)

	r.GET("/quotes", h.Quotes.List)
	r.GET("/quotes/:code", h.Quotes.Get)
	r.GET("/movers", h.Movers.Top)
	r.GET("/candles/:code", h.Candles.GetCandlesHandler)
	r.GET("/indicators/:code", h.Indicators.Series)
	r.GET("/indicators/:code/summary", h.Indicators.Summary)
	r.GET("/symbols", h.Symbols.List)
	r.GET("/symbols/:code", h.Symbols.Get)
	r.GET("/indices", h.Indices.List)
	r.GET("/indices/intraday", h.Indices.Intraday)
	r.GET("/indices/regions", h.Indices.Regions)
	r.GET("/profile/:code", h.Profile.Get)
	r.POST("/predictions", ratelimiter.Middleware(opts.PredictionLimiter), h.Prediction.Predict)

	// 比較ワークスペース
	// 作成・閲覧・検索はトークン不要、変更はワークスペースのトークンが必要
	cmp := r.Group("/comparisons")
	{
		cmp.POST("", h.Comparison.Create)
		cmp.GET("/search", h.Comparison.Search)
		cmp.GET("/:id", h.Comparison.Get)
		cmp.GET("/:id/search", h.Comparison.Search)

		owned := cmp.Group("/:id")
		owned.Use(jwtmw.WorkspaceRequired(opts.TokenSecret, "id"))
		owned.POST("/stocks", h.Comparison.AddStock)
		owned.DELETE("/stocks/:symbol", h.Comparison.RemoveStock)
	}

	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}

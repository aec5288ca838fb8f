// Package handler はcandlesフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"stock_synth/internal/feature/candles/domain/entity"
	"stock_synth/internal/feature/candles/transport/http/dto"
	"stock_synth/internal/shared/metrics"
)

// CandlesUsecase はローソク足データ操作のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type CandlesUsecase interface {
	GetCandles(ctx context.Context, symbol, interval string, outputsize int) ([]entity.Candle, error)
}

// CandlesHandler はローソク足データのHTTPリクエストを処理します。
type CandlesHandler struct {
	uc CandlesUsecase
}

// NewCandlesHandler は指定されたusecaseでCandlesHandlerの新しいインスタンスを生成します。
func NewCandlesHandler(uc CandlesUsecase) *CandlesHandler {
	return &CandlesHandler{uc: uc}
}

// GetCandlesHandler は銘柄コードと時間間隔を受け取り、ローソク足データをJSONで返します。
//
// エンドポイント例:
// GET /candles/:code?interval=1day&outputsize=200
func (h *CandlesHandler) GetCandlesHandler(c *gin.Context) {
	code := c.Param("code")
	// 未指定の場合はデフォルト値を使用
	interval := c.DefaultQuery("interval", "1day")
	outputsizeStr := c.DefaultQuery("outputsize", "200")
	// 文字列を整数に変換
	outputsize, _ := strconv.Atoi(outputsizeStr)

	candles, err := h.uc.GetCandles(c.Request.Context(), code, interval, outputsize)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	out := make([]dto.CandleResponse, 0, len(candles))
	for _, x := range candles {
		out = append(out, toResponse(x))
	}

	c.JSON(http.StatusOK, out)
}

func toResponse(x entity.Candle) dto.CandleResponse {
	return dto.CandleResponse{
		Seq:         x.Seq,
		Date:        x.Label,
		Open:        x.Open,
		High:        x.High,
		Low:         x.Low,
		Close:       x.Close,
		Volume:      x.Volume,
		VolumeLabel: metrics.FormatMagnitude(float64(x.Volume)),
		Direction:   string(metrics.DirectionOf(x.Close - x.Open)),
	}
}

// Package handler exposes technical indicators over HTTP.
package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"stock_synth/internal/feature/indicators/domain/entity"
	"stock_synth/internal/feature/indicators/transport/http/dto"
	"stock_synth/internal/feature/indicators/usecase"
	"stock_synth/internal/shared/metrics"
)

type IndicatorsUsecase interface {
	Series(ctx context.Context, symbol string) ([]entity.Sample, error)
	Summarize(ctx context.Context, symbol string) (*usecase.Summary, error)
}

type IndicatorsHandler struct {
	uc IndicatorsUsecase
}

func NewIndicatorsHandler(uc IndicatorsUsecase) *IndicatorsHandler {
	return &IndicatorsHandler{uc: uc}
}

// Series handles GET /indicators/:code.
func (h *IndicatorsHandler) Series(c *gin.Context) {
	ss, err := h.uc.Series(c.Request.Context(), c.Param("code"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	out := make([]dto.SampleResponse, 0, len(ss))
	for _, s := range ss {
		out = append(out, dto.SampleResponse{
			Seq:    s.Seq,
			Date:   s.Label,
			Price:  s.Price,
			SMA20:  s.SMA20,
			SMA50:  s.SMA50,
			EMA12:  s.EMA12,
			EMA26:  s.EMA26,
			RSI:    s.RSI,
			MACD:   s.MACD,
			Signal: s.Signal,
		})
	}
	c.JSON(http.StatusOK, out)
}

// Summary handles GET /indicators/:code/summary.
func (h *IndicatorsHandler) Summary(c *gin.Context) {
	s, err := h.uc.Summarize(c.Request.Context(), c.Param("code"))
	if errors.Is(err, usecase.ErrNoSamples) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.SummaryResponse{
		Symbol: s.Symbol,
		Date:   s.Label,
		Price:  s.Price,
		RSI: dto.ReadingResponse{
			Value:  s.RSI,
			Label:  s.RSIReading.Label,
			Signal: string(s.RSIReading.Signal),
		},
		MACD: dto.ReadingResponse{
			Value:  s.MACD,
			Label:  titleCase(s.MACDSignal),
			Signal: string(s.MACDSignal),
		},
		Histogram: s.Histogram,
		SMA20:     average(s.SMA20, s.SMA20Pos, "SMA"),
		EMA12:     average(s.EMA12, s.EMA12Pos, "EMA"),
	})
}

func average(v float64, pos entity.Position, name string) dto.ReadingResponse {
	return dto.ReadingResponse{
		Value:  v,
		Label:  string(pos) + " " + name,
		Signal: string(pos.Signal()),
	}
}

func titleCase(s metrics.Signal) string {
	if s == "" {
		return ""
	}
	return strings.ToUpper(string(s[:1])) + string(s[1:])
}

// Package handler exposes index performance over HTTP.
package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"stock_synth/internal/feature/indices/domain/entity"
	"stock_synth/internal/feature/indices/transport/http/dto"
	"stock_synth/internal/feature/indices/usecase"
	"stock_synth/internal/shared/metrics"
)

type IndicesUsecase interface {
	List(ctx context.Context) ([]entity.Index, error)
	Intraday(ctx context.Context) ([]usecase.Tick, error)
	Regions(ctx context.Context) ([]usecase.RegionSummary, error)
}

type IndicesHandler struct {
	uc IndicesUsecase
}

func NewIndicesHandler(uc IndicesUsecase) *IndicesHandler {
	return &IndicesHandler{uc: uc}
}

// List handles GET /indices.
func (h *IndicesHandler) List(c *gin.Context) {
	idx, err := h.uc.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	out := make([]dto.IndexResponse, 0, len(idx))
	for _, i := range idx {
		out = append(out, dto.IndexResponse{
			Symbol:             i.Symbol,
			Name:               i.Name,
			Region:             string(i.Region),
			Flag:               i.Flag,
			Value:              i.Value,
			Change:             i.Change,
			ChangePercent:      i.ChangePercent,
			Color:              i.Color,
			Direction:          string(metrics.DirectionOf(i.Change)),
			ValueLabel:         metrics.FormatGrouped(i.Value),
			ChangeLabel:        metrics.FormatSignedAmount(i.Change),
			ChangePercentLabel: "(" + metrics.FormatSignedPercent(i.ChangePercent) + ")",
		})
	}
	c.JSON(http.StatusOK, out)
}

// Intraday handles GET /indices/intraday.
func (h *IndicesHandler) Intraday(c *gin.Context) {
	ticks, err := h.uc.Intraday(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	out := make([]dto.TickResponse, 0, len(ticks))
	for _, t := range ticks {
		out = append(out, dto.TickResponse{Time: t.Time, Values: t.Values})
	}
	c.JSON(http.StatusOK, out)
}

// Regions handles GET /indices/regions.
func (h *IndicesHandler) Regions(c *gin.Context) {
	rs, err := h.uc.Regions(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	out := make([]dto.RegionResponse, 0, len(rs))
	for _, r := range rs {
		out = append(out, dto.RegionResponse{
			Region:       string(r.Region),
			Title:        r.Region.Title(),
			Average:      r.Average,
			AverageLabel: metrics.FormatSignedPercent(r.Average),
			Direction:    string(metrics.DirectionOf(r.Average)),
			Indices:      r.Count,
		})
	}
	c.JSON(http.StatusOK, out)
}

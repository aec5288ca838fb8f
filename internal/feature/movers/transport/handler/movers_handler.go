// Package handler exposes the movers board over HTTP.
package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"stock_synth/internal/feature/movers/domain/entity"
	"stock_synth/internal/feature/movers/transport/http/dto"
	"stock_synth/internal/feature/movers/usecase"
	"stock_synth/internal/shared/metrics"
)

type MoversUsecase interface {
	Top(ctx context.Context, dir usecase.Direction, limit int) ([]entity.Ranked, error)
}

type MoversHandler struct {
	uc MoversUsecase
}

func NewMoversHandler(uc MoversUsecase) *MoversHandler {
	return &MoversHandler{uc: uc}
}

// Top handles GET /movers?direction=gainers|losers&limit=5.
func (h *MoversHandler) Top(c *gin.Context) {
	dir, err := usecase.ParseDirection(c.Query("direction"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	// 数値でなければ0としてusecaseのデフォルトに任せる
	limit, _ := strconv.Atoi(c.Query("limit"))

	ranked, err := h.uc.Top(c.Request.Context(), dir, limit)
	if errors.Is(err, usecase.ErrInvalidDirection) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	out := dto.MoversResponse{Direction: string(dir), Movers: make([]dto.MoverResponse, 0, len(ranked))}
	for _, r := range ranked {
		out.Movers = append(out.Movers, toResponse(r))
	}
	c.JSON(http.StatusOK, out)
}

func toResponse(r entity.Ranked) dto.MoverResponse {
	return dto.MoverResponse{
		Rank:               r.Rank,
		Symbol:             r.Symbol,
		Name:               r.Name,
		Price:              r.Price,
		Change:             r.Change,
		ChangePercent:      r.ChangePercent,
		Volume:             r.Volume,
		MarketCap:          r.MarketCap,
		Podium:             r.Podium(),
		IsGainer:           r.IsGainer(),
		PriceLabel:         metrics.FormatPrice(r.Price),
		ChangeLabel:        metrics.FormatSignedPrice(r.Change),
		ChangePercentLabel: "(" + metrics.FormatSignedPercent(r.ChangePercent) + ")",
	}
}

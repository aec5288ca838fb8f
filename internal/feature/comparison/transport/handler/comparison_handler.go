// Package handler exposes comparison workspaces over HTTP.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"stock_synth/internal/feature/comparison/domain/entity"
	"stock_synth/internal/feature/comparison/transport/http/dto"
	"stock_synth/internal/feature/comparison/usecase"
	"stock_synth/internal/shared/metrics"
)

type ComparisonUsecase interface {
	Create(ctx context.Context) (*usecase.View, error)
	Get(ctx context.Context, id string) (*usecase.View, error)
	Add(ctx context.Context, id, symbol string) (*usecase.View, bool, error)
	Remove(ctx context.Context, id, symbol string) (*usecase.View, error)
	Search(ctx context.Context, id, q string) ([]entity.Stock, error)
}

type TokenIssuer interface {
	GenerateToken(workspaceID string) (string, error)
}

type ComparisonHandler struct {
	uc     ComparisonUsecase
	tokens TokenIssuer
}

func NewComparisonHandler(uc ComparisonUsecase, tokens TokenIssuer) *ComparisonHandler {
	return &ComparisonHandler{uc: uc, tokens: tokens}
}

// Create handles POST /comparisons.
func (h *ComparisonHandler) Create(c *gin.Context) {
	v, err := h.uc.Create(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	token, err := h.tokens.GenerateToken(v.ID)
	if err != nil {
		slog.Error("failed to issue workspace token", "workspace", v.ID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to issue token"})
		return
	}
	c.JSON(http.StatusCreated, dto.CreateResponse{Token: token, Workspace: toResponse(v)})
}

// Get handles GET /comparisons/:id.
func (h *ComparisonHandler) Get(c *gin.Context) {
	v, err := h.uc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toResponse(v))
}

// AddStock handles POST /comparisons/:id/stocks.
func (h *ComparisonHandler) AddStock(c *gin.Context) {
	var req dto.AddStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	v, added, err := h.uc.Add(c.Request.Context(), c.Param("id"), req.Symbol)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.AddStockResponse{Added: added, Workspace: toResponse(v)})
}

// RemoveStock handles DELETE /comparisons/:id/stocks/:symbol.
func (h *ComparisonHandler) RemoveStock(c *gin.Context) {
	v, err := h.uc.Remove(c.Request.Context(), c.Param("id"), c.Param("symbol"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toResponse(v))
}

// Search handles GET /comparisons/search and GET /comparisons/:id/search.
func (h *ComparisonHandler) Search(c *gin.Context) {
	found, err := h.uc.Search(c.Request.Context(), c.Param("id"), c.Query("q"))
	if err != nil {
		writeError(c, err)
		return
	}
	out := make([]dto.SearchItem, 0, len(found))
	for _, st := range found {
		out = append(out, dto.SearchItem{Symbol: st.Symbol, Name: st.Name, Color: st.Color})
	}
	c.JSON(http.StatusOK, out)
}

func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrWorkspaceNotFound), errors.Is(err, usecase.ErrSymbolNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, usecase.ErrLastStock):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func toResponse(v *usecase.View) dto.WorkspaceResponse {
	out := dto.WorkspaceResponse{
		ID:        v.ID,
		ExpiresAt: v.ExpiresAt,
		Stocks:    make([]dto.StockResponse, 0, len(v.Stocks)),
		Series:    make([]dto.SeriesKey, 0, len(v.Series)),
		Data:      make([]dto.RowResponse, 0, len(v.Rows)),
		CanAdd:    len(v.Stocks) < entity.MaxStocks,
		CanRemove: len(v.Stocks) > 1,
	}
	for _, s := range v.Stocks {
		sr := dto.StockResponse{
			Symbol:      s.Symbol,
			Name:        s.Name,
			Color:       s.Color,
			Price:       s.Price,
			Performance: s.Performance,
		}
		if s.Performance != nil {
			label := metrics.FormatSignedPercent(*s.Performance)
			dir := string(metrics.DirectionOf(*s.Performance))
			sr.PerformanceLabel = &label
			sr.Direction = &dir
		}
		out.Stocks = append(out.Stocks, sr)
	}
	for _, s := range v.Series {
		out.Series = append(out.Series, dto.SeriesKey{Symbol: s.Symbol, Color: s.Color})
	}
	for _, r := range v.Rows {
		out.Data = append(out.Data, dto.RowResponse{Seq: r.Seq, Date: r.Label, Values: r.Values})
	}
	return out
}

// Package handler exposes the live price board over HTTP.
package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"stock_synth/internal/feature/quotes/domain/entity"
	"stock_synth/internal/feature/quotes/transport/http/dto"
	"stock_synth/internal/feature/quotes/usecase"
	"stock_synth/internal/shared/metrics"
)

type QuotesUsecase interface {
	ListQuotes(ctx context.Context) ([]entity.Quote, error)
	GetQuote(ctx context.Context, symbol string) (*entity.Quote, error)
}

type QuotesHandler struct {
	uc QuotesUsecase
}

func NewQuotesHandler(uc QuotesUsecase) *QuotesHandler {
	return &QuotesHandler{uc: uc}
}

// List handles GET /quotes.
func (h *QuotesHandler) List(c *gin.Context) {
	qs, err := h.uc.ListQuotes(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	out := make([]dto.QuoteResponse, 0, len(qs))
	for _, q := range qs {
		out = append(out, ToResponse(q))
	}
	c.JSON(http.StatusOK, out)
}

// Get handles GET /quotes/:code.
func (h *QuotesHandler) Get(c *gin.Context) {
	q, err := h.uc.GetQuote(c.Request.Context(), c.Param("code"))
	if errors.Is(err, usecase.ErrQuoteNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, ToResponse(*q))
}

// ToResponse attaches the display strings to a quote.
func ToResponse(q entity.Quote) dto.QuoteResponse {
	return dto.QuoteResponse{
		Symbol:             q.Symbol,
		Price:              q.Price,
		Change:             q.Change,
		ChangePercent:      q.ChangePercent,
		Volume:             q.Volume,
		Direction:          string(metrics.DirectionOf(q.Change)),
		PriceLabel:         metrics.FormatPrice(q.Price),
		ChangeLabel:        metrics.FormatSignedAmount(q.Change),
		ChangePercentLabel: metrics.FormatSignedPercent(q.ChangePercent),
	}
}

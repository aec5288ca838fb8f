// Package handler exposes company profiles over HTTP.
package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"stock_synth/internal/feature/profile/transport/http/dto"
	"stock_synth/internal/feature/profile/usecase"
	"stock_synth/internal/shared/metrics"
)

type ProfileUsecase interface {
	Get(ctx context.Context, symbol string) (*usecase.Profile, error)
}

type ProfileHandler struct {
	uc ProfileUsecase
}

func NewProfileHandler(uc ProfileUsecase) *ProfileHandler {
	return &ProfileHandler{uc: uc}
}

// Get handles GET /profile/:code.
func (h *ProfileHandler) Get(c *gin.Context) {
	p, err := h.uc.Get(c.Request.Context(), c.Param("code"))
	if errors.Is(err, usecase.ErrCompanyNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, toResponse(p))
}

func toResponse(p *usecase.Profile) dto.ProfileResponse {
	r := dto.ProfileResponse{
		Symbol:     p.Symbol,
		Name:       p.Name,
		Sector:     p.Sector,
		Industry:   p.Industry,
		MarketCap:  p.MarketCap,
		Price:      p.Price,
		PriceLabel: metrics.FormatPrice(p.Price),
		PE:         dto.MetricResponse{Value: p.PE, Label: fixed(p.PE), Signal: string(p.PESignal)},
		EPS:        dto.MetricResponse{Value: p.EPS, Label: metrics.FormatPrice(p.EPS)},
		Beta:       dto.MetricResponse{Value: p.Beta, Label: fixed(p.Beta), Signal: string(p.BetaSignal)},
		Dividend:   dto.MetricResponse{Value: p.Dividend, Label: metrics.FormatPrice(p.Dividend)},
		DividendYield: dto.MetricResponse{
			Value:  p.DividendYield,
			Label:  metrics.FormatPercent(p.DividendYield, 2),
			Signal: string(p.YieldSignal),
		},
		Volume:    p.Volume,
		AvgVolume: p.AvgVolume,
		Range52w: dto.RangeResponse{
			Low:       p.Low52w,
			High:      p.High52w,
			LowLabel:  metrics.FormatPrice(p.Low52w),
			HighLabel: metrics.FormatPrice(p.High52w),
			Position:  p.RangePosition,
		},
		Description:  p.Description,
		CEO:          p.CEO,
		Employees:    p.Employees,
		Founded:      p.Founded,
		Headquarters: p.Headquarters,
		Website:      p.Website,
	}
	if p.RangePosition != nil {
		label := metrics.FormatPercent(*p.RangePosition, 1)
		r.Range52w.PositionLabel = &label
	}
	return r
}

func fixed(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}

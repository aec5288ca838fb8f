// Package handler exposes the simulated prediction over HTTP.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"stock_synth/internal/feature/prediction/domain/entity"
	"stock_synth/internal/feature/prediction/transport/http/dto"
	"stock_synth/internal/feature/prediction/usecase"
)

type PredictionUsecase interface {
	Predict(ctx context.Context, symbol, model string) (*entity.Result, error)
}

type PredictionHandler struct {
	uc PredictionUsecase
}

func NewPredictionHandler(uc PredictionUsecase) *PredictionHandler {
	return &PredictionHandler{uc: uc}
}

// Predict handles POST /predictions.
func (h *PredictionHandler) Predict(c *gin.Context) {
	var req dto.PredictionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res, err := h.uc.Predict(c.Request.Context(), req.Symbol, req.Model)
	switch {
	case errors.Is(err, usecase.ErrSymbolRequired):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		// クライアント切断。応答は届かない
		slog.Info("prediction abandoned", "symbol", req.Symbol, "error", err)
		c.AbortWithStatus(http.StatusRequestTimeout)
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	out := dto.PredictionResponse{
		Symbol:       res.Symbol,
		Model:        res.Model,
		Predictions:  make(map[string]dto.ModelResponse, len(res.Predictions)),
		ActualPrices: res.ActualPrices,
		Dates:        res.Dates,
	}
	for name, m := range res.Predictions {
		out.Predictions[name] = dto.ModelResponse{
			Prices:       m.Prices,
			Accuracy:     m.Accuracy,
			RMSE:         m.RMSE,
			MAE:          m.MAE,
			TrainingTime: m.TrainingTime,
		}
	}
	c.JSON(http.StatusOK, out)
}

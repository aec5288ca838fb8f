// Package usecase answers prediction requests with a canned payload after a fixed delay.
package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"stock_synth/internal/feature/prediction/domain/entity"
)

// DefaultModel is used when a request names no model.
const DefaultModel = "lstm"

var ErrSymbolRequired = errors.New("symbol is required")

type predictionUsecase struct {
	payload entity.Payload
	delay   time.Duration
}

func NewPredictionUsecase(payload entity.Payload, delay time.Duration) *predictionUsecase {
	return &predictionUsecase{payload: payload.Clone(), delay: delay}
}

// Predict waits the configured delay and echoes symbol and model onto the payload.
// The model name keeps the caller's casing. It returns ctx.Err() if ctx ends first.
func (u *predictionUsecase) Predict(ctx context.Context, symbol, model string) (*entity.Result, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return nil, ErrSymbolRequired
	}
	model = strings.TrimSpace(model)
	if model == "" {
		model = DefaultModel
	}

	if u.delay > 0 {
		timer := time.NewTimer(u.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	return &entity.Result{Symbol: symbol, Model: model, Payload: u.payload.Clone()}, nil
}

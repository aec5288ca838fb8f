// Package usecase serves indicator series and the latest-reading summary.
package usecase

import (
	"context"
	"fmt"
	"strings"

	"stock_synth/internal/feature/indicators/domain/entity"
	"stock_synth/internal/shared/metrics"
)

type IndicatorRepository interface {
	// Find returns samples in ascending Seq order.
	Find(ctx context.Context, symbol string) ([]entity.Sample, error)
}

// Summary is the dashboard's headline reading of the latest sample.
type Summary struct {
	Symbol     string
	Label      string
	Price      float64
	RSI        float64
	RSIReading metrics.RSIReading
	MACD       float64
	Signal     float64
	MACDSignal metrics.Signal
	Histogram  float64
	SMA20      float64
	SMA20Pos   entity.Position
	EMA12      float64
	EMA12Pos   entity.Position
}

type indicatorsUsecase struct {
	repo       IndicatorRepository
	thresholds metrics.Thresholds
}

func NewIndicatorsUsecase(repo IndicatorRepository, th metrics.Thresholds) *indicatorsUsecase {
	return &indicatorsUsecase{repo: repo, thresholds: th}
}

func (u *indicatorsUsecase) Series(ctx context.Context, symbol string) ([]entity.Sample, error) {
	ss, err := u.repo.Find(ctx, normalize(symbol))
	if err != nil {
		return nil, fmt.Errorf("find indicators %s: %w", symbol, err)
	}
	return ss, nil
}

// Summarize classifies the most recent sample. ErrNoSamples when the series is empty.
func (u *indicatorsUsecase) Summarize(ctx context.Context, symbol string) (*Summary, error) {
	ss, err := u.Series(ctx, symbol)
	if err != nil {
		return nil, err
	}
	if len(ss) == 0 {
		return nil, fmt.Errorf("%w for %s", ErrNoSamples, normalize(symbol))
	}
	last := ss[len(ss)-1]

	return &Summary{
		Symbol:     last.Symbol,
		Label:      last.Label,
		Price:      last.Price,
		RSI:        last.RSI,
		RSIReading: u.thresholds.RSISignal(last.RSI),
		MACD:       last.MACD,
		Signal:     last.Signal,
		MACDSignal: metrics.ClassifyMACD(last.MACD, last.Signal),
		Histogram:  last.Histogram(),
		SMA20:      last.SMA20,
		SMA20Pos:   entity.PositionOf(last.Price, last.SMA20),
		EMA12:      last.EMA12,
		EMA12Pos:   entity.PositionOf(last.Price, last.EMA12),
	}, nil
}

func normalize(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}

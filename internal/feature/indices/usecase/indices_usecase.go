// Package usecase serves index cards, the intraday chart and regional averages.
package usecase

import (
	"context"
	"fmt"

	"stock_synth/internal/feature/indices/domain/entity"
	"stock_synth/internal/shared/metrics"
)

type IndexRepository interface {
	// List returns indices in sort order.
	List(ctx context.Context) ([]entity.Index, error)
	// Intraday returns points in ascending Seq order.
	Intraday(ctx context.Context) ([]entity.IntradayPoint, error)
}

// Tick is one time-of-day row of the intraday chart.
type Tick struct {
	Seq    int
	Time   string
	Values map[string]float64
}

type RegionSummary struct {
	Region  entity.Region
	Average float64
	Count   int
}

type indicesUsecase struct {
	repo IndexRepository
}

func NewIndicesUsecase(repo IndexRepository) *indicesUsecase {
	return &indicesUsecase{repo: repo}
}

func (u *indicesUsecase) List(ctx context.Context) ([]entity.Index, error) {
	idx, err := u.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list indices: %w", err)
	}
	return idx, nil
}

// Intraday pivots the points into one row per time label.
func (u *indicesUsecase) Intraday(ctx context.Context) ([]Tick, error) {
	points, err := u.repo.Intraday(ctx)
	if err != nil {
		return nil, fmt.Errorf("list intraday: %w", err)
	}
	ticks := []Tick{}
	pos := map[int]int{}
	for _, p := range points {
		i, ok := pos[p.Seq]
		if !ok {
			i = len(ticks)
			pos[p.Seq] = i
			ticks = append(ticks, Tick{Seq: p.Seq, Time: p.Time, Values: map[string]float64{}})
		}
		ticks[i].Values[p.Index] = p.Value
	}
	return ticks, nil
}

// Regions averages changePercent per region in entity.Regions order.
// Regions without any index are left out.
func (u *indicesUsecase) Regions(ctx context.Context) ([]RegionSummary, error) {
	idx, err := u.List(ctx)
	if err != nil {
		return nil, err
	}
	byRegion := map[entity.Region][]float64{}
	for _, i := range idx {
		byRegion[i.Region] = append(byRegion[i.Region], i.ChangePercent)
	}

	out := make([]RegionSummary, 0, len(entity.Regions))
	for _, r := range entity.Regions {
		avg, ok := metrics.Mean(byRegion[r])
		if !ok {
			continue
		}
		out = append(out, RegionSummary{Region: r, Average: avg, Count: len(byRegion[r])})
	}
	return out, nil
}

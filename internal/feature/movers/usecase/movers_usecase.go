// Package usecase ranks the top gainers and losers.
package usecase

import (
	"cmp"
	"context"
	"fmt"
	"math"
	"slices"

	"stock_synth/internal/feature/movers/domain/entity"
)

// Direction selects a side of the movers board.
type Direction string

const (
	Gainers Direction = "gainers"
	Losers  Direction = "losers"
)

const (
	DefaultLimit = 5
	MaxLimit     = 10
)

// ParseDirection maps a query value to a Direction; empty means gainers.
func ParseDirection(s string) (Direction, error) {
	switch Direction(s) {
	case "", Gainers:
		return Gainers, nil
	case Losers:
		return Losers, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidDirection, s)
}

type MoverRepository interface {
	List(ctx context.Context) ([]entity.Mover, error)
}

type moversUsecase struct {
	repo MoverRepository
}

func NewMoversUsecase(repo MoverRepository) *moversUsecase {
	return &moversUsecase{repo: repo}
}

// Top returns up to limit movers on one side of the board, ranked by the size
// of the percent move. limit <= 0 means DefaultLimit; it is capped at MaxLimit.
func (u *moversUsecase) Top(ctx context.Context, dir Direction, limit int) ([]entity.Ranked, error) {
	if dir != Gainers && dir != Losers {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDirection, dir)
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	limit = min(limit, MaxLimit)

	all, err := u.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list movers: %w", err)
	}

	side := make([]entity.Mover, 0, len(all))
	for _, m := range all {
		if (dir == Gainers && m.ChangePercent > 0) || (dir == Losers && m.ChangePercent < 0) {
			side = append(side, m)
		}
	}
	slices.SortStableFunc(side, func(a, b entity.Mover) int {
		if c := cmp.Compare(math.Abs(b.ChangePercent), math.Abs(a.ChangePercent)); c != 0 {
			return c
		}
		return cmp.Compare(a.Symbol, b.Symbol)
	})
	if len(side) > limit {
		side = side[:limit]
	}

	out := make([]entity.Ranked, 0, len(side))
	for i, m := range side {
		out = append(out, entity.Ranked{Mover: m, Rank: i + 1})
	}
	return out, nil
}

// Package usecase derives the classified metrics of a company profile.
package usecase

import (
	"context"
	"strings"

	"stock_synth/internal/feature/profile/domain/entity"
	"stock_synth/internal/shared/metrics"
)

// CompanyRepository returns ErrCompanyNotFound for unknown symbols.
type CompanyRepository interface {
	FindBySymbol(ctx context.Context, symbol string) (*entity.Company, error)
}

type Profile struct {
	entity.Company
	PESignal    metrics.Signal
	BetaSignal  metrics.Signal
	YieldSignal metrics.Signal
	// RangePosition is nil when the 52-week range is degenerate.
	RangePosition *float64
}

type profileUsecase struct {
	repo       CompanyRepository
	thresholds metrics.Thresholds
}

func NewProfileUsecase(repo CompanyRepository, th metrics.Thresholds) *profileUsecase {
	return &profileUsecase{repo: repo, thresholds: th}
}

func (u *profileUsecase) Get(ctx context.Context, symbol string) (*Profile, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return nil, ErrCompanyNotFound
	}
	c, err := u.repo.FindBySymbol(ctx, symbol)
	if err != nil {
		return nil, err
	}

	p := &Profile{
		Company:     *c,
		PESignal:    u.thresholds.Classify(c.PE, metrics.KindPE),
		BetaSignal:  u.thresholds.Classify(c.Beta, metrics.KindBeta),
		YieldSignal: u.thresholds.Classify(c.DividendYield, metrics.KindYield),
	}
	if pos, ok := metrics.RangePositionOK(c.Price, c.Low52w, c.High52w); ok {
		p.RangePosition = &pos
	}
	return p, nil
}

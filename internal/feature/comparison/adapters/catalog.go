package adapters

import (
	"context"
	"errors"

	"stock_synth/internal/feature/comparison/domain/entity"
	"stock_synth/internal/feature/comparison/usecase"
	symbolentity "stock_synth/internal/feature/symbollist/domain/entity"
	symbolusecase "stock_synth/internal/feature/symbollist/usecase"
)

// SymbolSource is the part of the symbol catalog the comparison needs.
type SymbolSource interface {
	Search(ctx context.Context, q string, limit int) ([]symbolentity.Symbol, error)
	FindByCode(ctx context.Context, code string) (*symbolentity.Symbol, error)
}

type catalog struct {
	src SymbolSource
}

var _ usecase.Catalog = (*catalog)(nil)

// NewCatalog exposes the symbol list as comparison stocks.
func NewCatalog(src SymbolSource) *catalog {
	return &catalog{src: src}
}

func (c *catalog) Search(ctx context.Context, q string, limit int) ([]entity.Stock, error) {
	found, err := c.src.Search(ctx, q, limit)
	if err != nil {
		return nil, err
	}
	out := make([]entity.Stock, 0, len(found))
	for _, s := range found {
		out = append(out, toStock(s))
	}
	return out, nil
}

// Lookup ignores inactive symbols.
func (c *catalog) Lookup(ctx context.Context, symbol string) (*entity.Stock, error) {
	s, err := c.src.FindByCode(ctx, symbol)
	if errors.Is(err, symbolusecase.ErrSymbolNotFound) {
		return nil, usecase.ErrSymbolNotFound
	}
	if err != nil {
		return nil, err
	}
	if !s.IsActive {
		return nil, usecase.ErrSymbolNotFound
	}
	st := toStock(*s)
	return &st, nil
}

func toStock(s symbolentity.Symbol) entity.Stock {
	return entity.Stock{Symbol: s.Code, Name: s.Name, Color: s.Color}
}

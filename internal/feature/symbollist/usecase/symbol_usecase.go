// Package usecase implements the business logic for symbol-related operations.
package usecase

import (
	"context"
	"strings"

	"stock_synth/internal/feature/symbollist/domain/entity"
)

// SymbolRepository abstracts the persistence layer for symbol (stock ticker) data.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type SymbolRepository interface {
	ListActive(ctx context.Context) ([]entity.Symbol, error)
	Search(ctx context.Context, q string, limit int) ([]entity.Symbol, error)
	FindByCode(ctx context.Context, code string) (*entity.Symbol, error)
}

// SymbolUsecase provides business logic for symbol operations.
type SymbolUsecase struct {
	repo SymbolRepository
}

// NewSymbolUsecase creates a new SymbolUsecase with the given repository.
func NewSymbolUsecase(r SymbolRepository) *SymbolUsecase {
	return &SymbolUsecase{repo: r}
}

// SearchSymbols returns active symbols whose code or name contains q.
// A blank query lists the whole catalog.
func (u *SymbolUsecase) SearchSymbols(ctx context.Context, q string, limit int) ([]entity.Symbol, error) {
	if strings.TrimSpace(q) == "" {
		return u.repo.ListActive(ctx)
	}
	return u.repo.Search(ctx, q, limit)
}

// GetSymbol returns one catalog entry or ErrSymbolNotFound.
func (u *SymbolUsecase) GetSymbol(ctx context.Context, code string) (*entity.Symbol, error) {
	return u.repo.FindByCode(ctx, strings.ToUpper(strings.TrimSpace(code)))
}

// Package usecase serves the live price board.
package usecase

import (
	"context"
	"fmt"
	"strings"

	"stock_synth/internal/feature/quotes/domain/entity"
)

// QuoteRepository reads quotes. Defined on the consumer side.
type QuoteRepository interface {
	List(ctx context.Context) ([]entity.Quote, error)
	FindBySymbol(ctx context.Context, symbol string) (*entity.Quote, error)
}

type quotesUsecase struct {
	repo QuoteRepository
}

// NewQuotesUsecase creates the quotes usecase.
func NewQuotesUsecase(repo QuoteRepository) *quotesUsecase {
	return &quotesUsecase{repo: repo}
}

// ListQuotes returns the board in display order.
func (u *quotesUsecase) ListQuotes(ctx context.Context) ([]entity.Quote, error) {
	qs, err := u.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list quotes: %w", err)
	}
	return qs, nil
}

// GetQuote returns one quote or ErrQuoteNotFound.
func (u *quotesUsecase) GetQuote(ctx context.Context, symbol string) (*entity.Quote, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return nil, ErrQuoteNotFound
	}
	return u.repo.FindBySymbol(ctx, symbol)
}

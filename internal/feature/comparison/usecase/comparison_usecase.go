// Package usecase manages comparison workspaces and builds their views.
package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"stock_synth/internal/feature/comparison/domain/entity"
	"stock_synth/internal/shared/metrics"
)

// SearchLimit caps the catalog matches offered for adding.
const SearchLimit = 4

// DefaultSymbols seed every new workspace.
var DefaultSymbols = []string{"AAPL", "MSFT"}

// WorkspaceStore persists selections. Find returns ErrWorkspaceNotFound for unknown ids.
type WorkspaceStore interface {
	Save(ctx context.Context, s *entity.Selection) error
	Find(ctx context.Context, id string) (*entity.Selection, error)
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

// SeriesRepository returns points for the given symbols in ascending Seq order.
type SeriesRepository interface {
	Find(ctx context.Context, symbols []string) ([]entity.Point, error)
}

// Catalog resolves symbols into stocks. Lookup returns ErrSymbolNotFound for unknown symbols.
type Catalog interface {
	Search(ctx context.Context, q string, limit int) ([]entity.Stock, error)
	Lookup(ctx context.Context, symbol string) (*entity.Stock, error)
}

// StockView is a selected stock with its latest value and performance over the window.
// Price and Performance are nil when the symbol has no usable series.
type StockView struct {
	entity.Stock
	Price       *float64
	Performance *float64
}

// Row is one label of the chart with a value per selected symbol.
type Row struct {
	Seq    int
	Label  string
	Values map[string]float64
}

type View struct {
	ID        string
	CreatedAt time.Time
	ExpiresAt time.Time
	Stocks    []StockView
	// Series is the tagged list of lines to draw, in selection order.
	Series []entity.Stock
	Rows   []Row
}

type comparisonUsecase struct {
	store   WorkspaceStore
	series  SeriesRepository
	catalog Catalog
	ttl     time.Duration
	now     func() time.Time
	newID   func() string
}

func NewComparisonUsecase(store WorkspaceStore, series SeriesRepository, catalog Catalog, ttl time.Duration) *comparisonUsecase {
	return &comparisonUsecase{
		store:   store,
		series:  series,
		catalog: catalog,
		ttl:     ttl,
		now:     time.Now,
		newID:   uuid.NewString,
	}
}

// Create starts a workspace seeded with DefaultSymbols.
func (u *comparisonUsecase) Create(ctx context.Context) (*View, error) {
	seed := make([]entity.Stock, 0, len(DefaultSymbols))
	for _, sym := range DefaultSymbols {
		st, err := u.catalog.Lookup(ctx, sym)
		if errors.Is(err, ErrSymbolNotFound) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("lookup %s: %w", sym, err)
		}
		seed = append(seed, *st)
	}
	if len(seed) == 0 {
		return nil, fmt.Errorf("no default symbols in catalog: %w", ErrSymbolNotFound)
	}

	sel := entity.NewSelection(u.newID(), u.now(), u.ttl, seed...)
	if err := u.store.Save(ctx, sel); err != nil {
		return nil, fmt.Errorf("save workspace: %w", err)
	}
	return u.view(ctx, sel)
}

func (u *comparisonUsecase) Get(ctx context.Context, id string) (*View, error) {
	sel, err := u.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return u.view(ctx, sel)
}

// Add selects symbol. added is false when it was already present or the selection is full.
func (u *comparisonUsecase) Add(ctx context.Context, id, symbol string) (*View, bool, error) {
	sel, err := u.load(ctx, id)
	if err != nil {
		return nil, false, err
	}
	st, err := u.catalog.Lookup(ctx, normalize(symbol))
	if err != nil {
		return nil, false, err
	}

	added := sel.Add(*st)
	if added {
		if err := u.store.Save(ctx, sel); err != nil {
			return nil, false, fmt.Errorf("save workspace: %w", err)
		}
	}
	v, err := u.view(ctx, sel)
	return v, added, err
}

// Remove drops symbol. ErrLastStock when it is the only one left.
func (u *comparisonUsecase) Remove(ctx context.Context, id, symbol string) (*View, error) {
	sel, err := u.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := sel.Remove(normalize(symbol)); err != nil {
		return nil, err
	}
	if err := u.store.Save(ctx, sel); err != nil {
		return nil, fmt.Errorf("save workspace: %w", err)
	}
	return u.view(ctx, sel)
}

// Search returns catalog matches for q, at most SearchLimit. A blank q matches nothing.
// When id names a workspace its selected symbols are left out.
func (u *comparisonUsecase) Search(ctx context.Context, id, q string) ([]entity.Stock, error) {
	if strings.TrimSpace(q) == "" {
		return []entity.Stock{}, nil
	}

	var sel *entity.Selection
	if id != "" {
		var err error
		if sel, err = u.load(ctx, id); err != nil {
			return nil, err
		}
	}

	// 選択済みを除外した後で上限を適用する
	found, err := u.catalog.Search(ctx, q, 0)
	if err != nil {
		return nil, fmt.Errorf("search catalog: %w", err)
	}
	out := make([]entity.Stock, 0, SearchLimit)
	for _, st := range found {
		if sel != nil && sel.Has(st.Symbol) {
			continue
		}
		out = append(out, st)
		if len(out) == SearchLimit {
			break
		}
	}
	return out, nil
}

// PurgeExpired deletes workspaces past their expiry.
func (u *comparisonUsecase) PurgeExpired(ctx context.Context) (int64, error) {
	return u.store.DeleteExpired(ctx, u.now())
}

func (u *comparisonUsecase) load(ctx context.Context, id string) (*entity.Selection, error) {
	sel, err := u.store.Find(ctx, id)
	if err != nil {
		return nil, err
	}
	if sel.Expired(u.now()) {
		return nil, ErrWorkspaceNotFound
	}
	return sel, nil
}

func (u *comparisonUsecase) view(ctx context.Context, sel *entity.Selection) (*View, error) {
	points, err := u.series.Find(ctx, sel.Symbols())
	if err != nil {
		return nil, fmt.Errorf("find comparison series: %w", err)
	}

	first := map[string]float64{}
	last := map[string]float64{}
	var rows []Row
	bySeq := map[int]int{}
	for _, p := range points {
		if _, ok := first[p.Symbol]; !ok {
			first[p.Symbol] = p.Value
		}
		last[p.Symbol] = p.Value

		i, ok := bySeq[p.Seq]
		if !ok {
			i = len(rows)
			bySeq[p.Seq] = i
			rows = append(rows, Row{Seq: p.Seq, Label: p.Label, Values: map[string]float64{}})
		}
		rows[i].Values[p.Symbol] = p.Value
	}

	v := &View{
		ID:        sel.ID,
		CreatedAt: sel.CreatedAt,
		ExpiresAt: sel.ExpiresAt,
		Stocks:    make([]StockView, 0, len(sel.Stocks)),
		Series:    append([]entity.Stock(nil), sel.Stocks...),
		Rows:      rows,
	}
	if v.Rows == nil {
		v.Rows = []Row{}
	}
	for _, st := range sel.Stocks {
		sv := StockView{Stock: st}
		if l, ok := last[st.Symbol]; ok {
			sv.Price = &l
			if perf := metrics.PercentChange(first[st.Symbol], l); !math.IsNaN(perf) && !math.IsInf(perf, 0) {
				sv.Performance = &perf
			}
		}
		v.Stocks = append(v.Stocks, sv)
	}
	return v, nil
}

func normalize(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}

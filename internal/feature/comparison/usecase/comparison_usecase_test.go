package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stock_synth/internal/feature/comparison/domain/entity"
)

// memStore はテスト用のインメモリ WorkspaceStore です。
type memStore struct {
	data  map[string]entity.Selection
	saves int
}

func newMemStore() *memStore {
	return &memStore{data: map[string]entity.Selection{}}
}

func (m *memStore) Save(ctx context.Context, s *entity.Selection) error {
	m.saves++
	cp := *s
	cp.Stocks = append([]entity.Stock(nil), s.Stocks...)
	m.data[s.ID] = cp
	return nil
}

func (m *memStore) Find(ctx context.Context, id string) (*entity.Selection, error) {
	s, ok := m.data[id]
	if !ok {
		return nil, ErrWorkspaceNotFound
	}
	return &s, nil
}

func (m *memStore) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	var n int64
	for id, s := range m.data {
		if s.Expired(now) {
			delete(m.data, id)
			n++
		}
	}
	return n, nil
}

type mockSeriesRepository struct {
	FindFunc func(ctx context.Context, symbols []string) ([]entity.Point, error)
}

func (m *mockSeriesRepository) Find(ctx context.Context, symbols []string) ([]entity.Point, error) {
	return m.FindFunc(ctx, symbols)
}

// fixedCatalog は固定の銘柄一覧を検索する Catalog です。
type fixedCatalog []entity.Stock

func (c fixedCatalog) Search(ctx context.Context, q string, limit int) ([]entity.Stock, error) {
	q = strings.ToLower(q)
	var out []entity.Stock
	for _, st := range c {
		if strings.Contains(strings.ToLower(st.Symbol), q) || strings.Contains(strings.ToLower(st.Name), q) {
			out = append(out, st)
		}
	}
	return out, nil
}

func (c fixedCatalog) Lookup(ctx context.Context, symbol string) (*entity.Stock, error) {
	for _, st := range c {
		if st.Symbol == symbol {
			return &st, nil
		}
	}
	return nil, ErrSymbolNotFound
}

var catalog = fixedCatalog{
	{Symbol: "AAPL", Name: "Apple Inc.", Color: "chart-1"},
	{Symbol: "MSFT", Name: "Microsoft Corp.", Color: "chart-2"},
	{Symbol: "GOOGL", Name: "Alphabet Inc.", Color: "chart-3"},
	{Symbol: "TSLA", Name: "Tesla Inc.", Color: "chart-4"},
	{Symbol: "AMZN", Name: "Amazon.com Inc.", Color: "chart-5"},
	{Symbol: "NVDA", Name: "NVIDIA Corp.", Color: "chart-1"},
}

var closes = map[string][]float64{
	"AAPL":  {150, 153, 157, 160, 163, 165, 166},
	"MSFT":  {370, 375, 380, 378, 385, 390, 388},
	"GOOGL": {140, 142, 145, 143, 147, 149, 148},
	"TSLA":  {240, 235, 245, 238, 250, 255, 252},
}

func seriesRepo() *mockSeriesRepository {
	return &mockSeriesRepository{
		FindFunc: func(ctx context.Context, symbols []string) ([]entity.Point, error) {
			var out []entity.Point
			for i := 0; i < 7; i++ {
				for _, s := range symbols {
					if v, ok := closes[s]; ok {
						out = append(out, entity.Point{Symbol: s, Seq: i + 1, Label: "Jan " + string(rune('1'+i)), Value: v[i]})
					}
				}
			}
			return out, nil
		},
	}
}

var t0 = time.Date(2026, 1, 7, 9, 0, 0, 0, time.UTC)

func newTestUsecase(store *memStore) *comparisonUsecase {
	uc := NewComparisonUsecase(store, seriesRepo(), catalog, time.Hour)
	uc.now = func() time.Time { return t0 }
	uc.newID = func() string { return "ws-1" }
	return uc
}

func TestComparisonUsecase_Create(t *testing.T) {
	t.Parallel()

	store := newMemStore()
	v, err := newTestUsecase(store).Create(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "ws-1", v.ID)
	assert.Equal(t, t0.Add(time.Hour), v.ExpiresAt)
	assert.Equal(t, []entity.Stock{catalog[0], catalog[1]}, v.Series)

	require.Len(t, v.Stocks, 2)
	assert.InDelta(t, 166, *v.Stocks[0].Price, 1e-9)
	assert.InDelta(t, 10.6667, *v.Stocks[0].Performance, 1e-3)
	assert.InDelta(t, 4.8649, *v.Stocks[1].Performance, 1e-3)

	require.Len(t, v.Rows, 7)
	assert.Equal(t, "Jan 1", v.Rows[0].Label)
	assert.Equal(t, map[string]float64{"AAPL": 150, "MSFT": 370}, v.Rows[0].Values)

	_, ok := store.data["ws-1"]
	assert.True(t, ok)
}

func TestComparisonUsecase_Add(t *testing.T) {
	t.Parallel()

	store := newMemStore()
	uc := newTestUsecase(store)
	ctx := context.Background()
	_, err := uc.Create(ctx)
	require.NoError(t, err)

	t.Run("present symbol is a no-op", func(t *testing.T) {
		saves := store.saves
		v, added, err := uc.Add(ctx, "ws-1", "aapl")
		require.NoError(t, err)
		assert.False(t, added)
		assert.Len(t, v.Stocks, 2)
		assert.Equal(t, saves, store.saves)
	})

	t.Run("fills up to five then stops", func(t *testing.T) {
		for _, sym := range []string{"GOOGL", "TSLA", "AMZN"} {
			_, added, err := uc.Add(ctx, "ws-1", sym)
			require.NoError(t, err)
			require.True(t, added, sym)
		}
		v, added, err := uc.Add(ctx, "ws-1", "NVDA")
		require.NoError(t, err)
		assert.False(t, added)
		assert.Len(t, v.Stocks, entity.MaxStocks)
		assert.Len(t, store.data["ws-1"].Stocks, entity.MaxStocks)

		// AMZN has no series
		amzn := v.Stocks[4]
		assert.Equal(t, "AMZN", amzn.Symbol)
		assert.Nil(t, amzn.Price)
		assert.Nil(t, amzn.Performance)
	})

	t.Run("unknown symbol", func(t *testing.T) {
		_, _, err := uc.Add(ctx, "ws-1", "ZZZ")
		assert.ErrorIs(t, err, ErrSymbolNotFound)
	})

	t.Run("unknown workspace", func(t *testing.T) {
		_, _, err := uc.Add(ctx, "nope", "AAPL")
		assert.ErrorIs(t, err, ErrWorkspaceNotFound)
	})
}

func TestComparisonUsecase_Remove(t *testing.T) {
	t.Parallel()

	store := newMemStore()
	uc := newTestUsecase(store)
	ctx := context.Background()
	_, err := uc.Create(ctx)
	require.NoError(t, err)

	v, err := uc.Remove(ctx, "ws-1", "msft")
	require.NoError(t, err)
	assert.Equal(t, []entity.Stock{catalog[0]}, v.Series)

	_, err = uc.Remove(ctx, "ws-1", "AAPL")
	assert.ErrorIs(t, err, ErrLastStock)
	assert.Len(t, store.data["ws-1"].Stocks, 1)
}

func TestComparisonUsecase_ExpiredWorkspace(t *testing.T) {
	t.Parallel()

	store := newMemStore()
	uc := newTestUsecase(store)
	ctx := context.Background()
	_, err := uc.Create(ctx)
	require.NoError(t, err)

	uc.now = func() time.Time { return t0.Add(2 * time.Hour) }
	_, err = uc.Get(ctx, "ws-1")
	assert.ErrorIs(t, err, ErrWorkspaceNotFound)

	n, err := uc.PurgeExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	assert.Empty(t, store.data)
}

func TestComparisonUsecase_Search(t *testing.T) {
	t.Parallel()

	uc := newTestUsecase(newMemStore())
	ctx := context.Background()
	_, err := uc.Create(ctx)
	require.NoError(t, err)

	symbols := func(ss []entity.Stock) []string {
		out := []string{}
		for _, s := range ss {
			out = append(out, s.Symbol)
		}
		return out
	}

	tests := []struct {
		name string
		id   string
		q    string
		want []string
	}{
		{"blank query", "", "  ", []string{}},
		{"name match", "", "corp", []string{"MSFT", "NVDA"}},
		{"capped at four", "", "a", []string{"AAPL", "GOOGL", "TSLA", "AMZN"}},
		{"selected excluded before cap", "ws-1", "a", []string{"GOOGL", "TSLA", "AMZN", "NVDA"}},
		{"no match", "", "zzz", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := uc.Search(ctx, tt.id, tt.q)
			require.NoError(t, err)
			assert.Equal(t, tt.want, symbols(got))
		})
	}

	_, err = uc.Search(ctx, "nope", "a")
	assert.ErrorIs(t, err, ErrWorkspaceNotFound)
}

func TestComparisonUsecase_SeriesError(t *testing.T) {
	t.Parallel()

	errDB := errors.New("database error")
	uc := NewComparisonUsecase(newMemStore(), &mockSeriesRepository{
		FindFunc: func(ctx context.Context, symbols []string) ([]entity.Point, error) { return nil, errDB },
	}, catalog, time.Hour)

	_, err := uc.Create(context.Background())
	assert.ErrorIs(t, err, errDB)
}

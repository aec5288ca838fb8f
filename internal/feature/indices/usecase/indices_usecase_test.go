package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stock_synth/internal/feature/indices/domain/entity"
	"stock_synth/internal/feature/indices/usecase"
)

type mockIndexRepository struct {
	ListFunc     func(ctx context.Context) ([]entity.Index, error)
	IntradayFunc func(ctx context.Context) ([]entity.IntradayPoint, error)
}

func (m *mockIndexRepository) List(ctx context.Context) ([]entity.Index, error) {
	return m.ListFunc(ctx)
}

func (m *mockIndexRepository) Intraday(ctx context.Context) ([]entity.IntradayPoint, error) {
	return m.IntradayFunc(ctx)
}

var board = []entity.Index{
	{Symbol: "NIFTY", Region: entity.Asia, Change: 127.45, ChangePercent: 0.65},
	{Symbol: "SENSEX", Region: entity.Asia, Change: 298.67, ChangePercent: 0.45},
	{Symbol: "SP500", Region: entity.US, Change: -23.42, ChangePercent: -0.51},
	{Symbol: "NASDAQ", Region: entity.US, Change: 45.23, ChangePercent: 0.32},
	{Symbol: "FTSE", Region: entity.Europe, Change: -12.78, ChangePercent: -0.17},
	{Symbol: "DAX", Region: entity.Europe, Change: 67.89, ChangePercent: 0.43},
}

func TestIndicesUsecase_Regions(t *testing.T) {
	t.Parallel()

	uc := usecase.NewIndicesUsecase(&mockIndexRepository{
		ListFunc: func(ctx context.Context) ([]entity.Index, error) {
			// 地域順とは異なる並び
			return []entity.Index{board[4], board[2], board[0], board[5], board[3], board[1]}, nil
		},
	})

	got, err := uc.Regions(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, entity.Asia, got[0].Region)
	assert.InDelta(t, 0.55, got[0].Average, 1e-9)
	assert.Equal(t, 2, got[0].Count)
	assert.Equal(t, entity.US, got[1].Region)
	assert.InDelta(t, -0.095, got[1].Average, 1e-9)
	assert.Equal(t, entity.Europe, got[2].Region)
	assert.InDelta(t, 0.13, got[2].Average, 1e-9)
}

func TestIndicesUsecase_Regions_SkipsEmpty(t *testing.T) {
	t.Parallel()

	uc := usecase.NewIndicesUsecase(&mockIndexRepository{
		ListFunc: func(ctx context.Context) ([]entity.Index, error) { return board[4:], nil },
	})

	got, err := uc.Regions(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, entity.Europe, got[0].Region)
}

func TestIndicesUsecase_Intraday(t *testing.T) {
	t.Parallel()

	uc := usecase.NewIndicesUsecase(&mockIndexRepository{
		IntradayFunc: func(ctx context.Context) ([]entity.IntradayPoint, error) {
			return []entity.IntradayPoint{
				{Index: "NIFTY", Seq: 1, Time: "9:00", Value: 19720},
				{Index: "SP500", Seq: 1, Time: "9:00", Value: 4590},
				{Index: "NIFTY", Seq: 2, Time: "10:00", Value: 19735},
				{Index: "SP500", Seq: 2, Time: "10:00", Value: 4585},
			}, nil
		},
	})

	got, err := uc.Intraday(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []usecase.Tick{
		{Seq: 1, Time: "9:00", Values: map[string]float64{"NIFTY": 19720, "SP500": 4590}},
		{Seq: 2, Time: "10:00", Values: map[string]float64{"NIFTY": 19735, "SP500": 4585}},
	}, got)
}

func TestIndicesUsecase_Errors(t *testing.T) {
	t.Parallel()

	errDB := errors.New("database error")
	uc := usecase.NewIndicesUsecase(&mockIndexRepository{
		ListFunc:     func(ctx context.Context) ([]entity.Index, error) { return nil, errDB },
		IntradayFunc: func(ctx context.Context) ([]entity.IntradayPoint, error) { return nil, errDB },
	})
	ctx := context.Background()

	_, err := uc.List(ctx)
	assert.ErrorIs(t, err, errDB)
	_, err = uc.Intraday(ctx)
	assert.ErrorIs(t, err, errDB)
	_, err = uc.Regions(ctx)
	assert.ErrorIs(t, err, errDB)
}

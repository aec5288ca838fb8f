package usecase_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"stock_synth/internal/feature/candles/domain/entity"
	"stock_synth/internal/feature/candles/usecase"
)

// ErrDB はモックと期待値の間で共有されるセンチネルエラーです。
var ErrDB = errors.New("database error")

// mockCandleRepository はCandleRepositoryインターフェースのモック実装です。
type mockCandleRepository struct {
	FindFunc  func(ctx context.Context, symbol, interval string, outputsize int) ([]entity.Candle, error)
	FindCalls int
}

// Find はFindFuncが設定されていればそれを呼び出し、呼び出し回数を記録します。
func (m *mockCandleRepository) Find(ctx context.Context, symbol, interval string, outputsize int) ([]entity.Candle, error) {
	m.FindCalls++
	if m.FindFunc != nil {
		return m.FindFunc(ctx, symbol, interval, outputsize)
	}
	return nil, errors.New("FindFunc is not implemented")
}

// TestCandlesUsecase_GetCandles はGetCandlesメソッドのパラメータ処理とリポジトリ呼び出しをテストします。
func TestCandlesUsecase_GetCandles(t *testing.T) {
	ctx := context.Background()
	expectedCandles := []entity.Candle{
		{Symbol: "AAPL", Interval: "1day", Seq: 1, Label: "Jan 1", Open: 150, High: 155, Low: 148, Close: 153, Volume: 1_200_000},
	}

	testCases := []struct {
		name               string
		inputSymbol        string
		inputInterval      string
		inputOutputsize    int
		mockFindFunc       func(ctx context.Context, symbol, interval string, outputsize int) ([]entity.Candle, error)
		expectedCandles    []entity.Candle
		expectedErr        error
		expectedInterval   string // モックに渡されるべきインターバル
		expectedOutputsize int    // モックに渡されるべきoutputsize
	}{
		{
			name:            "success: all parameters specified",
			inputSymbol:     "AAPL",
			inputInterval:   "1week",
			inputOutputsize: 50,
			mockFindFunc: func(ctx context.Context, symbol, interval string, outputsize int) ([]entity.Candle, error) {
				return expectedCandles, nil
			},
			expectedCandles:    expectedCandles,
			expectedErr:        nil,
			expectedInterval:   "1week",
			expectedOutputsize: 50,
		},
		{
			name:            "success: default value used when interval is empty",
			inputSymbol:     "GOOG",
			inputInterval:   "",
			inputOutputsize: 100,
			mockFindFunc: func(ctx context.Context, symbol, interval string, outputsize int) ([]entity.Candle, error) {
				return expectedCandles, nil
			},
			expectedCandles:    expectedCandles,
			expectedErr:        nil,
			expectedInterval:   "1day",
			expectedOutputsize: 100,
		},
		{
			name:            "success: default value used when outputsize is 0",
			inputSymbol:     "MSFT",
			inputInterval:   "1month",
			inputOutputsize: 0,
			mockFindFunc: func(ctx context.Context, symbol, interval string, outputsize int) ([]entity.Candle, error) {
				return expectedCandles, nil
			},
			expectedCandles:    expectedCandles,
			expectedErr:        nil,
			expectedInterval:   "1month",
			expectedOutputsize: 200,
		},
		{
			name:            "success: default value used when outputsize exceeds max",
			inputSymbol:     "TSLA",
			inputInterval:   "1day",
			inputOutputsize: 5001,
			mockFindFunc: func(ctx context.Context, symbol, interval string, outputsize int) ([]entity.Candle, error) {
				return expectedCandles, nil
			},
			expectedCandles:    expectedCandles,
			expectedErr:        nil,
			expectedInterval:   "1day",
			expectedOutputsize: 200,
		},
		{
			name:            "error: repository returns error",
			inputSymbol:     "AMZN",
			inputInterval:   "1day",
			inputOutputsize: 10,
			mockFindFunc: func(ctx context.Context, symbol, interval string, outputsize int) ([]entity.Candle, error) {
				return nil, ErrDB
			},
			expectedCandles:    nil,
			expectedErr:        ErrDB,
			expectedInterval:   "1day",
			expectedOutputsize: 10,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockRepo := &mockCandleRepository{
				FindFunc: func(ctx context.Context, symbol, interval string, outputsize int) ([]entity.Candle, error) {
					// ユースケースが正しいパラメータでリポジトリを呼び出すことを検証
					if symbol != tc.inputSymbol || interval != tc.expectedInterval || outputsize != tc.expectedOutputsize {
						t.Errorf("Find called with unexpected params: got symbol=%s, interval=%s, outputsize=%d, want symbol=%s, interval=%s, outputsize=%d",
							symbol, interval, outputsize, tc.inputSymbol, tc.expectedInterval, tc.expectedOutputsize)
					}
					return tc.mockFindFunc(ctx, symbol, interval, outputsize)
				},
			}
			uc := usecase.NewCandlesUsecase(mockRepo)

			candles, err := uc.GetCandles(ctx, tc.inputSymbol, tc.inputInterval, tc.inputOutputsize)

			// センチネル比較によるエラー検証
			if tc.expectedErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
			} else if !errors.Is(err, tc.expectedErr) {
				t.Fatalf("expected %v, got %v", tc.expectedErr, err)
			}

			// 結果の比較
			if !reflect.DeepEqual(candles, tc.expectedCandles) {
				t.Errorf("result mismatch: got %v, want %v", candles, tc.expectedCandles)
			}

			// 呼び出し回数の検証
			if mockRepo.FindCalls != 1 {
				t.Errorf("Find was called %d times, expected 1", mockRepo.FindCalls)
			}
		})
	}
}

// TestCandlesUsecase_GetCandles_NormalizesSymbol は小文字や空白付きの銘柄コードが正規化されることを検証します。
func TestCandlesUsecase_GetCandles_NormalizesSymbol(t *testing.T) {
	var got string
	mockRepo := &mockCandleRepository{
		FindFunc: func(ctx context.Context, symbol, interval string, outputsize int) ([]entity.Candle, error) {
			got = symbol
			return nil, nil
		},
	}
	uc := usecase.NewCandlesUsecase(mockRepo)

	if _, err := uc.GetCandles(context.Background(), " aapl ", "", 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "AAPL" {
		t.Errorf("expected symbol AAPL, got %q", got)
	}
}

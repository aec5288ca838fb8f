package handler_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"stock_synth/internal/feature/movers/domain/entity"
	"stock_synth/internal/feature/movers/transport/handler"
	"stock_synth/internal/feature/movers/usecase"
)

type mockMoversUsecase struct {
	TopFunc func(ctx context.Context, dir usecase.Direction, limit int) ([]entity.Ranked, error)
}

func (m *mockMoversUsecase) Top(ctx context.Context, dir usecase.Direction, limit int) ([]entity.Ranked, error) {
	return m.TopFunc(ctx, dir, limit)
}

func TestMoversHandler_Top(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		url            string
		top            func(ctx context.Context, dir usecase.Direction, limit int) ([]entity.Ranked, error)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "success: gainers by default",
			url:  "/movers",
			top: func(ctx context.Context, dir usecase.Direction, limit int) ([]entity.Ranked, error) {
				assert.Equal(t, usecase.Gainers, dir)
				assert.Equal(t, 0, limit)
				return []entity.Ranked{{Rank: 1, Mover: entity.Mover{
					Symbol: "TSLA", Name: "Tesla Inc", Price: 238.45, Change: 18.67, ChangePercent: 8.49, Volume: "89.3M", MarketCap: "758B",
				}}}, nil
			},
			expectedStatus: http.StatusOK,
			expectedBody: `{"direction":"gainers","movers":[{"rank":1,"symbol":"TSLA","name":"Tesla Inc","price":238.45,
				"change":18.67,"changePercent":8.49,"volume":"89.3M","marketCap":"758B","podium":true,"isGainer":true,
				"priceLabel":"$238.45","changeLabel":"+$18.67","changePercentLabel":"(+8.49%)"}]}`,
		},
		{
			name: "success: losers with limit",
			url:  "/movers?direction=losers&limit=3",
			top: func(ctx context.Context, dir usecase.Direction, limit int) ([]entity.Ranked, error) {
				assert.Equal(t, usecase.Losers, dir)
				assert.Equal(t, 3, limit)
				return []entity.Ranked{{Rank: 4, Mover: entity.Mover{
					Symbol: "GOOGL", Name: "Alphabet Inc", Price: 142.56, Change: -5.23, ChangePercent: -3.54, Volume: "25.7M", MarketCap: "1.8T",
				}}}, nil
			},
			expectedStatus: http.StatusOK,
			expectedBody: `{"direction":"losers","movers":[{"rank":4,"symbol":"GOOGL","name":"Alphabet Inc","price":142.56,
				"change":-5.23,"changePercent":-3.54,"volume":"25.7M","marketCap":"1.8T","podium":false,"isGainer":false,
				"priceLabel":"$142.56","changeLabel":"-$5.23","changePercentLabel":"(-3.54%)"}]}`,
		},
		{
			name:           "error: unknown direction",
			url:            "/movers?direction=up",
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"direction must be gainers or losers: \"up\""}`,
		},
		{
			name: "error: usecase fails",
			url:  "/movers",
			top: func(ctx context.Context, dir usecase.Direction, limit int) ([]entity.Ranked, error) {
				return nil, errors.New("boom")
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"boom"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := handler.NewMoversHandler(&mockMoversUsecase{TopFunc: tt.top})
			router := gin.New()
			router.GET("/movers", h.Top)

			w := httptest.NewRecorder()
			req, _ := http.NewRequest(http.MethodGet, tt.url, nil)
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}

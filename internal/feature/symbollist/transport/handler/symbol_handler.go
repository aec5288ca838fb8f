package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"stock_synth/internal/feature/symbollist/domain/entity"
	"stock_synth/internal/feature/symbollist/transport/http/dto"
	"stock_synth/internal/feature/symbollist/usecase"
)

// SymbolUsecase は銘柄情報に関するユースケースのインターフェースです。
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type SymbolUsecase interface {
	SearchSymbols(ctx context.Context, q string, limit int) ([]entity.Symbol, error)
	GetSymbol(ctx context.Context, code string) (*entity.Symbol, error)
}

// SymbolHandler は銘柄情報に関するHTTPリクエストを処理します。
type SymbolHandler struct {
	uc SymbolUsecase
}

// NewSymbolHandler は新しい SymbolHandler を作成します。
func NewSymbolHandler(uc SymbolUsecase) *SymbolHandler {
	return &SymbolHandler{uc: uc}
}

// List は有効な銘柄の一覧を返します。q を指定するとコードまたは名称で絞り込みます。
//
// GET /symbols?q=app
func (h *SymbolHandler) List(c *gin.Context) {
	symbols, err := h.uc.SearchSymbols(c.Request.Context(), c.Query("q"), 0)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	out := make([]dto.SymbolItem, 0, len(symbols))
	for _, s := range symbols {
		out = append(out, toItem(s))
	}
	c.JSON(http.StatusOK, out)
}

// Get は1銘柄を返します。
//
// GET /symbols/:code
func (h *SymbolHandler) Get(c *gin.Context) {
	s, err := h.uc.GetSymbol(c.Request.Context(), c.Param("code"))
	if errors.Is(err, usecase.ErrSymbolNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, toItem(*s))
}

func toItem(s entity.Symbol) dto.SymbolItem {
	return dto.SymbolItem{Code: s.Code, Name: s.Name, Market: s.Market, Color: s.Color}
}

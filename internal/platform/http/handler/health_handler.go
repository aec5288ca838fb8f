// Package handler はプラットフォームレベルのエンドポイント用HTTPハンドラーを提供します。
package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const checkTimeout = 2 * time.Second

// Check は依存先（DB、Redisなど）の疎通確認です。
type Check struct {
	Name string
	Ping func(ctx context.Context) error
}

// HealthHandler は /healthz を処理します。
type HealthHandler struct {
	checks []Check
}

// NewHealthHandler は checks を順に確認するハンドラーを生成します。
func NewHealthHandler(checks ...Check) *HealthHandler {
	return &HealthHandler{checks: checks}
}

// Health はサービスヘルスチェック用の /healthz エンドポイントを処理します。
// HEAD/OPTIONS は依存先を確認せずに即答し、それ以外は各チェックの結果を返します。
func (h *HealthHandler) Health(c *gin.Context) {
	// 明示的にキャッシュを防止
	c.Header("Cache-Control", "no-store")

	switch c.Request.Method {
	case http.MethodHead:
		c.Status(http.StatusOK)
		return
	case http.MethodOptions:
		c.Status(http.StatusNoContent)
		return
	}

	if len(h.checks) == 0 {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), checkTimeout)
	defer cancel()

	status, code := "ok", http.StatusOK
	results := make(map[string]string, len(h.checks))
	for _, chk := range h.checks {
		if err := chk.Ping(ctx); err != nil {
			results[chk.Name] = err.Error()
			status, code = "unavailable", http.StatusServiceUnavailable
			continue
		}
		results[chk.Name] = "ok"
	}
	c.JSON(code, gin.H{"status": status, "checks": results})
}

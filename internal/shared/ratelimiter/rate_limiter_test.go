package ratelimiter

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRateLimiter_Allow(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	rl := NewRateLimiter(2, time.Minute)
	rl.now = func() time.Time { return now }

	ok, _ := rl.Allow("a")
	assert.True(t, ok)
	ok, _ = rl.Allow("a")
	assert.True(t, ok)

	ok, wait := rl.Allow("a")
	assert.False(t, ok)
	assert.Equal(t, time.Minute, wait)

	// 別のキーは独立
	ok, _ = rl.Allow("b")
	assert.True(t, ok)

	now = now.Add(40 * time.Second)
	ok, wait = rl.Allow("a")
	assert.False(t, ok)
	assert.Equal(t, 20*time.Second, wait)

	now = now.Add(20 * time.Second)
	ok, _ = rl.Allow("a")
	assert.True(t, ok, "window resets after interval")
}

func TestRateLimiter_SweepsExpiredWindows(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	rl := NewRateLimiter(1, time.Minute)
	rl.now = func() time.Time { return now }

	rl.Allow("a")
	rl.Allow("b")
	now = now.Add(2 * time.Minute)
	rl.Allow("c")

	assert.Len(t, rl.windows, 1)
}

func TestMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	rl := NewRateLimiter(1, time.Minute)
	r := gin.New()
	r.POST("/predictions", Middleware(rl), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	send := func() *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/predictions", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		r.ServeHTTP(w, req)
		return w
	}

	assert.Equal(t, http.StatusOK, send().Code)

	w := send()
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "60", w.Header().Get("Retry-After"))
	assert.JSONEq(t, `{"error":"too many requests"}`, w.Body.String())
}

func TestMiddleware_Disabled(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/x", Middleware(NewRateLimiter(0, time.Minute)), func(c *gin.Context) { c.Status(http.StatusNoContent) })

	for range 3 {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
		assert.Equal(t, http.StatusNoContent, w.Code)
	}
}

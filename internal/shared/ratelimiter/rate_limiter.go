// Package ratelimiter はクライアントごとのリクエスト頻度を制限します。
package ratelimiter

import (
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// window はクライアント1つ分の固定ウィンドウです。
type window struct {
	count     int
	lastReset time.Time
}

// RateLimiter は、キー（クライアントIPなど）ごとに interval あたり limit 回までの操作を許可します。
type RateLimiter struct {
	limit    int           // interval あたりの上限
	interval time.Duration // どの単位でリセットするか

	mu      sync.Mutex
	windows map[string]*window
	now     func() time.Time
}

// NewRateLimiterは新しいRateLimiterのインスタンスを生成します。
func NewRateLimiter(limit int, interval time.Duration) *RateLimiter {
	return &RateLimiter{
		limit:    limit,
		interval: interval,
		windows:  make(map[string]*window),
		now:      time.Now,
	}
}

// Allow は key の操作を1回数え、上限内なら true を返します。
// 上限を超えた場合は false と、ウィンドウがリセットされるまでの時間を返します。
func (rl *RateLimiter) Allow(key string) (bool, time.Duration) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	w, ok := rl.windows[key]
	// interval を過ぎたらカウントリセット
	if !ok || now.Sub(w.lastReset) >= rl.interval {
		w = &window{lastReset: now}
		rl.windows[key] = w
		rl.sweep(now)
	}

	if w.count >= rl.limit {
		return false, rl.interval - now.Sub(w.lastReset)
	}
	w.count++
	return true, 0
}

// sweep は期限切れのウィンドウを捨てます。
func (rl *RateLimiter) sweep(now time.Time) {
	for k, w := range rl.windows {
		if now.Sub(w.lastReset) >= rl.interval {
			delete(rl.windows, k)
		}
	}
}

// Middleware はクライアントIPをキーに制限し、超過時は 429 と Retry-After を返します。
// limit <= 0 の場合は何もしません。
func Middleware(rl *RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rl == nil || rl.limit <= 0 {
			c.Next()
			return
		}
		ok, wait := rl.Allow(c.ClientIP())
		if !ok {
			slog.Warn("rate limit exceeded", "client", c.ClientIP(), "path", c.FullPath(), "retryAfter", wait)
			c.Header("Retry-After", strconv.Itoa(int(math.Ceil(wait.Seconds()))))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "too many requests"})
			return
		}
		c.Next()
	}
}

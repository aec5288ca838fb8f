// Package logging はプロセス全体の slog ロガーを構成します。
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"stock_synth/internal/app/config"
)

// ParseLevel は debug|info|warn|error を slog.Level に変換します。不明な値は info です。
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// New は cfg の形式とレベルで w に出力するロガーを返します。
func New(w io.Writer, cfg config.LogConfig) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(cfg.Level)}
	if strings.EqualFold(strings.TrimSpace(cfg.Format), "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// Setup は標準エラー出力向けのロガーを slog のデフォルトに設定します。
func Setup(cfg config.LogConfig) *slog.Logger {
	l := New(os.Stderr, cfg)
	slog.SetDefault(l)
	return l
}

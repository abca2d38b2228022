// Package logging 建立整個程式共用的 slog 日誌器。
package logging

import (
	"io"
	"log/slog"
	"strings"

	"message_board/pkg/config"
)

// New 依照配置建立日誌器，format 為 json 時輸出 JSON，否則為文字格式
func New(w io.Writer, cfg config.LogConfig) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(cfg.Level)}
	if cfg.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// ParseLevel 將字串轉換為 slog.Level，無法識別時回傳 Info
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
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

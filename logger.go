package tgmarkup

import (
	"log/slog"
	"os"
)

// Logger 全局日志记录器
var Logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
	Level: slog.LevelWarn,
})).With("lib", "tgmarkup")

// SetLogger 设置自定义日志记录器
func SetLogger(logger *slog.Logger) {
	Logger = logger
}

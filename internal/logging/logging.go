package logging

import (
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
)

// Setup ставит цветной tint-хендлер дефолтным логгером процесса.
// tint сам определяет, поддерживает ли терминал цвета.
func Setup() *slog.Logger {
	handler := tint.NewHandler(os.Stdout, &tint.Options{
		Level:      slog.LevelInfo,
		TimeFormat: "2006-01-02 15:04:05",
	})

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}

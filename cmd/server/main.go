package main

import (
	"fmt"
	"log/slog"
	"os"

	"followup/internal/config"
	"followup/internal/handlers"
	"followup/internal/logging"
	"followup/internal/server"
	"followup/internal/store"
)

func main() {
	logging.Setup()
	cfg := config.Load()

	var st store.DealStore
	if cfg.DBDSN == "" {
		slog.Warn("DB_DSN is not set, using in-memory store")
		st = store.NewMemory()
	} else {
		g, err := store.OpenGorm(cfg.DBDSN)
		if err != nil {
			slog.Error("failed to open store", "err", err)
			os.Exit(1)
		}
		st = g
	}

	h, err := handlers.New(st, cfg)
	if err != nil {
		slog.Error("failed to init handlers", "err", err)
		os.Exit(1)
	}

	r := server.NewRouter(cfg, h)

	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	slog.Info("starting server", "addr", addr)
	if err := r.Run(addr); err != nil {
		slog.Error("server error", "err", err)
		os.Exit(1)
	}
}

package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"litmus/internal/app"
	"litmus/internal/config"
)

func main() {
	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("error loading config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	deps := app.Open(ctx, cfg)
	defer deps.Close()

	slog.Info("capturing market mood", "history", cfg.HistoryPath)

	if _, err := deps.CaptureJob().Run(ctx); err != nil {
		log.Fatalf("error capturing mood: %v", err)
	}
}

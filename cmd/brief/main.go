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
	if err := cfg.ValidateBrief(); err != nil {
		log.Fatalf("error in brief config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gen, err := app.NewLLM(ctx, cfg, cfg.BriefModel)
	if err != nil {
		log.Fatalf("error creating LLM client: %v", err)
	}

	deps := app.Open(ctx, cfg)
	defer deps.Close()

	if _, _, err := deps.BriefGenerator(gen).Publish(ctx, cfg.Region, cfg.BriefType); err != nil {
		log.Fatalf("error generating brief: %v", err)
	}
}

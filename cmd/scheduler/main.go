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
	"litmus/internal/scheduler"
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

	briefLLM, err := app.NewLLM(ctx, cfg, cfg.BriefModel)
	if err != nil {
		log.Fatalf("error creating LLM client: %v", err)
	}
	magazineLLM, err := app.NewLLM(ctx, cfg, cfg.MagazineModel)
	if err != nil {
		log.Fatalf("error creating LLM client: %v", err)
	}

	deps := app.Open(ctx, cfg)
	defer deps.Close()

	captureJob := deps.CaptureJob()
	briefs := deps.BriefGenerator(briefLLM)
	magazine := deps.MagazineGenerator(magazineLLM)

	s, err := scheduler.New(ctx, cfg, scheduler.Jobs{
		Capture: func(ctx context.Context) error {
			_, err := captureJob.Run(ctx)
			return err
		},
		Brief: func(ctx context.Context, region, briefType string) error {
			_, _, err := briefs.Publish(ctx, region, briefType)
			return err
		},
		Weekend: func(ctx context.Context) error {
			_, _, err := magazine.Publish(ctx)
			return err
		},
	})
	if err != nil {
		log.Fatalf("error scheduling jobs: %v", err)
	}

	s.Start()
	slog.Info("scheduler running")

	<-ctx.Done()

	slog.Info("shutting down, waiting for running jobs")
	s.Stop()
}

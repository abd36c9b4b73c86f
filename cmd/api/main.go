package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"litmus/internal/app"
	"litmus/internal/config"
	"litmus/internal/handler"
)

func main() {
	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("error loading config: %v", err)
	}

	deps := app.Open(context.Background(), cfg)
	defer deps.Close()

	contentHandler := handler.NewContentHandler(deps.Content)

	moodHandler := handler.NewMoodHandler(nil)
	if deps.Archive != nil {
		moodHandler = handler.NewMoodHandler(deps.Archive)
	}

	r := gin.Default()

	allowedOrigins := []string{"http://localhost:3000"}

	if cfg.FrontendURL != "" {
		allowedOrigins = append(allowedOrigins, cfg.FrontendURL)
	}

	slog.Info("AllowOrigins URL:", "urls", allowedOrigins)

	r.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{"GET", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}))

	r.GET("/briefs/:region", contentHandler.GetRegionBriefs)
	r.GET("/briefs/:region/:type", contentHandler.GetBrief)
	r.GET("/magazine", contentHandler.GetMagazine)
	r.GET("/mood", contentHandler.GetMoodHistory)
	r.GET("/mood/archive", moodHandler.GetArchive)
	r.GET("/health", moodHandler.GetHealth)

	err = r.Run(cfg.APIAddr)
	if err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}

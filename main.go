package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"majestea-api/config"
	"majestea-api/middleware"
	"majestea-api/routes"
	"majestea-api/store"

	"github.com/gin-gonic/gin"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	cfg := config.Load()
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Without a database there is nothing to serve.
	db, err := store.Connect(ctx, cfg.MongoURL, cfg.DBName)
	if err != nil {
		logger.Error("failed to connect to mongodb", "error", err)
		os.Exit(1)
	}
	defer db.Close(context.Background())

	// Seed failures are logged inside; a half-seeded database still serves.
	store.Seed(ctx, db, logger)

	r := gin.Default()
	r.Use(middleware.CORS())
	routes.SetupRoutes(r, db)

	logger.Info("server starting", "port", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("server exited", "error", err)
		os.Exit(1)
	}
}

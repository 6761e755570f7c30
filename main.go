package main

import (
	"context"
	"fmt"
	"log"

	"freelancerdash-backend/config"
	"freelancerdash-backend/routes"
	"freelancerdash-backend/services"
	"freelancerdash-backend/storage"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logger.Sync()

	store, err := buildStore(cfg, logger)
	if err != nil {
		logger.Fatal("failed to initialize storage", zap.Error(err))
	}

	if cfg.Storage.Seed {
		if err := storage.SeedSampleData(context.Background(), store); err != nil {
			logger.Warn("failed to seed sample data", zap.Error(err))
		}
	}

	overdue := services.NewOverdueService(store, logger, cfg.Twilio)
	if err := overdue.StartScheduler(cfg.Scheduler.OverdueSpec); err != nil {
		logger.Fatal("failed to start overdue scheduler", zap.Error(err))
	}
	defer overdue.Stop()

	r := routes.SetupRouter(store, logger)
	printRoutes(r)

	logger.Info("starting server", zap.String("port", cfg.Server.Port))
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func buildStore(cfg *config.Config, logger *zap.Logger) (storage.Store, error) {
	switch cfg.Storage.Driver {
	case "postgres":
		db, err := config.ConnectDB(cfg.Database.URL)
		if err != nil {
			return nil, err
		}
		logger.Info("using postgres storage")
		return storage.NewGormStore(db)
	default:
		logger.Info("using in-memory storage")
		return storage.NewMemStore(), nil
	}
}

func printRoutes(r *gin.Engine) {
	for _, route := range r.Routes() {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}

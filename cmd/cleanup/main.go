package main

import (
	"context"
	"log"
	"time"

	"go.uber.org/zap"

	"barbershop/internal/config"
	"barbershop/internal/database"
	"barbershop/internal/domain/notification"
	"barbershop/internal/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	zl, err := logger.New(cfg.AppEnv)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	db, err := database.Connect(cfg.DatabaseURL, zl)
	if err != nil {
		zl.Fatal("db connect failed", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	cleanup := notification.NewCleanupService(notification.NewRepository(db), zl)
	if _, err := cleanup.Run(ctx, cfg.NotificationRetention); err != nil {
		zl.Fatal("notification cleanup failed", zap.Error(err))
	}
}

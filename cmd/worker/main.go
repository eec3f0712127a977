// Command worker consumes booking events from Kafka and turns them into stored
// notifications. It also prunes old read notifications on a schedule.
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"barbershop/internal/config"
	"barbershop/internal/database"
	"barbershop/internal/domain/notification"
	"barbershop/internal/events"
	"barbershop/internal/pkg/logger"
)

const cleanupInterval = time.Hour

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

	if !cfg.Kafka.Enabled() {
		zl.Fatal("KAFKA_BROKERS is required for the worker")
	}

	db, err := database.Connect(cfg.DatabaseURL, zl)
	if err != nil {
		zl.Fatal("database connect failed", zap.Error(err))
	}

	repo := notification.NewRepository(db)
	if err := repo.Migrate(); err != nil {
		zl.Fatal("migration failed", zap.Error(err))
	}

	// Live push happens only inside the api process.
	notifications := notification.NewService(repo, nil, zl)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go notification.NewCleanupService(repo, zl).Schedule(ctx, cleanupInterval, cfg.NotificationRetention)

	consumer := events.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.BookingTopic, zl)
	defer consumer.Close()

	zl.Info("worker started",
		zap.Strings("brokers", cfg.Kafka.Brokers),
		zap.String("topic", cfg.Kafka.BookingTopic),
		zap.String("group", cfg.Kafka.GroupID),
	)

	if err := consumer.Consume(ctx, notifications.NotifyBookingCreated); err != nil {
		zl.Fatal("consumer stopped", zap.Error(err))
	}
	zl.Info("worker stopped")
}

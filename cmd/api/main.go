package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"barbershop/internal/app"
	"barbershop/internal/config"
	"barbershop/internal/database"
	"barbershop/internal/domain/branch"
	"barbershop/internal/events"
	"barbershop/internal/pkg/jwt"
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

	if config.IsProdLike(cfg.AppEnv) {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.Connect(cfg.DatabaseURL, zl)
	if err != nil {
		zl.Fatal("database connect failed", zap.Error(err))
	}
	if err := app.Migrate(db); err != nil {
		zl.Fatal("migration failed", zap.Error(err))
	}

	deps := app.Deps{
		DB:          db,
		Tokens:      jwt.New(cfg.JWTSecret, cfg.JWTAccessTTL),
		Log:         zl,
		CORSOrigins: cfg.CORSAllowedOrigins,
	}

	if cfg.Redis.Enabled() {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()

		pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		if err := rdb.Ping(pingCtx).Err(); err != nil {
			zl.Warn("redis unreachable, branch ranking runs uncached", zap.Error(err))
		} else {
			deps.BranchCache = branch.NewRedisCache(rdb, cfg.BranchCacheTTL)
			zl.Info("branch cache enabled", zap.String("addr", cfg.Redis.Addr))
		}
		cancel()
	}

	if cfg.Kafka.Enabled() {
		producer := events.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.BookingTopic, zl)
		defer producer.Close()
		deps.BookingEvents = producer
		zl.Info("booking events go to kafka",
			zap.Strings("brokers", cfg.Kafka.Brokers),
			zap.String("topic", cfg.Kafka.BookingTopic),
		)
	}

	a := app.New(deps)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           a.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zl.Info("server started", zap.String("addr", cfg.HTTPAddr), zap.String("env", cfg.AppEnv))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zl.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zl.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zl.Error("graceful shutdown failed", zap.Error(err))
	}
}

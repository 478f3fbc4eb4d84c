package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	_ "github.com/noah-isme/training-enrollment-api/api/swagger"
	"github.com/noah-isme/training-enrollment-api/internal/handler"
	"github.com/noah-isme/training-enrollment-api/internal/repository"
	"github.com/noah-isme/training-enrollment-api/internal/service"
	"github.com/noah-isme/training-enrollment-api/pkg/cache"
	"github.com/noah-isme/training-enrollment-api/pkg/config"
	"github.com/noah-isme/training-enrollment-api/pkg/database"
	"github.com/noah-isme/training-enrollment-api/pkg/lock"
	"github.com/noah-isme/training-enrollment-api/pkg/logger"
)

// @title Training Enrollment API
// @version 1.0.0
// @description Enrollment requests, roster, trainers and trainee signup
// @BasePath /
// @schemes http

const shutdownTimeout = 15 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgres(ctx, cfg.Database)
	if err != nil {
		logr.Fatal("failed to connect to postgres", zap.Error(err))
	}
	defer db.Close()

	redisClient, err := cache.NewRedis(ctx, cfg.Redis)
	if err != nil {
		logr.Fatal("failed to connect to redis", zap.Error(err))
	}
	if redisClient != nil {
		defer redisClient.Close()
	}

	var locker lock.Locker = lock.NewShardedLocker()
	if redisClient != nil {
		locker = lock.NewRedisLocker(redisClient, lock.WithTTL(cfg.Enrollment.LockTTL), lock.WithLogger(logr))
	}

	rooms, err := service.NewRandomRoomAllocator(cfg.Enrollment.Rooms, nil)
	if err != nil {
		logr.Fatal("failed to configure room pool", zap.Error(err))
	}

	validate := validator.New()
	timeout := cfg.Enrollment.StoreTimeout
	metrics := service.NewMetricsService()
	cacheSvc := service.NewCacheService(repository.NewCacheRepository(redisClient, "enrollment:"), metrics, cfg.PendingCache.TTL, logr, cfg.PendingCache.Enabled)

	requestRepo := repository.NewTraineeRequestRepository(db)
	rosterRepo := repository.NewRosterRepository(db)

	requests := service.NewTraineeRequestService(requestRepo, cacheSvc, metrics, timeout, validate, logr)
	workflow := service.NewEnrollmentWorkflow(requestRepo, rosterRepo, rooms, locker, cacheSvc, metrics, timeout, logr)
	roster := service.NewRosterService(rosterRepo, metrics, timeout, validate, logr)
	trainers := service.NewTrainerService(repository.NewTrainerRepository(db), metrics, timeout, validate, logr)
	signups := service.NewSignupService(repository.NewSignupRepository(db), metrics, timeout, validate, logr, service.TokenConfig{
		Secret: cfg.JWT.Secret,
		Expiry: cfg.JWT.Expiration,
		Issuer: "training-enrollment-api",
	})

	router := newRouter(cfg, logr, routes{
		requests: handler.NewTraineeRequestHandler(requests, workflow),
		roster:   handler.NewRosterHandler(roster),
		trainers: handler.NewTrainerHandler(trainers),
		signups:  handler.NewSignupHandler(signups),
		metrics:  handler.NewMetricsHandler(metrics.Handler(), db),
		tokens:   signups,
		observer: metrics,
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logr.Info("server starting", zap.String("addr", srv.Addr), zap.String("env", cfg.Env), zap.Strings("rooms", rooms.Rooms()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logr.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logr.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logr.Error("graceful shutdown failed", zap.Error(err))
	}
	logr.Info("server stopped")
}

package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/barber-marketplace/internal/audit"
	"github.com/BruksfildServices01/barber-marketplace/internal/config"
	dbpkg "github.com/BruksfildServices01/barber-marketplace/internal/db"
	"github.com/BruksfildServices01/barber-marketplace/internal/identity"
	infraRepo "github.com/BruksfildServices01/barber-marketplace/internal/infra/repository"
	"github.com/BruksfildServices01/barber-marketplace/internal/logging"
	"github.com/BruksfildServices01/barber-marketplace/internal/routes"
	"github.com/BruksfildServices01/barber-marketplace/internal/timezone"
)

func main() {

	cfg := config.Load()

	logger, err := logging.New(cfg)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logger.Sync()

	db, err := dbpkg.NewDB(cfg, logger)
	if err != nil {
		logger.Fatal("failed to open database", zap.Error(err))
	}

	var rdb *redis.Client
	if cfg.AuthMode == config.AuthModeCookie {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			logger.Fatal("failed to reach redis", zap.Error(err))
		}
		defer rdb.Close()
	}

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, 256)
	defer auditDispatcher.Close()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())

	if err := routes.RegisterRoutes(r, routes.Deps{
		Config:    cfg,
		Logger:    logger,
		Clock:     timezone.NewShopClock(cfg.ShopTimezone),
		Provider:  identity.NewProvider(cfg, rdb),
		Bookings:  infraRepo.NewBookingGormRepository(db),
		Barbers:   infraRepo.NewBarberGormRepository(db),
		Accounts:  infraRepo.NewAccountGormRepository(db),
		Audit:     auditDispatcher,
		AuditLogs: auditLogger,
	}); err != nil {
		logger.Fatal("failed to register routes", zap.Error(err))
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("server running",
			zap.String("addr", cfg.Addr()),
			zap.String("auth_mode", cfg.AuthMode),
			zap.String("lock_mode", cfg.BookingLockMode),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}

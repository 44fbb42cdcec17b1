package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"profranchising/internal/config"
	"profranchising/internal/db"
	"profranchising/internal/logger"
	"profranchising/internal/router"
	"profranchising/internal/storage"
)

func main() {
	// ───────────────────────── ENV ─────────────────────────
	cfg, err := config.Load()
	if err != nil {
		zap.NewExample().Fatal("load config", zap.Error(err))
	}

	log, err := logger.New(cfg.Env)
	if err != nil {
		zap.NewExample().Fatal("build logger", zap.Error(err))
	}
	defer logger.Sync(log)

	if cfg.Production() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ───────────────────────── STORES ─────────────────────────
	stores := router.MemoryStores()
	if cfg.StoreDriver == config.StorePostgres {
		pool, err := db.Connect(ctx, cfg.DatabaseURL, log.Named("db"))
		if err != nil {
			log.Fatal("database init failed", zap.Error(err))
		}
		defer pool.Close()
		stores = router.PostgresStores(pool)
	}
	log.Info("store ready", zap.String("driver", cfg.StoreDriver))

	// ───────────────────────── STORAGE ─────────────────────────
	images, err := storage.New(ctx, cfg, log.Named("storage"))
	if err != nil {
		log.Fatal("storage init failed", zap.Error(err))
	}

	// ───────────────────────── START ─────────────────────────
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router.New(cfg, stores, images, log),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("API running", zap.String("addr", srv.Addr), zap.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", zap.Error(err))
	}
}

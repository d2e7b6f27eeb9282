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
	"go.uber.org/zap"

	"github.com/BruksfildServices01/remonte/internal/audit"
	"github.com/BruksfildServices01/remonte/internal/cache"
	"github.com/BruksfildServices01/remonte/internal/config"
	dbpkg "github.com/BruksfildServices01/remonte/internal/db"
	"github.com/BruksfildServices01/remonte/internal/infra/objectstore"
	"github.com/BruksfildServices01/remonte/internal/logger"
	"github.com/BruksfildServices01/remonte/internal/mail"
	"github.com/BruksfildServices01/remonte/internal/routes"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	lg, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer lg.Sync()

	db, err := dbpkg.NewDB(cfg)
	if err != nil {
		lg.Fatal("database", zap.Error(err))
	}

	store, closeCache := openCache(cfg, lg)
	defer closeCache()

	var storage objectstore.Storage
	if s3, err := objectstore.NewS3Storage(cfg.S3); err == nil {
		storage = s3
	} else {
		lg.Warn("master photo uploads disabled", zap.Error(err))
	}

	dispatcher := audit.NewDispatcher(audit.New(db), lg)
	defer dispatcher.Close()

	welcomer := mail.NewWelcomer(mail.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.MailFrom), lg)
	defer welcomer.Wait()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())

	routes.RegisterRoutes(r, routes.Deps{
		DB:      db,
		Config:  cfg,
		Log:     lg,
		Cache:   store,
		Audit:   dispatcher,
		Storage: storage,
		Welcome: welcomer.Welcome,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		lg.Info("server running", zap.String("addr", cfg.Addr()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			lg.Error("server stopped", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		lg.Error("shutdown", zap.Error(err))
	}
}

// openCache prefers Redis and falls back to process memory when it is absent or unreachable.
func openCache(cfg *config.Config, lg *zap.Logger) (cache.Cache, func()) {
	if cfg.RedisURL == "" {
		return cache.NewMemoryCache(), func() {}
	}

	rc, err := cache.NewRedisCache(cfg.RedisURL, "remonte:")
	if err == nil {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		err = rc.Ping(ctx)
		cancel()
		if err == nil {
			return rc, func() { _ = rc.Close() }
		}
		_ = rc.Close()
	}

	lg.Warn("redis unavailable, using in-memory cache", zap.Error(err))
	return cache.NewMemoryCache(), func() {}
}

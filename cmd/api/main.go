package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/EltonLopezzs/onbarbearia/internal/audit"
	"github.com/EltonLopezzs/onbarbearia/internal/auth"
	"github.com/EltonLopezzs/onbarbearia/internal/config"
	dbpkg "github.com/EltonLopezzs/onbarbearia/internal/db"
	"github.com/EltonLopezzs/onbarbearia/internal/infra/cache"
	"github.com/EltonLopezzs/onbarbearia/internal/infra/storage"
	"github.com/EltonLopezzs/onbarbearia/internal/logger"
	"github.com/EltonLopezzs/onbarbearia/internal/routes"
	"github.com/EltonLopezzs/onbarbearia/internal/validators"
)

const shutdownTimeout = 15 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.Env, cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	db, err := dbpkg.NewDB(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --------------------------------------------------
	// Cache de disponibilidade (opcional)
	// --------------------------------------------------
	var availabilityCache cache.AvailabilityCache = cache.NopAvailabilityCache{}
	if cfg.RedisAddr != "" {
		client, err := cache.NewRedisClient(ctx, cfg)
		if err != nil {
			log.Warn("redis unavailable, availability cache disabled", zap.Error(err))
		} else {
			defer client.Close()
			availabilityCache = cache.NewRedisAvailabilityCache(client, cfg.AvailabilityTTL())
		}
	}

	deps := routes.Deps{
		DB:     db,
		Config: cfg,
		Log:    log,
		Cache:  availabilityCache,
		Audit:  audit.NewDispatcher(audit.New(db), log),
		Tokens: auth.NewTokenIssuer(cfg.JWTSecret),
	}
	if cfg.ImagesEnabled() {
		deps.Images = storage.NewS3ImageStore(cfg)
	}
	if cfg.IsProduction() {
		deps.EmailDomains = validators.NewEmailDomainChecker()
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	routes.RegisterRoutes(r, deps)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server running", zap.String("addr", cfg.Addr()), zap.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("start server: %w", err)
		}
	case <-ctx.Done():
		log.Info("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("http shutdown", zap.Error(err))
	}
	// auditoria pendente é gravada antes de sair
	if err := deps.Audit.Close(shutdownCtx); err != nil {
		log.Error("audit drain", zap.Error(err))
	}

	return nil
}

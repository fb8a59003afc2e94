package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/redis/go-redis/v9"

	"github.com/aditsaputra/academy/internal/background"
	"github.com/aditsaputra/academy/internal/config"
	"github.com/aditsaputra/academy/internal/handlers"
	middlewareCustom "github.com/aditsaputra/academy/internal/middleware"
	"github.com/aditsaputra/academy/internal/routes"
	"github.com/aditsaputra/academy/internal/services"
	"github.com/aditsaputra/academy/internal/store"
	pkghttp "github.com/aditsaputra/academy/pkg/http"
	pkglogger "github.com/aditsaputra/academy/pkg/logger"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	logger.Info("configuration loaded",
		slog.String("env", cfg.Server.Env),
		slog.String("store_backend", cfg.Store.Backend))

	// Build the blob store
	st, closeStore, err := buildStore(&cfg.Store, logger)
	if err != nil {
		logger.Error("failed to initialize store", slog.Any("error", err))
		os.Exit(1)
	}
	defer closeStore()

	auditLogger := pkglogger.NewAuditLogger(logger)

	// Login rate limiter (in-memory; lockouts reset on restart)
	rateLimiter := services.NewRateLimitService(services.RateLimitConfig{
		MaxFailedAttempts: cfg.Auth.MaxLoginAttempts,
		LookbackWindow:    cfg.Auth.LockoutWindow,
	}, logger)

	// Session manager
	authService, err := services.NewAuthService(st, rateLimiter, services.AuthConfig{
		AdminUsername:      cfg.Auth.AdminUsername,
		AdminPasswordHash:  cfg.Auth.AdminPasswordHash,
		BcryptCost:         cfg.Auth.BcryptCost,
		SessionIdleTimeout: cfg.Auth.SessionIdleTimeout,
		SessionMaxLifetime: cfg.Auth.SessionMaxLifetime,
	}, logger, auditLogger)
	if err != nil {
		logger.Error("failed to initialize auth service", slog.Any("error", err))
		os.Exit(1)
	}

	initCtx, initCancel := context.WithTimeout(context.Background(), 10*time.Second)
	authService.Init(initCtx)
	contentService := services.NewContentService(initCtx, st, logger, auditLogger)
	initCancel()

	// Session liveness monitor
	monitor := background.NewSessionMonitor(authService, logger, cfg.Auth.SessionCheckInterval)

	// Handlers
	ipConfig := &pkghttp.IPConfig{TrustedProxies: cfg.Server.TrustedProxies}
	authHandler := handlers.NewAuthHandler(authService, ipConfig, cfg.Server.Env == "production")
	contentHandler := handlers.NewContentHandler(contentService)
	pageHandler, err := handlers.NewPageHandler(contentService, logger)
	if err != nil {
		logger.Error("failed to initialize page handler", slog.Any("error", err))
		os.Exit(1)
	}

	// Setup router
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middlewareCustom.SecurityHeaders(middlewareCustom.SecurityHeadersConfig{Env: cfg.Server.Env}))
	router.Use(middlewareCustom.SecureLogger(logger, cfg.Server.Env))
	router.Use(middleware.Recoverer)
	router.Use(middleware.Timeout(60 * time.Second))

	routes.RegisterRoutes(router, pageHandler, authHandler, contentHandler, authService)

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	})

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start session monitor
	monitorCtx, monitorCancel := context.WithCancel(context.Background())
	defer monitorCancel()

	go monitor.Start(monitorCtx)

	// Start server
	go func() {
		logger.Info("starting server", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	logger.Info("shutdown signal received")

	monitorCancel()
	monitor.Stop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
		os.Exit(1)
	}

	logger.Info("server stopped gracefully")
}

// buildStore selects the configured backend and wraps it with
// encryption when a key is set. The returned func releases backend
// resources on shutdown.
func buildStore(cfg *config.StoreConfig, logger *slog.Logger) (store.Store, func(), error) {
	var (
		base    store.Store
		cleanup = func() {}
	)

	switch cfg.Backend {
	case "memory":
		base = store.NewMemoryStore()
	case "sqlite":
		s, err := store.NewSQLiteStore(cfg.Path)
		if err != nil {
			return nil, nil, err
		}
		base = s
		cleanup = func() {
			if err := s.Close(); err != nil {
				logger.Error("failed to close sqlite store", slog.Any("error", err))
			}
		}
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
		base = store.NewRedisStore(client, cfg.KeyPrefix)
		cleanup = func() {
			if err := client.Close(); err != nil {
				logger.Error("failed to close redis client", slog.Any("error", err))
			}
		}
	}

	if len(cfg.EncryptionKey) > 0 {
		enc, err := store.NewEncryptedStore(base, cfg.EncryptionKey)
		if err != nil {
			cleanup()
			return nil, nil, err
		}
		return enc, cleanup, nil
	}
	return base, cleanup, nil
}

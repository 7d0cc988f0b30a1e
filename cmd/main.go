package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/extra/redisotel/v9"
	"github.com/redis/go-redis/v9"

	"github.com/KasumiMercury/tombola-prize-allocation/internal/config"
	"github.com/KasumiMercury/tombola-prize-allocation/internal/domain"
	"github.com/KasumiMercury/tombola-prize-allocation/internal/handler"
	"github.com/KasumiMercury/tombola-prize-allocation/internal/health"
	"github.com/KasumiMercury/tombola-prize-allocation/internal/infra/allocrecorder"
	"github.com/KasumiMercury/tombola-prize-allocation/internal/infra/ledger"
	"github.com/KasumiMercury/tombola-prize-allocation/internal/infra/prizeconfig"
	"github.com/KasumiMercury/tombola-prize-allocation/internal/observability/logging"
	"github.com/KasumiMercury/tombola-prize-allocation/internal/observability/metrics"
	"github.com/KasumiMercury/tombola-prize-allocation/internal/observability/middleware"
	"github.com/KasumiMercury/tombola-prize-allocation/internal/service/allocation"
	"github.com/KasumiMercury/tombola-prize-allocation/internal/service/draw"
	"github.com/KasumiMercury/tombola-prize-allocation/internal/service/registration"
)

// Version is set via ldflags at build time
var Version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.String("error", err.Error()))
		return 1
	}

	if err := config.ValidateForRun(cfg); err != nil {
		slog.Error("configuration validation error", slog.String("error", err.Error()))
		return 1
	}

	obs, err := initObservability(ctx, cfg)
	if err != nil {
		slog.Error("failed to initialize observability", slog.String("error", err.Error()))
		return 1
	}
	defer func() {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := obs.Shutdown(shutdownCtx); err != nil {
			slog.Warn("observability shutdown error", slog.String("error", err.Error()))
		}
	}()

	slog.SetDefault(obs.Logger())

	httpMetrics, err := metrics.NewHTTPMetrics()
	if err != nil {
		slog.Error("failed to initialize HTTP metrics", slog.String("error", err.Error()))
		return 1
	}

	allocationMetrics, err := metrics.NewAllocationMetrics()
	if err != nil {
		slog.Error("failed to initialize allocation metrics", slog.String("error", err.Error()))
		return 1
	}

	// Allocation recorder (InfluxDB for local, BigQuery for gcloud)
	recorderCfg := allocrecorder.LoadConfig()
	recorder, err := allocrecorder.NewRecorder(ctx, recorderCfg)
	if err != nil {
		slog.Error("failed to initialize allocation recorder", slog.String("error", err.Error()))
		return 1
	}
	defer func() {
		if err := recorder.Close(); err != nil {
			slog.Warn("failed to close allocation recorder", slog.String("error", err.Error()))
		}
	}()

	ledgerStore, err := ledger.Open(cfg.Storage.Path)
	if err != nil {
		slog.Error("failed to open allocation ledger",
			slog.String("path", cfg.Storage.Path),
			slog.String("error", err.Error()),
		)
		return 1
	}
	defer func() {
		if err := ledgerStore.Close(); err != nil {
			slog.Warn("failed to close allocation ledger", slog.String("error", err.Error()))
		}
	}()

	slog.Info("allocation ledger opened",
		slog.String("path", cfg.Storage.Path),
	)

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	if err := redisotel.InstrumentTracing(redisClient); err != nil {
		slog.Error("failed to instrument redis tracing",
			slog.String("event", "redis.otel.tracing.fail"),
			slog.String("error", err.Error()),
		)
		return 1
	}

	if err := redisotel.InstrumentMetrics(redisClient); err != nil {
		slog.Error("failed to instrument redis metrics",
			slog.String("event", "redis.otel.metrics.fail"),
			slog.String("error", err.Error()),
		)
		return 1
	}

	if err := redisClient.Ping(ctx).Err(); err != nil {
		slog.Error("failed to connect redis",
			slog.String("event", "redis.connect.fail"),
			slog.String("error", err.Error()),
		)
		return 1
	}

	defer func() {
		if err := redisClient.Close(); err != nil {
			slog.Warn("failed to close redis client", slog.String("error", err.Error()))
		}
	}()

	slog.Info("redis connected",
		slog.String("addr", cfg.Redis.Addr),
	)

	dayProvider, err := domain.NewDayProvider(cfg.Campaign.Timezone)
	if err != nil {
		slog.Error("failed to load campaign timezone",
			slog.String("timezone", cfg.Campaign.Timezone),
			slog.String("error", err.Error()),
		)
		return 1
	}

	catalog := domain.Catalog(cfg.Campaign.Catalog)
	prizeConfigRepo := prizeconfig.NewRepository(redisClient)
	picker := draw.NewPicker(draw.NewCryptoSource())

	allocationService := allocation.NewService(
		ledgerStore,
		prizeConfigRepo,
		catalog,
		dayProvider,
		picker,
		allocationMetrics,
	)
	registrationService := registration.NewService(ledgerStore)

	spinHandler := handler.NewSpinHandler(allocationService, recorder)
	entryHandler := handler.NewEntryHandler(registrationService)
	adminHandler := handler.NewAdminHandler(prizeConfigRepo, ledgerStore, catalog, dayProvider)

	// Setup router with observability middleware
	r := gin.New()
	r.Use(middleware.Gin(middleware.GinConfig{
		SkipPaths:   []string{"/health", "/health/live", "/health/ready"},
		Module:      logging.Module("prize-allocation"),
		TracerName:  "github.com/KasumiMercury/tombola-prize-allocation/internal/observability/middleware",
		HTTPMetrics: httpMetrics,
	}))
	r.Use(middleware.PanicRecoveryGin())

	// Health check endpoints
	healthChecker := health.NewChecker(redisClient, ledgerStore, Version)
	r.GET("/health/live", healthChecker.LiveHandler())
	r.GET("/health/ready", healthChecker.ReadyHandler())
	r.GET("/health", healthChecker.ReadyHandler())

	// API routes
	api := r.Group("/api")
	{
		api.POST("/entries", entryHandler.HandleRegister)
		api.POST("/spin", spinHandler.HandleSpin)
	}

	// Admin routes behind basic auth
	admin := r.Group("/admin", gin.BasicAuth(gin.Accounts{
		cfg.Admin.User: cfg.Admin.Password,
	}))
	{
		admin.GET("/weights", adminHandler.HandleGetWeights)
		admin.POST("/weights", adminHandler.HandleUpdateWeights)
		admin.GET("/caps", adminHandler.HandleGetCaps)
		admin.POST("/caps", adminHandler.HandleUpdateCaps)
		admin.GET("/data", adminHandler.HandleData)
		admin.GET("/export", adminHandler.HandleExport)
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("starting server",
			slog.String("port", cfg.Port),
			slog.Int("catalog_size", len(catalog)),
			slog.String("timezone", cfg.Campaign.Timezone),
		)
		serverErr <- srv.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		slog.Info("shutdown signal received", slog.String("signal", sig.String()))
		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("failed to shutdown server", slog.String("error", err.Error()))
			return 1
		}

		slog.Info("server exited properly")
		return 0

	case err := <-serverErr:
		if errors.Is(err, http.ErrServerClosed) {
			return 0
		}
		slog.Error("server exited with error", slog.String("error", err.Error()))
		return 1
	}
}

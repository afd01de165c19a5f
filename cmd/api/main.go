package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/EyobKifle/Sarahs-ShortCake-sub001/internal/api"
	"github.com/EyobKifle/Sarahs-ShortCake-sub001/internal/cache"
	"github.com/EyobKifle/Sarahs-ShortCake-sub001/internal/config"
	"github.com/EyobKifle/Sarahs-ShortCake-sub001/internal/report"
	"github.com/EyobKifle/Sarahs-ShortCake-sub001/internal/repository/postgres"
	"github.com/EyobKifle/Sarahs-ShortCake-sub001/internal/service"
	"github.com/EyobKifle/Sarahs-ShortCake-sub001/internal/storage"
	"github.com/EyobKifle/Sarahs-ShortCake-sub001/pkg/logger"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()

	logger.SetLevel(cfg.Server.Mode)
	if cfg.Server.Mode == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := postgres.NewDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer db.Close()

	orderStore := postgres.NewOrderStore(db)
	customerStore := postgres.NewCustomerStore(db)
	inventoryStore := postgres.NewInventoryStore(db)
	reviewStore := postgres.NewReviewStore(db)
	catalogStore := postgres.NewCatalogStore(db)

	statsCache, err := cache.NewDashboardStatsCache(cfg.Cache)
	if err != nil {
		logger.Log.Warn().Err(err).Msg("Cache unavailable, continuing without it")
		statsCache = cache.NewNoopDashboardStatsCache()
	}

	var archive storage.ObjectStorage
	if cfg.Archive.Endpoint != "" {
		archive, err = storage.NewArchiveClient(cfg.Archive)
		if err != nil {
			logger.Log.Warn().Err(err).Msg("Archive unavailable, exports stay local")
			archive = nil
		}
	}

	charts := report.NewChartBindings()
	orchestrator := report.NewOrchestrator(orderStore, customerStore, inventoryStore, catalogStore)

	dashboardService := service.NewDashboardService(orderStore, customerStore, reviewStore, catalogStore, statsCache, charts)
	reportService := service.NewReportService(orchestrator, orderStore, catalogStore, charts)
	exportService := service.NewExportService(reportService, archive, cfg.App.ExportDir)

	router := api.NewRouter(&api.Services{
		DashboardService: dashboardService,
		ReportService:    reportService,
		ExportService:    exportService,
	}, cfg.Server.AllowedOrigins)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	go func() {
		logger.Log.Info().Str("port", cfg.Server.Port).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	logger.Log.Info().Msg("Server exiting")
}

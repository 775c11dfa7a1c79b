package main

import (
	"context"
	"fmt"
	"insureai/app/echo-server/metrics"
	"insureai/app/echo-server/router"
	"insureai/business/premium"
	"insureai/internal/middleware"
	"insureai/internal/repository/artifact"
	"insureai/internal/rest"
	"insureai/pkg/config"
	"insureai/pkg/logger"
	premiumMetrics "insureai/pkg/metrics"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	logger.Info("Starting "+cfg.App.Name, "version", cfg.App.Version)

	metrics.Init()
	premiumMetrics.Init()

	// Init artifacts, loaded once for the life of the process
	artifactRepo := artifact.NewFileRepository(cfg.Artifacts.ModelPath, cfg.Artifacts.ScalerPath)
	artifactCache := premium.NewArtifactCache(artifactRepo)

	loadCtx, loadCancel := context.WithTimeout(context.Background(), 30*time.Second)
	status := artifactCache.Load(loadCtx).Status
	loadCancel()
	if !status.Model || !status.Scaler {
		logger.Warn("Serving without a model, predictions are unavailable", "reason", status.Reason)
	}

	// Init service
	premiumService := premium.NewService(artifactCache)

	// Init handler
	premiumHandler := rest.NewPremiumHandler(premiumService, cfg.App.Name, cfg.Server.RequestTimeout)

	renderer, err := rest.NewTemplateRenderer()
	if err != nil {
		logger.Fatal("Failed to parse templates", "error", err)
	}

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Renderer = renderer

	// HTTP error handler
	e.HTTPErrorHandler = middleware.ErrorHandler

	// Global middleware
	e.Use(metrics.Middleware())
	e.Use(echomiddleware.Recover())
	e.Use(middleware.TraceID())
	e.Use(middleware.RequestLogger())

	// Setup routes
	router.SetupPageRoutes(e, premiumHandler)
	router.SetupOpsRoutes(e, premiumHandler)
	api := e.Group("/api/v1")
	router.SetupPredictionRoutes(api, premiumHandler)

	// Goroutine server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server starting", "address", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	logger.Info("Server stopped")
}

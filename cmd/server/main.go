package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/sunny1561/EnrichProfile/internal/api/routes"
	"github.com/sunny1561/EnrichProfile/internal/config"
	"github.com/sunny1561/EnrichProfile/internal/enrich"
	"github.com/sunny1561/EnrichProfile/internal/logging"
	"github.com/sunny1561/EnrichProfile/internal/notify"
	"github.com/sunny1561/EnrichProfile/internal/pipeline"
	"github.com/sunny1561/EnrichProfile/internal/report"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig("configs/config.yaml")
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Initialize logger
	if err := logging.InitializeLogging(cfg); err != nil {
		log.Fatalf("Failed to initialize logging: %v", err)
	}
	defer logging.CloseLogging()

	logger := logging.GetGlobalLogger()
	logger.Info("Starting Profile Enrichment Service")

	// Build the pipeline
	renderer, err := report.NewPDFRenderer()
	if err != nil {
		logger.Fatal("Failed to initialize PDF renderer", map[string]interface{}{"error": err.Error()})
	}

	mailer, err := notify.NewMailerFromConfig(cfg)
	if err != nil {
		logger.Fatal("Failed to initialize mail transport", map[string]interface{}{"error": err.Error()})
	}

	enrichClient := enrich.NewClient(cfg)
	notifier := notify.NewNotifier(cfg, renderer, mailer)
	runner := pipeline.NewRunner(enrichClient, notifier)

	// Initialize Echo
	e := echo.New()
	e.HideBanner = true

	// Setup routes
	routes.SetupRoutes(e, cfg, runner)

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		logger.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := e.Shutdown(shutdownCtx); err != nil {
			logger.Error("Error shutting down server", map[string]interface{}{"error": err.Error()})
		}

		logger.Info("Server shutdown complete")
	}()

	// Start server
	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", map[string]interface{}{"address": address})

	if err := e.Start(address); err != nil {
		logger.Fatal("Server stopped", map[string]interface{}{"error": err.Error()})
	}
}

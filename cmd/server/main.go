package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/crashlens/crashlens/internal/config"
	"github.com/crashlens/crashlens/internal/core"
	"github.com/crashlens/crashlens/internal/logging"
	"github.com/crashlens/crashlens/internal/web"
)

func main() {
	// Load .env file if it exists (Overload overwrites existing env vars)
	if err := godotenv.Overload(); err != nil {
		slog.Info("no .env file found, using environment variables")
	} else {
		slog.Info("loaded .env file (overwriting existing env vars)")
	}

	// Load and validate configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Setup structured logging based on config
	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)

	slog.Info("configuration loaded",
		"port", cfg.Server.Port,
		"dataset", cfg.Dataset.Path,
		"session_ttl", cfg.Session.TTL,
		"rate_limit_enabled", cfg.Rate.Enabled,
	)

	// Create service with config
	service := core.NewService(serviceConfig(cfg))

	// Load the dataset up front so a bad path is visible at startup,
	// not on the first request.
	res := service.Raw()
	slog.Info("dataset loaded",
		"shape", res.Table.Shape(),
		"skipped_rows", res.SkippedRows,
		"message", res.Message,
	)

	// Create server with config
	server := web.NewServer(cfg, service)

	// Create cancellable context for background jobs
	jobCtx, cancelJobs := context.WithCancel(context.Background())

	// Evict idle sessions in the background
	go service.Sessions().StartSweeper(jobCtx, cfg.Session.SweepInterval)

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		slog.Info("shutting down...")

		// Stop background jobs
		cancelJobs()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("shutdown error", "error", err)
		}
	}()

	// Start server (uses addr from config internally)
	if err := server.Start(); err != nil && err != http.ErrServerClosed {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}

// serviceConfig maps the env-driven configuration onto the core
// service settings.
func serviceConfig(cfg *config.Config) core.ServiceConfig {
	audit := core.AuditConfig{
		IdentifierColumn:   cfg.Audit.IdentifierColumn,
		TimestampColumn:    cfg.Dataset.TimestampColumn,
		YearColumn:         cfg.Audit.YearColumn,
		KeyFields:          cfg.Audit.KeyFields,
		StalenessYears:     cfg.Audit.StalenessYears,
		DuplicatePenalty:   cfg.Audit.DuplicatePenalty,
		FuturePenalty:      cfg.Audit.FuturePenalty,
		KeyFieldPenalty:    cfg.Audit.KeyFieldPenalty,
		MissingPenalty:     cfg.Audit.MissingPenalty,
		YearPenalty:        cfg.Audit.YearPenalty,
		KeyFieldMissingPct: cfg.Audit.KeyFieldMissingPct,
		WarnMissingPct:     cfg.Audit.WarnMissingPct,
		MinYear:            cfg.Audit.MinYear,
	}

	quality := core.DefaultQualityConfig()
	quality.LatitudeColumn = cfg.Audit.LatitudeColumn
	quality.LongitudeColumn = cfg.Audit.LongitudeColumn
	quality.YearColumn = cfg.Audit.YearColumn
	quality.TimestampColumn = cfg.Dataset.TimestampColumn
	quality.ParkedColumn = cfg.Audit.ParkedColumn
	quality.MovementColumn = cfg.Audit.MovementColumn
	quality.MinYear = cfg.Audit.MinYear

	return core.ServiceConfig{
		DatasetPath:     cfg.Dataset.Path,
		TimestampColumn: cfg.Dataset.TimestampColumn,
		Audit:           audit,
		Quality:         quality,
		Pipeline: core.PipelineConfig{
			YearColumn: cfg.Audit.YearColumn,
			MinYear:    cfg.Audit.MinYear,
		},
		Insight: core.InsightConfig{
			CategoryPriority: cfg.Audit.CategoryPriority,
			PainPointPct:     cfg.Audit.WarnMissingPct,
		},
		SessionTTL: cfg.Session.TTL,
	}
}

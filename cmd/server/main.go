package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/alexanderciuffreda/mannheim-planner/internal/catalog"
	"github.com/alexanderciuffreda/mannheim-planner/internal/config"
	"github.com/alexanderciuffreda/mannheim-planner/internal/handler"
	"github.com/alexanderciuffreda/mannheim-planner/internal/logger"
	"github.com/alexanderciuffreda/mannheim-planner/internal/program"
	"github.com/alexanderciuffreda/mannheim-planner/internal/router"
	"github.com/alexanderciuffreda/mannheim-planner/internal/service"
	"github.com/alexanderciuffreda/mannheim-planner/internal/validator"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("port", cfg.Port).
		Str("mode", cfg.GinMode).
		Str("log_level", cfg.LogLevel).
		Str("data_dir", cfg.DataDir).
		Msg("Starting Mannheim Planner")

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	// ─── Load Program Rules ────────────────────────────────────────────
	rules := program.Load(cfg.ProgramRulesPath, log)
	log.Info().
		Str("program", rules.ProgramName).
		Int("areas", len(rules.Areas)).
		Msg("Program rules ready")

	// ─── Initialize Catalog Source ─────────────────────────────────────
	source := catalog.NewSource(cfg.DataDir, log)

	// ─── Initialize Services ──────────────────────────────────────────
	catalogService := service.NewCatalogService(source, rules, log)
	exportService := service.NewExportService(catalogService, rules, log)

	// ─── Initialize Handlers ──────────────────────────────────────────
	handlers := &router.Handlers{
		Catalog: handler.NewCatalogHandler(catalogService),
		Export:  handler.NewExportHandler(exportService, log),
	}

	// ─── Setup Router ──────────────────────────────────────────────────
	r := router.SetupRouter(handlers, cfg)

	// ─── Create HTTP Server ────────────────────────────────────────────
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	// ─── Start Server in Goroutine ─────────────────────────────────────
	go func() {
		log.Info().Str("addr", ":"+cfg.Port).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// ─── Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("Shutting down gracefully...")

	// Requests are pure in-memory transformations over small catalogs;
	// five seconds is plenty for anything in flight to drain.
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	log.Info().Msg("Shutdown complete")
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}

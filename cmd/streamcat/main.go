package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/use-agent/streamcat/addon"
	"github.com/use-agent/streamcat/aggregate"
	"github.com/use-agent/streamcat/api"
	"github.com/use-agent/streamcat/cache"
	"github.com/use-agent/streamcat/config"
	"github.com/use-agent/streamcat/scraper"
	"github.com/use-agent/streamcat/source"
)

func main() {
	// ── 1. Load configuration ───────────────────────────────────────
	cfg := config.Load()

	// ── 2. Initialise structured logging ────────────────────────────
	initLogger(cfg.Log)
	slog.Info("streamcat starting",
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
		"mode", cfg.Server.Mode,
		"sources", len(cfg.Sources),
	)

	// ── 3. Build the source registry ────────────────────────────────
	registry, err := source.NewRegistry(cfg.Sources)
	if err != nil {
		slog.Error("failed to build source registry", "error", err)
		os.Exit(1)
	}

	// ── 4. Initialise the extraction pipeline ───────────────────────
	fetcher := scraper.NewFetcher(cfg.Client.UserAgent, cfg.Client.Proxy)
	extractor := scraper.NewExtractor(fetcher, cfg.Client.Timeout)
	aggregator := aggregate.New(registry, extractor)

	// ── 4b. Initialise cache ────────────────────────────────────────
	cc := cache.New(cfg.Cache.MaxEntries, cfg.Cache.SweepInterval)
	defer cc.Stop()

	// ── 5. Wire the addon service and router ────────────────────────
	assembler := addon.Assembler{
		Prefix:     cfg.Addon.IDPrefix,
		Background: cfg.Addon.Background,
	}
	svc := addon.NewService(registry, aggregator, extractor, cc, assembler, cfg.Cache.TTL)

	startTime := time.Now()
	router := api.NewRouter(svc, cfg, startTime)

	// ── 6. Start HTTP server ────────────────────────────────────────
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		slog.Info("HTTP server listening", "addr", addr,
			"manifest", fmt.Sprintf("http://%s/manifest.json", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			os.Exit(1)
		}
	}()

	// ── 7. Graceful shutdown ────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig.String())

	// Give in-flight requests 5 seconds to complete.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("HTTP server forced shutdown", "error", err)
	} else {
		slog.Info("HTTP server drained gracefully")
	}

	slog.Info("streamcat stopped")
}

// initLogger configures slog based on the LogConfig.
func initLogger(cfg config.LogConfig) {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if cfg.Format == "text" {
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	slog.SetDefault(slog.New(handler))
}

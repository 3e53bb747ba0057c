package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/csdsc-cmd/Retail-Agents-Portal/internal/config"
	"github.com/csdsc-cmd/Retail-Agents-Portal/internal/dataset"
	"github.com/csdsc-cmd/Retail-Agents-Portal/internal/mcp"
	"github.com/csdsc-cmd/Retail-Agents-Portal/internal/ratelimit"
	"github.com/csdsc-cmd/Retail-Agents-Portal/internal/server"
	"github.com/csdsc-cmd/Retail-Agents-Portal/internal/telemetry"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	os.Exit(run0())
}

func run0() int {
	// Load .env file if present (non-fatal; production won't have one).
	_ = godotenv.Load()

	level := slog.LevelInfo
	if os.Getenv("PORTAL_LOG_LEVEL") == "debug" {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, logger); err != nil {
		slog.Error("fatal error", "error", err)
		return 1
	}
	return 0
}

func run(ctx context.Context, logger *slog.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	slog.Info("retail portal starting", "version", version, "port", cfg.Port, "seed", cfg.Seed)

	// Initialize OpenTelemetry (no-op without an endpoint).
	otelShutdown, err := telemetry.Init(ctx, cfg.OTELEndpoint, cfg.ServiceName, version, true)
	if err != nil {
		return fmt.Errorf("telemetry: %w", err)
	}
	defer func() { _ = otelShutdown(context.Background()) }()

	// Seed the dataset. This is the only write the process ever does; every
	// handler reads from the result.
	data, err := dataset.Seed(dataset.Config{
		Seed:          cfg.Seed,
		Conversations: cfg.Conversations,
		AuditLogs:     cfg.AuditLogs,
		MetricsDays:   cfg.MetricsDays,
	})
	if err != nil {
		return fmt.Errorf("seed dataset: %w", err)
	}
	logger.Info("dataset seeded",
		"seed", data.Seed,
		"agents", len(data.Agents),
		"conversations", len(data.Conversations),
		"incidents", len(data.Incidents),
		"transactions", len(data.Transactions),
		"audit_logs", len(data.AuditLogs),
	)

	// Create rate limiter.
	limiter := ratelimit.NewMemoryLimiter(float64(cfg.RateLimitRPS), cfg.RateLimitBurst)
	defer func() { _ = limiter.Close() }()
	logger.Info("rate limiting: memory (in-process token bucket)",
		"rps", cfg.RateLimitRPS, "burst", cfg.RateLimitBurst)

	// Create MCP server.
	mcpSrv := mcp.New(data, version, logger)

	// Create and start HTTP server (MCP mounted at /mcp).
	srv := server.New(server.ServerConfig{
		Data:         data,
		Logger:       logger,
		Limiter:      limiter,
		MCPServer:    mcpSrv.MCPServer(),
		Port:         cfg.Port,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		Version:      version,
	})

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// Wait for shutdown signal or server error.
	select {
	case <-ctx.Done():
	case err := <-errCh:
		return err
	}

	slog.Info("retail portal shutting down")

	httpCtx, httpCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer httpCancel()
	if err := srv.Shutdown(httpCtx); err != nil {
		slog.Error("http shutdown error", "error", err)
	}

	slog.Info("retail portal stopped")
	return nil
}

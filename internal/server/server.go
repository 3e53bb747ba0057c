package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/csdsc-cmd/Retail-Agents-Portal/internal/dataset"
	"github.com/csdsc-cmd/Retail-Agents-Portal/internal/ratelimit"
)

// Server is the portal HTTP server.
type Server struct {
	httpServer *http.Server
	handler    http.Handler
	handlers   *Handlers
	logger     *slog.Logger
}

// Handler returns the root HTTP handler for use in tests.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// ServerConfig holds all dependencies and configuration for creating a Server.
// Optional fields (nil-safe): Limiter, MCPServer.
type ServerConfig struct {
	// Required dependencies.
	Data   *dataset.Dataset
	Logger *slog.Logger

	// Optional dependencies (nil = disabled).
	Limiter   ratelimit.Limiter
	MCPServer *mcpserver.MCPServer

	// HTTP server settings.
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	Version      string
}

// New creates a new HTTP server with all routes configured.
func New(cfg ServerConfig) *Server {
	h := NewHandlers(HandlersDeps{
		Data:    cfg.Data,
		Logger:  cfg.Logger,
		Version: cfg.Version,
	})

	// All query routes share one IP-keyed limit; exports are heavier and
	// excluded so a dashboard refresh cannot starve a running download.
	limiter := cfg.Limiter
	if limiter == nil {
		limiter = ratelimit.NoopLimiter{}
	}
	rl := ratelimit.Middleware(limiter, ratelimit.IPKeyFunc, cfg.Logger)

	mux := http.NewServeMux()
	get := func(pattern string, fn http.HandlerFunc) {
		mux.Handle("GET "+pattern, rl(fn))
	}

	// Agents. by-platform/{platform} coexists with {id}/{sub} because its
	// literal first segment makes it strictly more specific; spelling the
	// sub-resources out as separate {id}/... patterns would conflict with it.
	get("/api/agents", h.HandleListAgents)
	get("/api/agents/categories", h.HandleAgentCategories)
	get("/api/agents/savings", h.HandleAgentSavings)
	get("/api/agents/by-platform/{platform}", h.HandleAgentsByPlatform)
	get("/api/agents/{id}", h.HandleGetAgent)
	get("/api/agents/{id}/{sub}", h.HandleAgentSubResource)

	// Incidents.
	get("/api/incidents", h.HandleListIncidents)
	get("/api/incidents/active", h.HandleActiveIncidents)
	get("/api/incidents/{id}", h.HandleGetIncident)
	get("/api/incidents/{id}/timeline", h.HandleIncidentTimeline)
	get("/api/incidents/{id}/conversations", h.HandleIncidentConversations)

	// Conversations.
	get("/api/conversations", h.HandleListConversations)
	get("/api/conversations/{id}", h.HandleGetConversation)

	// Stores.
	get("/api/stores", h.HandleListStores)
	get("/api/stores/{id}", h.HandleGetStore)
	get("/api/stores/{id}/conversations", h.HandleStoreConversations)

	// Metrics.
	get("/api/metrics/overview", h.HandleMetricsOverview)
	get("/api/metrics/by-category", h.HandleMetricsByCategory)
	get("/api/metrics/timeseries", h.HandleMetricsTimeSeries)

	// Costs.
	get("/api/costs/summary", h.HandleCostSummary)
	get("/api/costs/by-agent", h.HandleCostsByAgent)
	get("/api/costs/by-model", h.HandleCostsByModel)
	get("/api/costs/daily", h.HandleDailyCosts)
	get("/api/costs/by-category", h.HandleCostsByCategory)

	// Transactions.
	get("/api/transactions", h.HandleListTransactions)
	get("/api/transactions/stats", h.HandleTransactionStats)
	get("/api/transactions/{id}", h.HandleGetTransaction)

	// Audit.
	get("/api/audit/logs", h.HandleListAuditLogs)
	get("/api/audit/users", h.HandleListUsers)
	get("/api/audit/users/{id}", h.HandleGetUser)

	// Exports (no rate limit).
	mux.HandleFunc("GET /api/export/transactions", h.HandleExportTransactions)
	mux.HandleFunc("GET /api/export/costs.pdf", h.HandleExportCostsPDF)

	// MCP StreamableHTTP transport.
	if cfg.MCPServer != nil {
		mcpHTTP := mcpserver.NewStreamableHTTPServer(cfg.MCPServer)
		mux.Handle("/mcp", mcpHTTP)
	}

	// Health (no rate limit).
	mux.HandleFunc("GET /health", h.HandleHealth)

	// JSON 404 for everything else.
	mux.HandleFunc("/", h.HandleNotFound)

	// Middleware chain (outermost executes first):
	// request ID → security headers → tracing → logging → recovery → handler.
	var handler http.Handler = mux
	handler = recoveryMiddleware(cfg.Logger, handler)
	handler = loggingMiddleware(cfg.Logger, handler)
	handler = tracingMiddleware(handler)
	handler = securityHeadersMiddleware(handler)
	handler = requestIDMiddleware(handler)

	return &Server{
		httpServer: &http.Server{
			Addr:         fmt.Sprintf(":%d", cfg.Port),
			Handler:      handler,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
		},
		handler:  handler,
		handlers: h,
		logger:   cfg.Logger,
	}
}

// Start begins serving HTTP requests.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("http server shutting down")
	return s.httpServer.Shutdown(ctx)
}

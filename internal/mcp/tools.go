package mcp

import (
	"context"

	mcplib "github.com/mark3labs/mcp-go/mcp"

	"github.com/csdsc-cmd/Retail-Agents-Portal/internal/dataset"
	"github.com/csdsc-cmd/Retail-Agents-Portal/internal/model"
)

func (s *Server) registerTools() {
	// portal_list_agents — the agent fleet, optionally filtered.
	s.mcpServer.AddTool(
		mcplib.NewTool("portal_list_agents",
			mcplib.WithDescription("List the retail AI agents with their status, category, model, savings, and platform deployments. Optionally filter by status, category, or platform."),
			mcplib.WithReadOnlyHintAnnotation(true),
			mcplib.WithIdempotentHintAnnotation(true),
			mcplib.WithOpenWorldHintAnnotation(false),
			mcplib.WithString("status",
				mcplib.Description("Filter by agent status: active, inactive, or error"),
			),
			mcplib.WithString("category",
				mcplib.Description("Filter by category: inventory-intelligence, pricing-promotions, store-operations, customer-service-returns, or executive-insights"),
			),
			mcplib.WithString("platform",
				mcplib.Description("Filter by deployment platform: finops, crm, or business-central"),
			),
		),
		s.handleListAgents,
	)

	// portal_savings — fleet-wide savings roll-up.
	s.mcpServer.AddTool(
		mcplib.NewTool("portal_savings",
			mcplib.WithDescription("Projected cost savings across the agent fleet: total daily/weekly/monthly/yearly figures plus breakdowns by category and by platform."),
			mcplib.WithReadOnlyHintAnnotation(true),
			mcplib.WithIdempotentHintAnnotation(true),
			mcplib.WithOpenWorldHintAnnotation(false),
		),
		s.handleSavings,
	)

	// portal_incidents — operational incidents, optionally filtered.
	s.mcpServer.AddTool(
		mcplib.NewTool("portal_incidents",
			mcplib.WithDescription("Operational incidents with timelines, affected stores, and estimated financial impact. Optionally filter by status or severity, or restrict to active incidents."),
			mcplib.WithReadOnlyHintAnnotation(true),
			mcplib.WithIdempotentHintAnnotation(true),
			mcplib.WithOpenWorldHintAnnotation(false),
			mcplib.WithString("status",
				mcplib.Description("Filter by status: active, investigating, or resolved"),
			),
			mcplib.WithString("severity",
				mcplib.Description("Filter by severity: info, low, medium, high, or critical"),
			),
			mcplib.WithBoolean("active_only",
				mcplib.Description("Return only unresolved incidents"),
			),
		),
		s.handleIncidents,
	)

	// portal_cost_summary — LLM spend roll-up.
	s.mcpServer.AddTool(
		mcplib.NewTool("portal_cost_summary",
			mcplib.WithDescription("LLM spend summary: total cost plus breakdowns by model, by agent, by category, and by day."),
			mcplib.WithReadOnlyHintAnnotation(true),
			mcplib.WithIdempotentHintAnnotation(true),
			mcplib.WithOpenWorldHintAnnotation(false),
		),
		s.handleCostSummary,
	)

	// portal_transaction_stats — automated decision outcomes.
	s.mcpServer.AddTool(
		mcplib.NewTool("portal_transaction_stats",
			mcplib.WithDescription("Aggregate statistics over the automated transaction log: total count, success rate, escalation rate, and total savings and cost."),
			mcplib.WithReadOnlyHintAnnotation(true),
			mcplib.WithIdempotentHintAnnotation(true),
			mcplib.WithOpenWorldHintAnnotation(false),
		),
		s.handleTransactionStats,
	)
}

func (s *Server) handleListAgents(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	agents := s.data.FilterAgents(dataset.AgentFilter{
		Status:   model.AgentStatus(request.GetString("status", "")),
		Category: model.AgentCategory(request.GetString("category", "")),
		Platform: model.Platform(request.GetString("platform", "")),
	})
	return jsonResult(agents), nil
}

func (s *Server) handleSavings(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	return jsonResult(s.data.Savings()), nil
}

func (s *Server) handleIncidents(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	var incidents []model.Incident
	if request.GetBool("active_only", false) {
		incidents = s.data.ActiveIncidents()
	} else {
		incidents = s.data.FilterIncidents(dataset.IncidentFilter{
			Status:   model.IncidentStatus(request.GetString("status", "")),
			Severity: model.EventSeverity(request.GetString("severity", "")),
		})
	}
	return jsonResult(s.data.IncidentViews(incidents)), nil
}

func (s *Server) handleCostSummary(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	return jsonResult(s.data.CostSummary()), nil
}

func (s *Server) handleTransactionStats(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	return jsonResult(s.data.TransactionStats()), nil
}

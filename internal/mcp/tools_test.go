package mcp

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/csdsc-cmd/Retail-Agents-Portal/internal/dataset"
	"github.com/csdsc-cmd/Retail-Agents-Portal/internal/model"
)

func newTestMCP(t *testing.T) *Server {
	t.Helper()
	data, err := dataset.Seed(dataset.Config{
		Now: time.Date(2024, 7, 15, 10, 30, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(data, "test", logger)
}

func callRequest(name string, args map[string]any) mcplib.CallToolRequest {
	return mcplib.CallToolRequest{
		Params: mcplib.CallToolParams{
			Name:      name,
			Arguments: args,
		},
	}
}

// parseToolText extracts the first TextContent text from a CallToolResult.
func parseToolText(t *testing.T, result *mcplib.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, result.Content)
	text, ok := result.Content[0].(mcplib.TextContent)
	require.True(t, ok, "expected text content")
	return text.Text
}

func TestListAgentsTool(t *testing.T) {
	s := newTestMCP(t)

	result, err := s.handleListAgents(context.Background(), callRequest("portal_list_agents", nil))
	require.NoError(t, err)
	require.False(t, result.IsError)

	var agents []model.Agent
	require.NoError(t, json.Unmarshal([]byte(parseToolText(t, result)), &agents))
	assert.Len(t, agents, 21)

	result, err = s.handleListAgents(context.Background(), callRequest("portal_list_agents", map[string]any{
		"category": "executive-insights",
	}))
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(parseToolText(t, result)), &agents))
	assert.Len(t, agents, 4)
}

func TestSavingsTool(t *testing.T) {
	s := newTestMCP(t)

	result, err := s.handleSavings(context.Background(), callRequest("portal_savings", nil))
	require.NoError(t, err)
	require.False(t, result.IsError)

	var report dataset.SavingsReport
	require.NoError(t, json.Unmarshal([]byte(parseToolText(t, result)), &report))
	assert.Greater(t, report.Total.Yearly, 0.0)
	assert.Len(t, report.ByCategory, 5)
}

func TestIncidentsTool(t *testing.T) {
	s := newTestMCP(t)

	result, err := s.handleIncidents(context.Background(), callRequest("portal_incidents", nil))
	require.NoError(t, err)

	var views []model.IncidentView
	require.NoError(t, json.Unmarshal([]byte(parseToolText(t, result)), &views))
	assert.Len(t, views, 4)

	result, err = s.handleIncidents(context.Background(), callRequest("portal_incidents", map[string]any{
		"active_only": true,
	}))
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(parseToolText(t, result)), &views))
	require.Len(t, views, 1)
	assert.Equal(t, "INC-2024-001", views[0].ID)
}

func TestCostSummaryTool(t *testing.T) {
	s := newTestMCP(t)

	result, err := s.handleCostSummary(context.Background(), callRequest("portal_cost_summary", nil))
	require.NoError(t, err)

	var summary model.CostSummary
	require.NoError(t, json.Unmarshal([]byte(parseToolText(t, result)), &summary))
	assert.Greater(t, summary.TotalCost, 0.0)
	assert.NotEmpty(t, summary.CostByModel)
}

func TestTransactionStatsTool(t *testing.T) {
	s := newTestMCP(t)

	result, err := s.handleTransactionStats(context.Background(), callRequest("portal_transaction_stats", nil))
	require.NoError(t, err)

	var stats model.TransactionStats
	require.NoError(t, json.Unmarshal([]byte(parseToolText(t, result)), &stats))
	assert.Greater(t, stats.TotalTransactions, 0)
	assert.Greater(t, stats.SuccessRate, 0.0)
}

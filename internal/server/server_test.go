package server_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/csdsc-cmd/Retail-Agents-Portal/internal/dataset"
	"github.com/csdsc-cmd/Retail-Agents-Portal/internal/model"
	"github.com/csdsc-cmd/Retail-Agents-Portal/internal/ratelimit"
	"github.com/csdsc-cmd/Retail-Agents-Portal/internal/server"
)

var testNow = time.Date(2024, 7, 15, 10, 30, 0, 0, time.UTC)

func newTestServer(t *testing.T, limiter ratelimit.Limiter) *httptest.Server {
	t.Helper()

	data, err := dataset.Seed(dataset.Config{Now: testNow})
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	srv := server.New(server.ServerConfig{
		Data:    data,
		Logger:  logger,
		Limiter: limiter,
		Version: "test",
	})

	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts
}

type envelope struct {
	Success    bool               `json:"success"`
	Data       json.RawMessage    `json:"data"`
	Error      *model.ErrorDetail `json:"error"`
	Pagination *model.Pagination  `json:"pagination"`
}

func get(t *testing.T, ts *httptest.Server, path string) (*http.Response, envelope) {
	t.Helper()

	resp, err := http.Get(ts.URL + path)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp, env
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t, nil)

	resp, env := get(t, ts, "/health")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, env.Success)

	var body map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &body))
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, float64(21), body["agents"])
}

func TestRequestIDHeader(t *testing.T) {
	ts := newTestServer(t, nil)

	resp, err := http.Get(ts.URL + "/health")
	require.NoError(t, err)
	resp.Body.Close()
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
	assert.Equal(t, "nosniff", resp.Header.Get("X-Content-Type-Options"))
}

func TestListAgentsPagination(t *testing.T) {
	ts := newTestServer(t, nil)

	resp, env := get(t, ts, "/api/agents")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotNil(t, env.Pagination)
	assert.Equal(t, 1, env.Pagination.Page)
	assert.Equal(t, 25, env.Pagination.PageSize)
	assert.Equal(t, 21, env.Pagination.Total)
	assert.Equal(t, 1, env.Pagination.TotalPages)

	var agents []model.Agent
	require.NoError(t, json.Unmarshal(env.Data, &agents))
	assert.Len(t, agents, 21)

	// Second page of five.
	_, env = get(t, ts, "/api/agents?page=2&pageSize=5")
	require.NoError(t, json.Unmarshal(env.Data, &agents))
	assert.Len(t, agents, 5)
	assert.Equal(t, 5, env.Pagination.TotalPages)

	// Past the end: empty page, not an error.
	resp, env = get(t, ts, "/api/agents?page=99")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(env.Data, &agents))
	assert.Empty(t, agents)
}

func TestListAgentsFiltered(t *testing.T) {
	ts := newTestServer(t, nil)

	_, env := get(t, ts, "/api/agents?category=executive-insights")
	var agents []model.Agent
	require.NoError(t, json.Unmarshal(env.Data, &agents))
	assert.Len(t, agents, 4)
	for _, a := range agents {
		assert.Equal(t, model.CategoryExecutive, a.Category)
	}

	// Unknown filter values match nothing.
	_, env = get(t, ts, "/api/agents?status=bogus")
	require.NoError(t, json.Unmarshal(env.Data, &agents))
	assert.Empty(t, agents)
}

func TestGetAgent(t *testing.T) {
	ts := newTestServer(t, nil)

	_, env := get(t, ts, "/api/agents")
	var agents []model.Agent
	require.NoError(t, json.Unmarshal(env.Data, &agents))
	require.NotEmpty(t, agents)

	resp, env := get(t, ts, "/api/agents/"+agents[0].ID)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var agent model.Agent
	require.NoError(t, json.Unmarshal(env.Data, &agent))
	assert.Equal(t, agents[0].Name, agent.Name)

	resp, env = get(t, ts, "/api/agents/nope")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.False(t, env.Success)
	require.NotNil(t, env.Error)
	assert.Equal(t, model.ErrCodeNotFound, env.Error.Code)
}

func TestAgentSubResources(t *testing.T) {
	ts := newTestServer(t, nil)

	_, env := get(t, ts, "/api/agents")
	var agents []model.Agent
	require.NoError(t, json.Unmarshal(env.Data, &agents))
	id := agents[0].ID

	for _, sub := range []string{"conversations", "metrics", "costs", "transactions", "incidents"} {
		resp, env := get(t, ts, "/api/agents/"+id+"/"+sub)
		assert.Equal(t, http.StatusOK, resp.StatusCode, sub)
		assert.True(t, env.Success, sub)

		resp, _ = get(t, ts, "/api/agents/nope/"+sub)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode, sub)
	}

	_, env = get(t, ts, "/api/agents/"+id+"/metrics")
	var metrics []model.DailyMetrics
	require.NoError(t, json.Unmarshal(env.Data, &metrics))
	assert.Len(t, metrics, dataset.DefaultMetricsDays)

	// Unknown sub-resource names fall through to a JSON 404.
	resp, env := get(t, ts, "/api/agents/"+id+"/bogus")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	require.NotNil(t, env.Error)
	assert.Equal(t, model.ErrCodeNotFound, env.Error.Code)

	// The wildcard sub-resource route coexists with the by-platform literal.
	resp, _ = get(t, ts, "/api/agents/by-platform/crm")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAgentsByPlatform(t *testing.T) {
	ts := newTestServer(t, nil)

	resp, env := get(t, ts, "/api/agents/by-platform/finops")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var agents []model.Agent
	require.NoError(t, json.Unmarshal(env.Data, &agents))
	assert.NotEmpty(t, agents)

	resp, env = get(t, ts, "/api/agents/by-platform/shopify")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.NotNil(t, env.Error)
	assert.Equal(t, model.ErrCodeInvalidPlatform, env.Error.Code)
}

func TestAgentSavings(t *testing.T) {
	ts := newTestServer(t, nil)

	_, env := get(t, ts, "/api/agents/savings")
	var report dataset.SavingsReport
	require.NoError(t, json.Unmarshal(env.Data, &report))
	assert.Greater(t, report.Total.Daily, 0.0)
	assert.NotEmpty(t, report.ByCategory)
	assert.NotEmpty(t, report.ByPlatform)
}

func TestIncidentRoutes(t *testing.T) {
	ts := newTestServer(t, nil)

	_, env := get(t, ts, "/api/incidents")
	var views []model.IncidentView
	require.NoError(t, json.Unmarshal(env.Data, &views))
	assert.Len(t, views, 4)
	for _, v := range views {
		// View shape: store names, not store records.
		for _, s := range v.AffectedStores {
			assert.NotEmpty(t, s)
		}
	}

	_, env = get(t, ts, "/api/incidents/active")
	require.NoError(t, json.Unmarshal(env.Data, &views))
	assert.Len(t, views, 1)
	assert.Equal(t, "INC-2024-001", views[0].ID)

	resp, env := get(t, ts, "/api/incidents/INC-2024-001")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var view model.IncidentView
	require.NoError(t, json.Unmarshal(env.Data, &view))
	assert.Equal(t, model.SeverityCritical, view.Severity)
	require.NotNil(t, view.EstimatedImpact)
	assert.Equal(t, 1200, view.EstimatedImpact.AffectedTransactions)

	_, env = get(t, ts, "/api/incidents/INC-2024-001/timeline")
	var timeline []model.IncidentViewEvent
	require.NoError(t, json.Unmarshal(env.Data, &timeline))
	assert.NotEmpty(t, timeline)
	assert.NotEmpty(t, timeline[0].Title)

	_, env = get(t, ts, "/api/incidents/INC-2024-001/conversations")
	var convs []model.Conversation
	require.NoError(t, json.Unmarshal(env.Data, &convs))
	for _, c := range convs {
		require.NotNil(t, c.BusinessContext)
		assert.Equal(t, "INC-2024-001", c.BusinessContext.IncidentID)
	}

	resp, _ = get(t, ts, "/api/incidents/INC-9999-001")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestIncidentsFiltered(t *testing.T) {
	ts := newTestServer(t, nil)

	_, env := get(t, ts, "/api/incidents?severity=critical")
	var views []model.IncidentView
	require.NoError(t, json.Unmarshal(env.Data, &views))
	assert.Len(t, views, 1)

	_, env = get(t, ts, "/api/incidents?status=resolved")
	require.NoError(t, json.Unmarshal(env.Data, &views))
	assert.Len(t, views, 3)
}

func TestConversationRoutes(t *testing.T) {
	ts := newTestServer(t, nil)

	_, env := get(t, ts, "/api/conversations")
	require.NotNil(t, env.Pagination)
	assert.Equal(t, dataset.DefaultConversations, env.Pagination.Total)
	assert.Equal(t, 20, env.Pagination.PageSize)

	var convs []model.Conversation
	require.NoError(t, json.Unmarshal(env.Data, &convs))
	require.Len(t, convs, 20)

	resp, env := get(t, ts, "/api/conversations/"+convs[0].ID)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	_, env = get(t, ts, "/api/conversations?sentiment=negative")
	require.NoError(t, json.Unmarshal(env.Data, &convs))
	for _, c := range convs {
		assert.Equal(t, model.SentimentNegative, c.Sentiment)
	}

	resp, _ = get(t, ts, "/api/conversations/nope")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestStoreRoutes(t *testing.T) {
	ts := newTestServer(t, nil)

	_, env := get(t, ts, "/api/stores")
	var stores []model.Store
	require.NoError(t, json.Unmarshal(env.Data, &stores))
	assert.Len(t, stores, 10)

	_, env = get(t, ts, "/api/stores?region=Auckland")
	require.NoError(t, json.Unmarshal(env.Data, &stores))
	assert.NotEmpty(t, stores)
	for _, s := range stores {
		assert.Equal(t, "Auckland", s.Region)
	}

	resp, env := get(t, ts, "/api/stores/STR-001")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	_, env = get(t, ts, "/api/stores/STR-001/conversations")
	var convs []model.Conversation
	require.NoError(t, json.Unmarshal(env.Data, &convs))
	for _, c := range convs {
		require.NotNil(t, c.BusinessContext)
		assert.Equal(t, "STR-001", c.BusinessContext.StoreID)
	}

	resp, _ = get(t, ts, "/api/stores/STR-999")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestMetricsRoutes(t *testing.T) {
	ts := newTestServer(t, nil)

	_, env := get(t, ts, "/api/metrics/overview")
	var agg model.AggregateMetrics
	require.NoError(t, json.Unmarshal(env.Data, &agg))
	assert.Greater(t, agg.TotalConversations, 0)

	_, env = get(t, ts, "/api/metrics/by-category")
	var byCat map[model.AgentCategory]model.CategoryMetrics
	require.NoError(t, json.Unmarshal(env.Data, &byCat))
	assert.Len(t, byCat, 5)

	_, env = get(t, ts, "/api/metrics/timeseries?days=7")
	var points []model.TimeSeriesPoint
	require.NoError(t, json.Unmarshal(env.Data, &points))
	assert.Len(t, points, 7)
}

func TestCostRoutes(t *testing.T) {
	ts := newTestServer(t, nil)

	_, env := get(t, ts, "/api/costs/summary")
	var summary model.CostSummary
	require.NoError(t, json.Unmarshal(env.Data, &summary))
	assert.Greater(t, summary.TotalCost, 0.0)

	_, env = get(t, ts, "/api/costs/by-agent")
	var byAgent []model.AgentCost
	require.NoError(t, json.Unmarshal(env.Data, &byAgent))
	assert.NotEmpty(t, byAgent)

	_, env = get(t, ts, "/api/costs/by-model")
	var byModel map[string]float64
	require.NoError(t, json.Unmarshal(env.Data, &byModel))
	assert.NotEmpty(t, byModel)

	_, env = get(t, ts, "/api/costs/daily")
	var daily []model.DailyCost
	require.NoError(t, json.Unmarshal(env.Data, &daily))
	assert.Len(t, daily, dataset.DefaultMetricsDays)

	_, env = get(t, ts, "/api/costs/by-category")
	var byCat map[model.AgentCategory]float64
	require.NoError(t, json.Unmarshal(env.Data, &byCat))
	assert.Len(t, byCat, 5)
}

func TestTransactionRoutes(t *testing.T) {
	ts := newTestServer(t, nil)

	_, env := get(t, ts, "/api/transactions")
	require.NotNil(t, env.Pagination)
	var txns []model.AgentTransactionLog
	require.NoError(t, json.Unmarshal(env.Data, &txns))
	require.Len(t, txns, 20)

	resp, env := get(t, ts, "/api/transactions/"+txns[0].ID)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	_, env = get(t, ts, "/api/transactions/stats")
	var stats model.TransactionStats
	require.NoError(t, json.Unmarshal(env.Data, &stats))
	assert.Greater(t, stats.TotalTransactions, 0)
	assert.InDelta(t, 0.75, stats.SuccessRate, 0.15)

	_, env = get(t, ts, "/api/transactions?outcome=escalated")
	require.NoError(t, json.Unmarshal(env.Data, &txns))
	for _, txn := range txns {
		assert.Equal(t, model.OutcomeEscalated, txn.Outcome)
		assert.True(t, txn.HumanOverrideRequired)
	}
}

func TestAuditRoutes(t *testing.T) {
	ts := newTestServer(t, nil)

	_, env := get(t, ts, "/api/audit/logs")
	require.NotNil(t, env.Pagination)
	assert.Equal(t, dataset.DefaultAuditLogs, env.Pagination.Total)

	_, env = get(t, ts, "/api/audit/users")
	var users []model.User
	require.NoError(t, json.Unmarshal(env.Data, &users))
	require.Len(t, users, 10)

	resp, env := get(t, ts, "/api/audit/users/"+users[0].ID)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = get(t, ts, "/api/audit/users/nope")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	_, env = get(t, ts, "/api/audit/logs?userId="+users[0].ID)
	var logs []model.AuditLog
	require.NoError(t, json.Unmarshal(env.Data, &logs))
	for _, l := range logs {
		assert.Equal(t, users[0].ID, l.UserID)
	}
}

func TestUnknownRouteJSON404(t *testing.T) {
	ts := newTestServer(t, nil)

	resp, env := get(t, ts, "/api/nope")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.False(t, env.Success)
	require.NotNil(t, env.Error)
	assert.Equal(t, model.ErrCodeNotFound, env.Error.Code)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
}

func TestRateLimit(t *testing.T) {
	limiter := ratelimit.NewMemoryLimiter(1, 2)
	defer limiter.Close()
	ts := newTestServer(t, limiter)

	// Burst of 2, then denied.
	for i := 0; i < 2; i++ {
		resp, err := http.Get(ts.URL + "/api/agents")
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	}

	resp, env := get(t, ts, "/api/agents")
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	require.NotNil(t, env.Error)
	assert.Equal(t, model.ErrCodeRateLimited, env.Error.Code)
	assert.Equal(t, "1", resp.Header.Get("Retry-After"))

	// Health is not rate limited.
	hResp, err := http.Get(ts.URL + "/health")
	require.NoError(t, err)
	hResp.Body.Close()
	assert.Equal(t, http.StatusOK, hResp.StatusCode)
}

func TestDeterministicResponses(t *testing.T) {
	ts1 := newTestServer(t, nil)
	ts2 := newTestServer(t, nil)

	for _, path := range []string{"/api/agents", "/api/agents/savings", "/api/costs/summary"} {
		resp1, err := http.Get(ts1.URL + path)
		require.NoError(t, err)
		body1, _ := io.ReadAll(resp1.Body)
		resp1.Body.Close()

		resp2, err := http.Get(ts2.URL + path)
		require.NoError(t, err)
		body2, _ := io.ReadAll(resp2.Body)
		resp2.Body.Close()

		assert.Equal(t, string(body1), string(body2), path)
	}
}

func TestExportTransactionsCSV(t *testing.T) {
	ts := newTestServer(t, nil)

	resp, err := http.Get(ts.URL + "/api/export/transactions")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/csv", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), ".csv")

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(body)), "\n")
	assert.True(t, strings.HasPrefix(lines[0], "id,agentId,agentName"))
	assert.Greater(t, len(lines), 100)
}

func TestExportTransactionsNDJSON(t *testing.T) {
	ts := newTestServer(t, nil)

	resp, err := http.Get(ts.URL + "/api/export/transactions?format=ndjson&outcome=escalated")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/x-ndjson", resp.Header.Get("Content-Type"))

	decoder := json.NewDecoder(resp.Body)
	count := 0
	for decoder.More() {
		var txn model.AgentTransactionLog
		require.NoError(t, decoder.Decode(&txn))
		assert.Equal(t, model.OutcomeEscalated, txn.Outcome)
		count++
	}
	assert.Greater(t, count, 0)
}

func TestExportBadFormat(t *testing.T) {
	ts := newTestServer(t, nil)

	resp, env := get(t, ts, "/api/export/transactions?format=xml")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.NotNil(t, env.Error)
	assert.Equal(t, model.ErrCodeInvalidInput, env.Error.Code)
}

func TestExportCostsPDF(t *testing.T) {
	ts := newTestServer(t, nil)

	resp, err := http.Get(ts.URL + "/api/export/costs.pdf")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(body), "%PDF"))
}

package dataset

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/csdsc-cmd/Retail-Agents-Portal/internal/model"
	"github.com/csdsc-cmd/Retail-Agents-Portal/internal/seeded"
)

var testNow = time.Date(2024, 7, 15, 10, 30, 0, 0, time.UTC)

func testDataset(t *testing.T) *Dataset {
	t.Helper()
	d, err := Seed(Config{Now: testNow})
	require.NoError(t, err)
	return d
}

func TestSeedIsDeterministic(t *testing.T) {
	a, err := Seed(Config{Seed: 99, Now: testNow})
	require.NoError(t, err)
	b, err := Seed(Config{Seed: 99, Now: testNow})
	require.NoError(t, err)

	assert.Equal(t, a.Agents, b.Agents)
	assert.Equal(t, a.Incidents, b.Incidents)
	assert.Equal(t, a.Conversations, b.Conversations)
	assert.Equal(t, a.Metrics, b.Metrics)
	assert.Equal(t, a.Costs, b.Costs)
	assert.Equal(t, a.Transactions, b.Transactions)
	assert.Equal(t, a.Users, b.Users)
	assert.Equal(t, a.AuditLogs, b.AuditLogs)
}

func TestSeedsDiverge(t *testing.T) {
	a, err := Seed(Config{Seed: 1, Now: testNow})
	require.NoError(t, err)
	b, err := Seed(Config{Seed: 2, Now: testNow})
	require.NoError(t, err)

	assert.NotEqual(t, a.Agents[0].ID, b.Agents[0].ID)
}

func TestDefaultsApplied(t *testing.T) {
	d := testDataset(t)

	assert.Equal(t, int64(DefaultSeed), d.Seed)
	assert.Len(t, d.Conversations, DefaultConversations)
	assert.Len(t, d.AuditLogs, DefaultAuditLogs)
	assert.Len(t, d.Metrics, len(d.Agents)*DefaultMetricsDays)
}

func TestAgentRoster(t *testing.T) {
	d := testDataset(t)

	require.Len(t, d.Agents, 21)

	counts := map[model.AgentCategory]int{}
	for _, a := range d.Agents {
		counts[a.Category]++
	}
	assert.Equal(t, 5, counts[model.CategoryInventory])
	assert.Equal(t, 4, counts[model.CategoryPricing])
	assert.Equal(t, 4, counts[model.CategoryStoreOps])
	assert.Equal(t, 4, counts[model.CategoryCustomerService])
	assert.Equal(t, 4, counts[model.CategoryExecutive])

	seen := map[string]bool{}
	for _, a := range d.Agents {
		assert.False(t, seen[a.ID], "duplicate agent id %s", a.ID)
		seen[a.ID] = true
		assert.NotEmpty(t, a.Name)
		assert.NotEmpty(t, a.Model)
		assert.GreaterOrEqual(t, a.Metrics.TotalConversations, 50)
	}
}

func TestAgentModelFallback(t *testing.T) {
	def := agentDefinitions[0]
	require.NotEmpty(t, def.PreferredModel)

	// A definition without a preferred model samples one uniformly.
	def.PreferredModel = ""
	a := generateAgent(seeded.New(1), testNow, def)
	assert.Contains(t, fallbackModels, a.Model)

	// Defined models pass through untouched.
	b := generateAgent(seeded.New(1), testNow, agentDefinitions[0])
	assert.Equal(t, agentDefinitions[0].PreferredModel, b.Model)
}

func TestSavingsArithmetic(t *testing.T) {
	d := testDataset(t)

	var monitor model.Agent
	for _, a := range d.Agents {
		if a.Name == "Stock Level Monitor" {
			monitor = a
		}
	}
	require.NotEmpty(t, monitor.ID)

	assert.Equal(t, model.CategoryInventory, monitor.Category)
	assert.Equal(t, 0.12, monitor.Pricing.CostPerTransaction)

	// (4.50 - 0.12) * 450, each period rounded from the unrounded daily.
	assert.Equal(t, 1971.00, monitor.Savings.Daily)
	assert.Equal(t, 13797.00, monitor.Savings.Weekly)
	assert.Equal(t, 59130.00, monitor.Savings.Monthly)
	assert.Equal(t, 719415.00, monitor.Savings.Yearly)
}

func TestSavingsReportSumsAgents(t *testing.T) {
	d := testDataset(t)

	report := d.Savings()

	var daily float64
	for _, a := range d.Agents {
		daily += a.Savings.Daily
	}
	assert.InDelta(t, daily, report.Total.Daily, 0.001)

	var categoryDaily float64
	for _, c := range model.Categories() {
		categoryDaily += report.ByCategory[c].Daily
	}
	assert.InDelta(t, report.Total.Daily, categoryDaily, 0.001)
}

func TestPlatformDeployments(t *testing.T) {
	d := testDataset(t)

	for _, a := range d.Agents {
		require.Len(t, a.Platforms, 3, "agent %s", a.Name)
		for _, p := range a.Platforms {
			if p.IsDeployed {
				require.NotNil(t, p.DeployedAt)
				require.NotNil(t, p.TransactionCount)
				assert.Positive(t, *p.TransactionCount)
			} else {
				assert.Nil(t, p.DeployedAt)
				assert.Nil(t, p.TransactionCount)
			}
		}
	}
}

func TestIncidentFixtures(t *testing.T) {
	d := testDataset(t)

	require.Len(t, d.Incidents, 4)

	supply, ok := d.IncidentByID("INC-2024-001")
	require.True(t, ok)
	assert.Equal(t, model.SeverityCritical, supply.Severity)
	assert.Equal(t, model.IncidentInvestigating, supply.Status)
	assert.Nil(t, supply.ResolvedAt)
	for _, s := range supply.AffectedStores {
		assert.Contains(t, []string{"Auckland", "Wellington"}, s.Region)
	}
	require.NotNil(t, supply.FinancialImpact)
	assert.Equal(t, 180000.0, *supply.FinancialImpact)

	for _, inc := range d.Incidents {
		require.Len(t, inc.RelatedAgentIDs, len(inc.Timeline))
		for i, ev := range inc.Timeline {
			agent, ok := d.AgentByID(ev.AgentID)
			require.True(t, ok, "incident %s timeline references unknown agent", inc.ID)
			assert.Equal(t, agent.Name, ev.AgentName)
			assert.Equal(t, agent.Category, ev.AgentCategory)
			assert.Equal(t, ev.AgentID, inc.RelatedAgentIDs[i])
			if i > 0 {
				assert.False(t, ev.Timestamp.Before(inc.Timeline[i-1].Timestamp))
			}
		}
		if inc.Status == model.IncidentResolved {
			assert.NotNil(t, inc.ResolvedAt)
		}
	}
}

func TestIncidentBuildFailsOnUnknownAgent(t *testing.T) {
	script := incidentScript{
		id:       "INC-TEST",
		severity: model.SeverityLow,
		status:   model.IncidentActive,
		timeline: []timelineStep{
			{"No Such Agent", 0, model.EventRoutineOperation, "whatever"},
		},
	}

	_, err := buildIncident(seeded.New(1), testNow, script, map[string]model.Agent{}, storeFixtures)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "No Such Agent")
}

func TestIncidentView(t *testing.T) {
	d := testDataset(t)

	inc, ok := d.IncidentByID("INC-2024-001")
	require.True(t, ok)
	view := d.IncidentView(inc)

	assert.Equal(t, inc.ID, view.ID)
	require.NotEmpty(t, view.AffectedStores)
	assert.IsType(t, "", view.AffectedStores[0])

	seen := map[model.AgentCategory]bool{}
	for _, c := range view.AffectedCategories {
		assert.False(t, seen[c], "category %s duplicated", c)
		seen[c] = true
	}

	require.Len(t, view.Timeline, len(inc.Timeline))
	assert.Equal(t, "Stockout Alert", view.Timeline[0].Title)
	assert.Equal(t, inc.Severity, view.Timeline[0].Severity)

	require.NotNil(t, view.EstimatedImpact)
	assert.Equal(t, 180000.0, view.EstimatedImpact.FinancialLoss)
	assert.Equal(t, 1200, view.EstimatedImpact.AffectedTransactions)
}

func TestConversationIntegrity(t *testing.T) {
	d := testDataset(t)

	for _, c := range d.Conversations {
		_, ok := d.AgentByID(c.AgentID)
		require.True(t, ok, "conversation %s references unknown agent", c.ID)

		require.NotNil(t, c.BusinessContext)
		_, ok = d.StoreByID(c.BusinessContext.StoreID)
		require.True(t, ok, "conversation %s references unknown store", c.ID)

		if c.Status == model.ConversationActive {
			assert.Nil(t, c.EndedAt)
		} else {
			require.NotNil(t, c.EndedAt)
			assert.False(t, c.EndedAt.Before(c.StartedAt))
		}

		if id := c.BusinessContext.IncidentID; id != "" {
			inc, ok := d.IncidentByID(id)
			require.True(t, ok, "conversation %s references unknown incident", c.ID)
			assert.True(t, inc.Involves(c.AgentID),
				"conversation %s links incident %s that does not involve its agent", c.ID, id)
			assert.LessOrEqual(t, len(c.BusinessContext.RelatedAgentIDs), 3)
		}
	}
}

func TestFilterConversationsSortedDescending(t *testing.T) {
	d := testDataset(t)

	all := d.FilterConversations(ConversationFilter{})
	require.Len(t, all, DefaultConversations)
	for i := 1; i < len(all); i++ {
		assert.False(t, all[i].StartedAt.After(all[i-1].StartedAt))
	}

	failed := d.FilterConversations(ConversationFilter{Status: model.ConversationFailed})
	for _, c := range failed {
		assert.Equal(t, model.ConversationFailed, c.Status)
	}

	none := d.FilterConversations(ConversationFilter{AgentID: "nope"})
	assert.Empty(t, none)
}

func TestMetricsWindow(t *testing.T) {
	d := testDataset(t)

	for _, a := range d.Agents {
		series := d.MetricsByAgent(a.ID)
		require.Len(t, series, DefaultMetricsDays)
		for i, m := range series {
			assert.GreaterOrEqual(t, m.Conversations, 1)
			assert.GreaterOrEqual(t, m.SuccessRate, 0.85)
			assert.LessOrEqual(t, m.SuccessRate, 0.99)
			if i > 0 {
				assert.True(t, series[i-1].Date.Before(m.Date))
			}
		}
	}
}

func TestCostRecordsPairWithMetrics(t *testing.T) {
	d := testDataset(t)

	require.Len(t, d.Costs, len(d.Metrics))
	for i, c := range d.Costs {
		m := d.Metrics[i]
		assert.Equal(t, m.AgentID, c.AgentID)
		assert.True(t, m.Date.Equal(c.Date))
		assert.Equal(t, m.TotalTokensInput, c.InputTokens)
		assert.Equal(t, m.TotalTokensOutput, c.OutputTokens)

		agent, ok := d.AgentByID(c.AgentID)
		require.True(t, ok)
		assert.Equal(t, agent.Model, c.Model)

		p := priceFor(agent.Model)
		want := seeded.Round(float64(m.TotalTokensInput)/1000*p.input+float64(m.TotalTokensOutput)/1000*p.output, 4)
		assert.Equal(t, want, c.TotalCost)
	}
}

func TestCostSummaryReconciles(t *testing.T) {
	d := testDataset(t)

	summary := d.CostSummary()

	var byModel float64
	for _, cost := range summary.CostByModel {
		byModel += cost
	}
	assert.InDelta(t, summary.TotalCost, byModel, 0.05)

	var byCategory float64
	for _, c := range model.Categories() {
		byCategory += summary.CostByCategory[c]
	}
	assert.InDelta(t, summary.TotalCost, byCategory, 0.05)

	var byAgent float64
	for _, ac := range summary.CostByAgent {
		byAgent += ac.TotalCost
	}
	assert.InDelta(t, summary.TotalCost, byAgent, 0.25)

	var byDay float64
	for _, dc := range summary.DailyCosts {
		byDay += dc.Cost
	}
	assert.InDelta(t, summary.TotalCost, byDay, 0.20)

	for i := 1; i < len(summary.CostByAgent); i++ {
		assert.GreaterOrEqual(t, summary.CostByAgent[i-1].TotalCost, summary.CostByAgent[i].TotalCost)
	}
	for i := 1; i < len(summary.DailyCosts); i++ {
		assert.Less(t, summary.DailyCosts[i-1].Date, summary.DailyCosts[i].Date)
	}
}

func TestTimeSeriesDense(t *testing.T) {
	d := testDataset(t)

	series := d.TimeSeries(30, "")
	require.Len(t, series, 30)
	for i, p := range series {
		assert.Positive(t, p.Conversations)
		if i > 0 {
			assert.Less(t, series[i-1].Date, p.Date)
		}
	}
	assert.Equal(t, testNow.Format("2006-01-02"), series[len(series)-1].Date)

	short := d.TimeSeries(7, model.CategoryExecutive)
	require.Len(t, short, 7)

	// A category with no agents yields zero-valued buckets, not a short series.
	empty := d.TimeSeries(7, model.AgentCategory("unknown"))
	require.Len(t, empty, 7)
	for _, p := range empty {
		assert.Zero(t, p.Conversations)
		assert.Zero(t, p.SuccessRate)
	}
}

func TestTransactionProperties(t *testing.T) {
	d := testDataset(t)

	require.NotEmpty(t, d.Transactions)
	for i, tx := range d.Transactions {
		agent, ok := d.AgentByID(tx.AgentID)
		require.True(t, ok)
		assert.Equal(t, agent.Name, tx.AgentName)
		assert.True(t, agent.DeployedOn(tx.Platform), "transaction %s on undeployed platform", tx.ID)

		assert.GreaterOrEqual(t, tx.ConfidenceScore, 65)
		assert.LessOrEqual(t, tx.ConfidenceScore, 98)
		assert.GreaterOrEqual(t, len(tx.Reasoning), 3)
		assert.LessOrEqual(t, len(tx.Reasoning), 5)
		assert.NotEmpty(t, tx.Decision)
		assert.NotContains(t, tx.Decision, "{price}")

		if tx.Outcome == model.OutcomeEscalated {
			assert.True(t, tx.HumanOverrideRequired)
		}
		if tx.HumanOverrideRequired {
			assert.NotEmpty(t, tx.OverrideReason)
		} else {
			assert.Empty(t, tx.OverrideReason)
		}

		if i > 0 {
			assert.False(t, tx.Timestamp.After(d.Transactions[i-1].Timestamp))
		}
	}
}

func TestTransactionStats(t *testing.T) {
	d := testDataset(t)

	stats := d.TransactionStats()
	assert.Equal(t, len(d.Transactions), stats.TotalTransactions)
	assert.GreaterOrEqual(t, stats.SuccessRate, 0.0)
	assert.LessOrEqual(t, stats.SuccessRate, 1.0)
	assert.Positive(t, stats.TotalSavings)
	assert.Positive(t, stats.TotalCost)
}

func TestUsersAndAuditLogs(t *testing.T) {
	d := testDataset(t)

	require.Len(t, d.Users, 10)
	roles := map[model.UserRole]int{}
	for _, u := range d.Users {
		roles[u.Role]++
		assert.Contains(t, u.Email, "@retailco.co.nz")
	}
	assert.Equal(t, 2, roles[model.RoleAdmin])
	assert.Equal(t, 4, roles[model.RoleOperator])
	assert.Equal(t, 4, roles[model.RoleViewer])

	actions := map[string]bool{}
	for _, a := range auditActions {
		actions[a] = true
	}

	for i, l := range d.AuditLogs {
		assert.True(t, actions[l.Action], "unknown action %s", l.Action)
		_, ok := d.UserByID(l.UserID)
		require.True(t, ok)

		switch l.Resource {
		case "agent":
			_, ok := d.AgentByID(l.ResourceID)
			assert.True(t, ok)
			assert.Contains(t, l.Details, "agentName")
		case "incident":
			_, ok := d.IncidentByID(l.ResourceID)
			assert.True(t, ok)
			assert.Contains(t, l.Details, "incidentTitle")
		case "store":
			_, ok := d.StoreByID(l.ResourceID)
			assert.True(t, ok)
			assert.Contains(t, l.Details, "region")
		case "user":
			assert.Equal(t, l.UserID, l.ResourceID)
			assert.Contains(t, l.Details, "ip")
		}

		if i > 0 {
			assert.False(t, l.Timestamp.After(d.AuditLogs[i-1].Timestamp))
		}
	}
}

func TestFilterAuditLogs(t *testing.T) {
	d := testDataset(t)

	logins := d.FilterAuditLogs(AuditFilter{Action: "user.login"})
	for _, l := range logins {
		assert.Equal(t, "user.login", l.Action)
	}

	byUser := d.FilterAuditLogs(AuditFilter{UserID: d.Users[0].ID})
	for _, l := range byUser {
		assert.Equal(t, d.Users[0].ID, l.UserID)
	}
}

func TestAgentFilters(t *testing.T) {
	d := testDataset(t)

	active := d.FilterAgents(AgentFilter{Status: model.StatusActive})
	for _, a := range active {
		assert.Equal(t, model.StatusActive, a.Status)
	}

	crm := d.AgentsByPlatform(model.PlatformCRM)
	for _, a := range crm {
		assert.True(t, a.DeployedOn(model.PlatformCRM))
	}

	groups := d.AgentCategories()
	require.Len(t, groups, 5)
	total := 0
	for _, g := range groups {
		assert.Len(t, g.Agents, g.Count)
		total += g.Count
	}
	assert.Equal(t, 21, total)
}

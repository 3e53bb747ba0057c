package dataset

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/csdsc-cmd/Retail-Agents-Portal/internal/model"
	"github.com/csdsc-cmd/Retail-Agents-Portal/internal/seeded"
)

// categoryDataSources names the systems each agent category reads from.
var categoryDataSources = map[model.AgentCategory][]string{
	model.CategoryInventory: {
		"D365 Inventory Management",
		"Warehouse Management System",
		"POS Transaction History",
		"Supplier Portal Data",
		"Demand Planning Module",
	},
	model.CategoryPricing: {
		"D365 Pricing Engine",
		"Competitor Price Database",
		"Margin Analysis Reports",
		"Promotional Calendar",
		"Sales History Analytics",
	},
	model.CategoryStoreOps: {
		"D365 Human Resources",
		"Traffic Counter System",
		"Task Management System",
		"Equipment Monitoring IoT",
		"Compliance Audit Database",
	},
	model.CategoryCustomerService: {
		"D365 CRM Customer Records",
		"Returns Authorization System",
		"Customer Feedback Portal",
		"Loyalty Program Database",
		"Service Ticket History",
	},
	model.CategoryExecutive: {
		"D365 Financial Reporting",
		"Cross-Store Analytics",
		"Executive Dashboard Feeds",
		"KPI Aggregation System",
		"Alert Management Console",
	},
}

// categoryBusinessRules names the policies each category decides under.
var categoryBusinessRules = map[model.AgentCategory][]string{
	model.CategoryInventory: {
		"Reorder when stock < 15% of par level",
		"Priority restocking for high-velocity SKUs",
		"Variance threshold: 2% for audit flagging",
		"Seasonal demand multiplier applied",
		"Safety stock buffer calculation",
	},
	model.CategoryPricing: {
		"Margin floor: 25% minimum maintained",
		"Competitor match within 5% allowed",
		"Promotion cannibalization check required",
		"Markdown cadence: 10% weekly maximum",
		"Price elasticity threshold applied",
	},
	model.CategoryStoreOps: {
		"Minimum staffing ratio: 1:150 traffic",
		"Queue alert at 5+ minute wait time",
		"Compliance check frequency: daily",
		"Maintenance SLA: 24hr response critical",
		"Labor cost cap: 18% of revenue",
	},
	model.CategoryCustomerService: {
		"Return window: 30 days with receipt",
		"Refund approval: manager for >$500",
		"Response SLA: 4 hours first contact",
		"Loyalty tier benefits applied automatically",
		"Escalation path defined per issue type",
	},
	model.CategoryExecutive: {
		"Alert threshold: 10% variance from target",
		"Escalation SLA: 2 hours for critical",
		"Daily summary deadline: 7:00 AM",
		"Cross-store comparison: weekly cadence",
		"Financial close reporting: monthly",
	},
}

// reasoningTemplates holds per-event reasoning steps. Placeholders in braces
// get fresh random values on every use.
var reasoningTemplates = map[model.RetailEventType][]string{
	model.EventInventoryDiscrepancy: {
		"Detected variance of {variance}% between system and physical count",
		"Cross-referenced with recent POS transactions for reconciliation",
		"Checked for pending transfers that may explain discrepancy",
		"Validated against supplier delivery records",
		"Flagged for investigation based on materiality threshold",
	},
	model.EventStockoutAlert: {
		"Current stock level at {level}% of par",
		"Analyzed historical demand patterns for forecast",
		"Calculated lead time from preferred supplier",
		"Recommended reorder quantity based on demand forecast",
		"Checked alternative fulfillment options",
	},
	model.EventPriceOverride: {
		"Analyzed competitor pricing data for {category}",
		"Calculated margin impact of proposed change",
		"Verified against minimum margin requirements",
		"Assessed price elasticity for demand impact",
		"Recommended optimal price point",
	},
	model.EventPromotionPerformance: {
		"Measured promotional lift vs. baseline sales",
		"Calculated cannibalization effect on related products",
		"Assessed margin dilution against targets",
		"Compared performance to historical promotions",
		"Generated optimization recommendations",
	},
	model.EventReturnSpike: {
		"Detected {percentage}% increase in returns for category",
		"Analyzed return reasons for pattern identification",
		"Cross-referenced with product quality reports",
		"Identified potential process improvement opportunities",
		"Flagged for quality team review",
	},
	model.EventCustomerComplaint: {
		"Categorized complaint type: {type}",
		"Matched to customer history for context",
		"Identified root cause from pattern analysis",
		"Generated resolution options based on policy",
		"Calculated customer lifetime value for prioritization",
	},
	model.EventPolicyViolation: {
		"Detected deviation from standard operating procedure",
		"Cross-referenced with compliance requirements",
		"Assessed risk level of violation",
		"Generated corrective action recommendation",
		"Scheduled follow-up verification",
	},
	model.EventExecutiveEscalation: {
		"Aggregated critical alerts from all systems",
		"Prioritized based on business impact",
		"Generated executive summary with key metrics",
		"Recommended response actions with timeline",
		"Prepared stakeholder notification list",
	},
	model.EventRoutineOperation: {
		"Executed scheduled operational task",
		"Verified data integrity across systems",
		"Generated standard operational report",
		"Confirmed alignment with expected parameters",
		"Logged completion for audit trail",
	},
	model.EventDemandForecast: {
		"Analyzed historical sales data for patterns",
		"Applied seasonal adjustment factors",
		"Incorporated promotional calendar impact",
		"Validated against external market signals",
		"Generated confidence intervals for forecast",
	},
	model.EventMarginOptimization: {
		"Calculated current margin performance",
		"Identified margin improvement opportunities",
		"Modeled price/volume trade-offs",
		"Recommended pricing adjustments",
		"Projected financial impact of changes",
	},
	model.EventStaffScheduling: {
		"Analyzed predicted traffic patterns",
		"Matched staffing to service level requirements",
		"Optimized for labor cost constraints",
		"Balanced employee preferences where possible",
		"Generated schedule with coverage metrics",
	},
	model.EventCustomerResolution: {
		"Retrieved full customer interaction history",
		"Identified issue type and resolution path",
		"Applied loyalty tier benefits and policies",
		"Generated personalized resolution offer",
		"Scheduled follow-up for satisfaction confirmation",
	},
}

var decisionTemplates = map[model.RetailEventType][]string{
	model.EventInventoryDiscrepancy: {
		"Flag for physical recount and investigation",
		"Adjust system inventory to match physical count",
		"Escalate to loss prevention for review",
		"Schedule audit for affected area",
	},
	model.EventStockoutAlert: {
		"Initiate emergency reorder from primary supplier",
		"Transfer stock from nearby location",
		"Activate alternative supplier",
		"Schedule expedited delivery",
	},
	model.EventPriceOverride: {
		"Approve price adjustment to ${price}",
		"Recommend price match to competitor",
		"Maintain current pricing based on margin analysis",
		"Implement temporary promotional pricing",
	},
	model.EventPromotionPerformance: {
		"Continue promotion with current parameters",
		"Recommend early termination due to poor ROI",
		"Extend promotion based on strong performance",
		"Adjust promotional mechanics for optimization",
	},
	model.EventReturnSpike: {
		"Alert quality team for product inspection",
		"Implement enhanced return verification",
		"Generate supplier quality report",
		"Recommend process improvement",
	},
	model.EventCustomerComplaint: {
		"Issue refund and courtesy credit",
		"Escalate to supervisor for resolution",
		"Provide product replacement",
		"Schedule callback from specialist team",
	},
	model.EventPolicyViolation: {
		"Issue corrective action notification",
		"Schedule retraining for affected staff",
		"Update procedure documentation",
		"Implement additional controls",
	},
	model.EventExecutiveEscalation: {
		"Notify executive team immediately",
		"Convene emergency response meeting",
		"Activate crisis management protocol",
		"Prepare board notification if required",
	},
	model.EventRoutineOperation: {
		"Complete standard operational cycle",
		"Log results and close task",
		"Schedule next occurrence",
		"Generate summary report",
	},
	model.EventDemandForecast: {
		"Update inventory planning parameters",
		"Adjust safety stock levels",
		"Notify procurement of forecast changes",
		"Revise promotional calendar if needed",
	},
	model.EventMarginOptimization: {
		"Implement recommended price changes",
		"Defer changes pending further analysis",
		"Escalate for management approval",
		"Schedule A/B test for validation",
	},
	model.EventStaffScheduling: {
		"Publish optimized schedule",
		"Request additional hours approval",
		"Activate on-call staff pool",
		"Adjust service level expectations",
	},
	model.EventCustomerResolution: {
		"Complete resolution and close case",
		"Escalate to specialist team",
		"Issue compensation as authorized",
		"Schedule follow-up interaction",
	},
}

var overrideReasons = []string{
	"Exceeds automated authorization threshold",
	"Unusual pattern requires human verification",
	"Policy exception requested",
	"Customer escalation pathway",
	"High-value decision requiring approval",
}

// transactionEventPool is the subset of event types transactions draw from.
var transactionEventPool = []model.RetailEventType{
	model.EventInventoryDiscrepancy,
	model.EventStockoutAlert,
	model.EventPriceOverride,
	model.EventPromotionPerformance,
	model.EventCustomerComplaint,
	model.EventRoutineOperation,
	model.EventDemandForecast,
	model.EventCustomerResolution,
}

// fillPlaceholders substitutes a fresh random value for each placeholder the
// template actually contains.
func fillPlaceholders(src *seeded.Source, template string) string {
	replacements := []struct {
		token string
		value func() string
	}{
		{"{variance}", func() string { return fmt.Sprintf("%.1f", src.FloatBetween(2, 15, 1)) }},
		{"{level}", func() string { return fmt.Sprintf("%d", src.IntBetween(5, 20)) }},
		{"{category}", func() string {
			return seeded.Pick(src, []string{"Electronics", "Apparel", "Home Goods", "Groceries"})
		}},
		{"{percentage}", func() string { return fmt.Sprintf("%d", src.IntBetween(15, 45)) }},
		{"{type}", func() string {
			return seeded.Pick(src, []string{"Product Quality", "Service Issue", "Delivery Problem", "Pricing Concern"})
		}},
		{"{price}", func() string { return fmt.Sprintf("%.2f", src.FloatBetween(10, 500, 2)) }},
	}
	for _, r := range replacements {
		if strings.Contains(template, r.token) {
			template = strings.Replace(template, r.token, r.value(), 1)
		}
	}
	return template
}

func generateReasoning(src *seeded.Source, eventType model.RetailEventType) []string {
	templates := reasoningTemplates[eventType]
	selected := seeded.PickN(src, templates, src.IntBetween(3, 5))
	out := make([]string, 0, len(selected))
	for _, t := range selected {
		out = append(out, fillPlaceholders(src, t))
	}
	return out
}

func generateInputData(src *seeded.Source, now time.Time, eventType model.RetailEventType) map[string]any {
	data := map[string]any{
		"requestId": src.UUID(),
		"timestamp": src.Recent(now, 1).Format(time.RFC3339),
		"source":    seeded.Pick(src, []string{"Automated Trigger", "Scheduled Task", "User Request", "System Alert"}),
	}

	switch eventType {
	case model.EventInventoryDiscrepancy:
		data["sku"] = strings.ToUpper(src.AlphaNum(8))
		data["systemQuantity"] = src.IntBetween(50, 200)
		data["physicalCount"] = src.IntBetween(40, 190)
		data["category"] = seeded.Pick(src, []string{"Electronics", "Apparel", "Home Goods", "Groceries"})
	case model.EventStockoutAlert:
		data["sku"] = strings.ToUpper(src.AlphaNum(8))
		data["currentStock"] = src.IntBetween(5, 30)
		data["parLevel"] = src.IntBetween(100, 200)
		data["dailyDemand"] = src.IntBetween(10, 50)
	case model.EventPriceOverride:
		data["productId"] = src.AlphaNum(10)
		data["currentPrice"] = src.FloatBetween(20, 200, 2)
		data["competitorPrice"] = src.FloatBetween(15, 190, 2)
		data["costPrice"] = src.FloatBetween(10, 100, 2)
	case model.EventCustomerComplaint:
		data["customerId"] = src.UUID()
		data["orderNumber"] = "ORD-" + src.Digits(8)
		data["complaintType"] = seeded.Pick(src, []string{"Quality", "Service", "Delivery", "Price"})
		data["loyaltyTier"] = seeded.Pick(src, []string{"Bronze", "Silver", "Gold", "Platinum"})
	}
	return data
}

func generateAgentTransactions(src *seeded.Source, now time.Time, agent model.Agent, stores []model.Store) []model.AgentTransactionLog {
	count := src.IntBetween(10, 30)
	logs := make([]model.AgentTransactionLog, 0, count)

	deployed := []model.Platform{}
	for _, p := range agent.Platforms {
		if p.IsDeployed {
			deployed = append(deployed, p.Platform)
		}
	}

	for i := 0; i < count; i++ {
		eventType := seeded.Pick(src, transactionEventPool)

		platform := model.PlatformFinOps
		if len(deployed) > 0 {
			platform = seeded.Pick(src, deployed)
		}
		store := seeded.Pick(src, stores)

		outcome := seeded.Weighted(src, []seeded.Choice[model.TransactionOutcome]{
			{Value: model.OutcomeSuccess, Weight: 75},
			{Value: model.OutcomePartial, Weight: 15},
			{Value: model.OutcomeEscalated, Weight: 8},
			{Value: model.OutcomeFailed, Weight: 2},
		})
		override := outcome == model.OutcomeEscalated || src.Bool(0.1)

		log := model.AgentTransactionLog{
			ID:                    src.UUID(),
			AgentID:               agent.ID,
			AgentName:             agent.Name,
			Timestamp:             src.Recent(now, 7),
			TransactionType:       eventType,
			Platform:              platform,
			StoreID:               store.ID,
			StoreName:             store.Name,
			InputData:             generateInputData(src, now, eventType),
			Reasoning:             generateReasoning(src, eventType),
			Decision:              fillPlaceholders(src, seeded.Pick(src, decisionTemplates[eventType])),
			ConfidenceScore:       src.IntBetween(65, 98),
			Outcome:               outcome,
			CostSaved:             seeded.Round(agent.Pricing.SavingsPerTransaction*src.Float64Between(0.7, 1.3), 2),
			TransactionCost:       seeded.Round(agent.Pricing.CostPerTransaction*src.Float64Between(0.9, 1.1), 2),
			DataSourcesUsed:       seeded.PickN(src, categoryDataSources[agent.Category], src.IntBetween(2, 4)),
			RulesApplied:          seeded.PickN(src, categoryBusinessRules[agent.Category], src.IntBetween(1, 3)),
			HumanOverrideRequired: override,
		}
		if override {
			log.OverrideReason = seeded.Pick(src, overrideReasons)
		}
		logs = append(logs, log)
	}
	return logs
}

func generateTransactions(src *seeded.Source, now time.Time, agents []model.Agent, stores []model.Store) []model.AgentTransactionLog {
	logs := []model.AgentTransactionLog{}
	for _, agent := range agents {
		logs = append(logs, generateAgentTransactions(src, now, agent, stores)...)
	}
	sort.SliceStable(logs, func(i, j int) bool {
		return logs[i].Timestamp.After(logs[j].Timestamp)
	})
	return logs
}

// TransactionFilter narrows FilterTransactions results. Zero-valued fields
// are ignored.
type TransactionFilter struct {
	AgentID  string
	Platform model.Platform
	Outcome  model.TransactionOutcome
}

// FilterTransactions returns transaction logs matching every set filter
// field, most recent first.
func (d *Dataset) FilterTransactions(f TransactionFilter) []model.AgentTransactionLog {
	out := []model.AgentTransactionLog{}
	for _, t := range d.Transactions {
		if f.AgentID != "" && t.AgentID != f.AgentID {
			continue
		}
		if f.Platform != "" && t.Platform != f.Platform {
			continue
		}
		if f.Outcome != "" && t.Outcome != f.Outcome {
			continue
		}
		out = append(out, t)
	}
	return out
}

// TransactionByID returns the transaction log with the given ID, or false
// when unknown.
func (d *Dataset) TransactionByID(id string) (model.AgentTransactionLog, bool) {
	for _, t := range d.Transactions {
		if t.ID == id {
			return t, true
		}
	}
	return model.AgentTransactionLog{}, false
}

// TransactionsByAgent returns an agent's transaction logs, most recent first.
func (d *Dataset) TransactionsByAgent(agentID string) []model.AgentTransactionLog {
	return d.FilterTransactions(TransactionFilter{AgentID: agentID})
}

// TransactionStats rolls up the transaction log. Rates are fractions rounded
// to 2 decimals.
func (d *Dataset) TransactionStats() model.TransactionStats {
	total := len(d.Transactions)
	if total == 0 {
		return model.TransactionStats{}
	}
	var successful, escalated int
	var savings, cost float64
	for _, t := range d.Transactions {
		if t.Outcome == model.OutcomeSuccess {
			successful++
		}
		if t.Outcome == model.OutcomeEscalated {
			escalated++
		}
		savings += t.CostSaved
		cost += t.TransactionCost
	}
	return model.TransactionStats{
		TotalTransactions: total,
		SuccessRate:       seeded.Round(float64(successful)/float64(total), 2),
		TotalSavings:      seeded.Round(savings, 2),
		TotalCost:         seeded.Round(cost, 2),
		EscalationRate:    seeded.Round(float64(escalated)/float64(total), 2),
	}
}

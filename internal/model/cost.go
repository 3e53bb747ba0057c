package model

import "time"

// CostRecord is the token cost derived from one DailyMetrics record using the
// owning agent's model price table. There is exactly one cost record per
// metrics record, matched on (agentId, date).
type CostRecord struct {
	ID           string    `json:"id"`
	AgentID      string    `json:"agentId"`
	Date         time.Time `json:"date"`
	InputTokens  int       `json:"inputTokens"`
	OutputTokens int       `json:"outputTokens"`
	TotalCost    float64   `json:"totalCost"`
	Model        string    `json:"model"`
}

// AgentCost is one agent's share of a cost summary.
type AgentCost struct {
	AgentID   string        `json:"agentId"`
	AgentName string        `json:"agentName"`
	Category  AgentCategory `json:"category,omitempty"`
	TotalCost float64       `json:"totalCost"`
}

// DailyCost is one calendar day's total in a cost summary.
type DailyCost struct {
	Date string  `json:"date"`
	Cost float64 `json:"cost"`
}

// CostSummary groups cost records by model, agent, category, and day. Every
// grouped total is rounded to 2 decimals from the unrounded running sum, not
// accumulated from pre-rounded partials.
type CostSummary struct {
	TotalCost      float64                   `json:"totalCost"`
	CostByModel    map[string]float64        `json:"costByModel"`
	CostByAgent    []AgentCost               `json:"costByAgent"`
	CostByCategory map[AgentCategory]float64 `json:"costByCategory"`
	DailyCosts     []DailyCost               `json:"dailyCosts"`
}

// CategoryCostSummary is the per-category variant of CostSummary.
type CategoryCostSummary struct {
	TotalCost   float64     `json:"totalCost"`
	CostByAgent []AgentCost `json:"costByAgent"`
	DailyCosts  []DailyCost `json:"dailyCosts"`
}

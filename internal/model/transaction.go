package model

import "time"

// TransactionOutcome is the result of an agent transaction.
type TransactionOutcome string

const (
	OutcomeSuccess   TransactionOutcome = "success"
	OutcomePartial   TransactionOutcome = "partial"
	OutcomeFailed    TransactionOutcome = "failed"
	OutcomeEscalated TransactionOutcome = "escalated"
)

// AgentTransactionLog is an explainability record: what data an agent
// received, how it reasoned, what it decided, and what the outcome was.
// HumanOverrideRequired is always true for escalated outcomes.
type AgentTransactionLog struct {
	ID              string             `json:"id"`
	AgentID         string             `json:"agentId"`
	AgentName       string             `json:"agentName"`
	Timestamp       time.Time          `json:"timestamp"`
	TransactionType RetailEventType    `json:"transactionType"`
	Platform        Platform           `json:"platform"`
	StoreID         string             `json:"storeId,omitempty"`
	StoreName       string             `json:"storeName,omitempty"`
	InputData       map[string]any     `json:"inputData"`
	Reasoning       []string           `json:"reasoning"`
	Decision        string             `json:"decision"`
	ConfidenceScore int                `json:"confidenceScore"`
	Outcome         TransactionOutcome `json:"outcome"`
	CostSaved       float64            `json:"costSaved"`
	TransactionCost float64            `json:"transactionCost"`
	DataSourcesUsed []string           `json:"dataSourcesUsed"`
	RulesApplied    []string           `json:"rulesApplied"`

	HumanOverrideRequired bool   `json:"humanOverrideRequired"`
	OverrideReason        string `json:"overrideReason,omitempty"`
}

// TransactionStats is the fleet-wide transaction roll-up.
type TransactionStats struct {
	TotalTransactions int     `json:"totalTransactions"`
	SuccessRate       float64 `json:"successRate"`
	TotalSavings      float64 `json:"totalSavings"`
	TotalCost         float64 `json:"totalCost"`
	EscalationRate    float64 `json:"escalationRate"`
}

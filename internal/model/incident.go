package model

import "time"

// EventSeverity is the five-level severity scale shared by incidents,
// business contexts, and alerts.
type EventSeverity string

const (
	SeverityCritical EventSeverity = "critical"
	SeverityHigh     EventSeverity = "high"
	SeverityMedium   EventSeverity = "medium"
	SeverityLow      EventSeverity = "low"
	SeverityInfo     EventSeverity = "info"
)

// IncidentStatus tracks the lifecycle of an incident.
type IncidentStatus string

const (
	IncidentActive        IncidentStatus = "active"
	IncidentInvestigating IncidentStatus = "investigating"
	IncidentResolved      IncidentStatus = "resolved"
)

// RetailEventType classifies the business event behind a conversation,
// transaction, or incident timeline entry.
type RetailEventType string

const (
	EventInventoryDiscrepancy RetailEventType = "inventory-discrepancy"
	EventPriceOverride        RetailEventType = "price-override"
	EventReturnSpike          RetailEventType = "return-spike"
	EventStockoutAlert        RetailEventType = "stockout-alert"
	EventCustomerComplaint    RetailEventType = "customer-complaint"
	EventPromotionPerformance RetailEventType = "promotion-performance"
	EventPolicyViolation      RetailEventType = "policy-violation"
	EventExecutiveEscalation  RetailEventType = "executive-escalation"
	EventRoutineOperation     RetailEventType = "routine-operation"
	EventDemandForecast       RetailEventType = "demand-forecast"
	EventMarginOptimization   RetailEventType = "margin-optimization"
	EventStaffScheduling      RetailEventType = "staff-scheduling"
	EventCustomerResolution   RetailEventType = "customer-resolution"
)

// IncidentTimelineEvent is one agent-attributed step in an incident
// narrative. Events within a timeline are ordered chronologically ascending
// as authored.
type IncidentTimelineEvent struct {
	ID            string          `json:"id"`
	Timestamp     time.Time       `json:"timestamp"`
	AgentID       string          `json:"agentId"`
	AgentName     string          `json:"agentName"`
	AgentCategory AgentCategory   `json:"agentCategory"`
	EventType     RetailEventType `json:"eventType"`
	Description   string          `json:"description"`
}

// Incident is a hand-curated multi-agent business event. RelatedAgentIDs is
// always derived from the timeline (one entry per timeline event, duplicates
// included); it is never independently settable.
type Incident struct {
	ID              string                  `json:"id"`
	Title           string                  `json:"title"`
	Description     string                  `json:"description"`
	Severity        EventSeverity           `json:"severity"`
	Status          IncidentStatus          `json:"status"`
	StartedAt       time.Time               `json:"startedAt"`
	ResolvedAt      *time.Time              `json:"resolvedAt,omitempty"`
	AffectedStores  []Store                 `json:"affectedStores"`
	RelatedAgentIDs []string                `json:"relatedAgentIds"`
	Timeline        []IncidentTimelineEvent `json:"timeline"`
	FinancialImpact *float64                `json:"financialImpact,omitempty"`
}

// Involves reports whether the incident's related-agent set contains agentID.
func (i Incident) Involves(agentID string) bool {
	for _, id := range i.RelatedAgentIDs {
		if id == agentID {
			return true
		}
	}
	return false
}

// IncidentView is the shape incidents are served in: store names instead of
// full store records, deduplicated affected categories, humanized timeline
// titles, and a rough transaction-count estimate of the financial impact.
type IncidentView struct {
	ID                 string              `json:"id"`
	Title              string              `json:"title"`
	Description        string              `json:"description"`
	Severity           EventSeverity       `json:"severity"`
	Status             IncidentStatus      `json:"status"`
	StartedAt          time.Time           `json:"startedAt"`
	ResolvedAt         *time.Time          `json:"resolvedAt,omitempty"`
	AffectedStores     []string            `json:"affectedStores"`
	AffectedCategories []AgentCategory     `json:"affectedCategories"`
	RelatedAgentIDs    []string            `json:"relatedAgentIds"`
	Timeline           []IncidentViewEvent `json:"timeline"`
	FinancialImpact    *float64            `json:"financialImpact,omitempty"`
	EstimatedImpact    *IncidentImpact     `json:"estimatedImpact,omitempty"`
}

// IncidentViewEvent is a timeline event in presentation form.
type IncidentViewEvent struct {
	ID          string        `json:"id"`
	Timestamp   time.Time     `json:"timestamp"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	AgentID     string        `json:"agentId"`
	AgentName   string        `json:"agentName"`
	Category    AgentCategory `json:"category"`
	Severity    EventSeverity `json:"severity"`
}

// IncidentImpact estimates the blast radius of an incident's financial loss.
type IncidentImpact struct {
	FinancialLoss        float64 `json:"financialLoss"`
	AffectedTransactions int     `json:"affectedTransactions"`
}

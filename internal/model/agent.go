package model

import "time"

// AgentStatus represents the lifecycle status of an agent.
type AgentStatus string

const (
	StatusActive   AgentStatus = "active"
	StatusInactive AgentStatus = "inactive"
	StatusError    AgentStatus = "error"
)

// AgentCategory is one of the five fixed retail business domains an agent
// belongs to. Categories are never invented or renamed at runtime.
type AgentCategory string

const (
	CategoryInventory       AgentCategory = "inventory-intelligence"
	CategoryPricing         AgentCategory = "pricing-promotions"
	CategoryStoreOps        AgentCategory = "store-operations"
	CategoryCustomerService AgentCategory = "customer-service-returns"
	CategoryExecutive       AgentCategory = "executive-insights"
)

// Categories returns the fixed category enumeration in canonical order.
func Categories() []AgentCategory {
	return []AgentCategory{
		CategoryInventory,
		CategoryPricing,
		CategoryStoreOps,
		CategoryCustomerService,
		CategoryExecutive,
	}
}

// Platform is one of the three fixed deployment targets.
type Platform string

const (
	PlatformFinOps          Platform = "finops"
	PlatformCRM             Platform = "crm"
	PlatformBusinessCentral Platform = "business-central"
)

// Platforms returns the fixed platform enumeration in canonical order.
func Platforms() []Platform {
	return []Platform{PlatformFinOps, PlatformCRM, PlatformBusinessCentral}
}

// ValidPlatform reports whether p names a known platform.
func ValidPlatform(p Platform) bool {
	switch p {
	case PlatformFinOps, PlatformCRM, PlatformBusinessCentral:
		return true
	}
	return false
}

// AgentConfig holds the behavioral configuration of an agent.
type AgentConfig struct {
	Temperature  float64 `json:"temperature"`
	MaxTokens    int     `json:"maxTokens"`
	SystemPrompt string  `json:"systemPrompt"`
}

// AgentMetricsSummary is the rolled-up runtime summary attached to an agent.
type AgentMetricsSummary struct {
	TotalConversations int     `json:"totalConversations"`
	AvgResponseTime    int     `json:"avgResponseTime"`
	SuccessRate        float64 `json:"successRate"`
}

// TransactionPricing describes the per-transaction economics of an agent.
type TransactionPricing struct {
	CostPerTransaction    float64 `json:"costPerTransaction"`
	SavingsPerTransaction float64 `json:"savingsPerTransaction"`
	AvgTransactionsPerDay int     `json:"avgTransactionsPerDay"`
}

// SavingsBreakdown is the derived net value by time period. Each period is
// rounded to 2 decimal places independently of the others.
type SavingsBreakdown struct {
	Daily   float64 `json:"daily"`
	Weekly  float64 `json:"weekly"`
	Monthly float64 `json:"monthly"`
	Yearly  float64 `json:"yearly"`
}

// Add returns the field-wise sum of two breakdowns.
func (s SavingsBreakdown) Add(o SavingsBreakdown) SavingsBreakdown {
	return SavingsBreakdown{
		Daily:   s.Daily + o.Daily,
		Weekly:  s.Weekly + o.Weekly,
		Monthly: s.Monthly + o.Monthly,
		Yearly:  s.Yearly + o.Yearly,
	}
}

// PlatformDeployment records whether (and since when) an agent is deployed on
// a platform. TransactionCount is a rough per-platform share of a ~30-day
// volume and is only set for deployed platforms.
type PlatformDeployment struct {
	Platform         Platform   `json:"platform"`
	IsDeployed       bool       `json:"isDeployed"`
	DeployedAt       *time.Time `json:"deployedAt,omitempty"`
	TransactionCount *int       `json:"transactionCount,omitempty"`
}

// Agent is a simulated automation unit. Agents are created in bulk at process
// start from the fixed definition table and are immutable thereafter.
type Agent struct {
	ID          string               `json:"id"`
	Name        string               `json:"name"`
	Description string               `json:"description"`
	Model       string               `json:"model"`
	Status      AgentStatus          `json:"status"`
	Category    AgentCategory        `json:"category"`
	CreatedAt   time.Time            `json:"createdAt"`
	LastActive  time.Time            `json:"lastActiveAt"`
	Config      AgentConfig          `json:"config"`
	Metrics     AgentMetricsSummary  `json:"metrics"`
	Pricing     TransactionPricing   `json:"pricing"`
	Savings     SavingsBreakdown     `json:"savings"`
	Platforms   []PlatformDeployment `json:"platforms"`
	ROIMetric   string               `json:"roiMetric"`
}

// DeployedOn reports whether the agent is deployed on the given platform.
func (a Agent) DeployedOn(p Platform) bool {
	for _, d := range a.Platforms {
		if d.Platform == p && d.IsDeployed {
			return true
		}
	}
	return false
}

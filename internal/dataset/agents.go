package dataset

import (
	"time"

	"github.com/csdsc-cmd/Retail-Agents-Portal/internal/model"
	"github.com/csdsc-cmd/Retail-Agents-Portal/internal/seeded"
)

var maxTokenOptions = []int{2048, 4096, 8192}

// fallbackModels backs definitions that leave PreferredModel empty. The draw
// only happens for such definitions, so the stream is unchanged for the rest.
var fallbackModels = []string{"gpt-4o", "gpt-4o-mini", "gpt-3.5-turbo"}

// calculateSavings derives the per-period net value of an agent. Each period
// is rounded from the unrounded daily figure, never from a rounded one.
func calculateSavings(p model.TransactionPricing) model.SavingsBreakdown {
	net := p.SavingsPerTransaction - p.CostPerTransaction
	daily := net * float64(p.AvgTransactionsPerDay)
	return model.SavingsBreakdown{
		Daily:   seeded.Round(daily, 2),
		Weekly:  seeded.Round(daily*7, 2),
		Monthly: seeded.Round(daily*30, 2),
		Yearly:  seeded.Round(daily*365, 2),
	}
}

func generatePlatformDeployments(src *seeded.Source, now time.Time, def agentDefinition) []model.PlatformDeployment {
	deployments := make([]model.PlatformDeployment, 0, len(model.Platforms()))
	for _, platform := range model.Platforms() {
		isPrimary := platform == def.PrimaryPlatform
		isAdditional := false
		for _, p := range def.AdditionalPlatforms {
			if p == platform {
				isAdditional = true
			}
		}
		d := model.PlatformDeployment{
			Platform:   platform,
			IsDeployed: isPrimary || isAdditional,
		}
		if d.IsDeployed {
			deployedAt := src.Past(now, 1)
			share := 0.7
			if !isPrimary {
				share = 0.3 / float64(len(def.AdditionalPlatforms))
			}
			count := int(float64(def.AvgTransactionsPerDay) * share * float64(src.IntBetween(25, 35)))
			d.DeployedAt = &deployedAt
			d.TransactionCount = &count
		}
		deployments = append(deployments, d)
	}
	return deployments
}

func generateAgent(src *seeded.Source, now time.Time, def agentDefinition) model.Agent {
	createdAt := src.Past(now, 1)

	// Executive agents are almost always active; the rest occasionally sit
	// idle or error out.
	var status model.AgentStatus
	if def.Category == model.CategoryExecutive {
		status = seeded.Weighted(src, []seeded.Choice[model.AgentStatus]{
			{Value: model.StatusActive, Weight: 9},
			{Value: model.StatusInactive, Weight: 1},
		})
	} else {
		status = seeded.Weighted(src, []seeded.Choice[model.AgentStatus]{
			{Value: model.StatusActive, Weight: 7},
			{Value: model.StatusInactive, Weight: 2},
			{Value: model.StatusError, Weight: 1},
		})
	}

	var lastActive time.Time
	switch status {
	case model.StatusActive:
		lastActive = src.Recent(now, 1)
	case model.StatusInactive:
		lastActive = src.Recent(now, 30)
	default:
		lastActive = src.Recent(now, 7)
	}

	baseConversations := 800
	switch def.Category {
	case model.CategoryCustomerService:
		baseConversations = 2000
	case model.CategoryExecutive:
		baseConversations = 100
	}
	totalConversations := baseConversations + src.IntBetween(-300, 500)
	if totalConversations < 50 {
		totalConversations = 50
	}

	pricing := model.TransactionPricing{
		CostPerTransaction:    def.CostPerTransaction,
		SavingsPerTransaction: def.SavingsPerTransaction,
		AvgTransactionsPerDay: def.AvgTransactionsPerDay,
	}

	llmModel := def.PreferredModel
	if llmModel == "" {
		llmModel = seeded.Pick(src, fallbackModels)
	}

	return model.Agent{
		ID:          src.UUID(),
		Name:        def.Name,
		Description: def.Description,
		Model:       llmModel,
		Status:      status,
		Category:    def.Category,
		CreatedAt:   createdAt,
		LastActive:  lastActive,
		Config: model.AgentConfig{
			Temperature:  src.FloatBetween(0.3, 0.8, 1),
			MaxTokens:    seeded.Pick(src, maxTokenOptions),
			SystemPrompt: def.SystemPrompt,
		},
		Metrics: model.AgentMetricsSummary{
			TotalConversations: totalConversations,
			AvgResponseTime:    src.IntBetween(800, 2500),
			SuccessRate:        src.FloatBetween(0.88, 0.99, 2),
		},
		Pricing:   pricing,
		Savings:   calculateSavings(pricing),
		Platforms: generatePlatformDeployments(src, now, def),
		ROIMetric: def.ROIMetric,
	}
}

func generateAgents(src *seeded.Source, now time.Time) []model.Agent {
	agents := make([]model.Agent, 0, len(agentDefinitions))
	for _, def := range agentDefinitions {
		agents = append(agents, generateAgent(src, now, def))
	}
	return agents
}

// AgentFilter narrows FilterAgents results. Zero-valued fields are ignored.
type AgentFilter struct {
	Status   model.AgentStatus
	Category model.AgentCategory
	Platform model.Platform
}

// FilterAgents returns agents matching every set filter field. An unknown
// filter value simply yields an empty result.
func (d *Dataset) FilterAgents(f AgentFilter) []model.Agent {
	out := []model.Agent{}
	for _, a := range d.Agents {
		if f.Status != "" && a.Status != f.Status {
			continue
		}
		if f.Category != "" && a.Category != f.Category {
			continue
		}
		if f.Platform != "" && !a.DeployedOn(f.Platform) {
			continue
		}
		out = append(out, a)
	}
	return out
}

// AgentsByCategory returns all agents in the given category.
func (d *Dataset) AgentsByCategory(c model.AgentCategory) []model.Agent {
	return d.FilterAgents(AgentFilter{Category: c})
}

// AgentsByPlatform returns all agents deployed on the given platform.
func (d *Dataset) AgentsByPlatform(p model.Platform) []model.Agent {
	return d.FilterAgents(AgentFilter{Platform: p})
}

// CategoryGroup is one bucket of the category breakdown.
type CategoryGroup struct {
	Category model.AgentCategory `json:"category"`
	Count    int                 `json:"count"`
	Agents   []model.Agent       `json:"agents"`
}

// AgentCategories groups the fleet by category in canonical order. Every
// category appears even when empty.
func (d *Dataset) AgentCategories() []CategoryGroup {
	groups := make([]CategoryGroup, 0, len(model.Categories()))
	for _, c := range model.Categories() {
		agents := d.AgentsByCategory(c)
		groups = append(groups, CategoryGroup{Category: c, Count: len(agents), Agents: agents})
	}
	return groups
}

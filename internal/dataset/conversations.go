package dataset

import (
	"sort"
	"time"

	"github.com/csdsc-cmd/Retail-Agents-Portal/internal/model"
	"github.com/csdsc-cmd/Retail-Agents-Portal/internal/seeded"
)

// categoryEventTypes maps each agent category to the retail events its
// conversations plausibly concern.
var categoryEventTypes = map[model.AgentCategory][]model.RetailEventType{
	model.CategoryInventory: {
		model.EventStockoutAlert, model.EventInventoryDiscrepancy,
		model.EventDemandForecast, model.EventRoutineOperation,
	},
	model.CategoryPricing: {
		model.EventPriceOverride, model.EventPromotionPerformance,
		model.EventMarginOptimization, model.EventRoutineOperation,
	},
	model.CategoryStoreOps: {
		model.EventPolicyViolation, model.EventStaffScheduling,
		model.EventRoutineOperation,
	},
	model.CategoryCustomerService: {
		model.EventReturnSpike, model.EventCustomerComplaint,
		model.EventCustomerResolution, model.EventRoutineOperation,
	},
	model.CategoryExecutive: {
		model.EventExecutiveEscalation, model.EventRoutineOperation,
	},
}

// eventSeverities maps each event type to its plausible severities.
var eventSeverities = map[model.RetailEventType][]model.EventSeverity{
	model.EventInventoryDiscrepancy: {model.SeverityHigh, model.SeverityMedium},
	model.EventPriceOverride:        {model.SeverityLow, model.SeverityInfo},
	model.EventReturnSpike:          {model.SeverityMedium, model.SeverityHigh},
	model.EventStockoutAlert:        {model.SeverityMedium, model.SeverityHigh},
	model.EventCustomerComplaint:    {model.SeverityMedium, model.SeverityLow},
	model.EventPromotionPerformance: {model.SeverityMedium, model.SeverityLow, model.SeverityInfo},
	model.EventPolicyViolation:      {model.SeverityHigh, model.SeverityMedium},
	model.EventExecutiveEscalation:  {model.SeverityCritical, model.SeverityHigh},
	model.EventRoutineOperation:     {model.SeverityInfo, model.SeverityLow},
	model.EventDemandForecast:       {model.SeverityMedium, model.SeverityLow, model.SeverityInfo},
	model.EventMarginOptimization:   {model.SeverityMedium, model.SeverityLow},
	model.EventStaffScheduling:      {model.SeverityLow, model.SeverityInfo},
	model.EventCustomerResolution:   {model.SeverityMedium, model.SeverityLow, model.SeverityInfo},
}

func generateBusinessContext(src *seeded.Source, agent model.Agent, stores []model.Store, incidents []model.Incident) *model.BusinessContext {
	store := seeded.Pick(src, stores)
	eventType := seeded.Pick(src, categoryEventTypes[agent.Category])
	severity := seeded.Pick(src, eventSeverities[eventType])

	ctx := &model.BusinessContext{
		StoreID:   store.ID,
		StoreName: store.Name,
		EventType: eventType,
		Severity:  severity,
	}

	// Roughly a third of conversations by incident-involved agents reference
	// one of their incidents and carry the other participants.
	related := []model.Incident{}
	for _, inc := range incidents {
		if inc.Involves(agent.ID) {
			related = append(related, inc)
		}
	}
	if len(related) > 0 && src.Bool(0.3) {
		inc := seeded.Pick(src, related)
		ctx.IncidentID = inc.ID
		others := []string{}
		for _, id := range inc.RelatedAgentIDs {
			if id != agent.ID {
				others = append(others, id)
			}
			if len(others) == 3 {
				break
			}
		}
		ctx.RelatedAgentIDs = others
	}

	return ctx
}

func generateConversation(src *seeded.Source, now time.Time, agents []model.Agent, stores []model.Store, incidents []model.Incident) model.Conversation {
	startedAt := src.Recent(now, 30)
	isActive := src.Bool(0.05)
	agent := seeded.Pick(src, agents)

	ctx := generateBusinessContext(src, agent, stores, incidents)

	// Default tone is upbeat; incident-linked and high-severity
	// conversations skew neutral-to-negative.
	sentimentWeights := []seeded.Choice[model.Sentiment]{
		{Value: model.SentimentPositive, Weight: 6},
		{Value: model.SentimentNeutral, Weight: 3},
		{Value: model.SentimentNegative, Weight: 1},
	}
	if ctx.IncidentID != "" {
		sentimentWeights = []seeded.Choice[model.Sentiment]{
			{Value: model.SentimentPositive, Weight: 2},
			{Value: model.SentimentNeutral, Weight: 5},
			{Value: model.SentimentNegative, Weight: 3},
		}
	} else if ctx.Severity == model.SeverityCritical || ctx.Severity == model.SeverityHigh {
		sentimentWeights = []seeded.Choice[model.Sentiment]{
			{Value: model.SentimentPositive, Weight: 3},
			{Value: model.SentimentNeutral, Weight: 4},
			{Value: model.SentimentNegative, Weight: 3},
		}
	}

	status := model.ConversationActive
	var endedAt *time.Time
	if !isActive {
		status = seeded.Weighted(src, []seeded.Choice[model.ConversationStatus]{
			{Value: model.ConversationCompleted, Weight: 9},
			{Value: model.ConversationFailed, Weight: 1},
		})
		t := src.Between(startedAt, now)
		endedAt = &t
	}

	messageCount := src.IntBetween(4, 30)
	avgTokensPerMessage := src.IntBetween(50, 200)

	return model.Conversation{
		ID:              src.UUID(),
		AgentID:         agent.ID,
		UserID:          src.UUID(),
		StartedAt:       startedAt,
		EndedAt:         endedAt,
		MessageCount:    messageCount,
		TotalTokens:     messageCount * avgTokensPerMessage,
		Sentiment:       seeded.Weighted(src, sentimentWeights),
		Status:          status,
		BusinessContext: ctx,
	}
}

func generateConversations(src *seeded.Source, now time.Time, count int, agents []model.Agent, stores []model.Store, incidents []model.Incident) []model.Conversation {
	conversations := make([]model.Conversation, 0, count)
	for i := 0; i < count; i++ {
		conversations = append(conversations, generateConversation(src, now, agents, stores, incidents))
	}
	return conversations
}

// ConversationFilter narrows FilterConversations results. Zero-valued fields
// are ignored.
type ConversationFilter struct {
	AgentID    string
	Status     model.ConversationStatus
	Sentiment  model.Sentiment
	StoreID    string
	IncidentID string
	EventType  model.RetailEventType
}

// FilterConversations returns conversations matching every set filter field,
// most recently started first.
func (d *Dataset) FilterConversations(f ConversationFilter) []model.Conversation {
	out := []model.Conversation{}
	for _, c := range d.Conversations {
		if f.AgentID != "" && c.AgentID != f.AgentID {
			continue
		}
		if f.Status != "" && c.Status != f.Status {
			continue
		}
		if f.Sentiment != "" && c.Sentiment != f.Sentiment {
			continue
		}
		if f.StoreID != "" && (c.BusinessContext == nil || c.BusinessContext.StoreID != f.StoreID) {
			continue
		}
		if f.IncidentID != "" && (c.BusinessContext == nil || c.BusinessContext.IncidentID != f.IncidentID) {
			continue
		}
		if f.EventType != "" && (c.BusinessContext == nil || c.BusinessContext.EventType != f.EventType) {
			continue
		}
		out = append(out, c)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].StartedAt.After(out[j].StartedAt)
	})
	return out
}

// ConversationByID returns the conversation with the given ID, or false when
// unknown.
func (d *Dataset) ConversationByID(id string) (model.Conversation, bool) {
	for _, c := range d.Conversations {
		if c.ID == id {
			return c, true
		}
	}
	return model.Conversation{}, false
}

// ConversationsByAgent returns an agent's conversations in generation order.
func (d *Dataset) ConversationsByAgent(agentID string) []model.Conversation {
	out := []model.Conversation{}
	for _, c := range d.Conversations {
		if c.AgentID == agentID {
			out = append(out, c)
		}
	}
	return out
}

// ConversationsByIncident returns conversations referencing the incident.
func (d *Dataset) ConversationsByIncident(incidentID string) []model.Conversation {
	out := []model.Conversation{}
	for _, c := range d.Conversations {
		if c.BusinessContext != nil && c.BusinessContext.IncidentID == incidentID {
			out = append(out, c)
		}
	}
	return out
}

// ConversationsByStore returns conversations whose context names the store.
func (d *Dataset) ConversationsByStore(storeID string) []model.Conversation {
	out := []model.Conversation{}
	for _, c := range d.Conversations {
		if c.BusinessContext != nil && c.BusinessContext.StoreID == storeID {
			out = append(out, c)
		}
	}
	return out
}

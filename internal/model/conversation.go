package model

import "time"

// Sentiment classifies the overall tone of a conversation.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNeutral  Sentiment = "neutral"
	SentimentNegative Sentiment = "negative"
)

// ConversationStatus tracks whether a conversation is in flight or done.
type ConversationStatus string

const (
	ConversationActive    ConversationStatus = "active"
	ConversationCompleted ConversationStatus = "completed"
	ConversationFailed    ConversationStatus = "failed"
)

// BusinessContext links a conversation to a store, a retail event, and
// optionally the incident it participates in. A conversation may reference an
// incident only if that incident's related-agent set contains the
// conversation's agent.
type BusinessContext struct {
	StoreID         string          `json:"storeId"`
	StoreName       string          `json:"storeName"`
	EventType       RetailEventType `json:"eventType"`
	Severity        EventSeverity   `json:"severity"`
	IncidentID      string          `json:"incidentId,omitempty"`
	RelatedAgentIDs []string        `json:"relatedAgentIds,omitempty"`
}

// Conversation is one synthetic agent interaction. EndedAt is nil while the
// conversation is still active.
type Conversation struct {
	ID              string             `json:"id"`
	AgentID         string             `json:"agentId"`
	UserID          string             `json:"userId"`
	StartedAt       time.Time          `json:"startedAt"`
	EndedAt         *time.Time         `json:"endedAt"`
	MessageCount    int                `json:"messageCount"`
	TotalTokens     int                `json:"totalTokens"`
	Sentiment       Sentiment          `json:"sentiment"`
	Status          ConversationStatus `json:"status"`
	BusinessContext *BusinessContext   `json:"businessContext,omitempty"`
}

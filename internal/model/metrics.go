package model

import "time"

// DailyMetrics is one record per (agent, calendar day) for the trailing
// 30-day window. Dates are truncated to midnight. Generated once at startup
// and never mutated.
type DailyMetrics struct {
	ID                string    `json:"id"`
	AgentID           string    `json:"agentId"`
	Date              time.Time `json:"date"`
	Conversations     int       `json:"conversations"`
	AvgResponseTime   int       `json:"avgResponseTime"`
	SuccessRate       float64   `json:"successRate"`
	TotalTokensInput  int       `json:"totalTokensInput"`
	TotalTokensOutput int       `json:"totalTokensOutput"`
}

// AggregateMetrics is the fleet-wide metrics roll-up.
type AggregateMetrics struct {
	TotalConversations int     `json:"totalConversations"`
	AvgResponseTime    int     `json:"avgResponseTime"`
	AvgSuccessRate     float64 `json:"avgSuccessRate"`
	TotalTokens        int     `json:"totalTokens"`
}

// CategoryMetrics is the per-category metrics roll-up.
type CategoryMetrics struct {
	TotalConversations int     `json:"totalConversations"`
	AvgResponseTime    int     `json:"avgResponseTime"`
	AvgSuccessRate     float64 `json:"avgSuccessRate"`
	AgentCount         int     `json:"agentCount"`
}

// TimeSeriesPoint is one day's bucket in a metrics time series. Days with no
// contributing records are present with zero values rather than omitted, so a
// requested series always has a fixed length.
type TimeSeriesPoint struct {
	Date            string  `json:"date"`
	Conversations   int     `json:"conversations"`
	AvgResponseTime int     `json:"avgResponseTime"`
	SuccessRate     float64 `json:"successRate"`
}

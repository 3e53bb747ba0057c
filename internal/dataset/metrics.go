package dataset

import (
	"sort"
	"time"

	"github.com/csdsc-cmd/Retail-Agents-Portal/internal/model"
	"github.com/csdsc-cmd/Retail-Agents-Portal/internal/seeded"
)

// categoryVolumeMultipliers scales daily conversation volume by how
// customer-facing a category is.
var categoryVolumeMultipliers = map[model.AgentCategory]float64{
	model.CategoryCustomerService: 2.5,
	model.CategoryStoreOps:        1.5,
	model.CategoryInventory:       1.2,
	model.CategoryPricing:         0.8,
	model.CategoryExecutive:       0.3,
}

func weekendFactor(c model.AgentCategory) float64 {
	switch c {
	case model.CategoryCustomerService:
		return 0.7
	case model.CategoryStoreOps:
		return 0.5
	case model.CategoryExecutive:
		return 0.1
	}
	return 0.4
}

func generateDailyMetrics(src *seeded.Source, agent model.Agent, date time.Time) model.DailyMetrics {
	conversations := int(float64(src.IntBetween(15, 80)) * categoryVolumeMultipliers[agent.Category])
	if wd := date.Weekday(); wd == time.Saturday || wd == time.Sunday {
		conversations = int(float64(conversations) * weekendFactor(agent.Category))
	}
	if conversations < 1 {
		conversations = 1
	}

	// Stronger models and analytical categories run a little more reliably.
	baseSuccessRate := 0.88
	switch agent.Model {
	case "gpt-4o":
		baseSuccessRate = 0.95
	case "gpt-4o-mini":
		baseSuccessRate = 0.92
	}
	switch agent.Category {
	case model.CategoryExecutive:
		baseSuccessRate += 0.02
	case model.CategoryInventory:
		baseSuccessRate += 0.01
	}
	minRate := baseSuccessRate - 0.03
	if minRate < 0.85 {
		minRate = 0.85
	}
	maxRate := baseSuccessRate + 0.03
	if maxRate > 0.99 {
		maxRate = 0.99
	}

	baseResponseTime := 1200
	switch agent.Category {
	case model.CategoryExecutive:
		baseResponseTime = 2000
	case model.CategoryPricing:
		baseResponseTime = 1500
	case model.CategoryCustomerService:
		baseResponseTime = 1000
	}

	avgInputTokens := src.IntBetween(100, 300)
	avgOutputTokens := src.IntBetween(150, 450)

	return model.DailyMetrics{
		ID:                src.UUID(),
		AgentID:           agent.ID,
		Date:              date,
		Conversations:     conversations,
		AvgResponseTime:   src.IntBetween(baseResponseTime-300, baseResponseTime+500),
		SuccessRate:       src.FloatBetween(minRate, maxRate, 2),
		TotalTokensInput:  conversations * avgInputTokens,
		TotalTokensOutput: conversations * avgOutputTokens,
	}
}

func generateMetrics(src *seeded.Source, now time.Time, days int, agents []model.Agent) []model.DailyMetrics {
	metrics := make([]model.DailyMetrics, 0, len(agents)*days)
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	for _, agent := range agents {
		for i := 0; i < days; i++ {
			date := midnight.AddDate(0, 0, -i)
			metrics = append(metrics, generateDailyMetrics(src, agent, date))
		}
	}
	return metrics
}

// MetricsByAgent returns an agent's daily metrics in chronological order.
func (d *Dataset) MetricsByAgent(agentID string) []model.DailyMetrics {
	out := []model.DailyMetrics{}
	for _, m := range d.Metrics {
		if m.AgentID == agentID {
			out = append(out, m)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return out
}

// MetricsByCategory returns all metrics for agents in the given category.
func (d *Dataset) MetricsByCategory(c model.AgentCategory) []model.DailyMetrics {
	ids := map[string]bool{}
	for _, a := range d.AgentsByCategory(c) {
		ids[a.ID] = true
	}
	out := []model.DailyMetrics{}
	for _, m := range d.Metrics {
		if ids[m.AgentID] {
			out = append(out, m)
		}
	}
	return out
}

// AggregateMetrics rolls up the whole metrics window: conversations and
// tokens summed, response time and success rate averaged per record.
func (d *Dataset) AggregateMetrics() model.AggregateMetrics {
	if len(d.Metrics) == 0 {
		return model.AggregateMetrics{}
	}
	var conversations, responseTime, tokens int
	var successRate float64
	for _, m := range d.Metrics {
		conversations += m.Conversations
		responseTime += m.AvgResponseTime
		successRate += m.SuccessRate
		tokens += m.TotalTokensInput + m.TotalTokensOutput
	}
	n := len(d.Metrics)
	return model.AggregateMetrics{
		TotalConversations: conversations,
		AvgResponseTime:    int(float64(responseTime)/float64(n) + 0.5),
		AvgSuccessRate:     seeded.Round(successRate/float64(n), 2),
		TotalTokens:        tokens,
	}
}

// AggregateMetricsByCategory rolls up metrics per category. Every category is
// present; empty ones carry zero values with their agent count.
func (d *Dataset) AggregateMetricsByCategory() map[model.AgentCategory]model.CategoryMetrics {
	out := make(map[model.AgentCategory]model.CategoryMetrics, len(model.Categories()))
	for _, c := range model.Categories() {
		metrics := d.MetricsByCategory(c)
		cm := model.CategoryMetrics{AgentCount: len(d.AgentsByCategory(c))}
		if len(metrics) > 0 {
			var conversations, responseTime int
			var successRate float64
			for _, m := range metrics {
				conversations += m.Conversations
				responseTime += m.AvgResponseTime
				successRate += m.SuccessRate
			}
			n := len(metrics)
			cm.TotalConversations = conversations
			cm.AvgResponseTime = int(float64(responseTime)/float64(n) + 0.5)
			cm.AvgSuccessRate = seeded.Round(successRate/float64(n), 2)
		}
		out[c] = cm
	}
	return out
}

// TimeSeries buckets metrics by ISO date over the trailing window. Every
// requested day is present, zero-valued when nothing matched, oldest first.
// An empty category aggregates the whole fleet.
func (d *Dataset) TimeSeries(days int, category model.AgentCategory) []model.TimeSeriesPoint {
	type bucket struct {
		conversations int
		responseTime  int
		successRate   float64
		count         int
	}

	var ids map[string]bool
	if category != "" {
		ids = map[string]bool{}
		for _, a := range d.AgentsByCategory(category) {
			ids[a.ID] = true
		}
	}

	buckets := make(map[string]*bucket, days)
	dates := make([]string, 0, days)
	for i := 0; i < days; i++ {
		date := d.GeneratedAt.AddDate(0, 0, -i).Format("2006-01-02")
		buckets[date] = &bucket{}
		dates = append(dates, date)
	}

	for _, m := range d.Metrics {
		if ids != nil && !ids[m.AgentID] {
			continue
		}
		b, ok := buckets[m.Date.Format("2006-01-02")]
		if !ok {
			continue
		}
		b.conversations += m.Conversations
		b.responseTime += m.AvgResponseTime
		b.successRate += m.SuccessRate
		b.count++
	}

	sort.Strings(dates)
	points := make([]model.TimeSeriesPoint, 0, len(dates))
	for _, date := range dates {
		b := buckets[date]
		p := model.TimeSeriesPoint{Date: date, Conversations: b.conversations}
		if b.count > 0 {
			p.AvgResponseTime = int(float64(b.responseTime)/float64(b.count) + 0.5)
			p.SuccessRate = seeded.Round(b.successRate/float64(b.count), 2)
		}
		points = append(points, p)
	}
	return points
}

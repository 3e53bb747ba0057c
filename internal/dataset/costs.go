package dataset

import (
	"sort"

	"github.com/csdsc-cmd/Retail-Agents-Portal/internal/model"
	"github.com/csdsc-cmd/Retail-Agents-Portal/internal/seeded"
)

// modelPricing is the per-1K-token price table. Unknown models fall back to
// the gpt-4o-mini rates.
var modelPricing = map[string]struct{ input, output float64 }{
	"gpt-4o":        {0.005, 0.015},
	"gpt-4o-mini":   {0.00015, 0.0006},
	"gpt-3.5-turbo": {0.0005, 0.0015},
}

func priceFor(m string) struct{ input, output float64 } {
	if p, ok := modelPricing[m]; ok {
		return p
	}
	return modelPricing["gpt-4o-mini"]
}

// generateCosts derives one cost record per metrics record. Metrics whose
// agent is unknown are skipped rather than priced on a guess.
func generateCosts(src *seeded.Source, metrics []model.DailyMetrics, agentsByID map[string]*model.Agent) []model.CostRecord {
	records := make([]model.CostRecord, 0, len(metrics))
	for _, m := range metrics {
		agent, ok := agentsByID[m.AgentID]
		if !ok {
			continue
		}
		p := priceFor(agent.Model)
		inputCost := float64(m.TotalTokensInput) / 1000 * p.input
		outputCost := float64(m.TotalTokensOutput) / 1000 * p.output

		records = append(records, model.CostRecord{
			ID:           src.UUID(),
			AgentID:      m.AgentID,
			Date:         m.Date,
			InputTokens:  m.TotalTokensInput,
			OutputTokens: m.TotalTokensOutput,
			TotalCost:    seeded.Round(inputCost+outputCost, 4),
			Model:        agent.Model,
		})
	}
	return records
}

// CostsByAgent returns an agent's cost records in chronological order.
func (d *Dataset) CostsByAgent(agentID string) []model.CostRecord {
	out := []model.CostRecord{}
	for _, c := range d.Costs {
		if c.AgentID == agentID {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return out
}

// CostsByCategory returns all cost records for agents in the given category.
func (d *Dataset) CostsByCategory(c model.AgentCategory) []model.CostRecord {
	ids := map[string]bool{}
	for _, a := range d.AgentsByCategory(c) {
		ids[a.ID] = true
	}
	out := []model.CostRecord{}
	for _, rec := range d.Costs {
		if ids[rec.AgentID] {
			out = append(out, rec)
		}
	}
	return out
}

func sumCostsByAgent(d *Dataset, records []model.CostRecord, withCategory bool) []model.AgentCost {
	totals := map[string]float64{}
	order := []string{}
	for _, rec := range records {
		if _, seen := totals[rec.AgentID]; !seen {
			order = append(order, rec.AgentID)
		}
		totals[rec.AgentID] += rec.TotalCost
	}

	out := make([]model.AgentCost, 0, len(order))
	for _, id := range order {
		ac := model.AgentCost{AgentID: id, TotalCost: seeded.Round(totals[id], 2)}
		if agent, ok := d.AgentByID(id); ok {
			ac.AgentName = agent.Name
			if withCategory {
				ac.Category = agent.Category
			}
		}
		out = append(out, ac)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].TotalCost > out[j].TotalCost
	})
	return out
}

func sumCostsByDay(records []model.CostRecord) []model.DailyCost {
	totals := map[string]float64{}
	for _, rec := range records {
		totals[rec.Date.Format("2006-01-02")] += rec.TotalCost
	}
	out := make([]model.DailyCost, 0, len(totals))
	for date, cost := range totals {
		out = append(out, model.DailyCost{Date: date, Cost: seeded.Round(cost, 2)})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

// CostSummary rolls up all cost records by model, agent, category, and day.
// Each grouped total is rounded once, from the unrounded running sum.
func (d *Dataset) CostSummary() model.CostSummary {
	var total float64
	byModel := map[string]float64{}
	for _, rec := range d.Costs {
		total += rec.TotalCost
		byModel[rec.Model] += rec.TotalCost
	}
	for m, cost := range byModel {
		byModel[m] = seeded.Round(cost, 2)
	}

	byCategory := make(map[model.AgentCategory]float64, len(model.Categories()))
	for _, c := range model.Categories() {
		var sum float64
		for _, rec := range d.CostsByCategory(c) {
			sum += rec.TotalCost
		}
		byCategory[c] = seeded.Round(sum, 2)
	}

	return model.CostSummary{
		TotalCost:      seeded.Round(total, 2),
		CostByModel:    byModel,
		CostByAgent:    sumCostsByAgent(d, d.Costs, true),
		CostByCategory: byCategory,
		DailyCosts:     sumCostsByDay(d.Costs),
	}
}

// CategoryCostSummary rolls up one category's cost records by agent and day.
func (d *Dataset) CategoryCostSummary(c model.AgentCategory) model.CategoryCostSummary {
	records := d.CostsByCategory(c)
	var total float64
	for _, rec := range records {
		total += rec.TotalCost
	}
	return model.CategoryCostSummary{
		TotalCost:   seeded.Round(total, 2),
		CostByAgent: sumCostsByAgent(d, records, false),
		DailyCosts:  sumCostsByDay(records),
	}
}

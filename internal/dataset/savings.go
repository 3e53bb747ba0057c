package dataset

import "github.com/csdsc-cmd/Retail-Agents-Portal/internal/model"

// SavingsReport is the full savings roll-up served by the savings endpoint.
type SavingsReport struct {
	Total      model.SavingsBreakdown                         `json:"total"`
	ByCategory map[model.AgentCategory]model.SavingsBreakdown `json:"byCategory"`
	ByPlatform map[model.Platform]model.SavingsBreakdown      `json:"byPlatform"`
}

// TotalSavings sums the per-agent savings breakdowns across the fleet.
func (d *Dataset) TotalSavings() model.SavingsBreakdown {
	var total model.SavingsBreakdown
	for _, a := range d.Agents {
		total = total.Add(a.Savings)
	}
	return total
}

// SavingsByCategory sums savings per category. Every category is present,
// empty ones as zero breakdowns.
func (d *Dataset) SavingsByCategory() map[model.AgentCategory]model.SavingsBreakdown {
	out := make(map[model.AgentCategory]model.SavingsBreakdown, len(model.Categories()))
	for _, c := range model.Categories() {
		var total model.SavingsBreakdown
		for _, a := range d.AgentsByCategory(c) {
			total = total.Add(a.Savings)
		}
		out[c] = total
	}
	return out
}

// SavingsByPlatform sums savings per platform over deployed agents. An agent
// deployed on several platforms contributes its full breakdown to each.
func (d *Dataset) SavingsByPlatform() map[model.Platform]model.SavingsBreakdown {
	out := make(map[model.Platform]model.SavingsBreakdown, len(model.Platforms()))
	for _, p := range model.Platforms() {
		var total model.SavingsBreakdown
		for _, a := range d.AgentsByPlatform(p) {
			total = total.Add(a.Savings)
		}
		out[p] = total
	}
	return out
}

// Savings assembles the complete savings report.
func (d *Dataset) Savings() SavingsReport {
	return SavingsReport{
		Total:      d.TotalSavings(),
		ByCategory: d.SavingsByCategory(),
		ByPlatform: d.SavingsByPlatform(),
	}
}

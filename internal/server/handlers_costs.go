package server

import (
	"net/http"
)

// Cost roll-up routes. Each one is a projection of the same CostSummary so
// clients that only chart one dimension do not have to download the rest.

// HandleCostSummary handles GET /api/costs/summary.
func (h *Handlers) HandleCostSummary(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.data.CostSummary())
}

// HandleCostsByAgent handles GET /api/costs/by-agent.
func (h *Handlers) HandleCostsByAgent(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.data.CostSummary().CostByAgent)
}

// HandleCostsByModel handles GET /api/costs/by-model.
func (h *Handlers) HandleCostsByModel(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.data.CostSummary().CostByModel)
}

// HandleDailyCosts handles GET /api/costs/daily.
func (h *Handlers) HandleDailyCosts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.data.CostSummary().DailyCosts)
}

// HandleCostsByCategory handles GET /api/costs/by-category.
func (h *Handlers) HandleCostsByCategory(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.data.CostSummary().CostByCategory)
}

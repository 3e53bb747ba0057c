package server

import (
	"net/http"

	"github.com/csdsc-cmd/Retail-Agents-Portal/internal/dataset"
	"github.com/csdsc-cmd/Retail-Agents-Portal/internal/model"
)

// HandleListAgents handles GET /api/agents.
func (h *Handlers) HandleListAgents(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	agents := h.data.FilterAgents(dataset.AgentFilter{
		Status:   model.AgentStatus(q.Get("status")),
		Category: model.AgentCategory(q.Get("category")),
	})
	writePage(w, r, agents, 25)
}

// HandleAgentCategories handles GET /api/agents/categories.
func (h *Handlers) HandleAgentCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.data.AgentCategories())
}

// HandleAgentSavings handles GET /api/agents/savings.
func (h *Handlers) HandleAgentSavings(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.data.Savings())
}

// HandleAgentsByPlatform handles GET /api/agents/by-platform/{platform}.
func (h *Handlers) HandleAgentsByPlatform(w http.ResponseWriter, r *http.Request) {
	platform := model.Platform(r.PathValue("platform"))
	if !model.ValidPlatform(platform) {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidPlatform,
			"unknown platform: "+string(platform))
		return
	}
	writeJSON(w, http.StatusOK, h.data.AgentsByPlatform(platform))
}

// HandleGetAgent handles GET /api/agents/{id}.
func (h *Handlers) HandleGetAgent(w http.ResponseWriter, r *http.Request) {
	agent, ok := h.data.AgentByID(r.PathValue("id"))
	if !ok {
		writeError(w, http.StatusNotFound, model.ErrCodeNotFound, "agent not found")
		return
	}
	writeJSON(w, http.StatusOK, agent)
}

// HandleAgentSubResource dispatches GET /api/agents/{id}/{sub}. The
// sub-resources share one wildcard route so that they can coexist with
// /api/agents/by-platform/{platform} on the same mux.
func (h *Handlers) HandleAgentSubResource(w http.ResponseWriter, r *http.Request) {
	switch r.PathValue("sub") {
	case "conversations":
		h.HandleAgentConversations(w, r)
	case "metrics":
		h.HandleAgentMetrics(w, r)
	case "costs":
		h.HandleAgentCosts(w, r)
	case "transactions":
		h.HandleAgentTransactions(w, r)
	case "incidents":
		h.HandleAgentIncidents(w, r)
	default:
		writeError(w, http.StatusNotFound, model.ErrCodeNotFound, "route not found")
	}
}

// lookupAgent resolves the {id} path value, writing a 404 on a miss.
func (h *Handlers) lookupAgent(w http.ResponseWriter, r *http.Request) (model.Agent, bool) {
	agent, ok := h.data.AgentByID(r.PathValue("id"))
	if !ok {
		writeError(w, http.StatusNotFound, model.ErrCodeNotFound, "agent not found")
	}
	return agent, ok
}

// HandleAgentConversations handles GET /api/agents/{id}/conversations.
func (h *Handlers) HandleAgentConversations(w http.ResponseWriter, r *http.Request) {
	agent, ok := h.lookupAgent(w, r)
	if !ok {
		return
	}
	writePage(w, r, h.data.ConversationsByAgent(agent.ID), 20)
}

// HandleAgentMetrics handles GET /api/agents/{id}/metrics.
func (h *Handlers) HandleAgentMetrics(w http.ResponseWriter, r *http.Request) {
	agent, ok := h.lookupAgent(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, h.data.MetricsByAgent(agent.ID))
}

// HandleAgentCosts handles GET /api/agents/{id}/costs.
func (h *Handlers) HandleAgentCosts(w http.ResponseWriter, r *http.Request) {
	agent, ok := h.lookupAgent(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, h.data.CostsByAgent(agent.ID))
}

// HandleAgentTransactions handles GET /api/agents/{id}/transactions.
func (h *Handlers) HandleAgentTransactions(w http.ResponseWriter, r *http.Request) {
	agent, ok := h.lookupAgent(w, r)
	if !ok {
		return
	}
	writePage(w, r, h.data.TransactionsByAgent(agent.ID), 20)
}

// HandleAgentIncidents handles GET /api/agents/{id}/incidents.
func (h *Handlers) HandleAgentIncidents(w http.ResponseWriter, r *http.Request) {
	agent, ok := h.lookupAgent(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, h.data.IncidentViews(h.data.IncidentsByAgent(agent.ID)))
}

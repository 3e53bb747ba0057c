package server

import (
	"net/http"

	"github.com/csdsc-cmd/Retail-Agents-Portal/internal/dataset"
	"github.com/csdsc-cmd/Retail-Agents-Portal/internal/model"
)

// Incidents are always served in the view shape: store names instead of
// store records, deduped affected categories, humanized timeline titles,
// and the estimated impact block.

// HandleListIncidents handles GET /api/incidents.
func (h *Handlers) HandleListIncidents(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	incidents := h.data.FilterIncidents(dataset.IncidentFilter{
		Status:   model.IncidentStatus(q.Get("status")),
		Severity: model.EventSeverity(q.Get("severity")),
	})
	writeJSON(w, http.StatusOK, h.data.IncidentViews(incidents))
}

// HandleActiveIncidents handles GET /api/incidents/active.
func (h *Handlers) HandleActiveIncidents(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.data.IncidentViews(h.data.ActiveIncidents()))
}

// HandleGetIncident handles GET /api/incidents/{id}.
func (h *Handlers) HandleGetIncident(w http.ResponseWriter, r *http.Request) {
	inc, ok := h.data.IncidentByID(r.PathValue("id"))
	if !ok {
		writeError(w, http.StatusNotFound, model.ErrCodeNotFound, "incident not found")
		return
	}
	writeJSON(w, http.StatusOK, h.data.IncidentView(inc))
}

// HandleIncidentTimeline handles GET /api/incidents/{id}/timeline.
func (h *Handlers) HandleIncidentTimeline(w http.ResponseWriter, r *http.Request) {
	inc, ok := h.data.IncidentByID(r.PathValue("id"))
	if !ok {
		writeError(w, http.StatusNotFound, model.ErrCodeNotFound, "incident not found")
		return
	}
	writeJSON(w, http.StatusOK, h.data.IncidentView(inc).Timeline)
}

// HandleIncidentConversations handles GET /api/incidents/{id}/conversations.
func (h *Handlers) HandleIncidentConversations(w http.ResponseWriter, r *http.Request) {
	inc, ok := h.data.IncidentByID(r.PathValue("id"))
	if !ok {
		writeError(w, http.StatusNotFound, model.ErrCodeNotFound, "incident not found")
		return
	}
	writePage(w, r, h.data.ConversationsByIncident(inc.ID), 20)
}

package server

import (
	"net/http"

	"github.com/csdsc-cmd/Retail-Agents-Portal/internal/dataset"
	"github.com/csdsc-cmd/Retail-Agents-Portal/internal/model"
)

// HandleListConversations handles GET /api/conversations.
func (h *Handlers) HandleListConversations(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	convs := h.data.FilterConversations(dataset.ConversationFilter{
		AgentID:    q.Get("agentId"),
		Status:     model.ConversationStatus(q.Get("status")),
		Sentiment:  model.Sentiment(q.Get("sentiment")),
		StoreID:    q.Get("storeId"),
		IncidentID: q.Get("incidentId"),
		EventType:  model.RetailEventType(q.Get("eventType")),
	})
	writePage(w, r, convs, 20)
}

// HandleGetConversation handles GET /api/conversations/{id}.
func (h *Handlers) HandleGetConversation(w http.ResponseWriter, r *http.Request) {
	conv, ok := h.data.ConversationByID(r.PathValue("id"))
	if !ok {
		writeError(w, http.StatusNotFound, model.ErrCodeNotFound, "conversation not found")
		return
	}
	writeJSON(w, http.StatusOK, conv)
}

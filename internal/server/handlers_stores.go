package server

import (
	"net/http"

	"github.com/csdsc-cmd/Retail-Agents-Portal/internal/model"
)

// HandleListStores handles GET /api/stores.
func (h *Handlers) HandleListStores(w http.ResponseWriter, r *http.Request) {
	if region := r.URL.Query().Get("region"); region != "" {
		writeJSON(w, http.StatusOK, h.data.StoresByRegion(region))
		return
	}
	writeJSON(w, http.StatusOK, h.data.Stores)
}

// HandleGetStore handles GET /api/stores/{id}.
func (h *Handlers) HandleGetStore(w http.ResponseWriter, r *http.Request) {
	store, ok := h.data.StoreByID(r.PathValue("id"))
	if !ok {
		writeError(w, http.StatusNotFound, model.ErrCodeNotFound, "store not found")
		return
	}
	writeJSON(w, http.StatusOK, store)
}

// HandleStoreConversations handles GET /api/stores/{id}/conversations.
func (h *Handlers) HandleStoreConversations(w http.ResponseWriter, r *http.Request) {
	store, ok := h.data.StoreByID(r.PathValue("id"))
	if !ok {
		writeError(w, http.StatusNotFound, model.ErrCodeNotFound, "store not found")
		return
	}
	writePage(w, r, h.data.ConversationsByStore(store.ID), 20)
}

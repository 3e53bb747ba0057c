package server

import (
	"net/http"

	"github.com/csdsc-cmd/Retail-Agents-Portal/internal/dataset"
	"github.com/csdsc-cmd/Retail-Agents-Portal/internal/model"
)

// HandleListAuditLogs handles GET /api/audit/logs.
func (h *Handlers) HandleListAuditLogs(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	logs := h.data.FilterAuditLogs(dataset.AuditFilter{
		Action:   q.Get("action"),
		Resource: q.Get("resource"),
		UserID:   q.Get("userId"),
	})
	writePage(w, r, logs, 20)
}

// HandleListUsers handles GET /api/audit/users.
func (h *Handlers) HandleListUsers(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.data.Users)
}

// HandleGetUser handles GET /api/audit/users/{id}.
func (h *Handlers) HandleGetUser(w http.ResponseWriter, r *http.Request) {
	user, ok := h.data.UserByID(r.PathValue("id"))
	if !ok {
		writeError(w, http.StatusNotFound, model.ErrCodeNotFound, "user not found")
		return
	}
	writeJSON(w, http.StatusOK, user)
}

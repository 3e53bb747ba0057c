package server

import (
	"net/http"

	"github.com/csdsc-cmd/Retail-Agents-Portal/internal/dataset"
	"github.com/csdsc-cmd/Retail-Agents-Portal/internal/model"
)

// HandleListTransactions handles GET /api/transactions.
func (h *Handlers) HandleListTransactions(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	txns := h.data.FilterTransactions(dataset.TransactionFilter{
		AgentID:  q.Get("agentId"),
		Platform: model.Platform(q.Get("platform")),
		Outcome:  model.TransactionOutcome(q.Get("outcome")),
	})
	writePage(w, r, txns, 20)
}

// HandleTransactionStats handles GET /api/transactions/stats.
func (h *Handlers) HandleTransactionStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.data.TransactionStats())
}

// HandleGetTransaction handles GET /api/transactions/{id}.
func (h *Handlers) HandleGetTransaction(w http.ResponseWriter, r *http.Request) {
	txn, ok := h.data.TransactionByID(r.PathValue("id"))
	if !ok {
		writeError(w, http.StatusNotFound, model.ErrCodeNotFound, "transaction not found")
		return
	}
	writeJSON(w, http.StatusOK, txn)
}

package server

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/csdsc-cmd/Retail-Agents-Portal/internal/dataset"
	"github.com/csdsc-cmd/Retail-Agents-Portal/internal/model"
)

// HandleExportTransactions handles GET /api/export/transactions.
// Streams the filtered transaction log as CSV (default) or NDJSON with a
// download filename. Rows are flushed as they are written so large exports
// start arriving immediately.
func (h *Handlers) HandleExportTransactions(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	txns := h.data.FilterTransactions(dataset.TransactionFilter{
		AgentID:  q.Get("agentId"),
		Platform: model.Platform(q.Get("platform")),
		Outcome:  model.TransactionOutcome(q.Get("outcome")),
	})

	format := q.Get("format")
	if format == "" {
		format = "csv"
	}
	stamp := time.Now().UTC().Format("20060102-150405")

	switch format {
	case "ndjson":
		w.Header().Set("Content-Type", "application/x-ndjson")
		w.Header().Set("Content-Disposition",
			fmt.Sprintf(`attachment; filename="transactions-%s.ndjson"`, stamp))
		w.Header().Set("Cache-Control", "no-cache")

		encoder := json.NewEncoder(w)
		flusher, _ := w.(http.Flusher)
		for i, txn := range txns {
			if err := encoder.Encode(txn); err != nil {
				return // Client disconnected.
			}
			if flusher != nil && i%100 == 99 {
				flusher.Flush()
			}
		}
		if flusher != nil {
			flusher.Flush()
		}

	case "csv":
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition",
			fmt.Sprintf(`attachment; filename="transactions-%s.csv"`, stamp))
		w.Header().Set("Cache-Control", "no-cache")

		cw := csv.NewWriter(w)
		_ = cw.Write([]string{
			"id", "agentId", "agentName", "timestamp", "transactionType",
			"platform", "storeId", "decision", "confidenceScore", "outcome",
			"costSaved", "transactionCost", "humanOverrideRequired",
		})
		for i, txn := range txns {
			err := cw.Write([]string{
				txn.ID,
				txn.AgentID,
				txn.AgentName,
				txn.Timestamp.UTC().Format(time.RFC3339),
				string(txn.TransactionType),
				string(txn.Platform),
				txn.StoreID,
				txn.Decision,
				strconv.Itoa(txn.ConfidenceScore),
				string(txn.Outcome),
				strconv.FormatFloat(txn.CostSaved, 'f', 2, 64),
				strconv.FormatFloat(txn.TransactionCost, 'f', 2, 64),
				strconv.FormatBool(txn.HumanOverrideRequired),
			})
			if err != nil {
				return // Client disconnected.
			}
			if i%100 == 99 {
				cw.Flush()
			}
		}
		cw.Flush()

	default:
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidInput,
			"unknown export format: "+format)
	}
}

// HandleExportCostsPDF handles GET /api/export/costs.pdf.
// Renders the cost summary as a one-page PDF report.
func (h *Handlers) HandleExportCostsPDF(w http.ResponseWriter, r *http.Request) {
	summary := h.data.CostSummary()

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Agent Cost Report", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Agent Cost Report")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 8, fmt.Sprintf("Generated %s · seed %d",
		time.Now().UTC().Format("2006-01-02 15:04 UTC"), h.data.Seed))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Total cost: $%.2f", summary.TotalCost))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(0, 7, "Cost by model")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
	models := make([]string, 0, len(summary.CostByModel))
	for m := range summary.CostByModel {
		models = append(models, m)
	}
	sort.Strings(models)
	for _, m := range models {
		pdf.CellFormat(120, 6, m, "", 0, "L", false, 0, "")
		pdf.CellFormat(40, 6, fmt.Sprintf("$%.2f", summary.CostByModel[m]), "", 1, "R", false, 0, "")
	}
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(0, 7, "Cost by agent")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
	for _, ac := range summary.CostByAgent {
		pdf.CellFormat(120, 6, ac.AgentName, "", 0, "L", false, 0, "")
		pdf.CellFormat(40, 6, fmt.Sprintf("$%.2f", ac.TotalCost), "", 1, "R", false, 0, "")
	}

	if err := pdf.Error(); err != nil {
		h.logger.Error("pdf render failed", "error", err)
		writeError(w, http.StatusInternalServerError, model.ErrCodeInternalError, "pdf render failed")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf(`attachment; filename="costs-%s.pdf"`, time.Now().UTC().Format("20060102-150405")))
	if err := pdf.Output(w); err != nil {
		h.logger.Warn("pdf write failed", "error", err)
	}
}

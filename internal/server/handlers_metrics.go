package server

import (
	"net/http"

	"github.com/csdsc-cmd/Retail-Agents-Portal/internal/dataset"
	"github.com/csdsc-cmd/Retail-Agents-Portal/internal/model"
)

// HandleMetricsOverview handles GET /api/metrics/overview.
func (h *Handlers) HandleMetricsOverview(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.data.AggregateMetrics())
}

// HandleMetricsByCategory handles GET /api/metrics/by-category.
func (h *Handlers) HandleMetricsByCategory(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.data.AggregateMetricsByCategory())
}

// HandleMetricsTimeSeries handles GET /api/metrics/timeseries.
func (h *Handlers) HandleMetricsTimeSeries(w http.ResponseWriter, r *http.Request) {
	days := queryInt(r, "days", dataset.DefaultMetricsDays)
	if days < 1 {
		days = dataset.DefaultMetricsDays
	}
	category := model.AgentCategory(r.URL.Query().Get("category"))
	writeJSON(w, http.StatusOK, h.data.TimeSeries(days, category))
}

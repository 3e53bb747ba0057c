package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/csdsc-cmd/Retail-Agents-Portal/internal/dataset"
	"github.com/csdsc-cmd/Retail-Agents-Portal/internal/model"
)

// Handlers carries the seeded dataset and request-scoped dependencies for
// every route. The dataset is immutable after seeding, so handlers only read.
type Handlers struct {
	data      *dataset.Dataset
	logger    *slog.Logger
	version   string
	startedAt time.Time
}

// HandlersDeps holds the dependencies for NewHandlers.
type HandlersDeps struct {
	Data    *dataset.Dataset
	Logger  *slog.Logger
	Version string
}

// NewHandlers creates the handler set.
func NewHandlers(d HandlersDeps) *Handlers {
	return &Handlers{
		data:      d.Data,
		logger:    d.Logger,
		version:   d.Version,
		startedAt: time.Now(),
	}
}

// HandleHealth handles GET /health.
func (h *Handlers) HandleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "healthy",
		"version":   h.version,
		"seed":      h.data.Seed,
		"agents":    len(h.data.Agents),
		"uptimeSec": int64(time.Since(h.startedAt).Seconds()),
	})
}

// HandleNotFound is the fallback for unmatched routes. JSON instead of the
// mux's plain-text 404.
func (h *Handlers) HandleNotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusNotFound, model.ErrCodeNotFound, "route not found")
}

// writeJSON writes a success response with the standard envelope.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(model.APIResponse{
		Success: true,
		Data:    data,
	})
}

// writeError writes a JSON error response with the standard envelope.
func writeError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(model.APIError{
		Success: false,
		Error:   model.ErrorDetail{Code: code, Message: message},
	})
}

// writePage slices a full result set down to the requested page and writes it
// with pagination metadata. The core returns complete filtered collections;
// page math lives here at the boundary.
func writePage[T any](w http.ResponseWriter, r *http.Request, items []T, defaultPageSize int) {
	page := queryInt(r, "page", 1)
	if page < 1 {
		page = 1
	}
	pageSize := queryInt(r, "pageSize", defaultPageSize)
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > 100 {
		pageSize = 100
	}

	total := len(items)
	totalPages := (total + pageSize - 1) / pageSize
	if totalPages == 0 {
		totalPages = 1
	}

	start := (page - 1) * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(model.APIResponse{
		Success: true,
		Data:    items[start:end],
		Pagination: &model.Pagination{
			Page:       page,
			PageSize:   pageSize,
			Total:      total,
			TotalPages: totalPages,
		},
	})
}

// queryInt reads an integer query parameter, falling back on absent or
// malformed values.
func queryInt(r *http.Request, key string, defaultVal int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return defaultVal
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return defaultVal
	}
	return v
}

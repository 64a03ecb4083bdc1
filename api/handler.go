package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/jonwraymond/workdays/observe"
	"github.com/jonwraymond/workdays/workday"
)

// Engine is the query surface the handlers need.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Errors: validation failures are returned as *workday.ValidationError.
type Engine interface {
	Count(ctx context.Context, q workday.Query) (int, error)
	List(ctx context.Context, q workday.Query) ([]workday.Date, error)
}

// Handler serves the working-days query endpoints.
type Handler struct {
	engine Engine
	logger observe.Logger
}

// NewHandler creates a handler over the given engine. A nil logger
// disables handler-level logging.
func NewHandler(engine Engine, logger observe.Logger) *Handler {
	if logger == nil {
		logger = observe.NewNoopLogger()
	}
	return &Handler{engine: engine, logger: logger}
}

// countResponse is the body for GET /working-days.
type countResponse struct {
	WorkingDays int `json:"working_days"`
}

// listResponse is the body for GET /working-days-list.
type listResponse struct {
	WorkingDays []string `json:"working_days"`
}

// errorResponse is the body for every non-2xx response.
type errorResponse struct {
	Detail string `json:"detail"`
}

// Count handles GET /working-days.
func (h *Handler) Count(w http.ResponseWriter, r *http.Request) {
	q, ok := h.parseQuery(w, r)
	if !ok {
		return
	}

	n, err := h.engine.Count(r.Context(), q)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, countResponse{WorkingDays: n})
}

// List handles GET /working-days-list.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	q, ok := h.parseQuery(w, r)
	if !ok {
		return
	}

	days, err := h.engine.List(r.Context(), q)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	// Empty ranges serialize as [], not null.
	out := make([]string, 0, len(days))
	for _, d := range days {
		out = append(out, d.String())
	}

	writeJSON(w, http.StatusOK, listResponse{WorkingDays: out})
}

func (h *Handler) parseQuery(w http.ResponseWriter, r *http.Request) (workday.Query, bool) {
	params := r.URL.Query()

	q, err := workday.ValidateRange(
		params.Get("start_date"),
		params.Get("end_date"),
		params.Get("state"),
	)
	if err != nil {
		h.writeError(w, r, err)
		return workday.Query{}, false
	}
	return q, true
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *workday.ValidationError
	if errors.As(err, &verr) {
		writeJSON(w, http.StatusBadRequest, errorResponse{Detail: verr.Detail})
		return
	}

	h.logger.Error(r.Context(), "query failed", observe.Err(err))
	writeJSON(w, http.StatusInternalServerError, errorResponse{Detail: "Internal server error"})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

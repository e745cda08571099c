// Package httpapi serves the simulation service as JSON over HTTP.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/xtding233/cricket-sim/internal/service"
)

const maxBody = 1 << 20

type errResp struct {
	Err string `json:"err"`
}

type healthResp struct {
	Status string `json:"status"`
}

// Handler routes the simulation endpoints.
type Handler struct {
	svc    *service.Simulation
	logger *slog.Logger
	mux    *http.ServeMux
}

func New(svc *service.Simulation, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	h := &Handler{svc: svc, logger: logger, mux: http.NewServeMux()}
	h.mux.HandleFunc("POST /simulate", h.handleSimulate)
	h.mux.HandleFunc("POST /project", h.handleProject)
	h.mux.HandleFunc("GET /healthz", h.handleHealth)
	return h
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func (h *Handler) handleSimulate(w http.ResponseWriter, r *http.Request) {
	var req service.SimulateRequest
	if !decode(w, r, &req) {
		return
	}
	resp, err := h.svc.Simulate(r.Context(), req)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleProject(w http.ResponseWriter, r *http.Request) {
	var req service.ProjectRequest
	if !decode(w, r, &req) {
		return
	}
	resp, err := h.svc.Project(r.Context(), req)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, healthResp{Status: "ok"})
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, service.ErrBadRequest):
		status = http.StatusBadRequest
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		status = http.StatusServiceUnavailable
	default:
		h.logger.Error("request failed", "path", r.URL.Path, "error", err)
	}
	writeJSON(w, status, errResp{Err: err.Error()})
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		writeJSON(w, http.StatusBadRequest, errResp{Err: "invalid body: " + err.Error()})
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

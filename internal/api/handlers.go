package api

import (
	"encoding/json"
	"errors"
	"io/fs"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/pricehunt/amazon-price-tracker/internal/report"
)

// Handlers serves previously generated run reports.
type Handlers struct {
	store  *report.Store
	logger *slog.Logger
}

func NewHandlers(store *report.Store, logger *slog.Logger) *Handlers {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handlers{
		store:  store,
		logger: logger.With("component", "api"),
	}
}

func (h *Handlers) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet},
	}))

	r.Get("/health", h.Health)
	r.Get("/reports", h.ListReports)
	r.Get("/reports/{title}", h.GetReport)

	return r
}

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handlers) ListReports(w http.ResponseWriter, r *http.Request) {
	titles, err := h.store.List()
	if err != nil {
		h.logger.Error("failed to list reports", "error", err)
		h.respondError(w, http.StatusInternalServerError, "failed to list reports")
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]any{"reports": titles})
}

func (h *Handlers) GetReport(w http.ResponseWriter, r *http.Request) {
	title := chi.URLParam(r, "title")

	rep, err := h.store.Get(title)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			h.respondError(w, http.StatusNotFound, "report not found")
			return
		}
		h.logger.Error("failed to read report", "title", title, "error", err)
		h.respondError(w, http.StatusInternalServerError, "failed to read report")
		return
	}
	h.respondJSON(w, http.StatusOK, rep)
}

func (h *Handlers) respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error("failed to encode response", "error", err)
	}
}

func (h *Handlers) respondError(w http.ResponseWriter, status int, msg string) {
	h.respondJSON(w, status, map[string]string{"error": msg})
}

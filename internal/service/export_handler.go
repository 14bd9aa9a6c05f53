package service

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/mmynk/aidledger/internal/export"
	"github.com/mmynk/aidledger/internal/models"
	"github.com/mmynk/aidledger/internal/recipient"
	"github.com/mmynk/aidledger/internal/storage"
)

// ExportHandler serves CSV downloads.
type ExportHandler struct {
	registry      storage.RegistryStore
	distributions storage.DistributionStore
	resolver      *recipient.Resolver
	now           func() time.Time
	logger        *slog.Logger
}

// NewExportHandler creates an ExportHandler.
func NewExportHandler(registry storage.RegistryStore, distributions storage.DistributionStore, resolver *recipient.Resolver, logger *slog.Logger) *ExportHandler {
	return &ExportHandler{
		registry:      registry,
		distributions: distributions,
		resolver:      resolver,
		now:           time.Now,
		logger:        logger,
	}
}

// Routes mounts the export endpoints on r.
func (h *ExportHandler) Routes(r chi.Router) {
	r.Get("/distributions/{id}/export.csv", h.Distribution)
	r.Get("/individuals/export.csv", h.Individuals)
}

// Distribution writes one distribution's recipient list.
func (h *ExportHandler) Distribution(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	d, err := h.distributions.GetDistribution(r.Context(), id)
	if errors.Is(err, storage.ErrNotFound) {
		http.Error(w, "distribution not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.logger.Error("Failed to load distribution for export", "distribution_id", id, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	h.writeHeaders(w, fmt.Sprintf("distribution_%s_%s.csv", d.Date.Format(models.DateLayout), d.AidType))
	if _, err := w.Write([]byte(export.BOM)); err != nil {
		return
	}
	if err := export.WriteDistribution(r.Context(), w, h.resolver, d); err != nil {
		h.logger.Warn("Export interrupted", "distribution_id", id, "error", err)
		return
	}
	h.logger.Info("Distribution exported", "distribution_id", id, "rows", len(d.Recipients))
}

// Individuals writes the registry, optionally narrowed by the district,
// assistance_type and list_status query parameters.
func (h *ExportHandler) Individuals(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := storage.IndividualFilter{
		District:       q.Get("district"),
		AssistanceType: models.AssistanceType(q.Get("assistance_type")),
		ListStatus:     models.ListStatus(q.Get("list_status")),
	}
	individuals, err := h.registry.ListIndividuals(r.Context(), filter)
	if err != nil {
		h.logger.Error("Failed to list individuals for export", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	h.writeHeaders(w, fmt.Sprintf("individuals_%s.csv", h.now().Format(models.DateLayout)))
	if _, err := w.Write([]byte(export.BOM)); err != nil {
		return
	}
	if err := export.WriteIndividualsCSV(w, individuals); err != nil {
		h.logger.Warn("Export interrupted", "error", err)
	}
}

func (h *ExportHandler) writeHeaders(w http.ResponseWriter, filename string) {
	w.Header().Set("Content-Type", export.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
}

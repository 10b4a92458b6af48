package history

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/invmaster/invmaster/internal/export"
	"github.com/invmaster/invmaster/internal/platform/httpx"
)

// Handler wires HTTP endpoints for transaction history.
type Handler struct {
	logger  *slog.Logger
	service *Service
}

// NewHandler constructs the history handler.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service}
}

// MountRoutes registers history routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.handleList)
	r.Get("/export.csv", h.handleExportCSV)
	r.Get("/{id}", h.handleShow)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	filters := Filters{
		Search: r.URL.Query().Get("search"),
		Type:   r.URL.Query().Get("type"),
	}
	transactions, summary := h.service.List(r.Context(), filters)
	httpx.JSON(w, http.StatusOK, map[string]any{
		"transactions": transactions,
		"summary":      summary,
	})
}

func (h *Handler) handleShow(w http.ResponseWriter, r *http.Request) {
	tx, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, tx)
}

func (h *Handler) handleExportCSV(w http.ResponseWriter, r *http.Request) {
	filters := Filters{
		Search: r.URL.Query().Get("search"),
		Type:   r.URL.Query().Get("type"),
	}
	transactions, _ := h.service.List(r.Context(), filters)
	httpx.CSVDownload(w, "transactions.csv")
	if err := export.WriteTransactionsCSV(w, transactions); err != nil {
		h.logger.Error("export transactions csv", slog.Any("error", err))
	}
}

package reports

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/invmaster/invmaster/internal/export"
	"github.com/invmaster/invmaster/internal/platform/httpx"
)

// Handler wires HTTP endpoints for dashboard and reports.
type Handler struct {
	logger  *slog.Logger
	service *Service
}

// NewHandler constructs the reports handler.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service}
}

// MountDashboard registers dashboard routes.
func (h *Handler) MountDashboard(r chi.Router) {
	r.Get("/", h.handleDashboard)
	r.Get("/chart.svg", h.handleChart)
}

// MountReports registers report routes.
func (h *Handler) MountReports(r chi.Router) {
	r.Get("/stock", h.handleStock)
	r.Get("/stock/export.csv", h.handleStockCSV)
	r.Get("/sales", h.handleSales)
	r.Get("/sales/export.csv", h.handleSalesCSV)
}

func (h *Handler) handleDashboard(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, h.service.Dashboard(r.Context(), queryYear(r)))
}

func (h *Handler) handleChart(w http.ResponseWriter, r *http.Request) {
	markup, err := h.service.MonthlyChart(r.Context(), queryYear(r))
	if err != nil {
		h.logger.Error("render monthly chart", slog.Any("error", err))
		httpx.Problem(w, http.StatusInternalServerError, "Chart Error", "")
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	_, _ = w.Write([]byte(markup))
}

func (h *Handler) handleStock(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, h.service.Stock(r.Context()))
}

func (h *Handler) handleStockCSV(w http.ResponseWriter, r *http.Request) {
	snap := h.service.StockSnapshot(r.Context())
	httpx.CSVDownload(w, "stock-report.csv")
	if err := export.WriteStockReportCSV(w, snap); err != nil {
		h.logger.Error("export stock report csv", slog.Any("error", err))
	}
}

func (h *Handler) handleSales(w http.ResponseWriter, r *http.Request) {
	from, to := queryDateRange(r)
	httpx.JSON(w, http.StatusOK, h.service.Sales(r.Context(), from, to))
}

func (h *Handler) handleSalesCSV(w http.ResponseWriter, r *http.Request) {
	from, to := queryDateRange(r)
	revenue, count, top := h.service.SalesFigures(r.Context(), from, to)
	httpx.CSVDownload(w, "sales-report.csv")
	if err := export.WriteSalesReportCSV(w, revenue, count, top); err != nil {
		h.logger.Error("export sales report csv", slog.Any("error", err))
	}
}

func queryYear(r *http.Request) int {
	year, _ := strconv.Atoi(r.URL.Query().Get("year"))
	return year
}

// queryDateRange parses from/to as YYYY-MM-DD. The "to" bound is pushed to
// the end of its day so the range is inclusive.
func queryDateRange(r *http.Request) (time.Time, time.Time) {
	var from, to time.Time
	if v := r.URL.Query().Get("from"); v != "" {
		if parsed, err := time.Parse("2006-01-02", v); err == nil {
			from = parsed
		}
	}
	if v := r.URL.Query().Get("to"); v != "" {
		if parsed, err := time.Parse("2006-01-02", v); err == nil {
			to = parsed.Add(24*time.Hour - time.Nanosecond)
		}
	}
	return from, to
}

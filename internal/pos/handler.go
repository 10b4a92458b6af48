package pos

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/invmaster/invmaster/internal/ledger"
	"github.com/invmaster/invmaster/internal/platform/httpx"
)

// Handler wires HTTP endpoints for the cashier flow.
type Handler struct {
	logger   *slog.Logger
	service  *Service
	validate *validator.Validate
}

// NewHandler constructs the pos handler.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service, validate: validator.New()}
}

// MountRoutes registers pos routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/products", h.handleProducts)
	r.Get("/quickpay", h.handleQuickPay)
	r.Post("/checkout", h.handleCheckout)
}

func (h *Handler) handleQuickPay(w http.ResponseWriter, r *http.Request) {
	total := ledger.ParseAmount(r.URL.Query().Get("total"))
	httpx.JSON(w, http.StatusOK, map[string]any{
		"total":   total,
		"amounts": QuickPayAmounts(total),
	})
}

func (h *Handler) handleProducts(w http.ResponseWriter, r *http.Request) {
	products := h.service.SellableProducts(r.Context(), r.URL.Query().Get("search"))
	httpx.JSON(w, http.StatusOK, map[string]any{
		"products": products,
		"total":    len(products),
	})
}

func (h *Handler) handleCheckout(w http.ResponseWriter, r *http.Request) {
	var input CheckoutInput
	if err := httpx.DecodeJSON(r, &input); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid JSON body")
		return
	}
	if err := h.validate.Struct(input); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}
	receipt, err := h.service.Checkout(r.Context(), input)
	if err != nil {
		if errors.Is(err, ErrInsufficientPayment) {
			httpx.Problem(w, http.StatusUnprocessableEntity, "Insufficient Payment", err.Error())
			return
		}
		httpx.RespondError(w, err)
		return
	}
	h.logger.Info("checkout completed",
		slog.String("invoice", receipt.InvoiceID),
		slog.String("total", receipt.Total),
	)
	httpx.JSON(w, http.StatusCreated, receipt)
}

package pos

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/invmaster/invmaster/internal/ledger"
)

func newTestRouter(t *testing.T) (*chi.Mux, *ledger.Store) {
	t.Helper()
	store := ledger.NewStore()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := NewHandler(logger, NewService(store, testShop, nil))
	r := chi.NewRouter()
	r.Route("/pos", handler.MountRoutes)
	return r, store
}

func TestHandlerCheckout(t *testing.T) {
	router, store := newTestRouter(t)
	kopi := seedProduct(t, store, "Kopi", 65000, 10)

	body := `{"lines":[{"product_id":"` + kopi.ID + `","quantity":2}],"payment_amount":"Rp 150.000"}`
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/pos/checkout", strings.NewReader(body)))

	require.Equal(t, http.StatusCreated, rec.Code)
	require.Contains(t, rec.Body.String(), "INV-")
	require.Contains(t, rec.Body.String(), "20.000")
}

func TestHandlerCheckoutInsufficientPayment(t *testing.T) {
	router, store := newTestRouter(t)
	kopi := seedProduct(t, store, "Kopi", 65000, 10)

	body := `{"lines":[{"product_id":"` + kopi.ID + `","quantity":2}],"payment_amount":"100000"}`
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/pos/checkout", strings.NewReader(body)))

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	require.Empty(t, store.Transactions())
}

func TestHandlerCheckoutRejectsEmptyLines(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/pos/checkout", strings.NewReader(`{"lines":[],"payment_amount":"1000"}`)))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandlerQuickPay(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/pos/quickpay?total=65000", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "100000")
	require.Contains(t, rec.Body.String(), "200000")
}

func TestHandlerSellableProducts(t *testing.T) {
	router, store := newTestRouter(t)
	seedProduct(t, store, "Ada", 5000, 4)
	seedProduct(t, store, "Habis", 5000, 0)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/pos/products", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "Ada")
	require.NotContains(t, rec.Body.String(), "Habis")
}

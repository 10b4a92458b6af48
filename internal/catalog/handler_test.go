package catalog

import (
	"context"
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

func newTestRouter(t *testing.T) (*chi.Mux, *Service) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := NewService(ledger.NewStore(), nil)
	handler := NewHandler(logger, service)
	r := chi.NewRouter()
	r.Route("/products", handler.MountRoutes)
	return r, service
}

func TestHandlerCreateAndShow(t *testing.T) {
	router, _ := newTestRouter(t)

	body := `{"name":"Kopi Susu","purchase_price":"8000","selling_price":"12000","stock":6}`
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/products", strings.NewReader(body)))
	require.Equal(t, http.StatusCreated, rec.Code)
	require.Contains(t, rec.Body.String(), "Kopi Susu")
}

func TestHandlerCreateRejectsMissingName(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/products", strings.NewReader(`{"stock":1}`)))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandlerShowUnknownProduct(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/products/nope", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandlerDelete(t *testing.T) {
	router, service := newTestRouter(t)

	product, err := service.Create(context.Background(), ProductInput{Name: "Roti", Stock: 1, SellingPrice: "5000"})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/products/"+product.ID, nil))
	require.Equal(t, http.StatusNoContent, rec.Code)
}

func TestHandlerExportCSV(t *testing.T) {
	router, service := newTestRouter(t)

	_, err := service.Create(context.Background(), ProductInput{Code: "BRG010", Name: "Susu UHT", Stock: 3, SellingPrice: "18000"})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/products/export.csv", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Header().Get("Content-Type"), "text/csv")
	require.Contains(t, rec.Body.String(), "Susu UHT")
}

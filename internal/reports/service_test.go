package reports

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/invmaster/invmaster/internal/ledger"
)

func seedLedger(t *testing.T) *ledger.Store {
	t.Helper()
	store := ledger.NewStore()
	products := []ledger.Product{
		{ID: "p-kopi", Code: "BRG001", Name: "Kopi", PurchasePrice: 45000, SellingPrice: 65000},
		{ID: "p-teh", Code: "BRG002", Name: "Teh", PurchasePrice: 20000, SellingPrice: 35000},
		{ID: "p-madu", Code: "BRG003", Name: "Madu", PurchasePrice: 75000, SellingPrice: 98000},
	}
	for _, p := range products {
		require.NoError(t, store.Apply(ledger.CreateProduct{Product: p}))
	}
	entries := []ledger.Transaction{
		{
			ID: "tx-1", Date: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC), Type: ledger.TransactionTypeIn,
			Items: []ledger.TransactionItem{{ProductID: "p-kopi", Name: "Kopi", Price: 45000, Quantity: 10}},
		},
		{
			ID: "tx-2", Date: time.Date(2024, 3, 15, 14, 0, 0, 0, time.UTC), Type: ledger.TransactionTypeOut,
			Items: []ledger.TransactionItem{{ProductID: "p-kopi", Name: "Kopi", Price: 65000, Quantity: 4}},
		},
		{
			ID: "tx-3", Date: time.Date(2024, 4, 2, 10, 0, 0, 0, time.UTC), Type: ledger.TransactionTypeOut,
			Items: []ledger.TransactionItem{{ProductID: "p-madu", Name: "Madu", Price: 98000, Quantity: 1}},
		},
	}
	for _, tx := range entries {
		require.NoError(t, store.Apply(ledger.RecordTransaction{Transaction: tx}))
	}
	return store
}

func TestDashboard(t *testing.T) {
	svc := NewService(seedLedger(t))

	dash := svc.Dashboard(context.Background(), 2024)
	require.Equal(t, 2024, dash.Year)
	require.Equal(t, 3, dash.TotalProducts)
	require.Equal(t, 6, dash.TotalStock, "10 in minus 4 out on kopi; the madu sale clamps at zero")
	require.Equal(t, 10, dash.IncomingQty)
	require.Equal(t, 5, dash.OutgoingQty)
	require.Len(t, dash.Monthly, 12)
	require.Equal(t, 10, dash.Monthly[2].Incoming)
	require.Equal(t, 4, dash.Monthly[2].Outgoing)
	require.Equal(t, 1, dash.Monthly[3].Outgoing)
	require.Contains(t, dash.Years, 2022)
	require.Contains(t, dash.Years, time.Now().UTC().Year())

	// Teh and Madu sit at zero stock and lead the warning list.
	require.NotEmpty(t, dash.LowStock)
	require.Zero(t, dash.LowStock[0].Stock)
}

func TestDashboardDefaultsToCurrentYear(t *testing.T) {
	svc := NewService(ledger.NewStore())

	dash := svc.Dashboard(context.Background(), 0)
	require.Equal(t, time.Now().UTC().Year(), dash.Year)
	require.Len(t, dash.Monthly, 12)
}

func TestMonthlyChart(t *testing.T) {
	svc := NewService(seedLedger(t))

	markup, err := svc.MonthlyChart(context.Background(), 2024)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(markup), "<svg"))
	require.Contains(t, string(markup), "Pergerakan Stok 2024")
}

func TestStockReport(t *testing.T) {
	svc := NewService(seedLedger(t))

	report := svc.Stock(context.Background())
	require.Equal(t, 3, report.TotalProducts)
	require.Equal(t, 6, report.TotalStock)
	// Remaining value: 6 kopi at purchase price 45.000.
	require.Equal(t, "270.000", report.InventoryValue)
	require.Len(t, report.LowStock, 2)
}

func TestSalesReport(t *testing.T) {
	svc := NewService(seedLedger(t))

	report := svc.Sales(context.Background(), time.Time{}, time.Time{})
	require.Equal(t, "358.000", report.Revenue)
	require.Equal(t, 2, report.SalesCount)
	require.Len(t, report.TopSelling, 2)
	require.Equal(t, "Kopi", report.TopSelling[0].Name)
	require.Equal(t, 4, report.TopSelling[0].Quantity)
}

func TestSalesReportDateRange(t *testing.T) {
	svc := NewService(seedLedger(t))

	from := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	report := svc.Sales(context.Background(), from, time.Time{})
	require.Equal(t, "98.000", report.Revenue)
	require.Equal(t, 1, report.SalesCount)
	require.Equal(t, "Madu", report.TopSelling[0].Name)
	require.Equal(t, "2024-04-01", report.From)
}

func TestSalesCountsDeletedProducts(t *testing.T) {
	store := seedLedger(t)
	svc := NewService(store)
	require.NoError(t, store.Apply(ledger.DeleteProduct{ID: "p-madu"}))

	report := svc.Sales(context.Background(), time.Time{}, time.Time{})
	require.Equal(t, "358.000", report.Revenue)
	names := []string{report.TopSelling[0].Name, report.TopSelling[1].Name}
	require.Contains(t, names, "Madu")
}

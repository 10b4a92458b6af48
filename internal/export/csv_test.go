package export

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/invmaster/invmaster/internal/ledger"
)

func TestWriteProductsCSV(t *testing.T) {
	var sb strings.Builder
	products := []ledger.Product{
		{Code: "BRG001", Name: "Kopi, Premium", Barcode: "899123456001", PurchasePrice: 45000, SellingPrice: 65000, Stock: 45, Category: "Beverage"},
	}

	require.NoError(t, WriteProductsCSV(&sb, products))

	out := sb.String()
	require.Contains(t, out, "Kode,Nama,Barcode")
	require.Contains(t, out, `"Kopi, Premium"`, "comma in name must be quoted")
	require.Contains(t, out, "65.000")
}

func TestWriteTransactionsCSV(t *testing.T) {
	var sb strings.Builder
	transactions := []ledger.Transaction{
		{
			ID:   "tx-1",
			Date: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC),
			Type: ledger.TransactionTypeOut,
			Items: []ledger.TransactionItem{
				{Name: "Kopi", Quantity: 2},
				{Name: "Teh", Quantity: 1},
			},
			Total: 165000,
		},
	}

	require.NoError(t, WriteTransactionsCSV(&sb, transactions))

	out := sb.String()
	require.Contains(t, out, "tx-1")
	require.Contains(t, out, "Kopi (2x), Teh (1x)")
	require.Contains(t, out, "165.000")
}

func TestWriteStockReportCSV(t *testing.T) {
	var sb strings.Builder
	snap := ledger.Snapshot{
		Products: []ledger.Product{
			{Name: "Madu", PurchasePrice: 75000, Stock: 5},
			{Name: "Coklat", PurchasePrice: 15000, Stock: 120},
		},
	}

	require.NoError(t, WriteStockReportCSV(&sb, snap))

	out := sb.String()
	require.Contains(t, out, "Total Stok,125")
	require.Contains(t, out, "Stok Menipis: Madu,5")
	require.NotContains(t, out, "Stok Menipis: Coklat")
}

func TestWriteSalesReportCSV(t *testing.T) {
	var sb strings.Builder
	top := []ledger.ProductSales{{Name: "Kopi", Quantity: 4, Revenue: 260000}}

	require.NoError(t, WriteSalesReportCSV(&sb, 358000, 2, top))

	out := sb.String()
	require.Contains(t, out, "Pendapatan,358.000")
	require.Contains(t, out, "Jumlah Transaksi,2")
	require.Contains(t, out, "Terlaris: Kopi,4")
}

// Package export serialises catalog and ledger views for download.
package export

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/invmaster/invmaster/internal/ledger"
)

// WriteProductsCSV emits the product catalog as CSV.
func WriteProductsCSV(w io.Writer, products []ledger.Product) error {
	writer := csv.NewWriter(w)
	defer writer.Flush()

	if err := writer.Write([]string{"Kode", "Nama", "Barcode", "Harga Beli", "Harga Jual", "Stok", "Kategori"}); err != nil {
		return err
	}
	for _, p := range products {
		record := []string{
			p.Code,
			p.Name,
			p.Barcode,
			formatAmount(p.PurchasePrice),
			formatAmount(p.SellingPrice),
			strconv.Itoa(p.Stock),
			p.Category,
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// WriteTransactionsCSV emits ledger entries as CSV, one row per transaction
// with its items flattened into a single column.
func WriteTransactionsCSV(w io.Writer, transactions []ledger.Transaction) error {
	writer := csv.NewWriter(w)
	defer writer.Flush()

	if err := writer.Write([]string{"ID", "Tanggal", "Tipe", "Barang", "Total"}); err != nil {
		return err
	}
	for _, tx := range transactions {
		lines := make([]string, 0, len(tx.Items))
		for _, item := range tx.Items {
			lines = append(lines, item.Name+" ("+strconv.Itoa(item.Quantity)+"x)")
		}
		record := []string{
			tx.ID,
			tx.Date.Format(time.RFC3339),
			string(tx.Type),
			strings.Join(lines, ", "),
			formatAmount(tx.Total),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// WriteStockReportCSV emits the stock report summary followed by the
// low-stock list.
func WriteStockReportCSV(w io.Writer, snap ledger.Snapshot) error {
	writer := csv.NewWriter(w)
	defer writer.Flush()

	if err := writer.Write([]string{"Metric", "Value"}); err != nil {
		return err
	}
	summary := [][]string{
		{"Total Stok", strconv.Itoa(snap.TotalStock())},
		{"Nilai Inventaris", formatAmount(snap.InventoryValue())},
		{"Barang Stok Menipis", strconv.Itoa(len(snap.LowStock(ledger.LowStockWarning, 0)))},
	}
	for _, record := range summary {
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	for _, p := range snap.LowStock(ledger.LowStockWarning, 0) {
		if err := writer.Write([]string{"Stok Menipis: " + p.Name, strconv.Itoa(p.Stock)}); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// WriteSalesReportCSV emits revenue figures and the top-selling ranking.
func WriteSalesReportCSV(w io.Writer, revenue int64, count int, top []ledger.ProductSales) error {
	writer := csv.NewWriter(w)
	defer writer.Flush()

	if err := writer.Write([]string{"Metric", "Value"}); err != nil {
		return err
	}
	if err := writer.Write([]string{"Pendapatan", formatAmount(revenue)}); err != nil {
		return err
	}
	if err := writer.Write([]string{"Jumlah Transaksi", strconv.Itoa(count)}); err != nil {
		return err
	}
	for _, entry := range top {
		record := []string{"Terlaris: " + entry.Name, strconv.Itoa(entry.Quantity)}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

func formatAmount(v int64) string {
	return ledger.FormatAmount(v)
}

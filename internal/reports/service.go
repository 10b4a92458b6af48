// Package reports derives dashboard figures and periodic reports from the
// ledger. Everything here is recomputed per request.
package reports

import (
	"context"
	"fmt"
	"html/template"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/invmaster/invmaster/internal/ledger"
	"github.com/invmaster/invmaster/internal/reports/svg"
)

// firstLedgerYear anchors the dashboard year selector.
const firstLedgerYear = 2022

// LowStockEntry is one warning row on the dashboard.
type LowStockEntry struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Code      string `json:"code"`
	Stock     int    `json:"stock"`
}

// Dashboard is the landing-page summary for one year.
type Dashboard struct {
	Year          int                  `json:"year"`
	Years         []int                `json:"years"`
	TotalProducts int                  `json:"total_products"`
	TotalStock    int                  `json:"total_stock"`
	LowStockCount int                  `json:"low_stock_count"`
	IncomingQty   int                  `json:"incoming_qty"`
	OutgoingQty   int                  `json:"outgoing_qty"`
	Monthly       []ledger.MonthlyStat `json:"monthly"`
	LowStock      []LowStockEntry      `json:"low_stock"`
}

// StockReport summarises inventory health.
type StockReport struct {
	TotalProducts  int             `json:"total_products"`
	TotalStock     int             `json:"total_stock"`
	InventoryValue string          `json:"inventory_value"`
	LowStock       []LowStockEntry `json:"low_stock"`
}

// SalesReport summarises sales over a date range.
type SalesReport struct {
	From       string                `json:"from,omitempty"`
	To         string                `json:"to,omitempty"`
	Revenue    string                `json:"revenue"`
	SalesCount int                   `json:"sales_count"`
	TopSelling []ledger.ProductSales `json:"top_selling"`
}

// Service computes reports from ledger snapshots. Identical chart requests
// arriving together share one render through the singleflight group.
type Service struct {
	store  *ledger.Store
	charts singleflight.Group
}

// NewService builds Service.
func NewService(store *ledger.Store) *Service {
	return &Service{store: store}
}

// Dashboard builds the summary for the given year.
func (s *Service) Dashboard(ctx context.Context, year int) Dashboard {
	snap := s.store.Snapshot()
	if year == 0 {
		year = time.Now().UTC().Year()
	}
	return Dashboard{
		Year:          year,
		Years:         yearRange(firstLedgerYear, time.Now().UTC().Year()),
		TotalProducts: len(snap.Products),
		TotalStock:    snap.TotalStock(),
		LowStockCount: snap.LowStockCount(),
		IncomingQty:   snap.QuantityByType(ledger.TransactionTypeIn),
		OutgoingQty:   snap.QuantityByType(ledger.TransactionTypeOut),
		Monthly:       snap.MonthlySeries(year),
		LowStock:      lowStockEntries(snap, ledger.LowStockWarning, 5),
	}
}

// MonthlyChart renders the dashboard chart for a year as SVG markup.
func (s *Service) MonthlyChart(ctx context.Context, year int) (template.HTML, error) {
	if year == 0 {
		year = time.Now().UTC().Year()
	}
	key := fmt.Sprintf("monthly-%d", year)
	markup, err, _ := s.charts.Do(key, func() (any, error) {
		series := s.store.Snapshot().MonthlySeries(year)
		incoming := make([]int, len(series))
		outgoing := make([]int, len(series))
		labels := make([]string, len(series))
		for i, stat := range series {
			incoming[i] = stat.Incoming
			outgoing[i] = stat.Outgoing
			labels[i] = stat.Month
		}
		return svg.MonthlyBars(svg.DefaultWidth, svg.DefaultHeight, incoming, outgoing, labels, svg.Opts{
			Title:       fmt.Sprintf("Pergerakan Stok %d", year),
			Description: "Perbandingan barang masuk dan keluar per bulan",
		})
	})
	if err != nil {
		return "", err
	}
	return markup.(template.HTML), nil
}

// Stock builds the inventory health report.
func (s *Service) Stock(ctx context.Context) StockReport {
	snap := s.store.Snapshot()
	return StockReport{
		TotalProducts:  len(snap.Products),
		TotalStock:     snap.TotalStock(),
		InventoryValue: ledger.FormatAmount(snap.InventoryValue()),
		LowStock:       lowStockEntries(snap, ledger.LowStockWarning, 0),
	}
}

// StockSnapshot exposes the raw snapshot for CSV export.
func (s *Service) StockSnapshot(ctx context.Context) ledger.Snapshot {
	return s.store.Snapshot()
}

// Sales builds the sales report for an optional date range.
func (s *Service) Sales(ctx context.Context, from, to time.Time) SalesReport {
	snap := s.store.Snapshot()
	report := SalesReport{
		Revenue:    ledger.FormatAmount(snap.Revenue(from, to)),
		SalesCount: snap.SalesCount(from, to),
		TopSelling: snap.TopSelling(from, to, 10),
	}
	if !from.IsZero() {
		report.From = from.Format("2006-01-02")
	}
	if !to.IsZero() {
		report.To = to.Format("2006-01-02")
	}
	return report
}

// SalesFigures returns the raw revenue and ranking for CSV export.
func (s *Service) SalesFigures(ctx context.Context, from, to time.Time) (int64, int, []ledger.ProductSales) {
	snap := s.store.Snapshot()
	return snap.Revenue(from, to), snap.SalesCount(from, to), snap.TopSelling(from, to, 10)
}

func lowStockEntries(snap ledger.Snapshot, threshold, limit int) []LowStockEntry {
	products := snap.LowStock(threshold, limit)
	entries := make([]LowStockEntry, 0, len(products))
	for _, p := range products {
		entries = append(entries, LowStockEntry{ProductID: p.ID, Name: p.Name, Code: p.Code, Stock: p.Stock})
	}
	return entries
}

func yearRange(first, last int) []int {
	if last < first {
		last = first
	}
	years := make([]int, 0, last-first+1)
	for y := first; y <= last; y++ {
		years = append(years, y)
	}
	return years
}

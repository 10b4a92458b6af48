package ledger

import (
	"sort"
	"time"
)

// Snapshot is an immutable view of the ledger state. Every derived figure
// below is recomputed from the snapshot on each call; nothing is cached.
type Snapshot struct {
	Products     []Product
	Transactions []Transaction
}

var monthLabels = [12]string{"Jan", "Feb", "Mar", "Apr", "Mei", "Jun", "Jul", "Agu", "Sep", "Okt", "Nov", "Des"}

// TotalStock sums stock across all products.
func (s Snapshot) TotalStock() int {
	total := 0
	for _, p := range s.Products {
		total += p.Stock
	}
	return total
}

// LowStock returns products at or below the threshold, ascending by stock.
// A limit of 0 means no truncation.
func (s Snapshot) LowStock(threshold, limit int) []Product {
	var low []Product
	for _, p := range s.Products {
		if p.Stock <= threshold {
			low = append(low, p)
		}
	}
	sort.SliceStable(low, func(i, j int) bool { return low[i].Stock < low[j].Stock })
	if limit > 0 && len(low) > limit {
		low = low[:limit]
	}
	return low
}

// LowStockCount counts products at or below the critical threshold.
func (s Snapshot) LowStockCount() int {
	count := 0
	for _, p := range s.Products {
		if p.Stock <= LowStockCritical {
			count++
		}
	}
	return count
}

// QuantityByType sums item quantities across all transactions of the type.
func (s Snapshot) QuantityByType(t TransactionType) int {
	total := 0
	for _, tx := range s.Transactions {
		if tx.Type != t {
			continue
		}
		for _, item := range tx.Items {
			total += item.Quantity
		}
	}
	return total
}

// TotalByType sums transaction totals for the type.
func (s Snapshot) TotalByType(t TransactionType) int64 {
	var total int64
	for _, tx := range s.Transactions {
		if tx.Type == t {
			total += tx.Total
		}
	}
	return total
}

// MonthlySeries builds the 12-month in/out quantity series for a year.
func (s Snapshot) MonthlySeries(year int) []MonthlyStat {
	series := make([]MonthlyStat, 12)
	for i := range series {
		series[i].Month = monthLabels[i]
	}
	for _, tx := range s.Transactions {
		if tx.Date.Year() != year {
			continue
		}
		qty := 0
		for _, item := range tx.Items {
			qty += item.Quantity
		}
		m := int(tx.Date.Month()) - 1
		switch tx.Type {
		case TransactionTypeIn:
			series[m].Incoming += qty
		case TransactionTypeOut:
			series[m].Outgoing += qty
		}
	}
	return series
}

// Revenue sums OUT transaction totals, optionally restricted to [from, to].
// Zero bounds are open.
func (s Snapshot) Revenue(from, to time.Time) int64 {
	var total int64
	for _, tx := range s.Transactions {
		if tx.Type != TransactionTypeOut {
			continue
		}
		if !from.IsZero() && tx.Date.Before(from) {
			continue
		}
		if !to.IsZero() && tx.Date.After(to) {
			continue
		}
		total += tx.Total
	}
	return total
}

// SalesCount counts OUT transactions in the optional date range.
func (s Snapshot) SalesCount(from, to time.Time) int {
	count := 0
	for _, tx := range s.Transactions {
		if tx.Type != TransactionTypeOut {
			continue
		}
		if !from.IsZero() && tx.Date.Before(from) {
			continue
		}
		if !to.IsZero() && tx.Date.After(to) {
			continue
		}
		count++
	}
	return count
}

// InventoryValue sums stock times purchase price across the catalog.
func (s Snapshot) InventoryValue() int64 {
	var total int64
	for _, p := range s.Products {
		total += int64(p.Stock) * p.PurchasePrice
	}
	return total
}

// ProductSales aggregates quantity sold and revenue per product.
type ProductSales struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	Revenue   int64  `json:"revenue"`
}

// TopSelling ranks products by OUT quantity over the optional date range.
// Snapshots of deleted products still count: the ledger is the authority on
// what was sold, not the current catalog.
func (s Snapshot) TopSelling(from, to time.Time, limit int) []ProductSales {
	byProduct := make(map[string]*ProductSales)
	var order []string
	for _, tx := range s.Transactions {
		if tx.Type != TransactionTypeOut {
			continue
		}
		if !from.IsZero() && tx.Date.Before(from) {
			continue
		}
		if !to.IsZero() && tx.Date.After(to) {
			continue
		}
		for _, item := range tx.Items {
			entry, ok := byProduct[item.ProductID]
			if !ok {
				entry = &ProductSales{ProductID: item.ProductID, Name: item.Name}
				byProduct[item.ProductID] = entry
				order = append(order, item.ProductID)
			}
			entry.Quantity += item.Quantity
			entry.Revenue += item.Subtotal
		}
	}
	ranked := make([]ProductSales, 0, len(order))
	for _, id := range order {
		ranked = append(ranked, *byProduct[id])
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Quantity > ranked[j].Quantity })
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

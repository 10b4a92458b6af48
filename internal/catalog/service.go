package catalog

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/invmaster/invmaster/internal/ledger"
	"github.com/invmaster/invmaster/internal/platform/httpx"
)

// EntryRecorder counts recorded ledger entries, typically for metrics.
type EntryRecorder interface {
	RecordLedgerEntry(entryType string)
}

// Service manages the product catalog. Stock-raising edits are turned into
// IN transactions so every unit on hand stays traceable to the ledger.
type Service struct {
	store    *ledger.Store
	recorder EntryRecorder
}

// NewService builds Service. The recorder may be nil.
func NewService(store *ledger.Store, recorder EntryRecorder) *Service {
	return &Service{store: store, recorder: recorder}
}

// List returns catalog entries matching the filters, in insertion order.
func (s *Service) List(ctx context.Context, filters ListFilters) []ledger.Product {
	products := s.store.Products()
	if filters.Search == "" && !filters.LowStock {
		return products
	}
	term := strings.ToLower(filters.Search)
	matched := products[:0]
	for _, p := range products {
		if filters.LowStock && p.Stock > ledger.LowStockWarning {
			continue
		}
		if term != "" &&
			!strings.Contains(strings.ToLower(p.Name), term) &&
			!strings.Contains(strings.ToLower(p.Code), term) &&
			!strings.Contains(p.Barcode, filters.Search) {
			continue
		}
		matched = append(matched, p)
	}
	return matched
}

// Get returns one product.
func (s *Service) Get(ctx context.Context, id string) (ledger.Product, error) {
	p, ok := s.store.Product(id)
	if !ok {
		return ledger.Product{}, fmt.Errorf("%w: product %s", httpx.ErrNotFound, id)
	}
	return p, nil
}

// Create adds a product. A non-zero initial stock is posted as an opening
// IN transaction at the purchase price: the product starts at zero and the
// projection brings it to the requested level.
func (s *Service) Create(ctx context.Context, input ProductInput) (ledger.Product, error) {
	product := ledger.Product{
		ID:            ledger.NewProductID(),
		Code:          input.Code,
		Name:          input.Name,
		Barcode:       input.Barcode,
		PurchasePrice: ledger.ParseAmount(input.PurchasePrice),
		SellingPrice:  ledger.ParseAmount(input.SellingPrice),
		Category:      input.Category,
	}
	if product.Code == "" {
		product.Code = SuggestCode()
	}
	if err := s.store.Apply(ledger.CreateProduct{Product: product}); err != nil {
		if errors.Is(err, ledger.ErrDuplicateProduct) {
			return ledger.Product{}, fmt.Errorf("%w: code %s", httpx.ErrDuplicate, product.Code)
		}
		return ledger.Product{}, err
	}
	if input.Stock > 0 {
		if err := s.recordStockEntry(product, input.Stock, "Stok awal"); err != nil {
			return ledger.Product{}, err
		}
	}
	p, _ := s.store.Product(product.ID)
	return p, nil
}

// Update edits a product. Raising the stock field counts as a restock and
// is posted as an IN transaction for the delta; lowering it is applied to
// the product record only, bypassing the ledger.
func (s *Service) Update(ctx context.Context, id string, input ProductInput) (ledger.Product, error) {
	current, ok := s.store.Product(id)
	if !ok {
		return ledger.Product{}, fmt.Errorf("%w: product %s", httpx.ErrNotFound, id)
	}

	updated := ledger.Product{
		ID:            id,
		Code:          input.Code,
		Name:          input.Name,
		Barcode:       input.Barcode,
		PurchasePrice: ledger.ParseAmount(input.PurchasePrice),
		SellingPrice:  ledger.ParseAmount(input.SellingPrice),
		Stock:         input.Stock,
		Category:      input.Category,
	}
	if updated.Code == "" {
		updated.Code = current.Code
	}

	if input.Stock > current.Stock {
		// Keep the stored stock and let the IN projection raise it, so the
		// delta is not applied twice.
		delta := input.Stock - current.Stock
		updated.Stock = current.Stock
		if err := s.store.Apply(ledger.UpdateProduct{Product: updated}); err != nil {
			return ledger.Product{}, err
		}
		if err := s.recordStockEntry(updated, delta, "Penambahan stok"); err != nil {
			return ledger.Product{}, err
		}
	} else {
		if err := s.store.Apply(ledger.UpdateProduct{Product: updated}); err != nil {
			return ledger.Product{}, err
		}
	}
	p, _ := s.store.Product(id)
	return p, nil
}

// Delete removes a product immediately. Past transactions keep their
// snapshots; there is no rollback.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.store.Apply(ledger.DeleteProduct{ID: id}); err != nil {
		if errors.Is(err, ledger.ErrProductNotFound) {
			return fmt.Errorf("%w: product %s", httpx.ErrNotFound, id)
		}
		return err
	}
	return nil
}

func (s *Service) recordStockEntry(p ledger.Product, qty int, note string) error {
	now := time.Now().UTC()
	tx := ledger.Transaction{
		ID:   ledger.NewTransactionID(),
		Date: now,
		Type: ledger.TransactionTypeIn,
		Note: note,
		Items: []ledger.TransactionItem{{
			ProductID: p.ID,
			Name:      p.Name,
			Price:     p.PurchasePrice,
			Quantity:  qty,
		}},
	}
	if err := s.store.Apply(ledger.RecordTransaction{Transaction: tx}); err != nil {
		return err
	}
	if s.recorder != nil {
		s.recorder.RecordLedgerEntry(string(ledger.TransactionTypeIn))
	}
	return nil
}

// SuggestCode proposes a short product code for new entries.
func SuggestCode() string {
	return fmt.Sprintf("BRG%03d", rand.Intn(900)+100)
}

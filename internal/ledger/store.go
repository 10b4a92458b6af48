package ledger

import (
	"fmt"
	"sync"
)

// Store owns the product collection and the append-only transaction list
// for the lifetime of the process. All mutation goes through Apply; reads
// hand out copies so callers can never alias internal state.
//
// A mutex enforces the single-writer discipline: the ledger semantics are
// single-actor, but the HTTP surface is not, so commands serialize here.
type Store struct {
	mu           sync.RWMutex
	products     []Product
	productIdx   map[string]int
	transactions []Transaction
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{productIdx: make(map[string]int)}
}

// Apply runs one command against the store. Structurally invalid commands
// are rejected before any state changes; a command therefore either applies
// fully or not at all.
func (s *Store) Apply(cmd Command) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch c := cmd.(type) {
	case CreateProduct:
		return s.createProduct(c.Product)
	case UpdateProduct:
		return s.updateProduct(c.Product)
	case DeleteProduct:
		return s.deleteProduct(c.ID)
	case RecordTransaction:
		return s.recordTransaction(c.Transaction)
	default:
		return fmt.Errorf("ledger: unknown command %T", cmd)
	}
}

func (s *Store) createProduct(p Product) error {
	if p.ID == "" {
		return fmt.Errorf("ledger: product id required")
	}
	if _, ok := s.productIdx[p.ID]; ok {
		return ErrDuplicateProduct
	}
	if p.Stock < 0 {
		p.Stock = 0
	}
	s.productIdx[p.ID] = len(s.products)
	s.products = append(s.products, p)
	return nil
}

func (s *Store) updateProduct(p Product) error {
	idx, ok := s.productIdx[p.ID]
	if !ok {
		return ErrProductNotFound
	}
	if p.Stock < 0 {
		p.Stock = 0
	}
	s.products[idx] = p
	return nil
}

func (s *Store) deleteProduct(id string) error {
	idx, ok := s.productIdx[id]
	if !ok {
		return ErrProductNotFound
	}
	s.products = append(s.products[:idx], s.products[idx+1:]...)
	delete(s.productIdx, id)
	for i := idx; i < len(s.products); i++ {
		s.productIdx[s.products[i].ID] = i
	}
	return nil
}

// recordTransaction appends tx to the front of the ledger and projects its
// items onto product stock. The total is recomputed from the items, never
// trusted from the caller. Items referencing products that are no longer in
// the catalog are skipped: items are snapshots, and the product may have
// been deleted after an earlier transaction referenced it.
//
// An OUT movement is never rejected for insufficient stock; the projection
// floors at zero. Stock checks belong to the cashier boundary, not here.
func (s *Store) recordTransaction(tx Transaction) error {
	if !tx.Type.Valid() {
		return ErrInvalidType
	}
	if len(tx.Items) == 0 {
		return ErrEmptyTransaction
	}
	var total int64
	for i := range tx.Items {
		if tx.Items[i].Quantity <= 0 {
			return ErrInvalidQuantity
		}
		tx.Items[i].Subtotal = tx.Items[i].Price * int64(tx.Items[i].Quantity)
		total += tx.Items[i].Subtotal
	}
	tx.Total = total

	for _, item := range tx.Items {
		idx, ok := s.productIdx[item.ProductID]
		if !ok {
			continue
		}
		switch tx.Type {
		case TransactionTypeIn:
			s.products[idx].Stock += item.Quantity
		case TransactionTypeOut:
			s.products[idx].Stock -= item.Quantity
			if s.products[idx].Stock < 0 {
				s.products[idx].Stock = 0
			}
		}
	}

	tx.Items = append([]TransactionItem(nil), tx.Items...)
	s.transactions = append([]Transaction{tx}, s.transactions...)
	return nil
}

// Product returns one product by ID.
func (s *Store) Product(id string) (Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	idx, ok := s.productIdx[id]
	if !ok {
		return Product{}, false
	}
	return s.products[idx], true
}

// Products returns the catalog in insertion order.
func (s *Store) Products() []Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Product(nil), s.products...)
}

// Transactions returns the ledger, most recent first.
func (s *Store) Transactions() []Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Transaction, len(s.transactions))
	for i, tx := range s.transactions {
		tx.Items = append([]TransactionItem(nil), tx.Items...)
		out[i] = tx
	}
	return out
}

// Transaction returns one ledger entry by ID.
func (s *Store) Transaction(id string) (Transaction, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, tx := range s.transactions {
		if tx.ID == id {
			tx.Items = append([]TransactionItem(nil), tx.Items...)
			return tx, true
		}
	}
	return Transaction{}, false
}

// Snapshot captures both collections at one point in time. Aggregates are
// pure functions of a snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap := Snapshot{
		Products:     append([]Product(nil), s.products...),
		Transactions: make([]Transaction, len(s.transactions)),
	}
	for i, tx := range s.transactions {
		tx.Items = append([]TransactionItem(nil), tx.Items...)
		snap.Transactions[i] = tx
	}
	return snap
}

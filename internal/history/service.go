// Package history exposes the transaction ledger for browsing and export.
package history

import (
	"context"
	"fmt"
	"strings"

	"github.com/invmaster/invmaster/internal/ledger"
	"github.com/invmaster/invmaster/internal/platform/httpx"
)

// Filters narrows the transaction listing. Type accepts "ALL", "IN" or
// "OUT"; anything else falls back to ALL.
type Filters struct {
	Search string
	Type   string
}

// Summary totals the listed entries per direction.
type Summary struct {
	TotalIn  int64 `json:"total_in"`
	TotalOut int64 `json:"total_out"`
	Count    int   `json:"count"`
}

// Service reads transactions out of the ledger.
type Service struct {
	store *ledger.Store
}

// NewService builds Service.
func NewService(store *ledger.Store) *Service {
	return &Service{store: store}
}

// List returns transactions matching the filters, most recent first, with a
// summary over the matched set.
func (s *Service) List(ctx context.Context, filters Filters) ([]ledger.Transaction, Summary) {
	transactions := s.store.Transactions()
	term := strings.ToLower(filters.Search)
	wantType := strings.ToUpper(filters.Type)
	if wantType != string(ledger.TransactionTypeIn) && wantType != string(ledger.TransactionTypeOut) {
		wantType = ""
	}

	matched := transactions[:0]
	var summary Summary
	for _, tx := range transactions {
		if wantType != "" && string(tx.Type) != wantType {
			continue
		}
		if term != "" && !matchesSearch(tx, term) {
			continue
		}
		matched = append(matched, tx)
		switch tx.Type {
		case ledger.TransactionTypeIn:
			summary.TotalIn += tx.Total
		case ledger.TransactionTypeOut:
			summary.TotalOut += tx.Total
		}
	}
	summary.Count = len(matched)
	return matched, summary
}

// Get returns one transaction.
func (s *Service) Get(ctx context.Context, id string) (ledger.Transaction, error) {
	tx, ok := s.store.Transaction(id)
	if !ok {
		return ledger.Transaction{}, fmt.Errorf("%w: transaction %s", httpx.ErrNotFound, id)
	}
	return tx, nil
}

func matchesSearch(tx ledger.Transaction, term string) bool {
	if strings.Contains(strings.ToLower(tx.ID), term) {
		return true
	}
	for _, item := range tx.Items {
		if strings.Contains(strings.ToLower(item.Name), term) {
			return true
		}
	}
	return false
}

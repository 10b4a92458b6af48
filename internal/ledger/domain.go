package ledger

import (
	"errors"
	"time"
)

// TransactionType enumerates supported stock movements.
type TransactionType string

const (
	// TransactionTypeIn represents an inbound movement (restock, opening stock).
	TransactionTypeIn TransactionType = "IN"
	// TransactionTypeOut represents an outbound movement (sale).
	TransactionTypeOut TransactionType = "OUT"
)

// Valid reports whether t is one of the known movement types.
func (t TransactionType) Valid() bool {
	return t == TransactionTypeIn || t == TransactionTypeOut
}

// Product is a catalog entry. Prices are stored in the smallest currency
// unit. Stock never goes below zero.
type Product struct {
	ID            string `json:"id"`
	Code          string `json:"code"`
	Name          string `json:"name"`
	Barcode       string `json:"barcode"`
	PurchasePrice int64  `json:"purchase_price"`
	SellingPrice  int64  `json:"selling_price"`
	Stock         int    `json:"stock"`
	Category      string `json:"category"`
}

// TransactionItem is a denormalized snapshot of a product at transaction
// time. Later catalog edits or deletes do not touch it.
type TransactionItem struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	Quantity  int    `json:"quantity"`
	Subtotal  int64  `json:"subtotal"`
}

// Transaction models one ledger entry. Once recorded it is immutable.
// PaymentAmount and ChangeAmount are set only for cashier sales.
type Transaction struct {
	ID            string            `json:"id"`
	Date          time.Time         `json:"date"`
	Type          TransactionType   `json:"type"`
	Items         []TransactionItem `json:"items"`
	Total         int64             `json:"total"`
	PaymentAmount int64             `json:"payment_amount,omitempty"`
	ChangeAmount  int64             `json:"change_amount,omitempty"`
	Note          string            `json:"note,omitempty"`
}

// MonthlyStat holds in/out item quantities for one calendar month.
type MonthlyStat struct {
	Month    string `json:"month"`
	Incoming int    `json:"incoming"`
	Outgoing int    `json:"outgoing"`
}

// Low stock thresholds used across dashboard and reports.
const (
	LowStockCritical = 5
	LowStockWarning  = 10
)

// ErrProductNotFound indicates a lookup for an unknown product ID.
var ErrProductNotFound = errors.New("ledger: product not found")

// ErrDuplicateProduct indicates a create with an ID already in the catalog.
var ErrDuplicateProduct = errors.New("ledger: product already exists")

// ErrEmptyTransaction indicates a transaction without items.
var ErrEmptyTransaction = errors.New("ledger: transaction needs at least one item")

// ErrInvalidQuantity indicates a non-positive item quantity.
var ErrInvalidQuantity = errors.New("ledger: quantity must be positive")

// ErrInvalidType indicates an unknown transaction type.
var ErrInvalidType = errors.New("ledger: unknown transaction type")

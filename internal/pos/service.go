package pos

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/invmaster/invmaster/internal/ledger"
	"github.com/invmaster/invmaster/internal/platform/httpx"
)

// ErrInsufficientPayment rejects a checkout whose payment does not cover
// the total. Nothing is recorded in that case.
var ErrInsufficientPayment = errors.New("pembayaran kurang dari total")

// ShopIdentity is printed on receipts.
type ShopIdentity struct {
	Name    string
	Address string
	Phone   string
}

// CheckoutLine is one requested sale line, by product ID.
type CheckoutLine struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
}

// CheckoutInput is the checkout request. Payment arrives as a free-form
// amount string and is coerced.
type CheckoutInput struct {
	Lines   []CheckoutLine `json:"lines" validate:"required,min=1,dive"`
	Payment string         `json:"payment_amount" validate:"required"`
}

// ReceiptLine is one sold item on the printed receipt.
type ReceiptLine struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Price    string `json:"price"`
	Subtotal string `json:"subtotal"`
}

// Receipt is the checkout result handed back to the cashier.
type Receipt struct {
	InvoiceID     string        `json:"invoice_id"`
	TransactionID string        `json:"transaction_id"`
	ShopName      string        `json:"shop_name"`
	ShopAddress   string        `json:"shop_address"`
	ShopPhone     string        `json:"shop_phone"`
	Date          time.Time     `json:"date"`
	Lines         []ReceiptLine `json:"lines"`
	Total         string        `json:"total"`
	Payment       string        `json:"payment"`
	Change        string        `json:"change"`
}

// EntryRecorder counts recorded ledger entries, typically for metrics.
type EntryRecorder interface {
	RecordLedgerEntry(entryType string)
}

// Service runs the checkout flow against the ledger.
type Service struct {
	store    *ledger.Store
	shop     ShopIdentity
	recorder EntryRecorder
}

// NewService builds Service. The recorder may be nil.
func NewService(store *ledger.Store, shop ShopIdentity, recorder EntryRecorder) *Service {
	return &Service{store: store, shop: shop, recorder: recorder}
}

// SellableProducts lists products with stock on hand, optionally filtered by
// a search term over name, code and barcode.
func (s *Service) SellableProducts(ctx context.Context, search string) []ledger.Product {
	products := s.store.Products()
	term := strings.ToLower(search)
	matched := products[:0]
	for _, p := range products {
		if p.Stock <= 0 {
			continue
		}
		if term != "" &&
			!strings.Contains(strings.ToLower(p.Name), term) &&
			!strings.Contains(strings.ToLower(p.Code), term) &&
			!strings.Contains(p.Barcode, search) {
			continue
		}
		matched = append(matched, p)
	}
	return matched
}

// Checkout builds a cart from the requested lines, validates the payment
// and records one OUT transaction. The ledger is untouched on any failure.
func (s *Service) Checkout(ctx context.Context, input CheckoutInput) (Receipt, error) {
	cart := NewCart()
	for _, line := range input.Lines {
		product, ok := s.store.Product(line.ProductID)
		if !ok {
			return Receipt{}, fmt.Errorf("%w: product %s", httpx.ErrNotFound, line.ProductID)
		}
		cart.Add(product, line.Quantity)
	}
	if cart.Empty() {
		return Receipt{}, fmt.Errorf("%w: keranjang kosong", httpx.ErrValidation)
	}

	total := cart.Total()
	payment := ledger.ParseAmount(input.Payment)
	if payment < total {
		return Receipt{}, fmt.Errorf("%w: total %s, dibayar %s",
			ErrInsufficientPayment, ledger.FormatAmount(total), ledger.FormatAmount(payment))
	}

	now := time.Now().UTC()
	items := make([]ledger.TransactionItem, 0, len(cart.Lines()))
	for _, line := range cart.Lines() {
		items = append(items, ledger.TransactionItem{
			ProductID: line.Product.ID,
			Name:      line.Product.Name,
			Price:     line.Product.SellingPrice,
			Quantity:  line.Quantity,
		})
	}
	tx := ledger.Transaction{
		ID:            ledger.NewTransactionID(),
		Date:          now,
		Type:          ledger.TransactionTypeOut,
		Items:         items,
		PaymentAmount: payment,
		ChangeAmount:  payment - total,
	}
	if err := s.store.Apply(ledger.RecordTransaction{Transaction: tx}); err != nil {
		return Receipt{}, err
	}
	if s.recorder != nil {
		s.recorder.RecordLedgerEntry(string(ledger.TransactionTypeOut))
	}

	return s.buildReceipt(tx, total, payment, now), nil
}

func (s *Service) buildReceipt(tx ledger.Transaction, total, payment int64, at time.Time) Receipt {
	lines := make([]ReceiptLine, 0, len(tx.Items))
	for _, item := range tx.Items {
		lines = append(lines, ReceiptLine{
			Name:     item.Name,
			Quantity: item.Quantity,
			Price:    ledger.FormatAmount(item.Price),
			Subtotal: ledger.FormatAmount(item.Price * int64(item.Quantity)),
		})
	}
	return Receipt{
		InvoiceID:     ledger.NewInvoiceID(at),
		TransactionID: tx.ID,
		ShopName:      s.shop.Name,
		ShopAddress:   s.shop.Address,
		ShopPhone:     s.shop.Phone,
		Date:          at,
		Lines:         lines,
		Total:         ledger.FormatAmount(total),
		Payment:       ledger.FormatAmount(payment),
		Change:        ledger.FormatAmount(payment - total),
	}
}

// QuickPayAmounts suggests round payment amounts for a total, always
// including the exact total first.
func QuickPayAmounts(total int64) []int64 {
	amounts := []int64{total}
	for _, candidate := range []int64{50000, 100000, 200000} {
		if candidate > total {
			amounts = append(amounts, candidate)
		}
	}
	return amounts
}

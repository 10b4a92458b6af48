package ledger

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var amountPrinter = message.NewPrinter(language.Indonesian)

// FormatAmount renders an amount with Indonesian digit grouping, e.g.
// 65000 -> "65.000". The currency symbol is left to the caller.
func FormatAmount(v int64) string {
	return amountPrinter.Sprintf("%d", v)
}

// ParseAmount coerces free-form input into an amount by stripping every
// non-digit character. "Rp 65.000" and "65000" both yield 65000; garbage
// yields zero. Input is never rejected.
func ParseAmount(s string) int64 {
	var digits strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return 0
	}
	v, err := strconv.ParseInt(digits.String(), 10, 64)
	if err != nil {
		return 0
	}
	return v
}

// NewProductID generates a catalog identifier.
func NewProductID() string {
	return uuid.NewString()
}

// NewTransactionID generates an identifier for non-sale ledger entries.
func NewTransactionID() string {
	return uuid.NewString()
}

// NewInvoiceID derives the cashier invoice number from the sale time,
// matching the receipt format: INV- plus the last six digits of the unix
// millisecond clock.
func NewInvoiceID(t time.Time) string {
	return fmt.Sprintf("INV-%06d", t.UnixMilli()%1_000_000)
}

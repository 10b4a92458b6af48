// Package pos implements the checkout flow: cart building, payment
// validation, and receipt rendering.
package pos

import "github.com/invmaster/invmaster/internal/ledger"

// CartLine is one product in the cart with its requested quantity.
type CartLine struct {
	Product  ledger.Product
	Quantity int
}

// Cart accumulates products before checkout. Quantities are capped at the
// available stock; an add that cannot raise the quantity is a silent no-op.
type Cart struct {
	lines []CartLine
	index map[string]int
}

// NewCart returns an empty cart.
func NewCart() *Cart {
	return &Cart{index: make(map[string]int)}
}

// Add puts qty units of the product in the cart, clamped so the line never
// exceeds the product's stock.
func (c *Cart) Add(p ledger.Product, qty int) {
	if qty <= 0 || p.Stock <= 0 {
		return
	}
	if i, ok := c.index[p.ID]; ok {
		next := c.lines[i].Quantity + qty
		if next > p.Stock {
			next = p.Stock
		}
		c.lines[i].Quantity = next
		return
	}
	if qty > p.Stock {
		qty = p.Stock
	}
	c.index[p.ID] = len(c.lines)
	c.lines = append(c.lines, CartLine{Product: p, Quantity: qty})
}

// Lines returns the cart content in insertion order.
func (c *Cart) Lines() []CartLine {
	out := make([]CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

// Empty reports whether the cart holds no lines.
func (c *Cart) Empty() bool {
	return len(c.lines) == 0
}

// Total sums selling price times quantity over all lines.
func (c *Cart) Total() int64 {
	var total int64
	for _, line := range c.lines {
		total += line.Product.SellingPrice * int64(line.Quantity)
	}
	return total
}

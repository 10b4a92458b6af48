package catalog

// ProductInput carries catalog form data. Prices arrive as free-form
// strings ("Rp 65.000", "65000") and are coerced, never rejected, matching
// the cashier-facing entry forms.
type ProductInput struct {
	Code          string `json:"code" validate:"omitempty,max=50"`
	Name          string `json:"name" validate:"required,max=200"`
	Barcode       string `json:"barcode" validate:"omitempty,max=50"`
	PurchasePrice string `json:"purchase_price"`
	SellingPrice  string `json:"selling_price"`
	Stock         int    `json:"stock" validate:"gte=0"`
	Category      string `json:"category" validate:"omitempty,max=100"`
}

// ListFilters narrows the catalog listing.
type ListFilters struct {
	Search   string
	LowStock bool
}

package catalog

import "context"

// SeedDemoData loads a small demo catalog for local runs. Each entry goes
// through Create so opening stock lands in the ledger as an IN entry.
func (s *Service) SeedDemoData(ctx context.Context) error {
	demo := []ProductInput{
		{Code: "BRG001", Name: "Premium Arabica Coffee", Barcode: "899123456001", PurchasePrice: "45000", SellingPrice: "65000", Stock: 45, Category: "Beverage"},
		{Code: "BRG002", Name: "Silk Road Tea", Barcode: "899123456002", PurchasePrice: "20000", SellingPrice: "35000", Stock: 12, Category: "Beverage"},
		{Code: "BRG003", Name: "Organic Honey 500ml", Barcode: "899123456003", PurchasePrice: "75000", SellingPrice: "98000", Stock: 5, Category: "Grocery"},
		{Code: "BRG004", Name: "Dark Chocolate Bar", Barcode: "899123456004", PurchasePrice: "15000", SellingPrice: "25000", Stock: 120, Category: "Snack"},
		{Code: "BRG005", Name: "Artisan Sourdough", Barcode: "899123456005", PurchasePrice: "18000", SellingPrice: "32000", Stock: 2, Category: "Bakery"},
	}
	for _, input := range demo {
		if _, err := s.Create(ctx, input); err != nil {
			return err
		}
	}
	return nil
}

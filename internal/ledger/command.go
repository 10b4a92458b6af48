package ledger

// Command is the closed set of mutations the store accepts. Every state
// change, whether it comes from the catalog editor or the cashier, is one
// of these applied through Store.Apply.
type Command interface {
	isCommand()
}

// CreateProduct adds a new product to the catalog.
type CreateProduct struct {
	Product Product
}

// UpdateProduct replaces the stored fields of an existing product.
type UpdateProduct struct {
	Product Product
}

// DeleteProduct removes a product from the catalog. Historical transactions
// keep their item snapshots.
type DeleteProduct struct {
	ID string
}

// RecordTransaction appends a transaction and projects its items onto
// product stock.
type RecordTransaction struct {
	Transaction Transaction
}

func (CreateProduct) isCommand()     {}
func (UpdateProduct) isCommand()     {}
func (DeleteProduct) isCommand()     {}
func (RecordTransaction) isCommand() {}

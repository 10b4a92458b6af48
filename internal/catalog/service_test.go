package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/invmaster/invmaster/internal/ledger"
	"github.com/invmaster/invmaster/internal/platform/httpx"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	return NewService(ledger.NewStore(), nil)
}

func TestCreateWithOpeningStock(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	product, err := svc.Create(ctx, ProductInput{
		Name:          "Kopi Tubruk",
		PurchasePrice: "1.000",
		SellingPrice:  "2.000",
		Stock:         20,
	})
	require.NoError(t, err)
	require.Equal(t, 20, product.Stock)
	require.Equal(t, int64(1000), product.PurchasePrice)

	txs := svc.store.Transactions()
	require.Len(t, txs, 1, "opening stock should post exactly one entry")
	require.Equal(t, ledger.TransactionTypeIn, txs[0].Type)
	require.Equal(t, "Stok awal", txs[0].Note)
	require.Equal(t, int64(20000), txs[0].Total)
	require.Equal(t, product.ID, txs[0].Items[0].ProductID)
}

func TestCreateWithZeroStockPostsNothing(t *testing.T) {
	svc := newTestService(t)

	product, err := svc.Create(context.Background(), ProductInput{Name: "Gula", SellingPrice: "5000"})
	require.NoError(t, err)
	require.Zero(t, product.Stock)
	require.Empty(t, svc.store.Transactions())
}

func TestCreateGeneratesCode(t *testing.T) {
	svc := newTestService(t)

	product, err := svc.Create(context.Background(), ProductInput{Name: "Teh Celup"})
	require.NoError(t, err)
	require.Regexp(t, `^BRG\d{3}$`, product.Code)
}

func TestUpdateRaisingStockPostsDelta(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	product, err := svc.Create(ctx, ProductInput{Name: "Beras 5kg", PurchasePrice: "60000", SellingPrice: "70000", Stock: 10})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, product.ID, ProductInput{
		Name:          "Beras 5kg",
		PurchasePrice: "60000",
		SellingPrice:  "72000",
		Stock:         15,
	})
	require.NoError(t, err)
	require.Equal(t, 15, updated.Stock)
	require.Equal(t, int64(72000), updated.SellingPrice)

	txs := svc.store.Transactions()
	require.Len(t, txs, 2)
	require.Equal(t, "Penambahan stok", txs[0].Note)
	require.Equal(t, 5, txs[0].Items[0].Quantity)
}

func TestUpdateLoweringStockBypassesLedger(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	product, err := svc.Create(ctx, ProductInput{Name: "Minyak Goreng", PurchasePrice: "14000", SellingPrice: "17000", Stock: 10})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, product.ID, ProductInput{
		Name:          "Minyak Goreng",
		PurchasePrice: "14000",
		SellingPrice:  "17000",
		Stock:         4,
	})
	require.NoError(t, err)
	require.Equal(t, 4, updated.Stock)
	require.Len(t, svc.store.Transactions(), 1, "only the opening entry should exist")
}

func TestDeletePreservesTransactionHistory(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	product, err := svc.Create(ctx, ProductInput{Name: "Sabun", PurchasePrice: "3000", SellingPrice: "5000", Stock: 8})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, product.ID))

	_, err = svc.Get(ctx, product.ID)
	require.True(t, errors.Is(err, httpx.ErrNotFound))

	txs := svc.store.Transactions()
	require.Len(t, txs, 1)
	require.Equal(t, "Sabun", txs[0].Items[0].Name)
}

func TestListFilters(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, ProductInput{Code: "BRG100", Name: "Kopi Arabika", Barcode: "899000000001", Stock: 50, SellingPrice: "65000"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, ProductInput{Code: "BRG101", Name: "Teh Hijau", Stock: 3, SellingPrice: "20000"})
	require.NoError(t, err)

	byName := svc.List(ctx, ListFilters{Search: "kopi"})
	require.Len(t, byName, 1)
	require.Equal(t, "Kopi Arabika", byName[0].Name)

	byBarcode := svc.List(ctx, ListFilters{Search: "899000000001"})
	require.Len(t, byBarcode, 1)

	low := svc.List(ctx, ListFilters{LowStock: true})
	require.Len(t, low, 1)
	require.Equal(t, "Teh Hijau", low[0].Name)
}

func TestSeedDemoData(t *testing.T) {
	svc := newTestService(t)

	require.NoError(t, svc.SeedDemoData(context.Background()))
	require.Len(t, svc.store.Products(), 5)

	// Every seeded unit must be traceable to an opening entry.
	snap := svc.store.Snapshot()
	require.Equal(t, snap.TotalStock(), snap.QuantityByType(ledger.TransactionTypeIn))
}

package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/billfold/billfold-api/internal/domain/entity"
	"github.com/billfold/billfold-api/pkg/money"
)

func storedInvoice(number string, unitPrice, qty float64) *entity.Invoice {
	return &entity.Invoice{
		InvoiceNumber: number,
		Customer:      entity.Customer{Name: entity.DefaultCustomerName},
		Items: []entity.InvoiceItem{
			{Name: "NA", Quantity: money.Value(qty), UnitPrice: money.Value(unitPrice)},
		},
	}
}

func TestInvoiceStoreListsNewestFirst(t *testing.T) {
	store := NewInvoiceStore()
	ctx := context.Background()

	require.NoError(t, store.Append(ctx, storedInvoice("INV-A", 100, 1)))
	require.NoError(t, store.Append(ctx, storedInvoice("INV-B", 200, 1)))

	invoices, err := store.List(ctx)
	require.NoError(t, err)

	require.Len(t, invoices, 2)
	assert.Equal(t, "INV-B", invoices[0].InvoiceNumber)
	assert.Equal(t, "INV-A", invoices[1].InvoiceNumber)
}

func TestInvoiceStoreGetByNumber(t *testing.T) {
	store := NewInvoiceStore()
	ctx := context.Background()

	require.NoError(t, store.Append(ctx, storedInvoice("INV-A", 100, 1)))

	found, err := store.GetByNumber(ctx, "INV-A")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "INV-A", found.InvoiceNumber)

	missing, err := store.GetByNumber(ctx, "INV-X")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestInvoiceStoreTotalSalesRecomputes(t *testing.T) {
	store := NewInvoiceStore()
	ctx := context.Background()

	require.NoError(t, store.Append(ctx, storedInvoice("INV-A", 100, 2)))
	require.NoError(t, store.Append(ctx, storedInvoice("INV-B", 50, 3)))

	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	total, err := store.TotalSales(ctx)
	require.NoError(t, err)
	assert.Equal(t, 350.0, total)
}

func TestInvoiceStoreListCopiesAreIsolated(t *testing.T) {
	store := NewInvoiceStore()
	ctx := context.Background()

	require.NoError(t, store.Append(ctx, storedInvoice("INV-A", 100, 1)))

	first, err := store.List(ctx)
	require.NoError(t, err)
	first[0].Items[0].Name = "tampered"

	second, err := store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "NA", second[0].Items[0].Name)
}

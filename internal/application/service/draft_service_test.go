package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/billfold/billfold-api/internal/domain/entity"
	"github.com/billfold/billfold-api/internal/domain/enum"
	"github.com/billfold/billfold-api/internal/infrastructure/memory"
	"github.com/billfold/billfold-api/pkg/money"
)

func newDraftService(products []entity.CatalogProduct) *DraftService {
	return NewDraftService(memory.NewDraftRepository(), memory.NewCatalogRepository(products))
}

func strPtr(s string) *string { return &s }

func valPtr(v float64) *money.Value {
	p := money.Value(v)
	return &p
}

func TestCreateDraftStartsWithOneBlankLine(t *testing.T) {
	svc := newDraftService(nil)

	draft, err := svc.CreateDraft(context.Background())
	require.NoError(t, err)

	require.Len(t, draft.Items, 1)
	assert.Equal(t, int64(1), draft.Items[0].ID)
	assert.Empty(t, draft.Items[0].Name)
	assert.Equal(t, 1.0, draft.Items[0].Quantity.Float64())
	assert.Equal(t, 0.0, draft.Items[0].UnitPrice.Float64())
	assert.Equal(t, enum.PaymentMethodCash, draft.PaymentMethod)
}

func TestAddItemAssignsIncreasingIDs(t *testing.T) {
	svc := newDraftService(nil)
	ctx := context.Background()

	draft, err := svc.CreateDraft(ctx)
	require.NoError(t, err)

	draft, err = svc.AddItem(ctx, draft.ID)
	require.NoError(t, err)
	draft, err = svc.AddItem(ctx, draft.ID)
	require.NoError(t, err)

	require.Len(t, draft.Items, 3)
	assert.Equal(t, []int64{1, 2, 3}, []int64{draft.Items[0].ID, draft.Items[1].ID, draft.Items[2].ID})
}

func TestAddItemFromCatalogDoesNotDeduplicate(t *testing.T) {
	product := entity.CatalogProduct{ID: uuid.New(), Name: "Sugar 1kg", Barcode: "8904063201003", SellingPrice: 48}
	svc := newDraftService([]entity.CatalogProduct{product})
	ctx := context.Background()

	draft, err := svc.CreateDraft(ctx)
	require.NoError(t, err)

	draft, err = svc.AddItemFromCatalog(ctx, draft.ID, product.ID)
	require.NoError(t, err)
	draft, err = svc.AddItemFromCatalog(ctx, draft.ID, product.ID)
	require.NoError(t, err)

	// blank starter line plus two separate catalog lines
	require.Len(t, draft.Items, 3)
	assert.Equal(t, "Sugar 1kg", draft.Items[1].Name)
	assert.Equal(t, "Sugar 1kg", draft.Items[2].Name)
	assert.Equal(t, 48.0, draft.Items[2].UnitPrice.Float64())
	assert.Equal(t, 1.0, draft.Items[2].Quantity.Float64())
}

func TestUpdateItemMergesOnlyGivenFields(t *testing.T) {
	svc := newDraftService(nil)
	ctx := context.Background()

	draft, err := svc.CreateDraft(ctx)
	require.NoError(t, err)

	draft, err = svc.UpdateItem(ctx, draft.ID, 1, UpdateItemInput{
		Name:      strPtr("Notebook"),
		UnitPrice: valPtr(60),
	})
	require.NoError(t, err)

	item := draft.Items[0]
	assert.Equal(t, "Notebook", item.Name)
	assert.Equal(t, 60.0, item.UnitPrice.Float64())
	assert.Equal(t, 1.0, item.Quantity.Float64(), "untouched field must survive")

	draft, err = svc.UpdateItem(ctx, draft.ID, 1, UpdateItemInput{Quantity: valPtr(3)})
	require.NoError(t, err)
	assert.Equal(t, "Notebook", draft.Items[0].Name)
	assert.Equal(t, 3.0, draft.Items[0].Quantity.Float64())
}

func TestUpdateItemUnknownIDIsNoOp(t *testing.T) {
	svc := newDraftService(nil)
	ctx := context.Background()

	draft, err := svc.CreateDraft(ctx)
	require.NoError(t, err)

	updated, err := svc.UpdateItem(ctx, draft.ID, 999, UpdateItemInput{Name: strPtr("ghost")})
	require.NoError(t, err)
	assert.Equal(t, draft.Items, updated.Items)
}

func TestRemoveItemUnknownIDIsNoOp(t *testing.T) {
	svc := newDraftService(nil)
	ctx := context.Background()

	draft, err := svc.CreateDraft(ctx)
	require.NoError(t, err)

	updated, err := svc.RemoveItem(ctx, draft.ID, 42)
	require.NoError(t, err)
	assert.Len(t, updated.Items, 1)
}

func TestRemoveItemKeepsOrder(t *testing.T) {
	svc := newDraftService(nil)
	ctx := context.Background()

	draft, err := svc.CreateDraft(ctx)
	require.NoError(t, err)
	draft, err = svc.AddItem(ctx, draft.ID)
	require.NoError(t, err)
	draft, err = svc.AddItem(ctx, draft.ID)
	require.NoError(t, err)

	draft, err = svc.RemoveItem(ctx, draft.ID, 2)
	require.NoError(t, err)

	require.Len(t, draft.Items, 2)
	assert.Equal(t, int64(1), draft.Items[0].ID)
	assert.Equal(t, int64(3), draft.Items[1].ID)
}

func TestSelectProductPreservesQuantityAndDiscount(t *testing.T) {
	product := entity.CatalogProduct{ID: uuid.New(), Name: "Toor Dal 1kg", Barcode: "8904043900113", SellingPrice: 178}
	svc := newDraftService([]entity.CatalogProduct{product})
	ctx := context.Background()

	draft, err := svc.CreateDraft(ctx)
	require.NoError(t, err)

	draft, err = svc.UpdateItem(ctx, draft.ID, 1, UpdateItemInput{
		Quantity:     valPtr(5),
		UnitDiscount: valPtr(10),
	})
	require.NoError(t, err)

	draft, err = svc.SelectProduct(ctx, draft.ID, 1, product.ID)
	require.NoError(t, err)

	item := draft.Items[0]
	assert.Equal(t, "Toor Dal 1kg", item.Name)
	assert.Equal(t, "8904043900113", item.SKU)
	assert.Equal(t, 178.0, item.UnitPrice.Float64())
	assert.Equal(t, 5.0, item.Quantity.Float64())
	assert.Equal(t, 10.0, item.UnitDiscount.Float64())
}

func TestDraftTotalsRecompute(t *testing.T) {
	svc := newDraftService(nil)
	ctx := context.Background()

	draft, err := svc.CreateDraft(ctx)
	require.NoError(t, err)

	_, err = svc.UpdateItem(ctx, draft.ID, 1, UpdateItemInput{
		UnitPrice:    valPtr(500),
		Quantity:     valPtr(2),
		UnitDiscount: valPtr(10),
	})
	require.NoError(t, err)

	_, err = svc.UpdateDraft(ctx, draft.ID, UpdateDraftInput{
		TaxPercent:   valPtr(10),
		OtherCharges: valPtr(50),
	})
	require.NoError(t, err)

	totals, err := svc.Totals(ctx, draft.ID)
	require.NoError(t, err)

	assert.Equal(t, 1000.0, totals.Subtotal)
	assert.Equal(t, 20.0, totals.DiscountTotal)
	assert.Equal(t, 98.0, totals.Tax)
	assert.Equal(t, 1128.0, totals.Total)
}

func TestSearchCatalogCaps(t *testing.T) {
	products := make([]entity.CatalogProduct, 12)
	for i := range products {
		products[i] = entity.CatalogProduct{
			ID:      uuid.New(),
			Name:    fmt.Sprintf("Masala Mix %02d", i+1),
			Barcode: fmt.Sprintf("89000000000%02d", i+1),
		}
	}
	svc := newDraftService(products)
	ctx := context.Background()

	empty, err := svc.SearchCatalog(ctx, "")
	require.NoError(t, err)
	assert.Len(t, empty, 6, "empty query shows the head of the catalog")

	matched, err := svc.SearchCatalog(ctx, "masala")
	require.NoError(t, err)
	assert.Len(t, matched, 8, "typed query widens the window")
}

func TestSearchCatalogMatchesNameBrandAndBarcode(t *testing.T) {
	products := []entity.CatalogProduct{
		{ID: uuid.New(), Name: "Basmati Rice 5kg", Brand: "India Gate", Barcode: "8901058000290"},
		{ID: uuid.New(), Name: "Sunflower Oil 1L", Brand: "Fortune", Barcode: "8901030529764"},
	}
	svc := newDraftService(products)
	ctx := context.Background()

	byName, err := svc.SearchCatalog(ctx, "RICE")
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, "Basmati Rice 5kg", byName[0].Name)

	byBrand, err := svc.SearchCatalog(ctx, "fortune")
	require.NoError(t, err)
	require.Len(t, byBrand, 1)
	assert.Equal(t, "Sunflower Oil 1L", byBrand[0].Name)

	byBarcode, err := svc.SearchCatalog(ctx, "529764")
	require.NoError(t, err)
	require.Len(t, byBarcode, 1)
	assert.Equal(t, "Sunflower Oil 1L", byBarcode[0].Name)
}

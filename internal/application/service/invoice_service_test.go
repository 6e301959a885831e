package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/billfold/billfold-api/internal/domain/entity"
	"github.com/billfold/billfold-api/internal/infrastructure/memory"
	"github.com/billfold/billfold-api/pkg/apperror"
)

type invoiceFixture struct {
	drafts   *memory.DraftRepository
	store    *memory.InvoiceStore
	settings *memory.SettingsStore
	draftSvc *DraftService
	svc      *InvoiceService
}

func newInvoiceFixture() *invoiceFixture {
	drafts := memory.NewDraftRepository()
	store := memory.NewInvoiceStore()
	settings := memory.NewSettingsStore(entity.ShopSettings{
		ShopName:    "Billfold Store",
		ShopAddress: "12 MG Road, Bengaluru",
		ShopPhone:   "+91 80 4000 1234",
	})
	return &invoiceFixture{
		drafts:   drafts,
		store:    store,
		settings: settings,
		draftSvc: NewDraftService(drafts, memory.NewCatalogRepository(nil)),
		svc:      NewInvoiceService(drafts, store, settings),
	}
}

func TestBuildAppliesDefaults(t *testing.T) {
	fx := newInvoiceFixture()
	ctx := context.Background()

	draft, err := fx.draftSvc.CreateDraft(ctx)
	require.NoError(t, err)

	invoice, err := fx.svc.Build(ctx, draft.ID)
	require.NoError(t, err)

	assert.Equal(t, entity.DefaultCustomerName, invoice.Customer.Name)
	require.Len(t, invoice.Items, 1)
	assert.Equal(t, "NA", invoice.Items[0].Name, "blank line names default to NA")
	assert.Equal(t, "Billfold Store", invoice.Issuer.ShopName)
	assert.NotEmpty(t, invoice.InvoiceNumber)
	assert.False(t, invoice.Date.IsZero())
}

func TestBuildDeletesTheDraft(t *testing.T) {
	fx := newInvoiceFixture()
	ctx := context.Background()

	draft, err := fx.draftSvc.CreateDraft(ctx)
	require.NoError(t, err)

	_, err = fx.svc.Build(ctx, draft.ID)
	require.NoError(t, err)

	gone, err := fx.drafts.GetByID(ctx, draft.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)
}

func TestBuildUnknownDraftFails(t *testing.T) {
	fx := newInvoiceFixture()

	_, err := fx.svc.Build(context.Background(), uuid.New())
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}

func TestBuildNilItemListFails(t *testing.T) {
	fx := newInvoiceFixture()
	ctx := context.Background()

	draft := &entity.Draft{ID: uuid.New()}
	require.NoError(t, fx.drafts.Create(ctx, draft))

	_, err := fx.svc.Build(ctx, draft.ID)
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}

func TestBuildEmptyItemListSucceeds(t *testing.T) {
	fx := newInvoiceFixture()
	ctx := context.Background()

	draft := &entity.Draft{ID: uuid.New(), Items: []entity.DraftItem{}}
	require.NoError(t, fx.drafts.Create(ctx, draft))

	invoice, err := fx.svc.Build(ctx, draft.ID)
	require.NoError(t, err)
	assert.Empty(t, invoice.Items)
	assert.Equal(t, 0.0, invoice.Totals().Total)
}

func TestBuildNumbersAreUnique(t *testing.T) {
	fx := newInvoiceFixture()
	ctx := context.Background()

	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		draft, err := fx.draftSvc.CreateDraft(ctx)
		require.NoError(t, err)

		invoice, err := fx.svc.Build(ctx, draft.ID)
		require.NoError(t, err)

		assert.False(t, seen[invoice.InvoiceNumber], "duplicate number %s", invoice.InvoiceNumber)
		seen[invoice.InvoiceNumber] = true
	}
}

func TestBuildSnapshotsIssuer(t *testing.T) {
	fx := newInvoiceFixture()
	ctx := context.Background()

	draft, err := fx.draftSvc.CreateDraft(ctx)
	require.NoError(t, err)

	invoice, err := fx.svc.Build(ctx, draft.ID)
	require.NoError(t, err)

	newName := "Renamed Traders"
	settingsSvc := NewSettingsService(fx.settings)
	_, err = settingsSvc.UpdateSettings(ctx, &UpdateSettingsInput{ShopName: &newName})
	require.NoError(t, err)

	stored, err := fx.svc.Get(ctx, invoice.InvoiceNumber)
	require.NoError(t, err)
	assert.Equal(t, "Billfold Store", stored.Issuer.ShopName, "historical invoices keep their issuer")
}

func TestStoredInvoiceIsIsolatedFromCallerMutation(t *testing.T) {
	fx := newInvoiceFixture()
	ctx := context.Background()

	draft, err := fx.draftSvc.CreateDraft(ctx)
	require.NoError(t, err)
	_, err = fx.draftSvc.UpdateItem(ctx, draft.ID, 1, UpdateItemInput{
		Name:      strPtr("Ledger Book"),
		UnitPrice: valPtr(120),
	})
	require.NoError(t, err)

	invoice, err := fx.svc.Build(ctx, draft.ID)
	require.NoError(t, err)

	// mutate the returned copy; the store must not observe it
	invoice.Items[0].Name = "tampered"

	stored, err := fx.svc.Get(ctx, invoice.InvoiceNumber)
	require.NoError(t, err)
	assert.Equal(t, "Ledger Book", stored.Items[0].Name)
}

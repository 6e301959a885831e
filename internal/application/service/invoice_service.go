package service

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/billfold/billfold-api/internal/domain/entity"
	"github.com/billfold/billfold-api/internal/domain/repository"
	"github.com/billfold/billfold-api/pkg/apperror"
)

// InvoiceService builds immutable invoices from drafts and reads them
// back from the store.
type InvoiceService struct {
	draftRepo    repository.DraftRepository
	store        repository.InvoiceStore
	settingsRepo repository.SettingsStore

	// seq strengthens the time-based invoice number with a monotonic
	// per-session counter so rapid successive builds cannot collide.
	seq atomic.Int64
}

// NewInvoiceService creates a new invoice service
func NewInvoiceService(
	draftRepo repository.DraftRepository,
	store repository.InvoiceStore,
	settingsRepo repository.SettingsStore,
) *InvoiceService {
	return &InvoiceService{
		draftRepo:    draftRepo,
		store:        store,
		settingsRepo: settingsRepo,
	}
}

// Build freezes the draft into an immutable invoice and appends it to
// the store. The draft itself is deleted afterwards; later edits to
// any draft can never reach a built invoice.
//
// Only structural problems fail the build. Business-level validation
// (at least one line, non-negative amounts) is deliberately left to
// the caller: an empty or zero-quantity invoice builds fine.
func (s *InvoiceService) Build(ctx context.Context, draftID uuid.UUID) (*entity.Invoice, error) {
	draft, err := s.draftRepo.GetByID(ctx, draftID)
	if err != nil {
		return nil, err
	}
	if draft == nil {
		return nil, apperror.NewNotFoundError("Draft")
	}

	invoice, err := s.freeze(ctx, draft)
	if err != nil {
		return nil, err
	}

	if err := s.store.Append(ctx, invoice); err != nil {
		return nil, err
	}

	// Best effort: a leaked draft is harmless, the invoice is already
	// committed.
	_ = s.draftRepo.Delete(ctx, draftID)

	return invoice, nil
}

// freeze snapshots the draft into invoice form.
func (s *InvoiceService) freeze(ctx context.Context, draft *entity.Draft) (*entity.Invoice, error) {
	if draft.Items == nil {
		return nil, apperror.NewBadRequestError("Draft has no item list")
	}

	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	items := make([]entity.InvoiceItem, len(draft.Items))
	for i, it := range draft.Items {
		name := it.Name
		if name == "" {
			name = "NA"
		}
		items[i] = entity.InvoiceItem{
			Name:         name,
			SKU:          it.SKU,
			Quantity:     it.Quantity,
			UnitPrice:    it.UnitPrice,
			UnitDiscount: it.UnitDiscount,
		}
	}

	customer := draft.Customer
	if customer.Name == "" {
		customer.Name = entity.DefaultCustomerName
	}

	return &entity.Invoice{
		InvoiceNumber: s.nextInvoiceNumber(now),
		Date:          now,
		Customer:      customer,
		Items:         items,
		PaymentMethod: draft.PaymentMethod,
		TaxPercent:    draft.TaxPercent,
		OtherCharges:  draft.OtherCharges,
		Notes:         draft.Notes,
		Issuer:        settings.Issuer(),
	}, nil
}

// nextInvoiceNumber generates "INV-20260828-0001" style numbers: date
// prefix for readability, counter for uniqueness within the session.
func (s *InvoiceService) nextInvoiceNumber(now time.Time) string {
	n := s.seq.Add(1)
	return fmt.Sprintf("INV-%s-%04d", now.Format("20060102"), n)
}

// List returns stored invoices, newest first.
func (s *InvoiceService) List(ctx context.Context) ([]entity.Invoice, error) {
	return s.store.List(ctx)
}

// Get returns a stored invoice by number.
func (s *InvoiceService) Get(ctx context.Context, invoiceNumber string) (*entity.Invoice, error) {
	invoice, err := s.store.GetByNumber(ctx, invoiceNumber)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, apperror.NewNotFoundError("Invoice")
	}
	return invoice, nil
}

package repository

import (
	"context"

	"github.com/billfold/billfold-api/internal/domain/entity"
)

// InvoiceStore is the session-lifetime, append-only collection of
// committed invoices, ordered newest-first. No update or delete of a
// stored invoice exists: history is immutable.
type InvoiceStore interface {
	// Append inserts a fully-built invoice at the head of the store.
	// It must be atomic with respect to List: a reader never observes
	// a partially-appended store.
	Append(ctx context.Context, invoice *entity.Invoice) error
	// List returns the ordered sequence, newest first. Implementations
	// return copies so callers cannot mutate stored records.
	List(ctx context.Context) ([]entity.Invoice, error)
	// GetByNumber returns the invoice with the given number, or nil.
	GetByNumber(ctx context.Context, invoiceNumber string) (*entity.Invoice, error)
	// Count returns the number of stored invoices.
	Count(ctx context.Context) (int, error)
	// TotalSales sums every invoice's total, recomputed from that
	// invoice's own items, tax percent and other charges. A cached
	// total field is never trusted.
	TotalSales(ctx context.Context) (float64, error)
}

// Package memory provides the in-memory implementations of the domain
// repositories. Invoice history is session-lifetime by design: the
// store lives for the life of the process and is never persisted.
package memory

import (
	"context"
	"sync"

	"github.com/billfold/billfold-api/internal/domain/entity"
	"github.com/billfold/billfold-api/internal/domain/repository"
)

// InvoiceStore is the append-only, newest-first invoice collection.
type InvoiceStore struct {
	mu       sync.RWMutex
	invoices []entity.Invoice
}

// NewInvoiceStore creates an empty invoice store.
func NewInvoiceStore() *InvoiceStore {
	return &InvoiceStore{}
}

var _ repository.InvoiceStore = (*InvoiceStore)(nil)

// Append inserts the invoice at the head. The write lock makes the
// prepend atomic with respect to readers.
func (s *InvoiceStore) Append(ctx context.Context, invoice *entity.Invoice) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.invoices = append([]entity.Invoice{*invoice.Clone()}, s.invoices...)
	return nil
}

// List returns a deep copy of the stored sequence, newest first.
func (s *InvoiceStore) List(ctx context.Context) ([]entity.Invoice, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]entity.Invoice, len(s.invoices))
	for i := range s.invoices {
		out[i] = *s.invoices[i].Clone()
	}
	return out, nil
}

// GetByNumber returns a copy of the invoice with the given number, or
// nil if it is not in the store.
func (s *InvoiceStore) GetByNumber(ctx context.Context, invoiceNumber string) (*entity.Invoice, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.invoices {
		if s.invoices[i].InvoiceNumber == invoiceNumber {
			return s.invoices[i].Clone(), nil
		}
	}
	return nil, nil
}

// Count returns the number of stored invoices.
func (s *InvoiceStore) Count(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.invoices), nil
}

// TotalSales sums the recomputed total of every stored invoice.
func (s *InvoiceStore) TotalSales(ctx context.Context) (float64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var total float64
	for i := range s.invoices {
		total += s.invoices[i].Totals().Total
	}
	return total, nil
}

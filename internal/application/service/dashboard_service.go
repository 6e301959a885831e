package service

import (
	"context"

	"github.com/billfold/billfold-api/internal/domain/repository"
)

// DashboardService aggregates store-wide statistics for the dashboard
// header cards.
type DashboardService struct {
	store repository.InvoiceStore
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(store repository.InvoiceStore) *DashboardService {
	return &DashboardService{store: store}
}

// DashboardStats holds the derived aggregates. TotalSales is always
// recomputed from each invoice's own items; there is no cached figure
// to drift out of sync.
type DashboardStats struct {
	InvoiceCount int     `json:"invoice_count"`
	TotalSales   float64 `json:"total_sales"`
}

// GetStats returns the current aggregates.
func (s *DashboardService) GetStats(ctx context.Context) (*DashboardStats, error) {
	count, err := s.store.Count(ctx)
	if err != nil {
		return nil, err
	}
	total, err := s.store.TotalSales(ctx)
	if err != nil {
		return nil, err
	}
	return &DashboardStats{InvoiceCount: count, TotalSales: total}, nil
}

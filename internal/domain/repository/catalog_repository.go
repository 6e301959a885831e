package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/billfold/billfold-api/internal/domain/entity"
)

// CatalogRepository supplies the read-only product snapshot the editor
// searches for line-item autocomplete. The editor re-queries it per
// keystroke; a linear scan is acceptable at the catalog sizes expected
// here.
type CatalogRepository interface {
	List(ctx context.Context) ([]entity.CatalogProduct, error)
	// GetByID returns the product, or nil if unknown.
	GetByID(ctx context.Context, id uuid.UUID) (*entity.CatalogProduct, error)
	// Search returns products matching the free-text query, in catalog
	// order, capped at limit.
	Search(ctx context.Context, query string, limit int) ([]entity.CatalogProduct, error)
}

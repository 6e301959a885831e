package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/billfold/billfold-api/internal/domain/entity"
	"github.com/billfold/billfold-api/internal/domain/repository"
)

// CatalogRepository serves a read-only product snapshot. The snapshot
// can be replaced wholesale (e.g. after a refresh from the upstream
// catalog API) but individual products are never mutated in place.
type CatalogRepository struct {
	mu       sync.RWMutex
	products []entity.CatalogProduct
}

// NewCatalogRepository creates a catalog backed by the given snapshot.
func NewCatalogRepository(products []entity.CatalogProduct) *CatalogRepository {
	r := &CatalogRepository{}
	r.Replace(products)
	return r
}

var _ repository.CatalogRepository = (*CatalogRepository)(nil)

// Replace swaps in a new product snapshot.
func (r *CatalogRepository) Replace(products []entity.CatalogProduct) {
	cp := make([]entity.CatalogProduct, len(products))
	copy(cp, products)

	r.mu.Lock()
	r.products = cp
	r.mu.Unlock()
}

func (r *CatalogRepository) List(ctx context.Context) ([]entity.CatalogProduct, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entity.CatalogProduct, len(r.products))
	copy(out, r.products)
	return out, nil
}

func (r *CatalogRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.CatalogProduct, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.products {
		if r.products[i].ID == id {
			p := r.products[i]
			return &p, nil
		}
	}
	return nil, nil
}

// Search linearly scans the snapshot in catalog order and returns the
// first limit matches.
func (r *CatalogRepository) Search(ctx context.Context, query string, limit int) ([]entity.CatalogProduct, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entity.CatalogProduct, 0, limit)
	for _, p := range r.products {
		if !p.Matches(query) {
			continue
		}
		out = append(out, p)
		if len(out) >= limit {
			break
		}
	}
	return out, nil
}

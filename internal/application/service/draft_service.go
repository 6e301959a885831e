package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/billfold/billfold-api/internal/domain/entity"
	"github.com/billfold/billfold-api/internal/domain/enum"
	"github.com/billfold/billfold-api/internal/domain/repository"
	"github.com/billfold/billfold-api/pkg/apperror"
	"github.com/billfold/billfold-api/pkg/money"
)

// Autocomplete result windows: the suggestion dropdown shows the first
// few catalog products when the query is empty and a slightly wider
// window once the user starts typing.
const (
	searchLimitEmpty = 6
	searchLimitQuery = 8
)

// DraftService is the line-item editor: it owns the ordered, mutable
// item list of each in-progress invoice draft.
type DraftService struct {
	draftRepo   repository.DraftRepository
	catalogRepo repository.CatalogRepository
}

// NewDraftService creates a new draft service
func NewDraftService(draftRepo repository.DraftRepository, catalogRepo repository.CatalogRepository) *DraftService {
	return &DraftService{
		draftRepo:   draftRepo,
		catalogRepo: catalogRepo,
	}
}

// CreateDraft starts a new empty draft with one blank line, mirroring
// the purchase form opening with a single row ready for input.
func (s *DraftService) CreateDraft(ctx context.Context) (*entity.Draft, error) {
	now := time.Now()
	draft := &entity.Draft{
		ID:            uuid.New(),
		PaymentMethod: enum.PaymentMethodCash,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	appendBlankItem(draft)

	if err := s.draftRepo.Create(ctx, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// GetDraft returns the draft by id.
func (s *DraftService) GetDraft(ctx context.Context, id uuid.UUID) (*entity.Draft, error) {
	draft, err := s.draftRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if draft == nil {
		return nil, apperror.NewNotFoundError("Draft")
	}
	return draft, nil
}

// DeleteDraft discards an in-progress draft.
func (s *DraftService) DeleteDraft(ctx context.Context, id uuid.UUID) error {
	return s.draftRepo.Delete(ctx, id)
}

// AddItem appends a blank line: quantity 1, price and discount 0.
func (s *DraftService) AddItem(ctx context.Context, draftID uuid.UUID) (*entity.Draft, error) {
	return s.mutate(ctx, draftID, func(d *entity.Draft) {
		appendBlankItem(d)
	})
}

// AddItemFromCatalog appends a line pre-filled from a catalog product.
// Adding the same product twice yields two separate lines; the editor
// never deduplicates.
func (s *DraftService) AddItemFromCatalog(ctx context.Context, draftID, productID uuid.UUID) (*entity.Draft, error) {
	product, err := s.catalogRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}

	return s.mutate(ctx, draftID, func(d *entity.Draft) {
		id := product.ID
		d.Items = append(d.Items, entity.DraftItem{
			ID:        d.NextItemID(),
			ProductID: &id,
			Name:      product.Name,
			SKU:       product.Barcode,
			Quantity:  1,
			UnitPrice: money.Value(product.SellingPrice),
		})
	})
}

// RemoveItem removes the line with the given draft-local id. Removing
// an unknown id is a no-op.
func (s *DraftService) RemoveItem(ctx context.Context, draftID uuid.UUID, itemID int64) (*entity.Draft, error) {
	return s.mutate(ctx, draftID, func(d *entity.Draft) {
		for i := range d.Items {
			if d.Items[i].ID == itemID {
				d.Items = append(d.Items[:i], d.Items[i+1:]...)
				return
			}
		}
	})
}

// UpdateItemInput carries a partial line update; nil fields are left
// untouched.
type UpdateItemInput struct {
	Name         *string      `json:"name"`
	SKU          *string      `json:"sku"`
	Quantity     *money.Value `json:"quantity"`
	UnitPrice    *money.Value `json:"unit_price"`
	UnitDiscount *money.Value `json:"unit_discount"`
}

// UpdateItem merges the given fields into the matching line. Updating
// an unknown id is a no-op.
func (s *DraftService) UpdateItem(ctx context.Context, draftID uuid.UUID, itemID int64, input UpdateItemInput) (*entity.Draft, error) {
	return s.mutate(ctx, draftID, func(d *entity.Draft) {
		item := d.Item(itemID)
		if item == nil {
			return
		}
		if input.Name != nil {
			item.Name = *input.Name
		}
		if input.SKU != nil {
			item.SKU = *input.SKU
		}
		if input.Quantity != nil {
			item.Quantity = *input.Quantity
		}
		if input.UnitPrice != nil {
			item.UnitPrice = *input.UnitPrice
		}
		if input.UnitDiscount != nil {
			item.UnitDiscount = *input.UnitDiscount
		}
	})
}

// SelectProduct overwrites name, sku and unit price of the target line
// from a catalog product, leaving quantity and discount untouched.
func (s *DraftService) SelectProduct(ctx context.Context, draftID uuid.UUID, itemID int64, productID uuid.UUID) (*entity.Draft, error) {
	product, err := s.catalogRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}

	return s.mutate(ctx, draftID, func(d *entity.Draft) {
		item := d.Item(itemID)
		if item == nil {
			return
		}
		id := product.ID
		item.ProductID = &id
		item.Name = product.Name
		item.SKU = product.Barcode
		item.UnitPrice = money.Value(product.SellingPrice)
	})
}

// UpdateDraftInput carries partial header updates for a draft.
type UpdateDraftInput struct {
	Customer      *entity.Customer    `json:"customer"`
	PaymentMethod *enum.PaymentMethod `json:"payment_method"`
	TaxPercent    *money.Value        `json:"tax_percent"`
	OtherCharges  *money.Value        `json:"other_charges"`
	Notes         *string             `json:"notes"`
}

// UpdateDraft merges customer, payment, charges and notes changes.
func (s *DraftService) UpdateDraft(ctx context.Context, draftID uuid.UUID, input UpdateDraftInput) (*entity.Draft, error) {
	return s.mutate(ctx, draftID, func(d *entity.Draft) {
		if input.Customer != nil {
			d.Customer = *input.Customer
		}
		if input.PaymentMethod != nil {
			d.PaymentMethod = *input.PaymentMethod
		}
		if input.TaxPercent != nil {
			d.TaxPercent = *input.TaxPercent
		}
		if input.OtherCharges != nil {
			d.OtherCharges = *input.OtherCharges
		}
		if input.Notes != nil {
			d.Notes = *input.Notes
		}
	})
}

// Totals recomputes the draft totals from its current items.
func (s *DraftService) Totals(ctx context.Context, draftID uuid.UUID) (money.Totals, error) {
	draft, err := s.GetDraft(ctx, draftID)
	if err != nil {
		return money.Totals{}, err
	}
	return draft.Totals(), nil
}

// SearchCatalog returns autocomplete suggestions for the query, capped
// to the configured result window.
func (s *DraftService) SearchCatalog(ctx context.Context, query string) ([]entity.CatalogProduct, error) {
	limit := searchLimitQuery
	if query == "" {
		limit = searchLimitEmpty
	}
	return s.catalogRepo.Search(ctx, query, limit)
}

func (s *DraftService) mutate(ctx context.Context, draftID uuid.UUID, fn func(*entity.Draft)) (*entity.Draft, error) {
	draft, err := s.GetDraft(ctx, draftID)
	if err != nil {
		return nil, err
	}

	fn(draft)
	draft.UpdatedAt = time.Now()

	if err := s.draftRepo.Save(ctx, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

func appendBlankItem(d *entity.Draft) {
	d.Items = append(d.Items, entity.DraftItem{
		ID:       d.NextItemID(),
		Quantity: 1,
	})
}

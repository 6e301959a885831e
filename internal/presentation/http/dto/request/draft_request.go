package request

import "github.com/google/uuid"

// AddCatalogItemRequest appends a line pre-filled from a catalog product.
type AddCatalogItemRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
}

// SelectProductRequest fills an existing line from a catalog product.
type SelectProductRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
}

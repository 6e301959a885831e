package entity

import (
	"strings"

	"github.com/google/uuid"
)

// CatalogProduct is a read-only product record supplied by the catalog
// provider. The editor pulls it into draft lines; it never owns or
// mutates it.
type CatalogProduct struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Brand        string    `json:"brand,omitempty"`
	Barcode      string    `json:"barcode,omitempty"`
	SellingPrice float64   `json:"selling_price"`
	MRP          float64   `json:"mrp,omitempty"`
}

// Label composes the display label used for autocomplete matching:
// name, brand and barcode joined with spaces.
func (p CatalogProduct) Label() string {
	parts := make([]string, 0, 3)
	for _, s := range []string{p.Name, p.Brand, p.Barcode} {
		if s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " ")
}

// Matches reports whether the product should appear in suggestions for
// the query: the composed label contains it case-insensitively, or the
// barcode contains it as a substring.
func (p CatalogProduct) Matches(query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(p.Label()), q) {
		return true
	}
	return strings.Contains(p.Barcode, query)
}

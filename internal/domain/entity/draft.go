package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/billfold/billfold-api/internal/domain/enum"
	"github.com/billfold/billfold-api/pkg/money"
)

// DraftItem is a mutable line item owned by an in-progress draft. The
// catalog reference is draft-only and is stripped when the invoice is
// built.
type DraftItem struct {
	ID           int64       `json:"id"`
	ProductID    *uuid.UUID  `json:"product_id,omitempty"`
	Name         string      `json:"name"`
	SKU          string      `json:"sku,omitempty"`
	Quantity     money.Value `json:"quantity"`
	UnitPrice    money.Value `json:"unit_price"`
	UnitDiscount money.Value `json:"unit_discount"`
}

// Line returns the arithmetic view of the item.
func (it DraftItem) Line() money.Line {
	return money.Line{
		UnitPrice:    it.UnitPrice.Float64(),
		Quantity:     it.Quantity.Float64(),
		UnitDiscount: it.UnitDiscount.Float64(),
	}
}

// Amount is the derived line amount, recomputed on every read.
func (it DraftItem) Amount() float64 {
	return it.Line().Amount()
}

// Draft is an in-progress invoice being assembled by the line-item
// editor. Item ids are draft-local: a monotonic sequence whose
// generation order is the tie-break for stable ordering.
type Draft struct {
	ID            uuid.UUID          `json:"id"`
	Customer      Customer           `json:"customer"`
	Items         []DraftItem        `json:"items"`
	PaymentMethod enum.PaymentMethod `json:"payment_method"`
	TaxPercent    money.Value        `json:"tax_percent"`
	OtherCharges  money.Value        `json:"other_charges"`
	Notes         string             `json:"notes,omitempty"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`

	// LastItemID is the draft-local id sequence; managed by the editor.
	LastItemID int64 `json:"-"`
}

// NextItemID advances the draft-local item id sequence.
func (d *Draft) NextItemID() int64 {
	d.LastItemID++
	return d.LastItemID
}

// Item returns the draft item with the given id, or nil.
func (d *Draft) Item(id int64) *DraftItem {
	for i := range d.Items {
		if d.Items[i].ID == id {
			return &d.Items[i]
		}
	}
	return nil
}

// Lines returns the arithmetic view of all items.
func (d *Draft) Lines() []money.Line {
	lines := make([]money.Line, len(d.Items))
	for i, it := range d.Items {
		lines[i] = it.Line()
	}
	return lines
}

// Totals recomputes the draft totals. The editor calls this on every
// change; the renderer later recomputes the same function over the
// committed items and the two must agree exactly.
func (d *Draft) Totals() money.Totals {
	return money.ComputeTotals(d.Lines(), d.TaxPercent.Float64(), d.OtherCharges.Float64())
}

// Clone returns a deep copy so repository reads never share the items
// slice with callers. A nil item list stays nil: the builder treats
// nil and empty differently.
func (d *Draft) Clone() *Draft {
	cp := *d
	if d.Items != nil {
		cp.Items = make([]DraftItem, len(d.Items))
		copy(cp.Items, d.Items)
	}
	return &cp
}

package entity

import (
	"time"

	"github.com/billfold/billfold-api/internal/domain/enum"
	"github.com/billfold/billfold-api/pkg/money"
)

// Customer is the value snapshot embedded in an invoice. It is not a
// standalone entity; edits to a draft's customer never reach a built
// invoice.
type Customer struct {
	Name    string `json:"name"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}

// DefaultCustomerName is used when a draft is committed without a
// customer name.
const DefaultCustomerName = "Walk-in Customer"

// Issuer is the shop identity frozen into an invoice at build time.
// Historical invoices must keep the identity they were issued under,
// so this is carried per-invoice rather than looked up globally.
type Issuer struct {
	ShopName    string `json:"shop_name"`
	ShopAddress string `json:"shop_address,omitempty"`
	ShopPhone   string `json:"shop_phone,omitempty"`
}

// InvoiceItem is a committed line item. Draft-only fields (the catalog
// product reference) are stripped at build time.
type InvoiceItem struct {
	Name         string      `json:"name"`
	SKU          string      `json:"sku,omitempty"`
	Quantity     money.Value `json:"quantity"`
	UnitPrice    money.Value `json:"unit_price"`
	UnitDiscount money.Value `json:"unit_discount"`
}

// Line returns the arithmetic view of the item.
func (it InvoiceItem) Line() money.Line {
	return money.Line{
		UnitPrice:    it.UnitPrice.Float64(),
		Quantity:     it.Quantity.Float64(),
		UnitDiscount: it.UnitDiscount.Float64(),
	}
}

// Amount is the derived line amount, recomputed on every call and never
// stored with the item.
func (it InvoiceItem) Amount() float64 {
	return it.Line().Amount()
}

// Invoice is an immutable committed purchase record. It is created once
// by the builder, appended to the store, and read many times by the
// renderer and export adapter; nothing mutates it after creation.
type Invoice struct {
	InvoiceNumber string             `json:"invoice_number"`
	Date          time.Time          `json:"date"`
	Customer      Customer           `json:"customer"`
	Items         []InvoiceItem      `json:"items"`
	PaymentMethod enum.PaymentMethod `json:"payment_method"`
	TaxPercent    money.Value        `json:"tax_percent"`
	OtherCharges  money.Value        `json:"other_charges"`
	Notes         string             `json:"notes,omitempty"`
	Issuer        Issuer             `json:"issuer"`
}

// Lines returns the arithmetic view of all items.
func (inv *Invoice) Lines() []money.Line {
	lines := make([]money.Line, len(inv.Items))
	for i, it := range inv.Items {
		lines[i] = it.Line()
	}
	return lines
}

// Totals recomputes the invoice totals from its own items, tax percent
// and other charges. Consumers must call this instead of caching a
// total: it is the only source of truth.
func (inv *Invoice) Totals() money.Totals {
	return money.ComputeTotals(inv.Lines(), inv.TaxPercent.Float64(), inv.OtherCharges.Float64())
}

// Clone returns a deep copy, so store reads can hand out invoices
// without sharing the items slice.
func (inv *Invoice) Clone() *Invoice {
	cp := *inv
	cp.Items = make([]InvoiceItem, len(inv.Items))
	copy(cp.Items, inv.Items)
	return &cp
}

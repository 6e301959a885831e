package render

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/billfold/billfold-api/internal/domain/entity"
	"github.com/billfold/billfold-api/internal/domain/enum"
)

func sampleInvoice() *entity.Invoice {
	return &entity.Invoice{
		InvoiceNumber: "INV-20260828-0001",
		Date:          time.Date(2026, 8, 28, 14, 30, 0, 0, time.UTC),
		Customer:      entity.Customer{Name: "Asha Traders", Phone: "+91 98450 11111"},
		Items: []entity.InvoiceItem{
			{Name: "Basmati Rice 5kg", SKU: "8901058000290", Quantity: 2, UnitPrice: 500, UnitDiscount: 10},
		},
		PaymentMethod: enum.PaymentMethodUPI,
		TaxPercent:    10,
		OtherCharges:  50,
		Issuer: entity.Issuer{
			ShopName:    "Billfold Store",
			ShopAddress: "12 MG Road, Bengaluru",
		},
	}
}

func TestParseTemplate(t *testing.T) {
	tpl, err := ParseTemplate("")
	require.NoError(t, err)
	assert.Equal(t, TemplateModern, tpl)

	tpl, err = ParseTemplate("classic")
	require.NoError(t, err)
	assert.Equal(t, TemplateClassic, tpl)

	_, err = ParseTemplate("fancy")
	assert.Error(t, err)
}

func TestAllTemplatesAgreeOnTotals(t *testing.T) {
	inv := sampleInvoice()
	total := FormatINR(inv.Totals().Total)
	assert.Equal(t, "₹1,128.00", total)

	for _, tpl := range []Template{TemplateModern, TemplateClassic, TemplateReceipt} {
		html, err := Render(inv, tpl)
		require.NoError(t, err, "template %s", tpl)

		assert.Contains(t, html, total, "template %s must show the recomputed total", tpl)
		assert.Contains(t, html, "INV-20260828-0001")
		assert.Contains(t, html, "Billfold Store")
		assert.Contains(t, html, FooterMessage)
	}
}

func TestModernShowsDiscountColumn(t *testing.T) {
	html, err := Render(sampleInvoice(), TemplateModern)
	require.NoError(t, err)

	assert.Contains(t, html, "₹10.00", "per-unit discount")
	assert.Contains(t, html, "-₹20.00", "discount total shown negative")
	assert.Contains(t, html, "Tax (10%)")
	assert.Contains(t, html, "Other Charges")
}

func TestReceiptShowsDiscountNote(t *testing.T) {
	html, err := Render(sampleInvoice(), TemplateReceipt)
	require.NoError(t, err)

	assert.Contains(t, html, "less ₹10.00/unit")
	assert.Contains(t, html, "28 Aug 2026, 2:30 PM")
}

func TestRenderDefaultsWalkInCustomer(t *testing.T) {
	inv := sampleInvoice()
	inv.Customer = entity.Customer{}

	html, err := Render(inv, TemplateModern)
	require.NoError(t, err)
	assert.Contains(t, html, entity.DefaultCustomerName)
}

func TestRenderOmitsEmptySections(t *testing.T) {
	inv := sampleInvoice()
	inv.Items[0].UnitDiscount = 0
	inv.OtherCharges = 0

	html, err := Render(inv, TemplateClassic)
	require.NoError(t, err)

	assert.False(t, strings.Contains(html, ">Discount<"), "zero discount row is hidden")
	assert.False(t, strings.Contains(html, "Other Charges"), "zero other charges row is hidden")
}

func TestRenderEmptyInvoice(t *testing.T) {
	inv := &entity.Invoice{
		InvoiceNumber: "INV-20260828-0002",
		Date:          time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC),
		Issuer:        entity.Issuer{ShopName: "Billfold Store"},
	}

	for _, tpl := range []Template{TemplateModern, TemplateClassic, TemplateReceipt} {
		html, err := Render(inv, tpl)
		require.NoError(t, err, "template %s", tpl)
		assert.Contains(t, html, "₹0.00")
	}
}

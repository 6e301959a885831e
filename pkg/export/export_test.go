package export

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/billfold/billfold-api/internal/domain/entity"
	"github.com/billfold/billfold-api/internal/domain/enum"
	"github.com/billfold/billfold-api/pkg/render"
)

func exportInvoice() *entity.Invoice {
	return &entity.Invoice{
		InvoiceNumber: "INV-20260828-0003",
		Date:          time.Date(2026, 8, 28, 11, 15, 0, 0, time.UTC),
		Customer:      entity.Customer{Name: "Asha Traders"},
		Items: []entity.InvoiceItem{
			{Name: "Sunflower Oil 1L", SKU: "8901030529764", Quantity: 3, UnitPrice: 145},
			{Name: "Salt 1kg", Quantity: 2, UnitPrice: 25, UnitDiscount: 2},
		},
		PaymentMethod: enum.PaymentMethodCard,
		TaxPercent:    5,
		Issuer:        entity.Issuer{ShopName: "Billfold Store"},
	}
}

func TestJSONFilename(t *testing.T) {
	assert.Equal(t, "invoice-INV-20260828-0003.json", JSONFilename(exportInvoice()))
}

func TestJSONRoundTripRecomputesSameTotals(t *testing.T) {
	inv := exportInvoice()

	data, err := JSON(inv)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(string(data), "{\n  "), "export is pretty-printed with 2-space indent")

	var restored entity.Invoice
	require.NoError(t, json.Unmarshal(data, &restored))

	assert.Equal(t, inv.InvoiceNumber, restored.InvoiceNumber)
	assert.Equal(t, inv.Customer, restored.Customer)
	require.Len(t, restored.Items, 2)
	assert.Equal(t, inv.Totals(), restored.Totals(), "totals are recomputable from the exported record")
}

func TestJSONCarriesFullRecordNotRenderedView(t *testing.T) {
	data, err := JSON(exportInvoice())
	require.NoError(t, err)

	s := string(data)
	assert.Contains(t, s, `"unit_price"`)
	assert.Contains(t, s, `"tax_percent"`)
	assert.Contains(t, s, `"issuer"`)
	assert.NotContains(t, s, "₹", "no display formatting leaks into the export")
	assert.NotContains(t, s, `"subtotal"`, "derived totals are never stored")
}

func TestPrintDocumentIsStandalone(t *testing.T) {
	inv := exportInvoice()

	doc, err := PrintDocument(inv, render.TemplateModern)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(doc, "<!DOCTYPE html>"))
	assert.Contains(t, doc, "<title>Invoice INV-20260828-0003</title>")
	assert.Contains(t, doc, "<style>")
	assert.Contains(t, doc, "invoice-modern")
	assert.NotContains(t, doc, "<link", "no external resources")
	assert.NotContains(t, doc, "<script")
}

func TestPrintDocumentUsesReceiptStyle(t *testing.T) {
	doc, err := PrintDocument(exportInvoice(), render.TemplateReceipt)
	require.NoError(t, err)

	assert.Contains(t, doc, "Courier New")
	assert.Contains(t, doc, "invoice-receipt")
}

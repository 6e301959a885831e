// Package export serializes invoices for printing and download. Both
// operations are read-only with respect to the invoice store.
package export

import (
	"encoding/json"
	"fmt"

	"github.com/billfold/billfold-api/internal/domain/entity"
	"github.com/billfold/billfold-api/pkg/render"
)

// JSONFilename returns the download filename for an invoice export.
func JSONFilename(inv *entity.Invoice) string {
	return fmt.Sprintf("invoice-%s.json", inv.InvoiceNumber)
}

// JSON serializes the full invoice record (not a rendered view) as
// pretty-printed UTF-8 JSON with 2-space indentation.
func JSON(inv *entity.Invoice) ([]byte, error) {
	data, err := json.MarshalIndent(inv, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("export invoice %s: %w", inv.InvoiceNumber, err)
	}
	return data, nil
}

// PrintDocument produces a standalone HTML5 document for the platform
// print dialog: the rendered template markup plus a minimal
// template-specific stylesheet inlined in the head. No external
// resources are referenced.
func PrintDocument(inv *entity.Invoice, tpl render.Template) (string, error) {
	body, err := render.Render(inv, tpl)
	if err != nil {
		return "", err
	}

	style := pageStyle
	if tpl == render.TemplateReceipt {
		style = receiptStyle
	}

	doc := fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Invoice %s</title>
<style>
%s</style>
</head>
<body>
%s</body>
</html>
`, inv.InvoiceNumber, style, body)

	return doc, nil
}

// Wide stylesheet shared by the modern and classic layouts.
const pageStyle = `body { font-family: Arial, Helvetica, sans-serif; color: #222; margin: 24px; }
.invoice { max-width: 760px; margin: 0 auto; }
.invoice-header, .headline, .parties { display: flex; justify-content: space-between; }
h1 { font-size: 1.4em; margin: 0 0 4px; }
h2 { font-size: 1.1em; margin: 0; }
h3 { font-size: 0.9em; text-transform: uppercase; color: #666; margin: 12px 0 4px; }
p { margin: 2px 0; }
table.items { width: 100%; border-collapse: collapse; margin: 16px 0; }
table.items th, table.items td { padding: 6px 8px; text-align: left; }
table.items thead th { border-bottom: 2px solid #222; }
table.items tbody td { border-bottom: 1px solid #ddd; }
table.items.bordered th, table.items.bordered td { border: 1px solid #222; }
td.amount, th.amount { text-align: right; }
.sku { color: #888; font-size: 0.85em; }
.totals, .totals-box { margin-left: auto; width: 280px; }
.totals-box { border: 1px solid #222; padding: 8px 12px; }
.totals .row, .totals-box .row { display: flex; justify-content: space-between; padding: 2px 0; }
.row.total { font-weight: bold; border-top: 1px solid #222; margin-top: 4px; padding-top: 4px; }
.frame { border: 2px solid #222; padding: 20px; }
footer { margin-top: 24px; text-align: center; color: #666; }
`

// Narrow monospace stylesheet for the receipt layout.
const receiptStyle = `body { font-family: "Courier New", monospace; font-size: 12px; color: #000; margin: 0; }
.invoice-receipt { width: 280px; margin: 0 auto; padding: 8px; }
.invoice-receipt header, .invoice-receipt footer { text-align: center; }
.invoice-receipt h1 { font-size: 14px; margin: 0; }
.invoice-receipt p { margin: 1px 0; }
.rule { border-top: 1px dashed #000; margin: 6px 0; }
.line { display: flex; justify-content: space-between; }
.line.note { color: #444; padding-left: 8px; }
.line.total { font-weight: bold; }
.line .amount { text-align: right; }
`

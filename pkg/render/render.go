// Package render turns a committed invoice into one of three fixed
// layouts. Every template recomputes totals from the invoice's own
// items through the money package; a cached total is never displayed.
package render

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/billfold/billfold-api/internal/domain/entity"
)

// Template selects one of the fixed invoice layouts.
type Template string

const (
	// TemplateModern is the full-width layout with per-line
	// rate/qty/discount/amount columns.
	TemplateModern Template = "modern"
	// TemplateClassic is the bordered tabular layout with discount
	// folded into the line amount.
	TemplateClassic Template = "classic"
	// TemplateReceipt is the narrow thermal-receipt layout.
	TemplateReceipt Template = "receipt"
)

// ParseTemplate maps a template name to a Template. An empty name
// selects the modern layout; unknown names are an error.
func ParseTemplate(s string) (Template, error) {
	switch s {
	case "", string(TemplateModern):
		return TemplateModern, nil
	case string(TemplateClassic):
		return TemplateClassic, nil
	case string(TemplateReceipt):
		return TemplateReceipt, nil
	default:
		return "", fmt.Errorf("unknown invoice template %q", s)
	}
}

// FooterMessage is printed at the bottom of every layout.
const FooterMessage = "Thank you for your business!"

// lineView is one rendered item row.
type lineView struct {
	Index        int
	Name         string
	SKU          string
	Qty          string
	Rate         string
	Discount     string
	Amount       string
	HasDiscount  bool
	DiscountNote string
}

// invoiceView is the data handed to the layout templates. All money is
// pre-formatted; templates do no arithmetic of their own.
type invoiceView struct {
	Number          string
	Date            string
	DateTime        string
	ShopName        string
	ShopAddress     string
	ShopPhone       string
	CustomerName    string
	CustomerPhone   string
	CustomerAddress string
	Payment         string
	Notes           string
	Lines           []lineView
	Subtotal        string
	Discount        string
	HasDiscount     bool
	TaxLabel        string
	Tax             string
	OtherCharges    string
	HasOtherCharges bool
	Total           string
	Footer          string
}

func buildView(inv *entity.Invoice) invoiceView {
	totals := inv.Totals()

	lines := make([]lineView, len(inv.Items))
	for i, it := range inv.Items {
		discount := it.UnitDiscount.Float64()
		lines[i] = lineView{
			Index:       i + 1,
			Name:        it.Name,
			SKU:         it.SKU,
			Qty:         FormatQty(it.Quantity.Float64()),
			Rate:        FormatINR(it.UnitPrice.Float64()),
			Discount:    FormatINR(discount),
			Amount:      FormatINR(it.Amount()),
			HasDiscount: discount > 0,
		}
		if discount > 0 {
			lines[i].DiscountNote = fmt.Sprintf("less %s/unit", FormatINR(discount))
		}
	}

	customerName := inv.Customer.Name
	if customerName == "" {
		customerName = entity.DefaultCustomerName
	}

	return invoiceView{
		Number:          inv.InvoiceNumber,
		Date:            FormatDate(inv.Date),
		DateTime:        FormatDateTime(inv.Date),
		ShopName:        inv.Issuer.ShopName,
		ShopAddress:     inv.Issuer.ShopAddress,
		ShopPhone:       inv.Issuer.ShopPhone,
		CustomerName:    customerName,
		CustomerPhone:   inv.Customer.Phone,
		CustomerAddress: inv.Customer.Address,
		Payment:         inv.PaymentMethod.String(),
		Notes:           inv.Notes,
		Lines:           lines,
		Subtotal:        FormatINR(totals.Subtotal),
		Discount:        FormatINR(-totals.DiscountTotal),
		HasDiscount:     totals.DiscountTotal != 0,
		TaxLabel:        fmt.Sprintf("Tax (%s%%)", FormatQty(inv.TaxPercent.Float64())),
		Tax:             FormatINR(totals.Tax),
		OtherCharges:    FormatINR(inv.OtherCharges.Float64()),
		HasOtherCharges: inv.OtherCharges.Float64() != 0,
		Total:           FormatINR(totals.Total),
		Footer:          FooterMessage,
	}
}

// Render produces the HTML markup for the invoice under the selected
// template. The markup is a body fragment; the export adapter wraps it
// into a standalone printable document.
func Render(inv *entity.Invoice, tpl Template) (string, error) {
	var t *template.Template
	switch tpl {
	case TemplateModern:
		t = modernTmpl
	case TemplateClassic:
		t = classicTmpl
	case TemplateReceipt:
		t = receiptTmpl
	default:
		return "", fmt.Errorf("unknown invoice template %q", tpl)
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, buildView(inv)); err != nil {
		return "", fmt.Errorf("render %s template: %w", tpl, err)
	}
	return buf.String(), nil
}

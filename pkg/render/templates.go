package render

import "html/template"

var (
	modernTmpl  = template.Must(template.New("modern").Parse(modernHTML))
	classicTmpl = template.Must(template.New("classic").Parse(classicHTML))
	receiptTmpl = template.Must(template.New("receipt").Parse(receiptHTML))
)

// Full-width layout: issuer header, customer and payment blocks, an
// itemized table with rate/qty/discount/amount columns and a totals
// block ending in the bold grand total.
const modernHTML = `<div class="invoice invoice-modern">
  <header class="invoice-header">
    <div class="issuer">
      <h1>{{.ShopName}}</h1>
      {{if .ShopAddress}}<p>{{.ShopAddress}}</p>{{end}}
      {{if .ShopPhone}}<p>{{.ShopPhone}}</p>{{end}}
    </div>
    <div class="meta">
      <h2>Invoice {{.Number}}</h2>
      <p>{{.Date}}</p>
    </div>
  </header>
  <section class="parties">
    <div class="customer">
      <h3>Billed To</h3>
      <p>{{.CustomerName}}</p>
      {{if .CustomerPhone}}<p>{{.CustomerPhone}}</p>{{end}}
      {{if .CustomerAddress}}<p>{{.CustomerAddress}}</p>{{end}}
    </div>
    <div class="payment">
      <h3>Payment</h3>
      <p>{{.Payment}}</p>
    </div>
  </section>
  <table class="items">
    <thead>
      <tr><th>#</th><th>Item</th><th>Rate</th><th>Qty</th><th>Discount</th><th class="amount">Amount</th></tr>
    </thead>
    <tbody>
      {{range .Lines}}<tr>
        <td>{{.Index}}</td>
        <td>{{.Name}}{{if .SKU}} <span class="sku">{{.SKU}}</span>{{end}}</td>
        <td>{{.Rate}}</td>
        <td>{{.Qty}}</td>
        <td>{{.Discount}}</td>
        <td class="amount">{{.Amount}}</td>
      </tr>{{end}}
    </tbody>
  </table>
  <section class="totals">
    <div class="row"><span>Subtotal</span><span>{{.Subtotal}}</span></div>
    {{if .HasDiscount}}<div class="row"><span>Discount</span><span>{{.Discount}}</span></div>{{end}}
    <div class="row"><span>{{.TaxLabel}}</span><span>{{.Tax}}</span></div>
    {{if .HasOtherCharges}}<div class="row"><span>Other Charges</span><span>{{.OtherCharges}}</span></div>{{end}}
    <div class="row total"><span>Total</span><span>{{.Total}}</span></div>
  </section>
  {{if .Notes}}<section class="notes"><h3>Notes</h3><p>{{.Notes}}</p></section>{{end}}
  <footer><p>{{.Footer}}</p></footer>
</div>
`

// Bordered tabular layout with fewer columns: #, description, qty,
// price and amount. Per-line discount is folded into the amount rather
// than shown as its own column; totals sit in a boxed panel.
const classicHTML = `<div class="invoice invoice-classic">
  <div class="frame">
    <header>
      <h1>{{.ShopName}}</h1>
      {{if .ShopAddress}}<p>{{.ShopAddress}}</p>{{end}}
      {{if .ShopPhone}}<p>Tel: {{.ShopPhone}}</p>{{end}}
    </header>
    <div class="headline">
      <span>Invoice No: {{.Number}}</span>
      <span>Date: {{.Date}}</span>
    </div>
    <div class="headline">
      <span>Customer: {{.CustomerName}}</span>
      <span>Payment: {{.Payment}}</span>
    </div>
    <table class="items bordered">
      <thead>
        <tr><th>#</th><th>Description</th><th>Qty</th><th>Price</th><th class="amount">Amount</th></tr>
      </thead>
      <tbody>
        {{range .Lines}}<tr>
          <td>{{.Index}}</td>
          <td>{{.Name}}</td>
          <td>{{.Qty}}</td>
          <td>{{.Rate}}</td>
          <td class="amount">{{.Amount}}</td>
        </tr>{{end}}
      </tbody>
    </table>
    <div class="totals-box">
      <div class="row"><span>Subtotal</span><span>{{.Subtotal}}</span></div>
      {{if .HasDiscount}}<div class="row"><span>Discount</span><span>{{.Discount}}</span></div>{{end}}
      <div class="row"><span>{{.TaxLabel}}</span><span>{{.Tax}}</span></div>
      {{if .HasOtherCharges}}<div class="row"><span>Other Charges</span><span>{{.OtherCharges}}</span></div>{{end}}
      <div class="row total"><span>TOTAL</span><span>{{.Total}}</span></div>
    </div>
    <footer><p>{{.Footer}}</p></footer>
  </div>
</div>
`

// Narrow thermal-receipt layout: compact header, "name × qty" lines
// with a secondary discount note when a discount applies, dashed rules
// and a bold TOTAL. Shows date and time.
const receiptHTML = `<div class="invoice invoice-receipt">
  <header>
    <h1>{{.ShopName}}</h1>
    {{if .ShopAddress}}<p>{{.ShopAddress}}</p>{{end}}
    {{if .ShopPhone}}<p>{{.ShopPhone}}</p>{{end}}
  </header>
  <div class="rule"></div>
  <div class="meta">
    <p>{{.Number}}</p>
    <p>{{.DateTime}}</p>
    <p>{{.CustomerName}} &middot; {{.Payment}}</p>
  </div>
  <div class="rule"></div>
  <div class="lines">
    {{range .Lines}}<div class="line">
      <span class="label">{{.Name}} &times; {{.Qty}}</span>
      <span class="amount">{{.Amount}}</span>
    </div>
    {{if .HasDiscount}}<div class="line note"><span class="label">{{.DiscountNote}}</span></div>{{end}}
    {{end}}
  </div>
  <div class="rule"></div>
  <div class="totals">
    <div class="line"><span>Subtotal</span><span>{{.Subtotal}}</span></div>
    {{if .HasDiscount}}<div class="line"><span>Discount</span><span>{{.Discount}}</span></div>{{end}}
    <div class="line"><span>{{.TaxLabel}}</span><span>{{.Tax}}</span></div>
    {{if .HasOtherCharges}}<div class="line"><span>Other</span><span>{{.OtherCharges}}</span></div>{{end}}
    <div class="line total"><span>TOTAL</span><span>{{.Total}}</span></div>
  </div>
  <div class="rule"></div>
  <footer><p>{{.Footer}}</p></footer>
</div>
`

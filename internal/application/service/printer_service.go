package service

import (
	"context"
	"fmt"
	"log"

	"github.com/billfold/billfold-api/internal/domain/entity"
	"github.com/billfold/billfold-api/internal/domain/repository"
	"github.com/billfold/billfold-api/pkg/apperror"
	"github.com/billfold/billfold-api/pkg/printer"
	"github.com/billfold/billfold-api/pkg/render"
)

// PrinterService formats stored invoices as thermal receipts and sends
// them to the configured ESC/POS printer.
type PrinterService struct {
	printer     printer.Printer
	store       repository.InvoiceStore
	printerType string
}

// NewPrinterService creates a new printer service
func NewPrinterService(p printer.Printer, store repository.InvoiceStore, printerType string) *PrinterService {
	return &PrinterService{
		printer:     p,
		store:       store,
		printerType: printerType,
	}
}

// PrinterStatus reports the printer configuration and connectivity.
type PrinterStatus struct {
	Configured bool   `json:"configured"`
	Connected  bool   `json:"connected"`
	Type       string `json:"type"`
}

// GetStatus returns printer connection status.
func (s *PrinterService) GetStatus() *PrinterStatus {
	return &PrinterStatus{
		Configured: s.printerType != "none" && s.printerType != "",
		Connected:  s.printer.IsConnected(),
		Type:       s.printerType,
	}
}

// PrintInvoice fetches a stored invoice and prints its receipt. The
// operation is read-only: a printer failure never touches the store.
func (s *PrinterService) PrintInvoice(ctx context.Context, invoiceNumber string) error {
	invoice, err := s.store.GetByNumber(ctx, invoiceNumber)
	if err != nil {
		return err
	}
	if invoice == nil {
		return apperror.NewNotFoundError("Invoice")
	}

	if err := s.printer.Print(FormatReceipt(invoice)); err != nil {
		log.Printf("Printer error (invoice %s): %v", invoiceNumber, err)
		return fmt.Errorf("failed to print receipt: %w", err)
	}
	return nil
}

// FormatReceipt converts an invoice into ESC/POS bytes. The layout
// mirrors the receipt render template: compact header, name x qty
// lines with discount notes, dashed rules and a bold TOTAL. Totals are
// recomputed from the invoice's own items.
func FormatReceipt(inv *entity.Invoice) []byte {
	totals := inv.Totals()
	r := printer.NewReceipt(32) // 58mm paper

	r.Align(printer.AlignCenter).
		Bold(true).
		Size(printer.SizeDouble).
		Line(inv.Issuer.ShopName).
		Size(printer.SizeNormal).
		Bold(false)

	if inv.Issuer.ShopAddress != "" {
		r.Line(inv.Issuer.ShopAddress)
	}
	if inv.Issuer.ShopPhone != "" {
		r.Line(inv.Issuer.ShopPhone)
	}

	r.Align(printer.AlignLeft).Rule()

	r.Cols("Invoice:", inv.InvoiceNumber).
		Cols("Date:", render.FormatDateTime(inv.Date)).
		Cols("Customer:", inv.Customer.Name).
		Cols("Payment:", inv.PaymentMethod.String())

	r.Rule()

	for _, it := range inv.Items {
		note := ""
		if it.UnitDiscount.Float64() > 0 {
			note = fmt.Sprintf("less %.2f/unit", it.UnitDiscount.Float64())
		}
		r.Item(it.Name, render.FormatQty(it.Quantity.Float64()), fmt.Sprintf("%.2f", it.Amount()), note)
	}

	r.Rule()

	r.Cols("Subtotal:", fmt.Sprintf("%.2f", totals.Subtotal))
	if totals.DiscountTotal != 0 {
		r.Cols("Discount:", fmt.Sprintf("-%.2f", totals.DiscountTotal))
	}
	r.Cols("Tax:", fmt.Sprintf("%.2f", totals.Tax))
	if inv.OtherCharges.Float64() != 0 {
		r.Cols("Other:", fmt.Sprintf("%.2f", inv.OtherCharges.Float64()))
	}
	r.Bold(true).
		Cols("TOTAL:", fmt.Sprintf("%.2f", totals.Total)).
		Bold(false)

	r.Rule()

	r.Align(printer.AlignCenter).
		Feed(1).
		Line(render.FooterMessage).
		Align(printer.AlignLeft).
		Feed(3).
		Cut()

	return r.Bytes()
}

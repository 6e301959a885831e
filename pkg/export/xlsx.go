package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/billfold/billfold-api/internal/domain/entity"
)

// RegisterFilename is the download name for the invoice register export.
const RegisterFilename = "invoice-register.xlsx"

var registerHeader = []string{
	"Invoice No", "Date", "Customer", "Payment",
	"Subtotal", "Discount", "Tax", "Other Charges", "Total",
}

var itemsHeader = []string{
	"Invoice No", "Item", "SKU", "Qty", "Unit Price", "Unit Discount", "Amount",
}

// Register builds an .xlsx workbook of the whole invoice store: one row
// per invoice on the first sheet, one row per line item on the second.
// Totals are recomputed per invoice, same as every other consumer.
func Register(invoices []entity.Invoice) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const invoicesSheet = "Invoices"
	const itemsSheet = "Items"

	if err := f.SetSheetName("Sheet1", invoicesSheet); err != nil {
		return nil, fmt.Errorf("export register: %w", err)
	}
	if _, err := f.NewSheet(itemsSheet); err != nil {
		return nil, fmt.Errorf("export register: %w", err)
	}

	if err := writeRow(f, invoicesSheet, 1, registerHeader); err != nil {
		return nil, err
	}
	if err := writeRow(f, itemsSheet, 1, itemsHeader); err != nil {
		return nil, err
	}

	itemRow := 2
	for i := range invoices {
		inv := &invoices[i]
		totals := inv.Totals()

		row := []interface{}{
			inv.InvoiceNumber,
			inv.Date.Format("2006-01-02 15:04"),
			inv.Customer.Name,
			inv.PaymentMethod.String(),
			totals.Subtotal,
			totals.DiscountTotal,
			totals.Tax,
			inv.OtherCharges.Float64(),
			totals.Total,
		}
		if err := writeRow(f, invoicesSheet, i+2, row); err != nil {
			return nil, err
		}

		for _, it := range inv.Items {
			row := []interface{}{
				inv.InvoiceNumber,
				it.Name,
				it.SKU,
				it.Quantity.Float64(),
				it.UnitPrice.Float64(),
				it.UnitDiscount.Float64(),
				it.Amount(),
			}
			if err := writeRow(f, itemsSheet, itemRow, row); err != nil {
				return nil, err
			}
			itemRow++
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("export register: %w", err)
	}
	return buf.Bytes(), nil
}

func writeRow[T any](f *excelize.File, sheet string, row int, values []T) error {
	for col, v := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return fmt.Errorf("export register: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return fmt.Errorf("export register: %w", err)
		}
	}
	return nil
}

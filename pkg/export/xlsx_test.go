package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/billfold/billfold-api/internal/domain/entity"
)

func TestRegisterWorkbook(t *testing.T) {
	data, err := Register([]entity.Invoice{*exportInvoice()})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.ElementsMatch(t, []string{"Invoices", "Items"}, f.GetSheetList())

	number, err := f.GetCellValue("Invoices", "A2")
	require.NoError(t, err)
	assert.Equal(t, "INV-20260828-0003", number)

	rows, err := f.GetRows("Items")
	require.NoError(t, err)
	require.Len(t, rows, 3, "header plus one row per line item")
	assert.Equal(t, "Sunflower Oil 1L", rows[1][1])
	assert.Equal(t, "Salt 1kg", rows[2][1])
}

func TestRegisterEmptyStore(t *testing.T) {
	data, err := Register(nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Invoices")
	require.NoError(t, err)
	require.Len(t, rows, 1, "header only")
}

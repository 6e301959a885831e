package money_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/billfold/billfold-api/pkg/money"
)

func TestComputeTotalsBasic(t *testing.T) {
	lines := []money.Line{
		{UnitPrice: 500, Quantity: 2, UnitDiscount: 10},
	}

	totals := money.ComputeTotals(lines, 10, 50)

	assert.Equal(t, 1000.0, totals.Subtotal)
	assert.Equal(t, 20.0, totals.DiscountTotal)
	assert.Equal(t, 98.0, totals.Tax)
	assert.Equal(t, 1128.0, totals.Total)
}

func TestComputeTotalsEmptyLines(t *testing.T) {
	totals := money.ComputeTotals(nil, 18, 50)

	assert.Equal(t, 0.0, totals.Subtotal)
	assert.Equal(t, 0.0, totals.DiscountTotal)
	assert.Equal(t, 0.0, totals.Tax)
	assert.Equal(t, 50.0, totals.Total, "empty invoice total is exactly the other charges")
}

func TestComputeTotalsIdempotent(t *testing.T) {
	lines := []money.Line{
		{UnitPrice: 19.99, Quantity: 3, UnitDiscount: 0.5},
		{UnitPrice: 120, Quantity: 0.25, UnitDiscount: 0},
	}

	first := money.ComputeTotals(lines, 12.5, 9.75)
	second := money.ComputeTotals(lines, 12.5, 9.75)

	assert.Equal(t, first, second)
}

func TestComputeTotalsNegativeLineAmount(t *testing.T) {
	// Discount exceeds price: the literal negative value must propagate,
	// not be clamped to zero.
	lines := []money.Line{
		{UnitPrice: 10, Quantity: 2, UnitDiscount: 15},
	}

	totals := money.ComputeTotals(lines, 0, 0)

	assert.Equal(t, 20.0, totals.Subtotal)
	assert.Equal(t, 30.0, totals.DiscountTotal)
	assert.Equal(t, -10.0, totals.Total)
	assert.Equal(t, -10.0, money.Line{UnitPrice: 10, Quantity: 2, UnitDiscount: 15}.Amount())
}

func TestComputeTotalsZeroQuantity(t *testing.T) {
	lines := []money.Line{
		{UnitPrice: 99, Quantity: 0, UnitDiscount: 5},
	}

	totals := money.ComputeTotals(lines, 18, 0)

	assert.Equal(t, 0.0, totals.Subtotal)
	assert.Equal(t, 0.0, totals.Total)
}

func TestComputeTotalsCoercesMalformedNumbers(t *testing.T) {
	lines := []money.Line{
		{UnitPrice: math.NaN(), Quantity: 2, UnitDiscount: 0},
		{UnitPrice: math.Inf(1), Quantity: 1, UnitDiscount: 0},
	}

	totals := money.ComputeTotals(lines, 0, 0)

	assert.Equal(t, 0.0, totals.Subtotal)
	assert.Equal(t, 0.0, totals.Total)
}

func TestValueUnmarshal(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want float64
	}{
		{"number", `12.5`, 12.5},
		{"numeric string", `"42"`, 42},
		{"numeric string with spaces", `" 7.25 "`, 7.25},
		{"garbage string", `"abc"`, 0},
		{"null", `null`, 0},
		{"object", `{"x":1}`, 0},
		{"bool", `true`, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v money.Value
			require.NoError(t, json.Unmarshal([]byte(tt.in), &v))
			assert.Equal(t, tt.want, v.Float64())
		})
	}
}

func TestValueUnmarshalInStruct(t *testing.T) {
	// The behaviour the coercion rule exists for: a line arriving with a
	// non-numeric price contributes zero, nothing errors.
	var item struct {
		UnitPrice money.Value `json:"unit_price"`
		Quantity  money.Value `json:"quantity"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"unit_price":"abc","quantity":2}`), &item))

	totals := money.ComputeTotals([]money.Line{{
		UnitPrice: item.UnitPrice.Float64(),
		Quantity:  item.Quantity.Float64(),
	}}, 0, 0)

	assert.Equal(t, 0.0, totals.Subtotal)
	assert.Equal(t, 0.0, totals.Total)
}

// Package money holds the totals arithmetic shared by the draft editor,
// the invoice builder, and every renderer template. All of them recompute
// from line items through ComputeTotals so that a stored invoice and a
// live draft can never disagree about the same numbers.
package money

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Value is a lenient decimal amount. Unmarshalling accepts JSON numbers,
// numeric strings, and anything else (coerced to 0) without erroring.
// Malformed numeric input is never a validation failure in this pipeline.
type Value float64

// UnmarshalJSON implements json.Unmarshaler.
func (v *Value) UnmarshalJSON(data []byte) error {
	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		*v = Value(f)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if f, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			*v = Value(f)
			return nil
		}
	}

	*v = 0
	return nil
}

// Float64 returns the coerced numeric value. NaN and infinities count as
// malformed input and collapse to 0.
func (v Value) Float64() float64 {
	return coerce(float64(v))
}

// Line is the arithmetic view of a single invoice or draft line.
type Line struct {
	UnitPrice    float64
	Quantity     float64
	UnitDiscount float64
}

// Amount returns price*qty - discount*qty. A discount larger than the
// price yields a negative amount; that is valid arithmetic output and is
// never clamped.
func (l Line) Amount() float64 {
	price := coerce(l.UnitPrice)
	qty := coerce(l.Quantity)
	discount := coerce(l.UnitDiscount)
	return price*qty - discount*qty
}

// Totals is the result of ComputeTotals.
type Totals struct {
	Subtotal      float64 `json:"subtotal"`
	DiscountTotal float64 `json:"discount_total"`
	Tax           float64 `json:"tax"`
	Total         float64 `json:"total"`
}

// ComputeTotals derives subtotal, discount, tax and grand total from the
// given lines. It is pure and deterministic: calling it twice with the
// same inputs yields bit-identical results, so callers must never cache
// a total on an invoice and trust it later.
//
//	subtotal = sum(price*qty)
//	discount = sum(unitDiscount*qty)
//	tax      = taxPercent * (subtotal - discount) / 100
//	total    = subtotal - discount + tax + otherCharges
//
// No rounding is applied here; formatting rounds at display time only.
func ComputeTotals(lines []Line, taxPercent, otherCharges float64) Totals {
	var subtotal, discountTotal float64
	for _, l := range lines {
		subtotal += coerce(l.UnitPrice) * coerce(l.Quantity)
		discountTotal += coerce(l.UnitDiscount) * coerce(l.Quantity)
	}

	tax := coerce(taxPercent) * (subtotal - discountTotal) / 100
	total := subtotal - discountTotal + tax + coerce(otherCharges)

	return Totals{
		Subtotal:      subtotal,
		DiscountTotal: discountTotal,
		Tax:           tax,
		Total:         total,
	}
}

func coerce(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

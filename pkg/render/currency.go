package render

import (
	"math"
	"strconv"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// The renderer formats money in Indian-locale rupees. This is a fixed
// configuration of the renderer, not user-configurable.
var inr = message.NewPrinter(language.MustParse("en-IN"))

// FormatINR formats a monetary value as rupee text with two decimal
// places and Indian digit grouping, e.g. 125000 -> "₹1,25,000.00".
// Malformed values (NaN, infinities) format as zero, matching the
// calculator's coercion rule.
func FormatINR(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		v = 0
	}
	if v < 0 {
		return "-₹" + inr.Sprintf("%.2f", -v)
	}
	return "₹" + inr.Sprintf("%.2f", v)
}

// FormatQty formats a quantity without trailing zeros ("2", "0.25").
func FormatQty(q float64) string {
	if math.IsNaN(q) || math.IsInf(q, 0) {
		q = 0
	}
	return strconv.FormatFloat(q, 'f', -1, 64)
}

// FormatDate formats an invoice date for the full-page templates.
func FormatDate(t time.Time) string {
	return t.Format("02 Jan 2006")
}

// FormatDateTime formats an invoice date with time, used by the
// receipt template.
func FormatDateTime(t time.Time) string {
	return t.Format("02 Jan 2006, 3:04 PM")
}

package printer

import (
	"bytes"
	"fmt"
	"strings"
)

// ESC/POS control bytes.
const (
	escByte = 0x1B
	gsByte  = 0x1D
	lfByte  = 0x0A
)

// Text alignment.
const (
	AlignLeft   = 0
	AlignCenter = 1
	AlignRight  = 2
)

// Character sizes.
const (
	SizeNormal = 0x00
	SizeDouble = 0x11 // double width and height
)

// Receipt accumulates an ESC/POS byte stream for a thermal printer.
// Width is the paper width in characters: 32 for 58mm, 48 for 80mm.
type Receipt struct {
	buf   bytes.Buffer
	width int
}

// NewReceipt starts a receipt for the given character width and sends
// the printer initialize command.
func NewReceipt(width int) *Receipt {
	if width <= 0 {
		width = 32
	}
	r := &Receipt{width: width}
	r.buf.Write([]byte{escByte, '@'})
	return r
}

// Align sets text alignment for subsequent lines.
func (r *Receipt) Align(a int) *Receipt {
	r.buf.Write([]byte{escByte, 'a', byte(a)})
	return r
}

// Bold toggles emphasized text.
func (r *Receipt) Bold(on bool) *Receipt {
	b := byte(0)
	if on {
		b = 1
	}
	r.buf.Write([]byte{escByte, 'E', b})
	return r
}

// Size sets the character size (SizeNormal or SizeDouble).
func (r *Receipt) Size(s byte) *Receipt {
	r.buf.Write([]byte{gsByte, '!', s})
	return r
}

// Line writes s followed by a line feed.
func (r *Receipt) Line(s string) *Receipt {
	r.buf.WriteString(s)
	r.buf.WriteByte(lfByte)
	return r
}

// Linef writes a formatted line.
func (r *Receipt) Linef(format string, args ...interface{}) *Receipt {
	return r.Line(fmt.Sprintf(format, args...))
}

// Rule prints a full-width dashed rule.
func (r *Receipt) Rule() *Receipt {
	return r.Line(strings.Repeat("-", r.width))
}

// Cols prints left-aligned text and a right-aligned value on one line,
// truncating the left side if the two would collide.
func (r *Receipt) Cols(left, right string) *Receipt {
	gap := r.width - len(left) - len(right)
	if gap < 1 {
		keep := r.width - len(right) - 1
		if keep < 1 {
			keep = 1
		}
		if len(left) > keep {
			left = left[:keep]
		}
		gap = r.width - len(left) - len(right)
		if gap < 1 {
			gap = 1
		}
	}
	r.buf.WriteString(left)
	r.buf.WriteString(strings.Repeat(" ", gap))
	r.buf.WriteString(right)
	r.buf.WriteByte(lfByte)
	return r
}

// Item prints an item line as "name x qty" with the amount right
// aligned, plus an indented note line when note is non-empty.
func (r *Receipt) Item(name, qty, amount, note string) *Receipt {
	r.Cols(fmt.Sprintf("%s x %s", name, qty), amount)
	if note != "" {
		r.Linef("  %s", note)
	}
	return r
}

// Feed advances the paper n lines.
func (r *Receipt) Feed(n int) *Receipt {
	for i := 0; i < n; i++ {
		r.buf.WriteByte(lfByte)
	}
	return r
}

// Cut sends the partial paper cut command.
func (r *Receipt) Cut() *Receipt {
	r.buf.Write([]byte{gsByte, 'V', 0x01})
	return r
}

// Bytes returns the accumulated ESC/POS stream.
func (r *Receipt) Bytes() []byte {
	return r.buf.Bytes()
}

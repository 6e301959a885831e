package printer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReceiptStartsWithInit(t *testing.T) {
	data := NewReceipt(32).Bytes()
	assert.Equal(t, []byte{0x1B, '@'}, data[:2])
}

func TestColsRightAlignsValue(t *testing.T) {
	data := NewReceipt(32).Cols("Total:", "1,128.00").Bytes()
	text := string(data[2:]) // skip init

	line := strings.TrimSuffix(text, "\n")
	assert.Len(t, line, 32)
	assert.True(t, strings.HasPrefix(line, "Total:"))
	assert.True(t, strings.HasSuffix(line, "1,128.00"))
}

func TestColsTruncatesLongLeftSide(t *testing.T) {
	data := NewReceipt(16).Cols("A very long product name", "99.00").Bytes()
	line := strings.TrimSuffix(string(data[2:]), "\n")

	assert.LessOrEqual(t, len(line), 16)
	assert.True(t, strings.HasSuffix(line, "99.00"))
}

func TestRuleMatchesWidth(t *testing.T) {
	data := NewReceipt(32).Rule().Bytes()
	assert.Contains(t, string(data), strings.Repeat("-", 32)+"\n")
}

func TestItemWritesNoteLine(t *testing.T) {
	data := NewReceipt(32).Item("Salt 1kg", "2", "46.00", "less 2.00/unit").Bytes()
	text := string(data)

	assert.Contains(t, text, "Salt 1kg x 2")
	assert.Contains(t, text, "46.00\n")
	assert.Contains(t, text, "  less 2.00/unit\n")
}

func TestCutCommand(t *testing.T) {
	data := NewReceipt(32).Cut().Bytes()
	assert.Equal(t, []byte{0x1D, 'V', 0x01}, data[len(data)-3:])
}

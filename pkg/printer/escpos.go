package printer

import (
	"bytes"
	"fmt"
	"strings"
)

const lineFeed = 0x0A

// Align selects horizontal text alignment (ESC a).
type Align byte

const (
	AlignLeft   Align = 0
	AlignCenter Align = 1
	AlignRight  Align = 2
)

// Size selects the character magnification (GS !).
type Size byte

const (
	FontNormal Size = 0x00
	FontDouble Size = 0x11 // double width and height
)

// Document accumulates an ESC/POS byte stream for a fixed-width receipt.
// Width is in characters: 48 for 80mm paper, 32 for 58mm.
type Document struct {
	buf   bytes.Buffer
	width int
}

// NewDocument starts a document at the given character width, beginning with
// the printer initialize command.
func NewDocument(width int) *Document {
	if width <= 0 {
		width = 32
	}
	d := &Document{width: width}
	d.buf.Write([]byte{0x1B, '@'})
	return d
}

func (d *Document) SetAlign(a Align) *Document {
	d.buf.Write([]byte{0x1B, 'a', byte(a)})
	return d
}

func (d *Document) SetBold(on bool) *Document {
	b := byte(0)
	if on {
		b = 1
	}
	d.buf.Write([]byte{0x1B, 'E', b})
	return d
}

func (d *Document) SetFontSize(s Size) *Document {
	d.buf.Write([]byte{0x1D, '!', byte(s)})
	return d
}

// Text writes one line.
func (d *Document) Text(s string) *Document {
	d.buf.WriteString(s)
	d.buf.WriteByte(lineFeed)
	return d
}

// TextF writes one formatted line.
func (d *Document) TextF(format string, args ...any) *Document {
	return d.Text(fmt.Sprintf(format, args...))
}

func (d *Document) LineFeed() *Document {
	d.buf.WriteByte(lineFeed)
	return d
}

func (d *Document) FeedLines(n int) *Document {
	for i := 0; i < n; i++ {
		d.buf.WriteByte(lineFeed)
	}
	return d
}

// Separator writes a full-width rule of the given character.
func (d *Document) Separator(char byte) *Document {
	return d.Text(strings.Repeat(string(char), d.width))
}

// KeyValue writes key on the left and value flush right on the same line.
func (d *Document) KeyValue(key, value string) *Document {
	return d.Text(d.spread(key, value))
}

// ItemLine writes a receipt line of the form "3x Widget" with the amount
// flush right.
func (d *Document) ItemLine(qty int, name, amount string) *Document {
	return d.Text(d.spread(fmt.Sprintf("%dx %s", qty, name), amount))
}

// Cut issues a full paper cut.
func (d *Document) Cut() *Document {
	d.buf.Write([]byte{0x1D, 'V', 0x00})
	return d
}

// Bytes returns the accumulated stream.
func (d *Document) Bytes() []byte {
	return d.buf.Bytes()
}

// spread pads left and right to the document width, keeping at least one
// space between them when the line overflows.
func (d *Document) spread(left, right string) string {
	gap := d.width - len(left) - len(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

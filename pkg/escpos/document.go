package escpos

import (
	"bytes"
	"fmt"
	"strings"
)

// ESC/POS command constants
const (
	ESC = 0x1B
	GS  = 0x1D
	LF  = 0x0A
)

// Text alignment
const (
	AlignLeft   = 0
	AlignCenter = 1
	AlignRight  = 2
)

// Font size
const (
	FontNormal = 0x00
	FontDouble = 0x11 // Double width + double height
	FontWide   = 0x10 // Double width only
	FontTall   = 0x01 // Double height only
)

// Document builds an ESC/POS byte stream for thermal printers.
//
// Any text byte outside the printable ASCII range is replaced with a space
// instead of being dropped, so column alignment survives bad input. The
// number of replacements is available via Replaced for callers that want to
// log a warning.
type Document struct {
	buf      bytes.Buffer
	width    int // print width in characters (32 for 80mm at double-width font)
	replaced int
}

// NewDocument creates a new ESC/POS document with the given character width.
func NewDocument(charWidth int) *Document {
	if charWidth <= 0 {
		charWidth = 32
	}
	d := &Document{width: charWidth}
	d.Init()
	return d
}

// Width returns the character width of the document.
func (d *Document) Width() int {
	return d.width
}

// Init sends the ESC @ (initialize printer) command.
func (d *Document) Init() *Document {
	d.buf.Write([]byte{ESC, '@'})
	return d
}

// LineFeed sends a line feed.
func (d *Document) LineFeed() *Document {
	d.buf.WriteByte(LF)
	return d
}

// FeedLines sends n line feeds.
func (d *Document) FeedLines(n int) *Document {
	for i := 0; i < n; i++ {
		d.buf.WriteByte(LF)
	}
	return d
}

// SetAlign sets text alignment: AlignLeft, AlignCenter, AlignRight.
func (d *Document) SetAlign(align int) *Document {
	d.buf.Write([]byte{ESC, 'a', byte(align)})
	return d
}

// SetBold enables or disables bold text.
func (d *Document) SetBold(on bool) *Document {
	b := byte(0)
	if on {
		b = 1
	}
	d.buf.Write([]byte{ESC, 'E', b})
	return d
}

// SetFontSize sets the character size. Use FontNormal, FontDouble, FontWide, or FontTall.
func (d *Document) SetFontSize(size byte) *Document {
	d.buf.Write([]byte{GS, '!', size})
	return d
}

// writeText writes s byte by byte, substituting a space for anything outside
// the printable range. Length is preserved.
func (d *Document) writeText(s string) {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < 0x20 || c > 0x7E {
			d.buf.WriteByte(' ')
			d.replaced++
			continue
		}
		d.buf.WriteByte(c)
	}
}

// Replaced returns how many bytes were substituted with spaces so far.
func (d *Document) Replaced() int {
	return d.replaced
}

// Text writes a line of text followed by a line feed.
func (d *Document) Text(s string) *Document {
	d.writeText(s)
	d.buf.WriteByte(LF)
	return d
}

// TextF writes a formatted line of text followed by a line feed.
func (d *Document) TextF(format string, args ...interface{}) *Document {
	d.writeText(fmt.Sprintf(format, args...))
	d.buf.WriteByte(LF)
	return d
}

// Separator prints a full-width separator line.
func (d *Document) Separator(char byte) *Document {
	d.writeText(strings.Repeat(string(char), d.width))
	d.buf.WriteByte(LF)
	return d
}

// KeyValue prints a left-aligned key and right-aligned value on the same line.
// Example: "Subtotal                  45,000"
func (d *Document) KeyValue(key, value string) *Document {
	spaces := d.width - len(key) - len(value)
	if spaces < 1 {
		spaces = 1
	}
	d.writeText(key)
	d.buf.WriteString(strings.Repeat(" ", spaces))
	d.writeText(value)
	d.buf.WriteByte(LF)
	return d
}

// Raster emits a GS v 0 raster bit image. Data must be packed MSB-first with
// stride bytes per row, height rows total.
func (d *Document) Raster(stride, height int, data []byte) *Document {
	if stride <= 0 || height <= 0 || len(data) < stride*height {
		return d
	}
	d.buf.Write([]byte{GS, 'v', '0', 0x00,
		byte(stride & 0xFF), byte(stride >> 8),
		byte(height & 0xFF), byte(height >> 8),
	})
	d.buf.Write(data[:stride*height])
	return d
}

// Cut sends the paper cut command (full cut).
func (d *Document) Cut() *Document {
	d.buf.Write([]byte{GS, 'V', 0x00})
	return d
}

// PartialCut sends the partial cut command.
func (d *Document) PartialCut() *Document {
	d.buf.Write([]byte{GS, 'V', 0x01})
	return d
}

// Bytes returns the accumulated ESC/POS byte stream.
func (d *Document) Bytes() []byte {
	return d.buf.Bytes()
}

// Reset clears the buffer and reinitializes the document.
func (d *Document) Reset() *Document {
	d.buf.Reset()
	d.replaced = 0
	d.Init()
	return d
}

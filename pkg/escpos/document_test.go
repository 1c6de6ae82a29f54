package escpos

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDocument(t *testing.T) {
	t.Run("starts with printer init", func(t *testing.T) {
		doc := NewDocument(32)
		assert.Equal(t, []byte{ESC, '@'}, doc.Bytes())
	})

	t.Run("defaults width to 32", func(t *testing.T) {
		doc := NewDocument(0)
		assert.Equal(t, 32, doc.Width())
	})
}

func TestDocument_Text(t *testing.T) {
	t.Run("appends line feed", func(t *testing.T) {
		doc := NewDocument(32)
		doc.Text("hello")
		assert.True(t, bytes.HasSuffix(doc.Bytes(), []byte("hello\n")))
	})

	t.Run("replaces unprintable bytes with spaces", func(t *testing.T) {
		doc := NewDocument(32)
		doc.Text("caf\xc3\xa9\x07")
		assert.True(t, bytes.HasSuffix(doc.Bytes(), []byte("caf   \n")))
		assert.Equal(t, 3, doc.Replaced())
	})

	t.Run("length is preserved for column alignment", func(t *testing.T) {
		doc := NewDocument(32)
		before := len(doc.Bytes())
		doc.Text("ab\xffcd")
		assert.Equal(t, before+6, len(doc.Bytes())) // 5 chars + LF
	})
}

func TestDocument_KeyValue(t *testing.T) {
	t.Run("pads key and value to full width", func(t *testing.T) {
		doc := NewDocument(32)
		doc.KeyValue("TOTAL", "45,000.00")

		line := lastLine(t, doc)
		assert.Len(t, line, 32)
		assert.Equal(t, "TOTAL", line[:5])
		assert.Equal(t, "45,000.00", line[len(line)-9:])
	})

	t.Run("keeps one space when content overflows", func(t *testing.T) {
		doc := NewDocument(10)
		doc.KeyValue("LONGKEY", "LONGVALUE")
		assert.Equal(t, "LONGKEY LONGVALUE", lastLine(t, doc))
	})
}

func TestDocument_Separator(t *testing.T) {
	doc := NewDocument(32)
	doc.Separator('-')
	assert.Equal(t, bytes.Repeat([]byte{'-'}, 32), []byte(lastLine(t, doc)))
}

func TestDocument_Raster(t *testing.T) {
	t.Run("emits GS v 0 header with little-endian dimensions", func(t *testing.T) {
		doc := NewDocument(32)
		data := make([]byte, 2*16)
		doc.Raster(2, 16, data)

		out := doc.Bytes()[2:] // skip init
		assert.Equal(t, []byte{GS, 'v', '0', 0x00, 2, 0, 16, 0}, out[:8])
		assert.Equal(t, data, out[8:])
	})

	t.Run("ignores short data", func(t *testing.T) {
		doc := NewDocument(32)
		before := len(doc.Bytes())
		doc.Raster(2, 16, make([]byte, 5))
		assert.Equal(t, before, len(doc.Bytes()))
	})
}

func TestDocument_CutAndReset(t *testing.T) {
	doc := NewDocument(32)
	doc.Text("x").Cut()
	assert.True(t, bytes.HasSuffix(doc.Bytes(), []byte{GS, 'V', 0x00}))

	doc.Reset()
	assert.Equal(t, []byte{ESC, '@'}, doc.Bytes())
	assert.Equal(t, 0, doc.Replaced())
}

// lastLine returns the final LF-terminated line of the document.
func lastLine(t *testing.T, doc *Document) string {
	t.Helper()
	out := doc.Bytes()[2:] // skip init
	assert.Equal(t, byte(LF), out[len(out)-1])
	out = out[:len(out)-1]
	idx := bytes.LastIndexByte(out, LF)
	return string(out[idx+1:])
}

package service

import (
	"fmt"
	"time"

	"github.com/kasirhub/kasir-pos/internal/domain/entity"
	"github.com/kasirhub/kasir-pos/pkg/escpos"
	"github.com/kasirhub/kasir-pos/pkg/imaging"
)

// Item table layout for the 32-character receipt: a 16-character name
// column, quantity padded to 3 and the line amount right-aligned in 10.
const (
	nameColWidth   = 16
	qtyColWidth    = 3
	amountColWidth = 10
)

var nowFunc = time.Now

// encodeESCPOS serializes a receipt into the thermal printer control stream.
// The layout is fixed; any change here is a breaking change for downstream
// printers.
func (s *ReceiptService) encodeESCPOS(r *entity.Receipt, f Formatter, logo *imaging.MonoBitmap) []byte {
	doc := escpos.NewDocument(s.charWidth)

	doc.SetAlign(escpos.AlignCenter)
	if logo != nil {
		doc.Raster(logo.Stride, logo.Height, logo.Data)
		doc.LineFeed()
	}

	// Store header
	doc.SetFontSize(escpos.FontDouble).
		Text(r.Header.StoreName).
		SetFontSize(escpos.FontNormal)
	if r.Header.Address != "" {
		doc.Text(r.Header.Address)
	}
	if r.Header.Phone != "" {
		doc.Text(r.Header.Phone)
	}
	if r.Header.Website != "" {
		doc.Text(r.Header.Website)
	}

	doc.SetBold(true).
		Text("STRUK PEMBELIAN").
		SetBold(false)

	doc.SetAlign(escpos.AlignLeft).
		Separator('-')

	doc.KeyValue("No", r.Number)
	if r.Customer != "" {
		doc.KeyValue("Pelanggan", r.Customer)
	}
	doc.KeyValue("Tanggal", r.Date).
		KeyValue("Jam", r.Time).
		Separator('-')

	for _, item := range r.Items {
		writeItemLines(doc, item, f)
	}

	doc.Separator('-')

	doc.SetBold(true).
		KeyValue("SUBTOTAL", f.Amount(r.SubTotal))
	if r.Discount > 0 {
		doc.KeyValue("DISKON", f.Amount(r.Discount))
	}
	doc.KeyValue("TOTAL", f.Amount(r.Total)).
		SetBold(false)

	if len(r.Footer) > 0 {
		doc.Separator('-').
			SetAlign(escpos.AlignCenter)
		for _, line := range r.Footer {
			doc.Text(line)
		}
		doc.SetAlign(escpos.AlignLeft)
	}

	doc.FeedLines(3).
		Cut()

	if doc.Replaced() > 0 {
		s.log.Warn("receipt contained unprintable characters",
			"number", r.Number,
			"replaced", doc.Replaced(),
		)
	}
	return doc.Bytes()
}

// writeItemLines emits one item as a fixed-width table row. Names longer
// than the name column wrap onto continuation lines; quantity and amount
// stay on the first row.
func writeItemLines(doc *escpos.Document, item entity.ReceiptLine, f Formatter) {
	chunks := wrapText(item.Name, nameColWidth)

	qty := f.Quantity(item.Quantity)
	amount := f.Amount(item.SubTotal)
	doc.Text(fmt.Sprintf("%-*s%-*s%*s",
		nameColWidth, chunks[0],
		qtyColWidth, qty,
		amountColWidth, amount,
	))
	for _, chunk := range chunks[1:] {
		doc.Text(chunk)
	}
}

// wrapText splits s into column-width chunks. The result always has at
// least one element.
func wrapText(s string, width int) []string {
	if len(s) <= width {
		return []string{s}
	}
	var chunks []string
	for len(s) > width {
		chunks = append(chunks, s[:width])
		s = s[width:]
	}
	if len(s) > 0 {
		chunks = append(chunks, s)
	}
	return chunks
}

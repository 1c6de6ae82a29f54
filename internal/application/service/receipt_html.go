package service

import (
	"bytes"
	"html/template"

	"github.com/kasirhub/kasir-pos/internal/domain/entity"
)

// htmlReceiptView is the pre-formatted view fed to the HTML template so the
// template itself stays free of formatting logic.
type htmlReceiptView struct {
	StoreName    string
	Address      string
	Phone        string
	Website      string
	LogoSrc      template.URL
	Number       string
	Customer     string
	Date         string
	Time         string
	Items        []htmlReceiptItem
	SubTotal     string
	Discount     string
	HasDiscount  bool
	Total        string
	PaymentLabel string
	Footer       []string
}

type htmlReceiptItem struct {
	Name     string
	Quantity string
	Price    string
	SubTotal string
}

var receiptTemplate = template.Must(template.New("receipt").Parse(`<!DOCTYPE html>
<html lang="id">
<head>
<meta charset="utf-8">
<title>Struk {{.Number}}</title>
<style>
  body { font-family: 'Courier New', monospace; background: #f4f4f4; margin: 0; padding: 16px; }
  .receipt { width: 320px; margin: 0 auto; background: #fff; padding: 16px; box-shadow: 0 1px 4px rgba(0,0,0,.2); }
  .header { text-align: center; margin-bottom: 8px; }
  .header img { max-width: 100%; }
  .store-name { font-size: 18px; font-weight: bold; }
  .banner { text-align: center; font-weight: bold; border-top: 1px dashed #000; border-bottom: 1px dashed #000; padding: 4px 0; margin: 8px 0; }
  table { width: 100%; border-collapse: collapse; font-size: 12px; }
  td { padding: 2px 0; vertical-align: top; }
  .num { text-align: right; white-space: nowrap; }
  .totals { border-top: 1px dashed #000; margin-top: 8px; padding-top: 8px; font-size: 12px; }
  .totals .grand { font-weight: bold; font-size: 14px; }
  .footer { text-align: center; font-size: 11px; margin-top: 12px; border-top: 1px dashed #000; padding-top: 8px; }
</style>
</head>
<body>
<div class="receipt">
  <div class="header">
    {{if .LogoSrc}}<img src="{{.LogoSrc}}" alt="logo">{{end}}
    <div class="store-name">{{.StoreName}}</div>
    {{if .Address}}<div>{{.Address}}</div>{{end}}
    {{if .Phone}}<div>{{.Phone}}</div>{{end}}
    {{if .Website}}<div>{{.Website}}</div>{{end}}
  </div>
  <div class="banner">STRUK PEMBELIAN</div>
  <table>
    <tr><td>No</td><td class="num">{{.Number}}</td></tr>
    {{if .Customer}}<tr><td>Pelanggan</td><td class="num">{{.Customer}}</td></tr>{{end}}
    <tr><td>Tanggal</td><td class="num">{{.Date}} {{.Time}}</td></tr>
    {{if .PaymentLabel}}<tr><td>Pembayaran</td><td class="num">{{.PaymentLabel}}</td></tr>{{end}}
  </table>
  <div class="banner">&nbsp;</div>
  <table>
    {{range .Items}}
    <tr>
      <td>{{.Name}}<br>{{.Quantity}} x {{.Price}}</td>
      <td class="num">{{.SubTotal}}</td>
    </tr>
    {{end}}
  </table>
  <div class="totals">
    <table>
      <tr><td>Subtotal</td><td class="num">{{.SubTotal}}</td></tr>
      {{if .HasDiscount}}<tr><td>Diskon</td><td class="num">{{.Discount}}</td></tr>{{end}}
      <tr class="grand"><td>TOTAL</td><td class="num grand">{{.Total}}</td></tr>
    </table>
  </div>
  {{if .Footer}}
  <div class="footer">
    {{range .Footer}}<div>{{.}}</div>{{end}}
  </div>
  {{end}}
</div>
</body>
</html>
`))

// renderReceiptHTML produces the self-contained HTML receipt document.
func renderReceiptHTML(r *entity.Receipt, tpl *entity.ReceiptTemplate, f Formatter) (string, error) {
	view := htmlReceiptView{
		StoreName:    r.Header.StoreName,
		Address:      r.Header.Address,
		Phone:        r.Header.Phone,
		Website:      r.Header.Website,
		Number:       r.Number,
		Customer:     r.Customer,
		Date:         r.Date,
		Time:         r.Time,
		SubTotal:     f.Amount(r.SubTotal),
		Discount:     f.Amount(r.Discount),
		HasDiscount:  r.Discount > 0,
		Total:        f.Amount(r.Total),
		PaymentLabel: r.PaymentLabel,
		Footer:       r.Footer,
	}

	if tpl.ShowLogo && tpl.Logo != "" {
		view.LogoSrc = template.URL(tpl.Logo)
	}

	for _, item := range r.Items {
		view.Items = append(view.Items, htmlReceiptItem{
			Name:     item.Name,
			Quantity: f.Quantity(item.Quantity),
			Price:    f.Amount(item.Price),
			SubTotal: f.Amount(item.SubTotal),
		})
	}

	var buf bytes.Buffer
	if err := receiptTemplate.Execute(&buf, view); err != nil {
		return "", err
	}
	return buf.String(), nil
}

package receipt

import (
	htmltemplate "html/template"
	texttemplate "text/template"
)

const htmlLayout = `<html>
<head>
<title>Receipt {{.NomorStruk}}</title>
<style>
body { font-family: sans-serif; font-size: 12px; }
.receipt { width: 300px; margin: 0 auto; }
.header { text-align: center; margin-bottom: 10px; }
.items { width: 100%; border-collapse: collapse; }
.items th, .items td { text-align: left; padding: 3px 0; }
.total-line { display: flex; justify-content: space-between; margin: 5px 0; }
.divider { border-top: 1px dashed #000; margin: 10px 0; }
</style>
</head>
<body onload="window.print()">
<div class="receipt">
<div class="header">
<h2>{{.SystemName}}</h2>
<p>Receipt #: {{.NomorStruk}}</p>
<p>Date: {{.Tanggal}}</p>
<div class="divider"></div>
</div>
<table class="items">
<thead><tr><th>Item</th><th>Qty</th><th>Price</th><th>Total</th></tr></thead>
<tbody>
{{- range .Lines}}
<tr><td>{{.Nama}}</td><td>{{.Jumlah}}</td><td>{{.HargaSatuan}}</td><td>{{.Subtotal}}</td></tr>
{{- end}}
</tbody>
</table>
<div class="divider"></div>
<div class="total-line"><span>Subtotal:</span><span>{{.Subtotal}}</span></div>
<div class="total-line" style="font-weight: bold;"><span>TOTAL:</span><span>{{.Total}}</span></div>
<div class="divider"></div>
<div class="total-line"><span>Payment Method:</span><span>{{.MetodeBayar}}</span></div>
{{- if .Tunai}}
<div class="total-line"><span>Cash Received:</span><span>{{.UangDiterima}}</span></div>
<div class="total-line"><span>Change:</span><span>{{.Kembalian}}</span></div>
{{- end}}
<div class="divider"></div>
<div class="header"><p>Thank you for your purchase!</p></div>
</div>
</body>
</html>
`

const textLayout = `{{.SystemName}}
Receipt #: {{.NomorStruk}}
Date: {{.Tanggal}}
------------------------------

ITEMS:
{{range .Lines}}{{.Nama}}
  {{.Jumlah}} x {{.HargaSatuan}} = {{.Subtotal}}
{{end}}
------------------------------
Subtotal: {{.Subtotal}}
TOTAL: {{.Total}}

Payment: {{.MetodeBayar}}
{{- if .Tunai}}
Cash: {{.UangDiterima}}
Change: {{.Kembalian}}
{{- end}}

Thank you for your purchase!
`

var (
	htmlTmpl = htmltemplate.Must(htmltemplate.New("struk.html").Parse(htmlLayout))
	textTmpl = texttemplate.Must(texttemplate.New("struk.txt").Parse(textLayout))
)

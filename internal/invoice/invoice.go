// Package invoice renders a printable HTML invoice for a single order.
package invoice

import (
	"html/template"
	"io"
	"time"
)

// Item is one invoice line.
type Item struct {
	ProductName        string
	Quantity           int32
	UnitPrice          string
	DiscountPercentage string
	FinalUnitPrice     string
	LineTotal          string
}

// Data is everything the invoice template needs, with money already
// formatted as strings so the template stays dumb.
type Data struct {
	OrderNumber       string
	CreatedAt         time.Time
	StoreName         string
	StoreAddress      string
	StorePhone        string
	CustomerName      string
	CustomerPhone     string
	CustomerAddress   string
	PaymentMethod     string
	Status            string
	Items             []Item
	Subtotal          string
	BulkDiscountTotal string
	ShippingCost      string
	FinalTotal        string
}

var tmpl = template.Must(template.New("invoice").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Invoice {{.OrderNumber}}</title>
<style>
body { font-family: sans-serif; max-width: 720px; margin: 2rem auto; color: #222; }
table { width: 100%; border-collapse: collapse; margin: 1rem 0; }
th, td { border-bottom: 1px solid #ddd; padding: 0.5rem; text-align: left; }
td.num, th.num { text-align: right; }
.totals td { border: none; padding: 0.25rem 0.5rem; }
.totals .grand { font-weight: bold; border-top: 2px solid #222; }
.print-btn { margin: 1rem 0; }
@media print { .print-btn { display: none; } }
</style>
</head>
<body>
<button class="print-btn" onclick="window.print()">Print</button>
<h1>Invoice {{.OrderNumber}}</h1>
<p>{{.StoreName}}<br>{{.StoreAddress}}<br>{{.StorePhone}}</p>
<p>Date: {{.CreatedAt.Format "2 Jan 2006 15:04"}}<br>
Status: {{.Status}}<br>
Payment: {{.PaymentMethod}}</p>
<h2>Bill To</h2>
<p>{{.CustomerName}}<br>{{.CustomerPhone}}{{if .CustomerAddress}}<br>{{.CustomerAddress}}{{end}}</p>
<table>
<thead>
<tr><th>Item</th><th class="num">Qty</th><th class="num">Unit Price</th><th class="num">Discount</th><th class="num">Total</th></tr>
</thead>
<tbody>
{{range .Items}}<tr>
<td>{{.ProductName}}</td>
<td class="num">{{.Quantity}}</td>
<td class="num">{{.UnitPrice}}</td>
<td class="num">{{if ne .DiscountPercentage "0"}}{{.DiscountPercentage}}%{{else}}-{{end}}</td>
<td class="num">{{.LineTotal}}</td>
</tr>
{{end}}</tbody>
</table>
<table class="totals">
<tr><td>Subtotal</td><td class="num">{{.Subtotal}}</td></tr>
<tr><td>Bulk Discount</td><td class="num">-{{.BulkDiscountTotal}}</td></tr>
<tr><td>Shipping</td><td class="num">{{.ShippingCost}}</td></tr>
<tr class="grand"><td>Total</td><td class="num">{{.FinalTotal}}</td></tr>
</table>
</body>
</html>
`))

// Render writes the invoice HTML for the given data.
func Render(w io.Writer, data Data) error {
	return tmpl.Execute(w, data)
}

package notification

import (
	"bytes"
	"html/template"

	"github.com/shopspring/decimal"
)

// EmailLine is one rendered order line: snapshot data merged with current
// catalog display fields where those could be fetched.
type EmailLine struct {
	Name      string
	Slug      string
	ImageURL  string
	Quantity  int
	UnitPrice decimal.Decimal
	Total     decimal.Decimal
}

type EmailData struct {
	OrderNumber    string
	CustomerName   string
	CustomerEmail  string
	Lines          []EmailLine
	Subtotal       decimal.Decimal
	TaxAmount      decimal.Decimal
	ShippingAmount decimal.Decimal
	DiscountAmount decimal.Decimal
	TotalAmount    decimal.Decimal
}

var adminTemplate = template.Must(template.New("admin").Parse(`<html>
<body style="font-family:sans-serif">
  <h2>New order {{.OrderNumber}}</h2>
  <p>Customer: {{if .CustomerName}}{{.CustomerName}} &lt;{{.CustomerEmail}}&gt;{{else}}{{.CustomerEmail}}{{end}}</p>
  <table border="1" cellpadding="6" cellspacing="0">
    <tr><th>Item</th><th>Qty</th><th>Unit</th><th>Total</th></tr>
    {{range .Lines}}
    <tr>
      <td>{{if .ImageURL}}<img src="{{.ImageURL}}" width="40" alt="">{{end}} {{.Name}}</td>
      <td>{{.Quantity}}</td>
      <td>{{.UnitPrice}}</td>
      <td>{{.Total}}</td>
    </tr>
    {{end}}
  </table>
  <p>Subtotal: {{.Subtotal}}<br>
     Tax: {{.TaxAmount}}<br>
     Shipping: {{.ShippingAmount}}<br>
     Discount: {{.DiscountAmount}}<br>
     <strong>Total: {{.TotalAmount}}</strong></p>
</body>
</html>`))

var customerTemplate = template.Must(template.New("customer").Parse(`<html>
<body style="font-family:sans-serif">
  <h2>Thank you for your order!</h2>
  <p>{{if .CustomerName}}Hi {{.CustomerName}},{{else}}Hi,{{end}}</p>
  <p>We received your order <strong>{{.OrderNumber}}</strong> and will start processing it shortly.</p>
  <table border="1" cellpadding="6" cellspacing="0">
    <tr><th>Item</th><th>Qty</th><th>Unit</th><th>Total</th></tr>
    {{range .Lines}}
    <tr>
      <td>{{if .ImageURL}}<img src="{{.ImageURL}}" width="40" alt="">{{end}} {{.Name}}</td>
      <td>{{.Quantity}}</td>
      <td>{{.UnitPrice}}</td>
      <td>{{.Total}}</td>
    </tr>
    {{end}}
  </table>
  <p><strong>Total: {{.TotalAmount}}</strong></p>
  <p>We will email you again once your order ships.</p>
</body>
</html>`))

func RenderAdminEmail(data EmailData) (string, error) {
	var buf bytes.Buffer
	if err := adminTemplate.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func RenderCustomerEmail(data EmailData) (string, error) {
	var buf bytes.Buffer
	if err := customerTemplate.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

package requisition

import (
	"html/template"
	"strings"
	"time"
)

// ReceiptInput is a submitted snapshot to render as a printable summary.
// It is self-contained so a receipt can be re-rendered after the draft is
// gone.
type ReceiptInput struct {
	BusinessName   string `json:"businessName" validate:"required"`
	FullName       string `json:"fullName" validate:"required"`
	PONumber       string `json:"poNumber"`
	DeliveryWindow string `json:"deliveryWindow"`
	Items          []Line `json:"items" validate:"required,min=1,dive"`
	GrandTotal     string `json:"grandTotal" validate:"required"`
	SubmittedAt    string `json:"submittedAt"`
}

var receiptTmpl = template.Must(template.New("receipt").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8"/>
<title>Purchase Order Receipt</title>
<style>
  body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; color: #1e293b; margin: 40px; }
  .header { border-bottom: 3px solid #000; padding-bottom: 16px; margin-bottom: 24px; }
  .header h1 { margin: 0; font-size: 22px; text-transform: uppercase; letter-spacing: 1px; }
  .header p { margin: 4px 0 0; color: #64748b; font-size: 12px; }
  .meta { margin-bottom: 24px; font-size: 14px; }
  .meta span { display: inline-block; margin-right: 24px; }
  .meta .label { font-size: 11px; font-weight: bold; color: #888; text-transform: uppercase; display: block; }
  table { width: 100%; border-collapse: collapse; margin-bottom: 24px; }
  th, td { padding: 10px; border: 1px solid #e2e8f0; text-align: left; font-size: 14px; }
  th { background: #f8fafc; text-transform: uppercase; font-size: 11px; letter-spacing: 1px; }
  td.num { text-align: right; }
  .total { text-align: right; font-size: 16px; font-weight: bold; }
  .footer { margin-top: 40px; border-top: 1px solid #e2e8f0; padding-top: 12px; font-size: 11px; color: #94a3b8; text-transform: uppercase; letter-spacing: 1px; text-align: center; }
  @media print { body { margin: 0; } }
</style>
</head>
<body>
  <div class="header">
    <h1>United Formulas</h1>
    <p>PO BOX 2589 GREAT FALLS, MT 59403 | 406.727.4144</p>
    <p><strong>Purchase Order Receipt</strong></p>
  </div>
  <div class="meta">
    <span><span class="label">Business</span>{{.BusinessName}}</span>
    <span><span class="label">Contact</span>{{.FullName}}</span>
    <span><span class="label">PO #</span>{{.PONumber}}</span>
    <span><span class="label">Delivery Window</span>{{.DeliveryWindow}}</span>
    <span><span class="label">Submitted</span>{{.SubmittedAt}}</span>
  </div>
  <table>
    <tr>
      <th>Product</th>
      <th>SKU</th>
      <th>Qty</th>
      <th style="text-align: right;">Unit</th>
      <th style="text-align: right;">Total</th>
    </tr>
    {{range .Items}}
    <tr>
      <td>{{.ProductName}}{{if .VariantName}} <small style="color: #64748b;">({{.VariantName}})</small>{{end}}</td>
      <td>{{.SKU}}</td>
      <td>{{.Quantity}}</td>
      <td class="num">{{.Price}}</td>
      <td class="num">{{.Total}}</td>
    </tr>
    {{end}}
  </table>
  <p class="total">Grand Total: {{.GrandTotal}}</p>
  <p>No payment is due today. Your official invoice and delivery confirmation follow by email.</p>
  <div class="footer">Great Falls Queue &bull; United Formulas System</div>
</body>
</html>`))

// RenderReceipt produces the printable HTML summary for a submitted order.
// No network side effects; callers serve it directly as text/html.
func RenderReceipt(input ReceiptInput, now time.Time) (string, error) {
	data := input
	if strings.TrimSpace(data.PONumber) == "" {
		data.PONumber = "N/A"
	}
	if strings.TrimSpace(data.DeliveryWindow) == "" {
		data.DeliveryWindow = "Standard"
	}
	if strings.TrimSpace(data.SubmittedAt) == "" {
		data.SubmittedAt = now.Format("January 2, 2006 15:04")
	}
	var b strings.Builder
	if err := receiptTmpl.Execute(&b, data); err != nil {
		return "", err
	}
	return b.String(), nil
}

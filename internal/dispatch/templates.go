package dispatch

import (
	"html/template"
	"strings"
)

// The email bodies are fixed documents; only payload fields are
// interpolated. html/template escapes user-entered values.

var purchaseOrderTmpl = template.Must(template.New("purchase_order").Parse(`<div style="font-family: Arial; border: 1px solid #000; padding: 20px;">
  <h2>NEW PO: GREAT FALLS QUEUE</h2>
  <p><strong>Business:</strong> {{.BusinessName}} | <strong>Contact:</strong> {{.FullName}} ({{.Phone}})</p>
  <table style="width: 100%; border-collapse: collapse;">
    <tr style="background: #eee; text-align: left;">
      <th style="padding: 10px; border: 1px solid #ddd;">Product</th>
      <th style="padding: 10px; border: 1px solid #ddd; text-align: center;">Qty</th>
    </tr>
    {{range .Items}}
    <tr>
      <td style="padding: 10px; border: 1px solid #ddd;">{{.Name}}</td>
      <td style="padding: 10px; border: 1px solid #ddd; text-align: center;"><strong>{{.Quantity}}</strong></td>
    </tr>
    {{end}}
  </table>
  <p style="margin-top: 20px;"><strong>Grand Total:</strong> {{.GrandTotal}}</p>
  <p style="margin-top: 20px;"><strong>Notes:</strong> {{.Notes}}</p>
  <p style="margin-top: 10px; font-size: 12px; color: #666;">Delivery Window: {{.Delivery}} | PO#: {{.PORef}}</p>
</div>`))

type purchaseOrderTmplData struct {
	BusinessName string
	FullName     string
	Phone        string
	Items        []purchaseOrderTmplItem
	GrandTotal   string
	Notes        string
	Delivery     string
	PORef        string
}

type purchaseOrderTmplItem struct {
	Name     string
	Quantity int
}

func renderPurchaseOrder(payload PurchaseOrderPayload) (string, error) {
	data := purchaseOrderTmplData{
		BusinessName: firstNonEmpty(payload.BusinessName, fallbackNA),
		FullName:     firstNonEmpty(payload.FullName, fallbackNA),
		Phone:        payload.ContactPhone(),
		GrandTotal:   firstNonEmpty(payload.GrandTotal, fallbackNA),
		Notes:        payload.Notes(),
		Delivery:     payload.Delivery(),
		PORef:        payload.PORef(),
	}
	for _, item := range payload.AllItems() {
		data.Items = append(data.Items, purchaseOrderTmplItem{
			Name:     item.DisplayName(),
			Quantity: item.Quantity,
		})
	}
	return execute(purchaseOrderTmpl, data)
}

var inquiryTmpl = template.Must(template.New("inquiry").Parse(`<div style="font-family: sans-serif; color: #1e293b; max-width: 600px; margin: 0 auto; border: 1px solid #e2e8f0; padding: 40px; border-radius: 12px;">
  <h2 style="color: #EA580C; text-transform: uppercase; margin-bottom: 24px;">New Stock &amp; Price Inquiry</h2>
  <p style="margin-bottom: 24px; line-height: 1.6;">A customer has requested an inventory verification and price check for the following:</p>
  <table style="width: 100%; border-collapse: collapse; margin-bottom: 20px;">
    <tr style="background: #f8fafc;">
      <th style="padding: 12px; border: 1px solid #e2e8f0; text-align: left; width: 30%;">Field</th>
      <th style="padding: 12px; border: 1px solid #e2e8f0; text-align: left;">Details</th>
    </tr>
    <tr><td style="padding: 12px; border: 1px solid #e2e8f0;">Customer Name</td><td style="padding: 12px; border: 1px solid #e2e8f0;">{{.FullName}}</td></tr>
    <tr><td style="padding: 12px; border: 1px solid #e2e8f0;">Company</td><td style="padding: 12px; border: 1px solid #e2e8f0;">{{.Company}}</td></tr>
    <tr><td style="padding: 12px; border: 1px solid #e2e8f0;">Email</td><td style="padding: 12px; border: 1px solid #e2e8f0;">{{.Email}}</td></tr>
    <tr><td style="padding: 12px; border: 1px solid #e2e8f0;">Phone</td><td style="padding: 12px; border: 1px solid #e2e8f0;">{{.Phone}}</td></tr>
    <tr><td style="padding: 12px; border: 1px solid #e2e8f0;">Interest</td><td style="padding: 12px; border: 1px solid #e2e8f0;">{{.Interest}}</td></tr>
  </table>
  <div style="background: #f8fafc; padding: 20px; border-radius: 8px; margin-bottom: 24px;">
    <h4 style="margin-top: 0; color: #475569;">Customer Message:</h4>
    <p style="margin-bottom: 0; font-style: italic;">&quot;{{.Message}}&quot;</p>
  </div>
  {{if .Items}}
  <h3 style="color: #EA580C; font-family: sans-serif; text-transform: uppercase; letter-spacing: 1px;">Draft Items (Price/Stock Check)</h3>
  <table style="width: 100%; border-collapse: collapse;">
    <tr style="background: #f8fafc;">
      <th style="padding: 12px; border: 1px solid #e2e8f0; text-align: left;">Product</th>
      <th style="padding: 12px; border: 1px solid #e2e8f0; text-align: left;">SKU</th>
      <th style="padding: 12px; border: 1px solid #e2e8f0; text-align: center;">Qty</th>
    </tr>
    {{range .Items}}
    <tr>
      <td style="padding: 12px; border: 1px solid #e2e8f0;">{{.ProductName}} <br/><small style="color: #64748b;">{{.VariantName}}</small></td>
      <td style="padding: 12px; border: 1px solid #e2e8f0;">{{.SKU}}</td>
      <td style="padding: 12px; border: 1px solid #e2e8f0; text-align: center;">{{.Quantity}}</td>
    </tr>
    {{end}}
  </table>
  {{end}}
  <div style="margin-top: 40px; border-top: 1px solid #e2e8f0; font-size: 11px; color: #94a3b8; text-align: center; text-transform: uppercase; letter-spacing: 1px;">
    Inventory Verification Protocol &bull; United Formulas System
  </div>
</div>`))

type inquiryTmplData struct {
	FullName string
	Company  string
	Email    string
	Phone    string
	Interest string
	Message  string
	Items    []InquiryItem
}

func renderInquiry(payload InquiryPayload) (string, error) {
	data := inquiryTmplData{
		FullName: firstNonEmpty(payload.FullName, fallbackNA),
		Company:  firstNonEmpty(payload.Company, fallbackNA),
		Email:    firstNonEmpty(payload.Email, fallbackNA),
		Phone:    firstNonEmpty(payload.Phone, fallbackNA),
		Interest: firstNonEmpty(payload.Interest, fallbackNA),
		Message:  payload.CustomerMessage(),
		Items:    payload.Items,
	}
	return execute(inquiryTmpl, data)
}

var creditApplicationTmpl = template.Must(template.New("credit_application").Parse(`<!DOCTYPE html>
<html>
<head>
<style>
  body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; line-height: 1.6; color: #333; margin: 0; padding: 0; }
  .wrapper { width: 100%; table-layout: fixed; background-color: #f4f4f4; padding: 20px 0; }
  .container { width: 600px; margin: 0 auto; background-color: #ffffff; border: 1px solid #ddd; border-top: 4px solid #000; }
  .header { padding: 20px; background-color: #f9f9f9; border-bottom: 1px solid #eee; }
  .section-title { background-color: #000; color: #fff; padding: 10px 20px; font-size: 14px; font-weight: bold; text-transform: uppercase; }
  .content { padding: 20px; }
  .field-group { margin-bottom: 15px; border-bottom: 1px inset #f1f1f1; padding-bottom: 10px; }
  .label { font-size: 11px; font-weight: bold; color: #888; text-transform: uppercase; display: block; margin-bottom: 2px; }
  .value { font-size: 15px; color: #111; font-weight: 500; }
  .signature-block { border: 1px dashed #ccc; padding: 10px; margin-top: 10px; background: #fafafa; }
</style>
</head>
<body>
  <div class="wrapper">
    <div class="container">
      <div class="header">
        <h1>United Formulas</h1>
        <p>PO BOX 2589 GREAT FALLS, MT 59403 | 406.727.4144</p>
        <p><strong>UF CREDIT APPLICATION SUBMISSION</strong></p>
      </div>

      <div class="section-title">Business Information</div>
      <div class="content">
        <div class="field-group"><span class="label">Company Name</span><div class="value">{{.CompanyName}}</div></div>
        <div class="field-group"><span class="label">Structure</span><div class="value">{{.BizType}}</div></div>
        <div class="field-group"><span class="label">Date Established</span><div class="value">{{.DateEstablished}}</div></div>
        <div class="field-group"><span class="label">Phone | Fax</span><div class="value">{{.PhoneFax}}</div></div>
        <div class="field-group"><span class="label">Email</span><div class="value">{{.Email}}</div></div>
        <div class="field-group"><span class="label">Address, City, State, ZIP</span><div class="value">{{.Address}}</div></div>
        <div class="field-group"><span class="label">Federal Tax ID</span><div class="value">{{.TaxID}}</div></div>
        <div class="field-group"><span class="label">Anticipated Monthly Purchase</span><div class="value">{{.AnticipatedPurchase}}</div></div>
        <div class="field-group"><span class="label">State Resale Permit</span><div class="value">{{.ResalePermit}}</div></div>
        <div class="field-group"><span class="label">Purchase Orders Required?</span><div class="value">{{.PORequired}}</div></div>
        <div class="field-group"><span class="label">Authorized Buyers</span><div class="value">{{.AuthorizedBuyers}}</div></div>
        <div class="field-group"><span class="label">AP Contact Name</span><div class="value">{{.APContact}}</div></div>
        <div class="field-group"><span class="label">AP Phone/Email</span><div class="value">{{.APPhoneEmail}}</div></div>
      </div>

      <div class="section-title">Company Directors, Officers &amp; Guarantors</div>
      <div class="content">
        {{range .Directors}}
        <div class="signature-block">
          <div class="field-group"><span class="label">Name</span><div class="value">{{.Name}}</div></div>
          <div class="field-group"><span class="label">Title</span><div class="value">{{.Title}}</div></div>
          <div class="field-group"><span class="label">Address/Phone</span><div class="value">{{.Address}}</div></div>
          <div class="field-group"><span class="label">SS #</span><div class="value">{{.SS}}</div></div>
        </div>
        {{end}}
      </div>

      <div class="section-title">Trade References &amp; Bank Reference</div>
      <div class="content">
        {{range .References}}
        <div class="field-group">
          <span class="label">Reference: {{.Name}}</span>
          <div class="value">{{.Address}} | {{.Email}} | {{.Contact}}</div>
        </div>
        {{end}}
        <div class="signature-block">
          <div class="field-group"><span class="label">Bank Name</span><div class="value">{{.BankName}}</div></div>
          <div class="field-group"><span class="label">Account Number</span><div class="value">{{.BankAccount}}</div></div>
          <div class="field-group"><span class="label">Bank Phone</span><div class="value">{{.BankPhone}}</div></div>
          <div class="field-group"><span class="label">Account Type</span><div class="value">{{.BankType}}</div></div>
          <div class="field-group"><span class="label">Bank Address</span><div class="value">{{.BankAddress}}</div></div>
          <div class="field-group"><span class="label">Contact</span><div class="value">{{.BankContact}}</div></div>
        </div>
      </div>

      <div class="section-title">Agreement &amp; Acceptance</div>
      <div class="content">
        <div class="field-group"><span class="label">Agreement Status</span><div class="value"><strong>ACCEPTED</strong> - I Agree</div></div>
      </div>

      <div class="section-title">Authorization</div>
      <div class="content">
        <div class="signature-block">
          <div class="field-group"><span class="label">Authorized Signature</span><div class="value" style="font-family: cursive; font-size: 18px;">{{.AuthSig}}</div></div>
          <div class="field-group"><span class="label">Printed Name</span><div class="value">{{.AuthPrintedName}}</div></div>
          <div class="field-group"><span class="label">Title</span><div class="value">{{.AuthTitle}}</div></div>
          <div class="field-group"><span class="label">Date</span><div class="value">{{.AuthDate}}</div></div>
        </div>
        <div class="signature-block">
          <span class="label">Guarantor Signature</span>
          <div class="value" style="font-family: cursive; font-size: 18px;">{{.GuarantorSig}}</div>
          <span class="label">Printed Name</span>
          <div class="value">{{.GuarantorName}}</div>
        </div>
      </div>
    </div>
  </div>
</body>
</html>`))

func renderCreditApplication(payload CreditApplicationPayload) (string, error) {
	return execute(creditApplicationTmpl, payload)
}

func execute(tmpl *template.Template, data any) (string, error) {
	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		return "", err
	}
	return b.String(), nil
}

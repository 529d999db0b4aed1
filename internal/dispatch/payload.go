package dispatch

import "strings"

// Kind labels the outbound dispatch flavors for logging and metrics.
type Kind string

const (
	KindPurchaseOrder     Kind = "purchase_order"
	KindInquiry           Kind = "inquiry"
	KindCreditApplication Kind = "credit_application"
)

const fallbackNA = "N/A"

// OrderItem is one line of a submitted purchase order. Older storefront
// builds send product/variant under different keys, hence the alias fields;
// display helpers resolve them.
type OrderItem struct {
	Product     string `json:"product"`
	ProductName string `json:"productName"`
	Variant     string `json:"variant"`
	VariantName string `json:"variantName"`
	SKU         string `json:"sku"`
	Quantity    int    `json:"quantity"`
	Price       string `json:"price"`
	Total       string `json:"total"`
}

// DisplayName renders the product column the way the warehouse email
// expects: product name with the variant in parentheses.
func (i OrderItem) DisplayName() string {
	name := firstNonEmpty(i.ProductName, i.Product)
	variant := firstNonEmpty(i.VariantName, i.Variant)
	if variant == "" {
		return name
	}
	return name + " (" + variant + ")"
}

// PurchaseOrderPayload is the requisition submission. Fields are decoded
// leniently; absent values degrade to fallbacks instead of rejection.
type PurchaseOrderPayload struct {
	FullName     string `json:"fullName"`
	Phone        string `json:"phone"`
	PhoneNumber  string `json:"phoneNumber"`
	Email        string `json:"email"`
	BusinessName string `json:"businessName"`

	PONumber       string `json:"poNumber"`
	DeliveryWindow string `json:"deliveryWindow"`
	DeliveryTime   string `json:"deliveryTime"`
	DockNotes      string `json:"dockNotes"`

	Items      []OrderItem `json:"items"`
	LineItems  []OrderItem `json:"lineItems"`
	GrandTotal string      `json:"grandTotal"`
}

// ContactPhone resolves the phone aliases, defaulting to N/A.
func (p PurchaseOrderPayload) ContactPhone() string {
	return firstNonEmpty(p.PhoneNumber, p.Phone, fallbackNA)
}

// Delivery resolves the delivery-window aliases, defaulting to Standard.
func (p PurchaseOrderPayload) Delivery() string {
	return firstNonEmpty(p.DeliveryWindow, p.DeliveryTime, "Standard")
}

// AllItems resolves the items aliases.
func (p PurchaseOrderPayload) AllItems() []OrderItem {
	if len(p.Items) > 0 {
		return p.Items
	}
	return p.LineItems
}

// Notes returns the dock notes, defaulting to N/A.
func (p PurchaseOrderPayload) Notes() string {
	return firstNonEmpty(p.DockNotes, fallbackNA)
}

// PORef returns the buyer's PO number, defaulting to N/A.
func (p PurchaseOrderPayload) PORef() string {
	return firstNonEmpty(p.PONumber, fallbackNA)
}

// InquiryItem is one draft line attached to a stock/price inquiry.
type InquiryItem struct {
	ProductName string `json:"productName"`
	VariantName string `json:"variantName"`
	SKU         string `json:"sku"`
	Quantity    int    `json:"quantity"`
}

// InquiryPayload is a general stock and price inquiry.
type InquiryPayload struct {
	FullName string        `json:"fullName"`
	Company  string        `json:"company"`
	Email    string        `json:"email"`
	Phone    string        `json:"phone"`
	Interest string        `json:"interest"`
	Message  string        `json:"message"`
	Items    []InquiryItem `json:"items"`
	FormName string        `json:"formName"`
}

// CustomerMessage returns the free-text message with the email's placeholder
// fallback.
func (p InquiryPayload) CustomerMessage() string {
	return firstNonEmpty(p.Message, "No additional details provided.")
}

// Director is one company director/officer/guarantor block on a credit
// application.
type Director struct {
	Name    string `json:"name"`
	Title   string `json:"title"`
	Address string `json:"address"`
	SS      string `json:"ss"`
}

// Reference is one trade reference block on a credit application.
type Reference struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Email   string `json:"email"`
	Contact string `json:"contact"`
}

// CreditApplicationPayload is the full credit application form.
type CreditApplicationPayload struct {
	CompanyName         string `json:"companyName"`
	AnticipatedPurchase string `json:"anticipatedPurchase"`
	DateEstablished     string `json:"dateEstablished"`
	PhoneFax            string `json:"phoneFax"`
	BizType             string `json:"bizType"`
	Email               string `json:"email"`
	Address             string `json:"address"`
	TaxID               string `json:"taxId"`
	AuthorizedBuyers    string `json:"authorizedBuyers"`
	ResalePermit        string `json:"resalePermit"`
	APContact           string `json:"apContact"`
	APPhoneEmail        string `json:"apPhoneEmail"`
	PORequired          string `json:"poRequired"`

	Directors  []Director  `json:"directors"`
	References []Reference `json:"references"`

	BankName    string `json:"bankName"`
	BankPhone   string `json:"bankPhone"`
	BankAddress string `json:"bankAddress"`
	BankContact string `json:"bankContact"`
	BankAccount string `json:"bankAccount"`
	BankType    string `json:"bankType"`

	AuthSig         string `json:"authSig"`
	AuthPrintedName string `json:"authPrintedName"`
	AuthTitle       string `json:"authTitle"`
	AuthDate        string `json:"authDate"`
	GuarantorSig    string `json:"guarantorSig"`
	GuarantorName   string `json:"guarantorName"`
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return value
		}
	}
	return ""
}

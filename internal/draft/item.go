package draft

// LineItem is one tentatively selected purchasing variant. SKU is the unique
// key within a draft; Price is the backend-formatted display string and is
// carried through untouched.
type LineItem struct {
	ProductName string `json:"productName"`
	VariantName string `json:"variantName"`
	Price       string `json:"price"`
	SKU         string `json:"sku"`
	Quantity    int    `json:"quantity"`
}

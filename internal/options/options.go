// Package options resolves a product's purchasing variants into selectable
// rows and builds draft line items from a selected variant.
package options

import (
	"strings"

	"github.com/unitedformulas/storefront-api/internal/draft"
)

// StandardOptionLabel is the terminal fallback when a variant carries no
// usable attribute or name.
const StandardOptionLabel = "Standard Option"

// Attribute is one named attribute value on a variant.
type Attribute struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Variant mirrors the purchasing variant shape delivered by the commerce
// backend.
type Variant struct {
	ID         string      `json:"id"`
	Price      string      `json:"price"`
	Name       string      `json:"name"`
	Attributes []Attribute `json:"attributes,omitempty"`
}

// Row is one selectable purchase option with its draft membership resolved.
type Row struct {
	SKU   string `json:"sku"`
	Label string `json:"label"`
	Price string `json:"price"`
	Added bool   `json:"added"`
}

// Label derives the display label for a variant: the first attribute value,
// else the variant name with the parent product name stripped out, else the
// standard fallback.
func Label(productName string, variant Variant) string {
	if len(variant.Attributes) > 0 {
		if value := strings.TrimSpace(variant.Attributes[0].Value); value != "" {
			return value
		}
	}
	stripped := strings.TrimSpace(strings.ReplaceAll(variant.Name, productName, ""))
	if stripped != "" {
		return stripped
	}
	return StandardOptionLabel
}

// Resolve returns one row per variant, marking rows already present in the
// draft so a second select is rendered as "added" instead of re-adding.
func Resolve(productName string, variants []Variant, items []draft.LineItem) []Row {
	inDraft := make(map[string]struct{}, len(items))
	for _, item := range items {
		inDraft[item.SKU] = struct{}{}
	}

	rows := make([]Row, 0, len(variants))
	for _, variant := range variants {
		_, added := inDraft[variant.ID]
		rows = append(rows, Row{
			SKU:   variant.ID,
			Label: Label(productName, variant),
			Price: variant.Price,
			Added: added,
		})
	}
	return rows
}

// BuildLineItem constructs the draft line item for a selected variant. The
// quantity is left to the draft service, which forces it to 1 on add.
func BuildLineItem(productName string, variant Variant) draft.LineItem {
	return draft.LineItem{
		ProductName: productName,
		VariantName: Label(productName, variant),
		Price:       variant.Price,
		SKU:         variant.ID,
	}
}

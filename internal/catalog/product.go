package catalog

import (
	"bytes"
	"strconv"

	"github.com/goccy/go-json"
)

// ProductID is a product identifier normalised to a string. Catalog files
// carry ids either as strings or as numbers.
type ProductID string

func (id *ProductID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ProductID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*id = ProductID(n.String())
	return nil
}

func (id ProductID) String() string { return string(id) }

// IDFromInt formats a numeric database key as a ProductID.
func IDFromInt(v int64) ProductID { return ProductID(strconv.FormatInt(v, 10)) }

// Product is a catalog entry. Products are immutable once loaded.
type Product struct {
	ID           ProductID `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Category     string    `json:"category"`
	Brand        string    `json:"brand"`
	Price        *float64  `json:"price,omitempty"`
	Discount     *float64  `json:"discount,omitempty"`
	Image        string    `json:"image,omitempty"`
	AffiliateURL string    `json:"affiliateUrl,omitempty"`
}

// Catalog is the read-only product list shared by request handlers.
type Catalog struct {
	products   []Product
	categories []string
}

// New builds a catalog from products. When categories is empty it is derived
// from the products in first-seen order.
func New(products []Product, categories []string) *Catalog {
	ps := make([]Product, len(products))
	copy(ps, products)

	if len(categories) == 0 {
		seen := map[string]bool{}
		for _, p := range ps {
			if p.Category != "" && !seen[p.Category] {
				seen[p.Category] = true
				categories = append(categories, p.Category)
			}
		}
	}
	cs := make([]string, len(categories))
	copy(cs, categories)
	return &Catalog{products: ps, categories: cs}
}

// Products returns a copy of the product list in catalog order.
func (c *Catalog) Products() []Product {
	out := make([]Product, len(c.products))
	copy(out, c.products)
	return out
}

func (c *Catalog) Categories() []string {
	out := make([]string, len(c.categories))
	copy(out, c.categories)
	return out
}

func (c *Catalog) Len() int { return len(c.products) }

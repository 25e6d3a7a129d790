package types

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
)

// Price is a list price in a single currency.
type Price struct {
	Amount   float64
	Currency string
}

// String renders the price the way the storefront does: "$1200".
func (p Price) String() string {
	currency := p.Currency
	if currency == "" {
		currency = "$"
	}
	if p.Amount == float64(int64(p.Amount)) {
		return fmt.Sprintf("%s%d", currency, int64(p.Amount))
	}
	return fmt.Sprintf("%s%.2f", currency, p.Amount)
}

// Product represents one catalog entry. Immutable once loaded.
type Product struct {
	id         string
	title      string
	price      Price
	likeCount  int
	categories []string
	imageURL   string
}

// NewProduct creates a new Product with the given fields.
func NewProduct(id, title string, price Price, likeCount int, categories []string, imageURL string) Product {
	return Product{
		id:         id,
		title:      title,
		price:      price,
		likeCount:  likeCount,
		categories: categories,
		imageURL:   imageURL,
	}
}

// Getters for Product fields
func (p Product) ID() string           { return p.id }
func (p Product) Price() Price         { return p.price }
func (p Product) LikeCount() int       { return p.likeCount }
func (p Product) Categories() []string { return p.categories }
func (p Product) ImageURL() string     { return p.imageURL }

// HasCategory reports whether the product carries the given category tag.
func (p Product) HasCategory(tag string) bool {
	for _, c := range p.categories {
		if c == tag {
			return true
		}
	}
	return false
}

// list.Item interface implementation
func (p Product) Title() string       { return p.title }
func (p Product) Description() string { return p.price.String() }
func (p Product) FilterValue() string { return p.title }

// Compile-time check that Product implements list.Item
var _ list.Item = Product{}

// CatalogSource is the core abstraction for catalog access.
// Sync methods only, no bubbletea dependency, so the MCP server
// and tests can call it directly.
type CatalogSource interface {
	Listing() ([]Product, error)
}

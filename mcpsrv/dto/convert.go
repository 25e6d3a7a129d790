package dto

import (
	"github.com/ndhoang/shopfront/pricing"
	"github.com/ndhoang/shopfront/types"
)

func FromProduct(p types.Product) Product {
	currency := p.Price().Currency
	if currency == "" {
		currency = "$"
	}
	return Product{
		ID:         p.ID(),
		Title:      p.Title(),
		Price:      p.Price().Amount,
		Currency:   currency,
		Likes:      p.LikeCount(),
		Categories: append([]string(nil), p.Categories()...),
		ImageURL:   p.ImageURL(),
	}
}

func FromProducts(products []types.Product) []Product {
	out := make([]Product, 0, len(products))
	for _, p := range products {
		out = append(out, FromProduct(p))
	}
	return out
}

func FromQuote(q pricing.Quote) Quote {
	return Quote{Base: q.Base, Tax: q.Tax, Total: q.Total}
}

// Package filter derives the filtered, sorted storefront view from
// declarative criteria.
package filter

import (
	"sort"

	"github.com/ndhoang/shopfront/types"
)

// CategoryAll is the sentinel category value that matches every product.
const CategoryAll = "all"

// Sort orders the listing by like count.
type Sort int

const (
	SortNone Sort = iota
	SortMostLiked
	SortLeastLiked
)

// String returns the string representation of the sort order.
func (s Sort) String() string {
	switch s {
	case SortMostLiked:
		return "most-liked"
	case SortLeastLiked:
		return "least-liked"
	default:
		return "none"
	}
}

// PriceRange is an inclusive [Min, Max] bound on the list price.
type PriceRange struct {
	Min float64
	Max float64
}

// Contains reports whether amount lies inside the inclusive bounds.
func (r PriceRange) Contains(amount float64) bool {
	return amount >= r.Min && amount <= r.Max
}

// Criteria is the current value of every filter key. The zero value of a
// field means the key has not been set; DefaultCriteria supplies the
// listing-view defaults.
type Criteria struct {
	Category string
	Price    PriceRange
	Like     Sort
}

// DefaultCriteria returns the criteria a fresh listing view starts with.
func DefaultCriteria() Criteria {
	return Criteria{
		Category: CategoryAll,
		Price:    PriceRange{Min: 0, Max: 1200},
	}
}

// Update is a partial criteria change. Nil fields leave the prior value
// untouched, so sequential updates union rather than replace.
type Update struct {
	Category *string
	Price    *PriceRange
	Like     *Sort
}

// Apply merges update into criteria and returns the result. Neither input
// is mutated.
func Apply(criteria Criteria, update Update) Criteria {
	next := criteria
	if update.Category != nil {
		next.Category = *update.Category
	}
	if update.Price != nil {
		next.Price = *update.Price
	}
	if update.Like != nil {
		next.Like = *update.Like
	}
	return next
}

// Matches evaluates each criterion independently and ANDs the results.
func Matches(item types.Product, criteria Criteria) bool {
	if !criteria.Price.Contains(item.Price().Amount) {
		return false
	}
	if criteria.Category != "" && criteria.Category != CategoryAll {
		if !item.HasCategory(criteria.Category) {
			return false
		}
	}
	return true
}

// SortByLikes returns a sorted copy of items. The sort is stable so
// products with equal like counts keep their catalog order. SortNone
// returns a plain copy.
func SortByLikes(items []types.Product, order Sort) []types.Product {
	out := append([]types.Product(nil), items...)
	switch order {
	case SortMostLiked:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].LikeCount() > out[j].LikeCount()
		})
	case SortLeastLiked:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].LikeCount() < out[j].LikeCount()
		})
	}
	return out
}

// View derives the filtered, sorted listing from the immutable catalog.
// The result is always a fresh slice; the catalog is never mutated.
func View(catalog []types.Product, criteria Criteria) []types.Product {
	filtered := make([]types.Product, 0, len(catalog))
	for _, item := range catalog {
		if Matches(item, criteria) {
			filtered = append(filtered, item)
		}
	}
	if criteria.Like == SortNone {
		return filtered
	}
	return SortByLikes(filtered, criteria.Like)
}

package ui

import (
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ndhoang/shopfront/filter"
	"github.com/ndhoang/shopfront/types"
)

type filterField int

const (
	fieldSort filterField = iota
	fieldCategory
	fieldPriceMin
	fieldPriceMax
)

const priceStep = 50

// FilterBar is the collapsible filter form above the listing. It edits
// its own copy of the criteria fields and hands the model a
// filter.Update for every change; it never touches the derived view.
type FilterBar struct {
	categories []string
	catIndex   int
	sortOrder  filter.Sort
	price      filter.PriceRange
	focus      filterField
}

// NewFilterBar creates a filter bar seeded with the listing defaults.
func NewFilterBar() *FilterBar {
	defaults := filter.DefaultCriteria()
	return &FilterBar{
		categories: []string{filter.CategoryAll},
		sortOrder:  defaults.Like,
		price:      defaults.Price,
	}
}

// SetCategories rebuilds the category options from the loaded catalog.
func (f *FilterBar) SetCategories(catalog []types.Product) {
	seen := map[string]bool{}
	var tags []string
	for _, p := range catalog {
		for _, tag := range p.Categories() {
			if !seen[tag] {
				seen[tag] = true
				tags = append(tags, tag)
			}
		}
	}
	sort.Strings(tags)
	f.categories = append([]string{filter.CategoryAll}, tags...)
	if f.catIndex >= len(f.categories) {
		f.catIndex = 0
	}
}

// HandleKey processes a key while the filter bar has focus. It returns
// the criteria update the keypress produced, if any.
func (f *FilterBar) HandleKey(msg tea.KeyMsg) (filter.Update, bool) {
	switch msg.String() {
	case "up", "k":
		if f.focus > fieldSort {
			f.focus--
		}
	case "down", "j":
		if f.focus < fieldPriceMax {
			f.focus++
		}
	case "left", "h":
		return f.adjust(-1)
	case "right", "l":
		return f.adjust(1)
	}
	return filter.Update{}, false
}

func (f *FilterBar) adjust(delta int) (filter.Update, bool) {
	switch f.focus {
	case fieldSort:
		next := f.sortOrder + filter.Sort(delta)
		if next < filter.SortNone || next > filter.SortLeastLiked {
			return filter.Update{}, false
		}
		f.sortOrder = next
		order := f.sortOrder
		return filter.Update{Like: &order}, true

	case fieldCategory:
		next := f.catIndex + delta
		if next < 0 || next >= len(f.categories) {
			return filter.Update{}, false
		}
		f.catIndex = next
		category := f.categories[f.catIndex]
		return filter.Update{Category: &category}, true

	case fieldPriceMin:
		next := f.price.Min + float64(delta*priceStep)
		if next < 0 || next > f.price.Max {
			return filter.Update{}, false
		}
		f.price.Min = next

	case fieldPriceMax:
		next := f.price.Max + float64(delta*priceStep)
		if next < f.price.Min {
			return filter.Update{}, false
		}
		f.price.Max = next
	}
	price := f.price
	return filter.Update{Price: &price}, true
}

// View renders the filter rows.
func (f *FilterBar) View() string {
	rows := []string{
		f.renderRow(fieldSort, "Likes", f.sortLabel()),
		f.renderRow(fieldCategory, "Category", f.categories[f.catIndex]),
		f.renderRow(fieldPriceMin, "Price from", fmt.Sprintf("%.0f", f.price.Min)),
		f.renderRow(fieldPriceMax, "Price to", fmt.Sprintf("%.0f", f.price.Max)),
	}
	hint := StatusBarStyle.Render("↑/↓ field • ←/→ adjust • f/esc done")
	return lipgloss.JoinVertical(lipgloss.Left, append(rows, hint)...)
}

func (f *FilterBar) sortLabel() string {
	switch f.sortOrder {
	case filter.SortMostLiked:
		return "Most liked"
	case filter.SortLeastLiked:
		return "Least liked"
	default:
		return "Catalog order"
	}
}

func (f *FilterBar) renderRow(field filterField, label, value string) string {
	indicator := "  "
	labelStyle := FilterLabelStyle
	if field == f.focus {
		indicator = FilterFocusStyle.Render("➤ ")
		labelStyle = FilterFocusStyle
	}
	padded := label + strings.Repeat(" ", maxInt(0, 11-len(label)))
	return indicator + labelStyle.Render(padded) + " ◂ " + FilterValueStyle.Render(value) + " ▸"
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

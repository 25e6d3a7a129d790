package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ndhoang/shopfront/types"
)

// ProductDelegate is a custom list delegate for rendering catalog items
type ProductDelegate struct{}

// Height returns the height of a list item (2 lines)
func (d ProductDelegate) Height() int {
	return 2
}

// Spacing returns the spacing between list items
func (d ProductDelegate) Spacing() int {
	return 1
}

// Update handles updates for the delegate (no-op for products)
func (d ProductDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd {
	return nil
}

// Render renders a single catalog item card
func (d ProductDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	product, ok := item.(types.Product)
	if !ok {
		return
	}

	isSelected := index == m.Index()

	// Line 1: title ... price
	title := product.Title()
	priceDisplay := product.Price().String()

	available := m.Width() - lipgloss.Width(priceDisplay) - 3
	if available < 0 {
		available = 0
	}
	if len(title) > available && available > 1 {
		title = title[:available-1] + "…"
	} else if len(title) < available {
		title = title + strings.Repeat(" ", available-len(title))
	}

	titleStyle := lipgloss.NewStyle().Foreground(DraculaCyan)
	priceStyle := lipgloss.NewStyle().Foreground(DraculaGreen)
	if isSelected {
		titleStyle = titleStyle.Foreground(DraculaPink).Bold(true)
		priceStyle = priceStyle.Bold(true)
	}
	line1 := titleStyle.Render(title) + "   " + priceStyle.Render(priceDisplay)

	// Line 2: likes + category tags, dimmed
	meta := fmt.Sprintf("♥ %d", product.LikeCount())
	if tags := product.Categories(); len(tags) > 0 {
		meta += "  " + strings.Join(tags, " • ")
	}
	metaAvailable := m.Width() - 4
	if metaAvailable > 3 && len(meta) > metaAvailable {
		meta = meta[:metaAvailable-3] + "…"
	}
	line2 := "    " + lipgloss.NewStyle().Foreground(DraculaComment).Render(meta)

	fmt.Fprint(w, line1+"\n"+line2)
}

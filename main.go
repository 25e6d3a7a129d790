package main

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ndhoang/shopfront/catalog"
	"github.com/ndhoang/shopfront/payment"
	"github.com/ndhoang/shopfront/types"
	"github.com/ndhoang/shopfront/ui"
)

const defaultBaseURL = "https://store.ndhoang.dev"

func main() {
	baseURL := strings.TrimSpace(os.Getenv("SHOPFRONT_BASE_URL"))
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	var source types.CatalogSource
	if file := strings.TrimSpace(os.Getenv("SHOPFRONT_CATALOG_FILE")); file != "" {
		source = catalog.NewFileSource(file)
	} else {
		source = catalog.New(baseURL)
	}

	model := ui.NewModel(source, payment.NewClient(baseURL))
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

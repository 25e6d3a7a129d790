package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/ndhoang/shopfront/types"
)

// productRecord mirrors one entry of the storefront's products.json export.
type productRecord struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Price struct {
		Amount   float64 `json:"amount"`
		Currency string  `json:"currency"`
	} `json:"price"`
	LikeCount  int      `json:"likeCount"`
	Categories []string `json:"categories"`
	Images     []struct {
		Src string `json:"src"`
	} `json:"images"`
}

// FileSource implements types.CatalogSource from a local products export,
// read once and treated as immutable for the session.
type FileSource struct {
	path string
}

// Compile-time interface check
var _ types.CatalogSource = (*FileSource)(nil)

// NewFileSource creates a catalog source reading from path.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Listing reads and decodes the products export.
func (f *FileSource) Listing() ([]types.Product, error) {
	raw, err := os.ReadFile(f.path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	var records []productRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	products := make([]types.Product, 0, len(records))
	for _, rec := range records {
		imageURL := ""
		if len(rec.Images) > 0 {
			imageURL = rec.Images[0].Src
		}
		products = append(products, types.NewProduct(
			rec.ID,
			rec.Title,
			types.Price{Amount: rec.Price.Amount, Currency: rec.Price.Currency},
			rec.LikeCount,
			rec.Categories,
			imageURL,
		))
	}
	return products, nil
}

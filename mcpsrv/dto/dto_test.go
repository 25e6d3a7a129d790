package dto

import (
	"encoding/json"
	"testing"

	"github.com/ndhoang/shopfront/pricing"
	"github.com/ndhoang/shopfront/types"
)

func TestDTOJSONShape(t *testing.T) {
	product := types.NewProduct(
		"pkg-backend",
		"Backend Package",
		types.Price{Amount: 1200},
		52,
		[]string{"backend", "database"},
		"https://img.example/backend.png",
	)

	b, err := json.Marshal(FromProduct(product))
	if err != nil {
		t.Fatalf("marshal product dto: %v", err)
	}
	var got map[string]any
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatalf("unmarshal product dto: %v", err)
	}
	if got["id"] != "pkg-backend" {
		t.Fatalf("unexpected id: %v", got["id"])
	}
	if got["currency"] != "$" {
		t.Fatalf("missing currency fallback: %v", got["currency"])
	}

	quote := FromQuote(pricing.Compute(150))
	if quote.Tax != 12 || quote.Total != 162 {
		t.Fatalf("unexpected quote dto: %+v", quote)
	}
}

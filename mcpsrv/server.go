package mcpsrv

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/ndhoang/shopfront/filter"
	"github.com/ndhoang/shopfront/mcpsrv/dto"
	"github.com/ndhoang/shopfront/pricing"
	"github.com/ndhoang/shopfront/types"
)

type catalogListArgs struct {
	Category string  `json:"category,omitempty" jsonschema:"Optional category tag; 'all' or empty matches everything"`
	PriceMin float64 `json:"price_min,omitempty" jsonschema:"Optional inclusive minimum list price"`
	PriceMax float64 `json:"price_max,omitempty" jsonschema:"Optional inclusive maximum list price"`
	Sort     string  `json:"sort,omitempty" jsonschema:"Optional like-count sort: none, most-liked, least-liked"`
	Limit    int     `json:"limit,omitempty" jsonschema:"Optional maximum number of items"`
}

type productGetArgs struct {
	ID string `json:"id" jsonschema:"Product ID"`
}

type quoteGetArgs struct {
	ID    string  `json:"id" jsonschema:"Product ID"`
	Offer float64 `json:"offer,omitempty" jsonschema:"Optional counter-offer; must exceed the list price"`
}

type catalogListOutput struct {
	Category string        `json:"category"`
	Sort     string        `json:"sort"`
	Total    int           `json:"total"`
	Items    []dto.Product `json:"items"`
}

type productGetOutput struct {
	Item dto.Product `json:"item"`
}

type quoteGetOutput struct {
	Item  dto.Product `json:"item"`
	Quote dto.Quote   `json:"quote"`
}

type cacheClearOutput struct {
	Status string `json:"status"`
}

type ServerOptions struct {
	EnableAdmin bool
	APIKey      string
}

type cacheClearSource interface {
	ClearCache()
}

func NewServer(source types.CatalogSource, version string, opts *ServerOptions) *mcp.Server {
	if strings.TrimSpace(version) == "" {
		version = "dev"
	}
	if opts == nil {
		opts = &ServerOptions{}
	}

	server := mcp.NewServer(&mcp.Implementation{Name: "shopfront", Version: version}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "catalog_list",
		Description: "List catalog packages filtered by category, price range and like-count sort.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args catalogListArgs) (*mcp.CallToolResult, catalogListOutput, error) {
		return catalogListHandler(ctx, req, args, source)
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "product_get",
		Description: "Get one catalog package by ID.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args productGetArgs) (*mcp.CallToolResult, productGetOutput, error) {
		return productGetHandler(ctx, req, args, source)
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "quote_get",
		Description: "Get the tax and total for a package at its list price or a counter-offer.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args quoteGetArgs) (*mcp.CallToolResult, quoteGetOutput, error) {
		return quoteGetHandler(ctx, req, args, source)
	})

	if opts.EnableAdmin && strings.TrimSpace(opts.APIKey) != "" {
		mcp.AddTool(server, &mcp.Tool{
			Name:        "cache_clear",
			Description: "Clear the catalog cache (admin).",
		}, func(ctx context.Context, req *mcp.CallToolRequest, _ struct{}) (*mcp.CallToolResult, cacheClearOutput, error) {
			return cacheClearHandler(ctx, req, source)
		})
	}

	return server
}

func catalogListHandler(_ context.Context, _ *mcp.CallToolRequest, args catalogListArgs, source types.CatalogSource) (*mcp.CallToolResult, catalogListOutput, error) {
	order, err := parseSort(args.Sort)
	if err != nil {
		return errorToolResult(err.Error()), catalogListOutput{}, nil
	}

	criteria := filter.DefaultCriteria()
	criteria.Like = order
	if category := strings.TrimSpace(args.Category); category != "" {
		criteria.Category = category
	}
	if args.PriceMin > 0 {
		criteria.Price.Min = args.PriceMin
	}
	if args.PriceMax > 0 {
		criteria.Price.Max = args.PriceMax
	}
	if criteria.Price.Max < criteria.Price.Min {
		return errorToolResult("price_max must be >= price_min"), catalogListOutput{}, nil
	}

	catalog, err := source.Listing()
	if err != nil {
		return errorToolResult("fetch catalog failed"), catalogListOutput{}, nil
	}

	products := applyLimit(filter.View(catalog, criteria), args.Limit)

	return nil, catalogListOutput{
		Category: criteria.Category,
		Sort:     order.String(),
		Total:    len(products),
		Items:    dto.FromProducts(products),
	}, nil
}

func productGetHandler(_ context.Context, _ *mcp.CallToolRequest, args productGetArgs, source types.CatalogSource) (*mcp.CallToolResult, productGetOutput, error) {
	product, result := findProduct(source, args.ID)
	if result != nil {
		return result, productGetOutput{}, nil
	}
	return nil, productGetOutput{Item: dto.FromProduct(product)}, nil
}

func quoteGetHandler(_ context.Context, _ *mcp.CallToolRequest, args quoteGetArgs, source types.CatalogSource) (*mcp.CallToolResult, quoteGetOutput, error) {
	product, result := findProduct(source, args.ID)
	if result != nil {
		return result, quoteGetOutput{}, nil
	}

	base := product.Price().Amount
	if args.Offer != 0 {
		if args.Offer <= base {
			return errorToolResult(fmt.Sprintf("value must exceed list price of %v", base)), quoteGetOutput{}, nil
		}
		base = args.Offer
	}

	return nil, quoteGetOutput{
		Item:  dto.FromProduct(product),
		Quote: dto.FromQuote(pricing.Compute(base)),
	}, nil
}

func cacheClearHandler(_ context.Context, _ *mcp.CallToolRequest, source types.CatalogSource) (*mcp.CallToolResult, cacheClearOutput, error) {
	clearable, ok := source.(cacheClearSource)
	if !ok {
		return errorToolResult("cache clear is not supported by this source"), cacheClearOutput{}, nil
	}
	clearable.ClearCache()
	return nil, cacheClearOutput{Status: "ok"}, nil
}

func findProduct(source types.CatalogSource, id string) (types.Product, *mcp.CallToolResult) {
	id = strings.TrimSpace(id)
	if id == "" {
		return types.Product{}, errorToolResult("id is required")
	}
	catalog, err := source.Listing()
	if err != nil {
		return types.Product{}, errorToolResult("fetch catalog failed")
	}
	for _, p := range catalog {
		if p.ID() == id {
			return p, nil
		}
	}
	return types.Product{}, errorToolResult(fmt.Sprintf("product %q not found", id))
}

func errorToolResult(msg string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: msg}},
	}
}

func applyLimit(items []types.Product, limit int) []types.Product {
	if limit <= 0 || limit >= len(items) {
		return items
	}
	return items[:limit]
}

func parseSort(raw string) (filter.Sort, error) {
	v := strings.TrimSpace(strings.ToLower(raw))
	switch v {
	case "", "none":
		return filter.SortNone, nil
	case "most-liked":
		return filter.SortMostLiked, nil
	case "least-liked":
		return filter.SortLeastLiked, nil
	default:
		return filter.SortNone, fmt.Errorf("invalid sort %q; expected none|most-liked|least-liked", raw)
	}
}

package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/ndhoang/shopfront/catalog"
	"github.com/ndhoang/shopfront/mcpsrv"
	"github.com/ndhoang/shopfront/types"
)

type cacheClearSource interface {
	ClearCache()
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := mcpsrv.LoadConfig()
	source := newSource()
	server := mcpsrv.NewServer(source, "dev", &mcpsrv.ServerOptions{
		EnableAdmin: cfg.EnableAdmin,
		APIKey:      cfg.APIKey,
	})

	if cfg.CacheClearInterval > 0 {
		if clearable, ok := any(source).(cacheClearSource); ok {
			go func() {
				ticker := time.NewTicker(cfg.CacheClearInterval)
				defer ticker.Stop()
				for {
					select {
					case <-ticker.C:
						clearable.ClearCache()
					case <-ctx.Done():
						return
					}
				}
			}()
		}
	}

	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		log.Fatalf("stdio mcp server failed: %v", err)
	}
}

func newSource() types.CatalogSource {
	if file := strings.TrimSpace(os.Getenv("SHOPFRONT_CATALOG_FILE")); file != "" {
		return catalog.NewFileSource(file)
	}
	baseURL := strings.TrimSpace(os.Getenv("SHOPFRONT_BASE_URL"))
	if baseURL == "" {
		baseURL = "https://store.ndhoang.dev"
	}
	return catalog.New(baseURL)
}

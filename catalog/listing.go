package catalog

import (
	"io"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/ndhoang/shopfront/types"
)

// ParseListing parses the storefront listing page HTML and returns the
// catalog products. It expects the SSR HTML of the product grid.
func ParseListing(reader io.Reader) ([]types.Product, error) {
	doc, err := goquery.NewDocumentFromReader(reader)
	if err != nil {
		return nil, err
	}

	var products []types.Product

	doc.Find("div.product-style-one").Each(func(_ int, s *goquery.Selection) {
		nameLink := s.Find("a.product-name").First()
		title := strings.TrimSpace(nameLink.Text())

		id, _ := s.Attr("data-product-id")
		if id == "" {
			href, _ := nameLink.Attr("href")
			id = strings.TrimPrefix(href, "/products/")
		}

		priceText := strings.TrimSpace(s.Find(".last-bid").First().Text())
		price := parsePrice(priceText)

		likeText := strings.TrimSpace(s.Find(".react-number").First().Text())
		likeCount := parseCount(likeText)

		var categories []string
		s.Find("a[href^='/category/']").Each(func(_ int, a *goquery.Selection) {
			tag := strings.TrimSpace(a.Text())
			if tag != "" {
				categories = append(categories, tag)
			}
		})

		imageURL, _ := s.Find(".card-thumbnail img").First().Attr("src")

		products = append(products, types.NewProduct(
			id, title, price, likeCount, categories, imageURL,
		))
	})

	return products, nil
}

// parsePrice splits a rendered price like "$1,200" or "₫500000" into
// currency symbol and amount.
func parsePrice(text string) types.Price {
	text = strings.ReplaceAll(text, ",", "")
	cut := len(text)
	for i, r := range text {
		if r >= '0' && r <= '9' {
			cut = i
			break
		}
	}
	currency := strings.TrimSpace(text[:cut])
	amount, _ := strconv.ParseFloat(text[cut:], 64)
	return types.Price{Amount: amount, Currency: currency}
}

// parseCount strips commas and converts a string to int. Returns 0 on failure.
func parseCount(s string) int {
	s = strings.ReplaceAll(s, ",", "")
	n, _ := strconv.Atoi(s)
	return n
}

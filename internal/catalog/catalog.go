// Package catalog holds the pure product-list transforms behind the
// storefront browse screen: search, category filter and price sorting.
// The displayed list is always recomputed from the source list; nothing
// here caches or paginates.
package catalog

import (
	"sort"
	"strings"

	"github.com/gosimple/slug"

	"github.com/rnrstore/retrostore-golang/internal/models"
)

// Sort orders accepted by the storefront. Anything else falls back to
// "featured", which keeps the inventory service's ordering untouched.
const (
	SortFeatured  = "featured"
	SortPriceAsc  = "price-asc"
	SortPriceDesc = "price-desc"
)

// CategoryAll disables the category filter.
const CategoryAll = "all"

// Filter returns the products whose name contains the search term
// (case-insensitive substring) and whose category matches exactly.
// An empty search matches everything; category "all" (or empty) skips the
// category filter. The result is a fresh slice in source order.
func Filter(products []models.Product, search, category string) []models.Product {
	search = strings.ToLower(strings.TrimSpace(search))
	byCategory := category != "" && category != CategoryAll

	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if search != "" && !strings.Contains(strings.ToLower(p.Name), search) {
			continue
		}
		if byCategory {
			if p.Category == nil || p.Category.Name != category {
				continue
			}
		}
		out = append(out, p)
	}
	return out
}

// Sort returns a copy of products in the requested order. Sorting is
// stable, so products with equal prices keep their relative order.
func Sort(products []models.Product, order string) []models.Product {
	out := make([]models.Product, len(products))
	copy(out, products)

	switch order {
	case SortPriceAsc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	case SortPriceDesc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price > out[j].Price })
	}
	return out
}

// Slug derives a URL-safe slug from the product name, e.g.
// "Super Mario World (SNES)" -> "super-mario-world-snes".
func Slug(p models.Product) string {
	return slug.Make(p.Name)
}

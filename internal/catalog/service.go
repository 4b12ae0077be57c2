package catalog

import (
	"context"
	"sort"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"bella-boutique/internal/logger"
)

// Service answers queries over the fixed product catalog. Filter and Sort
// never mutate their input and always return fresh slices.
type Service interface {
	All() []Product
	ByID(id string) (Product, bool)
	PriceBounds() PriceRange
	Filter(products []Product, category Category, priceRange *PriceRange, searchTerm string) []Product
	Sort(products []Product, key SortKey) []Product
	Search(ctx context.Context, state FilterState) []Product
}

type service struct {
	products []Product
	byID     map[string]Product
	collator *collate.Collator
}

// NewService creates a catalog service over the given product set.
func NewService(products []Product) Service {
	byID := make(map[string]Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	return &service{
		products: products,
		byID:     byID,
		collator: collate.New(language.English),
	}
}

// All returns a copy of the catalog in its defined order.
func (s *service) All() []Product {
	out := make([]Product, len(s.products))
	copy(out, s.products)
	return out
}

func (s *service) ByID(id string) (Product, bool) {
	p, ok := s.byID[id]
	return p, ok
}

// PriceBounds returns the inclusive [min, max] price span of the catalog.
func (s *service) PriceBounds() PriceRange {
	if len(s.products) == 0 {
		return PriceRange{}
	}

	bounds := PriceRange{Min: s.products[0].Price, Max: s.products[0].Price}
	for _, p := range s.products[1:] {
		if p.Price < bounds.Min {
			bounds.Min = p.Price
		}
		if p.Price > bounds.Max {
			bounds.Max = p.Price
		}
	}
	return bounds
}

// Filter returns the products matching all of: the category (absent or
// CategoryAll matches everything), the inclusive price range, and the
// case-insensitive search term (substring of the name or any tag). An empty
// term matches everything. Input order is preserved.
func (s *service) Filter(products []Product, category Category, priceRange *PriceRange, searchTerm string) []Product {
	term := strings.ToLower(searchTerm)

	matched := make([]Product, 0, len(products))
	for _, p := range products {
		if category != "" && category != CategoryAll && p.Category != category {
			continue
		}
		if priceRange != nil && !priceRange.Contains(p.Price) {
			continue
		}
		if term != "" && !matchesTerm(p, term) {
			continue
		}
		matched = append(matched, p)
	}
	return matched
}

func matchesTerm(p Product, term string) bool {
	if strings.Contains(strings.ToLower(p.Name), term) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), term) {
			return true
		}
	}
	return false
}

// Sort returns a sorted copy of products. Every comparator is applied with a
// stable sort, so items that compare equal keep their original relative
// order. SortFeatured and unknown keys return the input order unchanged.
func (s *service) Sort(products []Product, key SortKey) []Product {
	sorted := make([]Product, len(products))
	copy(sorted, products)

	switch key {
	case SortPriceLow:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Price < sorted[j].Price
		})
	case SortPriceHigh:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Price > sorted[j].Price
		})
	case SortName:
		sort.SliceStable(sorted, func(i, j int) bool {
			return s.collator.CompareString(sorted[i].Name, sorted[j].Name) < 0
		})
	case SortNewest:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].IsNew && !sorted[j].IsNew
		})
	case SortRating:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Rating > sorted[j].Rating
		})
	}

	return sorted
}

// Search runs the composite query the shop page performs on every filter
// change: Filter over the full catalog, then Sort.
func (s *service) Search(ctx context.Context, state FilterState) []Product {
	results := s.Filter(s.products, state.Category, state.PriceRange, state.SearchTerm)
	results = s.Sort(results, state.SortKey)

	logger.FromCtx(ctx).Debug("catalog search",
		zap.String("layer", "service"),
		zap.String("category", string(state.Category)),
		zap.String("term", state.SearchTerm),
		zap.String("sort", string(state.SortKey)),
		zap.Int("count", len(results)),
	)

	return results
}

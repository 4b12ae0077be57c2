package catalog

// Category is the closed set of product categories in the storefront.
type Category string

const (
	CategoryBags        Category = "Bags"
	CategoryDresses     Category = "Dresses"
	CategoryAccessories Category = "Accessories"

	// CategoryAll is a filter value, not a product category: it selects
	// every category.
	CategoryAll Category = "All"
)

// Categories lists the product categories in display order.
var Categories = []Category{CategoryBags, CategoryDresses, CategoryAccessories}

type Product struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Category      Category `json:"category"`
	Price         int      `json:"price"`
	OriginalPrice *int     `json:"original_price,omitempty"`
	Rating        float64  `json:"rating"`
	Tags          []string `json:"tags"`
	Image         string   `json:"image"`
	Description   string   `json:"description"`
	IsNew         bool     `json:"is_new"`
	OnSale        bool     `json:"on_sale"`
	Colors        []string `json:"colors,omitempty"`
	Sizes         []string `json:"sizes,omitempty"`
}

// PriceRange is an inclusive [Min, Max] bound on product prices.
type PriceRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

func (r PriceRange) Contains(price int) bool {
	return price >= r.Min && price <= r.Max
}

// SortKey selects the comparator applied by Sort. Unknown keys behave like
// SortFeatured and leave the input order untouched.
type SortKey string

const (
	SortFeatured  SortKey = "featured"
	SortPriceLow  SortKey = "price-low"
	SortPriceHigh SortKey = "price-high"
	SortName      SortKey = "name"
	SortNewest    SortKey = "newest"
	SortRating    SortKey = "rating"
)

// FilterState is the transient query state the shop UI holds: selected
// category, price bounds, sort order and free-text search term.
type FilterState struct {
	Category   Category
	PriceRange *PriceRange
	SortKey    SortKey
	SearchTerm string
}

// DefaultFilterState returns the state an untouched shop page starts with:
// all categories, the full catalog price bounds, featured order, no term.
func DefaultFilterState(bounds PriceRange) FilterState {
	return FilterState{
		Category:   CategoryAll,
		PriceRange: &bounds,
		SortKey:    SortFeatured,
	}
}

// Reset restores the defaults in place (the "clear filters" action).
func (f *FilterState) Reset(bounds PriceRange) {
	*f = DefaultFilterState(bounds)
}

package catalog

// Selection holds the variant options chosen for a presented product.
type Selection struct {
	Color string
	Size  string
}

// NewSelection builds the initial selection for a product: the first listed
// color and size when present. It runs once when the product is first
// presented, not as a side effect of rendering.
func NewSelection(p Product) Selection {
	var sel Selection
	if len(p.Colors) > 0 {
		sel.Color = p.Colors[0]
	}
	if len(p.Sizes) > 0 {
		sel.Size = p.Sizes[0]
	}
	return sel
}

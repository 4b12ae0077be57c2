package cart

import "bella-boutique/internal/catalog"

// Line is one aggregated cart entry: a snapshot of the product it was added
// from plus the accumulated quantity. The snapshot is field-complete so a
// restored cart can be displayed without consulting the catalog.
type Line struct {
	catalog.Product
	Quantity int `json:"quantity"`
}

// Totals are derived from the line sequence on demand, never stored.
type Totals struct {
	ItemCount int
	Subtotal  int
	Shipping  int
	Total     int
}

// The functions below are the pure core of the aggregator: each one takes a
// line sequence and returns a fresh one, leaving the input untouched.

func add(lines []Line, p catalog.Product, quantity int) ([]Line, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	next := make([]Line, len(lines), len(lines)+1)
	copy(next, lines)

	for i := range next {
		if next[i].ID == p.ID {
			next[i].Quantity += quantity
			return next, nil
		}
	}

	return append(next, Line{Product: p, Quantity: quantity}), nil
}

func setQuantity(lines []Line, productID string, quantity int) ([]Line, error) {
	if quantity <= 0 {
		return remove(lines, productID)
	}

	next := make([]Line, len(lines))
	copy(next, lines)

	for i := range next {
		if next[i].ID == productID {
			next[i].Quantity = quantity
			return next, nil
		}
	}

	return next, ErrLineNotFound
}

func remove(lines []Line, productID string) ([]Line, error) {
	next := make([]Line, 0, len(lines))
	found := false

	for _, l := range lines {
		if l.ID == productID {
			found = true
			continue
		}
		next = append(next, l)
	}

	if !found {
		return next, ErrLineNotFound
	}
	return next, nil
}

func computeTotals(lines []Line, freeShippingThreshold, shippingFlatFee int) Totals {
	var t Totals
	for _, l := range lines {
		t.ItemCount += l.Quantity
		t.Subtotal += l.Price * l.Quantity
	}

	if t.Subtotal <= freeShippingThreshold {
		t.Shipping = shippingFlatFee
	}
	t.Total = t.Subtotal + t.Shipping

	return t
}

package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bella-boutique/internal/catalog"
)

var (
	handbag = catalog.Product{ID: "1", Name: "Blush Leather Handbag", Category: catalog.CategoryBags, Price: 1250}
	clutch  = catalog.Product{ID: "2", Name: "Midnight Evening Clutch", Category: catalog.CategoryBags, Price: 850}
	dress   = catalog.Product{ID: "4", Name: "Rose Midi Dress", Category: catalog.CategoryDresses, Price: 950}
)

func TestAdd(t *testing.T) {
	t.Run("RejectsNonPositiveQuantity", func(t *testing.T) {
		for _, qty := range []int{0, -1, -10} {
			_, err := add(nil, handbag, qty)
			assert.ErrorIs(t, err, ErrInvalidQuantity)
		}
	})

	t.Run("AppendsNewLine", func(t *testing.T) {
		lines, err := add(nil, handbag, 1)
		require.NoError(t, err)
		require.Len(t, lines, 1)
		assert.Equal(t, "1", lines[0].ID)
		assert.Equal(t, 1, lines[0].Quantity)
	})

	t.Run("MergesExistingLine", func(t *testing.T) {
		lines, err := add(nil, handbag, 1)
		require.NoError(t, err)

		lines, err = add(lines, handbag, 1)
		require.NoError(t, err)
		require.Len(t, lines, 1, "repeated adds must not duplicate lines")
		assert.Equal(t, 2, lines[0].Quantity)
	})

	t.Run("AccumulatesQuantities", func(t *testing.T) {
		lines, err := add(nil, handbag, 1)
		require.NoError(t, err)

		lines, err = add(lines, handbag, 2)
		require.NoError(t, err)
		require.Len(t, lines, 1)
		assert.Equal(t, 3, lines[0].Quantity)
	})

	t.Run("PreservesInsertionOrder", func(t *testing.T) {
		lines, err := add(nil, clutch, 1)
		require.NoError(t, err)
		lines, err = add(lines, handbag, 1)
		require.NoError(t, err)
		lines, err = add(lines, clutch, 1)
		require.NoError(t, err)

		require.Len(t, lines, 2)
		assert.Equal(t, "2", lines[0].ID)
		assert.Equal(t, "1", lines[1].ID)
	})

	t.Run("DoesNotMutateInput", func(t *testing.T) {
		orig, err := add(nil, handbag, 1)
		require.NoError(t, err)

		_, err = add(orig, handbag, 5)
		require.NoError(t, err)
		assert.Equal(t, 1, orig[0].Quantity)
	})
}

func TestSetQuantity(t *testing.T) {
	base := func(t *testing.T) []Line {
		lines, err := add(nil, handbag, 2)
		require.NoError(t, err)
		return lines
	}

	t.Run("SetsExactly", func(t *testing.T) {
		lines, err := setQuantity(base(t), "1", 5)
		require.NoError(t, err)
		assert.Equal(t, 5, lines[0].Quantity, "set is not additive")
	})

	t.Run("ZeroRemovesLine", func(t *testing.T) {
		lines, err := setQuantity(base(t), "1", 0)
		require.NoError(t, err)
		assert.Empty(t, lines)
	})

	t.Run("NegativeRemovesLine", func(t *testing.T) {
		lines, err := setQuantity(base(t), "1", -3)
		require.NoError(t, err)
		assert.Empty(t, lines)
	})

	t.Run("AbsentIDSignalsNotFound", func(t *testing.T) {
		lines, err := setQuantity(base(t), "missing", 3)
		assert.ErrorIs(t, err, ErrLineNotFound)
		require.Len(t, lines, 1)
		assert.Equal(t, 2, lines[0].Quantity, "state unchanged")
	})
}

func TestRemove(t *testing.T) {
	t.Run("RemovesLine", func(t *testing.T) {
		lines, err := add(nil, handbag, 1)
		require.NoError(t, err)
		lines, err = add(lines, clutch, 1)
		require.NoError(t, err)

		lines, err = remove(lines, "1")
		require.NoError(t, err)
		require.Len(t, lines, 1)
		assert.Equal(t, "2", lines[0].ID)
	})

	t.Run("AbsentIDSignalsNotFound", func(t *testing.T) {
		lines, err := add(nil, handbag, 1)
		require.NoError(t, err)

		lines, err = remove(lines, "1")
		require.NoError(t, err)

		// Second remove finds nothing and changes nothing.
		lines, err = remove(lines, "1")
		assert.ErrorIs(t, err, ErrLineNotFound)
		assert.Empty(t, lines)
	})
}

func TestComputeTotals(t *testing.T) {
	const (
		threshold = 1000
		flatFee   = 200
	)

	t.Run("AboveThresholdShipsFree", func(t *testing.T) {
		lines, err := add(nil, handbag, 1)
		require.NoError(t, err)

		totals := computeTotals(lines, threshold, flatFee)
		assert.Equal(t, 1, totals.ItemCount)
		assert.Equal(t, 1250, totals.Subtotal)
		assert.Equal(t, 0, totals.Shipping)
		assert.Equal(t, 1250, totals.Total)
	})

	t.Run("BelowThresholdPaysFlatFee", func(t *testing.T) {
		lines, err := add(nil, clutch, 1)
		require.NoError(t, err)

		totals := computeTotals(lines, threshold, flatFee)
		assert.Equal(t, 850, totals.Subtotal)
		assert.Equal(t, 200, totals.Shipping)
		assert.Equal(t, 1050, totals.Total)
	})

	t.Run("ExactlyAtThresholdPaysFlatFee", func(t *testing.T) {
		lines, err := add(nil, catalog.Product{ID: "x", Price: 1000}, 1)
		require.NoError(t, err)

		totals := computeTotals(lines, threshold, flatFee)
		assert.Equal(t, 200, totals.Shipping)
	})

	t.Run("SumsAcrossLinesAndQuantities", func(t *testing.T) {
		lines, err := add(nil, clutch, 2)
		require.NoError(t, err)
		lines, err = add(lines, dress, 3)
		require.NoError(t, err)

		totals := computeTotals(lines, threshold, flatFee)
		assert.Equal(t, 5, totals.ItemCount)
		assert.Equal(t, 2*850+3*950, totals.Subtotal)
		assert.Equal(t, 0, totals.Shipping)
	})
}

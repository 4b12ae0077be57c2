package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodecRoundTrip(t *testing.T) {
	lines, err := add(nil, clutch, 2)
	require.NoError(t, err)
	lines, err = add(lines, handbag, 1)
	require.NoError(t, err)

	data, err := encodeLines(lines)
	require.NoError(t, err)

	got, err := decodeLines(data)
	require.NoError(t, err)
	assert.Equal(t, lines, got, "round trip must preserve line set, quantities and order")
}

func TestEncodeEmptyCart(t *testing.T) {
	data, err := encodeLines(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))

	got, err := decodeLines(data)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestDecodeRejectsMalformedPayloads(t *testing.T) {
	cases := []struct {
		name string
		data string
	}{
		{"NotJSON", `{{{`},
		{"WrongShape", `{"id":"1"}`},
		{"MissingID", `[{"quantity":1}]`},
		{"ZeroQuantity", `[{"id":"1","name":"x","quantity":0}]`},
		{"NegativeQuantity", `[{"id":"1","name":"x","quantity":-2}]`},
		{"DuplicateLines", `[{"id":"1","quantity":1},{"id":"1","quantity":2}]`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := decodeLines([]byte(tc.data))
			assert.Error(t, err)
		})
	}
}

func TestDecodePreservesProductSnapshot(t *testing.T) {
	lines, err := add(nil, handbag, 1)
	require.NoError(t, err)

	data, err := encodeLines(lines)
	require.NoError(t, err)

	got, err := decodeLines(data)
	require.NoError(t, err)
	require.Len(t, got, 1)

	// The snapshot must be field-complete for offline display.
	assert.Equal(t, handbag.Name, got[0].Name)
	assert.Equal(t, handbag.Category, got[0].Category)
	assert.Equal(t, handbag.Price, got[0].Price)
}

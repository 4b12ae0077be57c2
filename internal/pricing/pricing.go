package pricing

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const currencyPrefix = "KSH"

var printer = message.NewPrinter(language.English)

// Format renders a minor-unit-free amount as a display price with the shop
// currency prefix and locale thousands separators, e.g. 1250 -> "KSH 1,250".
func Format(amount int) string {
	return printer.Sprintf("%s %d", currencyPrefix, amount)
}

// FreeShippingGap returns how much more the subtotal needs before shipping
// becomes free, or 0 when the threshold is already reached.
func FreeShippingGap(subtotal, threshold int) int {
	if subtotal >= threshold {
		return 0
	}
	return threshold - subtotal
}

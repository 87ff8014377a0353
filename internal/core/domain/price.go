package domain

import (
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var displayPrinter = message.NewPrinter(language.MustParse("en-IN"))

// ExtractNumericPrice pulls a positive numeric value out of free-text price
// input such as "₹2,999" or "MRP 299". Every rune that is not a digit or a
// decimal point is stripped first — including any minus sign, so "-5" parses
// as 5; that magnitude-only behaviour is deliberate. When the cleaned text
// contains more than one decimal point, the leftmost valid numeric prefix is
// parsed (cut before the second point), keeping the result deterministic.
// Returns ok=false when no digits remain, parsing fails, or the value is not
// strictly greater than zero.
func ExtractNumericPrice(input string) (float64, bool) {
	var b strings.Builder
	for _, r := range input {
		if r == '.' || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	cleaned := b.String()

	if i := strings.IndexByte(cleaned, '.'); i >= 0 {
		if j := strings.IndexByte(cleaned[i+1:], '.'); j >= 0 {
			cleaned = cleaned[:i+1+j]
		}
	}

	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || v <= 0 {
		return 0, false
	}
	return v, true
}

// DisplayPrice resolves the text shown for a product's price: the trimmed
// free-text display when present, otherwise the numeric price with Indian
// digit grouping (2,999 and 12,34,567 rather than 1,234,567).
func DisplayPrice(price float64, priceDisplay string) string {
	if s := strings.TrimSpace(priceDisplay); s != "" {
		return s
	}
	return displayPrinter.Sprint(number.Decimal(price))
}

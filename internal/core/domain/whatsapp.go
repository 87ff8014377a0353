package domain

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// DefaultWhatsAppNumber is the storefront's fixed contact target.
const DefaultWhatsAppNumber = "918240316884"

// LinkBuilder constructs wa.me deep links carrying a pre-filled,
// percent-encoded message. It performs no network I/O — links are handed to
// the client, which opens them in the external messaging app.
type LinkBuilder struct {
	number string
}

// NewLinkBuilder returns a builder targeting the given phone number, falling
// back to DefaultWhatsAppNumber when empty.
func NewLinkBuilder(number string) LinkBuilder {
	if number == "" {
		number = DefaultWhatsAppNumber
	}
	return LinkBuilder{number: number}
}

// BuyNowLink builds the purchase deep link for one product. The message
// always carries the canonical numeric price, never the free-text display.
func (b LinkBuilder) BuyNowLink(productName string, price float64) string {
	msg := fmt.Sprintf("I want to buy %s for ₹%s from minoQ", productName, formatAmount(price))
	return b.link(msg)
}

// HelpLink builds the fixed help/feedback deep link.
func (b LinkBuilder) HelpLink() string {
	return b.link("Hi I need help from minoQ")
}

func (b LinkBuilder) link(msg string) string {
	// QueryEscape encodes spaces as "+", which wa.me renders literally;
	// use %20 so the decoded message matches the original text exactly.
	encoded := strings.ReplaceAll(url.QueryEscape(msg), "+", "%20")
	return "https://wa.me/" + b.number + "?text=" + encoded
}

// formatAmount renders the price without grouping: 2999 → "2999", 49.5 → "49.5".
func formatAmount(price float64) string {
	return strconv.FormatFloat(price, 'f', -1, 64)
}

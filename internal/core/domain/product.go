package domain

import (
	"errors"
	"sort"
	"strings"
)

var ErrProductNotFound = errors.New("product not found")
var ErrAccessDenied = errors.New("access denied")
var ErrNoteNotFound = errors.New("note not found")
var ErrSessionNotFound = errors.New("session not found")

// FallbackImageURL is substituted client-side when a product image fails to
// load. It is served alongside the catalog so clients never hardcode it.
const FallbackImageURL = "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=500&h=500&fit=crop"

// Product is the core catalog entity. ID is assigned by the system at
// creation time and never changes. Price is the canonical numeric value used
// in outbound messages; PriceDisplay, when set, is free text preserved
// verbatim for rendering (it may contain letters and symbols).
type Product struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Price        float64 `json:"price"`
	PriceDisplay string  `json:"price_display,omitempty"`
	ImageURL     string  `json:"image_url"`
}

// FieldErrors maps form field names to their validation messages. All fields
// are validated in one pass so the caller can surface every error at once.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	keys := make([]string, 0, len(e))
	for k := range e {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	msgs := make([]string, 0, len(keys))
	for _, k := range keys {
		msgs = append(msgs, k+": "+e[k])
	}
	return strings.Join(msgs, "; ")
}

// SeedProducts returns the fixed catalog present at startup. Callers receive
// a fresh slice on every call, so mutations never leak back into the seed.
func SeedProducts() []Product {
	return []Product{
		{ID: "1", Name: "Premium Wireless Headphones", Price: 2999, ImageURL: "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=500&h=500&fit=crop"},
		{ID: "2", Name: "Smart Watch Pro", Price: 4999, ImageURL: "https://images.unsplash.com/photo-1523275335684-37898b6baf30?w=500&h=500&fit=crop"},
		{ID: "3", Name: "Bluetooth Speaker", Price: 1999, ImageURL: "https://images.unsplash.com/photo-1608043152269-423dbba4e7e1?w=500&h=500&fit=crop"},
		{ID: "4", Name: "Laptop Stand", Price: 899, ImageURL: "https://images.unsplash.com/photo-1527864550417-7fd91fc51a46?w=500&h=500&fit=crop"},
		{ID: "5", Name: "Mechanical Keyboard", Price: 3499, ImageURL: "https://images.unsplash.com/photo-1587829741301-dc798b83add3?w=500&h=500&fit=crop"},
		{ID: "6", Name: "Wireless Mouse", Price: 1299, ImageURL: "https://images.unsplash.com/photo-1527814050087-3793815479db?w=500&h=500&fit=crop"},
	}
}

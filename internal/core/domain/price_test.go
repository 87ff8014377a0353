package domain

import "testing"

func TestExtractNumericPrice_ValidInputs(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
	}{
		{"plain integer", "2999", 2999},
		{"currency symbol and grouping", "₹2,999", 2999},
		{"letters around digits", "MRP 299", 299},
		{"alphanumeric prefix", "A50", 50},
		{"decimal value", "49.50", 49.5},
		{"leading decimal point", ".5", 0.5},
		{"negative sign stripped to magnitude", "-5", 5},
		{"second decimal point cut off", "1.2.3", 1.2},
		{"trailing decimal point", "12.", 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractNumericPrice(tt.input)
			if !ok {
				t.Fatalf("ExtractNumericPrice(%q) not ok, want %v", tt.input, tt.want)
			}
			if got != tt.want {
				t.Errorf("ExtractNumericPrice(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestExtractNumericPrice_InvalidInputs(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"no digits", "free!!"},
		{"zero", "0"},
		{"zero with noise", "₹0.00"},
		{"lone decimal point", "."},
		{"whitespace only", "   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got, ok := ExtractNumericPrice(tt.input); ok {
				t.Errorf("ExtractNumericPrice(%q) = %v, ok; want not ok", tt.input, got)
			}
		})
	}
}

func TestDisplayPrice_NumericFormatting(t *testing.T) {
	tests := []struct {
		price float64
		want  string
	}{
		{2999, "2,999"},
		{899, "899"},
		{1234567, "12,34,567"}, // Indian grouping, not 1,234,567
		{49.5, "49.5"},
	}

	for _, tt := range tests {
		if got := DisplayPrice(tt.price, ""); got != tt.want {
			t.Errorf("DisplayPrice(%v, \"\") = %q, want %q", tt.price, got, tt.want)
		}
	}
}

func TestDisplayPrice_FreeTextWins(t *testing.T) {
	if got := DisplayPrice(50, "A50"); got != "A50" {
		t.Errorf("expected free text %q, got %q", "A50", got)
	}
	if got := DisplayPrice(50, "  MRP 299  "); got != "MRP 299" {
		t.Errorf("expected trimmed free text, got %q", got)
	}
	// Whitespace-only display text falls back to the numeric price.
	if got := DisplayPrice(2999, "   "); got != "2,999" {
		t.Errorf("expected numeric fallback, got %q", got)
	}
}

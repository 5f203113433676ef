// Copyright (c) 2020 Bojan Zivanovic and contributors
// SPDX-License-Identifier: MIT

package numfmt_test

import (
	"testing"

	"github.com/bojanz/numfmt"
)

// TestFormat_CurrencyPlaceholderLadder exercises §8 property 6: for a
// pattern with k consecutive ¤ tokens, the emitted symbol is the k-th ladder
// entry (symbol, ISO code, plural display name, narrow symbol).
func TestFormat_CurrencyPlaceholderLadder(t *testing.T) {
	backend := numfmt.NewMapBackend(nil)
	zero := 0
	tests := []struct {
		name    string
		pattern string
		value   interface{}
		frac    *int
		want    string
	}{
		{"symbol", "¤#,##0.00", 1, nil, "$1.00"},
		// "USD" ends in a letter adjacent to a digit, so currency spacing
		// inserts en's insert-between string, a no-break space (U+00A0). The
		// alpha-next-to-number cases below get a plain space from the
		// pattern variant instead.
		{"iso code", "¤¤#,##0.00", 1, nil, "USD 1.00"},
		// With FractionalDigits forced to 0, v = 0 and the English "one" rule
		// (i = 1 and v = 0) applies, making the singular display name
		// observable; without the override USD's 2 visible fraction digits
		// put every value in the "other" category.
		{"display name singular", "¤¤¤#,##0.00", 1, &zero, "US dollar 1"},
		{"display name plural", "¤¤¤#,##0.00", 2, nil, "US dollars 2.00"},
		{"narrow", "¤¤¤¤#,##0.00", 1, nil, "$1.00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := numfmt.Format(tt.value, backend, numfmt.Options{
				Format:           numfmt.PatternFormat(tt.pattern),
				Currency:         numfmt.CurrencyRef{Code: "USD"},
				FractionalDigits: tt.frac,
			})
			if err != nil {
				t.Fatalf("Format returned error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Format(%v, %q) = %q, want %q", tt.value, tt.pattern, got, tt.want)
			}
		})
	}
}

func TestFormat_CurrencySymbolVariantOverride(t *testing.T) {
	backend := numfmt.NewMapBackend(nil)
	got, err := numfmt.Format(1, backend, numfmt.Options{
		Currency:              numfmt.CurrencyRef{Code: "USD"},
		CurrencySymbolVariant: numfmt.CurrencySymbolISO,
	})
	if err != nil {
		t.Fatalf("Format returned error: %v", err)
	}
	// The ISO code "USD" is letter-adjacent to the number, so the
	// alpha-next-to-number rule inserts a space, same as the CHF case in
	// TestFormat_AlphaNextToNumber.
	if got != "USD 1.00" {
		t.Errorf("got %q, want %q", got, "USD 1.00")
	}
}

func TestFormat_CurrencySymbolExplicit(t *testing.T) {
	backend := numfmt.NewMapBackend(nil)
	got, err := numfmt.Format(1, backend, numfmt.Options{
		Currency:              numfmt.CurrencyRef{Code: "USD"},
		CurrencySymbolVariant: numfmt.CurrencySymbolExplicit,
		CurrencySymbolText:    "US$",
	})
	if err != nil {
		t.Fatalf("Format returned error: %v", err)
	}
	// "US$" is also letter-adjacent, so the alpha-next-to-number rule fires
	// the same way it does for the ISO-code case above.
	if got != "US$ 1.00" {
		t.Errorf("got %q, want %q", got, "US$ 1.00")
	}
}

func TestFormat_CurrencyDigitsISO(t *testing.T) {
	backend := numfmt.NewMapBackend(nil)
	got, err := numfmt.Format(1, backend, numfmt.Options{
		Currency:       numfmt.CurrencyRef{Code: "JPY"},
		CurrencyDigits: numfmt.CurrencyDigitsISO,
	})
	if err != nil {
		t.Fatalf("Format returned error: %v", err)
	}
	if got != "¥1" {
		t.Errorf("got %q, want %q (JPY has zero fraction digits)", got, "¥1")
	}
}

func TestFormat_RegisteredCurrency(t *testing.T) {
	backend := numfmt.NewMapBackend(nil)
	if err := backend.RegisterCurrency("BTC", numfmt.Currency{Symbol: "₿", FractionDigits: 8}); err != nil {
		t.Fatalf("RegisterCurrency returned error: %v", err)
	}
	if err := backend.RegisterCurrency("BTC", numfmt.Currency{Symbol: "₿", FractionDigits: 8}); err == nil {
		t.Error("RegisterCurrency with a duplicate code should error")
	}
	if err := backend.RegisterCurrency("", numfmt.Currency{}); err == nil {
		t.Error("RegisterCurrency with an empty code should error")
	}
}

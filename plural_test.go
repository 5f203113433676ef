// Copyright (c) 2020 Bojan Zivanovic and contributors
// SPDX-License-Identifier: MIT

package numfmt_test

import (
	"testing"

	"github.com/bojanz/numfmt"
)

func TestPluralCategory_String(t *testing.T) {
	tests := []struct {
		category numfmt.PluralCategory
		want     string
	}{
		{numfmt.PluralOther, "other"},
		{numfmt.PluralZero, "zero"},
		{numfmt.PluralOne, "one"},
		{numfmt.PluralTwo, "two"},
		{numfmt.PluralFew, "few"},
		{numfmt.PluralMany, "many"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.category.String(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

// TestFormat_PluralRuleFuncIsConsulted confirms the core never hardcodes
// plural math: a custom PluralRuleFunc supplied to the backend controls
// which display-name ladder entry (§4.3 step 3, ladder position 3) is
// picked, independent of the built-in English default.
func TestFormat_PluralRuleFuncIsConsulted(t *testing.T) {
	alwaysFew := func(numfmt.Locale, numfmt.PluralOperand) numfmt.PluralCategory {
		return numfmt.PluralFew
	}
	backend := numfmt.NewMapBackend(alwaysFew)
	if err := backend.RegisterCurrency("XTS", numfmt.Currency{
		Symbol: "XTS",
		DisplayNames: map[numfmt.PluralCategory]string{
			numfmt.PluralOther: "test currency units",
			numfmt.PluralFew:   "few test currency units",
		},
		FractionDigits: 2,
	}); err != nil {
		t.Fatalf("RegisterCurrency returned error: %v", err)
	}

	got, err := numfmt.Format(2, backend, numfmt.Options{
		Format:   numfmt.PatternFormat("¤¤¤#,##0.00"),
		Currency: numfmt.CurrencyRef{Code: "XTS"},
	})
	if err != nil {
		t.Fatalf("Format returned error: %v", err)
	}
	// "few test currency units" ends in a letter adjacent to a digit, so
	// currency spacing inserts its separator, a no-break space (U+00A0).
	if got != "few test currency units 2.00" {
		t.Errorf("got %q, want %q (custom PluralRuleFunc should have been consulted)", got, "few test currency units 2.00")
	}
}

// Copyright (c) 2020 Bojan Zivanovic and contributors
// SPDX-License-Identifier: MIT

package numfmt_test

import (
	"testing"

	"github.com/bojanz/numfmt"
)

func TestNewLocale(t *testing.T) {
	tests := []struct {
		id   string
		want numfmt.Locale
	}{
		{"", numfmt.Locale{}},
		{"de", numfmt.Locale{Language: "de"}},
		{"de-CH", numfmt.Locale{Language: "de", Territory: "CH"}},
		{"es-419", numfmt.Locale{Language: "es", Territory: "419"}},
		{"sr-Cyrl", numfmt.Locale{Language: "sr", Script: "Cyrl"}},
		{"sr-Latn-RS", numfmt.Locale{Language: "sr", Script: "Latn", Territory: "RS"}},
		// ID with the wrong case, ordering, delimiter.
		{"SR_rs_LATN", numfmt.Locale{Language: "sr", Script: "Latn", Territory: "RS"}},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			got := numfmt.NewLocale(tt.id)
			if got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLocale_String(t *testing.T) {
	tests := []struct {
		locale numfmt.Locale
		want   string
	}{
		{numfmt.Locale{}, ""},
		{numfmt.Locale{Language: "de"}, "de"},
		{numfmt.Locale{Language: "de", Territory: "CH"}, "de-CH"},
		{numfmt.Locale{Language: "sr", Script: "Cyrl"}, "sr-Cyrl"},
		{numfmt.Locale{Language: "sr", Script: "Latn", Territory: "RS"}, "sr-Latn-RS"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.locale.String(); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLocale_IsEmpty(t *testing.T) {
	if !(numfmt.Locale{}).IsEmpty() {
		t.Error("the zero-value Locale must be empty")
	}
	if (numfmt.Locale{Language: "de"}).IsEmpty() {
		t.Error("a Locale with a Language must not be empty")
	}
}

func TestLocale_GetParent(t *testing.T) {
	tests := []struct {
		id   string
		want numfmt.Locale
	}{
		{"sr-Cyrl-RS", numfmt.Locale{Language: "sr", Script: "Cyrl"}},
		{"sr-Cyrl", numfmt.Locale{Language: "sr"}},
		{"sr", numfmt.Locale{Language: "en"}},
		{"en", numfmt.Locale{}},
		{"", numfmt.Locale{}},
		// Locales with special, non-structural parents.
		{"es-AR", numfmt.Locale{Language: "es", Territory: "419"}},
		{"sr-Latn", numfmt.Locale{Language: "en"}},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			locale := numfmt.NewLocale(tt.id)
			parent := locale.GetParent()
			if parent != tt.want {
				t.Errorf("got %v, want %v", parent, tt.want)
			}
		})
	}
}

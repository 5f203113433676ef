// Copyright (c) 2020 Bojan Zivanovic and contributors
// SPDX-License-Identifier: MIT

package numfmt_test

import (
	"testing"

	"github.com/bojanz/numfmt"
)

func TestFormat_Scenarios(t *testing.T) {
	backend := numfmt.NewMapBackend(nil)
	one := 1

	tests := []struct {
		name  string
		value interface{}
		opts  numfmt.Options
		want  string
	}{
		{
			name:  "plain grouping",
			value: 12345,
			opts:  numfmt.Options{},
			want:  "12,345",
		},
		{
			// fr groups with a narrow no-break space (U+202F).
			name:  "french grouping",
			value: 12345,
			opts:  numfmt.Options{Locale: "fr"},
			want:  "12 345",
		},
		{
			name:  "spanish currency with lowered grouping threshold",
			value: 1345.32,
			opts: numfmt.Options{
				Locale:                "es",
				Currency:              numfmt.CurrencyRef{Code: "EUR"},
				MinimumGroupingDigits: &one,
			},
			// The es currency pattern puts a no-break space (U+00A0) before ¤.
			want: "1.345,32 €",
		},
		{
			// es requires five integer digits before grouping kicks in.
			name:  "spanish currency locale default suppresses grouping",
			value: 1345.32,
			opts: numfmt.Options{
				Locale:   "es",
				Currency: numfmt.CurrencyRef{Code: "EUR"},
			},
			want: "1345,32 €",
		},
		{
			name:  "scientific notation",
			value: 12345,
			opts:  numfmt.Options{Format: numfmt.PatternFormat("#E0")},
			want:  "1.2345E4",
		},
		{
			// The English symbol for THB is the ISO code, which is
			// letter-adjacent to the number, so the alpha-next-to-number
			// variant of the accounting pattern applies.
			name:  "accounting negative",
			value: -12345,
			opts: numfmt.Options{
				Format:   numfmt.NamedFormat("accounting"),
				Currency: numfmt.CurrencyRef{Code: "THB"},
			},
			want: "(THB 12,345.00)",
		},
		{
			name:  "thai accounting with native digits",
			value: 12345,
			opts: numfmt.Options{
				Format:       numfmt.NamedFormat("accounting"),
				Currency:     numfmt.CurrencyRef{Code: "THB"},
				Locale:       "th",
				NumberSystem: "native",
			},
			want: "฿๑๒,๓๔๕.๐๐",
		},
		{
			name:  "half-even rounding at two fraction digits",
			value: 0.125,
			opts:  numfmt.Options{Format: numfmt.PatternFormat("0.00")},
			want:  "0.12",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := numfmt.Format(tt.value, backend, tt.opts)
			if err != nil {
				t.Fatalf("Format returned error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Format(%v) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestFormat_Zero(t *testing.T) {
	backend := numfmt.NewMapBackend(nil)
	formats := []numfmt.FormatSpec{
		numfmt.NamedFormat("standard"),
		numfmt.NamedFormat("percent"),
		numfmt.NamedFormat("scientific"),
	}
	for _, f := range formats {
		got, err := numfmt.Format(0, backend, numfmt.Options{Format: f})
		if err != nil {
			t.Fatalf("Format(0) returned error: %v", err)
		}
		if got == "" {
			t.Errorf("Format(0, %+v) returned empty string", f)
		}
	}
}

func TestFormat_NegativeZero(t *testing.T) {
	backend := numfmt.NewMapBackend(nil)
	// The Go constant -0.0 is plain zero; negZero() yields a signed zero.
	got, err := numfmt.Format(negZero(), backend, numfmt.Options{})
	if err != nil {
		t.Fatalf("Format returned error: %v", err)
	}
	if got != "0" {
		t.Errorf("Format(-0.0) = %q, want %q (negative zero counts as positive)", got, "0")
	}
}

func TestFormat_NaNAndInfinity(t *testing.T) {
	backend := numfmt.NewMapBackend(nil)

	nan, err := numfmt.Format(nanValue(), backend, numfmt.Options{})
	if err != nil {
		t.Fatalf("Format(NaN) returned error: %v", err)
	}
	if nan != "NaN" {
		t.Errorf("Format(NaN) = %q, want %q", nan, "NaN")
	}

	inf, err := numfmt.Format(infValue(), backend, numfmt.Options{})
	if err != nil {
		t.Fatalf("Format(+Inf) returned error: %v", err)
	}
	if inf != "∞" {
		t.Errorf("Format(+Inf) = %q, want %q", inf, "∞")
	}

	negInf, err := numfmt.Format(-infValue(), backend, numfmt.Options{})
	if err != nil {
		t.Fatalf("Format(-Inf) returned error: %v", err)
	}
	if negInf != "-∞" {
		t.Errorf("Format(-Inf) = %q, want %q", negInf, "-∞")
	}
}

func TestFormat_CurrencyRequiredError(t *testing.T) {
	backend := numfmt.NewMapBackend(nil)
	_, err := numfmt.Format(10, backend, numfmt.Options{Format: numfmt.NamedFormat("currency")})
	if _, ok := err.(numfmt.FormatError); !ok {
		t.Errorf("got error %T(%v), want numfmt.FormatError", err, err)
	}
}

func TestFormat_UnknownCurrencyError(t *testing.T) {
	backend := numfmt.NewMapBackend(nil)
	_, err := numfmt.Format(10, backend, numfmt.Options{Currency: numfmt.CurrencyRef{Code: "XXX"}})
	if _, ok := err.(numfmt.UnknownCurrencyError); !ok {
		t.Errorf("got error %T(%v), want numfmt.UnknownCurrencyError", err, err)
	}
}

func TestFormat_UnknownLocaleError(t *testing.T) {
	backend := numfmt.NewMapBackend(nil)
	_, err := numfmt.Format(10, backend, numfmt.Options{Locale: "xx-Zzzz-XX"})
	if _, ok := err.(numfmt.UnknownLocaleError); !ok {
		t.Errorf("got error %T(%v), want numfmt.UnknownLocaleError", err, err)
	}
}

func TestFormat_CashRounding(t *testing.T) {
	backend := numfmt.NewMapBackend(nil)
	got, err := numfmt.Format(10.02, backend, numfmt.Options{
		Locale:   "de-CH",
		Currency: numfmt.CurrencyRef{Code: "CHF"},
		Cash:     true,
	})
	if err != nil {
		t.Fatalf("Format returned error: %v", err)
	}
	if got != "CHF 10.00" {
		t.Errorf("Format = %q, want %q", got, "CHF 10.00")
	}
}

func TestFormat_AlphaNextToNumber(t *testing.T) {
	backend := numfmt.NewMapBackend(nil)
	got, err := numfmt.Format(10, backend, numfmt.Options{
		Currency: numfmt.CurrencyRef{Code: "CHF"},
	})
	if err != nil {
		t.Fatalf("Format returned error: %v", err)
	}
	if got != "CHF 10.00" {
		t.Errorf("Format = %q, want %q", got, "CHF 10.00")
	}
}

func TestFormat_CompactShort(t *testing.T) {
	backend := numfmt.NewMapBackend(nil)
	got, err := numfmt.Format(12345, backend, numfmt.Options{Format: numfmt.NamedFormat("short")})
	if err != nil {
		t.Fatalf("Format returned error: %v", err)
	}
	if got != "12K" {
		t.Errorf("Format = %q, want %q", got, "12K")
	}
}

func TestMustFormat_Panics(t *testing.T) {
	backend := numfmt.NewMapBackend(nil)
	defer func() {
		if recover() == nil {
			t.Error("MustFormat did not panic on invalid options")
		}
	}()
	numfmt.MustFormat(10, backend, numfmt.Options{Format: numfmt.NamedFormat("currency")})
}

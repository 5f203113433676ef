// Copyright (c) 2020 Bojan Zivanovic and contributors
// SPDX-License-Identifier: MIT

package numfmt_test

import (
	"testing"

	"github.com/bojanz/numfmt"
)

var result string

func BenchmarkFormat_Standard(b *testing.B) {
	backend := numfmt.NewMapBackend(nil)

	var z string
	for n := 0; n < b.N; n++ {
		z, _ = numfmt.Format(1234.5, backend, numfmt.Options{})
	}
	result = z
}

func BenchmarkFormat_Currency(b *testing.B) {
	backend := numfmt.NewMapBackend(nil)
	opts := numfmt.Options{Currency: numfmt.CurrencyRef{Code: "USD"}}

	var z string
	for n := 0; n < b.N; n++ {
		z, _ = numfmt.Format(1234.5, backend, opts)
	}
	result = z
}

func BenchmarkFormat_Compact(b *testing.B) {
	backend := numfmt.NewMapBackend(nil)
	opts := numfmt.Options{Format: numfmt.NamedFormat("short")}

	var z string
	for n := 0; n < b.N; n++ {
		z, _ = numfmt.Format(1234567, backend, opts)
	}
	result = z
}

func BenchmarkFormat_Percent(b *testing.B) {
	backend := numfmt.NewMapBackend(nil)
	opts := numfmt.Options{Format: numfmt.NamedFormat("percent")}

	var z string
	for n := 0; n < b.N; n++ {
		z, _ = numfmt.Format(0.42, backend, opts)
	}
	result = z
}

func BenchmarkFormat_Scientific(b *testing.B) {
	backend := numfmt.NewMapBackend(nil)
	opts := numfmt.Options{Format: numfmt.NamedFormat("scientific")}

	var z string
	for n := 0; n < b.N; n++ {
		z, _ = numfmt.Format(1234.5, backend, opts)
	}
	result = z
}

func BenchmarkPatternCache_Compile(b *testing.B) {
	var cache numfmt.PatternCache
	for n := 0; n < b.N; n++ {
		_, _ = cache.Compile("¤#,##0.00;(¤#,##0.00)")
	}
}

// Copyright (c) 2020 Bojan Zivanovic and contributors
// SPDX-License-Identifier: MIT

package numfmt_test

import (
	"fmt"

	"github.com/bojanz/numfmt"
)

func ExampleFormat() {
	backend := numfmt.NewMapBackend(nil)

	got, _ := numfmt.Format(1234.5, backend, numfmt.Options{})
	fmt.Println(got)

	got, _ = numfmt.Format(1234.5, backend, numfmt.Options{Locale: "fr"})
	fmt.Println(got)
	// Output: 1,234.5
	// 1 234,5
}

func ExampleFormat_currency() {
	backend := numfmt.NewMapBackend(nil)

	got, _ := numfmt.Format(1345.32, backend, numfmt.Options{
		Locale:   "es",
		Currency: numfmt.CurrencyRef{Code: "EUR"},
	})
	fmt.Println(got)

	got, _ = numfmt.Format(1345.32, backend, numfmt.Options{
		Locale:   "es",
		Currency: numfmt.CurrencyRef{Code: "EUR"},
		Format:   numfmt.NamedFormat("accounting"),
	})
	fmt.Println(got)
	// Output: 1345,32 €
	// 1345,32 €
}

func ExampleFormat_percent() {
	backend := numfmt.NewMapBackend(nil)

	got, _ := numfmt.Format(0.42, backend, numfmt.Options{
		Format: numfmt.NamedFormat("percent"),
	})
	fmt.Println(got)
	// Output: 42%
}

func ExampleFormat_compact() {
	backend := numfmt.NewMapBackend(nil)

	got, _ := numfmt.Format(12345, backend, numfmt.Options{
		Format: numfmt.NamedFormat("short"),
	})
	fmt.Println(got)

	got, _ = numfmt.Format(1200000, backend, numfmt.Options{
		Format: numfmt.NamedFormat("short"),
	})
	fmt.Println(got)
	// Output: 12K
	// 1M
}

func ExampleMustFormat() {
	backend := numfmt.NewMapBackend(nil)
	fmt.Println(numfmt.MustFormat(99, backend, numfmt.Options{}))
	// Output: 99
}

func ExampleNewLocale() {
	firstLocale := numfmt.NewLocale("en-US")
	fmt.Println(firstLocale)
	fmt.Println(firstLocale.Language, firstLocale.Territory)

	// Locale IDs are normalized.
	secondLocale := numfmt.NewLocale("sr_rs_latn")
	fmt.Println(secondLocale)
	fmt.Println(secondLocale.Language, secondLocale.Script, secondLocale.Territory)
	// Output: en-US
	// en US
	// sr-Latn-RS
	// sr Latn RS
}

func ExampleLocale_GetParent() {
	locale := numfmt.NewLocale("sr-Cyrl-RS")
	for {
		fmt.Println(locale)
		locale = locale.GetParent()
		if locale.IsEmpty() {
			break
		}
	}
	// Output: sr-Cyrl-RS
	// sr-Cyrl
	// sr
	// en
}

func ExampleCanonicalLocale() {
	locale := numfmt.CanonicalLocale("DE_at")
	fmt.Println(locale)
	// Output: de-AT
}

func ExampleMapBackend_RegisterCurrency() {
	backend := numfmt.NewMapBackend(nil)
	err := backend.RegisterCurrency("BTC", numfmt.Currency{
		Symbol:         "₿",
		FractionDigits: 8,
	})
	fmt.Println(err)

	got, _ := numfmt.Format(1.5, backend, numfmt.Options{
		Currency: numfmt.CurrencyRef{Code: "BTC"},
	})
	fmt.Println(got)
	// Output: <nil>
	// ₿1.50000000
}

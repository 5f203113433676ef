// Copyright (c) 2020 Bojan Zivanovic and contributors
// SPDX-License-Identifier: MIT

package numfmt

// Currency is the currency record, as supplied by the
// external CLDR loader through Backend.Currency.
type Currency struct {
	// Code is the ISO 4217 three-letter code (also used as the ISO symbol).
	Code string
	// Symbol is the locale's preferred display symbol (e.g. "$").
	Symbol string
	// NarrowSymbol is the narrow display symbol (e.g. "$" vs "US$"); empty
	// means "same as Symbol".
	NarrowSymbol string
	// DisplayNames maps plural category to the spelled-out display name
	// (e.g. PluralOne -> "US dollar", PluralOther -> "US dollars").
	DisplayNames map[PluralCategory]string
	// FractionDigits is the number of fraction digits used for ordinary
	// (accounting/ISO) display, e.g. 2 for USD, 0 for JPY.
	FractionDigits int
	// CashFractionDigits is the number of fraction digits used when cash
	// rounding applies (e.g. 0 for CHF cash, vs 2 normally).
	CashFractionDigits int
	// RoundingIncrement is the accounting rounding increment, as a decimal
	// string ("" or "0" means none).
	RoundingIncrement string
	// CashRoundingIncrement is the cash rounding increment, as a decimal
	// string ("" or "0" means none; e.g. "0.05" for CHF cash).
	CashRoundingIncrement string
}

// ISOSymbol returns the currency's ISO 4217 code, used as the "¤¤" ladder
// entry.
func (c Currency) ISOSymbol() string {
	return c.Code
}

// CurrencyDigitsMode selects which of a currency's fraction-digit/rounding
// pairs governs formatting.
type CurrencyDigitsMode uint8

const (
	// CurrencyDigitsAccounting uses Currency.FractionDigits/RoundingIncrement.
	CurrencyDigitsAccounting CurrencyDigitsMode = iota
	// CurrencyDigitsCash uses Currency.CashFractionDigits/CashRoundingIncrement.
	CurrencyDigitsCash
	// CurrencyDigitsISO uses Currency.FractionDigits, same as accounting,
	// but signals the caller intends ISO-4217-conformant rounding.
	CurrencyDigitsISO
)

// CurrencySymbolVariant overrides the default currency-placeholder ladder.
type CurrencySymbolVariant uint8

const (
	// CurrencySymbolDefault lets the ¤-run length pick the ladder entry.
	CurrencySymbolDefault CurrencySymbolVariant = iota
	// CurrencySymbolStandard forces the locale's standard (wide) symbol.
	CurrencySymbolStandard
	// CurrencySymbolISO forces the ISO 4217 code.
	CurrencySymbolISO
	// CurrencySymbolNarrow forces the narrow symbol.
	CurrencySymbolNarrow
	// CurrencySymbolSymbol is an alias for CurrencySymbolStandard, matching
	// the :symbol option value.
	CurrencySymbolSymbol
	// CurrencySymbolExplicit uses a caller-supplied literal string.
	CurrencySymbolExplicit
)

// bindCurrencySymbol implements the currency symbol ladder: for a pattern
// with count consecutive ¤ tokens, return the count-th ladder entry, unless
// variant forces a specific form or supplies an explicit string.
func bindCurrencySymbol(count int, variant CurrencySymbolVariant, explicit string, cur Currency, plural PluralCategory) string {
	switch variant {
	case CurrencySymbolExplicit:
		return explicit
	case CurrencySymbolStandard, CurrencySymbolSymbol:
		return cur.Symbol
	case CurrencySymbolISO:
		return cur.ISOSymbol()
	case CurrencySymbolNarrow:
		if cur.NarrowSymbol != "" {
			return cur.NarrowSymbol
		}
		return cur.Symbol
	}

	switch count {
	case 1:
		return cur.Symbol
	case 2:
		return cur.ISOSymbol()
	case 3:
		if name, ok := cur.DisplayNames[plural]; ok {
			return name
		}
		if name, ok := cur.DisplayNames[PluralOther]; ok {
			return name
		}
		return cur.ISOSymbol()
	case 4:
		if cur.NarrowSymbol != "" {
			return cur.NarrowSymbol
		}
		return cur.Symbol
	default:
		return cur.Symbol
	}
}

// currencyFractionDigits implements the fraction-digit half of the Currency
// Binder: the effective number of fraction digits, which
// overrides the pattern's fraction digits unless the caller supplied its
// own fractional_digits override (that check is in applyCurrencyOverrides).
func currencyFractionDigits(mode CurrencyDigitsMode, cur Currency) int {
	if mode == CurrencyDigitsCash {
		return cur.CashFractionDigits
	}
	return cur.FractionDigits
}

// currencyRoundingIncrement returns the rounding increment to pass to the
// decimal engine as round_nearest, or "" if none applies.
func currencyRoundingIncrement(mode CurrencyDigitsMode, cur Currency) string {
	if mode == CurrencyDigitsCash {
		return cur.CashRoundingIncrement
	}
	return cur.RoundingIncrement
}

// currencySymbolStartsWithLetter reports whether s begins with a letter,
// used by the alpha-next-to-number rule.
func currencySymbolStartsWithLetter(s string) bool {
	for _, r := range s {
		return ClassLetter.matches(r)
	}
	return false
}

// currencySymbolEndsWithLetter reports whether s ends with a letter.
func currencySymbolEndsWithLetter(s string) bool {
	var last rune
	for _, r := range s {
		last = r
	}
	return ClassLetter.matches(last)
}

// Copyright (c) 2020 Bojan Zivanovic and contributors
// SPDX-License-Identifier: MIT

// Package numfmt implements the CLDR (Unicode TR35 §3) decimal, percent,
// scientific, compact and currency number formatting algorithms as a pure
// function of a value, a data-provider Backend, and a set of Options.
//
// The package does not load CLDR data itself, parse RBNF rulesets, or parse
// numbers out of strings; those are external collaborators represented here
// only by the Backend interface and the PluralRuleFunc callback type.
package numfmt

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Locale represents a Unicode locale identifier (language-script-territory).
//
// It is the opaque "locale descriptor": the core never
// interprets it beyond identity, comparison, string form, and the CLDR
// locale-inheritance chain implemented by GetParent.
type Locale struct {
	Language  string
	Script    string
	Territory string
}

// NewLocale creates a new Locale from its string representation.
func NewLocale(id string) Locale {
	// Normalize the ID ("SR_rs_LATN" => "sr-Latn-RS").
	id = strings.ToLower(strings.TrimSpace(id))
	id = strings.ReplaceAll(id, "_", "-")
	locale := Locale{}
	for i, part := range strings.Split(id, "-") {
		if i == 0 {
			locale.Language = part
			continue
		}
		partLen := len(part)
		if partLen == 4 {
			// Uppercase the first letter in a UTF8-safe manner.
			r, size := utf8.DecodeRuneInString(part)
			locale.Script = string(unicode.ToTitle(r)) + part[size:]
			continue
		}
		if partLen == 2 || partLen == 3 {
			locale.Territory = strings.ToUpper(part)
			continue
		}
	}

	return locale
}

// String returns the string representation of l.
func (l Locale) String() string {
	b := strings.Builder{}
	b.WriteString(l.Language)
	if l.Script != "" {
		b.WriteString("-")
		b.WriteString(l.Script)
	}
	if l.Territory != "" {
		b.WriteString("-")
		b.WriteString(l.Territory)
	}

	return b.String()
}

// IsEmpty returns whether l is the root (empty) locale.
func (l Locale) IsEmpty() bool {
	return l.Language == "" && l.Script == "" && l.Territory == ""
}

// GetParent returns the parent locale for l, per the CLDR locale-inheritance
// chain:
//
//  1. Language-Script-Territory (e.g. "sr-Cyrl-RS")
//  2. Language-Script (e.g. "sr-Cyrl")
//  3. Language (e.g. "sr")
//  4. English ("en")
//  5. Root (empty locale)
//
// A handful of locales have special, non-structural parents (e.g. "es-AR"'s
// parent is "es-419", not "es"); those are recorded in parentLocales.
func (l Locale) GetParent() Locale {
	localeID := l.String()
	if localeID == "" || localeID == "en" {
		return Locale{}
	}
	if p, ok := parentLocales[localeID]; ok {
		return NewLocale(p)
	}

	if l.Territory != "" {
		return Locale{Language: l.Language, Script: l.Script}
	} else if l.Script != "" {
		return Locale{Language: l.Language}
	}
	return Locale{Language: "en"}
}

// parentLocales records the CLDR exceptions to the structural
// locale-inheritance chain (TR35 locale matching, "supplementalData/
// parentLocales"). This is locale-identity structure, not number-format
// pattern data, so it ships with the core rather than the out-of-scope CLDR
// loader; a real backend is free to supply a fuller table via its own
// lookups, GetParent here only provides the structural fallback.
var parentLocales = map[string]string{
	"es-AR":   "es-419",
	"es-BO":   "es-419",
	"es-CL":   "es-419",
	"es-CO":   "es-419",
	"es-CR":   "es-419",
	"es-DO":   "es-419",
	"es-EC":   "es-419",
	"es-GT":   "es-419",
	"es-HN":   "es-419",
	"es-MX":   "es-419",
	"es-NI":   "es-419",
	"es-PA":   "es-419",
	"es-PE":   "es-419",
	"es-PR":   "es-419",
	"es-PY":   "es-419",
	"es-SV":   "es-419",
	"es-US":   "es-419",
	"es-UY":   "es-419",
	"es-VE":   "es-419",
	"pt-AO":   "pt-PT",
	"pt-CH":   "pt-PT",
	"pt-CV":   "pt-PT",
	"pt-GQ":   "pt-PT",
	"pt-GW":   "pt-PT",
	"pt-LU":   "pt-PT",
	"pt-MO":   "pt-PT",
	"pt-MZ":   "pt-PT",
	"pt-ST":   "pt-PT",
	"pt-TL":   "pt-PT",
	"sr-Latn": "en",
	"az-Arab": "root",
	"az-Cyrl": "root",
	"zh-Hant": "root",
}

// NumberSystemData describes a number system: its ten digit codepoints, or
// a flag marking it algorithmic. Algorithmic systems (e.g. "roman") are out
// of this core's scope; they are handled by the RBNF collaborator.
type NumberSystemData struct {
	Name        string
	Digits      [10]rune
	Algorithmic bool
}

// CurrencySpacingClass is a simplified Unicode general-category test used by
// the currency-spacing rule: whether the character
// adjacent to the currency symbol is a letter, a digit, or matches
// unconditionally.
type CurrencySpacingClass uint8

const (
	ClassAny CurrencySpacingClass = iota
	ClassDigit
	ClassLetter
	ClassNone
)

func (c CurrencySpacingClass) matches(r rune) bool {
	switch c {
	case ClassDigit:
		return unicode.IsDigit(r)
	case ClassLetter:
		return unicode.IsLetter(r)
	case ClassNone:
		return false
	default:
		return true
	}
}

// CurrencySpacingRule is one side (before or after the currency symbol) of a
// locale's currency spacing rule.
type CurrencySpacingRule struct {
	MatchSurrounding CurrencySpacingClass
	MatchCurrency    CurrencySpacingClass
	InsertBetween    string
}

// CurrencySpacing holds both sides of a locale's currency spacing rule.
type CurrencySpacing struct {
	BeforeCurrency CurrencySpacingRule
	AfterCurrency  CurrencySpacingRule
}

// Symbols is the per-locale, per-number-system symbol table.
type Symbols struct {
	NumberSystem string
	Decimal      string
	Group        string
	Exponent     string
	Plus         string
	Minus        string
	Percent      string
	Permille     string
	Infinity     string
	NaN          string
	// CurrencyDecimal and CurrencyGroup override Decimal/Group for currency
	// formats. Empty means "use Decimal/Group".
	CurrencyDecimal string
	CurrencyGroup   string
	Spacing         CurrencySpacing
	// MinGroupingDigits is the locale's default minimum grouping digits
	// (CLDR minimumGroupingDigits): grouping separators appear only when the
	// integer digit count reaches the primary group size plus this value.
	// Callers can override it per call via Options.MinimumGroupingDigits.
	MinGroupingDigits int
}

// decimalSeparator returns the effective decimal separator for a currency
// format, falling back to the plain decimal separator.
func (s Symbols) decimalSeparator(currency bool) string {
	if currency && s.CurrencyDecimal != "" {
		return s.CurrencyDecimal
	}
	return s.Decimal
}

// groupSeparator returns the effective group separator for a currency
// format, falling back to the plain group separator.
func (s Symbols) groupSeparator(currency bool) string {
	if currency && s.CurrencyGroup != "" {
		return s.CurrencyGroup
	}
	return s.Group
}

// CompactKind distinguishes the four compact format families.
type CompactKind uint8

const (
	CompactDecimalShort CompactKind = iota
	CompactDecimalLong
	CompactCurrencyShort
	CompactCurrencyLong
)

// CompactBucket is one magnitude bucket of compact-format data: a divisor
// and a pattern per plural category.
type CompactBucket struct {
	// Magnitude is floor(log10) of the smallest value the bucket applies to
	// (e.g. 3 for the "thousands" bucket).
	Magnitude int
	// Divisor is the decimal divisor for values in this bucket, as a decimal
	// string (e.g. "1000"). A pattern of "0" for a plural category means "no
	// transform": fall back to the standard format.
	Divisor string
	// Patterns maps plural category to the compact pattern string.
	Patterns map[PluralCategory]string
}

// Backend is the external data-provider capability the core depends on; all
// locale data access goes through it rather than a package-level lookup.
// The core consumes only a locale descriptor, a symbol table, a currency
// record, and a plural-rule evaluator; CLDR data loading, RBNF rule
// evaluation and parsing numbers from strings are all out of scope and live
// on the other side of this interface.
type Backend interface {
	// HasLocale reports whether the backend recognizes the locale at all
	// (ignoring fallback); used by the options resolver to raise
	// UnknownLocaleError before any data lookup is attempted.
	HasLocale(locale Locale) bool
	// DefaultNumberSystem returns the locale's preferred number system name.
	DefaultNumberSystem(locale Locale) string
	// NumberSystem resolves a number system by name for the given locale.
	NumberSystem(locale Locale, name string) (NumberSystemData, bool)
	// Symbols resolves the symbol table for (locale, numberSystem), walking
	// the locale-inheritance chain (Locale.GetParent) as needed.
	Symbols(locale Locale, numberSystem string) (Symbols, bool)
	// Pattern resolves a named format (e.g. "standard", "currency",
	// "accounting", "percent", "scientific", "currency_no_symbol", ...) to
	// its raw CLDR pattern string for (locale, numberSystem).
	Pattern(locale Locale, numberSystem string, name string) (string, bool)
	// DefaultCurrencyFormat returns the locale's default currency format
	// variant name, either "currency" or "accounting".
	DefaultCurrencyFormat(locale Locale) string
	// Currency resolves a currency record by ISO 4217 code. The locale
	// selects the locale-specific display symbol (e.g. "THB" in English
	// locales vs "฿" in Thai ones); the rest of the record is locale
	// independent.
	Currency(locale Locale, code string) (Currency, bool)
	// CompactBuckets returns the magnitude buckets for a compact format kind,
	// sorted ascending by Magnitude.
	CompactBuckets(locale Locale, numberSystem string, kind CompactKind) ([]CompactBucket, bool)
	// Plural evaluates the plural category for operand under locale's
	// plural rules.
	Plural(locale Locale, operand PluralOperand) PluralCategory
}

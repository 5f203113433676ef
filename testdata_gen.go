// Copyright (c) 2020 Bojan Zivanovic and contributors
// SPDX-License-Identifier: MIT

package numfmt

import "fmt"

// EmptyCurrencyCodeError indicates that RegisterCurrency was called with an
// empty currency code.
type EmptyCurrencyCodeError struct{}

func (e EmptyCurrencyCodeError) Error() string {
	return "register currency error: empty currency code"
}

// CurrencyAlreadyExistsError indicates that RegisterCurrency's code already
// exists in the backend's currency table.
type CurrencyAlreadyExistsError struct {
	Code string
}

func (e CurrencyAlreadyExistsError) Error() string {
	return fmt.Sprintf("register currency error: code %q already exists", e.Code)
}

// localeEntry holds every piece of locale data MapBackend serves for one
// locale, keyed internally by number system name.
type localeEntry struct {
	defaultNumberSystem   string
	numberSystems         map[string]NumberSystemData
	symbols               map[string]Symbols
	patterns              map[string]map[string]string
	defaultCurrencyFormat string
	compact               map[string]map[CompactKind][]CompactBucket
}

// MapBackend is a small, illustrative in-memory Backend implementation.
// It is not a CLDR data loader; it carries just enough hand-authored data to
// exercise the engine end to end, held in per-instance maps.
type MapBackend struct {
	locales    map[string]localeEntry
	currencies map[string]Currency
	// currencySymbols holds per-locale display-symbol overrides
	// (locale ID -> code -> symbol); currency symbols are locale data in
	// CLDR, while the rest of a currency record is not.
	currencySymbols map[string]map[string]string
	pluralFunc      PluralRuleFunc
}

// NewMapBackend builds a backend pre-populated with a handful of locales
// (en, fr, es, th, de-CH) and currencies (USD, EUR, THB, JPY, CHF) covering
// the scenarios a complete formatting core must handle: plain grouping,
// narrow-no-break-space grouping, currency with non-ISO grouping character,
// native (non-Latin) digit sets, and cash rounding.
func NewMapBackend(pluralFunc PluralRuleFunc) *MapBackend {
	b := &MapBackend{
		locales:         make(map[string]localeEntry),
		currencies:      make(map[string]Currency),
		currencySymbols: make(map[string]map[string]string),
		pluralFunc:      pluralFunc,
	}
	b.seedLocales()
	b.seedCurrencies()
	return b
}

func latinDigits() [10]rune {
	return [10]rune{'0', '1', '2', '3', '4', '5', '6', '7', '8', '9'}
}

func thaiDigits() [10]rune {
	return [10]rune{'๐', '๑', '๒', '๓', '๔', '๕', '๖', '๗', '๘', '๙'}
}

func (b *MapBackend) seedLocales() {
	b.locales["en"] = localeEntry{
		defaultNumberSystem: "latn",
		numberSystems:       map[string]NumberSystemData{"latn": {Name: "latn", Digits: latinDigits()}},
		symbols: map[string]Symbols{
			"latn": {
				NumberSystem: "latn", Decimal: ".", Group: ",", Exponent: "E",
				Plus: "+", Minus: "-", Percent: "%", Permille: "‰",
				Infinity: "∞", NaN: "NaN",
				MinGroupingDigits: 1,
				Spacing: CurrencySpacing{
					BeforeCurrency: CurrencySpacingRule{MatchSurrounding: ClassDigit, MatchCurrency: ClassLetter, InsertBetween: " "},
					AfterCurrency:  CurrencySpacingRule{MatchSurrounding: ClassDigit, MatchCurrency: ClassLetter, InsertBetween: " "},
				},
			},
		},
		patterns: map[string]map[string]string{
			"latn": {
				"standard":                       "#,##0.###",
				"currency":                       "¤#,##0.00",
				"accounting":                     "¤#,##0.00;(¤#,##0.00)",
				"percent":                        "#,##0%",
				"scientific":                     "#E0",
				"currency_no_symbol":             "#,##0.00",
				"accounting_no_symbol":           "#,##0.00;(#,##0.00)",
				"currency_alpha_next_to_number":  "¤ #,##0.00",
				"accounting_alpha_next_to_number": "¤ #,##0.00;(¤ #,##0.00)",
			},
		},
		defaultCurrencyFormat: "currency",
		compact: map[string]map[CompactKind][]CompactBucket{
			"latn": {
				CompactDecimalShort: {
					{Magnitude: 3, Divisor: "1000", Patterns: map[PluralCategory]string{PluralOther: "0K"}},
					{Magnitude: 6, Divisor: "1000000", Patterns: map[PluralCategory]string{PluralOther: "0M"}},
					{Magnitude: 9, Divisor: "1000000000", Patterns: map[PluralCategory]string{PluralOther: "0B"}},
				},
			},
		},
	}

	b.locales["fr"] = localeEntry{
		defaultNumberSystem: "latn",
		numberSystems:       map[string]NumberSystemData{"latn": {Name: "latn", Digits: latinDigits()}},
		symbols: map[string]Symbols{
			"latn": {
				NumberSystem: "latn", Decimal: ",", Group: " ", Exponent: "E",
				Plus: "+", Minus: "-", Percent: "%", Permille: "‰",
				Infinity: "∞", NaN: "NaN",
				MinGroupingDigits: 1,
				Spacing: CurrencySpacing{
					BeforeCurrency: CurrencySpacingRule{MatchSurrounding: ClassDigit, MatchCurrency: ClassLetter, InsertBetween: " "},
					AfterCurrency:  CurrencySpacingRule{MatchSurrounding: ClassDigit, MatchCurrency: ClassLetter, InsertBetween: " "},
				},
			},
		},
		patterns: map[string]map[string]string{
			"latn": {
				"standard":   "#,##0.###",
				"currency":   "#,##0.00 ¤",
				"accounting": "#,##0.00 ¤;(#,##0.00 ¤)",
				"percent":    "#,##0 %",
				"scientific": "#E0",
			},
		},
		defaultCurrencyFormat: "currency",
	}

	b.locales["es"] = localeEntry{
		defaultNumberSystem: "latn",
		numberSystems:       map[string]NumberSystemData{"latn": {Name: "latn", Digits: latinDigits()}},
		symbols: map[string]Symbols{
			"latn": {
				NumberSystem: "latn", Decimal: ",", Group: ".", Exponent: "E",
				Plus: "+", Minus: "-", Percent: "%", Permille: "‰",
				Infinity: "∞", NaN: "NaN",
				MinGroupingDigits: 2,
				Spacing: CurrencySpacing{
					BeforeCurrency: CurrencySpacingRule{MatchSurrounding: ClassDigit, MatchCurrency: ClassLetter, InsertBetween: " "},
					AfterCurrency:  CurrencySpacingRule{MatchSurrounding: ClassDigit, MatchCurrency: ClassLetter, InsertBetween: " "},
				},
			},
		},
		patterns: map[string]map[string]string{
			"latn": {
				"standard":   "#,##0.###",
				"currency":   "#,##0.00 ¤",
				"accounting": "#,##0.00 ¤;(#,##0.00 ¤)",
				"percent":    "#,##0%",
				"scientific": "#E0",
			},
		},
		defaultCurrencyFormat: "currency",
	}

	b.locales["th"] = localeEntry{
		defaultNumberSystem: "latn",
		numberSystems: map[string]NumberSystemData{
			"latn":   {Name: "latn", Digits: latinDigits()},
			"native": {Name: "thai", Digits: thaiDigits()},
			"thai":   {Name: "thai", Digits: thaiDigits()},
		},
		symbols: map[string]Symbols{
			"latn": {NumberSystem: "latn", Decimal: ".", Group: ",", Exponent: "E", Plus: "+", Minus: "-", Percent: "%", Permille: "‰", Infinity: "∞", NaN: "NaN", MinGroupingDigits: 1},
			"thai": {NumberSystem: "thai", Decimal: ".", Group: ",", Exponent: "E", Plus: "+", Minus: "-", Percent: "%", Permille: "‰", Infinity: "∞", NaN: "NaN", MinGroupingDigits: 1},
		},
		patterns: map[string]map[string]string{
			"latn": {
				"standard":   "#,##0.###",
				"currency":   "¤#,##0.00",
				"accounting": "¤#,##0.00;(¤#,##0.00)",
				"percent":    "#,##0%",
			},
			"thai": {
				"standard":   "#,##0.###",
				"currency":   "¤#,##0.00",
				"accounting": "¤#,##0.00;(¤#,##0.00)",
				"percent":    "#,##0%",
			},
		},
		defaultCurrencyFormat: "accounting",
	}

	b.locales["de-CH"] = localeEntry{
		defaultNumberSystem: "latn",
		numberSystems:       map[string]NumberSystemData{"latn": {Name: "latn", Digits: latinDigits()}},
		symbols: map[string]Symbols{
			"latn": {
				NumberSystem: "latn", Decimal: ".", Group: "’", Exponent: "E",
				Plus: "+", Minus: "-", Percent: "%", Permille: "‰",
				Infinity: "∞", NaN: "NaN",
				MinGroupingDigits: 1,
			},
		},
		patterns: map[string]map[string]string{
			"latn": {
				"standard":   "#,##0.###",
				"currency":   "¤ #,##0.00",
				"accounting": "¤ #,##0.00;¤-#,##0.00",
				"percent":    "#,##0%",
			},
		},
		defaultCurrencyFormat: "currency",
	}
}

func (b *MapBackend) seedCurrencies() {
	b.currencies["USD"] = Currency{
		Code: "USD", Symbol: "$", NarrowSymbol: "$",
		DisplayNames:   map[PluralCategory]string{PluralOne: "US dollar", PluralOther: "US dollars"},
		FractionDigits: 2, CashFractionDigits: 2,
	}
	b.currencies["EUR"] = Currency{
		Code: "EUR", Symbol: "€", NarrowSymbol: "€",
		DisplayNames:   map[PluralCategory]string{PluralOne: "euro", PluralOther: "euros"},
		FractionDigits: 2, CashFractionDigits: 2,
	}
	b.currencies["THB"] = Currency{
		Code: "THB", Symbol: "THB", NarrowSymbol: "฿",
		DisplayNames:   map[PluralCategory]string{PluralOne: "Thai baht", PluralOther: "Thai baht"},
		FractionDigits: 2, CashFractionDigits: 2,
	}
	b.currencySymbols["th"] = map[string]string{"THB": "฿"}
	b.currencies["JPY"] = Currency{
		Code: "JPY", Symbol: "¥", NarrowSymbol: "¥",
		DisplayNames:   map[PluralCategory]string{PluralOne: "Japanese yen", PluralOther: "Japanese yen"},
		FractionDigits: 0, CashFractionDigits: 0,
	}
	b.currencies["CHF"] = Currency{
		Code: "CHF", Symbol: "CHF", NarrowSymbol: "CHF",
		DisplayNames:          map[PluralCategory]string{PluralOne: "Swiss franc", PluralOther: "Swiss francs"},
		FractionDigits:        2,
		CashFractionDigits:    2,
		CashRoundingIncrement: "0.05",
	}
}

// RegisterCurrency adds a new currency record to the backend's own map
// instead of a package-level global table.
func (b *MapBackend) RegisterCurrency(code string, cur Currency) error {
	if code == "" {
		return EmptyCurrencyCodeError{}
	}
	if _, exists := b.currencies[code]; exists {
		return CurrencyAlreadyExistsError{Code: code}
	}
	cur.Code = code
	b.currencies[code] = cur
	return nil
}

func (b *MapBackend) entry(locale Locale) (localeEntry, Locale, bool) {
	l := locale
	if l.IsEmpty() {
		// An empty locale means "caller did not specify one"; this backend's
		// process default is English.
		l = NewLocale("en")
	}
	for {
		if e, ok := b.locales[l.String()]; ok {
			return e, l, true
		}
		if l.IsEmpty() {
			return localeEntry{}, l, false
		}
		l = l.GetParent()
	}
}

func (b *MapBackend) HasLocale(locale Locale) bool {
	if locale.IsEmpty() {
		locale = NewLocale("en")
	}
	_, ok := b.locales[locale.String()]
	return ok
}

func (b *MapBackend) DefaultNumberSystem(locale Locale) string {
	e, _, ok := b.entry(locale)
	if !ok {
		return "latn"
	}
	return e.defaultNumberSystem
}

func (b *MapBackend) NumberSystem(locale Locale, name string) (NumberSystemData, bool) {
	e, _, ok := b.entry(locale)
	if !ok {
		return NumberSystemData{}, false
	}
	data, ok := e.numberSystems[name]
	return data, ok
}

func (b *MapBackend) Symbols(locale Locale, numberSystem string) (Symbols, bool) {
	e, _, ok := b.entry(locale)
	if !ok {
		return Symbols{}, false
	}
	s, ok := e.symbols[numberSystem]
	return s, ok
}

func (b *MapBackend) Pattern(locale Locale, numberSystem string, name string) (string, bool) {
	e, _, ok := b.entry(locale)
	if !ok {
		return "", false
	}
	byName, ok := e.patterns[numberSystem]
	if !ok {
		return "", false
	}
	p, ok := byName[name]
	return p, ok
}

func (b *MapBackend) DefaultCurrencyFormat(locale Locale) string {
	e, _, ok := b.entry(locale)
	if !ok {
		return "currency"
	}
	return e.defaultCurrencyFormat
}

func (b *MapBackend) Currency(locale Locale, code string) (Currency, bool) {
	c, ok := b.currencies[code]
	if !ok {
		return Currency{}, false
	}
	for l := locale; !l.IsEmpty(); l = l.GetParent() {
		if sym, ok := b.currencySymbols[l.String()][code]; ok {
			c.Symbol = sym
			break
		}
	}
	return c, ok
}

func (b *MapBackend) CompactBuckets(locale Locale, numberSystem string, kind CompactKind) ([]CompactBucket, bool) {
	e, _, ok := b.entry(locale)
	if !ok {
		return nil, false
	}
	byKind, ok := e.compact[numberSystem]
	if !ok {
		return nil, false
	}
	buckets, ok := byKind[kind]
	return buckets, ok
}

func (b *MapBackend) Plural(locale Locale, operand PluralOperand) PluralCategory {
	if b.pluralFunc != nil {
		return b.pluralFunc(locale, operand)
	}
	return englishPlural(operand)
}

// englishPlural is the default PluralRuleFunc used when MapBackend is built
// with a nil callback: CLDR's "one"/"other" rule for English (i = 1 and v =
// 0), sufficient for exercising the currency display-name ladder in tests
// without requiring a full plural-rules engine.
func englishPlural(operand PluralOperand) PluralCategory {
	if operand.I == 1 && operand.V == 0 {
		return PluralOne
	}
	return PluralOther
}

// Copyright (c) 2020 Bojan Zivanovic and contributors
// SPDX-License-Identifier: MIT

package numfmt

import "strings"

// FormatKind names a recognized value of the "format" option.
type FormatKind uint8

const (
	FormatStandard FormatKind = iota
	FormatCurrency
	FormatAccounting
	FormatPercent
	FormatScientific
	FormatShort
	FormatLong
	FormatDecimalShort
	FormatDecimalLong
	FormatCurrencyShort
	FormatCurrencyLong
	FormatCurrencyNoSymbol
	FormatAccountingNoSymbol
	FormatCurrencyAlphaNextToNumber
	FormatAccountingAlphaNextToNumber
	// FormatPattern means Format.Pattern holds an explicit pattern string
	// instead of a named format.
	FormatPattern
	// FormatRBNF means Format.Name holds an RBNF ruleset name, delegated to
	// the out-of-scope RBNF collaborator.
	FormatRBNF
)

var namedFormats = map[string]FormatKind{
	"standard":                        FormatStandard,
	"currency":                        FormatCurrency,
	"accounting":                      FormatAccounting,
	"percent":                         FormatPercent,
	"scientific":                      FormatScientific,
	"short":                           FormatShort,
	"long":                            FormatLong,
	"decimal_short":                   FormatDecimalShort,
	"decimal_long":                    FormatDecimalLong,
	"currency_short":                  FormatCurrencyShort,
	"currency_long":                   FormatCurrencyLong,
	"currency_no_symbol":              FormatCurrencyNoSymbol,
	"accounting_no_symbol":            FormatAccountingNoSymbol,
	"currency_alpha_next_to_number":   FormatCurrencyAlphaNextToNumber,
	"accounting_alpha_next_to_number": FormatAccountingAlphaNextToNumber,
}

// formatNames is the reverse of namedFormats, used for backend pattern
// lookups and error messages.
var formatNames = func() map[FormatKind]string {
	m := make(map[FormatKind]string, len(namedFormats))
	for name, kind := range namedFormats {
		m[kind] = name
	}
	return m
}()

// FormatSpec selects the pattern source for a Format call: a named format,
// an explicit pattern string, or a delegated RBNF ruleset name.
type FormatSpec struct {
	Kind    FormatKind
	Pattern string // set when Kind == FormatPattern
	Name    string // set when Kind == FormatRBNF
}

// NamedFormat builds a Format from one of the recognized symbolic names.
func NamedFormat(name string) FormatSpec {
	if kind, ok := namedFormats[name]; ok {
		return FormatSpec{Kind: kind}
	}
	return FormatSpec{Kind: FormatRBNF, Name: name}
}

// PatternFormat builds a Format from an explicit CLDR pattern string.
func PatternFormat(pattern string) FormatSpec {
	return FormatSpec{Kind: FormatPattern, Pattern: pattern}
}

// CurrencyRef identifies the currency option value.
type CurrencyRef struct {
	Code       string
	Record     *Currency
	FromLocale bool
}

// Options is the caller-facing input accepted by Format. The zero
// value requests standard decimal formatting with locale/backend defaults.
type Options struct {
	Format                FormatSpec
	Currency              CurrencyRef
	CurrencyDigits        CurrencyDigitsMode
	Cash                  bool // deprecated alias for CurrencyDigits = CurrencyDigitsCash
	RoundingMode          RoundingMode
	FractionalDigits      *int
	MaximumIntegerDigits  *int
	RoundNearest          string
	// MinimumGroupingDigits adjusts the grouping threshold: separators
	// appear only when the integer digit count reaches the pattern's primary
	// group size plus this value. nil means "use the locale's default"; an
	// explicit 0 means "no additional threshold".
	MinimumGroupingDigits *int
	Locale                string
	NumberSystem          string
	CurrencySymbolVariant CurrencySymbolVariant
	CurrencySymbolText    string // set when CurrencySymbolVariant == CurrencySymbolExplicit
	Wrapper               WrapFunc
}

// resolvedOptions is the fully populated, validated output of resolving a
// caller's Options against a Backend.
type resolvedOptions struct {
	locale                  Locale
	numberSystem            string
	effectivePatternString  string
	currency                *Currency
	currencyDigits          CurrencyDigitsMode
	currencySymbolVariant   CurrencySymbolVariant
	currencySymbolText      string
	roundingMode            RoundingMode
	fractionalDigits        *int
	minimumGroupingDigits   *int
	maximumIntegerDigits    *int
	roundNearest            string
	patternSign             bool // true = negative
	isCurrencyFormat        bool
	compactKind             CompactKind
	isCompact               bool
	suppressCurrencySpacing bool
	wrapper                 WrapFunc
}

// resolveOptions validates and merges caller Options onto backend defaults,
// producing the resolvedOptions every downstream component reads from.
func resolveOptions(v Value, backend Backend, opts Options) (resolvedOptions, error) {
	const op = "Format"

	locale := NewLocale(opts.Locale)
	if opts.Locale != "" && !backend.HasLocale(locale) {
		return resolvedOptions{}, UnknownLocaleError{Op: op, LocaleID: opts.Locale}
	}

	numSys := opts.NumberSystem
	if numSys == "" {
		numSys = backend.DefaultNumberSystem(locale)
	}
	numSysData, ok := backend.NumberSystem(locale, numSys)
	if !ok {
		return resolvedOptions{}, UnknownNumberSystemError{Op: op, NumberSystem: numSys}
	}
	// A caller-supplied name may be an alias (e.g. "native") that resolves to
	// a differently-named canonical system; use the canonical name for every
	// subsequent backend lookup (Symbols, Pattern, CompactBuckets) so alias
	// and canonical name share one cache/lookup key.
	if numSysData.Name != "" {
		numSys = numSysData.Name
	}

	currencyDigits := opts.CurrencyDigits
	if opts.Cash {
		currencyDigits = CurrencyDigitsCash
	}

	var currency *Currency
	switch {
	case opts.Currency.Record != nil:
		currency = opts.Currency.Record
	case opts.Currency.FromLocale:
		return resolvedOptions{}, FormatError{Op: op, Message: "currency :from_locale is not supported by this backend without a territory-to-currency mapping"}
	case opts.Currency.Code != "":
		c, ok := backend.Currency(locale, opts.Currency.Code)
		if !ok {
			return resolvedOptions{}, UnknownCurrencyError{Op: op, CurrencyCode: opts.Currency.Code}
		}
		currency = &c
	}

	format := opts.Format
	if format.Kind == FormatStandard && format.Pattern == "" && currency != nil {
		// A currency with no explicit format promotes to the locale's default
		// currency format variant (:currency or :accounting).
		if backend.DefaultCurrencyFormat(locale) == "accounting" {
			format = FormatSpec{Kind: FormatAccounting}
		} else {
			format = FormatSpec{Kind: FormatCurrency}
		}
	}

	if format.Kind == FormatShort || format.Kind == FormatLong {
		if currency != nil {
			if format.Kind == FormatShort {
				format = FormatSpec{Kind: FormatCurrencyShort}
			} else {
				format = FormatSpec{Kind: FormatCurrencyLong}
			}
		} else {
			if format.Kind == FormatShort {
				format = FormatSpec{Kind: FormatDecimalShort}
			} else {
				format = FormatSpec{Kind: FormatDecimalLong}
			}
		}
	}

	isCompact := false
	var compactKind CompactKind
	switch format.Kind {
	case FormatDecimalShort:
		isCompact, compactKind = true, CompactDecimalShort
	case FormatDecimalLong:
		isCompact, compactKind = true, CompactDecimalLong
	case FormatCurrencyShort:
		isCompact, compactKind = true, CompactCurrencyShort
	case FormatCurrencyLong:
		isCompact, compactKind = true, CompactCurrencyLong
	}

	isCurrencyFormat := false
	var patternString string

	switch format.Kind {
	case FormatPattern:
		patternString = format.Pattern
		isCurrencyFormat = strings.Contains(patternString, "¤")
	case FormatRBNF:
		return resolvedOptions{}, FormatError{Op: op, Message: "format \"" + format.Name + "\" is an RBNF ruleset and must be handled by the external RBNF formatter"}
	case FormatDecimalShort, FormatDecimalLong, FormatCurrencyShort, FormatCurrencyLong:
		// The compact pattern itself is resolved later, per magnitude
		// bucket, by the compact selector; here we only need the plain
		// format name recorded for currency-ness.
		isCurrencyFormat = format.Kind == FormatCurrencyShort || format.Kind == FormatCurrencyLong
	default:
		name, ok := formatNames[format.Kind]
		if !ok {
			return resolvedOptions{}, InvalidOptionError{Op: op, Option: "format", Message: "unrecognized format"}
		}
		p, ok := backend.Pattern(locale, numSys, name)
		if !ok {
			return resolvedOptions{}, UnknownFormatError{Op: op, FormatName: name, LocaleID: locale.String(), NumberSystem: numSys}
		}
		patternString = p
		isCurrencyFormat = strings.Contains(patternString, "¤") ||
			format.Kind == FormatCurrency || format.Kind == FormatAccounting ||
			format.Kind == FormatCurrencyNoSymbol || format.Kind == FormatAccountingNoSymbol ||
			format.Kind == FormatCurrencyAlphaNextToNumber || format.Kind == FormatAccountingAlphaNextToNumber
	}

	if !isCompact && strings.Contains(patternString, "¤") && currency == nil {
		return resolvedOptions{}, FormatError{Op: op, Message: "currency format \"" + patternString + "\" requires that currency be specified"}
	}
	if isCompact && (compactKind == CompactCurrencyShort || compactKind == CompactCurrencyLong) && currency == nil {
		return resolvedOptions{}, FormatError{Op: op, Message: "currency format \"" + formatNames[format.Kind] + "\" requires that currency be specified"}
	}

	symbolVariant := opts.CurrencySymbolVariant
	symbolText := opts.CurrencySymbolText

	// Alpha-next-to-number rule: when the effective currency format is
	// :currency or :accounting, the symbol begins/ends with a letter, and ¤
	// sits directly adjacent to the number (no space token between), switch
	// to the *_alpha_next_to_number variant and disable currency spacing.
	suppressSpacing := false
	if currency != nil && (format.Kind == FormatCurrency || format.Kind == FormatAccounting) {
		sym := bindCurrencySymbol(1, symbolVariant, symbolText, *currency, PluralOther)
		if !isCompact && patternAdjacentToNumber(patternString) &&
			(currencySymbolStartsWithLetter(sym) || currencySymbolEndsWithLetter(sym)) {
			suppressSpacing = true
			altName := "currency_alpha_next_to_number"
			if format.Kind == FormatAccounting {
				altName = "accounting_alpha_next_to_number"
			}
			if altPattern, ok := backend.Pattern(locale, numSys, altName); ok {
				patternString = altPattern
			}
		}
	}

	negative := v.IsNegativeForSign()

	return resolvedOptions{
		locale:                  locale,
		numberSystem:            numSys,
		effectivePatternString:  patternString,
		currency:                currency,
		currencyDigits:          currencyDigits,
		currencySymbolVariant:   symbolVariant,
		currencySymbolText:      symbolText,
		roundingMode:            opts.RoundingMode,
		fractionalDigits:        opts.FractionalDigits,
		minimumGroupingDigits:   opts.MinimumGroupingDigits,
		maximumIntegerDigits:    opts.MaximumIntegerDigits,
		roundNearest:            opts.RoundNearest,
		patternSign:             negative,
		isCurrencyFormat:        isCurrencyFormat || isCompact && (compactKind == CompactCurrencyShort || compactKind == CompactCurrencyLong),
		compactKind:             compactKind,
		isCompact:               isCompact,
		suppressCurrencySpacing: suppressSpacing,
		wrapper:                 opts.Wrapper,
	}, nil
}

// patternAdjacentToNumber reports whether pattern has ¤ directly touching
// the number section (no literal space/token between), the condition for
// the alpha-next-to-number rule.
func patternAdjacentToNumber(pattern string) bool {
	return strings.Contains(pattern, "¤#") || strings.Contains(pattern, "¤0") ||
		strings.Contains(pattern, "0¤") || strings.Contains(pattern, "#¤")
}

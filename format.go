// Copyright (c) 2020 Bojan Zivanovic and contributors
// SPDX-License-Identifier: MIT

package numfmt

import (
	"github.com/cockroachdb/apd/v3"
)

// Format renders value as locale-appropriate text, resolving options,
// compiling (and caching) the effective pattern, computing rounded digits,
// and assembling the final string with currency and compact handling along
// the way. backend supplies all CLDR data; value may be any of int, int32,
// int64, uint, uint32, uint64, float32, float64, *apd.Decimal, or apd.Decimal.
func Format(value interface{}, backend Backend, opts Options) (string, error) {
	const op = "Format"

	v, err := coerceValue(value)
	if err != nil {
		return "", err
	}

	resolved, err := resolveOptions(v, backend, opts)
	if err != nil {
		return "", err
	}

	symbols, ok := backend.Symbols(resolved.locale, resolved.numberSystem)
	if !ok {
		return "", UnknownNumberSystemError{Op: op, NumberSystem: resolved.numberSystem}
	}
	numSys, _ := backend.NumberSystem(resolved.locale, resolved.numberSystem)

	if resolved.isCompact {
		if resolved.compactKind == CompactCurrencyLong {
			return formatCurrencyLong(v, backend, resolved, symbols, numSys)
		}
		return formatCompact(v, backend, resolved, symbols, numSys)
	}

	meta, err := defaultPatternCache.Compile(resolved.effectivePatternString)
	if err != nil {
		return "", err
	}

	return formatWithPattern(v, meta, backend, resolved, symbols, numSys)
}

// MustFormat is like Format but panics on error, for callers that have
// already validated their inputs.
func MustFormat(value interface{}, backend Backend, opts Options) string {
	s, err := Format(value, backend, opts)
	if err != nil {
		panic(err)
	}
	return s
}

// coerceValue converts an arbitrary caller-supplied numeric value into the
// engine's canonical Value representation.
func coerceValue(value interface{}) (Value, error) {
	switch n := value.(type) {
	case int:
		return NewValueFromInt64(int64(n)), nil
	case int8:
		return NewValueFromInt64(int64(n)), nil
	case int16:
		return NewValueFromInt64(int64(n)), nil
	case int32:
		return NewValueFromInt64(int64(n)), nil
	case int64:
		return NewValueFromInt64(n), nil
	case uint:
		return NewValueFromUint64(uint64(n)), nil
	case uint8:
		return NewValueFromUint64(uint64(n)), nil
	case uint16:
		return NewValueFromUint64(uint64(n)), nil
	case uint32:
		return NewValueFromUint64(uint64(n)), nil
	case uint64:
		return NewValueFromUint64(n), nil
	case float32:
		return NewValueFromFloat64(float64(n)), nil
	case float64:
		return NewValueFromFloat64(n), nil
	case apd.Decimal:
		return NewValueFromDecimal(&n), nil
	case *apd.Decimal:
		if n == nil {
			return Value{}, InvalidOptionError{Op: "Format", Option: "value", Message: "nil *apd.Decimal"}
		}
		return NewValueFromDecimal(n), nil
	default:
		return Value{}, InvalidOptionError{Op: "Format", Option: "value", Message: "unsupported value type"}
	}
}

// formatWithPattern computes digits and assembles the final string against
// a single, already-selected pattern (the non-compact path).
func formatWithPattern(v Value, meta PatternMetadata, backend Backend, resolved resolvedOptions, symbols Symbols, numSys NumberSystemData) (string, error) {
	sub := meta.Positive
	if resolved.patternSign {
		sub = meta.Negative
	}

	applyCurrencyOverrides(&sub, resolved)

	digitOpts := ComputeDigitsOptions{
		Mode:                 resolved.roundingMode,
		FractionalDigits:     resolved.fractionalDigits,
		RoundNearest:         resolved.roundNearest,
		MaximumIntegerDigits: resolved.maximumIntegerDigits,
	}
	digits, err := ComputeDigits(v, sub, digitOpts)
	if err != nil {
		return "", err
	}

	currencySymbol := ""
	if resolved.isCurrencyFormat && resolved.currency != nil {
		count := sub.currencyPlaceholderCount()
		if count == 0 {
			count = 1
		}
		category := backendPluralOrDefault(backend, resolved, digits)
		currencySymbol = bindCurrencySymbol(count, resolved.currencySymbolVariant, resolved.currencySymbolText, *resolved.currency, category)
	}

	return assemble(assembleInput{
		Pattern:         sub,
		Digits:          digits,
		Symbols:         symbols,
		NumberSystem:    numSys,
		IsCurrency:      resolved.isCurrencyFormat,
		CurrencySymbol:  currencySymbol,
		MinGroupDigits:  effectiveMinGroupingDigits(resolved, symbols),
		SuppressSpacing: resolved.suppressCurrencySpacing,
		Wrapper:         resolved.wrapper,
	}), nil
}

// effectiveMinGroupingDigits resolves the grouping threshold addend: the
// caller's override when present, the locale's default otherwise.
func effectiveMinGroupingDigits(resolved resolvedOptions, symbols Symbols) int {
	if resolved.minimumGroupingDigits != nil {
		return *resolved.minimumGroupingDigits
	}
	return symbols.MinGroupingDigits
}

// formatCompact implements the compact formatting path: pick
// a magnitude bucket, divide, evaluate the plural category on a provisional
// rounding, select the bucket's plural-specific pattern (or fall back to the
// standard format on a "0" no-transform pattern), then format as usual
// against that pattern.
func formatCompact(v Value, backend Backend, resolved resolvedOptions, symbols Symbols, numSys NumberSystemData) (string, error) {
	buckets, ok := backend.CompactBuckets(resolved.locale, resolved.numberSystem, resolved.compactKind)
	bucket, found := selectCompactBucket(v, buckets)
	if !ok || !found {
		return formatStandardFallback(v, backend, resolved, symbols, numSys)
	}

	divided, err := applyCompactDivisor(v, bucket)
	if err != nil {
		return "", err
	}

	provisionalFrac := 0
	if resolved.fractionalDigits != nil {
		provisionalFrac = *resolved.fractionalDigits
	}
	operand := compactPluralOperand(divided, provisionalFrac)
	category := backend.Plural(resolved.locale, operand)

	patternString, noTransform := pickCompactPattern(bucket, category)
	if noTransform {
		return formatStandardFallback(v, backend, resolved, symbols, numSys)
	}

	meta, err := defaultPatternCache.Compile(patternString)
	if err != nil {
		return "", err
	}

	return formatCompactWithPattern(divided, v, meta, backend, resolved, symbols, numSys)
}

// formatStandardFallback renders v using the locale's plain :standard (or
// :currency, when a currency is present) pattern, used when no compact
// bucket applies or a bucket's pattern is "0".
func formatStandardFallback(v Value, backend Backend, resolved resolvedOptions, symbols Symbols, numSys NumberSystemData) (string, error) {
	name := "standard"
	if resolved.isCurrencyFormat {
		name = "currency"
	}
	patternString, ok := backend.Pattern(resolved.locale, resolved.numberSystem, name)
	if !ok {
		return "", UnknownFormatError{Op: "Format", FormatName: name, LocaleID: resolved.locale.String(), NumberSystem: resolved.numberSystem}
	}
	meta, err := defaultPatternCache.Compile(patternString)
	if err != nil {
		return "", err
	}
	return formatWithPattern(v, meta, backend, resolved, symbols, numSys)
}

// formatCompactWithPattern assembles a compact result: digits come from the
// already-divided value, but the sign test always uses the
// original, undivided value.
func formatCompactWithPattern(divided, original Value, meta PatternMetadata, backend Backend, resolved resolvedOptions, symbols Symbols, numSys NumberSystemData) (string, error) {
	sub := meta.Positive
	if resolved.patternSign {
		sub = meta.Negative
	}
	// Compact bucket patterns keep their own implied fraction digits; the
	// currency record's digits apply only on the standard-format fallback.

	digitOpts := ComputeDigitsOptions{
		Mode:                 resolved.roundingMode,
		FractionalDigits:     resolved.fractionalDigits,
		RoundNearest:         resolved.roundNearest,
		MaximumIntegerDigits: resolved.maximumIntegerDigits,
	}
	digits, err := ComputeDigits(divided, sub, digitOpts)
	if err != nil {
		return "", err
	}

	currencySymbol := ""
	if resolved.isCurrencyFormat && resolved.currency != nil {
		count := sub.currencyPlaceholderCount()
		if count == 0 {
			count = 1
		}
		category := backendPluralOrDefault(backend, resolved, digits)
		currencySymbol = bindCurrencySymbol(count, resolved.currencySymbolVariant, resolved.currencySymbolText, *resolved.currency, category)
	}

	return assemble(assembleInput{
		Pattern:         sub,
		Digits:          digits,
		Symbols:         symbols,
		NumberSystem:    numSys,
		IsCurrency:      resolved.isCurrencyFormat,
		CurrencySymbol:  currencySymbol,
		MinGroupDigits:  effectiveMinGroupingDigits(resolved, symbols),
		SuppressSpacing: resolved.suppressCurrencySpacing,
		Wrapper:         resolved.wrapper,
	}), nil
}

// formatCurrencyLong renders the value with the locale's standard pattern at
// the currency's fraction digits, then suffixes the pluralized long display
// name ("1,234.00 US dollars").
func formatCurrencyLong(v Value, backend Backend, resolved resolvedOptions, symbols Symbols, numSys NumberSystemData) (string, error) {
	patternString, ok := backend.Pattern(resolved.locale, resolved.numberSystem, "standard")
	if !ok {
		return "", UnknownFormatError{Op: "Format", FormatName: "standard", LocaleID: resolved.locale.String(), NumberSystem: resolved.numberSystem}
	}
	meta, err := defaultPatternCache.Compile(patternString)
	if err != nil {
		return "", err
	}

	sub := meta.Positive
	if resolved.patternSign {
		sub = meta.Negative
	}
	applyCurrencyOverrides(&sub, resolved)

	digits, err := ComputeDigits(v, sub, ComputeDigitsOptions{
		Mode:                 resolved.roundingMode,
		FractionalDigits:     resolved.fractionalDigits,
		RoundNearest:         resolved.roundNearest,
		MaximumIntegerDigits: resolved.maximumIntegerDigits,
	})
	if err != nil {
		return "", err
	}

	body := assemble(assembleInput{
		Pattern:         sub,
		Digits:          digits,
		Symbols:         symbols,
		NumberSystem:    numSys,
		IsCurrency:      true,
		MinGroupDigits:  effectiveMinGroupingDigits(resolved, symbols),
		SuppressSpacing: true,
		Wrapper:         resolved.wrapper,
	})

	category := backendPluralOrDefault(backend, resolved, digits)
	name := bindCurrencySymbol(3, CurrencySymbolDefault, "", *resolved.currency, category)
	if resolved.wrapper != nil {
		name = resolved.wrapper(name, ComponentCompactSuffix)
	}
	return body + " " + name, nil
}

// applyCurrencyOverrides implements the fraction-digit/rounding-increment
// half of currency binding: a currency format's effective digits come from
// the currency record, not the bare pattern, unless the caller supplied an
// explicit fractional_digits override.
func applyCurrencyOverrides(sub *SubPatternMetadata, resolved resolvedOptions) {
	if !resolved.isCurrencyFormat || resolved.currency == nil || resolved.fractionalDigits != nil {
		return
	}
	digits := currencyFractionDigits(resolved.currencyDigits, *resolved.currency)
	sub.MinFractionDigits = digits
	sub.MaxFractionDigits = digits
	if inc := currencyRoundingIncrement(resolved.currencyDigits, *resolved.currency); inc != "" {
		sub.RoundingIncrement = inc
	}
}

// backendPluralOrDefault evaluates the plural category of the rendered
// digits for the ¤¤¤ (display name) ladder entry. Currency display names
// are rare enough in practice that evaluating the operand from the final
// digits (rather than plumbing the backend through ComputeDigits) keeps the
// decimal engine free of a Backend dependency.
func backendPluralOrDefault(backend Backend, resolved resolvedOptions, digits Digits) PluralCategory {
	if digits.IsNaN || digits.IsInfinite {
		return PluralOther
	}
	operand := operandFromDigits(digits)
	return backend.Plural(resolved.locale, operand)
}

// operandFromDigits derives the CLDR plural operand set (TR35 §4.2) from
// already-rounded display digits.
func operandFromDigits(digits Digits) PluralOperand {
	var i int64
	for _, d := range digits.Integer {
		i = i*10 + int64(d-'0')
	}
	trimmed := trimTrailingZeros(digits.Fraction, 0)
	var f, t int64
	for _, d := range digits.Fraction {
		f = f*10 + int64(d-'0')
	}
	for _, d := range trimmed {
		t = t*10 + int64(d-'0')
	}
	n := float64(i)
	if len(digits.Fraction) > 0 {
		div := 1.0
		for range digits.Fraction {
			div *= 10
		}
		n += float64(f) / div
	}
	return PluralOperand{N: n, I: i, V: len(digits.Fraction), W: len(trimmed), F: f, T: t}
}

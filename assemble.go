// Copyright (c) 2020 Bojan Zivanovic and contributors
// SPDX-License-Identifier: MIT

package numfmt

import (
	"strconv"
	"strings"
)

// WrapFunc optionally wraps each emitted component, invoked at every
// emission boundary (prefix, digits, affix, etc.) during assembly.
type WrapFunc func(text string, tag ComponentTag) string

// ComponentTag names the kind of text a WrapFunc is invoked for.
type ComponentTag uint8

const (
	ComponentInteger ComponentTag = iota
	ComponentGroup
	ComponentDecimal
	ComponentFraction
	ComponentPlusSign
	ComponentMinusSign
	ComponentPercentSign
	ComponentPermilleSign
	ComponentExponentSeparator
	ComponentExponentSign
	ComponentExponentInteger
	ComponentCurrency
	ComponentLiteral
	ComponentCompactSuffix
)

// assembleInput bundles everything the format assembler needs: the chosen
// subpattern, the computed digits, the symbol table, and the resolved
// currency binding.
type assembleInput struct {
	Pattern        SubPatternMetadata
	Digits         Digits
	Symbols        Symbols
	NumberSystem   NumberSystemData
	IsCurrency     bool
	CurrencySymbol string // already resolved by bindCurrencySymbol; "" if no currency
	MinGroupDigits int
	// SuppressSpacing disables currency spacing insertion, set when the
	// alpha-next-to-number rule already switched to a pattern variant that
	// handles the spacing itself.
	SuppressSpacing bool
	Wrapper         WrapFunc
}

// assemble composes the final formatted string from a subpattern, its
// computed digits, and symbol/currency data (subpattern selection happens
// before this call; the caller passes the already-chosen Pattern).
func assemble(in assembleInput) string {
	wrap := in.Wrapper
	if wrap == nil {
		wrap = func(text string, _ ComponentTag) string { return text }
	}

	body := assembleNumberBody(in, wrap)
	prefix := assembleAffix(in.Pattern.Prefix, in, wrap)
	suffix := assembleAffix(in.Pattern.Suffix, in, wrap)

	prefix, body, suffix = applyCurrencySpacing(in, prefix, body, suffix)

	result := prefix + body + suffix
	if in.Pattern.PaddingWidth > 0 && in.Pattern.PaddingChar != 0 {
		result = applyPadding(in.Pattern, prefix, body, suffix)
	}

	return result
}

// assembleNumberBody builds the number body: mapped integer digits with
// grouping, optional decimal separator and fraction, and optional
// scientific exponent.
func assembleNumberBody(in assembleInput, wrap WrapFunc) string {
	if in.Digits.IsNaN {
		return wrap(in.Symbols.NaN, ComponentLiteral)
	}
	if in.Digits.IsInfinite {
		return wrap(in.Symbols.Infinity, ComponentLiteral)
	}

	b := strings.Builder{}
	integer := mapDigits(in.Digits.Integer, in.NumberSystem)
	grouped := groupIntegerDigits(integer, in.Pattern, in.Symbols, in.IsCurrency, in.MinGroupDigits)
	b.WriteString(wrap(grouped, ComponentInteger))

	if len(in.Digits.Fraction) > 0 {
		b.WriteString(wrap(in.Symbols.decimalSeparator(in.IsCurrency), ComponentDecimal))
		b.WriteString(wrap(mapDigits(in.Digits.Fraction, in.NumberSystem), ComponentFraction))
	}

	if in.Digits.HasExponent {
		b.WriteString(wrap(in.Symbols.Exponent, ComponentExponentSeparator))
		if in.Digits.Exponent < 0 {
			b.WriteString(wrap(in.Symbols.Minus, ComponentExponentSign))
		} else if in.Pattern.ExponentShowPositive {
			b.WriteString(wrap(in.Symbols.Plus, ComponentExponentSign))
		}
		expDigits := strconv.Itoa(abs(in.Digits.Exponent))
		if len(expDigits) < in.Pattern.ExponentDigits {
			expDigits = strings.Repeat("0", in.Pattern.ExponentDigits-len(expDigits)) + expDigits
		}
		b.WriteString(wrap(mapDigits([]byte(expDigits), in.NumberSystem), ComponentExponentInteger))
	}

	return b.String()
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// groupIntegerDigits inserts the group separator at GroupingPrimary, then
// every GroupingSecondary thereafter, right to left, only if the total
// integer digit count meets the grouping threshold.
func groupIntegerDigits(digits string, pattern SubPatternMetadata, symbols Symbols, isCurrency bool, minGroupDigits int) string {
	if pattern.GroupingPrimary == 0 {
		return digits
	}
	// Count and slice by rune: mapped digits of non-Latin number systems are
	// multi-byte in UTF-8.
	runes := []rune(digits)
	numDigits := len(runes)
	threshold := pattern.GroupingPrimary + minGroupDigits
	if numDigits < threshold {
		return digits
	}

	primary := pattern.GroupingPrimary
	secondary := pattern.GroupingSecondary
	if secondary == 0 {
		secondary = primary
	}

	var groups []string
	groups = append(groups, string(runes[numDigits-primary:numDigits]))
	for i := numDigits - primary; i > 0; i -= secondary {
		low := i - secondary
		if low < 0 {
			low = 0
		}
		groups = append(groups, string(runes[low:i]))
	}
	for i, j := 0, len(groups)-1; i < j; i, j = i+1, j-1 {
		groups[i], groups[j] = groups[j], groups[i]
	}

	return strings.Join(groups, symbols.groupSeparator(isCurrency))
}

// mapDigits maps ASCII digits through the locale's localized digit set.
// Latin number systems are a no-op fast path.
func mapDigits(digits []byte, numSys NumberSystemData) string {
	if numSys.Name == "" || numSys.Name == "latn" {
		return string(digits)
	}
	b := strings.Builder{}
	b.Grow(len(digits))
	for _, d := range digits {
		idx := int(d - '0')
		if idx >= 0 && idx <= 9 {
			b.WriteRune(numSys.Digits[idx])
		} else {
			b.WriteByte(d)
		}
	}
	return b.String()
}

// assembleAffix resolves one compiled affix (prefix or suffix) into text,
// substituting the structured placeholder tokens.
func assembleAffix(tokens []AffixToken, in assembleInput, wrap WrapFunc) string {
	b := strings.Builder{}
	for _, tok := range tokens {
		switch tok.Kind {
		case AffixLiteral:
			b.WriteString(wrap(tok.Literal, ComponentLiteral))
		case AffixCurrency:
			b.WriteString(wrap(in.CurrencySymbol, ComponentCurrency))
		case AffixPercent:
			b.WriteString(wrap(in.Symbols.Percent, ComponentPercentSign))
		case AffixPermille:
			b.WriteString(wrap(in.Symbols.Permille, ComponentPermilleSign))
		case AffixMinusSign:
			b.WriteString(wrap(in.Symbols.Minus, ComponentMinusSign))
		case AffixPlusSign:
			b.WriteString(wrap(in.Symbols.Plus, ComponentPlusSign))
		}
	}
	return b.String()
}

// applyCurrencySpacing inserts the locale's insert-between string when the
// character adjacent to ¤ on the number side is a letter and the adjacent
// character on the other side is a digit (or vice versa, per the locale's
// rule classes). Only applies to currency formats, and only for a ¤ that
// sits at the immediate prefix/suffix boundary and did not already have a
// separator supplied by the pattern itself.
func applyCurrencySpacing(in assembleInput, prefix, body, suffix string) (string, string, string) {
	if !in.IsCurrency || in.CurrencySymbol == "" || in.SuppressSpacing {
		return prefix, body, suffix
	}

	if hasTrailingCurrencyToken(in.Pattern.Prefix) {
		currencyLast := lastRune(in.CurrencySymbol)
		bodyFirst := firstRune(body)
		rule := in.Symbols.Spacing.BeforeCurrency
		if ins := currencySpacingInsert(rule, currencyLast, bodyFirst); ins != "" {
			prefix = prefix + ins
		}
	}
	if hasLeadingCurrencyToken(in.Pattern.Suffix) {
		bodyLast := lastRune(body)
		currencyFirst := firstRune(in.CurrencySymbol)
		rule := in.Symbols.Spacing.AfterCurrency
		if ins := currencySpacingInsert(rule, currencyFirst, bodyLast); ins != "" {
			suffix = ins + suffix
		}
	}

	return prefix, body, suffix
}

func hasTrailingCurrencyToken(tokens []AffixToken) bool {
	return len(tokens) > 0 && tokens[len(tokens)-1].Kind == AffixCurrency
}

func hasLeadingCurrencyToken(tokens []AffixToken) bool {
	return len(tokens) > 0 && tokens[0].Kind == AffixCurrency
}

func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return 0
}

func lastRune(s string) rune {
	var last rune
	for _, r := range s {
		last = r
	}
	return last
}

// currencySpacingInsert decides whether to insert rule.InsertBetween between
// a currency symbol and an adjacent number.
func currencySpacingInsert(rule CurrencySpacingRule, currencyAdjacent, numberAdjacent rune) string {
	if rule.MatchCurrency.matches(currencyAdjacent) && rule.MatchSurrounding.matches(numberAdjacent) {
		return rule.InsertBetween
	}
	return ""
}

// applyPadding inserts the pattern's padding character at its configured
// position until the visible width reaches PaddingWidth.
func applyPadding(pattern SubPatternMetadata, prefix, body, suffix string) string {
	current := prefix + body + suffix
	width := runeLen(current)
	if width >= pattern.PaddingWidth {
		return current
	}
	pad := strings.Repeat(string(pattern.PaddingChar), pattern.PaddingWidth-width)

	switch pattern.PaddingPosition {
	case PadBeforePrefix:
		return pad + prefix + body + suffix
	case PadAfterPrefix:
		return prefix + pad + body + suffix
	case PadBeforeSuffix:
		return prefix + body + pad + suffix
	case PadAfterSuffix:
		return prefix + body + suffix + pad
	default:
		return current
	}
}

func runeLen(s string) int {
	n := 0
	for range s {
		n++
	}
	return n
}

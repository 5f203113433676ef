// Copyright (c) 2020 Bojan Zivanovic and contributors
// SPDX-License-Identifier: MIT

package numfmt

import (
	"fmt"
	"strings"
)

// PaddingPosition identifies where a pattern's padding character is inserted
// relative to the prefix/number/suffix.
type PaddingPosition uint8

const (
	PadNone PaddingPosition = iota
	PadBeforePrefix
	PadAfterPrefix
	PadBeforeSuffix
	PadAfterSuffix
)

// AffixTokenKind classifies one token of a compiled prefix or suffix.
type AffixTokenKind uint8

const (
	AffixLiteral AffixTokenKind = iota
	AffixCurrency
	AffixPercent
	AffixPermille
	AffixMinusSign
	AffixPlusSign
)

// AffixToken is one semantic unit of a prefix or suffix. The assembler
// substitutes Currency/Percent/Permille/MinusSign/PlusSign tokens with
// localized text; Literal tokens are copied verbatim.
type AffixToken struct {
	Kind    AffixTokenKind
	Literal string // set when Kind == AffixLiteral
	Count   int    // consecutive ¤ count, set when Kind == AffixCurrency (1-4)
}

// SubPatternMetadata is the compiled form of one (positive or negative)
// CLDR subpattern.
type SubPatternMetadata struct {
	Prefix []AffixToken
	Suffix []AffixToken

	MinIntegerDigits int
	MaxIntegerDigits int // 0 = unlimited

	MinFractionDigits int
	MaxFractionDigits int

	MinSignificantDigits int // 0 = not using significant digits
	MaxSignificantDigits int

	// RoundingIncrement is a decimal string ("" or "0" = none).
	RoundingIncrement string

	GroupingPrimary   int // 0 = no grouping
	GroupingSecondary int

	ExponentDigits       int // 0 = not scientific
	ExponentShowPositive bool

	PaddingChar     rune
	PaddingWidth    int
	PaddingPosition PaddingPosition

	// Multiplier is 100 for a percent pattern, 1000 for a permille pattern,
	// 1 otherwise.
	Multiplier int

	// NoDecimalPoint is true when the subpattern's number section has no '.'
	// at all (as opposed to a '.' followed by zero digits). CLDR's scientific
	// patterns (e.g. "#E0") use this to mean "do not constrain the fraction
	// at all", rather than "exactly zero fraction digits".
	NoDecimalPoint bool
}

// currencyPlaceholderCount returns the ¤-run count of the first currency
// placeholder in the prefix, or else in the suffix (0 if there is none);
// used by currency binding.
func (s SubPatternMetadata) currencyPlaceholderCount() int {
	for _, tok := range s.Prefix {
		if tok.Kind == AffixCurrency {
			return tok.Count
		}
	}
	for _, tok := range s.Suffix {
		if tok.Kind == AffixCurrency {
			return tok.Count
		}
	}
	return 0
}

// PatternMetadata is the compiled, immutable, cacheable output of parsing a
// CLDR pattern string.
type PatternMetadata struct {
	Positive SubPatternMetadata
	Negative SubPatternMetadata
	Source   string
}

// numPatternRune reports whether r can appear in a subpattern's number
// section (digits, grouping, decimal point, significant-digit marker, or
// the exponent marker).
func numPatternRune(r rune) bool {
	switch {
	case r >= '0' && r <= '9':
		return true
	case r == '#', r == '@', r == ',', r == '.', r == 'E':
		return true
	}
	return false
}

// CompilePattern parses a CLDR decimal format pattern into
// structured metadata. The result is immutable and safe to cache by pattern
// string; see PatternCache.
func CompilePattern(pattern string) (PatternMetadata, error) {
	subs, err := splitSubpatterns(pattern)
	if err != nil {
		return PatternMetadata{}, err
	}

	positive, err := compileSubPattern(subs[0])
	if err != nil {
		return PatternMetadata{}, err
	}

	meta := PatternMetadata{Positive: positive, Source: pattern}
	if len(subs) == 2 {
		negative, err := compileSubPattern(subs[1])
		if err != nil {
			return PatternMetadata{}, err
		}
		meta.Negative = negative
	} else {
		meta.Negative = deriveNegative(positive)
	}

	return meta, nil
}

// deriveNegative implements the invariant: "if negative is
// absent it is derived from positive by prepending minus-sign token".
func deriveNegative(positive SubPatternMetadata) SubPatternMetadata {
	negative := positive
	negative.Prefix = make([]AffixToken, 0, len(positive.Prefix)+1)
	negative.Prefix = append(negative.Prefix, AffixToken{Kind: AffixMinusSign})
	negative.Prefix = append(negative.Prefix, positive.Prefix...)
	negative.Suffix = append([]AffixToken(nil), positive.Suffix...)
	return negative
}

// splitSubpatterns splits a pattern on its top-level (unquoted) semicolon.
func splitSubpatterns(pattern string) ([]string, error) {
	runes := []rune(pattern)
	inQuote := false
	splitAt := -1
	for i, r := range runes {
		if r == '\'' {
			inQuote = !inQuote
			continue
		}
		if r == ';' && !inQuote {
			splitAt = i
			break
		}
	}
	if inQuote {
		return nil, FormatCompileError{Op: "CompilePattern", Pattern: pattern, Reason: "unmatched quote"}
	}
	if splitAt < 0 {
		return []string{pattern}, nil
	}
	return []string{string(runes[:splitAt]), string(runes[splitAt+1:])}, nil
}

// compileSubPattern compiles one prefix/number/suffix subpattern.
func compileSubPattern(sub string) (SubPatternMetadata, error) {
	runes := []rune(sub)
	n := len(runes)

	prefixTokens := []AffixToken{}
	suffixTokens := []AffixToken{}
	var numberRunes []rune

	var padChar rune
	padPos := PadNone
	sawPad := false

	section := 0 // 0 = prefix, 1 = number, 2 = suffix
	i := 0

	appendLiteral := func(tokens []AffixToken, r rune) []AffixToken {
		if len(tokens) > 0 && tokens[len(tokens)-1].Kind == AffixLiteral {
			tokens[len(tokens)-1].Literal += string(r)
			return tokens
		}
		return append(tokens, AffixToken{Kind: AffixLiteral, Literal: string(r)})
	}

	for i < n {
		r := runes[i]

		if section == 1 {
			// A '+' directly after 'E' is the exponent's show-positive sign.
			isExpSign := r == '+' && len(numberRunes) > 0 && numberRunes[len(numberRunes)-1] == 'E'
			if numPatternRune(r) || isExpSign {
				numberRunes = append(numberRunes, r)
				i++
				continue
			}
			section = 2
			continue
		}

		// section == 0 (prefix) or section == 2 (suffix).
		switch r {
		case '\'':
			j := i + 1
			for j < n && runes[j] != '\'' {
				j++
			}
			if j >= n {
				return SubPatternMetadata{}, FormatCompileError{Op: "CompilePattern", Pattern: sub, Reason: "unmatched quote"}
			}
			text := string(runes[i+1 : j])
			if text == "" {
				text = "'" // '' => literal apostrophe
			}
			for _, tr := range text {
				if section == 0 {
					prefixTokens = appendLiteral(prefixTokens, tr)
				} else {
					suffixTokens = appendLiteral(suffixTokens, tr)
				}
			}
			i = j + 1
		case '*':
			if i+1 >= n {
				return SubPatternMetadata{}, FormatCompileError{Op: "CompilePattern", Pattern: sub, Reason: "padding '*' without a following character"}
			}
			if sawPad {
				return SubPatternMetadata{}, FormatCompileError{Op: "CompilePattern", Pattern: sub, Reason: "multiple padding markers"}
			}
			sawPad = true
			padChar = runes[i+1]
			if section == 0 {
				if len(prefixTokens) == 0 && i == 0 {
					padPos = PadBeforePrefix
				} else {
					padPos = PadAfterPrefix
				}
			} else {
				if len(suffixTokens) == 0 {
					padPos = PadBeforeSuffix
				} else {
					padPos = PadAfterSuffix
				}
			}
			i += 2
		case '¤': // ¤
			j := i
			for j < n && runes[j] == '¤' {
				j++
			}
			count := j - i
			if count > 4 {
				count = 4
			}
			if section == 0 {
				prefixTokens = append(prefixTokens, AffixToken{Kind: AffixCurrency, Count: count})
			} else {
				suffixTokens = append(suffixTokens, AffixToken{Kind: AffixCurrency, Count: count})
			}
			i = j
		case '%':
			if section == 0 {
				prefixTokens = append(prefixTokens, AffixToken{Kind: AffixPercent})
			} else {
				suffixTokens = append(suffixTokens, AffixToken{Kind: AffixPercent})
			}
			i++
		case '‰':
			if section == 0 {
				prefixTokens = append(prefixTokens, AffixToken{Kind: AffixPermille})
			} else {
				suffixTokens = append(suffixTokens, AffixToken{Kind: AffixPermille})
			}
			i++
		case '-':
			if section == 0 {
				prefixTokens = append(prefixTokens, AffixToken{Kind: AffixMinusSign})
			} else {
				suffixTokens = append(suffixTokens, AffixToken{Kind: AffixMinusSign})
			}
			i++
		case '+':
			if section == 0 {
				prefixTokens = append(prefixTokens, AffixToken{Kind: AffixPlusSign})
			} else {
				suffixTokens = append(suffixTokens, AffixToken{Kind: AffixPlusSign})
			}
			i++
		default:
			if section == 0 && numPatternRune(r) {
				section = 1
				continue
			}
			if section == 0 {
				prefixTokens = appendLiteral(prefixTokens, r)
			} else {
				suffixTokens = appendLiteral(suffixTokens, r)
			}
			i++
		}
	}

	meta, err := parseNumberSection(string(numberRunes), sub)
	if err != nil {
		return SubPatternMetadata{}, err
	}
	meta.Prefix = prefixTokens
	meta.Suffix = suffixTokens
	meta.PaddingChar = padChar
	meta.PaddingPosition = padPos
	if sawPad {
		// The target width is the rune length of the subpattern itself,
		// not counting the two-rune "*X" padding marker.
		meta.PaddingWidth = padWidthEstimate(sub)
	}

	for _, tok := range prefixTokens {
		if tok.Kind == AffixPercent {
			meta.Multiplier = 100
		} else if tok.Kind == AffixPermille {
			meta.Multiplier = 1000
		}
	}
	for _, tok := range suffixTokens {
		if tok.Kind == AffixPercent {
			meta.Multiplier = 100
		} else if tok.Kind == AffixPermille {
			meta.Multiplier = 1000
		}
	}
	if meta.Multiplier == 0 {
		meta.Multiplier = 1
	}

	return meta, nil
}

// padWidthEstimate counts the non-padding-marker runes of the subpattern,
// which is the effective width padding expands to.
func padWidthEstimate(sub string) int {
	width := 0
	runes := []rune(sub)
	for i := 0; i < len(runes); i++ {
		if runes[i] == '*' && i+1 < len(runes) {
			i++
			continue
		}
		width++
	}
	return width
}

// parseNumberSection parses the number portion of a subpattern (digits,
// grouping commas, decimal point, significant-digit markers, exponent) into
// the digit-count and rounding fields of SubPatternMetadata.
func parseNumberSection(num string, fullSub string) (SubPatternMetadata, error) {
	meta := SubPatternMetadata{}

	mainPart := num
	if idx := strings.IndexRune(num, 'E'); idx >= 0 {
		mainPart = num[:idx]
		expPart := num[idx+1:]
		if expPart == "" {
			return meta, FormatCompileError{Op: "CompilePattern", Pattern: fullSub, Reason: "'E' without trailing exponent digits"}
		}
		showPlus := false
		digitStart := 0
		if expPart[0] == '+' {
			showPlus = true
			digitStart = 1
		} else if expPart[0] == '-' {
			digitStart = 1
		}
		rest := expPart[digitStart:]
		if rest == "" {
			return meta, FormatCompileError{Op: "CompilePattern", Pattern: fullSub, Reason: "'E' without trailing exponent digits"}
		}
		if strings.ContainsAny(rest, "+-") {
			return meta, FormatCompileError{Op: "CompilePattern", Pattern: fullSub, Reason: "two exponent signs"}
		}
		for _, r := range rest {
			if r != '0' {
				return meta, FormatCompileError{Op: "CompilePattern", Pattern: fullSub, Reason: "non-digit in exponent"}
			}
		}
		meta.ExponentDigits = len(rest)
		meta.ExponentShowPositive = showPlus
	}

	intPart := mainPart
	fracPart := ""
	if idx := strings.IndexRune(mainPart, '.'); idx >= 0 {
		intPart = mainPart[:idx]
		fracPart = mainPart[idx+1:]
		if strings.ContainsRune(fracPart, '.') {
			return meta, FormatCompileError{Op: "CompilePattern", Pattern: fullSub, Reason: "two decimal points"}
		}
	} else {
		meta.NoDecimalPoint = true
	}
	if strings.ContainsRune(fracPart, ',') {
		return meta, FormatCompileError{Op: "CompilePattern", Pattern: fullSub, Reason: "grouping separator inside fraction part"}
	}

	hasAt := strings.ContainsRune(intPart, '@') || strings.ContainsRune(fracPart, '@')
	hasZero := strings.ContainsRune(intPart, '0') || strings.ContainsRune(fracPart, '0')
	if hasAt && hasZero {
		return meta, FormatCompileError{Op: "CompilePattern", Pattern: fullSub, Reason: "significant-digit marker '@' mixed with '0'/'#' digits"}
	}

	// Grouping: walk intPart right-to-left, splitting on commas.
	intDigits := make([]rune, 0, len(intPart))
	var groupSizes []int
	counter := 0
	intRunes := []rune(intPart)
	for k := len(intRunes) - 1; k >= 0; k-- {
		r := intRunes[k]
		if r == ',' {
			groupSizes = append(groupSizes, counter)
			counter = 0
			continue
		}
		counter++
		intDigits = append([]rune{r}, intDigits...)
	}
	if len(groupSizes) > 0 {
		meta.GroupingPrimary = groupSizes[0]
		if len(groupSizes) > 1 {
			meta.GroupingSecondary = groupSizes[1]
		} else {
			meta.GroupingSecondary = groupSizes[0]
		}
	}

	if hasAt {
		meta.MinSignificantDigits = strings.Count(intPart, "@") + strings.Count(fracPart, "@")
		combined := intPart + fracPart
		trailingHashes := 0
		for k := len(combined) - 1; k >= 0; k-- {
			if combined[k] == '#' {
				trailingHashes++
				continue
			}
			break
		}
		meta.MaxSignificantDigits = meta.MinSignificantDigits + trailingHashes
		meta.MinIntegerDigits = 1
		meta.MaxIntegerDigits = 0
	} else {
		meta.MinIntegerDigits = strings.Count(string(intDigits), "0")
		meta.MinFractionDigits = strings.Count(fracPart, "0")
		meta.MaxFractionDigits = meta.MinFractionDigits + strings.Count(fracPart, "#")

		if meta.ExponentDigits > 0 && meta.MinIntegerDigits > 1 {
			meta.MaxIntegerDigits = meta.MinIntegerDigits + strings.Count(string(intDigits), "#")
		}
	}

	// Rounding increment: preserve 1-9 digits, zero out 0/#.
	if hasRoundingDigit(intPart) || hasRoundingDigit(fracPart) {
		intInc := strings.TrimLeft(zeroOutPatternDigits(string(intDigits)), "0")
		fracInc := zeroOutPatternDigits(fracPart)
		if intInc == "" {
			intInc = "0"
		}
		inc := intInc
		if fracInc != "" {
			inc += "." + fracInc
		}
		meta.RoundingIncrement = inc
	}

	return meta, nil
}

// hasRoundingDigit reports whether s contains a literal 1-9 digit (as
// opposed to the '0'/'#' pattern placeholders), which signals a rounding
// increment.
func hasRoundingDigit(s string) bool {
	for _, r := range s {
		if r >= '1' && r <= '9' {
			return true
		}
	}
	return false
}

// zeroOutPatternDigits replaces '0' and '#' with '0', keeping any literal
// 1-9 digit as-is, to build the rounding-increment digit string.
func zeroOutPatternDigits(s string) string {
	b := strings.Builder{}
	for _, r := range s {
		switch {
		case r == '0' || r == '#':
			b.WriteByte('0')
		case r >= '1' && r <= '9':
			b.WriteRune(r)
		}
	}
	return b.String()
}

// String reproduces a CLDR pattern string equivalent to m. Quoting is re-derived, not
// preserved verbatim, so the result is equivalent, not necessarily
// byte-identical to the original source.
func (m PatternMetadata) String() string {
	pos := subPatternString(m.Positive)
	neg := subPatternString(m.Negative)
	if neg == "-"+pos {
		return pos
	}
	return fmt.Sprintf("%s;%s", pos, neg)
}

func subPatternString(s SubPatternMetadata) string {
	b := strings.Builder{}
	writeAffix(&b, s.Prefix)

	if s.MinSignificantDigits > 0 {
		b.WriteString(strings.Repeat("@", s.MinSignificantDigits))
		b.WriteString(strings.Repeat("#", s.MaxSignificantDigits-s.MinSignificantDigits))
	} else {
		if s.GroupingPrimary > 0 {
			b.WriteString("#,##")
			b.WriteString(strings.Repeat("0", s.MinIntegerDigits))
		} else {
			if s.MinIntegerDigits == 0 {
				b.WriteString("#")
			} else {
				b.WriteString(strings.Repeat("0", s.MinIntegerDigits))
			}
		}
		if s.MaxFractionDigits > 0 {
			b.WriteString(".")
			b.WriteString(strings.Repeat("0", s.MinFractionDigits))
			b.WriteString(strings.Repeat("#", s.MaxFractionDigits-s.MinFractionDigits))
		}
	}
	if s.ExponentDigits > 0 {
		b.WriteString("E")
		if s.ExponentShowPositive {
			b.WriteString("+")
		}
		b.WriteString(strings.Repeat("0", s.ExponentDigits))
	}
	writeAffix(&b, s.Suffix)
	return b.String()
}

func writeAffix(b *strings.Builder, tokens []AffixToken) {
	for _, tok := range tokens {
		switch tok.Kind {
		case AffixLiteral:
			b.WriteString(tok.Literal)
		case AffixCurrency:
			b.WriteString(strings.Repeat("¤", tok.Count))
		case AffixPercent:
			b.WriteString("%")
		case AffixPermille:
			b.WriteString("‰")
		case AffixMinusSign:
			b.WriteString("-")
		case AffixPlusSign:
			b.WriteString("+")
		}
	}
}

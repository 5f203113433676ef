// Copyright (c) 2020 Bojan Zivanovic and contributors
// SPDX-License-Identifier: MIT

package numfmt

import (
	"math"
	"strconv"
	"strings"

	"github.com/cockroachdb/apd/v3"
)

var bigTen = apd.NewBigInt(10)

// RoundingMode determines how a value is rounded to its displayed digits.
// The default is RoundHalfEven.
type RoundingMode uint8

const (
	RoundHalfEven RoundingMode = iota
	RoundHalfUp
	RoundHalfDown
	RoundUp
	RoundDown
	RoundCeiling
	RoundFloor
)

// apdRounder maps a RoundingMode to the apd rounding algorithm name. apd
// already implements IEEE 754-2008 decimal rounding, so the core's seven
// modes are a thin, named wrapper rather than a hand-rolled reimplementation.
func (m RoundingMode) apdRounder() apd.Rounder {
	switch m {
	case RoundHalfUp:
		return apd.RoundHalfUp
	case RoundHalfDown:
		return apd.RoundHalfDown
	case RoundUp:
		return apd.RoundUp
	case RoundDown:
		return apd.RoundDown
	case RoundCeiling:
		return apd.RoundCeiling
	case RoundFloor:
		return apd.RoundFloor
	default:
		return apd.RoundHalfEven
	}
}

// decimalContext returns the decimal context to use for a calculation,
// choosing between decimal64 (19 digits) and decimal128 (39 digits) based on
// operand size, for increased performance.
func decimalContext(decimals ...*apd.Decimal) *apd.Context {
	for _, d := range decimals {
		if d != nil && d.Coeff.BitLen() > 31 {
			return apd.BaseContext.WithPrecision(39)
		}
	}
	return apd.BaseContext.WithPrecision(19)
}

// Value is the canonical decimal decomposition the decimal engine operates
// on: a sign, and either a finite decimal magnitude or a NaN/infinity
// marker.
type Value struct {
	Negative   bool
	IsNaN      bool
	IsInfinite bool
	abs        *apd.Decimal // absolute magnitude; nil for NaN/Inf
	fromFloat  bool         // built from an IEEE-754 double
}

// NewValueFromInt64 builds a Value from an integer.
func NewValueFromInt64(n int64) Value {
	neg := n < 0
	u := n
	if neg {
		u = -n
	}
	return Value{Negative: neg, abs: apd.New(u, 0)}
}

// NewValueFromUint64 builds a Value from an unsigned integer.
func NewValueFromUint64(n uint64) Value {
	abs, _, err := apd.NewFromString(strconv.FormatUint(n, 10))
	if err != nil {
		abs = apd.New(0, 0)
	}
	return Value{abs: abs}
}

// NewValueFromFloat64 builds a Value from a float64, using the shortest
// round-trip decimal decomposition.
func NewValueFromFloat64(f float64) Value {
	if math.IsNaN(f) {
		return Value{IsNaN: true, fromFloat: true}
	}
	if math.IsInf(f, 0) {
		return Value{Negative: f < 0, IsInfinite: true, fromFloat: true}
	}
	neg := math.Signbit(f)
	abs, _, err := apd.NewFromString(strconv.FormatFloat(math.Abs(f), 'g', -1, 64))
	if err != nil {
		// Unreachable for a finite, non-NaN float64: FormatFloat always
		// produces a string apd can parse.
		abs = apd.New(0, 0)
	}
	return Value{Negative: neg, abs: abs, fromFloat: true}
}

// NewValueFromDecimal builds a Value from an *apd.Decimal, preserving its
// full precision.
func NewValueFromDecimal(d *apd.Decimal) Value {
	switch d.Form {
	case apd.Infinite:
		return Value{Negative: d.Negative, IsInfinite: true}
	case apd.NaN, apd.NaNSignaling:
		return Value{IsNaN: true}
	default:
		abs := new(apd.Decimal).Set(d)
		abs.Negative = false
		return Value{Negative: d.Negative, abs: abs}
	}
}

// IsNegativeForSign reports the sign to use when selecting positive vs.
// negative subpatterns. A double's negative zero counts as positive; a
// decimal keeps whatever sign its sign field carries.
func (v Value) IsNegativeForSign() bool {
	if !v.Negative {
		return false
	}
	if v.fromFloat && v.abs != nil && v.abs.IsZero() {
		return false
	}
	return true
}

// Digits holds localization-ready digit arrays plus a scientific exponent,
// or a NaN/infinity marker.
type Digits struct {
	IsNaN       bool
	IsInfinite  bool
	Integer     []byte // ASCII '0'-'9', most-significant first
	Fraction    []byte // ASCII '0'-'9'
	HasExponent bool
	Exponent    int // signed; meaningful only if HasExponent
}

// ComputeDigitsOptions carries the per-call overrides the decimal engine
// needs in addition to the compiled pattern.
type ComputeDigitsOptions struct {
	Mode                 RoundingMode
	FractionalDigits     *int   // overrides min/max fraction and clears significant digits
	RoundNearest         string // decimal string increment; "" or "0" = none
	MaximumIntegerDigits *int   // truncates leading integer digits
}

// ComputeDigits runs the rounding and digit-expansion pipeline on the
// absolute magnitude of v against one compiled subpattern. Grouping is not
// applied here; the assembler inserts group separators.
func ComputeDigits(v Value, pattern SubPatternMetadata, opts ComputeDigitsOptions) (Digits, error) {
	if v.IsNaN {
		return Digits{IsNaN: true}, nil
	}
	if v.IsInfinite {
		return Digits{IsInfinite: true}, nil
	}

	abs := v.abs
	if abs == nil {
		abs = apd.New(0, 0)
	}

	ctx := decimalContext(abs)
	ctx.Rounding = opts.Mode.apdRounder()

	// Step: percent/permille multiplier, applied pre-rounding.
	working := abs
	if pattern.Multiplier > 1 {
		working = new(apd.Decimal)
		ctx.Mul(working, abs, apd.New(int64(pattern.Multiplier), 0))
	}

	minFrac, maxFrac := pattern.MinFractionDigits, pattern.MaxFractionDigits
	minSig, maxSig := pattern.MinSignificantDigits, pattern.MaxSignificantDigits
	if opts.FractionalDigits != nil {
		minFrac, maxFrac = *opts.FractionalDigits, *opts.FractionalDigits
		minSig, maxSig = 0, 0
	}

	exponent := 0
	hasExponent := pattern.ExponentDigits > 0
	if hasExponent {
		exponent = scientificExponent(working, pattern)
		shifted := new(apd.Decimal)
		pow := apd.New(1, int32(-exponent))
		ctx.Mul(shifted, working, pow)
		working = shifted
	}

	rounded := new(apd.Decimal)
	switch {
	case opts.RoundNearest != "" && opts.RoundNearest != "0":
		roundToIncrement(ctx, rounded, working, opts.RoundNearest)
	case minSig > 0:
		sigCtx := ctx.WithPrecision(uint32(maxSig))
		sigCtx.Round(rounded, working)
		trimSignificantZeros(rounded, minSig)
	case pattern.RoundingIncrement != "" && pattern.RoundingIncrement != "0":
		roundToIncrement(ctx, rounded, working, pattern.RoundingIncrement)
	case hasExponent && pattern.NoDecimalPoint:
		// CLDR scientific patterns with no '.' at all (e.g. "#E0") leave the
		// fraction unconstrained rather than meaning "zero fraction digits".
		rounded.Set(working)
	default:
		ctx.Quantize(rounded, working, -int32(maxFrac))
	}

	// Quantize/Mul above can produce a carry that grows the integer part
	// (e.g. 9.999 at 2 fraction digits -> 10.00); re-derive the exponent for
	// scientific patterns so the shown integer digit count stays correct.
	if hasExponent {
		intDigits, _ := decimalDigits(rounded, 0)
		if len(intDigits) > widthFor(pattern) {
			exponent++
			shifted := new(apd.Decimal)
			ctx.Mul(shifted, rounded, apd.New(1, -1))
			ctx.Quantize(rounded, shifted, -int32(maxFrac))
		}
	}

	intDigits, fracDigits := decimalDigits(rounded, minFrac)
	if minSig == 0 {
		if len(intDigits) < pattern.MinIntegerDigits {
			pad := make([]byte, pattern.MinIntegerDigits-len(intDigits))
			for i := range pad {
				pad[i] = '0'
			}
			intDigits = append(pad, intDigits...)
		}
		if maxFrac > minFrac {
			fracDigits = trimTrailingZeros(fracDigits, minFrac)
		}
	} else if sig := significantDigitCount(intDigits, fracDigits); sig < minSig {
		pad := make([]byte, minSig-sig)
		for i := range pad {
			pad[i] = '0'
		}
		fracDigits = append(fracDigits, pad...)
	}

	maxInt := pattern.MaxIntegerDigits
	if opts.MaximumIntegerDigits != nil {
		maxInt = *opts.MaximumIntegerDigits
	}
	if !hasExponent && maxInt > 0 && len(intDigits) > maxInt {
		// Truncate on the left, keeping the least-significant digits.
		intDigits = intDigits[len(intDigits)-maxInt:]
	}

	return Digits{
		Integer:     intDigits,
		Fraction:    fracDigits,
		HasExponent: hasExponent,
		Exponent:    exponent,
	}, nil
}

func widthFor(pattern SubPatternMetadata) int {
	if pattern.MaxIntegerDigits > 1 {
		return pattern.MaxIntegerDigits
	}
	if pattern.MinIntegerDigits > 1 {
		return pattern.MinIntegerDigits
	}
	return 1
}

// scientificExponent picks the display exponent E for a scientific pattern,
// satisfying engineering grouping if MaxIntegerDigits > 1, otherwise
// exactly MinIntegerDigits shown integer digits.
func scientificExponent(v *apd.Decimal, pattern SubPatternMetadata) int {
	if v.IsZero() {
		return 0
	}
	numDigits := len(v.Coeff.String())
	actual := int(v.Exponent) + numDigits - 1

	minInt := pattern.MinIntegerDigits
	if minInt < 1 {
		minInt = 1
	}
	if pattern.MaxIntegerDigits > 1 {
		width := pattern.MaxIntegerDigits
		m := (actual + 1) % width
		if m <= 0 {
			m += width
		}
		return actual - m + 1
	}
	return actual - (minInt - 1)
}

// roundToIncrement snaps v to the nearest multiple of increment (a decimal
// string), using ctx's rounding mode.
func roundToIncrement(ctx *apd.Context, result, v *apd.Decimal, increment string) {
	inc, _, err := apd.NewFromString(increment)
	if err != nil || inc.IsZero() {
		result.Set(v)
		return
	}
	quotient := new(apd.Decimal)
	ctx.Quo(quotient, v, inc)
	roundedQuotient := new(apd.Decimal)
	// Quantize to exponent 0 rounds to the nearest whole number of
	// increments, using ctx.Rounding.
	ctx.Quantize(roundedQuotient, quotient, 0)
	ctx.Mul(result, roundedQuotient, inc)
}

// trimSignificantZeros strips trailing zero digits from rounded's
// coefficient (adjusting its exponent to compensate) until either a
// non-zero digit is reached or the digit count drops to minSig; the
// significant-digit analogue of trailing-zero fraction trimming.
func trimSignificantZeros(rounded *apd.Decimal, minSig int) {
	for {
		s := rounded.Coeff.String()
		if len(s) <= minSig || s == "0" {
			return
		}
		if s[len(s)-1] != '0' {
			return
		}
		rounded.Coeff.Quo(&rounded.Coeff, bigTen)
		rounded.Exponent++
	}
}

// decimalDigits splits v's absolute value (assumed already non-negative)
// into integer and fraction ASCII digit byte slices, padding the fraction
// with trailing zeros down to minFrac digits.
func decimalDigits(v *apd.Decimal, minFrac int) (intDigits, fracDigits []byte) {
	coeff := v.Coeff.String()
	exp := int(v.Exponent)

	switch {
	case exp >= 0:
		intDigits = []byte(coeff + strings.Repeat("0", exp))
		fracDigits = []byte{}
	case -exp >= len(coeff):
		intDigits = []byte("0")
		fracDigits = []byte(strings.Repeat("0", -exp-len(coeff)) + coeff)
	default:
		split := len(coeff) + exp
		intDigits = []byte(coeff[:split])
		fracDigits = []byte(coeff[split:])
	}
	if len(fracDigits) < minFrac {
		pad := make([]byte, minFrac-len(fracDigits))
		for i := range pad {
			pad[i] = '0'
		}
		fracDigits = append(fracDigits, pad...)
	}
	return intDigits, fracDigits
}

// significantDigitCount counts the significant digits across the integer and
// fraction parts: everything from the first non-zero digit on. A value of
// all zeros counts as one significant digit, so that zero still pads out to
// the pattern's minimum ("0.00" for "@@@").
func significantDigitCount(intDigits, fracDigits []byte) int {
	count := 0
	started := false
	for _, d := range intDigits {
		if d != '0' {
			started = true
		}
		if started {
			count++
		}
	}
	for _, d := range fracDigits {
		if d != '0' {
			started = true
		}
		if started {
			count++
		}
	}
	if count == 0 {
		return 1
	}
	return count
}

// trimTrailingZeros removes trailing '0' bytes from digits down to a floor
// of minKeep digits.
func trimTrailingZeros(digits []byte, minKeep int) []byte {
	end := len(digits)
	for end > minKeep && digits[end-1] == '0' {
		end--
	}
	return digits[:end]
}

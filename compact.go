// Copyright (c) 2020 Bojan Zivanovic and contributors
// SPDX-License-Identifier: MIT

package numfmt

import (
	"math"

	"github.com/cockroachdb/apd/v3"
)

// selectCompactBucket computes the magnitude bucket for |v| and returns its
// divisor and pattern. Buckets must be sorted ascending by Magnitude. A
// value above the largest bucket uses the largest one; a value below the
// smallest bucket gets no bucket (false).
func selectCompactBucket(v Value, buckets []CompactBucket) (CompactBucket, bool) {
	if len(buckets) == 0 || v.IsNaN || v.IsInfinite || v.abs == nil || v.abs.IsZero() {
		return CompactBucket{}, false
	}

	magnitude := magnitudeOf(v.abs)

	chosen := buckets[0]
	found := false
	for _, b := range buckets {
		if b.Magnitude <= magnitude {
			chosen = b
			found = true
			continue
		}
		break
	}
	if !found {
		return CompactBucket{}, false
	}
	return chosen, true
}

// magnitudeOf returns floor(log10(|v|)) for a positive decimal value.
func magnitudeOf(v *apd.Decimal) int {
	numDigits := len(v.Coeff.String())
	return int(v.Exponent) + numDigits - 1
}

// applyCompactDivisor divides v by the bucket's divisor, returning the
// divided value ready for plural-category evaluation and pattern dispatch.
func applyCompactDivisor(v Value, bucket CompactBucket) (Value, error) {
	if bucket.Divisor == "" || bucket.Divisor == "1" {
		return v, nil
	}
	divisor, _, err := apd.NewFromString(bucket.Divisor)
	if err != nil || divisor.IsZero() {
		return v, nil
	}
	ctx := decimalContext(v.abs, divisor)
	result := new(apd.Decimal)
	ctx.Quo(result, v.abs, divisor)
	return Value{Negative: v.Negative, abs: result}, nil
}

// compactPluralOperand derives the PluralOperand for a divided compact
// value, rounded to the fraction digits implied by a candidate pattern.
// Most compact patterns show zero fraction digits.
func compactPluralOperand(v Value, fractionDigits int) PluralOperand {
	if v.abs == nil {
		return PluralOperand{}
	}
	ctx := decimalContext(v.abs)
	rounded := new(apd.Decimal)
	ctx.Quantize(rounded, v.abs, -int32(fractionDigits))

	intDigits, fracDigits := decimalDigits(rounded, 0)
	fracTrimmed := trimTrailingZeros(fracDigits, 0)

	n, _ := rounded.Float64()

	var intVal int64
	for _, d := range intDigits {
		intVal = intVal*10 + int64(d-'0')
	}
	var fVal, tVal int64
	for _, d := range fracDigits {
		fVal = fVal*10 + int64(d-'0')
	}
	for _, d := range fracTrimmed {
		tVal = tVal*10 + int64(d-'0')
	}

	return PluralOperand{
		N: math.Abs(n),
		I: intVal,
		V: len(fracDigits),
		W: len(fracTrimmed),
		F: fVal,
		T: tVal,
	}
}

// pickCompactPattern resolves the plural-specific pattern from bucket for
// category, falling back to "other". A pattern of "0"
// means "no transform": the caller must fall back to the standard format.
func pickCompactPattern(bucket CompactBucket, category PluralCategory) (pattern string, noTransform bool) {
	p, ok := bucket.Patterns[category]
	if !ok {
		p, ok = bucket.Patterns[PluralOther]
	}
	if !ok || p == "0" {
		return "", true
	}
	return p, false
}

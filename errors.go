// Copyright (c) 2020 Bojan Zivanovic and contributors
// SPDX-License-Identifier: MIT

package numfmt

import "fmt"

// FormatCompileError is returned when a CLDR pattern string fails to parse.
type FormatCompileError struct {
	Op      string
	Pattern string
	Reason  string
}

func (e FormatCompileError) Error() string {
	return fmt.Sprintf("numfmt/%v: syntax error (%v) in pattern %q", e.Op, e.Reason, e.Pattern)
}

// FormatError is returned when a currency format is requested without a
// currency, or when options contradict each other.
type FormatError struct {
	Op      string
	Message string
}

func (e FormatError) Error() string {
	return fmt.Sprintf("numfmt/%v: %v", e.Op, e.Message)
}

// UnknownFormatError is returned when a named format has no pattern for the
// requested (locale, number system) pair.
type UnknownFormatError struct {
	Op           string
	FormatName   string
	LocaleID     string
	NumberSystem string
}

func (e UnknownFormatError) Error() string {
	return fmt.Sprintf("numfmt/%v: format %q is not defined for locale %q number system %q", e.Op, e.FormatName, e.LocaleID, e.NumberSystem)
}

// UnknownLocaleError is returned when the backend does not recognize a locale.
type UnknownLocaleError struct {
	Op       string
	LocaleID string
}

func (e UnknownLocaleError) Error() string {
	return fmt.Sprintf("numfmt/%v: unknown locale %q", e.Op, e.LocaleID)
}

// UnknownNumberSystemError is returned when the backend does not recognize a
// number system for the given locale.
type UnknownNumberSystemError struct {
	Op           string
	NumberSystem string
}

func (e UnknownNumberSystemError) Error() string {
	return fmt.Sprintf("numfmt/%v: unknown number system %q", e.Op, e.NumberSystem)
}

// UnknownCurrencyError is returned when a currency code is invalid or
// unrecognized by the backend.
type UnknownCurrencyError struct {
	Op           string
	CurrencyCode string
}

func (e UnknownCurrencyError) Error() string {
	return fmt.Sprintf("numfmt/%v: unknown currency code %q", e.Op, e.CurrencyCode)
}

// InvalidOptionError is returned for an out-of-range integer or a bad enum
// value passed in Options.
type InvalidOptionError struct {
	Op      string
	Option  string
	Message string
}

func (e InvalidOptionError) Error() string {
	return fmt.Sprintf("numfmt/%v: option %v: %v", e.Op, e.Option, e.Message)
}

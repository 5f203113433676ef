// Copyright (c) 2020 Bojan Zivanovic and contributors
// SPDX-License-Identifier: MIT

package numfmt

import "golang.org/x/text/language"

// CanonicalLocale canonicalizes a BCP-47 locale tag (e.g. "DE_at", "zh-Hans")
// into the normalized form NewLocale expects, using golang.org/x/text's tag
// parser/matcher rather than hand-rolled BCP-47 parsing.
//
// Callers that accept free-form locale strings from the outside world
// should canonicalize once, here, rather than inside the hot formatting
// path.
//
// An unparsable tag is handed unchanged to NewLocale for its best-effort
// parse; CanonicalLocale never returns an error. Only subtags present in
// the input are kept: a script or region that the tag parser merely infers
// (e.g. "Latn" for "de-AT") is not added.
func CanonicalLocale(id string) Locale {
	tag, err := language.Parse(id)
	if err != nil {
		return NewLocale(id)
	}
	l := Locale{}
	if base, conf := tag.Base(); conf != language.No {
		l.Language = base.String()
	}
	if script, conf := tag.Script(); conf == language.Exact {
		l.Script = script.String()
	}
	if region, conf := tag.Region(); conf == language.Exact {
		l.Territory = region.String()
	}
	return l
}

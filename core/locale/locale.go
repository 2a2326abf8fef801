/*
Package locale wraps language tags used to select hyphenation data.

Locale identifiers arrive in various spellings, e.g. "de_CH", "de-CH" or
"DE_ch". They are all parsed into a BCP 47 tag from golang.org/x/text/language.
Hyphenation does not interpret a locale beyond asking an oracle about it.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package locale

import (
	"strings"

	"github.com/npillmayer/hyphtext/core"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Locale identifies a language/region for hyphenation.
// The zero value is the undefined locale.
type Locale struct {
	tag language.Tag
}

// Undefined is the locale without any language information.
var Undefined = Locale{tag: language.Und}

// Parse parses a locale identifier. Underscores and dashes are both
// accepted as subtag separators.
func Parse(id string) (Locale, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Undefined, core.Error(core.EINVALID, "empty locale identifier")
	}
	tag, err := language.Parse(id)
	if err != nil {
		return Undefined, core.WrapError(err, core.EINVALID, "cannot parse locale %q", id)
	}
	return Locale{tag: tag}, nil
}

// Make is like Parse, but returns the best-effort locale for malformed
// identifiers. It is intended for constants and tests.
func Make(id string) Locale {
	return Locale{tag: language.Make(id)}
}

// FromTag wraps a language tag.
func FromTag(tag language.Tag) Locale {
	return Locale{tag: tag}
}

// Tag returns the underlying language tag.
func (l Locale) Tag() language.Tag {
	return l.tag
}

// String returns the identifier in "ll_RR" notation, e.g. "de_CH".
func (l Locale) String() string {
	return strings.ReplaceAll(l.tag.String(), "-", "_")
}

// IsUndefined is true for locales without language information.
func (l Locale) IsUndefined() bool {
	return l.tag == language.Und
}

// Base returns the locale reduced to its base language, e.g. "de" for "de_CH".
func (l Locale) Base() Locale {
	b, _ := l.tag.Base()
	t, err := language.Compose(b)
	if err != nil {
		return Undefined
	}
	return Locale{tag: t}
}

// SameLanguage is true if both locales share a base language.
func (l Locale) SameLanguage(other Locale) bool {
	b1, _ := l.tag.Base()
	b2, _ := other.tag.Base()
	return b1 == b2
}

// Name returns the English display name of a locale, e.g. "Swiss High German".
func (l Locale) Name() string {
	return display.English.Tags().Name(l.tag)
}

// Fallbacks returns l followed by its parents, up to but excluding the
// root locale. For "de_CH_1996" this is [de_CH_1996, de_CH, de].
func (l Locale) Fallbacks() []Locale {
	chain := []Locale{}
	for t := l.tag; !t.IsRoot(); t = t.Parent() {
		chain = append(chain, Locale{tag: t})
	}
	return chain
}

/*
Package exceptions implements a hyphenation oracle from explicit word lists.

Entries are words with hyphens at legal break positions, such as

    Kraft-fahr-zeug-haft-pflicht-ver-si-che-rung

which is the format of TeX's \hyphenation{…} lists. Lookup is
case-insensitive. Words not in the list have no break positions.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package exceptions

import (
	"io"
	"sort"

	"github.com/npillmayer/hyphtext/core"
	"github.com/npillmayer/hyphtext/core/locale"
	"github.com/npillmayer/hyphtext/engine/hyphen"
	"github.com/npillmayer/hyphtext/engine/oracle"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'hyphtext.oracle'.
func tracer() tracing.Trace {
	return tracing.Select("hyphtext.oracle")
}

// List is a hyphenation oracle for a single language. Entries are added
// with Add; once a List is in use by hyphenators it must not be modified.
type List struct {
	loc    locale.Locale
	breaks map[string][]int // folded word -> decreasing offsets
}

var _ hyphen.Oracle = &List{}

// New creates an empty exception list for the language of loc.
func New(loc locale.Locale) *List {
	return &List{
		loc:    loc,
		breaks: make(map[string][]int),
	}
}

// Load creates an exception list from a reader. Input is either a TeX file
// with a \hyphenation{…} block or a plain list of hyphenated words.
func Load(loc locale.Locale, r io.Reader) (*List, error) {
	tex, err := oracle.ReadTeX(r)
	if err != nil {
		return nil, err
	}
	list := New(loc)
	entries := tex.Exceptions
	if len(entries) == 0 {
		entries = tex.Plain
	}
	for _, e := range entries {
		list.Add(e)
	}
	tracer().Infof("loaded %d hyphenation exceptions for %s", list.Len(), loc)
	return list, nil
}

// Add adds a hyphenated word like "ta-ble". A later entry for the same word
// replaces an earlier one.
func (list *List) Add(entry string) {
	word, breaks := oracle.ParseHyphenated(entry, '-')
	if word == "" {
		return
	}
	list.breaks[oracle.Fold(word)] = breaks
}

// Len returns the number of words in the list.
func (list *List) Len() int {
	return len(list.breaks)
}

// Entries returns the words of the list in hyphenated, lower-case form,
// sorted alphabetically.
func (list *List) Entries() []string {
	entries := make([]string, 0, len(list.breaks))
	for w := range list.breaks {
		if e, err := hyphen.HyphenateWord(w, "-", list.loc, list); err == nil {
			entries = append(entries, e)
		}
	}
	sort.Strings(entries)
	return entries
}

// Locale returns the locale the list has been created for.
func (list *List) Locale() locale.Locale {
	return list.loc
}

// Lookup returns the break offsets of a word, in decreasing order.
func (list *List) Lookup(word string) ([]int, bool) {
	b, ok := list.breaks[oracle.Fold(word)]
	return b, ok
}

// IsAvailable is true for locales sharing the list's base language.
func (list *List) IsAvailable(loc locale.Locale) bool {
	return list.loc.SameLanguage(loc)
}

// NextBreak is part of interface hyphen.Oracle.
func (list *List) NextBreak(word string, before int, loc locale.Locale) (int, error) {
	if !list.IsAvailable(loc) {
		return hyphen.NoBreak, core.Error(core.EUNSUPPORTED,
			"exception list for %s asked for locale %s", list.loc, loc)
	}
	breaks, _ := list.Lookup(word)
	return oracle.NextBelow(breaks, before), nil
}

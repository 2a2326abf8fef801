/*
Package patterns implements a hyphenation oracle from TeX hyphenation
patterns, using Frank Liang's algorithm.

A pattern is a sequence of letters interspersed with digits, e.g. "hy3ph"
or ".ab1". A '.' matches the beginning or end of a word. To hyphenate a
word, every pattern matching a substring of the (dot-padded) word
contributes its digits to the gaps between letters; at each gap the
maximum digit wins. Odd values mark legal break positions, even values
inhibit them. Exceptions, given as hyphenated words, override patterns.

Pattern data for many languages is available from the hyph-utf8 project.
This package does not contain any language data itself.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package patterns

import (
	"io"
	"unicode"

	"github.com/derekparker/trie"
	"github.com/npillmayer/hyphtext/core"
	"github.com/npillmayer/hyphtext/core/locale"
	"github.com/npillmayer/hyphtext/engine/hyphen"
	"github.com/npillmayer/hyphtext/engine/oracle"
	"github.com/npillmayer/hyphtext/engine/oracle/exceptions"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'hyphtext.oracle'.
func tracer() tracing.Trace {
	return tracing.Select("hyphtext.oracle")
}

// TeX's defaults for \lefthyphenmin and \righthyphenmin.
const (
	DefaultLeftMin  = 2
	DefaultRightMin = 3
)

// Dictionary is a hyphenation oracle for one language, driven by Liang
// patterns. After loading it is read-only and safe for concurrent use.
type Dictionary struct {
	loc        locale.Locale
	patterns   *trie.Trie // letters -> []int digits
	longest    int        // # of letters of the longest pattern
	count      int
	exceptions *exceptions.List
	LeftMin    int // minimum # of runes before the first break
	RightMin   int // minimum # of runes after the last break
}

var _ hyphen.Oracle = &Dictionary{}

// NewDictionary creates an empty pattern dictionary for the language of loc.
func NewDictionary(loc locale.Locale) *Dictionary {
	return &Dictionary{
		loc:        loc,
		patterns:   trie.New(),
		exceptions: exceptions.New(loc),
		LeftMin:    DefaultLeftMin,
		RightMin:   DefaultRightMin,
	}
}

// Load reads a TeX hyphenation file with a \patterns{…} block and an
// optional \hyphenation{…} block. Files without blocks are read as plain
// pattern lists.
func Load(loc locale.Locale, r io.Reader) (*Dictionary, error) {
	tex, err := oracle.ReadTeX(r)
	if err != nil {
		return nil, err
	}
	dict := NewDictionary(loc)
	pats := tex.Patterns
	if len(pats) == 0 {
		pats = tex.Plain
	}
	for _, p := range pats {
		if err := dict.AddPattern(p); err != nil {
			return nil, err
		}
	}
	for _, e := range tex.Exceptions {
		dict.AddException(e)
	}
	if dict.count == 0 {
		return nil, core.Error(core.EINVALID, "no hyphenation patterns found for %s", loc)
	}
	tracer().Infof("loaded %d patterns and %d exceptions for %s", dict.count,
		dict.exceptions.Len(), loc)
	return dict, nil
}

// AddPattern adds a Liang pattern like "hy3ph".
func (dict *Dictionary) AddPattern(pattern string) error {
	letters := make([]rune, 0, len(pattern))
	digits := []int{0}
	for _, r := range pattern {
		if r >= '0' && r <= '9' {
			digits[len(digits)-1] = int(r - '0')
			continue
		}
		if unicode.IsSpace(r) {
			return core.Error(core.EINVALID, "illegal hyphenation pattern %q", pattern)
		}
		letters = append(letters, unicode.ToLower(r))
		digits = append(digits, 0)
	}
	if len(letters) == 0 {
		return core.Error(core.EINVALID, "illegal hyphenation pattern %q", pattern)
	}
	dict.patterns.Add(string(letters), digits)
	if len(letters) > dict.longest {
		dict.longest = len(letters)
	}
	dict.count++
	return nil
}

// AddException adds a hyphenated word like "ta-ble", overriding patterns.
func (dict *Dictionary) AddException(entry string) {
	dict.exceptions.Add(entry)
}

// Locale returns the locale the dictionary has been created for.
func (dict *Dictionary) Locale() locale.Locale {
	return dict.loc
}

// IsAvailable is true for locales sharing the dictionary's base language.
func (dict *Dictionary) IsAvailable(loc locale.Locale) bool {
	return dict.loc.SameLanguage(loc)
}

// NextBreak is part of interface hyphen.Oracle.
func (dict *Dictionary) NextBreak(word string, before int, loc locale.Locale) (int, error) {
	if !dict.IsAvailable(loc) {
		return hyphen.NoBreak, core.Error(core.EUNSUPPORTED,
			"pattern dictionary for %s asked for locale %s", dict.loc, loc)
	}
	return oracle.NextBelow(dict.Breaks(word), before), nil
}

// Breaks returns all break offsets for a word, in decreasing order.
func (dict *Dictionary) Breaks(word string) []int {
	if b, ok := dict.exceptions.Lookup(word); ok {
		return b
	}
	w := []rune(oracle.Fold(word))
	n := len(w)
	if n < dict.LeftMin+dict.RightMin {
		return nil
	}
	padded := make([]rune, 0, n+2)
	padded = append(padded, '.')
	padded = append(padded, w...)
	padded = append(padded, '.')
	// points[k] is the value of the gap before padded[k]
	points := make([]int, len(padded)+1)
	for i := range padded {
		for j := i + 1; j <= len(padded) && j-i <= dict.longest; j++ {
			sub := string(padded[i:j])
			if node, ok := dict.patterns.Find(sub); ok {
				for k, d := range node.Meta().([]int) {
					if d > points[i+k] {
						points[i+k] = d
					}
				}
			}
			if !dict.patterns.HasKeysWithPrefix(sub) {
				break
			}
		}
	}
	var breaks []int
	for p := n - dict.RightMin; p >= dict.LeftMin && p > 0; p-- {
		if points[p+1]%2 == 1 {
			breaks = append(breaks, p)
		}
	}
	return breaks
}

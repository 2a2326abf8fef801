package hyphen

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/npillmayer/hyphtext/core"
	"github.com/npillmayer/hyphtext/core/locale"
	params "github.com/npillmayer/hyphtext/core/parameters"
	"golang.org/x/text/unicode/norm"
)

// Hyphenator bundles an oracle with settings taken from a set of registers.
// Registers are read once, in New; later changes to them do not affect
// the Hyphenator. A Hyphenator is immutable and safe for concurrent use if
// its oracle is.
type Hyphenator struct {
	oracle    Oracle
	loc       locale.Locale
	conf      settings
	normalize bool
}

// New creates a Hyphenator for the current values of regs:
//
//   P_LANGUAGE         locale identifier, e.g. "de_CH"
//   P_SEPARATOR        string to insert at break positions
//   P_MINHYPHENLENGTH  words with fewer runes are not hyphenated
//   P_WHITESPACE       whitespace policy for texts
//   P_NORMALIZE        NFC-normalize texts before hyphenation
//
// If regs is nil, default registers are used.
func New(oracle Oracle, regs *params.Registers) (*Hyphenator, error) {
	if oracle == nil {
		return nil, core.Error(core.EINVALID, "no hyphenation oracle given")
	}
	if regs == nil {
		regs = params.NewRegisters()
	}
	loc, err := locale.Parse(regs.S(params.P_LANGUAGE))
	if err != nil {
		return nil, err
	}
	ws := regs.N(params.P_WHITESPACE)
	if ws < params.WhitespacePreserve || ws > params.WordBoundaries {
		return nil, core.Error(core.EINVALID, "unknown whitespace policy %d", ws)
	}
	h := &Hyphenator{
		oracle: oracle,
		loc:    loc,
		conf: settings{
			separator:  regs.S(params.P_SEPARATOR),
			minLength:  regs.N(params.P_MINHYPHENLENGTH),
			whitespace: ws,
		},
		normalize: regs.B(params.P_NORMALIZE),
	}
	tracer().Debugf("new hyphenator for %s, min length %d", loc, h.conf.minLength)
	return h, nil
}

// Locale returns the locale the Hyphenator works for.
func (h *Hyphenator) Locale() locale.Locale {
	return h.loc
}

// IsAvailable reports whether the oracle has data for the Hyphenator's locale.
func (h *Hyphenator) IsAvailable() bool {
	return h.oracle.IsAvailable(h.loc)
}

// Word hyphenates a single word. Words shorter than the minimum hyphenation
// length are returned unchanged.
func (h *Hyphenator) Word(word string) (string, error) {
	if utf8.RuneCountInString(word) < h.conf.minLength {
		if strings.IndexFunc(word, unicode.IsSpace) >= 0 {
			return word, core.Error(core.EINVALID, "cannot hyphenate %q: word contains whitespace", word)
		}
		return word, nil
	}
	return HyphenateWord(word, h.conf.separator, h.loc, h.oracle)
}

// Syllables splits a word at its break positions. A word without breaks
// results in a single syllable.
func (h *Hyphenator) Syllables(word string) ([]string, error) {
	if strings.IndexFunc(word, unicode.IsSpace) >= 0 {
		return nil, core.Error(core.EINVALID, "cannot hyphenate %q: word contains whitespace", word)
	}
	if word == "" || utf8.RuneCountInString(word) < h.conf.minLength || !h.IsAvailable() {
		return []string{word}, nil
	}
	breaks, err := Breaks(h.oracle, word, h.loc)
	if err != nil {
		return nil, err
	}
	return splitAt(word, breaks), nil
}

// Text hyphenates all words of a text, following the whitespace policy
// the Hyphenator has been configured with.
func (h *Hyphenator) Text(text string) (string, error) {
	if !h.IsAvailable() {
		return text, nil
	}
	return hyphenateText(h.prepare(text), h.loc, h.oracle, h.conf)
}

func (h *Hyphenator) prepare(text string) string {
	if h.normalize {
		return norm.NFC.String(text)
	}
	return text
}

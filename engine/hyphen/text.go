package hyphen

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/npillmayer/hyphtext/core"
	"github.com/npillmayer/hyphtext/core/locale"
	"github.com/npillmayer/hyphtext/core/parameters"
	"github.com/npillmayer/uax/segment"
	"github.com/npillmayer/uax/uax29"
)

// HyphenateText hyphenates every word of text.
//
// Words are separated by whitespace. Every run of whitespace, including
// leading and trailing whitespace, is kept verbatim, so the result differs
// from text only by inserted separators. If the oracle has no data for loc,
// text is returned unchanged without any further oracle calls.
//
// If the oracle fails for any word, an error with code core.ECONNECTION is
// returned and no text.
func HyphenateText(text, separator string, loc locale.Locale, oracle Oracle) (string, error) {
	return hyphenateText(text, loc, oracle, settings{
		separator:  separator,
		whitespace: parameters.WhitespacePreserve,
	})
}

// settings are the knobs of text hyphenation, usually taken from registers.
type settings struct {
	separator  string
	minLength  int // words with fewer runes are left alone
	whitespace int // one of the parameters.Whitespace… policies
}

func hyphenateText(text string, loc locale.Locale, oracle Oracle, conf settings) (string, error) {
	if oracle == nil {
		return text, core.Error(core.EINVALID, "no hyphenation oracle given")
	}
	if !oracle.IsAvailable(loc) {
		tracer().Debugf("no hyphenation data for locale %s", loc)
		return text, nil
	}
	var b strings.Builder
	b.Grow(len(text) + len(text)/4)
	err := eachToken(text, conf, func(tok token) error {
		if !tok.word {
			b.WriteString(tok.text)
			return nil
		}
		breaks, err := Breaks(oracle, tok.text, loc)
		if err != nil {
			return err
		}
		b.WriteString(insertSeparators(tok.text, conf.separator, breaks))
		return nil
	})
	if err != nil {
		return "", err
	}
	return b.String(), nil
}

// --- Tokenizing ------------------------------------------------------------

// token is a fragment of text. Word tokens contain no whitespace and are
// candidates for hyphenation, all other tokens are copied verbatim.
type token struct {
	text string
	word bool
}

// eachToken splits text according to the whitespace policy of conf and
// calls f for every token, in order. Concatenating all tokens yields text,
// except for policy WhitespaceCollapse.
func eachToken(text string, conf settings, f func(token) error) error {
	emit := func(s string, word bool) error {
		if s == "" {
			return nil
		}
		if word && utf8.RuneCountInString(s) < conf.minLength {
			word = false
		}
		return f(token{text: s, word: word})
	}
	switch conf.whitespace {
	case parameters.WhitespaceCollapse:
		for i, w := range strings.Fields(text) {
			if i > 0 {
				if err := emit(" ", false); err != nil {
					return err
				}
			}
			if err := emit(w, true); err != nil {
				return err
			}
		}
		return nil
	case parameters.WordBoundaries:
		words := segment.NewSegmenter(uax29.NewWordBreaker(1))
		words.BreakOnZero(true, false)
		words.Init(strings.NewReader(text))
		for words.Next() {
			s := words.Text()
			if err := emit(s, isWordSegment(s)); err != nil {
				return err
			}
		}
		return nil
	}
	start, inSpace := 0, false
	for i, r := range text {
		if sp := unicode.IsSpace(r); sp != inSpace {
			if err := emit(text[start:i], !inSpace); err != nil {
				return err
			}
			start, inSpace = i, sp
		}
	}
	return emit(text[start:], !inSpace)
}

// isWordSegment is true for UAX#29 segments starting with a letter or digit
// and free of whitespace.
func isWordSegment(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	if !unicode.IsLetter(r) && !unicode.IsNumber(r) {
		return false
	}
	return strings.IndexFunc(s, unicode.IsSpace) < 0
}

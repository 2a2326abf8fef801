package hyphen

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/npillmayer/hyphtext/core"
	"github.com/npillmayer/hyphtext/core/locale"
)

// HyphenateWord inserts separator at every break position the oracle
// reports for word.
//
// word must not contain whitespace; if it does, an error with code
// core.EINVALID is returned. If the oracle has no data for loc, word is
// returned unchanged. If the oracle fails or misbehaves, an error with code
// core.ECONNECTION is returned and no partially hyphenated text.
func HyphenateWord(word, separator string, loc locale.Locale, oracle Oracle) (string, error) {
	if oracle == nil {
		return word, core.Error(core.EINVALID, "no hyphenation oracle given")
	}
	if strings.IndexFunc(word, unicode.IsSpace) >= 0 {
		return word, core.Error(core.EINVALID, "cannot hyphenate %q: word contains whitespace", word)
	}
	if word == "" || !oracle.IsAvailable(loc) {
		return word, nil
	}
	breaks, err := Breaks(oracle, word, loc)
	if err != nil {
		return word, err
	}
	return insertSeparators(word, separator, breaks), nil
}

// Breaks collects the break offsets of word, in decreasing order.
//
// The oracle is queried with a cursor starting at the rune length of word.
// Each answer becomes the new cursor. Querying stops at the first
// non-positive answer. An oracle answer which is not strictly below the
// cursor is an error, which guarantees termination after at most
// len(word) queries.
func Breaks(oracle Oracle, word string, loc locale.Locale) ([]int, error) {
	n := utf8.RuneCountInString(word)
	var breaks []int
	cursor := n
	for i := 0; i < n; i++ {
		offset, err := oracle.NextBreak(word, cursor, loc)
		if err != nil {
			return nil, core.WrapError(err, core.ECONNECTION,
				"hyphenation unavailable for %q (%s)", word, loc)
		}
		if offset <= NoBreak {
			break
		}
		if offset >= cursor {
			return nil, core.Error(core.ECONNECTION,
				"oracle returned break %d for %q, expected a break before %d", offset, word, cursor)
		}
		breaks = append(breaks, offset)
		cursor = offset
	}
	tracer().Debugf("breaks for %q = %v", word, breaks)
	return breaks, nil
}

// insertSeparators splices sep into word at the given rune offsets, which
// are expected in decreasing order. Slicing is done on the byte positions
// of the original word, so the word's bytes are preserved verbatim.
func insertSeparators(word, sep string, breaks []int) string {
	if len(breaks) == 0 {
		return word
	}
	pos := runePositions(word)
	var b strings.Builder
	b.Grow(len(word) + len(breaks)*len(sep))
	start := 0
	for i := len(breaks) - 1; i >= 0; i-- {
		at := pos[breaks[i]]
		b.WriteString(word[start:at])
		b.WriteString(sep)
		start = at
	}
	b.WriteString(word[start:])
	return b.String()
}

// splitAt cuts word into syllables at the given rune offsets, which are
// expected in decreasing order.
func splitAt(word string, breaks []int) []string {
	if len(breaks) == 0 {
		return []string{word}
	}
	pos := runePositions(word)
	syllables := make([]string, 0, len(breaks)+1)
	start := 0
	for i := len(breaks) - 1; i >= 0; i-- {
		at := pos[breaks[i]]
		syllables = append(syllables, word[start:at])
		start = at
	}
	return append(syllables, word[start:])
}

// runePositions maps rune indices to byte positions. The result has one
// extra entry for the end of the string.
func runePositions(s string) []int {
	pos := make([]int, 0, len(s)+1)
	for i := range s {
		pos = append(pos, i)
	}
	return append(pos, len(s))
}

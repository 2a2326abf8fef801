package oracle

import (
	"sort"
	"strings"
	"unicode"

	"github.com/npillmayer/hyphtext/engine/hyphen"
)

// Fold lower-cases a word rune by rune. Unlike strings.ToLower it never
// changes the number of runes, so break offsets stay valid.
func Fold(word string) string {
	return strings.Map(unicode.ToLower, word)
}

// ParseHyphenated splits an entry like "ta-ble" into the word "table" and
// its break offsets, in decreasing order. Markers at the start or end of
// the entry, and repeated markers, do not produce breaks.
func ParseHyphenated(entry string, marker rune) (string, []int) {
	var b strings.Builder
	var breaks []int
	n := 0
	for _, r := range entry {
		if r == marker {
			if n > 0 && (len(breaks) == 0 || breaks[len(breaks)-1] != n) {
				breaks = append(breaks, n)
			}
			continue
		}
		b.WriteRune(r)
		n++
	}
	if len(breaks) > 0 && breaks[len(breaks)-1] == n {
		breaks = breaks[:len(breaks)-1]
	}
	sort.Sort(sort.Reverse(sort.IntSlice(breaks)))
	return b.String(), breaks
}

// NextBelow returns the first offset of a decreasing list which is strictly
// less than before, or hyphen.NoBreak.
func NextBelow(breaks []int, before int) int {
	for _, b := range breaks {
		if b < before {
			return b
		}
	}
	return hyphen.NoBreak
}

package hyphen

import (
	"errors"
	"sort"
	"strings"

	"github.com/npillmayer/hyphtext/core/locale"
)

// --- Test doubles for oracles ----------------------------------------------

// seededOracle answers with break offsets seeded from pre-hyphenated words,
// e.g. "Kraft-fahr-zeug".
type seededOracle struct {
	loc    locale.Locale
	breaks map[string][]int
	calls  int
}

func seed(loc string, words ...string) *seededOracle {
	o := &seededOracle{loc: locale.Make(loc), breaks: make(map[string][]int)}
	for _, w := range words {
		var offsets []int
		n := 0
		for _, r := range w {
			if r == '-' {
				offsets = append(offsets, n)
				continue
			}
			n++
		}
		sort.Sort(sort.Reverse(sort.IntSlice(offsets)))
		o.breaks[strings.ReplaceAll(w, "-", "")] = offsets
	}
	return o
}

func (o *seededOracle) IsAvailable(loc locale.Locale) bool {
	return o.loc.SameLanguage(loc)
}

func (o *seededOracle) NextBreak(word string, before int, loc locale.Locale) (int, error) {
	o.calls++
	for _, b := range o.breaks[word] {
		if b < before {
			return b, nil
		}
	}
	return NoBreak, nil
}

// stuckOracle always answers with the same offset.
type stuckOracle struct {
	offset int
	calls  int
}

func (o *stuckOracle) IsAvailable(locale.Locale) bool { return true }

func (o *stuckOracle) NextBreak(word string, before int, loc locale.Locale) (int, error) {
	o.calls++
	return o.offset, nil
}

// risingOracle answers with offsets beyond the cursor.
type risingOracle struct{}

func (risingOracle) IsAvailable(locale.Locale) bool { return true }

func (risingOracle) NextBreak(word string, before int, loc locale.Locale) (int, error) {
	return before + 1, nil
}

// everyRuneOracle allows a break before every rune but the first.
type everyRuneOracle struct{}

func (everyRuneOracle) IsAvailable(locale.Locale) bool { return true }

func (everyRuneOracle) NextBreak(word string, before int, loc locale.Locale) (int, error) {
	return before - 1, nil
}

var errServiceDown = errors.New("hyphenation service down")

// failingOracle fails for a single word.
type failingOracle struct {
	*seededOracle
	failFor string
}

func (o failingOracle) NextBreak(word string, before int, loc locale.Locale) (int, error) {
	if word == o.failFor {
		return NoBreak, errServiceDown
	}
	return o.seededOracle.NextBreak(word, before, loc)
}

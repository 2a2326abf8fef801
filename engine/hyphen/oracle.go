package hyphen

import (
	"github.com/npillmayer/hyphtext/core/locale"
	"github.com/npillmayer/hyphtext/core/parameters"
)

// SoftHyphen is the default separator, U+00AD SOFT HYPHEN.
const SoftHyphen = parameters.SoftHyphen

// NoBreak is returned by an oracle if a word has no further break position.
// Any non-positive offset is treated the same way.
const NoBreak = 0

// Oracle supplies legal hyphenation positions for words.
//
// IsAvailable reports whether hyphenation data exists for a locale. It must
// not have side effects.
//
// NextBreak returns the largest legal break offset strictly less than
// before, or NoBreak. Offsets are rune indices into word; a break at offset
// i means a separator may be placed immediately before rune i. For a given
// word and locale, answers must be deterministic. An error signals that the
// oracle itself failed, not that there is no break.
type Oracle interface {
	IsAvailable(loc locale.Locale) bool
	NextBreak(word string, before int, loc locale.Locale) (int, error)
}

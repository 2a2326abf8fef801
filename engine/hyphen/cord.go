package hyphen

import (
	"github.com/npillmayer/cords"
)

// Cord hyphenates a text and returns it as a cord. Every token of the text
// becomes a leaf of type *Fragment, so consumers such as line breakers can
// walk words and whitespace separately. An empty text results in a void cord.
func (h *Hyphenator) Cord(text string) (cords.Cord, error) {
	if text == "" {
		return cords.Cord{}, nil
	}
	b := cords.NewBuilder()
	if !h.IsAvailable() {
		b.Append(&Fragment{content: text})
		return b.Cord(), nil
	}
	err := eachToken(h.prepare(text), h.conf, func(tok token) error {
		if !tok.word {
			b.Append(&Fragment{content: tok.text})
			return nil
		}
		breaks, err := Breaks(h.oracle, tok.text, h.loc)
		if err != nil {
			return err
		}
		b.Append(&Fragment{
			content: insertSeparators(tok.text, h.conf.separator, breaks),
			word:    tok.text,
			breaks:  breaks,
		})
		return nil
	})
	if err != nil {
		return cords.Cord{}, err
	}
	return b.Cord(), nil
}

// Fragment is the leaf type of cords created by Hyphenator.Cord.
type Fragment struct {
	content string // text including separators
	word    string // unhyphenated word, empty for non-word fragments
	breaks  []int  // rune offsets into word, decreasing
}

// Weight of a fragment is its string length in bytes.
func (f *Fragment) Weight() uint64 {
	return uint64(len(f.content))
}

func (f *Fragment) String() string {
	return f.content
}

// IsWord is true for fragments holding a (possibly hyphenated) word.
func (f *Fragment) IsWord() bool {
	return f.word != ""
}

// Word returns the unhyphenated word of a fragment.
func (f *Fragment) Word() string {
	return f.word
}

// Breaks returns the break offsets of the fragment's word, in decreasing order.
func (f *Fragment) Breaks() []int {
	return f.breaks
}

// Split splits a fragment at byte position i. The resulting fragments
// are plain text and carry no word information.
func (f *Fragment) Split(i uint64) (cords.Leaf, cords.Leaf) {
	return &Fragment{content: f.content[:i]}, &Fragment{content: f.content[i:]}
}

// Substring returns a byte segment of the fragment's text.
func (f *Fragment) Substring(i, j uint64) []byte {
	return []byte(f.content)[i:j]
}

var _ cords.Leaf = &Fragment{}

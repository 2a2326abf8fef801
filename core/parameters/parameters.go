/*
Package parameters holds registers for hyphenation settings.

Registers may be grouped: values pushed after Begingroup are visible until
the matching Endgroup, after which the enclosing values re-appear. This
mirrors TeX's grouping of typesetting parameters.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package parameters

// HyphenationParameter is a key for a hyphenation register.
type HyphenationParameter int

const (
	none HyphenationParameter = iota
	P_LANGUAGE
	P_SEPARATOR
	P_MINHYPHENLENGTH
	P_WHITESPACE
	P_NORMALIZE
	P_STOPPER
)

// Whitespace policies for P_WHITESPACE.
const (
	WhitespacePreserve int = iota // keep every run of whitespace verbatim
	WhitespaceCollapse            // split on whitespace, re-join with single spaces
	WordBoundaries                // segment by UAX#29 word boundaries
)

// SoftHyphen is the default separator, U+00AD.
const SoftHyphen = "\u00ad"

// ParameterGroup holds the values pushed within one grouping level.
type ParameterGroup struct {
	params map[HyphenationParameter]interface{}
	level  int
	next   *ParameterGroup
}

// Registers is a set of hyphenation parameters. It is not safe for
// concurrent modification.
type Registers struct {
	base       [P_STOPPER]interface{}
	groups     *ParameterGroup
	grouplevel int
}

// ----------------------------------------------------------------------

// NewRegisters creates a register set initialized to default values.
func NewRegisters() *Registers {
	regs := &Registers{}
	initParameters(&regs.base)
	return regs
}

func initParameters(p *[P_STOPPER]interface{}) {
	p[P_LANGUAGE] = "en_US"              // a locale identifier
	p[P_SEPARATOR] = SoftHyphen          // a string
	p[P_MINHYPHENLENGTH] = 0             // # of runes a word must have to be hyphenated
	p[P_WHITESPACE] = WhitespacePreserve // whitespace policy
	p[P_NORMALIZE] = false               // NFC-normalize input text
}

// Begingroup opens a new grouping level.
func (regs *Registers) Begingroup() {
	regs.grouplevel++
}

// Endgroup closes the current grouping level, dropping all values pushed
// within it.
func (regs *Registers) Endgroup() {
	if regs.grouplevel == 0 {
		return
	}
	if regs.groups != nil && regs.groups.level == regs.grouplevel {
		regs.groups = regs.groups.next
	}
	regs.grouplevel--
}

// Push sets a parameter value at the current grouping level.
func (regs *Registers) Push(key HyphenationParameter, value interface{}) {
	if key <= none || key >= P_STOPPER {
		panic("parameter key outside range of hyphenation parameters")
	}
	if regs.grouplevel > 0 {
		var g *ParameterGroup
		if regs.groups == nil || regs.groups.level < regs.grouplevel {
			g = &ParameterGroup{}
			g.params = make(map[HyphenationParameter]interface{})
			g.level = regs.grouplevel
			g.next = regs.groups
			regs.groups = g
		} else {
			g = regs.groups
		}
		g.params[key] = value
	} else {
		regs.base[key] = value
	}
}

// Get returns the innermost value of a parameter.
func (regs *Registers) Get(key HyphenationParameter) interface{} {
	if key <= none || key >= P_STOPPER {
		panic("parameter key outside range of hyphenation parameters")
	}
	var value interface{}
	if regs.grouplevel > 0 {
		for g := regs.groups; g != nil; g = g.next {
			value = g.params[key]
			if value != nil {
				break
			}
		}
	}
	if value == nil {
		value = regs.base[key]
	}
	return value
}

// S returns a string parameter.
func (regs *Registers) S(key HyphenationParameter) string {
	return regs.Get(key).(string)
}

// N returns a numeric parameter.
func (regs *Registers) N(key HyphenationParameter) int {
	return regs.Get(key).(int)
}

// B returns a flag parameter.
func (regs *Registers) B(key HyphenationParameter) bool {
	return regs.Get(key).(bool)
}

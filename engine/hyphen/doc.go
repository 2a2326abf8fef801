/*
Package hyphen inserts hyphenation separators into words and texts.

Finding legal break positions is not done here. It is delegated to an
Oracle, which knows the hyphenation rules for one or more locales. This
package asks the oracle for break offsets, one after another, and splices
a separator into the word at each of them:

    out, err := hyphen.HyphenateText("Kraftfahrzeug", "-", locale.Make("de_CH"), oracle)
    // out == "Kraft-fahr-zeug"

If an oracle has no data for a locale, text is returned unchanged.

Offsets are rune indices into the unhyphenated word. An oracle is queried
with a cursor starting at the word's rune length, and every answer must be
strictly less than the previous one. Separators are inserted in the
original word's index space, so earlier insertions never shift later ones.

Functions in this package hold no state between calls and are safe for
concurrent use, provided the oracle is.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package hyphen

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'hyphtext.hyphen'.
func tracer() tracing.Trace {
	return tracing.Select("hyphtext.hyphen")
}

/*
Package oracle is the root of hyphenation oracles, i.e. sources of legal
hyphenation positions for words.

Sub-packages provide oracles built from explicit exception lists
(package exceptions), from TeX hyphenation patterns (package patterns),
and a registry combining oracles for many locales (package registry).
All of them satisfy hyphen.Oracle.

This package holds helpers shared by oracle implementations, most notably
a reader for TeX hyphenation files as found at

    https://github.com/hyphenation/tex-hyphen/tree/master/hyph-utf8/tex/generic/hyph-utf8/patterns/tex

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package oracle

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'hyphtext.oracle'.
func tracer() tracing.Trace {
	return tracing.Select("hyphtext.oracle")
}

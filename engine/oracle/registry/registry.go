/*
Package registry combines hyphenation oracles for many locales into one.

A Registry matches a requested locale against the locales of all registered
oracles, using golang.org/x/text/language's matcher, and delegates to the
best match. Matches must share the requested base language: "de_CH" may be
served by "de", but "da" is never served by a related language like "nb". Pattern files may be loaded in bulk from a directory, named
after the hyph-utf8 conventions:

    hyph-de-1996.tex   hyph-en-us.pat.txt   hyph-fr.tex

The default pattern directory is taken from the global configuration key
"hyphenation-patterns".

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package registry

import (
	"sync"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/npillmayer/hyphtext/core"
	"github.com/npillmayer/hyphtext/core/locale"
	"github.com/npillmayer/hyphtext/engine/hyphen"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/text/language"
)

// tracer traces with key 'hyphtext.oracle'.
func tracer() tracing.Trace {
	return tracing.Select("hyphtext.oracle")
}

// Registry is a hyphenation oracle delegating to per-locale oracles.
// It is safe for concurrent use.
type Registry struct {
	mx         sync.RWMutex
	oracles    *treemap.Map // locale identifier -> entry
	matcher    language.Matcher
	tags       []language.Tag
	confidence language.Confidence
}

type entry struct {
	loc    locale.Locale
	oracle hyphen.Oracle
}

var _ hyphen.Oracle = &Registry{}

// New creates an empty registry. Locales will be matched if the matcher's
// confidence is at least language.High.
func New() *Registry {
	return &Registry{
		oracles:    treemap.NewWithStringComparator(),
		confidence: language.High,
	}
}

// Register adds an oracle for a locale, replacing an earlier registration
// for the same locale.
func (reg *Registry) Register(loc locale.Locale, oracle hyphen.Oracle) error {
	if oracle == nil || loc.IsUndefined() {
		return core.Error(core.EINVALID, "cannot register oracle for locale %q", loc)
	}
	reg.mx.Lock()
	defer reg.mx.Unlock()
	reg.oracles.Put(loc.String(), entry{loc: loc, oracle: oracle})
	reg.rebuildMatcher()
	tracer().Debugf("registered hyphenation oracle for %s", loc)
	return nil
}

// rebuildMatcher must be called with the write lock held.
func (reg *Registry) rebuildMatcher() {
	reg.tags = make([]language.Tag, 0, reg.oracles.Size())
	for _, v := range reg.oracles.Values() {
		reg.tags = append(reg.tags, v.(entry).loc.Tag())
	}
	reg.matcher = language.NewMatcher(reg.tags)
}

// Locales returns the registered locales, sorted by identifier.
func (reg *Registry) Locales() []locale.Locale {
	reg.mx.RLock()
	defer reg.mx.RUnlock()
	locs := make([]locale.Locale, 0, reg.oracles.Size())
	for _, v := range reg.oracles.Values() {
		locs = append(locs, v.(entry).loc)
	}
	return locs
}

// Lookup finds the oracle best matching loc. Only locales of the same base
// language match; regional variants fall back to each other. If no registered
// locale is close enough, an error with code core.EUNSUPPORTED is returned.
func (reg *Registry) Lookup(loc locale.Locale) (hyphen.Oracle, locale.Locale, error) {
	reg.mx.RLock()
	defer reg.mx.RUnlock()
	if len(reg.tags) == 0 || loc.IsUndefined() {
		return nil, locale.Undefined, core.Error(core.EUNSUPPORTED, "no hyphenation data for %s", loc)
	}
	_, index, conf := reg.matcher.Match(loc.Tag())
	if conf < reg.confidence {
		return nil, locale.Undefined, core.Error(core.EUNSUPPORTED, "no hyphenation data for %s", loc)
	}
	e := reg.entryFor(reg.tags[index])
	if !e.loc.SameLanguage(loc) {
		tracer().Debugf("locale %s would match %s, refusing foreign language", loc, e.loc)
		return nil, locale.Undefined, core.Error(core.EUNSUPPORTED, "no hyphenation data for %s", loc)
	}
	tracer().Debugf("locale %s matched %s (%s)", loc, e.loc, conf)
	return e.oracle, e.loc, nil
}

func (reg *Registry) entryFor(tag language.Tag) entry {
	v, _ := reg.oracles.Get(locale.FromTag(tag).String())
	return v.(entry)
}

// IsAvailable is part of interface hyphen.Oracle.
func (reg *Registry) IsAvailable(loc locale.Locale) bool {
	oracle, matched, err := reg.Lookup(loc)
	if err != nil {
		return false
	}
	return oracle.IsAvailable(matched)
}

// NextBreak is part of interface hyphen.Oracle.
// The registered oracle is queried with its own locale.
func (reg *Registry) NextBreak(word string, before int, loc locale.Locale) (int, error) {
	oracle, matched, err := reg.Lookup(loc)
	if err != nil {
		return hyphen.NoBreak, err
	}
	return oracle.NextBreak(word, before, matched)
}

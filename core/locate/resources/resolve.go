package resources

import (
	"context"
	"embed"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/npillmayer/hyphtext/core"
	"github.com/npillmayer/hyphtext/core/locale"
	"github.com/npillmayer/schuko/gconf"
)

// URLConfig is the configuration key for the base URL of pattern downloads.
const URLConfig = "hyphenation-url"

// DefaultURL points to the TeX pattern files of the hyph-utf8 project.
const DefaultURL = "https://raw.githubusercontent.com/hyphenation/tex-hyphen/master/hyph-utf8/tex/generic/hyph-utf8/patterns/tex/"

//go:embed packaged/*
var packaged embed.FS

// Packaged returns the hyphenation files shipped with the application.
func Packaged() fs.FS {
	sub, err := fs.Sub(packaged, "packaged")
	if err != nil {
		panic(err) // embedded folder is always present
	}
	return sub
}

// orthographies lists hyph-utf8 file ids for languages which are published
// per orthography or script only.
var orthographies = map[string][]string{
	"de":    {"de-1996", "de-1901"},
	"de-ch": {"de-ch-1901"},
	"el":    {"el-monoton", "el-polyton"},
	"en":    {"en-us", "en-gb"},
	"mn":    {"mn-cyrl"},
	"sr":    {"sr-cyrl"},
	"zh":    {"zh-latn-pinyin"},
}

// PatternFileNames returns the hyph-utf8 file names which may hold
// patterns for loc, most specific first. Candidates are derived from loc
// and its parent locales, e.g. for de_CH:
//
//    hyph-de-ch.tex  hyph-de-ch-1901.tex  hyph-de.tex  hyph-de-1996.tex  hyph-de-1901.tex
//
func PatternFileNames(loc locale.Locale) []string {
	var names []string
	seen := make(map[string]bool)
	add := func(id string) {
		if name := "hyph-" + id + ".tex"; !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	for _, l := range loc.Fallbacks() {
		id := strings.ToLower(strings.ReplaceAll(l.String(), "_", "-"))
		add(id)
		for _, o := range orthographies[id] {
			add(o)
		}
	}
	return names
}

// PatternsPromise delivers the local path of a pattern file.
type PatternsPromise interface {
	Path() (string, error)
}

type patternsLoader struct {
	await func(ctx context.Context) (string, error)
}

func (loader patternsLoader) Path() (string, error) {
	return loader.await(context.Background())
}

type pathPlusErr struct {
	path string
	err  error
}

// ResolvePatterns locates the pattern file for loc in the cache folder
// "patterns", downloading it if it is not cached yet. Candidate names are
// taken from PatternFileNames; the first one cached or downloadable wins.
func ResolvePatterns(ctx context.Context, loc locale.Locale) PatternsPromise {
	ch := make(chan pathPlusErr, 1)
	go func(ch chan<- pathPlusErr) {
		defer close(ch)
		result := pathPlusErr{}
		if loc.IsUndefined() {
			result.err = core.Error(core.EINVALID, "cannot resolve patterns for undefined locale")
			ch <- result
			return
		}
		cachedir, err := CacheDirPath("patterns")
		if err != nil {
			result.err = err
			ch <- result
			return
		}
		result.path, result.err = resolveCandidates(ctx, cachedir, PatternFileNames(loc))
		if result.err != nil {
			result.err = core.WrapError(result.err, core.Code(result.err), "no hyphenation patterns for %s", loc)
		}
		ch <- result
	}(ch)
	return patternsLoader{
		await: func(ctx context.Context) (string, error) {
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case r := <-ch:
				return r.path, r.err
			}
		},
	}
}

// resolveCandidates returns the first cached candidate, or else downloads
// candidates in order until one exists upstream. Only a missing remote file
// moves on to the next candidate.
func resolveCandidates(ctx context.Context, cachedir string, names []string) (string, error) {
	for _, name := range names {
		path := filepath.Join(cachedir, name)
		if _, err := os.Stat(path); err == nil {
			tracer().Debugf("patterns %s found in cache", name)
			return path, nil
		}
	}
	base := gconf.GetString(URLConfig)
	if base == "" {
		base = DefaultURL
	}
	base = strings.TrimSuffix(base, "/") + "/"
	err := core.Error(core.EMISSING, "no pattern file to try")
	for _, name := range names {
		path := filepath.Join(cachedir, name)
		if err = DownloadCachedFile(ctx, path, base+name); err == nil {
			return path, nil
		}
		if core.Code(err) != core.EMISSING {
			return "", err
		}
		tracer().Debugf("no pattern file %s upstream", name)
	}
	return "", err
}

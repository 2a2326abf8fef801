package registry

import (
	"io"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/npillmayer/hyphtext/core"
	"github.com/npillmayer/hyphtext/core/locale"
	"github.com/npillmayer/hyphtext/engine/oracle/exceptions"
	"github.com/npillmayer/hyphtext/engine/oracle/patterns"
	"github.com/npillmayer/schuko/gconf"
)

// ConfigKey is the configuration key for the default pattern directory.
const ConfigKey = "hyphenation-patterns"

// PatternDirectory returns the pattern directory from the global
// configuration, or "" if none is configured.
func PatternDirectory() string {
	dir := gconf.GetString(ConfigKey)
	tracer().Debugf("config[%s] = %s", ConfigKey, dir)
	return dir
}

// file suffixes, by kind
var (
	patternSuffixes   = []string{".pat.txt", ".tex"}
	exceptionSuffixes = []string{".hyp.txt"}
)

// LoadDirectory loads all hyphenation files from dir and registers them.
// If dir is empty, the configured pattern directory is used.
// It returns the number of locales registered.
func (reg *Registry) LoadDirectory(dir string) (int, error) {
	if dir == "" {
		dir = PatternDirectory()
	}
	if dir == "" {
		return 0, core.Error(core.EMISSING, "no directory for hyphenation patterns configured")
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return 0, core.Error(core.EMISSING, "cannot read hyphenation patterns from %s", dir)
	}
	n, err := reg.LoadFS(os.DirFS(dir))
	tracer().Infof("registered hyphenation data for %d locales from %s", n, dir)
	return n, err
}

// LoadFS loads all hyphenation files from the top level of fsys and
// registers them. Pattern files are loaded first; exception files
// (*.hyp.txt) are added to the pattern dictionary of their locale, or
// registered on their own if there is none. It returns the number of
// locales registered.
func (reg *Registry) LoadFS(fsys fs.FS) (int, error) {
	files, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return 0, core.WrapError(err, core.EMISSING, "cannot read hyphenation patterns")
	}
	names := make([]string, 0, len(files))
	for _, f := range files {
		if !f.IsDir() {
			names = append(names, f.Name())
		}
	}
	sort.Strings(names)
	dicts := make(map[string]*patterns.Dictionary)
	for _, name := range names {
		loc, ok := localeFromFilename(name, patternSuffixes)
		if !ok {
			continue
		}
		dict, err := loadFile(fsys, name, func(r io.Reader) (*patterns.Dictionary, error) {
			return patterns.Load(loc, r)
		})
		if err != nil {
			return len(dicts), err
		}
		dicts[loc.String()] = dict
		if err = reg.Register(loc, dict); err != nil {
			return len(dicts), err
		}
	}
	count := len(dicts)
	for _, name := range names {
		loc, ok := localeFromFilename(name, exceptionSuffixes)
		if !ok {
			continue
		}
		list, err := loadFile(fsys, name, func(r io.Reader) (*exceptions.List, error) {
			return exceptions.Load(loc, r)
		})
		if err != nil {
			return count, err
		}
		if dict, ok := dicts[loc.String()]; ok {
			for _, e := range list.Entries() {
				dict.AddException(e)
			}
			continue
		}
		if err = reg.Register(loc, list); err != nil {
			return count, err
		}
		count++
	}
	return count, nil
}

func loadFile[T any](fsys fs.FS, name string, load func(io.Reader) (T, error)) (T, error) {
	var zero T
	f, err := fsys.Open(name)
	if err != nil {
		return zero, core.WrapError(err, core.EMISSING, "cannot open %s", name)
	}
	defer f.Close()
	return load(f)
}

// localeFromFilename extracts the locale from names like "hyph-de-1996.tex".
func localeFromFilename(name string, suffixes []string) (locale.Locale, bool) {
	if !strings.HasPrefix(name, "hyph-") {
		return locale.Undefined, false
	}
	for _, suffix := range suffixes {
		if strings.HasSuffix(name, suffix) {
			id := strings.TrimSuffix(strings.TrimPrefix(name, "hyph-"), suffix)
			loc, err := locale.Parse(id)
			if err != nil {
				tracer().Infof("skipping hyphenation file %s: %v", name, err)
				return locale.Undefined, false
			}
			return loc, true
		}
	}
	return locale.Undefined, false
}

package oracle

import (
	"bufio"
	"io"
	"strings"

	"github.com/npillmayer/hyphtext/core"
)

// TeXFile holds the contents of a TeX hyphenation file.
//
// Patterns and Exceptions are the entries of \patterns{…} and
// \hyphenation{…} blocks. Files without any block, e.g. the .pat.txt and
// .hyp.txt files of hyph-utf8, deliver their entries in Plain.
type TeXFile struct {
	Patterns   []string
	Exceptions []string
	Plain      []string
}

const (
	outside = iota
	inPatterns
	inExceptions
)

// ReadTeX reads a TeX hyphenation file. A '%' starts a comment extending to
// the end of the line. TeX commands other than \patterns and \hyphenation
// are skipped up to the end of their line.
func ReadTeX(r io.Reader) (*TeXFile, error) {
	tex := &TeXFile{}
	state := outside
	sawBlock := false
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := scanner.Text()
		if i := strings.IndexByte(line, '%'); i >= 0 {
			line = line[:i]
		}
	fields:
		for _, field := range strings.Fields(line) {
			for field != "" {
				if state == outside {
					switch {
					case strings.HasPrefix(field, `\patterns{`):
						state, sawBlock = inPatterns, true
						field = field[len(`\patterns{`):]
					case strings.HasPrefix(field, `\hyphenation{`):
						state, sawBlock = inExceptions, true
						field = field[len(`\hyphenation{`):]
					case strings.HasPrefix(field, `\`):
						tracer().Debugf("line %d: skipping TeX command %s", lineno, field)
						break fields
					default:
						tex.Plain = append(tex.Plain, field)
						field = ""
					}
					continue
				}
				entry, rest, closed := strings.Cut(field, "}")
				if entry != "" {
					if state == inPatterns {
						tex.Patterns = append(tex.Patterns, entry)
					} else {
						tex.Exceptions = append(tex.Exceptions, entry)
					}
				}
				if closed {
					state = outside
				}
				field = rest
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, core.WrapError(err, core.EINVALID, "cannot read hyphenation file")
	}
	if state != outside {
		return nil, core.Error(core.EINVALID, "hyphenation file: unterminated block at end of input")
	}
	if sawBlock && len(tex.Plain) > 0 {
		tracer().Infof("hyphenation file: ignoring %d entries outside of blocks", len(tex.Plain))
		tex.Plain = nil
	}
	return tex, nil
}

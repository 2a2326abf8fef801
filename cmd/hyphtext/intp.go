package main

import (
	"context"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/hyphtext/core"
	"github.com/npillmayer/hyphtext/core/locale"
	"github.com/npillmayer/hyphtext/core/locate/resources"
	params "github.com/npillmayer/hyphtext/core/parameters"
	"github.com/npillmayer/hyphtext/engine/hyphen"
	"github.com/npillmayer/hyphtext/engine/oracle/exceptions"
	"github.com/npillmayer/hyphtext/engine/oracle/patterns"
	"github.com/npillmayer/hyphtext/engine/oracle/registry"
	"github.com/pterm/pterm"
)

// Intp is our interpreter object
type Intp struct {
	reg  *registry.Registry
	regs *params.Registers
	repl *readline.Instance
}

// NewIntp creates an interpreter hyphenating with the oracles of reg.
func NewIntp(reg *registry.Registry) *Intp {
	return &Intp{
		reg:  reg,
		regs: params.NewRegisters(),
	}
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		cmd, err := parseCommand(line)
		if err != nil {
			pterm.Error.Println(core.UserMessage(err))
			continue
		}
		quit, err := intp.execute(cmd)
		if err != nil {
			tracer().Errorf(err.Error())
			pterm.Error.Println(core.UserMessage(err))
			continue
		}
		if quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

// Command is a parsed input line.
type Command struct {
	code int
	args []string
	text string // text to hyphenate
}

const (
	HYPHENATE int = iota
	QUIT
	HELP
	LOCALE
	SEPARATOR
	LOCALES
	TRY
	FETCH
)

var commands = map[string]struct {
	code  int
	nargs int
}{
	"quit":    {QUIT, 0},
	"q":       {QUIT, 0},
	"help":    {HELP, 0},
	"locale":  {LOCALE, 1},
	"sep":     {SEPARATOR, 1},
	"locales": {LOCALES, 0},
	"try":     {TRY, 1},
	"fetch":   {FETCH, 1},
}

// parseCommand parses lines like ":locale de_CH" or ":try fr hippopotame".
// Lines not starting with a colon are text to hyphenate.
func parseCommand(line string) (*Command, error) {
	if !strings.HasPrefix(line, ":") {
		return &Command{code: HYPHENATE, text: line}, nil
	}
	fields := strings.Fields(line[1:])
	if len(fields) == 0 {
		return &Command{code: HELP}, nil
	}
	c, ok := commands[strings.ToLower(fields[0])]
	if !ok {
		return nil, core.Error(core.EINVALID, "unknown command :%s, try :help", fields[0])
	}
	cmd := &Command{code: c.code}
	rest := fields[1:]
	if len(rest) < c.nargs {
		return nil, core.Error(core.EINVALID, "command :%s needs %d argument(s)", fields[0], c.nargs)
	}
	cmd.args = rest[:c.nargs]
	if c.code == TRY {
		cmd.text = strings.Join(rest[c.nargs:], " ")
	}
	tracer().Debugf("parse command = %v", cmd)
	return cmd, nil
}

func (intp *Intp) execute(cmd *Command) (bool, error) {
	switch cmd.code {
	case QUIT:
		return true, nil
	case HELP:
		help()
	case LOCALE:
		loc, err := locale.Parse(cmd.args[0])
		if err != nil {
			return false, err
		}
		intp.regs.Push(params.P_LANGUAGE, loc.String())
		if !intp.reg.IsAvailable(loc) {
			pterm.Warning.Printfln("no hyphenation data for %s, text will pass unchanged", loc.Name())
		} else {
			pterm.Info.Printfln("hyphenating for %s", loc.Name())
		}
	case SEPARATOR:
		intp.regs.Push(params.P_SEPARATOR, separator(cmd.args[0]))
	case LOCALES:
		locs := intp.reg.Locales()
		if len(locs) == 0 {
			pterm.Info.Println("no hyphenation data loaded")
		}
		for _, loc := range locs {
			pterm.Printfln("%-10s %s", loc, loc.Name())
		}
	case TRY:
		out, err := intp.try(cmd.args[0], cmd.text)
		if err != nil {
			return false, err
		}
		pterm.Println(out)
	case FETCH:
		if err := intp.fetch(cmd.args[0]); err != nil {
			return false, err
		}
	case HYPHENATE:
		out, err := intp.hyphenate(cmd.text)
		if err != nil {
			return false, err
		}
		pterm.Println(out)
	}
	return false, nil
}

// hyphenate hyphenates text with the current register values.
func (intp *Intp) hyphenate(text string) (string, error) {
	h, err := hyphen.New(intp.reg, intp.regs)
	if err != nil {
		return "", err
	}
	return h.Text(text)
}

// try hyphenates text for a locale, leaving the current locale untouched.
func (intp *Intp) try(loc string, text string) (string, error) {
	intp.regs.Begingroup()
	defer intp.regs.Endgroup()
	intp.regs.Push(params.P_LANGUAGE, loc)
	return intp.hyphenate(text)
}

// fetch resolves the hyph-utf8 pattern file for a locale and loads it.
func (intp *Intp) fetch(id string) error {
	loc, err := locale.Parse(id)
	if err != nil {
		return err
	}
	spinner, _ := pterm.DefaultSpinner.Start("fetching patterns for " + loc.Name())
	path, err := resources.ResolvePatterns(context.Background(), loc).Path()
	if err != nil {
		spinner.Fail(core.UserMessage(err))
		return err
	}
	dict, err := loadPatternFile(loc, path)
	if err != nil {
		spinner.Fail(core.UserMessage(err))
		return err
	}
	if oracle, _, err := intp.reg.Lookup(loc); err == nil {
		if list, ok := oracle.(*exceptions.List); ok {
			for _, e := range list.Entries() {
				dict.AddException(e)
			}
		}
	}
	spinner.Success("loaded patterns for " + loc.Name())
	return intp.reg.Register(loc, dict)
}

func loadPatternFile(loc locale.Locale, path string) (*patterns.Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, core.WrapError(err, core.EMISSING, "cannot open %s", path)
	}
	defer f.Close()
	return patterns.Load(loc, f)
}

func help() {
	pterm.Println(`Lines not starting with ':' are hyphenated. Commands:
  :locale <id>        hyphenate for locale <id>, e.g. de_CH
  :sep <s>            insert <s> at break positions, 'shy' for soft hyphen
  :locales            list locales with hyphenation data
  :try <id> <text>    hyphenate <text> for locale <id> once
  :fetch <id>         download hyph-utf8 patterns for locale <id>
  :help               show this message
  :quit               leave`)
}

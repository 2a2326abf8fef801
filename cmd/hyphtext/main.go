/*
Command hyphtext hyphenates text from the command line.

Words given as arguments are hyphenated and printed. Without arguments,
hyphtext starts an interactive REPL:

    hyphtext -patterns ./hyph-utf8 -locale de_CH -sep -
    hyphtext -exceptions words.hyp.txt Kraftfahrzeughaftpflichtversicherung

Type :help in the REPL for a list of commands.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/hyphtext/core"
	"github.com/npillmayer/hyphtext/core/locale"
	"github.com/npillmayer/hyphtext/core/locate/resources"
	params "github.com/npillmayer/hyphtext/core/parameters"
	"github.com/npillmayer/hyphtext/engine/oracle/exceptions"
	"github.com/npillmayer/hyphtext/engine/oracle/patterns"
	"github.com/npillmayer/hyphtext/engine/oracle/registry"
	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
)

// tracer traces with key 'hyphtext.cli'
func tracer() tracing.Trace {
	return tracing.Select("hyphtext.cli")
}

func main() {
	initDisplay()

	// command line flags
	tlevel := flag.String("trace", "Error", "Trace level [Debug|Info|Error]")
	loc := flag.String("locale", "de_CH", "Locale to hyphenate for")
	sep := flag.String("sep", "shy", "Separator to insert, 'shy' for soft hyphen")
	patdir := flag.String("patterns", os.Getenv("HYPHTEXT_PATTERNS"), "Directory of hyph-*.tex pattern files")
	exc := flag.String("exceptions", "", "File of hyphenated words")
	fetch := flag.Bool("fetch", false, "Download hyph-utf8 patterns for the locale if missing")
	ws := flag.String("whitespace", "preserve", "Whitespace policy [preserve|collapse|words]")
	flag.Parse()

	// set up logging and configuration
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":      "go",
		"trace.hyphtext.cli":   *tlevel,
		registry.ConfigKey:     *patdir,
		resources.AppKeyConfig: "hyphtext",
	}
	gconf.Initialize(conf)
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())
	level := tracing.TraceLevelFromString(*tlevel)
	for _, key := range []string{"hyphtext.cli", "hyphtext.hyphen", "hyphtext.oracle"} {
		tracing.Select(key).SetTraceLevel(level)
	}
	tracer().Infof("Trace level is %s", *tlevel)

	// set up the interpreter
	intp := NewIntp(registry.New())
	if err := intp.setup(*loc, *sep, *ws); err != nil {
		pterm.Error.Println(core.UserMessage(err))
		os.Exit(2)
	}
	if err := intp.loadData(*exc); err != nil {
		pterm.Error.Println(core.UserMessage(err))
		os.Exit(3)
	}
	if *fetch {
		if err := intp.fetch(*loc); err != nil {
			pterm.Error.Println(core.UserMessage(err))
			os.Exit(3)
		}
	}
	if flag.NArg() > 0 {
		out, err := intp.hyphenate(strings.Join(flag.Args(), " "))
		if err != nil {
			pterm.Error.Println(core.UserMessage(err))
			os.Exit(4)
		}
		fmt.Println(out)
		return
	}

	// set up REPL
	pterm.Info.Println("Welcome to hyphtext") // colored welcome message
	repl, err := readline.New("hyph > ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(5)
	}
	defer repl.Close()
	intp.repl = repl
	pterm.Info.Println("Quit with <ctrl>D or :quit") // inform user how to stop the CLI
	intp.REPL()                                      // go into interactive mode
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// setup fills the interpreter's registers from the command line flags.
func (intp *Intp) setup(loc, sep, ws string) error {
	if _, err := locale.Parse(loc); err != nil {
		return err
	}
	policy, err := whitespacePolicy(ws)
	if err != nil {
		return err
	}
	intp.regs.Push(params.P_LANGUAGE, loc)
	intp.regs.Push(params.P_SEPARATOR, separator(sep))
	intp.regs.Push(params.P_WHITESPACE, policy)
	intp.regs.Push(params.P_NORMALIZE, true)
	return nil
}

// loadData loads the packaged exception lists, pattern files from the
// configured directory and an optional exception file. Exceptions are merged into the pattern
// dictionary of the current locale, if there is one.
func (intp *Intp) loadData(excfile string) error {
	if _, err := intp.reg.LoadFS(resources.Packaged()); err != nil {
		return err
	}
	if dir := registry.PatternDirectory(); dir != "" {
		n, err := intp.reg.LoadDirectory(dir)
		if err != nil {
			return err
		}
		pterm.Info.Printfln("loaded hyphenation data for %d locales", n)
	}
	if excfile == "" {
		return nil
	}
	f, err := os.Open(excfile)
	if err != nil {
		return core.WrapError(err, core.EMISSING, "cannot open exception file %s", excfile)
	}
	defer f.Close()
	loc, err := locale.Parse(intp.regs.S(params.P_LANGUAGE))
	if err != nil {
		return err
	}
	list, err := exceptions.Load(loc, f)
	if err != nil {
		return err
	}
	if oracle, _, err := intp.reg.Lookup(loc); err == nil {
		if dict, ok := oracle.(*patterns.Dictionary); ok {
			for _, e := range list.Entries() {
				dict.AddException(e)
			}
			return nil
		}
	}
	return intp.reg.Register(loc, list)
}

func whitespacePolicy(ws string) (int, error) {
	switch strings.ToLower(ws) {
	case "", "preserve":
		return params.WhitespacePreserve, nil
	case "collapse":
		return params.WhitespaceCollapse, nil
	case "words":
		return params.WordBoundaries, nil
	}
	return 0, core.Error(core.EINVALID, "unknown whitespace policy %q", ws)
}

// separator maps the names "shy" and "soft" to the soft hyphen. Everything
// else is taken literally.
func separator(sep string) string {
	switch strings.ToLower(sep) {
	case "shy", "soft":
		return params.SoftHyphen
	}
	return sep
}

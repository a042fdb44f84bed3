package main

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"braces.dev/errtrace"
	"github.com/peterbourgon/ff/v3"
	"go.abhg.dev/docu/internal/docstyle"
	"go.abhg.dev/docu/internal/flagvalue"
	"go.abhg.dev/docu/internal/html"
)

var (
	errHelp             = flag.ErrHelp
	errInvalidArguments = errors.New("invalid arguments")
)

// params holds all arguments for docu.
type params struct {
	version bool
	help    Help

	Format    flagvalue.Enum
	OutputDir string
	Template  string
	DocStyle  flagvalue.Enum
	Index     bool

	Verbose flagvalue.FileSwitch

	File string
}

// cliParser parses the command line arguments for docu.
type cliParser struct {
	Stdout io.Writer
	Stderr io.Writer
}

func (cmd *cliParser) newFlagSet() (*params, *flag.FlagSet) {
	flag := flag.NewFlagSet("docu", flag.ContinueOnError)
	flag.Usage = func() {
		DefaultHelp.Write(cmd.Stderr)
	}

	// ff reports command line errors alongside the other
	// parse phases. Keep the flag set itself quiet so that
	// every message prints exactly once.
	flag.SetOutput(io.Discard)

	var p params

	// Output:
	p.Format = flagvalue.Enum{Value: formatHTML, Choices: _formats}
	flag.Var(&p.Format, "format", "")
	flag.StringVar(&p.OutputDir, "output-dir", "", "")
	flag.StringVar(&p.Template, "template", html.DefaultTemplate, "")

	// Documentation dialect:
	p.DocStyle = flagvalue.Enum{Value: docstyle.Google, Choices: docstyle.Styles()}
	flag.Var(&p.DocStyle, "doc-style", "")

	// Generated site:
	flag.BoolVar(&p.Index, "index", false, "")

	// Program-level:
	flag.Var(&p.Verbose, "verbose", "")
	flag.BoolVar(&p.version, "version", false, "")
	flag.Var(&p.help, "help", "")
	flag.Var(&p.help, "h", "")
	flag.String("config", "", "")

	return &p, flag
}

func (cmd *cliParser) Parse(args []string) (*params, error) {
	p, flag := cmd.newFlagSet()
	err := ff.Parse(flag, args,
		ff.WithEnvVarPrefix("DOCU"),
		ff.WithConfigFileFlag("config"),
		ff.WithConfigFileParser(ff.PlainParser),
		ff.WithAllowMissingConfigFile(true),
	)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	args = flag.Args()

	if p.version {
		fmt.Fprintln(cmd.Stdout, "docu", _version)
		return nil, errHelp
	}

	if p.help == DefaultHelp && len(args) > 0 {
		// The user might have done "-h foo"
		// instead of "-h=foo".
		// If the argument is a known help topic,
		// take it.
		var h Help
		if err := h.Set(args[0]); err == nil {
			p.help = h
		}
	}

	switch p.help {
	case NoHelp:
		// proceed as usual
	default:
		if err := p.help.Write(cmd.Stderr); err != nil {
			fmt.Fprintln(cmd.Stderr, err)
		}
		return nil, errHelp
	}

	switch len(args) {
	case 1:
		p.File = args[0]
	case 0:
		fmt.Fprintln(cmd.Stderr, "Please provide a file to document.")
		UsageHelp.Write(cmd.Stderr)
		return nil, errInvalidArguments
	default:
		fmt.Fprintf(cmd.Stderr, "Expected a single file, got %q.\n", args)
		UsageHelp.Write(cmd.Stderr)
		return nil, errInvalidArguments
	}

	if p.Index && p.OutputDir == "" {
		fmt.Fprintln(cmd.Stderr, "-index requires -output-dir.")
		UsageHelp.Write(cmd.Stderr)
		return nil, errInvalidArguments
	}

	return p, nil
}

// docu generates documentation for Go files
// annotated with '///' marker comments.
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"braces.dev/errtrace"
	"go.abhg.dev/docu/internal/docitem"
	"go.abhg.dev/docu/internal/gosrc"
	"go.abhg.dev/docu/internal/html"
	"go.abhg.dev/docu/internal/markdown"
	"go.abhg.dev/docu/internal/marker"
	"go.abhg.dev/docu/internal/siteindex"
)

func main() {
	cmd := mainCmd{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
	os.Exit(cmd.Run(os.Args[1:]))
}

// mainCmd is the actual entry point to the program.
type mainCmd struct {
	Stdout io.Writer // == os.Stdout
	Stderr io.Writer // == os.Stderr

	log *log.Logger
}

func (cmd *mainCmd) Run(args []string) (exitCode int) {
	cmd.log = log.New(cmd.Stderr, "", 0)

	opts, err := (&cliParser{
		Stdout: cmd.Stdout,
		Stderr: cmd.Stderr,
	}).Parse(args)
	if err != nil {
		// '$cmd -h' should exit with zero.
		if errors.Is(err, errHelp) {
			return 0
		}
		// Parse already reported invalid arguments.
		if !errors.Is(err, errInvalidArguments) {
			cmd.log.Printf("Error: %v", err)
		}
		return 1
	}

	if err := cmd.run(opts); err != nil {
		if opts.Verbose.Bool() {
			cmd.log.Printf("Error: %v", errtrace.FormatString(err))
		} else {
			cmd.log.Printf("Error: %v", err)
		}
		return 1
	}
	return 0
}

func (cmd *mainCmd) run(opts *params) (err error) {
	verbosew, closeVerbose, err := opts.Verbose.Create(cmd.Stderr)
	if err != nil {
		return errtrace.Wrap(err)
	}
	defer func() {
		err = errors.Join(err, closeVerbose())
	}()

	vlog := log.New(verbosew, "", 0)
	vlog.Printf("Processing file: %v", opts.File)
	vlog.Printf("Output format: %v", opts.Format.Value)
	if opts.OutputDir != "" {
		vlog.Printf("Output directory: %v", opts.OutputDir)
	}

	if filepath.Ext(opts.File) != ".go" {
		return errtrace.Wrap(fmt.Errorf("file must be a Go (.go) file: %v", opts.File))
	}

	gen := Generator{
		Log:       vlog,
		Scanner:   new(marker.Scanner),
		Parser:    new(gosrc.Parser),
		Assembler: new(docitem.Assembler),
		Markdown:  new(markdown.Renderer),
		HTML: &html.Renderer{
			Template: opts.Template,
			DocStyle: opts.DocStyle.Value,
		},
		Format:    opts.Format.Value,
		Template:  opts.Template,
		OutputDir: opts.OutputDir,
	}
	if opts.Index {
		gen.Index = new(siteindex.Writer)
	}

	out, err := gen.ProcessFile(opts.File)
	if err != nil {
		return errtrace.Wrap(err)
	}

	if opts.OutputDir != "" {
		fmt.Fprintf(cmd.Stdout, "Documentation saved to: %s\n", out)
		return nil
	}

	if _, err := io.WriteString(cmd.Stdout, out); err != nil {
		return errtrace.Wrap(err)
	}
	if !strings.HasSuffix(out, "\n") {
		fmt.Fprintln(cmd.Stdout)
	}
	return nil
}

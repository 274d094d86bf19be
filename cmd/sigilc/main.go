// Package main implements the sigilc command-line interface.
//
// sigilc runs a single source file through the front end's full pipeline —
// lex, parse, lower types, and build the global symbol table — and reports
// the first diagnostic it hits, if any. It provides no code generation or
// execution: this binary is the front end only.
//
// Examples:
//
//	sigilc program.sg                  # run the pipeline, report errors
//	sigilc --tokens program.sg         # also dump the token stream
//	sigilc --ast --sym-table program.sg
//	sigilc --time program.sg           # print per-stage timings to stderr
//	sigilc --test                      # run the embedded scenario table
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/sigil-lang/sigilc/internal/diag"
	"github.com/sigil-lang/sigilc/internal/lexer"
	"github.com/sigil-lang/sigilc/internal/parser"
	"github.com/sigil-lang/sigilc/internal/printer"
	"github.com/sigil-lang/sigilc/internal/selftest"
	"github.com/sigil-lang/sigilc/internal/sema"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		showTokens   bool
		showAST      bool
		showTime     bool
		showSymTable bool
		runSelfTest  bool
	)

	cmd := &cobra.Command{
		Use:           "sigilc [flags] <source-file>",
		Short:         "Front end for the sigil language: lexer, parser, and type/symbol binding",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if runSelfTest {
				return nil
			}
			if len(args) != 1 {
				return fmt.Errorf("exactly one source file is required")
			}

			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if runSelfTest {
				passed, total := selftest.Run(cmd.OutOrStdout())
				if passed != total {
					return fmt.Errorf("%d/%d self-test cases failed", total-passed, total)
				}

				return nil
			}

			return run(cmd, args[0], runOptions{
				tokens:   showTokens,
				ast:      showAST,
				timing:   showTime,
				symTable: showSymTable,
			})
		},
	}

	flags := cmd.Flags()
	flags.BoolVar(&showTokens, "tokens", false, "print the token stream")
	flags.BoolVar(&showAST, "ast", false, "print the parsed AST")
	flags.BoolVar(&showTime, "time", false, "print per-stage timings to stderr")
	flags.BoolVar(&showSymTable, "sym-table", false, "print the global symbol table")
	flags.BoolVar(&runSelfTest, "test", false, "run the embedded self-test scenario table instead of a file")

	return cmd
}

type runOptions struct {
	tokens   bool
	ast      bool
	timing   bool
	symTable bool
}

// run executes the pipeline stages in the fixed order load → lex → parse →
// lower/bind, printing whichever intermediate products opts requested and
// timing each stage when opts.timing is set.
func run(cmd *cobra.Command, path string, opts runOptions) error {
	out := cmd.OutOrStdout()

	src, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	var lexStart time.Time
	if opts.timing {
		lexStart = time.Now()
	}

	if opts.tokens {
		toks, lexErr := lexer.Lex(src)
		if lexErr != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), lexErr)

			return lexErr
		}
		printer.Tokens(out, toks)
	}

	if opts.timing {
		fmt.Fprintf(cmd.ErrOrStderr(), "lex: %s\n", time.Since(lexStart))
	}

	var parseStart time.Time
	if opts.timing {
		parseStart = time.Now()
	}

	p := parser.New(src, path)
	prog, d := p.Parse()

	if opts.timing {
		fmt.Fprintf(cmd.ErrOrStderr(), "parse: %s\n", time.Since(parseStart))
	}

	if d != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), diag.Format(src, d))

		return d
	}

	if opts.ast {
		printer.AST(out, prog)
	}

	var bindStart time.Time
	if opts.timing {
		bindStart = time.Now()
	}

	scope, err := sema.BuildGlobalScope(prog)

	if opts.timing {
		fmt.Fprintf(cmd.ErrOrStderr(), "bind: %s\n", time.Since(bindStart))
	}

	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), err)

		return err
	}

	if opts.symTable {
		printer.SymbolTable(out, scope)
	}

	return nil
}

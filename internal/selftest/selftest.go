// Package selftest runs the front end's own end-to-end scenario table
// through the full load → lex → parse → lower → bind pipeline and reports
// pass/fail, without requiring an external test runner. It backs the CLI's
// --test flag.
package selftest

import (
	"fmt"
	"io"
	"strings"

	"github.com/sigil-lang/sigilc/internal/parser"
	"github.com/sigil-lang/sigilc/internal/sema"
	"github.com/sigil-lang/sigilc/internal/types"
)

// Case is one self-test fixture: a source snippet and the outcome the
// pipeline must produce for it.
type Case struct {
	Name string
	Src  string

	// WantFail, when true, asserts that some stage of the pipeline fails.
	// WantErrSubstr, if non-empty, must appear in that failure's message.
	WantFail      bool
	WantErrSubstr string

	// WantSymbols, when WantFail is false, lists the "name: type" lines the
	// resulting symbol table must contain (functions and variables
	// combined; order doesn't matter).
	WantSymbols []string
}

// Cases is the fixture table drawn from the front end's own documented
// end-to-end scenarios.
var Cases = []Case{
	{
		Name:        "top-level variable",
		Src:         `x: i32 = 10;`,
		WantSymbols: []string{"x: i32"},
	},
	{
		Name:        "function with params and return",
		Src:         `fn add(a: i32, b: i32) -> i32 { return a + b; }`,
		WantSymbols: []string{"add: fn(i32, i32) -> i32"},
	},
	{
		Name:        "array variable with initializer",
		Src:         `arr: i32[5] = { 1, 2, 3, 4, 5 };`,
		WantSymbols: []string{"arr: array(5, i32)"},
	},
	{
		Name:          "trailing comma in initializer",
		Src:           `arr: i32[5] = { 1, 2, 3, };`,
		WantFail:      true,
		WantErrSubstr: "trailing comma",
	},
	{
		Name:          "braceless if body",
		Src:           `fn main() { if (1) return; }`,
		WantFail:      true,
		WantErrSubstr: "expected",
	},
	{
		Name:          "unterminated parenthesized expression",
		Src:           `fn main() { x: i32 = (1 + 2; }`,
		WantFail:      true,
		WantErrSubstr: "RPAREN",
	},
	{
		Name:          "assignment at top level",
		Src:           `x = 10;`,
		WantFail:      true,
		WantErrSubstr: "expected",
	},
	{
		Name:          "duplicate function name",
		Src:           `fn f() -> i32 {} fn f() -> i32 {}`,
		WantFail:      true,
		WantErrSubstr: "duplicate",
	},
}

// Run executes every Case and writes a PASS/FAIL report to w. It returns
// the number of passing cases and the total.
func Run(w io.Writer) (passed, total int) {
	total = len(Cases)

	for _, c := range Cases {
		if ok, msg := runCase(c); ok {
			passed++
			fmt.Fprintf(w, "PASS  %s\n", c.Name)
		} else {
			fmt.Fprintf(w, "FAIL  %s: %s\n", c.Name, msg)
		}
	}

	fmt.Fprintf(w, "%d/%d passed\n", passed, total)

	return passed, total
}

func runCase(c Case) (ok bool, msg string) {
	p := parser.New([]byte(c.Src), c.Name)
	prog, diag := p.Parse()

	if diag != nil {
		if !c.WantFail {
			return false, "unexpected parse error: " + diag.Error()
		}
		if c.WantErrSubstr != "" && !containsFold(diag.Error(), c.WantErrSubstr) {
			return false, fmt.Sprintf("parse error %q does not contain %q", diag.Error(), c.WantErrSubstr)
		}

		return true, ""
	}

	scope, err := sema.BuildGlobalScope(prog)
	if err != nil {
		if !c.WantFail {
			return false, "unexpected binding error: " + err.Error()
		}
		if c.WantErrSubstr != "" && !containsFold(err.Error(), c.WantErrSubstr) {
			return false, fmt.Sprintf("binding error %q does not contain %q", err.Error(), c.WantErrSubstr)
		}

		return true, ""
	}

	if c.WantFail {
		return false, "expected failure but pipeline succeeded"
	}

	got := symbolLines(scope)
	for _, want := range c.WantSymbols {
		if !containsExact(got, want) {
			return false, fmt.Sprintf("symbol table %v missing %q", got, want)
		}
	}

	return true, ""
}

func symbolLines(scope *types.Scope) []string {
	var lines []string

	scope.Functions.ForEach(func(s *types.Symbol) {
		lines = append(lines, fmt.Sprintf("%s: %s", s.Name, s.Type))
	})
	scope.Variables.ForEach(func(s *types.Symbol) {
		lines = append(lines, fmt.Sprintf("%s: %s", s.Name, s.Type))
	})

	return lines
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

func containsExact(haystack []string, needle string) bool {
	for _, h := range haystack {
		if h == needle {
			return true
		}
	}

	return false
}

package parser

import "github.com/sigil-lang/sigilc/internal/lexer"

// Diagnostic is the single error record the parser can produce. Parsing
// reports at most one: the first failure aborts the pass entirely (no
// panic-mode recovery), so there is never a collection to manage the way the
// expression-language ancestor of this parser kept one.
type Diagnostic struct {
	Message string
	Token   lexer.Token
	Line    int
	Col     int
	File    string
	// UnderlinePrevious is set when the diagnostic is better anchored to the
	// end of the previous token than to the current one — the missing-`;`
	// case named in the error model.
	UnderlinePrevious bool
}

func (d *Diagnostic) Error() string {
	return d.Message
}

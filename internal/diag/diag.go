// Package diag renders a parser.Diagnostic as the single-line-plus-snippet
// format this front end's CLI prints: the failing token, then the source
// line it occurred on with a caret under the offending column.
package diag

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/sigil-lang/sigilc/internal/parser"
)

// Format renders d against src, the full byte contents of the file named in
// d.File. The caret column is the diagnostic column clamped to the printed
// line's length plus one; tabs in the source line are preserved verbatim in
// the spacing so the caret still lines up visually under a tab-indented
// line.
func Format(src []byte, d *parser.Diagnostic) string {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "Error: %s\n", d.Message)
	fmt.Fprintf(&buf, "Found Token: %s (%q) at %s:%d:%d\n",
		d.Token.Kind, d.Token.Lexeme, d.File, d.Line, d.Col)

	line := sourceLine(src, d.Line)
	buf.WriteString("    ")
	buf.WriteString(line)
	buf.WriteByte('\n')

	col := d.Col
	if max := len(line) + 1; col > max {
		col = max
	}
	if col < 1 {
		col = 1
	}

	buf.WriteString("    ")
	buf.WriteString(caretSpacing(line, col))
	buf.WriteByte('^')

	return buf.String()
}

// sourceLine returns the 1-based lineNo'th line of src, or "" if src has
// fewer lines.
func sourceLine(src []byte, lineNo int) string {
	lines := strings.Split(string(src), "\n")
	if lineNo < 1 || lineNo > len(lines) {
		return ""
	}

	return lines[lineNo-1]
}

// caretSpacing builds the whitespace prefix that lines the caret up under
// column col, copying tabs from line byte-for-byte and spaces for
// everything else so the caret's horizontal position matches the terminal's
// own tab rendering of the line above it.
func caretSpacing(line string, col int) string {
	n := col - 1
	copied := n
	if copied > len(line) {
		copied = len(line)
	}

	var b strings.Builder
	for i := 0; i < copied; i++ {
		if line[i] == '\t' {
			b.WriteByte('\t')
		} else {
			b.WriteByte(' ')
		}
	}
	for i := copied; i < n; i++ {
		b.WriteByte(' ')
	}

	return b.String()
}

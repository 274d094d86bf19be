package diag

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sigil-lang/sigilc/internal/lexer"
	"github.com/sigil-lang/sigilc/internal/parser"
)

func TestFormatCaretPosition(t *testing.T) {
	src := []byte("fn f() {\n  x: i32 = ;\n}\n")
	d := &parser.Diagnostic{
		Message: "expected an expression, found SEMI",
		Token:   lexer.Token{Kind: lexer.SEMI, Lexeme: ";", Line: 2, Col: 12},
		Line:    2,
		Col:     12,
		File:    "t.sg",
	}

	out := Format(src, d)
	lines := strings.Split(out, "\n")

	require.Equal(t, "    "+"  x: i32 = ;", lines[2])
	require.Len(t, lines[3], 16)
	require.True(t, strings.HasSuffix(lines[3], "^"))
}

func TestFormatClampsCaretToLineEnd(t *testing.T) {
	src := []byte("x: i32\n")
	d := &parser.Diagnostic{
		Message: "expected ';'",
		Token:   lexer.Token{Kind: lexer.EOF, Line: 1, Col: 50},
		Line:    1,
		Col:     50,
		File:    "t.sg",
	}

	out := Format(src, d)
	lines := strings.Split(out, "\n")

	require.Equal(t, "    "+"x: i32", lines[2])
	require.Equal(t, len("    x: i32")+1, len(lines[3]))
}

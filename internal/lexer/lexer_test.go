package lexer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNextTokenBasics(t *testing.T) {
	input := `x: i32 = 10;
fn add(a: i32, b: i32) -> i32 {
	return a + b;
}
`

	tests := []struct {
		kind   Kind
		lexeme string
	}{
		{IDENT, "x"}, {COLON, ":"}, {I32, "i32"}, {ASSIGN, "="}, {INT, "10"}, {SEMI, ";"},
		{FN, "fn"}, {IDENT, "add"}, {LPAREN, "("},
		{IDENT, "a"}, {COLON, ":"}, {I32, "i32"}, {COMMA, ","},
		{IDENT, "b"}, {COLON, ":"}, {I32, "i32"}, {RPAREN, ")"},
		{ARROW, "->"}, {I32, "i32"}, {LBRACE, "{"},
		{RETURN, "return"}, {IDENT, "a"}, {PLUS, "+"}, {IDENT, "b"}, {SEMI, ";"},
		{RBRACE, "}"},
		{EOF, ""},
	}

	l := New([]byte(input))
	for i, tt := range tests {
		tok, err := l.NextToken()
		require.NoError(t, err)
		require.Equalf(t, tt.kind, tok.Kind, "token %d", i)
		require.Equalf(t, tt.lexeme, tok.Lexeme, "token %d", i)
	}
}

func TestIdentifierBoundary(t *testing.T) {
	toks, err := Lex([]byte("i32 i32x"))
	require.NoError(t, err)
	require.Len(t, toks, 3)
	require.Equal(t, I32, toks[0].Kind)
	require.Equal(t, IDENT, toks[1].Kind)
	require.Equal(t, "i32x", toks[1].Lexeme)
}

func TestKeywordBoundaryAgainstLongerIdentifier(t *testing.T) {
	toks, err := Lex([]byte("if ifelse"))
	require.NoError(t, err)
	require.Equal(t, IF, toks[0].Kind)
	require.Equal(t, IDENT, toks[1].Kind)
	require.Equal(t, "ifelse", toks[1].Lexeme)
}

func TestLongestMatchOnOperators(t *testing.T) {
	toks, err := Lex([]byte("+= + ++"))
	require.NoError(t, err)
	require.Equal(t, PLUSEQ, toks[0].Kind)
	require.Equal(t, PLUS, toks[1].Kind)
	require.Equal(t, INC, toks[2].Kind)
}

func TestCommentsAreDropped(t *testing.T) {
	a, err := Lex([]byte("// a comment\ny: i32;"))
	require.NoError(t, err)
	b, err := Lex([]byte("y: i32;"))
	require.NoError(t, err)
	// Positions differ (the commented input starts on line 2), so compare
	// the kinds and lexemes of the two streams.
	require.Len(t, a, len(b))
	for i := range b {
		require.Equal(t, b[i].Kind, a[i].Kind)
		require.Equal(t, b[i].Lexeme, a[i].Lexeme)
	}
}

func TestFloatBeforeInt(t *testing.T) {
	toks, err := Lex([]byte("3.14 42"))
	require.NoError(t, err)
	require.Equal(t, FLOAT, toks[0].Kind)
	require.Equal(t, "3.14", toks[0].Lexeme)
	require.Equal(t, INT, toks[1].Kind)
}

func TestLinesAndColumns(t *testing.T) {
	toks, err := Lex([]byte("x;\ny;"))
	require.NoError(t, err)
	require.Equal(t, 1, toks[0].Line)
	require.Equal(t, 1, toks[0].Col)
	require.Equal(t, 2, toks[2].Line)
	require.Equal(t, 1, toks[2].Col)
}

func TestUnterminatedString(t *testing.T) {
	_, err := Lex([]byte(`x: i32 = "abc`))
	require.Error(t, err)
	var lexErr *Error
	require.ErrorAs(t, err, &lexErr)
	require.Equal(t, ErrUnterminatedString, lexErr.Kind)
}

func TestUnknownByte(t *testing.T) {
	_, err := Lex([]byte("x $ y;"))
	require.Error(t, err)
	var lexErr *Error
	require.ErrorAs(t, err, &lexErr)
	require.Equal(t, ErrUnknownToken, lexErr.Kind)
}

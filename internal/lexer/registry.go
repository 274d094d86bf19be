package lexer

import (
	"regexp"
	"sync"
)

// fixedSpelling is one entry in the longest-match table: a literal spelling
// mapped to the Kind it produces. isWord marks spellings that begin with a
// letter or underscore, which triggers the identifier-boundary check (the
// byte following the match must not continue an identifier).
type fixedSpelling struct {
	spelling string
	kind     Kind
	isWord   bool
}

// patternToken is one entry in the first-match table: a compiled pattern
// anchored at position zero, paired with the constant Kind it produces (the
// pattern alone determines it; identifiers that are really boolean literals
// never reach this table, since `true`/`false` are registered in the
// fixed-spelling table as word spellings and resolved there first).
type patternToken struct {
	name string
	re   *regexp.Regexp
	kind Kind
}

var (
	registryOnce   sync.Once
	fixedSpellings []fixedSpelling
	patternTokens  []patternToken
)

// InitRegistry builds the token tables exactly once; later calls are no-ops.
// It is safe to call redundantly (e.g. from multiple entry points) and is
// also invoked lazily by New on first use, so callers never need to call it
// directly.
func InitRegistry() {
	registryOnce.Do(buildRegistry)
}

func buildRegistry() {
	// Keyword (word) spellings — order within the list doesn't matter since
	// longest-match is computed over the whole table, but keywords are kept
	// grouped for readability.
	words := []struct {
		spelling string
		kind     Kind
	}{
		{"fn", FN}, {"const", CONST}, {"if", IF}, {"else", ELSE},
		{"while", WHILE}, {"for", FOR}, {"return", RETURN},
		{"break", BREAK}, {"continue", CONTINUE},
		{"true", TRUE}, {"false", FALSE},
		{"i8", I8}, {"i16", I16}, {"i32", I32}, {"i64", I64},
		{"u8", U8}, {"u16", U16}, {"u32", U32}, {"u64", U64},
		{"f32", F32}, {"f64", F64}, {"bool", BOOLTYPE},
	}
	for _, w := range words {
		fixedSpellings = append(fixedSpellings, fixedSpelling{w.spelling, w.kind, true})
	}

	// Punctuation/operator spellings, longest first per family so that a
	// naive scan order would already resolve ties; the matcher itself also
	// does an explicit longest-match pass so this ordering is cosmetic.
	puncts := []struct {
		spelling string
		kind     Kind
	}{
		{"->", ARROW},
		{"==", EQ}, {"!=", NEQ}, {"<=", LE}, {">=", GE},
		{"&&", AND}, {"||", OR},
		{"++", INC}, {"--", DEC},
		{"+=", PLUSEQ}, {"-=", MINUSEQ}, {"*=", STAREQ}, {"/=", SLASHEQ}, {"%=", PERCENTEQ},
		{"<", LT}, {">", GT},
		{"+", PLUS}, {"-", MINUS}, {"*", STAR}, {"/", SLASH}, {"%", PERCENT},
		{"=", ASSIGN}, {"!", NOT}, {"&", AMP},
		{"(", LPAREN}, {")", RPAREN}, {"{", LBRACE}, {"}", RBRACE},
		{"[", LBRACKET}, {"]", RBRACKET},
		{";", SEMI}, {":", COLON}, {",", COMMA},
	}
	for _, p := range puncts {
		fixedSpellings = append(fixedSpellings, fixedSpelling{p.spelling, p.kind, false})
	}

	// Pattern-described tokens. FLOAT precedes INT because both share a
	// leading-digit prefix and the lexer must prefer the longer, more
	// specific shape (digits '.' digits) when it matches.
	patternTokens = []patternToken{
		{"FLOAT", regexp.MustCompile(`^[0-9][0-9_]*\.[0-9][0-9_]*`), FLOAT},
		{"INT", regexp.MustCompile(`^[0-9][0-9_]*`), INT},
		{"IDENT", regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*`), IDENT},
	}
}

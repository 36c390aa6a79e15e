package netlistfmt

import "github.com/alecthomas/participle/v2/lexer"

// Lexer defines the lexical structure of .net fixture files: it separates
// keywords, identifiers, numbers, "=" and comments/whitespace. Keywords get
// their own token type so that an open-ended @Ident* run (a net's pin
// list) stops at the next statement's keyword; keywords are therefore
// reserved and cannot be used as names.
var Lexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `#[^\n]*`},
	{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
	{Name: "Number", Pattern: `[-+]?[0-9]+(\.[0-9]+)?([eE][-+]?[0-9]+)?`},
	{Name: "Equals", Pattern: `=`},
	{Name: "Keyword", Pattern: `(circuit|pin|net|device|param|subckt|end)\b`},
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_.]*`},
})

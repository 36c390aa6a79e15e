package netlistfmt

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/participle/v2"
)

// Parser parses .net fixture text into a File AST.
type Parser struct {
	parser *participle.Parser[File]
}

// NewParser builds a Parser, compiling the grammar once.
func NewParser() (*Parser, error) {
	p, err := participle.Build[File](
		participle.Lexer(Lexer),
		participle.Elide("Comment", "Whitespace"),
		participle.UseLookahead(2),
	)
	if err != nil {
		return nil, fmt.Errorf("netlistfmt: failed to build parser: %w", err)
	}
	return &Parser{parser: p}, nil
}

// Parse parses a fixture from r.
func (p *Parser) Parse(r io.Reader) (*File, error) {
	f, err := p.parser.Parse("", r)
	if err != nil {
		return nil, fmt.Errorf("netlistfmt: parse error: %w", err)
	}
	return f, nil
}

// ParseString parses a fixture from a string.
func (p *Parser) ParseString(input string) (*File, error) {
	f, err := p.parser.ParseString("", input)
	if err != nil {
		return nil, fmt.Errorf("netlistfmt: parse error: %w", err)
	}
	return f, nil
}

// ParseFile parses a fixture from a path.
func (p *Parser) ParseFile(path string) (*File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("netlistfmt: failed to open %s: %w", path, err)
	}
	defer fh.Close()
	return p.Parse(fh)
}

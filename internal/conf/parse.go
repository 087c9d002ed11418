package conf

import (
	"io/ioutil"

	"github.com/fd0/blockconf/internal/token"
	"github.com/pkg/errors"
)

// Errors returned by the directive builder.
var (
	ErrUnexpectedToken      = errors.New("expected directive name")
	ErrUnexpectedEndOfInput = errors.New("unexpected end of input")
	ErrExpectedTerminator   = errors.New("expected ';' or '{'")
)

// Parse parses data as a block configuration and returns the directive tree.
// Parsing either succeeds completely or fails with the first error
// encountered, there is no partial result.
func Parse(data string) (Block, error) {
	return ParseLimit(data, token.DefaultMaxDepth)
}

// ParseLimit is Parse with a caller-supplied bound on brace nesting depth.
func ParseLimit(data string, maxDepth int) (Block, error) {
	tokens, err := token.Resolve(token.Lex(data), maxDepth)
	if err != nil {
		return nil, err
	}

	return buildBlock(tokens)
}

// ParseFile reads the file and parses its contents.
func ParseFile(filename string) (Block, error) {
	buf, err := ioutil.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	block, err := Parse(string(buf))
	if err != nil {
		return nil, errors.WithMessage(err, filename)
	}

	return block, nil
}

// buildBlock applies the directive grammar NAME ARG* (';' | group) to a
// token sequence whose braces have already been resolved into groups. It
// recurses into each group to build the nested block, so the recursion depth
// matches the brace nesting depth of the input.
func buildBlock(tokens []token.Token) (Block, error) {
	block := make(Block, 0)

	pos := 0
	for pos < len(tokens) {
		t := tokens[pos]
		if t.Kind != token.Word {
			return nil, errors.Wrapf(ErrUnexpectedToken, "found %v", t.Kind)
		}

		d := Directive{Name: t.Text}
		pos++

		for pos < len(tokens) && tokens[pos].Kind == token.Word {
			d.Args = append(d.Args, tokens[pos].Text)
			pos++
		}

		if pos >= len(tokens) {
			return nil, errors.Wrapf(ErrUnexpectedEndOfInput, "directive %q", d.Name)
		}

		switch tokens[pos].Kind {
		case token.Semicolon:
		case token.Group:
			inner, err := buildBlock(tokens[pos].Content)
			if err != nil {
				return nil, err
			}

			d.Block = inner
		default:
			return nil, errors.Wrapf(ErrExpectedTerminator, "directive %q, found %v", d.Name, tokens[pos].Kind)
		}

		pos++
		block = append(block, d)
	}

	return block, nil
}

package token

import "github.com/pkg/errors"

// DefaultMaxDepth bounds brace nesting so that adversarial input cannot
// exhaust the stack through recursion.
const DefaultMaxDepth = 1000

// Errors returned by Resolve.
var (
	ErrUnbalancedBraces      = errors.New("no matching closing brace")
	ErrUnmatchedClosingBrace = errors.New("unmatched closing brace")
	ErrMaxDepthExceeded      = errors.New("maximum nesting depth exceeded")
)

// Resolve matches '{'/'}' pairs in a flat token sequence and collapses each
// matched pair into a single Group token wrapping its interior sequence.
// maxDepth bounds the nesting depth, values less than one fall back to
// DefaultMaxDepth. A '{' without a matching '}' fails with
// ErrUnbalancedBraces, a '}' without a corresponding '{' with
// ErrUnmatchedClosingBrace.
func Resolve(tokens []Token, maxDepth int) ([]Token, error) {
	if maxDepth < 1 {
		maxDepth = DefaultMaxDepth
	}

	content, rest, err := resolve(tokens, maxDepth)
	if err != nil {
		return nil, err
	}

	if rest < len(tokens) {
		return nil, errors.Wrapf(ErrUnmatchedClosingBrace, "token %d", rest)
	}

	return content, nil
}

// resolve consumes tokens until it reaches a CloseBrace or the end of the
// sequence. The CloseBrace is not consumed, its index is returned as rest so
// that the caller can detect the end of its nesting level. Each OpenBrace
// recurses on the remainder; the recursive call's rest must then point at
// the matching CloseBrace, reaching the end of the sequence instead means an
// opener was never closed.
func resolve(tokens []Token, maxDepth int) (content []Token, rest int, err error) {
	pos := 0
	for pos < len(tokens) {
		switch tokens[pos].Kind {
		case CloseBrace:
			return content, pos, nil
		case OpenBrace:
			if maxDepth <= 0 {
				return nil, 0, errors.Wrapf(ErrMaxDepthExceeded, "token %d", pos)
			}

			inner, innerRest, err := resolve(tokens[pos+1:], maxDepth-1)
			if err != nil {
				return nil, 0, err
			}

			end := pos + 1 + innerRest
			if end >= len(tokens) {
				return nil, 0, errors.Wrapf(ErrUnbalancedBraces, "brace opened at token %d", pos)
			}

			content = append(content, Token{Kind: Group, Content: inner})
			pos = end + 1
		default:
			content = append(content, tokens[pos])
			pos++
		}
	}

	return content, pos, nil
}

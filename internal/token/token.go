// Package token implements the lexical stages for nginx-style block
// configuration files: scanning raw text into a flat sequence of tokens, and
// resolving matched brace pairs into nested groups.
package token

import "strings"

// Kind enumerates the kinds of tokens produced by Lex and Resolve.
type Kind uint

// Token kinds. Group tokens are produced by Resolve only, the lexer never
// emits them.
const (
	Semicolon  Kind = iota // ';'
	OpenBrace              // '{'
	CloseBrace             // '}'
	Word                   // maximal run of non-delimiter bytes
	Group                  // matched '{...}' span
)

var kindNames = []string{
	Semicolon:  "semicolon",
	OpenBrace:  "open brace",
	CloseBrace: "close brace",
	Word:       "word",
	Group:      "group",
}

func (k Kind) String() string {
	if int(k) >= len(kindNames) {
		return "invalid"
	}
	return kindNames[k]
}

// Token is a single lexical unit. Text is only set for Word tokens, Content
// only for Group tokens. Tokens are never modified once produced.
type Token struct {
	Kind    Kind
	Text    string
	Content []Token
}

func (t Token) String() string {
	switch t.Kind {
	case Semicolon:
		return ";"
	case OpenBrace:
		return "{"
	case CloseBrace:
		return "}"
	case Word:
		return "'" + t.Text + "'"
	case Group:
		var parts []string
		for _, sub := range t.Content {
			parts = append(parts, sub.String())
		}
		return "(" + strings.Join(parts, " ") + ")"
	}

	return "<invalid>"
}

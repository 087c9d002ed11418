package token

import "testing"

func word(text string) Token {
	return Token{Kind: Word, Text: text}
}

var (
	semicolon  = Token{Kind: Semicolon}
	openBrace  = Token{Kind: OpenBrace}
	closeBrace = Token{Kind: CloseBrace}
)

var testLex = []struct {
	data   string
	tokens []Token
}{
	{data: ""},
	{data: "   \t \n "},
	{data: "# only a comment"},
	{data: "# one\n# two\n"},
	{
		data:   "   # c\n   # c2\n word",
		tokens: []Token{word("word")},
	},
	{
		data:   "worker_processes 4;",
		tokens: []Token{word("worker_processes"), word("4"), semicolon},
	},
	{
		data:   "a;b{c}",
		tokens: []Token{word("a"), semicolon, word("b"), openBrace, word("c"), closeBrace},
	},
	{
		data:   "root /var/www#inline comment\nindex index.html;",
		tokens: []Token{word("root"), word("/var/www"), word("index"), word("index.html"), semicolon},
	},
	{
		data:   "server {",
		tokens: []Token{word("server"), openBrace},
	},
	{
		data:   "};;",
		tokens: []Token{closeBrace, semicolon, semicolon},
	},
	{
		data:   "listen 80 default_server;\n",
		tokens: []Token{word("listen"), word("80"), word("default_server"), semicolon},
	},
	{
		// input is raw bytes, no encoding validation
		data:   "päth σ/λ;",
		tokens: []Token{word("päth"), word("σ/λ"), semicolon},
	},
}

func equalTokens(a, b []Token) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if a[i].Kind != b[i].Kind || a[i].Text != b[i].Text {
			return false
		}

		if !equalTokens(a[i].Content, b[i].Content) {
			return false
		}
	}

	return true
}

func TestLex(t *testing.T) {
	for i, test := range testLex {
		tokens := Lex(test.data)
		if !equalTokens(test.tokens, tokens) {
			t.Errorf("test %d: want %v, got %v", i, test.tokens, tokens)
		}
	}
}

func TestTokenString(t *testing.T) {
	tok := Token{Kind: Group, Content: []Token{word("a"), semicolon}}
	if got := tok.String(); got != "('a' ;)" {
		t.Errorf("want %q, got %q", "('a' ;)", got)
	}
}

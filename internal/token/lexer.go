package token

// isDelimiter reports whether c ends a word: whitespace, the comment
// character, or one of the three structural characters.
func isDelimiter(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '#', ';', '{', '}':
		return true
	}

	return false
}

// Lex scans data into a flat token sequence. Whitespace and '#' line
// comments are skipped, everything else becomes a token. The input is
// treated as a raw byte sequence, no encoding validation takes place. Lex
// cannot fail: any input yields a (possibly empty) token sequence.
func Lex(data string) []Token {
	var tokens []Token

	pos := 0
	for {
		pos = skipWhitespace(data, pos)
		if pos >= len(data) {
			return tokens
		}

		var t Token
		t, pos = next(data, pos)
		tokens = append(tokens, t)
	}
}

// skipWhitespace advances pos past whitespace and comments. Comment skipping
// leaves the terminating newline in place, so consecutive comment lines are
// handled by the enclosing loop.
func skipWhitespace(data string, pos int) int {
	for pos < len(data) {
		switch data[pos] {
		case ' ', '\t', '\n':
			pos++
		case '#':
			pos = skipComment(data, pos+1)
		default:
			return pos
		}
	}

	return pos
}

// skipComment advances pos to the newline ending the comment, or to the end
// of the input.
func skipComment(data string, pos int) int {
	for pos < len(data) && data[pos] != '\n' {
		pos++
	}

	return pos
}

// next reads a single token starting at pos, which must point at a
// non-whitespace, non-comment byte. It returns the token and the position
// just past it.
func next(data string, pos int) (Token, int) {
	switch data[pos] {
	case ';':
		return Token{Kind: Semicolon}, pos + 1
	case '{':
		return Token{Kind: OpenBrace}, pos + 1
	case '}':
		return Token{Kind: CloseBrace}, pos + 1
	}

	start := pos
	for pos < len(data) && !isDelimiter(data[pos]) {
		pos++
	}

	return Token{Kind: Word, Text: data[start:pos]}, pos
}

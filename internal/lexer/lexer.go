package lexer

import (
	"strconv"
	"strings"

	"github.com/varun-ramani/blockpipe/errors"
)

// Lex scans source into an ordered sequence of (Token, Span) pairs. It is
// total on well-formed input; the first byte region matching no rule is
// reported as an *errors.BlockpipeError carrying that region's span.
//
// Modeled on the teacher's SimpleLexer cursor (readChar/peekChar over a
// byte position, tracked independently of token spans).
func Lex(source string) ([]TokenSpan, error) {
	l := &scanner{input: source}
	var tokens []TokenSpan

	for {
		l.skipWhitespace()
		if l.atEnd() {
			break
		}

		start := l.pos
		tok, ok := l.next()
		if !ok {
			return nil, errors.NewLexError(
				"unrecognised input",
				errors.WithSpan(start, start+1),
			)
		}
		tokens = append(tokens, TokenSpan{Token: tok, Span: Span{Start: start, End: l.pos}})
	}

	return tokens, nil
}

type scanner struct {
	input string
	pos   int
}

func (s *scanner) atEnd() bool {
	return s.pos >= len(s.input)
}

func (s *scanner) skipWhitespace() {
	for !s.atEnd() {
		switch s.input[s.pos] {
		case ' ', '\t', '\n':
			s.pos++
		default:
			return
		}
	}
}

// next scans exactly one token starting at s.pos, applying the rules of
// spec.md §4.1 in priority order (two-char operators before one-char,
// keywords before identifiers, float before integer).
func (s *scanner) next() (Token, bool) {
	rest := s.input[s.pos:]

	// Rule 2: two-character |* before one-character |.
	if strings.HasPrefix(rest, "|*") {
		s.pos += 2
		return Token{Type: PipeStar}, true
	}

	// Rule 3: punctuation.
	switch rest[0] {
	case '(':
		s.pos++
		return Token{Type: LeftParen}, true
	case ')':
		s.pos++
		return Token{Type: RightParen}, true
	case '{':
		s.pos++
		return Token{Type: LeftBrace}, true
	case '}':
		s.pos++
		return Token{Type: RightBrace}, true
	case '|':
		s.pos++
		return Token{Type: Pipe}, true
	case ':':
		s.pos++
		return Token{Type: Colon}, true
	}

	// Rule 5: string literal. Contents are not unescaped; \\ is merely
	// permitted to prefix any character inside the quotes.
	if rest[0] == '"' {
		return s.scanString()
	}

	// Rule 6: float before integer, so 1.0 lexes as one token.
	if tok, n, ok := scanFloat(rest); ok {
		s.pos += n
		return tok, true
	}
	if tok, n, ok := scanInteger(rest); ok {
		s.pos += n
		return tok, true
	}

	// Rule 4: keywords and booleans, tried before the identifier rule.
	if tok, n, ok := scanKeyword(rest); ok {
		s.pos += n
		return tok, true
	}

	// Rule 7: identifiers ($<digits>, $n, or [a-z_][a-zA-Z0-9_]*).
	if tok, n, ok := scanIdentifier(rest); ok {
		s.pos += n
		return tok, true
	}

	return Token{}, false
}

func (s *scanner) scanString() (Token, bool) {
	// rest[0] == '"'
	i := 1
	for s.pos+i < len(s.input) {
		c := s.input[s.pos+i]
		if c == '\\' && s.pos+i+1 < len(s.input) {
			i += 2
			continue
		}
		if c == '"' {
			text := s.input[s.pos+1 : s.pos+i]
			s.pos += i + 1
			return Token{Type: StringLiteral, Text: text}, true
		}
		i++
	}
	return Token{}, false
}

// scanKeyword matches the reserved words type, paste, T, F before the
// identifier rule is tried, per spec.md §4.1 rule 4.
func scanKeyword(rest string) (Token, int, bool) {
	for _, kw := range []struct {
		text string
		tok  Token
	}{
		{"type", Token{Type: Type_}},
		{"paste", Token{Type: Paste}},
		{"T", Token{Type: BooleanLiteral, Bool: true}},
		{"F", Token{Type: BooleanLiteral, Bool: false}},
	} {
		if !strings.HasPrefix(rest, kw.text) {
			continue
		}
		// must not be a prefix of a longer identifier
		after := len(kw.text)
		if after < len(rest) && isIdentTail(rest[after]) {
			continue
		}
		return kw.tok, after, true
	}
	return Token{}, 0, false
}

func isIdentTail(c byte) bool {
	return c == '_' || isDigit(c) || isLower(c) || isUpper(c)
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
func isLower(c byte) bool { return c >= 'a' && c <= 'z' }
func isUpper(c byte) bool { return c >= 'A' && c <= 'Z' }

// scanFloat matches -?[0-9]+\.[0-9]+.
func scanFloat(rest string) (Token, int, bool) {
	i := 0
	if i < len(rest) && rest[i] == '-' {
		i++
	}
	digitsStart := i
	for i < len(rest) && isDigit(rest[i]) {
		i++
	}
	if i == digitsStart || i >= len(rest) || rest[i] != '.' {
		return Token{}, 0, false
	}
	i++
	fracStart := i
	for i < len(rest) && isDigit(rest[i]) {
		i++
	}
	if i == fracStart {
		return Token{}, 0, false
	}

	value, err := strconv.ParseFloat(rest[:i], 64)
	if err != nil {
		return Token{}, 0, false
	}
	return Token{Type: FloatLiteral, Float: value}, i, true
}

// scanInteger matches -?[0-9]+.
func scanInteger(rest string) (Token, int, bool) {
	i := 0
	if i < len(rest) && rest[i] == '-' {
		i++
	}
	digitsStart := i
	for i < len(rest) && isDigit(rest[i]) {
		i++
	}
	if i == digitsStart {
		return Token{}, 0, false
	}

	value, err := strconv.ParseInt(rest[:i], 10, 64)
	if err != nil {
		return Token{}, 0, false
	}
	return Token{Type: IntegerLiteral, Int: value}, i, true
}

// scanIdentifier matches $(\d+|n) | [a-z_][a-zA-Z0-9_]*.
func scanIdentifier(rest string) (Token, int, bool) {
	if rest[0] == '$' {
		if len(rest) >= 2 && rest[1] == 'n' && (len(rest) == 2 || !isIdentTail(rest[2])) {
			return Token{Type: Identifier, Name: "$n"}, 2, true
		}
		i := 1
		for i < len(rest) && isDigit(rest[i]) {
			i++
		}
		if i > 1 {
			return Token{Type: Identifier, Name: rest[:i]}, i, true
		}
		return Token{}, 0, false
	}

	if isLower(rest[0]) || rest[0] == '_' {
		i := 1
		for i < len(rest) && isIdentTail(rest[i]) {
			i++
		}
		return Token{Type: Identifier, Name: rest[:i]}, i, true
	}

	return Token{}, 0, false
}

package parser

import "github.com/varun-ramani/blockpipe/internal/lexer"

// tokenCursor is a lookahead cursor over a token sequence, modeled on the
// teacher's stream.TokenStream (Position/SetPosition/Current/Consume/
// HasMore) so the parser can peek without a dedicated backtracking stack.
type tokenCursor struct {
	tokens []lexer.TokenSpan
	index  int
}

func newTokenCursor(tokens []lexer.TokenSpan) *tokenCursor {
	return &tokenCursor{tokens: tokens}
}

func (c *tokenCursor) HasMore() bool {
	return c.index < len(c.tokens)
}

func (c *tokenCursor) Current() (lexer.TokenSpan, bool) {
	if !c.HasMore() {
		return lexer.TokenSpan{}, false
	}
	return c.tokens[c.index], true
}

func (c *tokenCursor) Consume() {
	c.index++
}

func (c *tokenCursor) Position() int {
	return c.index
}

func (c *tokenCursor) SetPosition(pos int) {
	c.index = pos
}

// lastSpan returns the span of the final token, or a zero-width span at 0
// if the input was empty, for end-of-input diagnostics.
func (c *tokenCursor) lastSpan() lexer.Span {
	if len(c.tokens) == 0 {
		return lexer.Span{Start: 0, End: 0}
	}
	return c.tokens[len(c.tokens)-1].Span
}

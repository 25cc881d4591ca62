// Package parser implements Blockpipe's recursive-descent parser: token
// sequence in, a single root ast.Node out, consuming exactly the whole
// input.
//
// Grammar and fold/lookahead algorithm grounded on
// original_source/language/src/parser/parse.rs; the lookahead cursor and
// recursion guard are grounded on the teacher's stream.TokenStream and
// parser.recursionGuard respectively (see DESIGN.md).
package parser

import (
	"github.com/varun-ramani/blockpipe/internal/ast"
	"github.com/varun-ramani/blockpipe/internal/lexer"

	blockpipeerrors "github.com/varun-ramani/blockpipe/errors"
)

const defaultMaxDepth = 512

// Parse consumes tokens and returns a single root ast.Node. Trailing
// tokens after a complete expression are a syntax error, since the parser
// must consume exactly the whole input.
func Parse(tokens []lexer.TokenSpan) (ast.Node, error) {
	return ParseWithMaxDepth(tokens, defaultMaxDepth)
}

// ParseWithMaxDepth is Parse with an explicit recursion-depth ceiling,
// exposed for config.InterpreterConfig.MaxParseDepth.
func ParseWithMaxDepth(tokens []lexer.TokenSpan, maxDepth int) (ast.Node, error) {
	p := &parser{
		cursor: newTokenCursor(tokens),
		guard:  newRecursionGuard(maxDepth),
	}

	root, err := p.parse()
	if err != nil {
		return nil, err
	}

	if p.cursor.HasMore() {
		tok, _ := p.cursor.Current()
		span := p.currentSpan()
		return nil, blockpipeerrors.NewSyntaxError(
			"expression",
			"unexpected trailing token "+tok.Token.String(),
			blockpipeerrors.WithSpan(span.Start, span.End),
		)
	}

	return root, nil
}

type parser struct {
	cursor *tokenCursor
	guard  *recursionGuard
}

func (p *parser) currentSpan() lexer.Span {
	if ts, ok := p.cursor.Current(); ok {
		return ts.Span
	}
	return p.cursor.lastSpan()
}

func (p *parser) requireToken(construct string) (lexer.TokenSpan, error) {
	ts, ok := p.cursor.Current()
	if !ok {
		span := p.cursor.lastSpan()
		return lexer.TokenSpan{}, blockpipeerrors.NewSyntaxError(
			construct,
			"Unexpected end of the input",
			blockpipeerrors.WithSpan(span.Start, span.End),
		)
	}
	return ts, nil
}

// parse parses a self-contained expression, then extends it per spec.md
// §4.2: a Colon following a leading Identifier yields a Binding; a Pipe or
// PipeStar yields a (possibly folded) Pipe; otherwise the self-contained
// expression is returned as-is.
func (p *parser) parse() (ast.Node, error) {
	if err := p.guard.Enter(); err != nil {
		span := p.currentSpan()
		return nil, blockpipeerrors.NewSyntaxError("expression", err.Error(),
			blockpipeerrors.WithSpan(span.Start, span.End))
	}
	defer p.guard.Exit()

	expr1, err := p.parseSelfContained()
	if err != nil {
		return nil, err
	}

	if !p.cursor.HasMore() {
		return expr1, nil
	}

	ts, _ := p.cursor.Current()

	if ident, ok := expr1.(*ast.Identifier); ok && ts.Token.Type == lexer.Colon {
		p.cursor.Consume()
		rhs, err := p.parse()
		if err != nil {
			return nil, err
		}
		return &ast.Binding{Name: ident.Name, Value: rhs}, nil
	}

	if ts.Token.Type == lexer.Pipe || ts.Token.Type == lexer.PipeStar {
		kind := ast.Standard
		if ts.Token.Type == lexer.PipeStar {
			kind = ast.Destructure
		}
		p.cursor.Consume()

		rhs, err := p.parse()
		if err != nil {
			return nil, err
		}

		// Folding rule: if the right side is itself a Pipe, prepend the
		// current expression and kind to produce a single flat Pipe;
		// otherwise produce a fresh 2-section Pipe.
		if rhsPipe, ok := rhs.(*ast.Pipe); ok {
			sections := append([]ast.Node{expr1}, rhsPipe.Sections...)
			kinds := append([]ast.PipeKind{kind}, rhsPipe.Kinds...)
			return &ast.Pipe{Sections: sections, Kinds: kinds}, nil
		}
		return &ast.Pipe{Sections: []ast.Node{expr1, rhs}, Kinds: []ast.PipeKind{kind}}, nil
	}

	return expr1, nil
}

// parseSelfContained dispatches on the current token to produce a single
// expression with no trailing binding/pipe extension.
func (p *parser) parseSelfContained() (ast.Node, error) {
	ts, err := p.requireToken("self contained")
	if err != nil {
		return nil, err
	}

	switch ts.Token.Type {
	case lexer.IntegerLiteral:
		p.cursor.Consume()
		return &ast.Literal{Kind: ast.IntegerLit, Int: ts.Token.Int}, nil
	case lexer.BooleanLiteral:
		p.cursor.Consume()
		return &ast.Literal{Kind: ast.BooleanLit, Bool: ts.Token.Bool}, nil
	case lexer.StringLiteral:
		p.cursor.Consume()
		return &ast.Literal{Kind: ast.StringLit, Str: ts.Token.Text}, nil
	case lexer.FloatLiteral:
		p.cursor.Consume()
		return &ast.Literal{Kind: ast.FloatLit, Float: ts.Token.Float}, nil
	case lexer.Identifier:
		p.cursor.Consume()
		return &ast.Identifier{Name: ts.Token.Name}, nil
	case lexer.LeftParen:
		return p.parseTuple()
	case lexer.LeftBrace:
		return p.parseBlock()
	case lexer.Type_:
		p.cursor.Consume()
		inner, err := p.parseTuple()
		if err != nil {
			return nil, err
		}
		return &ast.TypeNode{Inner: inner}, nil
	case lexer.Paste:
		p.cursor.Consume()
		inner, err := p.parseTuple()
		if err != nil {
			return nil, err
		}
		return &ast.Paste{Inner: inner}, nil
	default:
		return nil, blockpipeerrors.NewSyntaxError(
			"expression",
			"unexpected token "+ts.Token.String(),
			blockpipeerrors.WithSpan(ts.Span.Start, ts.Span.End),
		)
	}
}

// parseTuple consumes `(`, repeatedly parses expressions until `)`, then
// consumes `)`. An empty `()` yields a zero-length Tuple.
func (p *parser) parseTuple() (ast.Node, error) {
	p.cursor.Consume() // (
	var children []ast.Node
	for {
		ts, err := p.requireToken("tuple")
		if err != nil {
			return nil, err
		}
		if ts.Token.Type == lexer.RightParen {
			p.cursor.Consume()
			break
		}
		child, err := p.parse()
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}
	return &ast.Tuple{Children: children}, nil
}

// parseBlock consumes `{`, repeatedly parses expressions until `}`, then
// consumes `}`. An empty `{}` yields a zero-length Block.
func (p *parser) parseBlock() (ast.Node, error) {
	p.cursor.Consume() // {
	var children []ast.Node
	for {
		ts, err := p.requireToken("block")
		if err != nil {
			return nil, err
		}
		if ts.Token.Type == lexer.RightBrace {
			p.cursor.Consume()
			break
		}
		child, err := p.parse()
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}
	return &ast.Block{Children: children}, nil
}

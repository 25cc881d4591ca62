// Package lexer turns Blockpipe source text into an ordered sequence of
// tokens, each paired with its half-open byte span in the source.
package lexer

import "fmt"

// Type identifies the kind of a Token.
type Type int

const (
	LeftParen  Type = iota // (
	RightParen             // )
	LeftBrace              // {
	RightBrace             // }
	Pipe                   // |
	PipeStar               // |*
	Colon                  // :

	Identifier     // $0, $n, foo_bar
	StringLiteral  // "..."
	IntegerLiteral // -?[0-9]+
	FloatLiteral   // -?[0-9]+\.[0-9]+
	BooleanLiteral // T or F

	Type_ // type  (named Type_ to avoid colliding with this file's Type)
	Paste // paste
)

// String returns a human-readable name for the token type, used in error
// messages and test failure output.
func (t Type) String() string {
	switch t {
	case LeftParen:
		return "LeftParen"
	case RightParen:
		return "RightParen"
	case LeftBrace:
		return "LeftBrace"
	case RightBrace:
		return "RightBrace"
	case Pipe:
		return "Pipe"
	case PipeStar:
		return "PipeStar"
	case Colon:
		return "Colon"
	case Identifier:
		return "Identifier"
	case StringLiteral:
		return "StringLiteral"
	case IntegerLiteral:
		return "IntegerLiteral"
	case FloatLiteral:
		return "FloatLiteral"
	case BooleanLiteral:
		return "BooleanLiteral"
	case Type_:
		return "Type"
	case Paste:
		return "Paste"
	default:
		return "Unknown"
	}
}

// Span is a half-open byte range [Start, End) into the source text.
type Span struct {
	Start int
	End   int
}

// Token is one lexical unit with its carried payload. Only one of the
// payload fields is meaningful, selected by Type:
//   - Identifier    -> Name
//   - StringLiteral -> Text
//   - IntegerLiteral -> Int
//   - FloatLiteral  -> Float
//   - BooleanLiteral -> Bool
type Token struct {
	Type  Type
	Name  string
	Text  string
	Int   int64
	Float float64
	Bool  bool
}

// TokenSpan pairs a Token with its location in the source.
type TokenSpan struct {
	Token Token
	Span  Span
}

// String renders a token for diagnostics and test failures.
func (t Token) String() string {
	switch t.Type {
	case Identifier:
		return fmt.Sprintf("Identifier(%q)", t.Name)
	case StringLiteral:
		return fmt.Sprintf("StringLiteral(%q)", t.Text)
	case IntegerLiteral:
		return fmt.Sprintf("IntegerLiteral(%d)", t.Int)
	case FloatLiteral:
		return fmt.Sprintf("FloatLiteral(%g)", t.Float)
	case BooleanLiteral:
		return fmt.Sprintf("BooleanLiteral(%v)", t.Bool)
	default:
		return t.Type.String()
	}
}

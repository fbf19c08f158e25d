package lexer

import "fmt"

// Kind identifies the category of a lexed token.
type Kind uint8

const (
	Eof Kind = iota // sentinel: end of input

	// Literals and names
	Ident
	Underscore // a lone "_", never a plain Ident
	NumberLit  // decimal integer literal
	FloatLit   // reserved: the scanner does not produce these yet
	StringLit  // string literal "..."

	// Comments
	LineComment // //
	DocComment  // ///

	// Keywords
	KwComptime // "comptime"
	KwConst    // "const"
	KwGlobal   // "global"
	KwPub      // "pub"
	KwType     // "type"
	KwFn       // "fn"
	KwStruct   // "struct"

	// Single-character tokens
	Bang      // !
	Tilde     // ~
	Dollar    // $
	Ampersand // &
	Asterisk  // *
	LParen    // (
	RParen    // )
	LBrace    // {
	RBrace    // }
	LBracket  // [
	RBracket  // ]
	LAngle    // <
	RAngle    // >
	Comma     // ,
	Period    // .
	Pipe      // |
	Colon     // :

	// Assignment forms (order matters: Equal before the compound kinds)
	Equal         // =
	EqualPlus     // =+
	EqualDash     // =-
	EqualAsterisk // =*
	EqualSlash    // =/

	LAngleLAngle // <<
)

var kindNames = [...]string{
	Eof:           "Eof",
	Ident:         "Ident",
	Underscore:    "Underscore",
	NumberLit:     "NumberLit",
	FloatLit:      "FloatLit",
	StringLit:     "StringLit",
	LineComment:   "LineComment",
	DocComment:    "DocComment",
	KwComptime:    "KwComptime",
	KwConst:       "KwConst",
	KwGlobal:      "KwGlobal",
	KwPub:         "KwPub",
	KwType:        "KwType",
	KwFn:          "KwFn",
	KwStruct:      "KwStruct",
	Bang:          "Bang",
	Tilde:         "Tilde",
	Dollar:        "Dollar",
	Ampersand:     "Ampersand",
	Asterisk:      "Asterisk",
	LParen:        "LParen",
	RParen:        "RParen",
	LBrace:        "LBrace",
	RBrace:        "RBrace",
	LBracket:      "LBracket",
	RBracket:      "RBracket",
	LAngle:        "LAngle",
	RAngle:        "RAngle",
	Comma:         "Comma",
	Period:        "Period",
	Pipe:          "Pipe",
	Colon:         "Colon",
	Equal:         "Equal",
	EqualPlus:     "EqualPlus",
	EqualDash:     "EqualDash",
	EqualAsterisk: "EqualAsterisk",
	EqualSlash:    "EqualSlash",
	LAngleLAngle:  "LAngleLAngle",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Token is a single lexical unit. It never owns text: Start and End are a
// half-open byte-offset span into the source buffer the Lexer was given.
type Token struct {
	Kind  Kind
	Start int
	End   int
}

// Source returns the bytes the token spans. src must be the buffer the
// token was lexed from.
func (t Token) Source(src []byte) []byte {
	return src[t.Start:t.End]
}

func (t Token) String() string {
	return fmt.Sprintf("%-13s [%d,%d)", t.Kind, t.Start, t.End)
}

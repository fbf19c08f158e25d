package lexer

import "fmt"

// LexError is a fatal lexical fault at a byte offset in the source.
// Lexing stops at the first one; there is no recovery or resynchronization.
type LexError struct {
	Offset int
	Msg    string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("lex error at offset %d: %s", e.Offset, e.Msg)
}

// keywords maps source text to its dedicated keyword Kind. The blank
// identifier is part of the table: a lone "_" is never a plain Ident.
var keywords = map[string]Kind{
	"comptime": KwComptime,
	"const":    KwConst,
	"global":   KwGlobal,
	"pub":      KwPub,
	"type":     KwType,
	"fn":       KwFn,
	"struct":   KwStruct,
	"_":        Underscore,
}

// single maps bytes that form a complete token on their own.
// '<', '=' and '/' are absent: they open multi-character states.
var single = map[byte]Kind{
	'!': Bang,
	'~': Tilde,
	'$': Dollar,
	'&': Ampersand,
	'*': Asterisk,
	'(': LParen,
	')': RParen,
	'{': LBrace,
	'}': RBrace,
	'[': LBracket,
	']': RBracket,
	'>': RAngle,
	',': Comma,
	'.': Period,
	'|': Pipe,
	':': Colon,
}

// state is the scanner's position inside a token.
type state uint8

const (
	stStart state = iota
	stIdent
	stZero        // leading '0'; kept separate as the seam for future bases
	stNumber
	stString
	stEqual       // '=' seen: =+ =- =* =/ or a bare assignment
	stLAngle      // '<' seen: << or <
	stSlash       // '/' seen: must open a comment
	stLineComment // '//'
	stDocComment  // '///'
)

// Lexer is a single-pass, no-backtracking scanner over a byte buffer.
// Every byte is visited once; each call to Next emits exactly one token.
// The Lexer borrows src and never copies from it.
type Lexer struct {
	src   []byte
	index int
}

func New(src []byte) *Lexer {
	return &Lexer{src: src}
}

// Tokenize scans src to completion and returns every token, terminated by
// one Eof sentinel. It returns a LexError on the first illegal byte,
// unterminated string, or truncated token.
func Tokenize(src []byte) ([]Token, error) {
	l := New(src)
	toks := make([]Token, 0, len(src)/4+1)
	for {
		tok, err := l.Next()
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
		if tok.Kind == Eof {
			return toks, nil
		}
	}
}

// Next returns the next token and advances past it. Whitespace emits
// nothing; it only moves the pending token's start forward. Once Eof has
// been returned every further call returns Eof again.
func (l *Lexer) Next() (Token, error) {
	st := stStart
	start := l.index
	for ; l.index <= len(l.src); l.index++ {
		eof := l.index == len(l.src)
		var c byte
		if !eof {
			c = l.src[l.index]
		}

		switch st {
		case stStart:
			if eof {
				return Token{Kind: Eof, Start: l.index, End: l.index}, nil
			}
			switch {
			case c == ' ' || c == '\t' || c == '\r' || c == '\n':
				start = l.index + 1
			case isIdentStart(c):
				st = stIdent
			case c == '0':
				st = stZero
			case c >= '1' && c <= '9':
				st = stNumber
			case c == '"':
				st = stString
			case c == '=':
				st = stEqual
			case c == '<':
				st = stLAngle
			case c == '/':
				st = stSlash
			default:
				if k, ok := single[c]; ok {
					l.index++
					return Token{Kind: k, Start: start, End: l.index}, nil
				}
				return Token{}, &LexError{Offset: l.index, Msg: fmt.Sprintf("unexpected character %q", c)}
			}

		case stIdent:
			if eof || !isIdentPart(c) {
				k := Ident
				if kw, ok := keywords[string(l.src[start:l.index])]; ok {
					k = kw
				}
				return Token{Kind: k, Start: start, End: l.index}, nil
			}

		case stZero:
			if !eof && c >= '0' && c <= '9' {
				st = stNumber
				continue
			}
			return Token{Kind: NumberLit, Start: start, End: l.index}, nil

		case stNumber:
			if eof || c < '0' || c > '9' {
				return Token{Kind: NumberLit, Start: start, End: l.index}, nil
			}

		case stString:
			if eof {
				return Token{}, &LexError{Offset: start, Msg: "unterminated string literal"}
			}
			if c == '"' {
				l.index++
				return Token{Kind: StringLit, Start: start, End: l.index}, nil
			}

		case stEqual:
			if eof || c == ' ' || c == '\t' || c == '\r' || c == '\n' {
				return Token{Kind: Equal, Start: start, End: l.index}, nil
			}
			switch c {
			case '+':
				l.index++
				return Token{Kind: EqualPlus, Start: start, End: l.index}, nil
			case '-':
				l.index++
				return Token{Kind: EqualDash, Start: start, End: l.index}, nil
			case '*':
				l.index++
				return Token{Kind: EqualAsterisk, Start: start, End: l.index}, nil
			case '/':
				l.index++
				return Token{Kind: EqualSlash, Start: start, End: l.index}, nil
			}
			return Token{}, &LexError{Offset: l.index, Msg: fmt.Sprintf("unexpected character %q after '='", c)}

		case stLAngle:
			if !eof && c == '<' {
				l.index++
				return Token{Kind: LAngleLAngle, Start: start, End: l.index}, nil
			}
			return Token{Kind: LAngle, Start: start, End: l.index}, nil

		case stSlash:
			if eof {
				return Token{}, &LexError{Offset: start, Msg: "unexpected end of input after '/'"}
			}
			if c != '/' {
				return Token{}, &LexError{Offset: l.index, Msg: fmt.Sprintf("unexpected character %q after '/'", c)}
			}
			st = stLineComment

		case stLineComment:
			// A third slash directly after "//" upgrades to a doc comment.
			if !eof && c == '/' && l.index == start+2 {
				st = stDocComment
				continue
			}
			if eof || c == '\n' {
				return Token{Kind: LineComment, Start: start, End: l.index}, nil
			}

		case stDocComment:
			if eof || c == '\n' {
				return Token{Kind: DocComment, Start: start, End: l.index}, nil
			}
		}
	}
	panic("lexer: scanner left its input without emitting")
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9')
}

package parser

import (
	"fmt"

	"sable/pkg/lang/ast"
	"sable/pkg/lang/lexer"
)

// ParseError is a fatal syntactic fault at a token. Parsing stops at the
// first one; there is no recovery, resynchronization, or multi-error batch.
type ParseError struct {
	Offset int
	Got    lexer.Kind
	Msg    string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at offset %d: %s", e.Offset, e.Msg)
}

// Parser consumes the flat token slice produced by the lexer and builds a Tree.
//
// Grammar:
//
//	block   = "{" op* "}"                       (top level: op* until Eof)
//	op      = decl | set | call | builtin | macro
//	decl    = ["pub"] ["const" | "global"] cap [":" type] ["=" expr]
//	        | cap ":" type ["=" expr]
//	set     = cap "=" expr
//	call    = cap "(" args ")"
//	builtin = "$" cap "(" args ")"
//	macro   = "!" cap "(" args ")"
//	cap     = IDENT ("." IDENT)*               (left-accumulated)
//	type    = cap                              (stored unresolved)
//	args    = [expr ("," expr)*]
//	expr    = NUMBER | STRING | cap | call | builtin | macro | block
//
// A declaration with a modifier keyword may omit its value; one with no
// modifiers and no value still parses; rejecting it is the analyzer's job.
// Comment tokens are skipped wherever the grammar expects a token.
type Parser struct {
	src  []byte
	toks []lexer.Token
	pos  int
}

// Parse tokenizes src and parses it into a Tree. The Tree borrows src:
// identifier and literal payloads are slices into the original buffer.
func Parse(src []byte) (*ast.Tree, error) {
	toks, err := lexer.Tokenize(src)
	if err != nil {
		return nil, err
	}
	p := &Parser{src: src, toks: toks}
	root, err := p.parseTopLevel()
	if err != nil {
		return nil, err
	}
	return ast.New(src, toks, root), nil
}

// peek returns the current non-comment token without consuming it.
func (p *Parser) peek() lexer.Token {
	p.skipComments()
	return p.toks[p.pos]
}

// advance consumes the current non-comment token and returns its index.
// The Eof sentinel is never consumed.
func (p *Parser) advance() int {
	p.skipComments()
	i := p.pos
	if p.toks[i].Kind != lexer.Eof {
		p.pos++
	}
	return i
}

func (p *Parser) skipComments() {
	for k := p.toks[p.pos].Kind; k == lexer.LineComment || k == lexer.DocComment; k = p.toks[p.pos].Kind {
		p.pos++
	}
}

// expect consumes the current token if it matches k, otherwise fails.
func (p *Parser) expect(k lexer.Kind) (int, error) {
	i := p.advance()
	if tok := p.toks[i]; tok.Kind != k {
		return i, p.errorf(tok, "expected %s, got %s (%q)", k, tok.Kind, p.tokSrc(i))
	}
	return i, nil
}

func (p *Parser) tokSrc(i int) []byte {
	return p.toks[i].Source(p.src)
}

func (p *Parser) errorf(tok lexer.Token, format string, args ...any) error {
	return &ParseError{Offset: tok.Start, Got: tok.Kind, Msg: fmt.Sprintf(format, args...)}
}

// parseTopLevel parses the implicit root block: operations until Eof.
func (p *Parser) parseTopLevel() (*ast.Block, error) {
	b := &ast.Block{}
	for p.peek().Kind != lexer.Eof {
		op, err := p.parseOp()
		if err != nil {
			return nil, err
		}
		b.Ops = append(b.Ops, op)
	}
	return b, nil
}

// parseBlock parses a braced block.
func (p *Parser) parseBlock() (*ast.Block, error) {
	if _, err := p.expect(lexer.LBrace); err != nil {
		return nil, err
	}
	b := &ast.Block{}
	for p.peek().Kind != lexer.RBrace {
		if tok := p.peek(); tok.Kind == lexer.Eof {
			return nil, p.errorf(tok, "unexpected end of input inside block")
		}
		op, err := p.parseOp()
		if err != nil {
			return nil, err
		}
		b.Ops = append(b.Ops, op)
	}
	p.advance() // consume '}'
	return b, nil
}

func (p *Parser) parseOp() (ast.Op, error) {
	switch tok := p.peek(); tok.Kind {
	case lexer.KwPub, lexer.KwConst, lexer.KwGlobal:
		return p.parseDecl()

	case lexer.Dollar:
		p.advance()
		return p.parseCall(callBuiltin)

	case lexer.Bang:
		p.advance()
		return p.parseCall(callMacro)

	case lexer.Ident:
		target, err := p.parseCap()
		if err != nil {
			return nil, err
		}
		switch next := p.peek(); next.Kind {
		case lexer.LParen:
			args, err := p.parseArgs()
			if err != nil {
				return nil, err
			}
			return &ast.Call{Target: target, Args: args}, nil
		case lexer.Colon:
			return p.parseDeclTail(0, false, target)
		case lexer.Equal:
			p.advance()
			value, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			return &ast.Set{Target: target, Value: value}, nil
		default:
			return nil, p.errorf(next, "expected ':', '=' or '(' after %s, got %s", target, next.Kind)
		}

	default:
		return nil, p.errorf(tok, "expected operation, got %s", tok.Kind)
	}
}

// parseDecl parses a declaration that starts with a modifier keyword.
func (p *Parser) parseDecl() (ast.Op, error) {
	var mods ast.Mods
	if p.peek().Kind == lexer.KwPub {
		p.advance()
		mods |= ast.ModPub
	}
	switch p.peek().Kind {
	case lexer.KwConst:
		p.advance()
	case lexer.KwGlobal:
		p.advance()
		mods |= ast.ModMut
	}
	target, err := p.parseCap()
	if err != nil {
		return nil, err
	}
	return p.parseDeclTail(mods, true, target)
}

// parseDeclTail parses the [":" type] ["=" expr] suffix shared by both
// declaration forms.
func (p *Parser) parseDeclTail(mods ast.Mods, hasModifier bool, target ast.Cap) (ast.Op, error) {
	d := &ast.Decl{Mods: mods, Target: target, HasModifier: hasModifier}
	if p.peek().Kind == lexer.Colon {
		p.advance()
		declType, err := p.parseCap()
		if err != nil {
			return nil, err
		}
		d.DeclType = declType
	}
	if p.peek().Kind == lexer.Equal {
		p.advance()
		value, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		d.Value = value
	}
	return d, nil
}

// parseCap parses IDENT ("." IDENT)*, folding each qualifier into a Scope
// whose Lhs is the accumulated prefix and Rhs the trailing Ident.
func (p *Parser) parseCap() (ast.Cap, error) {
	i, err := p.expect(lexer.Ident)
	if err != nil {
		return nil, err
	}
	var c ast.Cap = &ast.Ident{Name: p.tokSrc(i), Tok: i}
	for p.peek().Kind == lexer.Period {
		p.advance()
		j, err := p.expect(lexer.Ident)
		if err != nil {
			return nil, err
		}
		c = &ast.Scope{Lhs: c, Rhs: &ast.Ident{Name: p.tokSrc(j), Tok: j}}
	}
	return c, nil
}

type callKind uint8

const (
	callPlain callKind = iota
	callBuiltin
	callMacro
)

// parseCall parses cap "(" args ")". Any $ or ! sigil has already been
// consumed by the caller.
func (p *Parser) parseCall(k callKind) (ast.Op, error) {
	target, err := p.parseCap()
	if err != nil {
		return nil, err
	}
	args, err := p.parseArgs()
	if err != nil {
		return nil, err
	}
	switch k {
	case callBuiltin:
		return &ast.BuiltinCall{Target: target, Args: args}, nil
	case callMacro:
		return &ast.MacroCall{Target: target, Args: args}, nil
	default:
		return &ast.Call{Target: target, Args: args}, nil
	}
}

func (p *Parser) parseArgs() ([]ast.Expr, error) {
	if _, err := p.expect(lexer.LParen); err != nil {
		return nil, err
	}
	var args []ast.Expr
	if p.peek().Kind != lexer.RParen {
		for {
			arg, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if p.peek().Kind != lexer.Comma {
				break
			}
			p.advance()
		}
	}
	if _, err := p.expect(lexer.RParen); err != nil {
		return nil, err
	}
	return args, nil
}

func (p *Parser) parseExpr() (ast.Expr, error) {
	switch tok := p.peek(); tok.Kind {
	case lexer.NumberLit, lexer.FloatLit:
		i := p.advance()
		return &ast.Literal{Kind: tok.Kind, Text: p.tokSrc(i), Tok: i}, nil

	case lexer.StringLit:
		i := p.advance()
		text := p.tokSrc(i)
		// Drop the quotes; escape processing is not performed.
		return &ast.Literal{Kind: tok.Kind, Text: text[1 : len(text)-1], Tok: i}, nil

	case lexer.LBrace:
		b, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		return b, nil

	case lexer.Dollar:
		p.advance()
		op, err := p.parseCall(callBuiltin)
		if err != nil {
			return nil, err
		}
		return op.(ast.Expr), nil

	case lexer.Bang:
		p.advance()
		op, err := p.parseCall(callMacro)
		if err != nil {
			return nil, err
		}
		return op.(ast.Expr), nil

	case lexer.Ident:
		target, err := p.parseCap()
		if err != nil {
			return nil, err
		}
		if p.peek().Kind == lexer.LParen {
			args, err := p.parseArgs()
			if err != nil {
				return nil, err
			}
			return &ast.Call{Target: target, Args: args}, nil
		}
		return target.(ast.Expr), nil

	default:
		return nil, p.errorf(tok, "expected expression, got %s (%q)", tok.Kind, p.tokSrc(p.pos))
	}
}

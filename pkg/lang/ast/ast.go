package ast

import (
	"fmt"

	"sable/pkg/lang/lexer"
)

// Mods are declaration modifier bit flags.
type Mods uint8

const (
	ModPub Mods = 1 << iota // declared with "pub"
	ModMut                  // declared with "global"
)

func (m Mods) IsPub() bool { return m&ModPub != 0 }
func (m Mods) IsMut() bool { return m&ModMut != 0 }

func (m Mods) String() string {
	switch {
	case m.IsPub() && m.IsMut():
		return "pub mut"
	case m.IsPub():
		return "pub"
	case m.IsMut():
		return "mut"
	}
	return "none"
}

//  Capability paths

// Cap is a possibly-qualified name (a.b.c) used as the target of a
// declaration, assignment, or call. The set is closed: a path is either a
// bare Ident or a Scope, and every path terminates in an Ident on the right.
type Cap interface {
	capNode()
	String() string
}

// Ident is a single name. Name is a slice into the Tree's source buffer.
type Ident struct {
	Name []byte
	Tok  int // index of the originating token in the Tree
}

func (*Ident) capNode()         {}
func (*Ident) exprNode()        {}
func (i *Ident) String() string { return string(i.Name) }

// Scope is one qualification step: Lhs.Rhs. Lhs is nil only for the
// degenerate unqualified form, which the parser never produces (it emits a
// bare Ident instead).
type Scope struct {
	Lhs Cap
	Rhs Cap
}

func (*Scope) capNode()  {}
func (*Scope) exprNode() {}
func (s *Scope) String() string {
	if s.Lhs == nil {
		return "." + s.Rhs.String()
	}
	return s.Lhs.String() + "." + s.Rhs.String()
}

//  Expressions

// Expr is implemented by every node that can appear in value position.
type Expr interface {
	exprNode()
	String() string
}

// Literal is an unconverted literal. Text is a slice into the Tree's source
// buffer; for strings it is the bytes between the quotes, unprocessed.
// Numeric conversion happens during analysis, not here.
type Literal struct {
	Kind lexer.Kind // NumberLit, FloatLit, or StringLit
	Text []byte
	Tok  int
}

func (*Literal) exprNode() {}
func (l *Literal) String() string {
	if l.Kind == lexer.StringLit {
		return fmt.Sprintf("%q", l.Text)
	}
	return string(l.Text)
}

// Block is an ordered sequence of operations. Order is semantically
// significant. The root of every Tree is a Block.
type Block struct {
	Ops []Op
}

func (*Block) exprNode()        {}
func (b *Block) String() string { return fmt.Sprintf("Block(%d ops)", len(b.Ops)) }

//  Operations

// Op is implemented by every node that can appear in statement position.
type Op interface {
	opNode()
	String() string
}

// Decl declares Target. Value may be nil when a modifier keyword was
// present; the analyzer rejects a Decl with neither modifiers nor value.
// DeclType is nil when no ":" annotation was written; it stays unresolved
// until analysis.
type Decl struct {
	Mods     Mods
	Target   Cap
	DeclType Cap
	Value    Expr

	// HasModifier records that a modifier keyword appeared at all.
	// "const" sets no flag bits, so Mods alone cannot tell "const x"
	// apart from the annotation-only form "x : u8".
	HasModifier bool
}

func (*Decl) opNode() {}
func (d *Decl) String() string {
	s := fmt.Sprintf("Decl(%s %s", d.Mods, d.Target)
	if d.DeclType != nil {
		s += ": " + d.DeclType.String()
	}
	if d.Value != nil {
		s += " = " + d.Value.String()
	}
	return s + ")"
}

// Set assigns Value to an already-declared Target.
type Set struct {
	Target Cap
	Value  Expr
}

func (*Set) opNode()          {}
func (s *Set) String() string { return fmt.Sprintf("Set(%s = %s)", s.Target, s.Value) }

// Call is target(args...).
type Call struct {
	Target Cap
	Args   []Expr
}

func (*Call) opNode()   {}
func (*Call) exprNode() {}
func (c *Call) String() string {
	return fmt.Sprintf("Call(%s, args=%d)", c.Target, len(c.Args))
}

// BuiltinCall is the compiler-intrinsic form $target(args...).
type BuiltinCall struct {
	Target Cap
	Args   []Expr
}

func (*BuiltinCall) opNode()   {}
func (*BuiltinCall) exprNode() {}
func (c *BuiltinCall) String() string {
	return fmt.Sprintf("BuiltinCall($%s, args=%d)", c.Target, len(c.Args))
}

// MacroCall is the macro-expansion form !target(args...).
type MacroCall struct {
	Target Cap
	Args   []Expr
}

func (*MacroCall) opNode()   {}
func (*MacroCall) exprNode() {}
func (c *MacroCall) String() string {
	return fmt.Sprintf("MacroCall(!%s, args=%d)", c.Target, len(c.Args))
}

//  Tree

// Tree is the result of one parse. It owns the source buffer and the token
// slice; every node's text payload is a slice into that buffer, so nodes
// share the Tree's lifetime and the Tree must outlive anything that borrows
// from it (including a TypedTree produced from it).
type Tree struct {
	src  []byte
	toks []lexer.Token
	Root *Block
}

// New is called by the parser once the root block is built.
func New(src []byte, toks []lexer.Token, root *Block) *Tree {
	return &Tree{src: src, toks: toks, Root: root}
}

// Source returns the buffer the Tree was parsed from.
func (t *Tree) Source() []byte { return t.src }

// Tokens returns the full token sequence, comments included.
func (t *Tree) Tokens() []lexer.Token { return t.toks }

// TokSource returns the text of token i as a slice into the original
// buffer, with no copy.
func (t *Tree) TokSource(i int) []byte {
	return t.toks[i].Source(t.src)
}

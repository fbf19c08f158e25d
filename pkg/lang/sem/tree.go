package sem

import (
	"fmt"

	"sable/pkg/lang/ast"
	"sable/pkg/lang/types"
)

// Tree is the typed operation tree produced by Transform. It owns its own
// node graph and Registry, independent of the ast.Tree's, but its string
// payloads are slices into the ast.Tree's source buffer: a Tree must not
// outlive the source it was lowered from.
type Tree struct {
	src   []byte
	Types *types.Registry
	Root  *Block
}

// Source returns the borrowed source buffer.
func (t *Tree) Source() []byte { return t.src }

// Block is an ordered sequence of lowered operations.
type Block struct {
	Ops []Op
}

func (*Block) exprNode()        {}
func (b *Block) String() string { return fmt.Sprintf("Block(%d ops)", len(b.Ops)) }

//  Capability paths

// Cap mirrors the AST path shape one-for-one. Binding a Cap to its
// declaration is deferred to a later resolution pass.
type Cap interface {
	capNode()
	String() string
}

type Ident struct {
	Name []byte
}

func (*Ident) capNode()         {}
func (*Ident) exprNode()        {}
func (i *Ident) String() string { return string(i.Name) }

type Scope struct {
	Lhs Cap // nil for an unqualified path
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

//  Operations

type Op interface {
	opNode()
	String() string
}

// Decl is a lowered declaration. Type is Unresolved until the resolution
// pass can bind declared type names; Value is nil only when modifiers are
// present.
type Decl struct {
	Target Cap
	Mods   ast.Mods
	Type   types.TypeID
	Value  Expr
}

func (*Decl) opNode() {}
func (d *Decl) String() string {
	return fmt.Sprintf("Decl(%s %s type=%d)", d.Mods, d.Target, d.Type)
}

// Set is a lowered assignment. Mods is always zero today; the field exists
// because the operation layout keeps Decl and Set symmetric.
type Set struct {
	Target Cap
	Mods   ast.Mods
	Type   types.TypeID
	Value  Expr
}

func (*Set) opNode()          {}
func (s *Set) String() string { return fmt.Sprintf("Set(%s type=%d)", s.Target, s.Type) }

// Call, BuiltinCall, and MacroCall carry only their target in this scope.
// Argument lowering is a future extension of the operation layout.
type Call struct {
	Target Cap
}

func (*Call) opNode()          {}
func (*Call) exprNode()        {}
func (c *Call) String() string { return fmt.Sprintf("Call(%s)", c.Target) }

type BuiltinCall struct {
	Target Cap
}

func (*BuiltinCall) opNode()          {}
func (*BuiltinCall) exprNode()        {}
func (c *BuiltinCall) String() string { return fmt.Sprintf("BuiltinCall($%s)", c.Target) }

type MacroCall struct {
	Target Cap
}

func (*MacroCall) opNode()          {}
func (*MacroCall) exprNode()        {}
func (c *MacroCall) String() string { return fmt.Sprintf("MacroCall(!%s)", c.Target) }

//  Expressions

type Expr interface {
	exprNode()
	String() string
}

// IntLit is a converted integer literal.
type IntLit struct {
	Value int64
}

func (*IntLit) exprNode()        {}
func (l *IntLit) String() string { return fmt.Sprintf("%d", l.Value) }

// FloatLit is a converted float literal.
type FloatLit struct {
	Value float64
}

func (*FloatLit) exprNode()        {}
func (l *FloatLit) String() string { return fmt.Sprintf("%g", l.Value) }

// StrLit is a string literal. Value is the raw bytes between the quotes,
// borrowed from the source buffer with no escape processing.
type StrLit struct {
	Value []byte
}

func (*StrLit) exprNode()        {}
func (l *StrLit) String() string { return fmt.Sprintf("%q", l.Value) }

package sem

import (
	"fmt"
	"strconv"

	"sable/pkg/lang/ast"
	"sable/pkg/lang/lexer"
	"sable/pkg/lang/types"
)

// AnalysisError is a fatal semantic fault in otherwise well-formed syntax.
// AST shapes the analyzer was not built for are a different thing entirely:
// those are contract violations between parser and analyzer and panic
// instead of returning an error.
type AnalysisError struct {
	Msg string
}

func (e *AnalysisError) Error() string { return "analysis error: " + e.Msg }

// Transform lowers a parsed tree into a typed operation tree, block by
// block, in source order. It never mutates its input and is deterministic
// for identical input. The result borrows string data from t's source
// buffer and must not outlive it.
func Transform(t *ast.Tree) (*Tree, error) {
	a := &analyzer{types: types.New()}
	root, err := a.block(t.Root)
	if err != nil {
		return nil, err
	}
	return &Tree{src: t.Source(), Types: a.types, Root: root}, nil
}

type analyzer struct {
	types *types.Registry
}

func (a *analyzer) block(b *ast.Block) (*Block, error) {
	out := &Block{Ops: make([]Op, 0, len(b.Ops))}
	for _, op := range b.Ops {
		lowered, err := a.op(op)
		if err != nil {
			return nil, err
		}
		out.Ops = append(out.Ops, lowered)
	}
	return out, nil
}

func (a *analyzer) op(op ast.Op) (Op, error) {
	switch op := op.(type) {
	case *ast.Decl:
		target := a.cap(op.Target)
		var value Expr
		if op.Value != nil {
			var err error
			if value, err = a.expr(op.Value); err != nil {
				return nil, err
			}
		} else if !op.HasModifier {
			return nil, &AnalysisError{Msg: fmt.Sprintf("declaration of %s has no modifiers and no value", op.Target)}
		}
		return &Decl{Target: target, Mods: op.Mods, Type: a.resolve(target, op.DeclType), Value: value}, nil

	case *ast.Set:
		value, err := a.expr(op.Value)
		if err != nil {
			return nil, err
		}
		target := a.cap(op.Target)
		return &Set{Target: target, Type: a.resolve(target, nil), Value: value}, nil

	case *ast.Call:
		return &Call{Target: a.cap(op.Target)}, nil

	case *ast.BuiltinCall:
		return &BuiltinCall{Target: a.cap(op.Target)}, nil

	case *ast.MacroCall:
		return &MacroCall{Target: a.cap(op.Target)}, nil

	default:
		panic(fmt.Sprintf("sem: operation node %T outside the lowering contract", op))
	}
}

// cap maps the AST path shape onto the lowered Cap one-for-one. Name
// resolution is deferred; this is purely structural.
func (a *analyzer) cap(c ast.Cap) Cap {
	switch c := c.(type) {
	case *ast.Ident:
		return &Ident{Name: c.Name}
	case *ast.Scope:
		var lhs Cap
		if c.Lhs != nil {
			lhs = a.cap(c.Lhs)
		}
		return &Scope{Lhs: lhs, Rhs: a.cap(c.Rhs)}
	default:
		panic(fmt.Sprintf("sem: cap node %T outside the lowering contract", c))
	}
}

// resolve maps a declaration target and its declared type to a TypeID.
// Unqualified primitive names resolve through the registry; a qualified or
// unknown name stays Unresolved until a name-resolution pass exists.
func (a *analyzer) resolve(target Cap, declared ast.Cap) types.TypeID {
	ident, ok := declared.(*ast.Ident)
	if !ok {
		return types.Unresolved
	}
	if id, ok := a.types.Lookup(string(ident.Name)); ok {
		return id
	}
	return types.Unresolved
}

func (a *analyzer) expr(e ast.Expr) (Expr, error) {
	switch e := e.(type) {
	case *ast.Literal:
		return a.literal(e)

	case *ast.Ident:
		return &Ident{Name: e.Name}, nil

	case *ast.Scope:
		return a.cap(e).(Expr), nil

	case *ast.Block:
		return a.block(e)

	case *ast.Call:
		return &Call{Target: a.cap(e.Target)}, nil

	case *ast.BuiltinCall:
		return &BuiltinCall{Target: a.cap(e.Target)}, nil

	case *ast.MacroCall:
		return &MacroCall{Target: a.cap(e.Target)}, nil

	default:
		panic(fmt.Sprintf("sem: expression node %T outside the lowering contract", e))
	}
}

// literal classifies a literal by its originating token kind.
func (a *analyzer) literal(l *ast.Literal) (Expr, error) {
	switch l.Kind {
	case lexer.NumberLit:
		v, err := strconv.ParseInt(string(l.Text), 10, 64)
		if err != nil {
			return nil, &AnalysisError{Msg: fmt.Sprintf("integer literal %q does not fit a 64-bit signed value", l.Text)}
		}
		return &IntLit{Value: v}, nil

	case lexer.FloatLit:
		v, err := strconv.ParseFloat(string(l.Text), 64)
		if err != nil {
			return nil, &AnalysisError{Msg: fmt.Sprintf("malformed float literal %q", l.Text)}
		}
		return &FloatLit{Value: v}, nil

	case lexer.StringLit:
		return &StrLit{Value: l.Text}, nil

	default:
		panic(fmt.Sprintf("sem: literal with token kind %s outside the lowering contract", l.Kind))
	}
}

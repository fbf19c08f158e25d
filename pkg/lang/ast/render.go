package ast

import (
	"fmt"
	"io"
	"strings"
)

// Render writes an indented debug dump of the tree. The format is for
// humans reading compiler output; it is not a stable serialization.
func (t *Tree) Render(w io.Writer) error {
	p := &printer{w: w}
	p.block(t.Root, 0)
	return p.err
}

type printer struct {
	w   io.Writer
	err error
}

func (p *printer) linef(depth int, format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, "%s%s\n", strings.Repeat("  ", depth), fmt.Sprintf(format, args...))
}

func (p *printer) block(b *Block, depth int) {
	p.linef(depth, "Block")
	for _, op := range b.Ops {
		p.op(op, depth+1)
	}
}

func (p *printer) op(op Op, depth int) {
	switch op := op.(type) {
	case *Decl:
		p.linef(depth, "Decl %s %s%s", op.Mods, op.Target, declType(op.DeclType))
		if op.Value != nil {
			p.expr(op.Value, depth+1)
		}
	case *Set:
		p.linef(depth, "Set %s", op.Target)
		p.expr(op.Value, depth+1)
	case *Call:
		p.linef(depth, "Call %s", op.Target)
		p.args(op.Args, depth+1)
	case *BuiltinCall:
		p.linef(depth, "BuiltinCall $%s", op.Target)
		p.args(op.Args, depth+1)
	case *MacroCall:
		p.linef(depth, "MacroCall !%s", op.Target)
		p.args(op.Args, depth+1)
	default:
		p.linef(depth, "%s", op)
	}
}

func (p *printer) args(args []Expr, depth int) {
	for _, a := range args {
		p.expr(a, depth)
	}
}

func (p *printer) expr(e Expr, depth int) {
	switch e := e.(type) {
	case *Literal:
		p.linef(depth, "Literal %s", e)
	case *Ident:
		p.linef(depth, "Ident %s", e)
	case *Scope:
		p.linef(depth, "Scope %s", e)
	case *Block:
		p.block(e, depth)
	case *Call:
		p.linef(depth, "Call %s", e.Target)
		p.args(e.Args, depth+1)
	case *BuiltinCall:
		p.linef(depth, "BuiltinCall $%s", e.Target)
		p.args(e.Args, depth+1)
	case *MacroCall:
		p.linef(depth, "MacroCall !%s", e.Target)
		p.args(e.Args, depth+1)
	default:
		p.linef(depth, "%s", e)
	}
}

func declType(c Cap) string {
	if c == nil {
		return ""
	}
	return ": " + c.String()
}

package sem

import (
	"fmt"
	"io"
	"strings"
)

// Render writes an indented debug dump of the typed tree. Rendering is a
// caller-invoked capability, never a side effect of Transform, and the
// format is not a stable serialization.
func (t *Tree) Render(w io.Writer) error {
	p := &printer{w: w, types: t}
	p.block(t.Root, 0)
	return p.err
}

type printer struct {
	w     io.Writer
	types *Tree
	err   error
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
		p.linef(depth, "Decl %s %s: %s", op.Mods, op.Target, p.types.Types.Get(op.Type))
		if op.Value != nil {
			p.expr(op.Value, depth+1)
		}
	case *Set:
		p.linef(depth, "Set %s: %s", op.Target, p.types.Types.Get(op.Type))
		p.expr(op.Value, depth+1)
	case *Call, *BuiltinCall, *MacroCall:
		p.linef(depth, "%s", op)
	default:
		p.linef(depth, "%s", op)
	}
}

func (p *printer) expr(e Expr, depth int) {
	switch e := e.(type) {
	case *IntLit:
		p.linef(depth, "Int %d", e.Value)
	case *FloatLit:
		p.linef(depth, "Float %g", e.Value)
	case *StrLit:
		p.linef(depth, "String %q", e.Value)
	case *Ident:
		p.linef(depth, "Ident %s", e)
	case *Scope:
		p.linef(depth, "Scope %s", e)
	case *Block:
		p.block(e, depth)
	default:
		p.linef(depth, "%s", e)
	}
}

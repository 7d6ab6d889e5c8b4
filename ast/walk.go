package ast

// A Visitor's Visit method is invoked for each node encountered by
// Walk. If the returned Visitor w is non-nil, Walk visits each of the
// node's children with w, followed by a call to w.Visit(nil).
type Visitor interface {
	Visit(node Node) (w Visitor)
}

// Walk traverses a statement or expression tree in depth-first order.
// It is how the class-model validator (see validate_semantics.go's
// shadowVisitor) collects information without hand-rolling its own
// type switch over every statement and expression shape.
func Walk(v Visitor, node Node) {
	if node == nil {
		return
	}
	if v = v.Visit(node); v == nil {
		return
	}

	switch n := node.(type) {
	case *IdentChain:
		for _, a := range n.Accesses {
			if a.Index != nil {
				Walk(v, a.Index)
			}
			for _, arg := range a.Args {
				Walk(v, arg)
			}
		}

	case *ArrayLiteral:
		for _, e := range n.Elements {
			Walk(v, e)
		}

	case *NewExpr:
		for _, a := range n.Args {
			Walk(v, a)
		}
		for _, d := range n.Dims {
			Walk(v, d)
		}

	case *Unary:
		Walk(v, n.Operand)

	case *Binary:
		Walk(v, n.Left)
		Walk(v, n.Right)

	case *Paren:
		Walk(v, n.Inner)

	case *Return:
		if n.Expr != nil {
			Walk(v, n.Expr)
		}

	case *Declare:
		for _, dv := range n.Vars {
			if dv.Init != nil {
				Walk(v, dv.Init)
			}
		}

	case *Assign:
		Walk(v, n.Target)
		Walk(v, n.Value)

	case *Call:
		Walk(v, n.Chain)

	case *Block:
		for _, s := range n.Stmts {
			Walk(v, s)
		}

	case *If:
		Walk(v, n.Cond)
		Walk(v, n.Then)
		if n.Else != nil {
			Walk(v, n.Else)
		}

	case *While:
		Walk(v, n.Cond)
		Walk(v, n.Body)

	case *For:
		if n.Init != nil {
			Walk(v, n.Init)
		}
		if n.Cond != nil {
			Walk(v, n.Cond)
		}
		if n.Post != nil {
			Walk(v, n.Post)
		}
		Walk(v, n.Body)

	case *ForEach:
		Walk(v, n.Iterable)
		Walk(v, n.Body)

		// NumberLit, StringLit, BoolLit, NullLit have no children.
	}

	v.Visit(nil)
}

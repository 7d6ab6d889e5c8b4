package ast

// String renders a node as J-flavored pseudocode. It exists for
// debugging and test failure messages, not for emission — the P
// emitter walks these nodes directly rather than reparsing this text.
func String(n Node) string { return string(n.AppendString(nil)) }

func (n *NumberLit) AppendString(dst []byte) []byte { return append(dst, n.Value...) }
func (n *StringLit) AppendString(dst []byte) []byte {
	dst = append(dst, '"')
	dst = append(dst, n.Value...)
	return append(dst, '"')
}
func (n *BoolLit) AppendString(dst []byte) []byte {
	if n.Value {
		return append(dst, "true"...)
	}
	return append(dst, "false"...)
}
func (n *NullLit) AppendString(dst []byte) []byte { return append(dst, "null"...) }

func (n *IdentChain) AppendString(dst []byte) []byte {
	dst = append(dst, n.Name...)
	for _, a := range n.Accesses {
		switch {
		case a.IsCall():
			dst = append(dst, '(')
			for i, arg := range a.Args {
				if i > 0 {
					dst = append(dst, ", "...)
				}
				dst = arg.AppendString(dst)
			}
			dst = append(dst, ')')
		case a.IsIndex():
			dst = append(dst, '[')
			dst = a.Index.AppendString(dst)
			dst = append(dst, ']')
		default:
			dst = append(dst, '.')
			dst = append(dst, a.Field...)
		}
	}
	return dst
}

func (n *ArrayLiteral) AppendString(dst []byte) []byte {
	dst = append(dst, '{')
	for i, e := range n.Elements {
		if i > 0 {
			dst = append(dst, ", "...)
		}
		dst = e.AppendString(dst)
	}
	return append(dst, '}')
}

func (n *NewExpr) AppendString(dst []byte) []byte {
	dst = append(dst, "new "...)
	dst = append(dst, n.Type...)
	if n.Args != nil {
		dst = append(dst, '(')
		for i, a := range n.Args {
			if i > 0 {
				dst = append(dst, ", "...)
			}
			dst = a.AppendString(dst)
		}
		dst = append(dst, ')')
	}
	for _, d := range n.Dims {
		dst = append(dst, '[')
		dst = d.AppendString(dst)
		dst = append(dst, ']')
	}
	return dst
}

func (n *Unary) AppendString(dst []byte) []byte {
	dst = append(dst, n.Op...)
	return n.Operand.AppendString(dst)
}

func (n *Binary) AppendString(dst []byte) []byte {
	dst = n.Left.AppendString(dst)
	dst = append(dst, ' ')
	dst = append(dst, n.Op...)
	dst = append(dst, ' ')
	return n.Right.AppendString(dst)
}

func (n *Paren) AppendString(dst []byte) []byte {
	dst = append(dst, '(')
	dst = n.Inner.AppendString(dst)
	return append(dst, ')')
}

func (n *Return) AppendString(dst []byte) []byte {
	dst = append(dst, "return"...)
	if n.Expr != nil {
		dst = append(dst, ' ')
		dst = n.Expr.AppendString(dst)
	}
	return dst
}

func (n *Declare) AppendString(dst []byte) []byte {
	for i, v := range n.Vars {
		if i > 0 {
			dst = append(dst, ", "...)
		}
		dst = append(dst, v.Name...)
		if v.Init != nil {
			dst = append(dst, " = "...)
			dst = v.Init.AppendString(dst)
		}
	}
	return dst
}

func (n *Assign) AppendString(dst []byte) []byte {
	dst = n.Target.AppendString(dst)
	dst = append(dst, " = "...)
	return n.Value.AppendString(dst)
}

func (n *Call) AppendString(dst []byte) []byte { return n.Chain.AppendString(dst) }

func (n *Block) AppendString(dst []byte) []byte {
	dst = append(dst, '{')
	for _, s := range n.Stmts {
		dst = append(dst, ' ')
		dst = s.AppendString(dst)
		dst = append(dst, ';')
	}
	return append(dst, '}')
}

func appendStatement(dst []byte, s Statement) []byte {
	if s == nil {
		return append(dst, ";"...)
	}
	return s.AppendString(dst)
}

func (n *If) AppendString(dst []byte) []byte {
	dst = append(dst, "if ("...)
	dst = n.Cond.AppendString(dst)
	dst = append(dst, ") "...)
	dst = appendStatement(dst, n.Then)
	if n.Else != nil {
		dst = append(dst, " else "...)
		dst = n.Else.AppendString(dst)
	}
	return dst
}

func (n *While) AppendString(dst []byte) []byte {
	dst = append(dst, "while ("...)
	dst = n.Cond.AppendString(dst)
	dst = append(dst, ") "...)
	return appendStatement(dst, n.Body)
}

func (n *For) AppendString(dst []byte) []byte {
	dst = append(dst, "for ("...)
	if n.Init != nil {
		dst = n.Init.AppendString(dst)
	}
	dst = append(dst, "; "...)
	if n.Cond != nil {
		dst = n.Cond.AppendString(dst)
	}
	dst = append(dst, "; "...)
	if n.Post != nil {
		dst = n.Post.AppendString(dst)
	}
	dst = append(dst, ") "...)
	return appendStatement(dst, n.Body)
}

func (n *ForEach) AppendString(dst []byte) []byte {
	dst = append(dst, "for ("...)
	dst = append(dst, n.VarName...)
	dst = append(dst, " : "...)
	dst = n.Iterable.AppendString(dst)
	dst = append(dst, ") "...)
	return appendStatement(dst, n.Body)
}

package j2py

import (
	"strconv"
	"strings"

	"github.com/gojlang/j2py/ast"
	"github.com/gojlang/j2py/class"
	"github.com/gojlang/j2py/intrinsic"
)

// emitExpr renders an expression that stands alone as a statement's
// full value — a Return's expr, an Assign's value or target, a
// Declare initializer, or a loop/if condition — where an ".equals()"
// rewrite never needs parenthesizing. locals is the enclosing method's
// lexical locals set (parameters plus every name Declare'd so far); it
// may be nil at class scope, where no locals exist.
func (e *Emitter) emitExpr(cls *class.Class, locals map[string]bool, expr ast.Expression) string {
	return e.emitExprParen(cls, locals, expr, false)
}

// emitSubExpr renders expr as a sub-expression of some other operator
// or call: a Binary/Unary operand, an array-literal element, a call
// argument, an index, or an array-constructor dimension. If expr is
// (or ends in) an ".equals()" rewrite, the result is parenthesized
// here, since Python's "==" binds looser than most other operators and
// a bare rewrite would silently change precedence (e.g. "a.equals(b) |
// c" must not become "a == b | c").
func (e *Emitter) emitSubExpr(cls *class.Class, locals map[string]bool, expr ast.Expression) string {
	return e.emitExprParen(cls, locals, expr, true)
}

func (e *Emitter) emitExprParen(cls *class.Class, locals map[string]bool, expr ast.Expression, needParen bool) string {
	switch n := expr.(type) {
	case *ast.NumberLit:
		return n.Value
	case *ast.StringLit:
		return `"` + n.Value + `"`
	case *ast.BoolLit:
		word := "false"
		if n.Value {
			word = "true"
		}
		lit, _ := intrinsic.Literal(word)
		return lit
	case *ast.NullLit:
		lit, _ := intrinsic.Literal("null")
		return lit
	case *ast.IdentChain:
		return e.emitIdentChainExpr(cls, locals, n, needParen)
	case *ast.ArrayLiteral:
		parts := make([]string, len(n.Elements))
		for i, el := range n.Elements {
			parts[i] = e.emitSubExpr(cls, locals, el)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case *ast.NewExpr:
		return e.emitNewExpr(cls, locals, n)
	case *ast.Unary:
		if n.Op == "!" {
			return "not " + e.emitSubExpr(cls, locals, n.Operand)
		}
		return n.Op + e.emitSubExpr(cls, locals, n.Operand)
	case *ast.Binary:
		if n.Op == "<<" || n.Op == ">>" {
			// Already diagnosed by the parser; keep emitting something
			// syntactically valid so the rest of the file still renders.
			return e.emitSubExpr(cls, locals, n.Left) + " " + n.Op + " " + e.emitSubExpr(cls, locals, n.Right)
		}
		return e.emitSubExpr(cls, locals, n.Left) + " " + intrinsic.Operator(n.Op) + " " + e.emitSubExpr(cls, locals, n.Right)
	case *ast.Paren:
		return "(" + e.emitExpr(cls, locals, n.Inner) + ")"
	}
	return ""
}

// emitIdentChainExpr renders an IdentChain used as an expression,
// special-casing the one hardcoded host-library call this translator
// rewrites by name: System.out.println.
func (e *Emitter) emitIdentChainExpr(cls *class.Class, locals map[string]bool, n *ast.IdentChain, needParen bool) string {
	if intrinsic.IsSystemOutPrintln(n.Name, chainFields(n.Accesses)) {
		return e.emitPrintCall(cls, locals, n)
	}
	return e.emitIdentChain(cls, locals, n, needParen)
}

func chainFields(accesses []ast.Access) []string {
	var out []string
	for _, a := range accesses {
		if !a.IsCall() && !a.IsIndex() {
			out = append(out, a.Field)
		}
	}
	return out
}

// emitPrintCall renders "System.out.println(args)" as "print(args)".
func (e *Emitter) emitPrintCall(cls *class.Class, locals map[string]bool, n *ast.IdentChain) string {
	var args []ast.Expression
	if len(n.Accesses) >= 3 && n.Accesses[2].IsCall() {
		args = n.Accesses[2].Args
	}
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = e.emitSubExpr(cls, locals, a)
	}
	return "print(" + strings.Join(parts, ", ") + ")"
}

// emitIdentChain renders a general identifier chain: this->self, a
// locals-set pass-through, or a static/instance class-member lookup,
// followed by its field/index/call accesses — with the ".length" and
// ".equals(rhs)" rewrites spliced in along the way.
func (e *Emitter) emitIdentChain(cls *class.Class, locals map[string]bool, chain *ast.IdentChain, needParen bool) string {
	cur := e.rewriteLeadingName(cls, locals, chain.Name)

	accesses := chain.Accesses
	for i := 0; i < len(accesses); i++ {
		a := accesses[i]

		if !a.IsCall() && !a.IsIndex() && a.Field == "length" {
			cur = "len(" + cur + ")"
			// ".length" and ".length()" are equivalent; absorb a
			// trailing empty-arg call for idempotence.
			if i+1 < len(accesses) && accesses[i+1].IsCall() && len(accesses[i+1].Args) == 0 {
				i++
			}
			continue
		}

		if !a.IsCall() && !a.IsIndex() && a.Field == "equals" &&
			i+1 < len(accesses) && accesses[i+1].IsCall() && len(accesses[i+1].Args) == 1 {
			rhs := e.emitSubExpr(cls, locals, accesses[i+1].Args[0])
			result := cur + " == " + rhs
			if needParen {
				result = "(" + result + ")"
			}
			return result
		}

		switch {
		case a.IsCall():
			parts := make([]string, len(a.Args))
			for j, arg := range a.Args {
				parts[j] = e.emitSubExpr(cls, locals, arg)
			}
			cur += "(" + strings.Join(parts, ", ") + ")"
		case a.IsIndex():
			cur += "[" + e.emitSubExpr(cls, locals, a.Index) + "]"
		default:
			cur += "." + a.Field
		}
	}
	return cur
}

// rewriteLeadingName rewrites just the first name of an identifier
// chain: "this" becomes "self"; a name already in scope passes
// through; otherwise the enclosing class is consulted for a
// same-named variable or method and, if found, prefixed with either
// the class name (static) or "self." (instance); an unresolved name is
// assumed external or inherited and passes through unchanged.
func (e *Emitter) rewriteLeadingName(cls *class.Class, locals map[string]bool, name string) string {
	if name == "this" {
		return "self"
	}
	if locals[name] {
		return name
	}
	if v, ok := cls.Variable(name); ok {
		if v.Modifiers.Static {
			return cls.Name + "." + e.varDisplayName(v)
		}
		return "self." + e.varDisplayName(v)
	}
	if overloads := cls.Overloads(name); len(overloads) > 0 {
		if overloads[0].Modifiers.Static {
			return cls.Name + "." + name
		}
		return "self." + name
	}
	return name
}

// emitNewExpr renders "new T(args)" as a constructor call, and
// "new T[n]"/"new T[n][m]" as the literal-repetition or nested
// comprehension the array-constructor synthesis below describes.
func (e *Emitter) emitNewExpr(cls *class.Class, locals map[string]bool, n *ast.NewExpr) string {
	if len(n.Dims) > 0 {
		return e.emitArrayDims(cls, locals, n.Type, n.Dims, 0)
	}
	parts := make([]string, len(n.Args))
	for i, a := range n.Args {
		parts[i] = e.emitSubExpr(cls, locals, a)
	}
	return n.Type + "(" + strings.Join(parts, ", ") + ")"
}

// emitArrayDims renders one dimension of a "new T[d0][d1]..." array
// constructor. A literal integer dimension expands to a repeated
// literal list (e.g. "new int[3]" -> "[0, 0, 0]"); a non-literal
// dimension falls back to a range-comprehension, since its size can't
// be resolved at translate time.
func (e *Emitter) emitArrayDims(cls *class.Class, locals map[string]bool, datatype string, dims []ast.Expression, depth int) string {
	var elem string
	if depth == len(dims)-1 {
		elem = intrinsic.DefaultElement(datatype)
	} else {
		elem = e.emitArrayDims(cls, locals, datatype, dims, depth+1)
	}

	if lit, ok := dims[depth].(*ast.NumberLit); ok {
		if count, err := strconv.Atoi(lit.Value); err == nil && count >= 0 {
			parts := make([]string, count)
			for i := range parts {
				parts[i] = elem
			}
			return "[" + strings.Join(parts, ", ") + "]"
		}
	}
	size := e.emitSubExpr(cls, locals, dims[depth])
	return "[" + elem + " for _ in range(" + size + ")]"
}

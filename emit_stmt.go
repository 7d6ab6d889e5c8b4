package j2py

import (
	"github.com/gojlang/j2py/ast"
	"github.com/gojlang/j2py/class"
)

// emitStmt renders one statement into w at the current indent level,
// mutating locals for Declare and ForEach (their names enter the
// lexical locals set from this point forward, ahead of any later
// identifier rewrite that consults it).
func (e *Emitter) emitStmt(cls *class.Class, locals map[string]bool, w *buf, s ast.Statement) {
	switch n := s.(type) {
	case *ast.Return:
		if n.Expr == nil {
			w.line("return")
		} else {
			w.line("return " + e.emitExpr(cls, locals, n.Expr))
		}

	case *ast.Declare:
		for _, v := range n.Vars {
			locals[v.Name] = true
			if v.Init != nil {
				w.line(v.Name + " = " + e.emitExpr(cls, locals, v.Init))
			}
		}

	case *ast.Assign:
		target := e.emitIdentChain(cls, locals, n.Target, false)
		w.line(target + " = " + e.emitExpr(cls, locals, n.Value))

	case *ast.Call:
		w.line(e.emitExpr(cls, locals, n.Chain))

	case *ast.Block:
		e.emitStmtsFlat(cls, locals, w, n.Stmts)

	case *ast.If:
		e.emitIf(cls, locals, w, n)

	case *ast.While:
		w.line("while " + e.emitExpr(cls, locals, n.Cond) + ":")
		w.push()
		e.emitBodyOrPass(cls, locals, w, n.Body)
		w.pop()

	case *ast.For:
		// C-style for, rewritten into a while loop: the init statement
		// runs once before the loop, the condition becomes the
		// while-guard (defaulting to True when omitted, matching J's
		// "for(;;)"), and the post statement is appended to the very end
		// of the loop body.
		if n.Init != nil {
			e.emitStmt(cls, locals, w, n.Init)
		}
		cond := "True"
		if n.Cond != nil {
			cond = e.emitExpr(cls, locals, n.Cond)
		}
		w.line("while " + cond + ":")
		w.push()
		bodyStart := len(w.b)
		if n.Body != nil {
			e.emitStmt(cls, locals, w, n.Body)
		}
		if n.Post != nil {
			e.emitStmt(cls, locals, w, n.Post)
		}
		if len(w.b) == bodyStart {
			w.line("pass")
		}
		w.pop()

	case *ast.ForEach:
		locals[n.VarName] = true
		w.line("for " + n.VarName + " in " + e.emitExpr(cls, locals, n.Iterable) + ":")
		w.push()
		e.emitBodyOrPass(cls, locals, w, n.Body)
		w.pop()
	}
}

// emitBodyOrPass emits body (nil-safe) and falls back to a bare "pass"
// line if it produced no output — required wherever P demands a
// non-empty indented block.
func (e *Emitter) emitBodyOrPass(cls *class.Class, locals map[string]bool, w *buf, body ast.Statement) {
	start := len(w.b)
	if body != nil {
		e.emitStmt(cls, locals, w, body)
	}
	if len(w.b) == start {
		w.line("pass")
	}
}

// emitIf renders an If, collapsing a chained "else if (...)" into a
// single "elif" rather than nesting an indented "else:\n    if ...". A
// braced "else { if ... }" is a Block, not an If, and is emitted as a
// nested "else:" block.
func (e *Emitter) emitIf(cls *class.Class, locals map[string]bool, w *buf, n *ast.If) {
	w.line("if " + e.emitExpr(cls, locals, n.Cond) + ":")
	w.push()
	e.emitBodyOrPass(cls, locals, w, n.Then)
	w.pop()
	e.emitElse(cls, locals, w, n.Else)
}

func (e *Emitter) emitElse(cls *class.Class, locals map[string]bool, w *buf, els ast.Statement) {
	if els == nil {
		return
	}
	if inner, ok := els.(*ast.If); ok {
		w.line("elif " + e.emitExpr(cls, locals, inner.Cond) + ":")
		w.push()
		e.emitBodyOrPass(cls, locals, w, inner.Then)
		w.pop()
		e.emitElse(cls, locals, w, inner.Else)
		return
	}
	w.line("else:")
	w.push()
	e.emitBodyOrPass(cls, locals, w, els)
	w.pop()
}

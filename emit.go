package j2py

import (
	"strconv"
	"strings"

	"github.com/gojlang/j2py/ast"
	"github.com/gojlang/j2py/class"
)

// Emitter walks a Class Model and renders P source text. It never
// mutates the classes it walks.
type Emitter struct {
	classes []*class.Class
	opts    Options
	sink    *Sink
}

// NewEmitter creates an Emitter over classes, configured by opts.
// Diagnostics recorded during emission (there are essentially none —
// the emitter passes unknown identifiers through rather than erroring
// on them) go through sink.
func NewEmitter(classes []*class.Class, opts Options, sink *Sink) *Emitter {
	return &Emitter{classes: classes, opts: opts, sink: sink}
}

// buf accumulates emitted P source with four-space indentation.
type buf struct {
	b      []byte
	indent int
}

func (w *buf) push() { w.indent++ }
func (w *buf) pop()  { w.indent-- }

func (w *buf) line(s string) {
	for i := 0; i < w.indent; i++ {
		w.b = append(w.b, "    "...)
	}
	w.b = append(w.b, s...)
	w.b = append(w.b, '\n')
}

func (w *buf) blank() { w.b = append(w.b, '\n') }

// Emit renders every class in declaration order, followed by the
// entry-point trailer that dispatches to any declared "main" method.
func (e *Emitter) Emit() string {
	w := &buf{}
	for i, cls := range e.classes {
		if i > 0 {
			w.blank()
		}
		e.emitClass(w, cls)
	}
	e.emitEntryPoint(w)
	return string(w.b)
}

func paramSet(names []string) map[string]bool {
	m := make(map[string]bool, len(names))
	for _, n := range names {
		m[n] = true
	}
	return m
}

// emitClass renders one "class NAME(SUPER):" block: nested classes,
// then static variable assignments, then __init__, then every instance
// method. Nested classes go first so that later references to them
// from static variables or methods in the same body never forward
// reference an undefined name (see DESIGN.md's open-question note).
func (e *Emitter) emitClass(w *buf, cls *class.Class) {
	if e.opts.ClassComment && cls.Comment != "" {
		w.line("# " + cls.Comment)
	}
	w.line("class " + cls.Name + "(" + cls.Super + "):")
	w.push()
	bodyStart := len(w.b)

	for _, nested := range cls.NestedClasses() {
		e.emitClass(w, nested)
	}
	e.emitStaticVars(w, cls)
	e.emitInit(w, cls)
	for _, name := range cls.MethodNames(class.Filter{}) {
		e.emitMethodGroup(w, cls, name)
	}

	if len(w.b) == bodyStart {
		w.line("pass")
	}
	w.pop()
}

// emitStaticVars emits one "NAME = EXPR" line per initialized static
// variable, in declaration order; uninitialized statics are omitted.
func (e *Emitter) emitStaticVars(w *buf, cls *class.Class) {
	isStatic := true
	for _, v := range cls.Variables(class.Filter{Static: &isStatic}) {
		if v.Initializer == nil {
			continue
		}
		w.line(e.varDisplayName(v) + " = " + e.emitExpr(cls, nil, v.Initializer))
	}
}

// initializedInstanceVars returns the non-static variables with a
// non-nil initializer, in declaration order — the leading statements
// of every synthesized __init__ body.
func (e *Emitter) initializedInstanceVars(cls *class.Class) []*class.Variable {
	isStatic := false
	var out []*class.Variable
	for _, v := range cls.Variables(class.Filter{Static: &isStatic}) {
		if v.Initializer != nil {
			out = append(out, v)
		}
	}
	return out
}

// emitInit synthesizes __init__. It is omitted entirely when the class
// has no constructors and no initialized instance variables.
func (e *Emitter) emitInit(w *buf, cls *class.Class) {
	ctors := cls.Constructors()
	initVars := e.initializedInstanceVars(cls)
	if len(ctors) == 0 && len(initVars) == 0 {
		return
	}

	params := "self"
	if len(ctors) == 1 {
		for _, p := range ctors[0].Params {
			params += ", " + p
		}
	} else if len(ctors) > 1 {
		params += ", *args"
	}
	w.line("def __init__(" + params + "):")
	w.push()
	start := len(w.b)

	for _, v := range initVars {
		w.line("self." + e.varDisplayName(v) + " = " + e.emitExpr(cls, nil, v.Initializer))
	}

	switch len(ctors) {
	case 0:
	case 1:
		e.emitStmtsFlat(cls, paramSet(ctors[0].Params), w, ctors[0].Body)
	default:
		e.emitArityDispatch(cls, w, ctors)
	}

	if len(w.b) == start {
		w.line("pass")
	}
	w.pop()
}

// emitMethodGroup renders every overload of one method name as a
// single P method, applying two special-case renames: "main" gets a
// leading @classmethod (and, by default, its receiver renamed to cls —
// see DESIGN.md OQ-1), "equals" is renamed to "__eq__".
func (e *Emitter) emitMethodGroup(w *buf, cls *class.Class, name string) {
	overloads := cls.Overloads(name)

	emitName := name
	if name == "equals" {
		emitName = "__eq__"
	}
	if name == "main" {
		w.line("@classmethod")
	}

	self := "self"
	if name == "main" && e.opts.RenameMainParam {
		self = "cls"
	}

	params := self
	if len(overloads) == 1 {
		for _, p := range overloads[0].Params {
			params += ", " + p
		}
	} else {
		params += ", *args"
	}
	w.line("def " + emitName + "(" + params + "):")
	w.push()
	start := len(w.b)

	if len(overloads) == 1 {
		e.emitStmtsFlat(cls, paramSet(overloads[0].Params), w, overloads[0].Body)
	} else {
		e.emitArityDispatch(cls, w, overloads)
	}

	if len(w.b) == start {
		w.line("pass")
	}
	w.pop()
}

// emitArityDispatch renders the "if len(args) == N: ... elif ...: ..."
// chain used for both multi-constructor __init__ and multi-overload
// methods, in declaration (insertion) order.
func (e *Emitter) emitArityDispatch(cls *class.Class, w *buf, overloads []*class.Method) {
	for i, m := range overloads {
		kw := "if"
		if i > 0 {
			kw = "elif"
		}
		w.line(kw + " len(args) == " + strconv.Itoa(len(m.Params)) + ":")
		w.push()
		branchStart := len(w.b)

		if len(m.Params) > 0 {
			w.line("(" + strings.Join(m.Params, ", ") + ",) = args")
		}
		e.emitStmtsFlat(cls, paramSet(m.Params), w, m.Body)

		if len(w.b) == branchStart {
			w.line("pass")
		}
		w.pop()
	}
}

func (e *Emitter) emitStmtsFlat(cls *class.Class, locals map[string]bool, w *buf, stmts []ast.Statement) {
	for _, s := range stmts {
		e.emitStmt(cls, locals, w, s)
	}
}

// emitEntryPoint appends the trailing "if __name__ ..." dispatcher, one
// clause per class declaring "main". Omitted entirely if no class has
// a main.
func (e *Emitter) emitEntryPoint(w *buf) {
	var mains []string
	for _, cls := range e.classes {
		if cls.HasMain() {
			mains = append(mains, cls.Name)
		}
	}
	if len(mains) == 0 {
		return
	}
	w.blank()
	w.line(`if __name__ == "__main__":`)
	w.push()
	w.line("import sys")
	w.line("assert len(sys.argv) > 1")
	for i, name := range mains {
		kw := "if"
		if i > 0 {
			kw = "elif"
		}
		w.line(kw + ` sys.argv[1] == "` + name + `":`)
		w.push()
		w.line(name + ".main(sys.argv[2:])")
		w.pop()
	}
	w.pop()
}

// varDisplayName applies Options.Private's underscore-mangling to a
// variable's emitted name.
func (e *Emitter) varDisplayName(v *class.Variable) string {
	if e.opts.Private && !v.Modifiers.Public {
		return "_" + v.Name
	}
	return v.Name
}

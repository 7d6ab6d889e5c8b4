package j2py

import (
	"github.com/gojlang/j2py/ast"
	"github.com/gojlang/j2py/class"
)

// validateClasses walks every method and constructor body of classes
// (recursing into nested classes) looking for a local variable
// declaration that reuses one of the enclosing signature's parameter
// names, alongside the duplicate-member and duplicate-parameter checks
// already performed at parse time. A single ast.Walk-based Visitor
// implementation replaces a hand-rolled type switch over every
// statement and expression shape.
func validateClasses(classes []*class.Class, sink *Sink) {
	for _, cls := range classes {
		validateClass(cls, sink)
	}
}

func validateClass(cls *class.Class, sink *Sink) {
	prev := sink.current
	sink.SetClass(cls.Name)
	defer sink.SetClass(prev)

	for _, nested := range cls.NestedClasses() {
		validateClass(nested, sink)
	}
	for _, ctor := range cls.Constructors() {
		validateMethod(sink, ctor)
	}
	for _, name := range cls.MethodNames(class.Filter{}) {
		for _, m := range cls.Overloads(name) {
			validateMethod(sink, m)
		}
	}
}

func validateMethod(sink *Sink, m *class.Method) {
	v := &shadowVisitor{sink: sink, params: paramSet(m.Params)}
	for _, stmt := range m.Body {
		ast.Walk(v, stmt)
	}
}

// shadowVisitor reports a *ast.Declare whose variable name collides
// with a parameter name of the method or constructor being walked, via
// sink.Record — the same mode-sensitive path the parser's other
// semantic-naming diagnostics (duplicate member, duplicate parameter)
// go through.
type shadowVisitor struct {
	sink   *Sink
	params map[string]bool
}

func (v *shadowVisitor) Visit(node ast.Node) ast.Visitor {
	decl, ok := node.(*ast.Declare)
	if !ok {
		return v
	}
	for _, dv := range decl.Vars {
		if v.params[dv.Name] {
			v.sink.Record(decl.Line, "", dv.Name+" shadows a parameter of the same name")
		}
	}
	return v
}

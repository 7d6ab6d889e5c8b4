// Package class implements the Class Model: the in-memory intermediate
// representation the parser builds and the emitter walks. It is built
// monotonically (append-only) while parsing and is immutable during
// emission.
package class

import (
	"fmt"

	"github.com/gojlang/j2py/ast"
)

// Modifiers records the two access/storage properties a J declaration
// carries: Public is true unless the source said "private" ("protected"
// maps to Public=true, matching an ordinary field); Static is true iff
// the source said "static".
type Modifiers struct {
	Public bool
	Static bool
}

// Variable is a field declaration: {modifiers, name, initializer}.
// Initializer is nil for a declaration with no "= expr".
type Variable struct {
	Modifiers   Modifiers
	Name        string
	Initializer ast.Expression
	Line        int
}

// Method is a method or constructor: {modifiers, name, parameter_names,
// body}. Constructors are stored separately (see Class.Constructors)
// but share this same shape; ConstructorName is the reserved sentinel
// used when a Method is a constructor.
type Method struct {
	Modifiers Modifiers
	Name      string
	Params    []string
	Body      []ast.Statement
	Line      int
}

// ConstructorName is the reserved method name representing a
// constructor in the Class Model.
const ConstructorName = "__init__"

// Filter narrows a query to entities whose modifiers match every
// non-nil field. A nil field means "don't care".
type Filter struct {
	Public *bool
	Static *bool
}

func (f Filter) matches(m Modifiers) bool {
	if f.Public != nil && *f.Public != m.Public {
		return false
	}
	if f.Static != nil && *f.Static != m.Static {
		return false
	}
	return true
}

// Class is the intermediate representation of one J class: a name, its
// immediate superclass name, its variables and methods keyed for
// lookup, its constructors indexed by arity, and any nested classes.
type Class struct {
	Name    string
	Super   string
	Line    int
	Comment string // the "//"-comment on the line directly above "class", if any.

	variables map[string]*Variable
	varOrder  []string

	methods     map[string][]*Method
	methodOrder []string

	constructors []*Method

	nested      map[string]*Class
	nestedOrder []string
}

// RootSuper is P's reserved root class name, used as Super when a
// class declares no "extends" clause.
const RootSuper = "object"

// New creates an empty Class. super should be RootSuper when the
// source declared no "extends" clause.
func New(name, super string, line int) *Class {
	if super == "" {
		super = RootSuper
	}
	return &Class{
		Name:      name,
		Super:     super,
		Line:      line,
		variables: make(map[string]*Variable),
		methods:   make(map[string][]*Method),
		nested:    make(map[string]*Class),
	}
}

// AddVariable appends v to the class, rejecting a duplicate name.
func (c *Class) AddVariable(v *Variable) error {
	if _, exists := c.variables[v.Name]; exists {
		return fmt.Errorf("class %s: %s is already a variable", c.Name, v.Name)
	}
	c.variables[v.Name] = v
	c.varOrder = append(c.varOrder, v.Name)
	return nil
}

// Variable looks up a variable by name.
func (c *Class) Variable(name string) (*Variable, bool) {
	v, ok := c.variables[name]
	return v, ok
}

// Variables returns variables matching filter, in declaration order.
func (c *Class) Variables(filter Filter) []*Variable {
	var out []*Variable
	for _, name := range c.varOrder {
		v := c.variables[name]
		if filter.matches(v.Modifiers) {
			out = append(out, v)
		}
	}
	return out
}

// AddMethod appends m under its name, rejecting an arity collision
// with an existing overload of the same name.
func (c *Class) AddMethod(m *Method) error {
	for _, existing := range c.methods[m.Name] {
		if len(existing.Params) == len(m.Params) {
			return fmt.Errorf("class %s: %s already has an overload with %d parameter(s)", c.Name, m.Name, len(m.Params))
		}
	}
	if _, seen := c.methods[m.Name]; !seen {
		c.methodOrder = append(c.methodOrder, m.Name)
	}
	c.methods[m.Name] = append(c.methods[m.Name], m)
	return nil
}

// Method looks up one overload of name by its exact arity.
func (c *Class) Method(name string, arity int) (*Method, bool) {
	for _, m := range c.methods[name] {
		if len(m.Params) == arity {
			return m, true
		}
	}
	return nil, false
}

// Overloads returns every overload of name, in declaration order.
func (c *Class) Overloads(name string) []*Method {
	return c.methods[name]
}

// MethodNames returns the distinct method names matching filter, in
// the order each name was first declared. A method is included if any
// of its overloads matches filter.
func (c *Class) MethodNames(filter Filter) []string {
	var out []string
	for _, name := range c.methodOrder {
		for _, m := range c.methods[name] {
			if filter.matches(m.Modifiers) {
				out = append(out, name)
				break
			}
		}
	}
	return out
}

// AddConstructor appends a constructor, rejecting an arity collision.
func (c *Class) AddConstructor(m *Method) error {
	for _, existing := range c.constructors {
		if len(existing.Params) == len(m.Params) {
			return fmt.Errorf("class %s: constructor already declared with %d parameter(s)", c.Name, len(m.Params))
		}
	}
	m.Name = ConstructorName
	c.constructors = append(c.constructors, m)
	return nil
}

// Constructor looks up the constructor with the exact given arity.
func (c *Class) Constructor(arity int) (*Method, bool) {
	for _, m := range c.constructors {
		if len(m.Params) == arity {
			return m, true
		}
	}
	return nil, false
}

// Constructors returns every declared constructor, in declaration
// order.
func (c *Class) Constructors() []*Method {
	return c.constructors
}

// AddNested adds a nested class, rejecting a duplicate name.
func (c *Class) AddNested(n *Class) error {
	if _, exists := c.nested[n.Name]; exists {
		return fmt.Errorf("class %s: %s is already a nested class", c.Name, n.Name)
	}
	c.nested[n.Name] = n
	c.nestedOrder = append(c.nestedOrder, n.Name)
	return nil
}

// Nested looks up a nested class by name.
func (c *Class) Nested(name string) (*Class, bool) {
	n, ok := c.nested[name]
	return n, ok
}

// NestedClasses returns every nested class, in declaration order.
func (c *Class) NestedClasses() []*Class {
	out := make([]*Class, len(c.nestedOrder))
	for i, name := range c.nestedOrder {
		out[i] = c.nested[name]
	}
	return out
}

// HasMain reports whether this class declares a zero-or-more-parameter
// method named "main" — the trigger for entry-point synthesis.
func (c *Class) HasMain() bool {
	_, ok := c.methods["main"]
	return ok
}

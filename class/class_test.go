package class

import "testing"

func TestNewDefaultsSuperToObject(t *testing.T) {
	c := New("Foo", "", 1)
	if c.Super != RootSuper {
		t.Fatalf("Super = %q, want %q", c.Super, RootSuper)
	}
	c2 := New("Bar", "Foo", 1)
	if c2.Super != "Foo" {
		t.Fatalf("Super = %q, want Foo", c2.Super)
	}
}

func TestAddVariableRejectsDuplicate(t *testing.T) {
	c := New("Foo", "", 1)
	if err := c.AddVariable(&Variable{Name: "x", Line: 1}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := c.AddVariable(&Variable{Name: "x", Line: 2}); err == nil {
		t.Fatal("expected duplicate variable error")
	}
}

func TestVariablesPreservesDeclarationOrderAndFilters(t *testing.T) {
	c := New("Foo", "", 1)
	isStatic := true
	must(t, c.AddVariable(&Variable{Name: "a", Modifiers: Modifiers{Public: true, Static: true}}))
	must(t, c.AddVariable(&Variable{Name: "b", Modifiers: Modifiers{Public: true}}))
	must(t, c.AddVariable(&Variable{Name: "c", Modifiers: Modifiers{Public: true, Static: true}}))

	statics := c.Variables(Filter{Static: &isStatic})
	if len(statics) != 2 || statics[0].Name != "a" || statics[1].Name != "c" {
		t.Fatalf("unexpected static variables: %+v", statics)
	}

	all := c.Variables(Filter{})
	if len(all) != 3 || all[1].Name != "b" {
		t.Fatalf("unexpected declaration order: %+v", all)
	}
}

func TestAddMethodRejectsArityCollision(t *testing.T) {
	c := New("Foo", "", 1)
	must(t, c.AddMethod(&Method{Name: "bar", Params: []string{"x"}}))
	if err := c.AddMethod(&Method{Name: "bar", Params: []string{"y"}}); err == nil {
		t.Fatal("expected arity collision error")
	}
	must(t, c.AddMethod(&Method{Name: "bar", Params: []string{"x", "y"}}))
	if len(c.Overloads("bar")) != 2 {
		t.Fatalf("expected 2 overloads, got %d", len(c.Overloads("bar")))
	}
}

func TestMethodNamesInsertionOrder(t *testing.T) {
	c := New("Foo", "", 1)
	must(t, c.AddMethod(&Method{Name: "z"}))
	must(t, c.AddMethod(&Method{Name: "a"}))
	must(t, c.AddMethod(&Method{Name: "z", Params: []string{"x"}}))
	names := c.MethodNames(Filter{})
	if len(names) != 2 || names[0] != "z" || names[1] != "a" {
		t.Fatalf("unexpected method order: %v", names)
	}
}

func TestAddConstructorRejectsArityCollision(t *testing.T) {
	c := New("Foo", "", 1)
	must(t, c.AddConstructor(&Method{Params: nil}))
	must(t, c.AddConstructor(&Method{Params: []string{"x"}}))
	if err := c.AddConstructor(&Method{Params: []string{"y"}}); err == nil {
		t.Fatal("expected constructor arity collision error")
	}
	if len(c.Constructors()) != 2 {
		t.Fatalf("expected 2 constructors, got %d", len(c.Constructors()))
	}
	if _, ok := c.Constructor(1); !ok {
		t.Fatal("expected a 1-arity constructor")
	}
}

func TestAddNestedRejectsDuplicate(t *testing.T) {
	c := New("Outer", "", 1)
	must(t, c.AddNested(New("Inner", "", 2)))
	if err := c.AddNested(New("Inner", "", 3)); err == nil {
		t.Fatal("expected duplicate nested class error")
	}
	if len(c.NestedClasses()) != 1 {
		t.Fatalf("expected 1 nested class, got %d", len(c.NestedClasses()))
	}
}

func TestHasMain(t *testing.T) {
	c := New("Foo", "", 1)
	if c.HasMain() {
		t.Fatal("fresh class should have no main")
	}
	must(t, c.AddMethod(&Method{Name: "main", Params: []string{"args"}}))
	if !c.HasMain() {
		t.Fatal("expected HasMain to be true after adding main")
	}
}

func must(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

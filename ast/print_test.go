package ast

import "testing"

func TestAppendStringExpressions(t *testing.T) {
	cases := []struct {
		name string
		node Node
		want string
	}{
		{"number", &NumberLit{Value: "42"}, "42"},
		{"string", &StringLit{Value: "hi"}, `"hi"`},
		{"bool true", &BoolLit{Value: true}, "true"},
		{"bool false", &BoolLit{Value: false}, "false"},
		{"null", &NullLit{}, "null"},
		{"binary", &Binary{Op: "+", Left: &NumberLit{Value: "1"}, Right: &NumberLit{Value: "2"}}, "1 + 2"},
		{"unary", &Unary{Op: "-", Operand: &NumberLit{Value: "1"}}, "-1"},
		{"paren", &Paren{Inner: &NumberLit{Value: "1"}}, "(1)"},
		{
			"ident chain with call and index",
			&IdentChain{Name: "a", Accesses: []Access{
				{Field: "b"},
				{Index: &NumberLit{Value: "0"}},
				{Args: []Expression{&NumberLit{Value: "1"}}},
			}},
			"a.b[0](1)",
		},
		{
			"new with args",
			&NewExpr{Type: "Foo", Args: []Expression{&NumberLit{Value: "1"}}},
			"new Foo(1)",
		},
		{
			"new with dims",
			&NewExpr{Type: "int", Dims: []Expression{&NumberLit{Value: "3"}}},
			"new int[3]",
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := String(c.node); got != c.want {
				t.Errorf("String() = %q, want %q", got, c.want)
			}
		})
	}
}

func TestAppendStringStatements(t *testing.T) {
	ifStmt := &If{
		Cond: &BoolLit{Value: true},
		Then: &Return{},
	}
	if got, want := String(ifStmt), "if (true) return"; got != want {
		t.Errorf("String(If) = %q, want %q", got, want)
	}

	whileStmt := &While{Cond: &BoolLit{Value: true}, Body: nil}
	if got, want := String(whileStmt), "while (true) ;"; got != want {
		t.Errorf("String(While with nil body) = %q, want %q", got, want)
	}

	forEach := &ForEach{VarName: "x", Iterable: &IdentChain{Name: "xs"}, Body: &Return{}}
	if got, want := String(forEach), "for (x : xs) return"; got != want {
		t.Errorf("String(ForEach) = %q, want %q", got, want)
	}
}

package ast

import "testing"

type collectVisitor struct {
	names []string
}

func (c *collectVisitor) Visit(node Node) Visitor {
	switch n := node.(type) {
	case nil:
		c.names = append(c.names, "<end>")
	case *IdentChain:
		c.names = append(c.names, "ident:"+n.Name)
	case *NumberLit:
		c.names = append(c.names, "num:"+n.Value)
	case *Binary:
		c.names = append(c.names, "binary:"+n.Op)
	}
	return c
}

func TestWalkVisitsDescendantsAndSentinel(t *testing.T) {
	tree := &Binary{
		Op:   "+",
		Left: &IdentChain{Name: "x"},
		Right: &IdentChain{Name: "y", Accesses: []Access{
			{Args: []Expression{&NumberLit{Value: "1"}}},
		}},
	}

	v := &collectVisitor{}
	Walk(v, tree)

	want := []string{
		"binary:+", "ident:x", "<end>", "ident:y", "num:1", "<end>", "<end>", "<end>",
	}
	if len(v.names) != len(want) {
		t.Fatalf("Walk visited %v, want %v", v.names, want)
	}
	for i := range want {
		if v.names[i] != want[i] {
			t.Fatalf("Walk visited %v, want %v", v.names, want)
		}
	}
}

func TestWalkNilNodeIsNoop(t *testing.T) {
	v := &collectVisitor{}
	Walk(v, nil)
	if len(v.names) != 0 {
		t.Fatalf("Walk(nil) should not visit anything, got %v", v.names)
	}
}

func TestWalkStopsWhenVisitReturnsNil(t *testing.T) {
	stop := stoppingVisitor{}
	// Should not panic even though stoppingVisitor never recurses.
	Walk(stop, &Binary{Op: "+", Left: &IdentChain{Name: "x"}, Right: &IdentChain{Name: "y"}})
}

type stoppingVisitor struct{}

func (stoppingVisitor) Visit(Node) Visitor { return nil }

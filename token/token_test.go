package token

import "testing"

func TestIsReserved(t *testing.T) {
	cases := []struct {
		literal string
		want    bool
	}{
		{"class", true},
		{"int", true},
		{"static", true},
		{"switch", true},
		{"foo", false},
		{"Bar123", false},
	}
	for _, c := range cases {
		if got := IsReserved(c.literal); got != c.want {
			t.Errorf("IsReserved(%q) = %v, want %v", c.literal, got, c.want)
		}
	}
}

func TestOperatorsLongestFirst(t *testing.T) {
	ops := Operators()
	for i, op := range ops {
		if len(op) == 1 {
			continue
		}
		for _, shorter := range ops[i+1:] {
			if len(shorter) > len(op) {
				t.Fatalf("operator %q (len %d) appears before longer operator %q", op, len(op), shorter)
			}
		}
	}
}

func TestKindOf(t *testing.T) {
	cases := []struct {
		literal string
		want    Kind
	}{
		{"class", Keyword},
		{"switch", Keyword},
		{"int", Datatype},
		{"static", Modifier},
		{"{", Delimiter},
		{"&&", Operator},
		{"foo", Other},
	}
	for _, c := range cases {
		if got := KindOf(c.literal); got != c.want {
			t.Errorf("KindOf(%q) = %v, want %v", c.literal, got, c.want)
		}
	}
}

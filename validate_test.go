package j2py

import "testing"

func TestIsIdentifier(t *testing.T) {
	cases := []struct {
		literal string
		want    bool
	}{
		{"foo", true},
		{"_foo", true},
		{"foo123", true},
		{"", false},
		{"123foo", false},
		{"class", false},
		{"int", false},
		{"foo-bar", false},
	}
	for _, c := range cases {
		if got := IsIdentifier(c.literal); got != c.want {
			t.Errorf("IsIdentifier(%q) = %v, want %v", c.literal, got, c.want)
		}
	}
}

func TestIsNumber(t *testing.T) {
	cases := []struct {
		literal string
		want    bool
	}{
		{"123", true},
		{"3.14", true},
		{"", false},
		{"1.2.3", false},
		{"abc", false},
		{".", false},
	}
	for _, c := range cases {
		if got := IsNumber(c.literal); got != c.want {
			t.Errorf("IsNumber(%q) = %v, want %v", c.literal, got, c.want)
		}
	}
}

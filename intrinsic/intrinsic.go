// Package intrinsic holds the small lookup tables the emitter consults
// for J-to-P literal, operator, and special-call rewrites. Keeping
// them here, rather than inline in the emitter, keeps the rewrite
// rules in one place the emitter calls into rather than hand-coding
// each one inline.
package intrinsic

// literals maps a J literal keyword to its P spelling.
var literals = map[string]string{
	"true": "True", "false": "False", "null": "None",
}

// Literal reports the P spelling of a J literal keyword, if any.
func Literal(word string) (string, bool) {
	s, ok := literals[word]
	return s, ok
}

// operators maps a J operator spelling to its P spelling. Operators
// with no entry pass through unchanged.
var operators = map[string]string{
	"==": "is", "&&": "and", "||": "or",
}

// Operator rewrites a J operator to its P spelling, passing it through
// unchanged if no rewrite applies.
func Operator(op string) string {
	if s, ok := operators[op]; ok {
		return s
	}
	return op
}

// IsSystemOutPrintln reports whether the leading name and field
// accesses of an identifier chain spell the host-library call
// "System.out.println" — the one hardcoded library call this
// translator rewrites by name.
func IsSystemOutPrintln(name string, fields []string) bool {
	return name == "System" && len(fields) >= 2 && fields[0] == "out" && fields[1] == "println"
}

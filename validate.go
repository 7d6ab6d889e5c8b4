package j2py

import "github.com/gojlang/j2py/token"

// IsIdentifier reports whether literal matches [A-Za-z_][A-Za-z0-9_]*
// and is not a reserved word of J. The parser reaches it through
// TokenBuffer.Validate to check declared names.
func IsIdentifier(literal string) bool {
	if literal == "" {
		return false
	}
	if !isIdentifierStart(literal[0]) {
		return false
	}
	for i := 1; i < len(literal); i++ {
		if !isIdentifierChar(literal[i]) {
			return false
		}
	}
	return !token.IsReserved(literal)
}

// IsNumber reports whether literal is a J integer or decimal literal:
// at least one digit and at most one '.', which may also lead or trail
// ("1." and ".5" are accepted). Leading '-' is not part of
// the literal grammar — unary minus is a separate expression node.
func IsNumber(literal string) bool {
	if literal == "" {
		return false
	}
	seenDot := false
	seenDigit := false
	for i := 0; i < len(literal); i++ {
		c := literal[i]
		switch {
		case c >= '0' && c <= '9':
			seenDigit = true
		case c == '.' && !seenDot:
			seenDot = true
		default:
			return false
		}
	}
	return seenDigit
}

func isIdentifierStart(c byte) bool {
	return c == '_' || (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

func isIdentifierChar(c byte) bool {
	return isIdentifierStart(c) || (c >= '0' && c <= '9')
}

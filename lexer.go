package j2py

import (
	"strings"

	"github.com/gojlang/j2py/token"
)

// Token is an opaque lexeme string plus its originating line number.
type Token struct {
	Literal string
	Line    int
}

// TokenBuffer converts source text into a line-partitioned sequence of
// lexemes and offers the small consumption API the parser is built on.
// It never silently drops tokens, and the line number it reports is
// monotonically non-decreasing as tokens are consumed.
type TokenBuffer struct {
	lines    [][]Token // one entry per source line (1-indexed via i+1); may be empty.
	comments map[int]string // line number -> "//"-comment text, for comment-only lines.
	lineIdx  int             // index into lines of the line the next token would come from.
	tokIdx   int             // index into lines[lineIdx] of the next unconsumed token.
	sink     *Sink
}

// NewTokenBuffer lexes source into a TokenBuffer. Diagnostics recorded
// during lexing (there are none today — lexing never fails on its own,
// only Shift can hit end-of-buffer) go through sink.
func NewTokenBuffer(source string, sink *Sink) *TokenBuffer {
	rawLines := strings.Split(source, "\n")
	lines := make([][]Token, len(rawLines))
	comments := make(map[int]string)
	for i, raw := range rawLines {
		lineNo := i + 1
		for _, lit := range splitLine(raw) {
			lines[i] = append(lines[i], Token{Literal: lit, Line: lineNo})
		}
		if len(lines[i]) == 0 {
			if idx := strings.Index(raw, "//"); idx >= 0 {
				if text := strings.TrimSpace(raw[idx+2:]); text != "" {
					comments[lineNo] = text
				}
			}
		}
	}
	return &TokenBuffer{lines: lines, comments: comments, sink: sink}
}

// Comment returns the text of a "//"-comment that occupies lineNo on
// its own (no code tokens on that line), for Options.ClassComment.
func (b *TokenBuffer) Comment(lineNo int) (string, bool) {
	text, ok := b.comments[lineNo]
	return text, ok
}

// splitLine tokenizes a single raw source line: strip a "//" comment,
// trim trailing whitespace, surround every delimiter/operator with
// whitespace (keeping decimal points glued to their digits), then
// split on whitespace.
func splitLine(raw string) []string {
	if idx := strings.Index(raw, "//"); idx >= 0 {
		raw = raw[:idx]
	}
	raw = strings.TrimRight(raw, " \t\r")
	return strings.Fields(spaceOutDelimiters(raw))
}

func spaceOutDelimiters(line string) string {
	var b strings.Builder
	n := len(line)
	for i := 0; i < n; {
		if i+2 <= n && token.IsOperator(line[i:i+2]) {
			b.WriteByte(' ')
			b.WriteString(line[i : i+2])
			b.WriteByte(' ')
			i += 2
			continue
		}
		c := line[i]
		if c == '.' {
			prevDigit := i > 0 && isDigitByte(line[i-1])
			nextDigit := i+1 < n && isDigitByte(line[i+1])
			if prevDigit || nextDigit {
				b.WriteByte(c)
				i++
				continue
			}
		}
		lit := string(c)
		if token.IsDelimiter(lit) || token.IsOperator(lit) || lit == "=" {
			b.WriteByte(' ')
			b.WriteByte(c)
			b.WriteByte(' ')
			i++
			continue
		}
		b.WriteByte(c)
		i++
	}
	return b.String()
}

func isDigitByte(c byte) bool { return c >= '0' && c <= '9' }

// advance skips forward across exhausted or empty lines until the
// cursor sits on a real token or the buffer is fully consumed.
func (b *TokenBuffer) advance() {
	for b.lineIdx < len(b.lines) && b.tokIdx >= len(b.lines[b.lineIdx]) {
		b.lineIdx++
		b.tokIdx = 0
	}
}

// Empty reports whether no non-empty lines remain to consume.
func (b *TokenBuffer) Empty() bool {
	b.advance()
	return b.lineIdx >= len(b.lines)
}

// LineNumber returns the source line of the next token, or the number
// of the last source line once the buffer is exhausted.
func (b *TokenBuffer) LineNumber() int {
	b.advance()
	if b.lineIdx < len(b.lines) {
		return b.lineIdx + 1
	}
	return len(b.lines)
}

// Peek returns the first non-empty-line token without consuming it.
// ok is false once the buffer is exhausted.
func (b *TokenBuffer) Peek() (tok Token, ok bool) {
	b.advance()
	if b.lineIdx >= len(b.lines) {
		return Token{}, false
	}
	return b.lines[b.lineIdx][b.tokIdx], true
}

// Shift consumes and returns the first token, advancing across empty
// lines. If the buffer is exhausted it records a fatal diagnostic
// ("Expected expect") and halts translation — running out of tokens
// mid-parse is always a hard stop, regardless of the Sink's mode.
func (b *TokenBuffer) Shift(expect string) Token {
	tok, ok := b.Peek()
	if !ok {
		msg := "Unexpected end of input"
		if expect != "" {
			msg = "Expected " + expect
		}
		d := Diagnostic{Line: b.LineNumber(), Message: msg}
		if b.sink != nil {
			b.sink.RecordSoft(d)
		}
		panic(&fatalError{d: d})
	}
	b.tokIdx++
	return tok
}

// Unshift pushes tok back onto the buffer. It must be the inverse of
// the most recent Shift — the parser never backtracks more than one
// token.
func (b *TokenBuffer) Unshift(tok Token) {
	if b.tokIdx > 0 {
		b.tokIdx--
		return
	}
	// The last Shift crossed into a new (possibly non-adjacent, due to
	// skipped empty lines) line; walk back to the line that holds tok.
	for i := b.lineIdx - 1; i >= 0; i-- {
		if len(b.lines[i]) > 0 {
			b.lineIdx = i
			b.tokIdx = len(b.lines[i]) - 1
			return
		}
	}
}

// Expect records a diagnostic if actual does not match expected, but
// never halts translation — a bookkeeping check distinct from the
// Sink's fatal/warning discipline.
func (b *TokenBuffer) Expect(expected, actual string) {
	if expected == actual || b.sink == nil {
		return
	}
	b.sink.RecordSoft(Diagnostic{
		Line:    b.LineNumber(),
		Message: "Unexpected " + actual + ", expected " + expected,
	})
}

// LineText reconstructs a source line from its lexed tokens, rejoined
// with single spaces, for use as a [Diagnostic]'s Text field. Returns
// "" for a line number outside the source (including a blank line).
func (b *TokenBuffer) LineText(lineNo int) string {
	idx := lineNo - 1
	if idx < 0 || idx >= len(b.lines) {
		return ""
	}
	lits := make([]string, len(b.lines[idx]))
	for i, t := range b.lines[idx] {
		lits[i] = t.Literal
	}
	return strings.Join(lits, " ")
}

// Validate reports whether literal is a legal J identifier. Unless
// silent is true, a false result also records a diagnostic naming the
// reason (keyword or malformed).
func (b *TokenBuffer) Validate(literal string, silent bool) bool {
	if IsIdentifier(literal) {
		return true
	}
	if !silent && b.sink != nil {
		msg := literal + " is not a valid identifier"
		if token.IsReserved(literal) {
			msg = literal + " is a keyword"
		}
		b.sink.RecordSoft(Diagnostic{Line: b.LineNumber(), Message: msg})
	}
	return false
}

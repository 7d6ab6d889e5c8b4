package j2py

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

// Mode selects how a [Sink] reacts to the first recorded Diagnostic.
type Mode int

const (
	// ModeWarning accumulates diagnostics and lets translation
	// continue on a best-effort basis.
	ModeWarning Mode = iota
	// ModeFatal halts translation at the first recorded diagnostic.
	ModeFatal
)

// Diagnostic is one parse or translation warning, tagged with enough
// source context to be useful standalone.
type Diagnostic struct {
	Line    int    // source line the diagnostic refers to.
	Class   string // enclosing class name, empty if not yet known.
	Text    string // the offending line, tokens rejoined with spaces.
	Message string // e.g. "Unexpected TOK, expected EXPECT".
}

func (d Diagnostic) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "line %d: %s", d.Line, d.Message)
	if d.Text != "" {
		fmt.Fprintf(&b, " (%s)", d.Text)
	}
	return b.String()
}

// fatalError is the panic value [Sink.Record] raises in [ModeFatal]
// (and [TokenBuffer.Shift] raises at end of input in either mode); it
// unwinds the parser until [Recover] turns it back into an error.
type fatalError struct {
	d Diagnostic
}

func (e *fatalError) Error() string { return e.d.String() }

// Sink collects diagnostics for a single translation. It is
// intentionally scoped to one [Translate] call: the mutable state it
// carries (mode, accumulated diagnostics, current class) never outlives
// that one synchronous call, so nothing needs to reset it between
// calls.
type Sink struct {
	mode    Mode
	diags   []Diagnostic
	log     *slog.Logger
	current string // current class name, for tagging diagnostics.
}

// NewSink creates a Sink in the given mode. log may be nil, in which
// case diagnostics are not mirrored to structured logging.
func NewSink(mode Mode, log *slog.Logger) *Sink {
	return &Sink{mode: mode, log: log}
}

// SetClass records the name of the class currently being parsed or
// emitted, so subsequently recorded diagnostics are tagged with it.
func (s *Sink) SetClass(name string) { s.current = name }

// Record appends a diagnostic. In [ModeFatal] it panics with a
// *fatalError that [Recover] turns back into a returned error; callers
// that want to keep going regardless of mode should use RecordSoft.
func (s *Sink) Record(line int, text, message string) {
	d := Diagnostic{Line: line, Class: s.current, Text: text, Message: message}
	s.RecordSoft(d)
	if s.mode == ModeFatal {
		panic(&fatalError{d: d})
	}
}

// RecordSoft appends a diagnostic without ever halting, regardless of
// mode. Used for lexical/EOF errors, which are always fatal to parsing
// itself (the caller stops pulling tokens) even in warning mode, and
// for the rare cases where recording happens outside the Halt-able
// call chain.
func (s *Sink) RecordSoft(d Diagnostic) {
	s.diags = append(s.diags, d)
	if s.log == nil {
		return
	}
	level := slog.LevelDebug
	if s.mode == ModeFatal {
		level = slog.LevelWarn
	}
	s.log.Log(context.Background(), level, "diagnostic",
		slog.Int("line", d.Line),
		slog.String("class", d.Class),
		slog.String("message", d.Message),
	)
}

// Empty reports whether no diagnostics have been recorded.
func (s *Sink) Empty() bool { return len(s.diags) == 0 }

// Diagnostics returns all recorded diagnostics in recording order.
func (s *Sink) Diagnostics() []Diagnostic { return s.diags }

// Payload concatenates all recorded diagnostics into the single
// human-readable string returned across the API boundary in warning
// mode.
func (s *Sink) Payload() string {
	lines := make([]string, len(s.diags))
	for i, d := range s.diags {
		lines[i] = d.String()
	}
	return strings.Join(lines, "\n")
}

// Recover turns a panicking *fatalError raised by Record back into a
// plain error. It must be deferred by the same call ([Translate]) that
// constructs the Sink. Any other panic propagates unchanged.
func Recover(errp *error) {
	r := recover()
	if r == nil {
		return
	}
	fe, ok := r.(*fatalError)
	if !ok {
		panic(r)
	}
	*errp = fmt.Errorf("%s", fe.Error())
}

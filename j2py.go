// Package j2py translates J source text — a small statically-typed,
// class-based object-oriented language resembling Java — into P
// source text, an indentation-sensitive, dynamically-typed
// object-oriented language resembling Python.
package j2py

import (
	"errors"
	"log/slog"

	"github.com/gojlang/j2py/class"
)

// Options configures one Translate call.
type Options struct {
	// Fatal selects diagnostic mode: false accumulates diagnostics and
	// keeps translating on a best-effort basis (the library default);
	// true halts on the first diagnostic recorded through Sink.Record
	// and returns it as error (the
	// CLI commands set this explicitly rather than relying on a library
	// zero-value, since a zero Options{} must remain safe to use
	// standalone). See DESIGN.md's Options.Fatal entry.
	Fatal bool

	// Private prefixes the emitted name of every variable declared
	// "private" with a single underscore.
	Private bool

	// RenameMainParam renames a "main" method's synthesized receiver
	// from "self" to "cls", alongside its @classmethod decorator.
	// Resolves the open question of whether a synthesized entry point
	// should read as an instance or class method; defaults to true via
	// DefaultOptions.
	RenameMainParam bool

	// ClassComment copies a "//"-comment on the line directly above a
	// class declaration into a "#"-prefixed line above the emitted
	// class statement.
	ClassComment bool

	// Log receives one record per diagnostic, purely for observability
	// (see diag.go's Sink.RecordSoft); nil disables this.
	Log *slog.Logger
}

// DefaultOptions returns the options a caller gets by asking for
// nothing in particular: warning-mode diagnostics, no private-name
// mangling, main's receiver renamed to cls, and no class-comment
// passthrough.
func DefaultOptions() Options {
	return Options{RenameMainParam: true}
}

// Translate converts J source text into P source text. It constructs a
// fresh Sink, TokenBuffer, Parser, and Emitter for this call alone and
// discards them on return — no state survives one call to the next.
//
// In fatal mode, the first diagnostic recorded through Sink.Record
// aborts translation and is returned as err with out empty. Token
// mismatches (TokenBuffer.Expect) and identifier checks
// (TokenBuffer.Validate) are recorded without halting in either mode.
// Running out of tokens mid-parse aborts in either mode, returning
// that one diagnostic as err with out empty. Otherwise translation runs
// to completion; if any diagnostics were recorded, their concatenated
// text is returned as a non-nil err alongside the best-effort out.
func Translate(source string, opts Options) (out string, err error) {
	mode := ModeWarning
	if opts.Fatal {
		mode = ModeFatal
	}
	sink := NewSink(mode, opts.Log)
	defer Recover(&err)

	classes := NewParser(source, sink).Parse()
	validateClasses(classes, sink)
	out = NewEmitter(classes, opts, sink).Emit()

	if err == nil && !sink.Empty() {
		err = errors.New(sink.Payload())
	}
	return out, err
}

// Diagnose runs source through the full parse/emit pipeline in
// warning mode — regardless of opts.Fatal — and returns every
// diagnostic recorded, in recording order. It never returns early: a
// lexical/EOF error still yields whatever diagnostics were recorded up
// to that point. Meant for tooling (cmd/j2pydiag) that wants the full
// diagnostic list rather than a single pass/fail result.
func Diagnose(source string, opts Options) []Diagnostic {
	sink := NewSink(ModeWarning, opts.Log)

	var classes []*class.Class
	func() {
		var err error
		defer Recover(&err)
		classes = NewParser(source, sink).Parse()
	}()

	func() {
		var err error
		defer Recover(&err)
		validateClasses(classes, sink)
		NewEmitter(classes, opts, sink).Emit()
	}()

	return sink.Diagnostics()
}

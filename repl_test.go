package j2py

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestREPLTranslatesSingleSnippet(t *testing.T) {
	r := &REPL{Options: DefaultOptions()}
	var out strings.Builder
	err := r.Run(strings.NewReader("class Foo {}\n"), &out, false)
	require.NoError(t, err)
	require.Equal(t, "class Foo(object):\n    pass\n", out.String())
}

func TestREPLSplitsSnippetsOnBlankLines(t *testing.T) {
	r := &REPL{Options: DefaultOptions()}
	var out strings.Builder
	err := r.Run(strings.NewReader("class Foo {}\n\nclass Bar {}\n"), &out, false)
	require.NoError(t, err)
	require.Equal(t, "class Foo(object):\n    pass\nclass Bar(object):\n    pass\n", out.String())
}

func TestREPLReportsTranslateErrorInline(t *testing.T) {
	opts := DefaultOptions()
	opts.Fatal = true
	r := &REPL{Options: opts}
	var out strings.Builder
	err := r.Run(strings.NewReader("private class Foo {}\n"), &out, false)
	require.NoError(t, err)
	require.Contains(t, out.String(), "error: ")
}

func TestREPLEmitsPromptsWhenEnabled(t *testing.T) {
	r := &REPL{Options: DefaultOptions()}
	var out strings.Builder
	err := r.Run(strings.NewReader("class Foo {}\n"), &out, true)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out.String(), ">>> "))
}

func TestREPLIgnoresBlankInput(t *testing.T) {
	r := &REPL{Options: DefaultOptions()}
	var out strings.Builder
	err := r.Run(strings.NewReader("\n\n\n"), &out, false)
	require.NoError(t, err)
	require.Empty(t, out.String())
}

package j2py

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultOptionsIsWarningModeWithMainRenamed(t *testing.T) {
	opts := DefaultOptions()
	require.False(t, opts.Fatal)
	require.True(t, opts.RenameMainParam)
	require.False(t, opts.Private)
	require.False(t, opts.ClassComment)
}

func TestTranslateWarningModeBestEffortWithError(t *testing.T) {
	// "private" isn't a legal class modifier and produces a diagnostic,
	// but warning mode still returns emitted output.
	out, err := Translate(`private class Foo {}`, DefaultOptions())
	require.Error(t, err)
	require.Contains(t, out, "class Foo(object):")
}

func TestTranslateFatalModeHaltsWithNoOutput(t *testing.T) {
	opts := DefaultOptions()
	opts.Fatal = true
	out, err := Translate(`private class Foo {}`, opts)
	require.Error(t, err)
	require.Empty(t, out)
}

func TestTranslateCleanSourceHasNoError(t *testing.T) {
	out, err := Translate(`class Foo {}`, DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, "class Foo(object):\n    pass\n", out)
}

func TestTranslateDuplicateVariableNameDiagnosesClassAndName(t *testing.T) {
	_, err := Translate(`class Foo { int x = 1; int x = 2; }`, DefaultOptions())
	require.Error(t, err)
	require.Contains(t, err.Error(), "Foo")
	require.Contains(t, err.Error(), "x")
}

func TestTranslateDuplicateParamNameDiagnoses(t *testing.T) {
	_, err := Translate(`class Foo { void run(int x, int x) {} }`, DefaultOptions())
	require.Error(t, err)
}

func TestDiagnoseIgnoresFatalOption(t *testing.T) {
	opts := DefaultOptions()
	opts.Fatal = true
	diags := Diagnose(`private class Foo {}`, opts)
	require.NotEmpty(t, diags)
}

func TestDiagnoseOnCleanSourceReturnsEmpty(t *testing.T) {
	diags := Diagnose(`class Foo {}`, DefaultOptions())
	require.Empty(t, diags)
}

func TestDiagnoseSurvivesLexicalPanicWithPriorDiagnostics(t *testing.T) {
	// An unterminated construct still yields whatever the parser
	// recorded before the buffer ran dry.
	diags := Diagnose(`class Foo { int x = 1++; `, DefaultOptions())
	require.NotEmpty(t, diags)
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.True(t, cfg.Fatal)
	require.NotNil(t, cfg.RenameMainParam)
	require.True(t, *cfg.RenameMainParam)
	require.Equal(t, ".j", cfg.SourceExt)
	require.Equal(t, ".py", cfg.TargetExt)
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "j2py.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadOverridesOnlySpecifiedFields(t *testing.T) {
	path := writeConfig(t, "private: true\noutput_dir: build\n")
	cfg, err := Load(path)
	require.NoError(t, err)

	require.True(t, cfg.Private)
	require.Equal(t, "build", cfg.OutputDir)
	// Left unset in the file, so Default's values survive.
	require.True(t, cfg.Fatal)
	require.Equal(t, ".j", cfg.SourceExt)
	require.Equal(t, ".py", cfg.TargetExt)
}

func TestLoadRenameMainParamFalse(t *testing.T) {
	path := writeConfig(t, "rename_main_param: false\n")
	cfg, err := Load(path)
	require.NoError(t, err)
	require.NotNil(t, cfg.RenameMainParam)
	require.False(t, *cfg.RenameMainParam)
}

func TestLoadMissingFileErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.Error(t, err)
}

func TestLoadMalformedYAMLErrors(t *testing.T) {
	path := writeConfig(t, "fatal: [this, is, not, a, bool]\n")
	_, err := Load(path)
	require.Error(t, err)
}

func TestOptionsUsesLibraryDefaultWhenRenameMainParamUnset(t *testing.T) {
	cfg := Config{}
	opts := cfg.Options()
	require.True(t, opts.RenameMainParam)
}

func TestOptionsRespectsExplicitRenameMainParam(t *testing.T) {
	f := false
	cfg := Config{RenameMainParam: &f}
	opts := cfg.Options()
	require.False(t, opts.RenameMainParam)
}

func TestOptionsCarriesFatalPrivateClassComment(t *testing.T) {
	cfg := Config{Fatal: true, Private: true, ClassComment: true}
	opts := cfg.Options()
	require.True(t, opts.Fatal)
	require.True(t, opts.Private)
	require.True(t, opts.ClassComment)
}

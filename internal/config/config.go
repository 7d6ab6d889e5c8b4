// Package config loads the small YAML document the j2pyc CLI accepts
// via --config: a set of default Options plus the CLI-only knobs
// (output directory, file-extension mapping) that don't belong on the
// library's Options struct itself.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gojlang/j2py"
)

// Config is the on-disk shape of a j2py CLI configuration file.
type Config struct {
	Fatal           bool   `yaml:"fatal"`
	Private         bool   `yaml:"private"`
	RenameMainParam *bool  `yaml:"rename_main_param"` // nil means "use the library default".
	ClassComment    bool   `yaml:"class_comment"`
	OutputDir       string `yaml:"output_dir"`
	SourceExt       string `yaml:"source_ext"`
	TargetExt       string `yaml:"target_ext"`
}

// Default returns the configuration a CLI uses when no --config file
// is given: script-style fatal-mode translation (a standalone script
// run wants a hard stop on the first problem, not a best-effort
// partial translation), writing ".py" files next to ".j" sources in
// place.
func Default() Config {
	renameMain := true
	return Config{
		Fatal:           true,
		RenameMainParam: &renameMain,
		SourceExt:       ".j",
		TargetExt:       ".py",
	}
}

// Load reads and parses a YAML config file, filling in any field left
// unset with Default's value.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.SourceExt == "" {
		cfg.SourceExt = ".j"
	}
	if cfg.TargetExt == "" {
		cfg.TargetExt = ".py"
	}
	return cfg, nil
}

// Options translates this Config into a j2py.Options, applying the
// library's own RenameMainParam default when the config file didn't
// set one.
func (c Config) Options() j2py.Options {
	opts := j2py.Options{
		Fatal:           c.Fatal,
		Private:         c.Private,
		ClassComment:    c.ClassComment,
		RenameMainParam: true,
	}
	if c.RenameMainParam != nil {
		opts.RenameMainParam = *c.RenameMainParam
	}
	return opts
}

// j2pyc translates J source files into P source files.
//
// Usage:
//
//	j2pyc [flags] file.j [file2.j ...]
//
// Each input file is translated and written next to it with the
// target extension (".py" by default); flags override the fatal-mode,
// private-name-mangling, main-parameter-rename, and class-comment
// options.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	j2py "github.com/gojlang/j2py"
	"github.com/gojlang/j2py/internal/config"
)

const (
	exitOK        = 0
	exitUsage     = 1
	exitTranslate = 2
)

var (
	flagConfig       = flag.String("config", "", "path to a YAML config file")
	flagFatal        = flag.Bool("fatal", true, "halt on the first diagnostic instead of collecting them")
	flagPrivate      = flag.Bool("private", false, "prefix private variable names with an underscore")
	flagRenameMain   = flag.Bool("rename-main", true, "rename main's receiver parameter from self to cls")
	flagClassComment = flag.Bool("class-comment", false, "carry a comment above a class declaration into the output")
	flagOutDir       = flag.String("out", "", "output directory (default: next to each input file)")
)

func main() {
	flag.Parse()
	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: j2pyc [flags] file.j [file2.j ...]")
		flag.PrintDefaults()
		os.Exit(exitUsage)
	}

	cfg := config.Default()
	if *flagConfig != "" {
		loaded, err := config.Load(*flagConfig)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(exitUsage)
		}
		cfg = loaded
	}
	applyFlagOverrides(&cfg)

	code := exitOK
	for _, filename := range flag.Args() {
		if err := translateFile(filename, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", filename, err)
			code = exitTranslate
		}
	}
	os.Exit(code)
}

// applyFlagOverrides layers explicitly-set command-line flags on top
// of the loaded config, so "-fatal=false" overrides a config file's
// "fatal: true" but an unset flag never clobbers it.
func applyFlagOverrides(cfg *config.Config) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "fatal":
			cfg.Fatal = *flagFatal
		case "private":
			cfg.Private = *flagPrivate
		case "rename-main":
			v := *flagRenameMain
			cfg.RenameMainParam = &v
		case "class-comment":
			cfg.ClassComment = *flagClassComment
		}
	})
	if *flagOutDir != "" {
		cfg.OutputDir = *flagOutDir
	}
}

func translateFile(filename string, cfg config.Config) error {
	src, err := os.ReadFile(filename)
	if err != nil {
		return err
	}

	out, err := j2py.Translate(string(src), cfg.Options())
	if err != nil && cfg.Fatal {
		return err
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: warnings:\n%v\n", filename, err)
	}

	target := targetPath(filename, cfg)
	return os.WriteFile(target, []byte(out), 0o644)
}

func targetPath(filename string, cfg config.Config) string {
	base := strings.TrimSuffix(filename, cfg.SourceExt) + cfg.TargetExt
	if cfg.OutputDir == "" {
		return base
	}
	return filepath.Join(cfg.OutputDir, filepath.Base(base))
}

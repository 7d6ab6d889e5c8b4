// j2pyrepl is an interactive wrapper around [j2py.REPL]: it reads J
// snippets from stdin, one per blank-line-delimited paragraph, and
// prints each one's translated P text to stdout.
//
// Usage:
//
//	j2pyrepl [flags]
package main

import (
	"flag"
	"fmt"
	"os"

	j2py "github.com/gojlang/j2py"
)

var (
	flagFatal        = flag.Bool("fatal", false, "halt on the first diagnostic instead of collecting them")
	flagPrivate      = flag.Bool("private", false, "prefix private variable names with an underscore")
	flagRenameMain   = flag.Bool("rename-main", true, "rename main's receiver parameter from self to cls")
	flagClassComment = flag.Bool("class-comment", false, "carry a comment above a class declaration into the output")
	flagQuiet        = flag.Bool("quiet", false, "suppress the >>> prompt")
)

func main() {
	flag.Parse()
	repl := j2py.REPL{
		Options: j2py.Options{
			Fatal:           *flagFatal,
			Private:         *flagPrivate,
			RenameMainParam: *flagRenameMain,
			ClassComment:    *flagClassComment,
		},
	}
	if err := repl.Run(os.Stdin, os.Stdout, !*flagQuiet); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

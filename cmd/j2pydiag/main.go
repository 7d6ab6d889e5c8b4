// j2pydiag prints every diagnostic recorded while translating J source
// files, with surrounding source-line context — a grep-style viewer
// over parse/emit diagnostics rather than over text matches.
//
// Usage:
//
//	j2pydiag [flags] file.j [file2.j ...]
//
// Flags:
//
//	-A num      show num lines after each diagnostic's line
//	-B num      show num lines before each diagnostic's line
//	-C num      show num lines before and after (overrides -A and -B)
//	-l          only print filenames that have diagnostics
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	j2py "github.com/gojlang/j2py"
)

var (
	flagAfterContext  = flag.Int("A", 0, "show num lines after each diagnostic's line")
	flagBeforeContext = flag.Int("B", 0, "show num lines before each diagnostic's line")
	flagContext       = flag.Int("C", 0, "show num lines before and after (overrides -A and -B)")
	flagFilesOnly     = flag.Bool("l", false, "only print filenames that have diagnostics")
)

func main() {
	flag.Parse()
	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: j2pydiag [flags] file.j [file2.j ...]")
		flag.PrintDefaults()
		os.Exit(1)
	}

	before, after := *flagBeforeContext, *flagAfterContext
	if *flagContext > 0 {
		before, after = *flagContext, *flagContext
	}

	found := false
	for _, filename := range flag.Args() {
		matched, err := diagnoseFile(filename, before, after)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", filename, err)
			continue
		}
		found = found || matched
	}
	if !found {
		os.Exit(1)
	}
}

func diagnoseFile(filename string, before, after int) (bool, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return false, err
	}
	source := string(data)
	lines := strings.Split(source, "\n")

	diags := j2py.Diagnose(source, j2py.DefaultOptions())
	if len(diags) == 0 {
		return false, nil
	}
	if *flagFilesOnly {
		fmt.Println(filename)
		return true, nil
	}

	for _, d := range diags {
		start := d.Line - 1 - before
		if start < 0 {
			start = 0
		}
		end := d.Line - 1 + after
		if end >= len(lines) {
			end = len(lines) - 1
		}
		fmt.Printf("%s:%d: %s\n", filename, d.Line, d.Message)
		for i := start; i <= end; i++ {
			marker := "  "
			if i == d.Line-1 {
				marker = "> "
			}
			fmt.Printf("%s%s:%d: %s\n", marker, filename, i+1, lines[i])
		}
	}
	return true, nil
}

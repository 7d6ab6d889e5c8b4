package j2py

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// REPL is an interactive, single-snippet translate loop: it reads J
// source text one blank-line-delimited snippet at a time and writes
// back the translated P text (or an error) for each.
//
// Each snippet is translated independently; Translate keeps no state
// between calls, so there is no scope or symbol table to carry across
// blank-line-delimited reads.
type REPL struct {
	Options Options
}

// Run drives the loop until in is exhausted. When prompts is true, a
// ">>> " prompt is written to out before each snippet is read.
func (r *REPL) Run(in io.Reader, out io.Writer, prompts bool) error {
	scanner := bufio.NewScanner(in)
	var snippet strings.Builder

	flush := func() {
		text := strings.TrimSpace(snippet.String())
		snippet.Reset()
		if text == "" {
			return
		}
		translated, err := Translate(text, r.Options)
		if err != nil {
			fmt.Fprintf(out, "error: %v\n", err)
			return
		}
		fmt.Fprint(out, translated)
	}

	if prompts {
		fmt.Fprint(out, ">>> ")
	}
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			flush()
			if prompts {
				fmt.Fprint(out, ">>> ")
			}
			continue
		}
		snippet.WriteString(line)
		snippet.WriteByte('\n')
	}
	flush()
	return scanner.Err()
}

// Package repl implements the interactive Kyaro prompt. Each accepted line
// runs through the full pipeline against a session whose environment
// persists for the lifetime of the prompt.
package repl

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/xyproto/env/v2"

	"github.com/hnrie/Laminax-KPL/pkg/kyaro"
)

const banner = `Laminax Kyaro Programming Language v%s
By Laminax (https://laminax.org)
Type 'exit()' to quit
`

// Start runs the read-eval-print loop until the input is exhausted or the
// user types exit(). Results are echoed to out, errors to errOut; an error
// never ends the session.
func Start(in io.Reader, out, errOut io.Writer, version string) {
	prompt := env.Str("KYARO_PROMPT", "kyaro> ")
	color := !env.Bool("NO_COLOR")

	fmt.Fprintf(out, banner, version)
	fmt.Fprintln(out)

	session := kyaro.NewSession(out)

	scanner := bufio.NewScanner(in)
	for {
		if color {
			fmt.Fprint(out, "\033[36m"+prompt+"\033[0m")
		} else {
			fmt.Fprint(out, prompt)
		}

		if !scanner.Scan() {
			return
		}
		line := strings.TrimSpace(scanner.Text())

		if line == "" {
			continue
		}
		if line == "exit()" {
			fmt.Fprintln(out, "Goodbye!")
			return
		}

		result, hasValue, err := session.Eval(line)
		if err != nil {
			fmt.Fprintln(errOut, err)
			continue
		}
		if hasValue {
			fmt.Fprintln(out, result)
		}
	}
}

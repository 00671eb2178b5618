package cmd

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	kerrors "github.com/hnrie/Laminax-KPL/internal/errors"
	"github.com/hnrie/Laminax-KPL/internal/interp"
	"github.com/hnrie/Laminax-KPL/internal/lexer"
	"github.com/hnrie/Laminax-KPL/internal/parser"
)

var (
	evalExpr string
	dumpAST  bool
)

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run a Kyaro file or expression",
	Long: `Execute a Kyaro program from a file or inline expression.

Examples:
  # Run a script file
  kyaro run script.kyaro

  # Evaluate an inline expression
  kyaro run -e "print(1 + 2)"

  # Run with AST dump (for debugging)
  kyaro run --dump-ast script.kyaro`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScript,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "evaluate inline code instead of reading from file")
	runCmd.Flags().BoolVar(&dumpAST, "dump-ast", false, "dump the parsed AST (for debugging)")
}

func runScript(_ *cobra.Command, args []string) error {
	var input string
	var filename string

	if evalExpr != "" {
		input = evalExpr
		filename = "<eval>"
	} else if len(args) == 1 {
		filename = args[0]
		content, err := os.ReadFile(filename)
		if err != nil {
			return fmt.Errorf("failed to read file %s: %w", filename, err)
		}
		input = string(content)
	} else {
		return fmt.Errorf("either provide a file path or use -e flag for inline code")
	}

	return executeSource(input)
}

// runFile backs the root command's positional-file form.
func runFile(filename string) error {
	content, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("could not read file '%s': %w", filename, err)
	}
	return executeSource(string(content))
}

// executeSource runs one program through the pipeline. Pipeline errors are
// printed with source context; the returned error only signals the exit
// code.
func executeSource(input string) error {
	tokens, err := lexer.New(input).Tokenize()
	if err != nil {
		return reportError(err, input)
	}

	program, err := parser.New(tokens).ParseProgram()
	if err != nil {
		return reportError(err, input)
	}

	if dumpAST {
		fmt.Println("AST:")
		fmt.Println(program.String())
	}

	interpreter := interp.New(os.Stdout)
	if _, err := interpreter.Interpret(program); err != nil {
		return reportError(err, input)
	}

	return nil
}

// reportError prints a pipeline error to standard error, with the offending
// source line and a caret when the position is known.
func reportError(err error, source string) error {
	var kerr *kerrors.Error
	if stderrors.As(err, &kerr) {
		fmt.Fprintln(os.Stderr, kerr.FormatWithSource(source, true))
	} else {
		fmt.Fprintln(os.Stderr, err)
	}
	return fmt.Errorf("execution failed")
}

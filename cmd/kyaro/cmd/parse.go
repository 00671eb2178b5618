package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/hnrie/Laminax-KPL/internal/lexer"
	"github.com/hnrie/Laminax-KPL/internal/parser"
)

var parseExpr string

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse Kyaro source code and display the AST",
	Long: `Parse Kyaro source code and display the Abstract Syntax Tree (AST).

If no file is provided, reads from stdin.
Use -e to parse an expression from the command line.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringVarP(&parseExpr, "eval", "e", "", "parse inline code instead of reading from file")
}

func runParse(_ *cobra.Command, args []string) error {
	var input string

	if parseExpr != "" {
		input = parseExpr
	} else if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("error reading file: %w", err)
		}
		input = string(data)
	} else {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("error reading stdin: %w", err)
		}
		input = string(data)
	}

	tokens, err := lexer.New(input).Tokenize()
	if err != nil {
		return reportError(err, input)
	}

	program, err := parser.New(tokens).ParseProgram()
	if err != nil {
		return reportError(err, input)
	}

	fmt.Print(program.String())
	return nil
}

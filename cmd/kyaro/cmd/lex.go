package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hnrie/Laminax-KPL/internal/lexer"
)

var (
	lexExpr string
	showPos bool
)

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize a Kyaro file or expression",
	Long: `Tokenize (lex) a Kyaro program and print the resulting tokens.

This command is useful for debugging the lexer and understanding how
Kyaro source code is tokenized.

Examples:
  # Tokenize a script file
  kyaro lex script.kyaro

  # Tokenize an inline expression
  kyaro lex -e "let x = 42"

  # Show token positions
  kyaro lex --show-pos script.kyaro`,
	Args: cobra.MaximumNArgs(1),
	RunE: lexScript,
}

func init() {
	rootCmd.AddCommand(lexCmd)

	lexCmd.Flags().StringVarP(&lexExpr, "eval", "e", "", "tokenize inline code instead of reading from file")
	lexCmd.Flags().BoolVar(&showPos, "show-pos", false, "show line and column for each token")
}

func lexScript(_ *cobra.Command, args []string) error {
	var input string

	if lexExpr != "" {
		input = lexExpr
	} else if len(args) == 1 {
		content, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read file %s: %w", args[0], err)
		}
		input = string(content)
	} else {
		return fmt.Errorf("either provide a file path or use -e flag for inline code")
	}

	tokens, err := lexer.New(input).Tokenize()
	if err != nil {
		return reportError(err, input)
	}

	for _, tok := range tokens {
		if showPos {
			fmt.Printf("%3d:%-3d %-12s %q\n", tok.Pos.Line, tok.Pos.Column, tok.Type, tok.Literal)
		} else {
			fmt.Printf("%-12s %q\n", tok.Type, tok.Literal)
		}
	}

	return nil
}

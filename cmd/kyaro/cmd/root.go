package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hnrie/Laminax-KPL/internal/repl"
)

var (
	// Version information (set by build flags)
	Version   = "1.0.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "kyaro [file]",
	Short: "Kyaro interpreter",
	Long: `kyaro is the interpreter for the Kyaro scripting language.

Kyaro is a small, dynamically typed language with a familiar imperative
syntax: variable bindings, first-class functions with lexical closure,
conditionals, while and for-in loops, lists, and a library of numeric,
statistical, and ML helper routines.

With no arguments an interactive prompt is started. With a file argument
the file is executed end-to-end.`,
	Version: Version,
	Args: func(cmd *cobra.Command, args []string) error {
		if err := cobra.MaximumNArgs(1)(cmd, args); err != nil {
			_ = cmd.Usage()
			return err
		}
		return nil
	},
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(_ *cobra.Command, args []string) error {
		if len(args) == 0 {
			repl.Start(os.Stdin, os.Stdout, os.Stderr, Version)
			return nil
		}
		return runFile(args[0])
	},
}

// Execute runs the root command. Errors are printed to standard error here
// so main only has to map them to the exit code.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	return err
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))
}

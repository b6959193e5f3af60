package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var showFoldCase bool

// evalCmd represents the eval command
var evalCmd = &cobra.Command{
	Use:   "eval [script]",
	Short: "Build a pattern from a script and print its text",
	Long: `Run a Starlark build script and print the text of the pattern it defines.

The printed text is ready to be handed to a regex engine; the case
sensitivity of the pattern is a separate flag, shown with --fold-case.

Examples:
  rebuild eval version.star
  rebuild eval version.star --fold-case`,
	Args: cobra.ExactArgs(1),
	RunE: runEval,
}

func init() {
	rootCmd.AddCommand(evalCmd)

	evalCmd.Flags().BoolVar(&showFoldCase, "fold-case", false, "also print whether the pattern is case-insensitive")
}

func runEval(cmd *cobra.Command, args []string) error {
	p, err := loadPattern(args[0])
	if err != nil {
		return err
	}

	fmt.Println(p.Text())

	if showFoldCase {
		fmt.Printf("fold_case: %t\n", p.FoldCase())
	}

	return nil
}

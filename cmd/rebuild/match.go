package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	rebuild "github.com/magnetde/starlark-rebuild"
)

var invert bool

// matchCmd represents the match command
var matchCmd = &cobra.Command{
	Use:   "match [script] [file]",
	Short: "Filter lines through the pattern a script builds",
	Long: `Compile the pattern a Starlark build script defines and print the lines
of the file (or stdin) that match it.

Examples:
  rebuild match version.star CHANGELOG
  journalctl | rebuild match error.star
  rebuild match error.star access.log --invert`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runMatch,
}

func init() {
	rootCmd.AddCommand(matchCmd)

	matchCmd.Flags().BoolVarP(&invert, "invert", "v", false, "print non-matching lines instead")
}

func runMatch(cmd *cobra.Command, args []string) error {
	p, err := loadPattern(args[0])
	if err != nil {
		return err
	}

	re, err := rebuild.Compile(p)
	if err != nil {
		return fmt.Errorf("failed to compile pattern: %w", err)
	}

	var in io.Reader = os.Stdin
	if len(args) == 2 {
		f, err := os.Open(args[1])
		if err != nil {
			return err
		}
		defer f.Close()

		in = f
	}

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := scanner.Text()

		ok, err := re.MatchString(line)
		if err != nil {
			return fmt.Errorf("failed to match line: %w", err)
		}

		if ok != invert {
			fmt.Println(line)
		}
	}

	return scanner.Err()
}

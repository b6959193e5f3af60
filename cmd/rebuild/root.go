package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	rebuild "github.com/magnetde/starlark-rebuild"
	"github.com/magnetde/starlark-rebuild/star"
)

// rootCmd represents the base command.
var rootCmd = &cobra.Command{
	Use:   "rebuild",
	Short: "Compose regular expressions from Starlark build scripts",
	Long: `Compose regular expressions from Starlark build scripts.

A build script uses the predeclared "rebuild" module to chain combinators
and must assign the result to a global named "pattern":

  pattern = rebuild.string_begin().literal("v").capture(
      rebuild.once_or_most(rebuild.charset("0-9")),
  ).string_end()`,
	SilenceUsage:  true,
	SilenceErrors: false,
}

// loadPattern runs the script with the builder module predeclared as
// "rebuild" and returns the global named "pattern".
func loadPattern(path string) (rebuild.Pattern, error) {
	var zero rebuild.Pattern

	predeclared := starlark.StringDict{
		"rebuild": star.NewModule(),
	}

	thread := &starlark.Thread{
		Name: "rebuild " + path,
		Print: func(_ *starlark.Thread, msg string) {
			fmt.Println(msg)
		},
	}

	opts := syntax.FileOptions{
		Set:             true,
		While:           true,
		TopLevelControl: true,
		GlobalReassign:  true,
		Recursion:       true,
	}

	globals, err := starlark.ExecFileOptions(&opts, thread, path, nil, predeclared)
	if err != nil {
		var e *starlark.EvalError
		if errors.As(err, &e) {
			return zero, errors.New(e.Backtrace())
		}

		return zero, err
	}

	v, ok := globals["pattern"]
	if !ok {
		return zero, fmt.Errorf("script %s does not define a global named \"pattern\"", path)
	}

	p, ok := v.(*star.Pattern)
	if !ok {
		return zero, fmt.Errorf("global \"pattern\" is %s, want pattern", v.Type())
	}

	return p.Unwrap(), nil
}

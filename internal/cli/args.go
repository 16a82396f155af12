package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// OptionalRootPath accepts zero or one scan root argument.
// The root defaults to the current directory.
func OptionalRootPath(cmd *cobra.Command, args []string) error {
	if len(args) > 1 {
		return fmt.Errorf(`accepts at most 1 arg(s), received %d

Usage: %s

Example:
  %s ./services`, len(args), cmd.UseLine(), cmd.CommandPath())
	}
	return nil
}

// rootArg returns the scan root named by args, or "." when none is given.
func rootArg(args []string) string {
	if len(args) == 0 || args[0] == "" {
		return "."
	}
	return args[0]
}

package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vvka-141/errcollect/internal/config"
	"github.com/vvka-141/errcollect/internal/logging"
	"github.com/vvka-141/errcollect/pkg/errcollect"
)

var initCmd = &cobra.Command{
	Use:   "init [root]",
	Short: "Write a default errcollect.yaml",
	Long: `Init writes errcollect.yaml with the built-in defaults into root
(default: current directory), so markers and exclusions can be edited
instead of passed as flags on every run.

An existing errcollect.yaml is left untouched unless --force is given.

Examples:
  errcollect init                # Current directory
  errcollect init ./services     # Subdirectory, created if missing
  errcollect init . --force      # Reset to defaults`,
	Args: OptionalRootPath,
	RunE: runInit,
}

var initForce bool

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite an existing errcollect.yaml")
}

const initHeader = `# errcollect configuration.
# Flags and ERRCOLLECT_* environment variables override these values.
`

func runInit(cmd *cobra.Command, args []string) error {
	root := rootArg(args)
	target := filepath.Join(root, errcollect.ConfigFileName)

	if _, err := os.Stat(target); err == nil && !initForce {
		return fmt.Errorf("%s already exists (use --force to overwrite)", target)
	}

	data, err := config.Marshal(config.Default())
	if err != nil {
		return fmt.Errorf("failed to render config: %w", err)
	}

	if err := os.MkdirAll(root, 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", root, err)
	}
	if err := os.WriteFile(target, append([]byte(initHeader), data...), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", target, err)
	}

	logging.NewConsoleLogger(getVerboseFlag(cmd)).Verbose("Wrote %d bytes", len(initHeader)+len(data))
	fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", target)
	return nil
}

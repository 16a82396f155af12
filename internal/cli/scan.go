package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vvka-141/errcollect/internal/config"
	"github.com/vvka-141/errcollect/internal/files/filesystem"
	"github.com/vvka-141/errcollect/internal/files/scanner"
	"github.com/vvka-141/errcollect/internal/linescan"
	"github.com/vvka-141/errcollect/internal/logging"
	"github.com/vvka-141/errcollect/internal/report"
	"github.com/vvka-141/errcollect/internal/tui"
	"github.com/vvka-141/errcollect/pkg/errcollect"
)

var scanCmd = &cobra.Command{
	Use:   "scan [root]",
	Short: "Scan a source tree and write the error-message reports",
	Long: `Scan walks root (default: current directory) and collects every quoted
string on lines that contain one of the configured markers.

Skipped:
  - files whose path ends with an excluded file suffix
  - files whose path contains an excluded folder
  - bodies of functions matched by a skip rule, up to the first line that
    is exactly "}"

Configuration precedence:
  flag > ERRCOLLECT_* environment (a .env file is loaded if present)
       > errcollect.yaml in root (or --config) > built-in defaults

Examples:
  # Scan the current directory with defaults
  errcollect scan

  # Scan a service tree, reports into ./out
  errcollect scan ./services --out-dir out

  # Add a marker and exclude generated code
  errcollect scan . --marker fmt.Errorf --exclude-folder gen

  # Tab-separated output with the depth-aware function skipper
  errcollect scan . --delimiter tab --block-finder depth`,
	Args: OptionalRootPath,
	RunE: runScan,
}

type scanFlagValues struct {
	configPath     string
	envFiles       []string
	markers        []string
	excludeFiles   []string
	excludeFolders []string
	stripPattern   string
	extension      string
	outDir         string
	byFile         string
	byCategory     string
	delimiter      string
	blockFinder    string
}

var scanFlags scanFlagValues

func init() {
	rootCmd.AddCommand(scanCmd)

	scanCmd.Flags().StringVar(&scanFlags.configPath, "config", "",
		"Path to a config file (default: <root>/errcollect.yaml if present)")
	scanCmd.Flags().StringSliceVar(&scanFlags.envFiles, "env-file", nil,
		"Load ERRCOLLECT_* variables from .env files (default: ./.env if present)")

	scanCmd.Flags().StringSliceVar(&scanFlags.markers, "marker", nil,
		"Marker substring selecting candidate lines (can be specified multiple times)\n"+
			"Replaces the configured marker list")
	scanCmd.Flags().StringSliceVar(&scanFlags.excludeFiles, "exclude-file", nil,
		"Exclude files whose path ends with this suffix (can be specified multiple times)")
	scanCmd.Flags().StringSliceVar(&scanFlags.excludeFolders, "exclude-folder", nil,
		"Exclude files whose path contains this folder (can be specified multiple times)\n"+
			"Relative entries are resolved against root")
	scanCmd.Flags().StringVar(&scanFlags.stripPattern, "strip-pattern", "",
		"Regular expression removed from file paths in the reports (default: the absolute root)")
	scanCmd.Flags().StringVar(&scanFlags.extension, "ext", "",
		"Source file extension (default: .go)")

	scanCmd.Flags().StringVarP(&scanFlags.outDir, "out-dir", "o", "",
		"Directory the reports are written to (default: current directory)")
	scanCmd.Flags().StringVar(&scanFlags.byFile, "by-file", "",
		"File name of the report sorted by file (default: "+errcollect.DefaultByFileReport+")")
	scanCmd.Flags().StringVar(&scanFlags.byCategory, "by-category", "",
		"File name of the report sorted by category (default: "+errcollect.DefaultByCategoryReport+")")
	scanCmd.Flags().StringVar(&scanFlags.delimiter, "delimiter", "",
		"Field delimiter: a single character, or 'tab' (default: ',')")
	scanCmd.Flags().StringVar(&scanFlags.blockFinder, "block-finder", "",
		"How skipped function bodies end: flat|depth (default: flat)")
}

func runScan(cmd *cobra.Command, args []string) error {
	verbose := getVerboseFlag(cmd)
	root := rootArg(args)

	if err := scanner.CheckRoot(filesystem.NewOSFileSystem(), root); err != nil {
		return err
	}

	resolved, err := buildScanConfig(root)
	if err != nil {
		return err
	}

	logger := logging.NewConsoleLogger(verbose)
	logger.Verbose("Scanning %s", resolved.Root)

	lines := linescan.NewScanner(resolved.Markers, resolved.SkipRules, resolved.Finder)
	var walker errcollect.TreeScanner = scanner.NewWalker(lines, scanner.Options{
		Extension: resolved.Extension,
		Rules:     resolved.Rules,
	}, logger)

	mode := tui.DetectMode()
	progress := tui.NewProgress(cmd.ErrOrStderr(), mode)
	progress.Start("Scanning " + resolved.Root)

	result, err := walker.ScanTree(resolved.Root)
	if err != nil {
		progress.Fail("Scan failed")
		return err
	}

	paths, err := report.WriteAll(result.Records, resolved.Report)
	if err != nil {
		progress.Fail("Reports not written")
		return err
	}
	progress.Success(fmt.Sprintf("%d record(s) written", len(result.Records)))

	fmt.Fprint(cmd.ErrOrStderr(), tui.RenderSummary(tui.Summary{
		Root:    resolved.Root,
		Result:  result,
		Reports: paths,
	}, mode))
	return nil
}

// buildScanConfig layers defaults, errcollect.yaml, the environment and
// flags, in that order, and resolves the result against root.
func buildScanConfig(root string) (*config.Resolved, error) {
	if len(scanFlags.envFiles) > 0 {
		if err := godotenv.Load(scanFlags.envFiles...); err != nil {
			return nil, fmt.Errorf("%w: failed to load env file: %v", errcollect.ErrInvalidConfig, err)
		}
	} else {
		_ = godotenv.Load()
	}

	cfg, err := loadScanConfig(root)
	if err != nil {
		return nil, err
	}

	config.ApplyEnv(cfg, os.LookupEnv)
	applyScanFlags(cfg)

	return config.Resolve(cfg, root)
}

func loadScanConfig(root string) (*config.Config, error) {
	if scanFlags.configPath != "" {
		cfg, err := config.Load(scanFlags.configPath)
		if errors.Is(err, config.ErrConfigNotFound) {
			return nil, fmt.Errorf("%w: %s: %v", errcollect.ErrInvalidConfig, scanFlags.configPath, err)
		}
		return cfg, err
	}

	cfg, err := config.LoadFromDir(root)
	if errors.Is(err, config.ErrConfigNotFound) {
		return config.Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", errcollect.ConfigFileName, err)
	}
	return cfg, nil
}

func applyScanFlags(cfg *config.Config) {
	if len(scanFlags.markers) > 0 {
		cfg.Markers = scanFlags.markers
	}
	if len(scanFlags.excludeFiles) > 0 {
		cfg.ExcludeFiles = scanFlags.excludeFiles
	}
	if len(scanFlags.excludeFolders) > 0 {
		cfg.ExcludeFolders = scanFlags.excludeFolders
	}
	if scanFlags.stripPattern != "" {
		cfg.StripPattern = scanFlags.stripPattern
	}
	if scanFlags.extension != "" {
		cfg.Extension = scanFlags.extension
	}
	if scanFlags.outDir != "" {
		cfg.Output.Dir = scanFlags.outDir
	}
	if scanFlags.byFile != "" {
		cfg.Output.ByFile = scanFlags.byFile
	}
	if scanFlags.byCategory != "" {
		cfg.Output.ByCategory = scanFlags.byCategory
	}
	if scanFlags.delimiter != "" {
		cfg.Output.Delimiter = scanFlags.delimiter
	}
	if scanFlags.blockFinder != "" {
		cfg.BlockFinder = scanFlags.blockFinder
	}
}

package errcollect

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess       = 0  // Scan completed and both reports were written
	ExitGeneralError  = 1  // Unknown or unclassified error
	ExitUsageError    = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic         = 3  // Internal panic (unexpected crash)
	ExitConfigError   = 10 // Invalid configuration
	ExitRootNotFound  = 11 // Scan root missing or not a directory
	ExitReportFailure = 12 // A report table could not be written
)

const (
	// ConfigFileName is the project configuration file looked up in the scan root.
	ConfigFileName = "errcollect.yaml"

	// EnvPrefix prefixes every environment variable the tool reads.
	EnvPrefix = "ERRCOLLECT_"

	// DefaultExtension is the only file extension scanned unless configured otherwise.
	DefaultExtension = ".go"

	// DefaultByFileReport is the report sorted by display path.
	DefaultByFileReport = "output_by_filename.csv"

	// DefaultByCategoryReport is the report sorted by first category, empty last.
	DefaultByCategoryReport = "output_by_category.csv"

	// BlockFinderFlat selects the first-lone-closing-brace heuristic.
	BlockFinderFlat = "flat"

	// BlockFinderDepth selects brace-depth counting.
	BlockFinderDepth = "depth"
)

// ReportHeader is the first row of both report tables.
var ReportHeader = []string{"file name", "line number", "category-1", "category-2", "detail"}

// DefaultMarkers are the call fragments that flag a line as an error-message call site.
func DefaultMarkers() []string {
	return []string{
		"errors.Wrap",
		"errors.Wrapf",
		"Errorf",
		"base.NewBaseOperationProcessReasonError",
	}
}

// DefaultExcludedFiles are path suffixes never scanned.
func DefaultExcludedFiles() []string {
	return []string{"main.go", "error.go", "operation_processor.go"}
}

// DefaultExcludedFolders are folders, relative to the scan root, never scanned.
func DefaultExcludedFolders() []string {
	return []string{"cmds", "utils", "digest"}
}

// DefaultSkipRules returns the two function shapes whose bodies are not scanned:
// named Process handlers and processor factory constructors.
func DefaultSkipRules() []SkipRule {
	return []SkipRule{
		{Name: "named-process", Keyword: "func", Fragment: " Process"},
		{Name: "factory-constructor", Keyword: "func", Fragment: "types.GetNewProcessor"},
	}
}

package tui

import (
	"fmt"
	"strings"

	"github.com/vvka-141/errcollect/pkg/errcollect"
)

// Summary describes a finished run.
type Summary struct {
	Root    string
	Result  errcollect.ScanResult
	Reports []string
}

// RenderSummary formats s for the given mode. Plain output has no escape
// sequences and one fact per line.
func RenderSummary(s Summary, mode Mode) string {
	rows := [][2]string{
		{"root", s.Root},
		{"scanned", fmt.Sprintf("%d file(s)", s.Result.FilesScanned)},
		{"excluded", fmt.Sprintf("%d file(s)", s.Result.FilesExcluded)},
		{"failed", fmt.Sprintf("%d file(s)", len(s.Result.Failures))},
		{"records", fmt.Sprintf("%d", len(s.Result.Records))},
	}

	if mode == ModePlain {
		var b strings.Builder
		for _, row := range rows {
			fmt.Fprintf(&b, "%s: %s\n", row[0], row[1])
		}
		for _, path := range s.Reports {
			fmt.Fprintf(&b, "report: %s\n", path)
		}
		return b.String()
	}

	lines := []string{TitleStyle.Render("errcollect")}
	for _, row := range rows {
		lines = append(lines, LabelStyle.Render(row[0])+row[1])
	}

	status := SuccessStyle.Render(SymbolCheck + " all files read")
	if n := len(s.Result.Failures); n > 0 {
		status = WarningStyle.Render(fmt.Sprintf("%s %d file(s) could not be read", SymbolWarning, n))
	}
	lines = append(lines, "", status)

	for _, path := range s.Reports {
		lines = append(lines, PathStyle.Render(SymbolArrowRight+" "+path))
	}

	return BoxStyle.Render(strings.Join(lines, "\n")) + "\n"
}

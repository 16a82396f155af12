package report

import (
	"slices"
	"strings"

	"github.com/vvka-141/errcollect/pkg/errcollect"
)

// SortByFile returns a copy of records ordered by display path.
// Records with the same path keep their input order.
func SortByFile(records []errcollect.ScanRecord) []errcollect.ScanRecord {
	sorted := slices.Clone(records)
	slices.SortStableFunc(sorted, func(a, b errcollect.ScanRecord) int {
		return strings.Compare(a.FilePath, b.FilePath)
	})
	return sorted
}

// SortByCategory returns a copy of records ordered by Category1, with empty
// categories after all others. Ties keep their input order.
func SortByCategory(records []errcollect.ScanRecord) []errcollect.ScanRecord {
	sorted := slices.Clone(records)
	slices.SortStableFunc(sorted, func(a, b errcollect.ScanRecord) int {
		aEmpty, bEmpty := a.Category1 == "", b.Category1 == ""
		switch {
		case aEmpty && bEmpty:
			return 0
		case aEmpty:
			return 1
		case bEmpty:
			return -1
		}
		return strings.Compare(a.Category1, b.Category1)
	})
	return sorted
}

package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/vvka-141/errcollect/pkg/errcollect"
)

// Options name the two report files.
type Options struct {
	// Dir is the directory both reports are written to.
	Dir string

	// ByFile and ByCategory are file names relative to Dir.
	ByFile     string
	ByCategory string

	// Delimiter separates fields. Zero means ','.
	Delimiter rune
}

// Paths returns the full paths of the by-file and by-category reports.
func (o Options) Paths() (byFile, byCategory string) {
	return filepath.Join(o.Dir, o.ByFile), filepath.Join(o.Dir, o.ByCategory)
}

// Write writes header and records to w as one delimited table.
func Write(w io.Writer, records []errcollect.ScanRecord, delimiter rune) error {
	cw := csv.NewWriter(w)
	if delimiter != 0 {
		cw.Comma = delimiter
	}

	if err := cw.Write(errcollect.ReportHeader); err != nil {
		return err
	}
	for _, rec := range records {
		if err := cw.Write(rec.Row()); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteFile writes records to path, replacing any existing file.
func WriteFile(path string, records []errcollect.ScanRecord, delimiter rune) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %v", errcollect.ErrReportWrite, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("%w: %v", errcollect.ErrReportWrite, closeErr)
		}
	}()

	if err := Write(f, records, delimiter); err != nil {
		return fmt.Errorf("%w: %s: %v", errcollect.ErrReportWrite, path, err)
	}
	return nil
}

// WriteAll writes the by-file and by-category reports for records.
// Returns the paths written, in that order.
func WriteAll(records []errcollect.ScanRecord, opts Options) ([]string, error) {
	if opts.Dir != "" {
		if err := os.MkdirAll(opts.Dir, 0755); err != nil {
			return nil, fmt.Errorf("%w: %v", errcollect.ErrReportWrite, err)
		}
	}

	byFilePath, byCategoryPath := opts.Paths()
	if err := WriteFile(byFilePath, SortByFile(records), opts.Delimiter); err != nil {
		return nil, err
	}
	if err := WriteFile(byCategoryPath, SortByCategory(records), opts.Delimiter); err != nil {
		return []string{byFilePath}, err
	}
	return []string{byFilePath, byCategoryPath}, nil
}

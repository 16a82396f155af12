// Package files groups the source-tree access used by a scan.
//
// Sub-packages:
//   - filesystem: filesystem abstraction with OS and in-memory implementations
//   - scanner: tree walk, exclusion rules and per-file line scanning
//
// # Usage
//
//	import (
//	    "github.com/vvka-141/errcollect/internal/files/scanner"
//	    "github.com/vvka-141/errcollect/internal/linescan"
//	)
//
//	lines := linescan.NewScanner(markers, skipRules, linescan.FlatBraceFinder{})
//	walker := scanner.NewWalker(lines, scanner.Options{Rules: rules}, logger)
//	result, err := walker.ScanTree("./services")
package files

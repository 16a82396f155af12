// Package linescan is the line-oriented call-site scanner.
//
// It is a lexical pass, not a parser:
//   - Classifier recognises the first line of functions whose bodies are skipped
//   - BlockBoundaryFinder implementations locate the end of a skipped body
//   - ExtractQuoted joins the double-quoted literals on a line
//   - Decompose splits the joined text into category and detail fields
//   - Scanner drives the above over the lines of one file
//
// Nothing here tracks string literals, comments or nesting beyond what each
// heuristic states. Everything in this package is free of I/O.
package linescan

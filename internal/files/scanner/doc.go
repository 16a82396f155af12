// Package scanner walks a source tree and collects error-message call sites.
//
// The scanner package is responsible for:
//   - Recursively discovering source files with the configured extension
//   - Applying the exclusion rules to each file's full path
//   - Decoding file content tolerantly and handing lines to linescan
//   - Isolating per-file read failures so one bad file never aborts a run
//
// The walker is filesystem-agnostic through filesystem.FileSystemProvider,
// enabling both production use with the OS filesystem and testing with
// in-memory filesystems.
package scanner

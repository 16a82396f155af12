// Package filesystem provides the filesystem abstraction the tree walker runs on.
//
// Key interfaces:
//   - FileSystemProvider: Opens directories and stats single paths
//   - Directory: A root that can be walked recursively
//   - File: A walked entry with its metadata and a content accessor
//
// Implementations:
//   - OSFileSystem: Production implementation backed by the OS filesystem
//   - MemoryFileSystem: In-memory implementation for tests, including
//     files that fail to read
package filesystem

// Package fsutil provides utilities for filesystem operations.
//
// Key functionality:
//   - Path operations: ExpandHomePath, DefaultConfigDir
//   - File creation: EnsureFile
//   - File writing: WriteFileAtomic
package fsutil

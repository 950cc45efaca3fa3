// Package filesystem provides the file access abstraction used to read
// repository files (label bundles, manifests, project descriptors) and to
// write generated descriptors.
//
// Paths are repository-relative and forward-slash separated; each provider
// resolves them against its own root.
//
// Implementations:
//   - OSFileSystem: Production implementation rooted at a directory on disk
//   - MemoryFileSystem: In-memory implementation for testing
package filesystem

// Package files groups file access for sfdelta into sub-packages:
//   - filesystem: read and write access rooted at the repository (OS and in-memory)
//   - scanner: listing the files of a source tree
package files

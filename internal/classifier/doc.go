// Package classifier maps a changed file path to a metadata type and the
// member names that file contributes to a deployment descriptor.
//
// # Algorithm
//
//  1. Find the first registry directory key (in declared order) that occurs
//     as a path segment. No match means the file is not deployable metadata.
//  2. The provisional member is the file name up to its first dot.
//  3. Bundle types use the bundle directory instead.
//  4. Folder-scoped types qualify the member with the folder path below
//     the key, <folder>/<name>.
//  5. When the immediate parent directory is a child-item directory of the
//     type, the child type replaces it and the member becomes
//     <parent>.<name>, where <parent> is the segment following the key.
//  6. The member list is then resolved once per type: path-derived types
//     keep the provisional member; in-file types dispatch to the content
//     resolver registered for that type.
//
// Files that do not fit the expected shape are reported as unclassified
// rather than failing the run.
package classifier

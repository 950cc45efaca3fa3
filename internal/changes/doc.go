// Package changes lists the files changed between two source-control
// references, together with each file's unified diff text.
//
// GitSource reads a local clone through go-git. GitLabSource asks the
// GitLab repository compare API, which needs no clone at all. TreeSource
// lists every file of a directory for a full deployment.
package changes

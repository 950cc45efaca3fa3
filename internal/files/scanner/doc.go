// Package scanner lists the files of a source tree.
//
// Hidden directories such as .git and .sfdx are not descended into, so a
// scan of a package directory yields the deployable source files only.
package scanner

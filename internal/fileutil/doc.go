// Package fileutil holds the filesystem helpers shared by the merge and
// create flows: probing input files for readability before any work starts,
// and writing output files under an advisory lock.
package fileutil

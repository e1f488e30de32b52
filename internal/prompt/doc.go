// Package prompt implements the blocking yes/no gate used when some input
// files cannot be opened. The input source is swappable so tests and
// scripted runs can supply canned answers.
package prompt

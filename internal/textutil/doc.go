// Package textutil provides the text transforms used when expanding words
// into surface-form variants and when reading separators from the command
// line.
//
// Case mapping follows full Unicode rules (golang.org/x/text/cases) rather
// than per-rune mapping, so "ß" upper-cases to "SS".
package textutil

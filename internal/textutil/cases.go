package textutil

import (
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Capitalize returns s with its first rune title-cased and the remainder
// lower-cased.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	_, size := utf8.DecodeRuneInString(s)
	head := cases.Title(language.Und).String(s[:size])
	return head + cases.Lower(language.Und).String(s[size:])
}

// Upper returns s with every rune upper-cased using full case mapping.
func Upper(s string) string {
	return cases.Upper(language.Und).String(s)
}

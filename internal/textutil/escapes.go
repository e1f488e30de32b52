package textutil

import "strings"

var escapeReplacer = strings.NewReplacer(
	`\\`, `\`,
	`\n`, "\n",
	`\r`, "\r",
	`\t`, "\t",
)

// DecodeEscapes turns the backslash sequences \n, \r, \t and \\ into the
// characters they name. Shells pass them through literally, which makes a
// newline or tab separator awkward to type otherwise. Other backslashes are
// kept as-is.
func DecodeEscapes(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	return escapeReplacer.Replace(s)
}

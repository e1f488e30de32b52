// Package preflight provides readiness checks for the paths and tokenizer a
// badwords run depends on.
//
// The CLI "config validate --check" command calls RunAll and renders the
// results. Path checks only consult the filesystem; the tokenizer check
// loads the configured backend and encodes a sample word, which may download
// or parse vocabulary files.
package preflight

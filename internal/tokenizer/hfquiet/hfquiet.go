// Package hfquiet discards standard logger output while the Hugging Face
// tokenizer library initializes, since that library reports its cache
// directory on every start. It must stay free of non-standard imports so it
// is initialized before github.com/sugarme/tokenizer. The tokenizer package
// restores the standard logger in its own init.
package hfquiet

import (
	"io"
	"log"
)

func init() {
	log.SetOutput(io.Discard)
}

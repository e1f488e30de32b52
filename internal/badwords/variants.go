package badwords

import (
	"fmt"
	"strings"

	"badwords/internal/textutil"
	"badwords/internal/tokenizer"
)

// VariantCount is the number of surface forms generated per word.
const VariantCount = 6

// Variants returns the surface forms a word is banned under, in fixed order:
// the word, with a leading space, capitalized, capitalized with a leading
// space, upper-cased, and upper-cased with a leading space. Surrounding
// whitespace is stripped first.
//
// A tokenizer encodes a word differently at the start of a text and after a
// space, and casing changes the tokens too, so each form is banned on its own.
func Variants(word string) [VariantCount]string {
	word = strings.TrimSpace(word)
	capitalized := textutil.Capitalize(word)
	upper := textutil.Upper(word)
	return [VariantCount]string{
		word,
		" " + word,
		capitalized,
		" " + capitalized,
		upper,
		" " + upper,
	}
}

// EncodeVariants encodes every variant of word with tok and returns exactly
// VariantCount sequences in Variants order.
func EncodeVariants(word string, tok tokenizer.Tokenizer) ([]Sequence, error) {
	variants := Variants(word)
	seqs := make([]Sequence, 0, VariantCount)
	for _, variant := range variants {
		ids, err := tok.Encode(variant)
		if err != nil {
			return nil, fmt.Errorf("encode %q: %w", variant, err)
		}
		if ids == nil {
			ids = []int{}
		}
		seqs = append(seqs, Sequence(ids))
	}
	return seqs, nil
}

package tokenizer

import (
	"fmt"
	"strings"

	"github.com/wbrown/gpt_bpe"
)

// gpt2Tokenizer wraps a gpt_bpe encoder. Named tokenizers such as "gpt2"
// resolve to the vocabularies embedded in the library; any other value is
// treated as a path to a directory holding vocab.json and merges.txt.
type gpt2Tokenizer struct {
	encoder *gpt_bpe.GPT2Encoder
}

func newGPT2(name string) (*gpt2Tokenizer, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = "gpt2"
	}
	encoder, err := gpt_bpe.NewEncoder(name + "-tokenizer")
	if err != nil {
		encoder, err = gpt_bpe.NewEncoder(name)
		if err != nil {
			return nil, fmt.Errorf("load gpt2 tokenizer %q: %w", name, err)
		}
	}
	return &gpt2Tokenizer{encoder: encoder}, nil
}

func (t *gpt2Tokenizer) Encode(text string) ([]int, error) {
	tokens := t.encoder.Encode(&text)
	if tokens == nil {
		return []int{}, nil
	}
	ids := make([]int, len(*tokens))
	for i, token := range *tokens {
		ids[i] = int(token)
	}
	return ids, nil
}

package tokenizer

import (
	"errors"
	"fmt"
	"log"
	"os"

	hf "github.com/sugarme/tokenizer"
	"github.com/sugarme/tokenizer/pretrained"

	_ "badwords/internal/tokenizer/hfquiet"
)

func init() {
	log.SetOutput(os.Stderr)
}

// huggingFaceTokenizer loads a tokenizer.json exported by the Hugging Face
// tokenizers library. Special tokens are never added; a bad-words entry must
// match the plain text encoding.
type huggingFaceTokenizer struct {
	inner *hf.Tokenizer
}

func newHuggingFace(path string) (*huggingFaceTokenizer, error) {
	if path == "" {
		return nil, errors.New("huggingface tokenizer requires a tokenizer.json path")
	}
	tk, err := pretrained.FromFile(path)
	if err != nil {
		return nil, fmt.Errorf("load huggingface tokenizer %s: %w", path, err)
	}
	return &huggingFaceTokenizer{inner: tk}, nil
}

func (t *huggingFaceTokenizer) Encode(text string) ([]int, error) {
	encoding, err := t.inner.EncodeSingle(text, false)
	if err != nil {
		return nil, fmt.Errorf("encode %q: %w", text, err)
	}
	ids := make([]int, len(encoding.Ids))
	copy(ids, encoding.Ids)
	return ids, nil
}

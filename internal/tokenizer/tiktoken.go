package tokenizer

import (
	"fmt"
	"sync"

	"github.com/pkoukk/tiktoken-go"
	tiktoken_loader "github.com/pkoukk/tiktoken-go-loader"
)

var offlineLoader sync.Once

// tiktokenTokenizer encodes with an OpenAI BPE encoding. The BPE ranks are
// read from the embedded offline loader so no network access is needed.
type tiktokenTokenizer struct {
	encoding *tiktoken.Tiktoken
}

func newTiktoken(name string) (*tiktokenTokenizer, error) {
	if name == "" {
		name = "r50k_base"
	}
	offlineLoader.Do(func() {
		tiktoken.SetBpeLoader(tiktoken_loader.NewOfflineLoader())
	})
	encoding, err := tiktoken.GetEncoding(name)
	if err != nil {
		return nil, fmt.Errorf("load tiktoken encoding %q: %w", name, err)
	}
	return &tiktokenTokenizer{encoding: encoding}, nil
}

func (t *tiktokenTokenizer) Encode(text string) ([]int, error) {
	ids := t.encoding.Encode(text, nil, nil)
	if ids == nil {
		return []int{}, nil
	}
	return ids, nil
}

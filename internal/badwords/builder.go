package badwords

import (
	"errors"
	"log/slog"

	"badwords/internal/logging"
	"badwords/internal/tokenizer"
)

// Builder turns word lists into bad-words sequences.
type Builder struct {
	Tokenizer tokenizer.Tokenizer
	Separator string
	Logger    *slog.Logger
}

// Result summarizes a build.
type Result struct {
	Words     []string
	Sequences []Sequence
}

// Build deduplicates words and encodes the variants of each, concatenating
// the sequences in word order.
func (b Builder) Build(words []string) (Result, error) {
	if b.Tokenizer == nil {
		return Result{}, errors.New("builder requires a tokenizer")
	}
	logger := logging.NewComponentLogger(b.Logger, "build")

	unique := UniqueWords(words)
	logger.Debug("deduplicated word list",
		logging.Int("words", len(words)),
		logging.Int("unique", len(unique)),
	)

	seqs := make([]Sequence, 0, len(unique)*VariantCount)
	for _, word := range unique {
		encoded, err := EncodeVariants(word, b.Tokenizer)
		if err != nil {
			return Result{}, err
		}
		seqs = append(seqs, encoded...)
	}
	return Result{Words: unique, Sequences: seqs}, nil
}

// BuildFromFiles reads word lists from paths, split on the builder's
// separator, and builds sequences from the combined words.
func (b Builder) BuildFromFiles(paths []string) (Result, error) {
	if b.Separator == "" {
		return Result{}, errors.New("word separator must not be empty")
	}
	words, err := ReadWordFiles(paths, b.Separator)
	if err != nil {
		return Result{}, err
	}
	logging.NewComponentLogger(b.Logger, "build").Debug("read word lists",
		logging.Strings("files", paths),
		logging.Int("entries", len(words)),
	)
	return b.Build(words)
}

package badwords

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"badwords/internal/fileutil"
)

// FieldName is the JSON key holding the banned token sequences.
const FieldName = "bad_words_ids"

// ErrMissingField reports a bad-words document without a bad_words_ids list.
var ErrMissingField = errors.New(`missing "` + FieldName + `" field`)

// Sequence is the token-ID encoding of one string.
type Sequence []int

// File is the on-disk bad-words document. Sequences are kept in stored order
// and may contain duplicates.
type File struct {
	BadWordsIDs []Sequence `json:"bad_words_ids"`
}

// TokenCount returns the total number of token IDs across all sequences.
func (f File) TokenCount() int {
	n := 0
	for _, seq := range f.BadWordsIDs {
		n += len(seq)
	}
	return n
}

// LongestSequence returns the length of the longest sequence.
func (f File) LongestSequence() int {
	longest := 0
	for _, seq := range f.BadWordsIDs {
		longest = max(longest, len(seq))
	}
	return longest
}

// Decode parses a bad-words document from r.
func Decode(r io.Reader) (File, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return File{}, err
	}
	var doc struct {
		BadWordsIDs *[]Sequence `json:"bad_words_ids"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return File{}, err
	}
	if doc.BadWordsIDs == nil {
		return File{}, ErrMissingField
	}
	return File{BadWordsIDs: *doc.BadWordsIDs}, nil
}

// ReadFile loads the bad-words document stored at path.
func ReadFile(path string) (File, error) {
	f, err := os.Open(path)
	if err != nil {
		return File{}, err
	}
	defer f.Close()

	file, err := Decode(f)
	if err != nil {
		return File{}, fmt.Errorf("read bad-words file %s: %w", path, err)
	}
	return file, nil
}

// Merge concatenates the sequences of files in argument order. No
// deduplication is performed.
func Merge(files ...File) File {
	total := 0
	for _, f := range files {
		total += len(f.BadWordsIDs)
	}
	merged := File{BadWordsIDs: make([]Sequence, 0, total)}
	for _, f := range files {
		merged.BadWordsIDs = append(merged.BadWordsIDs, f.BadWordsIDs...)
	}
	return merged
}

// MergeFiles reads every path in order and merges their sequences. The first
// unreadable or malformed file aborts the merge.
func MergeFiles(paths []string) (File, error) {
	files := make([]File, 0, len(paths))
	for _, path := range paths {
		f, err := ReadFile(path)
		if err != nil {
			return File{}, err
		}
		files = append(files, f)
	}
	return Merge(files...), nil
}

// Marshal renders sequences as a compact bad-words document.
func Marshal(seqs []Sequence) ([]byte, error) {
	if seqs == nil {
		seqs = []Sequence{}
	}
	return json.Marshal(File{BadWordsIDs: seqs})
}

// WriteFile writes seqs to path as a single compact JSON document,
// overwriting any existing file.
func WriteFile(path string, seqs []Sequence) error {
	data, err := Marshal(seqs)
	if err != nil {
		return fmt.Errorf("encode bad-words file: %w", err)
	}
	return fileutil.WriteFileLocked(path, data, 0o644)
}

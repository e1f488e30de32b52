package badwords

import (
	"fmt"
	"os"
	"strings"
)

// SplitWords splits blob at every occurrence of sep. Substrings are neither
// trimmed nor filtered, so callers clean up with UniqueWords.
func SplitWords(blob, sep string) []string {
	return strings.Split(blob, sep)
}

// UniqueWords removes exact duplicates, keeping first-occurrence order.
// Comparison is case-sensitive. Entries that are empty once surrounding
// whitespace is stripped are dropped, since they encode to nothing.
func UniqueWords(words []string) []string {
	seen := make(map[string]struct{}, len(words))
	unique := make([]string, 0, len(words))
	for _, word := range words {
		if strings.TrimSpace(word) == "" {
			continue
		}
		if _, ok := seen[word]; ok {
			continue
		}
		seen[word] = struct{}{}
		unique = append(unique, word)
	}
	return unique
}

// ReadWordFiles reads each word-list file in order and returns the split
// words of all files concatenated, duplicates included.
func ReadWordFiles(paths []string, sep string) ([]string, error) {
	var words []string
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read word list %s: %w", path, err)
		}
		words = append(words, SplitWords(string(data), sep)...)
	}
	return words, nil
}

package testsupport

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// WriteFile writes content to path, creating parent directories, and returns
// path.
func WriteFile(t testing.TB, path, content string) string {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// WriteBadWords writes a bad-words document holding seqs to path.
func WriteBadWords(t testing.TB, path string, seqs ...[]int) string {
	t.Helper()

	if seqs == nil {
		seqs = [][]int{}
	}
	data, err := json.Marshal(map[string][][]int{"bad_words_ids": seqs})
	if err != nil {
		t.Fatalf("marshal bad words: %v", err)
	}
	return WriteFile(t, path, string(data))
}

// WriteWordList joins words with sep and writes them to path.
func WriteWordList(t testing.TB, path, sep string, words ...string) string {
	t.Helper()
	return WriteFile(t, path, strings.Join(words, sep))
}

// MakeUnreadable removes every permission bit from path for the rest of the
// test. It skips the test when running as root, where the bits are ignored.
func MakeUnreadable(t testing.TB, path string) {
	t.Helper()

	if os.Geteuid() == 0 {
		t.Skip("permission bits are not enforced for root")
	}
	if err := os.Chmod(path, 0o000); err != nil {
		t.Fatalf("chmod %s: %v", path, err)
	}
	t.Cleanup(func() {
		_ = os.Chmod(path, 0o644)
	})
}

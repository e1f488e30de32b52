package preflight

import (
	"fmt"
	"log/slog"
	"os"

	"badwords/internal/fileutil"
	"badwords/internal/tokenizer"
)

// sampleWord is encoded by CheckTokenizer to prove the vocabulary works.
const sampleWord = " Hello"

// CheckDirectoryAccess verifies that the directory exists and accepts new files.
func CheckDirectoryAccess(name, path string) Result {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", path)}
	}
	if err := fileutil.CheckWritableDir(path); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (write ok)", path)}
}

// CheckReadableFile verifies that path names a regular file the process can read.
func CheckReadableFile(name, path string) Result {
	if path == "" {
		return Result{Name: name, Detail: "path not set"}
	}
	if err := fileutil.CheckReadable(path); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (read ok)", path)}
}

// CheckTokenizer loads the tokenizer described by opts and encodes a sample
// word with it.
func CheckTokenizer(name string, opts tokenizer.Options, load Loader, logger *slog.Logger) Result {
	label := opts.Backend
	if opts.Name != "" && opts.Name != opts.Backend {
		label += "/" + opts.Name
	}

	tok, err := load(opts, logger)
	if err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: %v)", label, err)}
	}
	ids, err := tok.Encode(sampleWord)
	if err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: encode sample: %v)", label, err)}
	}
	if len(ids) == 0 {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: sample encoded to no tokens)", label)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (%q -> %v)", label, sampleWord, ids)}
}
